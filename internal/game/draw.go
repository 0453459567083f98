package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bouncing-balls/internal/config"
)

var background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.drawBalls(screen)
	g.drawHistory(screen)
	g.drawButton(screen)

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 12, 12)
	ebitenutil.DebugPrintAt(screen, "Space pause  R reseed  1/2/3 variant  M mute  O open  Esc quit",
		config.ButtonX+config.ButtonWidth+12, config.ButtonY+8)
}

func (g *Game) drawBalls(screen *ebiten.Image) {
	for _, b := range g.sim.Balls() {
		if !b.Visible() {
			continue
		}
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), b.Color, true)
	}
}

func (g *Game) drawHistory(screen *ebiten.Image) {
	samples := g.hist.snapshot(config.HistorySize)
	if len(samples) == 0 {
		return
	}

	barX := float64(config.HistoryMargin)
	barY := float64(g.scene.Height - config.HistoryHeight - config.HistoryMargin)
	barWidth := float64(g.scene.Width - 2*config.HistoryMargin)
	segmentWidth := barWidth / float64(config.HistorySize)

	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barWidth), float32(config.HistoryHeight),
		1, color.RGBA{R: 60, G: 70, B: 90, A: 160}, false)

	peak := float64(max(g.hist.peak(), 1))
	// Newest sample sits at the right edge.
	offset := config.HistorySize - len(samples)
	for i, s := range samples {
		if s.collisions == 0 {
			continue
		}
		level := float64(s.collisions) / peak
		h := level * float64(config.HistoryHeight-2)
		x := barX + float64(offset+i)*segmentWidth
		y := barY + float64(config.HistoryHeight) - 1 - h
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(segmentWidth), float32(h), heatColor(level), false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case g.buttonPressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case g.buttonHovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open Scene"
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, text, config.ButtonX+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}
