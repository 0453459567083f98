package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/run"
	"github.com/iburimskiy/bouncing-balls/internal/sim"
)

// Game drives one simulation per frame and draws it. It implements ebiten.Game.
type Game struct {
	scene config.Scene
	sim   *sim.Simulation
	last  sim.Report

	hist  *history
	sound *chime

	// button state
	buttonHovered bool
	buttonPressed bool

	// state
	paused   bool
	stepOnce bool
	lastErr  error
}

// NewGame validates scene and builds the first run. Sound stays off until EnableSound.
func NewGame(scene config.Scene) (*Game, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		hist:  newHistory(config.HistorySize),
		sound: newChime(),
	}
	g.restart(scene)
	return g, nil
}

// EnableSound opens the audio device. The game keeps running silently if it fails.
func (g *Game) EnableSound() error {
	return g.sound.init()
}

// Scene returns the scene of the current run.
func (g *Game) Scene() config.Scene {
	return g.scene
}

func (g *Game) restart(scene config.Scene) {
	g.scene = scene
	g.sim = run.New(scene)
	g.last = sim.Report{Active: g.sim.Active()}
	g.hist.reset()
	g.lastErr = nil
	logger.Printf("run: variant=%s seed=%d balls=%d viewport=%dx%d",
		scene.Variant, scene.Seed, scene.Balls, scene.Width, scene.Height)
}

func (g *Game) reseed() {
	s := g.scene
	s.Seed++
	g.restart(s)
}

func (g *Game) switchVariant(v config.Variant) {
	s := config.Default(v)
	s.Seed = g.scene.Seed
	s.Width, s.Height = g.scene.Width, g.scene.Height
	g.restart(s)
}

// tick advances the run once and feeds the history strip and the chime.
func (g *Game) tick() {
	r := g.sim.Step()
	g.last = r
	g.hist.record(r)
	g.sound.play(len(r.Collided))
}

func (g *Game) Update() error {
	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openScene()
		}
		g.buttonPressed = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		g.stepOnce = g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reseed()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sound.setMuted(!g.sound.muted())
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.openScene()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.switchVariant(config.Single)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.switchVariant(config.Vanish)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.switchVariant(config.Rebound)
	}

	if !g.paused || g.stepOnce {
		g.tick()
		g.stepOnce = false
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width, g.scene.Height
}

func (g *Game) openScene() {
	path, err := pickScene()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	scene, err := config.Load(path)
	if err != nil {
		g.lastErr = err
		logger.Printf("load scene: %v", err)
		return
	}
	logger.Printf("loaded scene %s", path)
	ebiten.SetWindowSize(scene.Width, scene.Height)
	g.restart(scene)
}

func (g *Game) statusLine() string {
	status := fmt.Sprintf("%s | tick %d (%s) | active %d/%d | hits %d",
		g.scene.Variant, g.last.Tick, formatTicks(g.last.Tick),
		g.last.Active, len(g.sim.Balls()), len(g.last.Collided))
	if g.paused {
		status += " | paused (. to step)"
	}
	if g.sound.muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}
