package game

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/sim"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatTicks formats a tick count as MM:SS of simulated time at config.TPS.
func formatTicks(ticks uint64) string {
	secs := ticks / config.TPS
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// heatColor shades a history bar from cool blue (quiet) to red (busy).
func heatColor(level float64) color.RGBA {
	level = clamp01(level)
	return sim.HSV(220-220*level, 0.8, 0.5+0.5*level, 220)
}
