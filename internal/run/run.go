// Package run turns a scene into a ready simulation. Both drivers start runs here.
package run

import (
	"image/color"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/sim"
)

// Rules maps a variant to its collision rules.
func Rules(v config.Variant) sim.Rules {
	switch v {
	case config.Single:
		return sim.Rules{Predicate: sim.NoCollisions, Policy: sim.Ignore}
	case config.Vanish:
		return sim.Rules{Predicate: sim.AxisAligned, Policy: sim.Disable}
	default:
		return sim.Rules{Predicate: sim.Circle, Policy: sim.Bounce}
	}
}

// New builds a fresh simulation for s. s must be valid.
func New(s config.Scene) *sim.Simulation {
	bounds := sim.Bounds{MaxX: float64(s.Width), MaxY: float64(s.Height)}
	balls := sim.Populate(sim.NewRand(s.Seed), bounds, sim.Spawn{
		Count:     s.Balls,
		MinRadius: s.MinRadius,
		MaxRadius: s.MaxRadius,
		MinSpeed:  s.MinSpeed,
		MaxSpeed:  s.MaxSpeed,
	})

	if s.Variant == config.Single && len(balls) == 1 {
		placeLone(&balls[0], bounds)
	}

	return sim.New(balls, bounds, Rules(s.Variant))
}

// placeLone puts the single ball near the top-left corner, heading right and down.
func placeLone(b *sim.Ball, bounds sim.Bounds) {
	b.Pos = sim.Vec{X: 3 * b.Radius, Y: 4 * b.Radius}
	if b.Pos.X > bounds.MaxX-b.Radius || b.Pos.Y > bounds.MaxY-b.Radius {
		b.Pos = sim.Vec{X: b.Radius, Y: b.Radius}
	}
	b.Dir = sim.Sign{X: 1, Y: 1}
	b.Color = color.RGBA{R: 230, G: 41, B: 55, A: 255}
}
