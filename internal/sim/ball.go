package sim

import (
	"fmt"
	"image/color"
)

// ID identifies a ball within one simulation run.
type ID int

// State is the lifecycle state of a ball.
type State uint8

const (
	// Active balls move, collide and are drawn.
	Active State = iota
	// Disabled balls are kept in the list but skipped everywhere. Terminal.
	Disabled
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Vec is a 2D point or displacement.
type Vec struct {
	X, Y float64
}

// Sign is a per-axis direction, always -1 or +1.
type Sign struct {
	X, Y float64
}

// Bounds is the viewport the balls live in. The origin is at (0, 0).
type Bounds struct {
	MaxX, MaxY float64
}

// Ball is a circular entity.
type Ball struct {
	ID     ID
	Pos    Vec
	Radius float64
	Dir    Sign
	Speed  float64
	Color  color.RGBA
	State  State
}

// Visible reports whether the ball is drawn and takes part in collisions.
func (b *Ball) Visible() bool {
	return b.State == Active
}

// Disable moves the ball into the terminal Disabled state.
func (b *Ball) Disable() {
	b.State = Disabled
}

// Reverse negates both direction components.
func (b *Ball) Reverse() {
	b.Dir.X = -b.Dir.X
	b.Dir.Y = -b.Dir.Y
}

// mustValid panics when b breaks a construction invariant.
func mustValid(b Ball) {
	if !(b.Radius > 0) {
		panic(fmt.Sprintf("sim: ball %d has non-positive radius %v", b.ID, b.Radius))
	}
	if !unitSign(b.Dir.X) || !unitSign(b.Dir.Y) {
		panic(fmt.Sprintf("sim: ball %d has invalid direction %+v", b.ID, b.Dir))
	}
	if !(b.Speed > 0) {
		panic(fmt.Sprintf("sim: ball %d has non-positive speed %v", b.ID, b.Speed))
	}
}

func unitSign(v float64) bool {
	return v == 1 || v == -1
}
