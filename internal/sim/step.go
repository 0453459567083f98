package sim

import (
	"fmt"
	"math"
	"sort"
)

// Advance reflects b off the viewport edges using its current position, then moves it
// by Dir*Speed. The check happens before the move, so a ball may sit on or past an edge
// for one tick before it heads back. Positions are never clamped.
func Advance(b *Ball, bounds Bounds) {
	b.Dir.X = reflect(b.Dir.X, b.Pos.X, b.Radius, bounds.MaxX)
	b.Dir.Y = reflect(b.Dir.Y, b.Pos.Y, b.Radius, bounds.MaxY)

	b.Pos.X += b.Dir.X * b.Speed
	b.Pos.Y += b.Dir.Y * b.Speed
}

// reflect points the sign inward when the leading edge touches or crosses an edge.
// Assigning instead of toggling keeps a ball that is still outside from flipping back.
func reflect(sign, pos, radius, max float64) float64 {
	switch {
	case pos+radius >= max:
		return -1
	case pos-radius <= 0:
		return 1
	default:
		return sign
	}
}

// Predicate decides whether two balls overlap.
type Predicate uint8

const (
	// Circle is the exact test: center distance <= sum of radii.
	Circle Predicate = iota
	// AxisAligned accepts a pair when both coordinate deltas are within the larger diameter.
	AxisAligned
	// NoCollisions never reports a pair.
	NoCollisions
)

func (p Predicate) String() string {
	switch p {
	case Circle:
		return "circle"
	case AxisAligned:
		return "axis-aligned"
	case NoCollisions:
		return "none"
	default:
		return fmt.Sprintf("predicate(%d)", uint8(p))
	}
}

// Collides reports whether a and b collide under p. Hidden balls and a ball paired with
// itself (same ID) never collide.
func Collides(a, b *Ball, p Predicate) bool {
	if a.ID == b.ID || !a.Visible() || !b.Visible() {
		return false
	}

	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y

	switch p {
	case Circle:
		reach := a.Radius + b.Radius
		return dx*dx+dy*dy <= reach*reach
	case AxisAligned:
		d := 2 * math.Max(a.Radius, b.Radius)
		return math.Abs(dx) <= d && math.Abs(dy) <= d
	default:
		return false
	}
}

// IDSet is a set of ball IDs.
type IDSet map[ID]struct{}

// Has reports membership.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DetectCollisions scans every unordered pair once and returns the IDs of all balls that
// touch at least one other ball. A ball in several pairs appears once.
func DetectCollisions(balls []Ball, p Predicate) IDSet {
	hit := IDSet{}
	if p == NoCollisions {
		return hit
	}
	for i := range balls {
		a := &balls[i]
		if !a.Visible() {
			continue
		}
		for j := i + 1; j < len(balls); j++ {
			b := &balls[j]
			if Collides(a, b, p) {
				hit[a.ID] = struct{}{}
				hit[b.ID] = struct{}{}
			}
		}
	}
	return hit
}

// Policy is how a colliding ball reacts.
type Policy uint8

const (
	// Bounce reverses both direction components.
	Bounce Policy = iota
	// Disable hides the ball for the rest of the run.
	Disable
	// Ignore leaves the ball untouched.
	Ignore
)

func (p Policy) String() string {
	switch p {
	case Bounce:
		return "bounce"
	case Disable:
		return "disable"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Resolve applies p to b.
func Resolve(b *Ball, p Policy) {
	switch p {
	case Bounce:
		b.Reverse()
	case Disable:
		b.Disable()
	}
}
