package sim

import "fmt"

// Rules selects the collision behavior of a run.
type Rules struct {
	Predicate Predicate
	Policy    Policy
}

// Report summarizes one tick.
type Report struct {
	Tick     uint64
	Collided []ID
	Active   int
}

// Simulation owns a fixed list of balls and advances them one tick at a time.
// It is not safe for concurrent use; the driver loop owns it.
type Simulation struct {
	balls  []Ball
	bounds Bounds
	rules  Rules
	tick   uint64
	index  map[ID]int
}

// New takes ownership of balls. It panics on duplicate IDs, invalid balls or empty bounds.
func New(balls []Ball, bounds Bounds, rules Rules) *Simulation {
	if !(bounds.MaxX > 0) || !(bounds.MaxY > 0) {
		panic(fmt.Sprintf("sim: invalid bounds %+v", bounds))
	}

	index := make(map[ID]int, len(balls))
	for i, b := range balls {
		mustValid(b)
		if _, dup := index[b.ID]; dup {
			panic(fmt.Sprintf("sim: duplicate ball id %d", b.ID))
		}
		index[b.ID] = i
	}

	return &Simulation{
		balls:  balls,
		bounds: bounds,
		rules:  rules,
		index:  index,
	}
}

// Step detects collisions on the positions left by the previous tick, resolves each
// colliding ball once, then advances every active ball.
func (s *Simulation) Step() Report {
	hit := DetectCollisions(s.balls, s.rules.Predicate)
	collided := hit.Sorted()
	for _, id := range collided {
		Resolve(&s.balls[s.index[id]], s.rules.Policy)
	}

	active := 0
	for i := range s.balls {
		b := &s.balls[i]
		if !b.Visible() {
			continue
		}
		Advance(b, s.bounds)
		active++
	}

	s.tick++
	return Report{Tick: s.tick, Collided: collided, Active: active}
}

// Balls returns the backing list. Callers must treat it as read-only.
func (s *Simulation) Balls() []Ball {
	return s.balls
}

// Ball returns the ball with the given id.
func (s *Simulation) Ball(id ID) (Ball, bool) {
	i, ok := s.index[id]
	if !ok {
		return Ball{}, false
	}
	return s.balls[i], true
}

// Bounds returns the viewport.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Rules returns the collision rules.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Active counts visible balls.
func (s *Simulation) Active() int {
	n := 0
	for i := range s.balls {
		if s.balls[i].Visible() {
			n++
		}
	}
	return n
}
