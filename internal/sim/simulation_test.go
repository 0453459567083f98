package sim

import (
	"testing"
)

func TestStepChecksBeforeMoving(t *testing.T) {
	a := ball(0, 10, 50, 5)
	b := ball(1, 21, 50, 5)
	a.Dir = Sign{X: 1, Y: 1}
	b.Dir = Sign{X: -1, Y: 1}
	s := New([]Ball{a, b}, roomy, Rules{Predicate: Circle, Policy: Bounce})

	// Distance 11 before the move, 9 after: the hit shows up one tick late.
	if r := s.Step(); len(r.Collided) != 0 {
		t.Fatalf("tick 1 collided %v, want none", r.Collided)
	}
	r := s.Step()
	if len(r.Collided) != 2 {
		t.Fatalf("tick 2 collided %v, want [0 1]", r.Collided)
	}
	if r.Tick != 2 || s.Tick() != 2 {
		t.Fatalf("tick = %d/%d, want 2", r.Tick, s.Tick())
	}
}

func TestStepBounceInvertsMotion(t *testing.T) {
	mk := func() []Ball {
		a := ball(0, 50, 50, 5)
		b := ball(1, 58, 50, 5)
		a.Dir = Sign{X: 1, Y: 1}
		b.Dir = Sign{X: -1, Y: -1}
		b.Speed = 2
		return []Ball{a, b}
	}

	free := New(mk(), roomy, Rules{Predicate: NoCollisions, Policy: Bounce})
	hit := New(mk(), roomy, Rules{Predicate: Circle, Policy: Bounce})
	free.Step()
	r := hit.Step()
	if len(r.Collided) != 2 {
		t.Fatalf("collided = %v", r.Collided)
	}

	start := mk()
	for i := range start {
		f := free.Balls()[i]
		h := hit.Balls()[i]
		fd := Vec{X: f.Pos.X - start[i].Pos.X, Y: f.Pos.Y - start[i].Pos.Y}
		hd := Vec{X: h.Pos.X - start[i].Pos.X, Y: h.Pos.Y - start[i].Pos.Y}
		if hd.X != -fd.X || hd.Y != -fd.Y {
			t.Errorf("ball %d moved %+v, want inverse of %+v", i, hd, fd)
		}
		if h.Dir.X != -start[i].Dir.X || h.Dir.Y != -start[i].Dir.Y {
			t.Errorf("ball %d dir = %+v, want inverse of %+v", i, h.Dir, start[i].Dir)
		}
	}
}

func TestStepBounceReversesOncePerTick(t *testing.T) {
	balls := []Ball{
		ball(0, 100, 100, 5),
		ball(1, 103, 100, 5),
		ball(2, 100, 104, 5),
	}
	s := New(balls, roomy, Rules{Predicate: Circle, Policy: Bounce})
	s.Step()
	for _, b := range s.Balls() {
		if b.Dir != (Sign{X: -1, Y: -1}) {
			t.Errorf("ball %d dir = %+v, want a single reversal", b.ID, b.Dir)
		}
	}
}

func TestStepDisableIsTerminal(t *testing.T) {
	balls := []Ball{
		ball(0, 100, 100, 5),
		ball(1, 106, 100, 5),
		ball(2, 400, 400, 5),
	}
	s := New(balls, roomy, Rules{Predicate: AxisAligned, Policy: Disable})

	r := s.Step()
	if len(r.Collided) != 2 || r.Active != 1 {
		t.Fatalf("report = %+v, want two hits and one active", r)
	}

	frozen, _ := s.Ball(0)
	for i := 0; i < 50; i++ {
		r = s.Step()
		if len(r.Collided) != 0 {
			t.Fatalf("tick %d: disabled balls collided again: %v", r.Tick, r.Collided)
		}
	}
	got, _ := s.Ball(0)
	if got.Visible() || got.Pos != frozen.Pos {
		t.Fatalf("disabled ball changed: %+v -> %+v", frozen, got)
	}
	if s.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", s.Active())
	}
	if len(s.Balls()) != 3 {
		t.Fatalf("list size changed to %d", len(s.Balls()))
	}
}

func TestStepKeepsIDsStable(t *testing.T) {
	rng := NewRand(42)
	balls := Populate(rng, Bounds{MaxX: 200, MaxY: 150}, Spawn{
		Count: 30, MinRadius: 3, MaxRadius: 9, MinSpeed: 1, MaxSpeed: 3,
	})
	s := New(balls, Bounds{MaxX: 200, MaxY: 150}, Rules{Predicate: Circle, Policy: Disable})
	for i := 0; i < 500; i++ {
		s.Step()
	}
	for i, b := range s.Balls() {
		if b.ID != ID(i) {
			t.Fatalf("index %d holds id %d", i, b.ID)
		}
	}
}

func TestNewPanics(t *testing.T) {
	tests := []struct {
		name   string
		balls  []Ball
		bounds Bounds
	}{
		{"zero radius", []Ball{ball(0, 10, 10, 0)}, roomy},
		{"negative radius", []Ball{ball(0, 10, 10, -2)}, roomy},
		{"duplicate id", []Ball{ball(0, 10, 10, 2), ball(0, 50, 50, 2)}, roomy},
		{"bad direction", []Ball{{ID: 0, Radius: 2, Dir: Sign{X: 0, Y: 1}, Speed: 1}}, roomy},
		{"empty bounds", []Ball{ball(0, 10, 10, 2)}, Bounds{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("New did not panic")
				}
			}()
			New(tt.balls, tt.bounds, Rules{})
		})
	}
}

func TestPopulate(t *testing.T) {
	bounds := Bounds{MaxX: 640, MaxY: 480}
	sp := Spawn{Count: 25, MinRadius: 4, MaxRadius: 16, MinSpeed: 0.5, MaxSpeed: 4}

	a := Populate(NewRand(99), bounds, sp)
	b := Populate(NewRand(99), bounds, sp)
	if len(a) != sp.Count {
		t.Fatalf("len = %d, want %d", len(a), sp.Count)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different ball %d: %+v vs %+v", i, a[i], b[i])
		}
		x := a[i]
		if x.ID != ID(i) || !x.Visible() {
			t.Errorf("ball %d: id=%d state=%v", i, x.ID, x.State)
		}
		if x.Radius < sp.MinRadius || x.Radius > sp.MaxRadius {
			t.Errorf("ball %d radius %v out of range", i, x.Radius)
		}
		if x.Speed < sp.MinSpeed || x.Speed > sp.MaxSpeed {
			t.Errorf("ball %d speed %v out of range", i, x.Speed)
		}
		if x.Pos.X-x.Radius < 0 || x.Pos.X+x.Radius > bounds.MaxX ||
			x.Pos.Y-x.Radius < 0 || x.Pos.Y+x.Radius > bounds.MaxY {
			t.Errorf("ball %d not inside bounds: %+v r=%v", i, x.Pos, x.Radius)
		}
		if !unitSign(x.Dir.X) || !unitSign(x.Dir.Y) {
			t.Errorf("ball %d dir %+v", i, x.Dir)
		}
	}
}

func TestPopulateFixedSpeed(t *testing.T) {
	balls := Populate(NewRand(1), roomy, Spawn{Count: 5, MinRadius: 5, MaxRadius: 5, MinSpeed: 1, MaxSpeed: 1})
	for _, b := range balls {
		if b.Speed != 1 || b.Radius != 5 {
			t.Fatalf("pinned attributes drifted: %+v", b)
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		c := HSV(tt.h, 1, 1, 200)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 200 {
			t.Errorf("HSV(%v) = %+v", tt.h, c)
		}
	}
}
