package main

import (
	"testing"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/sim"
)

func TestTermSceneValid(t *testing.T) {
	for _, v := range config.Variants {
		s := termScene(v, 80, 23)
		if err := s.Validate(); err != nil {
			t.Errorf("termScene(%s): %v", v, err)
		}
	}
}

func TestCells(t *testing.T) {
	tiny := sim.Ball{Pos: sim.Vec{X: 4.2, Y: 7.9}, Radius: 0.3}
	if got := cells(tiny); len(got) != 1 || got[0] != [2]int{4, 7} {
		t.Fatalf("cells(tiny) = %v", got)
	}

	big := sim.Ball{Pos: sim.Vec{X: 10.5, Y: 10.5}, Radius: 1.5}
	got := cells(big)
	// Center plus the 8 neighbours, whose centers lie within 1.5.
	if len(got) != 9 {
		t.Fatalf("cells(big) covers %d cells: %v", len(got), got)
	}
	for _, c := range got {
		if c[0] < 9 || c[0] > 11 || c[1] < 9 || c[1] > 11 {
			t.Fatalf("cell %v outside the ball", c)
		}
	}
}
