// bounce-term runs the bouncing balls in a terminal, one cell per unit.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/run"
	"github.com/iburimskiy/bouncing-balls/internal/sim"
)

const frameTime = time.Second / 30

type term struct {
	screen tcell.Screen
	scene  config.Scene
	sim    *sim.Simulation
	last   sim.Report
	paused bool
}

// termScene scales a preset down to terminal cells.
func termScene(v config.Variant, width, height int) config.Scene {
	s := config.Default(v)
	s.Width, s.Height = width, height
	s.MinRadius, s.MaxRadius = 0.5, 1.5
	s.MinSpeed, s.MaxSpeed = 0.5, 0.5
	switch s.Variant {
	case config.Single:
		s.MinRadius, s.MaxRadius = 1, 1
	case config.Vanish:
		s.Balls = 16
	case config.Rebound:
		s.Balls = 12
		s.MinSpeed, s.MaxSpeed = 0.2, 0.8
	}
	return s
}

func newTerm(v config.Variant) (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	t := &term{screen: screen}
	if err := t.restart(termScene(v, w, h-1)); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func (t *term) restart(s config.Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	t.scene = s
	t.sim = run.New(s)
	t.last = sim.Report{Active: t.sim.Active()}
	return nil
}

// handleInput returns false when the user asked to quit.
func (t *term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.paused = !t.paused
		case 'r':
			s := t.scene
			s.Seed++
			t.restart(s)
		case '1', '2', '3':
			v := config.Variants[ev.Rune()-'1']
			s := termScene(v, t.scene.Width, t.scene.Height)
			s.Seed = t.scene.Seed
			t.restart(s)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := t.screen.Size()
		if w != t.scene.Width || h-1 != t.scene.Height {
			s := termScene(t.scene.Variant, w, h-1)
			s.Seed = t.scene.Seed
			if err := t.restart(s); err != nil {
				log.Printf("resize: %v", err)
			}
		}
	}
	return true
}

func (t *term) draw() {
	t.screen.Clear()
	for _, b := range t.sim.Balls() {
		if !b.Visible() {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(b.Color.R), int32(b.Color.G), int32(b.Color.B)))
		for _, c := range cells(b) {
			t.screen.SetContent(c[0], c[1], '●', nil, style)
		}
	}

	status := fmt.Sprintf(" %s | tick %d | active %d/%d | hits %d | space pause  r reseed  1/2/3 variant  q quit",
		t.scene.Variant, t.last.Tick, t.last.Active, len(t.sim.Balls()), len(t.last.Collided))
	if t.paused {
		status += " | paused"
	}
	bar := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(status) {
		t.screen.SetContent(x, t.scene.Height, r, nil, bar)
	}
	t.screen.Show()
}

// cells lists the terminal cells a ball covers. A ball always covers its center cell.
func cells(b sim.Ball) [][2]int {
	cx, cy := int(math.Floor(b.Pos.X)), int(math.Floor(b.Pos.Y))
	out := [][2]int{{cx, cy}}
	reach := int(math.Ceil(b.Radius))
	for y := cy - reach; y <= cy+reach; y++ {
		for x := cx - reach; x <= cx+reach; x++ {
			if x == cx && y == cy {
				continue
			}
			dx := float64(x) + 0.5 - b.Pos.X
			dy := float64(y) + 0.5 - b.Pos.Y
			if dx*dx+dy*dy <= b.Radius*b.Radius {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func (t *term) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !t.paused {
				t.last = t.sim.Step()
			}
			t.draw()
		}
	}
}

func main() {
	v := config.Rebound
	if len(os.Args) > 1 {
		v = config.Variant(os.Args[1])
	}

	t, err := newTerm(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	t.run()
	t.screen.Fini()
}
