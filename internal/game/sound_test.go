package game

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func TestPluckLength(t *testing.T) {
	s := pluck(beep.SampleRate(44100), 660, 1000)
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
				t.Fatalf("bad sample %v", smp)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != 1000 {
		t.Fatalf("streamed %d samples, want 1000", total)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Fatalf("drained pluck streamed n=%d ok=%v", n, ok)
	}
}

func TestChimeSilentUntilInit(t *testing.T) {
	c := newChime()
	c.play(3)
	if c.mixer.Len() != 0 {
		t.Fatalf("uninitialized chime queued %d tones", c.mixer.Len())
	}
	c.setMuted(true)
	if !c.muted() {
		t.Fatal("setMuted(true) not applied")
	}
}
