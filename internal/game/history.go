package game

import "github.com/iburimskiy/bouncing-balls/internal/sim"

// sample is what the history strip keeps per tick.
type sample struct {
	collisions int
	active     int
}

// history records the last N tick reports into a ring buffer so the renderer can
// draw a strip of recent collision activity.
type history struct {
	buffer    []sample
	nextIndex int
	filled    int
}

func newHistory(ringSize int) *history {
	return &history{buffer: make([]sample, ringSize)}
}

func (h *history) record(r sim.Report) {
	h.buffer[h.nextIndex] = sample{collisions: len(r.Collided), active: r.Active}
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.filled < len(h.buffer) {
		h.filled++
	}
}

func (h *history) reset() {
	clear(h.buffer)
	h.nextIndex = 0
	h.filled = 0
}

// snapshot returns up to the last n samples, oldest first.
func (h *history) snapshot(n int) []sample {
	if n > h.filled {
		n = h.filled
	}
	out := make([]sample, n)
	// Walk backwards from nextIndex - 1
	idx := h.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
		out[i] = h.buffer[idx]
		idx--
	}
	return out
}

// peak is the largest collision count currently held.
func (h *history) peak() int {
	p := 0
	for _, s := range h.snapshot(h.filled) {
		p = max(p, s.collisions)
	}
	return p
}
