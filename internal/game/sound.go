package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/bouncing-balls/internal/config"
)

// chime plays a short plucked tone whenever balls collide.
// All tones go through one mixer behind a Ctrl so muting is a flag flip.
type chime struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	ready bool
}

func newChime() *chime {
	mixer := &beep.Mixer{}
	return &chime{
		rate:  beep.SampleRate(config.SampleRate),
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
	}
}

func (c *chime) init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.ctrl)
	c.ready = true
	return nil
}

// play queues one tone; more hits in a tick raise the pitch.
func (c *chime) play(hits int) {
	if !c.ready || hits == 0 {
		return
	}
	freq := config.ChimeFrequency * (1 + 0.05*float64(min(hits, 12)))
	length := c.rate.N(config.ChimeMillis * time.Millisecond)
	tone := &effects.Volume{
		Streamer: pluck(c.rate, freq, length),
		Base:     2,
		Volume:   config.ChimeVolume,
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

func (c *chime) setMuted(muted bool) {
	if !c.ready {
		c.ctrl.Paused = muted
		return
	}
	speaker.Lock()
	c.ctrl.Paused = muted
	speaker.Unlock()
}

func (c *chime) muted() bool {
	return c.ctrl.Paused
}

// pluck is a sine of freq Hz lasting length samples with a linear fade-out.
func pluck(rate beep.SampleRate, freq float64, length int) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for n < len(samples) && pos < length {
			env := 1 - float64(pos)/float64(length)
			v := math.Sin(step*float64(pos)) * env
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, n > 0
	})
}
