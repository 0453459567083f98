package sim

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

// Spawn bounds the random attributes of a freshly populated run.
// Equal min and max pin the value.
type Spawn struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	MinSpeed  float64
	MaxSpeed  float64
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Populate creates sp.Count balls with IDs 0..Count-1, placed fully inside bounds.
// All randomness comes from rng.
func Populate(rng *rand.Rand, bounds Bounds, sp Spawn) []Ball {
	if sp.Count < 0 || !(sp.MinRadius > 0) || sp.MaxRadius < sp.MinRadius ||
		!(sp.MinSpeed > 0) || sp.MaxSpeed < sp.MinSpeed {
		panic(fmt.Sprintf("sim: invalid spawn %+v", sp))
	}

	balls := make([]Ball, sp.Count)
	for i := range balls {
		r := uniform(rng, sp.MinRadius, sp.MaxRadius)
		balls[i] = Ball{
			ID: ID(i),
			Pos: Vec{
				X: uniform(rng, r, math.Max(r, bounds.MaxX-r)),
				Y: uniform(rng, r, math.Max(r, bounds.MaxY-r)),
			},
			Radius: r,
			Dir:    Sign{X: randomSign(rng), Y: randomSign(rng)},
			Speed:  uniform(rng, sp.MinSpeed, sp.MaxSpeed),
			Color:  randomColor(rng),
		}
	}
	return balls
}

// uniform samples [lo, hi). It returns lo when the range is empty.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// chance returns true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

func randomSign(rng *rand.Rand) float64 {
	if chance(rng, 0.5) {
		return 1
	}
	return -1
}

func randomColor(rng *rand.Rand) color.RGBA {
	return HSV(uniform(rng, 0, 360), uniform(rng, 0.6, 1), uniform(rng, 0.8, 1), 255)
}
