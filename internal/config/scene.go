package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Variant names a preset rule set.
type Variant string

const (
	// Single is one ball crossing the window and bouncing off the edges.
	Single Variant = "single"
	// Vanish is many balls that disappear on contact.
	Vanish Variant = "vanish"
	// Rebound is many balls that reverse on contact and move at random speeds.
	Rebound Variant = "rebound"
)

// Variants lists the presets in menu order.
var Variants = []Variant{Single, Vanish, Rebound}

// Scene holds everything that shapes a run's initial randomization.
type Scene struct {
	Variant   Variant `toml:"variant"`
	Seed      uint64  `toml:"seed"`
	Balls     int     `toml:"balls"`
	MinRadius float64 `toml:"min_radius"`
	MaxRadius float64 `toml:"max_radius"`
	MinSpeed  float64 `toml:"min_speed"`
	MaxSpeed  float64 `toml:"max_speed"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
}

// Default returns the preset for v. Unknown variants fall back to Rebound.
func Default(v Variant) Scene {
	s := Scene{
		Variant: v,
		Seed:    1,
		Width:   WindowWidth,
		Height:  WindowHeight,
	}
	switch v {
	case Single:
		s.Balls = 1
		s.MinRadius, s.MaxRadius = 10, 10
		s.MinSpeed, s.MaxSpeed = 1, 1
	case Vanish:
		s.Balls = 40
		s.MinRadius, s.MaxRadius = 4, 14
		s.MinSpeed, s.MaxSpeed = 1, 1
	default:
		s.Variant = Rebound
		s.Balls = 30
		s.MinRadius, s.MaxRadius = 6, 18
		s.MinSpeed, s.MaxSpeed = 0.5, 4
	}
	return s
}

// Validate reports the first problem with s.
func (s Scene) Validate() error {
	switch s.Variant {
	case Single, Vanish, Rebound:
	default:
		return errors.Errorf("unknown variant %q", s.Variant)
	}
	if s.Variant == Single && s.Balls != 1 {
		return errors.Errorf("variant %s needs exactly one ball, got %d", s.Variant, s.Balls)
	}
	if s.Balls < 1 {
		return errors.Errorf("balls must be positive, got %d", s.Balls)
	}
	if !(s.MinRadius > 0) || s.MaxRadius < s.MinRadius {
		return errors.Errorf("radius range [%v, %v] is invalid", s.MinRadius, s.MaxRadius)
	}
	if !(s.MinSpeed > 0) || s.MaxSpeed < s.MinSpeed {
		return errors.Errorf("speed range [%v, %v] is invalid", s.MinSpeed, s.MaxSpeed)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("viewport %dx%d is invalid", s.Width, s.Height)
	}
	if 2*s.MaxRadius > float64(min(s.Width, s.Height)) {
		return errors.Errorf("max radius %v does not fit a %dx%d viewport", s.MaxRadius, s.Width, s.Height)
	}
	return nil
}

// Load reads a scene file. Keys missing from the file keep the preset of the
// variant named in it.
func Load(path string) (Scene, error) {
	var head struct {
		Variant Variant `toml:"variant"`
	}
	if _, err := toml.DecodeFile(path, &head); err != nil {
		return Scene{}, errors.Wrapf(err, "read scene %s", filepath.Base(path))
	}

	s := Default(Variant(strings.ToLower(string(head.Variant))))
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scene{}, errors.Wrapf(err, "read scene %s", filepath.Base(path))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scene{}, errors.Errorf("scene %s: unknown key %q", filepath.Base(path), undecoded[0].String())
	}
	s.Variant = Variant(strings.ToLower(string(s.Variant)))
	if err := s.Validate(); err != nil {
		return Scene{}, errors.Wrapf(err, "scene %s", filepath.Base(path))
	}
	return s, nil
}

// Save writes s as TOML, creating parent directories.
func Save(path string, s Scene) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create scene directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create scene file")
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return errors.Wrap(err, "encode scene")
	}
	return errors.Wrap(f.Close(), "close scene file")
}
