// Package config holds the command line settings of the renderer.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/hherman1/worley/internal/worley"
)

// Seed value meaning "derive from the wall clock".
const DeriveSeed = -1

type Config struct {
	Width, Height int

	// Ticks per second of the update loop.
	TPS   int
	Seed  float64
	Scale float64
	Speed float64
	Mode  string

	// When set, render one frame on the CPU to this PNG file instead of opening a window.
	Snapshot     string
	SnapshotTime float64
}

func Default() Config {
	p := worley.DefaultParams()
	return Config{
		Width:  1024,
		Height: 1024,
		TPS:    60,
		Seed:   DeriveSeed,
		Scale:  p.Scale,
		Speed:  p.Speed,
		Mode:   p.Mode.String(),
	}
}

// Register binds the config fields to flags on fs, using the current values as defaults.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Update ticks per second.")
	fs.Float64Var(&c.Seed, "seed", c.Seed, "Noise seed in [0, 32767) (-1 = derive from the clock).")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "Cells across the shorter side of the screen.")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "Feature point orbit speed in radians per second.")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Shading mode: f1, edges or inverted.")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "Write a single frame to this PNG file and exit.")
	fs.Float64Var(&c.SnapshotTime, "snapshot-time", c.SnapshotTime, "Animation time in seconds of the snapshot frame.")
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid tps: %d", c.TPS))
	}
	if c.Seed != DeriveSeed && (math.IsNaN(c.Seed) || c.Seed < 0 || c.Seed >= 32767) {
		errs = append(errs, fmt.Errorf("seed out of range: %v", c.Seed))
	}
	if math.IsNaN(c.SnapshotTime) || math.IsInf(c.SnapshotTime, 0) || c.SnapshotTime < 0 {
		errs = append(errs, fmt.Errorf("invalid snapshot time: %v", c.SnapshotTime))
	}
	if _, err := c.params(0); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Params resolves the noise parameters, deriving the seed from now if requested.
func (c Config) Params(now time.Time) (worley.Params, error) {
	return c.params(worley.SeedFromTime(now))
}

func (c Config) params(derived float32) (worley.Params, error) {
	mode, err := worley.ParseMode(c.Mode)
	if err != nil {
		return worley.Params{}, err
	}
	p := worley.Params{Scale: c.Scale, Speed: c.Speed, Mode: mode, Seed: derived}
	if c.Seed != DeriveSeed {
		p.Seed = float32(c.Seed)
	}
	if err := p.Validate(); err != nil {
		return worley.Params{}, err
	}
	return p, nil
}
