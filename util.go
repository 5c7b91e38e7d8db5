package main

import (
	"fmt"

	"github.com/hherman1/worley/internal/worley"
)

// One line status for the debug overlay.
func hudLine(p worley.Params, t float32, paused bool) string {
	s := fmt.Sprintf("seed %.0f  scale %.1f  mode %v  t %.2fs", p.Seed, p.Scale, p.Mode, t)
	if paused {
		s += "  (paused)"
	}
	return s
}
