// Package worley evaluates the animated cellular (Worley) noise field on the
// CPU. The math mirrors resources/shaders/worley.go so that headless
// snapshots and tests see the same pattern the GPU draws.
package worley

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects which distance feature is turned into a gray level.
type Mode int

const (
	// Distance to the nearest feature point.
	F1 Mode = iota
	// Second nearest minus nearest. Bright along cell borders.
	Edges
	// 1 - F1.
	Inverted
)

var modeNames = [...]string{"f1", "edges", "inverted"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next cycles through the modes.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(modeNames))
}

// ParseMode maps a mode name back to its value.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// The seed is kept below this bound so it stays exact as a float32 uniform.
const seedModulus = math.MaxInt16

// SeedFromTime derives a seed from the wall clock: milliseconds since the
// Unix epoch, modulo 32767.
func SeedFromTime(t time.Time) float32 {
	ms := t.UnixMilli()
	if ms < 0 {
		ms = -ms
	}
	return float32(ms % seedModulus)
}

type Params struct {
	// Cells across the shorter screen side.
	Scale float64
	// Angular speed of the feature point orbits, in radians per second.
	Speed float64
	Seed  float32
	Mode  Mode
}

func DefaultParams() Params {
	return Params{Scale: 8, Speed: 1, Mode: F1}
}

func (p Params) Validate() error {
	switch {
	case !(p.Scale > 0) || math.IsInf(p.Scale, 0):
		return fmt.Errorf("scale must be positive, got %v", p.Scale)
	case p.Speed < 0 || math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0):
		return fmt.Errorf("speed must be non-negative, got %v", p.Speed)
	case math.IsNaN(float64(p.Seed)) || p.Seed < 0 || p.Seed >= seedModulus:
		return fmt.Errorf("seed must be in [0, %d), got %v", seedModulus, p.Seed)
	case p.Mode < F1 || p.Mode > Inverted:
		return fmt.Errorf("invalid mode %v", p.Mode)
	}
	return nil
}

// Smallest and largest cell counts reachable through Zoom.
const (
	MinScale = 1
	MaxScale = 256
)

// Zoom multiplies the cell count by f, keeping it in [MinScale, MaxScale].
// A non-positive or NaN factor leaves the params unchanged.
func (p Params) Zoom(f float64) Params {
	if !(f > 0) || math.IsInf(f, 0) {
		return p
	}
	p.Scale = min(max(p.Scale*f, MinScale), MaxScale)
	return p
}

// Hash2 returns a pseudo random point in [0,1)² for an integer cell.
func Hash2(cell mgl64.Vec2, seed float32) mgl64.Vec2 {
	s := float64(seed)
	px := cell.Dot(mgl64.Vec2{127.1, 311.7})
	py := cell.Dot(mgl64.Vec2{269.5, 183.3})
	return mgl64.Vec2{fract(math.Sin(px+s) * 43758.5453), fract(math.Sin(py+s) * 43758.5453)}
}

// FeaturePoint is the position, within its cell, of the cell's feature point
// at time t. Each point orbits inside the unit square.
func FeaturePoint(cell mgl64.Vec2, seed float32, t, speed float64) mgl64.Vec2 {
	h := Hash2(cell, seed)
	return mgl64.Vec2{
		0.5 + 0.5*math.Sin(t*speed+2*math.Pi*h.X()),
		0.5 + 0.5*math.Sin(t*speed+2*math.Pi*h.Y()),
	}
}

// Distances returns the nearest (f1) and second nearest (f2) feature point
// distances for a point in cell space.
func Distances(p mgl64.Vec2, params Params, t float64) (f1, f2 float64) {
	cell := mgl64.Vec2{math.Floor(p.X()), math.Floor(p.Y())}
	f := p.Sub(cell)
	f1, f2 = 8, 8
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			n := mgl64.Vec2{float64(i), float64(j)}
			pt := FeaturePoint(cell.Add(n), params.Seed, t, params.Speed)
			d := n.Add(pt).Sub(f).Len()
			if d < f1 {
				f1, f2 = d, f1
			} else if d < f2 {
				f2 = d
			}
		}
	}
	return f1, f2
}

// Value is the gray level in [0,1] of pixel (x, y) on a w×h screen.
func Value(x, y float64, w, h int, params Params, t float64) float64 {
	side := float64(min(w, h))
	p := mgl64.Vec2{x, y}.Mul(params.Scale / side)
	f1, f2 := Distances(p, params, t)
	var v float64
	switch params.Mode {
	case Edges:
		v = f2 - f1
	case Inverted:
		v = 1 - f1
	default:
		v = f1
	}
	return mgl64.Clamp(v, 0, 1)
}

// Uniforms builds the uniform map consumed by the fragment shader.
func Uniforms(params Params, w, h int, t float32) map[string]any {
	return map[string]any{
		"Resolution": []float32{float32(w), float32(h)},
		"Seed":       params.Seed,
		"Time":       t,
		"Scale":      float32(params.Scale),
		"Speed":      float32(params.Speed),
		"Mode":       float32(params.Mode),
	}
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
