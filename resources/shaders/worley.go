//go:build ignore

//kage:unit pixels

package main

const Tau = 6.283185307179586

// Uniforms. Keep names in sync with worley.Uniforms.
var Resolution vec2
var Seed float
var Time float
var Scale float
var Speed float
var Mode float

func hash2(c vec2, s float) vec2 {
	p := vec2(dot(c, vec2(127.1, 311.7)), dot(c, vec2(269.5, 183.3)))
	return fract(sin(p+vec2(s)) * 43758.5453)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := (dstPos.xy - imageDstOrigin()) / min(Resolution.x, Resolution.y) * Scale
	cell := floor(p)
	f := fract(p)

	f1 := 8.0
	f2 := 8.0
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			n := vec2(float(i), float(j))
			h := hash2(cell+n, Seed)
			pt := vec2(0.5) + 0.5*sin(vec2(Time*Speed)+Tau*h)
			d := length(n + pt - f)
			if d < f1 {
				f2 = f1
				f1 = d
			} else if d < f2 {
				f2 = d
			}
		}
	}

	v := f1
	if Mode > 1.5 {
		v = 1 - f1
	} else if Mode > 0.5 {
		v = f2 - f1
	}
	v = clamp(v, 0, 1)
	return vec4(v, v, v, 1)
}
