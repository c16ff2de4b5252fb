// Package gfx provides small pixel helpers for turning shader output
// into terminal cell content.
package gfx

import (
	"github.com/pemattern/tui-shader/engine"
	"github.com/pemattern/tui-shader/jmath"
)

// Luminance returns the perceived brightness of a pixel in [0, 1] using
// the Rec. 709 coefficients. Alpha is ignored.
func Luminance(p engine.Pixel) float32 {
	r := jmath.UnormF32(p.R())
	g := jmath.UnormF32(p.G())
	b := jmath.UnormF32(p.B())
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Premultiply scales the color channels by alpha.
func Premultiply(p engine.Pixel) engine.Pixel {
	a := jmath.UnormF32(p.A())
	return engine.Pixel{
		jmath.Unorm8(jmath.UnormF32(p.R()) * a),
		jmath.Unorm8(jmath.UnormF32(p.G()) * a),
		jmath.Unorm8(jmath.UnormF32(p.B()) * a),
		p.A(),
	}
}

// Unpremultiply reverses Premultiply. Fully transparent pixels come back
// black.
func Unpremultiply(p engine.Pixel) engine.Pixel {
	if p.A() == 0 {
		return engine.Pixel{0, 0, 0, 0}
	}
	a := jmath.UnormF32(p.A())
	return engine.Pixel{
		jmath.Unorm8(jmath.UnormF32(p.R()) / a),
		jmath.Unorm8(jmath.UnormF32(p.G()) / a),
		jmath.Unorm8(jmath.UnormF32(p.B()) / a),
		p.A(),
	}
}

// Ramp maps a brightness level to a rune from a fixed palette, darkest
// first.
type Ramp []rune

// DefaultRamp is a ten-step ASCII brightness ramp.
var DefaultRamp = Ramp(" .:-=+*#%@")

// Rune returns the ramp entry for a level in [0, 1]. Levels outside the
// range clamp to the ends.
func (r Ramp) Rune(level float32) rune {
	if len(r) == 0 {
		return ' '
	}
	idx := int(level * float32(len(r)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(r) {
		idx = len(r) - 1
	}
	return r[idx]
}
