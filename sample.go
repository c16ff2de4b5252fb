package tuishader

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pemattern/tui-shader/engine"
)

// Sample is one rendered pixel together with its cell position, handed
// to character and style rules. It is constructed per cell during Draw
// and not retained.
type Sample struct {
	pixel engine.Pixel
	x, y  uint32
	u, v  float32
}

func newSample(pixel engine.Pixel, x, y, width, height uint32) Sample {
	return Sample{
		pixel: pixel,
		x:     x,
		y:     y,
		u:     float32(x) / float32(width),
		v:     float32(y) / float32(height),
	}
}

// Pixel returns the raw RGBA value.
func (s Sample) Pixel() engine.Pixel { return s.pixel }

// R is the red channel.
func (s Sample) R() uint8 { return s.pixel.R() }

// G is the green channel.
func (s Sample) G() uint8 { return s.pixel.G() }

// B is the blue channel.
func (s Sample) B() uint8 { return s.pixel.B() }

// A is the alpha channel.
func (s Sample) A() uint8 { return s.pixel.A() }

// X is the cell column within the drawn region.
func (s Sample) X() uint32 { return s.x }

// Y is the cell row within the drawn region, top row first.
func (s Sample) Y() uint32 { return s.y }

// U is the normalized column in [0, 1).
func (s Sample) U() float32 { return s.u }

// V is the normalized row in [0, 1).
func (s Sample) V() float32 { return s.v }

// Color converts the sample's RGB channels to a terminal color. Alpha
// is already applied by the render target's blending.
func (s Sample) Color() tcell.Color {
	return tcell.NewRGBColor(int32(s.R()), int32(s.G()), int32(s.B()))
}
