// Package engine defines the contract between the terminal-facing widget
// layer and the backends that actually compute pixels. A backend produces
// one RGBA8 pixel per terminal cell for a given viewport and point in time;
// everything about characters, styles and terminal I/O lives above this
// package, everything about GPUs (or callback evaluation) below it.
package engine

import (
	"structs"
	"unsafe"
)

// Pixel is a single RGBA8 sample, one per terminal cell.
type Pixel [4]uint8

// R returns the red channel.
func (p Pixel) R() uint8 { return p[0] }

// G returns the green channel.
func (p Pixel) G() uint8 { return p[1] }

// B returns the blue channel.
func (p Pixel) B() uint8 { return p[2] }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return p[3] }

// Context carries the per-frame inputs a fragment shader reads at
// @group(0) @binding(0). Field order and padding are the binding layout;
// there is no name-based matching on the shader side.
//
// The shader-side declaration is
//
//	struct ShaderContext {
//	    time: f32,
//	    pad: f32,
//	    resolution: vec2<u32>,
//	};
type Context struct {
	_ structs.HostLayout

	Time       float32
	_          float32
	Resolution [2]uint32
}

// Uniform buffers are bound at 16-byte granularity; Context must fill
// exactly one such slot.
var _ [16]byte = [unsafe.Sizeof(Context{})]byte{}

func NewContext(time float32, width, height uint32) Context {
	return Context{
		Time:       time,
		Resolution: [2]uint32{width, height},
	}
}

func (c Context) Width() uint32 { return c.Resolution[0] }

func (c Context) Height() uint32 { return c.Resolution[1] }

// NoUserData is the user-data type for shaders that don't take any.
// Zero-sized uniform bindings are invalid, so it carries one unused word.
type NoUserData struct {
	_ structs.HostLayout
	_ float32
}

// Engine computes one frame's worth of pixels. Implementations must return
// exactly Width*Height pixels in row-major order, freshly allocated and
// owned by the caller, or an error and no pixels.
//
// The user-data type is fixed per engine instance; a shader built for one
// layout cannot be fed another. Render blocks until the frame's pixels are
// available.
type Engine[T any] interface {
	Render(ctx Context) ([]Pixel, error)
	UpdateUserData(data T)
	Close()
}
