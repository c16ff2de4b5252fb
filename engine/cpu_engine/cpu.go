// Package cpu_engine evaluates a per-pixel Go callback instead of a GPU
// fragment shader. It exists for environments without a usable adapter
// and for tests that need deterministic pixels, and implements the same
// contract as the GPU engine, including the output ordering and the
// viewport validation.
package cpu_engine

import (
	"github.com/pemattern/tui-shader/engine"
)

// Callback computes the color of one pixel. It receives the frame
// context, the pixel's cell coordinates with y growing downward, and the
// current user data.
type Callback[T any] func(ctx engine.Context, x, y uint32, data T) engine.Pixel

// Engine runs a Callback over every cell of the viewport.
type Engine[T any] struct {
	callback Callback[T]
	userData T
}

var _ engine.Engine[engine.NoUserData] = (*Engine[engine.NoUserData])(nil)

// New builds an engine around a callback that ignores user data.
func New(callback func(ctx engine.Context, x, y uint32) engine.Pixel) *Engine[engine.NoUserData] {
	return NewWithUserData(func(ctx engine.Context, x, y uint32, _ engine.NoUserData) engine.Pixel {
		return callback(ctx, x, y)
	})
}

// NewWithUserData builds an engine whose callback sees the value passed
// to UpdateUserData.
func NewWithUserData[T any](callback Callback[T]) *Engine[T] {
	return &Engine[T]{callback: callback}
}

// UpdateUserData stores data for subsequent Render calls.
func (e *Engine[T]) UpdateUserData(data T) {
	e.userData = data
}

// Render evaluates the callback for every cell, row-major, top row
// first.
func (e *Engine[T]) Render(ctx engine.Context) ([]engine.Pixel, error) {
	width, height := ctx.Width(), ctx.Height()
	if width == 0 || height == 0 {
		return nil, &engine.ViewportError{Width: width, Height: height}
	}
	pixels := make([]engine.Pixel, 0, width*height)
	for y := range height {
		for x := range width {
			pixels = append(pixels, e.callback(ctx, x, y, e.userData))
		}
	}
	return pixels, nil
}

// Close is a no-op; the engine holds no resources.
func (e *Engine[T]) Close() {}
