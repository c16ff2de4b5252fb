package tuishader

import (
	"time"

	"github.com/pemattern/tui-shader/engine"
	"github.com/pemattern/tui-shader/engine/wgpu_engine"
)

// CanvasState owns the engine behind a canvas and the clock its shader
// runs on. One state backs one shader layer; several states may share
// the GPU session and, via SetStart, a common timeline.
type CanvasState[T any] struct {
	engine engine.Engine[T]
	start  time.Time
}

// NewCanvasState builds a state around a GPU engine for a shader
// without user data, on the process-wide session.
func NewCanvasState(shader wgpu_engine.WGSLShader) (*CanvasState[engine.NoUserData], error) {
	return NewCanvasStateWithEntryPoint(shader, "")
}

// NewCanvasStateWithEntryPoint is NewCanvasState for shaders declaring
// more than one @fragment function.
func NewCanvasStateWithEntryPoint(shader wgpu_engine.WGSLShader, entryPoint string) (*CanvasState[engine.NoUserData], error) {
	return NewCanvasStateWithUserData[engine.NoUserData](shader, entryPoint)
}

// NewCanvasStateWithUserData builds a state whose shader reads a
// user-data uniform of type T at binding 1. Pass an empty entry point to
// use the shader's sole fragment function.
func NewCanvasStateWithUserData[T any](shader wgpu_engine.WGSLShader, entryPoint string) (*CanvasState[T], error) {
	e, err := wgpu_engine.New[T](shader, wgpu_engine.Options{EntryPoint: entryPoint})
	if err != nil {
		return nil, err
	}
	return NewCanvasStateFor[T](e), nil
}

// NewCanvasStateFor wraps an existing engine. This is the entry point
// for the CPU fallback and for test doubles.
func NewCanvasStateFor[T any](e engine.Engine[T]) *CanvasState[T] {
	return &CanvasState[T]{
		engine: e,
		start:  time.Now(),
	}
}

// Start returns the instant the shader's time counts from.
func (s *CanvasState[T]) Start() time.Time {
	return s.start
}

// SetStart rebases the shader clock. Giving several states the same
// start keeps their animations in phase.
func (s *CanvasState[T]) SetStart(t time.Time) {
	s.start = t
}

// Elapsed is the shader time for a frame rendered now, in seconds.
func (s *CanvasState[T]) Elapsed() float32 {
	return float32(time.Since(s.start).Seconds())
}

// SetUserData stages user data for the next frame.
func (s *CanvasState[T]) SetUserData(data T) {
	s.engine.UpdateUserData(data)
}

// RenderPixels renders one frame at the given viewport.
func (s *CanvasState[T]) RenderPixels(width, height uint32) ([]engine.Pixel, error) {
	return s.engine.Render(engine.NewContext(s.Elapsed(), width, height))
}

// Close releases the underlying engine.
func (s *CanvasState[T]) Close() {
	s.engine.Close()
}
