// Package wgpu_engine renders fragment shaders on the GPU and reads the
// result back into host memory, one frame at a time.
//
// The pipeline is fixed: a full-viewport triangle generated in the vertex
// stage, the user's fragment shader, an RGBA8 off-screen target, and a
// texture-to-buffer copy into a mappable staging buffer. The only
// per-frame variation is the uniform contents and, on resize, the target
// dimensions.
package wgpu_engine

import (
	"fmt"
	"reflect"

	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/pemattern/tui-shader/engine"
	"github.com/pemattern/tui-shader/jmath"
	"github.com/pemattern/tui-shader/profiler"
)

// Options configures engine construction. The zero value selects the
// shader's sole fragment entry point (or "main"), the process-wide
// session, and no profiling.
type Options struct {
	// EntryPoint names the @fragment function to bind. Empty selects the
	// only fragment function in the shader, or "main" if there are
	// several.
	EntryPoint string
	// Session overrides the process-wide default session.
	Session *Session
	// Profiler receives per-frame render and readback spans.
	Profiler profiler.ProfilerGroup
}

// Engine executes one fragment shader against a resizable off-screen
// target. The type parameter is the user data uniform written to
// binding 1; use engine.NoUserData for shaders that don't declare one.
//
// An Engine is not safe for concurrent use.
type Engine[T any] struct {
	session   *Session
	pipeline  *wgpu.RenderPipeline
	uniforms  *uniforms
	target    frameTarget
	prof      profiler.ProfilerGroup
	userData  T
	userDirty bool
}

var _ engine.Engine[engine.NoUserData] = (*Engine[engine.NoUserData])(nil)

// New validates the shader, resolves its entry point and builds the
// render pipeline. The user data type T must be a fixed-size value type
// without pointers, matching the shader's binding 1 uniform layout.
func New[T any](shader WGSLShader, opts Options) (*Engine[T], error) {
	userSize, err := uniformSize[T]()
	if err != nil {
		return nil, err
	}
	if err := shader.validate(); err != nil {
		return nil, err
	}
	entryPoint, err := shader.resolveEntryPoint(opts.EntryPoint)
	if err != nil {
		return nil, err
	}

	session := opts.Session
	if session == nil {
		session, err = DefaultSession()
		if err != nil {
			return nil, err
		}
	}

	pipeline, layout := buildPipeline(session.Device, shader, entryPoint)
	uniforms := newUniforms(session.Device, layout, userSize)
	layout.Release()

	return &Engine[T]{
		session:  session,
		pipeline: pipeline,
		uniforms: uniforms,
		prof:     opts.Profiler,
		// The first UpdateUserData call, or the zero value, must reach
		// the GPU before the first draw.
		userDirty: true,
	}, nil
}

// NewDefault builds an engine running the built-in magenta shader on the
// default session. It exists so callers can smoke-test the render and
// readback path without writing any WGSL.
func NewDefault() (*Engine[engine.NoUserData], error) {
	return New[engine.NoUserData](DefaultShader(), Options{})
}

// uniformSize returns T's size rounded up to uniform buffer alignment,
// rejecting types that can't be copied byte-for-byte into a GPU buffer.
func uniformSize[T any]() (uint64, error) {
	typ := reflect.TypeFor[T]()
	if err := checkPOD(typ); err != nil {
		return 0, err
	}
	size := uint64(typ.Size())
	if size == 0 {
		return 0, fmt.Errorf("%w: %s has no size, use engine.NoUserData for shaders without user data", engine.ErrUserData, typ)
	}
	return jmath.AlignUp(size, 16), nil
}

func checkPOD(typ reflect.Type) error {
	switch typ.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return checkPOD(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if err := checkPOD(typ.Field(i).Type); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s is not a fixed-layout value type", engine.ErrUserData, typ)
	}
}

// UpdateUserData stages new user data. The value reaches the GPU on the
// next Render call; calling this repeatedly between frames costs nothing
// beyond the copy.
func (e *Engine[T]) UpdateUserData(data T) {
	e.userData = data
	e.userDirty = true
}

// Render draws one frame at the viewport carried by ctx and returns its
// pixels in row-major order, top row first, with the row padding required
// by the GPU copy already stripped. The returned slice is freshly
// allocated and owned by the caller.
//
// Render blocks until the frame's staging buffer is mapped. It submits
// nothing for an empty viewport.
func (e *Engine[T]) Render(ctx engine.Context) ([]engine.Pixel, error) {
	width, height := ctx.Width(), ctx.Height()
	if width == 0 || height == 0 {
		return nil, &engine.ViewportError{Width: width, Height: height}
	}
	pgroup := profiler.Start(e.prof, "render")
	defer profiler.End(pgroup)

	dev, queue := e.session.Device, e.session.Queue
	e.target.ensure(dev, width, height)
	e.uniforms.writeContext(queue, ctx)
	if e.userDirty {
		e.uniforms.writeUser(queue, safeish.AsBytes(&e.userData))
		e.userDirty = false
	}

	encoder := dev.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame"})
	defer encoder.Release()
	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       e.target.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 255},
			},
		},
	})
	renderPass.SetPipeline(e.pipeline)
	renderPass.SetBindGroup(0, e.uniforms.bindGroup, nil)
	renderPass.Draw(3, 1, 0, 0)
	renderPass.End()
	renderPass.Release()
	e.target.copyToStaging(encoder)
	cmd := encoder.Finish(nil)
	defer cmd.Release()
	queue.Submit(cmd)

	mgroup := profiler.Start(pgroup, "map")
	size := int(e.target.sizeBytes())
	// Map only issues the asynchronous request; the callback that feeds
	// the channel runs during device maintenance, so the device must be
	// polled until the mapping resolves.
	ch := e.target.staging.Map(dev, wgpu.MapModeRead, 0, size)
	var mapErr error
	for done := false; !done; {
		dev.Poll(true)
		select {
		case mapErr = <-ch:
			done = true
		default:
		}
	}
	profiler.End(mgroup)
	if mapErr != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrReadback, mapErr)
	}
	pixels := depadPixels(e.target.staging.ReadOnlyMappedRange(0, size), width, height)
	e.target.staging.Unmap()
	return pixels, nil
}

// Close releases the engine's GPU objects. The session stays alive; it
// may be shared with other engines.
func (e *Engine[T]) Close() {
	e.target.release()
	e.uniforms.release()
	if e.pipeline != nil {
		e.pipeline.Release()
		e.pipeline = nil
	}
}
