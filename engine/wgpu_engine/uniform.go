package wgpu_engine

import (
	"unsafe"

	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/pemattern/tui-shader/engine"
)

// uniforms holds the two uniform buffers every pipeline binds: the frame
// context at binding 0 and the user data at binding 1. Both buffers are
// allocated once and overwritten in place each frame; uniform buffers are
// tiny and WriteBuffer is cheaper than reallocation.
type uniforms struct {
	ctx       *wgpu.Buffer
	user      *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

func newUniforms(dev *wgpu.Device, layout *wgpu.BindGroupLayout, userSize uint64) *uniforms {
	u := &uniforms{}
	u.ctx = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "frame context",
		Size:  uint64(unsafe.Sizeof(engine.Context{})),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	u.user = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "user data",
		Size:  userSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	// A zero binding size is rejected by validation; the all-ones
	// sentinel selects the whole buffer.
	u.bindGroup = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "shader uniforms",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: u.ctx, Size: ^uint64(0)},
			{Binding: 1, Buffer: u.user, Size: ^uint64(0)},
		},
	})
	return u
}

func (u *uniforms) writeContext(queue *wgpu.Queue, ctx engine.Context) {
	queue.WriteBuffer(u.ctx, 0, safeish.AsBytes(&ctx))
}

func (u *uniforms) writeUser(queue *wgpu.Queue, data []byte) {
	queue.WriteBuffer(u.user, 0, data)
}

func (u *uniforms) release() {
	if u.bindGroup != nil {
		u.bindGroup.Release()
		u.user.Release()
		u.ctx.Release()
		u.bindGroup = nil
		u.user = nil
		u.ctx = nil
	}
}
