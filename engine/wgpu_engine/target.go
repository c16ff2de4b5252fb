package wgpu_engine

import (
	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/pemattern/tui-shader/engine"
	"github.com/pemattern/tui-shader/jmath"
)

// rowAlignment is the required alignment of BytesPerRow in
// CopyTextureToBuffer, per the WebGPU spec.
const rowAlignment = 256

// paddedRowBytes is the byte stride of one texture row in the staging
// buffer, rounded up to the copy alignment.
func paddedRowBytes(width uint32) uint32 {
	return jmath.AlignUp(width*4, rowAlignment)
}

// rowPadding is the number of pixels of alignment slack at the end of
// each staging buffer row.
func rowPadding(width uint32) uint32 {
	return (paddedRowBytes(width) - width*4) / 4
}

// frameTarget is the off-screen color attachment and the staging buffer
// readback copies into. Both are sized for exactly one frame at the
// current viewport.
type frameTarget struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	staging *wgpu.Buffer
	width   uint32
	height  uint32
}

// stale reports whether the target must be rebuilt for the requested
// viewport. The comparison is on exact cell dimensions, not on the padded
// byte stride: two widths can share a stride yet need different textures.
func (t *frameTarget) stale(width, height uint32) bool {
	return t.width != width || t.height != height
}

// ensure makes the target match the requested viewport, rebuilding the
// texture and staging buffer when the dimensions changed, and reports
// whether it rebuilt. A zero height doubles as the never-allocated
// state, so the first call always builds.
func (t *frameTarget) ensure(dev *wgpu.Device, width, height uint32) bool {
	if !t.stale(width, height) {
		return false
	}
	t.release()

	t.texture = dev.CreateTexture(&wgpu.TextureDescriptor{
		Label: "frame target",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        targetFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	t.view = t.texture.CreateView(nil)
	t.staging = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "frame readback",
		Size:  uint64(paddedRowBytes(width)) * uint64(height),
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	t.width = width
	t.height = height
	return true
}

// copyToStaging records the texture-to-buffer copy that makes the frame
// host visible.
func (t *frameTarget) copyToStaging(enc *wgpu.CommandEncoder) {
	enc.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture: t.texture,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: t.staging,
			Layout: wgpu.TextureDataLayout{
				BytesPerRow:  paddedRowBytes(t.width),
				RowsPerImage: t.height,
			},
		},
		&wgpu.Extent3D{
			Width:              t.width,
			Height:             t.height,
			DepthOrArrayLayers: 1,
		},
	)
}

// sizeBytes is the staging buffer size for the current viewport,
// padding included.
func (t *frameTarget) sizeBytes() uint64 {
	return uint64(paddedRowBytes(t.width)) * uint64(t.height)
}

func (t *frameTarget) release() {
	if t.texture != nil {
		t.staging.Release()
		t.view.Release()
		t.texture.Release()
		t.texture = nil
		t.view = nil
		t.staging = nil
	}
	t.width = 0
	t.height = 0
}

// depadPixels copies the mapped staging contents into a dense pixel
// array, dropping the alignment slack at the end of each row. The result
// is freshly allocated; the mapped range is only valid until Unmap.
func depadPixels(mapped []byte, width, height uint32) []engine.Pixel {
	src := safeish.SliceCast[[]engine.Pixel](mapped)
	stride := paddedRowBytes(width) / 4
	out := make([]engine.Pixel, 0, width*height)
	for y := uint32(0); y < height; y++ {
		row := src[y*stride:]
		out = append(out, row[:width]...)
	}
	return out
}
