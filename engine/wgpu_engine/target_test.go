package wgpu_engine

import (
	"testing"

	"github.com/pemattern/tui-shader/engine"
)

func TestPaddedRowBytes(t *testing.T) {
	tests := []struct {
		width   uint32
		padded  uint32
		padding uint32
	}{
		{1, 256, 63},
		{37, 256, 27},
		{63, 256, 1},
		{64, 256, 0},
		{65, 512, 63},
		{128, 512, 0},
		{640, 2560, 0},
	}
	for _, tt := range tests {
		if got := paddedRowBytes(tt.width); got != tt.padded {
			t.Errorf("paddedRowBytes(%d) = %d, want %d", tt.width, got, tt.padded)
		}
		if got := rowPadding(tt.width); got != tt.padding {
			t.Errorf("rowPadding(%d) = %d, want %d", tt.width, got, tt.padding)
		}
	}
}

func TestDepadPixels(t *testing.T) {
	const width, height = 2, 3
	stride := paddedRowBytes(width)
	mapped := make([]byte, stride*height)
	for y := range uint32(height) {
		for x := range uint32(width) {
			// Encode the coordinate in the red and green channels so a
			// misplaced row or column is visible in the failure.
			off := y*stride + x*4
			mapped[off+0] = byte(x)
			mapped[off+1] = byte(y)
			mapped[off+3] = 255
		}
		// Poison the padding so accidental inclusion fails loudly.
		for i := uint32(width * 4); i < stride; i++ {
			mapped[y*stride+i] = 0xAA
		}
	}

	pixels := depadPixels(mapped, width, height)
	if len(pixels) != width*height {
		t.Fatalf("got %d pixels, want %d", len(pixels), width*height)
	}
	for y := range uint32(height) {
		for x := range uint32(width) {
			want := engine.Pixel{byte(x), byte(y), 0, 255}
			if got := pixels[y*width+x]; got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFrameTargetStale(t *testing.T) {
	var target frameTarget
	if !target.stale(8, 8) {
		t.Error("fresh target should be stale for any viewport")
	}
	target.width, target.height = 37, 8
	if target.stale(37, 8) {
		t.Error("matching viewport reported stale")
	}
	// 37 and 38 share a padded stride of 256 bytes; the target must
	// still be rebuilt.
	if !target.stale(38, 8) {
		t.Error("width change within the same stride not detected")
	}
	if !target.stale(37, 9) {
		t.Error("height change not detected")
	}
}
