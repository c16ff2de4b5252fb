//go:build !nogpu

package wgpu_engine

import (
	"testing"

	"github.com/pemattern/tui-shader/engine"
)

func requireSession(t *testing.T) {
	t.Helper()
	if _, err := DefaultSession(); err != nil {
		t.Skipf("no GPU available: %v", err)
	}
}

func renderOne[T any](t *testing.T, e *Engine[T], width, height uint32) []engine.Pixel {
	t.Helper()
	pixels, err := e.Render(engine.NewContext(0, width, height))
	if err != nil {
		t.Fatalf("Render(%dx%d): %v", width, height, err)
	}
	if len(pixels) != int(width*height) {
		t.Fatalf("Render(%dx%d) returned %d pixels, want %d", width, height, len(pixels), width*height)
	}
	return pixels
}

func assertSolid(t *testing.T, pixels []engine.Pixel, want engine.Pixel) {
	t.Helper()
	for i, p := range pixels {
		if p != want {
			t.Fatalf("pixel %d = %v, want %v", i, p, want)
		}
	}
}

func TestDefaultShaderRendersMagenta(t *testing.T) {
	requireSession(t)
	e, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	defer e.Close()

	assertSolid(t, renderOne(t, e, 64, 64), engine.Pixel{255, 0, 255, 255})
}

func TestEntryPointSelection(t *testing.T) {
	requireSession(t)
	tests := []struct {
		entryPoint string
		want       engine.Pixel
	}{
		{"red", engine.Pixel{255, 0, 0, 255}},
		{"green", engine.Pixel{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.entryPoint, func(t *testing.T) {
			e, err := New[engine.NoUserData](WGSLSource(testFragmentWGSL), Options{EntryPoint: tt.entryPoint})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer e.Close()
			assertSolid(t, renderOne(t, e, 16, 16), tt.want)
		})
	}
}

func TestResize(t *testing.T) {
	requireSession(t)
	e, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	defer e.Close()

	want := engine.Pixel{255, 0, 255, 255}
	assertSolid(t, renderOne(t, e, 8, 8), want)
	// Grow, shrink, and change width within the same padded stride.
	assertSolid(t, renderOne(t, e, 80, 24), want)
	assertSolid(t, renderOne(t, e, 4, 2), want)
	assertSolid(t, renderOne(t, e, 37, 5), want)
	assertSolid(t, renderOne(t, e, 38, 5), want)
}

func TestUnalignedWidthReadback(t *testing.T) {
	requireSession(t)
	e, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	defer e.Close()

	// 37 cells is 148 bytes per row, padded to 256 in the staging
	// buffer. Every returned pixel must still be shader output.
	assertSolid(t, renderOne(t, e, 37, 11), engine.Pixel{255, 0, 255, 255})
}

func TestUserDataReachesShader(t *testing.T) {
	requireSession(t)
	const src = `
struct UserData {
    color: vec4<f32>,
};

@group(0) @binding(1)
var<uniform> user: UserData;

@fragment
fn main() -> @location(0) vec4<f32> {
    return user.color;
}
`
	type colorData struct {
		Color [4]float32
	}
	e, err := New[colorData](WGSLSource(src), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	e.UpdateUserData(colorData{Color: [4]float32{0, 0, 1, 1}})
	assertSolid(t, renderOne(t, e, 8, 8), engine.Pixel{0, 0, 255, 255})

	e.UpdateUserData(colorData{Color: [4]float32{1, 1, 0, 1}})
	assertSolid(t, renderOne(t, e, 8, 8), engine.Pixel{255, 255, 0, 255})
}

func TestAlphaBlendsOverBlack(t *testing.T) {
	requireSession(t)
	const src = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 0.5);
}
`
	e, err := New[engine.NoUserData](WGSLSource(src), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	pixels := renderOne(t, e, 4, 4)
	for i, p := range pixels {
		// Half-transparent white over the opaque black clear color.
		// Allow one step of rounding slack per channel.
		for c := range 3 {
			if p[c] < 127 || p[c] > 128 {
				t.Fatalf("pixel %d channel %d = %d, want ~127", i, c, p[c])
			}
		}
	}
}
