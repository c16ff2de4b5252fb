package gfx

import (
	"testing"

	"github.com/pemattern/tui-shader/engine"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		pixel engine.Pixel
		want  float32
	}{
		{engine.Pixel{0, 0, 0, 255}, 0},
		{engine.Pixel{255, 255, 255, 255}, 1},
		{engine.Pixel{0, 255, 0, 255}, 0.7152},
	}
	for _, tt := range tests {
		if got := Luminance(tt.pixel); got < tt.want-0.001 || got > tt.want+0.001 {
			t.Errorf("Luminance(%v) = %v, want %v", tt.pixel, got, tt.want)
		}
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	p := engine.Pixel{200, 100, 50, 128}
	back := Unpremultiply(Premultiply(p))
	for c := range 3 {
		diff := int(back[c]) - int(p[c])
		if diff < -2 || diff > 2 {
			t.Errorf("channel %d: %d -> %d after round trip", c, p[c], back[c])
		}
	}
	if back.A() != p.A() {
		t.Errorf("alpha changed: %d -> %d", p.A(), back.A())
	}
}

func TestUnpremultiplyTransparent(t *testing.T) {
	if got := Unpremultiply(engine.Pixel{77, 77, 77, 0}); got != (engine.Pixel{0, 0, 0, 0}) {
		t.Errorf("got %v, want zero pixel", got)
	}
}

func TestRampClamps(t *testing.T) {
	r := DefaultRamp
	if got := r.Rune(-1); got != ' ' {
		t.Errorf("Rune(-1) = %q, want space", got)
	}
	if got := r.Rune(0); got != ' ' {
		t.Errorf("Rune(0) = %q, want space", got)
	}
	if got := r.Rune(1); got != '@' {
		t.Errorf("Rune(1) = %q, want '@'", got)
	}
	if got := r.Rune(2); got != '@' {
		t.Errorf("Rune(2) = %q, want '@'", got)
	}
	if got := Ramp(nil).Rune(0.5); got != ' ' {
		t.Errorf("empty ramp = %q, want space", got)
	}
}
