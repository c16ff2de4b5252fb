package tuishader

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pemattern/tui-shader/engine"
)

// Rect is a region of the screen in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// PixelSource produces one frame's pixels for a viewport, row-major with
// the top row first and exactly width*height entries. CanvasState is the
// usual implementation; anything deterministic works for tests.
type PixelSource interface {
	RenderPixels(width, height uint32) ([]engine.Pixel, error)
}

// ShaderCanvas draws a PixelSource into a screen region, one pixel per
// cell. The zero value paints spaces with the sampled color as
// background; rules override either half of that.
type ShaderCanvas struct {
	characterRule CharacterRule
	styleRule     StyleRule
}

// NewShaderCanvas returns a canvas with the default rules.
func NewShaderCanvas() *ShaderCanvas {
	return &ShaderCanvas{}
}

// CharacterRule sets the character rule and returns the canvas for
// chaining.
func (c *ShaderCanvas) CharacterRule(rule CharacterRule) *ShaderCanvas {
	c.characterRule = rule
	return c
}

// StyleRule sets the style rule and returns the canvas for chaining.
func (c *ShaderCanvas) StyleRule(rule StyleRule) *ShaderCanvas {
	c.styleRule = rule
	return c
}

// Draw renders one frame at the area's size and writes every cell of the
// area to the screen. Each rule sees each cell's sample exactly once. An
// empty area is a no-op, letting callers pass a collapsed layout region
// without guarding.
func (c *ShaderCanvas) Draw(screen tcell.Screen, area Rect, source PixelSource) error {
	if area.Width <= 0 || area.Height <= 0 {
		return nil
	}
	width, height := uint32(area.Width), uint32(area.Height)
	pixels, err := source.RenderPixels(width, height)
	if err != nil {
		return err
	}
	if len(pixels) != int(width*height) {
		return fmt.Errorf("pixel source returned %d pixels for a %dx%d area, want %d",
			len(pixels), width, height, width*height)
	}

	for y := range height {
		for x := range width {
			sample := newSample(pixels[y*width+x], x, y, width, height)
			ch := ' '
			if c.characterRule != nil {
				ch = c.characterRule(sample)
			}
			style := ColorBg(sample)
			if c.styleRule != nil {
				style = c.styleRule(sample)
			}
			screen.SetContent(area.X+int(x), area.Y+int(y), ch, nil, style)
		}
	}
	return nil
}
