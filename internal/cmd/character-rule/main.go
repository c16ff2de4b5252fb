// Command character-rule renders a pulsing ring as ASCII art: each
// cell's character is picked from a brightness ramp and colored via the
// foreground only, leaving the terminal background untouched.
package main

import (
	_ "embed"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	tuishader "github.com/pemattern/tui-shader"
	"github.com/pemattern/tui-shader/engine/wgpu_engine"
	"github.com/pemattern/tui-shader/gfx"
)

//go:embed pulse.wgsl
var pulseWGSL string

func main() {
	state, err := tuishader.NewCanvasState(wgpu_engine.WGSLSource(pulseWGSL))
	if err != nil {
		log.Fatal(err)
	}
	defer state.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	canvas := tuishader.NewShaderCanvas().
		CharacterRule(func(sample tuishader.Sample) rune {
			return gfx.DefaultRamp.Rune(gfx.Luminance(sample.Pixel()))
		}).
		StyleRule(tuishader.ColorFg)

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			width, height := screen.Size()
			if err := canvas.Draw(screen, tuishader.Rect{Width: width, Height: height}, state); err != nil {
				screen.Fini()
				log.Fatal(err)
			}
			screen.Show()
		}
	}
}
