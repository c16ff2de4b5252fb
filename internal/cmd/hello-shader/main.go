// Command hello-shader renders an animated plasma into the whole
// terminal for five seconds or until a key is pressed.
package main

import (
	_ "embed"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	tuishader "github.com/pemattern/tui-shader"
	"github.com/pemattern/tui-shader/engine/wgpu_engine"
)

//go:embed plasma.wgsl
var plasmaWGSL string

func main() {
	state, err := tuishader.NewCanvasState(wgpu_engine.WGSLSource(plasmaWGSL))
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

	canvas := tuishader.NewShaderCanvas()
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)

	for {
		select {
		case ev := <-events:
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-deadline:
			return
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
