// Command demo shows the moving parts together: a user-data uniform
// adjusted from the keyboard, a custom style rule, a CPU fallback for
// machines without a GPU, and frame timing from the profiler.
//
// Keys: + / - adjust the threshold, any other key quits.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	tuishader "github.com/pemattern/tui-shader"
	"github.com/pemattern/tui-shader/engine"
	"github.com/pemattern/tui-shader/engine/cpu_engine"
	"github.com/pemattern/tui-shader/engine/wgpu_engine"
	"github.com/pemattern/tui-shader/jmath"
	"github.com/pemattern/tui-shader/profiler"
)

//go:embed threshold.wgsl
var thresholdWGSL string

type userData struct {
	Threshold float32
}

func newState(useCPU bool, rec *profiler.Recorder) (*tuishader.CanvasState[userData], error) {
	if useCPU {
		return tuishader.NewCanvasStateFor[userData](cpu_engine.NewWithUserData(cpuShader)), nil
	}
	e, err := wgpu_engine.New[userData](wgpu_engine.WGSLSource(thresholdWGSL), wgpu_engine.Options{
		Profiler: rec,
	})
	if err != nil {
		return nil, err
	}
	return tuishader.NewCanvasStateFor[userData](e), nil
}

// cpuShader mirrors threshold.wgsl for the -cpu path.
func cpuShader(ctx engine.Context, x, y uint32, data userData) engine.Pixel {
	u := float64(x) / float64(ctx.Width())
	v := float64(y) / float64(ctx.Height())
	t := float64(ctx.Time)
	wave := 0.5 + 0.5*math.Sin(u*12.0+t*2.0)*math.Cos(v*9.0-t)
	if float32(wave) > data.Threshold {
		return engine.Pixel{
			jmath.Unorm8(float32(wave)),
			jmath.Unorm8(0.2),
			jmath.Unorm8(float32(1.0 - wave)),
			255,
		}
	}
	return engine.Pixel{13, 13, 26, 255}
}

func main() {
	useCPU := flag.Bool("cpu", false, "evaluate the shader on the CPU instead of the GPU")
	flag.Parse()

	rec := profiler.NewRecorder()
	state, err := newState(*useCPU, rec)
	if err != nil {
		log.Fatal(err)
	}
	defer state.Close()

	threshold := float32(0.5)
	state.SetUserData(userData{Threshold: threshold})

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

	canvas := tuishader.NewShaderCanvas().StyleRule(func(sample tuishader.Sample) tcell.Style {
		style := tuishader.ColorBg(sample)
		if sample.V() < 0.02 {
			// Keep the top row readable for the overlay.
			return style.Foreground(tcell.ColorWhite)
		}
		return style
	})

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Rune() {
				case '+':
					threshold = min(threshold+0.05, 1)
				case '-':
					threshold = max(threshold-0.05, 0)
				default:
					return
				}
				state.SetUserData(userData{Threshold: threshold})
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			width, height := screen.Size()
			if err := canvas.Draw(screen, tuishader.Rect{Width: width, Height: height}, state); err != nil {
				screen.Fini()
				log.Fatal(err)
			}
			drawOverlay(screen, rec, threshold)
			screen.Show()
		}
	}
}

func drawOverlay(screen tcell.Screen, rec *profiler.Recorder, threshold float32) {
	frame := rec.Mean("render")
	var fps float64
	if frame > 0 {
		fps = float64(time.Second) / float64(frame)
	}
	text := fmt.Sprintf(" threshold %.2f  frame %s  %.0f fps ", threshold, frame.Round(10*time.Microsecond), fps)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range text {
		screen.SetContent(i, 0, r, nil, style)
	}
}
