package tuishader

import (
	"testing"
	"time"

	"github.com/pemattern/tui-shader/engine"
)

// countingEngine records the contexts and user data it receives.
type countingEngine struct {
	contexts []engine.Context
	userData float32
	closed   bool
}

func (e *countingEngine) Render(ctx engine.Context) ([]engine.Pixel, error) {
	e.contexts = append(e.contexts, ctx)
	return make([]engine.Pixel, ctx.Width()*ctx.Height()), nil
}

func (e *countingEngine) UpdateUserData(data float32) { e.userData = data }

func (e *countingEngine) Close() { e.closed = true }

func TestRenderPixelsForwardsViewport(t *testing.T) {
	fake := &countingEngine{}
	state := NewCanvasStateFor[float32](fake)
	defer state.Close()

	pixels, err := state.RenderPixels(5, 3)
	if err != nil {
		t.Fatalf("RenderPixels: %v", err)
	}
	if len(pixels) != 15 {
		t.Errorf("got %d pixels, want 15", len(pixels))
	}
	if len(fake.contexts) != 1 {
		t.Fatalf("engine rendered %d times, want 1", len(fake.contexts))
	}
	ctx := fake.contexts[0]
	if ctx.Width() != 5 || ctx.Height() != 3 {
		t.Errorf("engine saw %dx%d, want 5x3", ctx.Width(), ctx.Height())
	}
	if ctx.Time < 0 {
		t.Errorf("elapsed time %v is negative", ctx.Time)
	}
}

func TestSetStartRebasesClock(t *testing.T) {
	state := NewCanvasStateFor[float32](&countingEngine{})
	defer state.Close()

	state.SetStart(time.Now().Add(-time.Hour))
	if got := state.Elapsed(); got < 3599 {
		t.Errorf("Elapsed() = %v after rebasing an hour back", got)
	}
	if !state.Start().Before(time.Now()) {
		t.Error("Start() not reflecting SetStart")
	}
}

func TestSharedStartKeepsLayersInPhase(t *testing.T) {
	a := NewCanvasStateFor[float32](&countingEngine{})
	b := NewCanvasStateFor[float32](&countingEngine{})
	defer a.Close()
	defer b.Close()

	b.SetStart(a.Start())
	if diff := a.Elapsed() - b.Elapsed(); diff < -0.01 || diff > 0.01 {
		t.Errorf("layer clocks differ by %v seconds", diff)
	}
}

func TestSetUserDataForwards(t *testing.T) {
	fake := &countingEngine{}
	state := NewCanvasStateFor[float32](fake)
	defer state.Close()

	state.SetUserData(0.75)
	if fake.userData != 0.75 {
		t.Errorf("engine user data = %v, want 0.75", fake.userData)
	}
}

func TestCloseClosesEngine(t *testing.T) {
	fake := &countingEngine{}
	NewCanvasStateFor[float32](fake).Close()
	if !fake.closed {
		t.Error("engine not closed")
	}
}
