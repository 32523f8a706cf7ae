package gui

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/fadan/gui/font"
)

var (
	testFontOnce sync.Once
	testFont     *font.Font
	testFontErr  error
)

// loadTestFont builds the goregular atlas once per test binary.
func loadTestFont(t *testing.T) *font.Font {
	t.Helper()
	testFontOnce.Do(func() {
		testFont, testFontErr = font.Build(goregular.TTF, font.DefaultConfig())
	})
	if testFontErr != nil {
		t.Fatalf("font.Build: %v", testFontErr)
	}
	return testFont
}

// harness drives a Context frame by frame with scripted mouse input.
type harness struct {
	t   *testing.T
	ctx *Context
	in  *InputState
}

var testDisplay = Vec2{1280, 720}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := NewContext(0)
	ctx.SetFont(loadTestFont(t))
	return &harness{t: t, ctx: ctx, in: NewInputState()}
}

// frame runs one frame with the current input and fails the test on a
// frame error.
func (h *harness) frame(build func(ctx *Context)) {
	h.t.Helper()
	h.ctx.BeginFrame(h.in, testDisplay, 1.0/60)
	if build != nil {
		build(h.ctx)
	}
	if err := h.ctx.EndFrame(); err != nil {
		h.t.Fatalf("frame %d: %v", h.ctx.FrameCount, err)
	}
	h.in.Reset()
}

func (h *harness) move(x, y float32) { h.in.SetMousePos(x, y) }

func (h *harness) press(x, y float32) {
	h.in.SetMousePos(x, y)
	h.in.SetMouseButton(MouseButtonLeft, true)
}

func (h *harness) release(x, y float32) {
	h.in.SetMousePos(x, y)
	h.in.SetMouseButton(MouseButtonLeft, false)
}

func (h *harness) panel(name string) *Panel {
	h.t.Helper()
	ph, ok := h.ctx.LookupPanel(name)
	if !ok {
		h.t.Fatalf("panel %q not found", name)
	}
	return h.ctx.PanelAt(ph)
}

func vecNear(a, b Vec2) bool {
	const eps = 0.01
	d := a.Sub(b)
	return d.X > -eps && d.X < eps && d.Y > -eps && d.Y < eps
}
