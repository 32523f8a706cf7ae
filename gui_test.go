package gui_test

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/fadan/gui"
	"github.com/fadan/gui/font"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

func buildFont(tb testing.TB) *font.Font {
	tb.Helper()
	f, err := font.Build(goregular.TTF, font.DefaultConfig())
	if err != nil {
		tb.Fatalf("font.Build: %v", err)
	}
	return f
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()), gui.WithFont(buildFont(t)))

	input := gui.NewInputState()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("Expected non-nil context")
	}
	if ctx.FontTextureID != 1 {
		t.Errorf("Expected the renderer's font texture, got %d", ctx.FontTextureID)
	}

	ctx.Panel("Hello")(func() {
		ctx.Text("Hello World")
		ctx.Textf("frame %d", ctx.FrameCount)
	})

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("Expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastCmds == 0 {
		t.Error("Expected draw commands for the panel")
	}
	if ui.Style() != gui.DarkStyle() {
		t.Error("Expected the configured style")
	}
}

func TestGUIEndSkipsRenderOnError(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithFont(buildFont(t)))

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.BeginPanel("Open")

	err := ui.End()
	if !errors.Is(err, gui.ErrUnbalancedPanel) {
		t.Fatalf("Expected ErrUnbalancedPanel, got %v", err)
	}
	if renderer.renderCalls != 0 {
		t.Errorf("Expected no render for a failed frame, got %d", renderer.renderCalls)
	}

	// The next frame starts clean.
	ctx = ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("Open")(func() {})
	if err := ui.End(); err != nil {
		t.Fatalf("Expected a clean frame, got %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("Expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestGUIWithoutFont(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Text("needs a font")
	if err := ui.End(); !errors.Is(err, gui.ErrNoFont) {
		t.Errorf("Expected ErrNoFont, got %v", err)
	}
}

func TestGUIDrawListCapacity(t *testing.T) {
	ui := gui.New(&mockRenderer{}, gui.WithDrawListCapacity(256))
	if got := ui.Context().DrawList.MaxVertices(); got != 256 {
		t.Errorf("Expected capacity 256, got %d", got)
	}
}

func TestGUIResize(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	ui.Resize(640, 480)
	if renderer.width != 640 || renderer.height != 480 {
		t.Errorf("Expected renderer resized to 640x480, got %dx%d", renderer.width, renderer.height)
	}
}

func TestApplyAndGetCustomOption(t *testing.T) {
	accent := gui.NewOptKey[uint32]("accent", gui.ColorGray)
	if got := gui.ApplyAndGet(nil, accent); got != gui.ColorGray {
		t.Errorf("Expected the default %#x, got %#x", gui.ColorGray, got)
	}
	opts := []gui.Option{gui.WithWidth(40), gui.WithOpt(accent, gui.ColorRed)}
	if got := gui.ApplyAndGet(opts, accent); got != gui.ColorRed {
		t.Errorf("Expected %#x, got %#x", gui.ColorRed, got)
	}
	if got := gui.ApplyAndGet(opts, gui.OptWidth); got != 40 {
		t.Errorf("Expected width 40, got %v", got)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := gui.NewDrawList(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dl.AddRectFilled(gui.V2(float32(i%100), 0), gui.V2(50, 50), gui.ColorWhite); err != nil {
			dl.Clear()
		}
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	f := buildFont(b)
	dl := gui.NewDrawList(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dl.AddText(f, "Hello World", gui.V2(0, float32(i%100*10)), f.Size, gui.ColorWhite); err != nil {
			dl.Clear()
		}
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithFont(buildFont(b)))
	input := gui.NewInputState()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		if ctx.BeginMenuBar(24) {
			if ctx.BeginMenu("File") {
				ctx.MenuItem("Quit")
				ctx.EndMenu()
			}
			ctx.EndMenuBar()
		}
		ctx.Panel("Menu")(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Newline()
				ctx.Button("Item")
			}
		})

		_ = ui.End()
	}
}
