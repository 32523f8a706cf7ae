package gui

import (
	"errors"
	"testing"
)

func TestButtonBehaviorClickVsDrag(t *testing.T) {
	h := newHarness(t)
	r := Rect{Min: Vec2{150, 150}, Max: Vec2{250, 200}}
	var state ButtonState
	build := func(ctx *Context) {
		ctx.BeginPanel("P", WithPos(100, 100), WithSize(300, 200))
		state = ctx.ButtonBehavior(r)
		ctx.EndPanel()
	}
	h.frame(build)

	// Press outside the rect, drag in, release inside: not a click.
	h.press(120, 250)
	h.frame(build)
	if state != ButtonInactive {
		t.Errorf("Expected inactive after a press outside, got %v", state)
	}
	h.move(200, 175)
	h.frame(build)
	if state != ButtonHover {
		t.Errorf("Expected hover while dragging over, got %v", state)
	}
	h.release(200, 175)
	h.frame(build)
	if state == ButtonLeftClick {
		t.Error("Expected no click when the press started outside")
	}

	// Press and release inside: a click.
	h.press(200, 175)
	h.frame(build)
	if state != ButtonActive {
		t.Errorf("Expected active while held, got %v", state)
	}
	h.release(200, 175)
	h.frame(build)
	if state != ButtonLeftClick {
		t.Errorf("Expected a click, got %v", state)
	}
}

func TestButtonBehaviorRequiresTopmostPanel(t *testing.T) {
	h := newHarness(t)
	r := Rect{Min: Vec2{150, 150}, Max: Vec2{250, 200}}
	var state ButtonState
	build := func(ctx *Context) {
		ctx.BeginPanel("Under", WithPos(100, 100), WithSize(300, 200))
		state = ctx.ButtonBehavior(r)
		ctx.EndPanel()
		buildPanel("Over", WithPos(140, 140), WithSize(200, 200))(ctx)
	}
	h.frame(build)
	h.move(200, 175)
	h.frame(build)
	if state != ButtonInactive {
		t.Errorf("Expected no hover under another panel, got %v", state)
	}
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)
	var clicked bool
	var btn Rect
	build := func(ctx *Context) {
		ctx.BeginPanel("P", WithPos(100, 100), WithSize(300, 200))
		at := ctx.CursorPos()
		clicked = ctx.Button("OK")
		size := ctx.CalcTextSize("OK").Add(ctx.Style().ButtonPadding.Mul(2))
		btn = RectFromPosSize(at, size)
		ctx.EndPanel()
	}
	h.frame(build)
	if btn.Min != (Vec2{104, 127}) {
		t.Errorf("Expected the first widget below the header at (104, 127), got %v", btn.Min)
	}

	c := btn.Center()
	h.press(c.X, c.Y)
	h.frame(build)
	if clicked {
		t.Error("Expected no click on press")
	}
	h.release(c.X, c.Y)
	h.frame(build)
	if !clicked {
		t.Error("Expected a click on release inside")
	}
}

func TestLayoutCursor(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.BeginPanel("P", WithPos(100, 100), WithSize(300, 200))
		start := ctx.CursorPos()
		ctx.Text("a")
		w := ctx.CalcTextSize("a").X
		if got := ctx.CursorPos(); got != (Vec2{start.X + w + ctx.Style().ItemSpacing, start.Y}) {
			t.Errorf("Expected the cursor after the text on the same line, got %v", got)
		}
		ctx.Newline()
		want := Vec2{start.X, start.Y + ctx.fontSize() + ctx.Style().ItemSpacing}
		if got := ctx.CursorPos(); got != want {
			t.Errorf("Expected the next line at %v, got %v", want, got)
		}
		ctx.EndPanel()
	})
}

func TestLayoutStackLimits(t *testing.T) {
	ctx := NewContext(0)
	ctx.BeginFrame(NewInputState(), testDisplay, 0)
	for i := 1; i < maxDrawContexts; i++ {
		if ctx.pushDrawContext() == nil {
			t.Fatalf("push %d: unexpected overflow", i)
		}
	}
	if ctx.pushDrawContext() != nil {
		t.Error("Expected push past the limit to fail")
	}
	if !errors.Is(ctx.Err(), ErrLayoutOverflow) {
		t.Errorf("Expected ErrLayoutOverflow, got %v", ctx.Err())
	}

	ctx.BeginFrame(NewInputState(), testDisplay, 0)
	ctx.popDrawContext()
	if !errors.Is(ctx.Err(), ErrLayoutUnderflow) {
		t.Errorf("Expected ErrLayoutUnderflow, got %v", ctx.Err())
	}
}

func TestPopDrawContextMovesParentCursor(t *testing.T) {
	ctx := NewContext(0)
	ctx.BeginFrame(NewInputState(), testDisplay, 0)
	child := ctx.pushDrawContext()
	child.max = Vec2{200, 150}
	ctx.popDrawContext()
	if got := ctx.dc().at.Y; got != 151 {
		t.Errorf("Expected parent cursor at child bottom + 1 = 151, got %v", got)
	}
}

func TestMenuAutoClose(t *testing.T) {
	h := newHarness(t)
	var open bool
	build := func(ctx *Context) {
		ctx.BeginMenuBar(24)
		open = ctx.BeginMenu("File")
		if open {
			ctx.MenuItem("Open")
			ctx.EndMenu()
		}
		ctx.EndMenuBar()
	}
	h.frame(build)
	if open {
		t.Fatal("Expected the menu closed initially")
	}

	h.press(5, 10)
	h.frame(build)
	h.release(5, 10)
	h.frame(build)
	if !open {
		t.Fatal("Expected a click on the bar button to open the menu")
	}
	h.frame(build)
	if !open {
		t.Fatal("Expected the menu to stay open")
	}

	h.press(600, 400)
	h.frame(build)
	if open {
		t.Error("Expected a press outside to close the menu")
	}
	h.release(600, 400)
	h.frame(build)
	if open {
		t.Error("Expected the menu to stay closed")
	}
}

func TestMenuItemClosesMenu(t *testing.T) {
	h := newHarness(t)
	var open, chosen bool
	build := func(ctx *Context) {
		chosen = false
		ctx.BeginMenuBar(24)
		open = ctx.BeginMenu("File")
		if open {
			chosen = ctx.MenuItem("Open")
			ctx.EndMenu()
		}
		ctx.MenuBarButton("Help")
		ctx.EndMenuBar()
	}
	h.frame(build)
	h.press(5, 10)
	h.frame(build)
	h.release(5, 10)
	h.frame(build)
	h.frame(build)

	drop := h.panel(menuNamePrefix + "File")
	if drop.Pos != (Vec2{0, 24}) {
		t.Errorf("Expected the dropdown below the bar button, got %v", drop.Pos)
	}
	item := drop.Pos.Add(Vec2{10, 10})
	h.press(item.X, item.Y)
	h.frame(build)
	if !open || chosen {
		t.Fatalf("Expected the menu open and nothing chosen on press, open=%v chosen=%v", open, chosen)
	}
	h.release(item.X, item.Y)
	h.frame(build)
	if !chosen {
		t.Fatal("Expected the item to be chosen on release")
	}
	h.frame(build)
	if open {
		t.Error("Expected choosing an item to close the menu")
	}
}

func TestMenuBarCursorAfterDropdown(t *testing.T) {
	h := newHarness(t)
	var before, after Vec2
	build := func(ctx *Context) {
		ctx.BeginMenuBar(24)
		if ctx.BeginMenu("File") {
			before = ctx.menuStack[len(ctx.menuStack)-1]
			ctx.MenuItem("Open")
			ctx.EndMenu()
			after = ctx.CursorPos()
		}
		ctx.EndMenuBar()
	}
	h.frame(build)
	h.press(5, 10)
	h.frame(build)
	h.release(5, 10)
	h.frame(build)
	if after != before || after.Y != 0 {
		t.Errorf("Expected the bar cursor restored to %v, got %v", before, after)
	}
}

func TestTextf(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.BeginPanel("P")
		before := len(ctx.DrawList.VtxBuffer)
		ctx.Textf("%d", 42)
		if n := len(ctx.DrawList.VtxBuffer) - before; n != 8 {
			t.Errorf("Expected 2 glyph quads for \"42\", got %d vertices", n)
		}
		ctx.EndPanel()
	})

	h.ctx.BeginFrame(h.in, testDisplay, 0)
	h.ctx.Textf("%q", 1)
	if err := h.ctx.EndFrame(); err == nil {
		t.Error("Expected a bad verb to surface as a frame error")
	}
}

func TestStyleOverrides(t *testing.T) {
	ctx := NewContext(0)
	base := ctx.Color(ColText)

	ctx.PushStyleColor(ColText, ColorRed)
	ctx.PushStyleColor(ColText, ColorGreen)
	ctx.PushStyleVar(VarItemSpacing, 10)
	ctx.PushStyleVarVec2(VarButtonPadding, Vec2{1, 2})
	if ctx.Color(ColText) != ColorGreen || ctx.Style().ItemSpacing != 10 || ctx.Style().ButtonPadding != (Vec2{1, 2}) {
		t.Fatal("Expected overrides to apply")
	}

	ctx.PopStyleColor(1)
	if ctx.Color(ColText) != ColorRed {
		t.Errorf("Expected the previous override back, got %#x", ctx.Color(ColText))
	}
	ctx.PopStyleColor(1)
	ctx.PopStyleVar(1)
	ctx.PopStyleVarVec2(1)
	if ctx.Color(ColText) != base || ctx.Style() != DefaultStyle() {
		t.Error("Expected the base style restored")
	}
	if ctx.Err() != nil {
		t.Errorf("Expected balanced pops, got %v", ctx.Err())
	}

	ctx.PopStyleVar(1)
	if !errors.Is(ctx.Err(), ErrUnbalancedStyles) {
		t.Errorf("Expected ErrUnbalancedStyles, got %v", ctx.Err())
	}
}

func TestUnpoppedStyleIsFrameError(t *testing.T) {
	ctx := NewContext(0)
	ctx.BeginFrame(NewInputState(), testDisplay, 0)
	ctx.PushStyleVar(VarContentPadding, 20)
	if err := ctx.EndFrame(); !errors.Is(err, ErrUnbalancedStyles) {
		t.Errorf("Expected ErrUnbalancedStyles, got %v", err)
	}
	if ctx.Style().ContentPadding != DefaultStyle().ContentPadding {
		t.Error("Expected EndFrame to restore the style")
	}
}

func TestGetIDScoping(t *testing.T) {
	h := newHarness(t)
	var inA, inB, pushed, popped ID
	h.frame(func(ctx *Context) {
		ctx.BeginPanel("A")
		inA = ctx.GetID("btn")
		ctx.PushID("row")
		pushed = ctx.GetID("btn")
		ctx.PopID()
		popped = ctx.GetID("btn")
		ctx.EndPanel()
		ctx.BeginPanel("B")
		inB = ctx.GetID("btn")
		ctx.EndPanel()
	})
	if inA == inB {
		t.Error("Expected the same label in different panels to differ")
	}
	if pushed == inA {
		t.Error("Expected PushID to change the scope")
	}
	if popped != inA {
		t.Error("Expected PopID to restore the scope")
	}
}

func TestTextTruncatedLabel(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.BeginPanel("P")
		ctx.Text("caf\xC3")
		ctx.Button("ok\xE2\x82")
		if got, want := ctx.CalcTextSize("caf\xC3"), ctx.CalcTextSize("caf"); got != want {
			t.Errorf("Expected %v for a label cut mid-sequence, got %v", want, got)
		}
		ctx.EndPanel()
	})
}
