package gui

const (
	menuBarName    = "##MenuBar"
	menuNamePrefix = "##Menu/"

	menuUnderline  float32 = 2
	defaultMenuW   float32 = 120
	menuBarMinSize float32 = 1
)

// BeginMenuBar starts a bar pinned to the top of the display. Buttons and
// menus placed until EndMenuBar are laid out left to right.
func (ctx *Context) BeginMenuBar(height float32) bool {
	if !ctx.inFrame {
		ctx.setErr(ErrFrameNotStarted)
		return false
	}
	height = maxf(height, menuBarMinSize)
	r := Rect{Max: Vec2{ctx.DisplaySize.X, height}}
	h := ctx.overlayPanel(menuBarName, r, PanelNoPadding)
	ctx.beginPanel(h)

	ctx.emit(ctx.DrawList.AddRectFilled(r.Min, r.Max, ctx.Color(ColMenuBar)))
	ctx.emit(ctx.DrawList.AddRectFilled(Vec2{r.Min.X, r.Max.Y - menuUnderline}, r.Max, ctx.Color(ColMenuBarUnderline)))
	return true
}

// EndMenuBar closes the bar opened by BeginMenuBar.
func (ctx *Context) EndMenuBar() {
	ctx.EndPanel()
}

// menuBarButton places a bar button and draws it. The hover underline
// marks the button under the mouse.
func (ctx *Context) menuBarButton(label string, open bool) (Rect, ButtonState) {
	dc := ctx.dc()
	pad := ctx.style.MenuButtonPadding
	ts := ctx.CalcTextSize(label)
	r := RectFromPosSize(dc.at, Vec2{ts.X + 2*pad, dc.max.Y - dc.at.Y})
	dc.at.X = r.Max.X
	dc.lineHeight = maxf(dc.lineHeight, r.Height())
	dc.layoutMax = dc.layoutMax.Max(r.Max)

	state := ctx.ButtonBehavior(r)
	if open || state != ButtonInactive {
		ctx.emit(ctx.DrawList.AddRectFilled(Vec2{r.Min.X, r.Max.Y - menuUnderline}, r.Max, ctx.Color(ColMenuHighlight)))
	}
	ctx.addText(label, Vec2{r.Min.X + pad, r.Min.Y + (r.Height()-ts.Y)/2}, ctx.Color(ColMenuText))
	return r, state
}

// MenuBarButton places a plain button on the menu bar and returns true if
// clicked.
func (ctx *Context) MenuBarButton(label string) bool {
	_, state := ctx.menuBarButton(label, false)
	return state == ButtonLeftClick
}

// BeginMenu places a bar button that toggles a dropdown. It returns true
// while the dropdown is open; call EndMenu only in that case.
//
// Usage:
//
//	if ctx.BeginMenu("File") {
//	    if ctx.MenuItem("Quit") {
//	        quit = true
//	    }
//	    ctx.EndMenu()
//	}
func (ctx *Context) BeginMenu(label string) bool {
	id := ctx.GetID(label)
	r, state := ctx.menuBarButton(label, ctx.openMenu == id)
	if state == ButtonLeftClick {
		if ctx.openMenu == id {
			ctx.openMenu = 0
			guiLogger.Debug("menu closed", "menu", label)
		} else {
			ctx.openMenu = id
			guiLogger.Debug("menu opened", "menu", label)
		}
	}
	if ctx.openMenu != id {
		return false
	}

	name := menuNamePrefix + label
	drop := RectFromPosSize(Vec2{r.Min.X, r.Max.Y}, ctx.menuSize(name))

	in := ctx.Input
	if in.MouseClicked(MouseButtonLeft) {
		click := in.ClickPos(MouseButtonLeft)
		if !r.Contains(click) && !drop.Contains(click) {
			ctx.openMenu = 0
			guiLogger.Debug("menu closed", "menu", label, "reason", "click outside")
			return false
		}
	}

	ctx.menuStack = append(ctx.menuStack, ctx.dc().at)
	h := ctx.overlayPanel(name, drop, 0)
	ctx.beginPanel(h)
	ctx.emit(ctx.DrawList.AddRectFilled(drop.Min, drop.Max, ctx.Color(ColDropdownBackground)))
	return true
}

// menuSize sizes a dropdown from the content it held last frame.
func (ctx *Context) menuSize(name string) Vec2 {
	pad := ctx.style.ContentPadding
	if h, ok := ctx.byName[name]; ok {
		p := &ctx.panels[h]
		if p.LayoutMax.X > p.Pos.X && p.LayoutMax.Y > p.Pos.Y {
			return p.LayoutMax.Sub(p.Pos).Add(Vec2{pad, pad})
		}
	}
	return Vec2{defaultMenuW, ctx.fontSize() + 2*ctx.style.ButtonPadding.Y + 2*pad}
}

// EndMenu closes the dropdown opened by BeginMenu and puts the bar cursor
// back after its button.
func (ctx *Context) EndMenu() {
	ctx.EndPanel()
	if n := len(ctx.menuStack); n > 0 {
		ctx.dc().at = ctx.menuStack[n-1]
		ctx.menuStack = ctx.menuStack[:n-1]
	}
}

// MenuItem places a full-width row in the open dropdown. Choosing it
// closes the menu.
func (ctx *Context) MenuItem(label string) bool {
	dc := ctx.dc()
	pad := ctx.style.ButtonPadding
	ts := ctx.CalcTextSize(label)
	natural := ts.Add(pad.Mul(2))
	r := RectFromPosSize(dc.at, Vec2{maxf(natural.X, dc.max.X-dc.at.X), natural.Y})
	dc.layoutMax = dc.layoutMax.Max(dc.at.Add(natural))
	dc.at = Vec2{dc.min.X, r.Max.Y}
	dc.lineHeight = 0

	state := ctx.ButtonBehavior(r)
	if state != ButtonInactive {
		ctx.emit(ctx.DrawList.AddRectFilled(r.Min, r.Max, ctx.Color(ColMenuHighlight)))
	}
	ctx.addText(label, r.Min.Add(pad), ctx.Color(ColMenuText))

	if state == ButtonLeftClick {
		ctx.openMenu = 0
		guiLogger.Debug("menu item chosen", "item", label)
		return true
	}
	return false
}
