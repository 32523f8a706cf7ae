package gui

// maxDrawContexts caps the nesting of draw contexts, the root included.
const maxDrawContexts = 32

// drawContext is a layout region. Widgets are placed at the cursor and
// grow layoutMax and the current line height.
type drawContext struct {
	min, max   Vec2
	at         Vec2
	lineHeight float32
	layoutMax  Vec2
}

// resetDrawContexts leaves only the root context covering the display.
func (ctx *Context) resetDrawContexts() {
	ctx.numContexts = 1
	ctx.contexts[0] = drawContext{max: ctx.DisplaySize}
}

func (ctx *Context) dc() *drawContext {
	return &ctx.contexts[ctx.numContexts-1]
}

// pushDrawContext opens a region that starts as a copy of its parent.
// It returns nil and records ErrLayoutOverflow when the stack is full.
func (ctx *Context) pushDrawContext() *drawContext {
	if ctx.numContexts >= maxDrawContexts {
		ctx.setErr(ErrLayoutOverflow)
		return nil
	}
	parent := ctx.contexts[ctx.numContexts-1]
	ctx.numContexts++
	dc := &ctx.contexts[ctx.numContexts-1]
	*dc = drawContext{min: parent.min, max: parent.max, at: parent.at, layoutMax: parent.at}
	return dc
}

// popDrawContext closes the current region. The parent cursor moves below
// the child's bottom edge.
func (ctx *Context) popDrawContext() {
	if ctx.numContexts <= 1 {
		ctx.setErr(ErrLayoutUnderflow)
		return
	}
	child := ctx.contexts[ctx.numContexts-1]
	ctx.numContexts--
	ctx.dc().at.Y = child.max.Y + 1
}

// placeItem reserves size at the cursor on the current line.
func (ctx *Context) placeItem(size Vec2) Rect {
	dc := ctx.dc()
	r := RectFromPosSize(dc.at, size)
	dc.at.X += size.X + ctx.style.ItemSpacing
	dc.lineHeight = maxf(dc.lineHeight, size.Y)
	dc.layoutMax = dc.layoutMax.Max(r.Max)
	return r
}

// Newline moves the cursor to the start of the next line.
func (ctx *Context) Newline() {
	dc := ctx.dc()
	h := dc.lineHeight
	if h == 0 {
		h = ctx.fontSize()
	}
	dc.at.X = dc.min.X
	dc.at.Y += h + ctx.style.ItemSpacing
	dc.lineHeight = 0
}

// Spacing adds vertical space, starting a new line first if needed.
func (ctx *Context) Spacing(pixels float32) {
	dc := ctx.dc()
	if dc.at.X != dc.min.X {
		ctx.Newline()
	}
	dc.at.Y += pixels
}

// Separator draws a horizontal line across the current region.
func (ctx *Context) Separator() {
	dc := ctx.dc()
	if dc.at.X != dc.min.X {
		ctx.Newline()
	}
	y := dc.at.Y
	ctx.emit(ctx.DrawList.AddRectFilled(Vec2{dc.min.X, y}, Vec2{dc.max.X, y + 1}, ctx.Color(ColSeparator)))
	dc.layoutMax = dc.layoutMax.Max(Vec2{dc.min.X, y + 1})
	dc.at.Y += 1 + ctx.style.ItemSpacing
}

// CursorPos returns where the next widget will be placed.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.dc().at
}

// SetCursorPos moves the cursor of the current region.
func (ctx *Context) SetCursorPos(p Vec2) {
	ctx.dc().at = p
}

// ContentRegion returns the bounds of the current region.
func (ctx *Context) ContentRegion() Rect {
	dc := ctx.dc()
	return Rect{Min: dc.min, Max: dc.max}
}
