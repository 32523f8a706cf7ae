package gui

import "github.com/fadan/gui/format"

// ButtonState is the interaction state of a clickable rect.
type ButtonState int

const (
	ButtonInactive ButtonState = iota
	ButtonHover
	ButtonActive
	ButtonLeftClick
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHover:
		return "hover"
	case ButtonActive:
		return "active"
	case ButtonLeftClick:
		return "click"
	}
	return "inactive"
}

// ButtonBehavior resolves the mouse state of r inside the panel being
// built. Hover requires the panel to be topmost under the mouse. A click
// is a release inside r whose press also started inside r.
func (ctx *Context) ButtonBehavior(r Rect) ButtonState {
	in := ctx.Input
	owner := ctx.currentPanel()
	mouse := in.MousePos()
	press := in.ClickPos(MouseButtonLeft)
	owned := owner == ctx.activePanel

	if owned && in.MouseReleased(MouseButtonLeft) && r.Contains(mouse) && r.Contains(press) {
		return ButtonLeftClick
	}
	if owned && in.MouseDown(MouseButtonLeft) && r.Contains(press) {
		return ButtonActive
	}
	if ctx.hoveredPanel == owner && r.Contains(mouse) {
		return ButtonHover
	}
	return ButtonInactive
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	o := applyOptions(opts)
	pad := ctx.style.ButtonPadding
	textSize := ctx.CalcTextSize(label)
	size := textSize.Add(pad.Mul(2))
	size.X = maxf(size.X, GetOpt(o, OptWidth))
	size.Y = maxf(size.Y, GetOpt(o, OptHeight))

	r := ctx.placeItem(size)
	state := ctx.ButtonBehavior(r)

	bg := ctx.Color(ColButton)
	switch state {
	case ButtonHover:
		bg = ctx.Color(ColButtonHovered)
	case ButtonActive, ButtonLeftClick:
		bg = ctx.Color(ColButtonActive)
	}
	ctx.emit(ctx.DrawList.AddRectFilled(r.Min, r.Max, bg))

	textColor := ctx.Color(ColText)
	if HasOpt(o, OptTextColor) {
		textColor = GetOpt(o, OptTextColor)
	}
	ctx.addText(label, r.Min.Add(size.Sub(textSize).Mul(0.5)), textColor)

	if state == ButtonLeftClick {
		guiLogger.Debug("button clicked", "label", label)
		return true
	}
	return false
}

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string, opts ...Option) {
	col := ctx.Color(ColText)
	if len(opts) > 0 {
		o := applyOptions(opts)
		if HasOpt(o, OptTextColor) {
			col = GetOpt(o, OptTextColor)
		}
	}
	r := ctx.placeItem(ctx.CalcTextSize(text))
	ctx.addText(text, r.Min, col)
}

// Textf formats into a fixed scratch buffer and draws the result. Output
// longer than the buffer is truncated.
func (ctx *Context) Textf(pattern string, args ...any) {
	n, err := format.Format(ctx.fmtScratch[:], pattern, args...)
	ctx.setErr(err)
	ctx.Text(string(ctx.fmtScratch[:n]))
}

// DrawGradientBackground fills the current region with a four-corner
// gradient.
func (ctx *Context) DrawGradientBackground(tl, bl, br, tr uint32) {
	dc := ctx.dc()
	ctx.emit(ctx.DrawList.AddColorQuad(dc.min, dc.max, tl, tr, bl, br))
}
