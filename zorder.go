package gui

// renderGroup orders panels into docked, floating and overlay layers.
func (ctx *Context) renderGroup(h PanelHandle) int {
	p := &ctx.panels[h]
	switch {
	case p.Flags&PanelOverlay != 0:
		return 2
	case p.Status == PanelDocked:
		return 0
	}
	return 1
}

// renderOrder returns the visible panels built in the given frame, back to
// front: docked panels by z, floating panels by z, then overlays. The
// returned slice is reused by the next call.
func (ctx *Context) renderOrder(frame uint64) []PanelHandle {
	out := ctx.renderScratch[:0]
	for group := 0; group < 3; group++ {
		for _, h := range ctx.order {
			p := &ctx.panels[h]
			if p.lastFrame != frame || ctx.isHiddenTab(h) || ctx.renderGroup(h) != group {
				continue
			}
			out = append(out, h)
		}
	}
	ctx.renderScratch = out
	return out
}

// hitTest returns the topmost panel built in frame that contains p.
func (ctx *Context) hitTest(p Vec2, frame uint64) PanelHandle {
	order := ctx.renderOrder(frame)
	for i := len(order) - 1; i >= 0; i-- {
		if ctx.panels[order[i]].Rect().Contains(p) {
			return order[i]
		}
	}
	return NoPanel
}

// promote moves h to the top of the z-order.
func (ctx *Context) promote(h PanelHandle) {
	ctx.removeFromOrder(h)
	ctx.order = append(ctx.order, h)
}

func (ctx *Context) removeFromOrder(h PanelHandle) {
	for i, o := range ctx.order {
		if o == h {
			ctx.order = append(ctx.order[:i], ctx.order[i+1:]...)
			return
		}
	}
}

// ZOrder returns a copy of the z-order, back to front.
func (ctx *Context) ZOrder() []PanelHandle {
	return append([]PanelHandle(nil), ctx.order...)
}
