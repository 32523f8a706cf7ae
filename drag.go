package gui

// resizeHandleRect returns the bottom-right grip of a panel.
func resizeHandleRect(r Rect) Rect {
	return Rect{Min: Vec2{r.Max.X - ResizeHandleSize, r.Max.Y - ResizeHandleSize}, Max: r.Max}
}

// interact runs the move/dock/resize state machine for h. It is called
// once per frame from BeginPanel, before the panel is drawn.
func (ctx *Context) interact(h PanelHandle) {
	in := ctx.Input
	mouse := in.MousePos()
	down := in.MouseDown(MouseButtonLeft)
	p := &ctx.panels[h]

	// Check for drag or resize start (press inside the active panel)
	if ctx.activePanel == h && in.MouseClicked(MouseButtonLeft) && !ctx.isHiddenTab(h) {
		click := in.ClickPos(MouseButtonLeft)
		r := p.Rect()
		switch {
		case p.Flags&PanelNoResize == 0 && resizeHandleRect(r).Contains(click):
			ctx.resizing = h
			ctx.resizeAnchor = r.Max.Sub(click)
			guiLogger.Debug("resize start", "panel", p.Name, "size", p.Size)
		case p.Flags&PanelNoMove == 0 && ctx.headerRect(h).Contains(click):
			if p.Status == PanelDocked {
				tab := ctx.selectTabAt(h, click)
				ctx.activePanel = tab
				ctx.undockArmed = tab
				ctx.pressPos = click
			} else {
				p.Status = PanelDragged
				ctx.dragging = h
				ctx.dragOffset = click.Sub(p.Pos)
			}
		}
	}

	// Docked panels leave the tree once the mouse moves past the threshold
	if ctx.undockArmed == h {
		switch {
		case !down:
			ctx.undockArmed = NoPanel
		case mouse.Sub(ctx.pressPos).Length() > UndockThreshold:
			min := p.Pos
			ctx.undockPanel(h)
			p = &ctx.panels[h]
			p.Status = PanelDragged
			ctx.dragging = h
			ctx.dragOffset = ctx.pressPos.Sub(min)
			ctx.undockArmed = NoPanel
		}
	}

	// Handle ongoing drag
	if p.Status == PanelDragged {
		p.Pos = mouse.Sub(ctx.dragOffset)
		if !down {
			if ctx.dragging == h && ctx.dockTarget.valid() && p.Flags&PanelNoDock == 0 {
				ctx.dockPanel(h, ctx.dockTarget)
			} else {
				p.Status = PanelFloat
				guiLogger.Debug("panel dropped", "panel", p.Name, "pos", p.Pos)
			}
			if ctx.dragging == h {
				ctx.dragging = NoPanel
			}
			ctx.dockTarget = dockTarget{node: noNode}
		}
	}

	// Handle ongoing resize
	if ctx.resizing == h {
		if !down {
			ctx.resizing = NoPanel
			guiLogger.Debug("resize end", "panel", ctx.panels[h].Name, "size", ctx.panels[h].Size)
		} else {
			ctx.resizePanel(h, mouse.Add(ctx.resizeAnchor), in.MouseDelta())
		}
	}
}

// resizePanel moves the bottom-right corner of h toward desired. An axis
// only changes when the corner lies past the current edge in the direction
// the mouse moved, so overshooting the minimum size does not oscillate.
func (ctx *Context) resizePanel(h PanelHandle, desired, delta Vec2) {
	p := &ctx.panels[h]
	if p.Status == PanelDocked {
		ctx.resizeDocked(h, desired, delta)
		return
	}
	edge := p.Pos.Add(p.Size)
	if movesPast(delta.X, desired.X, edge.X) {
		p.Size.X = maxf(desired.X-p.Pos.X, MinPanelSize.X)
	}
	if movesPast(delta.Y, desired.Y, edge.Y) {
		p.Size.Y = maxf(desired.Y-p.Pos.Y, MinPanelSize.Y)
	}
}

func movesPast(delta, desired, edge float32) bool {
	return (delta > 0 && desired > edge) || (delta < 0 && desired < edge)
}

// resizeDocked moves the split lines that form the right and bottom edges
// of a docked panel.
func (ctx *Context) resizeDocked(h PanelHandle, desired, delta Vec2) {
	leaf := ctx.panels[h].dockNode
	for _, axis := range [2]Axis{AxisX, AxisY} {
		d, want := delta.X, desired.X
		if axis == AxisY {
			d, want = delta.Y, desired.Y
		}
		if d == 0 {
			continue
		}
		s := ctx.dock.edgeSplit(leaf, axis)
		if s == noNode {
			continue
		}
		n := &ctx.dock.nodes[s]
		lo, extent, minSize := n.rect.Min.X, n.rect.Width(), MinPanelSize.X
		if axis == AxisY {
			lo, extent, minSize = n.rect.Min.Y, n.rect.Height(), MinPanelSize.Y
		}
		if extent <= 0 {
			continue
		}
		if movesPast(d, want, lo+extent*n.ratio) {
			n.ratio = clampRatio((want-lo)/extent, minSize/extent)
		}
	}
	ctx.syncDock()
}

// clampRatio keeps both sides of a split at least lo of the extent.
func clampRatio(r, lo float32) float32 {
	if lo >= 0.5 {
		return 0.5
	}
	return clampf(r, lo, 1-lo)
}
