package gui

// headerHeight is the height of a panel title row.
func (ctx *Context) headerHeight() float32 {
	return ctx.fontSize() + 2*ctx.style.HeaderPadding.Y
}

// headerRect returns the title row of a panel.
func (ctx *Context) headerRect(h PanelHandle) Rect {
	p := &ctx.panels[h]
	if p.Flags&PanelNoHeader != 0 {
		return Rect{}
	}
	return Rect{Min: p.Pos, Max: Vec2{p.Pos.X + p.Size.X, p.Pos.Y + ctx.headerHeight()}}
}

// headerTabs returns the panels sharing h's title row: the tab stack of
// its dock leaf, or h alone.
func (ctx *Context) headerTabs(h PanelHandle) []PanelHandle {
	p := &ctx.panels[h]
	if p.Status == PanelDocked && p.dockNode != noNode {
		return ctx.dock.nodes[p.dockNode].tabs
	}
	return nil
}

// tabRects calls fn with the label box of each tab in a title row starting
// at origin until fn returns false.
func (ctx *Context) tabRects(tabs []PanelHandle, origin Vec2, fn func(i int, r Rect) bool) {
	pad := ctx.style.HeaderPadding
	x := origin.X
	for i, t := range tabs {
		size := ctx.CalcTextSize(ctx.panels[t].Name).Add(pad.Mul(2))
		r := RectFromPosSize(Vec2{x, origin.Y}, size)
		if !fn(i, r) {
			return
		}
		x = r.Max.X
	}
}

// selectTabAt makes the tab under p visible. It returns the panel owning
// that tab, or h when the title row has no tabs there.
func (ctx *Context) selectTabAt(h PanelHandle, p Vec2) PanelHandle {
	tabs := ctx.headerTabs(h)
	if len(tabs) < 2 {
		return h
	}
	hit := h
	leaf := ctx.panels[h].dockNode
	ctx.tabRects(tabs, ctx.panels[h].Pos, func(i int, r Rect) bool {
		if r.Contains(p) {
			ctx.dock.nodes[leaf].activeTab = i
			hit = tabs[i]
			return false
		}
		return true
	})
	return hit
}

// drawHeader fills the title row and draws one label per tab.
func (ctx *Context) drawHeader(h PanelHandle, r Rect, headerH float32) {
	row := Rect{Min: r.Min, Max: Vec2{r.Max.X, r.Min.Y + headerH}}
	ctx.emit(ctx.DrawList.AddRectFilled(row.Min, row.Max, ctx.Color(ColPanelHeader)))

	pad := ctx.style.HeaderPadding
	textCol := ctx.Color(ColText)
	tabs := ctx.headerTabs(h)
	if len(tabs) < 2 {
		ctx.addText(ctx.panels[h].Name, r.Min.Add(pad), textCol)
		return
	}
	ctx.tabRects(tabs, r.Min, func(i int, tr Rect) bool {
		if tabs[i] != h {
			ctx.emit(ctx.DrawList.AddRectFilled(tr.Min, tr.Max, ctx.Color(ColPanelTabInactive)))
		}
		ctx.addText(ctx.panels[tabs[i]].Name, tr.Min.Add(pad), textCol)
		return true
	})
}
