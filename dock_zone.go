package gui

// Dock hot-zone geometry.
const (
	DockZoneSize   float32 = 32 // Side of a square hot-zone
	DockZoneMargin float32 = 8  // Inset of screen zones from the screen edge
	dockZoneGap    float32 = 8  // Gap between leaf zones around a leaf center
)

// dockTarget is a drop slot: a screen edge (wrapping the whole tree) or a
// side of a leaf.
type dockTarget struct {
	side   DockSide
	screen bool
	node   int32
	zone   Rect
}

func (t dockTarget) valid() bool { return t.side != DockNone }

func zoneAt(center Vec2) Rect {
	half := DockZoneSize / 2
	return Rect{Min: Vec2{center.X - half, center.Y - half}, Max: Vec2{center.X + half, center.Y + half}}
}

// screenZones returns the N/S/E/W squares at the screen edge midpoints.
func screenZones(display Vec2) [4]dockTarget {
	half := DockZoneSize / 2
	mid := display.Mul(0.5)
	return [4]dockTarget{
		{side: DockTop, screen: true, node: noNode, zone: zoneAt(Vec2{mid.X, DockZoneMargin + half})},
		{side: DockBottom, screen: true, node: noNode, zone: zoneAt(Vec2{mid.X, display.Y - DockZoneMargin - half})},
		{side: DockLeft, screen: true, node: noNode, zone: zoneAt(Vec2{DockZoneMargin + half, mid.Y})},
		{side: DockRight, screen: true, node: noNode, zone: zoneAt(Vec2{display.X - DockZoneMargin - half, mid.Y})},
	}
}

// leafZones returns the zones around a leaf center. The central leaf has
// no center zone.
func (t *dockTree) leafZones(leaf int32, out []dockTarget) []dockTarget {
	n := &t.nodes[leaf]
	c := n.rect.Center()
	off := DockZoneSize + dockZoneGap
	out = append(out,
		dockTarget{side: DockTop, node: leaf, zone: zoneAt(Vec2{c.X, c.Y - off})},
		dockTarget{side: DockBottom, node: leaf, zone: zoneAt(Vec2{c.X, c.Y + off})},
		dockTarget{side: DockLeft, node: leaf, zone: zoneAt(Vec2{c.X - off, c.Y})},
		dockTarget{side: DockRight, node: leaf, zone: zoneAt(Vec2{c.X + off, c.Y})},
	)
	if !n.central {
		out = append(out, dockTarget{side: DockCenter, node: leaf, zone: zoneAt(c)})
	}
	return out
}

// dockZones lists the zones offered while dragging with the mouse at p.
func (ctx *Context) dockZones(p Vec2) []dockTarget {
	zones := ctx.zoneScratch[:0]
	for _, z := range screenZones(ctx.DisplaySize) {
		zones = append(zones, z)
	}
	if leaf := ctx.dock.leafAt(p); leaf != noNode {
		zones = ctx.dock.leafZones(leaf, zones)
	}
	ctx.zoneScratch = zones
	return zones
}

// findDockTarget returns the zone under p. Screen zones win over leaf zones.
func (ctx *Context) findDockTarget(p Vec2) dockTarget {
	for _, z := range ctx.dockZones(p) {
		if z.zone.Contains(p) {
			return z
		}
	}
	return dockTarget{node: noNode}
}

// dockPreview returns the area a panel dropped at t would occupy.
func (ctx *Context) dockPreview(t dockTarget) Rect {
	var r Rect
	ratio := DockSplitRatio
	if t.screen {
		r = ctx.dock.nodes[ctx.dock.root].rect
		ratio = DockSideRatio
	} else {
		r = ctx.dock.nodes[t.node].rect
	}
	switch t.side {
	case DockTop:
		r.Max.Y = r.Min.Y + r.Height()*ratio
	case DockBottom:
		r.Min.Y = r.Max.Y - r.Height()*ratio
	case DockLeft:
		r.Max.X = r.Min.X + r.Width()*ratio
	case DockRight:
		r.Min.X = r.Max.X - r.Width()*ratio
	}
	return r
}

// drawDockOverlay draws the hot-zones of the panel being dragged and a
// preview of the hovered one.
func (ctx *Context) drawDockOverlay() {
	if ctx.dragging == NoPanel || ctx.panels[ctx.dragging].Flags&PanelNoDock != 0 {
		return
	}
	mouse := ctx.Input.MousePos()
	if ctx.dockTarget.valid() {
		pr := ctx.dockPreview(ctx.dockTarget)
		ctx.emit(ctx.DrawList.AddRectFilled(pr.Min, pr.Max, ctx.Color(ColDockPreview)))
	}
	for _, z := range ctx.dockZones(mouse) {
		col := ctx.Color(ColDockZone)
		if z.zone.Contains(mouse) {
			col = ctx.Color(ColDockZoneHot)
		}
		ctx.emit(ctx.DrawList.AddRectFilled(z.zone.Min, z.zone.Max, col))
	}
}
