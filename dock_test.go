package gui

import "testing"

func newDockContext(names ...string) (*Context, []PanelHandle) {
	ctx := NewContext(0)
	ctx.DisplaySize = Vec2{1000, 800}
	hs := make([]PanelHandle, len(names))
	for i, name := range names {
		hs[i] = ctx.lookupOrCreate(name, options{})
	}
	return ctx, hs
}

func liveNodes(t *dockTree) int {
	return len(t.nodes) - len(t.freeList)
}

func TestDockSplitAndCollapse(t *testing.T) {
	ctx, hs := newDockContext("A", "B")
	a, b := hs[0], hs[1]

	ctx.dockPanel(a, dockTarget{side: DockLeft, screen: true, node: noNode})
	if r := ctx.panels[a].Rect(); r != (Rect{Max: Vec2{250, 800}}) {
		t.Fatalf("Expected A on the left quarter, got %v", r)
	}

	ctx.dockPanel(b, dockTarget{side: DockBottom, node: ctx.panels[a].dockNode})
	if r := ctx.panels[a].Rect(); r != (Rect{Max: Vec2{250, 400}}) {
		t.Errorf("Expected A in the top half of the left column, got %v", r)
	}
	if r := ctx.panels[b].Rect(); r != (Rect{Min: Vec2{0, 400}, Max: Vec2{250, 800}}) {
		t.Errorf("Expected B in the bottom half of the left column, got %v", r)
	}
	if n := liveNodes(&ctx.dock); n != 5 {
		t.Errorf("Expected 5 live nodes, got %d", n)
	}

	ctx.undockPanel(b)
	if n := liveNodes(&ctx.dock); n != 3 {
		t.Errorf("Expected the emptied leaf to collapse to 3 nodes, got %d", n)
	}
	if r := ctx.panels[a].Rect(); r != (Rect{Max: Vec2{250, 800}}) {
		t.Errorf("Expected A to regain the left column, got %v", r)
	}
	if ctx.panels[b].Status != PanelFloat || ctx.panels[b].Size != (Vec2{250, 400}) {
		t.Errorf("Expected B float with its docked size, got %v %v", ctx.panels[b].Status, ctx.panels[b].Size)
	}

	ctx.undockPanel(a)
	if n := liveNodes(&ctx.dock); n != 1 {
		t.Errorf("Expected only the central root left, got %d nodes", n)
	}
	if ctx.dock.central != ctx.dock.root || !ctx.dock.nodes[ctx.dock.root].central {
		t.Error("Expected the root to be the central leaf again")
	}
}

func TestDockCentralLeafSurvivesEmpty(t *testing.T) {
	ctx, hs := newDockContext("A")
	ctx.dockPanel(hs[0], dockTarget{side: DockRight, screen: true, node: noNode})

	central := ctx.dock.central
	if !ctx.dock.nodes[central].isLeaf() || len(ctx.dock.nodes[central].tabs) != 0 {
		t.Fatal("Expected an empty central leaf beside the docked panel")
	}
	if r := ctx.dock.nodes[central].rect; r != (Rect{Max: Vec2{750, 800}}) {
		t.Errorf("Expected the central area left of the docked panel, got %v", r)
	}
	zones := ctx.dock.leafZones(central, nil)
	for _, z := range zones {
		if z.side == DockCenter {
			t.Error("Expected no center zone on the central leaf")
		}
	}
	if len(zones) != 4 {
		t.Errorf("Expected 4 zones, got %d", len(zones))
	}
}

func TestDockTabs(t *testing.T) {
	ctx, hs := newDockContext("A", "B")
	a, b := hs[0], hs[1]
	ctx.dockPanel(a, dockTarget{side: DockTop, screen: true, node: noNode})
	leaf := ctx.panels[a].dockNode
	ctx.dockPanel(b, dockTarget{side: DockCenter, node: leaf})

	if ctx.panels[b].dockNode != leaf {
		t.Fatal("Expected B tabbed into A's leaf")
	}
	if ctx.panels[b].Rect() != ctx.panels[a].Rect() {
		t.Error("Expected tabs to share the leaf rect")
	}
	if !ctx.isHiddenTab(a) || ctx.isHiddenTab(b) {
		t.Error("Expected the newest tab visible and A hidden")
	}

	ctx.undockPanel(b)
	if ctx.isHiddenTab(a) {
		t.Error("Expected A visible after B leaves")
	}
	if ctx.panels[a].dockNode != leaf {
		t.Error("Expected the leaf to survive while A is still tabbed in")
	}
}

func TestDockLeafAtAndEdgeSplit(t *testing.T) {
	ctx, hs := newDockContext("L", "T")
	l, top := hs[0], hs[1]
	ctx.dockPanel(l, dockTarget{side: DockLeft, screen: true, node: noNode})
	ctx.dockPanel(top, dockTarget{side: DockTop, screen: true, node: noNode})

	if got := ctx.dock.leafAt(Vec2{500, 100}); got != ctx.panels[top].dockNode {
		t.Errorf("Expected the top leaf at (500, 100), got node %d", got)
	}
	if got := ctx.dock.leafAt(Vec2{100, 500}); got != ctx.panels[l].dockNode {
		t.Errorf("Expected the left leaf at (100, 500), got node %d", got)
	}
	if got := ctx.dock.leafAt(Vec2{-1, 0}); got != noNode {
		t.Errorf("Expected no leaf off screen, got %d", got)
	}

	if s := ctx.dock.edgeSplit(ctx.panels[top].dockNode, AxisY); s != ctx.dock.root {
		t.Errorf("Expected the top panel's bottom edge to be the root split, got %d", s)
	}
	if s := ctx.dock.edgeSplit(ctx.panels[l].dockNode, AxisX); s == noNode {
		t.Error("Expected the left panel to have a right edge split")
	}
	if s := ctx.dock.edgeSplit(ctx.panels[l].dockNode, AxisY); s != noNode {
		t.Errorf("Expected no bottom edge split for the left panel, got %d", s)
	}
}

func TestDockedResizeMovesSplit(t *testing.T) {
	ctx, hs := newDockContext("A")
	a := hs[0]
	ctx.dockPanel(a, dockTarget{side: DockTop, screen: true, node: noNode})

	// Drag the bottom edge from y=200 down to y=400.
	ctx.resizePanel(a, Vec2{1000, 400}, Vec2{0, 200})
	if s := ctx.panels[a].Size; !vecNear(s, Vec2{1000, 400}) {
		t.Errorf("Expected docked height 400, got %v", s)
	}

	// Past the far limit the ratio stops with room for the other side.
	ctx.resizePanel(a, Vec2{1000, 1000}, Vec2{0, 600})
	if s := ctx.panels[a].Size; !vecNear(s, Vec2{1000, 800 - MinPanelSize.Y}) {
		t.Errorf("Expected height clamped to %v, got %v", 800-MinPanelSize.Y, s.Y)
	}

	// Moving up while the corner is still below the edge does nothing.
	ctx.resizePanel(a, Vec2{1000, 790}, Vec2{0, -10})
	if s := ctx.panels[a].Size; !vecNear(s, Vec2{1000, 800 - MinPanelSize.Y}) {
		t.Errorf("Expected no change inside the overshoot, got %v", s)
	}
}

func TestDockPreview(t *testing.T) {
	ctx, _ := newDockContext()
	ctx.syncDock()
	r := ctx.dockPreview(dockTarget{side: DockRight, screen: true, node: noNode})
	if r != (Rect{Min: Vec2{750, 0}, Max: Vec2{1000, 800}}) {
		t.Errorf("Expected the right quarter, got %v", r)
	}

	zones := screenZones(Vec2{1000, 800})
	top := zones[0]
	if top.side != DockTop || !top.zone.Contains(Vec2{500, 24}) {
		t.Errorf("Expected the top zone centered at (500, 24), got %v", top.zone)
	}
}
