package gui

// Axis is the direction a dock split divides its area along.
type Axis int

const (
	AxisX Axis = iota // children side by side
	AxisY             // children stacked
)

// DockSide names a drop slot relative to a target area.
type DockSide int

const (
	DockNone DockSide = iota
	DockTop
	DockBottom
	DockLeft
	DockRight
	DockCenter
)

func (s DockSide) String() string {
	switch s {
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockCenter:
		return "center"
	}
	return "none"
}

func (s DockSide) axis() Axis {
	if s == DockLeft || s == DockRight {
		return AxisX
	}
	return AxisY
}

const (
	// DockSideRatio is the share of the screen a panel docked at a screen
	// edge receives.
	DockSideRatio float32 = 0.25
	// DockSplitRatio is the share a panel docked beside another receives.
	DockSplitRatio float32 = 0.5
)

const noNode int32 = -1

// dockNode is a node of the binary split tree. Leaves hold a stack of
// tabbed panels; internal nodes hold exactly two children.
type dockNode struct {
	parent    int32
	children  [2]int32
	axis      Axis
	ratio     float32 // share of the area given to children[0]
	tabs      []PanelHandle
	activeTab int
	central   bool // the empty area floating panels live over
	rect      Rect
	free      bool
}

func (n *dockNode) isLeaf() bool { return n.children[0] == noNode }

// dockTree is an arena of dock nodes. The root always exists and exactly
// one leaf is central.
type dockTree struct {
	nodes    []dockNode
	freeList []int32
	root     int32
	central  int32
}

func newDockTree() dockTree {
	t := dockTree{}
	t.root = t.alloc()
	t.central = t.root
	t.nodes[t.root].central = true
	return t
}

func (t *dockTree) alloc() int32 {
	if n := len(t.freeList); n > 0 {
		i := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.nodes[i] = dockNode{parent: noNode, children: [2]int32{noNode, noNode}}
		return i
	}
	t.nodes = append(t.nodes, dockNode{parent: noNode, children: [2]int32{noNode, noNode}})
	return int32(len(t.nodes) - 1)
}

func (t *dockTree) release(i int32) {
	t.nodes[i] = dockNode{free: true, parent: noNode, children: [2]int32{noNode, noNode}}
	t.freeList = append(t.freeList, i)
}

// layout assigns rects top-down from the root.
func (t *dockTree) layout(area Rect) {
	t.layoutNode(t.root, area)
}

func (t *dockTree) layoutNode(i int32, r Rect) {
	n := &t.nodes[i]
	n.rect = r
	if n.isLeaf() {
		return
	}
	a, b := r, r
	if n.axis == AxisX {
		split := r.Min.X + r.Width()*n.ratio
		a.Max.X, b.Min.X = split, split
	} else {
		split := r.Min.Y + r.Height()*n.ratio
		a.Max.Y, b.Min.Y = split, split
	}
	c0, c1 := n.children[0], n.children[1]
	t.layoutNode(c0, a)
	t.layoutNode(c1, b)
}

// split turns target into an internal node whose children are a new leaf
// holding h and a node carrying target's previous content. The new leaf
// gets ratio of the area on the given side. It returns the new leaf.
func (t *dockTree) split(target int32, side DockSide, h PanelHandle, ratio float32) int32 {
	old := t.alloc()
	leaf := t.alloc()

	prev := t.nodes[target]
	t.nodes[old] = dockNode{
		parent:    target,
		children:  prev.children,
		axis:      prev.axis,
		ratio:     prev.ratio,
		tabs:      prev.tabs,
		activeTab: prev.activeTab,
		central:   prev.central,
		rect:      prev.rect,
	}
	for _, c := range prev.children {
		if c != noNode {
			t.nodes[c].parent = old
		}
	}
	if t.central == target {
		t.central = old
	}
	t.nodes[leaf] = dockNode{parent: target, children: [2]int32{noNode, noNode}, tabs: []PanelHandle{h}}

	n := &t.nodes[target]
	n.tabs = nil
	n.activeTab = 0
	n.central = false
	n.axis = side.axis()
	if side == DockTop || side == DockLeft {
		n.children = [2]int32{leaf, old}
		n.ratio = ratio
	} else {
		n.children = [2]int32{old, leaf}
		n.ratio = 1 - ratio
	}
	return leaf
}

// addTab stacks h on a leaf and makes it the visible tab.
func (t *dockTree) addTab(leaf int32, h PanelHandle) {
	n := &t.nodes[leaf]
	n.tabs = append(n.tabs, h)
	n.activeTab = len(n.tabs) - 1
}

// removeTab takes h off its leaf. An emptied leaf that is not central is
// collapsed: its sibling's content moves up into the parent.
func (t *dockTree) removeTab(leaf int32, h PanelHandle) {
	n := &t.nodes[leaf]
	for i, tab := range n.tabs {
		if tab == h {
			n.tabs = append(n.tabs[:i], n.tabs[i+1:]...)
			if n.activeTab > i || n.activeTab >= len(n.tabs) {
				n.activeTab--
			}
			break
		}
	}
	if n.activeTab < 0 {
		n.activeTab = 0
	}
	if len(n.tabs) > 0 || n.central || n.parent == noNode {
		return
	}

	p := n.parent
	parent := t.nodes[p]
	sib := parent.children[0]
	if sib == leaf {
		sib = parent.children[1]
	}
	s := t.nodes[sib]
	t.nodes[p] = dockNode{
		parent:    parent.parent,
		children:  s.children,
		axis:      s.axis,
		ratio:     s.ratio,
		tabs:      s.tabs,
		activeTab: s.activeTab,
		central:   s.central,
		rect:      parent.rect,
	}
	for _, c := range s.children {
		if c != noNode {
			t.nodes[c].parent = p
		}
	}
	if t.central == sib {
		t.central = p
	}
	t.release(sib)
	t.release(leaf)
}

// leafAt returns the deepest leaf containing p, or noNode.
func (t *dockTree) leafAt(p Vec2) int32 {
	i := t.root
	if !t.nodes[i].rect.Contains(p) {
		return noNode
	}
	for !t.nodes[i].isLeaf() {
		c0 := t.nodes[i].children[0]
		if t.nodes[c0].rect.Contains(p) {
			i = c0
		} else {
			i = t.nodes[i].children[1]
		}
	}
	return i
}

// edgeSplit returns the nearest ancestor split on axis whose dividing line
// is the far (right or bottom) edge of node i.
func (t *dockTree) edgeSplit(i int32, axis Axis) int32 {
	for i != noNode {
		p := t.nodes[i].parent
		if p == noNode {
			return noNode
		}
		if t.nodes[p].axis == axis && t.nodes[p].children[0] == i {
			return p
		}
		i = p
	}
	return noNode
}

// leaves calls fn for every leaf in depth-first order.
func (t *dockTree) leaves(fn func(i int32, n *dockNode)) {
	var walk func(i int32)
	walk = func(i int32) {
		n := &t.nodes[i]
		if n.isLeaf() {
			fn(i, n)
			return
		}
		c0, c1 := n.children[0], n.children[1]
		walk(c0)
		walk(c1)
	}
	walk(t.root)
}

// syncDock copies leaf rects onto the panels docked in them.
func (ctx *Context) syncDock() {
	ctx.dock.layout(Rect{Max: ctx.DisplaySize})
	ctx.dock.leaves(func(i int32, n *dockNode) {
		for _, h := range n.tabs {
			p := &ctx.panels[h]
			p.dockNode = i
			p.Pos = n.rect.Min
			p.Size = n.rect.Size()
		}
	})
}

// dockPanel inserts a dragged panel at target and makes it Docked.
func (ctx *Context) dockPanel(h PanelHandle, target dockTarget) {
	switch {
	case target.side == DockCenter:
		ctx.dock.addTab(target.node, h)
	case target.screen:
		ctx.dock.split(ctx.dock.root, target.side, h, DockSideRatio)
	default:
		ctx.dock.split(target.node, target.side, h, DockSplitRatio)
	}
	p := &ctx.panels[h]
	p.Status = PanelDocked
	ctx.syncDock()
	guiLogger.Debug("panel docked", "panel", p.Name, "side", target.side, "screen", target.screen, "rect", RectFromPosSize(p.Pos, p.Size))
}

// undockPanel takes a docked panel out of the tree. It keeps the size it had
// while docked.
func (ctx *Context) undockPanel(h PanelHandle) {
	p := &ctx.panels[h]
	if p.Status != PanelDocked {
		return
	}
	ctx.dock.removeTab(p.dockNode, h)
	p.dockNode = noNode
	p.Status = PanelFloat
	ctx.syncDock()
	guiLogger.Debug("panel undocked", "panel", p.Name, "size", p.Size)
}

// isHiddenTab reports whether h is docked behind another tab.
func (ctx *Context) isHiddenTab(h PanelHandle) bool {
	p := &ctx.panels[h]
	if p.Status != PanelDocked || p.dockNode == noNode {
		return false
	}
	n := &ctx.dock.nodes[p.dockNode]
	return n.activeTab < len(n.tabs) && n.tabs[n.activeTab] != h
}
