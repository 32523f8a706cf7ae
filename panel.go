package gui

// PanelHandle addresses a panel in the Context's arena. Handles stay valid
// until the panel is removed; freed slots are reused.
type PanelHandle int32

// NoPanel is the handle of no panel.
const NoPanel PanelHandle = -1

// PanelStatus is the state of a panel's move/dock state machine.
type PanelStatus int

const (
	PanelFloat   PanelStatus = iota // Free-floating with its own position and size
	PanelDragged                    // Following the mouse
	PanelDocked                     // Placed by the dock tree
)

func (s PanelStatus) String() string {
	switch s {
	case PanelFloat:
		return "float"
	case PanelDragged:
		return "dragged"
	case PanelDocked:
		return "docked"
	}
	return "unknown"
}

// PanelFlags configure panel behavior.
type PanelFlags uint32

const (
	PanelNoHeader PanelFlags = 1 << iota
	PanelNoResize
	PanelNoMove
	PanelNoDock
	PanelNoPadding
	// PanelOverlay panels are pinned by their owner and drawn above all
	// other panels (menu bars, dropdowns).
	PanelOverlay
)

const (
	ResizeHandleSize float32 = 12
	UndockThreshold  float32 = 4
)

var (
	MinPanelSize     = Vec2{64, 48}
	DefaultPanelSize = Vec2{300, 200}
)

// Panel is a persistent window record.
type Panel struct {
	ID     ID
	Name   string
	Pos    Vec2
	Size   Vec2
	Status PanelStatus
	Flags  PanelFlags

	// LayoutMax is the bottom-right corner of the content laid out the last
	// time the panel was built.
	LayoutMax Vec2

	// Elements are the index slices the panel wrote this frame.
	Elements []ElementRange

	dockNode  int32
	lastFrame uint64
}

// Rect returns the panel bounds.
func (p *Panel) Rect() Rect {
	return RectFromPosSize(p.Pos, p.Size)
}

// LookupPanel returns the handle of the named panel.
func (ctx *Context) LookupPanel(name string) (PanelHandle, bool) {
	h, ok := ctx.byName[name]
	return h, ok
}

// PanelAt returns the panel for a handle, or nil if the handle is not live.
// The pointer is invalidated by the next panel creation.
func (ctx *Context) PanelAt(h PanelHandle) *Panel {
	if h < 0 || int(h) >= len(ctx.panels) || ctx.panels[h].Name == "" {
		return nil
	}
	return &ctx.panels[h]
}

// NumPanels returns the number of live panels.
func (ctx *Context) NumPanels() int {
	return len(ctx.byName)
}

func (ctx *Context) currentPanel() PanelHandle {
	if n := len(ctx.panelStack); n > 0 {
		return ctx.panelStack[n-1].h
	}
	return NoPanel
}

func (ctx *Context) allocPanel() PanelHandle {
	if n := len(ctx.freePanels); n > 0 {
		h := ctx.freePanels[n-1]
		ctx.freePanels = ctx.freePanels[:n-1]
		return h
	}
	ctx.panels = append(ctx.panels, Panel{})
	return PanelHandle(len(ctx.panels) - 1)
}

// lookupOrCreate returns the named panel, creating it from o on first use.
func (ctx *Context) lookupOrCreate(name string, o options) PanelHandle {
	if h, ok := ctx.byName[name]; ok {
		return h
	}
	flags := GetOpt(o, OptPanelFlags)
	pos := GetOpt(o, OptPos)
	if !HasOpt(o, OptPos) {
		k := float32(len(ctx.byName) % 8)
		pos = Vec2{20 + 24*k, 40 + 24*k}
	}
	size := GetOpt(o, OptSize)
	if flags&PanelOverlay == 0 {
		size = size.Max(MinPanelSize)
	}

	id := PanelID(name)
	for other := range ctx.byName {
		if ctx.panels[ctx.byName[other]].ID == id {
			guiLogger.Warn("panel ID collision", "id", id, "name", name, "other", other)
		}
	}

	h := ctx.allocPanel()
	ctx.panels[h] = Panel{
		ID:       id,
		Name:     name,
		Pos:      pos,
		Size:     size,
		Flags:    flags,
		dockNode: noNode,
	}
	ctx.byName[name] = h
	ctx.order = append(ctx.order, h)
	if flags&PanelOverlay == 0 {
		ctx.activePanel = h
	}
	guiLogger.Debug("panel created", "panel", name, "handle", h, "pos", pos, "size", size)
	return h
}

// BeginPanel starts building a panel. The options apply only when the
// panel is created. It returns false when the panel is a hidden tab; the
// caller must call EndPanel either way.
func (ctx *Context) BeginPanel(name string, opts ...Option) bool {
	if !ctx.inFrame {
		ctx.setErr(ErrFrameNotStarted)
		return false
	}
	return ctx.beginPanel(ctx.lookupOrCreate(name, applyOptions(opts)))
}

func (ctx *Context) beginPanel(h PanelHandle) bool {
	ctx.panels[h].lastFrame = ctx.FrameCount
	ctx.panels[h].Elements = ctx.panels[h].Elements[:0]
	ctx.interact(h)

	ctx.flushSegment()
	dc := ctx.pushDrawContext()
	ctx.panelStack = append(ctx.panelStack, panelFrame{h: h, pushed: dc != nil})
	if dc == nil {
		return false
	}

	p := &ctx.panels[h]
	r := p.Rect()
	var headerH float32
	if p.Flags&PanelNoHeader == 0 {
		headerH = ctx.headerHeight()
	}
	pad := ctx.style.ContentPadding
	if p.Flags&PanelNoPadding != 0 {
		pad = 0
	}
	dc.min = Vec2{r.Min.X + pad, r.Min.Y + headerH + pad}
	dc.max = Vec2{r.Max.X - pad, r.Max.Y - pad}
	dc.at = dc.min
	dc.layoutMax = dc.min

	if ctx.isHiddenTab(h) {
		return false
	}
	if p.Flags&PanelOverlay != 0 {
		return true
	}

	if headerH > 0 {
		ctx.drawHeader(h, r, headerH)
	}
	bg := ctx.Color(ColPanelBackground)
	if p.Status == PanelDragged {
		bg = WithAlpha(bg, 0x80)
	}
	ctx.emit(ctx.DrawList.AddRectFilled(Vec2{r.Min.X, r.Min.Y + headerH}, r.Max, bg))
	return true
}

// EndPanel finishes the panel opened by the matching BeginPanel.
func (ctx *Context) EndPanel() {
	n := len(ctx.panelStack)
	if n == 0 {
		ctx.setErr(ErrUnbalancedPanel)
		return
	}
	f := ctx.panelStack[n-1]
	p := &ctx.panels[f.h]
	if f.pushed {
		p.LayoutMax = ctx.dc().layoutMax
		if p.Flags&(PanelOverlay|PanelNoResize) == 0 && !ctx.isHiddenTab(f.h) {
			r := p.Rect()
			ctx.emit(ctx.DrawList.AddRectOutline(r.Min, r.Max, ctx.Color(ColPanelBorder)))
			tri := [3]Vec2{
				{r.Max.X, r.Max.Y - ResizeHandleSize},
				r.Max,
				{r.Max.X - ResizeHandleSize, r.Max.Y},
			}
			ctx.emit(ctx.DrawList.AddPolyFilled(tri[:], ctx.Color(ColResizeHandle)))
		}
		ctx.popDrawContext()
	}
	ctx.flushSegment()
	ctx.panelStack = ctx.panelStack[:n-1]
}

// Panel is the closure form of BeginPanel/EndPanel. The contents run only
// when the panel is visible.
//
// Usage:
//
//	ctx.Panel("Stats", gui.WithPos(20, 40))(func() {
//	    ctx.Text("Hello")
//	})
func (ctx *Context) Panel(name string, opts ...Option) func(func()) {
	return func(contents func()) {
		if ctx.BeginPanel(name, opts...) {
			contents()
		}
		ctx.EndPanel()
	}
}

// overlayPanel returns a pinned panel and places it at r for this frame.
func (ctx *Context) overlayPanel(name string, r Rect, flags PanelFlags) PanelHandle {
	flags |= PanelOverlay | PanelNoHeader | PanelNoResize | PanelNoMove | PanelNoDock
	var o options
	WithFlags(flags)(&o)
	h := ctx.lookupOrCreate(name, o)
	p := &ctx.panels[h]
	p.Pos = r.Min
	p.Size = r.Size()
	return h
}

// RemovePanel undocks the named panel, drops it from the z-order and frees
// its slot. It reports whether the panel existed. A panel cannot be removed
// while it is being built.
func (ctx *Context) RemovePanel(name string) bool {
	h, ok := ctx.byName[name]
	if !ok {
		return false
	}
	for _, f := range ctx.panelStack {
		if f.h == h {
			return false
		}
	}
	ctx.undockPanel(h)
	delete(ctx.byName, name)
	ctx.removeFromOrder(h)
	for _, ref := range []*PanelHandle{&ctx.activePanel, &ctx.hoveredPanel, &ctx.dragging, &ctx.resizing, &ctx.undockArmed} {
		if *ref == h {
			*ref = NoPanel
		}
	}
	ctx.panels[h] = Panel{dockNode: noNode}
	ctx.freePanels = append(ctx.freePanels, h)
	guiLogger.Debug("panel removed", "panel", name, "handle", h)
	return true
}
