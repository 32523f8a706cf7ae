package gui

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dboslee/lru"

	"github.com/fadan/gui/font"
)

// ElementRange is a slice of the frame's index buffer.
type ElementRange struct {
	First uint32
	Count uint32
}

type textKey struct {
	text string
	size float32
}

// Context holds all state for UI rendering.
// This is NOT context.Context - it's a dedicated GUI context type.
// Panels, the dock tree and the z-order persist across frames; everything
// else is rebuilt between BeginFrame and EndFrame.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Texture the renderer binds for the font atlas
	FontTextureID uint32

	font *font.Font

	// Styling
	style      Style
	colorStack overrideStack[uint32]
	varStack   overrideStack[float32]
	vec2Stack  overrideStack[Vec2]

	// Panel arena
	panels     []Panel
	freePanels []PanelHandle
	byName     map[string]PanelHandle
	order      []PanelHandle // z-order, back to front

	dock dockTree

	activePanel  PanelHandle
	hoveredPanel PanelHandle

	// Interaction state, persisted between frames
	dragging     PanelHandle
	dragOffset   Vec2
	resizing     PanelHandle
	resizeAnchor Vec2
	undockArmed  PanelHandle
	pressPos     Vec2
	dockTarget   dockTarget
	openMenu     ID
	menuStack    []Vec2

	// Per-frame build state
	panelStack  []panelFrame
	contexts    [maxDrawContexts]drawContext
	numContexts int
	loose       []ElementRange
	segStart    uint32
	idStack     []ID
	inFrame     bool
	err         error

	digest        *xxhash.Digest
	textCache     *lru.Cache[textKey, Vec2]
	zoneScratch   []dockTarget
	renderScratch []PanelHandle
	fmtScratch    [512]byte
}

type panelFrame struct {
	h      PanelHandle
	pushed bool
}

// NewContext creates a new GUI context with default settings.
func NewContext(maxVertices int) *Context {
	return &Context{
		DrawList:     NewDrawList(maxVertices),
		Input:        NewInputState(),
		style:        DefaultStyle(),
		byName:       make(map[string]PanelHandle),
		dock:         newDockTree(),
		activePanel:  NoPanel,
		hoveredPanel: NoPanel,
		dragging:     NoPanel,
		resizing:     NoPanel,
		undockArmed:  NoPanel,
		dockTarget:   dockTarget{node: noNode},
		panelStack:   make([]panelFrame, 0, 8),
		idStack:      make([]ID, 0, 16),
		digest:       xxhash.New(),
		textCache:    lru.New[textKey, Vec2](),
	}
}

// SetFont sets the font used for text. Solid shapes sample its white
// pixel.
func (ctx *Context) SetFont(f *font.Font) {
	ctx.font = f
	ctx.textCache = lru.New[textKey, Vec2]()
	if f != nil {
		ctx.DrawList.SetWhitePixel(f.WhitePixel)
	}
}

// Font returns the current font.
func (ctx *Context) Font() *font.Font {
	return ctx.font
}

// Err returns the first error recorded in the current frame.
func (ctx *Context) Err() error {
	return ctx.err
}

func (ctx *Context) setErr(err error) {
	if err == nil || ctx.err != nil {
		return
	}
	ctx.err = err
	guiLogger.Debug("frame error", "frame", ctx.FrameCount, "err", err)
}

// emit records the error of a draw call.
func (ctx *Context) emit(err error) {
	if err != nil {
		ctx.setErr(err)
	}
}

// BeginFrame starts a frame: it lays out the dock tree, resolves which
// panel is under the mouse using last frame's rects and applies click
// focus.
func (ctx *Context) BeginFrame(input *InputState, displaySize Vec2, deltaTime float32) {
	if input == nil {
		input = ctx.Input
	}
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.err = nil
	ctx.inFrame = true

	ctx.DrawList.Clear()
	if ctx.font != nil {
		ctx.DrawList.SetWhitePixel(ctx.font.WhitePixel)
	}
	ctx.loose = ctx.loose[:0]
	ctx.segStart = 0
	ctx.panelStack = ctx.panelStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.menuStack = ctx.menuStack[:0]
	ctx.resetDrawContexts()
	ctx.syncDock()

	mouse := input.MousePos()
	ctx.hoveredPanel = ctx.hitTest(mouse, ctx.FrameCount-1)
	if input.MouseClicked(MouseButtonLeft) {
		ctx.activePanel = ctx.hoveredPanel
		if ctx.activePanel != NoPanel {
			ctx.promote(ctx.activePanel)
		}
		if guiVerbose() {
			name := ""
			if ctx.activePanel != NoPanel {
				name = ctx.panels[ctx.activePanel].Name
			}
			guiLogger.Debug("click", "mouse", mouse, "panel", name)
		}
	}

	ctx.dockTarget = dockTarget{node: noNode}
	if ctx.dragging != NoPanel && ctx.panels[ctx.dragging].Flags&PanelNoDock == 0 {
		ctx.dockTarget = ctx.findDockTarget(mouse)
	}
}

// EndFrame closes the frame and builds the draw commands: loose content
// first, then each panel's index slices in render order clipped to the
// panel, then the dock overlay. It returns the first error of the frame.
func (ctx *Context) EndFrame() error {
	if !ctx.inFrame {
		return ErrFrameNotStarted
	}
	if len(ctx.panelStack) > 0 {
		ctx.setErr(fmt.Errorf("%w: %d panel(s) left open", ErrUnbalancedPanel, len(ctx.panelStack)))
		for len(ctx.panelStack) > 0 {
			ctx.EndPanel()
		}
	}
	if ctx.colorStack.len()+ctx.varStack.len()+ctx.vec2Stack.len() > 0 {
		ctx.setErr(ErrUnbalancedStyles)
		ctx.colorStack.pop(ctx.colorStack.len(), ctx.style.colorSlot)
		ctx.varStack.pop(ctx.varStack.len(), ctx.style.varSlot)
		ctx.vec2Stack.pop(ctx.vec2Stack.len(), ctx.style.vec2Slot)
	}
	ctx.flushSegment()

	overlayStart := ctx.DrawList.IndexCount()
	ctx.drawDockOverlay()
	overlayEnd := ctx.DrawList.IndexCount()

	screen := Rect{Max: ctx.DisplaySize}
	dl := ctx.DrawList
	for _, r := range ctx.loose {
		dl.AddDrawCmd(r.First, r.Count, screen, ctx.FontTextureID)
	}
	for _, h := range ctx.renderOrder(ctx.FrameCount) {
		p := &ctx.panels[h]
		clip := p.Rect()
		for _, r := range p.Elements {
			dl.AddDrawCmd(r.First, r.Count, clip, ctx.FontTextureID)
		}
	}
	dl.AddDrawCmd(overlayStart, overlayEnd-overlayStart, screen, ctx.FontTextureID)

	ctx.inFrame = false
	return ctx.err
}

// flushSegment closes the index run written since the last switch and
// hands it to the panel being built, or to the loose list.
func (ctx *Context) flushSegment() {
	end := ctx.DrawList.IndexCount()
	if end > ctx.segStart {
		r := ElementRange{First: ctx.segStart, Count: end - ctx.segStart}
		if h := ctx.currentPanel(); h != NoPanel {
			ctx.panels[h].Elements = append(ctx.panels[h].Elements, r)
		} else {
			ctx.loose = append(ctx.loose, r)
		}
	}
	ctx.segStart = end
}

// fontSize returns the text size in pixels.
func (ctx *Context) fontSize() float32 {
	if ctx.style.FontSize > 0 {
		return ctx.style.FontSize
	}
	if ctx.font != nil {
		return ctx.font.Size
	}
	return 13
}

// CalcTextSize measures text at the current font size. Results are cached.
func (ctx *Context) CalcTextSize(text string) Vec2 {
	k := textKey{text: text, size: ctx.fontSize()}
	if v, ok := ctx.textCache.Get(k); ok {
		return v
	}
	v := CalcTextSize(ctx.font, text, k.size)
	if ctx.font == nil {
		v.Y = k.size
	}
	ctx.textCache.Set(k, v)
	return v
}

// addText draws text at the current font size.
func (ctx *Context) addText(text string, pos Vec2, col uint32) Vec2 {
	if ctx.font == nil {
		ctx.setErr(ErrNoFont)
		return Vec2{}
	}
	size, err := ctx.DrawList.AddText(ctx.font, text, pos, ctx.fontSize(), col)
	ctx.emit(err)
	return size
}

// ActivePanel returns the panel that received the last click.
func (ctx *Context) ActivePanel() PanelHandle { return ctx.activePanel }

// HoveredPanel returns the topmost panel under the mouse this frame.
func (ctx *Context) HoveredPanel() PanelHandle { return ctx.hoveredPanel }

// WantCaptureMouse reports whether the mouse is over a panel or a panel
// interaction is in progress.
func (ctx *Context) WantCaptureMouse() bool {
	return ctx.hoveredPanel != NoPanel || ctx.dragging != NoPanel || ctx.resizing != NoPanel
}
