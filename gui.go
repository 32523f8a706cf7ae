package gui

import (
	"fmt"

	"github.com/fadan/gui/font"
)

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system: it owns the Context and hands
// each finished frame to the renderer.
type GUI struct {
	renderer    Renderer
	style       Style
	font        *font.Font
	maxVertices int
	ctx         *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFont sets the font used for text.
func WithFont(f *font.Font) GUIOption {
	return func(g *GUI) { g.font = f }
}

// WithDrawListCapacity sets the vertex capacity of the frame's draw list.
func WithDrawListCapacity(maxVertices int) GUIOption {
	return func(g *GUI) { g.maxVertices = maxVertices }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:    renderer,
		style:       DefaultStyle(),
		maxVertices: DefaultMaxVertices,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.ctx = NewContext(g.maxVertices)
	g.ctx.SetStyle(g.style)
	g.ctx.SetFont(g.font)
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	g.ctx.FontTextureID = g.renderer.FontTextureID()
	g.ctx.BeginFrame(input, displaySize, deltaTime)
	return g.ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete. A frame error is returned
// without rendering the frame.
func (g *GUI) End() error {
	if err := g.ctx.EndFrame(); err != nil {
		return fmt.Errorf("gui: frame %d: %w", g.ctx.FrameCount, err)
	}
	return g.renderer.Render(g.ctx.DrawList)
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.ctx.Style()
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
	g.ctx.SetStyle(style)
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
