package gui

import (
	"fmt"

	"github.com/fadan/gui/font"
)

// DefaultMaxVertices is the vertex capacity used when none is configured.
const DefaultMaxVertices = 1 << 16

// circleSegments is the tessellation used by AddCircleFilled.
const circleSegments = 24

// DrawList accumulates geometry for a frame into fixed-capacity buffers.
// Indices are absolute into VtxBuffer, so a DrawCmd may reference any
// slice of IdxBuffer in any order.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint32  // Index data

	maxVertices int
	maxIndices  int
	whitePixel  [2]float32 // UV of an opaque white texel
}

// NewDrawList creates a draw list that holds at most maxVertices vertices
// and maxVertices/4*6 indices.
func NewDrawList(maxVertices int) *DrawList {
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}
	maxIndices := maxVertices / 4 * 6
	return &DrawList{
		CmdBuffer:   make([]DrawCmd, 0, 16),
		VtxBuffer:   make([]Vertex, 0, maxVertices),
		IdxBuffer:   make([]uint32, 0, maxIndices),
		maxVertices: maxVertices,
		maxIndices:  maxIndices,
	}
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
}

// SetWhitePixel sets the UV that solid shapes sample.
func (dl *DrawList) SetWhitePixel(uv [2]float32) {
	dl.whitePixel = uv
}

// MaxVertices returns the vertex capacity.
func (dl *DrawList) MaxVertices() int { return dl.maxVertices }

// MaxIndices returns the index capacity.
func (dl *DrawList) MaxIndices() int { return dl.maxIndices }

// IndexCount returns the number of indices written so far.
func (dl *DrawList) IndexCount() uint32 { return uint32(len(dl.IdxBuffer)) }

// AddDrawCmd appends a command drawing count indices starting at first.
// Empty ranges are dropped.
func (dl *DrawList) AddDrawCmd(first, count uint32, clip Rect, textureID uint32) {
	if count == 0 {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ElemCount:   count,
		IndexOffset: first,
		ClipRect:    [4]float32{clip.Min.X, clip.Min.Y, clip.Max.X, clip.Max.Y},
		TextureID:   textureID,
	})
}

// reserve checks that nv vertices and ni indices fit and returns the index
// of the first new vertex. Nothing is written when it fails.
func (dl *DrawList) reserve(nv, ni int) (uint32, error) {
	if len(dl.VtxBuffer)+nv > dl.maxVertices || len(dl.IdxBuffer)+ni > dl.maxIndices {
		return 0, fmt.Errorf("%w: have %d/%d vertices, %d/%d indices, need %d+%d",
			ErrDrawListFull, len(dl.VtxBuffer), dl.maxVertices, len(dl.IdxBuffer), dl.maxIndices, nv, ni)
	}
	return uint32(len(dl.VtxBuffer)), nil
}

// quad appends four vertices and the two triangles 0,1,2 and 0,2,3.
func (dl *DrawList) quad(v0, v1, v2, v3 Vertex) error {
	base, err := dl.reserve(4, 6)
	if err != nil {
		return err
	}
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	return nil
}

func (dl *DrawList) solid(p Vec2, col uint32) Vertex {
	return Vertex{Pos: [2]float32{p.X, p.Y}, UV: dl.whitePixel, Color: col}
}

// AddRectFilled draws a filled rectangle.
func (dl *DrawList) AddRectFilled(min, max Vec2, col uint32) error {
	if col&0xFF000000 == 0 { // Skip fully transparent
		return nil
	}
	return dl.quad(
		dl.solid(min, col),
		dl.solid(Vec2{min.X, max.Y}, col),
		dl.solid(max, col),
		dl.solid(Vec2{max.X, min.Y}, col),
	)
}

// AddRectOutline draws a closed one pixel outline.
func (dl *DrawList) AddRectOutline(min, max Vec2, col uint32) error {
	pts := [4]Vec2{min, {max.X, min.Y}, max, {min.X, max.Y}}
	return dl.AddPolyOutline(pts[:], col, 1, true)
}

// AddPolyFilled draws a convex polygon as a fan around its first point.
func (dl *DrawList) AddPolyFilled(points []Vec2, col uint32) error {
	n := len(points)
	if n < 3 || col&0xFF000000 == 0 {
		return nil
	}
	base, err := dl.reserve(n, (n-2)*3)
	if err != nil {
		return err
	}
	for _, p := range points {
		dl.VtxBuffer = append(dl.VtxBuffer, dl.solid(p, col))
	}
	for i := uint32(2); i < uint32(n); i++ {
		dl.IdxBuffer = append(dl.IdxBuffer, base, base+i-1, base+i)
	}
	return nil
}

// AddPolyOutline draws one quad per segment, offset by half the thickness
// along the segment normal. A closed outline adds the segment from the
// last point back to the first.
func (dl *DrawList) AddPolyOutline(points []Vec2, col uint32, thickness float32, closed bool) error {
	n := len(points)
	if n < 2 || col&0xFF000000 == 0 {
		return nil
	}
	segments := n - 1
	if closed {
		segments = n
	}
	if _, err := dl.reserve(segments*4, segments*6); err != nil {
		return err
	}
	for i := 0; i < segments; i++ {
		cur := points[i]
		next := points[(i+1)%n]
		d := next.Sub(cur).Normalize().Mul(0.5 * thickness)
		// The capacity check above covers every segment.
		_ = dl.quad(
			dl.solid(Vec2{cur.X + d.Y, cur.Y - d.X}, col),
			dl.solid(Vec2{next.X + d.Y, next.Y - d.X}, col),
			dl.solid(Vec2{next.X - d.Y, next.Y + d.X}, col),
			dl.solid(Vec2{cur.X - d.Y, cur.Y + d.X}, col),
		)
	}
	return nil
}

// AddArcFilled draws a pie slice from angle a0 to a1 (radians,
// counter-clockwise on screen).
func (dl *DrawList) AddArcFilled(center Vec2, radius float32, col uint32, a0, a1 float32, segments int) error {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Vec2, 0, segments+2)
	pts = append(pts, center)
	step := (a1 - a0) / float32(segments)
	for i := 0; i <= segments; i++ {
		a := a0 + step*float32(i)
		pts = append(pts, Vec2{center.X + Cos(a)*radius, center.Y - Sin(a)*radius})
	}
	return dl.AddPolyFilled(pts, col)
}

// AddCircleFilled draws a filled circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float32, col uint32) error {
	return dl.AddArcFilled(center, radius, col, 0, Tau, circleSegments)
}

// AddTexturedQuad draws an axis-aligned quad sampling [uvMin, uvMax].
func (dl *DrawList) AddTexturedQuad(min, max, uvMin, uvMax Vec2, col uint32) error {
	return dl.quad(
		Vertex{Pos: [2]float32{min.X, min.Y}, UV: [2]float32{uvMin.X, uvMin.Y}, Color: col},
		Vertex{Pos: [2]float32{min.X, max.Y}, UV: [2]float32{uvMin.X, uvMax.Y}, Color: col},
		Vertex{Pos: [2]float32{max.X, max.Y}, UV: [2]float32{uvMax.X, uvMax.Y}, Color: col},
		Vertex{Pos: [2]float32{max.X, min.Y}, UV: [2]float32{uvMax.X, uvMin.Y}, Color: col},
	)
}

// AddColorQuad draws a rectangle with a color per corner.
func (dl *DrawList) AddColorQuad(min, max Vec2, tl, tr, bl, br uint32) error {
	return dl.quad(
		dl.solid(min, tl),
		dl.solid(Vec2{min.X, max.Y}, bl),
		dl.solid(max, br),
		dl.solid(Vec2{max.X, min.Y}, tr),
	)
}

// AddText draws text with its top-left corner at pos and returns the
// advance of the run and the line height. Codepoints the font has no
// advance for are skipped. The run stops at the first NUL or truncated
// sequence.
func (dl *DrawList) AddText(f *font.Font, text string, pos Vec2, size float32, col uint32) (Vec2, error) {
	if f == nil {
		return Vec2{}, ErrNoFont
	}
	scale := size / f.Size
	x := pos.X
	for len(text) > 0 {
		r, n := decodeString(text)
		// NUL and a sequence cut short by the end of text both end the run
		if r == 0 {
			break
		}
		text = text[n:]
		adv, ok := f.Advance(r)
		if !ok {
			continue
		}
		if g, ok := f.Glyph(r); ok {
			err := dl.AddTexturedQuad(
				Vec2{x + g.X0*scale, pos.Y + g.Y0*scale},
				Vec2{x + g.X1*scale, pos.Y + g.Y1*scale},
				Vec2{g.U0, g.V0}, Vec2{g.U1, g.V1}, col)
			if err != nil {
				return Vec2{x - pos.X, size}, err
			}
		}
		x += adv * scale
	}
	return Vec2{x - pos.X, size}, nil
}

// CalcTextSize measures text the same way AddText lays it out.
func CalcTextSize(f *font.Font, text string, size float32) Vec2 {
	if f == nil {
		return Vec2{}
	}
	scale := size / f.Size
	var w float32
	for len(text) > 0 {
		r, n := decodeString(text)
		if r == 0 {
			break
		}
		text = text[n:]
		if adv, ok := f.Advance(r); ok {
			w += adv * scale
		}
	}
	return Vec2{w, size}
}
