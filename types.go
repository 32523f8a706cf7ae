package gui

import "math"

// Vec2 represents a 2D vector for positions, sizes and UVs.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Hadamard returns the component-wise product.
func (v Vec2) Hadamard(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Length returns the Euclidean length.
func (v Vec2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l2 := v.X*v.X + v.Y*v.Y
	if l2 == 0 {
		return v
	}
	return v.Mul(InvSqrt(l2))
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: minf(v.X, other.X), Y: minf(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: maxf(v.X, other.X), Y: maxf(v.Y, other.Y)}
}

// Rect is an axis-aligned box from Min (top-left) to Max (bottom-right).
// Callers may transiently build inverted rects; they contain nothing.
type Rect struct {
	Min, Max Vec2
}

// RectFromPosSize builds a rect from its top-left corner and size.
func RectFromPosSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Contains reports whether p lies in the half-open box [Min, Max).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether two rects share any area.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// Size returns Max - Min.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Expand grows the rect by d on every side. Negative d shrinks it.
func (r Rect) Expand(d float32) Rect {
	return Rect{Min: r.Min.Sub(Vec2{d, d}), Max: r.Max.Add(Vec2{d, d})}
}

// Canon returns the rect with Min and Max ordered on both axes.
func (r Rect) Canon() Rect {
	return Rect{Min: r.Min.Min(r.Max), Max: r.Min.Max(r.Max)}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	UV    [2]float32 // Texture coordinates (u, v)
	Color uint32     // RGBA packed color
}

// DrawCmd is one indexed draw call over a slice of the index buffer.
type DrawCmd struct {
	ElemCount   uint32     // Number of indices to draw
	IndexOffset uint32     // First index in the index buffer
	ClipRect    [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID   uint32     // Texture to bind (0 = renderer's font atlas)
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// WithAlpha replaces the alpha byte of a packed color.
func WithAlpha(c uint32, a uint8) uint32 {
	return c&0x00FFFFFF | uint32(a)<<24
}

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Sin, Cos, Acos, Sqrt and InvSqrt are float32 wrappers over package math.
func Sin(x float32) float32  { return float32(math.Sin(float64(x))) }
func Cos(x float32) float32  { return float32(math.Cos(float64(x))) }
func Acos(x float32) float32 { return float32(math.Acos(float64(clampf(x, -1, 1)))) }
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// InvSqrt returns 1/sqrt(x).
func InvSqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
