// Package font builds glyph atlases for the gui package.
//
// An atlas is built once: the TrueType data is parsed, every glyph in the
// configured ranges is packed into a fixed width texture together with a
// small reserved bitmap, rasterized with horizontal oversampling and expanded
// to white RGBA so glyphs can be tinted by vertex color.
package font

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Range is an inclusive codepoint range.
type Range struct {
	First, Last rune
}

// Latin1 covers printable ASCII and the Latin-1 supplement.
var Latin1 = Range{First: 0x20, Last: 0xFF}

// Config controls atlas construction.
type Config struct {
	Size             float32 // pixel height, ascent to descent
	Ranges           []Range
	TextureWidth     int
	MaxTextureHeight int
	Padding          int
	OversampleH      int
	OversampleV      int
	DefaultTexture   Bitmap
}

// DefaultConfig returns the 13px Latin-1 configuration.
func DefaultConfig() Config {
	return Config{
		Size:             13,
		Ranges:           []Range{Latin1},
		TextureWidth:     256,
		MaxTextureHeight: 1024 * 32,
		Padding:          1,
		OversampleH:      3,
		OversampleV:      1,
		DefaultTexture:   DefaultCursor,
	}
}

// ErrConfig is returned for unusable configuration values.
var ErrConfig = errors.New("font: invalid config")

func (c Config) validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size %v", ErrConfig, c.Size)
	case c.TextureWidth <= 0 || c.MaxTextureHeight <= 0:
		return fmt.Errorf("%w: texture %dx%d", ErrConfig, c.TextureWidth, c.MaxTextureHeight)
	case c.OversampleH < 1 || c.OversampleH > 8 || c.OversampleV < 1 || c.OversampleV > 8:
		return fmt.Errorf("%w: oversample %dx%d", ErrConfig, c.OversampleH, c.OversampleV)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding %d", ErrConfig, c.Padding)
	case len(c.Ranges) == 0:
		return fmt.Errorf("%w: no glyph ranges", ErrConfig)
	}
	for _, r := range c.Ranges {
		if r.First < 0 || r.Last < r.First {
			return fmt.Errorf("%w: range %#x-%#x", ErrConfig, r.First, r.Last)
		}
	}
	return c.DefaultTexture.Validate()
}

// Glyph is one packed glyph. X0..Y1 are quad offsets from the pen position
// at the top of the line; U0..V1 address the atlas.
type Glyph struct {
	Codepoint      rune
	AdvanceX       float32
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Font is a built atlas with its glyph metrics. It is immutable.
type Font struct {
	Size    float32
	Ascent  float32
	Descent float32 // negative, below the baseline

	Texture            *image.NRGBA
	WhitePixel         [2]float32 // UV of an opaque white texel
	DefaultTextureRect image.Rectangle

	Glyphs []Glyph

	advanceX   []float32
	glyphIndex []int32
}

// Glyph returns the glyph for r. Codepoints outside the loaded ranges and
// glyphs without ink report false.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	if r < 0 || int(r) >= len(f.glyphIndex) {
		return nil, false
	}
	i := f.glyphIndex[r]
	if i < 0 {
		return nil, false
	}
	return &f.Glyphs[i], true
}

// Advance returns the horizontal advance of r at the native size.
func (f *Font) Advance(r rune) (float32, bool) {
	if r < 0 || int(r) >= len(f.advanceX) {
		return 0, false
	}
	a := f.advanceX[r]
	return a, a > 0
}

// LineHeight returns the native pixel size.
func (f *Font) LineHeight() float32 {
	return f.Size
}

// UpperPow2 rounds v up to the next power of two. Zero rounds to one.
func UpperPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// BuildCompressedBase85 builds a font from base-85 text holding a compressed
// TrueType file.
func BuildCompressedBase85(text string, cfg Config) (*Font, error) {
	packed, err := Decode85(text)
	if err != nil {
		return nil, fmt.Errorf("decode font: %w", err)
	}
	ttf, err := Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("decompress font: %w", err)
	}
	return Build(ttf, cfg)
}

// glyphJob tracks one codepoint through packing and rasterization.
type glyphJob struct {
	r       rune
	index   sfnt.GlyphIndex
	advance float32
	x0, y0  int // oversampled box origin relative to the pen
	w, h    int // oversampled box size, without prefilter slack
	rect    int // index into the pack list, -1 for glyphs without ink
}

// Build parses ttf and builds the atlas described by cfg.
func Build(ttf []byte, cfg Config) (*Font, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sf, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	var buf sfnt.Buffer
	upem := fixed.I(int(sf.UnitsPerEm()))
	unscaled, err := sf.Metrics(&buf, upem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	// Scale so that ascent minus descent spans cfg.Size pixels.
	span := float64(unscaled.Ascent+unscaled.Descent) / 64
	if span <= 0 {
		return nil, fmt.Errorf("parse font: %w: zero line height", ErrConfig)
	}
	scale := float64(cfg.Size) / span
	ppem := fixed.Int26_6(math.Round(scale * float64(sf.UnitsPerEm()) * 64))

	f := &Font{
		Size:    cfg.Size,
		Ascent:  float32(scale * float64(unscaled.Ascent) / 64),
		Descent: -float32(scale * float64(unscaled.Descent) / 64),
	}

	oh, ov := cfg.OversampleH, cfg.OversampleV
	var jobs []glyphJob
	var rects []PackRect
	maxRune := rune(0)
	for _, rg := range cfg.Ranges {
		maxRune = max(maxRune, rg.Last)
		for r := rg.First; r <= rg.Last; r++ {
			gi, err := sf.GlyphIndex(&buf, r)
			if err != nil {
				return nil, fmt.Errorf("glyph index %U: %w", r, err)
			}
			if gi == 0 {
				continue
			}
			bounds, advance, err := sf.GlyphBounds(&buf, gi, ppem, font.HintingNone)
			if err != nil {
				return nil, fmt.Errorf("glyph bounds %U: %w", r, err)
			}
			job := glyphJob{
				r:       r,
				index:   gi,
				advance: float32(advance) / 64,
				x0:      int(math.Floor(float64(bounds.Min.X) / 64 * float64(oh))),
				y0:      int(math.Floor(float64(bounds.Min.Y) / 64 * float64(ov))),
				rect:    -1,
			}
			job.w = int(math.Ceil(float64(bounds.Max.X)/64*float64(oh))) - job.x0
			job.h = int(math.Ceil(float64(bounds.Max.Y)/64*float64(ov))) - job.y0
			if job.w > 0 && job.h > 0 {
				job.rect = len(rects)
				rects = append(rects, PackRect{W: job.w + oh - 1, H: job.h + ov - 1})
			}
			jobs = append(jobs, job)
		}
	}

	packer := NewPacker(cfg.TextureWidth, cfg.MaxTextureHeight, cfg.Padding)
	dw, dh := cfg.DefaultTexture.ReservedSize()
	dx, dy, ok := packer.Allocate(dw, dh)
	if !ok {
		return nil, fmt.Errorf("pack default texture %dx%d: %w", dw, dh, ErrAtlasFull)
	}
	f.DefaultTextureRect = image.Rect(dx, dy, dx+dw, dy+dh)
	if err := packer.Pack(rects); err != nil {
		return nil, fmt.Errorf("pack %d glyphs: %w", len(rects), err)
	}

	width := cfg.TextureWidth
	height := int(UpperPow2(uint32(packer.Height())))
	coverage := image.NewAlpha(image.Rect(0, 0, width, height))

	writeBitmap(coverage, dx, dy, cfg.DefaultTexture)

	f.advanceX = make([]float32, maxRune+1)
	f.glyphIndex = make([]int32, maxRune+1)
	for i := range f.glyphIndex {
		f.glyphIndex[i] = -1
	}

	subX := oversampleShift(oh)
	subY := oversampleShift(ov)
	translateY := float32(int32(f.Ascent))
	iw, ih := 1/float32(width), 1/float32(height)

	for _, job := range jobs {
		f.advanceX[job.r] = job.advance
		if job.rect < 0 {
			continue
		}
		pr := rects[job.rect]
		if err := rasterize(coverage, sf, &buf, job, pr, ppem, oh, ov); err != nil {
			return nil, err
		}
		prefilter(coverage, pr, oh, ov)

		f.glyphIndex[job.r] = int32(len(f.Glyphs))
		f.Glyphs = append(f.Glyphs, Glyph{
			Codepoint: job.r,
			AdvanceX:  job.advance,
			X0:        float32(job.x0)/float32(oh) + subX,
			Y0:        float32(job.y0)/float32(ov) + subY + translateY,
			X1:        float32(job.x0+pr.W)/float32(oh) + subX,
			Y1:        float32(job.y0+pr.H)/float32(ov) + subY + translateY,
			U0:        float32(pr.X) * iw,
			V0:        float32(pr.Y) * ih,
			U1:        float32(pr.X+pr.W) * iw,
			V1:        float32(pr.Y+pr.H) * ih,
		})
	}

	f.Texture = expandWhite(coverage)
	// The reserved rect origin doubles as the solid fill texel.
	f.Texture.SetNRGBA(dx, dy, whiteTexel(0xFF))
	f.WhitePixel = [2]float32{(float32(dx) + 0.5) * iw, (float32(dy) + 0.5) * ih}

	Logger().Debug("font: atlas built",
		"size", cfg.Size, "width", width, "height", height,
		"glyphs", len(f.Glyphs), "codepoints", len(jobs))
	return f, nil
}

// oversampleShift centers an oversampled bitmap on the pixel grid.
func oversampleShift(n int) float32 {
	if n == 0 {
		return 0
	}
	return -float32(n-1) / (2 * float32(n))
}

// writeBitmap stores the fill copy of b at (x, y) and the outline copy one
// gutter pixel to its right.
func writeBitmap(dst *image.Alpha, x, y int, b Bitmap) {
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			c := b.Pix[row*b.W+col]
			if c == '.' {
				dst.Pix[dst.PixOffset(x+col, y+row)] = 0xFF
			}
			if c == 'X' {
				dst.Pix[dst.PixOffset(x+col+b.W+1, y+row)] = 0xFF
			}
		}
	}
}

// rasterize fills the glyph outline into its packed rect.
func rasterize(dst *image.Alpha, sf *sfnt.Font, buf *sfnt.Buffer, job glyphJob, pr PackRect, ppem fixed.Int26_6, oh, ov int) error {
	segs, err := sf.LoadGlyph(buf, job.index, ppem, nil)
	if err != nil {
		return fmt.Errorf("load glyph %U: %w", job.r, err)
	}

	sx, sy := float32(oh), float32(ov)
	ox, oy := float32(job.x0), float32(job.y0)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64*sx - ox, float32(p.Y)/64*sy - oy
	}

	z := vector.NewRasterizer(job.w, job.h)
	z.DrawOp = draw.Src
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.ClosePath()
			x, y := pt(seg.Args[0])
			z.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()

	r := image.Rect(pr.X, pr.Y, pr.X+job.w, pr.Y+job.h)
	z.Draw(dst, r, image.Opaque, image.Point{})
	return nil
}

// prefilter box-filters an oversampled rect so that the extra samples blend
// into one texel. Kernel widths above 8 are rejected by Config.validate.
func prefilter(dst *image.Alpha, pr PackRect, oh, ov int) {
	if oh > 1 {
		for row := 0; row < pr.H; row++ {
			start := dst.PixOffset(pr.X, pr.Y+row)
			boxFilter(dst.Pix, start, 1, pr.W, oh)
		}
	}
	if ov > 1 {
		for col := 0; col < pr.W; col++ {
			start := dst.PixOffset(pr.X+col, pr.Y)
			boxFilter(dst.Pix, start, dst.Stride, pr.H, ov)
		}
	}
}

// boxFilter runs a trailing box filter of width k over n samples spaced step apart.
func boxFilter(pix []byte, start, step, n, k int) {
	const mask = 7
	var ring [8]byte
	total := 0
	i := 0
	for ; i <= n-k; i++ {
		p := start + i*step
		total += int(pix[p]) - int(ring[i&mask])
		ring[(i+k)&mask] = pix[p]
		pix[p] = byte(total / k)
	}
	for ; i < n; i++ {
		p := start + i*step
		total -= int(ring[i&mask])
		pix[p] = byte(total / k)
	}
}

func whiteTexel(a uint8) color.NRGBA {
	return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: a}
}

// expandWhite converts coverage into white texels carrying the coverage as alpha.
func expandWhite(src *image.Alpha) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	for i, a := range src.Pix {
		p := dst.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = 0xFF, 0xFF, 0xFF, a
	}
	return dst
}
