package font

import (
	"errors"
	"sort"
)

// ErrAtlasFull is returned when a rectangle does not fit in the atlas.
var ErrAtlasFull = errors.New("font: atlas full")

// PackRect is a rectangle request for the packer. X and Y are filled in
// when Packed is true.
type PackRect struct {
	W, H   int
	X, Y   int
	Packed bool
}

// Packer implements skyline bottom-left rectangle packing.
//
// The skyline is the list of top edges of everything placed so far, ordered
// by x. A rectangle goes wherever its bottom would rest lowest; ties are
// broken by the least wasted area under it.
type Packer struct {
	width     int
	maxHeight int
	padding   int
	skyline   []skylineNode
	height    int // lowest y that covers every packed rect
}

type skylineNode struct {
	x, y, width int
}

// NewPacker creates a packer for a fixed width atlas that may grow down to
// maxHeight. padding is added to the right and bottom of every rectangle.
func NewPacker(width, maxHeight, padding int) *Packer {
	return &Packer{
		width:     width,
		maxHeight: maxHeight,
		padding:   padding,
		skyline:   []skylineNode{{x: 0, y: 0, width: width}},
	}
}

// Height returns the bottom of the tallest packed rectangle.
func (p *Packer) Height() int {
	return p.height
}

// Pack places rects, tallest first. Rects that do not fit are left with
// Packed false and ErrAtlasFull is returned after the rest are placed.
func (p *Packer) Pack(rects []PackRect) error {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := rects[order[a]], rects[order[b]]
		if ra.H != rb.H {
			return ra.H > rb.H
		}
		return ra.W > rb.W
	})

	var err error
	for _, i := range order {
		r := &rects[i]
		x, y, ok := p.Allocate(r.W, r.H)
		if !ok {
			err = ErrAtlasFull
			continue
		}
		r.X, r.Y, r.Packed = x, y, true
	}
	return err
}

// Allocate places a single w×h rectangle. Zero sized rectangles are placed
// at the origin without touching the skyline.
func (p *Packer) Allocate(w, h int) (x, y int, ok bool) {
	if w == 0 || h == 0 {
		return 0, 0, true
	}
	pw, ph := w+p.padding, h+p.padding
	if pw > p.width {
		return -1, -1, false
	}

	best := -1
	bestY, bestWaste := 0, 0
	for i := range p.skyline {
		y, waste, fits := p.fit(i, pw)
		if !fits || y+ph > p.maxHeight {
			continue
		}
		if best < 0 || y < bestY || (y == bestY && waste < bestWaste) {
			best, bestY, bestWaste = i, y, waste
		}
	}
	if best < 0 {
		return -1, -1, false
	}

	x = p.skyline[best].x
	p.insert(best, x, bestY+ph, pw)
	if bottom := bestY + ph; bottom > p.height {
		p.height = bottom
	}
	return x, bestY, true
}

// fit reports the y a rectangle of width w would rest at when its left edge
// sits on skyline node i, and the area wasted beneath it.
func (p *Packer) fit(i, w int) (y, waste int, ok bool) {
	x := p.skyline[i].x
	if x+w > p.width {
		return 0, 0, false
	}
	end := x + w
	last := i
	for j := i; j < len(p.skyline) && p.skyline[j].x < end; j++ {
		y = max(y, p.skyline[j].y)
		last = j
	}
	for j := i; j <= last; j++ {
		n := p.skyline[j]
		covered := min(n.x+n.width, end) - max(n.x, x)
		waste += (y - n.y) * covered
	}
	return y, waste, true
}

// insert raises the skyline to top over [x, x+w) and trims the nodes it covers.
func (p *Packer) insert(i, x, top, w int) {
	node := skylineNode{x: x, y: top, width: w}
	p.skyline = append(p.skyline[:i], append([]skylineNode{node}, p.skyline[i:]...)...)

	end := x + w
	j := i + 1
	for j < len(p.skyline) {
		n := &p.skyline[j]
		if n.x >= end {
			break
		}
		if n.x+n.width <= end {
			p.skyline = append(p.skyline[:j], p.skyline[j+1:]...)
			continue
		}
		n.width -= end - n.x
		n.x = end
		break
	}

	// Merge neighbours at the same height.
	merged := p.skyline[:1]
	for _, n := range p.skyline[1:] {
		last := &merged[len(merged)-1]
		if last.y == n.y {
			last.width += n.width
			continue
		}
		merged = append(merged, n)
	}
	p.skyline = merged
}
