package font

import (
	"errors"
	"image"
	"testing"
)

func TestPackerNoOverlap(t *testing.T) {
	p := NewPacker(64, 1024, 1)
	var rects []PackRect
	for i := 0; i < 60; i++ {
		rects = append(rects, PackRect{W: 3 + i%11, H: 2 + (i*7)%13})
	}
	if err := p.Pack(rects); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	for i, a := range rects {
		if !a.Packed {
			t.Fatalf("rect %d not packed", i)
		}
		ra := image.Rect(a.X, a.Y, a.X+a.W+1, a.Y+a.H+1)
		if ra.Max.X > 64 || ra.Max.Y > p.Height() {
			t.Errorf("rect %d %v outside 64x%d", i, ra, p.Height())
		}
		for j := i + 1; j < len(rects); j++ {
			b := rects[j]
			rb := image.Rect(b.X, b.Y, b.X+b.W+1, b.Y+b.H+1)
			if ra.Overlaps(rb) {
				t.Errorf("rect %d %v overlaps rect %d %v", i, ra, j, rb)
			}
		}
	}
}

func TestPackerFirstRectAtOrigin(t *testing.T) {
	p := NewPacker(256, 32768, 1)
	x, y, ok := p.Allocate(25, 20)
	if !ok || x != 0 || y != 0 {
		t.Errorf("Expected first rect at origin, got (%d, %d) ok=%v", x, y, ok)
	}
	x, y, ok = p.Allocate(10, 5)
	if !ok || x != 26 || y != 0 {
		t.Errorf("Expected second rect beside the first at (26, 0), got (%d, %d) ok=%v", x, y, ok)
	}
}

func TestPackerFull(t *testing.T) {
	p := NewPacker(16, 16, 0)
	rects := []PackRect{{W: 16, H: 10}, {W: 16, H: 10}}
	err := p.Pack(rects)
	if !errors.Is(err, ErrAtlasFull) {
		t.Fatalf("Expected ErrAtlasFull, got %v", err)
	}
	if !rects[0].Packed || rects[1].Packed {
		t.Errorf("Expected only the first rect packed, got %v %v", rects[0].Packed, rects[1].Packed)
	}
	if _, _, ok := p.Allocate(17, 1); ok {
		t.Error("Expected a rect wider than the atlas to fail")
	}
}

func TestUpperPow2(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {100, 128}, {128, 128}, {129, 256},
	}
	for _, tt := range tests {
		if got := UpperPow2(tt.in); got != tt.want {
			t.Errorf("UpperPow2(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
