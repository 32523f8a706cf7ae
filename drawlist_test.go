package gui

import (
	"errors"
	"testing"
)

func TestDrawListCapacity(t *testing.T) {
	const quads = 16
	dl := NewDrawList(quads * 4)
	if dl.MaxIndices() != quads*6 {
		t.Fatalf("Expected %d indices of capacity, got %d", quads*6, dl.MaxIndices())
	}

	for i := 0; i < quads; i++ {
		if err := dl.AddRectFilled(Vec2{0, 0}, Vec2{10, 10}, ColorWhite); err != nil {
			t.Fatalf("quad %d: unexpected error %v", i, err)
		}
	}
	err := dl.AddRectFilled(Vec2{0, 0}, Vec2{10, 10}, ColorWhite)
	if !errors.Is(err, ErrDrawListFull) {
		t.Fatalf("Expected ErrDrawListFull for quad %d, got %v", quads+1, err)
	}
	if len(dl.VtxBuffer) != quads*4 || len(dl.IdxBuffer) != quads*6 {
		t.Errorf("Expected a rejected quad to write nothing, have %d vertices %d indices",
			len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestDrawListQuadLayout(t *testing.T) {
	dl := NewDrawList(64)
	dl.SetWhitePixel([2]float32{0.25, 0.5})
	_ = dl.AddRectFilled(Vec2{1, 2}, Vec2{3, 4}, ColorRed)
	_ = dl.AddRectFilled(Vec2{5, 6}, Vec2{7, 8}, ColorRed)

	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	for i, idx := range want {
		if dl.IdxBuffer[i] != idx {
			t.Fatalf("Expected indices %v, got %v", want, dl.IdxBuffer)
		}
	}
	corners := [4][2]float32{{1, 2}, {1, 4}, {3, 4}, {3, 2}}
	for i, c := range corners {
		v := dl.VtxBuffer[i]
		if v.Pos != c {
			t.Errorf("vertex %d: expected %v, got %v", i, c, v.Pos)
		}
		if v.UV != [2]float32{0.25, 0.5} {
			t.Errorf("vertex %d: expected white pixel UV, got %v", i, v.UV)
		}
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := NewDrawList(64)
	if err := dl.AddRectFilled(Vec2{}, Vec2{10, 10}, 0x00FFFFFF); err != nil {
		t.Fatal(err)
	}
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected no geometry for alpha 0, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawListShapes(t *testing.T) {
	dl := NewDrawList(1024)

	if err := dl.AddRectOutline(Vec2{0, 0}, Vec2{10, 10}, ColorWhite); err != nil {
		t.Fatal(err)
	}
	if len(dl.VtxBuffer) != 16 || len(dl.IdxBuffer) != 24 {
		t.Errorf("Expected 4 segment quads, got %d vertices %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}

	dl.Clear()
	tri := []Vec2{{0, 0}, {10, 0}, {0, 10}}
	if err := dl.AddPolyFilled(tri, ColorWhite); err != nil {
		t.Fatal(err)
	}
	if len(dl.VtxBuffer) != 3 || len(dl.IdxBuffer) != 3 {
		t.Errorf("Expected one triangle, got %d vertices %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}

	dl.Clear()
	if err := dl.AddCircleFilled(Vec2{50, 50}, 10, ColorWhite); err != nil {
		t.Fatal(err)
	}
	if len(dl.VtxBuffer) != circleSegments+2 {
		t.Errorf("Expected %d fan vertices, got %d", circleSegments+2, len(dl.VtxBuffer))
	}
	// First rim point sits at angle 0, to the right of the center.
	if p := dl.VtxBuffer[1].Pos; p[0] < 59.99 || p[0] > 60.01 || p[1] < 49.99 || p[1] > 50.01 {
		t.Errorf("Expected first rim point at (60, 50), got %v", p)
	}

	dl.Clear()
	if err := dl.AddColorQuad(Vec2{0, 0}, Vec2{1, 1}, 1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	got := [4]uint32{dl.VtxBuffer[0].Color, dl.VtxBuffer[1].Color, dl.VtxBuffer[2].Color, dl.VtxBuffer[3].Color}
	if got != [4]uint32{1, 3, 4, 2} {
		t.Errorf("Expected corner colors tl, bl, br, tr = 1 3 4 2, got %v", got)
	}
}

func TestDrawListPolyOutlineFull(t *testing.T) {
	dl := NewDrawList(8)
	err := dl.AddPolyOutline([]Vec2{{0, 0}, {1, 0}, {1, 1}}, ColorWhite, 1, true)
	if !errors.Is(err, ErrDrawListFull) {
		t.Fatalf("Expected ErrDrawListFull, got %v", err)
	}
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected nothing written, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestAddTextAdvances(t *testing.T) {
	f := loadTestFont(t)
	dl := NewDrawList(1024)

	size, err := dl.AddText(f, "Hi", Vec2{10, 10}, f.Size, ColorWhite)
	if err != nil {
		t.Fatal(err)
	}
	if size.X <= 0 || size.Y != f.Size {
		t.Errorf("Expected positive width and line height %v, got %v", f.Size, size)
	}
	if want := CalcTextSize(f, "Hi", f.Size); !vecNear(size, want) {
		t.Errorf("Expected CalcTextSize %v to match AddText %v", want, size)
	}
	if len(dl.VtxBuffer) != 8 {
		t.Errorf("Expected 2 glyph quads, got %d vertices", len(dl.VtxBuffer))
	}

	// A space advances without a quad; text stops at NUL.
	dl.Clear()
	_, _ = dl.AddText(f, "a b\x00c", Vec2{}, f.Size, ColorWhite)
	if len(dl.VtxBuffer) != 8 {
		t.Errorf("Expected quads for 'a' and 'b' only, got %d vertices", len(dl.VtxBuffer))
	}

	if _, err := dl.AddText(nil, "x", Vec2{}, 13, ColorWhite); !errors.Is(err, ErrNoFont) {
		t.Errorf("Expected ErrNoFont, got %v", err)
	}
}

func TestAddTextRecoverableInput(t *testing.T) {
	f := loadTestFont(t)
	tests := []struct {
		name  string
		text  string
		same  string
		quads int
	}{
		{"truncated two byte", "a\xC3", "a", 1},
		{"truncated three byte", "ab\xE2\x82", "ab", 2},
		{"lone latin1 byte", "\xE9", "", 0},
		{"outside loaded range", "a\u20ACb", "ab", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := NewDrawList(1024)
			size, err := dl.AddText(f, tt.text, Vec2{}, f.Size, ColorWhite)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(dl.VtxBuffer) != tt.quads*4 {
				t.Errorf("Expected %d glyph quads, got %d vertices", tt.quads, len(dl.VtxBuffer))
			}
			want := CalcTextSize(f, tt.same, f.Size)
			if got := CalcTextSize(f, tt.text, f.Size); !vecNear(got, want) {
				t.Errorf("Expected CalcTextSize %v, got %v", want, got)
			}
			if !vecNear(size, want) {
				t.Errorf("Expected AddText to advance %v, got %v", want, size)
			}
		})
	}
}
