package font

import "fmt"

// Bitmap is a small ASCII-art image. Pix holds W*H characters row by row.
// '.' marks fill pixels and 'X' marks outline pixels; anything else is empty.
type Bitmap struct {
	W, H int
	Pix  string
}

// Validate checks that Pix matches the declared size.
func (b Bitmap) Validate() error {
	if b.W < 0 || b.H < 0 || len(b.Pix) != b.W*b.H {
		return fmt.Errorf("font: bitmap is %d bytes, want %dx%d", len(b.Pix), b.W, b.H)
	}
	return nil
}

// ReservedSize is the atlas area a bitmap occupies: the fill and outline
// copies side by side with a one pixel gutter.
func (b Bitmap) ReservedSize() (w, h int) {
	if b.W == 0 || b.H == 0 {
		return 1, 1
	}
	return b.W*2 + 1, b.H + 1
}

// DefaultCursor is an arrow cursor drawn in ASCII art.
var DefaultCursor = Bitmap{
	W: 12,
	H: 19,
	Pix: "" +
		"X           " +
		"XX          " +
		"X.X         " +
		"X..X        " +
		"X...X       " +
		"X....X      " +
		"X.....X     " +
		"X......X    " +
		"X.......X   " +
		"X........X  " +
		"X.........X " +
		"X......XXXXX" +
		"X...X..X    " +
		"X..XX..X    " +
		"X.X  X..X   " +
		"XX   X..X   " +
		"X     X..X  " +
		"      X..X  " +
		"       XX   ",
}
