package gui

// DecodeUTF8 decodes the codepoint at the start of b and returns it with the
// length of its sequence. The lead byte alone decides the length; a sequence
// that runs past the end of b decodes to 0 but still reports its full
// length so that a caller's cursor always advances. An empty b returns (0, 0).
func DecodeUTF8(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0:
		if len(b) < 2 {
			return 0, 2
		}
		return rune(c&0x1F)<<6 | rune(b[1]&0x3F), 2
	case c&0xF0 == 0xE0:
		if len(b) < 3 {
			return 0, 3
		}
		return rune(c&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	default:
		if len(b) < 4 {
			return 0, 4
		}
		return rune(c&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	}
}

// decodeString is DecodeUTF8 over a string without copying it.
func decodeString(s string) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	var buf [4]byte
	n := copy(buf[:], s)
	return DecodeUTF8(buf[:n])
}
