package font

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/adler32"
)

const (
	compressedMagic  = 0x57bC0000
	compressedHeader = 16
)

// Errors returned by Decompress.
var (
	ErrBadMagic = errors.New("font: not a compressed stream")
	ErrCorrupt  = errors.New("font: corrupt compressed stream")
	ErrLength   = errors.New("font: decompressed length mismatch")
	ErrChecksum = errors.New("font: adler-32 checksum mismatch")
)

// Adler32 returns the Adler-32 checksum of data, seeded with 1.
func Adler32(data []byte) uint32 {
	return adler32.Checksum(data)
}

// DecompressedLength reads the output length stored in a compressed stream header.
func DecompressedLength(src []byte) (int, error) {
	if len(src) < compressedHeader {
		return 0, fmt.Errorf("%w: header truncated (%d bytes)", ErrCorrupt, len(src))
	}
	if binary.BigEndian.Uint32(src[0:]) != compressedMagic {
		return 0, ErrBadMagic
	}
	if binary.BigEndian.Uint32(src[4:]) != 0 {
		return 0, fmt.Errorf("%w: stream larger than 4GB", ErrCorrupt)
	}
	return int(binary.BigEndian.Uint32(src[8:])), nil
}

// decompressor walks the token stream. out has the exact capacity declared in
// the header and is never grown.
type decompressor struct {
	in  []byte
	pos int
	out []byte
}

// in2 and in3 read big-endian values relative to the current token.
func (d *decompressor) in2(x int) int {
	return int(d.in[d.pos+x])<<8 | int(d.in[d.pos+x+1])
}

func (d *decompressor) in3(x int) int {
	return int(d.in[d.pos+x])<<16 | d.in2(x+1)
}

// need reports whether n bytes of the current token are readable.
func (d *decompressor) need(n int) bool {
	return d.pos+n <= len(d.in)
}

func (d *decompressor) match(dist, length int) error {
	start := len(d.out) - dist
	if start < 0 {
		return fmt.Errorf("%w: back-reference before start of output", ErrCorrupt)
	}
	if len(d.out)+length > cap(d.out) {
		return fmt.Errorf("%w: match overruns output", ErrCorrupt)
	}
	// Byte by byte: source and destination may overlap.
	for i := 0; i < length; i++ {
		d.out = append(d.out, d.out[start+i])
	}
	return nil
}

func (d *decompressor) literal(at, length int) error {
	if at+length > len(d.in) {
		return fmt.Errorf("%w: literal runs past input", ErrCorrupt)
	}
	if len(d.out)+length > cap(d.out) {
		return fmt.Errorf("%w: literal overruns output", ErrCorrupt)
	}
	d.out = append(d.out, d.in[at:at+length]...)
	return nil
}

// token decodes one token. It reports false when the byte at pos is not a token.
func (d *decompressor) token() (bool, error) {
	i := d.in[d.pos]
	switch {
	case i >= 0x80:
		if !d.need(2) {
			return false, ErrCorrupt
		}
		err := d.match(int(d.in[d.pos+1])+1, int(i)-0x80+1)
		d.pos += 2
		return true, err
	case i >= 0x40:
		if !d.need(3) {
			return false, ErrCorrupt
		}
		err := d.match(d.in2(0)-0x4000+1, int(d.in[d.pos+2])+1)
		d.pos += 3
		return true, err
	case i >= 0x20:
		n := int(i) - 0x20 + 1
		err := d.literal(d.pos+1, n)
		d.pos += 1 + n
		return true, err
	case i >= 0x18:
		if !d.need(4) {
			return false, ErrCorrupt
		}
		err := d.match(d.in3(0)-0x180000+1, int(d.in[d.pos+3])+1)
		d.pos += 4
		return true, err
	case i >= 0x10:
		if !d.need(5) {
			return false, ErrCorrupt
		}
		err := d.match(d.in3(0)-0x100000+1, d.in2(3)+1)
		d.pos += 5
		return true, err
	case i >= 0x08:
		if !d.need(2) {
			return false, ErrCorrupt
		}
		n := d.in2(0) - 0x0800 + 1
		err := d.literal(d.pos+2, n)
		d.pos += 2 + n
		return true, err
	case i == 0x07:
		if !d.need(3) {
			return false, ErrCorrupt
		}
		n := d.in2(1) + 1
		err := d.literal(d.pos+3, n)
		d.pos += 3 + n
		return true, err
	case i == 0x06:
		if !d.need(5) {
			return false, ErrCorrupt
		}
		err := d.match(d.in3(1)+1, int(d.in[d.pos+4])+1)
		d.pos += 5
		return true, err
	case i == 0x04:
		if !d.need(6) {
			return false, ErrCorrupt
		}
		err := d.match(d.in3(1)+1, d.in2(4)+1)
		d.pos += 6
		return true, err
	}
	return false, nil
}

// Decompress expands a stream produced by the stb compressor. The stream is
// a 16 byte header, a run of literal and match tokens, the terminator
// 0x05 0xFA and a big-endian Adler-32 of the output.
func Decompress(src []byte) ([]byte, error) {
	olen, err := DecompressedLength(src)
	if err != nil {
		return nil, err
	}

	d := &decompressor{
		in:  src,
		pos: compressedHeader,
		out: make([]byte, 0, olen),
	}

	for {
		if d.pos >= len(src) {
			return nil, fmt.Errorf("%w: missing terminator", ErrCorrupt)
		}
		ok, err := d.token()
		if err != nil {
			return nil, fmt.Errorf("decompress at offset %d: %w", d.pos, err)
		}
		if ok {
			continue
		}

		if src[d.pos] != 0x05 || !d.need(6) || src[d.pos+1] != 0xFA {
			return nil, fmt.Errorf("%w: unknown token 0x%02x at offset %d", ErrCorrupt, src[d.pos], d.pos)
		}
		if len(d.out) != olen {
			return nil, fmt.Errorf("%w: got %d bytes, header says %d", ErrLength, len(d.out), olen)
		}
		want := binary.BigEndian.Uint32(src[d.pos+2:])
		if got := Adler32(d.out); got != want {
			return nil, fmt.Errorf("%w: got 0x%08x, want 0x%08x", ErrChecksum, got, want)
		}
		Logger().Debug("font: decompressed", "in", len(src), "out", olen)
		return d.out, nil
	}
}
