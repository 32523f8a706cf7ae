package font

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// stream assembles a compressed stream around hand written tokens.
func stream(payload []byte, tokens ...[]byte) []byte {
	var b bytes.Buffer
	var hdr [16]byte
	binary.BigEndian.PutUint32(hdr[0:], compressedMagic)
	binary.BigEndian.PutUint32(hdr[8:], uint32(len(payload)))
	b.Write(hdr[:])
	for _, t := range tokens {
		b.Write(t)
	}
	var tail [6]byte
	tail[0], tail[1] = 0x05, 0xFA
	binary.BigEndian.PutUint32(tail[2:], Adler32(payload))
	b.Write(tail[:])
	return b.Bytes()
}

// storeOnly encodes data as a run of long literal tokens.
func storeOnly(data []byte) [][]byte {
	var tokens [][]byte
	for len(data) > 0 {
		n := min(len(data), 0x10000)
		t := []byte{0x07, byte((n - 1) >> 8), byte(n - 1)}
		tokens = append(tokens, append(t, data[:n]...))
		data = data[n:]
	}
	return tokens
}

func TestAdler32(t *testing.T) {
	if got := Adler32(nil); got != 1 {
		t.Errorf("Expected adler32 of empty input to be 1, got %d", got)
	}
	if got := Adler32([]byte("123456789")); got != 0x091E01DE {
		t.Errorf("Expected 0x091E01DE, got 0x%08X", got)
	}
}

func TestDecompressFixture(t *testing.T) {
	want := []byte("abcabcabcabcXYZXYZ!")

	// "abc" literal, 9 byte match at distance 3, "XYZ" literal, 3 byte
	// match at distance 3 (long form), "!" literal.
	src := stream(want,
		[]byte{0x22, 'a', 'b', 'c'},
		[]byte{0x80 + 8, 2},
		[]byte{0x22, 'X', 'Y', 'Z'},
		[]byte{0x40, 0x02, 2},
		[]byte{0x20, '!'},
	)

	n, err := DecompressedLength(src)
	if err != nil {
		t.Fatalf("DecompressedLength: %v", err)
	}
	if n != len(want) {
		t.Errorf("Expected header length %d, got %d", len(want), n)
	}

	got, err := Decompress(src)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if len(got) != n {
		t.Errorf("Expected output length to match header %d, got %d", n, len(got))
	}
}

func TestDecompressLongTokens(t *testing.T) {
	want := bytes.Repeat([]byte("0123456789"), 40)

	src := stream(want,
		// 10 byte literal using the two byte length form.
		append([]byte{0x08, 0x09}, want[:10]...),
		// 390 byte match at distance 10: three byte distance, two byte length.
		[]byte{0x04, 0x00, 0x00, 0x09, 0x01, 0x85},
	)
	got, err := Decompress(src)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %d repeated bytes, got %d bytes", len(want), len(got))
	}
}

func TestDecompressStored(t *testing.T) {
	want := make([]byte, 70000)
	for i := range want {
		want[i] = byte(i * 7)
	}
	got, err := Decompress(stream(want, storeOnly(want)...))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("Expected stored stream to round trip")
	}
}

func TestDecompressErrors(t *testing.T) {
	good := stream([]byte("hello"), []byte{0x24, 'h', 'e', 'l', 'l', 'o'})

	badMagic := append([]byte(nil), good...)
	badMagic[0] = 0

	badSum := append([]byte(nil), good...)
	badSum[len(badSum)-1] ^= 0xFF

	shortLen := append([]byte(nil), good...)
	binary.BigEndian.PutUint32(shortLen[8:], 3)

	longLen := append([]byte(nil), good...)
	binary.BigEndian.PutUint32(longLen[8:], 9)

	farMatch := stream([]byte("aa"), []byte{0x20, 'a'}, []byte{0x80, 5})

	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{"magic", badMagic, ErrBadMagic},
		{"checksum", badSum, ErrChecksum},
		{"overrun", shortLen, ErrCorrupt},
		{"short output", longLen, ErrLength},
		{"match before start", farMatch, ErrCorrupt},
		{"truncated header", good[:8], ErrCorrupt},
		{"missing terminator", good[:len(good)-6], ErrCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompress(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}
