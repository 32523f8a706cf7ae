package font

import (
	"errors"
	"fmt"
)

// ErrBase85 is returned for text that is not a whole number of 5-character groups.
var ErrBase85 = errors.New("font: malformed base85 data")

// decode85Byte maps one source character to its base-85 digit.
// The alphabet starts at '#' and skips the backslash.
func decode85Byte(c byte) uint32 {
	if c >= '\\' {
		return uint32(c) - 36
	}
	return uint32(c) - 35
}

// Decoded85Size returns the number of bytes Decode85 produces for n characters.
func Decoded85Size(n int) int {
	return ((n + 4) / 5) * 4
}

// Decode85 decodes base-85 text into binary. Every 5 characters become one
// little-endian 32-bit word.
func Decode85(src string) ([]byte, error) {
	if len(src)%5 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 5", ErrBase85, len(src))
	}

	dst := make([]byte, 0, Decoded85Size(len(src)))
	for i := 0; i < len(src); i += 5 {
		var digits [5]uint32
		for j := range digits {
			c := src[i+j]
			if c < '#' || c > '~' {
				return nil, fmt.Errorf("%w: invalid character %q at %d", ErrBase85, c, i+j)
			}
			digits[j] = decode85Byte(c)
		}
		tmp := digits[0] + 85*(digits[1]+85*(digits[2]+85*(digits[3]+85*digits[4])))
		dst = append(dst, byte(tmp), byte(tmp>>8), byte(tmp>>16), byte(tmp>>24))
	}
	return dst, nil
}
