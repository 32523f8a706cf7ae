// Package format implements a bounded printf subset for building label
// text without allocating.
//
// Format writes into a caller-owned buffer, never past its end, and always
// NUL-terminates. Supported verbs:
//
//	%d %i     signed decimal
//	%u        unsigned decimal
//	%o        octal
//	%x %X     hexadecimal
//	%p        pointer-sized hexadecimal with a 0x prefix
//	%f %F     fixed-point float
//	%e %E     float in scientific notation
//	%g %G     shortest of %e and %f
//	%s        string or []byte
//	%c        rune
//	%n        stores the bytes written so far into an *int
//	%%        literal percent
//
// Flags "-+ #0", width and precision (numbers or "*") follow C. The length
// modifiers hh h l ll j z t L are accepted and ignored; the argument's Go
// type decides its size.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrBadVerb is returned for an unknown conversion or a trailing '%'.
	ErrBadVerb = errors.New("format: bad verb")
	// ErrMissingArg is returned when the arguments run out or one does not
	// fit its verb.
	ErrMissingArg = errors.New("format: missing or mismatched argument")
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// writer appends to dst while keeping one byte for the terminator.
type writer struct {
	dst []byte
	n   int
}

func (w *writer) full() bool { return w.n >= len(w.dst)-1 }

func (w *writer) byte(c byte) {
	if !w.full() {
		w.dst[w.n] = c
		w.n++
	}
}

func (w *writer) bytes(b []byte) {
	w.n += copy(w.dst[w.n:len(w.dst)-1], b)
}

func (w *writer) string(s string) {
	w.n += copy(w.dst[w.n:len(w.dst)-1], s)
}

func (w *writer) repeat(c byte, count int) {
	for ; count > 0 && !w.full(); count-- {
		w.dst[w.n] = c
		w.n++
	}
}

// verb holds the parsed flags of one conversion.
type verb struct {
	minus, plus, space, sharp, zero bool
	width                           int
	prec                            int // -1 when absent
}

// Format writes the formatted text into dst, truncated to len(dst)-1
// bytes, followed by a NUL. It returns the number of bytes written before
// the NUL. On error the text produced so far is kept and terminated.
func Format(dst []byte, format string, args ...any) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	w := &writer{dst: dst}
	n, err := run(w, format, args)
	dst[n] = 0
	return n, err
}

func run(w *writer, format string, args []any) (int, error) {
	argi := 0
	next := func() (any, bool) {
		if argi >= len(args) {
			return nil, false
		}
		argi++
		return args[argi-1], true
	}

	for i := 0; i < len(format) && !w.full(); i++ {
		c := format[i]
		if c != '%' {
			w.byte(c)
			continue
		}
		i++
		if i >= len(format) {
			return w.n, fmt.Errorf("%w: trailing %%", ErrBadVerb)
		}

		v := verb{prec: -1}
	flags:
		for ; i < len(format); i++ {
			switch format[i] {
			case '-':
				v.minus = true
			case '+':
				v.plus = true
			case ' ':
				v.space = true
			case '#':
				v.sharp = true
			case '0':
				v.zero = true
			default:
				break flags
			}
		}

		// Width
		if i < len(format) && format[i] == '*' {
			a, ok := next()
			if !ok {
				return w.n, fmt.Errorf("%w: width", ErrMissingArg)
			}
			n, ok := toInt(a)
			if !ok {
				return w.n, fmt.Errorf("%w: width got %T", ErrMissingArg, a)
			}
			if n < 0 {
				v.minus = true
				n = -n
			}
			v.width = n
			i++
		} else {
			v.width, i = atoi(format, i)
		}

		// Precision
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				a, ok := next()
				if !ok {
					return w.n, fmt.Errorf("%w: precision", ErrMissingArg)
				}
				n, ok := toInt(a)
				if !ok {
					return w.n, fmt.Errorf("%w: precision got %T", ErrMissingArg, a)
				}
				if n >= 0 {
					v.prec = n
				}
				i++
			} else {
				v.prec, i = atoi(format, i)
			}
		}

		// Length modifiers
		for i < len(format) && isLengthModifier(format[i]) {
			i++
		}
		if i >= len(format) {
			return w.n, fmt.Errorf("%w: trailing %%", ErrBadVerb)
		}

		conv := format[i]
		switch conv {
		case '%':
			w.byte('%')
			continue
		case 'd', 'i', 'u', 'o', 'x', 'X', 'p', 'f', 'F', 'e', 'E', 'g', 'G', 's', 'c', 'n':
		default:
			return w.n, fmt.Errorf("%w: %%%c", ErrBadVerb, conv)
		}

		a, ok := next()
		if !ok {
			return w.n, fmt.Errorf("%w: %%%c", ErrMissingArg, conv)
		}
		if !writeArg(w, conv, v, a) {
			return w.n, fmt.Errorf("%w: %%%c got %T", ErrMissingArg, conv, a)
		}
	}
	return w.n, nil
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'j', 'z', 't', 'L':
		return true
	}
	return false
}

func atoi(s string, i int) (int, int) {
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, i
}

// writeArg formats one argument. It reports false when a does not fit the
// conversion.
func writeArg(w *writer, conv byte, v verb, a any) bool {
	var tmp [72]byte
	switch conv {
	case 'd', 'i':
		x, ok := toInteger(a)
		if !ok {
			return false
		}
		mag, neg := x.magnitude()
		pad(w, v, signPrefix(v, neg), strconv.AppendUint(tmp[:0], mag, 10))
	case 'u':
		x, ok := toInteger(a)
		if !ok {
			return false
		}
		pad(w, v, "", strconv.AppendUint(tmp[:0], x.bits, 10))
	case 'o':
		x, ok := toInteger(a)
		if !ok {
			return false
		}
		digits := appendBase(tmp[:0], x.bits, 8, lowerDigits)
		prefix := ""
		if v.sharp && digits[0] != '0' {
			prefix = "0"
		}
		pad(w, v, prefix, digits)
	case 'x', 'X':
		x, ok := toInteger(a)
		if !ok {
			return false
		}
		digits, prefix := lowerDigits, "0x"
		if conv == 'X' {
			digits, prefix = upperDigits, "0X"
		}
		if !v.sharp || x.bits == 0 {
			prefix = ""
		}
		pad(w, v, prefix, appendBase(tmp[:0], x.bits, 16, digits))
	case 'p':
		x, ok := toInteger(a)
		if !ok {
			return false
		}
		v.zero = false
		pad(w, v, "0x", appendBase(tmp[:0], x.bits, 16, lowerDigits))
	case 'f', 'F', 'e', 'E', 'g', 'G':
		f, ok := toFloat(a)
		if !ok {
			return false
		}
		prec := v.prec
		if prec < 0 {
			prec = 6
		}
		if conv == 'F' {
			conv = 'f'
		}
		body := strconv.AppendFloat(tmp[:0], f, conv, prec, 64)
		neg := false
		if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
			neg = body[0] == '-'
			body = body[1:]
		}
		v.prec = -1
		pad(w, v, signPrefix(v, neg), body)
	case 's':
		var s string
		switch x := a.(type) {
		case string:
			s = x
		case []byte:
			s = string(x)
		default:
			return false
		}
		if v.prec >= 0 && v.prec < len(s) {
			s = s[:v.prec]
		}
		v.zero, v.prec = false, -1
		padString(w, v, s)
	case 'c':
		r, ok := toRune(a)
		if !ok {
			return false
		}
		v.zero, v.prec = false, -1
		pad(w, v, "", utf8.AppendRune(tmp[:0], r))
	case 'n':
		switch p := a.(type) {
		case *int:
			*p = w.n
		case *int32:
			*p = int32(w.n)
		case *int64:
			*p = int64(w.n)
		default:
			return false
		}
	}
	return true
}

func signPrefix(v verb, neg bool) string {
	switch {
	case neg:
		return "-"
	case v.plus:
		return "+"
	case v.space:
		return " "
	}
	return ""
}

// pad writes prefix and digits justified to the verb's width. A precision
// is the minimum digit count; the zero flag pads between prefix and digits.
func pad(w *writer, v verb, prefix string, digits []byte) {
	zeros := 0
	if v.prec > len(digits) {
		zeros = v.prec - len(digits)
	}
	fill := v.width - len(prefix) - zeros - len(digits)
	switch {
	case v.minus:
		w.string(prefix)
		w.repeat('0', zeros)
		w.bytes(digits)
		w.repeat(' ', fill)
	case v.zero && v.prec < 0:
		w.string(prefix)
		w.repeat('0', fill)
		w.bytes(digits)
	default:
		w.repeat(' ', fill)
		w.string(prefix)
		w.repeat('0', zeros)
		w.bytes(digits)
	}
}

func padString(w *writer, v verb, s string) {
	fill := v.width - len(s)
	if !v.minus {
		w.repeat(' ', fill)
	}
	w.string(s)
	if v.minus {
		w.repeat(' ', fill)
	}
}

func appendBase(dst []byte, x uint64, base uint64, digits string) []byte {
	var buf [64]byte
	i := len(buf)
	for {
		i--
		buf[i] = digits[x%base]
		x /= base
		if x == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}
