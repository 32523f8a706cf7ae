package format

// integer is an integer argument: its bits at the argument's own width
// and, for signed types, its value.
type integer struct {
	bits   uint64
	value  int64
	signed bool
}

// magnitude returns the absolute value and whether the value is negative.
func (x integer) magnitude() (uint64, bool) {
	if !x.signed || x.value >= 0 {
		if x.signed {
			return uint64(x.value), false
		}
		return x.bits, false
	}
	return uint64(-(x.value + 1)) + 1, true
}

func toInteger(a any) (integer, bool) {
	switch v := a.(type) {
	case int:
		return integer{bits: uint64(v), value: int64(v), signed: true}, true
	case int8:
		return integer{bits: uint64(uint8(v)), value: int64(v), signed: true}, true
	case int16:
		return integer{bits: uint64(uint16(v)), value: int64(v), signed: true}, true
	case int32:
		return integer{bits: uint64(uint32(v)), value: int64(v), signed: true}, true
	case int64:
		return integer{bits: uint64(v), value: v, signed: true}, true
	case uint:
		return integer{bits: uint64(v)}, true
	case uint8:
		return integer{bits: uint64(v)}, true
	case uint16:
		return integer{bits: uint64(v)}, true
	case uint32:
		return integer{bits: uint64(v)}, true
	case uint64:
		return integer{bits: v}, true
	case uintptr:
		return integer{bits: uint64(v)}, true
	case bool:
		if v {
			return integer{bits: 1, value: 1, signed: true}, true
		}
		return integer{signed: true}, true
	}
	return integer{}, false
}

// toInt reads a '*' width or precision.
func toInt(a any) (int, bool) {
	x, ok := toInteger(a)
	if !ok {
		return 0, false
	}
	if x.signed {
		return int(x.value), true
	}
	return int(x.bits), true
}

func toFloat(a any) (float64, bool) {
	switch v := a.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if x, ok := toInteger(a); ok {
		if x.signed {
			return float64(x.value), true
		}
		return float64(x.bits), true
	}
	return 0, false
}

func toRune(a any) (rune, bool) {
	x, ok := toInteger(a)
	if !ok {
		return 0, false
	}
	if x.signed {
		return rune(x.value), true
	}
	return rune(x.bits), true
}
