package strongint

import "unsafe"

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Native is a constraint that permits any primitive integer type usable as
// the representation of a strong integer.
type Native interface {
	Signed | Unsigned
}

// bitsOf reports the width of the representation type in bits.
func bitsOf[N Native]() uint {
	var z N
	return uint(unsafe.Sizeof(z)) * 8
}

// isUnsigned reports whether N is an unsigned representation. The zero value
// minus one wraps to the maximum for unsigned types and to -1 for signed ones.
func isUnsigned[N Native]() bool {
	var z N
	return z-1 > z
}

// maxOf returns the largest value representable by N.
func maxOf[N Native]() N {
	var z N
	if isUnsigned[N]() {
		return z - 1
	}
	return ^(N(1) << (bitsOf[N]() - 1))
}

// minOf returns the smallest value representable by N.
func minOf[N Native]() N {
	var z N
	if isUnsigned[N]() {
		return z
	}
	return N(1) << (bitsOf[N]() - 1)
}
