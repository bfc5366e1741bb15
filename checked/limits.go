package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// BitsOf returns the width of T in bits.
func BitsOf[T constraints.Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// Signed reports whether T is a signed type.
func Signed[T constraints.Integer]() bool {
	var z T
	z--
	return z < 0
}

// MaxOf returns the largest value representable in T.
func MaxOf[T constraints.Integer]() T {
	if Signed[T]() {
		return ^(T(1) << (BitsOf[T]() - 1))
	}
	return ^T(0)
}

// MinOf returns the smallest value representable in T: zero for
// unsigned types, -2^(bits-1) for signed ones.
func MinOf[T constraints.Integer]() T {
	if Signed[T]() {
		return T(1) << (BitsOf[T]() - 1)
	}
	return 0
}

// maxMagOf returns the magnitude of MaxOf[T] as a uint64.
func maxMagOf[T constraints.Integer]() uint64 {
	return uint64(MaxOf[T]())
}

// split decomposes v into sign/magnitude form. The magnitude of any
// fixed-width integer, including the minimum signed value, fits in a
// uint64.
func split[T constraints.Integer](v T) (neg bool, mag uint64) {
	if v >= 0 {
		return false, uint64(v)
	}
	// -(v+1) is representable even when v is the minimum value.
	return true, uint64(-(v+1)) + 1
}

// join recomposes a sign/magnitude value into R, reporting whether R
// can represent it.
func join[R constraints.Integer](neg bool, mag uint64) (R, bool) {
	if !neg || mag == 0 {
		if mag > maxMagOf[R]() {
			return 0, false
		}
		return R(mag), true
	}
	if !Signed[R]() {
		return 0, false
	}
	minMag := maxMagOf[R]() + 1
	if mag > minMag {
		return 0, false
	}
	if mag == minMag {
		return MinOf[R](), true
	}
	return -R(mag), true
}
