package checked

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Operands are decomposed into sign/magnitude form and combined with
// the math/bits carry primitives, so every operation below is exact
// for any pairing of operand types. A result whose magnitude carries
// out of 64 bits cannot fit any fixed-width type and fails
// immediately; everything else is range-checked against R on the way
// back out.

// Add returns x+y narrowed into R, reporting whether the exact sum is
// representable.
func Add[R, T, U constraints.Integer](x T, y U) (R, bool) {
	xn, xm := split(x)
	yn, ym := split(y)
	neg, mag, ok := addParts(xn, xm, yn, ym)
	if !ok {
		return 0, false
	}
	return join[R](neg, mag)
}

// Sub returns x-y narrowed into R, reporting whether the exact
// difference is representable.
func Sub[R, T, U constraints.Integer](x T, y U) (R, bool) {
	xn, xm := split(x)
	yn, ym := split(y)
	neg, mag, ok := addParts(xn, xm, !yn, ym)
	if !ok {
		return 0, false
	}
	return join[R](neg, mag)
}

// Mul returns x*y narrowed into R, reporting whether the exact product
// is representable.
func Mul[R, T, U constraints.Integer](x T, y U) (R, bool) {
	xn, xm := split(x)
	yn, ym := split(y)
	hi, lo := bits.Mul64(xm, ym)
	if hi != 0 {
		return 0, false
	}
	return join[R](xn != yn && lo != 0, lo)
}

// Div returns dividend/divisor narrowed into R. It reports failure for
// a zero divisor, for the minimum signed value divided by -1 (the one
// division that overflows two's complement), and for a quotient R
// cannot represent.
func Div[R, T, U constraints.Integer](dividend T, divisor U) (R, bool) {
	if divisor == 0 {
		return 0, false
	}
	if divideMinByNegOne(dividend, divisor) {
		return 0, false
	}
	xn, xm := split(dividend)
	yn, ym := split(divisor)
	quo := xm / ym
	return join[R](xn != yn && quo != 0, quo)
}

// Mod returns dividend%divisor narrowed into R, with the same failure
// cases as Div. The remainder takes the dividend's sign (truncated
// division).
func Mod[R, T, U constraints.Integer](dividend T, divisor U) (R, bool) {
	if divisor == 0 {
		return 0, false
	}
	if divideMinByNegOne(dividend, divisor) {
		return 0, false
	}
	xn, xm := split(dividend)
	_, ym := split(divisor)
	rem := xm % ym
	return join[R](xn && rem != 0, rem)
}

// Neg returns -v, reporting whether the negation is representable. The
// failure case is the minimum value of a signed type. For unsigned
// types the value wraps, as if v were reinterpreted as signed.
func Neg[T constraints.Integer](v T) (T, bool) {
	if Signed[T]() && v == MinOf[T]() {
		return 0, false
	}
	return -v, true
}

// Lsh returns v<<n. It reports failure when n is outside
// [1, BitsOf[T]()-1] or when the shift would move set bits out of the
// representable width, including a sign flip for signed types.
func Lsh[T constraints.Integer](v T, n uint) (T, bool) {
	if n < 1 || n > BitsOf[T]()-1 {
		return 0, false
	}
	shifted := v << n
	if shifted>>n != v {
		return 0, false
	}
	return shifted, true
}

// Rsh returns v>>n, reporting failure when n is outside
// [1, BitsOf[T]()-1]. Right shifts cannot lose high bits, so the
// amount is the only check.
func Rsh[T constraints.Integer](v T, n uint) (T, bool) {
	if n < 1 || n > BitsOf[T]()-1 {
		return 0, false
	}
	return v >> n, true
}

// addParts adds two sign/magnitude values. Only a same-sign addition
// can carry out of 64 bits, and such a result cannot fit any
// fixed-width type.
func addParts(xn bool, xm uint64, yn bool, ym uint64) (neg bool, mag uint64, ok bool) {
	if xn == yn {
		sum, carry := bits.Add64(xm, ym, 0)
		if carry != 0 {
			return false, 0, false
		}
		return xn, sum, true
	}
	if xm >= ym {
		return xn, xm - ym, true
	}
	return yn, ym - xm, true
}

// divideMinByNegOne reports the division MinOf[T] / -1, which
// overflows two's complement and can raise a hardware exception if
// evaluated natively.
func divideMinByNegOne[T, U constraints.Integer](dividend T, divisor U) bool {
	return Signed[T]() && Signed[U]() &&
		dividend == MinOf[T]() && int64(divisor) == -1
}
