package integers

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/integers/checked"
)

// Trapping is a fixed-width integer that traps on overflow, division
// by zero, over-shifting, and lossy conversion. It holds exactly one
// value of the underlying type T, with the same size and alignment as
// a plain T: no hidden flags, no allocation. It can therefore replace
// a raw integer in any data layout, and copies like one.
//
// Mutating methods either install a newly computed, valid value or
// trap before anything is written; a Trapping is never observable in a
// partially updated state. The zero value holds the integer zero.
//
// Binary non-mutating use falls out of value semantics:
//
//	sum := a            // copy
//	sum.Add(b.Value())  // a is untouched
type Trapping[T constraints.Integer] struct {
	value T
}

// New returns a Trapping holding value.
func New[T constraints.Integer](value T) Trapping[T] {
	return Trapping[T]{value: value}
}

// Value returns the contained integer. Widening back out to T is
// always exact and never traps.
func (x Trapping[T]) Value() T { return x.value }

// Add adds y to x, trapping on overflow. It returns x for chaining.
func (x *Trapping[T]) Add(y T) *Trapping[T] {
	x.value = Add[T](x.value, y)
	return x
}

// Sub subtracts y from x, trapping on overflow. It returns x for
// chaining.
func (x *Trapping[T]) Sub(y T) *Trapping[T] {
	x.value = Sub[T](x.value, y)
	return x
}

// Mul multiplies x by y, trapping on overflow. It returns x for
// chaining.
func (x *Trapping[T]) Mul(y T) *Trapping[T] {
	x.value = Mul[T](x.value, y)
	return x
}

// Div divides x by divisor, keeping the quotient. It traps on a zero
// divisor and on the minimum signed value divided by -1.
func (x *Trapping[T]) Div(divisor T) *Trapping[T] {
	x.value = Div[T](x.value, divisor)
	return x
}

// Mod divides x by divisor, keeping the remainder, with the same trap
// conditions as Div.
func (x *Trapping[T]) Mod(divisor T) *Trapping[T] {
	x.value = Mod[T](x.value, divisor)
	return x
}

// Neg reverses the value's sign. For a signed T holding the minimum
// value the result is unrepresentable and Neg traps. For unsigned T
// the bits flip as if T were signed.
func (x *Trapping[T]) Neg() *Trapping[T] {
	v, ok := checked.Neg(x.value)
	if !ok {
		Trap()
	}
	x.value = v
	return x
}

// Or sets x to x|y. Bitwise operations cannot overflow and never trap.
func (x *Trapping[T]) Or(y T) *Trapping[T] {
	x.value |= y
	return x
}

// And sets x to x&y. Bitwise operations cannot overflow and never
// trap.
func (x *Trapping[T]) And(y T) *Trapping[T] {
	x.value &= y
	return x
}

// Xor sets x to x^y. Bitwise operations cannot overflow and never
// trap.
func (x *Trapping[T]) Xor(y T) *Trapping[T] {
	x.value ^= y
	return x
}

// Lsh shifts x left by n bits. It traps when n is outside
// [1, bits(T)-1] or when set bits would be shifted out of the
// representable width.
func (x *Trapping[T]) Lsh(n uint) *Trapping[T] {
	v, ok := checked.Lsh(x.value, n)
	if !ok {
		Trap()
	}
	x.value = v
	return x
}

// Rsh shifts x right by n bits, trapping when n is outside
// [1, bits(T)-1].
func (x *Trapping[T]) Rsh(n uint) *Trapping[T] {
	v, ok := checked.Rsh(x.value, n)
	if !ok {
		Trap()
	}
	x.value = v
	return x
}

// Inc adds one, trapping at the maximum value.
func (x *Trapping[T]) Inc() *Trapping[T] { return x.Add(1) }

// Dec subtracts one, trapping at the minimum value.
func (x *Trapping[T]) Dec() *Trapping[T] { return x.Sub(1) }

// Cmp compares the contained value with y, returning -1, 0 or +1.
// Comparisons never trap.
func (x Trapping[T]) Cmp(y T) int {
	switch {
	case x.value < y:
		return -1
	case x.value > y:
		return 1
	}
	return 0
}

// Eq reports whether the contained value equals y.
func (x Trapping[T]) Eq(y T) bool { return x.value == y }

// Lt reports whether the contained value is less than y.
func (x Trapping[T]) Lt(y T) bool { return x.value < y }

// Gt reports whether the contained value is greater than y.
func (x Trapping[T]) Gt(y T) bool { return x.value > y }

// Lte reports whether the contained value is at most y.
func (x Trapping[T]) Lte(y T) bool { return x.value <= y }

// Gte reports whether the contained value is at least y.
func (x Trapping[T]) Gte(y T) bool { return x.value >= y }

// String formats the contained value in base 10.
func (x Trapping[T]) String() string {
	if checked.Signed[T]() {
		return strconv.FormatInt(int64(x.value), 10)
	}
	return strconv.FormatUint(uint64(x.value), 10)
}

// As converts the contained value to type R, trapping if R cannot
// represent it. Methods cannot introduce type parameters, so
// cross-type conversion lives here as a free function.
func As[R, T constraints.Integer](x Trapping[T]) R {
	return Cast[R](x.value)
}

// Convert re-wraps x as a Trapping[R], trapping if R cannot represent
// the contained value.
func Convert[R, T constraints.Integer](x Trapping[T]) Trapping[R] {
	return New(Cast[R](x.value))
}
