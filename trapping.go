package integers

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/integers/checked"
)

// The trapping entry points pair each checked probe with the trap
// policy. All detection logic lives in the checked package; nothing
// below this file decides what counts as a violation.

// Cast converts value to type R, trapping if R cannot represent it
// exactly.
func Cast[R, T constraints.Integer](value T) R {
	r, ok := checked.Cast[R](value)
	if !ok {
		Trap()
	}
	return r
}

// Add returns x+y as an R, trapping if the exact sum overflows or
// cannot fit R.
func Add[R, T, U constraints.Integer](x T, y U) R {
	r, ok := checked.Add[R](x, y)
	if !ok {
		Trap()
	}
	return r
}

// Sub returns x-y as an R, trapping if the exact difference overflows
// or cannot fit R.
func Sub[R, T, U constraints.Integer](x T, y U) R {
	r, ok := checked.Sub[R](x, y)
	if !ok {
		Trap()
	}
	return r
}

// Mul returns x*y as an R, trapping if the exact product overflows or
// cannot fit R.
func Mul[R, T, U constraints.Integer](x T, y U) R {
	r, ok := checked.Mul[R](x, y)
	if !ok {
		Trap()
	}
	return r
}

// Div returns dividend/divisor as an R. It traps on a zero divisor, on
// the minimum signed value divided by -1, and on a quotient R cannot
// represent.
func Div[R, T, U constraints.Integer](dividend T, divisor U) R {
	r, ok := checked.Div[R](dividend, divisor)
	if !ok {
		Trap()
	}
	return r
}

// Mod returns dividend%divisor as an R, with the same trap conditions
// as Div.
func Mod[R, T, U constraints.Integer](dividend T, divisor U) R {
	r, ok := checked.Mod[R](dividend, divisor)
	if !ok {
		Trap()
	}
	return r
}
