package checked

import "golang.org/x/exp/constraints"

// Cast converts value to type R, reporting whether R can represent it
// exactly. The failure cases are narrowing loss and sign loss (a
// negative value into an unsigned type). On success the returned
// value, converted back to T, equals the input.
//
// The four signedness pairings are handled exhaustively; within each,
// a plain range comparison against R's limits covers every width
// combination.
func Cast[R, T constraints.Integer](value T) (R, bool) {
	switch {
	case Signed[T]() && Signed[R]():
		if int64(value) > int64(MaxOf[R]()) || int64(value) < int64(MinOf[R]()) {
			return 0, false
		}
	case !Signed[T]() && !Signed[R]():
		if uint64(value) > uint64(MaxOf[R]()) {
			return 0, false
		}
	case Signed[T]() && !Signed[R]():
		if value < 0 {
			return 0, false
		}
		// Non-negative, so the bit pattern widens losslessly.
		if uint64(value) > uint64(MaxOf[R]()) {
			return 0, false
		}
	default: // unsigned T into signed R
		if uint64(value) > uint64(MaxOf[R]()) {
			return 0, false
		}
	}
	return R(value), true
}
