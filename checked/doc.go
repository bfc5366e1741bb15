// Package checked implements overflow-checked arithmetic and narrowing
// conversions for the fixed-width integer types.
//
// Every function is a probe: it computes the mathematically exact
// result and reports, via an ok bool, whether that result is
// representable. Probes never terminate the program and never
// allocate, so they suit code that wants to recover from overflow:
//
//	sum, ok := checked.Add[int8](x, y)
//	if !ok {
//	    // handle the overflow
//	}
//
// The conditions a probe can report are arithmetic overflow, narrowing
// loss (including a negative value into an unsigned type), division by
// zero, the minimum signed value divided by -1, and a shift amount
// outside [1, bit width - 1] or a left shift that would lose set bits.
//
// For code that treats these conditions as fatal programming defects,
// the parent integers package wraps every probe in a trapping variant.
package checked
