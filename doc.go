// Package integers provides fixed-width integer arithmetic with
// well-defined behavior on overflow, division by zero, narrowing
// conversions, and over-shifting: every such condition is detected
// before it can corrupt a value, and detection immediately and
// unrecoverably terminates execution (a "trap").
//
// # Quick Start
//
// The primary type is the generic wrapper Trapping, a drop-in
// replacement for its underlying integer:
//
//	v := integers.New(int8(100))
//	v.Add(27)             // v == 127
//	v.Add(1)              // traps: signed 8-bit overflow
//
// Free trapping functions cover one-off operations, with independent
// operand and result types:
//
//	n := integers.Add[int8](x, y)   // traps unless x+y fits an int8
//	b := integers.Cast[uint8](n)    // traps unless n fits a uint8
//
// # Two Tiers
//
// Every trapping operation is built on a non-trapping probe in the
// checked subpackage. Probes report failure as an ok bool and never
// terminate; use them when overflow is a recoverable condition rather
// than a programming defect:
//
//	sum, ok := checked.Add[int8](x, y)
//
// # The Trap Primitive
//
// A trap is a contract violation, not an error: there is no error
// value, no panic to recover, and no partially updated state to
// observe. The default behavior logs one diagnostic line and raises
// SIGTRAP on unix (so a debugger or core dump lands on the faulting
// operation), and aborts the process elsewhere. Host environments can
// supply their own fatal primitive via SetTrapHandler; the handler
// must not return.
//
// # Concurrency
//
// All operations are pure and lock-free. Distinct values may be used
// from any number of goroutines without synchronization; a single
// value needs external synchronization only in the way a plain integer
// would.
package integers
