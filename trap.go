package integers

import (
	"sync/atomic"
)

// A TrapHandler is a fatal termination primitive: invoked with no
// arguments, it must immediately and unrecoverably end execution and
// never return control to its caller.
type TrapHandler func()

var trapHandler atomic.Pointer[TrapHandler]

// SetTrapHandler installs the fatal termination primitive invoked by
// every trapping operation and returns the previously installed one
// (nil when the built-in behavior was active). Passing nil restores
// the built-in behavior.
//
// The handler must not return; if it does, the process is aborted
// anyway. Typical replacements are a bare trap instruction, a host
// runtime's abort, or fault injection in tests.
func SetTrapHandler(h TrapHandler) (prev TrapHandler) {
	var p *TrapHandler
	if h != nil {
		p = &h
	}
	old := trapHandler.Swap(p)
	if old == nil {
		return nil
	}
	return *old
}

// Trap invokes the installed fatal termination primitive. It never
// returns.
//
// The built-in behavior emits one diagnostic line through the
// configured logger, then raises SIGTRAP on unix so that a debugger or
// core dump points at the faulting operation; elsewhere it exits the
// process. A detected violation means a computation already produced
// an unrepresentable value, so continuing with a silently wrong
// integer is strictly worse than stopping here.
func Trap() {
	if h := trapHandler.Load(); h != nil {
		(*h)()
	}
	logger.Load().Error("integer contract violation, trapping")
	abort()
}
