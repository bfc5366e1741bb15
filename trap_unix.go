//go:build unix

package integers

import (
	"os"

	"golang.org/x/sys/unix"
)

// abort raises SIGTRAP so the process stops at the faulting operation,
// with a core dump where the platform produces one.
func abort() {
	_ = unix.Kill(unix.Getpid(), unix.SIGTRAP)
	// The signal may be blocked or handled; exit regardless.
	os.Exit(2)
}
