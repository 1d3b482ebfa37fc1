//go:build unix

package editline

import (
	"os"
	"syscall"
)

// suspendSelf raises SIGSTOP against the current process, the POSIX
// Ctrl-Z job-control behavior of §4.7/§5. It returns once the shell has
// resumed the process (SIGCONT delivered).
func suspendSelf() error {
	return syscall.Kill(os.Getpid(), syscall.SIGSTOP)
}

const ctrlZSupported = true
