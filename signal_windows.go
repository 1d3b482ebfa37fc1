//go:build !unix

package editline

import "syscall"

// syscallSIGWINCH and syscallSIGTSTP have no equivalent on Windows; zero
// disables the corresponding signal.Notify registration in signal_common.go.
const (
	syscallSIGWINCH syscall.Signal = 0
	syscallSIGTSTP  syscall.Signal = 0
)
