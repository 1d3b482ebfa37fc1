//go:build unix

package editline

import "syscall"

// syscallSIGWINCH is the terminal-resize signal. Defined per-platform since
// it has no equivalent on Windows.
const syscallSIGWINCH = syscall.SIGWINCH

// syscallSIGTSTP is the POSIX job-control stop signal, raised by Ctrl-Z. The
// dispatcher's Ctrl-Z handler (see dispatch.go) leaves raw mode, sends itself
// SIGSTOP, then re-enters raw mode and repaints once the shell resumes it.
const syscallSIGTSTP = syscall.SIGTSTP
