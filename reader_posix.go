//go:build unix

package editline

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// PosixReader is a Reader implementation for VT100-style terminals (Linux,
// *BSD, macOS). The funcs below are injectable so tests can fake the
// syscalls without a real terminal.
type PosixReader struct {
	fd           int
	state        *term.State
	open         func(string, int, uint32) (int, error)
	close        func(int) error
	read         func(int, []byte) (int, error)
	setNonblock  func(int, bool) error
	makeRaw      func(int) (*term.State, error)
	restore      func(int, *term.State) error
	ioctlWinsize func(int, uint) (*unix.Winsize, error)
}

func (t *PosixReader) initFuncs() {
	if t.open == nil {
		t.open = syscall.Open
	}
	if t.close == nil {
		t.close = syscall.Close
	}
	if t.read == nil {
		t.read = syscall.Read
	}
	if t.setNonblock == nil {
		t.setNonblock = syscall.SetNonblock
	}
	if t.makeRaw == nil {
		t.makeRaw = term.MakeRaw
	}
	if t.restore == nil {
		t.restore = term.Restore
	}
	if t.ioctlWinsize == nil {
		t.ioctlWinsize = unix.IoctlGetWinsize
	}
}

// Open should be called before starting input.
func (t *PosixReader) Open() error {
	t.initFuncs()
	in, err := t.open("/dev/tty", syscall.O_RDONLY, 0)
	if os.IsNotExist(err) {
		in = syscall.Stdin
	} else if err != nil {
		return err
	}
	t.fd = in
	// Non-blocking, so a Read in progress cannot block delivery of a
	// resize or shutdown signal to the edit loop.
	if err := t.setNonblock(t.fd, true); err != nil {
		return err
	}
	state, err := t.makeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

// Close should be called after stopping input.
func (t *PosixReader) Close() error {
	var restoreErr error
	if t.state != nil {
		restoreErr = t.restore(t.fd, t.state)
	}
	if t.fd != syscall.Stdin {
		if err := t.close(t.fd); err != nil && restoreErr == nil {
			restoreErr = err
		}
	}
	return restoreErr
}

// Read returns byte array.
func (t *PosixReader) Read(buff []byte) (int, error) {
	return t.read(t.fd, buff)
}

// GetWinSize returns WinSize object to represent width and height of terminal.
func (t *PosixReader) GetWinSize() *WinSize {
	ws, err := t.ioctlWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		// If this errors, we simply return the default window size as
		// it's our best guess.
		return &WinSize{
			Row: DefRowCount,
			Col: DefColCount,
		}
	}
	return &WinSize{
		Row: ws.Row,
		Col: ws.Col,
	}
}

var _ Reader = &PosixReader{}

// NewStdinReader returns a Reader that edits on the process's controlling
// terminal.
func NewStdinReader() *PosixReader {
	pr := &PosixReader{}
	pr.initFuncs()
	return pr
}
