//go:build unix

package editline

import "os"

// NewStdoutWriter returns a StreamWriter over the process's standard
// output. VT100-style terminals consume ANSI escapes natively, so no
// passthrough shim is needed here (contrast writer_windows.go).
func NewStdoutWriter(noColor bool) *StreamWriter {
	return NewStreamWriter(os.Stdout, noColor)
}
