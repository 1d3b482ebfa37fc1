//go:build !unix

package editline

import (
	"os"

	"github.com/mattn/go-colorable"
)

// NewStdoutWriter returns a StreamWriter over the process's standard
// output, wrapped with go-colorable so ANSI escapes render on the legacy
// Windows console instead of printing as literal bytes.
func NewStdoutWriter(noColor bool) *StreamWriter {
	return NewStreamWriter(colorable.NewColorable(os.Stdout), noColor)
}
