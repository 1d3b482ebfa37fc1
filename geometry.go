package editline

import (
	"strings"

	edstrings "github.com/joeycumines/editline/strings"
)

// Advance treats the visible area as infinite rows of width columns
// starting at (startX, startY) and advances by cellsToAdd cells, returning
// the resulting column and row (§4.1). It is additive: advancing by n then
// m from the result equals advancing by n+m directly.
//
// If the result lands exactly on column 0 of a new row (the last cell
// filled the rightmost column, forcing a wrap), the caller must emit a
// synthetic newline, since terminals don't auto-advance to column 0 in
// that case; Advance only reports the position, it doesn't emit anything.
func Advance(startX, startY, width, cellsToAdd int) (x, y int) {
	if width <= 0 {
		return startX, startY
	}
	total := startX + cellsToAdd
	y = startY + total/width
	x = total % width
	return x, y
}

// Prompt is the rendered prompt descriptor of §3: raw text plus the
// derived geometry the refresh engine needs to reconcile on-screen state.
type Prompt struct {
	Text string

	byteLen        int
	displayWidth   edstrings.Width
	lastLineStart  int // byte index of the start of the prompt's last line
	ExtraLines     int // rows beyond the first consumed by wrapping/newlines
	Indentation    int // column at which input begins on the prompt's last line
	screenColWidth int // terminal column count this geometry was computed for

	lastInputWidth  edstrings.Width
	lastPromptWidth edstrings.Width

	// CursorRowOffset is the row offset of the cursor from the prompt's
	// first line, recorded by the refresh engine after each redraw.
	CursorRowOffset int
}

// NewPrompt computes a Prompt descriptor for text at the given terminal
// column count.
func NewPrompt(text string, cols int) *Prompt {
	p := &Prompt{Text: text}
	p.recompute(cols)
	return p
}

func (p *Prompt) recompute(cols int) {
	p.byteLen = len(p.Text)
	p.screenColWidth = cols

	lastNL := strings.LastIndexByte(p.Text, '\n')
	p.lastLineStart = lastNL + 1
	lastLine := p.Text[p.lastLineStart:]

	p.ExtraLines = strings.Count(p.Text, "\n")
	p.displayWidth = edstrings.GetWidth(p.Text)

	lineWidth := edstrings.GetWidth(lastLine)
	p.Indentation = int(lineWidth)
	if cols > 0 {
		p.ExtraLines += int(lineWidth) / cols
		p.Indentation = int(lineWidth) % cols
	}
	p.lastPromptWidth = lineWidth
}

// Refresh recomputes geometry if the terminal width changed.
func (p *Prompt) Refresh(cols int) {
	if cols != p.screenColWidth {
		p.recompute(cols)
	}
}

// DisplayWidth returns the prompt's total rendered display width.
func (p *Prompt) DisplayWidth() edstrings.Width { return p.displayWidth }

// SetLastInputWidth caches the most recently rendered input's display
// width. RefreshLine does not read it: every keystroke takes the full
// refresh path.
func (p *Prompt) SetLastInputWidth(w edstrings.Width) { p.lastInputWidth = w }

// LastInputWidth returns the cached width set by SetLastInputWidth.
func (p *Prompt) LastInputWidth() edstrings.Width { return p.lastInputWidth }

// searchLabel produces the literal label text for an overlay's direction
// and failure state.
func searchLabel(direction int, failed bool) string {
	switch {
	case failed && direction < 0:
		return "(failed reverse-i-search)"
	case failed:
		return "(failed i-search)"
	case direction < 0:
		return "(reverse-i-search)"
	default:
		return "(i-search)"
	}
}

// OverlayPrompt extends Prompt with the incremental-search state of §3/§4.8:
// a search direction (+1 forward, -1 reverse), the user-typed search text,
// and a Failed flag that selects the "(failed ...)" label. Its Text is
// regenerated on every change via Rebuild.
type OverlayPrompt struct {
	Prompt
	Direction  int
	SearchText string
	Failed     bool
}

// NewOverlayPrompt returns an OverlayPrompt for the given search direction.
func NewOverlayPrompt(direction int, cols int) *OverlayPrompt {
	o := &OverlayPrompt{Direction: direction}
	o.Rebuild(cols)
	return o
}

// Rebuild regenerates Text from the current direction/search text/failed
// state and recomputes geometry.
func (o *OverlayPrompt) Rebuild(cols int) {
	o.Text = searchLabel(o.Direction, o.Failed) + o.SearchText + "':"
	o.recompute(cols)
}
