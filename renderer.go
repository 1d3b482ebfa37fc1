package editline

// Renderer is the single reconciler of on-screen state with logical state
// (§4.5), grounded on the linenoise-lineage refresh_singleline/
// refresh_multiline pair: move to a known anchor, clear to end-of-screen,
// write the new content, then move the cursor back to its logical
// position, all with minimal escape sequences.
type Renderer struct {
	writer Writer
	cols   int
}

// NewRenderer returns a Renderer writing through w at the given terminal
// column count.
func NewRenderer(w Writer, cols int) *Renderer {
	return &Renderer{writer: w, cols: cols}
}

// SetCols updates the terminal column count used by subsequent refreshes,
// called after a SIGWINCH-driven resize (§5).
func (r *Renderer) SetCols(cols int) { r.cols = cols }

// RefreshLine implements the 9-step contract of §4.5: rebuild the display
// buffer, compute end-of-input and cursor screen positions, move to the
// prompt anchor, clear to end-of-screen, write, compensate for an
// exact-wrap, and move the cursor back to its logical position.
func (r *Renderer) RefreshLine(p *Prompt, buf *LineBuffer, cfg HighlightConfig, action hintAction) {
	p.Refresh(r.cols)

	result := RebuildDisplay(buf, cfg, action, r.writer)

	inputWidth := buf.ColumnWidth(buf.Len())
	tailWidth := int(result.HintTailWidth)

	displayNewlines := 0
	if result.Below != nil {
		displayNewlines = len(result.Below.Lines)
	}

	xEnd, yEnd := Advance(p.Indentation, 0, r.cols, int(inputWidth)+tailWidth)
	yEnd += displayNewlines

	xCur, yCur := Advance(p.Indentation, 0, r.cols, int(buf.ColumnWidth(buf.Pos())))

	// Step 4: move to the end of the prompt, on the row where input begins.
	r.moveToPromptAnchor(p)
	// Step 5: clear from there to end-of-screen.
	r.clearToScreenEnd()

	// Step 6: write the line (display buffer, or raw buffer if color is
	// disabled).
	if cfg.NoColor {
		r.writer.WriteString(buf.Text())
	} else {
		r.writer.WriteString(string(buf.Display()))
	}
	if result.Below != nil {
		r.writeBelowHints(result.Below)
	}

	// Step 7: compensate for an exact-wrap.
	if xEnd == 0 && yEnd > 0 {
		r.writer.WriteString("\r\n")
	}

	// Step 8: move the cursor back to (xCur, yCur).
	if d := yEnd - yCur; d > 0 {
		r.writer.WriteString(ansiCursorUp(d))
	}
	r.writer.WriteString(ansiCursorColumn(xCur + 1))

	// Step 9.
	p.CursorRowOffset = p.ExtraLines + yCur

	r.writer.Flush()
}

// DynamicRefresh is RefreshLine for an OverlayPrompt: the prompt text
// itself changes (resize, incremental search), so its geometry is
// recomputed before reconciling (§4.5 "dynamicRefresh").
func (r *Renderer) DynamicRefresh(o *OverlayPrompt, buf *LineBuffer, cfg HighlightConfig, action hintAction) {
	o.Rebuild(r.cols)
	r.RefreshLine(&o.Prompt, buf, cfg, action)
}

func (r *Renderer) moveToPromptAnchor(p *Prompt) {
	if up := p.CursorRowOffset - p.ExtraLines; up > 0 {
		r.writer.WriteString(ansiCursorUp(up))
	}
	r.writer.WriteString(ansiCursorColumn(p.Indentation + 1))
}

func (r *Renderer) clearToScreenEnd() {
	r.writer.WriteString(ansiEraseToEnd)
}

func (r *Renderer) writeBelowHints(b *BelowHints) {
	for _, line := range b.Lines {
		r.writer.WriteString("\r\n")
		r.writer.WriteString(r.writer.AnsiColor(b.Color))
		r.writer.WriteString(string(line))
		r.writer.WriteString(r.writer.AnsiColor(Default))
	}
}

// ClearScreen wipes the whole screen and homes the cursor, used by Ctrl-L
// (§4.7).
func (r *Renderer) ClearScreen() {
	r.writer.WriteString(ansiClearScreen)
}

const (
	ansiEraseToEnd  = "\x1b[0J"
	ansiClearScreen = "\x1b[H\x1b[2J"
)

func ansiCursorUp(n int) string {
	return "\x1b[" + itoa(n) + "A"
}

func ansiCursorColumn(col int) string {
	return "\x1b[" + itoa(col) + "G"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}
