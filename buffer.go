package editline

import edstrings "github.com/joeycumines/editline/strings"

// LineBuffer is the code-point buffer, glyph-width cache, cursor, prefix
// anchor, display buffer, and hint state described in spec §3. Unlike the
// teacher's multiline Document/Buffer model, this is deliberately
// single-line and code-point indexed throughout, per the editor's
// non-goal of multiline editing.
type LineBuffer struct {
	runes  []rune
	widths []edstrings.Width

	pos    int // cursor, 0 <= pos <= len(runes)
	prefix int // prefix anchor, 0 <= prefix <= pos

	display []rune // raw runes plus embedded ANSI escape runes

	hint          []rune
	hintCandidates [][]rune
	hintSelection int // -1, or index into hintCandidates
}

// NewLineBuffer returns an empty LineBuffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{hintSelection: -1}
}

// Len returns the number of code points in the buffer.
func (b *LineBuffer) Len() int { return len(b.runes) }

// Pos returns the cursor position.
func (b *LineBuffer) Pos() int { return b.pos }

// Prefix returns the prefix anchor.
func (b *LineBuffer) Prefix() int { return b.prefix }

// Text returns the buffer contents as a string.
func (b *LineBuffer) Text() string { return string(b.runes) }

// Runes returns the underlying code-point slice. Callers must not retain or
// mutate the returned slice across an edit.
func (b *LineBuffer) Runes() []rune { return b.runes }

// Width returns the column width of code point at index i.
func (b *LineBuffer) Width(i int) edstrings.Width { return b.widths[i] }

// ColumnWidth returns the total display width of runes [0,upto).
func (b *LineBuffer) ColumnWidth(upto int) edstrings.Width {
	var w edstrings.Width
	for i := 0; i < upto && i < len(b.widths); i++ {
		w += b.widths[i]
	}
	return w
}

// SyncPrefix sets prefix = pos; called by the dispatcher after every
// keystroke except the four prefix-search commands (§3, §4.7).
func (b *LineBuffer) SyncPrefix() { b.prefix = b.pos }

// setPrefixDirect restores the prefix anchor after Reset, used by the
// prefix-search commands, which must not let a Reset-to-end overwrite the
// anchor their own dispatch path is exempt from syncing (§3, §4.7).
func (b *LineBuffer) setPrefixDirect(prefix int) {
	if prefix > len(b.runes) {
		prefix = len(b.runes)
	}
	b.prefix = prefix
}

// SetPos moves the cursor, clamped to [0, Len()].
func (b *LineBuffer) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	b.pos = pos
}

// MoveLeft moves the cursor left by n code points (clamped).
func (b *LineBuffer) MoveLeft(n int) { b.SetPos(b.pos - n) }

// MoveRight moves the cursor right by n code points (clamped).
func (b *LineBuffer) MoveRight(n int) { b.SetPos(b.pos + n) }

// InsertAt inserts text at index idx, recomputing the width cache for the
// inserted span.
func (b *LineBuffer) InsertAt(idx int, text []rune) {
	if len(text) == 0 {
		return
	}
	b.runes = append(b.runes[:idx:idx], append(append([]rune{}, text...), b.runes[idx:]...)...)
	ws := make([]edstrings.Width, len(text))
	for i, r := range text {
		ws[i] = edstrings.GetRuneWidth(r)
	}
	b.widths = append(b.widths[:idx:idx], append(ws, b.widths[idx:]...)...)
}

// InsertTextMoveCursor inserts text at the cursor and advances the cursor
// past it.
func (b *LineBuffer) InsertTextMoveCursor(text []rune) {
	b.InsertAt(b.pos, text)
	b.pos += len(text)
}

// Erase removes the code points in [from, to) and returns the removed
// slice. The cursor, if inside or past the removed range, is clamped.
func (b *LineBuffer) Erase(from, to int) []rune {
	if from < 0 {
		from = 0
	}
	if to > len(b.runes) {
		to = len(b.runes)
	}
	if from >= to {
		return nil
	}
	removed := append([]rune{}, b.runes[from:to]...)
	b.runes = append(b.runes[:from:from], b.runes[to:]...)
	b.widths = append(b.widths[:from:from], b.widths[to:]...)
	if b.pos > to {
		b.pos -= to - from
	} else if b.pos > from {
		b.pos = from
	}
	return removed
}

// Reset replaces the buffer contents with text and resets cursor/prefix to
// the end.
func (b *LineBuffer) Reset(text string) {
	b.runes = []rune(text)
	b.widths = make([]edstrings.Width, len(b.runes))
	for i, r := range b.runes {
		b.widths[i] = edstrings.GetRuneWidth(r)
	}
	b.pos = len(b.runes)
	b.prefix = b.pos
	b.hint = nil
	b.hintCandidates = nil
	b.hintSelection = -1
}

// AtEnd reports whether the cursor is at end-of-line, the precondition for
// hinting (§4.4).
func (b *LineBuffer) AtEnd() bool { return b.pos == len(b.runes) }

// SetHintCandidates installs the candidate hints produced by the hint
// callback. The selection is left as it is; RebuildDisplay resets it for
// the REGENERATE action of §4.5.
func (b *LineBuffer) SetHintCandidates(candidates [][]rune) {
	b.hintCandidates = candidates
}

// HintCount returns the number of candidate hints currently installed.
func (b *LineBuffer) HintCount() int { return len(b.hintCandidates) }

// HintSelection returns the current hint selection index (-1 for none).
func (b *LineBuffer) HintSelection() int { return b.hintSelection }

// ResetHintSelection sets the hint selection to -1 (no selection).
func (b *LineBuffer) ResetHintSelection() { b.hintSelection = -1 }

// CycleHintSelection moves the hint selection by delta, wrapping per §3:
// negative wraps to count-1, values >= count wrap to -1.
func (b *LineBuffer) CycleHintSelection(delta int) {
	count := len(b.hintCandidates)
	if count == 0 {
		b.hintSelection = -1
		return
	}
	sel := b.hintSelection + delta
	if sel < -1 {
		sel = count - 1
	} else if sel >= count {
		sel = -1
	}
	b.hintSelection = sel
}

// SelectedHint returns the code points of the currently selected hint, or
// nil if none is selected.
func (b *LineBuffer) SelectedHint() []rune {
	if b.hintSelection < 0 || b.hintSelection >= len(b.hintCandidates) {
		return nil
	}
	return b.hintCandidates[b.hintSelection]
}

// SoleHint returns the single candidate hint when exactly one is installed,
// for the inline-append fast path described in §4.4.
func (b *LineBuffer) SoleHint() ([]rune, bool) {
	if len(b.hintCandidates) == 1 {
		return b.hintCandidates[0], true
	}
	return nil, false
}

// SetDisplay installs the display buffer produced by highlight/hint
// assembly (§4.4).
func (b *LineBuffer) SetDisplay(display []rune) { b.display = display }

// Display returns the current display buffer.
func (b *LineBuffer) Display() []rune { return b.display }
