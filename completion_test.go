package editline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionHarness(rd *fakeReader, cols, rows int) (*fakeWriter, *Renderer, *Prompt) {
	w := newFakeWriter(false)
	if rd.ws == nil {
		rd.ws = &WinSize{}
	}
	rd.ws.Col = uint16(cols)
	rd.ws.Row = uint16(rows)
	renderer := NewRenderer(w, cols)
	prompt := NewPrompt("> ", cols)
	return w, renderer, prompt
}

// TestCompleteExtendsToLongestCommonPrefix is spec.md §8 scenario 3: a
// preloaded "pri" extends to "print" (the longest common prefix of the three
// candidates), cursor landing at the end of the inserted text.
func TestCompleteExtendsToLongestCommonPrefix(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("pri")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string {
			assert.Equal(t, "pri", string(word))
			return []string{"print", "printf", "println"}
		},
	}

	res := Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	assert.False(t, res.hasPending)
	assert.Equal(t, "print", buf.Text())
	assert.Equal(t, 5, buf.Pos())
}

// TestCompleteAmbiguousDoubleTabLists is spec.md §8 scenario 4: with the
// buffer already at the candidates' shared prefix, the first Tab beeps
// (nothing left to extend) and waits for a second Tab before listing.
func TestCompleteAmbiguousDoubleTabLists(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("print")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)
	rd.push(string([]byte{byte(CtrlI)})) // the second Tab

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string {
			return []string{"print", "printf", "println"}
		},
		DoubleTabCompletion: true,
		BeepOnAmbiguous:     true,
	}

	res := Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	assert.False(t, res.hasPending)
	assert.Equal(t, "print", buf.Text(), "ambiguous completion must not extend the buffer")
	out := w.buf.String()
	assert.Contains(t, out, ansiBell)
	// The shared prefix is drawn in BrightMagenta, the rest in Default.
	assert.Contains(t, out, ansiColorCodes[BrightMagenta]+"print"+ansiColorCodes[Default]+"f")
	assert.Contains(t, out, ansiColorCodes[BrightMagenta]+"print"+ansiColorCodes[Default]+"ln")
}

// TestCompleteAmbiguousSingleTabWaitsForSecond covers the other half of the
// double-tab contract: a non-Tab key during the wait is returned as pending
// for the dispatcher to re-inject, and nothing is listed.
func TestCompleteAmbiguousSingleTabWaitsForSecond(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("print")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)
	rd.push("x")

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string {
			return []string{"print", "printf"}
		},
		DoubleTabCompletion: true,
	}

	res := Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	require.True(t, res.hasPending)
	assert.Equal(t, 'x', res.pending.Rune())
	assert.NotContains(t, w.buf.String(), "printf")
}

func TestCompleteSingleCandidateInsertsRemainder(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("pr")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string {
			return []string{"print"}
		},
	}

	Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	assert.Equal(t, "print", buf.Text())
}

func TestCompleteNoCandidatesBeeps(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("zzz")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string { return nil },
	}

	Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	assert.Contains(t, w.buf.String(), ansiBell)
	assert.Equal(t, "zzz", buf.Text())
}

func TestCompleteContextLenOutParamShiftsInsertionOffset(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("foo.pri")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)

	cfg := CompletionConfig{
		WordBreak: func(r rune) bool { return r == '.' },
		Completer: func(word []rune, contextLen *int) []string {
			// widen the anchor to cover the whole "foo.pri" token
			*contextLen = len(word) + 4
			return []string{"foo.print"}
		},
	}

	Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	assert.Equal(t, "foo.print", buf.Text())
}

// TestPauseForMoreDistinguishesEnterFromSpace covers the --More-- pager fix:
// Enter advances exactly one line, Space/y/Y advance a full page.
func TestPauseForMoreDistinguishesEnterFromSpace(t *testing.T) {
	rd := newFakeReader(nil)
	w := newFakeWriter(false)

	rd.push("\r")
	advance, cont := pauseForMore(rd, w, 10)
	assert.True(t, cont)
	assert.Equal(t, 1, advance)

	rd.push(" ")
	advance, cont = pauseForMore(rd, w, 10)
	assert.True(t, cont)
	assert.Equal(t, 10, advance)

	rd.push("y")
	advance, cont = pauseForMore(rd, w, 7)
	assert.True(t, cont)
	assert.Equal(t, 7, advance)
}

func TestPauseForMoreStopsOnQuit(t *testing.T) {
	rd := newFakeReader(nil)
	w := newFakeWriter(false)
	rd.push("q")
	_, cont := pauseForMore(rd, w, 10)
	assert.False(t, cont)
}

func TestPauseForMoreEchoesCtrlC(t *testing.T) {
	rd := newFakeReader(nil)
	w := newFakeWriter(false)
	rd.push(string([]byte{byte(CtrlC)}))
	_, cont := pauseForMore(rd, w, 10)
	assert.False(t, cont)
	assert.Contains(t, w.buf.String(), "^C")
}

// TestCompleteCutoffAsksBeforeListing covers the "Display all N
// possibilities?" gate: with the candidate count over the configured
// cutoff, listing waits for a y/n answer before (or instead of) printing.
func TestCompleteCutoffAsksBeforeListing(t *testing.T) {
	buf := NewLineBuffer()
	buf.Reset("x")

	rd := newFakeReader(nil)
	w, renderer, prompt := newCompletionHarness(rd, 80, 24)
	rd.push("n")

	cfg := CompletionConfig{
		Completer: func(word []rune, contextLen *int) []string {
			return []string{"xa", "xb"}
		},
		CompletionCountCutoff: 1,
	}

	Complete(buf, cfg, rd, w, renderer, prompt, HighlightConfig{})
	out := w.buf.String()
	assert.Contains(t, out, "Display all 2 possibilities?")
	assert.NotContains(t, out, "xa")
}

// TestListCandidatesPagesAcrossMultipleScreens exercises listCandidates'
// --More-- loop end to end with a small terminal, using Space at the single
// --More-- pause to reach the final row.
func TestListCandidatesPagesAcrossMultipleScreens(t *testing.T) {
	rd := newFakeReader(&WinSize{Col: 10, Row: 3}) // rowsPerPage == 2, 2 columns
	rd.push(" ")                                   // full page after row 2 of 3
	w := newFakeWriter(false)

	candidates := []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff"}
	listCandidates(candidates, 0, rd, w)

	out := w.buf.String()
	for _, c := range candidates {
		assert.Contains(t, out, c)
	}
	assert.Contains(t, out, "--More--")
	assert.Equal(t, 1, strings.Count(out, "--More--"))
}
