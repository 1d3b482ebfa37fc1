package editline

import (
	"time"

	edstrings "github.com/joeycumines/editline/strings"
)

// CompletionFunc returns candidate completions of word (the text since the
// last break character before the cursor), per §6 completion_cb.
// contextLen is passed in/out, symmetric to HintFunc: the callback may
// widen or narrow it to reparse a different anchor, and the mutated value
// is what Complete uses afterward to compute the insertion offset.
type CompletionFunc func(word []rune, contextLen *int) []string

// CompletionConfig bundles the tunables of §6 that govern tab completion.
type CompletionConfig struct {
	Completer             CompletionFunc
	BeepOnAmbiguous       bool
	DoubleTabCompletion   bool
	CompleteOnEmpty       bool
	CompletionCountCutoff int
	WordBreak             func(rune) bool
}

const defaultCompletionCountCutoff = 100

// completionLongestCommonPrefix returns the length, in code points, of the
// longest prefix shared by every string in candidates.
func completionLongestCommonPrefix(candidates []string) int {
	if len(candidates) == 0 {
		return 0
	}
	runes := make([][]rune, len(candidates))
	minLen := -1
	for i, c := range candidates {
		runes[i] = []rune(c)
		if minLen < 0 || len(runes[i]) < minLen {
			minLen = len(runes[i])
		}
	}
	n := 0
	for ; n < minLen; n++ {
		r := runes[0][n]
		for _, cand := range runes[1:] {
			if cand[n] != r {
				return n
			}
		}
	}
	return n
}

// completeResult reports whether Complete read a keystroke that the
// dispatcher must re-inject.
type completeResult struct {
	pending   Key
	hasPending bool
}

// Complete implements the tab-completion contract of §4.6. rd is read only
// for the double-tab, "Display all" and --More-- pagination sub-flows, one
// key at a time through readOneKey.
func Complete(
	buf *LineBuffer,
	cfg CompletionConfig,
	rd Reader,
	w Writer,
	renderer *Renderer,
	prompt *Prompt,
	hl HighlightConfig,
) completeResult {
	if buf.Len() == 0 && !cfg.CompleteOnEmpty {
		return completeResult{}
	}
	wordBreak := cfg.WordBreak
	if wordBreak == nil {
		wordBreak = defaultWordBreaks
	}

	runes := buf.Runes()
	cl := contextLen(runes, buf.Pos(), wordBreak)
	word := runes[buf.Pos()-cl : buf.Pos()]

	var candidates []string
	if cfg.Completer != nil {
		candidates = cfg.Completer(word, &cl)
	}
	if len(candidates) == 0 {
		w.WriteString(ansiBell)
		w.Flush()
		return completeResult{}
	}

	if sel := buf.HintSelection(); sel >= 0 && sel < buf.HintCount() {
		if hint, ok := stringAt(candidates, sel); ok {
			candidates = []string{hint}
		}
	}

	lcp := completionLongestCommonPrefix(candidates)
	if lcp > cl || len(candidates) == 1 {
		full := []rune(candidates[0])
		end := lcp
		if len(candidates) == 1 {
			end = len(full)
		}
		buf.InsertTextMoveCursor(full[cl:end])
		buf.SyncPrefix()
		return completeResult{}
	}

	// Ambiguous: no extension possible.
	if cfg.BeepOnAmbiguous {
		w.WriteString(ansiBell)
		w.Flush()
	}

	if cfg.DoubleTabCompletion {
		k := readOneKey(rd)
		if k.Code() != CtrlI {
			return completeResult{pending: k, hasPending: true}
		}
	}

	cutoff := cfg.CompletionCountCutoff
	if cutoff <= 0 {
		cutoff = defaultCompletionCountCutoff
	}
	if len(candidates) > cutoff {
		w.WriteString("\r\nDisplay all " + itoa(len(candidates)) + " possibilities? (y or n)")
		w.Flush()
		for {
			k := readOneKey(rd)
			r := k.Rune()
			if r == 'y' || r == 'Y' {
				break
			}
			if r == 'n' || r == 'N' || k.Code() == CtrlC {
				renderer.RefreshLine(prompt, buf, hl, HintRepaint)
				return completeResult{}
			}
		}
	}

	listCandidates(candidates, lcp, rd, w)
	renderer.RefreshLine(prompt, buf, hl, HintRepaint)
	return completeResult{}
}

func stringAt(ss []string, i int) (string, bool) {
	if i < 0 || i >= len(ss) {
		return "", false
	}
	return ss[i], true
}

// listCandidates renders candidates in column-major order with a --More--
// pause every screen_rows-1 lines, per §4.6.
func listCandidates(candidates []string, lcp int, rd Reader, w Writer) {
	ws := rd.GetWinSize()
	cols, rows := int(ws.Col), int(ws.Row)
	if cols <= 0 {
		cols = DefColCount
	}
	if rows <= 0 {
		rows = DefRowCount
	}

	longest := 0
	for _, c := range candidates {
		if wd := int(edstrings.GetWidth(c)); wd > longest {
			longest = wd
		}
	}
	colWidth := longest + 2
	columnCount := cols / colWidth
	if columnCount < 1 {
		columnCount = 1
	}
	rowCount := (len(candidates) + columnCount - 1) / columnCount

	lcpRunes := func(s string) (string, string) {
		rs := []rune(s)
		if lcp > len(rs) {
			lcp = len(rs)
		}
		return string(rs[:lcp]), string(rs[lcp:])
	}

	rowsPerPage := rows - 1
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}
	linesUntilPause := rowsPerPage
	for row := 0; row < rowCount; row++ {
		w.WriteString("\r\n")
		for col := 0; col < columnCount; col++ {
			idx := col*rowCount + row
			if idx >= len(candidates) {
				continue
			}
			pre, rest := lcpRunes(candidates[idx])
			w.WriteString(w.AnsiColor(BrightMagenta))
			w.WriteString(pre)
			w.WriteString(w.AnsiColor(Default))
			pad := colWidth - int(edstrings.GetWidth(candidates[idx]))
			if pad < 0 {
				pad = 0
			}
			w.WriteString(rest + spaces(pad))
		}
		linesUntilPause--
		if linesUntilPause <= 0 && row < rowCount-1 {
			w.WriteString("\r\n--More--")
			w.Flush()
			advance, cont := pauseForMore(rd, w, rowsPerPage)
			if !cont {
				return
			}
			linesUntilPause = advance
		}
	}
	w.Flush()
}

// pauseForMore handles the --More-- prompt's accepted keys, distinguishing
// Space/y/Y (advance a full next page) from Enter (advance one more line)
// per §4.6: rowsPerPage is returned for the former, 1 for the latter.
// Returns cont=false, with ^C echoed on Ctrl-C, if the listing should stop.
func pauseForMore(rd Reader, w Writer, rowsPerPage int) (advance int, cont bool) {
	for {
		k := readOneKey(rd)
		r := k.Rune()
		switch {
		case r == ' ' || r == 'y' || r == 'Y':
			return rowsPerPage, true
		case k.Code() == CtrlJ || k.Code() == CtrlM:
			return 1, true
		case r == 'n' || r == 'N' || r == 'q' || r == 'Q':
			return 0, false
		case k.Code() == CtrlC:
			w.WriteString("^C")
			w.Flush()
			return 0, false
		}
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

const ansiBell = "\a"

// readOneKey blocks until a full key decodes from rd, polling the
// non-blocking reader the same way the dispatcher's main loop does.
func readOneKey(rd Reader) Key {
	var buf [32]byte
	for {
		n, err := rd.Read(buf[:])
		if err != nil || n == 0 {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		keys := DecodeKeys(buf[:n])
		if len(keys) > 0 {
			return keys[0]
		}
	}
}
