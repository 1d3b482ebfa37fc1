package editline

import edstrings "github.com/joeycumines/editline/strings"

// HighlighterFunc colors a full line. It receives the buffer's code points
// and an initially-Default color slot per code point to overwrite in place
// (§4.4 step 2, §6 highlighter_cb).
type HighlighterFunc func(line []rune, colors []Color)

// HintFunc proposes completions of the word at the cursor for inline/below
// hinting. contextLen is passed in/out so the callback may reparse the
// anchor; color is the in/out color for the returned hints (§6 hint_cb).
type HintFunc func(prefix []rune, contextLen *int, color *Color) [][]rune

// hintAction selects how RebuildDisplay treats previously-shown hints, per
// the REPAINT/SKIP/REGENERATE contract of §4.5.
type hintAction int

const (
	HintRepaint hintAction = iota
	HintSkip
	HintRegenerate
)

// defaultWordBreaks is the spec's default break-character set: whitespace
// and ASCII punctuation except underscore (GLOSSARY: "Break character").
func defaultWordBreaks(r rune) bool {
	switch {
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return true
	case r == '_':
		return false
	case r >= '!' && r <= '/', r >= ':' && r <= '@', r >= '[' && r <= '`', r >= '{' && r <= '~':
		return true
	}
	return false
}

// contextLen returns the number of trailing code points in runes[:pos]
// since the last break character, i.e. the word currently being typed
// (GLOSSARY: "Context length").
func contextLen(runes []rune, pos int, isBreak func(rune) bool) int {
	n := 0
	for i := pos - 1; i >= 0; i-- {
		if isBreak(runes[i]) {
			break
		}
		n++
	}
	return n
}

// braceMatch finds the brace pair straddling pos (§4.4). It returns the
// matched index and whether the match is mismatched (wrong brace type),
// or ok=false if pos does not sit on a brace or has no match.
func braceMatch(runes []rune, pos int) (idx int, mismatched bool, ok bool) {
	if pos < 0 || pos >= len(runes) {
		return 0, false, false
	}
	c := runes[pos]
	openers, closers := "{[(", "}])"

	var dir int
	var pairIndex int
	if i := indexByte(openers, c); i >= 0 {
		dir = 1
		pairIndex = i
	} else if i := indexByte(closers, c); i >= 0 {
		dir = -1
		pairIndex = i
	} else {
		return 0, false, false
	}

	unmatched := dir
	unmatchedOther := 0
	i := pos + dir
	for i >= 0 && i < len(runes) {
		c := runes[i]
		switch {
		case indexByte(openers, c) >= 0:
			if indexByte(openers, c) == pairIndex {
				unmatched++
			} else {
				unmatchedOther++
			}
		case indexByte(closers, c) >= 0:
			if indexByte(closers, c) == pairIndex {
				unmatched--
			} else {
				unmatchedOther--
			}
		}
		if unmatched == 0 {
			return i, unmatchedOther != 0, true
		}
		i += dir
	}
	return 0, false, false
}

func indexByte(s string, c rune) int {
	for i := 0; i < len(s); i++ {
		if rune(s[i]) == c {
			return i
		}
	}
	return -1
}

// HighlightConfig bundles the assembly inputs that don't live on LineBuffer
// itself: the configured callbacks, flags, and limits of §6.
type HighlightConfig struct {
	Highlighter HighlighterFunc
	Hinter      HintFunc
	NoColor     bool
	MaxHintRows int
	WordBreak   func(rune) bool
}

// BelowHints is the assembled set of hint lines to render below the input
// when more than one candidate is available and MaxHintRows > 0 (§4.4).
type BelowHints struct {
	Lines [][]rune
	Color Color
}

// DisplayResult bundles everything the refresh engine needs beyond the
// LineBuffer's own display buffer: the below-input hint lines (if any) and
// the display width of the inline hint tail, since that tail's width can't
// be recovered by scanning the display buffer (it may contain ANSI escape
// runes that are not zero-width code points).
type DisplayResult struct {
	Below         *BelowHints
	HintTailWidth edstrings.Width
}

// RebuildDisplay rebuilds buf's display buffer from its raw code points,
// per the four-step contract of §4.4: allocate colors, run the
// highlighter, override for brace match, then emit ANSI-interleaved runes.
// It returns the below-input hint lines, if any, for the refresh engine to
// render on subsequent rows.
func RebuildDisplay(buf *LineBuffer, cfg HighlightConfig, action hintAction, writer Writer) *DisplayResult {
	runes := buf.Runes()
	colors := make([]Color, len(runes))

	if cfg.Highlighter != nil {
		cfg.Highlighter(runes, colors)
	}

	if idx, mismatched, ok := braceMatch(runes, buf.Pos()); ok {
		if mismatched {
			colors[idx] = Error
		} else {
			colors[idx] = BrightRed
		}
	}

	if action == HintRegenerate {
		buf.ResetHintSelection()
	}

	var below *BelowHints
	wordBreak := cfg.WordBreak
	if wordBreak == nil {
		wordBreak = defaultWordBreaks
	}

	skipHint := cfg.NoColor || cfg.Hinter == nil || action == HintSkip || !buf.AtEnd()
	var hintTail []rune
	hintColor := Default
	if !skipHint {
		cl := contextLen(runes, buf.Pos(), wordBreak)
		prefix := runes[buf.Pos()-cl:]
		color := Default
		candidates := cfg.Hinter(prefix, &cl, &color)
		hintColor = color
		buf.SetHintCandidates(candidates)

		if hint, ok := buf.SoleHint(); ok {
			if len(hint) > cl {
				hintTail = hint[cl:]
			}
		} else if len(candidates) > 1 && cfg.MaxHintRows > 0 {
			lines := candidates
			if len(lines) > cfg.MaxHintRows {
				lines = lines[:cfg.MaxHintRows]
			}
			below = &BelowHints{Lines: lines, Color: color}
			if sel := buf.SelectedHint(); sel != nil && len(sel) > cl {
				hintTail = sel[cl:]
			}
		}
	} else {
		buf.SetHintCandidates(nil)
	}

	display := make([]rune, 0, len(runes)+len(hintTail)+8)
	cur := Default
	emit := func(c Color, r rune) {
		if c != cur {
			if writer != nil {
				display = append(display, []rune(writer.AnsiColor(c))...)
			}
			cur = c
		}
		display = append(display, r)
	}
	for i, r := range runes {
		emit(colors[i], r)
	}
	for _, r := range hintTail {
		emit(hintColor, r)
	}
	if cur != Default && writer != nil {
		display = append(display, []rune(writer.AnsiColor(Default))...)
	}
	buf.SetDisplay(display)

	var tailWidth edstrings.Width
	for _, r := range hintTail {
		tailWidth += edstrings.GetRuneWidth(r)
	}

	return &DisplayResult{Below: below, HintTailWidth: tailWidth}
}
