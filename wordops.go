package editline

import (
	"unicode"

	edstrings "github.com/joeycumines/editline/strings"
)

// graphemeBounds returns the grapheme-cluster boundaries of runes, for
// snapping a rune-index word-motion result so it never lands inside a
// combining-mark sequence or a ZWJ emoji cluster.
func graphemeBounds(runes []rune) []edstrings.RuneNumber {
	return edstrings.GraphemeBoundaries(string(runes))
}

// snapBackward returns the largest boundary <= idx.
func snapBackward(bounds []edstrings.RuneNumber, idx int) int {
	for i := len(bounds) - 1; i >= 0; i-- {
		if int(bounds[i]) <= idx {
			return int(bounds[i])
		}
	}
	return 0
}

// snapForward returns the smallest boundary >= idx.
func snapForward(bounds []edstrings.RuneNumber, idx int) int {
	for _, b := range bounds {
		if int(b) >= idx {
			return int(b)
		}
	}
	if len(bounds) == 0 {
		return idx
	}
	return int(bounds[len(bounds)-1])
}

// skipBreaksBackward returns the index reached by moving left from pos
// over break characters, then over non-break characters — the Meta-B /
// Ctrl-Left rule of §4.7. The result is snapped to a grapheme-cluster
// boundary so multi-rune clusters move and delete as one unit.
func skipBreaksBackward(runes []rune, pos int, isBreak func(rune) bool) int {
	i := pos
	for i > 0 && isBreak(runes[i-1]) {
		i--
	}
	for i > 0 && !isBreak(runes[i-1]) {
		i--
	}
	return snapBackward(graphemeBounds(runes), i)
}

// skipBreaksForward is the symmetric forward scan for Meta-F / Ctrl-Right.
func skipBreaksForward(runes []rune, pos int, isBreak func(rune) bool) int {
	i := pos
	n := len(runes)
	for i < n && isBreak(runes[i]) {
		i++
	}
	for i < n && !isBreak(runes[i]) {
		i++
	}
	return snapForward(graphemeBounds(runes), i)
}

// wordRightEnd returns the end index of the word starting at or after pos,
// used by the kill-word-right and case-changing commands. It uses the same
// skip-breaks-then-word scan as skipBreaksForward.
func wordRightEnd(runes []rune, pos int, isBreak func(rune) bool) int {
	i := pos
	n := len(runes)
	for i < n && isBreak(runes[i]) {
		i++
	}
	for i < n && !isBreak(runes[i]) {
		i++
	}
	return snapForward(graphemeBounds(runes), i)
}

// whitespaceWordLeft returns the start of the whitespace-delimited word
// ending at pos, for Ctrl-W (distinct from Meta-Backspace's break-char
// scan: Ctrl-W only stops at actual whitespace).
func whitespaceWordLeft(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return snapBackward(graphemeBounds(runes), i)
}

type wordCase int

const (
	caseCapitalize wordCase = iota
	caseLower
	caseUpper
)

// applyWordCase transforms runes[pos:end] in place per Meta-C/L/U: the
// first letter uppercased (capitalize) or every rune lowercased/uppercased.
func applyWordCase(runes []rune, pos, end int, kind wordCase) {
	first := true
	for i := pos; i < end; i++ {
		switch kind {
		case caseLower:
			runes[i] = unicode.ToLower(runes[i])
		case caseUpper:
			runes[i] = unicode.ToUpper(runes[i])
		case caseCapitalize:
			if first && unicode.IsLetter(runes[i]) {
				runes[i] = unicode.ToUpper(runes[i])
				first = false
			} else if !unicode.IsLetter(runes[i]) && first {
				// leading non-letters don't count as "the first letter"
			} else {
				runes[i] = unicode.ToLower(runes[i])
			}
		}
	}
}
