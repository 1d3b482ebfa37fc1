// Package strings provides the small set of string measurement helpers the
// editor needs to reason about terminal columns instead of bytes or runes:
// rune offsets, display columns, and grapheme-cluster boundaries.
package strings

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneNumber is an offset measured in Unicode code points (runes).
type RuneNumber int

// Width is a count of terminal display columns.
type Width int

// GetRuneWidth returns the number of terminal columns occupied by r: 0 for
// combining marks, 1 for narrow runes, 2 for wide/fullwidth runes.
func GetRuneWidth(r rune) Width {
	return Width(runewidth.RuneWidth(r))
}

// GetWidth returns the display width of s, honoring combining marks and
// East-Asian wide characters.
func GetWidth(s string) Width {
	return Width(runewidth.StringWidth(s))
}

// RuneIndexNthColumn returns the number of leading runes of s needed to
// cover its first n display columns (at most the rune length of s). A wide
// rune that straddles column n is counted.
func RuneIndexNthColumn(s string, n Width) RuneNumber {
	var col Width
	var idx RuneNumber
	for _, r := range s {
		if col >= n {
			return idx
		}
		col += GetRuneWidth(r)
		idx++
	}
	return idx
}

// GraphemeBoundaries returns the rune index at which each grapheme cluster
// of s begins, followed by a final entry at the rune length of s marking
// the end. Word-motion and kill operations (wordops.go) use it to snap an
// index to the nearest cluster boundary so a combining-mark sequence or a
// ZWJ emoji sequence is never split mid-cluster.
func GraphemeBoundaries(s string) []RuneNumber {
	bounds := make([]RuneNumber, 0, len(s))
	var runeIdx RuneNumber
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		bounds = append(bounds, runeIdx)
		for range g.Runes() {
			runeIdx++
		}
	}
	bounds = append(bounds, runeIdx)
	return bounds
}
