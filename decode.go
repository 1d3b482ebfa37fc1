package editline

import "unicode/utf8"

// maxSeqLen bounds the longest-prefix search below; it is no shorter than
// the longest escape sequence in ansiSeq (6 bytes).
const maxSeqLen = 8

// DecodeKeys decodes a raw chunk of terminal input into a sequence of Keys.
// It recognizes ANSI escape sequences (arrows, Home/End, Page Up/Down,
// Delete, Meta-prefixed letters), Ctrl-modified control bytes, and UTF-8
// code points, in the order they appear in b.
//
// A chunk may contain more than one logical key (pasted text, or several
// keystrokes coalesced by a non-blocking read); the dispatcher processes
// the returned slice one Key at a time.
func DecodeKeys(b []byte) []Key {
	var keys []Key
	for len(b) > 0 {
		if b[0] == 0x1b && len(b) > 1 {
			if k, n, ok := matchEscapeSeq(b); ok {
				keys = append(keys, k)
				b = b[n:]
				continue
			}
			// Meta+<char>: ESC followed by a single printable byte that
			// isn't part of a recognized CSI/SS3 sequence.
			if len(b) >= 2 && b[1] != '[' && b[1] != 'O' {
				r, n := utf8.DecodeRune(b[1:])
				if r != utf8.RuneError {
					keys = append(keys, metaKey(r))
					b = b[1+n:]
					continue
				}
			}
			// Bare ESC.
			keys = append(keys, KeyEsc)
			b = b[1:]
			continue
		}

		c := b[0]
		if c < 0x20 || c == 0x7f {
			keys = append(keys, Key(c))
			b = b[1:]
			continue
		}

		r, n := utf8.DecodeRune(b)
		if r == utf8.RuneError && n <= 1 {
			b = b[1:]
			continue
		}
		keys = append(keys, Key(r))
		b = b[n:]
	}
	return keys
}

// matchEscapeSeq finds the longest prefix of b present in ansiSeq.
func matchEscapeSeq(b []byte) (Key, int, bool) {
	limit := len(b)
	if limit > maxSeqLen {
		limit = maxSeqLen
	}
	for n := limit; n >= 2; n-- {
		if k, ok := ansiSeq[string(b[:n])]; ok {
			return k, n, true
		}
	}
	return 0, 0, false
}
