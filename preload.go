package editline

// sanitizePreload cleans text queued via Editor.Preload so it displays
// correctly once inserted into the buffer (§7's "Invalid preload"): CR is
// dropped silently, runs of newline/tab collapse to a single space, and any
// other control character is replaced with a space. stripped reports
// whether any non-whitespace control character was replaced, the condition
// that downgrades to a one-time warning rather than failing outright.
func sanitizePreload(text string) (string, bool) {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	whitespaceSeen := false
	stripped := false

	for _, r := range runes {
		switch {
		case r == '\r':
			continue
		case r == '\n' || r == '\t':
			whitespaceSeen = true
			continue
		}
		if whitespaceSeen {
			out = append(out, ' ')
			whitespaceSeen = false
		}
		if isControlRune(r) {
			stripped = true
			out = append(out, ' ')
			continue
		}
		out = append(out, r)
	}
	if whitespaceSeen {
		out = append(out, ' ')
	}
	return string(out), stripped
}

// isControlRune reports whether r is a C0 control character or DEL — the
// set of code points that "won't display correctly" in set_preload_buffer's
// original sense.
func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7f
}

const preloadWarningText = " [Edited line: control characters were converted to spaces]\n"
