package editline

import edstrings "github.com/joeycumines/editline/strings"

// History is an ordered sequence of past entries with a movable recall
// cursor, grounded on the teacher's HistoryInterface usage in the edit loop
// and generalized with the prefix-search operation named in spec §4.3.
type History struct {
	entries []string
	maxSize int

	// cursor indexes entries. During an edit session the last entry is the
	// working entry (the line being edited), so len(entries)-1 means
	// "editing new input, not recalling anything."
	cursor int

	// recallMostRecent, when true, makes a fresh recall start from the most
	// recent entry instead of len(entries)-1 being "one before the working
	// line"; see SetRecallMostRecent/ResetRecallMostRecent.
	recallMostRecent bool

	// committedIndex remembers the index at which the user last accepted a
	// line, so a following session can default to "after that point."
	committedIndex int
}

const defaultMaxHistorySize = 1000

// NewHistory returns an empty History bounded at maxSize entries (0 or
// negative means the default).
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = defaultMaxHistorySize
	}
	return &History{maxSize: maxSize, committedIndex: -1}
}

// PushWorking appends text unconditionally (no dedup) as the provisional
// "working entry" described in §3's History lifecycle, and points the
// cursor at it.
func (h *History) PushWorking(text string) {
	h.entries = append(h.entries, text)
	h.cursor = len(h.entries) - 1
}

// Add appends line, collapsing a consecutive duplicate of the last entry
// and trimming from the front once over maxSize.
func (h *History) Add(line string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
		if h.committedIndex >= 0 {
			h.committedIndex--
		}
	}
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// IsEmpty reports whether the history has no entries.
func (h *History) IsEmpty() bool { return len(h.entries) == 0 }

// IsLast reports whether the cursor is at (or past) the most recent entry,
// i.e. there is nothing "newer" to move to.
func (h *History) IsLast() bool { return h.cursor >= len(h.entries)-1 }

// At returns the entry at absolute index i.
func (h *History) At(i int) string { return h.entries[i] }

// Cursor returns the current recall cursor.
func (h *History) Cursor() int { return h.cursor }

// Current returns the entry at the cursor, or "", false if the cursor is
// past the end (editing new input).
func (h *History) Current() (string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return "", false
	}
	return h.entries[h.cursor], true
}

// UpdateLast overwrites the most recent entry, used to keep the "working
// entry" (the line being edited) in sync with the buffer.
func (h *History) UpdateLast(text string) {
	if n := len(h.entries); n > 0 {
		h.entries[n-1] = text
	}
}

// DropLast removes the most recent entry, used when a recall/search session
// is cancelled and the provisional working entry must be discarded.
func (h *History) DropLast() {
	if n := len(h.entries); n > 0 {
		h.entries = h.entries[:n-1]
	}
}

// Move advances the cursor toward older (up=true) or newer (up=false)
// entries, clamped to [0, len(entries)-1]. Returns false if no movement was
// possible (already at the bound).
func (h *History) Move(up bool) bool {
	if len(h.entries) == 0 {
		return false
	}
	if up {
		if h.cursor <= 0 {
			return false
		}
		h.cursor--
	} else {
		if h.cursor >= len(h.entries)-1 {
			return false
		}
		h.cursor++
	}
	return true
}

// Jump moves the cursor to the first (begin=true) or last entry.
func (h *History) Jump(begin bool) {
	if len(h.entries) == 0 {
		return
	}
	if begin {
		h.cursor = 0
	} else {
		h.cursor = len(h.entries) - 1
	}
}

// ResetPos sets the cursor to idx, or to the end of the history (the
// "working entry") if idx is omitted. With no idx and recallMostRecent
// armed, it instead seats the cursor directly on the last committed entry,
// so the very next recall step skips past it to the entry before —
// intended for "resubmit a variant of the last line" sessions armed by
// SetRecallMostRecent after an accept.
func (h *History) ResetPos(idx ...int) {
	if len(idx) > 0 {
		h.cursor = idx[0]
		return
	}
	if h.recallMostRecent && h.committedIndex >= 0 && h.committedIndex < len(h.entries) {
		h.cursor = h.committedIndex
		return
	}
	h.cursor = len(h.entries) - 1
}

// SetRecallMostRecent marks that the next fresh recall (Ctrl-P / Up from
// the working entry) should start at the most recent committed entry.
func (h *History) SetRecallMostRecent() { h.recallMostRecent = true }

// ResetRecallMostRecent clears the flag set by SetRecallMostRecent.
func (h *History) ResetRecallMostRecent() { h.recallMostRecent = false }

// CommitIndex remembers the index of the entry accepted by the caller.
func (h *History) CommitIndex(idx int) { h.committedIndex = idx }

// CommittedIndex returns the last index passed to CommitIndex, or -1.
func (h *History) CommittedIndex() int { return h.committedIndex }

// CommonPrefixSearch scans starting at the cursor in the given direction for
// the first entry whose leading display-column prefix of width prefixLen
// equals text's leading prefix of the same width, and that differs from
// text verbatim. On success it moves the cursor there and returns true.
//
// The comparison is in display columns, not code points or bytes, per the
// spec's explicit callout that this search measures width like a terminal
// would, not like a string index.
func (h *History) CommonPrefixSearch(text string, prefixLen edstrings.Width, reverse bool) bool {
	want := prefixColumns(text, prefixLen)

	step := 1
	if reverse {
		step = -1
	}
	for i := h.cursor + step; i >= 0 && i < len(h.entries); i += step {
		entry := h.entries[i]
		if entry == text {
			continue
		}
		if prefixColumns(entry, prefixLen) == want {
			h.cursor = i
			return true
		}
	}
	return false
}

func prefixColumns(s string, width edstrings.Width) string {
	n := edstrings.RuneIndexNthColumn(s, width)
	runes := []rune(s)
	if int(n) > len(runes) {
		n = edstrings.RuneNumber(len(runes))
	}
	return string(runes[:n])
}
