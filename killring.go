package editline

// killAction records what the previous dispatcher action did to the kill
// ring, so a run of consecutive kills in the same direction merges into one
// entry instead of pushing a new one each time (§3, §4.2).
type killAction int

const (
	killOther killAction = iota
	killKill
	killYanked
)

const killRingCapacity = 10

// KillRing is the bounded ring of recently killed text fragments, grounded
// on the ring/index/lastDirection shape of a small reference kill-ring
// implementation, generalized to the spec's three-state model.
type KillRing struct {
	entries       [][]rune
	lastAction    killAction
	lastDirection int // +1 forward, -1 backward; meaningful only when lastAction == killKill
	yankIndex     int // index of the entry last returned by yank/yank_pop
	lastYankSize  int
}

// NewKillRing returns an empty KillRing.
func NewKillRing() *KillRing {
	return &KillRing{}
}

// Kill appends text to the ring. If the previous action was also a kill in
// the same direction, text is merged into the top entry (appended for
// forward, prepended for backward); otherwise a new entry is pushed,
// evicting the oldest entry once the ring is at capacity.
func (k *KillRing) Kill(text []rune, forward bool) {
	if len(text) == 0 {
		return
	}
	dir := 1
	if !forward {
		dir = -1
	}
	cp := make([]rune, len(text))
	copy(cp, text)

	if k.lastAction == killKill && k.lastDirection == dir && len(k.entries) > 0 {
		top := len(k.entries) - 1
		if forward {
			k.entries[top] = append(k.entries[top], cp...)
		} else {
			k.entries[top] = append(cp, k.entries[top]...)
		}
	} else {
		k.entries = append(k.entries, cp)
		if len(k.entries) > killRingCapacity {
			k.entries = k.entries[1:]
		}
	}
	k.lastAction = killKill
	k.lastDirection = dir
}

// Yank returns the most recently killed entry, or nil if the ring is empty.
// It marks the ring as yanked so a following Meta-Y can rotate it.
func (k *KillRing) Yank() []rune {
	if len(k.entries) == 0 {
		k.lastAction = killOther
		return nil
	}
	k.yankIndex = len(k.entries) - 1
	k.lastAction = killYanked
	top := k.entries[k.yankIndex]
	k.lastYankSize = len(top)
	return top
}

// YankPop rotates the ring (the top entry moves to the bottom) and returns
// the new top, replacing the text most recently inserted by Yank/YankPop.
// Valid only immediately after a Yank or YankPop; returns nil otherwise.
func (k *KillRing) YankPop() []rune {
	if k.lastAction != killYanked || len(k.entries) == 0 {
		return nil
	}
	n := len(k.entries)
	top := k.entries[n-1]
	copy(k.entries[1:], k.entries[:n-1])
	k.entries[0] = top
	k.lastYankSize = len(k.entries[n-1])
	return k.entries[n-1]
}

// LastYankSize returns the code-point length of the text most recently
// produced by Yank or YankPop, so the dispatcher knows how much of the
// buffer to replace on a following YankPop.
func (k *KillRing) LastYankSize() int { return k.lastYankSize }

// ResetAction clears the "previous action was a kill/yank" memory, called by
// the dispatcher after any action that is neither a kill nor a yank (§4.7).
func (k *KillRing) ResetAction() { k.lastAction = killOther }

// LastActionWasYank reports whether the most recent ring operation was a
// Yank or YankPop, the precondition for Meta-Y (yank-pop).
func (k *KillRing) LastActionWasYank() bool { return k.lastAction == killYanked }
