package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillRingMergesConsecutiveSameDirectionKills(t *testing.T) {
	k := NewKillRing()
	k.Kill([]rune("bar"), false)
	k.Kill([]rune("foo "), false)
	assert.Equal(t, "foo bar", string(k.entries[len(k.entries)-1]))
}

func TestKillRingNewEntryOnDirectionChange(t *testing.T) {
	k := NewKillRing()
	k.Kill([]rune("bar"), false)
	k.Kill([]rune("baz"), true)
	assert.Len(t, k.entries, 2)
}

func TestKillRingYankThenYankPopRotates(t *testing.T) {
	k := NewKillRing()
	k.Kill([]rune("one"), true)
	k.Kill([]rune("two"), false) // different direction: new entry
	assert.Equal(t, "two", string(k.Yank()))
	popped := k.YankPop()
	assert.Equal(t, "one", string(popped))
}

func TestKillRingYankPopInvalidWithoutYank(t *testing.T) {
	k := NewKillRing()
	k.Kill([]rune("one"), true)
	assert.Nil(t, k.YankPop())
}

func TestKillRingYankEmpty(t *testing.T) {
	k := NewKillRing()
	assert.Nil(t, k.Yank())
	assert.False(t, k.LastActionWasYank())
}

func TestKillRingCapacity(t *testing.T) {
	k := NewKillRing()
	for i := 0; i < killRingCapacity+5; i++ {
		k.Kill([]rune{rune('a' + i)}, true)
		k.lastAction = killOther // force a new entry each time
	}
	assert.LessOrEqual(t, len(k.entries), killRingCapacity)
}

func TestKillRingResetAction(t *testing.T) {
	k := NewKillRing()
	k.Kill([]rune("x"), true)
	k.ResetAction()
	assert.False(t, k.LastActionWasYank())
	assert.Equal(t, killOther, k.lastAction)
}
