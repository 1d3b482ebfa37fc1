package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineBufferInsertAndErase(t *testing.T) {
	b := NewLineBuffer()
	b.InsertTextMoveCursor([]rune("hello"))
	assert.Equal(t, "hello", b.Text())
	assert.Equal(t, 5, b.Pos())

	removed := b.Erase(0, 1)
	assert.Equal(t, "h", string(removed))
	assert.Equal(t, "ello", b.Text())
	assert.Equal(t, 4, b.Pos())
}

func TestLineBufferPrefixInvariant(t *testing.T) {
	b := NewLineBuffer()
	b.InsertTextMoveCursor([]rune("abcdef"))
	b.SetPos(3)
	b.SyncPrefix()
	assert.LessOrEqual(t, 0, b.Prefix())
	assert.LessOrEqual(t, b.Prefix(), b.Pos())
	assert.LessOrEqual(t, b.Pos(), b.Len())
}

func TestLineBufferResetClampsSetPrefixDirect(t *testing.T) {
	b := NewLineBuffer()
	b.InsertTextMoveCursor([]rune("longer text"))
	b.Reset("short")
	b.setPrefixDirect(100)
	assert.Equal(t, b.Len(), b.Prefix())
}

func TestLineBufferHintSelectionCycleWraps(t *testing.T) {
	b := NewLineBuffer()
	b.SetHintCandidates([][]rune{[]rune("a"), []rune("b"), []rune("c")})
	require.Equal(t, -1, b.HintSelection())
	b.CycleHintSelection(1)
	assert.Equal(t, 0, b.HintSelection())
	b.CycleHintSelection(-1)
	assert.Equal(t, -1, b.HintSelection())
	b.CycleHintSelection(-1)
	assert.Equal(t, 2, b.HintSelection())
}

func TestLineBufferSoleHint(t *testing.T) {
	b := NewLineBuffer()
	b.SetHintCandidates([][]rune{[]rune("only")})
	hint, ok := b.SoleHint()
	require.True(t, ok)
	assert.Equal(t, "only", string(hint))

	b.SetHintCandidates([][]rune{[]rune("a"), []rune("b")})
	_, ok = b.SoleHint()
	assert.False(t, ok)
}

func TestLineBufferColumnWidthWideRunes(t *testing.T) {
	b := NewLineBuffer()
	b.InsertTextMoveCursor([]rune("a中b")) // wide CJK char in the middle
	assert.Equal(t, 4, int(b.ColumnWidth(b.Len())))
}
