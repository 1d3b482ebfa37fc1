package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edstrings "github.com/joeycumines/editline/strings"
)

func TestHistoryAddDedupsConsecutive(t *testing.T) {
	h := NewHistory(10)
	h.Add("ls")
	h.Add("ls")
	assert.Equal(t, 1, h.Len())
	h.Add("pwd")
	assert.Equal(t, 2, h.Len())
}

func TestHistoryAddTrimsOverMaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	require.Equal(t, 2, h.Len())
	assert.Equal(t, "b", h.At(0))
	assert.Equal(t, "c", h.At(1))
}

func TestHistoryMoveClampsAtBounds(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("b")
	h.PushWorking("")
	assert.True(t, h.Move(true))
	text, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "b", text)
	assert.True(t, h.Move(true))
	text, _ = h.Current()
	assert.Equal(t, "a", text)
	assert.False(t, h.Move(true))
}

func TestHistoryPrefixSearchMeasuresDisplayColumns(t *testing.T) {
	h := NewHistory(10)
	h.Add("git status")
	h.Add("git commit")
	h.PushWorking("git")
	ok := h.CommonPrefixSearch("git", edstrings.Width(3), true)
	require.True(t, ok)
	text, _ := h.Current()
	assert.Equal(t, "git commit", text)
}

func TestHistoryPrefixSearchSkipsIdenticalEntry(t *testing.T) {
	h := NewHistory(10)
	h.Add("foo")
	h.Add("foo bar")
	h.PushWorking("foo bar")
	ok := h.CommonPrefixSearch("foo bar", edstrings.Width(3), true)
	require.True(t, ok)
	text, _ := h.Current()
	assert.Equal(t, "foo", text)
}

func TestHistoryDropLastRemovesWorkingEntry(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.PushWorking("draft")
	h.DropLast()
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "a", h.At(0))
}

func TestHistoryUpdateLastSyncsWorkingEntry(t *testing.T) {
	h := NewHistory(10)
	h.PushWorking("")
	h.UpdateLast("partial text")
	assert.Equal(t, "partial text", h.At(h.Len()-1))
}
