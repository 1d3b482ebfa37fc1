package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceWrapsAtColumnWidth(t *testing.T) {
	x, y := Advance(0, 0, 10, 12)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestAdvanceIsAdditive(t *testing.T) {
	x1, y1 := Advance(3, 2, 20, 15)
	x2, y2 := Advance(x1, y1, 20, 7)
	x3, y3 := Advance(3, 2, 20, 22)
	assert.Equal(t, x3, x2)
	assert.Equal(t, y3, y2)
}

func TestAdvanceZeroWidthIsNoop(t *testing.T) {
	x, y := Advance(5, 1, 0, 10)
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

func TestPromptIndentationWrapsOnLongLastLine(t *testing.T) {
	p := NewPrompt("myprompt> ", 5)
	assert.Equal(t, 0, p.Indentation)
	assert.Greater(t, p.ExtraLines, 0)
}

func TestPromptMultilineCountsNewlines(t *testing.T) {
	p := NewPrompt("first\nsecond> ", 80)
	assert.Equal(t, 1, p.ExtraLines)
	assert.Equal(t, len("second> "), p.Indentation)
}

func TestSearchLabelVariants(t *testing.T) {
	assert.Equal(t, "(reverse-i-search)", searchLabel(-1, false))
	assert.Equal(t, "(i-search)", searchLabel(1, false))
	assert.Equal(t, "(failed reverse-i-search)", searchLabel(-1, true))
	assert.Equal(t, "(failed i-search)", searchLabel(1, true))
}

func TestOverlayPromptRebuildIncludesSearchText(t *testing.T) {
	o := NewOverlayPrompt(-1, 80)
	o.SearchText = "foo"
	o.Rebuild(80)
	assert.Contains(t, o.Text, "foo")
	assert.Contains(t, o.Text, "reverse-i-search")
}
