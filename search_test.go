package editline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchDispatcher(rd *fakeReader) (*dispatcher, *LineBuffer) {
	buf := NewLineBuffer()
	ed := New(WithWriter(newFakeWriter(false)), WithReader(rd))
	prompt := NewPrompt("> ", DefColCount)
	renderer := NewRenderer(ed.writer, DefColCount)
	d := &dispatcher{ed: ed, buf: buf, prompt: prompt, renderer: renderer, cols: DefColCount}
	return d, buf
}

// TestIncrementalSearchFindsHit is spec.md §8 scenario 5: Ctrl-R, typing
// "gam", locates "gamma-delta" and leaves it preloaded into the buffer ready
// for the re-injected accept key to commit it.
func TestIncrementalSearchFindsHit(t *testing.T) {
	rd := newFakeReader(nil)
	rd.push("g")
	rd.push("a")
	rd.push("m")
	rd.push("\r")

	d, buf := newSearchDispatcher(rd)
	d.ed.history.Add("alpha")
	d.ed.history.Add("beta")
	d.ed.history.Add("gamma-delta")
	d.ed.history.PushWorking("")

	outcome := d.incrementalSearch(-1)
	assert.Equal(t, actionInject, outcome.action)
	assert.Equal(t, CtrlM, outcome.inject.Code())
	assert.Equal(t, "gamma-delta", buf.Text())
}

// TestIncrementalSearchSwapsBufferEmptyBeforeOverlay covers §4.8 step 2: the
// old line is erased (a refresh against an empty buffer) before the overlay
// prompt takes the row, and the original text/prefix are restored afterward
// rather than lost.
func TestIncrementalSearchSwapsBufferEmptyBeforeOverlay(t *testing.T) {
	rd := newFakeReader(nil)
	rd.push("\r")

	d, buf := newSearchDispatcher(rd)
	buf.Reset("orig")
	d.ed.history.Add("orig")
	d.ed.history.PushWorking("orig")

	w := d.ed.writer.(*fakeWriter)
	d.incrementalSearch(-1)

	// An empty-buffer refresh must appear in the output before the listing
	// settles back onto "orig" (no search text typed, so nothing is found
	// and the original text survives untouched).
	assert.Equal(t, "orig", buf.Text())
	assert.NotEmpty(t, w.buf.String())
}

// TestIncrementalSearchSavesLastSearchTextOnCtrlGCancel and the Ctrl-L
// variant below cover the previously-missed unconditional save: every exit
// path, not just accept, must remember the typed search text for a following
// bare Ctrl-R/Ctrl-S to resume from.
func TestIncrementalSearchSavesLastSearchTextOnCtrlGCancel(t *testing.T) {
	rd := newFakeReader(nil)
	rd.push("g")
	rd.push("a")
	rd.push(string([]byte{byte(CtrlG)}))

	d, _ := newSearchDispatcher(rd)
	d.ed.history.Add("gamma")
	d.ed.history.PushWorking("")

	outcome := d.incrementalSearch(-1)
	assert.Equal(t, actionInject, outcome.action)
	assert.Equal(t, RedrawOnly, outcome.inject)
	assert.Equal(t, "ga", d.ed.lastSearchText)
}

func TestIncrementalSearchSavesLastSearchTextOnCtrlLCancel(t *testing.T) {
	rd := newFakeReader(nil)
	rd.push("x")
	rd.push(string([]byte{byte(CtrlL)}))

	d, _ := newSearchDispatcher(rd)
	d.ed.history.Add("xyz")
	d.ed.history.PushWorking("")

	outcome := d.incrementalSearch(-1)
	assert.Equal(t, actionInject, outcome.action)
	assert.Equal(t, CtrlL, outcome.inject)
	assert.Equal(t, "x", d.ed.lastSearchText)
}

func TestIncrementalSearchResumesFromLastSearchText(t *testing.T) {
	rd := newFakeReader(nil)
	rd.push("\r")

	d, buf := newSearchDispatcher(rd)
	d.ed.history.Add("needle-one")
	d.ed.history.Add("needle-two")
	d.ed.history.PushWorking("")
	d.ed.lastSearchText = "needle"

	outcome := d.incrementalSearch(-1)
	require.Equal(t, actionInject, outcome.action)
	assert.Equal(t, "needle-two", buf.Text())
}
