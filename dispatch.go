package editline

type dispatchAction int

const (
	actionNone dispatchAction = iota
	actionReturn
	actionBail
	actionInject
)

type dispatchOutcome struct {
	action dispatchAction
	err    error
	inject Key
}

// dispatcher turns one decoded keystroke into a buffer mutation plus a
// screen refresh, per §4.7. It holds the per-Input-call state the keymap
// needs beyond the Editor itself (current prompt/buffer/renderer, and the
// terminal column count for word-wrap-sensitive operations).
type dispatcher struct {
	ed       *Editor
	buf      *LineBuffer
	prompt   *Prompt
	renderer *Renderer
	cols     int
}

func (d *dispatcher) wordBreak() func(rune) bool {
	if d.ed.highlight.WordBreak != nil {
		return d.ed.highlight.WordBreak
	}
	return defaultWordBreaks
}

// dispatch applies one key and refreshes the screen, implementing the
// keymap table of §4.7. The kill-ring's lastAction is reset to Other
// after the action unless the action is itself a kill or yank, matching
// the rule "cleared unless the action itself is a kill or a yank."
func (d *dispatcher) dispatch(k Key) dispatchOutcome {
	buf := d.buf
	kr := d.ed.killRing
	isKillOrYank := false
	isPrefixSearch := false
	refreshAction := HintRegenerate

	switch {
	case k == Signal:
		return dispatchOutcome{}

	case k == RedrawOnly:
		refreshAction = HintRepaint

	case k == RepaintAndRedraw:
		refreshAction = HintRegenerate

	case k.Code() == CtrlA || k.Code() == KeyHome:
		buf.SetPos(0)

	case k.Code() == CtrlE || k.Code() == KeyEnd:
		buf.SetPos(buf.Len())

	case !k.Ctrl() && (k.Code() == CtrlB || k.Code() == KeyLeft):
		buf.MoveLeft(1)

	case !k.Ctrl() && (k.Code() == CtrlF || k.Code() == KeyRight):
		buf.MoveRight(1)

	case k.Meta() && k.Rune() == 'b', k.Ctrl() && k.Code() == KeyLeft:
		buf.SetPos(skipBreaksBackward(buf.Runes(), buf.Pos(), d.wordBreak()))

	case k.Meta() && k.Rune() == 'f', k.Ctrl() && k.Code() == KeyRight:
		buf.SetPos(skipBreaksForward(buf.Runes(), buf.Pos(), d.wordBreak()))

	case !k.Meta() && (k.Code() == CtrlH || k.Code() == KeyBackspace):
		if buf.Pos() > 0 {
			buf.Erase(buf.Pos()-1, buf.Pos())
		}

	case k.Code() == KeyDelete:
		if buf.Pos() < buf.Len() {
			buf.Erase(buf.Pos(), buf.Pos()+1)
		}

	case k.Code() == CtrlD:
		if buf.Len() == 0 {
			return dispatchOutcome{action: actionBail, err: ErrEOF}
		}
		if buf.Pos() < buf.Len() {
			buf.Erase(buf.Pos(), buf.Pos()+1)
		}

	case k.Meta() && k.Code() == KeyBackspace:
		start := skipBreaksBackward(buf.Runes(), buf.Pos(), d.wordBreak())
		text := buf.Erase(start, buf.Pos())
		kr.Kill(text, false)
		isKillOrYank = true

	case k.Meta() && (k.Rune() == 'd' || k.Rune() == 'D'):
		end := wordRightEnd(buf.Runes(), buf.Pos(), d.wordBreak())
		text := buf.Erase(buf.Pos(), end)
		kr.Kill(text, true)
		isKillOrYank = true

	case k.Code() == CtrlW:
		start := whitespaceWordLeft(buf.Runes(), buf.Pos())
		text := buf.Erase(start, buf.Pos())
		kr.Kill(text, false)
		isKillOrYank = true

	case k.Code() == CtrlU:
		text := buf.Erase(0, buf.Pos())
		kr.Kill(text, false)
		isKillOrYank = true

	case k.Code() == CtrlK:
		text := buf.Erase(buf.Pos(), buf.Len())
		kr.Kill(text, true)
		isKillOrYank = true

	case k.Code() == CtrlY:
		if text := kr.Yank(); text != nil {
			buf.InsertTextMoveCursor(text)
		}
		isKillOrYank = true

	case k.Meta() && (k.Rune() == 'y' || k.Rune() == 'Y'):
		if kr.LastActionWasYank() {
			n := kr.LastYankSize()
			buf.Erase(buf.Pos()-n, buf.Pos())
			if text := kr.YankPop(); text != nil {
				buf.InsertTextMoveCursor(text)
			}
		}
		isKillOrYank = true

	case k.Code() == CtrlT:
		transpose(buf)

	case k.Meta() && (k.Rune() == 'c' || k.Rune() == 'C'):
		end := wordRightEnd(buf.Runes(), buf.Pos(), d.wordBreak())
		applyWordCase(buf.Runes(), buf.Pos(), end, caseCapitalize)
		buf.SetPos(end)

	case k.Meta() && (k.Rune() == 'l'):
		end := wordRightEnd(buf.Runes(), buf.Pos(), d.wordBreak())
		applyWordCase(buf.Runes(), buf.Pos(), end, caseLower)
		buf.SetPos(end)

	case k.Meta() && (k.Rune() == 'u'):
		end := wordRightEnd(buf.Runes(), buf.Pos(), d.wordBreak())
		applyWordCase(buf.Runes(), buf.Pos(), end, caseUpper)
		buf.SetPos(end)

	case !k.Ctrl() && (k.Code() == CtrlP || k.Code() == KeyUp):
		d.historyMove(true)

	case !k.Ctrl() && (k.Code() == CtrlN || k.Code() == KeyDown):
		d.historyMove(false)

	case k.Code() == KeyPageUp, k.Meta() && k.Rune() == '<':
		d.historyJump(true)

	case k.Code() == KeyPageDown, k.Meta() && k.Rune() == '>':
		d.historyJump(false)

	case k.Meta() && (k.Rune() == 'p' || k.Rune() == 'P'):
		isPrefixSearch = true
		d.historyPrefixSearch(true)

	case k.Meta() && (k.Rune() == 'n' || k.Rune() == 'N'):
		isPrefixSearch = true
		d.historyPrefixSearch(false)

	case k.Code() == CtrlR:
		return d.incrementalSearch(-1)

	case k.Code() == CtrlS:
		return d.incrementalSearch(1)

	case k.Code() == CtrlL:
		d.renderer.ClearScreen()
		d.ed.writer.WriteString(d.prompt.Text)
		refreshAction = HintRegenerate

	case k.Code() == CtrlC:
		return dispatchOutcome{action: actionBail, err: ErrInterrupted}

	case k.Code() == CtrlJ || k.Code() == CtrlM:
		return dispatchOutcome{action: actionReturn}

	case k.Code() == CtrlZ && ctrlZSupported:
		d.ed.reader.Close()
		_ = suspendSelf()
		d.ed.reader.Open()
		refreshAction = HintRepaint

	case k.Ctrl() && k.Code() == KeyUp:
		buf.CycleHintSelection(-1)
		refreshAction = HintRepaint

	case k.Ctrl() && k.Code() == KeyDown:
		buf.CycleHintSelection(1)
		refreshAction = HintRepaint

	case k.Code() == CtrlI:
		res := Complete(buf, d.ed.completion, d.ed.reader, d.ed.writer, d.renderer, d.prompt, d.ed.highlight)
		if res.hasPending {
			d.refresh(refreshAction)
			return dispatchOutcome{action: actionInject, inject: res.pending}
		}

	case !k.Ctrl() && !k.Meta() && !k.IsSynthetic() && k.Rune() >= 0x20:
		buf.InsertTextMoveCursor([]rune{k.Rune()})

	default:
		d.ed.writer.WriteString(ansiBell)
		d.ed.writer.Flush()
		return dispatchOutcome{}
	}

	if !isKillOrYank {
		kr.ResetAction()
	}
	if !isPrefixSearch {
		buf.SyncPrefix()
	}

	d.refresh(refreshAction)
	return dispatchOutcome{}
}

func (d *dispatcher) refresh(action hintAction) {
	d.renderer.RefreshLine(d.prompt, d.buf, d.ed.highlight, action)
}

// transpose implements the verbatim rule carried from spec §9's Open
// Questions: at end-of-line, swap the two preceding code points; otherwise
// swap the pair straddling the cursor. The cursor advances by one unless
// it was already at end-of-line.
func transpose(buf *LineBuffer) {
	runes := buf.Runes()
	pos := buf.Pos()
	n := len(runes)
	if n < 2 {
		return
	}
	if pos == n {
		runes[n-2], runes[n-1] = runes[n-1], runes[n-2]
		return
	}
	if pos == 0 {
		return
	}
	runes[pos-1], runes[pos] = runes[pos], runes[pos-1]
	buf.SetPos(pos + 1)
}

func (d *dispatcher) historyMove(up bool) {
	h := d.ed.history
	h.UpdateLast(d.buf.Text())
	if h.Move(up) {
		if text, ok := h.Current(); ok {
			d.buf.Reset(text)
		}
	}
}

func (d *dispatcher) historyJump(begin bool) {
	h := d.ed.history
	h.UpdateLast(d.buf.Text())
	h.Jump(begin)
	if text, ok := h.Current(); ok {
		d.buf.Reset(text)
	}
}

func (d *dispatcher) historyPrefixSearch(reverse bool) {
	h := d.ed.history
	h.UpdateLast(d.buf.Text())
	prefixWidth := d.buf.ColumnWidth(d.buf.Prefix())
	if h.CommonPrefixSearch(d.buf.Text(), prefixWidth, reverse) {
		if text, ok := h.Current(); ok {
			prefix := d.buf.Prefix()
			d.buf.Reset(text)
			d.buf.setPrefixDirect(prefix)
		}
	}
}
