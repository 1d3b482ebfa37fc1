package editline

import "strings"

// incrementalSearch implements the §4.8 overlay: Ctrl-R (direction -1) or
// Ctrl-S (direction 1) suspends the normal keymap and reads keys into a
// search string, redrawing the matched history entry under a
// "(reverse-i-search)"-style prompt until an editing/cursor/history/accept
// key exits the loop and re-injects that key into the outer dispatch.
func (d *dispatcher) incrementalSearch(direction int) dispatchOutcome {
	h := d.ed.history
	h.UpdateLast(d.buf.Text())

	origText := d.buf.Text()
	origPrefix := d.buf.Prefix()
	startIdx := h.Cursor()

	// Swap the buffer for empty and refresh to erase the old line under the
	// prompt before the overlay prompt takes over the row(s) it occupied,
	// then swap the original text back.
	d.buf.Reset("")
	d.renderer.RefreshLine(d.prompt, d.buf, d.ed.highlight, HintSkip)
	d.buf.Reset(origText)
	d.buf.setPrefixDirect(origPrefix)

	overlay := NewOverlayPrompt(direction, d.cols)
	searchText := []rune(d.ed.lastSearchText)
	curIdx := -1
	curOffset := 0
	shown := origText

	redraw := func() {
		overlay.SearchText = string(searchText)
		overlay.Direction = direction
		overlay.Failed = curIdx < 0 && len(searchText) > 0
		overlay.Rebuild(d.cols)
		d.buf.Reset(shown)
		if curIdx >= 0 {
			d.buf.SetPos(curOffset)
		}
		d.renderer.DynamicRefresh(overlay, d.buf, d.ed.highlight, HintRegenerate)
	}

	runSearch := func(from int) {
		if len(searchText) == 0 {
			curIdx, curOffset = -1, 0
			shown = origText
			return
		}
		idx, off, ok := searchHistoryEntries(h, string(searchText), from, direction)
		if ok {
			curIdx, curOffset = idx, off
			shown = h.At(idx)
		} else {
			d.ed.writer.WriteString(ansiBell)
			d.ed.writer.Flush()
		}
	}

	runSearch(startIdx + direction)
	redraw()

	for {
		k := readOneKey(d.ed.reader)

		switch {
		case k.Code() == CtrlC || k.Code() == CtrlG:
			d.ed.lastSearchText = string(searchText)
			d.restoreAfterSearch(origText, origPrefix)
			return dispatchOutcome{action: actionInject, inject: RedrawOnly}

		case k.Code() == CtrlL:
			d.ed.lastSearchText = string(searchText)
			d.restoreAfterSearch(origText, origPrefix)
			return dispatchOutcome{action: actionInject, inject: CtrlL}

		case k.Code() == CtrlR || k.Code() == CtrlS:
			newDir := -1
			if k.Code() == CtrlS {
				newDir = 1
			}
			if len(searchText) == 0 && d.ed.lastSearchText != "" {
				searchText = []rune(d.ed.lastSearchText)
			}
			if newDir != direction {
				direction = newDir
				if curIdx >= 0 {
					runSearch(curIdx + direction)
				} else {
					runSearch(startIdx + direction)
				}
			} else if curIdx >= 0 {
				runSearch(curIdx + direction)
			} else {
				runSearch(startIdx + direction)
			}
			redraw()

		case k.Code() == CtrlH || k.Code() == KeyBackspace:
			if len(searchText) > 0 {
				searchText = searchText[:len(searchText)-1]
			}
			if direction < 0 {
				runSearch(startIdx + direction)
			} else {
				runSearch(startIdx)
			}
			redraw()

		case !k.Ctrl() && !k.Meta() && !k.IsSynthetic() && k.Rune() >= 0x20:
			searchText = append(searchText, k.Rune())
			if curIdx >= 0 {
				runSearch(curIdx)
			} else {
				runSearch(startIdx + direction)
			}
			redraw()

		default:
			d.ed.lastSearchText = string(searchText)
			found := shown
			d.buf.Reset(origText)
			if curIdx >= 0 {
				h.ResetPos(curIdx)
				d.buf.Reset(found)
			} else {
				d.buf.setPrefixDirect(origPrefix)
			}
			d.renderer.RefreshLine(d.prompt, d.buf, d.ed.highlight, HintRegenerate)
			return dispatchOutcome{action: actionInject, inject: k}
		}
	}
}

func (d *dispatcher) restoreAfterSearch(origText string, origPrefix int) {
	d.buf.Reset(origText)
	d.buf.setPrefixDirect(origPrefix)
	d.renderer.RefreshLine(d.prompt, d.buf, d.ed.highlight, HintRegenerate)
}

// searchHistoryEntries scans entries starting at idx in the given direction
// for the first (leftmost) substring match of text, per §4.8.
func searchHistoryEntries(h *History, text string, idx, direction int) (entryIdx, offset int, ok bool) {
	for i := idx; i >= 0 && i < h.Len(); i += direction {
		if off := strings.Index(h.At(i), text); off >= 0 {
			return i, off, true
		}
	}
	return 0, 0, false
}
