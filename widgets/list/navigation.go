// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"github.com/magniff/urwid"
	"github.com/magniff/urwid/gwutil"
)

//======================================================================
// Navigation Engine
//======================================================================

// keypressUp moves focus to the nearest selectable widget above the
// current one, scrolling the viewport by a single row at a time when no
// selectable widget is already visible above the focus. It reports false
// only when the list can't scroll up any further - mirroring urwid's
// _keypress_up, which returns the unhandled key string in that one case
// and nil (handled) everywhere else.
func (w *Widget) keypressUp(maxcol, maxrow int, app gowid.IApp) bool {
	v := w.calculateVisible(maxcol, maxrow, true, app)
	if v == nil {
		return false
	}

	focusRowOffset := v.rowOffset
	cursor := v.cursor

	rowOffset := focusRowOffset
	var widget gowid.IWidget
	var pos Position
	var r int
	for _, e := range v.fillAbove {
		widget, pos, r = e.Widget, e.Pos, e.Rows
		rowOffset -= r
		if widget.Selectable() {
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromBelow, nil, -1, app)
			return true
		}
	}

	rowOffset++
	w.invalidateCache()

	if rowOffset > 0 {
		prev, prevPos := w.walker.Previous(pickPos(pos, v.pos))
		widget, pos = prev, prevPos
		if widget == nil {
			return false
		}
		r = rows(widget, maxcol, gowid.Focused, app)
		rowOffset -= r
		if widget.Selectable() {
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromBelow, nil, -1, app)
			return true
		}
	}

	if !v.widget.Selectable() || focusRowOffset+1 >= maxrow {
		if widget == nil {
			w.shiftFocus(maxcol, maxrow, rowOffset, app)
			return true
		}
		w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromBelow, nil, -1, app)
		return true
	}

	if cursor != nil {
		if cursor.Row+focusRowOffset+1 >= maxrow {
			if widget == nil {
				prev, prevPos := w.walker.Previous(pos)
				widget, pos = prev, prevPos
				if widget == nil {
					return true
				}
				r = rows(widget, maxcol, gowid.Focused, app)
				rowOffset -= r
			}
			if -rowOffset >= r {
				rowOffset = -(r - 1)
			}
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromBelow, nil, -1, app)
			return true
		}
	}

	w.shiftFocus(maxcol, maxrow, focusRowOffset+1, app)
	return true
}

// keypressDown is the mirror image of keypressUp.
func (w *Widget) keypressDown(maxcol, maxrow int, app gowid.IApp) bool {
	v := w.calculateVisible(maxcol, maxrow, true, app)
	if v == nil {
		return false
	}

	focusRowOffset := v.rowOffset
	focusRows := v.rows
	cursor := v.cursor

	rowOffset := focusRowOffset + focusRows
	r := focusRows

	var widget gowid.IWidget
	var pos Position
	for _, e := range v.fillBelow {
		widget, pos, r = e.Widget, e.Pos, e.Rows
		if widget.Selectable() {
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromAbove, nil, -1, app)
			return true
		}
		rowOffset += r
	}

	rowOffset--
	w.invalidateCache()

	if rowOffset < maxrow {
		next, nextPos := w.walker.Next(pickPos(pos, v.pos))
		widget, pos = next, nextPos
		if widget == nil {
			return false
		}
		if widget.Selectable() {
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromAbove, nil, -1, app)
			return true
		}
		r = rows(widget, maxcol, gowid.NotSelected, app)
		rowOffset += r
	}

	if !v.widget.Selectable() || focusRowOffset+focusRows-1 <= 0 {
		if widget == nil {
			w.shiftFocus(maxcol, maxrow, rowOffset-r, app)
			return true
		}
		w.changeFocus(maxcol, maxrow, pos, rowOffset-r, comingFromAbove, nil, -1, app)
		return true
	}

	if cursor != nil {
		if cursor.Row+focusRowOffset-1 < 0 {
			if widget == nil {
				next, nextPos := w.walker.Next(pos)
				widget, pos = next, nextPos
				if widget == nil {
					return true
				}
			} else {
				rowOffset -= r
			}
			if rowOffset >= maxrow {
				rowOffset = maxrow - 1
			}
			w.changeFocus(maxcol, maxrow, pos, rowOffset, comingFromAbove, nil, -1, app)
			return true
		}
	}

	w.shiftFocus(maxcol, maxrow, focusRowOffset-1, app)
	return true
}

func pickPos(candidate, fallback Position) Position {
	if candidate != nil {
		return candidate
	}
	return fallback
}

//======================================================================

// pageEntry is one candidate widget for a page up/down jump: its row
// offset relative to the viewport top, widget, position and row count.
type pageEntry struct {
	RowOffset int
	Widget    gowid.IWidget
	Pos       Position
	Rows      int
}

// keypressPageUp snaps the focus to the selectable widget nearest the top
// of the view after scrolling back by one page, preferring a widget that
// was already at or near the top edge so the scroll doesn't overshoot.
func (w *Widget) keypressPageUp(maxcol, maxrow int, app gowid.IApp) {
	v := w.calculateVisible(maxcol, maxrow, true, app)
	if v == nil {
		return
	}

	topmostVisible := v.rowOffset

	var scrollFromRow int
	switch {
	case !v.widget.Selectable():
		scrollFromRow = topmostVisible
	case v.cursor != nil:
		scrollFromRow = -v.cursor.Row
	case v.rowOffset >= 0:
		scrollFromRow = 0
	default:
		scrollFromRow = topmostVisible
	}

	snapRows := topmostVisible - scrollFromRow
	rowOffset := scrollFromRow + maxrow

	var t []pageEntry
	t = append(t, pageEntry{rowOffset, v.widget, v.pos, v.rows})
	pos := v.pos
	for _, e := range v.fillAbove {
		rowOffset -= e.Rows
		t = append(t, pageEntry{rowOffset, e.Widget, e.Pos, e.Rows})
		pos = e.Pos
	}

	snapRegionStart := len(t)
	for rowOffset > -snapRows {
		prev, prevPos := w.walker.Previous(pos)
		if prev == nil {
			break
		}
		pos = prevPos
		r := rows(prev, maxcol, gowid.NotSelected, app)
		rowOffset -= r
		if rowOffset > 0 {
			snapRegionStart++
		}
		t = append(t, pageEntry{rowOffset, prev, pos, r})
	}

	if len(t) > 0 && t[len(t)-1].RowOffset > 0 {
		adjust := -t[len(t)-1].RowOffset
		for i := range t {
			t[i].RowOffset += adjust
		}
	}

	if len(t) > 0 && t[0].RowOffset >= maxrow {
		t = t[1:]
		snapRegionStart--
	}

	w.updatePrefColFromFocus(maxcol, app)

	searchOrder := pageSearchOrder(snapRegionStart, len(t))

	var badChoices []int
	cutOffSelectableChosen := false
	focusPos := v.pos

	for _, i := range searchOrder {
		e := t[i]
		if !e.Widget.Selectable() {
			continue
		}

		prefRow := gwutil.Max(0, -e.RowOffset)

		if e.Rows+e.RowOffset <= 0 {
			w.changeFocus(maxcol, maxrow, e.Pos, -(e.Rows - 1), comingFromBelow,
				&CursorCoords{Col: prefCol(w), Row: e.Rows - 1}, snapRows-((-e.RowOffset)-(e.Rows-1)), app)
		} else {
			w.changeFocus(maxcol, maxrow, e.Pos, e.RowOffset, comingFromBelow,
				&CursorCoords{Col: prefCol(w), Row: prefRow}, snapRows, app)
		}

		after := w.calculateVisible(maxcol, maxrow, true, app)
		if after == nil {
			return
		}
		actRowOffset := after.rowOffset

		if actRowOffset > e.RowOffset+snapRows {
			badChoices = append(badChoices, i)
			continue
		}
		if actRowOffset < e.RowOffset {
			badChoices = append(badChoices, i)
			continue
		}
		if actRowOffset < 0 {
			badChoices = append(badChoices, i)
			cutOffSelectableChosen = true
			continue
		}
		return
	}

	if cutOffSelectableChosen {
		return
	}

	goodChoices := excluding(searchOrder, badChoices)
	for _, i := range append(goodChoices, searchOrder...) {
		e := t[i]
		if e.Pos.Equal(focusPos) {
			continue
		}
		ro := e.RowOffset
		sr := snapRows
		if e.Rows+ro <= 0 {
			sr -= (-ro) - (e.Rows - 1)
			ro = -(e.Rows - 1)
		}
		w.changeFocus(maxcol, maxrow, e.Pos, ro, comingFromBelow, nil, sr, app)
		return
	}

	w.shiftFocus(maxcol, maxrow, gwutil.Min(maxrow-1, rowOffset), app)

	after := w.calculateVisible(maxcol, maxrow, true, app)
	if after == nil {
		return
	}
	if after.rowOffset >= rowOffset {
		return
	}

	if len(t) == 0 {
		return
	}
	lastPos := t[len(t)-1].Pos
	prev, prevPos := w.walker.Previous(lastPos)
	if prev == nil {
		return
	}
	r := rows(prev, maxcol, gowid.Focused, app)
	w.changeFocus(maxcol, maxrow, prevPos, -(r - 1), comingFromBelow, &CursorCoords{Col: prefCol(w), Row: r - 1}, 0, app)
}

// keypressPageDown is the mirror image of keypressPageUp.
func (w *Widget) keypressPageDown(maxcol, maxrow int, app gowid.IApp) {
	v := w.calculateVisible(maxcol, maxrow, true, app)
	if v == nil {
		return
	}

	bottomEdge := maxrow - v.rowOffset

	var scrollFromRow int
	switch {
	case !v.widget.Selectable():
		scrollFromRow = bottomEdge
	case v.cursor != nil:
		scrollFromRow = v.cursor.Row + 1
	case bottomEdge >= v.rows:
		scrollFromRow = v.rows
	default:
		scrollFromRow = bottomEdge
	}

	snapRows := bottomEdge - scrollFromRow
	rowOffset := -scrollFromRow

	var t []pageEntry
	t = append(t, pageEntry{rowOffset, v.widget, v.pos, v.rows})
	pos := v.pos
	rowOffset += v.rows
	for _, e := range v.fillBelow {
		t = append(t, pageEntry{rowOffset, e.Widget, e.Pos, e.Rows})
		rowOffset += e.Rows
		pos = e.Pos
	}

	snapRegionStart := len(t)
	for rowOffset < maxrow+snapRows {
		next, nextPos := w.walker.Next(pos)
		if next == nil {
			break
		}
		pos = nextPos
		r := rows(next, maxcol, gowid.NotSelected, app)
		t = append(t, pageEntry{rowOffset, next, pos, r})
		rowOffset += r
		if rowOffset < maxrow {
			snapRegionStart++
		}
	}

	if len(t) > 0 {
		last := t[len(t)-1]
		if last.RowOffset+last.Rows < maxrow {
			adjust := maxrow - (last.RowOffset + last.Rows)
			for i := range t {
				t[i].RowOffset += adjust
			}
		}
	}

	if len(t) > 0 && t[0].RowOffset+t[0].Rows <= 0 {
		t = t[1:]
		snapRegionStart--
	}

	w.updatePrefColFromFocus(maxcol, app)

	searchOrder := pageSearchOrder(snapRegionStart, len(t))

	var badChoices []int
	cutOffSelectableChosen := false
	focusPos := v.pos

	for _, i := range searchOrder {
		e := t[i]
		if !e.Widget.Selectable() {
			continue
		}

		prefRow := gwutil.Min(maxrow-e.RowOffset-1, e.Rows-1)

		if e.RowOffset >= maxrow {
			w.changeFocus(maxcol, maxrow, e.Pos, maxrow-1, comingFromAbove,
				&CursorCoords{Col: prefCol(w), Row: 0}, snapRows+maxrow-e.RowOffset-1, app)
		} else {
			w.changeFocus(maxcol, maxrow, e.Pos, e.RowOffset, comingFromAbove,
				&CursorCoords{Col: prefCol(w), Row: prefRow}, snapRows, app)
		}

		after := w.calculateVisible(maxcol, maxrow, true, app)
		if after == nil {
			return
		}
		actRowOffset := after.rowOffset

		if actRowOffset < e.RowOffset-snapRows {
			badChoices = append(badChoices, i)
			continue
		}
		if actRowOffset > e.RowOffset {
			badChoices = append(badChoices, i)
			continue
		}
		if actRowOffset+e.Rows > maxrow {
			badChoices = append(badChoices, i)
			cutOffSelectableChosen = true
			continue
		}
		return
	}

	if cutOffSelectableChosen {
		return
	}

	goodChoices := excluding(searchOrder, badChoices)
	for _, i := range append(goodChoices, searchOrder...) {
		e := t[i]
		if e.Pos.Equal(focusPos) {
			continue
		}
		ro := e.RowOffset
		sr := snapRows
		if ro >= maxrow {
			sr -= sr + maxrow - ro - 1
			ro = maxrow - 1
		}
		w.changeFocus(maxcol, maxrow, e.Pos, ro, comingFromAbove, nil, sr, app)
		return
	}

	w.shiftFocus(maxcol, maxrow, gwutil.Max(1-v.rows, rowOffset), app)

	after := w.calculateVisible(maxcol, maxrow, true, app)
	if after == nil {
		return
	}
	if after.rowOffset <= rowOffset {
		return
	}

	if len(t) == 0 {
		return
	}
	lastPos := t[len(t)-1].Pos
	next, nextPos := w.walker.Next(lastPos)
	if next == nil {
		return
	}
	w.changeFocus(maxcol, maxrow, nextPos, maxrow-1, comingFromAbove, &CursorCoords{Col: prefCol(w), Row: 0}, 0, app)
}

// pageSearchOrder walks the snap region first (closest to the new edge
// outward), then falls back through the rest of the already-visible
// region, matching urwid's two-phase search for a page jump's new focus.
func pageSearchOrder(snapRegionStart, n int) []int {
	order := make([]int, 0, n)
	for i := snapRegionStart; i < n; i++ {
		order = append(order, i)
	}
	for i := snapRegionStart - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

func excluding(order, bad []int) []int {
	badSet := make(map[int]bool, len(bad))
	for _, b := range bad {
		badSet[b] = true
	}
	res := make([]int, 0, len(order))
	for _, i := range order {
		if !badSet[i] {
			res = append(res, i)
		}
	}
	return res
}

func prefCol(w *Widget) int {
	if w.viewport.prefCol.IsNone() {
		return 0
	}
	return w.viewport.prefCol.Val()
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
