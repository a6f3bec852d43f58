// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"github.com/magniff/urwid"
)

//======================================================================

// rowEntry is one widget discovered while filling above or below the focus:
// its widget, its Walker position, and the number of rows it occupies.
type rowEntry struct {
	Widget gowid.IWidget
	Pos    Position
	Rows   int
}

// visible is the full result of the Visibility Calculator: everything
// needed to render the list box, move the cursor, or answer a hit test,
// without re-walking the Walker.
type visible struct {
	// rowOffset is the focus widget's position relative to the viewport
	// top: positive means the focus top sits that many rows below the
	// viewport top, negative means that many rows of the focus are
	// scrolled off above it.
	rowOffset int
	widget    gowid.IWidget
	pos       Position
	rows      int
	cursor    *CursorCoords

	trimTop   int
	fillAbove []rowEntry // nearest-to-focus first (bottom-up order)

	trimBottom int
	fillBelow  []rowEntry // nearest-to-focus first (top-down order)
}

func rows(w gowid.IWidget, maxcol int, focus gowid.Selector, app gowid.IApp) int {
	return gowid.RenderSize(w, gowid.RenderFlowWith{C: maxcol}, focus, app).BoxRows()
}

// IGetCursorCoords is an optional capability a selectable widget can expose
// to report where, within its own rendered area, it wants its cursor drawn.
// Widgets that don't implement it are simply treated as cursor-less.
type IGetCursorCoords interface {
	GetCursorCoords(maxcol int, app gowid.IApp) *CursorCoords
}

// calculateVisible is the Visibility Calculator: given the box this list is
// being rendered into, it resolves any pending focus request, then works
// outward from the focus widget filling in enough widgets above and below
// to cover the box, trimming the ends as needed. It returns nil if the
// walker is empty.
func (w *Widget) calculateVisible(maxcol, maxrow int, focus bool, app gowid.IApp) *visible {
	if w.viewport.pending.kind != pendingNone {
		w.resolvePending(maxcol, maxrow, focus, app)
	}

	sel := gowid.NotSelected
	if focus {
		sel = gowid.Focused
	}

	focusWidget, focusPos := w.walker.GetFocus()
	if focusWidget == nil {
		return nil
	}

	focusRows := rows(focusWidget, maxcol, sel, app)
	// maxcol/maxrow may differ from the last call (the box was resized);
	// rebaseOnResize re-derives the offset/inset against focusRows as measured
	// for this render rather than reusing a stale value.
	offsetRows := w.viewport.rebaseOnResize(focusRows)
	insetRows := 0
	if offsetRows < 0 {
		insetRows = -offsetRows
		offsetRows = 0
	}
	if maxrow > 0 && offsetRows >= maxrow {
		offsetRows = maxrow - 1
	}

	var cursor *CursorCoords
	if maxrow > 0 && focusWidget.Selectable() && focus {
		if gc, ok := focusWidget.(IGetCursorCoords); ok {
			cursor = gc.GetCursorCoords(maxcol, app)
		}
	}

	if cursor != nil {
		effectiveCy := cursor.Row + offsetRows - insetRows
		if effectiveCy < 0 {
			insetRows = cursor.Row
		} else if effectiveCy >= maxrow {
			offsetRows = maxrow - cursor.Row - 1
		}
	}

	trimTop := insetRows

	// collect widgets above the focus
	pos := focusPos
	fillLines := offsetRows
	var fillAbove []rowEntry
	for fillLines > 0 {
		prev, prevPos := w.walker.Previous(pos)
		if prev == nil {
			offsetRows -= fillLines
			break
		}
		pos = prevPos
		pRows := rows(prev, maxcol, gowid.NotSelected, app)
		fillAbove = append(fillAbove, rowEntry{Widget: prev, Pos: prevPos, Rows: pRows})
		if pRows > fillLines {
			trimTop = pRows - fillLines
			break
		}
		fillLines -= pRows
	}

	trimBottom := focusRows + offsetRows - insetRows - maxrow
	if trimBottom < 0 {
		trimBottom = 0
	}

	// collect widgets below the focus
	pos = focusPos
	fillLines = maxrow - focusRows - offsetRows + insetRows
	var fillBelow []rowEntry
	for fillLines > 0 {
		next, nextPos := w.walker.Next(pos)
		if next == nil {
			break
		}
		pos = nextPos
		nRows := rows(next, maxcol, gowid.NotSelected, app)
		fillBelow = append(fillBelow, rowEntry{Widget: next, Pos: nextPos, Rows: nRows})
		if nRows > fillLines {
			trimBottom = nRows - fillLines
			fillLines -= nRows
			break
		}
		fillLines -= nRows
	}

	// fill from the top again if there's still room and we trimmed the top
	if fillLines < 0 {
		fillLines = 0
	}
	if fillLines > 0 && trimTop > 0 {
		if fillLines <= trimTop {
			trimTop -= fillLines
			offsetRows += fillLines
			fillLines = 0
		} else {
			fillLines -= trimTop
			offsetRows += trimTop
			trimTop = 0
		}
	}
	topPos := focusPos
	if len(fillAbove) > 0 {
		topPos = fillAbove[len(fillAbove)-1].Pos
	}
	pos = topPos
	for fillLines > 0 {
		prev, prevPos := w.walker.Previous(pos)
		if prev == nil {
			break
		}
		pos = prevPos
		pRows := rows(prev, maxcol, gowid.NotSelected, app)
		fillAbove = append(fillAbove, rowEntry{Widget: prev, Pos: prevPos, Rows: pRows})
		if pRows > fillLines {
			trimTop = pRows - fillLines
			offsetRows += fillLines
			break
		}
		fillLines -= pRows
		offsetRows += pRows
	}

	return &visible{
		rowOffset:  offsetRows - insetRows,
		widget:     focusWidget,
		pos:        focusPos,
		rows:       focusRows,
		cursor:     cursor,
		trimTop:    trimTop,
		fillAbove:  fillAbove,
		trimBottom: trimBottom,
		fillBelow:  fillBelow,
	}
}

//======================================================================
// Focus Resolver
//======================================================================

// resolvePending honours whatever request is sitting in the viewport's
// pending-focus slot, now that a size is available to measure against.
func (w *Widget) resolvePending(maxcol, maxrow int, focus bool, app gowid.IApp) {
	p := w.viewport.pending
	w.viewport.clearPending()

	switch p.kind {
	case pendingFirstSelectable:
		w.resolveFirstSelectable(maxcol, maxrow, focus, app)
	case pendingAlignValign:
		w.resolveAlignValign(maxcol, maxrow, focus, p.valign, app)
	case pendingRestore:
		w.resolveRestore(maxcol, maxrow, focus, p, app)
	}
}

// resolveFirstSelectable scans forward from whatever the walker currently
// reports as focus, looking for the first selectable widget, and shifts
// focus onto it without disturbing anything that was already visible above
// it - mirroring urwid's "first selectable" pending focus.
func (w *Widget) resolveFirstSelectable(maxcol, maxrow int, focus bool, app gowid.IApp) {
	v := w.calculateVisibleRaw(maxcol, maxrow, focus, app)
	if v == nil {
		return
	}
	if v.widget.Selectable() {
		return
	}

	fillBelow := v.fillBelow
	if v.trimBottom > 0 && len(fillBelow) > 0 {
		fillBelow = fillBelow[:len(fillBelow)-1]
	}

	newRowOffset := v.rowOffset + v.rows
	for _, e := range fillBelow {
		if e.Widget.Selectable() {
			w.walker.SetFocus(e.Pos, app)
			w.shiftFocus(maxcol, maxrow, newRowOffset, app)
			return
		}
		newRowOffset += e.Rows
	}
}

// calculateVisibleRaw runs the Visibility Calculator without re-entering
// resolvePending - used internally by the resolver functions themselves,
// which must measure against the walker's current (unresolved) focus.
func (w *Widget) calculateVisibleRaw(maxcol, maxrow int, focus bool, app gowid.IApp) *visible {
	saved := w.viewport.pending
	w.viewport.pending = pendingFocus{kind: pendingNone}
	v := w.calculateVisible(maxcol, maxrow, focus, app)
	w.viewport.pending = saved
	return v
}

// resolveAlignValign places the current focus widget according to valign -
// top (with its margin), middle or bottom; any other alignment is placed at
// the top - the way a caller might request after jumping focus programmatically.
func (w *Widget) resolveAlignValign(maxcol, maxrow int, focus bool, valign gowid.IVAlignment, app gowid.IApp) {
	focusWidget, _ := w.walker.GetFocus()
	if focusWidget == nil {
		return
	}
	sel := gowid.NotSelected
	if focus {
		sel = gowid.Focused
	}
	fRows := rows(focusWidget, maxcol, sel, app)

	var top int
	switch va := valign.(type) {
	case gowid.VAlignTop:
		top = va.Margin
	case gowid.VAlignMiddle:
		top = (maxrow - fRows) / 2
	case gowid.VAlignBottom:
		top = maxrow - fRows
	default:
		top = 0
	}

	w.shiftFocus(maxcol, maxrow, top, app)
}

// resolveRestore lays the list out around the old focus at p.restorePos and,
// if the new focus is among the widgets visible there, keeps the new focus
// at that row. Otherwise it places the new focus at the top edge (old focus
// below), the bottom edge (old focus above) or the middle (not known).
func (w *Widget) resolveRestore(maxcol, maxrow int, focus bool, p pendingFocus, app gowid.IApp) {
	_, curPos := w.walker.GetFocus()
	if curPos != nil && p.restorePos != nil && curPos.Equal(p.restorePos) {
		return
	}

	target := curPos
	w.walker.SetFocus(p.restorePos, app)
	v := w.calculateVisibleRaw(maxcol, maxrow, focus, app)
	if v == nil {
		return
	}

	offset := v.rowOffset
	for _, e := range v.fillAbove {
		offset -= e.Rows
		if e.Pos.Equal(target) {
			w.changeFocus(maxcol, maxrow, e.Pos, offset, comingFromBelow, nil, -1, app)
			return
		}
	}

	offset = v.rowOffset + v.rows
	for _, e := range v.fillBelow {
		if e.Pos.Equal(target) {
			w.changeFocus(maxcol, maxrow, e.Pos, offset, comingFromAbove, nil, -1, app)
			return
		}
		offset += e.Rows
	}

	// target isn't among the visible widgets; fall back to the edge on the
	// far side from the old focus (bottom if p.comingFrom says it sat above,
	// top if below), or the middle if that isn't known.
	w.walker.SetFocus(target, app)
	widget, _ := w.walker.GetFocus()
	sel := gowid.NotSelected
	if focus {
		sel = gowid.Focused
	}
	r := rows(widget, maxcol, sel, app)

	var offsetInset int
	switch p.comingFrom {
	case comingFromBelow:
		offsetInset = 0
	case comingFromAbove:
		offsetInset = maxrow - r
	default:
		offsetInset = (maxrow - r) / 2
	}
	w.shiftFocus(maxcol, maxrow, offsetInset, app)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
