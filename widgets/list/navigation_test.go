// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"testing"

	"github.com/gdamore/tcell"
	"github.com/magniff/urwid"
	"github.com/stretchr/testify/assert"
)

//======================================================================

func TestCursorDownAdvancesThroughSelectableWidgets(t *testing.T) {
	app := newTestApp()
	letters := []string{"A", "B", "C", "D", "E"}
	widgets := make([]gowid.IWidget, len(letters))
	for i, s := range letters {
		widgets[i] = selectableLine(s)
	}
	w := NewFromSlice(widgets)

	renderBox(w, 20, 5, true, app) // resolve initial pending focus

	for i := 1; i < len(letters); i++ {
		handled := w.UserInput(keyEvent(tcell.KeyDown), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
		assert.True(t, handled)

		_, pos := w.Focus()
		assert.Equal(t, Pos(i), pos)

		v := w.calculateVisible(20, 5, true, app)
		assert.Equal(t, i, v.rowOffset)
	}
}

func TestCursorDownAtLastWidgetStaysPut(t *testing.T) {
	app := newTestApp()
	widgets := []gowid.IWidget{selectableLine("A"), selectableLine("B")}
	w := NewFromSlice(widgets)

	renderBox(w, 20, 5, true, app)
	w.SetFocus(Pos(1), FromNone, app)
	renderBox(w, 20, 5, true, app)

	handled := w.UserInput(keyEvent(tcell.KeyDown), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.False(t, handled) // nothing left to scroll into, so the key is reported unhandled

	_, pos := w.Focus()
	assert.Equal(t, Pos(1), pos) // and focus stays where it was
}

//======================================================================

func TestCursorUpSkipsOverNonSelectableWidget(t *testing.T) {
	app := newTestApp()
	a := selectableLine("A")
	tall := tallWidget(3)
	x := selectableLine("X")
	w := NewFromSlice([]gowid.IWidget{a, tall, x})

	renderBox(w, 20, 5, true, app) // resolves to A, already selectable

	handled := w.UserInput(keyEvent(tcell.KeyDown), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.True(t, handled)
	_, pos := w.Focus()
	assert.Equal(t, Pos(2), pos) // A -> X, scrolling the 3-row widget fully into view

	v := w.calculateVisible(20, 5, true, app)
	assert.Equal(t, 4, v.rowOffset)

	handled = w.UserInput(keyEvent(tcell.KeyUp), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.True(t, handled)

	_, pos = w.Focus()
	assert.Equal(t, Pos(0), pos) // X -> A, stepping back over the non-selectable widget
}

//======================================================================

func TestPageDownSnapsToNextSelectable(t *testing.T) {
	app := newTestApp()
	widgets := make([]gowid.IWidget, 0, 10)
	for i := 0; i < 9; i++ {
		widgets = append(widgets, unselectableLine("row"))
	}
	widgets = append(widgets, selectableLine("B"))
	w := NewFromSlice(widgets)

	// nothing selectable at position 0, so firstSelectable can't resolve past
	// the unselectable run visible in a small box; force focus onto it directly
	w.walker.SetFocus(Pos(0), app)

	handled := w.UserInput(keyEvent(tcell.KeyPgDn), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.True(t, handled)

	widget, pos := w.Focus()
	assert.True(t, widget.Selectable())
	assert.Equal(t, Pos(9), pos)
}

//======================================================================

func TestMakeCursorVisiblePullsScrolledOffCursorBack(t *testing.T) {
	app := newTestApp()
	cl := newCursorLine("hello", 0)
	w := NewFromSlice([]gowid.IWidget{cl})

	renderBox(w, 20, 5, true, app)

	// push the focus widget's offset past the bottom edge directly, as if
	// some other operation had scrolled the cursor out of view
	w.viewport.setOffsetRows(5)
	w.invalidateCache()

	w.MakeCursorVisible(20, 5, app)

	// the cursor (row 0 of a 1-row widget) was below the viewport, so the
	// focus widget is pulled back to sit on the bottom row: maxrow-cy-1 = 4
	assert.Equal(t, 4, w.viewport.offsetInsetRows(1))
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
