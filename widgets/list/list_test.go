// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/magniff/urwid"
	"github.com/stretchr/testify/assert"
)

//======================================================================

func renderBox(w gowid.IWidget, cols, rows int, focus bool, app gowid.IApp) gowid.ICanvas {
	return w.Render(gowid.RenderBox{C: cols, R: rows}, gowid.Selector{Focus: focus}, app)
}

func canvasLines(c gowid.ICanvas) []string {
	lines := make([]string, c.BoxRows())
	for y := 0; y < c.BoxRows(); y++ {
		row := c.Line(y, gowid.LineCopy{}).Line
		s := make([]rune, len(row))
		for x, cell := range row {
			if cell.HasRune() {
				s[x] = cell.Rune()
			} else {
				s[x] = ' '
			}
		}
		lines[y] = strings.TrimRight(string(s), " ")
	}
	return lines
}

//======================================================================

func TestEmptyListRendersBlank(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice(nil)

	c := renderBox(w, 20, 5, true, app)
	assert.Equal(t, 20, c.BoxColumns())
	assert.Equal(t, 5, c.BoxRows())

	for _, line := range canvasLines(c) {
		assert.Equal(t, "", line)
	}
}

func TestEmptyListKeypressUnhandled(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice(nil)

	handled := w.UserInput(keyEvent(tcell.KeyDown), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.False(t, handled)
}

func TestEmptyListEndsVisible(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice(nil)
	assert.Empty(t, w.EndsVisible(20, 5, true, app))
}

//======================================================================

func TestSingleWidgetRendersAtTop(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{unselectableLine("A")})

	c := renderBox(w, 20, 5, true, app)
	lines := canvasLines(c)
	assert.Equal(t, 5, len(lines))
	assert.Equal(t, "A", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, "", line)
	}
}

func TestSingleWidgetEndsVisibleBoth(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{unselectableLine("A")})

	// force resolution of the pending first-selectable request
	renderBox(w, 20, 5, true, app)

	ends := w.EndsVisible(20, 5, true, app)
	assert.ElementsMatch(t, []string{"top", "bottom"}, ends)
}

func TestSingleNonSelectableWidgetDownUnhandled(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{unselectableLine("A")})

	renderBox(w, 20, 5, true, app)
	handled := w.UserInput(keyEvent(tcell.KeyDown), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.False(t, handled)
}

//======================================================================

func TestFocusDefaultsToFirstSelectable(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{unselectableLine("A"), selectableLine("B"), selectableLine("C")})

	renderBox(w, 20, 5, true, app)
	widget, pos := w.Focus()
	assert.Equal(t, Pos(1), pos)
	assert.True(t, widget.Selectable())
}

//======================================================================

func TestMouseClickMovesFocus(t *testing.T) {
	app := newTestApp()
	a, b, c := selectableLine("A"), selectableLine("B"), selectableLine("C")
	w := NewFromSlice([]gowid.IWidget{a, b, c})

	renderBox(w, 20, 5, true, app)

	// the list box returns the clicked row's own result; a text row does not
	// consume mouse events, but focus still moves to it
	handled := w.UserInput(clickAt(0, 2), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.False(t, handled)

	_, pos := w.Focus()
	assert.Equal(t, Pos(2), pos)
}

func TestMouseClickOutsideRangeUnhandled(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{selectableLine("A")})

	renderBox(w, 20, 5, true, app)
	handled := w.UserInput(clickAt(0, 4), gowid.RenderBox{C: 20, R: 5}, gowid.Selector{Focus: true}, app)
	assert.False(t, handled)
}

//======================================================================

func TestRenderCacheInvalidatedOnModified(t *testing.T) {
	app := newTestApp()
	ow := NewObservableWalker([]gowid.IWidget{selectableLine("A")})
	w := New(ow)

	c1 := renderBox(w, 20, 5, true, app)
	assert.True(t, w.cacheValid)

	ow.Append(selectableLine("B"), app)
	assert.False(t, w.cacheValid)

	c2 := renderBox(w, 20, 5, true, app)
	assert.NotEqual(t, c1, c2)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
