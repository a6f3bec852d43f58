// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"testing"

	"github.com/magniff/urwid"
	"github.com/stretchr/testify/assert"
)

//======================================================================

func TestCalculateVisibleEmptyReturnsNil(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice(nil)

	v := w.calculateVisible(20, 5, true, app)
	assert.Nil(t, v)
}

func TestCalculateVisibleFillsRowsExactly(t *testing.T) {
	app := newTestApp()
	letters := []string{"A", "B", "C", "D", "E"}
	widgets := make([]gowid.IWidget, len(letters))
	for i, s := range letters {
		widgets[i] = selectableLine(s)
	}
	w := NewFromSlice(widgets)

	v := w.calculateVisible(20, 3, true, app)
	assert.Equal(t, 0, v.rowOffset)
	assert.Equal(t, 0, v.trimTop)
	assert.Equal(t, 0, v.trimBottom)
	assert.Empty(t, v.fillAbove)
	assert.Len(t, v.fillBelow, 2)

	total := v.rows
	for _, e := range v.fillBelow {
		total += e.Rows
	}
	assert.Equal(t, 3, total) // exactly fills the box, nothing left to pad
}

//======================================================================

func TestResolveFirstSelectableFindsWidgetInVisibleRegion(t *testing.T) {
	app := newTestApp()
	tall := tallWidget(3)
	x := selectableLine("X")
	w := NewFromSlice([]gowid.IWidget{tall, x})

	renderBox(w, 20, 5, true, app)

	widget, pos := w.Focus()
	assert.Equal(t, Pos(1), pos)
	assert.True(t, widget.Selectable())

	v := w.calculateVisible(20, 5, true, app)
	assert.Equal(t, 3, v.rowOffset)
}

// A focus widget taller than the box leaves nothing for the below-focus
// scan to walk into (fill_lines never goes positive), so a selectable
// widget further down the sequence can never be discovered this way -
// the same limitation the original algorithm has.
func TestResolveFirstSelectableCannotReachWidgetBeyondView(t *testing.T) {
	app := newTestApp()
	tall := tallWidget(10)
	x := selectableLine("X")
	w := NewFromSlice([]gowid.IWidget{tall, x})

	renderBox(w, 20, 5, true, app)

	widget, pos := w.Focus()
	assert.Equal(t, Pos(0), pos)
	assert.False(t, widget.Selectable())
}

//======================================================================

func TestInsetFractionTrimsTopOfFocusWidget(t *testing.T) {
	app := newTestApp()
	w := NewFromSlice([]gowid.IWidget{tallWidget(4)})

	// a 2-row box, so the visible bottom half of the widget fills it and
	// there is no room left for the top rows to be reclaimed
	renderBox(w, 20, 2, true, app) // resolve the initial pending request

	assert.NoError(t, w.viewport.setInsetFraction(1, 2))
	w.invalidateCache()

	v := w.calculateVisible(20, 2, true, app)
	assert.Equal(t, 2, v.trimTop)
	assert.Equal(t, -2, v.rowOffset)
	assert.Equal(t, 0, v.trimBottom)
	assert.Empty(t, v.fillAbove)
	assert.Empty(t, v.fillBelow)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
