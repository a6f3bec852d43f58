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

func TestPollingWalkerBadSequence(t *testing.T) {
	_, err := NewPollingWalker(42)
	assert.Error(t, err)
	_, ok := err.(interface{ Error() string })
	assert.True(t, ok)
}

func TestPollingWalkerEmpty(t *testing.T) {
	w, err := NewPollingWalker([]gowid.IWidget{})
	assert.NoError(t, err)
	widget, pos := w.GetFocus()
	assert.Nil(t, widget)
	assert.Nil(t, pos)
}

func TestPollingWalkerNextPrev(t *testing.T) {
	widgets := []gowid.IWidget{selectableLine("A"), selectableLine("B"), selectableLine("C")}
	w, err := NewPollingWalker(widgets)
	assert.NoError(t, err)

	widget, pos := w.GetFocus()
	assert.Equal(t, widgets[0], widget)
	assert.Equal(t, Pos(0), pos)

	next, nextPos := w.Next(pos)
	assert.Equal(t, widgets[1], next)
	assert.Equal(t, Pos(1), nextPos)

	_, lastPos := w.Next(nextPos)
	after, afterPos := w.Next(lastPos)
	assert.Nil(t, after)
	assert.Nil(t, afterPos)

	prev, prevPos := w.Previous(pos)
	assert.Nil(t, prev)
	assert.Nil(t, prevPos)
}

func TestPollingWalkerClampsFocus(t *testing.T) {
	widgets := []gowid.IWidget{selectableLine("A"), selectableLine("B")}
	w, err := NewPollingWalker(widgets)
	assert.NoError(t, err)

	w.SetFocus(Pos(5), nil)
	widget, pos := w.GetFocus()
	assert.Equal(t, widgets[1], widget)
	assert.Equal(t, Pos(1), pos)
}

//======================================================================

func TestObservableWalkerModifiedFires(t *testing.T) {
	app := newTestApp()
	w := NewObservableWalker([]gowid.IWidget{selectableLine("A"), selectableLine("B")})

	fired := false
	w.OnModified(gowid.WidgetChangedFunction(func(app gowid.IApp, widget gowid.IWidget) {
		fired = true
	}))

	w.Append(selectableLine("C"), app)
	assert.True(t, fired)
	assert.Equal(t, 3, w.Length())
}

func TestObservableWalkerClampsFocusBeforeModified(t *testing.T) {
	app := newTestApp()
	w := NewObservableWalker([]gowid.IWidget{selectableLine("A"), selectableLine("B"), selectableLine("C")})
	w.SetFocus(Pos(2), app)

	var focusAtFire Position
	w.OnModified(gowid.WidgetChangedFunction(func(app gowid.IApp, widget gowid.IWidget) {
		_, focusAtFire = w.GetFocus()
	}))

	w.Remove(2, app)
	w.Remove(1, app)

	assert.Equal(t, Pos(0), focusAtFire)
	_, pos := w.GetFocus()
	assert.Equal(t, Pos(0), pos)
}

func TestObservableWalkerInsertRemoveSet(t *testing.T) {
	app := newTestApp()
	a, b, c := selectableLine("A"), selectableLine("B"), selectableLine("C")
	w := NewObservableWalker([]gowid.IWidget{a, c})

	w.Insert(1, b, app)
	assert.Equal(t, []gowid.IWidget{a, b, c}, w.Widgets)

	d := selectableLine("D")
	w.Set(0, d, app)
	assert.Equal(t, d, w.Widgets[0])

	w.Remove(1, app)
	assert.Equal(t, []gowid.IWidget{d, c}, w.Widgets)
}

func TestPosEqual(t *testing.T) {
	assert.True(t, Pos(3).Equal(Pos(3)))
	assert.False(t, Pos(3).Equal(Pos(4)))
	assert.Panics(t, func() { Pos(3).Equal(notAPos{}) })
}

type notAPos struct{}

func (notAPos) Equal(Position) bool { return false }

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
