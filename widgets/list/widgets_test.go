// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"strings"

	"github.com/magniff/urwid"
	"github.com/magniff/urwid/widgets/selectable"
	"github.com/magniff/urwid/widgets/text"
)

//======================================================================

// selectableLine builds a one-row selectable widget showing s, the
// equivalent of the "A".."E" single-row text widgets the scenarios in
// §8 of the spec are framed around.
func selectableLine(s string) gowid.IWidget {
	return selectable.New(text.New(s))
}

// unselectableLine is the non-selectable counterpart.
func unselectableLine(s string) gowid.IWidget {
	return text.New(s)
}

// tallWidget builds a non-selectable widget occupying exactly rows rows
// regardless of width, by giving text.Widget rows-1 embedded newlines.
func tallWidget(rows int) gowid.IWidget {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = "x"
	}
	return text.New(strings.Join(lines, "\n"))
}

//======================================================================

// cursorLine wraps a text.WidgetWithCursor as a selectable, cursor-bearing
// list item, standing in for urwid's Edit widget (deleted from this tree
// along with the rest of the tcell-v2-only widgets) - the only other
// cursor-bearing widget this toolkit ships.
type cursorLine struct {
	*text.WidgetWithCursor
}

func newCursorLine(s string, col int) *cursorLine {
	w := &text.WidgetWithCursor{
		Widget:       text.New(s),
		SimpleCursor: &text.SimpleCursor{},
	}
	w.SetCursorPos(col, nil)
	return &cursorLine{WidgetWithCursor: w}
}

func (c *cursorLine) Selectable() bool {
	return true
}

func (c *cursorLine) UserInput(ev interface{}, size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) bool {
	return false
}

// GetCursorCoords implements list.IGetCursorCoords: the cursor always sits
// on the widget's only row, at whatever column SetCursorPos last set.
func (c *cursorLine) GetCursorCoords(maxcol int, app gowid.IApp) *CursorCoords {
	if !c.CursorEnabled() {
		return nil
	}
	return &CursorCoords{Col: c.CursorPos(), Row: 0}
}

// MoveCursorToCoords implements list.IMoveCursorToCoords for a one-row
// widget: only row 0 can ever accept the cursor.
func (c *cursorLine) MoveCursorToCoords(maxcol, col, row int, app gowid.IApp) bool {
	if row != 0 {
		return false
	}
	c.SetCursorPos(col, app)
	return true
}

var _ gowid.IWidget = (*cursorLine)(nil)
var _ IGetCursorCoords = (*cursorLine)(nil)
var _ IMoveCursorToCoords = (*cursorLine)(nil)

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
