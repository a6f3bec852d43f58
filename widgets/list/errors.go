// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"fmt"
)

//======================================================================

// BadSequence is returned when a PollingWalker is constructed over a value
// that supports neither a slice-like Length()/At() pair nor Go's built-in
// indexable kinds (slice, array, or a pointer to either).
type BadSequence struct {
	Body interface{}
}

var _ error = BadSequence{}

func (e BadSequence) Error() string {
	return fmt.Sprintf("value of type %T is not indexable and cannot back a PollingWalker", e.Body)
}

// InvalidOffsetInset is returned by ShiftFocus/ChangeFocus when the supplied
// offset_inset would hide the entire focus widget, or would ask the widget to
// sit lower than the available rows in the viewport.
type InvalidOffsetInset struct {
	OffsetInset int
	MaxRow      int
	TargetRows  int
}

var _ error = InvalidOffsetInset{}

func (e InvalidOffsetInset) Error() string {
	return fmt.Sprintf("invalid offset_inset %d for viewport of %d rows and a focus widget of %d rows",
		e.OffsetInset, e.MaxRow, e.TargetRows)
}

// InvalidInsetFraction is returned when a viewport is asked to store an inset
// fraction num/den that does not satisfy 0 <= num < den, den > 0 (this
// happens when ShiftFocus/ChangeFocus place the focus widget partly above the
// top of the display).
type InvalidInsetFraction struct {
	Num, Den int
}

var _ error = InvalidInsetFraction{}

func (e InvalidInsetFraction) Error() string {
	return fmt.Sprintf("invalid inset fraction %d/%d", e.Num, e.Den)
}

// WidgetHeightMismatch is reported when a child widget's Rows() calculation
// disagrees with the height of the canvas it actually renders. The visibility
// calculator's bookkeeping (trims, fills, offsets) depends on these values
// staying in lock-step.
type WidgetHeightMismatch struct {
	Widget       interface{}
	Position     interface{}
	ExpectedRows int
	ActualRows   int
}

var _ error = WidgetHeightMismatch{}

func (e WidgetHeightMismatch) Error() string {
	return fmt.Sprintf("widget %v at position %v calculated %d rows but rendered %d",
		e.Widget, e.Position, e.ExpectedRows, e.ActualRows)
}

// CursorMismatch is reported when a focus widget's reported cursor
// coordinates differ from the cursor coordinates of its rendered canvas.
type CursorMismatch struct {
	Widget   interface{}
	Position interface{}
	Wanted   *CursorCoords
	Got      *CursorCoords
}

var _ error = CursorMismatch{}

func (e CursorMismatch) Error() string {
	return fmt.Sprintf("widget %v at position %v calculated cursor %v but rendered cursor %v",
		e.Widget, e.Position, e.Wanted, e.Got)
}

// CursorCoordsOutOfRange is returned by the internal focus change used for
// paging when the requested cursor row falls outside [0, tgt_rows) of the new
// focus widget. The exported ChangeFocus passes no cursor row.
type CursorCoordsOutOfRange struct {
	Row        int
	TargetRows int
}

var _ error = CursorCoordsOutOfRange{}

func (e CursorCoordsOutOfRange) Error() string {
	return fmt.Sprintf("cursor row %d outside valid range [0,%d) for target widget", e.Row, e.TargetRows)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
