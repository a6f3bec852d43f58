// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"fmt"

	"github.com/magniff/urwid"
	"github.com/magniff/urwid/gwutil"
)

//======================================================================

// CursorCoords is a widget-relative (column, row) pair, as reported by a
// focus widget's canvas (gowid.ICanvas.CursorCoords) or requested by a
// caller of ChangeFocus.
type CursorCoords struct {
	Col, Row int
}

func (c CursorCoords) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

//======================================================================

// pendingKind tags which of the four pending-focus variants a viewport is
// carrying. Exactly one of them - or none - applies at a time; resolving a
// pending focus always clears it back to pendingNone.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingFirstSelectable
	pendingAlignValign
	pendingRestore
)

// pendingFocus mirrors the pending-focus slot of urwid's ListBox: a request
// that cannot be honoured until the box knows its own size, because honouring
// it requires rendering (or at least measuring) widgets.
type pendingFocus struct {
	kind pendingKind

	// valign is used by pendingAlignValign.
	valign gowid.IVAlignment

	// restorePos/restoreRows/restoreOffsetInset capture the viewport's state
	// at the moment Restore was requested. The resolver reads only
	// restorePos: it measures the old focus at the viewport's current
	// offset and keeps it where it is found there; restoreRows and
	// restoreOffsetInset are recorded but not read.
	restorePos         Position
	restoreRows        int
	restoreOffsetInset int

	// comingFrom records whether the caller of SetFocus knew the old focus
	// to sit above or below the new one, used as a fallback placement hint
	// if the new focus is not among the widgets visible around the old one.
	comingFrom comingFrom
}

//======================================================================

// viewport is the list box's notion of where its focus widget sits relative
// to the visible rows. Exactly one of offsetRows (focus top is offsetRows
// rows below the viewport top) or the inset fraction insetNum/insetDen
// (insetNum/insetDen of the focus widget's rows are scrolled off above the
// viewport) holds at any moment - never both, and never neither, once a
// focus position exists.
type viewport struct {
	haveOffset bool // true: offsetRows holds; false: insetNum/insetDen holds
	offsetRows int
	insetNum   int
	insetDen   int

	prefCol gwutil.IntOption

	pending pendingFocus
}

func newViewport() viewport {
	return viewport{haveOffset: true, offsetRows: 0}
}

// setOffsetRows puts the viewport into offset-rows mode: the focus widget's
// top row sits rows rows below the top of the display.
func (v *viewport) setOffsetRows(rows int) {
	v.haveOffset = true
	v.offsetRows = rows
}

// setInsetFraction puts the viewport into inset-fraction mode: num/den of
// the focus widget's rows are scrolled off above the top of the display.
// num/den is stored as given, not reduced; 0 <= num < den, den > 0.
func (v *viewport) setInsetFraction(num, den int) error {
	if den <= 0 || num < 0 || num >= den {
		return InvalidInsetFraction{Num: num, Den: den}
	}
	v.haveOffset = false
	v.insetNum = num
	v.insetDen = den
	return nil
}

// offsetInsetRows resolves the viewport's current mode against a focus
// widget of targetRows rows, returning how many rows of the widget (if any,
// expressed as a negative "rows scrolled off above") are hidden above the
// viewport - the same value urwid calls offset_inset: positive means the
// widget's top sits that many rows below the viewport top, negative means
// that many rows of the widget are above the viewport and invisible.
func (v *viewport) offsetInsetRows(targetRows int) int {
	if v.haveOffset {
		return v.offsetRows
	}
	if v.insetDen == 0 {
		return 0
	}
	return -(targetRows * v.insetNum) / v.insetDen
}

// rebaseOnResize recomputes offsetInset for a possibly-new targetRows,
// preferring to keep whichever of the two representations currently holds.
// An inset fraction naturally tracks a resize (it is re-derived from the
// fraction each time); an absolute offsetRows does not change at all. This
// mirrors urwid's get_focus_offset_inset, which is exactly this dispatch.
func (v *viewport) rebaseOnResize(targetRows int) int {
	return v.offsetInsetRows(targetRows)
}

// clearPending resets the pending-focus slot to none.
func (v *viewport) clearPending() {
	v.pending = pendingFocus{kind: pendingNone}
}

// requestFirstSelectable arranges for the next render to move focus to the
// first selectable widget at or after the current one among those visible
// below it, leaving that widget at the row it already occupies on the
// display. This is how a freshly-constructed list box
// establishes an initial focus before it has ever been sized.
func (v *viewport) requestFirstSelectable() {
	v.pending = pendingFocus{kind: pendingFirstSelectable}
}

// requestAlignValign arranges for the next render to place the current
// focus widget according to valign (top/middle/bottom; only a top alignment
// carries a margin), the way a caller might ask to re-center the focus after a jump.
func (v *viewport) requestAlignValign(valign gowid.IVAlignment) {
	v.pending = pendingFocus{kind: pendingAlignValign, valign: valign}
}

// requestRestore arranges for the next render to try to keep the widget
// that is currently at pos in the same visual row it occupies now, so that
// SetFocus avoids a jarring scroll. rows and offsetInset are recorded in
// the request but not read by the resolver. from is used only as a
// fallback, if the new focus is not visible around pos.
func (v *viewport) requestRestore(pos Position, rows, offsetInset int, from comingFrom) {
	v.pending = pendingFocus{
		kind:               pendingRestore,
		restorePos:         pos,
		restoreRows:        rows,
		restoreOffsetInset: offsetInset,
		comingFrom:         from,
	}
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
