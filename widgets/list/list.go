// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

// Package list provides a scrolling, focus-aware box widget over a
// sequence of variable-height flow widgets - a child can be arbitrarily
// tall, arbitrarily far from the currently visible region, and even backed
// by a sequence the box cannot measure all at once. The box only ever deals
// with enough of that sequence to cover its own viewport.
package list

import (
	"github.com/magniff/urwid"
	"github.com/magniff/urwid/gwutil"
	"github.com/magniff/urwid/vim"
	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
)

//======================================================================

// comingFrom records which direction a focus change arrived from, used to
// decide whether a newly-focused widget should snap to the near or far edge
// of the viewport, and which end of the widget the cursor should enter from.
type comingFrom int

const (
	comingFromNone comingFrom = iota
	comingFromAbove
	comingFromBelow
)

// IMoveCursorToCoords is an optional capability a selectable widget can
// implement to let the list box place its cursor at a specific column and
// row when focus arrives from a keypress or mouse click, the same way a
// text-editing widget needs to know which column the cursor should land in
// when the user presses up/down rather than left/right.
type IMoveCursorToCoords interface {
	MoveCursorToCoords(maxcol, col, row int, app gowid.IApp) bool
}

// Options configures the keys a Widget treats as "cursor up"/"cursor down"
// for the purposes of scrolling, on top of whatever the focus widget itself
// consumes first.
type Options struct {
	DownKeys []vim.KeyPress
	UpKeys   []vim.KeyPress
}

func (o *Options) downKeys() []vim.KeyPress {
	if len(o.DownKeys) > 0 {
		return o.DownKeys
	}
	return vim.AllDownKeys
}

func (o *Options) upKeys() []vim.KeyPress {
	if len(o.UpKeys) > 0 {
		return o.UpKeys
	}
	return vim.AllUpKeys
}

//======================================================================

// IWidget is the interface satisfied by list.Widget, useful for callers
// that want to accept "anything that behaves like a scrolling list" rather
// than the concrete type.
type IWidget interface {
	gowid.IWidget
	Walker() Walker
	SetFocus(pos Position, from ComingFrom, app gowid.IApp)
	Focus() (gowid.IWidget, Position)
}

// Widget is a box widget that renders a scrolling window onto a Walker's
// sequence of widgets, tracking which one has focus and how it sits
// relative to the viewport. It is gowid's analogue of urwid's ListBox.
type Widget struct {
	walker   Walker
	viewport viewport
	options  Options

	cache      gowid.ICanvas
	cacheValid bool
	cacheCols  int
	cacheRows  int
	cacheFocus bool

	gowid.AddressProvidesID
	*gowid.Callbacks
	gowid.FocusCallbacks
	gowid.IsSelectable
}

var _ gowid.IWidget = (*Widget)(nil)
var _ IWidget = (*Widget)(nil)
var _ gowid.ICompositeWidget = (*Widget)(nil)

// New constructs a Widget over walker. The box starts with a pending
// request to focus the first selectable child, resolved the first time the
// box is rendered or receives a keypress - mirroring urwid's ListBox, which
// defaults set_focus_pending to 'first selectable' at construction.
func New(walker Walker, opts ...Options) *Widget {
	w := &Widget{
		walker:   walker,
		viewport: newViewport(),
	}
	w.Callbacks = gowid.NewCallbacks()
	w.FocusCallbacks = gowid.FocusCallbacks{ICallbacks: gowid.NewCallbacks()}
	if len(opts) > 0 {
		w.options = opts[0]
	}
	w.viewport.requestFirstSelectable()

	if mn, ok := walker.(IModifiedNotifier); ok {
		mn.OnModified(gowid.WidgetCallback{Name: "cb", WidgetChangedFunction: func(app gowid.IApp, _ gowid.IWidget) {
			w.invalidateCache()
			gowid.RunWidgetCallbacks(w.Callbacks, ModifiedCB{}, app)
		}})
	}

	var _ gowid.IWidget = w
	return w
}

// NewFromSlice is a convenience constructor for the common case of a fixed,
// non-changing list of widgets - equivalent to New(NewObservableWalker(widgets)).
func NewFromSlice(widgets []gowid.IWidget, opts ...Options) *Widget {
	return New(NewObservableWalker(widgets), opts...)
}

func (w *Widget) String() string {
	return "list"
}

func (w *Widget) Walker() Walker {
	return w.walker
}

// SubWidget satisfies gowid.ICompositeWidget so that containers which walk
// the widget tree (for click-target resolution, for example) can reach the
// currently focused child.
func (w *Widget) SubWidget() gowid.IWidget {
	widget, _ := w.walker.GetFocus()
	return widget
}

func (w *Widget) SetSubWidget(wi gowid.IWidget, app gowid.IApp) {
	panic(errors.New("list.Widget's focus widget can only be changed via its Walker"))
}

func (w *Widget) SubWidgetSize(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.IRenderSize {
	box := size.(gowid.IRenderBox)
	return gowid.RenderFlowWith{C: box.BoxColumns()}
}

// Focus returns the widget and position currently in focus.
func (w *Widget) Focus() (gowid.IWidget, Position) {
	return w.walker.GetFocus()
}

// SetFocus moves focus to pos and tries to keep whatever used to be focused
// still visible, by requesting a Restore resolution on the next render -
// mirroring urwid's ListBox.set_focus. from tells the resolver, if pos is not
// among the widgets visible around the old focus, whether the old position is
// known to sit above or below pos, so it can land the new focus at the bottom
// edge (old above) or the top edge (old below) instead of simply centring it;
// pass FromNone if that isn't known.
func (w *Widget) SetFocus(pos Position, from ComingFrom, app gowid.IApp) {
	_, oldPos := w.walker.GetFocus()
	w.viewport.requestRestore(oldPos, 0, 0, from)
	w.walker.SetFocus(pos, app)
	w.invalidateCache()
}

func (w *Widget) invalidateCache() {
	w.cacheValid = false
	w.cache = nil
}

func (w *Widget) RenderSize(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.IRenderBox {
	box, ok := size.(gowid.IRenderBox)
	if !ok {
		panic(gowid.WidgetSizeError{Widget: w, Size: size, Required: "gowid.IRenderBox"})
	}
	return gowid.RenderBox{C: box.BoxColumns(), R: box.BoxRows()}
}

//======================================================================

func cursorsEqual(a, b *CursorCoords) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Render draws the visible window of the list: the focus widget plus
// however many neighbours fit above and below it, trimmed at the edges and
// padded with blank rows if the sequence runs out before the box is full.
func (w *Widget) Render(size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) gowid.ICanvas {
	box, ok := size.(gowid.IRenderBox)
	if !ok {
		panic(gowid.WidgetSizeError{Widget: w, Size: size, Required: "gowid.IRenderBox"})
	}
	maxcol, maxrow := box.BoxColumns(), box.BoxRows()

	if _, pollable := w.walker.(IModifiedNotifier); pollable {
		if w.cacheValid && w.cacheCols == maxcol && w.cacheRows == maxrow && w.cacheFocus == focus.Focus {
			return w.cache
		}
	}

	v := w.calculateVisible(maxcol, maxrow, focus.Focus, app)
	if v == nil {
		return gowid.NewCanvasOfSizeExt(maxcol, maxrow, gowid.Cell{})
	}

	canvas := gowid.NewCanvas()
	rowsUsed := 0

	for i := len(v.fillAbove) - 1; i >= 0; i-- {
		e := v.fillAbove[i]
		c := gowid.Render(e.Widget, gowid.RenderFlowWith{C: maxcol}, gowid.NotSelected, app)
		if c.BoxRows() != e.Rows {
			panic(WidgetHeightMismatch{Widget: e.Widget, Position: e.Pos, ExpectedRows: e.Rows, ActualRows: c.BoxRows()})
		}
		canvas.AppendBelow(c, false, false)
		rowsUsed += e.Rows
	}

	focusSel := gowid.NotSelected
	if focus.Focus {
		focusSel = gowid.Focused
	}
	fc := gowid.Render(v.widget, gowid.RenderFlowWith{C: maxcol}, focusSel, app)
	if fc.BoxRows() != v.rows {
		panic(WidgetHeightMismatch{Widget: v.widget, Position: v.pos, ExpectedRows: v.rows, ActualRows: fc.BoxRows()})
	}
	var gotCursor *CursorCoords
	if fc.CursorEnabled() {
		cc := fc.CursorCoords()
		gotCursor = &CursorCoords{Col: cc.X, Row: cc.Y}
	}
	if !cursorsEqual(v.cursor, gotCursor) {
		panic(CursorMismatch{Widget: v.widget, Position: v.pos, Wanted: v.cursor, Got: gotCursor})
	}
	canvas.AppendBelow(fc, true, false)
	rowsUsed += v.rows

	for _, e := range v.fillBelow {
		c := gowid.Render(e.Widget, gowid.RenderFlowWith{C: maxcol}, gowid.NotSelected, app)
		if c.BoxRows() != e.Rows {
			panic(WidgetHeightMismatch{Widget: e.Widget, Position: e.Pos, ExpectedRows: e.Rows, ActualRows: c.BoxRows()})
		}
		canvas.AppendBelow(c, false, false)
		rowsUsed += e.Rows
	}

	if v.trimTop > 0 {
		canvas.Truncate(v.trimTop, 0)
		rowsUsed -= v.trimTop
	}
	if v.trimBottom > 0 {
		canvas.Truncate(0, v.trimBottom)
		rowsUsed -= v.trimBottom
	}

	if rowsUsed < maxrow {
		for i := 0; i < maxrow-rowsUsed; i++ {
			canvas.AppendLine(make([]gowid.Cell, 0), false)
		}
	}

	if _, pollable := w.walker.(IModifiedNotifier); pollable {
		w.cache = canvas
		w.cacheValid = true
		w.cacheCols = maxcol
		w.cacheRows = maxrow
		w.cacheFocus = focus.Focus
	}

	return canvas
}

//======================================================================
// Public list-box operations
//======================================================================

// ShiftFocus moves the current focus relative to the viewport top, without
// changing which widget has focus. offsetInset is the row at which the
// focus widget's top should appear (>= 0), or the negative number of rows
// of the focus widget that should be scrolled off above the viewport.
func (w *Widget) ShiftFocus(maxcol, maxrow, offsetInset int, app gowid.IApp) error {
	return w.shiftFocus(maxcol, maxrow, offsetInset, app)
}

func (w *Widget) shiftFocus(maxcol, maxrow, offsetInset int, app gowid.IApp) error {
	if offsetInset >= 0 {
		if maxrow > 0 && offsetInset >= maxrow {
			return errors.WithStack(InvalidOffsetInset{OffsetInset: offsetInset, MaxRow: maxrow})
		}
		w.viewport.setOffsetRows(offsetInset)
	} else {
		target, _ := w.walker.GetFocus()
		if target == nil {
			return nil
		}
		tgtRows := rows(target, maxcol, gowid.Focused, app)
		if offsetInset+tgtRows <= 0 {
			return errors.WithStack(InvalidOffsetInset{OffsetInset: offsetInset, MaxRow: maxrow, TargetRows: tgtRows})
		}
		if err := w.viewport.setInsetFraction(-offsetInset, tgtRows); err != nil {
			return errors.WithStack(err)
		}
	}
	w.invalidateCache()
	return nil
}

// ComingFrom tells ChangeFocus which direction a focus change arrived from,
// which governs whether the new focus snaps to the near viewport edge and
// which end of it the cursor enters from.
type ComingFrom = comingFrom

const (
	FromNone  = comingFromNone
	FromAbove = comingFromAbove
	FromBelow = comingFromBelow
)

// ChangeFocus moves focus to position, positions it at offsetInset, and
// snaps it to the near viewport edge if it is selectable and comingFrom a
// direction that would otherwise leave it only partly visible.
func (w *Widget) ChangeFocus(maxcol, maxrow int, position Position, offsetInset int, from ComingFrom, app gowid.IApp) error {
	return w.changeFocus(maxcol, maxrow, position, offsetInset, from, nil, -1, app)
}

func (w *Widget) changeFocus(maxcol, maxrow int, position Position, offsetInset int, cf comingFrom, cursor *CursorCoords, snapRows int, app gowid.IApp) error {
	if cursor != nil {
		w.viewport.prefCol = gwutil.SomeInt(cursor.Col)
	} else {
		w.updatePrefColFromFocus(maxcol, app)
	}

	w.invalidateCache()
	w.walker.SetFocus(position, app)
	target, _ := w.walker.GetFocus()
	if target == nil {
		return nil
	}
	tgtRows := rows(target, maxcol, gowid.Focused, app)
	if snapRows < 0 {
		snapRows = maxrow - 1
	}

	alignTop := 0
	alignBottom := maxrow - tgtRows

	if cf == comingFromAbove && target.Selectable() && offsetInset > alignBottom && alignBottom >= offsetInset-snapRows {
		offsetInset = alignBottom
	}
	if cf == comingFromBelow && target.Selectable() && offsetInset < alignTop && alignTop <= offsetInset+snapRows {
		offsetInset = alignTop
	}

	if offsetInset >= 0 {
		w.viewport.setOffsetRows(offsetInset)
	} else {
		if offsetInset+tgtRows <= 0 {
			return errors.WithStack(InvalidOffsetInset{OffsetInset: offsetInset, MaxRow: maxrow, TargetRows: tgtRows})
		}
		if err := w.viewport.setInsetFraction(-offsetInset, tgtRows); err != nil {
			return errors.WithStack(err)
		}
	}

	if cursor == nil {
		if cf == comingFromNone {
			return nil
		}
		col := 0
		if !w.viewport.prefCol.IsNone() {
			col = w.viewport.prefCol.Val()
		}
		cursor = &CursorCoords{Col: col, Row: -1}
	}

	mc, ok := target.(IMoveCursorToCoords)
	if !ok {
		return nil
	}

	var attemptRows []int
	if cursor.Row < 0 {
		if cf == comingFromAbove {
			for r := 0; r < tgtRows; r++ {
				attemptRows = append(attemptRows, r)
			}
		} else {
			for r := tgtRows; r >= 0; r-- {
				attemptRows = append(attemptRows, r)
			}
		}
	} else {
		if cursor.Row >= tgtRows {
			return errors.WithStack(CursorCoordsOutOfRange{Row: cursor.Row, TargetRows: tgtRows})
		}
		switch cf {
		case comingFromAbove:
			for r := cursor.Row; r >= 0; r-- {
				attemptRows = append(attemptRows, r)
			}
		case comingFromBelow:
			for r := cursor.Row; r < tgtRows; r++ {
				attemptRows = append(attemptRows, r)
			}
		default:
			attemptRows = []int{cursor.Row}
		}
	}

	for _, r := range attemptRows {
		if mc.MoveCursorToCoords(maxcol, cursor.Col, r, app) {
			break
		}
	}

	return nil
}

// updatePrefColFromFocus records the column the cursor currently occupies
// (or the focus widget's own idea of a preferred column) so that a later
// vertical move can try to land in the same column.
func (w *Widget) updatePrefColFromFocus(maxcol int, app gowid.IApp) {
	widget, _ := w.walker.GetFocus()
	if widget == nil {
		return
	}
	prefCol := gwutil.NoneInt()
	if pp, ok := widget.(gowid.IPreferedPosition); ok {
		prefCol = pp.GetPreferedPosition()
	}
	if prefCol.IsNone() {
		if gc, ok := widget.(IGetCursorCoords); ok {
			if c := gc.GetCursorCoords(maxcol, app); c != nil {
				prefCol = gwutil.SomeInt(c.Col)
			}
		}
	}
	if !prefCol.IsNone() {
		w.viewport.prefCol = prefCol
	}
}

// MakeCursorVisible shifts the focus widget, if necessary, so that its
// cursor falls within the viewport.
func (w *Widget) MakeCursorVisible(maxcol, maxrow int, app gowid.IApp) {
	focusWidget, _ := w.walker.GetFocus()
	if focusWidget == nil || !focusWidget.Selectable() {
		return
	}
	gc, ok := focusWidget.(IGetCursorCoords)
	if !ok {
		return
	}
	cursor := gc.GetCursorCoords(maxcol, app)
	if cursor == nil {
		return
	}
	fRows := rows(focusWidget, maxcol, gowid.Focused, app)
	offsetInset := w.viewport.offsetInsetRows(fRows)
	offsetRows, insetRows := offsetInset, 0
	if offsetRows < 0 {
		insetRows = -offsetRows
		offsetRows = 0
	}
	if cursor.Row < insetRows {
		w.shiftFocus(maxcol, maxrow, -cursor.Row, app)
		return
	}
	if offsetRows-insetRows+cursor.Row >= maxrow {
		w.shiftFocus(maxcol, maxrow, maxrow-cursor.Row-1, app)
	}
}

// EndsVisible reports which of "top" and "bottom" of the underlying
// sequence are currently within the viewport - a convenience for callers
// deciding whether it's worth offering "scroll to top"/"scroll to bottom"
// affordances.
func (w *Widget) EndsVisible(maxcol, maxrow int, focus bool, app gowid.IApp) []string {
	var l []string
	v := w.calculateVisible(maxcol, maxrow, focus, app)
	if v == nil {
		return l
	}

	if v.trimBottom == 0 {
		rowOffset := v.rowOffset + v.rows
		lastPos := v.pos
		for _, e := range v.fillBelow {
			rowOffset += e.Rows
			lastPos = e.Pos
		}
		if rowOffset < maxrow {
			l = append(l, "bottom")
		} else if next, _ := w.walker.Next(lastPos); next == nil {
			l = append(l, "bottom")
		}
	}

	if v.trimTop == 0 {
		firstPos := v.pos
		if len(v.fillAbove) > 0 {
			firstPos = v.fillAbove[len(v.fillAbove)-1].Pos
		}
		if prev, _ := w.walker.Previous(firstPos); prev == nil {
			l = append(l, "top")
		}
	}

	return l
}

//======================================================================
// Keyboard and mouse
//======================================================================

// UserInput handles keyboard navigation (up/down/page up/page down,
// delegated first to the focus widget) and mouse-driven focus changes.
func (w *Widget) UserInput(ev interface{}, size gowid.IRenderSize, focus gowid.Selector, app gowid.IApp) bool {
	box, ok := size.(gowid.IRenderBox)
	if !ok {
		return false
	}
	maxcol, maxrow := box.BoxColumns(), box.BoxRows()

	switch e := ev.(type) {
	case *tcell.EventKey:
		return w.handleKey(maxcol, maxrow, e, app)
	case *tcell.EventMouse:
		return w.handleMouse(maxcol, maxrow, e, app)
	}
	return false
}

func (w *Widget) handleKey(maxcol, maxrow int, ev *tcell.EventKey, app gowid.IApp) bool {
	focusWidget, _ := w.walker.GetFocus()
	if focusWidget == nil {
		return false
	}

	isDown := vim.KeyIn(ev, w.options.downKeys())
	isUp := vim.KeyIn(ev, w.options.upKeys())
	isPageDown := ev.Key() == tcell.KeyPgDn
	isPageUp := ev.Key() == tcell.KeyPgUp

	if !isPageUp && !isPageDown {
		if focusWidget.Selectable() {
			if gowid.UserInput(focusWidget, ev, gowid.RenderFlowWith{C: maxcol}, gowid.Focused, app) {
				w.invalidateCache()
				w.MakeCursorVisible(maxcol, maxrow, app)
				return true
			}
		}
		switch {
		case isUp:
			return w.keypressUp(maxcol, maxrow, app)
		case isDown:
			return w.keypressDown(maxcol, maxrow, app)
		}
		return false
	}

	switch {
	case isPageUp:
		w.keypressPageUp(maxcol, maxrow, app)
	case isPageDown:
		w.keypressPageDown(maxcol, maxrow, app)
	}
	return true
}

// handleMouse is the Mouse Router: it resolves which visible widget the
// click landed on, changes focus to it on a left click, and then delegates
// the event to that widget with row coordinates translated into its own
// local space.
func (w *Widget) handleMouse(maxcol, maxrow int, ev *tcell.EventMouse, app gowid.IApp) bool {
	v := w.calculateVisible(maxcol, maxrow, true, app)
	if v == nil {
		return false
	}

	type hit struct {
		Widget gowid.IWidget
		Pos    Position
		Rows   int
	}
	var list []hit
	for i := len(v.fillAbove) - 1; i >= 0; i-- {
		e := v.fillAbove[i]
		list = append(list, hit{e.Widget, e.Pos, e.Rows})
	}
	list = append(list, hit{v.widget, v.pos, v.rows})
	for _, e := range v.fillBelow {
		list = append(list, hit{e.Widget, e.Pos, e.Rows})
	}

	_, clickRow := ev.Position()

	wrow := -v.trimTop
	var target hit
	found := false
	for _, h := range list {
		if wrow+h.Rows > clickRow {
			target = h
			found = true
			break
		}
		wrow += h.Rows
	}
	if !found {
		return false
	}

	if ev.Buttons()&tcell.Button1 != 0 && target.Widget.Selectable() {
		w.changeFocus(maxcol, maxrow, target.Pos, wrow, comingFromNone, nil, -1, app)
	}

	return gowid.UserInput(target.Widget, ev, gowid.RenderFlowWith{C: maxcol}, gowid.NotSelected, app)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
