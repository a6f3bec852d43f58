// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"fmt"
	"reflect"

	"github.com/magniff/urwid"
	"github.com/magniff/urwid/gwutil"
	"github.com/pkg/errors"
)

//======================================================================

// Position is an opaque token identifying a child within a Walker's
// sequence. Positions support equality only - a Walker may use indices,
// pointers, tree paths or anything else as the concrete type, and the list
// box never assumes an ordering between two of them.
type Position interface {
	Equal(Position) bool
}

// Walker is a cursor over an abstract, possibly unbounded sequence of
// widgets. It is the only interface the list box has onto its contents -
// everything else (scrolling, paging, focus tracking) is built on top of
// GetFocus/SetFocus/Next/Previous alone.
//
// Next and Previous must never change what GetFocus subsequently returns.
// All four methods return (nil, nil) to mean "no such widget" - an empty
// walker, or a walk that has run off either end.
type Walker interface {
	GetFocus() (gowid.IWidget, Position)
	SetFocus(pos Position, app gowid.IApp)
	Next(pos Position) (gowid.IWidget, Position)
	Previous(pos Position) (gowid.IWidget, Position)
}

// IBoundedWalker is implemented by a Walker that knows the length of its
// underlying sequence.
type IBoundedWalker interface {
	Walker
	Length() int
}

// IHomeWalker lets a walker provide the position of its first element, to
// support jumping to the top of a list in one step.
type IHomeWalker interface {
	First() Position // nil if empty
}

// IEndWalker is the symmetric capability for jumping to the last element.
type IEndWalker interface {
	Last() Position // nil if empty
}

// IModifiedNotifier is implemented by a Walker that can tell the list box
// when its sequence or focus has changed out from under it. The list box
// connects to this signal and discards any cached canvas in response - see
// the "modified" signal in the external signal bus this package consumes.
type IModifiedNotifier interface {
	OnModified(cb gowid.IWidgetChangedCallback)
	RemoveOnModified(cb gowid.IIdentity)
}

// ModifiedCB identifies the "modified" callback, in the style of gowid's
// other ...CB marker types (FocusCB, ClickCB, etc).
type ModifiedCB struct{}

//======================================================================

// Pos is the Position implementation used by both PollingWalker and
// ObservableWalker - a plain index into a random-access sequence.
type Pos int

func (p Pos) Equal(other Position) bool {
	o, ok := other.(Pos)
	if !ok {
		panic(errors.Errorf("cannot compare list.Pos to %T", other))
	}
	return o == p
}

func (p Pos) String() string {
	return fmt.Sprintf("%d", int(p))
}

//======================================================================

// IRandomAccess is satisfied by any sequence that can report its length and
// produce the widget at a given index. PollingWalker and ObservableWalker
// are both built against this capability, the same way urwid's
// PollingListWalker only required its body to support len() and
// __getitem__.
type IRandomAccess interface {
	Length() int
	At(i int) gowid.IWidget
}

type widgetSlice []gowid.IWidget

func (s widgetSlice) Length() int            { return len(s) }
func (s widgetSlice) At(i int) gowid.IWidget { return s[i] }

// reflectSequence adapts an arbitrary slice or array (or pointer to one) via
// reflection, for callers that hand PollingWalker something that isn't
// already an IRandomAccess or []gowid.IWidget.
type reflectSequence struct {
	v reflect.Value
}

func (s reflectSequence) Length() int {
	return s.v.Len()
}

func (s reflectSequence) At(i int) gowid.IWidget {
	return s.v.Index(i).Interface().(gowid.IWidget)
}

// asRandomAccess duck-types body the way urwid's PollingListWalker checks
// hasattr(contents, '__getitem__'): accept anything that already
// implements IRandomAccess, a plain []gowid.IWidget, or any slice/array
// (including through a pointer) whose elements are gowid.IWidget. Anything
// else is BadSequence.
func asRandomAccess(body interface{}) (IRandomAccess, error) {
	switch b := body.(type) {
	case IRandomAccess:
		return b, nil
	case []gowid.IWidget:
		return widgetSlice(b), nil
	}
	rv := reflect.ValueOf(body)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.WithStack(BadSequence{Body: body})
	}
	if rv.Len() > 0 {
		if _, ok := rv.Index(0).Interface().(gowid.IWidget); !ok {
			return nil, errors.WithStack(BadSequence{Body: body})
		}
	}
	return reflectSequence{v: rv}, nil
}

//======================================================================

// PollingWalker adapts a random-access sequence that has no way of telling
// us when it changes - e.g. a plain slice that application code might
// append to or truncate between renders. Because it cannot emit "modified",
// a list box bound to a PollingWalker must not cache rendered canvases; see
// Widget.cache in list.go, which is only populated behind an
// IModifiedNotifier check.
type PollingWalker struct {
	body  IRandomAccess
	focus int
}

var _ Walker = (*PollingWalker)(nil)
var _ IBoundedWalker = (*PollingWalker)(nil)
var _ IHomeWalker = (*PollingWalker)(nil)
var _ IEndWalker = (*PollingWalker)(nil)

// NewPollingWalker builds a PollingWalker over body, which must be an
// IRandomAccess, a []gowid.IWidget, or any other indexable sequence of
// gowid.IWidget (including via a pointer). Returns BadSequence otherwise.
func NewPollingWalker(body interface{}) (*PollingWalker, error) {
	ra, err := asRandomAccess(body)
	if err != nil {
		return nil, err
	}
	return &PollingWalker{body: ra}, nil
}

func (w *PollingWalker) clampFocus() {
	if n := w.body.Length(); w.focus >= n {
		w.focus = n - 1
	}
	if w.focus < 0 {
		w.focus = 0
	}
}

func (w *PollingWalker) Length() int {
	return w.body.Length()
}

func (w *PollingWalker) GetFocus() (gowid.IWidget, Position) {
	if w.body.Length() == 0 {
		return nil, nil
	}
	w.clampFocus()
	return w.body.At(w.focus), Pos(w.focus)
}

func (w *PollingWalker) SetFocus(pos Position, app gowid.IApp) {
	w.focus = int(pos.(Pos))
}

func (w *PollingWalker) Next(from Position) (gowid.IWidget, Position) {
	pos := int(from.(Pos)) + 1
	if pos >= w.body.Length() {
		return nil, nil
	}
	return w.body.At(pos), Pos(pos)
}

func (w *PollingWalker) Previous(from Position) (gowid.IWidget, Position) {
	pos := int(from.(Pos)) - 1
	if pos < 0 {
		return nil, nil
	}
	return w.body.At(pos), Pos(pos)
}

func (w *PollingWalker) First() Position {
	if w.body.Length() == 0 {
		return nil
	}
	return Pos(0)
}

func (w *PollingWalker) Last() Position {
	if w.body.Length() == 0 {
		return nil
	}
	return Pos(w.body.Length() - 1)
}

//======================================================================

// ObservableWalker wraps a mutable, application-owned slice of widgets.
// Every mutating method fires the "modified" signal after clamping focus
// into range, the same way urwid's SimpleListWalker wraps a MonitoredList:
// the clamp always happens before the signal, so observers never see an
// out-of-range focus.
type ObservableWalker struct {
	Widgets []gowid.IWidget
	focus   int
	gowid.Callbacks
}

var _ Walker = (*ObservableWalker)(nil)
var _ IBoundedWalker = (*ObservableWalker)(nil)
var _ IHomeWalker = (*ObservableWalker)(nil)
var _ IEndWalker = (*ObservableWalker)(nil)
var _ IModifiedNotifier = (*ObservableWalker)(nil)

// NewObservableWalker takes ownership of widgets - mutate it only through
// the walker's own methods (Insert, Remove, Set, Append) so that "modified"
// fires correctly.
func NewObservableWalker(widgets []gowid.IWidget) *ObservableWalker {
	return &ObservableWalker{
		Widgets: widgets,
		focus:   0,
	}
}

func (w *ObservableWalker) OnModified(cb gowid.IWidgetChangedCallback) {
	gowid.AddWidgetCallback(&w.Callbacks, ModifiedCB{}, cb)
}

func (w *ObservableWalker) RemoveOnModified(cb gowid.IIdentity) {
	gowid.RemoveWidgetCallback(&w.Callbacks, ModifiedCB{}, cb)
}

func (w *ObservableWalker) modified(app gowid.IApp) {
	if w.focus >= len(w.Widgets) {
		w.focus = gwutil.Max(0, len(w.Widgets)-1)
	}
	if app != nil {
		gowid.RunWidgetCallbacks(&w.Callbacks, ModifiedCB{}, app)
	}
}

func (w *ObservableWalker) Length() int {
	return len(w.Widgets)
}

func (w *ObservableWalker) GetFocus() (gowid.IWidget, Position) {
	if len(w.Widgets) == 0 {
		return nil, nil
	}
	if w.focus >= len(w.Widgets) {
		w.focus = len(w.Widgets) - 1
	}
	return w.Widgets[w.focus], Pos(w.focus)
}

func (w *ObservableWalker) SetFocus(pos Position, app gowid.IApp) {
	w.focus = int(pos.(Pos))
	w.modified(app)
}

func (w *ObservableWalker) Next(from Position) (gowid.IWidget, Position) {
	pos := int(from.(Pos)) + 1
	if pos >= len(w.Widgets) {
		return nil, nil
	}
	return w.Widgets[pos], Pos(pos)
}

func (w *ObservableWalker) Previous(from Position) (gowid.IWidget, Position) {
	pos := int(from.(Pos)) - 1
	if pos < 0 {
		return nil, nil
	}
	return w.Widgets[pos], Pos(pos)
}

func (w *ObservableWalker) First() Position {
	if len(w.Widgets) == 0 {
		return nil
	}
	return Pos(0)
}

func (w *ObservableWalker) Last() Position {
	if len(w.Widgets) == 0 {
		return nil
	}
	return Pos(len(w.Widgets) - 1)
}

// Insert adds widget at index i, shifting later widgets down, and fires
// "modified".
func (w *ObservableWalker) Insert(i int, widget gowid.IWidget, app gowid.IApp) {
	w.Widgets = append(w.Widgets, nil)
	copy(w.Widgets[i+1:], w.Widgets[i:])
	w.Widgets[i] = widget
	w.modified(app)
}

// Append adds widget to the end of the sequence and fires "modified".
func (w *ObservableWalker) Append(widget gowid.IWidget, app gowid.IApp) {
	w.Insert(len(w.Widgets), widget, app)
}

// Remove deletes the widget at index i and fires "modified".
func (w *ObservableWalker) Remove(i int, app gowid.IApp) {
	w.Widgets = append(w.Widgets[:i], w.Widgets[i+1:]...)
	w.modified(app)
}

// Set replaces the widget at index i and fires "modified".
func (w *ObservableWalker) Set(i int, widget gowid.IWidget, app gowid.IApp) {
	w.Widgets[i] = widget
	w.modified(app)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
