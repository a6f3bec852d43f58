// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"errors"

	"github.com/gdamore/tcell"
	"github.com/magniff/urwid"
)

//======================================================================

// testApp is a minimal gowid.IApp usable in unit tests without a real
// terminal screen - everything a list box actually touches (color mode,
// click targets, mouse state) is implemented; most of what it never touches
// (most copy-mode calls, menus, the real screen) panics if called, so a test that
// accidentally depends on one of those fails loudly instead of silently.
type testApp struct {
	gowid.ClickTargets
	lastMouse gowid.MouseState
}

func newTestApp() *testApp {
	return &testApp{ClickTargets: gowid.MakeClickTargets()}
}

func (d *testApp) CellStyler(name string) (gowid.ICellStyler, bool) { return nil, false }
func (d *testApp) RangeOverPalette(f func(string, gowid.ICellStyler) bool) {}
func (d *testApp) GetColorMode() gowid.ColorMode                    { return gowid.Mode256Colors }
func (d *testApp) Quit()                                            {}
func (d *testApp) Redraw()                                          {}
func (d *testApp) Sync()                                            {}
func (d *testApp) SetColorMode(gowid.ColorMode)                     {}
func (d *testApp) Run(f gowid.IAfterRenderEvent) error {
	f.RunThenRenderEvent(d)
	return nil
}
func (d *testApp) GetMouseState() gowid.MouseState { return gowid.MouseState{MouseLeftClicked: true} }
func (d *testApp) GetLastMouseState() gowid.MouseState { return d.lastMouse }
func (d *testApp) SetSubWidget(gowid.IWidget, gowid.IApp) {}
func (d *testApp) SubWidget() gowid.IWidget               { return nil }
func (d *testApp) GetScreen() tcell.Screen                { panic(errors.New("must not call")) }
func (d *testApp) InCopyMode(...bool) bool                { return false }
func (d *testApp) CopyModeClaimedAt(...int) int           { panic(errors.New("must not call")) }
func (d *testApp) CopyModeClaimedBy(...gowid.IIdentity) gowid.IIdentity {
	panic(errors.New("must not call"))
}
func (d *testApp) RefreshCopyMode()                            {}
func (d *testApp) Clips() []gowid.ICopyResult                  { panic(errors.New("must not call")) }
func (d *testApp) CopyLevel(...int) int                        { panic(errors.New("must not call")) }
func (d *testApp) RegisterMenu(gowid.IMenuCompatible)          { panic(errors.New("must not call")) }
func (d *testApp) UnregisterMenu(gowid.IMenuCompatible) bool   { panic(errors.New("must not call")) }

var _ gowid.IApp = (*testApp)(nil)

//======================================================================

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeKeyEvent(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func clickAt(col, row int) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone)
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
