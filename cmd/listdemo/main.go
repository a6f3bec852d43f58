// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

// listdemo is a small terminal program exercising widgets/list against a
// handful of rows, each highlighted differently depending on whether it
// is the current focus, merely selected, or neither.
package main

import (
	"fmt"
	"os"

	"github.com/magniff/urwid"
	"github.com/magniff/urwid/widgets/fill"
	"github.com/magniff/urwid/widgets/isselected"
	"github.com/magniff/urwid/widgets/list"
	"github.com/magniff/urwid/widgets/selectable"
	"github.com/magniff/urwid/widgets/styled"
	"github.com/magniff/urwid/widgets/text"
)

//======================================================================

// row builds one list entry: plain text normally, the "item" palette style
// when it's the selected-but-not-focused item, and the "itemfocus" style
// with foreground and background swapped when it actually has focus.
func row(label string) gowid.IWidget {
	plain := text.New(label)
	return selectable.New(
		isselected.New(
			plain,
			styled.NewInvertedFocus(plain, gowid.MakePaletteRef("item")),
			styled.NewInvertedFocus(plain, gowid.MakePaletteRef("itemfocus")),
		),
	)
}

//======================================================================

type unhandled struct{}

func (unhandled) UnhandledInput(app gowid.IApp, ev interface{}) bool {
	return gowid.HandleQuitKeys(app, ev)
}

//======================================================================

func main() {
	labels := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}
	widgets := make([]gowid.IWidget, 0, len(labels)+1)
	for _, l := range labels {
		widgets = append(widgets, row(l))
	}
	// a non-selectable filler row at the end, so the viewport has
	// somewhere to scroll to past the last selectable entry.
	widgets = append(widgets, fill.New(' '))

	lb := list.NewFromSlice(widgets)

	palette := gowid.Palette{
		"item":      gowid.MakePaletteEntry(gowid.ColorWhite, gowid.ColorBlack),
		"itemfocus": gowid.MakePaletteEntry(gowid.ColorBlack, gowid.ColorWhite),
	}

	app, err := gowid.NewApp(gowid.AppArgs{
		View:    lb,
		Palette: palette,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app.MainLoop(unhandled{})
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
