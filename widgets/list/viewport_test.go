// Copyright 2019 Graham Clark. All rights reserved.  Use of this source
// code is governed by the MIT license that can be found in the LICENSE
// file.

package list

import (
	"testing"

	"github.com/magniff/urwid"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
)

//======================================================================

func TestNewViewportDefaults(t *testing.T) {
	v := newViewport()
	assert.True(t, v.haveOffset)
	assert.Equal(t, 0, v.offsetRows)
	assert.Equal(t, 0, v.offsetInsetRows(10))
}

func TestSetInsetFractionValidates(t *testing.T) {
	v := newViewport()
	assert.NoError(t, v.setInsetFraction(1, 3))
	assert.Error(t, v.setInsetFraction(3, 3))
	assert.Error(t, v.setInsetFraction(-1, 3))
	assert.Error(t, v.setInsetFraction(1, 0))
}

func TestOffsetInsetRowsFromFraction(t *testing.T) {
	v := newViewport()
	err := v.setInsetFraction(1, 2)
	assert.NoError(t, err)
	// half of a 10-row focus widget hidden above: -5
	assert.Equal(t, -5, v.offsetInsetRows(10))
}

func TestSetOffsetRowsClearsInsetMode(t *testing.T) {
	v := newViewport()
	assert.NoError(t, v.setInsetFraction(1, 2))
	v.setOffsetRows(3)
	assert.True(t, v.haveOffset)
	assert.Equal(t, 3, v.offsetInsetRows(10))
}

func TestPendingRequests(t *testing.T) {
	v := newViewport()
	v.clearPending()
	assert.Equal(t, pendingNone, v.pending.kind)

	v.requestFirstSelectable()
	assert.Equal(t, pendingFirstSelectable, v.pending.kind)

	v.requestAlignValign(gowid.VAlignTop{})
	assert.Equal(t, pendingAlignValign, v.pending.kind)

	v.requestRestore(Pos(2), 3, 1, comingFromAbove)
	want := pendingFocus{
		kind:               pendingRestore,
		restorePos:         Pos(2),
		restoreRows:        3,
		restoreOffsetInset: 1,
		comingFrom:         comingFromAbove,
	}
	// pendingFocus has only unexported fields, which deep skips by default
	deep.CompareUnexportedFields = true
	defer func() { deep.CompareUnexportedFields = false }()
	if diff := deep.Equal(v.pending, want); diff != nil {
		t.Error(diff)
	}
}

//======================================================================
// Local Variables:
// mode: Go
// fill-column: 110
// End:
