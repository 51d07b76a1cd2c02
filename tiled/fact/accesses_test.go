// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tilefact/tiled/sched"
)

// The access lists are the load-bearing part of the whole design: every tile
// a kernel touches must appear, with the right mode. These tests pin the
// exact lists per operation.

func TestCholeskyAccessLists(t *testing.T) {
	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(2, 2), Mode: sched.ReadWrite},
	}, choleskyDiag(2)); diff != "" {
		t.Errorf("diag accesses (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(1, 1), Mode: sched.Read},
		{Region: sched.TileRegion(1, 3), Mode: sched.ReadWrite},
	}, choleskyRowUpdate(1, 3)); diff != "" {
		t.Errorf("row-update accesses (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(2, 3), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(1, 2), Mode: sched.Read},
		{Region: sched.TileRegion(1, 3), Mode: sched.Read},
	}, choleskyTrailing(1, 2, 3)); diff != "" {
		t.Errorf("trailing accesses (-want +got):\n%s", diff)
	}
}

func TestLUAccessLists(t *testing.T) {
	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(0, 0), Mode: sched.ReadWrite},
	}, luDiag(0)); diff != "" {
		t.Errorf("diag accesses (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(1, 1), Mode: sched.Read},
		{Region: sched.TileRegion(1, 2), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(2, 1), Mode: sched.ReadWrite},
	}, luPanel(1, 2)); diff != "" {
		t.Errorf("panel accesses (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]sched.Access{
		{Region: sched.TileRegion(2, 3), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(2, 1), Mode: sched.Read},
		{Region: sched.TileRegion(1, 3), Mode: sched.Read},
	}, luTrailing(1, 2, 3)); diff != "" {
		t.Errorf("trailing accesses (-want +got):\n%s", diff)
	}
}

// TestTrailingDependsOnRowUpdates audits the declared regions against the
// tiles the math actually needs: the Cholesky trailing update for (i,j,k)
// must conflict with both row updates it consumes and with the diagonal
// step of its own tile column.
func TestTrailingDependsOnRowUpdates(t *testing.T) {
	trailing := choleskyTrailing(0, 1, 2)

	overlapsRW := func(list []sched.Access, i, j int) bool {
		target := sched.TileRegion(i, j)
		for _, a := range list {
			if a.Region.Overlaps(target) {
				return true
			}
		}
		return false
	}

	require.True(t, overlapsRW(trailing, 1, 2), "must touch the updated tile")
	require.True(t, overlapsRW(trailing, 0, 1), "must read row update (0,1)")
	require.True(t, overlapsRW(trailing, 0, 2), "must read row update (0,2)")
	require.False(t, overlapsRW(trailing, 0, 0), "must not touch the diagonal tile")
}

func TestUploString(t *testing.T) {
	require.Equal(t, "upper", Upper.String())
	require.Equal(t, "lower", Lower.String())
}
