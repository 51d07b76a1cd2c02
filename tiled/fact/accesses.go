// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import "github.com/ajroetker/go-tilefact/tiled/sched"

// Access-list builders. Each is a pure function from tile coordinates to the
// exact (region, mode) list of the corresponding tile operation. The whole
// scheduling discipline rests on these lists being exhaustive: a tile
// touched by a kernel but missing here is a silent race.

// choleskyDiag: factor tile (i,i) in place.
func choleskyDiag(i int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(i, i), Mode: sched.ReadWrite},
	}
}

// choleskyRowUpdate: solve Uᵢᵢᵀ·X = Aᵢⱼ in place on (i,j).
func choleskyRowUpdate(i, j int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(i, i), Mode: sched.Read},
		{Region: sched.TileRegion(i, j), Mode: sched.ReadWrite},
	}
}

// choleskyTrailing: Aⱼₖ ← Aⱼₖ − Aᵢⱼᵀ·Aᵢₖ.
func choleskyTrailing(i, j, k int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(j, k), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(i, j), Mode: sched.Read},
		{Region: sched.TileRegion(i, k), Mode: sched.Read},
	}
}

// luDiag: factor tile (i,i) in place.
func luDiag(i int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(i, i), Mode: sched.ReadWrite},
	}
}

// luPanel: the joint pair solve for step i, index j: Lᵢᵢ·X = Aᵢⱼ on the row
// tile and X·Uᵢᵢ = Aⱼᵢ on the column tile, submitted as one unit.
func luPanel(i, j int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(i, i), Mode: sched.Read},
		{Region: sched.TileRegion(i, j), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(j, i), Mode: sched.ReadWrite},
	}
}

// luTrailing: Aⱼₖ ← Aⱼₖ − Aⱼᵢ·Aᵢₖ.
func luTrailing(i, j, k int) []sched.Access {
	return []sched.Access{
		{Region: sched.TileRegion(j, k), Mode: sched.ReadWrite},
		{Region: sched.TileRegion(j, i), Mode: sched.Read},
		{Region: sched.TileRegion(i, k), Mode: sched.Read},
	}
}
