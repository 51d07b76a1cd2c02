// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package tiled

import "errors"

// Sentinel errors returned by TiledView construction and tile access.
// Callers match them with errors.Is; wrappers added at call sites preserve
// the sentinel via %w.
var (
	// ErrInvalidTileSize is returned when the requested tile size is not
	// strictly positive.
	ErrInvalidTileSize = errors.New("tiled: invalid tile size")

	// ErrBadShape is returned when the matrix dimension is not strictly
	// positive or the buffer is shorter than n*n elements.
	ErrBadShape = errors.New("tiled: invalid matrix shape")

	// ErrTileIndexOutOfRange is returned by Tile when a coordinate lies
	// outside [0, Tiles()). Correct driver code never triggers it.
	ErrTileIndexOutOfRange = errors.New("tiled: tile index out of range")
)
