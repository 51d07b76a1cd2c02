// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package tiled

import "fmt"

// TiledView is a non-owning partition of a dense row-major n×n buffer into a
// grid of square-ish tiles. The final tile in each dimension may be smaller
// than the nominal tile size when the tile size does not divide n.
//
// The view holds a reference to the caller's buffer and must not outlive it.
// It performs no synchronization: concurrent access discipline is the
// responsibility of the caller (see tiled/sched).
type TiledView[T Floats] struct {
	data   []T
	n      int
	stride int

	// bounds holds the tile boundary offsets: bounds[0] = 0, bounds[t] = n.
	// Tile i spans rows [bounds[i], bounds[i+1]), likewise for columns.
	bounds []int
}

// Tile is a rectangular window into a TiledView's buffer. It shares storage
// with the buffer; Data starts at the tile's top-left element and rows are
// Stride elements apart. A Tile never reaches outside its declared rectangle
// through At and Set.
type Tile[T Floats] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// At returns the element at row r, column c of the tile.
func (t Tile[T]) At(r, c int) T {
	return t.Data[r*t.Stride+c]
}

// Set stores v at row r, column c of the tile.
func (t Tile[T]) Set(r, c int, v T) {
	t.Data[r*t.Stride+c] = v
}

// NewTiledView partitions the row-major n×n buffer data into tiles of
// nominal size tileSize. The boundaries walk 0, s, 2s, … and close at n, so
// the trailing tile holds the remainder when s does not divide n.
//
// The buffer is not copied. It returns ErrInvalidTileSize when tileSize <= 0
// and ErrBadShape when n <= 0 or len(data) < n*n.
func NewTiledView[T Floats](data []T, n, tileSize int) (*TiledView[T], error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileSize, tileSize)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadShape, n)
	}
	if len(data) < n*n {
		return nil, fmt.Errorf("%w: need %d elements, have %d", ErrBadShape, n*n, len(data))
	}

	bounds := make([]int, 0, (n+tileSize-1)/tileSize+1)
	for off := 0; off < n; off += tileSize {
		bounds = append(bounds, off)
	}
	bounds = append(bounds, n)

	return &TiledView[T]{
		data:   data[:n*n],
		n:      n,
		stride: n,
		bounds: bounds,
	}, nil
}

// N returns the matrix dimension.
func (v *TiledView[T]) N() int { return v.n }

// Tiles returns the number of tiles per dimension.
func (v *TiledView[T]) Tiles() int { return len(v.bounds) - 1 }

// TileDim returns the row (equivalently column) extent of tile index i.
func (v *TiledView[T]) TileDim(i int) int {
	return v.bounds[i+1] - v.bounds[i]
}

// Boundaries returns a copy of the tile boundary offsets,
// bounds[0] = 0 through bounds[Tiles()] = n.
func (v *TiledView[T]) Boundaries() []int {
	out := make([]int, len(v.bounds))
	copy(out, v.bounds)
	return out
}

// Tile returns the window for tile coordinates (i, j). Distinct coordinates
// yield element-disjoint windows. It returns ErrTileIndexOutOfRange when a
// coordinate lies outside [0, Tiles()).
func (v *TiledView[T]) Tile(i, j int) (Tile[T], error) {
	t := v.Tiles()
	if i < 0 || i >= t || j < 0 || j >= t {
		return Tile[T]{}, fmt.Errorf("%w: (%d,%d) of %dx%d grid", ErrTileIndexOutOfRange, i, j, t, t)
	}
	rows := v.bounds[i+1] - v.bounds[i]
	cols := v.bounds[j+1] - v.bounds[j]
	off := v.bounds[i]*v.stride + v.bounds[j]
	return Tile[T]{
		Data:   v.data[off : off+(rows-1)*v.stride+cols],
		Rows:   rows,
		Cols:   cols,
		Stride: v.stride,
	}, nil
}
