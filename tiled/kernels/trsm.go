// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "github.com/ajroetker/go-tilefact/tiled"

// SolveUpperTrans solves Uᵀ·X = B in place on b, where u holds an
// upper-triangular factor (as produced by FactorUpper) in its upper
// triangle. Uᵀ is lower triangular, so this is forward substitution over
// the rows of b.
//
// u is read-only; b is overwritten with X. A zero diagonal in u (from an
// upstream factorization failure) yields Inf/NaN values, never a panic.
func SolveUpperTrans[T tiled.Floats](u, b tiled.Tile[T]) {
	for r := 0; r < b.Rows; r++ {
		for p := 0; p < r; p++ {
			// (Uᵀ)[r,p] = U[p,r]
			upr := u.At(p, r)
			if upr == 0 {
				continue
			}
			for c := 0; c < b.Cols; c++ {
				b.Set(r, c, b.At(r, c)-upr*b.At(p, c))
			}
		}
		inv := 1 / u.At(r, r)
		for c := 0; c < b.Cols; c++ {
			b.Set(r, c, b.At(r, c)*inv)
		}
	}
}

// SolveUnitLower solves L·X = B in place on b, where l holds a unit-lower
// factor (as produced by FactorLU) in its strict lower triangle. The unit
// diagonal is implicit, so no divisions occur.
func SolveUnitLower[T tiled.Floats](l, b tiled.Tile[T]) {
	for r := 0; r < b.Rows; r++ {
		for p := 0; p < r; p++ {
			lrp := l.At(r, p)
			if lrp == 0 {
				continue
			}
			for c := 0; c < b.Cols; c++ {
				b.Set(r, c, b.At(r, c)-lrp*b.At(p, c))
			}
		}
	}
}

// SolveUpperRight solves X·U = B in place on b, where u holds a non-unit
// upper-triangular factor (as produced by FactorLU) in its upper triangle.
// Columns of X resolve left to right.
func SolveUpperRight[T tiled.Floats](b, u tiled.Tile[T]) {
	for c := 0; c < b.Cols; c++ {
		inv := 1 / u.At(c, c)
		for r := 0; r < b.Rows; r++ {
			sum := b.At(r, c)
			for p := 0; p < c; p++ {
				sum -= b.At(r, p) * u.At(p, c)
			}
			b.Set(r, c, sum*inv)
		}
	}
}
