// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"math"

	"github.com/ajroetker/go-tilefact/tiled"
)

// FactorUpper factors the square tile t in place as an upper-triangular
// Cholesky factor U with A = Uᵀ·U. Only the upper triangle of t is read and
// written; the strict lower triangle is left untouched.
//
// It returns ErrNotPositiveDefinite as soon as a pivot is not strictly
// positive, leaving the tile partially factored.
func FactorUpper[T tiled.Floats](t tiled.Tile[T]) error {
	n := t.Rows
	for k := 0; k < n; k++ {
		akk := t.At(k, k)
		if !(akk > 0) {
			return ErrNotPositiveDefinite
		}
		ukk := T(math.Sqrt(float64(akk)))
		t.Set(k, k, ukk)

		inv := 1 / ukk
		for j := k + 1; j < n; j++ {
			t.Set(k, j, t.At(k, j)*inv)
		}

		// Trailing update of the remaining upper triangle.
		for i := k + 1; i < n; i++ {
			uki := t.At(k, i)
			if uki == 0 {
				continue
			}
			for j := i; j < n; j++ {
				t.Set(i, j, t.At(i, j)-uki*t.At(k, j))
			}
		}
	}
	return nil
}

// FactorLU factors the square tile t in place as an unpivoted LU
// decomposition: the strict lower triangle holds the unit-lower factor L
// (implicit unit diagonal) and the upper triangle holds U.
//
// It returns ErrSingularPivot on an exact zero pivot. Without pivoting,
// small pivots produce numerically poor factors; that is accepted, not
// worked around.
func FactorLU[T tiled.Floats](t tiled.Tile[T]) error {
	n := t.Rows
	for k := 0; k < n; k++ {
		pivot := t.At(k, k)
		if pivot == 0 {
			return ErrSingularPivot
		}
		for i := k + 1; i < n; i++ {
			lik := t.At(i, k) / pivot
			t.Set(i, k, lik)
			if lik == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				t.Set(i, j, t.At(i, j)-lik*t.At(k, j))
			}
		}
	}
	return nil
}
