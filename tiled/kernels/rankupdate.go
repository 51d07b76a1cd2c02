// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "github.com/ajroetker/go-tilefact/tiled"

// RankUpdateTrans applies the Schur-complement update C ← C − Aᵀ·B in place
// on c. Dimensions: a is k×m, b is k×n, c is m×n. The negated-accumulate
// form is required by the Cholesky trailing update and is not optional.
//
// The inner dimension is strip-mined by cfg.BlockSize so the touched rows of
// b stay cache-resident across the strip.
func RankUpdateTrans[T tiled.Floats](c, a, b tiled.Tile[T], cfg Config) {
	bs := cfg.blockSize()
	for p0 := 0; p0 < a.Rows; p0 += bs {
		p1 := min(p0+bs, a.Rows)
		for r := 0; r < c.Rows; r++ {
			for p := p0; p < p1; p++ {
				// (Aᵀ)[r,p] = A[p,r]
				apr := a.At(p, r)
				if apr == 0 {
					continue
				}
				for j := 0; j < c.Cols; j++ {
					c.Set(r, j, c.At(r, j)-apr*b.At(p, j))
				}
			}
		}
	}
}

// RankUpdate applies C ← C − A·B in place on c. Dimensions: a is m×k, b is
// k×n, c is m×n. This is the LU trailing update.
func RankUpdate[T tiled.Floats](c, a, b tiled.Tile[T], cfg Config) {
	bs := cfg.blockSize()
	for p0 := 0; p0 < a.Cols; p0 += bs {
		p1 := min(p0+bs, a.Cols)
		for r := 0; r < c.Rows; r++ {
			for p := p0; p < p1; p++ {
				arp := a.At(r, p)
				if arp == 0 {
					continue
				}
				for j := 0; j < c.Cols; j++ {
					c.Set(r, j, c.At(r, j)-arp*b.At(p, j))
				}
			}
		}
	}
}
