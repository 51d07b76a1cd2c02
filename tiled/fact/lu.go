// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"fmt"

	"github.com/ajroetker/go-tilefact/tiled"
	"github.com/ajroetker/go-tilefact/tiled/kernels"
	"github.com/ajroetker/go-tilefact/tiled/sched"
)

// LU factors the row-major n×n buffer data in place as A = L·U without
// pivoting, partitioned into tiles of nominal size tileSize. After the run
// the strict lower triangle holds the unit-lower factor L and the upper
// triangle (diagonal included) holds U.
//
// Without pivoting, a singular or ill-conditioned leading tile makes the
// factorization fail or lose accuracy; that is a documented restriction of
// this driver, not a recoverable condition. A zero pivot surfaces in
// Factorization.Err after all submitted work has drained. The returned
// error covers construction failures only.
func LU[T tiled.Floats](data []T, n, tileSize int, opts ...Option) (*Factorization[T], error) {
	cfg := newConfig(opts)
	v, err := tiled.NewTiledView(data, n, tileSize)
	if err != nil {
		return nil, err
	}

	rt := sched.NewWithParallelism(cfg.parallelism)
	nt := v.Tiles()
	var tasks int64

	for i := 0; i < nt; i++ {
		dii, err := v.Tile(i, i)
		if err != nil {
			return nil, err
		}
		rt.Spawn(func() error {
			if err := kernels.FactorLU(dii); err != nil {
				return fmt.Errorf("fact: lu diagonal tile (%d,%d): %w", i, i, err)
			}
			return nil
		}, luDiag(i))
		tasks++

		// Joint pair solve: the row tile (i,j) against the unit-lower
		// factor and the column tile (j,i) against the upper factor,
		// in one submitted unit.
		for j := i + 1; j < nt; j++ {
			tij, err := v.Tile(i, j)
			if err != nil {
				return nil, err
			}
			tji, err := v.Tile(j, i)
			if err != nil {
				return nil, err
			}
			rt.Spawn(func() error {
				kernels.SolveUnitLower(dii, tij)
				kernels.SolveUpperRight(tji, dii)
				return nil
			}, luPanel(i, j))
			tasks++
		}

		for j := i + 1; j < nt; j++ {
			tji, err := v.Tile(j, i)
			if err != nil {
				return nil, err
			}
			for k := i + 1; k < nt; k++ {
				tjk, err := v.Tile(j, k)
				if err != nil {
					return nil, err
				}
				tik, err := v.Tile(i, k)
				if err != nil {
					return nil, err
				}
				rt.Spawn(func() error {
					kernels.RankUpdate(tjk, tji, tik, cfg.kernel)
					return nil
				}, luTrailing(i, j, k))
				tasks++
			}
		}
	}

	ferr := rt.Sync()
	if cfg.counter != nil {
		cfg.counter.Add(tasks)
	}
	return &Factorization[T]{
		Data:  data,
		View:  v,
		Uplo:  Lower,
		Err:   ferr,
		Tasks: tasks,
	}, nil
}
