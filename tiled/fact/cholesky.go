// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"fmt"

	"github.com/ajroetker/go-tilefact/tiled"
	"github.com/ajroetker/go-tilefact/tiled/kernels"
	"github.com/ajroetker/go-tilefact/tiled/sched"
)

// Cholesky factors the symmetric positive definite row-major n×n buffer data
// in place as A = Uᵀ·U, partitioned into tiles of nominal size tileSize.
// Only the upper triangle of data is read and written.
//
// The returned error covers construction failures only (bad tile size, short
// buffer). Numeric failure — a diagonal tile that is not positive definite —
// surfaces in Factorization.Err after all submitted work has drained,
// matching conventional factorization-library behavior.
func Cholesky[T tiled.Floats](data []T, n, tileSize int, opts ...Option) (*Factorization[T], error) {
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
			if err := kernels.FactorUpper(dii); err != nil {
				return fmt.Errorf("fact: cholesky diagonal tile (%d,%d): %w", i, i, err)
			}
			return nil
		}, choleskyDiag(i))
		tasks++

		for j := i + 1; j < nt; j++ {
			tij, err := v.Tile(i, j)
			if err != nil {
				return nil, err
			}
			rt.Spawn(func() error {
				kernels.SolveUpperTrans(dii, tij)
				return nil
			}, choleskyRowUpdate(i, j))
			tasks++
		}

		for j := i + 1; j < nt; j++ {
			tij, err := v.Tile(i, j)
			if err != nil {
				return nil, err
			}
			for k := j; k < nt; k++ {
				tjk, err := v.Tile(j, k)
				if err != nil {
					return nil, err
				}
				tik, err := v.Tile(i, k)
				if err != nil {
					return nil, err
				}
				rt.Spawn(func() error {
					kernels.RankUpdateTrans(tjk, tij, tik, cfg.kernel)
					return nil
				}, choleskyTrailing(i, j, k))
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
		Uplo:  Upper,
		Err:   ferr,
		Tasks: tasks,
	}, nil
}
