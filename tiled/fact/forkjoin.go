// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-tilefact/tiled"
	"github.com/ajroetker/go-tilefact/tiled/kernels"
)

// stage runs one fork-join phase: an unstructured batch of concurrent units
// with an implicit barrier at join. With parallelism 0 the units run inline.
type stage struct {
	g      *errgroup.Group
	inline bool
}

func newStage(parallelism int) *stage {
	s := &stage{}
	if parallelism == 0 {
		s.inline = true
		return s
	}
	s.g = new(errgroup.Group)
	if parallelism > 0 {
		s.g.SetLimit(parallelism)
	}
	return s
}

func (s *stage) do(fn func()) {
	if s.inline {
		fn()
		return
	}
	s.g.Go(func() error {
		fn()
		return nil
	})
}

func (s *stage) join() {
	if s.inline {
		return
	}
	// The units never error; Wait is purely the barrier.
	_ = s.g.Wait()
}

// CholeskyForkJoin is the fork-join reference twin of Cholesky: the same
// tile operations in the same per-tile order, but each row-update stage and
// each trailing-update batch runs as a parallel loop followed by a full
// barrier instead of fine-grained dependency inference. It produces
// bit-for-bit identical factors to Cholesky and exists to quantify the
// benefit of per-tile dependency scheduling over per-stage barriers.
func CholeskyForkJoin[T tiled.Floats](data []T, n, tileSize int, opts ...Option) (*Factorization[T], error) {
	cfg := newConfig(opts)
	v, err := tiled.NewTiledView(data, n, tileSize)
	if err != nil {
		return nil, err
	}

	nt := v.Tiles()
	var tasks int64
	var ferr error

	for i := 0; i < nt; i++ {
		dii, err := v.Tile(i, i)
		if err != nil {
			return nil, err
		}
		if kerr := kernels.FactorUpper(dii); kerr != nil && ferr == nil {
			ferr = fmt.Errorf("fact: cholesky diagonal tile (%d,%d): %w", i, i, kerr)
		}
		tasks++

		row := newStage(cfg.parallelism)
		for j := i + 1; j < nt; j++ {
			tij, err := v.Tile(i, j)
			if err != nil {
				return nil, err
			}
			row.do(func() { kernels.SolveUpperTrans(dii, tij) })
			tasks++
		}
		row.join()

		trailing := newStage(cfg.parallelism)
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
				trailing.do(func() { kernels.RankUpdateTrans(tjk, tij, tik, cfg.kernel) })
				tasks++
			}
		}
		trailing.join()
	}

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

// LUForkJoin is the fork-join reference twin of LU, with the same staging
// scheme as CholeskyForkJoin: joint pair solves as one parallel loop per
// step, trailing updates as a second batch, a barrier after each.
func LUForkJoin[T tiled.Floats](data []T, n, tileSize int, opts ...Option) (*Factorization[T], error) {
	cfg := newConfig(opts)
	v, err := tiled.NewTiledView(data, n, tileSize)
	if err != nil {
		return nil, err
	}

	nt := v.Tiles()
	var tasks int64
	var ferr error

	for i := 0; i < nt; i++ {
		dii, err := v.Tile(i, i)
		if err != nil {
			return nil, err
		}
		if kerr := kernels.FactorLU(dii); kerr != nil && ferr == nil {
			ferr = fmt.Errorf("fact: lu diagonal tile (%d,%d): %w", i, i, kerr)
		}
		tasks++

		panel := newStage(cfg.parallelism)
		for j := i + 1; j < nt; j++ {
			tij, err := v.Tile(i, j)
			if err != nil {
				return nil, err
			}
			tji, err := v.Tile(j, i)
			if err != nil {
				return nil, err
			}
			panel.do(func() {
				kernels.SolveUnitLower(dii, tij)
				kernels.SolveUpperRight(tji, dii)
			})
			tasks++
		}
		panel.join()

		trailing := newStage(cfg.parallelism)
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
				trailing.do(func() { kernels.RankUpdate(tjk, tji, tik, cfg.kernel) })
				tasks++
			}
		}
		trailing.join()
	}

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
