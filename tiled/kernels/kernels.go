// Copyright 2025 go-tilefact Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kernels provides the sequential single-tile numeric primitives the
// factorization drivers are built from: in-place Cholesky and unpivoted LU
// factorization of one square tile, the triangular solves that propagate a
// factored diagonal tile across its row and column, and the negated-
// accumulate rank updates that apply the Schur complement to trailing tiles.
//
// All kernels operate in place on tiled.Tile windows and never allocate.
// None of them synchronize; callers order concurrent kernel invocations
// through declared accesses (see tiled/sched).
package kernels

import "errors"

// Sentinel errors reported by the diagonal factorization kernels.
var (
	// ErrNotPositiveDefinite is returned by FactorUpper when a pivot is
	// not strictly positive, i.e. the tile (and hence the matrix) is not
	// positive definite at that leading index.
	ErrNotPositiveDefinite = errors.New("kernels: tile not positive definite")

	// ErrSingularPivot is returned by FactorLU when an exact zero pivot
	// is hit. Unpivoted LU accepts this as a known restriction rather
	// than recovering via row exchanges.
	ErrSingularPivot = errors.New("kernels: zero pivot in unpivoted lu")
)
