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

// Package fact implements tiled, dependency-parallel Cholesky and unpivoted
// LU factorizations of dense square matrices.
//
// Each driver walks the tile grid with a sequential outer loop and spawns
// every tile-level operation onto a sched.Runtime together with the exact
// set of tiles the operation touches and the access mode of each. The
// runtime infers execution order from those declarations, so independent
// tile operations run concurrently without any hand-written barriers. The
// fork-join variants (CholeskyForkJoin, LUForkJoin) are structural twins
// that replace dependency inference with per-stage parallel loops and
// joins; they produce bit-for-bit identical factors and exist as a
// synchronization-granularity baseline.
//
//	data := ... // row-major n×n, symmetric positive definite
//	f, err := fact.Cholesky(data, n, 64)
//	if err != nil {
//	    // construction failure: bad tile size or short buffer
//	}
//	if f.Err != nil {
//	    // numeric failure: a diagonal tile was not positive definite
//	}
package fact

import (
	"github.com/ajroetker/go-tilefact/tiled"
)

// Uplo tags which triangle of the factored buffer is populated.
type Uplo int

const (
	// Upper marks an upper-triangular factor (Cholesky: A = Uᵀ·U).
	Upper Uplo = iota

	// Lower marks a unit-lower factor stored below the diagonal
	// (LU: A = L·U, with U sharing the buffer's upper triangle).
	Lower
)

// String returns "upper" or "lower".
func (u Uplo) String() string {
	if u == Upper {
		return "upper"
	}
	return "lower"
}

// Factorization is the result of a driver run. The factors are views over
// the caller's buffer, which the driver has overwritten in place.
type Factorization[T tiled.Floats] struct {
	// Data is the caller's buffer, now holding the factors.
	Data []T

	// View is the tile partition the driver worked with.
	View *tiled.TiledView[T]

	// Uplo tags which triangle carries the primary factor.
	Uplo Uplo

	// Err is nil on success. A diagonal-tile kernel failure (not positive
	// definite, singular pivot) lands here after the final barrier rather
	// than aborting the run; tiles downstream of the failed factor hold
	// garbage-but-finite-or-NaN values in that case.
	Err error

	// Tasks is the number of tile operations the driver submitted.
	Tasks int64
}

// Ok reports whether the factorization completed without numeric failure.
func (f *Factorization[T]) Ok() bool { return f.Err == nil }
