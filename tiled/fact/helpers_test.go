// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func assertIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want %v", err, target)
	}
}

// makeSPD returns a random symmetric positive definite n×n matrix
// (MᵀM + n·I), row-major.
func makeSPD(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.Float64()
	}
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p < n; p++ {
				sum += m[p*n+i] * m[p*n+j]
			}
			a[i*n+j] = sum
		}
		a[i*n+i] += float64(n)
	}
	return a
}

// makeDominant returns a random diagonally dominant n×n matrix, safe for
// unpivoted LU.
func makeDominant(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = rng.Float64() - 0.5
		}
		a[i*n+i] += float64(n)
	}
	return a
}

// reconstructCholesky computes UᵀU from the upper triangle of the factored
// buffer.
func reconstructCholesky(data []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p <= min(i, j); p++ {
				sum += data[p*n+i] * data[p*n+j]
			}
			out[i*n+j] = sum
		}
	}
	return out
}

// reconstructLU computes L·U from the factored buffer, with L unit-lower
// below the diagonal and U on and above it.
func reconstructLU(data []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p <= min(i, j); p++ {
				l := data[i*n+p]
				if p == i {
					l = 1
				}
				sum += l * data[p*n+j]
			}
			out[i*n+j] = sum
		}
	}
	return out
}

func maxAbs(a []float64) float64 {
	var m float64
	for _, v := range a {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func maxAbsDiff(a, b []float64) float64 {
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}

// choleskyTaskCount is the closed form n + n(n−1)/2 + n(n−1)(n+1)/6 for an
// n×n tile grid.
func choleskyTaskCount(n int64) int64 {
	return n + n*(n-1)/2 + n*(n-1)*(n+1)/6
}

// luTaskCount is n + n(n−1)/2 panels + Σ (n−1−i)² updates.
func luTaskCount(n int64) int64 {
	return n + n*(n-1)/2 + (n-1)*n*(2*n-1)/6
}
