// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import (
	"runtime"

	"github.com/ajroetker/go-tilefact/tiled/kernels"
)

// Option configures a driver run.
type Option func(*config)

type config struct {
	parallelism int
	counter     *Counter
	kernel      kernels.Config
}

func newConfig(opts []Option) config {
	cfg := config{
		parallelism: runtime.GOMAXPROCS(0),
		kernel:      kernels.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithParallelism bounds the number of tile operations executing
// concurrently: -1 = unlimited, 0 = fully sequential, >0 = bounded.
// The default is GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// WithCounter accumulates the number of submitted tile operations into ctr,
// in addition to the per-run Factorization.Tasks field. Useful when one
// counter aggregates several runs.
func WithCounter(ctr *Counter) Option {
	return func(c *config) { c.counter = ctr }
}

// WithKernelConfig overrides the CPU-detected inner-kernel strategy.
func WithKernelConfig(kcfg kernels.Config) Option {
	return func(c *config) { c.kernel = kcfg }
}
