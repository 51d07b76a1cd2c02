// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "golang.org/x/sys/cpu"

// Config selects the inner-kernel strategy for the rank updates. A zero
// Config falls back to the CPU-detected defaults, so callers only override
// it for tuning or for deterministic tests.
type Config struct {
	// BlockSize strip-mines the inner (k) dimension of the rank updates.
	// 0 selects the detected default.
	BlockSize int
}

func (c Config) blockSize() int {
	if c.BlockSize > 0 {
		return c.BlockSize
	}
	return defaultBlockSize
}

// defaultBlockSize is picked once at startup from the CPU's vector width:
// wider vectors consume rows of the right-hand operand faster, so larger
// strips still fit the L1 working set.
var defaultBlockSize = detectBlockSize()

// DefaultConfig returns the CPU-detected kernel configuration.
func DefaultConfig() Config {
	return Config{BlockSize: defaultBlockSize}
}

func detectBlockSize() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 256
	case cpu.X86.HasAVX2:
		return 128
	case cpu.ARM64.HasASIMD:
		return 128
	default:
		return 64
	}
}
