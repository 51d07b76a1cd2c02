// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package fact

import "sync/atomic"

// Counter counts submitted tile operations. It is passed into a driver via
// WithCounter, keeping task accounting explicit per caller instead of
// process-wide ambient state. Safe for concurrent use.
type Counter struct {
	n atomic.Int64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) {
	c.n.Add(delta)
}

// Count returns the current value.
func (c *Counter) Count() int64 {
	return c.n.Load()
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.n.Store(0)
}
