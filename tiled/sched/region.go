// Copyright 2025 The go-tilefact Authors. SPDX-License-Identifier: Apache-2.0

package sched

// Mode is the access a task declares on a region.
type Mode int

const (
	// Read observes current contents. Readers of overlapping regions may
	// run concurrently with each other.
	Read Mode = iota

	// Write replaces contents. A writer excludes all overlapping readers
	// and writers.
	Write

	// ReadWrite both observes and replaces contents, combining the
	// ordering constraints of Read and Write.
	ReadWrite
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Read:
		return "read"
	case Write:
		return "write"
	case ReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

func (m Mode) writes() bool { return m != Read }

// Region is a half-open rectangle of tile coordinates: rows [Row0, Row1),
// columns [Col0, Col1). Overlap is decided at this granularity, not at
// individual elements.
type Region struct {
	Row0, Col0 int
	Row1, Col1 int
}

// TileRegion returns the single-tile region for coordinates (i, j).
func TileRegion(i, j int) Region {
	return Region{Row0: i, Col0: j, Row1: i + 1, Col1: j + 1}
}

// Overlaps reports whether the two rectangles share at least one tile.
func (r Region) Overlaps(o Region) bool {
	return r.Row0 < o.Row1 && o.Row0 < r.Row1 &&
		r.Col0 < o.Col1 && o.Col0 < r.Col1
}

// Access pairs a declared region with its access mode.
type Access struct {
	Region Region
	Mode   Mode
}

// conflicts reports whether two accesses must be ordered: their regions
// overlap and at least one side writes.
func conflicts(a, b Access) bool {
	return a.Region.Overlaps(b.Region) && (a.Mode.writes() || b.Mode.writes())
}

// accessListsConflict reports whether any access pair across the two lists
// conflicts.
func accessListsConflict(a, b []Access) bool {
	for _, x := range a {
		for _, y := range b {
			if conflicts(x, y) {
				return true
			}
		}
	}
	return false
}
