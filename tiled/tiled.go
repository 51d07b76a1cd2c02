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

// Package tiled partitions a dense square matrix buffer into a grid of
// rectangular tiles addressable by tile coordinates.
//
// A TiledView never copies data: every Tile is a bounds-checked window into
// the caller's buffer, and mutating a tile mutates the buffer in place. Tiles
// are the unit of parallel work for the factorization drivers in
// tiled/fact; the view itself performs no synchronization.
//
// Basic usage:
//
//	data := make([]float64, 10*10) // row-major
//	v, err := tiled.NewTiledView(data, 10, 4)
//	if err != nil {
//	    // tile size was not positive, or the buffer is too short
//	}
//	t, err := v.Tile(2, 2) // the 2x2 remainder tile
package tiled

// Floats is a constraint for the element types a TiledView can hold.
type Floats interface {
	~float32 | ~float64
}
