// Copyright 2025 go-highway Authors
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

// Package hwy provides the byte primitives shared by pixel kernels and the
// runtime dispatch that picks between them.
// It follows the Highway C++ library's design philosophy: a kernel is written
// against a few operations with well-defined lane semantics, and the host's
// capabilities decide which implementation runs. AvgWord processes eight byte
// lanes packed in a 64-bit word with the rounding of VPAVGB, StorePartial
// writes a 128-bit vector's leading lanes without touching anything past
// them, and CurrentLevel reports the SIMD instruction set available.
// Basic usage:
//	import "github.com/ajroetker/go-halve/hwy"
//	w := binary.LittleEndian.Uint64(row[i:])
//	avg := hwy.AvgWord(w, w>>24) // pixel i/3 averaged with its right neighbor
//	if hwy.CurrentLevel() == hwy.DispatchScalar {
//		// HWY_NO_SIMD is set: use the one-lane-at-a-time path
//	}
package hwy

// Uint8x16 is a 128-bit vector of 16 uint8 lanes.
type Uint8x16 [16]uint8

// Uint8x16Lanes is the number of lanes in a Uint8x16.
const Uint8x16Lanes = 16

// StoreSlice writes all 16 lanes to dst, which must hold at least 16 bytes.
func (v Uint8x16) StoreSlice(dst []uint8) {
	copy(dst[:Uint8x16Lanes], v[:])
}
