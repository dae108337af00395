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

package hwy

import "encoding/binary"

// StorePartial writes the first count lanes of v to dst and nothing else.
// It is the tail counterpart of StoreSlice: the count is decomposed into
// progressively narrower 8, 4, 2 and 1 byte stores, the same sequence as
// MOVQ / PEXTRD / PEXTRW / PEXTRB, so no byte past dst[count-1] is touched.
//
// Example, storing the 15 valid bytes of a compacted chunk:
//
//	res := lo.Or(hi)
//	n := hwy.StorePartial(res, out[x:], 15) // 8 + 4 + 2 + 1
//
// count is clamped to [0, 16]. StorePartial returns the number of bytes written.
func StorePartial(v Uint8x16, dst []uint8, count int) int {
	count = max(0, min(count, Uint8x16Lanes))
	if count == Uint8x16Lanes {
		v.StoreSlice(dst)
		return count
	}
	off := 0
	if count&8 != 0 {
		binary.LittleEndian.PutUint64(dst[off:], binary.LittleEndian.Uint64(v[off:]))
		off += 8
	}
	if count&4 != 0 {
		binary.LittleEndian.PutUint32(dst[off:], binary.LittleEndian.Uint32(v[off:]))
		off += 4
	}
	if count&2 != 0 {
		binary.LittleEndian.PutUint16(dst[off:], binary.LittleEndian.Uint16(v[off:]))
		off += 2
	}
	if count&1 != 0 {
		dst[off] = v[off]
		off++
	}
	return off
}
