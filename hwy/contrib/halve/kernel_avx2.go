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

//go:build amd64 && goexperiment.simd

package halve

import (
	"simd/archsimd"

	"github.com/ajroetker/go-halve/hwy"
)

// compactIdx keeps the bytes at offsets 0, 1, 2 mod 6 of the averaged
// window. Lookups stay within a 128-bit block: the low block yields output
// bytes 0-8 in lanes 0-8, the high block yields bytes 9-14 in lanes 25-30,
// so ORing the two halves lines all 15 up in order.
var compactIdx = [32]int8{
	0, 1, 2, 6, 7, 8, 12, 13, 14, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, 2, 3, 4, 8, 9, 10, -1,
}

var avx2Kernel = kernel{name: "avx2", row: halveRowAVX2}

func init() {
	if archsimd.X86.AVX2() {
		nativeKernel = &avx2Kernel
	}
}

// halveChunkAVX2 computes the 5 output pixels for src[0:30] in the first 15
// lanes of the result. It reads src[0:35].
func halveChunkAVX2(src []uint8, idx archsimd.Int8x32) archsimd.Uint8x16 {
	a := archsimd.LoadUint8x32Slice(src)
	b := archsimd.LoadUint8x32Slice(src[bytesPerPixel:])
	s := a.Average(b).PermuteOrZeroGrouped(idx)
	return s.GetLo().Or(s.GetHi())
}

// halveRowAVX2 runs full 16-byte chunk stores while at least two chunks
// remain, then one chunk stored with StorePartial, then hands what is left
// to the word kernel. Chunks are only taken when their 35-byte read fits in
// src.
func halveRowAVX2(dst, src []uint8, n int) {
	idx := archsimd.LoadInt8x32(&compactIdx)
	x := 0
	for ; x+2*chunkDstBytes <= n && 2*x+chunkReadBytes <= len(src); x += chunkDstBytes {
		// The 16th byte lands on the next chunk's first byte.
		halveChunkAVX2(src[2*x:], idx).StoreSlice(dst[x:])
	}

	if rem := n - x; rem > 0 && 2*x+chunkReadBytes <= len(src) {
		var v hwy.Uint8x16
		halveChunkAVX2(src[2*x:], idx).StoreSlice(v[:])
		x += hwy.StorePartial(v, dst[x:], min(rem, chunkDstBytes))
	}

	halveRowWord(dst[x:], src[2*x:], n-x)
}
