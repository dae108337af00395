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

package halve

import (
	"encoding/binary"

	"github.com/ajroetker/go-halve/hwy"
)

const (
	bytesPerPixel = 3

	// chunkDstBytes is the output produced per 256-bit chunk: 5 pixels.
	chunkDstBytes = 15

	// chunkReadBytes is how far past its start one chunk reads: a 32-byte
	// window loaded one pixel in.
	chunkReadBytes = 32 + bytesPerPixel

	// wordReadBytes is how far past its start one word-sized pixel pair reads.
	wordReadBytes = 8
)

// MinVectorWidth is the narrowest source width, in pixels, whose rows can
// hold one full 256-bit chunk. Narrower images are still halved correctly,
// entirely by the word and scalar stages.
const MinVectorWidth = (chunkReadBytes + bytesPerPixel - 1) / bytesPerPixel

// kernel computes one output row. dst and src start at the row; src runs to
// the end of the readable source, which may extend into following rows.
// n is the number of output bytes in the row.
type kernel struct {
	name string
	row  func(dst, src []uint8, n int)
}

var (
	wordKernel   = kernel{name: "swar", row: halveRowWord}
	scalarKernel = kernel{name: "scalar", row: halveRowScalar}

	// nativeKernel is set by the architecture files when both the build and
	// the CPU support a SIMD kernel.
	nativeKernel *kernel
)

// defaultKernel picks the native kernel on AVX2 hosts, the word kernel on
// other SIMD hosts, and the scalar kernel when SIMD is disabled or absent.
func defaultKernel() kernel {
	switch level := hwy.CurrentLevel(); {
	case level == hwy.DispatchScalar:
		return scalarKernel
	case nativeKernel != nil && (level == hwy.DispatchAVX2 || level == hwy.DispatchAVX512):
		return *nativeKernel
	default:
		return wordKernel
	}
}

// avgPair returns the averaged channels of the pixel pair at src[0:6] in the
// low three bytes of the result. It reads src[0:8].
func avgPair(src []uint8) uint64 {
	w := binary.LittleEndian.Uint64(src)
	return hwy.AvgWord(w, w>>(8*bytesPerPixel))
}

// halveRowWord produces one output pixel per 64-bit load. Each 4-byte store
// spills one byte into the next pixel, which that pixel then overwrites; the
// row's last pixel is stored with StorePartial instead. Pairs whose 8-byte
// read would pass the end of src, which only happens on the image's last
// row, are left to the scalar stage.
func halveRowWord(dst, src []uint8, n int) {
	x := 0
	for ; x+2*bytesPerPixel <= n && 2*x+wordReadBytes <= len(src); x += bytesPerPixel {
		binary.LittleEndian.PutUint32(dst[x:], uint32(avgPair(src[2*x:])))
	}

	if x < n && 2*x+wordReadBytes <= len(src) {
		var v hwy.Uint8x16
		binary.LittleEndian.PutUint64(v[:], avgPair(src[2*x:]))
		x += hwy.StorePartial(v, dst[x:], bytesPerPixel)
	}

	halveRowScalar(dst[x:], src[2*x:], n-x)
}

// halveRowScalar writes n output bytes one channel at a time.
func halveRowScalar(dst, src []uint8, n int) {
	for x := 0; x < n; x += bytesPerPixel {
		s := src[2*x : 2*x+2*bytesPerPixel]
		d := dst[x : x+bytesPerPixel]
		d[0] = hwy.AvgScalar(s[0], s[3])
		d[1] = hwy.AvgScalar(s[1], s[4])
		d[2] = hwy.AvgScalar(s[2], s[5])
	}
}

// band halves rows [b.Start, b.End()).
func (k kernel) band(dst, src []uint8, g geometry, b Band) {
	n := g.outWidth() * bytesPerPixel
	srcPitch := g.srcStride * bytesPerPixel
	dstPitch := g.dstStride * bytesPerPixel
	for y := b.Start; y < b.End(); y++ {
		k.row(dst[y*dstPitch:], src[y*srcPitch:], n)
	}
}
