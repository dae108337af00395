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
	"testing"

	"github.com/ajroetker/go-halve/hwy"
)

// rowKernels returns every kernel this build can run on this CPU.
func rowKernels() []kernel {
	ks := []kernel{scalarKernel, wordKernel}
	if nativeKernel != nil {
		ks = append(ks, *nativeKernel)
	}
	return ks
}

func TestMinVectorWidth(t *testing.T) {
	if MinVectorWidth != 12 {
		t.Errorf("MinVectorWidth: got %d, want 12", MinVectorWidth)
	}
	if MinVectorWidth*bytesPerPixel < chunkReadBytes {
		t.Errorf("MinVectorWidth row of %d bytes cannot hold a %d-byte chunk read", MinVectorWidth*bytesPerPixel, chunkReadBytes)
	}
	if (MinVectorWidth-1)*bytesPerPixel >= chunkReadBytes {
		t.Errorf("MinVectorWidth is not minimal")
	}
}

func TestDefaultKernel(t *testing.T) {
	level := hwy.CurrentLevel()
	got := defaultKernel().name
	switch {
	case level == hwy.DispatchScalar:
		if got != "scalar" {
			t.Errorf("defaultKernel at level %s: got %q, want scalar", level, got)
		}
	case nativeKernel != nil && (level == hwy.DispatchAVX2 || level == hwy.DispatchAVX512):
		if got != nativeKernel.name {
			t.Errorf("defaultKernel at level %s: got %q, want %q", level, got, nativeKernel.name)
		}
	default:
		if got == "scalar" {
			t.Errorf("defaultKernel at level %s picked the scalar kernel", level)
		}
	}
}

func TestAvgPair(t *testing.T) {
	src := []uint8{10, 20, 30, 21, 40, 61, 99, 98}
	got := avgPair(src)
	want := []uint8{16, 30, 46}
	for c := range want {
		if b := uint8(got >> (8 * c)); b != want[c] {
			t.Errorf("avgPair channel %d: got %d, want %d", c, b, want[c])
		}
	}
}

// TestRowSourceBound checks that a row whose source slice ends at the row's
// end (the image's last row) is finished without reading past it.
func TestRowSourceBound(t *testing.T) {
	for _, k := range rowKernels() {
		for width := 1; width <= 80; width++ {
			src := randomPixels(width, 1, 20)
			n := width / 2 * 3

			want := make([]uint8, n)
			halveRowScalar(want, src, n)

			got := make([]uint8, n)
			k.row(got, src, n)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s width %d: byte %d: got %d, want %d", k.name, width, i, got[i], want[i])
				}
			}
		}
	}
}

// TestRowReadsAhead checks the same rows when the source slice runs on into
// a following row, as it does for every row but the last.
func TestRowReadsAhead(t *testing.T) {
	for _, k := range rowKernels() {
		for width := 1; width <= 80; width++ {
			src := randomPixels(width, 2, 21)
			n := width / 2 * 3

			want := make([]uint8, n)
			halveRowScalar(want, src, n)

			got := make([]uint8, n+1)
			got[n] = guardByte
			k.row(got, src, n)
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s width %d: byte %d: got %d, want %d", k.name, width, i, got[i], want[i])
				}
			}
			if got[n] != guardByte {
				t.Fatalf("%s width %d: wrote past the row", k.name, width)
			}
		}
	}
}

// BenchmarkRowKernels halves a 1080p frame as a single band with each
// kernel, so kernels can be compared without scheduling noise. The default
// kernel should never be slower than scalar.
func BenchmarkRowKernels(b *testing.B) {
	const width, height = 1920, 1080
	src := randomPixels(width, height, 1)
	dst := make([]uint8, width/2*height*3)
	g := geometry{width: width, height: height, srcStride: width, dstStride: width / 2}
	all := Band{Start: 0, Rows: height}

	for _, k := range rowKernels() {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				k.band(dst, src, g, all)
			}
		})
	}
}
