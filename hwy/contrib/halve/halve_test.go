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
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-halve/hwy/contrib/image"
	"github.com/ajroetker/go-halve/hwy/contrib/workerpool"
)

const guardByte = 0xA5

// randomPixels returns width*height packed pixels with exactly that length,
// so any read past the image's last byte panics.
func randomPixels(width, height int, seed uint64) []uint8 {
	r := rand.New(rand.NewPCG(seed, uint64(width)<<32|uint64(height)))
	src := make([]uint8, width*height*3)
	for i := range src {
		src[i] = uint8(r.IntN(256))
	}
	return src
}

// referenceHalve is the formula, one channel at a time.
func referenceHalve(src []uint8, width, height int, dst []uint8, dstStride int) {
	for y := range height {
		for d := range width / 2 {
			for c := range 3 {
				a := int(src[(y*width+2*d)*3+c])
				b := int(src[(y*width+2*d+1)*3+c])
				dst[(y*dstStride+d)*3+c] = uint8((a + b + 1) / 2)
			}
		}
	}
}

// guarded returns a destination of height rows of stride pixels followed by
// extra guard bytes, all set to guardByte.
func guarded(height, stride, extra int) []uint8 {
	dst := make([]uint8, height*stride*3+extra)
	for i := range dst {
		dst[i] = guardByte
	}
	return dst
}

func kernels() map[string]*Halver {
	halvers := make(map[string]*Halver)
	for _, k := range rowKernels() {
		halvers[k.name] = NewHalver(func(h *Halver) { h.kernel = k })
	}
	return halvers
}

func TestConcreteScenario(t *testing.T) {

	src := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	want := []uint8{3, 4, 5, 9, 10, 11}

	for name, h := range kernels() {
		t.Run(name, func(t *testing.T) {
			dst := make([]uint8, 6)
			if err := h.Halve(src, 4, 1, dst, 2); err != nil {
				t.Fatalf("Halve: %v", err)
			}
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("Halve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHalveOptions(t *testing.T) {
	const width, height = 90, 12
	src := randomPixels(width, height, 13)
	want := make([]uint8, width/2*height*3)
	referenceHalve(src, width, height, want, width/2)

	pool := workerpool.New(2)
	defer pool.Close()
	for name, opts := range map[string][]Option{
		"scalar":    {WithScalar()},
		"workers=3": {WithWorkers(3)},
		"pool":      {WithPool(pool)},
	} {
		got := make([]uint8, len(want))
		if err := Halve(src, width, height, got, width/2, opts...); err != nil {
			t.Fatalf("%s: Halve: %v", name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: Halve mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// TestExactFormula checks every output byte against the formula for many
// widths, covering both parities and every tail length.
func TestExactFormula(t *testing.T) {
	widths := []int{1, 2, 3, 4, 5, 9, 10, 11, 12, 13, 19, 20, 21, 22, 29, 30, 31, 32, 33, 40, 41, 63, 64, 65, 100, 101, 127, 640, 641}
	heights := []int{1, 2, 3, 7, 16}

	for name, h := range kernels() {
		for _, width := range widths {
			for _, height := range heights {
				t.Run(fmt.Sprintf("%s/%dx%d", name, width, height), func(t *testing.T) {
					src := randomPixels(width, height, 1)
					outW := width / 2
					want := make([]uint8, outW*height*3)
					referenceHalve(src, width, height, want, outW)

					got := make([]uint8, outW*height*3)
					if err := h.Halve(src, width, height, got, outW); err != nil {
						t.Fatalf("Halve: %v", err)
					}
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("Halve mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestExtremeValues(t *testing.T) {
	const width, height = 64, 3
	for _, pair := range [][2]uint8{{0, 0}, {0, 1}, {254, 255}, {255, 255}, {0, 255}} {
		src := make([]uint8, width*height*3)
		for i := range src {
			if (i/3)%2 == 0 {
				src[i] = pair[0]
			} else {
				src[i] = pair[1]
			}
		}
		dst := make([]uint8, width/2*height*3)
		if err := Halve(src, width, height, dst, width/2); err != nil {
			t.Fatalf("Halve: %v", err)
		}
		want := uint8((int(pair[0]) + int(pair[1]) + 1) / 2)
		for i, got := range dst {
			if got != want {
				t.Fatalf("pair %v: dst[%d] = %d, want %d", pair, i, got, want)
			}
		}
	}
}

// TestDimensionLaw checks that exactly width/2 pixels are written per row:
// the byte after each row's output stays untouched.
func TestDimensionLaw(t *testing.T) {
	for _, width := range []int{30, 31, 32, 33, 34, 35} {
		const height = 4
		outW := width / 2
		stride := outW + 1
		dst := guarded(height, stride, 0)
		if err := Halve(randomPixels(width, height, 2), width, height, dst, stride); err != nil {
			t.Fatalf("Halve: %v", err)
		}
		for y := range height {
			if got := dst[(y*stride+outW)*3]; got != guardByte {
				t.Errorf("width %d row %d: byte after output is %#x, want untouched", width, y, got)
			}
		}
	}
}

func TestRowIndependence(t *testing.T) {
	const width, height, k = 97, 9, 4
	src := randomPixels(width, height, 3)
	outW := width / 2

	before := make([]uint8, outW*height*3)
	if err := Halve(src, width, height, before, outW); err != nil {
		t.Fatalf("Halve: %v", err)
	}

	rowBytes := width * 3
	for i := k * rowBytes; i < (k+1)*rowBytes; i++ {
		src[i] ^= 0x5a
	}
	after := make([]uint8, outW*height*3)
	if err := Halve(src, width, height, after, outW); err != nil {
		t.Fatalf("Halve: %v", err)
	}

	outRow := outW * 3
	for y := range height {
		b, a := before[y*outRow:(y+1)*outRow], after[y*outRow:(y+1)*outRow]
		changed := cmp.Diff(b, a) != ""
		if y == k && !changed {
			t.Errorf("row %d: output unchanged after altering its source row", y)
		}
		if y != k && changed {
			t.Errorf("row %d: output changed after altering only row %d", y, k)
		}
	}
}

func TestWorkerCountInvariance(t *testing.T) {
	const width, height = 333, 101
	src := randomPixels(width, height, 4)
	outW := width / 2

	want := make([]uint8, outW*height*3)
	if err := NewHalver(WithWorkers(1)).Halve(src, width, height, want, outW); err != nil {
		t.Fatalf("Halve: %v", err)
	}

	pool := workerpool.New(3)
	defer pool.Close()

	halvers := map[string]*Halver{
		"workers=2":   NewHalver(WithWorkers(2)),
		"workers=7":   NewHalver(WithWorkers(7)),
		"workers=50":  NewHalver(WithWorkers(50)),
		"workers=500": NewHalver(WithWorkers(500)),
		"default":     NewHalver(),
		"pool":        NewHalver(WithPool(pool)),
		"pool/16":     NewHalver(WithPool(pool), WithWorkers(16)),
		"scalar/5":    NewHalver(WithScalar(), WithWorkers(5)),
	}
	for name, h := range halvers {
		t.Run(name, func(t *testing.T) {
			got := make([]uint8, outW*height*3)
			if err := h.Halve(src, width, height, got, outW); err != nil {
				t.Fatalf("Halve: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("output differs from single worker (-want +got):\n%s", diff)
			}
		})
	}
}

// TestBoundaryWidths runs widths around MinVectorWidth with an exact-length
// source (over-reads panic) and an exact-length destination (over-writes
// panic), then again with guard bytes to catch writes into row padding.
func TestBoundaryWidths(t *testing.T) {
	for name, h := range kernels() {
		for _, width := range []int{MinVectorWidth - 1, MinVectorWidth, MinVectorWidth + 1} {
			for _, height := range []int{1, 2, 5} {
				t.Run(fmt.Sprintf("%s/%dx%d", name, width, height), func(t *testing.T) {
					src := randomPixels(width, height, 5)
					outW := width / 2

					want := make([]uint8, outW*height*3)
					referenceHalve(src, width, height, want, outW)

					exact := make([]uint8, outW*height*3)
					if err := h.Halve(src, width, height, exact, outW); err != nil {
						t.Fatalf("Halve: %v", err)
					}
					if diff := cmp.Diff(want, exact); diff != "" {
						t.Errorf("exact buffers (-want +got):\n%s", diff)
					}

					stride := outW + 3
					dst := guarded(height, stride, 32)
					if err := h.Halve(src, width, height, dst, stride); err != nil {
						t.Fatalf("Halve: %v", err)
					}
					checkStrided(t, dst, want, outW, stride, height)
				})
			}
		}
	}
}

// checkStrided compares the output rows of a strided destination with a
// packed want and verifies every other byte still holds guardByte.
func checkStrided(t *testing.T, dst, want []uint8, outW, stride, height int) {
	t.Helper()
	for y := range height {
		got := dst[y*stride*3 : (y*stride+outW)*3]
		if diff := cmp.Diff(want[y*outW*3:(y+1)*outW*3], got); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", y, diff)
		}
	}
	for i, b := range dst {
		y, col := i/(stride*3), (i%(stride*3))/3
		if y < height && col < outW {
			continue
		}
		if b != guardByte {
			t.Fatalf("byte %d (row %d, pixel %d) outside the output was written: %#x", i, y, col, b)
		}
	}
}

func TestStrideScenario(t *testing.T) {
	for name, h := range kernels() {
		for _, width := range []int{8, 40, 61, 200} {
			t.Run(fmt.Sprintf("%s/w%d", name, width), func(t *testing.T) {
				const height = 6
				src := randomPixels(width, height, 6)
				outW := width / 2
				want := make([]uint8, outW*height*3)
				referenceHalve(src, width, height, want, outW)

				stride := outW*2 + 1
				dst := guarded(height, stride, 0)
				if err := h.Halve(src, width, height, dst, stride); err != nil {
					t.Fatalf("Halve: %v", err)
				}
				checkStrided(t, dst, want, outW, stride, height)
			})
		}
	}
}

func TestMinimalDestination(t *testing.T) {
	// The last row needs only its output pixels, not a whole stride.
	const width, height, stride = 50, 5, 40
	src := randomPixels(width, height, 7)
	dst := make([]uint8, ((height-1)*stride+width/2)*3)
	if err := Halve(src, width, height, dst, stride); err != nil {
		t.Fatalf("Halve: %v", err)
	}
	want := make([]uint8, len(dst))
	referenceHalve(src, width, height, want, stride)
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("Halve mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleRow(t *testing.T) {
	bands := Bands(1, 8)
	if len(bands) != 1 || bands[0] != (Band{Start: 0, Rows: 1}) {
		t.Fatalf("Bands(1, 8) = %v, want [{0 1}]", bands)
	}

	const width = 77
	src := randomPixels(width, 1, 8)
	want := make([]uint8, width/2*3)
	referenceHalve(src, width, 1, want, width/2)
	got := make([]uint8, width/2*3)
	if err := NewHalver(WithWorkers(8)).Halve(src, width, 1, got, width/2); err != nil {
		t.Fatalf("Halve: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Halve mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidArguments(t *testing.T) {
	src := make([]uint8, 10*4*3)
	tests := []struct {
		name                  string
		src                   []uint8
		width, height, stride int
		dstLen                int
	}{
		{"zero width", src, 0, 4, 5, 100},
		{"zero height", src, 10, 0, 5, 100},
		{"negative width", src, -2, 4, 5, 100},
		{"short source", src[:len(src)-1], 10, 4, 5, 60},
		{"nil source", nil, 10, 4, 5, 60},
		{"stride below output width", src, 10, 4, 4, 100},
		{"short destination", src, 10, 4, 5, 59},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := guarded(1, 0, tt.dstLen)
			err := Halve(tt.src, tt.width, tt.height, dst, tt.stride)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Halve error: got %v, want ErrInvalidArgument", err)
			}
			for i, b := range dst {
				if b != guardByte {
					t.Fatalf("dst[%d] written despite error", i)
				}
			}
		})
	}
}

func TestHalverConfig(t *testing.T) {
	if got := NewHalver(WithScalar()).Kernel(); got != "scalar" {
		t.Errorf("Kernel with WithScalar: got %q, want scalar", got)
	}
	if got := NewHalver(WithScalar(), WithWorkers(2)).Kernel(); got != "scalar" {
		t.Errorf("Kernel with WithScalar and WithWorkers: got %q, want scalar", got)
	}
	if got := NewHalver(WithWorkers(3)).Workers(); got != 3 {
		t.Errorf("Workers: got %d, want 3", got)
	}

	pool := workerpool.New(5)
	defer pool.Close()
	if got := NewHalver(WithPool(pool)).Workers(); got != 5 {
		t.Errorf("Workers with pool: got %d, want 5", got)
	}
}

func TestHalveImage(t *testing.T) {
	src := image.NewRGB(45, 7)
	copy(src.Pix, randomPixels(45, 7, 9))

	dst := image.NewRGB(22, 7)
	if err := HalveImage(dst, src); err != nil {
		t.Fatalf("HalveImage: %v", err)
	}
	want := make([]uint8, 22*7*3)
	referenceHalve(src.Pix, 45, 7, want, 22)
	if diff := cmp.Diff(want, dst.Pix); diff != "" {
		t.Errorf("HalveImage mismatch (-want +got):\n%s", diff)
	}

	if err := HalveImage(image.NewRGB(23, 7), src); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("HalveImage wrong width: got %v, want ErrInvalidArgument", err)
	}
	if err := HalveImage(image.NewRGB(22, 6), src); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("HalveImage wrong height: got %v, want ErrInvalidArgument", err)
	}
}

func TestHalveImagePaddedSource(t *testing.T) {
	const width, height = 37, 5
	packed := randomPixels(width, height, 10)

	src := image.NewRGBStride(width, height, width+9)
	for y := range height {
		copy(src.Row(y), packed[y*width*3:(y+1)*width*3])
	}
	dst := image.NewRGB(width/2, height)
	if err := HalveImage(dst, src); err != nil {
		t.Fatalf("HalveImage: %v", err)
	}
	want := make([]uint8, width/2*height*3)
	referenceHalve(packed, width, height, want, width/2)
	if diff := cmp.Diff(want, dst.Pix); diff != "" {
		t.Errorf("HalveImage mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitScreen(t *testing.T) {
	const height = 9
	left := image.NewRGB(64, height)
	copy(left.Pix, randomPixels(64, height, 11))
	right := image.NewRGB(51, height)
	copy(right.Pix, randomPixels(51, height, 12))

	canvas, err := SplitScreen(left, right, WithWorkers(4))
	if err != nil {
		t.Fatalf("SplitScreen: %v", err)
	}
	if canvas.Width != 32+25 || canvas.Height != height {
		t.Fatalf("canvas size: got %dx%d, want 57x%d", canvas.Width, canvas.Height, height)
	}

	wantL := make([]uint8, 32*height*3)
	referenceHalve(left.Pix, 64, height, wantL, 32)
	wantR := make([]uint8, 25*height*3)
	referenceHalve(right.Pix, 51, height, wantR, 25)

	for y := range height {
		row := canvas.Row(y)
		if diff := cmp.Diff(wantL[y*32*3:(y+1)*32*3], row[:32*3]); diff != "" {
			t.Errorf("row %d left half (-want +got):\n%s", y, diff)
		}
		if diff := cmp.Diff(wantR[y*25*3:(y+1)*25*3], row[32*3:]); diff != "" {
			t.Errorf("row %d right half (-want +got):\n%s", y, diff)
		}
	}
}

func TestSplitScreenErrors(t *testing.T) {
	if _, err := SplitScreen(image.NewRGB(10, 4), image.NewRGB(10, 5)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("height mismatch: got %v, want ErrInvalidArgument", err)
	}
	if _, err := SplitScreen(image.NewRGB(1, 4), image.NewRGB(10, 4)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("1-pixel frame: got %v, want ErrInvalidArgument", err)
	}
}

func BenchmarkHalve(b *testing.B) {
	sizes := []struct{ w, h int }{
		{640, 480},
		{1280, 720},
		{1920, 1080},
	}
	for _, size := range sizes {
		src := randomPixels(size.w, size.h, 1)
		dst := make([]uint8, size.w/2*size.h*3)
		for name, h := range kernels() {
			b.Run(fmt.Sprintf("%s/%dx%d", name, size.w, size.h), func(b *testing.B) {
				b.SetBytes(int64(len(src)))
				for i := 0; i < b.N; i++ {
					_ = h.Halve(src, size.w, size.h, dst, size.w/2)
				}
			})
		}
	}
}

func BenchmarkHalvePool(b *testing.B) {
	const w, h = 1280, 720
	pool := workerpool.New(0)
	defer pool.Close()
	halver := NewHalver(WithPool(pool))

	src := randomPixels(w, h, 1)
	dst := make([]uint8, w/2*h*3)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = halver.Halve(src, w, h, dst, w/2)
	}
}
