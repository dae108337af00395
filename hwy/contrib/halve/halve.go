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
	"fmt"
	"runtime"

	"github.com/ajroetker/go-halve/hwy/contrib/image"
	"github.com/ajroetker/go-halve/hwy/contrib/workerpool"
)

// Halver halves images with a fixed configuration. It holds no per-call
// state and is safe for concurrent use.
type Halver struct {
	workers int
	pool    *workerpool.Pool
	kernel  kernel
}

// Option configures a Halver.
type Option func(*Halver)

// WithWorkers sets the number of bands an image is split into (at most one
// per row pair). n <= 0 means the pool's size with WithPool, GOMAXPROCS
// otherwise.
func WithWorkers(n int) Option {
	return func(h *Halver) {
		h.workers = n
	}
}

// WithPool runs bands on p instead of per-call goroutines.
// The caller owns p and must keep it open while the Halver is in use.
func WithPool(p *workerpool.Pool) Option {
	return func(h *Halver) {
		h.pool = p
	}
}

// WithScalar forces the scalar kernel.
func WithScalar() Option {
	return func(h *Halver) {
		h.kernel = scalarKernel
	}
}

// NewHalver returns a Halver configured by opts.
func NewHalver(opts ...Option) *Halver {
	h := &Halver{kernel: defaultKernel()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Kernel returns the name of the row kernel in use: "avx2", "swar" or
// "scalar".
func (h *Halver) Kernel() string {
	return h.kernel.name
}

// Workers returns the band count limit used for each call.
func (h *Halver) Workers() int {
	switch {
	case h.workers > 0:
		return h.workers
	case h.pool != nil:
		return h.pool.NumWorkers()
	default:
		return runtime.GOMAXPROCS(0)
	}
}

// Halve writes the horizontally halved src into dst.
//
// src holds width*height tightly packed 3-byte pixels. dst receives
// width/2 pixels per row for height rows, with rows dstStride pixels apart;
// bytes between the end of an output row and the next row are not touched.
// dst must hold at least ((height-1)*dstStride + width/2)*3 bytes.
//
// Arguments are checked before any work starts; violations return an error
// wrapping ErrInvalidArgument and leave dst unmodified.
func (h *Halver) Halve(src []uint8, width, height int, dst []uint8, dstStride int) error {
	return h.halve(dst, src, geometry{
		width:     width,
		height:    height,
		srcStride: width,
		dstStride: dstStride,
	})
}

// HalveImage halves src into dst. dst must be src.Width/2 pixels wide and
// as tall as src; either may be a SubImage with a wider stride.
func (h *Halver) HalveImage(dst, src *image.RGB) error {
	if dst.Width != src.Width/2 || dst.Height != src.Height {
		return fmt.Errorf("%w: destination is %dx%d, halving %dx%d gives %dx%d", ErrInvalidArgument,
			dst.Width, dst.Height, src.Width, src.Height, src.Width/2, src.Height)
	}
	return h.halve(dst.Pix, src.Pix, geometry{
		width:     src.Width,
		height:    src.Height,
		srcStride: src.Stride,
		dstStride: dst.Stride,
	})
}

// SplitScreen halves left and right and places them side by side in a new
// canvas of width left.Width/2 + right.Width/2. Both frames must have the
// same height and be at least two pixels wide.
func (h *Halver) SplitScreen(left, right *image.RGB) (*image.RGB, error) {
	if left.Height != right.Height {
		return nil, fmt.Errorf("%w: frame heights differ (%d and %d)", ErrInvalidArgument, left.Height, right.Height)
	}
	if left.Width < 2 || right.Width < 2 || left.Height <= 0 {
		return nil, fmt.Errorf("%w: frames %dx%d and %dx%d are too small to halve", ErrInvalidArgument,
			left.Width, left.Height, right.Width, right.Height)
	}

	lw, rw := left.Width/2, right.Width/2
	canvas := image.NewRGB(lw+rw, left.Height)
	if err := h.HalveImage(canvas.SubImage(image.Rect{X1: lw, Y1: left.Height}), left); err != nil {
		return nil, fmt.Errorf("left frame: %w", err)
	}
	if err := h.HalveImage(canvas.SubImage(image.Rect{X0: lw, X1: lw + rw, Y1: left.Height}), right); err != nil {
		return nil, fmt.Errorf("right frame: %w", err)
	}
	return canvas, nil
}

func (h *Halver) halve(dst, src []uint8, g geometry) error {
	if err := g.validate(len(src), len(dst)); err != nil {
		return err
	}
	h.runBands(Bands(g.height, h.Workers()), func(b Band) {
		h.kernel.band(dst, src, g, b)
	})
	return nil
}

// Halve halves src with a Halver configured by opts; see Halver.Halve.
func Halve(src []uint8, width, height int, dst []uint8, dstStride int, opts ...Option) error {
	return NewHalver(opts...).Halve(src, width, height, dst, dstStride)
}

// HalveImage halves src into dst; see Halver.HalveImage.
func HalveImage(dst, src *image.RGB, opts ...Option) error {
	return NewHalver(opts...).HalveImage(dst, src)
}

// SplitScreen composes two halved frames side by side; see Halver.SplitScreen.
func SplitScreen(left, right *image.RGB, opts ...Option) (*image.RGB, error) {
	return NewHalver(opts...).SplitScreen(left, right)
}
