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

package image

import (
	goimage "image"
	"image/color"
)

// BytesPerPixel is the size of one packed 24-bit pixel.
const BytesPerPixel = 3

// RGB is a packed, row-major 24-bit image: three bytes per pixel, channel
// order as stored (RGB or BGR alike), no alpha.
//
// Stride is measured in pixels. Pix[0] is the pixel at (0, 0) and row y
// starts at Pix[y*Stride*3]. When Stride == Width the rows are tightly
// packed; a larger Stride describes a region inside a wider canvas.
type RGB struct {
	Pix    []uint8
	Width  int
	Height int
	Stride int
}

// NewRGB creates a tightly packed image with the specified dimensions.
// Non-positive dimensions yield an empty image.
func NewRGB(width, height int) *RGB {
	return NewRGBStride(width, height, width)
}

// NewRGBStride creates an image whose rows are stride pixels apart.
// The stride is raised to width if smaller.
func NewRGBStride(width, height, stride int) *RGB {
	if width <= 0 || height <= 0 {
		return &RGB{}
	}
	stride = max(stride, width)
	return &RGB{
		Pix:    make([]uint8, stride*height*BytesPerPixel),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// Packed reports whether rows are contiguous (Stride == Width).
func (img *RGB) Packed() bool {
	return img.Stride == img.Width
}

// RowBytes returns the number of meaningful bytes per row (Width*3).
func (img *RGB) RowBytes() int {
	return img.Width * BytesPerPixel
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (img *RGB) PixOffset(x, y int) int {
	return (y*img.Stride + x) * BytesPerPixel
}

// Row returns the Width*3 bytes of row y, or nil if y is out of range.
func (img *RGB) Row(y int) []uint8 {
	if y < 0 || y >= img.Height || img.Pix == nil {
		return nil
	}
	start := y * img.Stride * BytesPerPixel
	return img.Pix[start : start+img.RowBytes()]
}

// At returns the three channels of pixel (x, y).
// Out-of-bounds coordinates return zeros.
func (img *RGB) At(x, y int) [3]uint8 {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height || img.Pix == nil {
		return [3]uint8{}
	}
	i := img.PixOffset(x, y)
	return [3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

// Set sets pixel (x, y). Out-of-bounds coordinates are ignored.
func (img *RGB) Set(x, y int, p [3]uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height || img.Pix == nil {
		return
	}
	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+BytesPerPixel], p[:])
}

// SameSize returns true if both images have the same dimensions.
func SameSize(a, b *RGB) bool {
	return a.Width == b.Width && a.Height == b.Height
}

// Clone creates a tightly packed deep copy of the image.
func (img *RGB) Clone() *RGB {
	clone := NewRGB(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		copy(clone.Row(y), img.Row(y))
	}
	return clone
}

// Fill sets every pixel inside the image bounds to p.
// Bytes between rows (stride padding) are left alone.
func (img *RGB) Fill(p [3]uint8) {
	for y := 0; y < img.Height; y++ {
		row := img.Row(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+1], row[i+2] = p[0], p[1], p[2]
		}
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Bounds returns the bounding rectangle of the image.
func (img *RGB) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.Width, Y1: img.Height}
}

// SubImage returns the part of img inside r, sharing pixels with img.
// The result keeps img's Stride, so writing through it writes into img.
// Its Pix slice ends with the last pixel of the region, which lets a kernel
// that bounds its reads by len(Pix) stay inside the region's last row.
func (img *RGB) SubImage(r Rect) *RGB {
	r = r.Intersect(img.Bounds())
	if r.IsEmpty() {
		return &RGB{}
	}
	start := img.PixOffset(r.X0, r.Y0)
	end := img.PixOffset(r.X1, r.Y1-1)
	return &RGB{
		Pix:    img.Pix[start:end:end],
		Width:  r.Width(),
		Height: r.Height(),
		Stride: img.Stride,
	}
}

// FromImage converts any image to a tightly packed RGB, dropping alpha.
// Channels are taken from the non-premultiplied 8-bit color.
func FromImage(src goimage.Image) *RGB {
	b := src.Bounds()
	out := NewRGB(b.Dx(), b.Dy())
	if out.Pix == nil {
		return out
	}

	switch s := src.(type) {
	case *goimage.NRGBA:
		for y := 0; y < out.Height; y++ {
			in := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			row := out.Row(y)
			for x, j := 0, 0; x < len(row); x, j = x+3, j+4 {
				row[x], row[x+1], row[x+2] = in[j], in[j+1], in[j+2]
			}
		}
	default:
		for y := 0; y < out.Height; y++ {
			row := out.Row(y)
			for x := 0; x < out.Width; x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := x * BytesPerPixel
				row[i], row[i+1], row[i+2] = c.R, c.G, c.B
			}
		}
	}
	return out
}

// ToRGBA converts the image to an opaque *image.RGBA.
func (img *RGB) ToRGBA() *goimage.RGBA {
	out := goimage.NewRGBA(goimage.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Row(y)
		dst := out.Pix[y*out.Stride:]
		for x, j := 0, 0; x < len(row); x, j = x+3, j+4 {
			dst[j], dst[j+1], dst[j+2], dst[j+3] = row[x], row[x+1], row[x+2], 0xff
		}
	}
	return out
}

// Opaque reports whether every pixel of src has full alpha, in which case
// FromImage loses nothing.
func Opaque(src goimage.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
