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

// Package image provides a packed 24-bit image type for byte kernels.
//
// RGB holds three bytes per pixel in row-major order with a row stride
// measured in pixels. It carries no alpha and no color model: kernels see the
// raw byte triples, so BGR data (as produced by most camera pipelines) works
// unchanged.
//
// # Regions
//
// SubImage returns a view that shares pixels with its parent and keeps the
// parent's stride. A kernel writing into the view writes into the parent,
// which is how two frames are composed side by side:
//
//	canvas := image.NewRGB(w, h)
//	left := canvas.SubImage(image.Rect{X0: 0, Y0: 0, X1: w / 2, Y1: h})
//	right := canvas.SubImage(image.Rect{X0: w / 2, Y0: 0, X1: w, Y1: h})
//
// # Conversion
//
// FromImage and ToRGBA move pixels between RGB and the standard library's
// image types, for decoding and encoding at the edges of a pipeline.
package image
