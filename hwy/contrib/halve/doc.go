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

// Package halve halves the width of packed 24-bit images.
//
// Every output pixel is the rounded average of a horizontally adjacent pair
// of source pixels, channel by channel:
//
//	out[y][x][c] = (src[y][2x][c] + src[y][2x+1][c] + 1) / 2
//
// The output is floor(width/2) pixels wide and as tall as the source; an odd
// last source column is dropped. This is the 2:1 horizontal special case of
// bilinear resizing used to put two camera frames side by side (stereo and
// visual-odometry pipelines), at a fraction of the cost of a general resizer.
//
// # Kernels
//
// Three row kernels produce identical output; NewHalver picks one from
// hwy.CurrentLevel.
//
// On AVX2 hosts, in builds with GOEXPERIMENT=simd, each row is processed five
// output pixels at a time. Two 32-byte windows of the source, one pixel
// (3 bytes) apart, are averaged with VPAVGB. Every byte whose offset is 0, 1
// or 2 mod 6 now holds a finished output channel; a grouped byte permutation
// compacts those 15 bytes and the two 128-bit halves are ORed together.
//
// Elsewhere the word kernel loads one 64-bit word per output pixel and
// averages it with itself shifted down one pixel using hwy.AvgWord, so the
// three channels are finished in a single operation. With HWY_NO_SIMD set,
// or WithScalar, the scalar kernel averages one channel at a time.
//
// The end of each row is written through hwy.StorePartial or scalar triples,
// so nothing past the row's last output byte is written and nothing past the
// end of the source slice is read.
//
// # Parallelism
//
// Rows are split into contiguous bands (see Bands), one per worker, and the
// bands run concurrently. Bands write disjoint destination rows, so the
// result is bit-identical for any worker count. By default each call starts
// and joins its own goroutines; WithPool runs bands on a caller-owned
// workerpool.Pool instead.
//
// # Usage
//
//	out := make([]uint8, (w/2)*h*3)
//	if err := halve.Halve(frame, w, h, out, w/2); err != nil {
//	    return err
//	}
//
// Writing two frames into one side-by-side canvas:
//
//	canvas, err := halve.SplitScreen(leftFrame, rightFrame)
//
// Setting HWY_NO_SIMD selects the scalar kernel.
package halve
