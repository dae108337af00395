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

// Command hwyhalve halves the width of images and benchmarks the kernel.
//
// Usage:
//
//	hwyhalve halve frame.png -o half.png
//	hwyhalve split left.png right.png -o stereo.png
//	hwyhalve bench frame.jpg --warmups 200 --runs 500
//	hwyhalve info
//
// Inputs may be PNG, JPEG, GIF, BMP, TIFF or WebP. Outputs are encoded by
// extension: .png, .jpg/.jpeg, .bmp, .tif/.tiff.
//
// bench times the golang.org/x/image/draw bilinear scaler against the halving
// kernel on the same frame and reports every channel where the two differ by
// more than --tolerance.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
