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
)

// ErrInvalidArgument is returned, wrapped, when dimensions or buffers cannot
// describe a valid halving. It is always reported before any pixel is written.
var ErrInvalidArgument = errors.New("halve: invalid argument")

// geometry is the validated shape of one call.
type geometry struct {
	width, height int
	srcStride     int // pixels between source rows
	dstStride     int // pixels between destination rows
}

// outWidth is the output width in pixels.
func (g geometry) outWidth() int {
	return g.width / 2
}

func (g geometry) validate(srcLen, dstLen int) error {
	if g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, g.width, g.height)
	}
	if g.srcStride < g.width {
		return fmt.Errorf("%w: source stride %d is less than width %d", ErrInvalidArgument, g.srcStride, g.width)
	}
	if g.dstStride < g.outWidth() {
		return fmt.Errorf("%w: destination stride %d is less than output width %d", ErrInvalidArgument, g.dstStride, g.outWidth())
	}
	if need := ((g.height-1)*g.srcStride + g.width) * bytesPerPixel; srcLen < need {
		return fmt.Errorf("%w: source holds %d bytes, %dx%d needs %d", ErrInvalidArgument, srcLen, g.width, g.height, need)
	}
	if need := ((g.height-1)*g.dstStride + g.outWidth()) * bytesPerPixel; dstLen < need {
		return fmt.Errorf("%w: destination holds %d bytes, needs %d", ErrInvalidArgument, dstLen, need)
	}
	return nil
}
