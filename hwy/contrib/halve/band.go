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
	"runtime"
	"sync"
)

// Band is a contiguous range of rows processed by one worker.
type Band struct {
	Start int // first row
	Rows  int // number of rows
}

// End returns one past the band's last row.
func (b Band) End() int {
	return b.Start + b.Rows
}

// Bands partitions rows [0, height) into max(1, min(height-1, workers))
// contiguous bands. Every band but the last has height/n rows; the last one
// absorbs the remainder. workers <= 0 means GOMAXPROCS.
//
// A height of 1 yields a single band; a non-positive height yields none.
func Bands(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := max(1, min(height-1, workers))
	rows := height / n
	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{Start: i * rows, Rows: rows}
	}
	bands[n-1].Rows = height - bands[n-1].Start
	return bands
}

// runBands calls fn for every band and returns once all calls have returned.
func (h *Halver) runBands(bands []Band, fn func(Band)) {
	switch {
	case len(bands) == 1:
		fn(bands[0])
	case h.pool != nil:
		h.pool.Run(len(bands), func(i int) {
			fn(bands[i])
		})
	default:
		var wg sync.WaitGroup
		wg.Add(len(bands))
		for _, b := range bands {
			go func() {
				defer wg.Done()
				fn(b)
			}()
		}
		wg.Wait()
	}
}
