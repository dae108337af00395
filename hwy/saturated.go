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

package hwy

// lowBits7 clears the bit that a right shift of a packed word moves across a
// byte boundary.
const lowBits7 = 0x7f7f7f7f7f7f7f7f

// AvgWord computes the rounded average (a + b + 1) / 2 of each of the eight
// byte lanes packed in x and y, like VPAVGB on a 64-bit register.
// It uses (x | y) - ((x ^ y) >> 1), which never carries between lanes.
func AvgWord(x, y uint64) uint64 {
	return (x | y) - (((x ^ y) >> 1) & lowBits7)
}

// AvgScalar is the single-lane form of AvgWord: (a + b + 1) / 2.
func AvgScalar(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) >> 1)
}
