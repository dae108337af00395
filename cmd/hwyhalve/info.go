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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-halve/hwy"
	"github.com/ajroetker/go-halve/hwy/contrib/halve"
)

func newInfoCmd(cfg *kernelConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and kernel configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h := cfg.halver()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "SIMD Level: %s, Width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(w, "AVX2: %v\n", hwy.HasAVX2())
			fmt.Fprintf(w, "Kernel: %s, Workers: %d\n", h.Kernel(), h.Workers())
			fmt.Fprintf(w, "Minimum vector width: %d pixels\n", halve.MinVectorWidth)
		},
	}
}
