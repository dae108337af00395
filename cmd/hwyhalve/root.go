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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-halve/hwy/contrib/halve"
)

// kernelConfig holds the flags shared by every command that runs the kernel.
type kernelConfig struct {
	workers int
	scalar  bool
}

func (c *kernelConfig) addFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.workers, "workers", "w", 0, "number of row bands (0 = GOMAXPROCS)")
	fs.BoolVar(&c.scalar, "scalar", false, "force the scalar kernel")
}

func (c *kernelConfig) halver() *halve.Halver {
	opts := []halve.Option{halve.WithWorkers(c.workers)}
	if c.scalar {
		opts = append(opts, halve.WithScalar())
	}
	return halve.NewHalver(opts...)
}

func newRootCmd() *cobra.Command {
	cfg := &kernelConfig{}
	root := &cobra.Command{
		Use:           "hwyhalve",
		Short:         "Halve the width of 24-bit images",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cfg.addFlags(root.PersistentFlags())

	root.AddCommand(
		newHalveCmd(cfg),
		newSplitCmd(cfg),
		newBenchCmd(cfg),
		newInfoCmd(cfg),
	)
	return root
}
