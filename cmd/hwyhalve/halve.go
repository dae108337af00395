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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	hwyimage "github.com/ajroetker/go-halve/hwy/contrib/image"
)

func newHalveCmd(cfg *kernelConfig) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "halve INPUT -o OUTPUT",
		Short: "Write INPUT at half its width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}
			src, err := loadImage(cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}
			if src.Width < 2 {
				return fmt.Errorf("%s is %d pixel(s) wide; nothing to halve", args[0], src.Width)
			}

			dst := hwyimage.NewRGB(src.Width/2, src.Height)
			if err := cfg.halver().HalveImage(dst, src); err != nil {
				return fmt.Errorf("halve %s: %w", args[0], err)
			}
			if err := saveImage(output, dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d -> %s: %dx%d\n", args[0], src.Width, src.Height, output, dst.Width, dst.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path")
	return cmd
}
