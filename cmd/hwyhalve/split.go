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
	"golang.org/x/sync/errgroup"

	hwyimage "github.com/ajroetker/go-halve/hwy/contrib/image"
)

func newSplitCmd(cfg *kernelConfig) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "split LEFT RIGHT -o OUTPUT",
		Short: "Halve two frames and place them side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}

			var frames [2]*hwyimage.RGB
			var g errgroup.Group
			for i, path := range args {
				g.Go(func() error {
					img, err := loadImage(cmd.ErrOrStderr(), path)
					frames[i] = img
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			canvas, err := cfg.halver().SplitScreen(frames[0], frames[1])
			if err != nil {
				return fmt.Errorf("split %s %s: %w", args[0], args[1], err)
			}
			if err := saveImage(output, canvas); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", output, canvas.Width, canvas.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path")
	return cmd
}
