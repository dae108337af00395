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
	"image"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/ajroetker/go-halve/hwy/contrib/halve"
	hwyimage "github.com/ajroetker/go-halve/hwy/contrib/image"
)

type benchOptions struct {
	warmups   int
	runs      int
	tolerance int
	maxReport int
	output    string
}

// timing summarizes the per-run durations of one contender.
type timing struct {
	Mean, Min, Max time.Duration
}

func (t timing) String() string {
	us := func(d time.Duration) float64 { return float64(d) / float64(time.Microsecond) }
	return fmt.Sprintf("%.3f us (min %.3f, max %.3f)", us(t.Mean), us(t.Min), us(t.Max))
}

// mismatch is one channel where the halved output and the reference disagree
// by more than the tolerance.
type mismatch struct {
	X, Y, Channel  int
	Reference, Got uint8
}

func newBenchCmd(cfg *kernelConfig) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench INPUT",
		Short: "Time the kernel against a bilinear reference and compare results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.runs <= 0 || opts.warmups < 0 {
				return errors.New("--runs must be positive and --warmups non-negative")
			}
			src, err := loadImage(cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}
			if src.Width < 2 {
				return fmt.Errorf("%s is %d pixel(s) wide; nothing to halve", args[0], src.Width)
			}
			return runBench(cmd.OutOrStdout(), src, cfg.halver(), opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.warmups, "warmups", 200, "untimed runs before measuring")
	f.IntVar(&opts.runs, "runs", 500, "timed runs per contender")
	f.IntVar(&opts.tolerance, "tolerance", 1, "largest per-channel difference not reported as a mismatch")
	f.IntVar(&opts.maxReport, "max-report", 20, "mismatches to print (negative prints all)")
	f.StringVarP(&opts.output, "output", "o", "", "also write the halved image here")
	return cmd
}

func runBench(w io.Writer, src *hwyimage.RGB, h *halve.Halver, opts benchOptions) error {
	outW := src.Width / 2
	srcRGBA := src.ToRGBA()
	ref := image.NewRGBA(image.Rect(0, 0, outW, src.Height))
	got := hwyimage.NewRGB(outW, src.Height)

	refTiming, err := timeRuns(opts.warmups, opts.runs, func() error {
		draw.BiLinear.Scale(ref, ref.Bounds(), srcRGBA, srcRGBA.Bounds(), draw.Src, nil)
		return nil
	})
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	gotTiming, err := timeRuns(opts.warmups, opts.runs, func() error {
		return h.HalveImage(got, src)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "reference (x/image/draw BiLinear) took %s.\n", refTiming)
	fmt.Fprintf(w, "halve (%s, %d workers) took %s.\n", h.Kernel(), h.Workers(), gotTiming)
	fmt.Fprintf(w, "Input stats: %d rows, %d cols.\n", src.Height, src.Width)
	fmt.Fprintf(w, "Output stats: %d rows, %d cols.\n", got.Height, got.Width)

	diffs := compare(hwyimage.FromImage(ref), got, opts.tolerance)
	shown := diffs
	if opts.maxReport >= 0 && len(shown) > opts.maxReport {
		shown = shown[:opts.maxReport]
	}
	for _, m := range shown {
		fmt.Fprintf(w, "MISMATCH at (%d, %d) channel %d. reference %d, halve %d.\n", m.X, m.Y, m.Channel, m.Reference, m.Got)
	}
	fmt.Fprintf(w, "%d mismatches above tolerance %d.\n", len(diffs), opts.tolerance)

	if opts.output != "" {
		return saveImage(opts.output, got)
	}
	return nil
}

// timeRuns calls fn warmups times, then runs more times while timing each
// call. It stops at the first error.
func timeRuns(warmups, runs int, fn func() error) (timing, error) {
	for range warmups {
		if err := fn(); err != nil {
			return timing{}, err
		}
	}
	durations := make([]time.Duration, 0, runs)
	for range runs {
		start := time.Now()
		if err := fn(); err != nil {
			return timing{}, err
		}
		durations = append(durations, time.Since(start))
	}
	if len(durations) == 0 {
		return timing{}, nil
	}
	return timing{
		Mean: lo.Sum(durations) / time.Duration(len(durations)),
		Min:  lo.Min(durations),
		Max:  lo.Max(durations),
	}, nil
}

// compare lists, in row-major order, every channel where got differs from
// ref by more than tolerance. Both images must have the same size.
func compare(ref, got *hwyimage.RGB, tolerance int) []mismatch {
	var out []mismatch
	for y := 0; y < got.Height; y++ {
		r, g := ref.Row(y), got.Row(y)
		for i := range g {
			d := int(r[i]) - int(g[i])
			if d < 0 {
				d = -d
			}
			if d > tolerance {
				out = append(out, mismatch{
					X:         i / hwyimage.BytesPerPixel,
					Y:         y,
					Channel:   i % hwyimage.BytesPerPixel,
					Reference: r[i],
					Got:       g[i],
				})
			}
		}
	}
	return out
}
