// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-membench/bench"
)

var (
	flagSeed      uint32
	flagMode      string
	flagRepeat    int
	flagStartTime bool
	flagCPU       bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "membench LENGTH",
		Short: "Memory allocation and parallel sort smoke benchmark",
		Long: `membench allocates LENGTH 32-bit words, fills them from a seeded PRNG,
sorts them in place under the selected concurrency mode, and verifies a
wraparound checksum across the sort. Phase timings are printed as the
run progresses.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args)
			if err != nil {
				return err
			}
			return runBenchmark(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint32Var(&flagSeed, "seed", 0, "PRNG seed (default: drawn from system entropy)")
	cmd.Flags().StringVar(&flagMode, "mode", "sequential", "sort concurrency mode: sequential, parallel or par-unseq")
	cmd.Flags().IntVar(&flagRepeat, "repeat", 1, "number of in-place re-sorts")
	cmd.Flags().BoolVar(&flagStartTime, "start-time", false, "print the run's start timestamp")
	cmd.Flags().BoolVar(&flagCPU, "cpu", false, "print a host CPU summary before the run")
	return cmd
}

// buildConfig resolves flags and the positional length into the
// engine's immutable configuration.
func buildConfig(cmd *cobra.Command, args []string) (bench.Config, error) {
	length, err := parseLength(args[0])
	if err != nil {
		return bench.Config{}, err
	}
	mode, err := bench.ParseMode(flagMode)
	if err != nil {
		return bench.Config{}, err
	}

	cfg := bench.Config{
		Length:        length,
		Seed:          flagSeed,
		SeedOrigin:    bench.SeedUser,
		Mode:          mode,
		Repetitions:   flagRepeat,
		ShowStartTime: flagStartTime,
	}
	if !cmd.Flags().Changed("seed") {
		seed, err := systemSeed()
		if err != nil {
			return bench.Config{}, err
		}
		cfg.Seed = seed
		cfg.SeedOrigin = bench.SeedSystem
	}
	if err := cfg.Validate(); err != nil {
		return bench.Config{}, err
	}
	return cfg, nil
}

func runBenchmark(cfg bench.Config, out io.Writer) error {
	fmt.Fprintf(out, "%d %s (%s)\n", cfg.Length, plural("word", cfg.Length), sizeLabel(cfg.Bytes()))
	fmt.Fprintf(out, "seed: %d (%s)\n", cfg.Seed, cfg.SeedOrigin)
	if flagCPU {
		fmt.Fprintln(out, bench.HostInfo())
	}

	_, err := bench.Run(cfg, out)
	return err
}

func parseLength(arg string) (uint64, error) {
	if strings.HasPrefix(arg, "-") {
		return 0, errors.New("length argument is negative")
	}
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.New("length argument is way too big")
		}
		return 0, errors.New("length argument is non-numeric")
	}
	return n, nil
}

// systemSeed draws a 32-bit seed from system entropy.
func systemSeed() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("reading system entropy: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// sizeLabel renders the dataset byte size, prefixed with "~" when the
// displayed unit rounds the exact value.
func sizeLabel(bytes uint64) string {
	s := humanize.IBytes(bytes)
	unit := uint64(1)
	for unit <= bytes/1024 {
		unit *= 1024
	}
	if bytes%unit != 0 {
		s = "~" + s
	}
	return s
}

func plural(word string, n uint64) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
