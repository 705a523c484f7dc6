// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/ajroetker/go-membench/workerpool"
)

// ErrOutOfMemory wraps allocation failures recovered by the pipeline.
var ErrOutOfMemory = errors.New("out of memory")

// Report is what a completed run observed. The oracle verdicts live
// here as data: a mismatch is the signal the benchmark exists to
// surface, not an error.
type Report struct {
	// Checksum is the dataset checksum right after generation.
	Checksum uint32
	// Rechecksum is the checksum after the final sort.
	Rechecksum uint32
	// ChecksumOK reports whether Checksum == Rechecksum.
	ChecksumOK bool
	// Sorted reports whether the dataset ended non-descending.
	Sorted bool
	// SortTimes holds one duration per sort repetition.
	SortTimes []time.Duration
	// Total is the wall-clock time of the whole pipeline.
	Total time.Duration
}

// Run executes the fixed benchmark pipeline described by cfg, writing
// the phase log to out. It returns a non-nil Report on normal
// completion, including runs whose checksum or sortedness verdict
// failed, and an error only for invalid configurations and resource
// exhaustion.
func Run(cfg Config, out io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{
		cfg: cfg,
		out: out,
		alloc: func(n uint64) ([]uint32, error) {
			return make([]uint32, n), nil
		},
	}
	return r.run()
}

type runner struct {
	cfg   Config
	out   io.Writer
	alloc func(n uint64) ([]uint32, error)
}

func (r *runner) run() (rep *Report, err error) {
	// Oversized allocations surface as runtime panics, not error
	// returns. Recover around the whole pipeline, close the phase
	// line that was in progress, and report cleanly. Memory
	// exhaustion is not transient; there is no retry.
	defer func() {
		if p := recover(); p != nil {
			rerr, ok := p.(runtime.Error)
			if !ok {
				panic(p)
			}
			fmt.Fprintln(r.out)
			rep, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, rerr)
		}
	}()

	fmt.Fprintln(r.out)
	if r.cfg.ShowStartTime {
		fmt.Fprintf(r.out, "start: %s\n", time.Now().Format(time.RFC3339))
	}

	pool := workerpool.New(0)
	defer pool.Close()

	rep = &Report{}
	start := time.Now()

	data, d, err := timePhase(r.out, "Allocating", func() ([]uint32, error) {
		return r.alloc(r.cfg.Length)
	})
	if err != nil {
		fmt.Fprintln(r.out)
		return nil, err
	}
	reportDone(r.out, d)

	d, err = timeAction(r.out, "Generating", func() error {
		Fill(data, r.cfg.Seed)
		return nil
	})
	if err != nil {
		fmt.Fprintln(r.out)
		return nil, err
	}
	reportDone(r.out, d)

	sum1, d, _ := timePhase(r.out, "Hashing", func() (uint32, error) {
		return Checksum(data), nil
	})
	rep.Checksum = sum1
	fmt.Fprintf(r.out, "0x%08x. (%d ms)\n", sum1, d.Milliseconds())

	for i := 0; i < r.cfg.Repetitions; i++ {
		d, err = timeAction(r.out, "Sorting", func() error {
			SortMode(r.cfg.Mode, pool, data)
			return nil
		})
		if err != nil {
			fmt.Fprintln(r.out)
			return nil, err
		}
		reportDone(r.out, d)
		rep.SortTimes = append(rep.SortTimes, d)
	}

	sum2, d, _ := timePhase(r.out, "Rehashing", func() (uint32, error) {
		return Checksum(data), nil
	})
	rep.Rechecksum = sum2
	rep.ChecksumOK = sum1 == sum2
	verdict := "same"
	if !rep.ChecksumOK {
		verdict = "DIFFERENT!"
	}
	fmt.Fprintf(r.out, "0x%08x. (%s) (%d ms)\n", sum2, verdict, d.Milliseconds())

	sorted, d, _ := timePhase(r.out, "Checking", func() (bool, error) {
		return slices.IsSorted(data), nil
	})
	rep.Sorted = sorted
	if sorted {
		fmt.Fprintf(r.out, "sorted. (%d ms)\n", d.Milliseconds())
	} else {
		fmt.Fprintf(r.out, "NOT SORTED! (%d ms)\n", d.Milliseconds())
	}

	rep.Total = time.Since(start)
	fmt.Fprintf(r.out, "\nTest completed in %.1f s.\n", rep.Total.Seconds())
	return rep, nil
}
