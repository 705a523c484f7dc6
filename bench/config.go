// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"math"
)

// elemSize is the byte width of one dataset element.
const elemSize = 4

// MaxLength is the largest element count whose byte size still fits in
// an int, the limit the runtime enforces on make.
const MaxLength = math.MaxInt / elemSize

// Mode selects the concurrency strategy for the sort phase. The set is
// closed: dispatch is an exhaustive switch and an unknown value is a
// programming defect, not a runtime condition.
type Mode int

const (
	// ModeSequential sorts on the calling goroutine only.
	ModeSequential Mode = iota
	// ModeParallel fans chunk sorts and merges out across pool workers.
	ModeParallel
	// ModeParallelUnseq additionally drops ordering constraints within
	// each pass: radix passes scatter from all workers at once with no
	// comparison order at all.
	ModeParallelUnseq
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	case ModeParallelUnseq:
		return "par-unseq"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the command-line spelling of a concurrency mode to its
// tag.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential":
		return ModeSequential, nil
	case "parallel":
		return ModeParallel, nil
	case "par-unseq":
		return ModeParallelUnseq, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want sequential, parallel or par-unseq)", s)
}

// SeedOrigin records where the PRNG seed came from. Descriptive only;
// nothing downstream re-derives it.
type SeedOrigin int

const (
	// SeedSystem marks a seed drawn from system entropy.
	SeedSystem SeedOrigin = iota
	// SeedUser marks a seed supplied by the operator.
	SeedUser
)

func (o SeedOrigin) String() string {
	if o == SeedUser {
		return "user"
	}
	return "system"
}

// Config is the immutable result of argument resolution. It is built
// once by the command-line adapter, validated, and handed to Run.
type Config struct {
	// Length is the dataset element count.
	Length uint64
	// Seed seeds the deterministic sequence generator.
	Seed uint32
	// SeedOrigin is the seed's provenance.
	SeedOrigin SeedOrigin
	// Mode is the sort concurrency strategy.
	Mode Mode
	// Repetitions is the number of in-place sorts to perform, >= 1.
	// Re-sorting already-sorted data probes algorithm adaptivity and
	// stability rather than correctness.
	Repetitions int
	// ShowStartTime prints the run's start timestamp before the
	// pipeline.
	ShowStartTime bool
}

// Bytes returns the dataset size in bytes.
func (c Config) Bytes() uint64 {
	return c.Length * elemSize
}

// Validate rejects configurations the engine must never see.
func (c Config) Validate() error {
	if c.Length > MaxLength {
		return fmt.Errorf("length %d words exceeds the addressable maximum (%d)", c.Length, uint64(MaxLength))
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("repetitions must be at least 1, got %d", c.Repetitions)
	}
	switch c.Mode {
	case ModeSequential, ModeParallel, ModeParallelUnseq:
	default:
		return fmt.Errorf("invalid mode %d", int(c.Mode))
	}
	return nil
}
