// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"slices"
	"testing"

	"github.com/ajroetker/go-membench/workerpool"
)

var allModes = []Mode{ModeSequential, ModeParallel, ModeParallelUnseq}

// newTestPool returns a pool wide enough to exercise the parallel
// code paths even on single-core test machines.
func newTestPool(t *testing.T) *workerpool.Pool {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	return pool
}

// testData is a deterministic unsorted dataset large enough to clear
// the inline-sort thresholds of the parallel strategies.
func testData(n int) []uint32 {
	data := make([]uint32, n)
	Fill(data, 7)
	return data
}

func TestSortModeEmpty(t *testing.T) {
	pool := newTestPool(t)
	for _, mode := range allModes {
		var empty []uint32
		SortMode(mode, pool, empty)
		if len(empty) != 0 {
			t.Errorf("%v: sort modified empty slice", mode)
		}
	}
}

func TestSortModeSingle(t *testing.T) {
	pool := newTestPool(t)
	for _, mode := range allModes {
		data := []uint32{42}
		SortMode(mode, pool, data)
		if data[0] != 42 {
			t.Errorf("%v: sort([42]) = %v, want [42]", mode, data)
		}
	}
}

func TestSortModeRandom(t *testing.T) {
	const n = 50000
	want := testData(n)
	slices.Sort(want)

	pool := newTestPool(t)
	for _, mode := range allModes {
		data := testData(n)
		SortMode(mode, pool, data)
		if !slices.IsSorted(data) {
			t.Errorf("%v: result not sorted", mode)
		}
		if !slices.Equal(data, want) {
			t.Errorf("%v: result differs from reference permutation", mode)
		}
	}
}

func TestSortModeOutputEquivalence(t *testing.T) {
	const n = 20000
	pool := newTestPool(t)

	var results [][]uint32
	for _, mode := range allModes {
		data := testData(n)
		SortMode(mode, pool, data)
		results = append(results, data)
	}
	for i := 1; i < len(results); i++ {
		if !slices.Equal(results[0], results[i]) {
			t.Errorf("%v and %v produced different output", allModes[0], allModes[i])
		}
	}
}

func TestSortModeAlreadySorted(t *testing.T) {
	const n = 20000
	sorted := testData(n)
	slices.Sort(sorted)

	pool := newTestPool(t)
	for _, mode := range allModes {
		data := slices.Clone(sorted)
		SortMode(mode, pool, data)
		if !slices.Equal(data, sorted) {
			t.Errorf("%v: sorting sorted input changed it", mode)
		}
	}
}

func TestSortModeReverse(t *testing.T) {
	const n = 20000
	pool := newTestPool(t)
	for _, mode := range allModes {
		data := make([]uint32, n)
		for i := range data {
			data[i] = uint32(n - i)
		}
		SortMode(mode, pool, data)
		if !slices.IsSorted(data) {
			t.Errorf("%v: reverse input not sorted", mode)
		}
	}
}

func TestSortModeAllSame(t *testing.T) {
	const n = 20000
	pool := newTestPool(t)
	for _, mode := range allModes {
		data := make([]uint32, n)
		for i := range data {
			data[i] = 0xDEADBEEF
		}
		SortMode(mode, pool, data)
		for i := range data {
			if data[i] != 0xDEADBEEF {
				t.Fatalf("%v: element %d corrupted to %#x", mode, i, data[i])
			}
		}
	}
}

func TestSortModeIdempotent(t *testing.T) {
	const n = 20000
	pool := newTestPool(t)
	for _, mode := range allModes {
		once := testData(n)
		SortMode(mode, pool, once)

		twice := testData(n)
		SortMode(mode, pool, twice)
		SortMode(mode, pool, twice)

		if !slices.Equal(once, twice) {
			t.Errorf("%v: re-sorting changed the result", mode)
		}
	}
}

func TestSortModeNilPool(t *testing.T) {
	const n = 20000
	for _, mode := range allModes {
		data := testData(n)
		SortMode(mode, nil, data)
		if !slices.IsSorted(data) {
			t.Errorf("%v: nil pool fallback not sorted", mode)
		}
	}
}

func TestSortModeChecksumPreserved(t *testing.T) {
	const n = 50000
	pool := newTestPool(t)
	for _, mode := range allModes {
		data := testData(n)
		before := Checksum(data)
		SortMode(mode, pool, data)
		if after := Checksum(data); after != before {
			t.Errorf("%v: checksum changed from %#x to %#x", mode, before, after)
		}
	}
}

func TestSortModeUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("sorting with an unknown mode did not panic")
		}
	}()
	SortMode(Mode(99), nil, []uint32{3, 1, 2})
}
