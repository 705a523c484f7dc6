// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-membench/workerpool"
)

// minParallelSort is the length below which the parallel strategies
// sort inline; splitting tiny arrays costs more than it saves.
const minParallelSort = 1 << 12

// SortMode sorts data in place under the selected concurrency strategy.
// Every strategy produces the same non-descending permutation; they
// differ only in how the work is scheduled, which is exactly the
// difference the benchmark exists to compare. The pool may be nil, in
// which case the parallel strategies degrade to sequential sorting.
func SortMode(mode Mode, pool *workerpool.Pool, data []uint32) {
	switch mode {
	case ModeSequential:
		slices.Sort(data)
	case ModeParallel:
		sortParallel(pool, data)
	case ModeParallelUnseq:
		sortRadixParallel(pool, data)
	default:
		panic(fmt.Sprintf("bench: no such sort mode: %d", int(mode)))
	}
}
