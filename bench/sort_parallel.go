// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-membench/workerpool"
)

// sortParallel sorts data with a chunked merge sort: every pool worker
// sorts one contiguous chunk, then sorted runs are merged pairwise
// until a single run remains. Runs ping-pong between data and one
// scratch buffer, so peak extra memory is len(data) words.
func sortParallel(pool *workerpool.Pool, data []uint32) {
	n := len(data)
	if n < minParallelSort || pool == nil || pool.NumWorkers() == 1 {
		slices.Sort(data)
		return
	}

	workers := pool.NumWorkers()
	chunk := (n + workers - 1) / workers

	pool.ParallelForChunks(n, chunk, func(start, end int) {
		slices.Sort(data[start:end])
	})

	scratch := make([]uint32, n)
	src, dst := data, scratch
	for width := chunk; width < n; width *= 2 {
		var g errgroup.Group
		for lo := 0; lo < n; lo += 2 * width {
			lo := lo
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			g.Go(func() error {
				mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi])
				return nil
			})
		}
		_ = g.Wait()
		src, dst = dst, src
	}

	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// mergeRuns merges the sorted runs a and b into out.
// len(out) == len(a) + len(b).
func mergeRuns(out, a, b []uint32) {
	i, j := 0, 0
	for k := range out {
		if j >= len(b) || (i < len(a) && a[i] <= b[j]) {
			out[k] = a[i]
			i++
		} else {
			out[k] = b[j]
			j++
		}
	}
}
