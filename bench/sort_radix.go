// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"slices"

	"github.com/ajroetker/go-membench/workerpool"
)

const (
	radixBits    = 8
	radixBuckets = 1 << radixBits
	radixMask    = radixBuckets - 1
)

// sortRadixParallel sorts data with a least-significant-digit radix
// sort, one pass per byte. Each pass computes per-chunk digit
// histograms in parallel, turns them into per-chunk scatter offsets
// with an exclusive prefix sum, and scatters in parallel: every chunk
// writes a disjoint set of destination slots, so a pass runs with no
// ordering constraints between workers at all.
//
// The prefix sum walks digit-major, chunk-minor: all of digit d's slots
// across every chunk precede digit d+1's, and within a digit chunks
// keep their index order. That keeps each pass stable, which LSD radix
// sort requires for correctness.
func sortRadixParallel(pool *workerpool.Pool, data []uint32) {
	n := len(data)
	if n < minParallelSort || pool == nil || pool.NumWorkers() == 1 {
		slices.Sort(data)
		return
	}

	workers := pool.NumWorkers()
	chunk := (n + workers - 1) / workers
	chunks := (n + chunk - 1) / chunk

	scratch := make([]uint32, n)
	counts := make([][radixBuckets]int, chunks)

	src, dst := data, scratch
	for shift := 0; shift < 32; shift += radixBits {
		pool.ParallelForChunks(n, chunk, func(start, end int) {
			c := start / chunk
			counts[c] = [radixBuckets]int{}
			for _, v := range src[start:end] {
				counts[c][int(v>>shift)&radixMask]++
			}
		})

		offset := 0
		for d := 0; d < radixBuckets; d++ {
			for c := 0; c < chunks; c++ {
				cnt := counts[c][d]
				counts[c][d] = offset
				offset += cnt
			}
		}

		pool.ParallelForChunks(n, chunk, func(start, end int) {
			// Local copy: the scatter advances its own offsets.
			off := counts[start/chunk]
			for _, v := range src[start:end] {
				d := int(v>>shift) & radixMask
				dst[off[d]] = v
				off[d]++
			}
		})

		src, dst = dst, src
	}
	// Four byte passes swap src and dst an even number of times, so
	// the sorted result already sits in data.
}
