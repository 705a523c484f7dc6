// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

// Checksum returns the wraparound sum of data. Addition is commutative
// and associative under modular arithmetic, so the result is invariant
// under any permutation of the input: a pre/post-sort mismatch means
// values were lost, duplicated or corrupted, never merely reordered.
func Checksum(data []uint32) uint32 {
	var sum uint32
	for _, v := range data {
		sum += v
	}
	return sum
}
