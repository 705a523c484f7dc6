// Copyright 2025 go-membench Authors
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

// Package bench implements the benchmark execution engine: it fills a
// large in-memory array of 32-bit words from a seeded PRNG, sorts it
// under an operator-selected concurrency strategy, and uses a
// wraparound checksum to detect data corruption across the sort.
//
// # Pipeline
//
// A run executes a fixed sequence of announced, individually timed
// phases:
//
//	Allocating -> Generating -> Hashing -> Sorting (xN) -> Rehashing -> Checking
//
// followed by the total wall-clock time. Phases never overlap and each
// is a precondition of the next. The dataset is owned by the pipeline
// for its whole duration and discarded at the end.
//
// # Concurrency modes
//
// The sort phase dispatches over three strategies:
//
//   - ModeSequential: single goroutine, deterministic execution order.
//   - ModeParallel: chunked merge sort across a persistent worker pool.
//   - ModeParallelUnseq: parallel LSD radix sort; each pass scatters
//     with no cross-worker ordering constraints, the weakest guarantee
//     of the three.
//
// All three produce the identical non-descending permutation; they are
// expected to differ in wall-clock time and, on unstable hardware, in
// crash behavior. That difference is the point of the tool.
//
// # Checksum oracle
//
// Sorting only permutes the array, and a wraparound sum is invariant
// under permutation. A pre/post-sort checksum mismatch therefore means
// values were lost, duplicated or corrupted. Mismatches are reported
// and recorded but never abort the run: the tool exists to surface rare
// instability for human triage, not to assert invariants.
package bench
