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

// Command membench measures allocation, generation and sort throughput
// over a large in-memory array of 32-bit words, and checks a wraparound
// checksum across the sort to catch memory corruption or parallel-sort
// instability.
//
// Usage:
//
//	membench 268435456                          # 1 GiB, sequential sort
//	membench --mode parallel 268435456
//	membench --mode par-unseq --repeat 3 --seed 42 268435456
//
// The positional argument is the element count; pass 2684354560 for a
// 10 GiB dataset. A checksum or sortedness mismatch is reported but
// does not fail the process: the run is a smoke test whose anomalies
// are meant for human triage.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
