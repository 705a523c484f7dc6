// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostInfo summarizes the hardware the parallel strategies can lean on:
// scheduler width plus the vector extensions whose load/store lanes the
// unsequenced mode's radix passes stress hardest.
func HostInfo() string {
	return fmt.Sprintf("cpu: %s/%s, %d hardware threads, avx2=%v avx512=%v neon=%v",
		runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0),
		cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.ARM64.HasASIMD)
}
