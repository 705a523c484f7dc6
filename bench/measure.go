// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"io"
	"time"
)

// timePhase announces one pipeline phase, runs its action, and returns
// the action's result paired with the measured wall-clock duration.
// The label is printed before the clock starts; nothing is printed
// after it stops. Whether the duration gets reported is the caller's
// decision, so a phase that failed part-way never reports a time for
// work it did not finish.
func timePhase[T any](out io.Writer, label string, action func() (T, error)) (T, time.Duration, error) {
	fmt.Fprintf(out, "%s... ", label)
	start := time.Now()
	v, err := action()
	return v, time.Since(start), err
}

// timeAction is timePhase for actions that produce no value.
func timeAction(out io.Writer, label string, action func() error) (time.Duration, error) {
	_, d, err := timePhase(out, label, func() (struct{}, error) {
		return struct{}{}, action()
	})
	return d, err
}

// reportDone emits the outcome line for a phase with no value of its
// own.
func reportDone(out io.Writer, d time.Duration) {
	fmt.Fprintf(out, "Done. (%d ms)\n", d.Milliseconds())
}
