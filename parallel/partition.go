// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"runtime"
)

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool { return r.End <= r.Start }

// String renders the range as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Workers resolves a requested worker count.
// requested > 0 is returned unchanged; otherwise the hardware parallelism
// (runtime.NumCPU) is used. The result is never below 1.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}

	return 1
}

// Partition divides [0, n) into N = min(max(workers, 1), max(n, 1)) blocks.
// Block t covers [t*n/N, (t+1)*n/N) with integer division, so sizes differ by
// at most one and no block is empty unless n is 0, which yields [{0, 0}].
// A negative n is treated as 0.
func Partition(n, workers int) []Range {
	if n < 0 {
		n = 0
	}
	workers = min(max(workers, 1), max(n, 1))
	out := make([]Range, workers)
	for t := 0; t < workers; t++ {
		out[t] = Range{
			Start: t * n / workers,
			End:   (t + 1) * n / workers,
		}
	}

	return out
}
