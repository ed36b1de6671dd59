// SPDX-License-Identifier: MIT

package parallel

import "golang.org/x/sync/errgroup"

// For runs fn once per non-empty range, each on its own goroutine, and
// blocks until all of them have returned. It returns the first non-nil
// error; the remaining workers still run to completion.
//
// A single non-empty range runs on the calling goroutine.
func For(ranges []Range, fn func(r Range) error) error {
	var live, last int
	for i, r := range ranges {
		if !r.Empty() {
			live++
			last = i
		}
	}
	switch live {
	case 0:
		return nil
	case 1:
		return fn(ranges[last])
	}

	var g errgroup.Group
	for _, r := range ranges {
		if r.Empty() {
			continue
		}
		g.Go(func() error {
			return fn(r)
		})
	}

	return g.Wait()
}
