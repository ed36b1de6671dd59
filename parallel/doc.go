// SPDX-License-Identifier: MIT

// Package parallel splits an index range into contiguous, disjoint blocks and
// runs one goroutine per block with a join barrier.
//
// Partition uses floor-division boundaries: block t of N covers
// [t·n/N, (t+1)·n/N). Blocks never overlap and their union is exactly [0, n),
// so workers that only write inside their own block need no locks on the
// shared output.
//
// For is a scoped parallel-for: it starts the workers, waits for every one of
// them, and only then returns. Writes made by a worker happen-before For
// returns. There is no persistent pool, no cancellation and no timeout.
package parallel
