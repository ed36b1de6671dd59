// SPDX-License-Identifier: MIT

package multiply

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/matperf/parallel"
)

// Observer receives events from a multiplication.
// Implement this interface to integrate with a metrics system.
//
// Callbacks run on the goroutine that called the strategy, never on a worker.
// One Observer may be shared by concurrent multiplications, so implementations
// must be safe for concurrent use.
type Observer interface {
	// OnTranspose is called after Bᵀ has been materialized from a rows×cols B.
	OnTranspose(rows, cols int)

	// OnDispatch is called once before work starts with the row ranges that
	// will be computed. Sequential strategies report a single range.
	OnDispatch(s Strategy, parts []parallel.Range)

	// OnComplete is called once per call, including rejected ones.
	OnComplete(s Strategy, d time.Duration, err error)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

func (NoopObserver) OnTranspose(int, int)                      {}
func (NoopObserver) OnDispatch(Strategy, []parallel.Range)     {}
func (NoopObserver) OnComplete(Strategy, time.Duration, error) {}

// BasicObserver keeps in-memory counters.
// Useful for tests and basic monitoring without external dependencies.
type BasicObserver struct {
	Multiplications atomic.Int64
	Errors          atomic.Int64
	Dispatches      atomic.Int64
	Ranges          atomic.Int64
	Transposes      atomic.Int64
	TotalNanos      atomic.Int64
}

// OnTranspose implements Observer.
func (b *BasicObserver) OnTranspose(int, int) {
	b.Transposes.Add(1)
}

// OnDispatch implements Observer. Empty ranges are not counted.
func (b *BasicObserver) OnDispatch(_ Strategy, parts []parallel.Range) {
	b.Dispatches.Add(1)
	var live int64
	for _, p := range parts {
		if !p.Empty() {
			live++
		}
	}
	b.Ranges.Add(live)
}

// OnComplete implements Observer.
func (b *BasicObserver) OnComplete(_ Strategy, d time.Duration, err error) {
	b.Multiplications.Add(1)
	b.TotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
	}
}

// Stats returns a snapshot of the counters.
func (b *BasicObserver) Stats() ObserverStats {
	return ObserverStats{
		Multiplications: b.Multiplications.Load(),
		Errors:          b.Errors.Load(),
		Dispatches:      b.Dispatches.Load(),
		Ranges:          b.Ranges.Load(),
		Transposes:      b.Transposes.Load(),
		TotalNanos:      b.TotalNanos.Load(),
	}
}

// ObserverStats is a snapshot of BasicObserver state.
type ObserverStats struct {
	Multiplications int64
	Errors          int64
	Dispatches      int64
	Ranges          int64
	Transposes      int64
	TotalNanos      int64
}

// AvgNanos returns the mean duration of a call, or 0 before the first one.
func (s ObserverStats) AvgNanos() int64 {
	if s.Multiplications == 0 {
		return 0
	}

	return s.TotalNanos / s.Multiplications
}
