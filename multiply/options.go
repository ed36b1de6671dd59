// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for every strategy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that fills in defaults.
package multiply

import (
	"fmt"

	"github.com/katalvlaran/matperf/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects hardware parallelism (runtime.NumCPU).
	DefaultWorkers = 0

	// DefaultBlockSize is the tile edge used by the blocked kernel.
	DefaultBlockSize = 64

	// DefaultRemainder computes trailing columns with the scalar kernel.
	DefaultRemainder = RemainderScalar
)

// RemainderPolicy decides what vectorized strategies do with the trailing
// cols%8 output columns.
type RemainderPolicy uint8

const (
	// RemainderScalar vectorizes full 8-column groups and computes the tail
	// with the scalar kernel.
	RemainderScalar RemainderPolicy = iota

	// RemainderReject fails with ErrVectorWidth unless cols%8 == 0.
	RemainderReject
)

// String returns "scalar" or "reject".
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderScalar:
		return "scalar"
	case RemainderReject:
		return "reject"
	default:
		return fmt.Sprintf("remainder(%d)", uint8(p))
	}
}

// ParseRemainderPolicy maps "scalar" or "reject" to a policy.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch s {
	case "", "scalar":
		return RemainderScalar, nil
	case "reject":
		return RemainderReject, nil
	default:
		return 0, fmt.Errorf("multiply: unknown remainder policy %q", s)
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersNegative = "multiply: WithWorkers: n must be >= 0"
	panicBlockSize       = "multiply: WithBlockSize: n must be > 0"
	panicRemainder       = "multiply: WithRemainder: unknown policy"
	panicObserverNil     = "multiply: WithObserver: observer must not be nil"
	panicLoggerNil       = "multiply: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers   int
	blockSize int
	remainder RemainderPolicy
	blocking  bool
	observer  Observer
	logger    *logging.Logger
}

// ---------- Constructors (WithX) ----------

// WithWorkers sets the number of row blocks for threaded strategies.
// 0 selects runtime.NumCPU. The block count is capped at the rows of a.
// Sequential strategies ignore it.
//
// Errors:
//   - Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithBlockSize sets the tile edge of the blocked kernel.
//
// Errors:
//   - Panics when n <= 0.
func WithBlockSize(n int) Option {
	if n <= 0 {
		panic(panicBlockSize)
	}

	return func(o *Options) { o.blockSize = n }
}

// WithRemainder selects the trailing-column policy of vectorized strategies.
func WithRemainder(p RemainderPolicy) Option {
	if p != RemainderScalar && p != RemainderReject {
		panic(panicRemainder)
	}

	return func(o *Options) { o.remainder = p }
}

// WithBlocking upgrades StrategyCacheOptimized to StrategyBlocked when on.
// Other strategies are unaffected.
func WithBlocking(on bool) Option {
	return func(o *Options) { o.blocking = on }
}

// WithObserver installs an event observer.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// WithLogger installs a structured logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

var discardLogger = logging.NoopLogger()

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		blockSize: DefaultBlockSize,
		remainder: DefaultRemainder,
		observer:  NoopObserver{},
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger
	}

	return o
}
