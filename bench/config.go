// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/matperf/multiply"
)

// Defaults for DefaultConfig.
const (
	DefaultSize   = 256
	DefaultRepeat = 3
	DefaultSeed   = 42
)

// Config describes one benchmark: the product (M×K)·(K×N) of Element values
// computed Repeat times with the selected strategy.
type Config struct {
	M, K, N int
	Element ElementKind

	// Select picks the strategy from the three switches.
	Select multiply.Config
	// Strategy, when non-nil, overrides Select (the only way to pick "blocked").
	Strategy *multiply.Strategy

	// Workers is the row-block count of threaded strategies; 0 means NumCPU.
	Workers int
	// BlockSize is the tile edge of the blocked strategy; 0 means the default.
	BlockSize int
	Remainder multiply.RemainderPolicy

	Repeat int
	Seed   uint64
	// Verify compares each result with the naive product.
	Verify bool
	// Range bounds the generated values; nil selects DefaultIntRange or
	// DefaultFloatRange by Element. &ValueRange{} is the constant range [0, 0].
	Range *ValueRange
}

// DefaultConfig returns a verified 256³ float32 run of the naive strategy.
func DefaultConfig() Config {
	return Config{
		M:       DefaultSize,
		K:       DefaultSize,
		N:       DefaultSize,
		Element: Float32,
		Repeat:  DefaultRepeat,
		Seed:    DefaultSeed,
		Verify:  true,
	}
}

// SelectedStrategy returns the override when set, else Select.Strategy().
func (c Config) SelectedStrategy() multiply.Strategy {
	if c.Strategy != nil {
		return *c.Strategy
	}

	return c.Select.Strategy()
}

// WithStrategy returns a copy of c that runs s.
func (c Config) WithStrategy(s multiply.Strategy) Config {
	c.Strategy = &s

	return c
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.M < 0 || c.K < 0 || c.N < 0:
		return fmt.Errorf("%w: dimensions %dx%dx%d must be >= 0", ErrInvalidConfig, c.M, c.K, c.N)
	case int(c.Element) >= len(elementNames):
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrUnknownElement)
	case c.Strategy != nil && !c.Strategy.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidConfig, multiply.ErrUnknownStrategy)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must be >= 0", ErrInvalidConfig, c.Workers)
	case c.BlockSize < 0:
		return fmt.Errorf("%w: block size %d must be >= 0", ErrInvalidConfig, c.BlockSize)
	case c.Remainder != multiply.RemainderScalar && c.Remainder != multiply.RemainderReject:
		return fmt.Errorf("%w: remainder %s", ErrInvalidConfig, c.Remainder)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat %d must be >= 1", ErrInvalidConfig, c.Repeat)
	}
	if c.Range != nil {
		if err := c.Range.validateFor(c.Element); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// multiplyOptions translates c into strategy options.
func (c Config) multiplyOptions() []multiply.Option {
	opts := []multiply.Option{
		multiply.WithWorkers(c.Workers),
		multiply.WithRemainder(c.Remainder),
	}
	if c.BlockSize > 0 {
		opts = append(opts, multiply.WithBlockSize(c.BlockSize))
	}

	return opts
}
