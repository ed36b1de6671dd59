// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"strings"
)

// Strategy names one multiplication kernel.
type Strategy uint8

const (
	StrategyNaive Strategy = iota
	StrategyMultithreaded
	StrategyVectorized
	StrategyCacheOptimized
	StrategyBlocked
	StrategyMultithreadedVectorized
	StrategyVectorizedCacheOptimized
	StrategyMultithreadedCacheOptimized
	StrategyMaximum

	numStrategies = iota
)

var strategyNames = [numStrategies]string{
	StrategyNaive:                       "naive",
	StrategyMultithreaded:               "mt",
	StrategyVectorized:                  "simd",
	StrategyCacheOptimized:              "co",
	StrategyBlocked:                     "blocked",
	StrategyMultithreadedVectorized:     "mt+simd",
	StrategyVectorizedCacheOptimized:    "simd+co",
	StrategyMultithreadedCacheOptimized: "mt+co",
	StrategyMaximum:                     "max",
}

// String returns the short name ("naive", "mt+co", ...).
func (s Strategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}

	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool { return int(s) < numStrategies }

// Strategies returns every known strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, numStrategies)
	for i := range out {
		out[i] = Strategy(i)
	}

	return out
}

// ParseStrategy maps a short name back to its Strategy.
// Matching ignores case and surrounding space; "mt+simd+co" is accepted for max.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "mt+simd+co" {
		return StrategyMaximum, nil
	}
	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// threaded reports whether s partitions rows across workers.
func (s Strategy) threaded() bool {
	switch s {
	case StrategyMultithreaded, StrategyMultithreadedVectorized,
		StrategyMultithreadedCacheOptimized, StrategyMaximum:
		return true
	}

	return false
}

// vectorized reports whether s uses 8-lane column groups.
func (s Strategy) vectorized() bool {
	switch s {
	case StrategyVectorized, StrategyMultithreadedVectorized,
		StrategyVectorizedCacheOptimized, StrategyMaximum:
		return true
	}

	return false
}

// transposed reports whether s materializes Bᵀ.
func (s Strategy) transposed() bool {
	switch s {
	case StrategyCacheOptimized, StrategyBlocked, StrategyVectorizedCacheOptimized,
		StrategyMultithreadedCacheOptimized, StrategyMaximum:
		return true
	}

	return false
}
