// SPDX-License-Identifier: MIT

package multiply

import "strings"

// Config selects a strategy from three independent switches.
// It is a plain value; copies never affect each other.
type Config struct {
	Multithreaded  bool
	Vectorized     bool
	CacheOptimized bool
}

// Strategy maps the switch triple to its strategy. Every combination has one.
func (c Config) Strategy() Strategy {
	switch {
	case !c.Multithreaded && !c.Vectorized && !c.CacheOptimized:
		return StrategyNaive
	case c.Multithreaded && !c.Vectorized && !c.CacheOptimized:
		return StrategyMultithreaded
	case !c.Multithreaded && c.Vectorized && !c.CacheOptimized:
		return StrategyVectorized
	case !c.Multithreaded && !c.Vectorized && c.CacheOptimized:
		return StrategyCacheOptimized
	case c.Multithreaded && c.Vectorized && !c.CacheOptimized:
		return StrategyMultithreadedVectorized
	case !c.Multithreaded && c.Vectorized && c.CacheOptimized:
		return StrategyVectorizedCacheOptimized
	case c.Multithreaded && !c.Vectorized && c.CacheOptimized:
		return StrategyMultithreadedCacheOptimized
	default:
		return StrategyMaximum
	}
}

// ConfigOf returns the switch triple that selects s.
// StrategyBlocked has no triple of its own and maps to {CacheOptimized}.
func ConfigOf(s Strategy) Config {
	return Config{
		Multithreaded:  s.threaded(),
		Vectorized:     s.vectorized(),
		CacheOptimized: s.transposed(),
	}
}

// String lists the enabled switches ("mt+co"), or "none".
func (c Config) String() string {
	parts := make([]string, 0, 3)
	if c.Multithreaded {
		parts = append(parts, "mt")
	}
	if c.Vectorized {
		parts = append(parts, "simd")
	}
	if c.CacheOptimized {
		parts = append(parts, "co")
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "+")
}
