// SPDX-License-Identifier: MIT

// Package bench drives the multiply strategies: it builds seeded random
// operands, times repeated products, checks them against the naive kernel
// and renders the measurements as text, a table or JSON.
//
//	cfg := bench.DefaultConfig()
//	cfg.M, cfg.K, cfg.N = 512, 512, 512
//	cfg.Select = multiply.Config{Multithreaded: true, CacheOptimized: true}
//	rep, err := bench.Run(ctx, cfg)
//
// Compare runs every strategy on the same operands and reports the speedup of
// each over naive.
package bench
