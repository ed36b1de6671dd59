// Package matperf is a small laboratory for dense matrix multiplication:
// one generic row-major matrix type, nine product strategies that must all
// agree with the naive triple loop, and a benchmark driver that times them.
//
// 🚀 What is inside?
//
//	matrix/     — Dense[T] storage, checked accessors, transpose, comparisons
//	simd/       — 8-lane vector batches and CPU capability detection
//	parallel/   — floor row partitioning and a join-all parallel-for
//	multiply/   — naive, mt, simd, co, blocked, mt+simd, simd+co, mt+co, max
//	bench/      — seeded operands, timing, verification, text/JSON reports
//	logging/    — slog-backed structured logger
//	cmd/matperf — command-line driver
//
// ✨ Guarantees:
//
//   - Every strategy validates before it works: nil, inner dimension, vector width.
//   - Integer products are bit-identical across strategies (wraparound arithmetic).
//   - Float products agree with naive within a relative tolerance of 1e-4.
//   - Worker goroutines never outlive the call that started them.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float32{{5, 6}, {7, 8}})
//	c, _ := multiply.Multiply(multiply.Config{Multithreaded: true, Vectorized: true}, a, b)
//
//	go install github.com/katalvlaran/matperf/cmd/matperf@latest
package matperf
