// SPDX-License-Identifier: MIT

// Package multiply implements a family of dense matrix-product strategies
// that all compute the same result C = A·B for C(i,j) = Σ_k A(i,k)·B(k,j):
//
//	naive    i→j→k triple loop, the ground truth
//	mt       row blocks computed concurrently
//	simd     8-column lane groups, scalar tail
//	co       Bᵀ materialized once, contiguous dot products
//	blocked  co with square tiles of edge BlockSize
//	mt+simd, simd+co, mt+co, max (mt+simd+co)
//
// Every strategy validates its operands synchronously before any work:
// nil operand, then inner dimension, then the remainder policy. A rejected
// call never dispatches a worker or materializes a transpose.
//
// Arithmetic happens in the element type itself. Integer products wrap
// modulo 2ⁿ and floating-point sums may differ from naive by rounding only.
//
// Selection:
//
//	cfg := multiply.Config{Multithreaded: true, CacheOptimized: true}
//	c, err := multiply.Multiply(cfg, a, b, multiply.WithWorkers(4))
package multiply
