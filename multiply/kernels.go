// SPDX-License-Identifier: MIT

// Package multiply: row-range kernels.
//
// Every kernel writes rows [rg.Start, rg.End) of the m×n output c from the
// flat row-major operands. a is m×k. b is k×n, or bt is its n×k transpose.
// Kernels touch no other rows of c, so disjoint ranges may run concurrently.
// Operands have been validated; kernels never return errors.

package multiply

import (
	"github.com/katalvlaran/matperf/matrix"
	"github.com/katalvlaran/matperf/parallel"
	"github.com/katalvlaran/matperf/simd"
)

// kernel computes one row range of the product.
type kernel func(rg parallel.Range)

// naiveRows is the i→j→k triple loop.
func naiveRows[T matrix.Element](a, b, c []T, k, n int, rg parallel.Range) {
	var i, j, p int
	var sum T
	for i = rg.Start; i < rg.End; i++ {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : i*n+n]
		for j = 0; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += aRow[p] * b[p*n+j]
			}
			cRow[j] = sum
		}
	}
}

// vectorRows computes full 8-column groups with lane operations:
// acc += Broadcast(A(i,p)) * B[p, j:j+8] for p in [0,k).
// The trailing n%8 columns use the scalar loop.
func vectorRows[T matrix.Element](a, b, c []T, k, n int, rg parallel.Range) {
	full := n - n%simd.Lanes
	var i, j, p int
	var sum T
	for i = rg.Start; i < rg.End; i++ {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : i*n+n]
		for j = 0; j < full; j += simd.Lanes {
			acc := simd.Zero[T]()
			for p = 0; p < k; p++ {
				acc = simd.MulAdd(acc, simd.Broadcast(aRow[p]), simd.Load(b[p*n+j:]))
			}
			simd.Store(acc, cRow[j:])
		}
		for j = full; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += aRow[p] * b[p*n+j]
			}
			cRow[j] = sum
		}
	}
}

// dot returns Σ x[p]*y[p] for p in [0, len(x)).
func dot[T matrix.Element](x, y []T) T {
	y = y[:len(x)]
	var sum T
	for p := range x {
		sum += x[p] * y[p]
	}

	return sum
}

// transposedRows walks row i of A and row j of Bᵀ, both contiguous.
func transposedRows[T matrix.Element](a, bt, c []T, k, n int, rg parallel.Range) {
	var i, j int
	for i = rg.Start; i < rg.End; i++ {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : i*n+n]
		for j = 0; j < n; j++ {
			cRow[j] = dot(aRow, bt[j*k:j*k+k])
		}
	}
}

// vectorTransposedRows fills lane l of a group from row j+l of Bᵀ at column p,
// so one group reads 8 sequential streams of Bᵀ.
func vectorTransposedRows[T matrix.Element](a, bt, c []T, k, n int, rg parallel.Range) {
	full := n - n%simd.Lanes
	var i, j, p int
	for i = rg.Start; i < rg.End; i++ {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : i*n+n]
		for j = 0; j < full; j += simd.Lanes {
			acc := simd.Zero[T]()
			base := j * k
			for p = 0; p < k; p++ {
				acc = simd.MulAdd(acc, simd.Broadcast(aRow[p]), simd.Gather(bt, base+p, k))
			}
			simd.Store(acc, cRow[j:])
		}
		for j = full; j < n; j++ {
			cRow[j] = dot(aRow, bt[j*k:j*k+k])
		}
	}
}

// blockedRows tiles the (i, j, p) space into cubes of edge bs, clipped at the
// range and matrix edges. Tiles along p run in ascending order, so each C(i,j)
// accumulates its terms in the same order as naiveRows. c must start zeroed.
func blockedRows[T matrix.Element](a, bt, c []T, k, n, bs int, rg parallel.Range) {
	var ii, jj, pp, i, j, iEnd, jEnd, pEnd int
	var sum T
	for ii = rg.Start; ii < rg.End; ii += bs {
		iEnd = min(ii+bs, rg.End)
		for jj = 0; jj < n; jj += bs {
			jEnd = min(jj+bs, n)
			for pp = 0; pp < k; pp += bs {
				pEnd = min(pp+bs, k)
				for i = ii; i < iEnd; i++ {
					aTile := a[i*k+pp : i*k+pEnd]
					for j = jj; j < jEnd; j++ {
						sum = c[i*n+j]
						btTile := bt[j*k+pp : j*k+pEnd]
						for p := range aTile {
							sum += aTile[p] * btTile[p]
						}
						c[i*n+j] = sum
					}
				}
			}
		}
	}
}

// selectKernel binds the kernel of s to its operands.
// b is B for direct strategies and Bᵀ for transposed ones.
func selectKernel[T matrix.Element](s Strategy, a, b, c []T, k, n, bs int) kernel {
	switch s {
	case StrategyNaive, StrategyMultithreaded:
		return func(rg parallel.Range) { naiveRows(a, b, c, k, n, rg) }
	case StrategyVectorized, StrategyMultithreadedVectorized:
		return func(rg parallel.Range) { vectorRows(a, b, c, k, n, rg) }
	case StrategyCacheOptimized, StrategyMultithreadedCacheOptimized:
		return func(rg parallel.Range) { transposedRows(a, b, c, k, n, rg) }
	case StrategyBlocked:
		return func(rg parallel.Range) { blockedRows(a, b, c, k, n, bs, rg) }
	case StrategyVectorizedCacheOptimized, StrategyMaximum:
		return func(rg parallel.Range) { vectorTransposedRows(a, b, c, k, n, rg) }
	default:
		return nil
	}
}
