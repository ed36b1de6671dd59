// SPDX-License-Identifier: MIT

package multiply

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/katalvlaran/matperf/parallel"
	"github.com/katalvlaran/matperf/simd"
)

// Multiply computes a·b with the strategy selected by cfg.
func Multiply[T matrix.Element](cfg Config, a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(cfg.Strategy(), a, b, opts...)
}

// Run computes a·b with strategy s and returns a new m×n matrix.
// Neither operand is modified.
//
// Stages:
//   - Stage 1: validate nil, inner dimension and remainder policy, in that order.
//   - Stage 2: allocate C and, for transposed strategies, materialize Bᵀ.
//   - Stage 3: partition rows, run the kernel per range and wait for all ranges.
//
// Errors (wrapped as "<strategy>: ..."):
//   - ErrUnknownStrategy, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     ErrVectorWidth, matrix.ErrTooLarge.
func Run[T matrix.Element](s Strategy, a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	if s == StrategyCacheOptimized && o.blocking {
		s = StrategyBlocked
	}

	start := time.Now()
	c, err := execute(s, a, b, &o)
	d := time.Since(start)

	o.observer.OnComplete(s, d, err)
	m, k, n := shapeOf(a, b)
	o.logger.LogMultiply(context.Background(), s.String(), m, k, n, d, err)

	return c, err
}

// shapeOf reports (m, k, n) for logging; missing operands report zeros.
func shapeOf[T matrix.Element](a, b *matrix.Dense[T]) (m, k, n int) {
	if a != nil {
		m, k = a.Shape()
	}
	if b != nil {
		n = b.Cols()
	}

	return m, k, n
}

// validate runs the operand gates. Nothing has been allocated when it fails.
func validate[T matrix.Element](s Strategy, a, b *matrix.Dense[T], o *Options) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return strategyErrorf(s, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return strategyErrorf(s, err)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return strategyErrorf(s, err)
	}
	if s.vectorized() && o.remainder == RemainderReject && b.Cols()%simd.Lanes != 0 {
		return strategyErrorf(s, fmt.Errorf("%d columns, width %d: %w", b.Cols(), simd.Lanes, ErrVectorWidth))
	}

	return nil
}

func execute[T matrix.Element](s Strategy, a, b *matrix.Dense[T], o *Options) (*matrix.Dense[T], error) {
	if err := validate(s, a, b, o); err != nil {
		return nil, err
	}

	m, k := a.Shape()
	n := b.Cols()
	c, err := matrix.NewDense[T](m, n)
	if err != nil {
		return nil, strategyErrorf(s, err)
	}

	rhs := b.Data()
	if s.transposed() {
		bt, err := matrix.Transpose(b)
		if err != nil {
			return nil, strategyErrorf(s, err)
		}
		o.observer.OnTranspose(b.Rows(), b.Cols())
		rhs = bt.Data()
	}

	ranges := []parallel.Range{{Start: 0, End: m}}
	if s.threaded() {
		ranges = parallel.Partition(m, parallel.Workers(o.workers))
	}
	o.observer.OnDispatch(s, ranges)
	o.logger.LogDispatch(context.Background(), s.String(), len(ranges), liveRanges(ranges))

	run := selectKernel(s, a.Data(), rhs, c.Data(), k, n, o.blockSize)
	err = parallel.For(ranges, func(rg parallel.Range) error {
		run(rg)
		return nil
	})
	if err != nil {
		return nil, strategyErrorf(s, err)
	}

	return c, nil
}

func liveRanges(ranges []parallel.Range) int {
	var n int
	for _, r := range ranges {
		if !r.Empty() {
			n++
		}
	}

	return n
}

// ---------- Per-strategy entry points ----------

// Naive computes a·b with the i→j→k triple loop. It is the reference result.
func Naive[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyNaive, a, b, opts...)
}

// Multithreaded splits the rows of a into WithWorkers blocks and runs the
// naive kernel on each block concurrently.
func Multithreaded[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyMultithreaded, a, b, opts...)
}

// Vectorized computes 8 output columns per lane operation.
func Vectorized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyVectorized, a, b, opts...)
}

// CacheOptimized transposes b once and takes contiguous dot products.
// With WithBlocking(true) it runs BlockedCacheOptimized instead.
func CacheOptimized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyCacheOptimized, a, b, opts...)
}

// BlockedCacheOptimized is CacheOptimized over square tiles of edge WithBlockSize.
func BlockedCacheOptimized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyBlocked, a, b, opts...)
}

// MultithreadedVectorized runs the vectorized kernel on concurrent row blocks.
func MultithreadedVectorized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyMultithreadedVectorized, a, b, opts...)
}

// VectorizedCacheOptimized gathers lanes from 8 rows of bᵀ.
func VectorizedCacheOptimized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyVectorizedCacheOptimized, a, b, opts...)
}

// MultithreadedCacheOptimized runs the transposed kernel on concurrent row blocks.
func MultithreadedCacheOptimized[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyMultithreadedCacheOptimized, a, b, opts...)
}

// Maximum combines threading, lanes and the transposed operand.
func Maximum[T matrix.Element](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return Run(StrategyMaximum, a, b, opts...)
}
