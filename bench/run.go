// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/katalvlaran/matperf/multiply"
)

// Float results must agree with naive within this relative tolerance.
const verifyRTol = 1e-4

// Run times cfg.Repeat products with the selected strategy on seeded operands.
// ctx is consulted before each repeat; a product in flight always finishes.
//
// Errors:
//   - ErrInvalidConfig from Validate.
//   - Any error of multiply.Run (wrapped with the strategy name).
//   - ErrVerification when cfg.Verify is set and the result differs from naive.
//   - ctx.Err() when cancelled between repeats.
func Run(ctx context.Context, cfg Config, opts ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	o := gatherOptions(opts...)

	switch cfg.Element {
	case Int32:
		return runTyped[int32](ctx, cfg, o)
	case Int64:
		return runTyped[int64](ctx, cfg, o)
	case Float32:
		return runTyped[float32](ctx, cfg, o)
	default:
		return runTyped[float64](ctx, cfg, o)
	}
}

func runTyped[T matrix.Element](ctx context.Context, cfg Config, o options) (Report, error) {
	s := cfg.SelectedStrategy()
	log := o.logger.WithShape(cfg.M, cfg.K, cfg.N)

	a, b, err := makeOperands[T](cfg)
	if err != nil {
		return Report{}, err
	}
	mopts := append(cfg.multiplyOptions(), o.forward()...)

	durations, c, err := measure(ctx, s, a, b, cfg.Repeat, mopts)
	if err != nil {
		log.LogRun(ctx, s.String(), cfg.Repeat, 0, err)
		return Report{}, err
	}
	rep := newReport(cfg, s, durations)

	if cfg.Verify {
		want := c
		if s != multiply.StrategyNaive {
			if want, err = multiply.Naive(a, b, mopts...); err != nil {
				log.LogRun(ctx, s.String(), cfg.Repeat, rep.Min, err)
				return rep, err
			}
		}
		if err = verify(cfg.Element, s, c, want); err != nil {
			log.LogRun(ctx, s.String(), cfg.Repeat, rep.Min, err)
			return rep, err
		}
		rep.Verified = true
	}
	log.LogRun(ctx, s.String(), cfg.Repeat, rep.Min, nil)

	return rep, nil
}

// makeOperands builds A (M×K) then B (K×N) from one generator seeded with cfg.Seed.
func makeOperands[T matrix.Element](cfg Config) (a, b *matrix.Dense[T], err error) {
	vr := rangeFor(cfg.Element, cfg.Range)
	rng := NewRand(cfg.Seed)
	if a, err = matrix.NewDense[T](cfg.M, cfg.K); err != nil {
		return nil, nil, err
	}
	if err = Populate(a, rng, vr); err != nil {
		return nil, nil, err
	}
	if b, err = matrix.NewDense[T](cfg.K, cfg.N); err != nil {
		return nil, nil, err
	}
	if err = Populate(b, rng, vr); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// measure runs s repeat times and returns each wall time and the last product.
func measure[T matrix.Element](ctx context.Context, s multiply.Strategy, a, b *matrix.Dense[T], repeat int, opts []multiply.Option) ([]time.Duration, *matrix.Dense[T], error) {
	durations := make([]time.Duration, 0, repeat)
	var c *matrix.Dense[T]
	for r := 0; r < repeat; r++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		start := time.Now()
		res, err := multiply.Run(s, a, b, opts...)
		elapsed := time.Since(start)
		if err != nil {
			return nil, nil, err
		}
		durations = append(durations, elapsed)
		c = res
	}

	return durations, c, nil
}

// verify compares exactly for integer kinds and within verifyRTol for floats.
func verify[T matrix.Element](kind ElementKind, s multiply.Strategy, got, want *matrix.Dense[T]) error {
	var ok bool
	var err error
	if kind.IsFloat() {
		ok, err = matrix.AllClose(got, want, verifyRTol, 0)
	} else {
		ok, err = matrix.Equal(got, want)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	if !ok {
		diff, _ := matrix.MaxAbsDiff(got, want)
		return fmt.Errorf("%s: %w (max |Δ| = %g)", s, ErrVerification, diff)
	}

	return nil
}
