// SPDX-License-Identifier: MIT

package bench

import (
	"context"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/katalvlaran/matperf/multiply"
)

// Compare runs every strategy on the same operands, naive first, and sets
// Speedup to naive.Min / strategy.Min. cfg.Select and cfg.Strategy are ignored.
// On error the reports completed so far are returned with it.
func Compare(ctx context.Context, cfg Config, opts ...Option) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	switch cfg.Element {
	case Int32:
		return compareTyped[int32](ctx, cfg, o)
	case Int64:
		return compareTyped[int64](ctx, cfg, o)
	case Float32:
		return compareTyped[float32](ctx, cfg, o)
	default:
		return compareTyped[float64](ctx, cfg, o)
	}
}

func compareTyped[T matrix.Element](ctx context.Context, cfg Config, o options) ([]Report, error) {
	a, b, err := makeOperands[T](cfg)
	if err != nil {
		return nil, err
	}
	mopts := append(cfg.multiplyOptions(), o.forward()...)

	strategies := multiply.Strategies()
	reports := make([]Report, 0, len(strategies))

	durations, ref, err := measure(ctx, multiply.StrategyNaive, a, b, cfg.Repeat, mopts)
	if err != nil {
		return nil, err
	}
	base := newReport(cfg, multiply.StrategyNaive, durations)
	base.Verified = cfg.Verify
	base.Speedup = 1
	reports = append(reports, base)
	o.logger.LogRun(ctx, base.Strategy.String(), cfg.Repeat, base.Min, nil)

	for _, s := range strategies {
		if s == multiply.StrategyNaive {
			continue
		}
		durations, c, err := measure(ctx, s, a, b, cfg.Repeat, mopts)
		if err != nil {
			o.logger.LogRun(ctx, s.String(), cfg.Repeat, 0, err)
			return reports, err
		}
		rep := newReport(cfg, s, durations)
		rep.Speedup = speedup(base.Min, rep.Min)
		if cfg.Verify {
			if err := verify(cfg.Element, s, c, ref); err != nil {
				o.logger.LogRun(ctx, s.String(), cfg.Repeat, rep.Min, err)
				return append(reports, rep), err
			}
			rep.Verified = true
		}
		o.logger.LogRun(ctx, s.String(), cfg.Repeat, rep.Min, nil)
		reports = append(reports, rep)
	}

	return reports, nil
}
