// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/matperf/bench"
	"github.com/katalvlaran/matperf/logging"
	"github.com/katalvlaran/matperf/multiply"
	"github.com/stretchr/testify/require"
)

func smallConfig(kind bench.ElementKind) bench.Config {
	cfg := bench.DefaultConfig()
	cfg.M, cfg.K, cfg.N = 13, 11, 21
	cfg.Element = kind
	cfg.Repeat = 2
	cfg.Workers = 3
	cfg.BlockSize = 5

	return cfg
}

func TestRunEveryStrategyVerifies(t *testing.T) {
	for _, kind := range []bench.ElementKind{bench.Int32, bench.Float32, bench.Int64, bench.Float64} {
		for _, s := range multiply.Strategies() {
			cfg := smallConfig(kind).WithStrategy(s)
			rep, err := bench.Run(context.Background(), cfg)
			require.NoError(t, err, "%s/%s", kind, s)
			require.True(t, rep.Verified)
			require.Equal(t, s, rep.Strategy)
			require.Equal(t, kind, rep.Element)
			require.Len(t, rep.Durations, 2)
			require.LessOrEqual(t, rep.Min, rep.Mean)
			require.LessOrEqual(t, rep.Mean, rep.Max)
			if multiply.ConfigOf(s).Multithreaded {
				require.Equal(t, 3, rep.Workers)
			} else {
				require.Equal(t, 1, rep.Workers)
			}
		}
	}
}

func TestRunSelectsFromConfig(t *testing.T) {
	cfg := smallConfig(bench.Int32)
	cfg.Select = multiply.Config{Vectorized: true, CacheOptimized: true}
	obs := &multiply.BasicObserver{}
	rep, err := bench.Run(context.Background(), cfg, bench.WithObserver(obs))
	require.NoError(t, err)
	require.Equal(t, multiply.StrategyVectorizedCacheOptimized, rep.Strategy)
	// Two timed repeats plus one naive reference.
	require.EqualValues(t, 3, obs.Stats().Multiplications)
	require.EqualValues(t, 2, obs.Stats().Transposes)
}

func TestRunPropagatesStrategyErrors(t *testing.T) {
	cfg := smallConfig(bench.Float32).WithStrategy(multiply.StrategyVectorized)
	cfg.Remainder = multiply.RemainderReject
	_, err := bench.Run(context.Background(), cfg)
	require.ErrorIs(t, err, multiply.ErrVectorWidth)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Repeat = 0
	_, err := bench.Run(context.Background(), cfg)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, smallConfig(bench.Int64))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunZeroSized(t *testing.T) {
	cfg := smallConfig(bench.Float64).WithStrategy(multiply.StrategyMaximum)
	cfg.M = 0
	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, rep.Verified)
	require.Zero(t, rep.GFLOPS)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewJSONLogger(&buf, slog.LevelInfo)
	_, err := bench.Run(context.Background(), smallConfig(bench.Int32), bench.WithLogger(l))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	require.Equal(t, "benchmark run completed", rec["msg"])
	require.Equal(t, "naive", rec["strategy"])
	require.EqualValues(t, 13, rec["m"])
}

func TestCompare(t *testing.T) {
	reports, err := bench.Compare(context.Background(), smallConfig(bench.Float32))
	require.NoError(t, err)
	require.Len(t, reports, len(multiply.Strategies()))
	require.Equal(t, multiply.StrategyNaive, reports[0].Strategy)
	require.Equal(t, 1.0, reports[0].Speedup)
	for _, r := range reports {
		require.True(t, r.Verified, r.Strategy.String())
		require.Greater(t, r.Speedup, 0.0)
	}
}

func TestCompareStopsOnError(t *testing.T) {
	cfg := smallConfig(bench.Int32)
	cfg.Remainder = multiply.RemainderReject
	reports, err := bench.Compare(context.Background(), cfg)
	require.ErrorIs(t, err, multiply.ErrVectorWidth)
	// naive, mt run before simd fails.
	require.Len(t, reports, 2)
}

func TestRunLogsReferenceProduct(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewJSONLogger(&buf, slog.LevelDebug)
	cfg := smallConfig(bench.Int64).WithStrategy(multiply.StrategyMultithreaded)
	_, err := bench.Run(context.Background(), cfg, bench.WithLogger(l))
	require.NoError(t, err)

	products := map[string]int{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		if rec["msg"] == "multiply completed" {
			products[rec["strategy"].(string)]++
		}
	}
	require.Equal(t, map[string]int{"mt": 2, "naive": 1}, products)
}

func TestRunRejectsRangeOutsideElement(t *testing.T) {
	cfg := smallConfig(bench.Int64)
	cfg.Range = &bench.ValueRange{Min: -9e18, Max: 9e18}
	require.NotPanics(t, func() {
		_, err := bench.Run(context.Background(), cfg)
		require.ErrorIs(t, err, bench.ErrInvalidConfig)
	})

	cfg = smallConfig(bench.Int32)
	cfg.Range = &bench.ValueRange{Min: 3e9, Max: 4e9}
	_, err := bench.Run(context.Background(), cfg)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestRunConstantZeroRange(t *testing.T) {
	cfg := smallConfig(bench.Float32).WithStrategy(multiply.StrategyVectorized)
	cfg.Range = &bench.ValueRange{}
	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, rep.Verified)
}
