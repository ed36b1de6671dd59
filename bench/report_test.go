// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/matperf/bench"
	"github.com/katalvlaran/matperf/multiply"
	"github.com/stretchr/testify/require"
)

func sampleReport() bench.Report {
	return bench.Report{
		Strategy:  multiply.StrategyMultithreadedCacheOptimized,
		Element:   bench.Float32,
		M:         100,
		K:         200,
		N:         300,
		Workers:   4,
		ISA:       "generic",
		Durations: []time.Duration{2 * time.Millisecond, time.Millisecond},
		Min:       time.Millisecond,
		Mean:      1500 * time.Microsecond,
		Max:       2 * time.Millisecond,
		GFLOPS:    12,
		Speedup:   3.5,
		Verified:  true,
	}
}

func TestFlops(t *testing.T) {
	require.Equal(t, 12e6, bench.Flops(100, 200, 300))
	require.Zero(t, bench.Flops(0, 5, 5))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteText(&buf))
	out := buf.String()
	for _, want := range []string{"mt+co", "float32", "100x200 · 200x300", "1ms / 1.5ms / 2ms", "12.000", "3.50x"} {
		require.Contains(t, out, want)
	}
	require.Regexp(t, `verified\s+true`, out)
	require.NotContains(t, out, "block")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteJSON(&buf))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "mt+co", rec["strategy"])
	require.Equal(t, "float32", rec["element"])
	require.EqualValues(t, 1e6, rec["min_ns"])
	require.NotContains(t, rec, "block_size")

	var back bench.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, sampleReport(), back)
}

func TestWriteTable(t *testing.T) {
	naive := sampleReport()
	naive.Strategy = multiply.StrategyNaive
	naive.Speedup = 1

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, []bench.Report{naive, sampleReport()}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "STRATEGY"))
	require.True(t, strings.HasPrefix(lines[1], "naive"))
	require.Contains(t, lines[2], "3.50x")
}

func TestWriteJSONReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteJSONReports(&buf, []bench.Report{sampleReport()}))
	var out []bench.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
}
