// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/matperf/bench"
	"github.com/katalvlaran/matperf/multiply"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRunTextReport(t *testing.T) {
	code, out, _ := runCLI(t, "-mt", "-co", "-size", "16", "-workers", "2", "-repeat", "1")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "mt+co")
	require.Regexp(t, `verified\s+true`, out)
}

func TestRunJSONReport(t *testing.T) {
	code, out, _ := runCLI(t, "-strategy", "blocked", "-block", "4", "-m", "9", "-k", "7", "-n", "5", "-type", "int64", "-json")
	require.Equal(t, exitOK, code)

	var rep bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, multiply.StrategyBlocked, rep.Strategy)
	require.Equal(t, bench.Int64, rep.Element)
	require.Equal(t, 4, rep.BlockSize)
	require.Equal(t, 9, rep.M)
	require.Equal(t, 5, rep.N)
}

func TestRunCompareTable(t *testing.T) {
	code, out, _ := runCLI(t, "-compare", "-size", "12", "-repeat", "1", "-type", "int32")
	require.Equal(t, exitOK, code)
	for _, s := range multiply.Strategies() {
		require.Contains(t, out, s.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{"-nope"},
		{"-type", "complex64"},
		{"-strategy", "turbo"},
		{"-remainder", "pad"},
		{"-repeat", "0"},
		{"-workers", "-1"},
		{"-log-level", "loud"},
		{"-log-format", "xml"},
		{"extra"},
	}
	for _, args := range cases {
		code, _, _ := runCLI(t, args...)
		require.Equal(t, exitUsage, code, "%v", args)
	}
}

func TestRunFailure(t *testing.T) {
	code, _, errOut := runCLI(t, "-simd", "-size", "10", "-remainder", "reject", "-repeat", "1")
	require.Equal(t, exitRun, code)
	require.Contains(t, errOut, "vector width")
}

func TestConfigDefaultsToSize(t *testing.T) {
	f := cliFlags{size: 33, m: 5, element: "float64", remainder: "scalar", repeat: 1, block: 8}
	cfg, err := f.config()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.M)
	require.Equal(t, 33, cfg.K)
	require.Equal(t, 33, cfg.N)
	require.Nil(t, cfg.Strategy)
}
