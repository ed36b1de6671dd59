// SPDX-License-Identifier: MIT

// Command matperf times one dense matrix-product strategy, or all of them.
//
// Usage:
//
//	matperf [flags]
//
// Examples:
//
//	matperf -mt -co -size 512 -type float32
//	matperf -strategy blocked -block 32 -m 300 -k 200 -n 100
//	matperf -compare -size 256 -json
//
// Exit status is 2 for invalid flags and 1 when the run fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/matperf/bench"
	"github.com/katalvlaran/matperf/logging"
	"github.com/katalvlaran/matperf/multiply"
	"github.com/katalvlaran/matperf/simd"
)

const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cliFlags is the raw flag state before it is folded into a bench.Config.
type cliFlags struct {
	mt, vec, co bool
	strategy    string
	element     string
	m, k, n     int
	size        int
	workers     int
	block       int
	remainder   string
	repeat      int
	seed        uint64
	verify      bool
	compare     bool
	json        bool
	logLevel    string
	logFormat   string
}

func newFlagSet(f *cliFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("matperf", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&f.mt, "mt", false, "partition rows across worker goroutines")
	fs.BoolVar(&f.vec, "simd", false, "compute 8 output columns per lane operation")
	fs.BoolVar(&f.co, "co", false, "transpose B once for contiguous dot products")
	fs.StringVar(&f.strategy, "strategy", "", "strategy name, overrides -mt/-simd/-co (naive, mt, simd, co, blocked, mt+simd, simd+co, mt+co, max)")
	fs.StringVar(&f.element, "type", "float32", "element type: int32, float32, int64, float64")
	fs.IntVar(&f.m, "m", 0, "rows of A (defaults to -size)")
	fs.IntVar(&f.k, "k", 0, "cols of A and rows of B (defaults to -size)")
	fs.IntVar(&f.n, "n", 0, "cols of B (defaults to -size)")
	fs.IntVar(&f.size, "size", bench.DefaultSize, "edge of square operands")
	fs.IntVar(&f.workers, "workers", 0, "row blocks for threaded strategies (0 = NumCPU)")
	fs.IntVar(&f.block, "block", multiply.DefaultBlockSize, "tile edge for the blocked strategy")
	fs.StringVar(&f.remainder, "remainder", "scalar", "trailing-column policy for vector strategies: scalar, reject")
	fs.IntVar(&f.repeat, "repeat", bench.DefaultRepeat, "timed repetitions")
	fs.Uint64Var(&f.seed, "seed", bench.DefaultSeed, "generator seed")
	fs.BoolVar(&f.verify, "verify", true, "check results against the naive product")
	fs.BoolVar(&f.compare, "compare", false, "run every strategy and print a table")
	fs.BoolVar(&f.json, "json", false, "print JSON instead of text")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")

	return fs
}

// config folds the flags into one bench.Config.
func (f *cliFlags) config() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.M, cfg.K, cfg.N = orDefault(f.m, f.size), orDefault(f.k, f.size), orDefault(f.n, f.size)
	cfg.Select = multiply.Config{Multithreaded: f.mt, Vectorized: f.vec, CacheOptimized: f.co}
	cfg.Workers = f.workers
	cfg.BlockSize = f.block
	cfg.Repeat = f.repeat
	cfg.Seed = f.seed
	cfg.Verify = f.verify

	var err error
	if cfg.Element, err = bench.ParseElementKind(f.element); err != nil {
		return cfg, err
	}
	if cfg.Remainder, err = multiply.ParseRemainderPolicy(f.remainder); err != nil {
		return cfg, err
	}
	if f.strategy != "" {
		s, err := multiply.ParseStrategy(f.strategy)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithStrategy(s)
	}

	return cfg, cfg.Validate()
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}

	return def
}

func (f *cliFlags) logger(stderr io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	switch f.logFormat {
	case "text":
		return logging.NewTextLogger(stderr, level), nil
	case "json":
		return logging.NewJSONLogger(stderr, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", f.logFormat)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var f cliFlags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "matperf: unexpected arguments %v\n", fs.Args())
		return exitUsage
	}

	cfg, err := f.config()
	if err != nil {
		fmt.Fprintf(stderr, "matperf: %v\n", err)
		return exitUsage
	}
	log, err := f.logger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "matperf: %v\n", err)
		return exitUsage
	}
	log.Debug("starting",
		"isa", simd.ActiveISA().String(),
		"isa_override", simd.IsOverridden(),
		"config", cfg.Select.String(),
	)

	opts := []bench.Option{bench.WithLogger(log)}
	if f.compare {
		reports, err := bench.Compare(ctx, cfg, opts...)
		if werr := writeReports(stdout, reports, f.json); werr != nil && err == nil {
			err = werr
		}
		if err != nil {
			log.Error("compare failed", slog.Any("error", err))
			fmt.Fprintf(stderr, "matperf: %v\n", err)
			return exitRun
		}
		return exitOK
	}

	rep, err := bench.Run(ctx, cfg, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "matperf: %v\n", err)
		return exitRun
	}
	if f.json {
		err = rep.WriteJSON(stdout)
	} else {
		err = rep.WriteText(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "matperf: %v\n", err)
		return exitRun
	}

	return exitOK
}

func writeReports(w io.Writer, reports []bench.Report, asJSON bool) error {
	if len(reports) == 0 {
		return nil
	}
	if asJSON {
		return bench.WriteJSONReports(w, reports)
	}

	return bench.WriteTable(w, reports)
}
