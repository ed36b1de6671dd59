// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/matperf/multiply"
	"github.com/katalvlaran/matperf/parallel"
	"github.com/katalvlaran/matperf/simd"
)

// Report holds the measurements of one strategy.
type Report struct {
	Strategy  multiply.Strategy `json:"strategy"`
	Element   ElementKind       `json:"element"`
	M         int               `json:"m"`
	K         int               `json:"k"`
	N         int               `json:"n"`
	Workers   int               `json:"workers"`
	BlockSize int               `json:"block_size,omitempty"`
	ISA       string            `json:"isa"`

	Durations []time.Duration `json:"durations_ns"`
	Min       time.Duration   `json:"min_ns"`
	Mean      time.Duration   `json:"mean_ns"`
	Max       time.Duration   `json:"max_ns"`

	// GFLOPS is 2·M·K·N / Min in units of 10⁹ per second.
	GFLOPS float64 `json:"gflops"`
	// Speedup is naive.Min / Min; set by Compare only.
	Speedup  float64 `json:"speedup,omitempty"`
	Verified bool    `json:"verified"`
}

func newReport(cfg Config, s multiply.Strategy, durations []time.Duration) Report {
	r := Report{
		Strategy:  s,
		Element:   cfg.Element,
		M:         cfg.M,
		K:         cfg.K,
		N:         cfg.N,
		Workers:   1,
		ISA:       simd.ActiveISA().String(),
		Durations: durations,
	}
	if multiply.ConfigOf(s).Multithreaded {
		r.Workers = parallel.Workers(cfg.Workers)
	}
	if s == multiply.StrategyBlocked {
		r.BlockSize = cfg.BlockSize
		if r.BlockSize == 0 {
			r.BlockSize = multiply.DefaultBlockSize
		}
	}
	r.Min, r.Mean, r.Max = summarize(durations)
	if secs := r.Min.Seconds(); secs > 0 {
		r.GFLOPS = Flops(cfg.M, cfg.K, cfg.N) / secs / 1e9
	}

	return r
}

// Flops returns the multiply-add count of an (m×k)·(k×n) product, 2·m·k·n.
func Flops(m, k, n int) float64 {
	return 2 * float64(m) * float64(k) * float64(n)
}

// summarize returns min, mean and max; an empty slice yields zeros.
func summarize(ds []time.Duration) (lo, mean, hi time.Duration) {
	if len(ds) == 0 {
		return 0, 0, 0
	}
	lo, hi = ds[0], ds[0]
	var total time.Duration
	for _, d := range ds {
		lo = min(lo, d)
		hi = max(hi, d)
		total += d
	}

	return lo, total / time.Duration(len(ds)), hi
}

func speedup(base, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}

	return float64(base) / float64(d)
}

// WriteText writes r as aligned key/value lines.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "strategy\t%s\n", r.Strategy)
	fmt.Fprintf(tw, "element\t%s\n", r.Element)
	fmt.Fprintf(tw, "shape\t%dx%d · %dx%d\n", r.M, r.K, r.K, r.N)
	fmt.Fprintf(tw, "workers\t%d\n", r.Workers)
	if r.BlockSize > 0 {
		fmt.Fprintf(tw, "block\t%d\n", r.BlockSize)
	}
	fmt.Fprintf(tw, "isa\t%s\n", r.ISA)
	fmt.Fprintf(tw, "repeats\t%d\n", len(r.Durations))
	fmt.Fprintf(tw, "min/mean/max\t%s / %s / %s\n", r.Min, r.Mean, r.Max)
	fmt.Fprintf(tw, "gflop/s\t%.3f\n", r.GFLOPS)
	if r.Speedup > 0 {
		fmt.Fprintf(tw, "speedup\t%.2fx\n", r.Speedup)
	}
	fmt.Fprintf(tw, "verified\t%t\n", r.Verified)

	return tw.Flush()
}

// WriteJSON writes r as indented JSON followed by a newline.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteTable writes one row per report under a header.
func WriteTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tELEMENT\tWORKERS\tMIN\tMEAN\tGFLOP/S\tSPEEDUP\tVERIFIED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%.3f\t%.2fx\t%t\n",
			r.Strategy, r.Element, r.Workers, r.Min, r.Mean, r.GFLOPS, r.Speedup, r.Verified)
	}

	return tw.Flush()
}

// WriteJSONReports writes reports as one indented JSON array.
func WriteJSONReports(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}
