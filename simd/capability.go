// SPDX-License-Identifier: MIT

package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a CPU vector instruction set.
type ISA uint8

const (
	// Generic represents a CPU without a recognized vector extension.
	Generic ISA = iota
	// NEON represents ARM64 Advanced SIMD (128-bit).
	NEON
	// SVE represents ARM64 Scalable Vector Extension.
	SVE
	// AVX2 represents x86-64 AVX2 (256-bit) with FMA.
	AVX2
	// AVX512 represents x86-64 AVX-512 Foundation.
	AVX512
)

// EnvOverride names the environment variable that forces the reported ISA.
const EnvOverride = "MATPERF_SIMD"

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve":
		return SVE, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Package-level state, written once by the platform init before any other code runs.
var (
	activeISA   ISA
	hasOverride bool

	hasASIMD   bool // ARM64 NEON
	hasSVE     bool // ARM64 SVE
	hasAVX2    bool // x86-64 AVX2 + FMA
	hasAVX512F bool // x86-64 AVX-512 Foundation
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA, hasOverride = resolveISA(os.Getenv(EnvOverride))
}

// resolveISA honors a valid, available override and otherwise auto-selects.
func resolveISA(override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			return isa, true
		}
	}

	return selectBestISA(), false
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE:
		return hasSVE
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F
	default:
		return false
	}
}

// selectBestISA chooses the widest ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasSVE {
			return SVE
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}

	return Generic
}

// ActiveISA returns the ISA reported for this process.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if MATPERF_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// Available returns true if isa is supported on this CPU.
func Available(isa ISA) bool {
	return isISAAvailable(isa)
}
