// SPDX-License-Identifier: MIT

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasASIMD = cpu.ARM64.HasASIMD
	hasSVE = cpu.ARM64.HasSVE
	initCapabilities()
}
