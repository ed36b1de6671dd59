// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrVerification indicates that a strategy disagreed with the naive product.
	ErrVerification = errors.New("bench: result differs from naive")

	// ErrUnknownElement indicates an element kind outside int32, int64, float32, float64.
	ErrUnknownElement = errors.New("bench: unknown element kind")
)
