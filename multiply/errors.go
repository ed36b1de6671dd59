// SPDX-License-Identifier: MIT

package multiply

import (
	"errors"
	"fmt"
)

var (
	// ErrVectorWidth indicates that RemainderReject is in effect and the output
	// column count is not a multiple of the lane width.
	ErrVectorWidth = errors.New("multiply: column count is not a multiple of the vector width")

	// ErrUnknownStrategy indicates a Strategy value or name outside the known set.
	ErrUnknownStrategy = errors.New("multiply: unknown strategy")
)

// strategyErrorf wraps err as "<strategy>: <cause>".
func strategyErrorf(s Strategy, err error) error {
	return fmt.Errorf("%s: %w", s, err)
}
