// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"
)

// ElementKind names the scalar type of a benchmark run.
type ElementKind uint8

const (
	Int32 ElementKind = iota
	Float32
	Int64
	Float64
)

var elementNames = [...]string{
	Int32:   "int32",
	Float32: "float32",
	Int64:   "int64",
	Float64: "float64",
}

// String returns the Go type name of the kind.
func (e ElementKind) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}

	return fmt.Sprintf("element(%d)", uint8(e))
}

// IsFloat reports whether the kind is a floating-point type.
func (e ElementKind) IsFloat() bool { return e == Float32 || e == Float64 }

// ParseElementKind maps "int32", "float32", "int64" or "float64" to a kind.
// "int" and "float" are accepted as the 32-bit kinds.
func ParseElementKind(s string) (ElementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "int":
		return Int32, nil
	case "float32", "float":
		return Float32, nil
	case "int64":
		return Int64, nil
	case "float64", "double":
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e ElementKind) MarshalText() ([]byte, error) {
	if int(e) >= len(elementNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, uint8(e))
	}

	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *ElementKind) UnmarshalText(b []byte) error {
	v, err := ParseElementKind(string(b))
	if err != nil {
		return err
	}
	*e = v

	return nil
}
