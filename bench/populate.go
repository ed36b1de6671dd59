// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/matperf/matrix"
)

// ValueRange bounds generated values.
// Integer kinds draw uniformly from [Min, Max]; float kinds from [Min, Max).
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var (
	// DefaultIntRange yields the digits 0..9.
	DefaultIntRange = ValueRange{Min: 0, Max: 9}

	// DefaultFloatRange yields values in [0, 9.9).
	DefaultFloatRange = ValueRange{Min: 0, Max: 9.9}
)

// Representable limits of the integer kinds, as float64.
// 2⁶³ itself does not fit in int64, so the int64 upper limit is exclusive.
const (
	minInt32  = math.MinInt32
	maxInt32  = math.MaxInt32
	minInt64  = -0x1p63
	ceilInt64 = 0x1p63
)

func (r ValueRange) validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range [%v, %v] must be finite", r.Min, r.Max)
	}
	if r.Max < r.Min {
		return fmt.Errorf("range max %v < min %v", r.Max, r.Min)
	}

	return nil
}

// validateFor checks r and that every value it can produce fits kind.
func (r ValueRange) validateFor(kind ElementKind) error {
	if err := r.validate(); err != nil {
		return err
	}
	switch kind {
	case Int32:
		if r.Min < minInt32 || r.Max > maxInt32 {
			return fmt.Errorf("range [%v, %v] exceeds int32", r.Min, r.Max)
		}
	case Int64:
		if r.Min < minInt64 || r.Max >= ceilInt64 {
			return fmt.Errorf("range [%v, %v] exceeds int64", r.Min, r.Max)
		}
		if _, ok := intSpan(int64(r.Min), int64(r.Max)); !ok {
			return fmt.Errorf("range [%v, %v] is wider than int64 can count", r.Min, r.Max)
		}
	case Float32:
		if math.Abs(r.Min) > math.MaxFloat32 || math.Abs(r.Max) > math.MaxFloat32 {
			return fmt.Errorf("range [%v, %v] exceeds float32", r.Min, r.Max)
		}
		if math.IsInf(r.Max-r.Min, 0) {
			return fmt.Errorf("range [%v, %v] span overflows", r.Min, r.Max)
		}
	default:
		if math.IsInf(r.Max-r.Min, 0) {
			return fmt.Errorf("range [%v, %v] span overflows", r.Min, r.Max)
		}
	}

	return nil
}

// intSpan returns hi-lo+1, or false when it does not fit in int64.
func intSpan(lo, hi int64) (int64, bool) {
	if lo < 0 && hi > math.MaxInt64+lo {
		return 0, false
	}
	d := hi - lo
	if d == math.MaxInt64 {
		return 0, false
	}

	return d + 1, true
}

// rangeFor resolves a nil range to the default of kind.
func rangeFor(kind ElementKind, r *ValueRange) ValueRange {
	if r != nil {
		return *r
	}
	if kind.IsFloat() {
		return DefaultFloatRange
	}

	return DefaultIntRange
}

// kindOf reports the element kind of T, including named types over the four kinds.
func kindOf[T matrix.Element]() ElementKind {
	half := T(1) / T(2)
	if half == 0 {
		x := T(math.MaxInt32)
		x++
		if x < 0 {
			return Int32
		}
		return Int64
	}
	tiny := 1e-10
	if T(1)+T(tiny) == T(1) {
		return Float32
	}

	return Float64
}

// NewRand returns the deterministic generator used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}

// Populate overwrites every element of m with a uniform draw from vr.
// Integer bounds are truncated toward zero.
//
// Errors: ErrNilMatrix, and ErrInvalidConfig when vr is not finite, is
// inverted, or holds values that T cannot represent.
func Populate[T matrix.Element](m *matrix.Dense[T], rng *rand.Rand, vr ValueRange) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Populate: %w", err)
	}
	kind := kindOf[T]()
	if err := vr.validateFor(kind); err != nil {
		return fmt.Errorf("Populate: %w: %v", ErrInvalidConfig, err)
	}

	data := m.Data()
	if kind.IsFloat() {
		span := vr.Max - vr.Min
		for i := range data {
			data[i] = T(vr.Min + rng.Float64()*span)
		}
		return nil
	}

	lo, hi := int64(vr.Min), int64(vr.Max)
	span, _ := intSpan(lo, hi)
	for i := range data {
		data[i] = T(lo + rng.Int64N(span))
	}

	return nil
}
