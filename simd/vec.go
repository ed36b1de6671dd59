// SPDX-License-Identifier: MIT

package simd

// Lanes is the number of scalars processed by one batch operation
// (256 bits of 32-bit elements).
const Lanes = 8

// Number is the set of lane element kinds.
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Vec is an 8-lane batch of T. The zero value is a vector of zeros.
type Vec[T Number] struct {
	lanes [Lanes]T
}

// Zero returns a vector with all lanes set to zero.
func Zero[T Number]() Vec[T] {
	return Vec[T]{}
}

// Broadcast returns a vector with every lane set to v.
func Broadcast[T Number](v T) Vec[T] {
	return Vec[T]{lanes: [Lanes]T{v, v, v, v, v, v, v, v}}
}

// Load reads src[0:Lanes] into a vector.
// It panics with an index error if len(src) < Lanes.
func Load[T Number](src []T) Vec[T] {
	_ = src[Lanes-1] // single bounds check for the whole batch
	var v Vec[T]
	copy(v.lanes[:], src[:Lanes])
	return v
}

// LoadPartial reads min(len(src), Lanes) elements; missing lanes are zero.
func LoadPartial[T Number](src []T) Vec[T] {
	var v Vec[T]
	copy(v.lanes[:], src)
	return v
}

// Gather reads lane l from src[base+l*stride] for l in [0, Lanes).
// It panics with an index error if any of those offsets is out of range.
func Gather[T Number](src []T, base, stride int) Vec[T] {
	_ = src[base+(Lanes-1)*stride]
	var v Vec[T]
	for l := 0; l < Lanes; l++ {
		v.lanes[l] = src[base+l*stride]
	}
	return v
}

// Store writes all lanes to dst[0:Lanes].
// It panics with an index error if len(dst) < Lanes.
func Store[T Number](v Vec[T], dst []T) {
	_ = dst[Lanes-1]
	copy(dst[:Lanes], v.lanes[:])
}

// StorePartial writes the first min(len(dst), Lanes) lanes to dst.
func StorePartial[T Number](v Vec[T], dst []T) {
	copy(dst, v.lanes[:])
}

// Add performs lane-wise addition.
func Add[T Number](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for l := 0; l < Lanes; l++ {
		r.lanes[l] = a.lanes[l] + b.lanes[l]
	}
	return r
}

// Mul performs lane-wise multiplication (low half for integers).
func Mul[T Number](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for l := 0; l < Lanes; l++ {
		r.lanes[l] = a.lanes[l] * b.lanes[l]
	}
	return r
}

// MulAdd returns acc + a*b lane-wise.
func MulAdd[T Number](acc, a, b Vec[T]) Vec[T] {
	var r Vec[T]
	for l := 0; l < Lanes; l++ {
		r.lanes[l] = acc.lanes[l] + a.lanes[l]*b.lanes[l]
	}
	return r
}

// ReduceSum returns the sum of all lanes, accumulated from lane 0 upward.
func ReduceSum[T Number](v Vec[T]) T {
	var s T
	for l := 0; l < Lanes; l++ {
		s += v.lanes[l]
	}
	return s
}

// Lane returns lane i. It panics if i is outside [0, Lanes).
func (v Vec[T]) Lane(i int) T {
	return v.lanes[i]
}

// Array returns a copy of the lanes.
func (v Vec[T]) Array() [Lanes]T {
	return v.lanes
}
