// SPDX-License-Identifier: MIT

// Package simd provides fixed-width batch arithmetic for the vectorized
// multiplication strategies.
//
// A Vec[T] holds Lanes (8) scalars by value. The operations mirror the
// intrinsic sequence of a broadcast-multiply-accumulate kernel:
//
//	acc := simd.Zero[int32]()
//	for k := range ... {
//		a := simd.Broadcast(A[i*K+k])     // broadcastScalar
//		b := simd.Load(B[k*N+j:])         // loadBatch
//		acc = simd.Add(acc, simd.Mul(a, b)) // multiplyBatch, addBatch
//	}
//	simd.Store(acc, C[i*N+j:])            // storeBatch
//
// Every load and store goes through ordinary Go slice indexing, so a short
// slice panics with an index error instead of touching memory past the end.
// Callers that process a ragged tail use LoadPartial/StorePartial.
//
// Integer lanes wrap around on overflow exactly like scalar Go arithmetic.
// The loops are written over [Lanes]T arrays so the compiler can keep them
// in registers; the detected CPU vector ISA (see ActiveISA) is reported for
// diagnostics.
package simd
