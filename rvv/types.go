// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rvv models the RISC-V Vector (RVV 1.0) intrinsic surface in Go.
//
// Every operation takes an explicit vector length vl, exactly like the
// __riscv_* intrinsics, and operates on register groups whose capacity
// (VLMAX) depends on the machine VLEN and the LMUL of the group. Lanes at
// or beyond vl in a result follow the tail-agnostic policy: they are filled
// with all ones, so code that reads them by accident sees garbage.
//
// Basic usage:
//
//	import "github.com/ajroetker/neon2rvv/rvv"
//
//	vl := rvv.Setvl[int16](8, rvv.M1)
//	a := rvv.Vle(rvv.M1, src1, vl)
//	b := rvv.Vle(rvv.M1, src2, vl)
//	rvv.Vse(rvv.Vsadd(a, b, vl), dst, vl)
//
// The package is a software model: results are bit-exact with the RVV 1.0
// specification, including RISC-V specific behavior such as canonical NaNs
// and saturating float-to-integer conversion of NaN to the maximum integer.
package rvv

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// regWords is the size of one register group in 64-bit words: VLEN up to
// MaxVLEN bits at LMUL up to M2.
const regWords = MaxVLEN * int(M2) / 64

// Vec is a vector register group holding lanes of type T.
//
// Vec is a plain value: copying it copies the register contents, and no
// operation in this package allocates. Create vectors with Vle, Vmv or the
// result of another operation.
type Vec[T Lanes] struct {
	reg  [regWords]uint64
	lmul LMUL
}

// lanes returns a view of all VLMAX lanes of the register group.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.reg)), VLMax[T](v.lmul))
}

// bytes returns a view of the register group as bytes.
func (v *Vec[T]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.reg)), VLEN()/8*int(v.lmul))
}

// LMUL returns the register grouping of this vector.
func (v Vec[T]) LMUL() LMUL {
	return v.lmul
}

// NumLanes returns VLMAX, the number of lanes the register group can hold.
func (v Vec[T]) NumLanes() int {
	return VLMax[T](v.lmul)
}

// Data returns a copy of all VLMAX lanes, including the tail.
// This is primarily for testing.
func (v Vec[T]) Data() []T {
	out := make([]T, VLMax[T](v.lmul))
	copy(out, v.lanes())
	return out
}

// dest returns a destination register group whose lanes at or beyond vl
// are filled according to the tail policy.
func dest[T Lanes](lmul LMUL, vl int) Vec[T] {
	var r Vec[T]
	r.lmul = lmul
	if tailPoison {
		b := r.bytes()
		for i := vl * sizeOf[T](); i < len(b); i++ {
			b[i] = 0xFF
		}
	}
	return r
}

// Mask is a mask register. Bit i is set when lane i is active.
//
// Mask instances should not be created directly; use the comparison
// operations (Vmseq, Vmslt, Vmflt, ...) instead.
type Mask struct {
	bits [2]uint64
}

// Get reports whether lane i is active.
func (m Mask) Get(i int) bool {
	if i < 0 || i >= 128 {
		return false
	}
	return m.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

func (m *Mask) set(i int, on bool) {
	if on {
		m.bits[i>>6] |= 1 << (uint(i) & 63)
	} else {
		m.bits[i>>6] &^= 1 << (uint(i) & 63)
	}
}

// CountTrue returns the number of active lanes among the first vl lanes
// (vcpop.m).
func (m Mask) CountTrue(vl int) int {
	count := 0
	for i := range vl {
		if m.Get(i) {
			count++
		}
	}
	return count
}

// Vmand returns the lane-wise AND of two masks (vmand.mm).
func Vmand(a, b Mask) Mask {
	return Mask{bits: [2]uint64{a.bits[0] & b.bits[0], a.bits[1] & b.bits[1]}}
}

// Vmor returns the lane-wise OR of two masks (vmor.mm).
func Vmor(a, b Mask) Mask {
	return Mask{bits: [2]uint64{a.bits[0] | b.bits[0], a.bits[1] | b.bits[1]}}
}

// Vmnot returns the lane-wise complement of a mask (vmnot.m).
func Vmnot(a Mask) Mask {
	return Mask{bits: [2]uint64{^a.bits[0], ^a.bits[1]}}
}

// sizeOf returns the size of T in bytes.
func sizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// sew returns the element width of T in bits.
func sew[T Lanes]() int {
	return sizeOf[T]() * 8
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Integers]() bool {
	var zero T
	return ^zero < 0
}

// maxOf returns the largest value representable by T.
func maxOf[T Integers]() T {
	var zero T
	if ^zero < 0 {
		return T(1)<<(sew[T]()-1) - 1
	}
	return ^zero
}

// minOf returns the smallest value representable by T.
func minOf[T Integers]() T {
	var zero T
	if ^zero < 0 {
		return ^maxOf[T]()
	}
	return zero
}
