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

package neon

import (
	"unsafe"

	"github.com/ajroetker/neon2rvv/rvv"
)

// vector is the set of fixed-width shapes with lanes of type T. Every
// named vector type in this package is an array of 1, 2, 4, 8 or 16
// lanes; a kernel instantiated with any other shape does not compile.
type vector[T rvv.Lanes] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T
}

// binding is the vector configuration of one operation: the register
// grouping and the active vector length granted by vsetvl. It is created
// per call and never stored.
type binding struct {
	lmul rvv.LMUL
	vl   int
}

// bindOf returns the binding that makes an RVV operation cover exactly
// the lanes of V.
func bindOf[T rvv.Lanes, V vector[T]]() binding {
	var v V
	return bindLanes[T](len(v))
}

// bindLanes returns the binding for a working set of n lanes of T. Working
// sets formed by concatenating two or more q registers need M2.
func bindLanes[T rvv.Lanes](n int) binding {
	lmul := rvv.LMULFor[T](n)
	return binding{lmul: lmul, vl: rvv.Setvl[T](n, lmul)}
}

// lanesOf returns a slice aliasing the lanes of v.
func lanesOf[T rvv.Lanes, V vector[T]](v *V) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(v)), len(*v))
}

// load moves the lanes of v into a register group.
func load[T rvv.Lanes, V vector[T]](b binding, v *V) rvv.Vec[T] {
	return rvv.Vle(b.lmul, lanesOf[T](v), b.vl)
}

// store moves the active lanes of r into a fixed vector. Lanes past vl
// are never read.
func store[T rvv.Lanes, V vector[T]](b binding, r rvv.Vec[T]) V {
	var out V
	rvv.Vse(r, lanesOf[T](&out), b.vl)
	return out
}

// splat broadcasts x over the binding.
func splat[T rvv.Lanes](b binding, x T) rvv.Vec[T] {
	return rvv.Vmv(b.lmul, x, b.vl)
}

// concat joins lo and hi into one register group of twice the lanes.
func concat[T rvv.Lanes, V vector[T]](lo, hi *V) (rvv.Vec[T], binding) {
	half := bindOf[T, V]()
	b := bindLanes[T](2 * half.vl)
	l := rvv.Vle(b.lmul, lanesOf[T](lo), half.vl)
	h := rvv.Vle(b.lmul, lanesOf[T](hi), half.vl)
	return rvv.Vslideup(l, h, half.vl, b.vl), b
}

// esize returns the width of T in bits.
func esize[T rvv.Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

func isSigned[T rvv.Integers]() bool {
	var zero T
	return ^zero < 0
}

func maxOf[T rvv.Integers]() T {
	var zero T
	if ^zero < 0 {
		return T(1)<<(esize[T]()-1) - 1
	}
	return ^zero
}

func minOf[T rvv.Integers]() T {
	var zero T
	if ^zero < 0 {
		return ^maxOf[T]()
	}
	return zero
}

// binaryOp is the shape of the two-operand RVV instructions.
type binaryOp[T rvv.Lanes] func(a, b rvv.Vec[T], vl int) rvv.Vec[T]

// lanewise applies op to the lanes of a and b.
func lanewise[T rvv.Lanes, V vector[T]](a, b V, op binaryOp[T]) V {
	bd := bindOf[T, V]()
	return store[T, V](bd, op(load[T](bd, &a), load[T](bd, &b), bd.vl))
}

// unary applies op to the lanes of a.
func unary[T rvv.Lanes, V vector[T]](a V, op func(a rvv.Vec[T], vl int) rvv.Vec[T]) V {
	bd := bindOf[T, V]()
	return store[T, V](bd, op(load[T](bd, &a), bd.vl))
}

// laneMask selects lane i of an n-lane working set. Masks are per lane,
// so a byte index vector serves every element width.
func laneMask(n, i int) rvv.Mask {
	return rvv.Vmseq(rvv.Vid[uint8](rvv.M1, n), rvv.Vmv(rvv.M1, uint8(i), n), n)
}

// parityMask selects the even (odd == false) or odd lanes of an n-lane
// working set.
func parityMask(n int, odd bool) rvv.Mask {
	var want uint8
	if odd {
		want = 1
	}
	id := rvv.Vid[uint8](rvv.M1, n)
	return rvv.Vmseq(rvv.Vand(id, rvv.Vmv(rvv.M1, uint8(1), n), n), rvv.Vmv(rvv.M1, want, n), n)
}

// laneIndex returns 0, 1, ..., n-1 as 16-bit gather indices (vrgatherei16).
func laneIndex(n int) rvv.Vec[uint16] {
	b := bindLanes[uint16](n)
	return rvv.Vid[uint16](b.lmul, b.vl)
}

// maskToVec expands a mask into all-ones / all-zeros lanes.
func maskToVec[U rvv.UnsignedInts](b binding, m rvv.Mask) rvv.Vec[U] {
	return rvv.Vmerge(splat[U](b, 0), splat(b, ^U(0)), m, b.vl)
}
