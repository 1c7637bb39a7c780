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

package rvv

import "math/bits"

// This file implements bitwise logical and shift instructions, together
// with the Zvbb bit-manipulation instructions (vandn, vclz, vcpop, vrev8,
// vror).

// Vand computes the element-wise bitwise AND (vand.vv).
func Vand[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] & y[i]
	}
	return r
}

// Vor computes the element-wise bitwise OR (vor.vv).
func Vor[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] | y[i]
	}
	return r
}

// Vxor computes the element-wise bitwise XOR (vxor.vv).
func Vxor[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] ^ y[i]
	}
	return r
}

// Vnot computes the element-wise complement (vnot.v = vxor.vi a, -1).
func Vnot[T Integers](a Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = ^s[i]
	}
	return r
}

// Vandn computes a & ^b (vandn.vv, Zvbb).
func Vandn[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] &^ y[i]
	}
	return r
}

// Vsll shifts each element left by the low log2(SEW) bits of the
// corresponding element of shift (vsll.vv).
func Vsll[T Integers](a, shift Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, s, d := a.lanes(), shift.lanes(), r.lanes()
	m := uint64(sew[T]() - 1)
	for i := range vl {
		d[i] = x[i] << (uint64(s[i]) & m)
	}
	return r
}

// VsllVX shifts every element left by the low log2(SEW) bits of n
// (vsll.vx).
func VsllVX[T Integers](a Vec[T], n uint, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, d := a.lanes(), r.lanes()
	n &= uint(sew[T]() - 1)
	for i := range vl {
		d[i] = x[i] << n
	}
	return r
}

// Vsr shifts each element right by the low log2(SEW) bits of the
// corresponding element of shift: arithmetic for signed T (vsra.vv),
// logical for unsigned T (vsrl.vv).
func Vsr[T Integers](a, shift Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, s, d := a.lanes(), shift.lanes(), r.lanes()
	m := uint64(sew[T]() - 1)
	for i := range vl {
		d[i] = x[i] >> (uint64(s[i]) & m)
	}
	return r
}

// VsrVX shifts every element right by the low log2(SEW) bits of n
// (vsra.vx / vsrl.vx).
func VsrVX[T Integers](a Vec[T], n uint, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, d := a.lanes(), r.lanes()
	n &= uint(sew[T]() - 1)
	for i := range vl {
		d[i] = x[i] >> n
	}
	return r
}

// Vclz counts leading zero bits of each element (vclz.v, Zvbb).
func Vclz[T Integers](a Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	w := sew[T]()
	for i := range vl {
		d[i] = T(bits.LeadingZeros64(uint64(s[i])<<(64-w)>>(64-w)) - (64 - w))
	}
	return r
}

// Vcpop counts set bits of each element (vcpop.v, Zvbb).
func Vcpop[T Integers](a Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	w := sew[T]()
	for i := range vl {
		d[i] = T(bits.OnesCount64(uint64(s[i]) << (64 - w)))
	}
	return r
}

// Vrev8 reverses the bytes of each element (vrev8.v, Zvbb).
func Vrev8[T Integers](a Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	w := sew[T]()
	for i := range vl {
		d[i] = T(bits.ReverseBytes64(uint64(s[i])) >> (64 - w))
	}
	return r
}

// Vror rotates each element right by the low log2(SEW) bits of the
// corresponding element of shift (vror.vv, Zvbb).
func Vror[T Integers](a, shift Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, s, d := a.lanes(), shift.lanes(), r.lanes()
	w := uint64(sew[T]())
	for i := range vl {
		d[i] = rotr(x[i], uint(uint64(s[i])&(w-1)))
	}
	return r
}

// VrorVX rotates every element right by the low log2(SEW) bits of n
// (vror.vx, Zvbb).
func VrorVX[T Integers](a Vec[T], n uint, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, d := a.lanes(), r.lanes()
	n &= uint(sew[T]() - 1)
	for i := range vl {
		d[i] = rotr(x[i], n)
	}
	return r
}

func rotr[T Integers](x T, n uint) T {
	w := uint(sew[T]())
	u := uint64(x) << (64 - w) >> (64 - w)
	return T(u>>n | u<<((w-n)%w))
}
