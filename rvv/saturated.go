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

// This file implements the fixed-point instructions of RVV chapter 12:
// saturating add/subtract, averaging add/subtract, fractional multiply,
// scaling shifts and narrowing clips. Signedness follows T, so Vsadd on
// uint8 is vsaddu and on int8 is vsadd.

// Vsadd performs saturating addition (vsadd.vv / vsaddu.vv).
//
// Example for uint8:
//
//	Vsadd(250, 10) = 255 (saturated)
//	Vsadd(100, 50) = 150 (no saturation)
func Vsadd[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = clampTo[T](wideOf(x[i]).add(wideOf(y[i])))
	}
	return r
}

// Vssub performs saturating subtraction a - b (vssub.vv / vssubu.vv).
//
// Example for int8:
//
//	Vssub(-120, 10) = -128 (saturated)
func Vssub[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = clampTo[T](wideOf(x[i]).sub(wideOf(y[i])))
	}
	return r
}

// Vaadd computes the averaging add (a + b) >> 1 on the exact sum, rounded
// with xrm (vaadd.vv / vaaddu.vv).
//
// With RDN this is a halving add; with RNU it rounds half up.
func Vaadd[T Integers](a, b Vec[T], xrm VXRM, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = truncTo[T](roundoff(wideOf(x[i]).add(wideOf(y[i])), 1, xrm))
	}
	return r
}

// Vasub computes the averaging subtract (a - b) >> 1 on the exact
// difference, rounded with xrm (vasub.vv / vasubu.vv).
//
// For unsigned types the result wraps modulo 2^SEW, like vasubu.
func Vasub[T Integers](a, b Vec[T], xrm VXRM, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = truncTo[T](roundoff(wideOf(x[i]).sub(wideOf(y[i])), 1, xrm))
	}
	return r
}

// Vsmul is the signed fractional multiply with rounding and saturation
// (vsmul.vv): clip(roundoff(a*b, SEW-1)).
//
// The only saturating input pair is MIN*MIN, which yields MAX.
func Vsmul[T SignedInts](a, b Vec[T], xrm VXRM, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	n := uint(sew[T]() - 1)
	for i := range vl {
		d[i] = clampTo[T](roundoff(mulWide(x[i], y[i]), n, xrm))
	}
	return r
}

// Vssr is the scaling shift right (vssra.vv / vssrl.vv): each element of a
// is shifted right by the low log2(SEW) bits of the corresponding element
// of shift, rounding with xrm.
func Vssr[T Integers](a Vec[T], shift Vec[T], xrm VXRM, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, s, d := a.lanes(), shift.lanes(), r.lanes()
	m := uint64(sew[T]() - 1)
	for i := range vl {
		d[i] = truncTo[T](roundoff(wideOf(x[i]), uint(uint64(s[i])&m), xrm))
	}
	return r
}

// VssrVX shifts every element right by the low log2(SEW) bits of n with
// rounding (vssra.vx / vssrl.vx).
func VssrVX[T Integers](a Vec[T], n uint, xrm VXRM, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, d := a.lanes(), r.lanes()
	n &= uint(sew[T]() - 1)
	for i := range vl {
		d[i] = truncTo[T](roundoff(wideOf(x[i]), n, xrm))
	}
	return r
}

// Vnclip shifts each 2*SEW element of a right by the low log2(2*SEW) bits
// of n, rounds with xrm and saturates to the narrow type N (vnclip.wx /
// vnclipu.wx). W and N must have the same signedness and N must be half
// the width of W.
//
//	n8 := rvv.Vnclip[int8](w, 4, rvv.RNU, vl) // w is Vec[int16]
//
// Example for int16 -> int8, n = 4, RNU:
//
//	Vnclip(0x0128) = 0x13 (0x12 + rounding bit)
//	Vnclip(0x7FF0) = 127 (saturated)
func Vnclip[N, W Integers](a Vec[W], n uint, xrm VXRM, vl int) Vec[N] {
	r := dest[N](LMULFor[N](vl), vl)
	x, d := a.lanes(), r.lanes()
	n &= uint(sew[W]() - 1)
	for i := range vl {
		d[i] = clampTo[N](roundoff(wideOf(x[i]), n, xrm))
	}
	return r
}
