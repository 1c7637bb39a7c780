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

import (
	"math"
	"unsafe"
)

// roundTo rounds x to an integral value using the given rounding mode.
func roundTo(x float64, frm FRM) float64 {
	switch frm {
	case FrmRTZ:
		return math.Trunc(x)
	case FrmRDN:
		return math.Floor(x)
	case FrmRUP:
		return math.Ceil(x)
	case FrmRMM:
		return math.Round(x)
	default:
		return math.RoundToEven(x)
	}
}

// VfcvtXF converts each float element to the integer type I of the same
// width, rounding with frm and saturating (vfcvt.x.f.v / vfcvt.xu.f.v).
//
// NaN converts to the largest value of I, +Inf to the largest and -Inf to
// the smallest value.
func VfcvtXF[I Integers, F Floats](a Vec[F], frm FRM, vl int) Vec[I] {
	r := dest[I](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	hi, lo := float64(maxOf[I]()), float64(minOf[I]())
	for i := range vl {
		x := float64(s[i])
		switch {
		case x != x:
			d[i] = maxOf[I]()
		default:
			x = roundTo(x, frm)
			switch {
			case x >= hi:
				d[i] = maxOf[I]()
			case x <= lo:
				d[i] = minOf[I]()
			default:
				d[i] = I(x)
			}
		}
	}
	return r
}

// VfcvtFX converts each integer element to the float type F of the same
// width, rounding to nearest even (vfcvt.f.x.v / vfcvt.f.xu.v).
func VfcvtFX[F Floats, I Integers](a Vec[I], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = F(s[i])
	}
	return r
}

// VfwcvtFF widens float32 elements to float64 exactly (vfwcvt.f.f.v).
func VfwcvtFF(a Vec[float32], vl int) Vec[float64] {
	r := dest[float64](LMULFor[float64](vl), vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(float64(s[i]))
	}
	return r
}

// VfncvtFF narrows float64 elements to float32, rounding to nearest even
// (vfncvt.f.f.w).
func VfncvtFF(a Vec[float64], vl int) Vec[float32] {
	r := dest[float32](LMULFor[float32](vl), vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(float32(s[i]))
	}
	return r
}

// VfncvtRodFF narrows float64 elements to float32, rounding to odd
// (vfncvt.rod.f.f.w).
func VfncvtRodFF(a Vec[float64], vl int) Vec[float32] {
	r := dest[float32](LMULFor[float32](vl), vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(roundOdd32(s[i]))
	}
	return r
}

// roundOdd32 rounds x to float32 by truncation and sets the least
// significant bit when the result is inexact.
func roundOdd32(x float64) float32 {
	if x != x || math.IsInf(x, 0) {
		return float32(x)
	}
	t := float32(x)
	if float64(t) == x {
		return t
	}
	// Step toward zero when nearest rounding went away from zero.
	if math.Abs(float64(t)) > math.Abs(x) {
		t = math.Float32frombits(math.Float32bits(t) - 1)
	}
	return math.Float32frombits(math.Float32bits(t) | 1)
}

// Vreinterpret views the register group of v as lanes of type To
// (vreinterpret_v). No bits change; only the element type tag does.
func Vreinterpret[To, From Lanes](v Vec[From]) Vec[To] {
	return *(*Vec[To])(unsafe.Pointer(&v))
}
