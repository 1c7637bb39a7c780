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

// This file implements widening and narrowing integer instructions.
// N is the narrow (SEW) element type and W the wide (2*SEW) type; the type
// parameters are listed so that W can be given explicitly and N inferred:
//
//	w := rvv.Vwadd[int16](a, b, vl) // a, b are Vec[int8]
//
// W must have twice the width of N. Results use the smallest register
// grouping holding vl wide lanes.

// Vext sign- or zero-extends each element to the wide type, according to
// the signedness of N (vsext.vf2 / vzext.vf2).
func Vext[W, N Integers](a Vec[N], vl int) Vec[W] {
	r := dest[W](LMULFor[W](vl), vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = W(s[i])
	}
	return r
}

// Vwadd computes W(a) + W(b) (vwadd.vv / vwaddu.vv).
func Vwadd[W, N Integers](a, b Vec[N], vl int) Vec[W] {
	r := dest[W](LMULFor[W](vl), vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = W(x[i]) + W(y[i])
	}
	return r
}

// Vwsub computes W(a) - W(b) (vwsub.vv / vwsubu.vv).
func Vwsub[W, N Integers](a, b Vec[N], vl int) Vec[W] {
	r := dest[W](LMULFor[W](vl), vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = W(x[i]) - W(y[i])
	}
	return r
}

// Vwaddw computes a + W(b) with a already wide (vwadd.wv / vwaddu.wv).
func Vwaddw[W, N Integers](a Vec[W], b Vec[N], vl int) Vec[W] {
	r := dest[W](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] + W(y[i])
	}
	return r
}

// Vwsubw computes a - W(b) with a already wide (vwsub.wv / vwsubu.wv).
func Vwsubw[W, N Integers](a Vec[W], b Vec[N], vl int) Vec[W] {
	r := dest[W](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] - W(y[i])
	}
	return r
}

// Vwmul computes the exact product W(a) * W(b) (vwmul.vv / vwmulu.vv).
func Vwmul[W, N Integers](a, b Vec[N], vl int) Vec[W] {
	r := dest[W](LMULFor[W](vl), vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = W(x[i]) * W(y[i])
	}
	return r
}

// Vwmulsu multiplies signed a by unsigned b into the signed wide type
// (vwmulsu.vv).
func Vwmulsu[W SignedInts, S SignedInts, U UnsignedInts](a Vec[S], b Vec[U], vl int) Vec[W] {
	r := dest[W](LMULFor[W](vl), vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = W(x[i]) * W(y[i])
	}
	return r
}

// Vwmacc computes acc + W(a)*W(b) (vwmacc.vv / vwmaccu.vv).
func Vwmacc[W, N Integers](acc Vec[W], a, b Vec[N], vl int) Vec[W] {
	r := dest[W](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] + W(x[i])*W(y[i])
	}
	return r
}

// Vwmaccsu computes acc + W(a)*W(b) for signed a and unsigned b
// (vwmaccsu.vv).
func Vwmaccsu[W SignedInts, S SignedInts, U UnsignedInts](acc Vec[W], a Vec[S], b Vec[U], vl int) Vec[W] {
	r := dest[W](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] + W(x[i])*W(y[i])
	}
	return r
}

// Vnsr shifts each wide element right by the low log2(2*SEW) bits of n
// and truncates it to the narrow type (vnsra.wx for signed W, vnsrl.wx for
// unsigned W).
func Vnsr[N, W Integers](a Vec[W], n uint, vl int) Vec[N] {
	r := dest[N](LMULFor[N](vl), vl)
	s, d := a.lanes(), r.lanes()
	n &= uint(sew[W]() - 1)
	for i := range vl {
		d[i] = N(s[i] >> n)
	}
	return r
}
