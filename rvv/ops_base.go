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

// This file implements the single-width integer arithmetic instructions.
// Arithmetic wraps modulo 2^SEW.

// Vadd performs element-wise addition (vadd.vv).
func Vadd[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] + y[i]
	}
	return r
}

// VaddVX adds the scalar x to every element (vadd.vx).
func VaddVX[T Integers](a Vec[T], x T, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] + x
	}
	return r
}

// Vsub performs element-wise subtraction a - b (vsub.vv).
func Vsub[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] - y[i]
	}
	return r
}

// Vrsub computes x - a for every element (vrsub.vx).
func Vrsub[T Integers](a Vec[T], x T, vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = x - s[i]
	}
	return r
}

// Vneg negates every element (vneg.v, an alias of vrsub.vx with x0).
func Vneg[T Integers](a Vec[T], vl int) Vec[T] {
	return Vrsub(a, 0, vl)
}

// Vmul returns the low SEW bits of the element-wise product (vmul.vv).
func Vmul[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = x[i] * y[i]
	}
	return r
}

// Vmulh returns the high SEW bits of the element-wise 2*SEW-bit product
// (vmulh.vv for signed, vmulhu.vv for unsigned types).
func Vmulh[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	n := uint(sew[T]())
	for i := range vl {
		d[i] = truncTo[T](mulWide(x[i], y[i]).sra(n))
	}
	return r
}

// Vmacc computes acc + a*b (vmacc.vv).
func Vmacc[T Integers](acc, a, b Vec[T], vl int) Vec[T] {
	r := dest[T](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] + x[i]*y[i]
	}
	return r
}

// Vnmsac computes acc - a*b (vnmsac.vv).
func Vnmsac[T Integers](acc, a, b Vec[T], vl int) Vec[T] {
	r := dest[T](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] - x[i]*y[i]
	}
	return r
}

// Vmin returns the element-wise minimum (vmin.vv / vminu.vv).
func Vmin[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = min(x[i], y[i])
	}
	return r
}

// Vmax returns the element-wise maximum (vmax.vv / vmaxu.vv).
func Vmax[T Integers](a, b Vec[T], vl int) Vec[T] {
	r := dest[T](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = max(x[i], y[i])
	}
	return r
}

// Vmerge selects t where the mask is set and f elsewhere (vmerge.vvm).
func Vmerge[T Lanes](f, t Vec[T], m Mask, vl int) Vec[T] {
	r := dest[T](f.lmul, vl)
	x, y, d := f.lanes(), t.lanes(), r.lanes()
	for i := range vl {
		if m.Get(i) {
			d[i] = y[i]
		} else {
			d[i] = x[i]
		}
	}
	return r
}

// compare builds a mask from a lane predicate.
func compare[T Lanes](a, b Vec[T], vl int, pred func(x, y T) bool) Mask {
	var m Mask
	x, y := a.lanes(), b.lanes()
	for i := range vl {
		m.set(i, pred(x[i], y[i]))
	}
	return m
}

// Vmseq sets mask lanes where a == b (vmseq.vv).
func Vmseq[T Integers](a, b Vec[T], vl int) Mask {
	return compare(a, b, vl, func(x, y T) bool { return x == y })
}

// Vmsne sets mask lanes where a != b (vmsne.vv).
func Vmsne[T Integers](a, b Vec[T], vl int) Mask {
	return compare(a, b, vl, func(x, y T) bool { return x != y })
}

// Vmslt sets mask lanes where a < b (vmslt.vv / vmsltu.vv).
func Vmslt[T Integers](a, b Vec[T], vl int) Mask {
	return compare(a, b, vl, func(x, y T) bool { return x < y })
}

// Vmsle sets mask lanes where a <= b (vmsle.vv / vmsleu.vv).
func Vmsle[T Integers](a, b Vec[T], vl int) Mask {
	return compare(a, b, vl, func(x, y T) bool { return x <= y })
}

// Vmsgt sets mask lanes where a > b (vmsgt, encoded as vmslt with swapped
// operands).
func Vmsgt[T Integers](a, b Vec[T], vl int) Mask {
	return Vmslt(b, a, vl)
}

// Vmsge sets mask lanes where a >= b.
func Vmsge[T Integers](a, b Vec[T], vl int) Mask {
	return Vmsle(b, a, vl)
}
