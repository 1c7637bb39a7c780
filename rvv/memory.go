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

// Vle loads vl consecutive elements from src (vle<sew>.v).
// src must hold at least vl elements.
func Vle[T Lanes](lmul LMUL, src []T, vl int) Vec[T] {
	r := dest[T](lmul, vl)
	copy(r.lanes()[:vl], src[:vl])
	return r
}

// Vse stores the first vl lanes of v to dst (vse<sew>.v).
// dst must hold at least vl elements.
func Vse[T Lanes](v Vec[T], dst []T, vl int) {
	copy(dst[:vl], v.lanes()[:vl])
}

// Vlse loads vl elements from src spaced stride elements apart (vlse<sew>.v).
//
// The RVV instruction takes a byte stride; here the stride counts
// elements because Go slices are typed.
//
//	src = [a0, x, a1, x, a2, x, ...], stride = 2
//	result = [a0, a1, a2, ...]
func Vlse[T Lanes](lmul LMUL, src []T, stride int, vl int) Vec[T] {
	r := dest[T](lmul, vl)
	d := r.lanes()
	for i := range vl {
		d[i] = src[i*stride]
	}
	return r
}

// Vsse stores the first vl lanes of v to dst spaced stride elements apart
// (vsse<sew>.v). Elements of dst between the strided positions are not
// written.
func Vsse[T Lanes](v Vec[T], dst []T, stride int, vl int) {
	s := v.lanes()
	for i := range vl {
		dst[i*stride] = s[i]
	}
}

// Vlseg2 loads vl interleaved pairs and deinterleaves them into two
// register groups (vlseg2e<sew>.v).
//
//	src = [a0, b0, a1, b1, a2, b2, ...]
//	results = [a0, a1, a2, ...], [b0, b1, b2, ...]
func Vlseg2[T Lanes](lmul LMUL, src []T, vl int) (Vec[T], Vec[T]) {
	a, b := dest[T](lmul, vl), dest[T](lmul, vl)
	da, db := a.lanes(), b.lanes()
	for i := range vl {
		da[i] = src[2*i]
		db[i] = src[2*i+1]
	}
	return a, b
}

// Vlseg3 loads vl interleaved triples into three register groups
// (vlseg3e<sew>.v).
func Vlseg3[T Lanes](lmul LMUL, src []T, vl int) (Vec[T], Vec[T], Vec[T]) {
	a, b, c := dest[T](lmul, vl), dest[T](lmul, vl), dest[T](lmul, vl)
	da, db, dc := a.lanes(), b.lanes(), c.lanes()
	for i := range vl {
		da[i] = src[3*i]
		db[i] = src[3*i+1]
		dc[i] = src[3*i+2]
	}
	return a, b, c
}

// Vlseg4 loads vl interleaved quads into four register groups
// (vlseg4e<sew>.v).
func Vlseg4[T Lanes](lmul LMUL, src []T, vl int) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	a, b, c, d := dest[T](lmul, vl), dest[T](lmul, vl), dest[T](lmul, vl), dest[T](lmul, vl)
	da, db, dc, dd := a.lanes(), b.lanes(), c.lanes(), d.lanes()
	for i := range vl {
		da[i] = src[4*i]
		db[i] = src[4*i+1]
		dc[i] = src[4*i+2]
		dd[i] = src[4*i+3]
	}
	return a, b, c, d
}

// Vsseg2 interleaves the first vl lanes of a and b into dst
// (vsseg2e<sew>.v).
//
//	a = [a0, a1, ...], b = [b0, b1, ...]
//	dst = [a0, b0, a1, b1, ...]
func Vsseg2[T Lanes](a, b Vec[T], dst []T, vl int) {
	sa, sb := a.lanes(), b.lanes()
	for i := range vl {
		dst[2*i] = sa[i]
		dst[2*i+1] = sb[i]
	}
}

// Vsseg3 interleaves the first vl lanes of three register groups into dst
// (vsseg3e<sew>.v).
func Vsseg3[T Lanes](a, b, c Vec[T], dst []T, vl int) {
	sa, sb, sc := a.lanes(), b.lanes(), c.lanes()
	for i := range vl {
		dst[3*i] = sa[i]
		dst[3*i+1] = sb[i]
		dst[3*i+2] = sc[i]
	}
}

// Vsseg4 interleaves the first vl lanes of four register groups into dst
// (vsseg4e<sew>.v).
func Vsseg4[T Lanes](a, b, c, d Vec[T], dst []T, vl int) {
	sa, sb, sc, sd := a.lanes(), b.lanes(), c.lanes(), d.lanes()
	for i := range vl {
		dst[4*i] = sa[i]
		dst[4*i+1] = sb[i]
		dst[4*i+2] = sc[i]
		dst[4*i+3] = sd[i]
	}
}

// Vmv broadcasts x into the first vl lanes (vmv.v.x / vfmv.v.f).
func Vmv[T Lanes](lmul LMUL, x T, vl int) Vec[T] {
	r := dest[T](lmul, vl)
	d := r.lanes()
	for i := range vl {
		d[i] = x
	}
	return r
}

// VmvXS returns lane 0 of v (vmv.x.s / vfmv.f.s).
func VmvXS[T Lanes](v Vec[T]) T {
	return v.lanes()[0]
}

// VmvSX returns v with lane 0 replaced by x (vmv.s.x). The remaining lanes
// below vl are taken from v.
func VmvSX[T Lanes](v Vec[T], x T, vl int) Vec[T] {
	r := dest[T](v.lmul, vl)
	d, s := r.lanes(), v.lanes()
	copy(d[:vl], s[:vl])
	if vl > 0 {
		d[0] = x
	}
	return r
}
