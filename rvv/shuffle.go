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

// Vid writes each element's index into it: [0, 1, 2, ...] (vid.v).
func Vid[T Integers](lmul LMUL, vl int) Vec[T] {
	r := dest[T](lmul, vl)
	d := r.lanes()
	for i := range vl {
		d[i] = T(i)
	}
	return r
}

// Vrgather gathers elements of src at the positions given by idx
// (vrgather.vv, or vrgatherei16.vv for 16-bit indices with wider data).
// Indices at or beyond VLMAX of src select 0.
//
// Example:
//
//	src = [10, 20, 30, 40], idx = [3, 0, 9, 1]
//	result = [40, 10, 0, 20]
func Vrgather[T Lanes, I UnsignedInts](src Vec[T], idx Vec[I], vl int) Vec[T] {
	r := dest[T](src.lmul, vl)
	s, x, d := src.lanes(), idx.lanes(), r.lanes()
	n := uint64(len(s))
	for i := range vl {
		if j := uint64(x[i]); j < n {
			d[i] = s[j]
		} else {
			d[i] = 0
		}
	}
	return r
}

// VrgatherVX broadcasts element idx of src to every element, or 0 when
// idx is at or beyond VLMAX (vrgather.vx).
func VrgatherVX[T Lanes](src Vec[T], idx uint, vl int) Vec[T] {
	r := dest[T](src.lmul, vl)
	s, d := src.lanes(), r.lanes()
	var x T
	if idx < uint(len(s)) {
		x = s[idx]
	}
	for i := range vl {
		d[i] = x
	}
	return r
}

// Vslideup moves elements of src up by offset: result[i] = src[i-offset]
// for offset <= i < vl, while elements below offset keep the value of dst
// (vslideup.vx).
func Vslideup[T Lanes](dst, src Vec[T], offset int, vl int) Vec[T] {
	r := dest[T](dst.lmul, vl)
	o, s, d := dst.lanes(), src.lanes(), r.lanes()
	for i := range vl {
		if i < offset {
			d[i] = o[i]
		} else {
			d[i] = s[i-offset]
		}
	}
	return r
}

// Vslidedown moves elements of src down by offset: result[i] =
// src[i+offset], or 0 when i+offset is at or beyond VLMAX (vslidedown.vx).
func Vslidedown[T Lanes](src Vec[T], offset int, vl int) Vec[T] {
	r := dest[T](src.lmul, vl)
	s, d := src.lanes(), r.lanes()
	for i := range vl {
		if j := i + offset; j < len(s) {
			d[i] = s[j]
		} else {
			d[i] = 0
		}
	}
	return r
}

// Vcompress packs the elements of src whose mask bit is set into the
// lowest elements of the result (vcompress.vm). Remaining elements below
// vl are tail.
//
// Example:
//
//	src = [a, b, c, d], mask = [1, 0, 1, 0]
//	result = [a, c, ?, ?]
func Vcompress[T Lanes](src Vec[T], m Mask, vl int) Vec[T] {
	var packed int
	s := src.lanes()
	for i := range vl {
		if m.Get(i) {
			packed++
		}
	}
	r := dest[T](src.lmul, packed)
	d := r.lanes()
	k := 0
	for i := range vl {
		if m.Get(i) {
			d[k] = s[i]
			k++
		}
	}
	return r
}
