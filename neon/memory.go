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

import "github.com/ajroetker/neon2rvv/rvv"

// Memory operands are slices. A slice shorter than the access panics
// through the bounds check, like an out-of-bounds pointer would fault.
// For the interleaved forms, lane j of vector i maps to element j*N + i.

func ld1[T rvv.Lanes, V vector[T]](p []T) V {
	b := bindOf[T, V]()
	return store[T, V](b, rvv.Vle(b.lmul, p, b.vl))
}

func ld1Dup[T rvv.Lanes, V vector[T]](p []T) V { return dup[T, V](p[0]) }

func ld1Lane[T rvv.Lanes, V vector[T]](p []T, v V, lane int) V {
	return setLane[T](p[0], v, lane)
}

func st1[T rvv.Lanes, V vector[T]](p []T, v V) {
	b := bindOf[T, V]()
	_ = p[b.vl-1]
	rvv.Vse(load[T](b, &v), p, b.vl)
}

func st1Lane[T rvv.Lanes, V vector[T]](p []T, v V, lane int) {
	p[0] = getLane[T](v, lane)
}

func ld2[T rvv.Lanes, V vector[T]](p []T) (V, V) {
	b := bindOf[T, V]()
	x, y := rvv.Vlseg2(b.lmul, p, b.vl)
	return store[T, V](b, x), store[T, V](b, y)
}

func ld3[T rvv.Lanes, V vector[T]](p []T) (V, V, V) {
	b := bindOf[T, V]()
	x, y, z := rvv.Vlseg3(b.lmul, p, b.vl)
	return store[T, V](b, x), store[T, V](b, y), store[T, V](b, z)
}

func ld4[T rvv.Lanes, V vector[T]](p []T) (V, V, V, V) {
	b := bindOf[T, V]()
	x, y, z, w := rvv.Vlseg4(b.lmul, p, b.vl)
	return store[T, V](b, x), store[T, V](b, y), store[T, V](b, z), store[T, V](b, w)
}

// ldDup loads n consecutive elements and broadcasts element i to every
// lane of vector i.
func ldDup[T rvv.Lanes, V vector[T]](p []T, out []V) {
	_ = p[len(out)-1]
	for i := range out {
		out[i] = dup[T, V](p[i])
	}
}

// ldLane replaces lane of each vector in vs with consecutive elements of
// p.
func ldLane[T rvv.Lanes, V vector[T]](p []T, vs []V, lane int) {
	_ = p[len(vs)-1]
	for i := range vs {
		vs[i] = setLane[T](p[i], vs[i], lane)
	}
}

func st2[T rvv.Lanes, V vector[T]](p []T, a, b V) {
	bd := bindOf[T, V]()
	_ = p[2*bd.vl-1]
	rvv.Vsseg2(load[T](bd, &a), load[T](bd, &b), p, bd.vl)
}

func st3[T rvv.Lanes, V vector[T]](p []T, a, b, c V) {
	bd := bindOf[T, V]()
	_ = p[3*bd.vl-1]
	rvv.Vsseg3(load[T](bd, &a), load[T](bd, &b), load[T](bd, &c), p, bd.vl)
}

func st4[T rvv.Lanes, V vector[T]](p []T, a, b, c, d V) {
	bd := bindOf[T, V]()
	_ = p[4*bd.vl-1]
	rvv.Vsseg4(load[T](bd, &a), load[T](bd, &b), load[T](bd, &c), load[T](bd, &d), p, bd.vl)
}

// stLane stores lane of each vector in vs to consecutive elements of p.
func stLane[T rvv.Lanes, V vector[T]](p []T, vs []V, lane int) {
	_ = p[len(vs)-1]
	for i, v := range vs {
		p[i] = getLane[T](v, lane)
	}
}
