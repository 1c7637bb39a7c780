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

// Lane indices are compile-time constants in C. Here they are checked by
// indexing the source array, so an out-of-range lane panics.

func getLane[T rvv.Lanes, V vector[T]](v V, lane int) T {
	_ = v[lane]
	b := bindOf[T, V]()
	return rvv.VmvXS(rvv.Vslidedown(load[T](b, &v), lane, b.vl))
}

func setLane[T rvv.Lanes, V vector[T]](x T, v V, lane int) V {
	_ = v[lane]
	b := bindOf[T, V]()
	return store[T, V](b, rvv.Vmerge(load[T](b, &v), splat(b, x), laneMask(b.vl, lane), b.vl))
}

func dup[T rvv.Lanes, V vector[T]](x T) V {
	b := bindOf[T, V]()
	return store[T, V](b, splat(b, x))
}

// dupLane broadcasts lane of v into every lane of R. V and R may differ
// in lane count (vdupq_lane, vdup_laneq).
func dupLane[T rvv.Lanes, R vector[T], V vector[T]](v V, lane int) R {
	_ = v[lane]
	src, dst := bindOf[T, V](), bindOf[T, R]()
	return store[T, R](dst, rvv.VrgatherVX(load[T](src, &v), uint(lane), dst.vl))
}

// combine joins two d registers into a q register, lo in the low lanes.
func combine[T rvv.Lanes, Q vector[T], V vector[T]](lo, hi V) Q {
	r, b := concat[T](&lo, &hi)
	return store[T, Q](b, r)
}

func getLow[T rvv.Lanes, V vector[T], Q vector[T]](q Q) V {
	b := bindOf[T, V]()
	return store[T, V](b, load[T](b, &q))
}

func getHigh[T rvv.Lanes, V vector[T], Q vector[T]](q Q) V {
	qb, b := bindOf[T, Q](), bindOf[T, V]()
	return store[T, V](b, rvv.Vslidedown(load[T](qb, &q), b.vl, b.vl))
}

// create views a 64-bit pattern as a d register, lane 0 in the low bits.
func create[T rvv.Lanes, V vector[T]](x uint64) V {
	b := bindOf[T, V]()
	return store[T, V](b, rvv.Vreinterpret[T](rvv.Vmv(rvv.M1, x, 1)))
}
