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

// ext extracts len(a) lanes from the concatenation a:b starting at lane n.
func ext[T rvv.Lanes, V vector[T]](a, b V, n int) V {
	_ = a[n]
	c, _ := concat[T](&a, &b)
	half := bindOf[T, V]()
	return store[T, V](half, rvv.Vslidedown(c, n, half.vl))
}

// rev reverses the order of lanes within each group of size lanes
// (vrev16, vrev32, vrev64).
func rev[T rvv.Lanes, V vector[T]](a V, size int) V {
	b := bindOf[T, V]()
	if esize[T]() == 8 {
		return store[T, V](b, revBytes(load[T](b, &a), size, b.vl))
	}
	id := laneIndex(b.vl)
	idx := rvv.Vxor(id, rvv.Vmv(id.LMUL(), uint16(size-1), b.vl), b.vl)
	return store[T, V](b, rvv.Vrgather(load[T](b, &a), idx, b.vl))
}

// revBytes reverses the bytes of each size-byte group with vrev8 on
// elements of that size.
func revBytes[T rvv.Lanes](v rvv.Vec[T], size, vl int) rvv.Vec[T] {
	switch size {
	case 2:
		return rvv.Vreinterpret[T](rvv.Vrev8(rvv.Vreinterpret[uint16](v), vl/2))
	case 4:
		return rvv.Vreinterpret[T](rvv.Vrev8(rvv.Vreinterpret[uint32](v), vl/4))
	default:
		return rvv.Vreinterpret[T](rvv.Vrev8(rvv.Vreinterpret[uint64](v), vl/8))
	}
}

// gatherPair gathers lanes of the concatenation a:b.
func gatherPair[T rvv.Lanes, V vector[T]](a, b V, idx rvv.Vec[uint16]) V {
	c, _ := concat[T](&a, &b)
	half := bindOf[T, V]()
	return store[T, V](half, rvv.Vrgather(c, idx, half.vl))
}

// trn transposes 2x2 lane blocks: the first result holds the even lanes
// of a and b interleaved, the second the odd lanes.
func trn[T rvv.Lanes, V vector[T]](a, b V) (V, V) {
	n := bindOf[T, V]().vl
	id := laneIndex(n)
	odd := parityMask(n, true)
	// trn1: even lane i reads a[i], odd lane i reads b[i-1] == c[n+i-1].
	even := rvv.Vmerge(id, rvv.VaddVX(id, uint16(n-1), n), odd, n)
	// trn2: even lane i reads a[i+1], odd lane i reads b[i] == c[n+i].
	second := rvv.Vmerge(rvv.VaddVX(id, 1, n), rvv.VaddVX(id, uint16(n), n), odd, n)
	return gatherPair[T](a, b, even), gatherPair[T](a, b, second)
}

// zip interleaves a and b. The first result holds the interleaved low
// halves, the second the high halves.
func zip[T rvv.Lanes, V vector[T]](a, b V) (V, V) {
	bd := bindOf[T, V]()
	var buf [32]T
	rvv.Vsseg2(load[T](bd, &a), load[T](bd, &b), buf[:], bd.vl)
	lo := rvv.Vle(bd.lmul, buf[:bd.vl], bd.vl)
	hi := rvv.Vle(bd.lmul, buf[bd.vl:], bd.vl)
	return store[T, V](bd, lo), store[T, V](bd, hi)
}

// uzp de-interleaves the concatenation a:b into its even and odd lanes.
func uzp[T rvv.Lanes, V vector[T]](a, b V) (V, V) {
	bd := bindOf[T, V]()
	var buf [32]T
	rvv.Vse(load[T](bd, &a), buf[:bd.vl], bd.vl)
	rvv.Vse(load[T](bd, &b), buf[bd.vl:], bd.vl)
	even, odd := rvv.Vlseg2(bd.lmul, buf[:], bd.vl)
	return store[T, V](bd, even), store[T, V](bd, odd)
}
