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

// table joins the registers of a lookup table into one register group.
func table[T rvv.Lanes, TV vector[T]](parts []TV) (rvv.Vec[T], int) {
	n := bindOf[T, TV]().vl
	tb := bindLanes[T](n * len(parts))
	t := rvv.Vle(tb.lmul, lanesOf[T](&parts[0]), n)
	for k := 1; k < len(parts); k++ {
		t = rvv.Vslideup(t, rvv.Vle(tb.lmul, lanesOf[T](&parts[k]), n), k*n, (k+1)*n)
	}
	return t, tb.vl
}

// tbx looks up byte lanes of idx in the table. Indices past the table
// keep the lane of fallback. vrgather only zeroes indices of VLMAX or
// more, so the range check is explicit.
func tbx[T rvv.Lanes, V vector[T], TV vector[T]](fallback V, parts []TV, idx V) V {
	b := bindOf[T, V]()
	t, size := table[T](parts)
	i := rvv.Vreinterpret[uint8](load[T](b, &idx))
	r := rvv.Vrgather(t, i, b.vl)
	oob := rvv.Vmsge(i, rvv.Vmv(rvv.M1, uint8(size), b.vl), b.vl)
	return store[T, V](b, rvv.Vmerge(r, load[T](b, &fallback), oob, b.vl))
}

func tbl[T rvv.Lanes, V vector[T], TV vector[T]](parts []TV, idx V) V {
	var zero V
	return tbx[T](zero, parts, idx)
}

// qtbx looks up a table of q registers one pair at a time, since a pair
// fills the largest register group at the minimum VLEN. After each pair
// the indices drop by the pair size; indices the pair already served wrap
// past 255 and keep the lane found.
func qtbx[T rvv.Lanes, V vector[T], TV vector[T]](fallback V, parts []TV, idx V) V {
	step := 2 * len(parts[0])
	r := fallback
	for k := 0; k < len(parts); k += 2 {
		r = tbx[T](r, parts[k:min(k+2, len(parts))], idx)
		idx = rebase[T](idx, step)
	}
	return r
}

func qtbl[T rvv.Lanes, V vector[T], TV vector[T]](parts []TV, idx V) V {
	var zero V
	return qtbx[T](zero, parts, idx)
}

// rebase subtracts n from every byte index, modulo 256.
func rebase[T rvv.Lanes, V vector[T]](idx V, n int) V {
	b := bindOf[T, V]()
	i := rvv.Vreinterpret[uint8](load[T](b, &idx))
	i = rvv.Vsub(i, rvv.Vmv(rvv.M1, uint8(n), b.vl), b.vl)
	return store[T, V](b, rvv.Vreinterpret[T](i))
}

// bsl selects bits of a where mask is set and of b elsewhere.
func bsl[T rvv.Lanes, U rvv.UnsignedInts, V vector[T], UV vector[U]](mask UV, a, b V) V {
	bd := bindOf[T, V]()
	m := load[U](bd, &mask)
	x := rvv.Vreinterpret[U](load[T](bd, &a))
	y := rvv.Vreinterpret[U](load[T](bd, &b))
	r := rvv.Vor(rvv.Vand(m, x, bd.vl), rvv.Vandn(y, m, bd.vl), bd.vl)
	return store[T, V](bd, rvv.Vreinterpret[T](r))
}
