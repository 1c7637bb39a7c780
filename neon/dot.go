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

// Dot products accumulate groups of four byte products into 32-bit lanes.
// The 16-bit products are exact; they are spilled and reloaded with a
// stride of four so each 32-bit lane sees its own group.

// quadSum adds the four products of each group into acc.
func quadSum[W rvv.Integers, H rvv.Integers](acc rvv.Vec[W], p rvv.Vec[H], n int) rvv.Vec[W] {
	var buf [16]H
	rvv.Vse(p, buf[:4*n], 4*n)
	lm := rvv.LMULFor[H](n)
	p0 := rvv.Vlse(lm, buf[0:], 4, n)
	p1 := rvv.Vlse(lm, buf[1:], 4, n)
	p2 := rvv.Vlse(lm, buf[2:], 4, n)
	p3 := rvv.Vlse(lm, buf[3:], 4, n)
	s := rvv.Vadd(rvv.Vwadd[W](p0, p1, n), rvv.Vwadd[W](p2, p3, n), n)
	return rvv.Vadd(acc, s, n)
}

// dot is vdot: the 16-bit type H holds products of N exactly.
func dot[W, H, N rvv.Integers, WV vector[W], NV vector[N]](acc WV, a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	p := rvv.Vwmul[H](load[N](nb, &a), load[N](nb, &b), nb.vl)
	return store[W, WV](wb, quadSum(load[W](wb, &acc), p, wb.vl))
}

// usdot multiplies unsigned bytes of a by signed bytes of b.
func usdot[WV vector[int32], UV vector[uint8], SV vector[int8]](acc WV, a UV, b SV) WV {
	ub, sb, wb := bindOf[uint8, UV](), bindOf[int8, SV](), bindOf[int32, WV]()
	p := rvv.Vwmulsu[int16](load[int8](sb, &b), load[uint8](ub, &a), ub.vl)
	return store[int32, WV](wb, quadSum(load[int32](wb, &acc), p, wb.vl))
}

// dupGroup broadcasts the four-byte group lane of b to every group of R.
func dupGroup[T rvv.Integers, R vector[T], V vector[T]](b V, lane int) R {
	_ = b[4*lane+3]
	src, dst := bindOf[T, V](), bindOf[T, R]()
	words := rvv.Vreinterpret[uint32](load[T](src, &b))
	g := rvv.VrgatherVX(words, uint(lane), dst.vl/4)
	return store[T, R](dst, rvv.Vreinterpret[T](g))
}
