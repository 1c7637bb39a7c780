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

// Integer arithmetic kernels. Type parameters that cannot be inferred come
// first, so an instantiation reads add[int8](a, b) or
// addl[int16, int8, Int16x8](a, b).

func add[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vadd[T]) }
func sub[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vsub[T]) }
func mul[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vmul[T]) }

func maxi[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vmax[T]) }
func mini[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vmin[T]) }

// qadd and qsub saturate the exact result to the range of T.
func qadd[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vsadd[T]) }
func qsub[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vssub[T]) }

// averaging binds a rounding mode to vaadd or vasub.
func averaging[T rvv.Integers](op func(a, b rvv.Vec[T], xrm rvv.VXRM, vl int) rvv.Vec[T], xrm rvv.VXRM) binaryOp[T] {
	return func(a, b rvv.Vec[T], vl int) rvv.Vec[T] { return op(a, b, xrm, vl) }
}

// hadd is (a + b) >> 1 computed without overflow; rhadd adds one before
// the shift.
func hadd[T rvv.Integers, V vector[T]](a, b V) V {
	return lanewise[T](a, b, averaging(rvv.Vaadd[T], rvv.RDN))
}

func rhadd[T rvv.Integers, V vector[T]](a, b V) V {
	return lanewise[T](a, b, averaging(rvv.Vaadd[T], rvv.RNU))
}

func hsub[T rvv.Integers, V vector[T]](a, b V) V {
	return lanewise[T](a, b, averaging(rvv.Vasub[T], rvv.RDN))
}

// mla is a + b*c and mls is a - b*c, both wrapping.
func mla[T rvv.Integers, V vector[T]](a, b, c V) V {
	bd := bindOf[T, V]()
	return store[T, V](bd, rvv.Vmacc(load[T](bd, &a), load[T](bd, &b), load[T](bd, &c), bd.vl))
}

func mls[T rvv.Integers, V vector[T]](a, b, c V) V {
	bd := bindOf[T, V]()
	return store[T, V](bd, rvv.Vnmsac(load[T](bd, &a), load[T](bd, &b), load[T](bd, &c), bd.vl))
}

// absDiff is max(a, b) - min(a, b), which is |a - b| modulo 2^esize.
func absDiff[T rvv.Integers](a, b rvv.Vec[T], vl int) rvv.Vec[T] {
	return rvv.Vsub(rvv.Vmax(a, b, vl), rvv.Vmin(a, b, vl), vl)
}

func abd[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, absDiff[T]) }

func aba[T rvv.Integers, V vector[T]](a, b, c V) V { return add[T](a, abd[T](b, c)) }

// abs wraps: abs(MIN) == MIN.
func abs[T rvv.SignedInts, V vector[T]](a V) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] {
		return rvv.Vmax(x, rvv.Vneg(x, vl), vl)
	})
}

// qabs saturates: qabs(MIN) == MAX.
func qabs[T rvv.SignedInts, V vector[T]](a V) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] {
		return rvv.Vmax(x, rvv.Vssub(rvv.Vmv(x.LMUL(), T(0), vl), x, vl), vl)
	})
}

func neg[T rvv.SignedInts, V vector[T]](a V) V { return unary[T](a, rvv.Vneg[T]) }

func qneg[T rvv.SignedInts, V vector[T]](a V) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] {
		return rvv.Vssub(rvv.Vmv(x.LMUL(), T(0), vl), x, vl)
	})
}

// Widening. W is the element type twice as wide as N, with the same lane
// count; WV and NV are the matching shapes.

func addl[W, N rvv.Integers, WV vector[W], NV vector[N]](a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwadd[W](load[N](nb, &a), load[N](nb, &b), wb.vl))
}

func subl[W, N rvv.Integers, WV vector[W], NV vector[N]](a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwsub[W](load[N](nb, &a), load[N](nb, &b), wb.vl))
}

func addw[W, N rvv.Integers, WV vector[W], NV vector[N]](a WV, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwaddw(load[W](wb, &a), load[N](nb, &b), wb.vl))
}

func subw[W, N rvv.Integers, WV vector[W], NV vector[N]](a WV, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwsubw(load[W](wb, &a), load[N](nb, &b), wb.vl))
}

func mull[W, N rvv.Integers, WV vector[W], NV vector[N]](a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwmul[W](load[N](nb, &a), load[N](nb, &b), wb.vl))
}

func mlal[W, N rvv.Integers, WV vector[W], NV vector[N]](acc WV, b, c NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vwmacc(load[W](wb, &acc), load[N](nb, &b), load[N](nb, &c), wb.vl))
}

func mlsl[W, N rvv.Integers, WV vector[W], NV vector[N]](acc WV, b, c NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	p := rvv.Vwmul[W](load[N](nb, &b), load[N](nb, &c), wb.vl)
	return store[W, WV](wb, rvv.Vsub(load[W](wb, &acc), p, wb.vl))
}

// abdl widens max - min, so the difference is exact.
func abdl[W, N rvv.Integers, WV vector[W], NV vector[N]](a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	x, y := load[N](nb, &a), load[N](nb, &b)
	return store[W, WV](wb, rvv.Vwsub[W](rvv.Vmax(x, y, nb.vl), rvv.Vmin(x, y, nb.vl), wb.vl))
}

func abal[W, N rvv.Integers, WV vector[W], NV vector[N]](acc WV, b, c NV) WV {
	return add[W](acc, abdl[W, N, WV](b, c))
}

// narrowHigh keeps the high half of each wide result, optionally rounded
// by adding 1 << (esize(N) - 1) first (vaddhn, vraddhn, vsubhn, vrsubhn).
func narrowHigh[N, W rvv.Integers, NV vector[N], WV vector[W]](a, b WV, op binaryOp[W], round bool) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	r := op(load[W](wb, &a), load[W](wb, &b), wb.vl)
	half := uint(esize[N]())
	if round {
		r = rvv.VaddVX(r, W(1)<<(half-1), wb.vl)
	}
	return store[N, NV](nb, rvv.Vnsr[N](r, half, nb.vl))
}

func addhn[N, W rvv.Integers, NV vector[N], WV vector[W]](a, b WV) NV {
	return narrowHigh[N, W, NV](a, b, rvv.Vadd[W], false)
}

func raddhn[N, W rvv.Integers, NV vector[N], WV vector[W]](a, b WV) NV {
	return narrowHigh[N, W, NV](a, b, rvv.Vadd[W], true)
}

func subhn[N, W rvv.Integers, NV vector[N], WV vector[W]](a, b WV) NV {
	return narrowHigh[N, W, NV](a, b, rvv.Vsub[W], false)
}

func rsubhn[N, W rvv.Integers, NV vector[N], WV vector[W]](a, b WV) NV {
	return narrowHigh[N, W, NV](a, b, rvv.Vsub[W], true)
}

// Pairwise. The even and odd lanes are split with a two-field segment
// load, so lane i of the result combines lanes 2i and 2i+1.

func pairwise[T rvv.Integers, V vector[T]](a, b V, op binaryOp[T]) V {
	full := bindOf[T, V]()
	n := full.vl / 2
	ea, oa := rvv.Vlseg2(full.lmul, lanesOf[T](&a), n)
	eb, ob := rvv.Vlseg2(full.lmul, lanesOf[T](&b), n)
	return store[T, V](full, rvv.Vslideup(op(ea, oa, n), op(eb, ob, n), n, full.vl))
}

func padd[T rvv.Integers, V vector[T]](a, b V) V { return pairwise[T](a, b, rvv.Vadd[T]) }
func pmax[T rvv.Integers, V vector[T]](a, b V) V { return pairwise[T](a, b, rvv.Vmax[T]) }
func pmin[T rvv.Integers, V vector[T]](a, b V) V { return pairwise[T](a, b, rvv.Vmin[T]) }

// paddl adds adjacent lanes into the wide type: half as many lanes.
func paddl[W, N rvv.Integers, WV vector[W], NV vector[N]](a NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	even, odd := rvv.Vlseg2(nb.lmul, lanesOf[N](&a), wb.vl)
	return store[W, WV](wb, rvv.Vwadd[W](even, odd, wb.vl))
}

func padal[W, N rvv.Integers, WV vector[W], NV vector[N]](acc WV, a NV) WV {
	return add[W](acc, paddl[W, N, WV](a))
}

// Doubling multiplies. vsmul computes (a*b) >> (esize-1) with rounding and
// saturation, which is the doubled high half.

func smul[T rvv.SignedInts](xrm rvv.VXRM) binaryOp[T] {
	return func(a, b rvv.Vec[T], vl int) rvv.Vec[T] { return rvv.Vsmul(a, b, xrm, vl) }
}

func qdmulh[T rvv.SignedInts, V vector[T]](a, b V) V { return lanewise[T](a, b, smul[T](rvv.RDN)) }
func qrdmulh[T rvv.SignedInts, V vector[T]](a, b V) V {
	return lanewise[T](a, b, smul[T](rvv.RNU))
}

// doubledProduct returns sat(2*b*c) in the wide type.
func doubledProduct[W, N rvv.SignedInts](b, c rvv.Vec[N], vl int) rvv.Vec[W] {
	p := rvv.Vwmul[W](b, c, vl)
	return rvv.Vsadd(p, p, vl)
}

func qdmull[W, N rvv.SignedInts, WV vector[W], NV vector[N]](a, b NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, doubledProduct[W](load[N](nb, &a), load[N](nb, &b), wb.vl))
}

func qdmlal[W, N rvv.SignedInts, WV vector[W], NV vector[N]](acc WV, b, c NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	p := doubledProduct[W](load[N](nb, &b), load[N](nb, &c), wb.vl)
	return store[W, WV](wb, rvv.Vsadd(load[W](wb, &acc), p, wb.vl))
}

func qdmlsl[W, N rvv.SignedInts, WV vector[W], NV vector[N]](acc WV, b, c NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	p := doubledProduct[W](load[N](nb, &b), load[N](nb, &c), wb.vl)
	return store[W, WV](wb, rvv.Vssub(load[W](wb, &acc), p, wb.vl))
}

// qrdmlah computes sat((acc << esize + 2*b*c + 1 << (esize-1)) >> esize)
// with a single rounding and saturation. W is the double-width type used
// for the intermediate.
func qrdmlah[T, W rvv.SignedInts, V vector[T]](acc, b, c V) V {
	return roundingAccumulate[T, W](acc, b, c, false)
}

func qrdmlsh[T, W rvv.SignedInts, V vector[T]](acc, b, c V) V {
	return roundingAccumulate[T, W](acc, b, c, true)
}

func roundingAccumulate[T, W rvv.SignedInts, V vector[T]](acc, b, c V, subtract bool) V {
	bd := bindOf[T, V]()
	e := uint(esize[T]())
	p := rvv.Vwmul[W](load[T](bd, &b), load[T](bd, &c), bd.vl)
	if subtract {
		p = rvv.Vneg(p, bd.vl)
	}
	// 2*b*c >> esize rounded equals b*c >> (esize-1) rounded; the product
	// of two esize values cannot overflow W.
	p = rvv.VssrVX(p, e-1, rvv.RNU, bd.vl)
	sum := rvv.Vwaddw(p, load[T](bd, &acc), bd.vl)
	return store[T, V](bd, rvv.Vnclip[T](sum, 0, rvv.RDN, bd.vl))
}
