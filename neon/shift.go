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

// RVV shifts use only the low log2(SEW) bits of the amount, while Arm
// register shifts take a signed byte and shift right when it is negative.
// Shifts by esize or more are handled explicitly below.

// shiftCounts loads the signed low byte of each shift lane, clamped to
// [-esize-1, esize]. Left shifts past esize behave like esize. Right
// shifts past esize differ from esize only for rounding unsigned lanes.
func shiftCounts[S rvv.SignedInts, SV vector[S]](b binding, shift *SV) rvv.Vec[S] {
	e := esize[S]()
	s := load[S](b, shift)
	if e > 8 {
		s = rvv.VsrVX(rvv.VsllVX(s, uint(e-8), b.vl), uint(e-8), b.vl)
	}
	s = rvv.Vmin(s, rvv.Vmv(b.lmul, S(e), b.vl), b.vl)
	return rvv.Vmax(s, rvv.Vmv(b.lmul, S(-e-1), b.vl), b.vl)
}

// shiftMode selects the register shift flavor: plain (vshl), rounding
// (vrshl), saturating (vqshl) or both (vqrshl).
type shiftMode struct {
	round, saturate bool
}

func regShift[T rvv.Integers, S rvv.SignedInts, V vector[T], SV vector[S]](a V, shift SV, mode shiftMode) V {
	b := bindOf[T, V]()
	vl := b.vl
	e := esize[T]()
	x := load[T](b, &a)
	s := shiftCounts[S](b, &shift)
	n := rvv.Vreinterpret[T](s)
	zero := rvv.Vmv(b.lmul, T(0), vl)
	isE := rvv.Vmseq(s, rvv.Vmv(b.lmul, S(e), vl), vl)

	// Left by 0..esize. The amount esize is out of RVV range and gives 0.
	left := rvv.Vmerge(rvv.Vsll(x, n, vl), zero, isE, vl)
	if mode.saturate {
		back := rvv.Vsr(left, n, vl)
		ovf := rvv.Vmand(rvv.Vmsne(back, x, vl), rvv.Vmnot(isE))
		ovf = rvv.Vmor(ovf, rvv.Vmand(isE, rvv.Vmsne(x, zero, vl)))
		left = rvv.Vmerge(left, saturated(b, x), ovf, vl)
	}

	// Right by 1..esize+1.
	m := rvv.Vneg(s, vl)
	eVec := rvv.Vmv(b.lmul, S(e), vl)
	var right rvv.Vec[T]
	switch {
	case mode.round:
		right = rvv.Vssr(x, rvv.Vreinterpret[T](m), rvv.RNU, vl)
		// (x + 2^(esize-1)) >> esize: 0 for signed, the top bit for unsigned.
		top := zero
		if !isSigned[T]() {
			top = rvv.VsrVX(x, uint(e-1), vl)
		}
		right = rvv.Vmerge(right, top, rvv.Vmseq(m, eVec, vl), vl)
		right = rvv.Vmerge(right, zero, rvv.Vmsgt(m, eVec, vl), vl)
	case isSigned[T]():
		m = rvv.Vmin(m, rvv.Vmv(b.lmul, S(e-1), vl), vl)
		right = rvv.Vsr(x, rvv.Vreinterpret[T](m), vl)
	default:
		right = rvv.Vmerge(rvv.Vsr(x, rvv.Vreinterpret[T](m), vl), zero, rvv.Vmsge(m, eVec, vl), vl)
	}

	neg := rvv.Vmslt(s, rvv.Vmv(b.lmul, S(0), vl), vl)
	return store[T, V](b, rvv.Vmerge(left, right, neg, vl))
}

// saturated returns MAX for non-negative lanes of x and MIN for negative
// ones.
func saturated[T rvv.Integers](b binding, x rvv.Vec[T]) rvv.Vec[T] {
	hi := rvv.Vmv(b.lmul, maxOf[T](), b.vl)
	if !isSigned[T]() {
		return hi
	}
	lo := rvv.Vmv(b.lmul, minOf[T](), b.vl)
	return rvv.Vmerge(hi, lo, rvv.Vmslt(x, rvv.Vmv(b.lmul, T(0), b.vl), b.vl), b.vl)
}

func shl[T rvv.Integers, S rvv.SignedInts, V vector[T], SV vector[S]](a V, shift SV) V {
	return regShift[T, S](a, shift, shiftMode{})
}

func rshl[T rvv.Integers, S rvv.SignedInts, V vector[T], SV vector[S]](a V, shift SV) V {
	return regShift[T, S](a, shift, shiftMode{round: true})
}

func qshl[T rvv.Integers, S rvv.SignedInts, V vector[T], SV vector[S]](a V, shift SV) V {
	return regShift[T, S](a, shift, shiftMode{saturate: true})
}

func qrshl[T rvv.Integers, S rvv.SignedInts, V vector[T], SV vector[S]](a V, shift SV) V {
	return regShift[T, S](a, shift, shiftMode{round: true, saturate: true})
}

// Immediate shifts. n is 0..esize-1 for left shifts and 1..esize for
// right shifts.

func shlN[T rvv.Integers, V vector[T]](a V, n int) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] { return rvv.VsllVX(x, uint(n), vl) })
}

func shrN[T rvv.Integers, V vector[T]](a V, n int) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] { return shiftRight(x, n, vl) })
}

func shiftRight[T rvv.Integers](x rvv.Vec[T], n, vl int) rvv.Vec[T] {
	e := esize[T]()
	if n < e {
		return rvv.VsrVX(x, uint(n), vl)
	}
	if isSigned[T]() {
		return rvv.VsrVX(x, uint(e-1), vl)
	}
	return rvv.Vmv(x.LMUL(), T(0), vl)
}

func rshrN[T rvv.Integers, V vector[T]](a V, n int) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] { return roundingShiftRight(x, n, vl) })
}

func roundingShiftRight[T rvv.Integers](x rvv.Vec[T], n, vl int) rvv.Vec[T] {
	e := esize[T]()
	if n < e {
		return rvv.VssrVX(x, uint(n), rvv.RNU, vl)
	}
	if isSigned[T]() {
		return rvv.Vmv(x.LMUL(), T(0), vl)
	}
	return rvv.VsrVX(x, uint(e-1), vl)
}

func sraN[T rvv.Integers, V vector[T]](acc, a V, n int) V { return add[T](acc, shrN[T](a, n)) }
func rsraN[T rvv.Integers, V vector[T]](acc, a V, n int) V { return add[T](acc, rshrN[T](a, n)) }

// qshlN shifts left by n and saturates lanes whose bits would be lost.
func qshlN[T rvv.Integers, V vector[T]](a V, n int) V {
	b := bindOf[T, V]()
	x := load[T](b, &a)
	l := rvv.VsllVX(x, uint(n), b.vl)
	ovf := rvv.Vmsne(rvv.VsrVX(l, uint(n), b.vl), x, b.vl)
	return store[T, V](b, rvv.Vmerge(l, saturated(b, x), ovf, b.vl))
}

// qshluN shifts a signed value left into the unsigned range: negative
// lanes become 0, overflowing lanes MAX.
func qshluN[T rvv.SignedInts, U rvv.UnsignedInts, V vector[T], UV vector[U]](a V, n int) UV {
	b := bindOf[T, V]()
	x := load[T](b, &a)
	neg := rvv.Vmslt(x, rvv.Vmv(b.lmul, T(0), b.vl), b.vl)
	u := rvv.Vreinterpret[U](x)
	l := rvv.VsllVX(u, uint(n), b.vl)
	ovf := rvv.Vmsne(rvv.VsrVX(l, uint(n), b.vl), u, b.vl)
	r := rvv.Vmerge(l, rvv.Vmv(b.lmul, ^U(0), b.vl), ovf, b.vl)
	r = rvv.Vmerge(r, rvv.Vmv(b.lmul, U(0), b.vl), neg, b.vl)
	return store[U, UV](b, r)
}

// shllN widens then shifts left by n, 0..esize(N).
func shllN[W, N rvv.Integers, WV vector[W], NV vector[N]](a NV, n int) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.VsllVX(rvv.Vext[W](load[N](nb, &a), wb.vl), uint(n), wb.vl))
}

// Narrowing right shifts by n, 1..esize(N).

func shrnN[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	return store[N, NV](nb, rvv.Vnsr[N](load[W](wb, &a), uint(n), nb.vl))
}

func rshrnN[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	r := rvv.VssrVX(load[W](wb, &a), uint(n), rvv.RNU, wb.vl)
	return store[N, NV](nb, rvv.Vnsr[N](r, 0, nb.vl))
}

func qshrnN[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	return store[N, NV](nb, rvv.Vnclip[N](load[W](wb, &a), uint(n), rvv.RDN, nb.vl))
}

func qrshrnN[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	return store[N, NV](nb, rvv.Vnclip[N](load[W](wb, &a), uint(n), rvv.RNU, nb.vl))
}

// nonNegative clamps negative signed lanes to zero and views the result
// as unsigned, ready for vnclipu.
func nonNegative[U rvv.UnsignedInts, W rvv.SignedInts](x rvv.Vec[W], vl int) rvv.Vec[U] {
	return rvv.Vreinterpret[U](rvv.Vmax(x, rvv.Vmv(x.LMUL(), W(0), vl), vl))
}

// qshrunN narrows a signed value into the unsigned range of N. UW is the
// unsigned type of W's width.
func qshrunN[N rvv.UnsignedInts, W rvv.SignedInts, UW rvv.UnsignedInts, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	u := nonNegative[UW](load[W](wb, &a), wb.vl)
	return store[N, NV](nb, rvv.Vnclip[N](u, uint(n), rvv.RDN, nb.vl))
}

func qrshrunN[N rvv.UnsignedInts, W rvv.SignedInts, UW rvv.UnsignedInts, NV vector[N], WV vector[W]](a WV, n int) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	u := nonNegative[UW](load[W](wb, &a), wb.vl)
	return store[N, NV](nb, rvv.Vnclip[N](u, uint(n), rvv.RNU, nb.vl))
}

// sliN inserts b << n into a, keeping the low n bits of a.
func sliN[T rvv.Integers, V vector[T]](a, b V, n int) V {
	bd := bindOf[T, V]()
	keep := T(^uint64(0) >> (64 - n))
	x, y := load[T](bd, &a), load[T](bd, &b)
	r := rvv.Vor(rvv.VsllVX(y, uint(n), bd.vl), rvv.Vand(x, rvv.Vmv(bd.lmul, keep, bd.vl), bd.vl), bd.vl)
	return store[T, V](bd, r)
}

// sriN inserts b >> n into a, keeping the high n bits of a. The shifted
// field is masked, so an arithmetic shift serves signed lanes too.
func sriN[T rvv.Integers, V vector[T]](a, b V, n int) V {
	bd := bindOf[T, V]()
	e := esize[T]()
	field := T(^uint64(0) >> (64 - e + n))
	x, y := load[T](bd, &a), load[T](bd, &b)
	shifted := rvv.Vand(rvv.VsrVX(y, uint(n), bd.vl), rvv.Vmv(bd.lmul, field, bd.vl), bd.vl)
	r := rvv.Vor(shifted, rvv.Vand(x, rvv.Vmv(bd.lmul, ^field, bd.vl), bd.vl), bd.vl)
	return store[T, V](bd, r)
}
