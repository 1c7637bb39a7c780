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

import (
	"math"

	"github.com/ajroetker/neon2rvv/rvv"
)

// movl sign or zero extends each lane to the wide type.
func movl[W, N rvv.Integers, WV vector[W], NV vector[N]](a NV) WV {
	nb, wb := bindOf[N, NV](), bindOf[W, WV]()
	return store[W, WV](wb, rvv.Vext[W](load[N](nb, &a), wb.vl))
}

// movn keeps the low half of each lane.
func movn[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	return store[N, NV](nb, rvv.Vnsr[N](load[W](wb, &a), 0, nb.vl))
}

// qmovn saturates each lane to the range of N.
func qmovn[N, W rvv.Integers, NV vector[N], WV vector[W]](a WV) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	return store[N, NV](nb, rvv.Vnclip[N](load[W](wb, &a), 0, rvv.RDN, nb.vl))
}

// qmovun saturates signed lanes to the unsigned range of N.
func qmovun[N rvv.UnsignedInts, W rvv.SignedInts, UW rvv.UnsignedInts, NV vector[N], WV vector[W]](a WV) NV {
	wb, nb := bindOf[W, WV](), bindOf[N, NV]()
	u := nonNegative[UW](load[W](wb, &a), wb.vl)
	return store[N, NV](nb, rvv.Vnclip[N](u, 0, rvv.RDN, nb.vl))
}

// cvtToInt converts with the rounding mode frm and saturates. NaN lanes
// become 0, where RVV would produce the maximum integer.
func cvtToInt[I rvv.Integers, F rvv.Floats, IV vector[I], FV vector[F]](a FV, frm rvv.FRM) IV {
	b := bindOf[F, FV]()
	x := load[F](b, &a)
	r := rvv.VfcvtXF[I](x, frm, b.vl)
	nan := rvv.Vmfne(x, x, b.vl)
	return store[I, IV](b, rvv.Vmerge(r, rvv.Vmv(b.lmul, I(0), b.vl), nan, b.vl))
}

func cvtFromInt[F rvv.Floats, I rvv.Integers, FV vector[F], IV vector[I]](a IV) FV {
	b := bindOf[I, IV]()
	return store[F, FV](b, rvv.VfcvtFX[F](load[I](b, &a), b.vl))
}

// cvtNToInt converts to fixed point with n fraction bits, 1..esize,
// truncating toward zero.
func cvtNToInt[I rvv.Integers, F rvv.Floats, IV vector[I], FV vector[F]](a FV, n int) IV {
	b := bindOf[F, FV]()
	scaled := store[F, FV](b, rvv.Vfmul(load[F](b, &a), rvv.Vmv(b.lmul, F(math.Ldexp(1, n)), b.vl), b.vl))
	return cvtToInt[I, F, IV](scaled, rvv.FrmRTZ)
}

// cvtNFromInt converts from fixed point with n fraction bits.
func cvtNFromInt[F rvv.Floats, I rvv.Integers, FV vector[F], IV vector[I]](a IV, n int) FV {
	b := bindOf[I, IV]()
	f := rvv.VfcvtFX[F](load[I](b, &a), b.vl)
	return store[F, FV](b, rvv.Vfmul(f, rvv.Vmv(b.lmul, F(math.Ldexp(1, -n)), b.vl), b.vl))
}

// A NaN keeps its sign and the high bits of its payload across a width
// conversion, and becomes quiet.

func nanToFloat64(x float32) float64 {
	bits := uint64(math.Float32bits(x))
	sign, frac := bits>>31, bits&(1<<23-1)
	return math.Float64frombits(sign<<63 | 0x7FF<<52 | 1<<51 | frac<<29)
}

func nanToFloat32(x float64) float32 {
	bits := math.Float64bits(x)
	sign, frac := uint32(bits>>63), uint32(bits>>29)&(1<<23-1)
	return math.Float32frombits(sign<<31 | 0xFF<<23 | 1<<22 | frac)
}

// cvtF64 widens the low lanes exactly.
func cvtF64[DV vector[float64], SV vector[float32]](a SV) DV {
	sb, db := bindOf[float32, SV](), bindOf[float64, DV]()
	out := store[float64, DV](db, rvv.VfwcvtFF(load[float32](sb, &a), db.vl))
	for i := 0; i < len(out); i++ {
		if isNaN(a[i]) {
			out[i] = nanToFloat64(a[i])
		}
	}
	return out
}

// cvtF32 narrows rounding to nearest even; cvtxF32 rounds to odd
// (FCVTXN), which makes a later narrowing free of double rounding.
func cvtF32[SV vector[float32], DV vector[float64]](a DV) SV {
	return narrowFloat[SV](a, rvv.VfncvtFF)
}

func cvtxF32[SV vector[float32], DV vector[float64]](a DV) SV {
	return narrowFloat[SV](a, rvv.VfncvtRodFF)
}

func narrowFloat[SV vector[float32], DV vector[float64]](a DV, op func(rvv.Vec[float64], int) rvv.Vec[float32]) SV {
	db, sb := bindOf[float64, DV](), bindOf[float32, SV]()
	out := store[float32, SV](sb, op(load[float64](db, &a), sb.vl))
	for i := 0; i < len(out); i++ {
		if isNaN(a[i]) {
			out[i] = nanToFloat32(a[i])
		}
	}
	return out
}

// rnd rounds to an integral value in floating point. Values of magnitude
// 2^(mantissa bits) or more are already integral and pass through, as do
// infinities. I is the integer type of F's width.
func rnd[F rvv.Floats, I rvv.SignedInts, V vector[F]](a V, frm rvv.FRM) V {
	b := bindOf[F, V]()
	vl := b.vl
	x := load[F](b, &a)
	limit := F(1 << 23)
	if esize[F]() == 64 {
		limit = 1 << 52
	}
	small := rvv.Vmflt(rvv.Vfabs(x, vl), rvv.Vmv(b.lmul, limit, vl), vl)
	r := rvv.VfcvtFX[F](rvv.VfcvtXF[I](x, frm, vl), vl)
	// Integral results keep the sign of the input: rnd(-0.25) == -0.
	r = rvv.Vfsgnj(r, x, vl)
	out := store[F, V](b, rvv.Vmerge(x, r, small, vl))
	fixNaN1[F](&out, &a)
	return out
}
