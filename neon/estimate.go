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

// Reciprocal and reciprocal square root estimates reproduce Arm's 8-bit
// tables bit for bit. RVV's vfrec7/vfrsqrt7 use different 7-bit tables,
// so the estimate is computed per lane. Flush-to-zero is not modelled.

// recipEstimate maps a 9-bit input 256..511 to a 9-bit estimate of
// 2^18 / a.
func recipEstimate(a uint64) uint64 {
	a = a*2 + 1
	b := (1 << 19) / a
	return (b + 1) / 2
}

// rsqrtEstimate maps a 9-bit input 128..511 to a 9-bit estimate of
// 2^14 / sqrt(a).
func rsqrtEstimate(a uint64) uint64 {
	if a < 256 {
		a = a*2 + 1
	} else {
		a = (a >> 1) << 1
		a = (a + 1) * 2
	}
	b := uint64(512)
	for a*(b+1)*(b+1) < 1<<28 {
		b++
	}
	return (b + 1) / 2
}

// floatLayout describes an IEEE binary format.
type floatLayout struct {
	fracBits, expBits uint
	bias              int
}

func layoutOf[F rvv.Floats]() floatLayout {
	if esize[F]() == 32 {
		return floatLayout{fracBits: 23, expBits: 8, bias: 127}
	}
	return floatLayout{fracBits: 52, expBits: 11, bias: 1023}
}

// unpack returns the sign, biased exponent and the fraction widened to 52
// bits.
func unpack[F rvv.Floats](x F) (sign uint64, exp int, frac uint64) {
	l := layoutOf[F]()
	bits := rvv.FloatBits(x)
	sign = bits >> (l.fracBits + l.expBits)
	exp = int(bits>>l.fracBits) & (1<<l.expBits - 1)
	frac = (bits & (1<<l.fracBits - 1)) << (52 - l.fracBits)
	return sign, exp, frac
}

// pack assembles a float from the sign, biased exponent and a 52-bit
// fraction.
func pack[F rvv.Floats](sign uint64, exp int, frac uint64) F {
	l := layoutOf[F]()
	bits := sign<<(l.fracBits+l.expBits) | uint64(exp)<<l.fracBits | frac>>(52-l.fracBits)
	return rvv.FloatFromBits[F](bits)
}

func signedInf[F rvv.Floats](sign uint64) F {
	return F(math.Inf(1 - 2*int(sign)))
}

// recipEstimateFloat is FPRecipEstimate with round to nearest.
func recipEstimateFloat[F rvv.Floats](x F) F {
	l := layoutOf[F]()
	sign, exp, frac := unpack(x)
	ax := math.Abs(float64(x))
	switch {
	case isNaN(x):
		return quiet(x)
	case math.IsInf(float64(x), 0):
		return pack[F](sign, 0, 0)
	case x == 0:
		return signedInf[F](sign)
	case ax < math.Ldexp(1, -l.bias-1):
		// The reciprocal overflows.
		return signedInf[F](sign)
	}
	if exp == 0 {
		if frac&(1<<51) == 0 {
			exp = -1
			frac = (frac & (1<<50 - 1)) << 2
		} else {
			frac = (frac & (1<<51 - 1)) << 1
		}
	}
	scaled := 1<<8 | frac>>44
	resultExp := 2*l.bias - 1 - exp
	est := recipEstimate(scaled)
	frac = (est & 0xFF) << 44
	switch resultExp {
	case 0:
		frac = 1<<51 | frac>>1
	case -1:
		frac = 1<<50 | frac>>2
		resultExp = 0
	}
	return pack[F](sign, resultExp, frac)
}

// rsqrtEstimateFloat is FPRSqrtEstimate.
func rsqrtEstimateFloat[F rvv.Floats](x F) F {
	l := layoutOf[F]()
	sign, exp, frac := unpack(x)
	switch {
	case isNaN(x):
		return quiet(x)
	case x == 0:
		return signedInf[F](sign)
	case sign == 1:
		return defaultNaN[F]()
	case math.IsInf(float64(x), 1):
		return 0
	}
	if exp == 0 {
		for frac&(1<<51) == 0 {
			frac <<= 1
			exp--
		}
		frac = (frac << 1) & (1<<52 - 1)
	}
	var scaled uint64
	if exp&1 == 0 {
		scaled = 1<<8 | frac>>44
	} else {
		scaled = 1<<7 | frac>>45
	}
	resultExp := (3*l.bias - 1 - exp) / 2
	est := rsqrtEstimate(scaled)
	return pack[F](0, resultExp, (est&0xFF)<<44)
}

func recpe[F rvv.Floats, V vector[F]](a V) V {
	var out V
	for i := 0; i < len(a); i++ {
		out[i] = recipEstimateFloat(a[i])
	}
	return out
}

func rsqrte[F rvv.Floats, V vector[F]](a V) V {
	var out V
	for i := 0; i < len(a); i++ {
		out[i] = rsqrtEstimateFloat(a[i])
	}
	return out
}

// urecpe is the unsigned fixed-point estimate of 1/x for x in [0.5, 1).
// Inputs below 0.5 saturate to all ones.
func urecpe[V vector[uint32]](a V) V {
	var out V
	for i := 0; i < len(a); i++ {
		x := a[i]
		if x>>31 == 0 {
			out[i] = math.MaxUint32
			continue
		}
		out[i] = uint32(recipEstimate(uint64(x>>23))) << 23
	}
	return out
}

// ursqrte is the unsigned fixed-point estimate of 1/sqrt(x) for x in
// [0.25, 1).
func ursqrte[V vector[uint32]](a V) V {
	var out V
	for i := 0; i < len(a); i++ {
		x := a[i]
		if x>>30 == 0 {
			out[i] = math.MaxUint32
			continue
		}
		out[i] = uint32(rsqrtEstimate(uint64(x>>23))) << 23
	}
	return out
}

// recps is the Newton-Raphson step 2 - a*b, fused. Inf * 0 gives 2.
func recps[F rvv.Floats, V vector[F]](a, b V) V {
	return step[F](a, b, 2, 1)
}

// rsqrts is (3 - a*b) / 2, fused. Inf * 0 gives 1.5.
func rsqrts[F rvv.Floats, V vector[F]](a, b V) V {
	return step[F](a, b, 3, 0.5)
}

func step[F rvv.Floats, V vector[F]](a, b V, c, scale F) V {
	bd := bindOf[F, V]()
	vl := bd.vl
	r := rvv.Vfnmsac(rvv.Vmv(bd.lmul, c, vl), load[F](bd, &a), load[F](bd, &b), vl)
	if scale != 1 {
		r = rvv.Vfmul(r, rvv.Vmv(bd.lmul, scale, vl), vl)
	}
	out := store[F, V](bd, r)
	for i := 0; i < len(out); i++ {
		x, y := a[i], b[i]
		if n, ok := processNaNs(negate(x), y); ok {
			out[i] = n
		} else if infTimesZero(x, y) {
			out[i] = c * scale
		}
	}
	return out
}
