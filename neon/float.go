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

// Floating-point kernels compute with the RVV float instructions and then
// repair the lanes whose inputs were NaN. RVV returns the canonical NaN,
// while Arm propagates an input NaN: the first signaling NaN operand,
// else the first quiet NaN operand, in both cases made quiet. NaNs
// produced from non-NaN inputs (Inf - Inf, 0 * Inf, sqrt(-1)) are the
// default NaN on both architectures and need no repair.

func isNaN[F rvv.Floats](x F) bool {
	return x != x
}

// quietBit returns the most significant fraction bit of F.
func quietBit[F rvv.Floats]() uint64 {
	if esize[F]() == 32 {
		return 1 << 22
	}
	return 1 << 51
}

func isSNaN[F rvv.Floats](x F) bool {
	return x != x && rvv.FloatBits(x)&quietBit[F]() == 0
}

// quiet returns x with the quiet bit set, keeping sign and payload.
func quiet[F rvv.Floats](x F) F {
	return rvv.FloatFromBits[F](rvv.FloatBits(x) | quietBit[F]())
}

// negate flips the sign bit (FPNeg), leaving a NaN's payload untouched.
func negate[F rvv.Floats](x F) F {
	return rvv.FloatFromBits[F](rvv.FloatBits(x) ^ 1<<(esize[F]()-1))
}

// defaultNaN returns the Arm default NaN, which has the same encoding as
// the RISC-V canonical NaN.
func defaultNaN[F rvv.Floats]() F {
	return rvv.CanonicalNaN[F]()
}

// processNaNs returns the NaN Arm propagates from ops, and whether any
// operand was NaN.
func processNaNs[F rvv.Floats](ops ...F) (F, bool) {
	for _, x := range ops {
		if isSNaN(x) {
			return quiet(x), true
		}
	}
	for _, x := range ops {
		if isNaN(x) {
			return x, true
		}
	}
	var zero F
	return zero, false
}

func fixNaN1[F rvv.Floats, V vector[F]](r *V, a *V) {
	for i := 0; i < len(*r); i++ {
		if x := (*a)[i]; isNaN(x) {
			(*r)[i] = quiet(x)
		}
	}
}

func fixNaN2[F rvv.Floats, V vector[F]](r *V, a, b *V) {
	for i := 0; i < len(*r); i++ {
		if n, ok := processNaNs((*a)[i], (*b)[i]); ok {
			(*r)[i] = n
		}
	}
}

// fixFMA repairs a fused multiply-add acc + x*y. A quiet NaN addend
// combined with Inf * 0 yields the default NaN.
func fixFMA[F rvv.Floats, V vector[F]](r *V, acc, x, y *V) {
	for i := 0; i < len(*r); i++ {
		c, p, q := (*acc)[i], (*x)[i], (*y)[i]
		n, ok := processNaNs(c, p, q)
		if !ok {
			continue
		}
		if isNaN(c) && !isSNaN(c) && infTimesZero(p, q) {
			n = defaultNaN[F]()
		}
		(*r)[i] = n
	}
}

func infTimesZero[F rvv.Floats](p, q F) bool {
	return (math.IsInf(float64(p), 0) && q == 0) || (p == 0 && math.IsInf(float64(q), 0))
}

// negLanes flips the sign bit of every lane, NaNs included (FPNeg).
func negLanes[F rvv.Floats, V vector[F]](v V) V {
	b := bindOf[F, V]()
	return store[F, V](b, rvv.Vfneg(load[F](b, &v), b.vl))
}

func fbinary[F rvv.Floats, V vector[F]](a, b V, op binaryOp[F]) V {
	bd := bindOf[F, V]()
	out := store[F, V](bd, op(load[F](bd, &a), load[F](bd, &b), bd.vl))
	fixNaN2[F](&out, &a, &b)
	return out
}

func fadd[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfadd[F]) }
func fsub[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfsub[F]) }
func fmul[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfmul[F]) }
func fdiv[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfdiv[F]) }

// fmax and fmin propagate NaN operands; the RVV instructions return the
// number, so every lane with a NaN operand is repaired.
func fmax[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfmax[F]) }
func fmin[F rvv.Floats, V vector[F]](a, b V) V { return fbinary[F](a, b, rvv.Vfmin[F]) }

// fmaxnm and fminnm follow IEEE maxNum/minNum: a single quiet NaN operand
// is ignored, while signaling NaNs propagate.
func fmaxnm[F rvv.Floats, V vector[F]](a, b V) V { return fnum[F](a, b, rvv.Vfmax[F]) }
func fminnm[F rvv.Floats, V vector[F]](a, b V) V { return fnum[F](a, b, rvv.Vfmin[F]) }

func fnum[F rvv.Floats, V vector[F]](a, b V, op binaryOp[F]) V {
	bd := bindOf[F, V]()
	out := store[F, V](bd, op(load[F](bd, &a), load[F](bd, &b), bd.vl))
	for i := 0; i < len(out); i++ {
		x, y := a[i], b[i]
		if isSNaN(x) || isSNaN(y) || (isNaN(x) && isNaN(y)) {
			out[i], _ = processNaNs(x, y)
		}
	}
	return out
}

// fmla is the unfused multiply-accumulate a + b*c: two roundings.
func fmla[F rvv.Floats, V vector[F]](a, b, c V) V { return fadd[F](a, fmul[F](b, c)) }

// fmls is the unfused a - b*c.
func fmls[F rvv.Floats, V vector[F]](a, b, c V) V { return fsub[F](a, fmul[F](b, c)) }

// fma computes a + b*c with a single rounding (FMLA).
func fma[F rvv.Floats, V vector[F]](a, b, c V) V {
	bd := bindOf[F, V]()
	out := store[F, V](bd, rvv.Vfmacc(load[F](bd, &a), load[F](bd, &b), load[F](bd, &c), bd.vl))
	fixFMA[F](&out, &a, &b, &c)
	return out
}

// fms computes a - b*c with a single rounding (FMLS). The product operand
// is negated before NaN propagation.
func fms[F rvv.Floats, V vector[F]](a, b, c V) V {
	bd := bindOf[F, V]()
	out := store[F, V](bd, rvv.Vfnmsac(load[F](bd, &a), load[F](bd, &b), load[F](bd, &c), bd.vl))
	nb := negLanes[F](b)
	fixFMA[F](&out, &a, &nb, &c)
	return out
}

func fabs[F rvv.Floats, V vector[F]](a V) V {
	b := bindOf[F, V]()
	return store[F, V](b, rvv.Vfabs(load[F](b, &a), b.vl))
}

func fneg[F rvv.Floats, V vector[F]](a V) V { return negLanes[F](a) }

// fabd is |a - b|; the absolute value also clears the sign of a
// propagated NaN.
func fabd[F rvv.Floats, V vector[F]](a, b V) V { return fabs[F](fsub[F](a, b)) }

func fsqrt[F rvv.Floats, V vector[F]](a V) V {
	b := bindOf[F, V]()
	out := store[F, V](b, rvv.Vfsqrt(load[F](b, &a), b.vl))
	fixNaN1[F](&out, &a)
	return out
}

// fpairwise applies op to adjacent lane pairs of a, then of b.
func fpairwise[F rvv.Floats, V vector[F]](a, b V, op binaryOp[F]) V {
	full := bindOf[F, V]()
	n := full.vl / 2
	ea, oa := rvv.Vlseg2(full.lmul, lanesOf[F](&a), n)
	eb, ob := rvv.Vlseg2(full.lmul, lanesOf[F](&b), n)
	out := store[F, V](full, rvv.Vslideup(op(ea, oa, n), op(eb, ob, n), n, full.vl))
	for i := 0; i < n; i++ {
		if x, ok := processNaNs(a[2*i], a[2*i+1]); ok {
			out[i] = x
		}
		if x, ok := processNaNs(b[2*i], b[2*i+1]); ok {
			out[n+i] = x
		}
	}
	return out
}

func fpadd[F rvv.Floats, V vector[F]](a, b V) V { return fpairwise[F](a, b, rvv.Vfadd[F]) }
func fpmax[F rvv.Floats, V vector[F]](a, b V) V { return fpairwise[F](a, b, rvv.Vfmax[F]) }
func fpmin[F rvv.Floats, V vector[F]](a, b V) V { return fpairwise[F](a, b, rvv.Vfmin[F]) }
