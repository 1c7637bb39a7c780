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

package rvv

import "math"

// Floating-point arithmetic rounds to nearest, ties to even. Any NaN
// result is the canonical NaN (quiet, positive, zero payload), as required
// by the RISC-V F and D extensions.

const (
	canonicalNaN32 = 0x7FC00000
	canonicalNaN64 = 0x7FF8000000000000
)

// CanonicalNaN returns the RISC-V canonical NaN of type F.
func CanonicalNaN[F Floats]() F {
	if sizeOf[F]() == 4 {
		return FloatFromBits[F](canonicalNaN32)
	}
	return FloatFromBits[F](canonicalNaN64)
}

// FloatBits returns the IEEE 754 encoding of f, zero-extended to 64 bits.
func FloatBits[F Floats](f F) uint64 {
	if sizeOf[F]() == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FloatFromBits returns the float of type F encoded by the low bits of b.
func FloatFromBits[F Floats](b uint64) F {
	if sizeOf[F]() == 4 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

func canon[F Floats](f F) F {
	if f != f {
		return CanonicalNaN[F]()
	}
	return f
}

// fma returns a*b + c rounded once.
func fma[F Floats](a, b, c F) F {
	if sizeOf[F]() == 8 {
		return F(math.FMA(float64(a), float64(b), float64(c)))
	}
	return F(fma32(float32(a), float32(b), float32(c)))
}

// fma32 computes a fused multiply-add in float32 precision. The float64
// product of two float32 values is exact; the sum is rounded to odd in
// float64 so that the final rounding to float32 is correct.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (float64(c) - bb)
	if e != 0 {
		bits := math.Float64bits(s)
		if bits&1 == 0 {
			if (e > 0) == (s > 0) {
				bits++
			} else {
				bits--
			}
			s = math.Float64frombits(bits)
		}
	}
	return float32(s)
}

// Vfadd performs element-wise addition (vfadd.vv).
func Vfadd[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(x[i] + y[i])
	}
	return r
}

// Vfsub performs element-wise subtraction a - b (vfsub.vv).
func Vfsub[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(x[i] - y[i])
	}
	return r
}

// Vfmul performs element-wise multiplication (vfmul.vv).
func Vfmul[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(x[i] * y[i])
	}
	return r
}

// Vfdiv performs element-wise division a / b (vfdiv.vv).
func Vfdiv[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(x[i] / y[i])
	}
	return r
}

// Vfmacc computes a*b + acc with a single rounding (vfmacc.vv).
func Vfmacc[F Floats](acc, a, b Vec[F], vl int) Vec[F] {
	r := dest[F](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(fma(x[i], y[i], s[i]))
	}
	return r
}

// Vfnmsac computes -(a*b) + acc with a single rounding (vfnmsac.vv).
func Vfnmsac[F Floats](acc, a, b Vec[F], vl int) Vec[F] {
	r := dest[F](acc.lmul, vl)
	s, x, y, d := acc.lanes(), a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(fma(-x[i], y[i], s[i]))
	}
	return r
}

// Vfsqrt computes the element-wise square root (vfsqrt.v).
func Vfsqrt[F Floats](a Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	for i := range vl {
		d[i] = canon(F(math.Sqrt(float64(s[i]))))
	}
	return r
}

// Vfsgnj returns the magnitude of a with the sign of b (vfsgnj.vv).
// Sign injection is a bit operation: NaN payloads pass through.
func Vfsgnj[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	sign := signBit[F]()
	for i := range vl {
		d[i] = FloatFromBits[F](FloatBits(x[i])&^sign | FloatBits(y[i])&sign)
	}
	return r
}

// Vfneg flips the sign bit of every element (vfneg.v = vfsgnjn.vv a, a).
func Vfneg[F Floats](a Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	sign := signBit[F]()
	for i := range vl {
		d[i] = FloatFromBits[F](FloatBits(s[i]) ^ sign)
	}
	return r
}

// Vfabs clears the sign bit of every element (vfabs.v = vfsgnjx.vv a, a).
func Vfabs[F Floats](a Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	s, d := a.lanes(), r.lanes()
	sign := signBit[F]()
	for i := range vl {
		d[i] = FloatFromBits[F](FloatBits(s[i]) &^ sign)
	}
	return r
}

func signBit[F Floats]() uint64 {
	return 1 << (sew[F]() - 1)
}

// Vfmin returns the element-wise IEEE 754-2019 minimumNumber (vfmin.vv):
// a NaN operand is ignored, -0 is less than +0, and the result is the
// canonical NaN only when both operands are NaN.
func Vfmin[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = minNum(x[i], y[i])
	}
	return r
}

// Vfmax returns the element-wise IEEE 754-2019 maximumNumber (vfmax.vv).
func Vfmax[F Floats](a, b Vec[F], vl int) Vec[F] {
	r := dest[F](a.lmul, vl)
	x, y, d := a.lanes(), b.lanes(), r.lanes()
	for i := range vl {
		d[i] = maxNum(x[i], y[i])
	}
	return r
}

func minNum[F Floats](x, y F) F {
	switch {
	case x != x && y != y:
		return CanonicalNaN[F]()
	case x != x:
		return y
	case y != y:
		return x
	case x == y:
		// Equal magnitudes differ only for signed zeros; OR keeps -0.
		return FloatFromBits[F](FloatBits(x) | FloatBits(y))
	case x < y:
		return x
	default:
		return y
	}
}

func maxNum[F Floats](x, y F) F {
	switch {
	case x != x && y != y:
		return CanonicalNaN[F]()
	case x != x:
		return y
	case y != y:
		return x
	case x == y:
		return FloatFromBits[F](FloatBits(x) & FloatBits(y))
	case x > y:
		return x
	default:
		return y
	}
}

// Vmfeq sets mask lanes where a == b (vmfeq.vv). NaN compares unequal.
func Vmfeq[F Floats](a, b Vec[F], vl int) Mask {
	return compare(a, b, vl, func(x, y F) bool { return x == y })
}

// Vmfne sets mask lanes where a != b (vmfne.vv). Vmfne(a, a) marks NaN
// lanes.
func Vmfne[F Floats](a, b Vec[F], vl int) Mask {
	return compare(a, b, vl, func(x, y F) bool { return x != y })
}

// Vmflt sets mask lanes where a < b (vmflt.vv).
func Vmflt[F Floats](a, b Vec[F], vl int) Mask {
	return compare(a, b, vl, func(x, y F) bool { return x < y })
}

// Vmfle sets mask lanes where a <= b (vmfle.vv).
func Vmfle[F Floats](a, b Vec[F], vl int) Mask {
	return compare(a, b, vl, func(x, y F) bool { return x <= y })
}

// Vmfgt sets mask lanes where a > b (vmfgt, vmflt with swapped operands).
func Vmfgt[F Floats](a, b Vec[F], vl int) Mask {
	return Vmflt(b, a, vl)
}

// Vmfge sets mask lanes where a >= b.
func Vmfge[F Floats](a, b Vec[F], vl int) Mask {
	return Vmfle(b, a, vl)
}
