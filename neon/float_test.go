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
	"testing"
)

var (
	qnan32 = math.Float32frombits(0x7FC00001)
	snan32 = math.Float32frombits(0x7F800002)
	inf32  = float32(math.Inf(1))
)

func checkBits32(t *testing.T, name string, got Float32x2, want [2]uint32) {
	t.Helper()
	for i := range 2 {
		if b := math.Float32bits(got[i]); b != want[i] {
			t.Errorf("%s lane %d: got %#08x, want %#08x", name, i, b, want[i])
		}
	}
}

func TestNaNPropagation(t *testing.T) {
	checkBits32(t, "Vadd_f32", Vadd_f32(Float32x2{1, qnan32}, Float32x2{qnan32, snan32}),
		[2]uint32{0x7FC00001, 0x7FC00002})
	// A signaling NaN wins over an earlier quiet NaN.
	checkBits32(t, "Vmul_f32", Vmul_f32(Float32x2{qnan32, qnan32}, Float32x2{snan32, 2}),
		[2]uint32{0x7FC00002, 0x7FC00001})
	// NaNs made from numbers are the default NaN.
	checkBits32(t, "Vsub_f32", Vsub_f32(Float32x2{inf32, 1}, Float32x2{inf32, 1}),
		[2]uint32{0x7FC00000, 0})
	checkBits32(t, "Vsqrt_f32", Vsqrt_f32(Float32x2{-1, 4}),
		[2]uint32{0x7FC00000, math.Float32bits(2)})
	checkBits32(t, "Vdiv_f32", Vdiv_f32(Float32x2{0, 1}, Float32x2{0, snan32}),
		[2]uint32{0x7FC00000, 0x7FC00002})
	checkBits32(t, "Vmax_f32", Vmax_f32(Float32x2{qnan32, 1}, Float32x2{1, 2}),
		[2]uint32{0x7FC00001, math.Float32bits(2)})
	checkBits32(t, "Vmin_f32", Vmin_f32(Float32x2{3, -1}, Float32x2{qnan32, 2}),
		[2]uint32{0x7FC00001, math.Float32bits(-1)})
	// Negation and absolute value only touch the sign bit.
	checkBits32(t, "Vneg_f32", Vneg_f32(Float32x2{qnan32, snan32}), [2]uint32{0xFFC00001, 0xFF800002})
	checkBits32(t, "Vabs_f32", Vabs_f32(Float32x2{-qnan32, 1}), [2]uint32{0x7FC00001, math.Float32bits(1)})

	d := Vaddq_f64(Float64x2{math.Float64frombits(0x7FF0000000000001), 1}, Float64x2{1, math.NaN()})
	if got := math.Float64bits(d[0]); got != 0x7FF8000000000001 {
		t.Errorf("Vaddq_f64 lane 0: got %#x, want 0x7ff8000000000001", got)
	}
	if !math.IsNaN(d[1]) {
		t.Errorf("Vaddq_f64 lane 1: got %v, want NaN", d[1])
	}
}

func TestMaxMinNumber(t *testing.T) {
	checkBits32(t, "Vmaxnm_f32", Vmaxnm_f32(Float32x2{qnan32, snan32}, Float32x2{1, 1}),
		[2]uint32{math.Float32bits(1), 0x7FC00002})
	checkBits32(t, "Vminnm_f32", Vminnm_f32(Float32x2{-5, qnan32}, Float32x2{qnan32, qnan32}),
		[2]uint32{math.Float32bits(-5), 0x7FC00001})
	if got, want := Vmaxnmq_f64(Float64x2{-1, 3}, Float64x2{2, math.NaN()}), (Float64x2{2, 3}); got != want {
		t.Errorf("Vmaxnmq_f64: got %v, want %v", got, want)
	}
}

func TestFusedMultiplyAdd(t *testing.T) {
	// b*c = 1 + 2^-11 + 2^-24, which rounds to 1 + 2^-11 in float32.
	b := Float32x2{1 + 0x1p-12, 2}
	c := Float32x2{1 + 0x1p-12, 3}
	acc := Float32x2{-(1 + 0x1p-11), 1}
	if got, want := Vfma_f32(acc, b, c), (Float32x2{0x1p-24, 7}); got != want {
		t.Errorf("Vfma_f32: got %v, want %v", got, want)
	}
	if got, want := Vmla_f32(acc, b, c), (Float32x2{0, 7}); got != want {
		t.Errorf("Vmla_f32: got %v, want %v", got, want)
	}
	neg := Float32x2{1 + 0x1p-11, 1}
	if got, want := Vfms_f32(neg, b, c), (Float32x2{-0x1p-24, -5}); got != want {
		t.Errorf("Vfms_f32: got %v, want %v", got, want)
	}
	// A quiet NaN addend with Inf * 0 gives the default NaN.
	checkBits32(t, "Vfma_f32 NaN", Vfma_f32(Float32x2{qnan32, qnan32}, Float32x2{inf32, 1}, Float32x2{0, 1}),
		[2]uint32{0x7FC00000, 0x7FC00001})
	if got, want := Vfmaq_n_f32(Float32x4{1, 1, 1, 1}, Float32x4{1, 2, 3, 4}, 2), (Float32x4{3, 5, 7, 9}); got != want {
		t.Errorf("Vfmaq_n_f32: got %v, want %v", got, want)
	}
	if got, want := Vfmaq_lane_f32(Float32x4{}, Float32x4{1, 2, 3, 4}, Float32x2{10, -1}, 1), (Float32x4{-1, -2, -3, -4}); got != want {
		t.Errorf("Vfmaq_lane_f32: got %v, want %v", got, want)
	}
}

func TestPairwiseFloat(t *testing.T) {
	if got, want := Vpadd_f32(Float32x2{1, 2}, Float32x2{3, 4}), (Float32x2{3, 7}); got != want {
		t.Errorf("Vpadd_f32: got %v, want %v", got, want)
	}
	if got, want := Vpmax_f32(Float32x2{1, 2}, Float32x2{-3, -4}), (Float32x2{2, -3}); got != want {
		t.Errorf("Vpmax_f32: got %v, want %v", got, want)
	}
	checkBits32(t, "Vpadd_f32 NaN", Vpadd_f32(Float32x2{1, snan32}, Float32x2{qnan32, 0}),
		[2]uint32{0x7FC00002, 0x7FC00001})
}

func TestConvertToInt(t *testing.T) {
	a := Float32x4{2.5, -2.5, 0.5, -1.5}
	cases := []struct {
		name string
		got  Int32x4
		want Int32x4
	}{
		{"Vcvtq_s32_f32", Vcvtq_s32_f32(a), Int32x4{2, -2, 0, -1}},
		{"Vcvtnq_s32_f32", Vcvtnq_s32_f32(a), Int32x4{2, -2, 0, -2}},
		{"Vcvtaq_s32_f32", Vcvtaq_s32_f32(a), Int32x4{3, -3, 1, -2}},
		{"Vcvtpq_s32_f32", Vcvtpq_s32_f32(a), Int32x4{3, -2, 1, -1}},
		{"Vcvtmq_s32_f32", Vcvtmq_s32_f32(a), Int32x4{2, -3, 0, -2}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	special := Float32x4{float32(math.NaN()), inf32, -inf32, 3e9}
	if got, want := Vcvtq_s32_f32(special), (Int32x4{0, math.MaxInt32, math.MinInt32, math.MaxInt32}); got != want {
		t.Errorf("Vcvtq_s32_f32 saturation: got %v, want %v", got, want)
	}
	if got, want := Vcvtq_u32_f32(Float32x4{-1, 5e9, float32(math.NaN()), 7.9}), (Uint32x4{0, math.MaxUint32, 0, 7}); got != want {
		t.Errorf("Vcvtq_u32_f32: got %v, want %v", got, want)
	}
	if got, want := Vcvtq_s64_f64(Float64x2{math.NaN(), -1e300}), (Int64x2{0, math.MinInt64}); got != want {
		t.Errorf("Vcvtq_s64_f64: got %v, want %v", got, want)
	}
}

func TestConvertFromInt(t *testing.T) {
	// 2^24 + 1 is a tie between two float32 values.
	if got, want := Vcvtq_f32_s32(Int32x4{1 << 24, 1<<24 + 1, -3, 0}), (Float32x4{1 << 24, 1 << 24, -3, 0}); got != want {
		t.Errorf("Vcvtq_f32_s32: got %v, want %v", got, want)
	}
	if got, want := Vcvt_f32_u32(Uint32x2{math.MaxUint32, 1}), (Float32x2{1 << 32, 1}); got != want {
		t.Errorf("Vcvt_f32_u32: got %v, want %v", got, want)
	}
}

func TestFixedPointConvert(t *testing.T) {
	if got, want := Vcvtq_n_s32_f32(Float32x4{1.5, -1.75, 0.03, 1e10}, 4), (Int32x4{24, -28, 0, math.MaxInt32}); got != want {
		t.Errorf("Vcvtq_n_s32_f32: got %v, want %v", got, want)
	}
	if got, want := Vcvtq_n_f32_s32(Int32x4{24, -28, 1, 0}, 4), (Float32x4{1.5, -1.75, 0.0625, 0}); got != want {
		t.Errorf("Vcvtq_n_f32_s32: got %v, want %v", got, want)
	}
	if got, want := Vcvt_n_u32_f32(Float32x2{0.5, -0.5}, 32), (Uint32x2{1 << 31, 0}); got != want {
		t.Errorf("Vcvt_n_u32_f32: got %v, want %v", got, want)
	}
}

func TestRoundIntegral(t *testing.T) {
	a := Float32x4{0.5, 1.5, 2.5, -0.5}
	cases := []struct {
		name string
		got  Float32x4
		want Float32x4
	}{
		{"Vrndq_f32", Vrndq_f32(a), Float32x4{0, 1, 2, 0}},
		{"Vrndnq_f32", Vrndnq_f32(a), Float32x4{0, 2, 2, 0}},
		{"Vrndaq_f32", Vrndaq_f32(a), Float32x4{1, 2, 3, -1}},
		{"Vrndpq_f32", Vrndpq_f32(a), Float32x4{1, 2, 3, 0}},
		{"Vrndmq_f32", Vrndmq_f32(a), Float32x4{0, 1, 2, -1}},
		{"Vrndxq_f32", Vrndxq_f32(a), Float32x4{0, 2, 2, 0}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	// Rounding -0.5 toward zero gives -0.
	if r := Vrndq_f32(a)[3]; !math.Signbit(float64(r)) {
		t.Errorf("Vrndq_f32(-0.5): got %v, want -0", r)
	}
	big := Float64x2{1e300, math.Inf(-1)}
	if got := Vrndnq_f64(big); got != big {
		t.Errorf("Vrndnq_f64: got %v, want %v", got, big)
	}
	if got, want := Vrndm_f64(Float64x1{-2.5}), (Float64x1{-3}); got != want {
		t.Errorf("Vrndm_f64: got %v, want %v", got, want)
	}
}

func TestFloatWidthConvert(t *testing.T) {
	w := Vcvt_f64_f32(Float32x2{1.5, snan32})
	if w[0] != 1.5 {
		t.Errorf("Vcvt_f64_f32 lane 0: got %v, want 1.5", w[0])
	}
	if got := math.Float64bits(w[1]); got != 0x7FF8000000000000|2<<29 {
		t.Errorf("Vcvt_f64_f32 lane 1: got %#x", got)
	}
	// 1 + 2^-30 is inexact in float32: nearest rounds down, odd sets the
	// last bit.
	x := Float64x2{1 + 0x1p-30, -2}
	if got, want := Vcvt_f32_f64(x), (Float32x2{1, -2}); got != want {
		t.Errorf("Vcvt_f32_f64: got %v, want %v", got, want)
	}
	if got, want := Vcvtx_f32_f64(x), (Float32x2{1 + 0x1p-23, -2}); got != want {
		t.Errorf("Vcvtx_f32_f64: got %v, want %v", got, want)
	}
}

func TestEstimates(t *testing.T) {
	if got, want := Vrecpeq_f32(Float32x4{1, 0, inf32, -2}), (Float32x4{0.998046875, inf32, 0, -0.4990234375}); got != want {
		t.Errorf("Vrecpeq_f32: got %v, want %v", got, want)
	}
	if got, want := Vrecpe_f64(Float64x1{1}), (Float64x1{0.998046875}); got != want {
		t.Errorf("Vrecpe_f64: got %v, want %v", got, want)
	}
	r := Vrsqrteq_f32(Float32x4{1, 4, 0, inf32})
	if want := (Float32x4{0.998046875, 0.4990234375, inf32, 0}); r != want {
		t.Errorf("Vrsqrteq_f32: got %v, want %v", r, want)
	}
	checkBits32(t, "Vrsqrte_f32", Vrsqrte_f32(Float32x2{-1, qnan32}), [2]uint32{0x7FC00000, 0x7FC00001})

	if got, want := Vrecpe_u32(Uint32x2{0x80000000, 0x7FFFFFFF}), (Uint32x2{0xFF800000, math.MaxUint32}); got != want {
		t.Errorf("Vrecpe_u32: got %#v, want %#v", got, want)
	}
	if got, want := Vrsqrte_u32(Uint32x2{0x40000000, 0}), (Uint32x2{0xFF800000, math.MaxUint32}); got != want {
		t.Errorf("Vrsqrte_u32: got %#v, want %#v", got, want)
	}
}

func TestNewtonSteps(t *testing.T) {
	if got, want := Vrecps_f32(Float32x2{2, inf32}, Float32x2{0.5, 0}), (Float32x2{1, 2}); got != want {
		t.Errorf("Vrecps_f32: got %v, want %v", got, want)
	}
	if got, want := Vrsqrts_f32(Float32x2{1, 0}, Float32x2{1, inf32}), (Float32x2{1, 1.5}); got != want {
		t.Errorf("Vrsqrts_f32: got %v, want %v", got, want)
	}

	// Two refinement steps take the estimate to full float32 precision.
	x := Float32x4{3, 0.1, 7, 1000}
	e := Vrecpeq_f32(x)
	for range 2 {
		e = Vmulq_f32(e, Vrecpsq_f32(x, e))
	}
	s := Vrsqrteq_f32(x)
	for range 2 {
		s = Vmulq_f32(s, Vrsqrtsq_f32(Vmulq_f32(x, s), s))
	}
	for i := range 4 {
		if want := 1 / float64(x[i]); math.Abs(float64(e[i])-want) > 1e-6*want {
			t.Errorf("refined 1/%v: got %v, want %v", x[i], e[i], want)
		}
		if want := 1 / math.Sqrt(float64(x[i])); math.Abs(float64(s[i])-want) > 1e-6*want {
			t.Errorf("refined 1/sqrt(%v): got %v, want %v", x[i], s[i], want)
		}
	}
}
