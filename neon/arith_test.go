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

func clamp(x, lo, hi int64) int64 {
	return max(lo, min(hi, x))
}

func TestSaturatingAddSubInt8(t *testing.T) {
	// Every pair of int8 values, 16 pairs per call.
	for hi := -128; hi < 128; hi++ {
		for base := -128; base < 128; base += 16 {
			var a, b Int8x16
			for i := range 16 {
				a[i] = int8(hi)
				b[i] = int8(base + i)
			}
			sum, diff := Vqaddq_s8(a, b), Vqsubq_s8(a, b)
			for i := range 16 {
				wantSum := clamp(int64(a[i])+int64(b[i]), math.MinInt8, math.MaxInt8)
				wantDiff := clamp(int64(a[i])-int64(b[i]), math.MinInt8, math.MaxInt8)
				if int64(sum[i]) != wantSum {
					t.Fatalf("Vqaddq_s8(%d, %d): got %d, want %d", a[i], b[i], sum[i], wantSum)
				}
				if int64(diff[i]) != wantDiff {
					t.Fatalf("Vqsubq_s8(%d, %d): got %d, want %d", a[i], b[i], diff[i], wantDiff)
				}
			}
		}
	}
}

func TestSaturatingAddSubUnsigned(t *testing.T) {
	a := Uint16x4{65535, 65000, 1, 0}
	b := Uint16x4{1, 1000, 2, 1}
	sum, diff := Vqadd_u16(a, b), Vqsub_u16(a, b)
	wantSum := Uint16x4{65535, 65535, 3, 1}
	wantDiff := Uint16x4{65534, 64000, 0, 0}
	if sum != wantSum {
		t.Errorf("Vqadd_u16: got %v, want %v", sum, wantSum)
	}
	if diff != wantDiff {
		t.Errorf("Vqsub_u16: got %v, want %v", diff, wantDiff)
	}

	s64 := Vqaddq_s64(Int64x2{math.MaxInt64, math.MinInt64}, Int64x2{1, -1})
	if s64 != (Int64x2{math.MaxInt64, math.MinInt64}) {
		t.Errorf("Vqaddq_s64: got %v", s64)
	}
	u64 := Vqsubq_u64(Uint64x2{0, 10}, Uint64x2{1, 3})
	if u64 != (Uint64x2{0, 7}) {
		t.Errorf("Vqsubq_u64: got %v", u64)
	}
}

func TestWrappingArith(t *testing.T) {
	if got := Vadd_u8(Uint8x8{250, 1}, Uint8x8{10, 2}); got != (Uint8x8{4, 3}) {
		t.Errorf("Vadd_u8: got %v", got)
	}
	if got := Vsubq_s16(Int16x8{math.MinInt16}, Int16x8{1}); got[0] != math.MaxInt16 {
		t.Errorf("Vsubq_s16: got %d, want %d", got[0], math.MaxInt16)
	}
	if got := Vmul_s32(Int32x2{1 << 20, -3}, Int32x2{1 << 12, 7}); got != (Int32x2{0, -21}) {
		t.Errorf("Vmul_s32: got %v", got)
	}
	if got := Vmla_u16(Uint16x4{1, 2, 3, 4}, Uint16x4{2, 2, 2, 2}, Uint16x4{3, 4, 5, 6}); got != (Uint16x4{7, 10, 13, 16}) {
		t.Errorf("Vmla_u16: got %v", got)
	}
	if got := Vmls_s8(Int8x8{10, 10}, Int8x8{2, -2}, Int8x8{3, 3}); got[0] != 4 || got[1] != 16 {
		t.Errorf("Vmls_s8: got %v", got)
	}
	if got := Vmul_n_s16(Int16x4{1, 2, 3, 4}, 5); got != (Int16x4{5, 10, 15, 20}) {
		t.Errorf("Vmul_n_s16: got %v", got)
	}
	if got := Vmulq_lane_u32(Uint32x4{1, 2, 3, 4}, Uint32x2{7, 9}, 1); got != (Uint32x4{9, 18, 27, 36}) {
		t.Errorf("Vmulq_lane_u32: got %v", got)
	}
}

func TestHalvingAdd(t *testing.T) {
	a := Uint8x8{255, 255, 1, 0, 3}
	b := Uint8x8{255, 254, 2, 0, 4}
	if got, want := Vhadd_u8(a, b), (Uint8x8{255, 254, 1, 0, 3}); got != want {
		t.Errorf("Vhadd_u8: got %v, want %v", got, want)
	}
	if got, want := Vrhadd_u8(a, b), (Uint8x8{255, 255, 2, 0, 4}); got != want {
		t.Errorf("Vrhadd_u8: got %v, want %v", got, want)
	}
	s := Int8x8{-128, -1, 127, -3}
	u := Int8x8{-128, 0, 127, 0}
	if got, want := Vhadd_s8(s, u), (Int8x8{-128, -1, 127, -2}); got != want {
		t.Errorf("Vhadd_s8: got %v, want %v", got, want)
	}
	if got, want := Vrhadd_s8(s, u), (Int8x8{-128, 0, 127, -1}); got != want {
		t.Errorf("Vrhadd_s8: got %v, want %v", got, want)
	}
	if got, want := Vhsub_s8(Int8x8{-128, 5}, Int8x8{127, 8}), (Int8x8{-128, -2}); got != want {
		t.Errorf("Vhsub_s8: got %v, want %v", got, want)
	}
	if got, want := Vhsub_u8(Uint8x8{0, 8}, Uint8x8{255, 5}), (Uint8x8{128, 1}); got != want {
		t.Errorf("Vhsub_u8: got %v, want %v", got, want)
	}
}

func TestAbsoluteDifference(t *testing.T) {
	if got, want := Vabd_u8(Uint8x8{0, 200, 5}, Uint8x8{255, 100, 5}), (Uint8x8{255, 100, 0}); got != want {
		t.Errorf("Vabd_u8: got %v, want %v", got, want)
	}
	// |a-b| is 255 and 200, which wrap to -1 and -56.
	if got, want := Vabd_s8(Int8x8{-128, 100}, Int8x8{127, -100}), (Int8x8{-1, -56}); got != want {
		t.Errorf("Vabd_s8: got %v, want %v", got, want)
	}
	if got, want := Vabdl_s8(Int8x8{-128, 100}, Int8x8{127, -100}), (Int16x8{255, 200}); got != want {
		t.Errorf("Vabdl_s8: got %v, want %v", got, want)
	}
	if got, want := Vaba_u16(Uint16x4{1, 1}, Uint16x4{3, 10}, Uint16x4{10, 3}), (Uint16x4{8, 8}); got != want {
		t.Errorf("Vaba_u16: got %v, want %v", got, want)
	}
	if got, want := Vabal_u8(Uint16x8{1000}, Uint8x8{0}, Uint8x8{255}), (Uint16x8{1255}); got != want {
		t.Errorf("Vabal_u8: got %v, want %v", got, want)
	}
}

func TestAbsNeg(t *testing.T) {
	a := Int8x8{-128, -1, 0, 127}
	if got, want := Vabs_s8(a), (Int8x8{-128, 1, 0, 127}); got != want {
		t.Errorf("Vabs_s8: got %v, want %v", got, want)
	}
	if got, want := Vqabs_s8(a), (Int8x8{127, 1, 0, 127}); got != want {
		t.Errorf("Vqabs_s8: got %v, want %v", got, want)
	}
	if got, want := Vneg_s8(a), (Int8x8{-128, 1, 0, -127}); got != want {
		t.Errorf("Vneg_s8: got %v, want %v", got, want)
	}
	if got, want := Vqneg_s8(a), (Int8x8{127, 1, 0, -127}); got != want {
		t.Errorf("Vqneg_s8: got %v, want %v", got, want)
	}
	if got := Vqabsq_s64(Int64x2{math.MinInt64, -5}); got != (Int64x2{math.MaxInt64, 5}) {
		t.Errorf("Vqabsq_s64: got %v", got)
	}
}

func TestMinMax(t *testing.T) {
	if got, want := Vmax_s16(Int16x4{-5, 3, 0, 7}, Int16x4{2, -3, 0, 8}), (Int16x4{2, 3, 0, 8}); got != want {
		t.Errorf("Vmax_s16: got %v, want %v", got, want)
	}
	if got, want := Vminq_u32(Uint32x4{1 << 31, 0, 3, 4}, Uint32x4{1, 1, 3, 5}), (Uint32x4{1, 0, 3, 4}); got != want {
		t.Errorf("Vminq_u32: got %v, want %v", got, want)
	}
}

func TestWidening(t *testing.T) {
	a := Uint8x8{255, 1, 2, 3, 4, 5, 6, 7}
	b := Uint8x8{255, 1, 1, 1, 1, 1, 1, 1}
	if got, want := Vaddl_u8(a, b), (Uint16x8{510, 2, 3, 4, 5, 6, 7, 8}); got != want {
		t.Errorf("Vaddl_u8: got %v, want %v", got, want)
	}
	if got, want := Vsubl_u8(Uint8x8{0}, Uint8x8{1}), (Uint16x8{65535}); got != want {
		t.Errorf("Vsubl_u8: got %v, want %v", got, want)
	}
	if got, want := Vmull_s16(Int16x4{-32768, 300}, Int16x4{-32768, 300}), (Int32x4{1 << 30, 90000}); got != want {
		t.Errorf("Vmull_s16: got %v, want %v", got, want)
	}
	if got, want := Vaddw_s8(Int16x8{1000, -1000}, Int8x8{-128, 127}), (Int16x8{872, -873}); got != want {
		t.Errorf("Vaddw_s8: got %v, want %v", got, want)
	}
	if got, want := Vmlal_u32(Uint64x2{1, 2}, Uint32x2{1 << 31, 3}, Uint32x2{4, 5}), (Uint64x2{1<<33 + 1, 17}); got != want {
		t.Errorf("Vmlal_u32: got %v, want %v", got, want)
	}
	if got, want := Vmlsl_s8(Int16x8{0}, Int8x8{-128}, Int8x8{-128}), (Int16x8{-16384}); got != want {
		t.Errorf("Vmlsl_s8: got %v, want %v", got, want)
	}

	q := Int16x8{1, 2, 3, 4, 5, 6, 7, 8}
	if got, want := Vaddl_high_s16(q, q), (Int32x4{10, 12, 14, 16}); got != want {
		t.Errorf("Vaddl_high_s16: got %v, want %v", got, want)
	}
	if got, want := Vmull_n_u16(Uint16x4{1, 2, 3, 65535}, 2), (Uint32x4{2, 4, 6, 131070}); got != want {
		t.Errorf("Vmull_n_u16: got %v, want %v", got, want)
	}
}

func TestNarrowingHigh(t *testing.T) {
	a := Int16x8{0x1234, -1, 0x7F80, 0x00FF}
	b := Int16x8{0x0100, 0, 0x0080, 0x0001}
	if got, want := Vaddhn_s16(a, b), (Int8x8{0x13, -1, -128, 0x01}); got != want {
		t.Errorf("Vaddhn_s16: got %v, want %v", got, want)
	}
	// 0xFFFF + 0x80 wraps to 0x007F.
	if got, want := Vraddhn_s16(a, b), (Int8x8{0x13, 0, -128, 0x01}); got != want {
		t.Errorf("Vraddhn_s16: got %v, want %v", got, want)
	}
	if got, want := Vsubhn_u32(Uint32x4{0x00010000, 0}, Uint32x4{1, 1}), (Uint16x4{0, 0xFFFF}); got != want {
		t.Errorf("Vsubhn_u32: got %v, want %v", got, want)
	}
	if got, want := Vrsubhn_u32(Uint32x4{0x00018000}, Uint32x4{0}), (Uint16x4{2}); got != want {
		t.Errorf("Vrsubhn_u32: got %v, want %v", got, want)
	}
	r := Vaddhn_high_u16(Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}, Uint16x8{0x0100, 0x0200}, Uint16x8{})
	if want := (Uint8x16{1, 2, 3, 4, 5, 6, 7, 8, 1, 2}); r != want {
		t.Errorf("Vaddhn_high_u16: got %v, want %v", r, want)
	}
}

func TestPairwise(t *testing.T) {
	a := Int16x4{1, 2, 3, 4}
	b := Int16x4{-10, 20, 30, -40}
	if got, want := Vpadd_s16(a, b), (Int16x4{3, 7, 10, -10}); got != want {
		t.Errorf("Vpadd_s16: got %v, want %v", got, want)
	}
	if got, want := Vpmax_s16(a, b), (Int16x4{2, 4, 20, 30}); got != want {
		t.Errorf("Vpmax_s16: got %v, want %v", got, want)
	}
	if got, want := Vpmin_s16(a, b), (Int16x4{1, 3, -10, -40}); got != want {
		t.Errorf("Vpmin_s16: got %v, want %v", got, want)
	}
	if got, want := Vpaddl_u8(Uint8x8{255, 255, 1, 2, 3, 4, 5, 6}), (Uint16x4{510, 3, 7, 11}); got != want {
		t.Errorf("Vpaddl_u8: got %v, want %v", got, want)
	}
	if got, want := Vpadalq_s16(Int32x4{1, 1, 1, 1}, Int16x8{-32768, -32768, 1, 2, 3, 4, 5, 6}), (Int32x4{-65535, 4, 8, 12}); got != want {
		t.Errorf("Vpadalq_s16: got %v, want %v", got, want)
	}
	if got, want := Vpaddq_u64(Uint64x2{1, 2}, Uint64x2{3, 4}), (Uint64x2{3, 7}); got != want {
		t.Errorf("Vpaddq_u64: got %v, want %v", got, want)
	}
}

func TestDoublingMultiply(t *testing.T) {
	a := Int16x4{math.MinInt16, 16384, -16384, 3}
	b := Int16x4{math.MinInt16, 16384, 16384, 5}
	// 2*a*b >> 16: the first lane saturates.
	if got, want := Vqdmulh_s16(a, b), (Int16x4{math.MaxInt16, 8192, -8192, 0}); got != want {
		t.Errorf("Vqdmulh_s16: got %v, want %v", got, want)
	}
	c := Int16x4{1, 16385, -1, 16384}
	d := Int16x4{16384, 1, 1, 1}
	// (2*a*b + 2^15) >> 16.
	if got, want := Vqrdmulh_s16(c, d), (Int16x4{1, 1, 0, 1}); got != want {
		t.Errorf("Vqrdmulh_s16: got %v, want %v", got, want)
	}
	if got, want := Vqdmull_s16(a, b), (Int32x4{math.MaxInt32, 1 << 29, -(1 << 29), 30}); got != want {
		t.Errorf("Vqdmull_s16: got %v, want %v", got, want)
	}
	acc := Int32x4{math.MaxInt32, 0, math.MinInt32, 0}
	if got, want := Vqdmlal_s16(acc, Int16x4{1, 2, 0, 0}, Int16x4{1, 3, 0, 0}), (Int32x4{math.MaxInt32, 12, math.MinInt32, 0}); got != want {
		t.Errorf("Vqdmlal_s16: got %v, want %v", got, want)
	}
	if got, want := Vqdmlsl_s16(acc, Int16x4{0, 2, 1, 0}, Int16x4{0, 3, 1, 0}), (Int32x4{math.MaxInt32, -12, math.MinInt32, 0}); got != want {
		t.Errorf("Vqdmlsl_s16: got %v, want %v", got, want)
	}
	if got, want := Vqdmulh_n_s32(Int32x2{1 << 30, -(1 << 30)}, 1<<30), (Int32x2{1 << 29, -(1 << 29)}); got != want {
		t.Errorf("Vqdmulh_n_s32: got %v, want %v", got, want)
	}
}

func TestRoundingDoublingAccumulate(t *testing.T) {
	ref := func(acc, b, c int16, sub bool) int16 {
		p := 2 * int64(b) * int64(c)
		if sub {
			p = -p
		}
		x := (int64(acc)<<16 + p + 1<<15) >> 16
		return int16(clamp(x, math.MinInt16, math.MaxInt16))
	}
	vals := []int16{math.MinInt16, -16384, -3, -1, 0, 1, 7, 16384, math.MaxInt16}
	for _, acc := range vals {
		for _, b := range vals {
			for _, c := range vals {
				a4, b4, c4 := Int16x4{acc}, Int16x4{b}, Int16x4{c}
				if got, want := Vqrdmlah_s16(a4, b4, c4)[0], ref(acc, b, c, false); got != want {
					t.Errorf("Vqrdmlah_s16(%d, %d, %d): got %d, want %d", acc, b, c, got, want)
				}
				if got, want := Vqrdmlsh_s16(a4, b4, c4)[0], ref(acc, b, c, true); got != want {
					t.Errorf("Vqrdmlsh_s16(%d, %d, %d): got %d, want %d", acc, b, c, got, want)
				}
			}
		}
	}
}

// TestWidenSquareNarrow widens [1..8], squares in 16 bits and narrows back
// with saturation.
func TestWidenSquareNarrow(t *testing.T) {
	v := Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}
	w := Vmovl_u8(v)
	sq := Vmulq_u16(w, w)
	got := Vqmovn_u16(sq)
	want := Uint8x8{1, 4, 9, 16, 25, 36, 49, 64}
	if got != want {
		t.Errorf("widen, square, narrow: got %v, want %v", got, want)
	}

	s := Int8x8{1, 2, 3, 4, 5, 6, 7, 8}
	sw := Vmovl_s8(s)
	if got := Vqmovun_s16(Vmulq_s16(sw, sw)); got != want {
		t.Errorf("signed widen, square, narrow: got %v, want %v", got, want)
	}
}

func BenchmarkVqaddq_s8(b *testing.B) {
	x := Int8x16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	y := x
	for b.Loop() {
		x = Vqaddq_s8(x, y)
	}
	_ = x
}

func BenchmarkVmull_s16(b *testing.B) {
	x := Int16x4{1, 2, 3, 4}
	var r Int32x4
	for b.Loop() {
		r = Vmull_s16(x, x)
	}
	_ = r
}
