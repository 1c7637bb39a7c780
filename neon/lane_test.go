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
	"testing"
)

func TestGetSetLane(t *testing.T) {
	v := Int16x8{10, 11, 12, 13, 14, 15, 16, 17}
	for i := range 8 {
		if got := Vgetq_lane_s16(v, i); got != v[i] {
			t.Errorf("Vgetq_lane_s16 lane %d: got %d, want %d", i, got, v[i])
		}
	}
	got := Vsetq_lane_s16(-1, v, 5)
	want := Int16x8{10, 11, 12, 13, 14, -1, 16, 17}
	if got != want {
		t.Errorf("Vsetq_lane_s16: got %v, want %v", got, want)
	}
	if got := Vget_lane_f64(Float64x1{2.5}, 0); got != 2.5 {
		t.Errorf("Vget_lane_f64: got %v, want 2.5", got)
	}
}

func TestLaneOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Vget_lane_u32 with lane 2 did not panic")
		}
	}()
	Vget_lane_u32(Uint32x2{1, 2}, 2)
}

func TestDup(t *testing.T) {
	if got, want := Vdupq_n_u8(7), (Uint8x16{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}); got != want {
		t.Errorf("Vdupq_n_u8: got %v, want %v", got, want)
	}
	if got, want := Vmov_n_f32(1.5), (Float32x2{1.5, 1.5}); got != want {
		t.Errorf("Vmov_n_f32: got %v, want %v", got, want)
	}
	d := Int32x2{3, 4}
	if got, want := Vdupq_lane_s32(d, 1), (Int32x4{4, 4, 4, 4}); got != want {
		t.Errorf("Vdupq_lane_s32: got %v, want %v", got, want)
	}
	q := Uint16x8{0, 1, 2, 3, 4, 5, 6, 7}
	if got, want := Vdup_laneq_u16(q, 6), (Uint16x4{6, 6, 6, 6}); got != want {
		t.Errorf("Vdup_laneq_u16: got %v, want %v", got, want)
	}
}

func TestCombineSplitRoundTrip(t *testing.T) {
	q := Int8x16{-8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}
	lo, hi := Vget_low_s8(q), Vget_high_s8(q)
	if want := (Int8x8{-8, -7, -6, -5, -4, -3, -2, -1}); lo != want {
		t.Errorf("Vget_low_s8: got %v, want %v", lo, want)
	}
	if want := (Int8x8{0, 1, 2, 3, 4, 5, 6, 7}); hi != want {
		t.Errorf("Vget_high_s8: got %v, want %v", hi, want)
	}
	if got := Vcombine_s8(lo, hi); got != q {
		t.Errorf("Vcombine_s8: got %v, want %v", got, q)
	}

	f := Float64x2{1, 2}
	if got := Vcombine_f64(Vget_low_f64(f), Vget_high_f64(f)); got != f {
		t.Errorf("Vcombine_f64: got %v, want %v", got, f)
	}
	u := Uint32x4{1, 2, 3, 4}
	if got := Vcombine_u32(Vget_low_u32(u), Vget_high_u32(u)); got != u {
		t.Errorf("Vcombine_u32: got %v, want %v", got, u)
	}
}

func TestCreate(t *testing.T) {
	if got, want := Vcreate_u8(0x0807060504030201), (Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}); got != want {
		t.Errorf("Vcreate_u8: got %v, want %v", got, want)
	}
	if got, want := Vcreate_s16(0xFFFF_0000_0001_8000), (Int16x4{-32768, 1, 0, -1}); got != want {
		t.Errorf("Vcreate_s16: got %v, want %v", got, want)
	}
}

func TestExt(t *testing.T) {
	a := Uint8x8{0, 1, 2, 3, 4, 5, 6, 7}
	b := Uint8x8{8, 9, 10, 11, 12, 13, 14, 15}
	if got, want := Vext_u8(a, b, 3), (Uint8x8{3, 4, 5, 6, 7, 8, 9, 10}); got != want {
		t.Errorf("Vext_u8: got %v, want %v", got, want)
	}
	if got := Vext_u8(a, b, 0); got != a {
		t.Errorf("Vext_u8 by 0: got %v, want %v", got, a)
	}
	// With equal inputs ext is a rotate.
	q := Int32x4{1, 2, 3, 4}
	if got, want := Vextq_s32(q, q, 1), (Int32x4{2, 3, 4, 1}); got != want {
		t.Errorf("Vextq_s32 rotate: got %v, want %v", got, want)
	}
	x := Uint8x16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	y := Uint8x16{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}
	if got, want := Vextq_u8(x, y, 15), (Uint8x16{15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}); got != want {
		t.Errorf("Vextq_u8: got %v, want %v", got, want)
	}
}

func TestRev(t *testing.T) {
	a := Uint8x8{0, 1, 2, 3, 4, 5, 6, 7}
	if got, want := Vrev16_u8(a), (Uint8x8{1, 0, 3, 2, 5, 4, 7, 6}); got != want {
		t.Errorf("Vrev16_u8: got %v, want %v", got, want)
	}
	if got, want := Vrev32_u8(a), (Uint8x8{3, 2, 1, 0, 7, 6, 5, 4}); got != want {
		t.Errorf("Vrev32_u8: got %v, want %v", got, want)
	}
	if got, want := Vrev64_u8(a), (Uint8x8{7, 6, 5, 4, 3, 2, 1, 0}); got != want {
		t.Errorf("Vrev64_u8: got %v, want %v", got, want)
	}
	q := Int8x16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if got, want := Vrev64q_s8(q), (Int8x16{7, 6, 5, 4, 3, 2, 1, 0, 15, 14, 13, 12, 11, 10, 9, 8}); got != want {
		t.Errorf("Vrev64q_s8: got %v, want %v", got, want)
	}
	if got, want := Vrev16q_s8(q), (Int8x16{1, 0, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10, 13, 12, 15, 14}); got != want {
		t.Errorf("Vrev16q_s8: got %v, want %v", got, want)
	}
	if got, want := Vrev64q_f32(Float32x4{1, 2, 3, 4}), (Float32x4{2, 1, 4, 3}); got != want {
		t.Errorf("Vrev64q_f32: got %v, want %v", got, want)
	}
	if got, want := Vrev32q_s16(Int16x8{0, 1, 2, 3, 4, 5, 6, 7}), (Int16x8{1, 0, 3, 2, 5, 4, 7, 6}); got != want {
		t.Errorf("Vrev32q_s16: got %v, want %v", got, want)
	}
}

func TestTransposeZipUnzip(t *testing.T) {
	a := Int16x4{0, 1, 2, 3}
	b := Int16x4{10, 11, 12, 13}

	trn := Vtrn_s16(a, b)
	if want := (Int16x4x2{Val: [2]Int16x4{{0, 10, 2, 12}, {1, 11, 3, 13}}}); trn != want {
		t.Errorf("Vtrn_s16: got %v, want %v", trn, want)
	}
	zip := Vzip_s16(a, b)
	if want := (Int16x4x2{Val: [2]Int16x4{{0, 10, 1, 11}, {2, 12, 3, 13}}}); zip != want {
		t.Errorf("Vzip_s16: got %v, want %v", zip, want)
	}
	uzp := Vuzp_s16(a, b)
	if want := (Int16x4x2{Val: [2]Int16x4{{0, 2, 10, 12}, {1, 3, 11, 13}}}); uzp != want {
		t.Errorf("Vuzp_s16: got %v, want %v", uzp, want)
	}
	// uzp undoes zip.
	back := Vuzp_s16(zip.Val[0], zip.Val[1])
	if back.Val[0] != a || back.Val[1] != b {
		t.Errorf("Vuzp_s16(Vzip_s16): got %v, want %v %v", back, a, b)
	}

	qa := Uint8x16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	qb := Uint8x16{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}
	qz := Vzipq_u8(qa, qb)
	for i := range 16 {
		j := i / 2
		w0, w1 := qa[j], qa[8+j]
		if i%2 == 1 {
			w0, w1 = qb[j], qb[8+j]
		}
		if qz.Val[0][i] != w0 || qz.Val[1][i] != w1 {
			t.Errorf("Vzipq_u8 lane %d: got %d %d, want %d %d", i, qz.Val[0][i], qz.Val[1][i], w0, w1)
		}
	}
	qt := Vtrnq_u8(qa, qb)
	for i := range 16 {
		w0, w1 := qa[i&^1], qa[i|1]
		if i%2 == 1 {
			w0, w1 = qb[i&^1], qb[i|1]
		}
		if qt.Val[0][i] != w0 || qt.Val[1][i] != w1 {
			t.Errorf("Vtrnq_u8 lane %d: got %d %d, want %d %d", i, qt.Val[0][i], qt.Val[1][i], w0, w1)
		}
	}
}

func TestTableLookup(t *testing.T) {
	tab := Uint8x8{10, 11, 12, 13, 14, 15, 16, 17}
	idx := Uint8x8{0, 7, 8, 255, 3, 9, 1, 64}
	if got, want := Vtbl1_u8(tab, idx), (Uint8x8{10, 17, 0, 0, 13, 0, 11, 0}); got != want {
		t.Errorf("Vtbl1_u8: got %v, want %v", got, want)
	}
	dst := Uint8x8{100, 101, 102, 103, 104, 105, 106, 107}
	if got, want := Vtbx1_u8(dst, tab, idx), (Uint8x8{10, 17, 102, 103, 13, 105, 11, 107}); got != want {
		t.Errorf("Vtbx1_u8: got %v, want %v", got, want)
	}

	t2 := Uint8x8x2{Val: [2]Uint8x8{tab, {20, 21, 22, 23, 24, 25, 26, 27}}}
	if got, want := Vtbl2_u8(t2, idx), (Uint8x8{10, 17, 20, 0, 13, 21, 11, 0}); got != want {
		t.Errorf("Vtbl2_u8: got %v, want %v", got, want)
	}
	t4 := Int8x8x4{}
	for k := range 4 {
		for i := range 8 {
			t4.Val[k][i] = int8(k*8 + i)
		}
	}
	sidx := Int8x8{31, 32, -1, 0, 16, 24, 33, 8}
	if got, want := Vtbl4_s8(t4, sidx), (Int8x8{31, 0, 0, 0, 16, 24, 0, 8}); got != want {
		t.Errorf("Vtbl4_s8: got %v, want %v", got, want)
	}
	if got, want := Vtbx4_s8(Int8x8{-1, -2, -3, -4, -5, -6, -7, -8}, t4, sidx), (Int8x8{31, -2, -3, 0, 16, 24, -7, 8}); got != want {
		t.Errorf("Vtbx4_s8: got %v, want %v", got, want)
	}

	var q Uint8x16
	for i := range q {
		q[i] = uint8(200 + i)
	}
	qidx := Uint8x16{15, 0, 16, 17, 255, 8, 1, 2, 3, 4, 5, 6, 7, 9, 10, 128}
	got := Vqtbl1q_u8(q, qidx)
	for i, ix := range qidx {
		want := uint8(0)
		if ix < 16 {
			want = q[ix]
		}
		if got[i] != want {
			t.Errorf("Vqtbl1q_u8 lane %d: got %d, want %d", i, got[i], want)
		}
	}
	if got, want := Vqtbx1_u8(Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}, q, Uint8x8{0, 16, 15, 99}), (Uint8x8{200, 2, 215, 4, 200, 200, 200, 200}); got != want {
		t.Errorf("Vqtbx1_u8: got %v, want %v", got, want)
	}
}

func TestMultiTableLookup(t *testing.T) {
	var tab Uint8x16x4
	for k := range tab.Val {
		for i := range tab.Val[k] {
			tab.Val[k][i] = uint8(100 + 16*k + i)
		}
	}
	idx := Uint8x16{0, 15, 16, 31, 32, 47, 48, 63, 64, 255, 5, 40, 60, 33, 200, 17}
	ref := func(n int, fallback uint8) Uint8x16 {
		var r Uint8x16
		for i, x := range idx {
			r[i] = fallback
			if int(x) < 16*n {
				r[i] = uint8(100 + int(x))
			}
		}
		return r
	}
	t3 := Uint8x16x3{Val: [3]Uint8x16{tab.Val[0], tab.Val[1], tab.Val[2]}}
	t2 := Uint8x16x2{Val: [2]Uint8x16{tab.Val[0], tab.Val[1]}}
	if got, want := Vqtbl4q_u8(tab, idx), ref(4, 0); got != want {
		t.Errorf("Vqtbl4q_u8: got %v, want %v", got, want)
	}
	if got, want := Vqtbl3q_u8(t3, idx), ref(3, 0); got != want {
		t.Errorf("Vqtbl3q_u8: got %v, want %v", got, want)
	}
	if got, want := Vqtbl2q_u8(t2, idx), ref(2, 0); got != want {
		t.Errorf("Vqtbl2q_u8: got %v, want %v", got, want)
	}
	r := Vdupq_n_u8(7)
	if got, want := Vqtbx4q_u8(r, tab, idx), ref(4, 7); got != want {
		t.Errorf("Vqtbx4q_u8: got %v, want %v", got, want)
	}
	if got, want := Vqtbx3q_u8(r, t3, idx), ref(3, 7); got != want {
		t.Errorf("Vqtbx3q_u8: got %v, want %v", got, want)
	}

	// The d forms use the low eight indices.
	want := ref(4, 7)
	if got := Vqtbx4_u8(Vdup_n_u8(7), tab, Vget_low_u8(idx)); got != Vget_low_u8(want) {
		t.Errorf("Vqtbx4_u8: got %v, want %v", got, Vget_low_u8(want))
	}
	st := Int8x16x3{}
	for k := range st.Val {
		st.Val[k] = Vreinterpretq_s8_u8(tab.Val[k])
	}
	sidx := Int8x8{47, -1, 0, 48, 32, 16, 46, -128}
	if got, want := Vqtbl3_s8(st, sidx), (Int8x8{-109, 0, 100, 0, -124, 116, -110, 0}); got != want {
		t.Errorf("Vqtbl3_s8: got %v, want %v", got, want)
	}
}

func TestBitSelect(t *testing.T) {
	mask := Uint32x2{0xFFFF0000, 0x0F0F0F0F}
	a := Uint32x2{0x12345678, 0xFFFFFFFF}
	b := Uint32x2{0x9ABCDEF0, 0x00000000}
	if got, want := Vbsl_u32(mask, a, b), (Uint32x2{0x1234DEF0, 0x0F0F0F0F}); got != want {
		t.Errorf("Vbsl_u32: got %#v, want %#v", got, want)
	}
	// A lane mask from a comparison selects whole floats.
	x := Float32x4{1, -2, 3, -4}
	y := Float32x4{-1, 2, -3, 4}
	if got, want := Vbslq_f32(Vcgtq_f32(x, y), x, y), (Float32x4{1, 2, 3, 4}); got != want {
		t.Errorf("Vbslq_f32: got %v, want %v", got, want)
	}
}
