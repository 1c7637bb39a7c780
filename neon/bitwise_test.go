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
	"math/bits"
	"testing"
)

func TestLogical(t *testing.T) {
	a := Uint8x8{0xF0, 0xFF, 0x00, 0xAA}
	b := Uint8x8{0x3C, 0x0F, 0xFF, 0x55}
	if got, want := Vand_u8(a, b), (Uint8x8{0x30, 0x0F, 0x00, 0x00}); got != want {
		t.Errorf("Vand_u8: got %#v, want %#v", got, want)
	}
	if got, want := Vorr_u8(a, b), (Uint8x8{0xFC, 0xFF, 0xFF, 0xFF}); got != want {
		t.Errorf("Vorr_u8: got %#v, want %#v", got, want)
	}
	if got, want := Veor_u8(a, b), (Uint8x8{0xCC, 0xF0, 0xFF, 0xFF}); got != want {
		t.Errorf("Veor_u8: got %#v, want %#v", got, want)
	}
	if got, want := Vbic_u8(a, b), (Uint8x8{0xC0, 0xF0, 0x00, 0xAA}); got != want {
		t.Errorf("Vbic_u8: got %#v, want %#v", got, want)
	}
	if got, want := Vorn_u8(a, b), (Uint8x8{0xF3, 0xFF, 0x00, 0xAA, 0xFF, 0xFF, 0xFF, 0xFF}); got != want {
		t.Errorf("Vorn_u8: got %#v, want %#v", got, want)
	}
	if got, want := Vmvn_s16(Int16x4{0, -1, 1, math.MinInt16}), (Int16x4{-1, 0, -2, math.MaxInt16}); got != want {
		t.Errorf("Vmvn_s16: got %v, want %v", got, want)
	}
}

func TestBitCounts(t *testing.T) {
	for x := range 256 {
		u := Uint8x8{uint8(x)}
		if got, want := Vcnt_u8(u)[0], uint8(bits.OnesCount8(uint8(x))); got != want {
			t.Fatalf("Vcnt_u8(%#x): got %d, want %d", x, got, want)
		}
		if got, want := Vclz_u8(u)[0], uint8(bits.LeadingZeros8(uint8(x))); got != want {
			t.Fatalf("Vclz_u8(%#x): got %d, want %d", x, got, want)
		}
		s := int8(x)
		want := bits.LeadingZeros8(uint8(s)) - 1
		if s < 0 {
			want = bits.LeadingZeros8(^uint8(s)) - 1
		}
		if got := Vcls_s8(Int8x8{s})[0]; int(got) != want {
			t.Fatalf("Vcls_s8(%d): got %d, want %d", s, got, want)
		}
	}
	if got, want := Vclzq_u32(Uint32x4{0, 1, 1 << 31, 0xFFFF}), (Uint32x4{32, 31, 0, 16}); got != want {
		t.Errorf("Vclzq_u32: got %v, want %v", got, want)
	}
	if got, want := Vclsq_s32(Int32x4{0, -1, 1, math.MinInt32}), (Int32x4{31, 31, 30, 0}); got != want {
		t.Errorf("Vclsq_s32: got %v, want %v", got, want)
	}
}

func TestIntegerCompare(t *testing.T) {
	a := Int8x8{-1, 0, 1, 5, -128, 127, 3, 3}
	b := Int8x8{1, 0, -1, 5, 127, -128, 4, 2}
	cases := []struct {
		name string
		got  Uint8x8
		want [8]bool
	}{
		{"Vceq_s8", Vceq_s8(a, b), [8]bool{false, true, false, true, false, false, false, false}},
		{"Vcge_s8", Vcge_s8(a, b), [8]bool{false, true, true, true, false, true, false, true}},
		{"Vcgt_s8", Vcgt_s8(a, b), [8]bool{false, false, true, false, false, true, false, true}},
		{"Vcle_s8", Vcle_s8(a, b), [8]bool{true, true, false, true, true, false, true, false}},
		{"Vclt_s8", Vclt_s8(a, b), [8]bool{true, false, false, false, true, false, true, false}},
	}
	for _, c := range cases {
		for i, w := range c.want {
			want := uint8(0)
			if w {
				want = math.MaxUint8
			}
			if c.got[i] != want {
				t.Errorf("%s lane %d: got %#x, want %#x", c.name, i, c.got[i], want)
			}
		}
	}
	// The same bits compare differently as unsigned.
	ua, ub := Vreinterpret_u8_s8(a), Vreinterpret_u8_s8(b)
	if got, want := Vcgt_u8(ua, ub), (Uint8x8{0xFF, 0, 0, 0, 0xFF, 0, 0, 0xFF}); got != want {
		t.Errorf("Vcgt_u8: got %#v, want %#v", got, want)
	}
	if got, want := Vtst_s64(Int64x1{0x10}, Int64x1{0x11}), (Uint64x1{math.MaxUint64}); got != want {
		t.Errorf("Vtst_s64: got %#v, want %#v", got, want)
	}
	if got, want := Vtst_u8(Uint8x8{0x10, 0x01}, Uint8x8{0x01, 0x01}), (Uint8x8{0, 0xFF}); got != want {
		t.Errorf("Vtst_u8: got %#v, want %#v", got, want)
	}
}

func TestFloatCompare(t *testing.T) {
	nan := float32(math.NaN())
	a := Float32x4{1, nan, -0.0, -3}
	b := Float32x4{1, nan, 0.0, 2}
	if got, want := Vceqq_f32(a, b), (Uint32x4{math.MaxUint32, 0, math.MaxUint32, 0}); got != want {
		t.Errorf("Vceqq_f32: got %#v, want %#v", got, want)
	}
	if got, want := Vcgeq_f32(a, b), (Uint32x4{math.MaxUint32, 0, math.MaxUint32, 0}); got != want {
		t.Errorf("Vcgeq_f32: got %#v, want %#v", got, want)
	}
	if got, want := Vcltq_f32(a, b), (Uint32x4{0, 0, 0, math.MaxUint32}); got != want {
		t.Errorf("Vcltq_f32: got %#v, want %#v", got, want)
	}
	// |-3| > |2|.
	if got, want := Vcagtq_f32(a, b), (Uint32x4{0, 0, 0, math.MaxUint32}); got != want {
		t.Errorf("Vcagtq_f32: got %#v, want %#v", got, want)
	}
	if got, want := Vcale_f64(Float64x1{-1}, Float64x1{1}), (Uint64x1{math.MaxUint64}); got != want {
		t.Errorf("Vcale_f64: got %#v, want %#v", got, want)
	}
}

func TestReinterpret(t *testing.T) {
	f := Float32x4{1, -2, 0.5, float32(math.Inf(1))}
	u := Vreinterpretq_u32_f32(f)
	for i := range 4 {
		if u[i] != math.Float32bits(f[i]) {
			t.Errorf("Vreinterpretq_u32_f32 lane %d: got %#x, want %#x", i, u[i], math.Float32bits(f[i]))
		}
	}
	if back := Vreinterpretq_f32_u32(u); back != f {
		t.Errorf("Vreinterpretq_f32_u32: got %v, want %v", back, f)
	}
	// Lane 0 holds the least significant bytes.
	if got, want := Vreinterpret_u8_u64(Uint64x1{0x0807060504030201}), (Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}); got != want {
		t.Errorf("Vreinterpret_u8_u64: got %v, want %v", got, want)
	}
	if got, want := Vreinterpret_u64_u8(Uint8x8{1, 2, 3, 4, 5, 6, 7, 8}), (Uint64x1{0x0807060504030201}); got != want {
		t.Errorf("Vreinterpret_u64_u8: got %#v, want %#v", got, want)
	}
}
