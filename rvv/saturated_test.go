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

import (
	"math"
	"testing"
)

// load fills the smallest register group that holds xs.
func load[T Lanes](xs ...T) Vec[T] {
	return Vle(LMULFor[T](len(xs)), xs, len(xs))
}

func TestLoadGroupsWideLanes(t *testing.T) {
	defer SetVLENForTesting(MinVLEN)()
	v := load[int64](1, 2, 3, 4)
	if v.LMUL() != M2 || v.NumLanes() != 4 {
		t.Errorf("load 4 x int64: got %v with %d lanes, want m2 with 4", v.LMUL(), v.NumLanes())
	}
	for i, want := range []int64{1, 2, 3, 4} {
		if got := v.Data()[i]; got != want {
			t.Errorf("load int64: lane %d: got %d, want %d", i, got, want)
		}
	}
	if got := load[int64](1, 2).LMUL(); got != M1 {
		t.Errorf("load 2 x int64: got %v, want m1", got)
	}
}

func TestVsaddUint8(t *testing.T) {
	a := load[uint8](250, 100, 0, 255)
	b := load[uint8](10, 50, 100, 1)
	result := Vsadd(a, b, 4)

	expected := []uint8{255, 150, 100, 255}
	got := result.Data()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vsadd uint8: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVsaddInt8(t *testing.T) {
	a := load[int8](120, -120, 50, -50)
	b := load[int8](10, -10, 50, -50)
	result := Vsadd(a, b, 4)

	expected := []int8{127, -128, 100, -100}
	got := result.Data()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vsadd int8: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVsaddInt64(t *testing.T) {
	a := load[int64](math.MaxInt64, math.MinInt64)
	b := load[int64](1, -1)
	got := Vsadd(a, b, 2).Data()

	expected := []int64{math.MaxInt64, math.MinInt64}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vsadd int64: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVssubUint8(t *testing.T) {
	a := load[uint8](10, 100, 0, 255)
	b := load[uint8](20, 50, 100, 1)
	got := Vssub(a, b, 4).Data()

	expected := []uint8{0, 50, 0, 254}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vssub uint8: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVssubExhaustiveInt8(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		va := Vmv(M1, int8(a), 16)
		vb := Vle(M1, []int8{-128, -100, -1, 0, 1, 2, 50, 127, -2, -50, 100, 3, 4, 5, 6, 7}, 16)
		got := Vssub(va, vb, 16).Data()
		for i, b := range vb.Data()[:16] {
			want := min(max(a-int(b), math.MinInt8), math.MaxInt8)
			if int(got[i]) != want {
				t.Errorf("Vssub int8 %d-%d: got %d, want %d", a, b, got[i], want)
			}
		}
	}
}

func TestVaadd(t *testing.T) {
	a := load[uint8](255, 1, 2, 3)
	b := load[uint8](255, 2, 2, 0)

	tests := []struct {
		xrm  VXRM
		want []uint8
	}{
		{RDN, []uint8{255, 1, 2, 1}},
		{RNU, []uint8{255, 2, 2, 2}},
		{RNE, []uint8{255, 2, 2, 2}},
		{ROD, []uint8{255, 1, 2, 1}},
	}
	for _, tt := range tests {
		got := Vaadd(a, b, tt.xrm, 4).Data()
		for i, want := range tt.want {
			if got[i] != want {
				t.Errorf("Vaadd %v: lane %d: got %d, want %d", tt.xrm, i, got[i], want)
			}
		}
	}
}

func TestVasubUnsignedWraps(t *testing.T) {
	a := load[uint8](0, 10, 4)
	b := load[uint8](1, 4, 10)
	got := Vasub(a, b, RDN, 3).Data()

	// (0-1)>>1 = -1 and (4-10)>>1 = -3, both modulo 256.
	expected := []uint8{255, 3, 253}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vasub uint8: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVsmul(t *testing.T) {
	a := load[int16](math.MinInt16, 0x4000, -0x4000, 3)
	b := load[int16](math.MinInt16, 0x4000, 0x4000, 0x4000)
	got := Vsmul(a, b, RNU, 4).Data()

	// 0x4000*0x4000 = 2^28; >>15 = 0x2000. 3*0x4000>>15 = 1.5, rounds to 2.
	expected := []int16{math.MaxInt16, 0x2000, -0x2000, 2}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vsmul int16: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}

	got = Vsmul(a, b, RDN, 4).Data()
	if got[3] != 1 {
		t.Errorf("Vsmul RDN: got %d, want 1", got[3])
	}
}

func TestVsmulInt64(t *testing.T) {
	defer SetVLENForTesting(MinVLEN)()
	a := load[int64](math.MinInt64, 1<<62, -3)
	b := load[int64](math.MinInt64, 1<<62, 1<<62)
	got := Vsmul(a, b, RNU, 3).Data()

	// -3 * 2^62 >> 63 = -1.5, rounding half up gives -1.
	expected := []int64{math.MaxInt64, 1 << 61, -1}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vsmul int64: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVssr(t *testing.T) {
	a := load[int16](-5, 5, 6, 0x7FFF)
	got := VssrVX(a, 1, RNU, 4).Data()
	expected := []int16{-2, 3, 3, 0x4000}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("VssrVX RNU: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}

	got = VssrVX(a, 1, RNE, 4).Data()
	expected = []int16{-2, 2, 3, 0x4000}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("VssrVX RNE: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}

	// Only the low log2(SEW) bits of the shift are used: 17 & 15 = 1.
	got = Vssr(a, load[int16](17, 17, 17, 17), RDN, 4).Data()
	expected = []int16{-3, 2, 3, 0x3FFF}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vssr RDN: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}
}

func TestVnclip(t *testing.T) {
	w := load[int16](0x0128, 0x7FF0, -0x7FF0, -0x18)
	got := Vnclip[int8](w, 4, RNU, 4).Data()

	expected := []int8{0x13, 127, -128, -1}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vnclip int16->int8: lane %d: got %d, want %d", i, got[i], expected[i])
		}
	}

	u := load[uint32](0x1FFFF, 0xFFFF, 0x17)
	gotU := Vnclip[uint16](u, 0, RDN, 3).Data()
	expectedU := []uint16{0xFFFF, 0xFFFF, 0x17}
	for i := range expectedU {
		if gotU[i] != expectedU[i] {
			t.Errorf("Vnclip uint32->uint16: lane %d: got %d, want %d", i, gotU[i], expectedU[i])
		}
	}
}

func BenchmarkVsadd(b *testing.B) {
	x := Vmv(M1, int16(30000), 8)
	y := Vmv(M1, int16(10000), 8)
	b.ReportAllocs()
	for b.Loop() {
		x = Vsadd(x, y, 8)
	}
	_ = x
}
