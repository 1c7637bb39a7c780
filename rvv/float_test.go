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

func TestCanonicalNaN(t *testing.T) {
	payload := math.Float32frombits(0x7FA00001) // signaling NaN with payload
	got := Vfadd(load[float32](payload, 1), load[float32](1, 2), 2).Data()
	if bits := math.Float32bits(got[0]); bits != canonicalNaN32 {
		t.Errorf("Vfadd NaN: got %#x, want canonical %#x", bits, canonicalNaN32)
	}
	if got[1] != 3 {
		t.Errorf("Vfadd: lane 1: got %v, want 3", got[1])
	}

	inf := math.Inf(1)
	got64 := Vfsub(load(inf), load(inf), 1).Data()
	if bits := math.Float64bits(got64[0]); bits != canonicalNaN64 {
		t.Errorf("Vfsub inf-inf: got %#x, want canonical %#x", bits, uint64(canonicalNaN64))
	}
}

func TestFMA32RoundsOnce(t *testing.T) {
	tests := []struct {
		a, b, c float32
	}{
		{1 + 1.0/(1<<23), 1 + 1.0/(1<<23), -1},
		{3, 1.0 / 3, -1},
		{math.MaxFloat32, 2, -math.MaxFloat32},
		{float32(math.Copysign(0, -1)), 1, 0},
	}
	for _, tt := range tests {
		// These sums are exact in float64, so rounding the float64 FMA to
		// float32 is the correctly rounded result.
		want := float32(math.FMA(float64(tt.a), float64(tt.b), float64(tt.c)))
		got := Vfmacc(load(tt.c), load(tt.a), load(tt.b), 1).Data()[0]
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("Vfmacc(%v*%v+%v): got %v, want %v", tt.a, tt.b, tt.c, got, want)
		}
	}
}

func TestFMA32DoubleRounding(t *testing.T) {
	// a*b = 2^-24 + 2^-60, so a*b + 1 lies just above the float32 tie
	// 1 + 2^-24. Rounding through float64 would land on the tie and round
	// down to 1.
	a := float32((1 + 1.0/(1<<12)) / 4096)
	b := float32((1 - 4095.0/(1<<24)) / 4096)
	got := fma32(a, b, 1)
	want := float32(1 + 1.0/(1<<23))
	if got != want {
		t.Errorf("fma32: got %v, want %v", got, want)
	}
}

func TestVfminVfmax(t *testing.T) {
	defer SetVLENForTesting(MinVLEN)()
	nan := math.NaN()
	a := load(1, nan, math.Copysign(0, -1), nan)
	b := load(2, 5, 0, nan)
	mn, mx := Vfmin(a, b, 4).Data(), Vfmax(a, b, 4).Data()
	if mn[0] != 1 || mx[0] != 2 {
		t.Errorf("Vfmin/Vfmax: lane 0: got %v/%v, want 1/2", mn[0], mx[0])
	}
	if mn[1] != 5 || mx[1] != 5 {
		t.Errorf("Vfmin/Vfmax: lane 1 with NaN: got %v/%v, want 5/5", mn[1], mx[1])
	}
	if !math.Signbit(mn[2]) || math.Signbit(mx[2]) {
		t.Errorf("Vfmin/Vfmax: signed zeros: got %v/%v, want -0/+0", mn[2], mx[2])
	}
	if math.Float64bits(mn[3]) != canonicalNaN64 {
		t.Errorf("Vfmin both NaN: got %#x", math.Float64bits(mn[3]))
	}
}

func TestSignInjection(t *testing.T) {
	a := load[float32](1.5, -2, 0)
	b := load[float32](-1, 1, -1)
	gotSgnj := Vfsgnj(a, b, 3).Data()
	for i, want := range []float32{-1.5, 2, float32(math.Copysign(0, -1))} {
		if math.Float32bits(gotSgnj[i]) != math.Float32bits(want) {
			t.Errorf("Vfsgnj: lane %d: got %v, want %v", i, gotSgnj[i], want)
		}
	}
	neg, abs := Vfneg(a, 3).Data(), Vfabs(a, 3).Data()
	if neg[0] != -1.5 || neg[1] != 2 || abs[1] != 2 {
		t.Errorf("Vfneg/Vfabs: got %v/%v", neg[:3], abs[:3])
	}

	// NaN payloads pass through sign injection.
	snan := math.Float32frombits(0x7F800001)
	got := Vfneg(load(snan), 1).Data()[0]
	if bits := math.Float32bits(got); bits != 0xFF800001 {
		t.Errorf("Vfneg sNaN: got %#x, want 0xff800001", bits)
	}
}

func TestFloatCompare(t *testing.T) {
	nan := float32(math.NaN())
	a := load[float32](1, nan, 3)
	b := load[float32](2, nan, 3)
	if m := Vmflt(a, b, 3); !m.Get(0) || m.Get(1) || m.Get(2) {
		t.Errorf("Vmflt: got %v %v %v", m.Get(0), m.Get(1), m.Get(2))
	}
	if m := Vmfne(a, a, 3); m.Get(0) || !m.Get(1) {
		t.Errorf("Vmfne self: NaN lane not detected")
	}
	if m := Vmfge(a, b, 3); m.Get(0) || m.Get(1) || !m.Get(2) {
		t.Errorf("Vmfge: got %v %v %v", m.Get(0), m.Get(1), m.Get(2))
	}
}

func TestVfcvtXF(t *testing.T) {
	a := load[float32](2.5, -2.5, float32(math.NaN()), float32(math.Inf(-1)))
	tests := []struct {
		frm  FRM
		want []int32
	}{
		{FrmRNE, []int32{2, -2, math.MaxInt32, math.MinInt32}},
		{FrmRTZ, []int32{2, -2, math.MaxInt32, math.MinInt32}},
		{FrmRDN, []int32{2, -3, math.MaxInt32, math.MinInt32}},
		{FrmRUP, []int32{3, -2, math.MaxInt32, math.MinInt32}},
		{FrmRMM, []int32{3, -3, math.MaxInt32, math.MinInt32}},
	}
	for _, tt := range tests {
		got := VfcvtXF[int32](a, tt.frm, 4).Data()
		for i, want := range tt.want {
			if got[i] != want {
				t.Errorf("VfcvtXF %v: lane %d: got %d, want %d", tt.frm, i, got[i], want)
			}
		}
	}

	u := VfcvtXF[uint32](load[float32](-1, 5e9, float32(math.NaN())), FrmRTZ, 3).Data()
	for i, want := range []uint32{0, math.MaxUint32, math.MaxUint32} {
		if u[i] != want {
			t.Errorf("VfcvtXF uint32: lane %d: got %d, want %d", i, u[i], want)
		}
	}

	l := VfcvtXF[int64](load(9.3e18, -9.3e18), FrmRTZ, 2).Data()
	if l[0] != math.MaxInt64 || l[1] != math.MinInt64 {
		t.Errorf("VfcvtXF int64: got %v, want saturated", l[:2])
	}
}

func TestFloatWidthConversions(t *testing.T) {
	defer SetVLENForTesting(MinVLEN)()
	f := VfcvtFX[float32](load[int32](16777217, -3), 2).Data()
	if f[0] != 16777216 || f[1] != -3 {
		t.Errorf("VfcvtFX: got %v, want [16777216 -3]", f[:2])
	}
	w := VfwcvtFF(load[float32](1.5, -0.25), 2).Data()
	if w[0] != 1.5 || w[1] != -0.25 {
		t.Errorf("VfwcvtFF: got %v", w[:2])
	}
	n := VfncvtFF(load(1+1.0/(1<<30), 1e40), 2).Data()
	if n[0] != 1 || !math.IsInf(float64(n[1]), 1) {
		t.Errorf("VfncvtFF: got %v", n[:2])
	}
	o := VfncvtRodFF(load(1+1.0/(1<<30), 1e40, 0.5), 3).Data()
	if math.Float32bits(o[0]) != math.Float32bits(1)|1 {
		t.Errorf("VfncvtRodFF inexact: got %#x", math.Float32bits(o[0]))
	}
	if o[1] != math.MaxFloat32 || o[2] != 0.5 {
		t.Errorf("VfncvtRodFF: got %v", o[:3])
	}
}

func TestVreinterpret(t *testing.T) {
	v := load[float32](1, -2)
	u := Vreinterpret[uint32](v).Data()
	if u[0] != 0x3F800000 || u[1] != 0xC0000000 {
		t.Errorf("Vreinterpret float32->uint32: got %#x %#x", u[0], u[1])
	}
	back := Vreinterpret[float32](Vreinterpret[uint32](v)).Data()
	if back[0] != 1 || back[1] != -2 {
		t.Errorf("Vreinterpret round trip: got %v", back[:2])
	}
	b := Vreinterpret[uint8](load[uint16](0x0102)).Data()
	if b[0] != 0x02 || b[1] != 0x01 {
		t.Errorf("Vreinterpret uint16->uint8: got %#x %#x, want little-endian", b[0], b[1])
	}
}
