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

import "testing"

func TestLogical(t *testing.T) {
	a := load[uint8](0xF0, 0xAA, 0xFF)
	b := load[uint8](0x3C, 0x55, 0x0F)

	cases := []struct {
		name string
		got  []uint8
		want []uint8
	}{
		{"Vand", Vand(a, b, 3).Data(), []uint8{0x30, 0x00, 0x0F}},
		{"Vor", Vor(a, b, 3).Data(), []uint8{0xFC, 0xFF, 0xFF}},
		{"Vxor", Vxor(a, b, 3).Data(), []uint8{0xCC, 0xFF, 0xF0}},
		{"Vandn", Vandn(a, b, 3).Data(), []uint8{0xC0, 0xAA, 0xF0}},
		{"Vnot", Vnot(a, 3).Data(), []uint8{0x0F, 0x55, 0x00}},
	}
	for _, tt := range cases {
		for i, want := range tt.want {
			if tt.got[i] != want {
				t.Errorf("%s uint8: lane %d: got %#x, want %#x", tt.name, i, tt.got[i], want)
			}
		}
	}
}

func TestShiftsUseLowBits(t *testing.T) {
	a := load[int8](-128, 64, 1)
	// 9 & 7 = 1
	sh := load[int8](9, 9, 7)
	left := Vsll(a, sh, 3).Data()
	for i, want := range []int8{0, -128, -128} {
		if left[i] != want {
			t.Errorf("Vsll int8: lane %d: got %d, want %d", i, left[i], want)
		}
	}
	right := Vsr(a, sh, 3).Data()
	for i, want := range []int8{-64, 32, 0} {
		if right[i] != want {
			t.Errorf("Vsra int8: lane %d: got %d, want %d", i, right[i], want)
		}
	}
	logical := VsrVX(Vreinterpret[uint8](a), 1, 3).Data()
	for i, want := range []uint8{64, 32, 0} {
		if logical[i] != want {
			t.Errorf("Vsrl uint8: lane %d: got %d, want %d", i, logical[i], want)
		}
	}
	if got := VsllVX(load[uint32](1), 33, 1).Data()[0]; got != 2 {
		t.Errorf("VsllVX uint32 by 33: got %d, want 2", got)
	}
}

func TestZvbb(t *testing.T) {
	v := load[int16](0, 1, -1, 0x0100)
	clz := Vclz(v, 4).Data()
	for i, want := range []int16{16, 15, 0, 7} {
		if clz[i] != want {
			t.Errorf("Vclz int16: lane %d: got %d, want %d", i, clz[i], want)
		}
	}
	pop := Vcpop(v, 4).Data()
	for i, want := range []int16{0, 1, 16, 1} {
		if pop[i] != want {
			t.Errorf("Vcpop int16: lane %d: got %d, want %d", i, pop[i], want)
		}
	}
	rev := Vrev8(load[uint32](0x01020304), 1).Data()
	if rev[0] != 0x04030201 {
		t.Errorf("Vrev8 uint32: got %#x, want 0x04030201", rev[0])
	}
	rev16 := Vrev8(load[int16](-256), 1).Data()
	if rev16[0] != 0x00FF {
		t.Errorf("Vrev8 int16: got %#x, want 0xff", rev16[0])
	}
	ror := VrorVX(load[uint32](0x80000001), 1, 1).Data()
	if ror[0] != 0xC0000000 {
		t.Errorf("VrorVX uint32: got %#x, want 0xc0000000", ror[0])
	}
	rorv := Vror(load[uint8](0x81, 0x81), load[uint8](0, 12), 2).Data()
	if rorv[0] != 0x81 || rorv[1] != 0x18 {
		t.Errorf("Vror uint8: got %#x %#x, want 0x81 0x18", rorv[0], rorv[1])
	}
}
