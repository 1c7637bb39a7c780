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

func TestVleVse(t *testing.T) {
	src := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := Vle(M1, src, 8)
	dst := make([]int16, 9)
	Vse(v, dst, 8)
	for i := range 8 {
		if dst[i] != src[i] {
			t.Errorf("Vse int16: elem %d: got %d, want %d", i, dst[i], src[i])
		}
	}
	if dst[8] != 0 {
		t.Errorf("Vse int16: wrote past vl: elem 8 = %d", dst[8])
	}
}

func TestVlseVsse(t *testing.T) {
	src := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	even := Vlse(M1, src, 2, 4).Data()
	for i, want := range []uint8{0, 2, 4, 6} {
		if even[i] != want {
			t.Errorf("Vlse stride 2: lane %d: got %d, want %d", i, even[i], want)
		}
	}

	dst := []uint8{9, 9, 9, 9, 9, 9}
	Vsse(load[uint8](1, 2, 3), dst, 2, 3)
	for i, want := range []uint8{1, 9, 2, 9, 3, 9} {
		if dst[i] != want {
			t.Errorf("Vsse stride 2: elem %d: got %d, want %d", i, dst[i], want)
		}
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	mem := []int32{1, 5, 2, 6, 3, 7, 4, 8}
	a, b := Vlseg2(M1, mem, 4)
	da, db := a.Data(), b.Data()
	for i := range 4 {
		if da[i] != int32(i+1) || db[i] != int32(i+5) {
			t.Errorf("Vlseg2: lane %d: got (%d, %d), want (%d, %d)", i, da[i], db[i], i+1, i+5)
		}
	}

	out := make([]int32, 8)
	Vsseg2(a, b, out, 4)
	for i := range mem {
		if out[i] != mem[i] {
			t.Errorf("Vsseg2: elem %d: got %d, want %d", i, out[i], mem[i])
		}
	}
}

func TestSegment3And4(t *testing.T) {
	mem := make([]uint16, 12)
	for i := range mem {
		mem[i] = uint16(i)
	}
	a, b, c := Vlseg3(M1, mem, 4)
	for i := range 4 {
		if a.Data()[i] != uint16(3*i) || b.Data()[i] != uint16(3*i+1) || c.Data()[i] != uint16(3*i+2) {
			t.Errorf("Vlseg3: lane %d mismatch", i)
		}
	}
	out := make([]uint16, 12)
	Vsseg3(a, b, c, out, 4)
	for i := range out {
		if out[i] != mem[i] {
			t.Errorf("Vsseg3: elem %d: got %d, want %d", i, out[i], mem[i])
		}
	}

	w, x, y, z := Vlseg4(M1, mem, 3)
	out = make([]uint16, 12)
	Vsseg4(w, x, y, z, out, 3)
	for i := range out {
		if out[i] != mem[i] {
			t.Errorf("Vsseg4: elem %d: got %d, want %d", i, out[i], mem[i])
		}
	}
}

func TestVmv(t *testing.T) {
	v := Vmv(M1, float32(2.5), 4)
	for i, x := range v.Data()[:4] {
		if x != 2.5 {
			t.Errorf("Vmv float32: lane %d: got %v, want 2.5", i, x)
		}
	}
	if got := VmvXS(v); got != 2.5 {
		t.Errorf("VmvXS: got %v, want 2.5", got)
	}
	s := VmvSX(load[int8](1, 2, 3), 9, 3).Data()
	for i, want := range []int8{9, 2, 3} {
		if s[i] != want {
			t.Errorf("VmvSX: lane %d: got %d, want %d", i, s[i], want)
		}
	}
}
