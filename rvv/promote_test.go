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

func TestVext(t *testing.T) {
	s := Vext[int16](load[int8](-1, 127, -128), 3).Data()
	for i, want := range []int16{-1, 127, -128} {
		if s[i] != want {
			t.Errorf("Vext int8->int16: lane %d: got %d, want %d", i, s[i], want)
		}
	}
	u := Vext[uint16](load[uint8](255, 0, 128), 3).Data()
	for i, want := range []uint16{255, 0, 128} {
		if u[i] != want {
			t.Errorf("Vext uint8->uint16: lane %d: got %d, want %d", i, u[i], want)
		}
	}
}

func TestWideningArithmetic(t *testing.T) {
	a := load[uint8](255, 200, 1)
	b := load[uint8](255, 100, 2)

	sum := Vwadd[uint16](a, b, 3).Data()
	for i, want := range []uint16{510, 300, 3} {
		if sum[i] != want {
			t.Errorf("Vwadd uint8: lane %d: got %d, want %d", i, sum[i], want)
		}
	}
	diff := Vwsub[uint16](b, a, 3).Data()
	for i, want := range []uint16{0, 65436, 1} {
		if diff[i] != want {
			t.Errorf("Vwsub uint8: lane %d: got %d, want %d", i, diff[i], want)
		}
	}
	prod := Vwmul[uint16](a, b, 3).Data()
	for i, want := range []uint16{65025, 20000, 2} {
		if prod[i] != want {
			t.Errorf("Vwmul uint8: lane %d: got %d, want %d", i, prod[i], want)
		}
	}
	acc := Vwmacc(Vmv(M1, uint16(1), 3), a, b, 3).Data()
	for i, want := range []uint16{65026, 20001, 3} {
		if acc[i] != want {
			t.Errorf("Vwmacc uint8: lane %d: got %d, want %d", i, acc[i], want)
		}
	}
	w := Vwaddw(Vmv(M1, uint16(1000), 3), a, 3).Data()
	for i, want := range []uint16{1255, 1200, 1001} {
		if w[i] != want {
			t.Errorf("Vwaddw uint16: lane %d: got %d, want %d", i, w[i], want)
		}
	}
	w = Vwsubw(Vmv(M1, uint16(1000), 3), a, 3).Data()
	for i, want := range []uint16{745, 800, 999} {
		if w[i] != want {
			t.Errorf("Vwsubw uint16: lane %d: got %d, want %d", i, w[i], want)
		}
	}
}

func TestVwmulsu(t *testing.T) {
	got := Vwmulsu[int16](load[int8](-128, 127, -1), load[uint8](255, 255, 1), 3).Data()
	for i, want := range []int16{-32640, 32385, -1} {
		if got[i] != want {
			t.Errorf("Vwmulsu: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestVwmaccsu(t *testing.T) {
	acc := load[int16](1, -1, 100)
	got := Vwmaccsu(acc, load[int8](-128, 127, -1), load[uint8](255, 255, 1), 3).Data()
	for i, want := range []int16{-32639, 32384, 99} {
		if got[i] != want {
			t.Errorf("Vwmaccsu: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestVnsr(t *testing.T) {
	w := load[int32](math.MinInt32, 0x12345678, -1)
	got := Vnsr[int16](w, 16, 3).Data()
	for i, want := range []int16{math.MinInt16, 0x1234, -1} {
		if got[i] != want {
			t.Errorf("Vnsr int32->int16: lane %d: got %d, want %d", i, got[i], want)
		}
	}
	// Truncation with shift 0.
	gotU := Vnsr[uint8](load[uint16](0x1FF, 0x80), 0, 2).Data()
	for i, want := range []uint8{0xFF, 0x80} {
		if gotU[i] != want {
			t.Errorf("Vnsr uint16->uint8: lane %d: got %d, want %d", i, gotU[i], want)
		}
	}
}

func TestWideningUsesGrouping(t *testing.T) {
	a := Vle(M1, make([]int8, 16), 16)
	w := Vext[int16](a, 16)
	if w.LMUL() != M1 && VLEN() >= 256 {
		t.Errorf("Vext at VLEN=%d: got %v, want m1", VLEN(), w.LMUL())
	}
	if VLEN() == 128 && w.LMUL() != M2 {
		t.Errorf("Vext of 16 lanes at VLEN=128: got %v, want m2", w.LMUL())
	}
}
