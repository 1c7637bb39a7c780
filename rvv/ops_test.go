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

func TestSetvl(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int8 m1 avl=8", Setvl[int8](8, M1), 8},
		{"int8 m1 avl=100", Setvl[int8](100, M1), VLMax[int8](M1)},
		{"int32 m2 avl=4", Setvl[int32](4, M2), 4},
		{"float64 m1 avl=0", Setvl[float64](0, M1), 0},
		{"int16 m1 avl=-1", Setvl[int16](-1, M1), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Setvl %s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestVLMaxFollowsVLEN(t *testing.T) {
	for _, bits := range []int{128, 256, 512} {
		restore := SetVLENForTesting(bits)
		if got, want := VLMax[int8](M1), bits/8; got != want {
			t.Errorf("VLMax int8 m1 at VLEN=%d: got %d, want %d", bits, got, want)
		}
		if got, want := VLMax[float64](M2), bits/32; got != want {
			t.Errorf("VLMax float64 m2 at VLEN=%d: got %d, want %d", bits, got, want)
		}
		restore()
	}
}

func TestTailAgnostic(t *testing.T) {
	if !tailPoison {
		t.Skip("tail poison disabled by NEON2RVV_NO_TAIL_POISON")
	}
	a := load[int32](1, 2)
	b := load[int32](3, 4)
	got := Vadd(a, b, 2).Data()
	if got[0] != 4 || got[1] != 6 {
		t.Errorf("Vadd int32: got %v, want [4 6 ...]", got[:2])
	}
	for i := 2; i < len(got); i++ {
		if got[i] != -1 {
			t.Errorf("Vadd int32: tail lane %d: got %d, want -1", i, got[i])
		}
	}
}

func TestVaddSub(t *testing.T) {
	a := load[uint8](250, 1, 128, 0)
	b := load[uint8](10, 2, 128, 1)

	sum := Vadd(a, b, 4).Data()
	diff := Vsub(a, b, 4).Data()
	wantSum := []uint8{4, 3, 0, 1}
	wantDiff := []uint8{240, 255, 0, 255}
	for i := range wantSum {
		if sum[i] != wantSum[i] {
			t.Errorf("Vadd uint8: lane %d: got %d, want %d", i, sum[i], wantSum[i])
		}
		if diff[i] != wantDiff[i] {
			t.Errorf("Vsub uint8: lane %d: got %d, want %d", i, diff[i], wantDiff[i])
		}
	}

	rs := Vrsub(load[int16](1, -5, 7), 10, 3).Data()
	for i, want := range []int16{9, 15, 3} {
		if rs[i] != want {
			t.Errorf("Vrsub int16: lane %d: got %d, want %d", i, rs[i], want)
		}
	}
}

func TestVmulh(t *testing.T) {
	got := Vmulh(load[int16](0x4000, -2, math.MinInt16), load[int16](4, 3, math.MinInt16), 3).Data()
	for i, want := range []int16{1, -1, 0x4000} {
		if got[i] != want {
			t.Errorf("Vmulh int16: lane %d: got %d, want %d", i, got[i], want)
		}
	}

	gotU := Vmulh(load[uint64](math.MaxUint64, 1<<32), load[uint64](math.MaxUint64, 1<<32), 2).Data()
	for i, want := range []uint64{math.MaxUint64 - 1, 1} {
		if gotU[i] != want {
			t.Errorf("Vmulh uint64: lane %d: got %d, want %d", i, gotU[i], want)
		}
	}
}

func TestVmaccVnmsac(t *testing.T) {
	acc := load[int32](10, 20)
	a := load[int32](3, -4)
	b := load[int32](5, 6)

	got := Vmacc(acc, a, b, 2).Data()
	for i, want := range []int32{25, -4} {
		if got[i] != want {
			t.Errorf("Vmacc int32: lane %d: got %d, want %d", i, got[i], want)
		}
	}
	got = Vnmsac(acc, a, b, 2).Data()
	for i, want := range []int32{-5, 44} {
		if got[i] != want {
			t.Errorf("Vnmsac int32: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestCompareAndMerge(t *testing.T) {
	a := load[int8](-1, 5, 3, 7)
	b := load[int8](1, 5, 2, 9)

	lt := Vmslt(a, b, 4)
	for i, want := range []bool{true, false, false, true} {
		if lt.Get(i) != want {
			t.Errorf("Vmslt int8: lane %d: got %v, want %v", i, lt.Get(i), want)
		}
	}
	ltu := Vmslt(Vreinterpret[uint8](a), Vreinterpret[uint8](b), 4)
	if ltu.Get(0) {
		t.Errorf("Vmslt uint8: lane 0: 0xFF < 1 reported true")
	}
	if got := Vmor(Vmseq(a, b, 4), Vmsgt(a, b, 4)).CountTrue(4); got != 2 {
		t.Errorf("Vmseq|Vmsgt: got %d active lanes, want 2", got)
	}

	merged := Vmerge(a, b, lt, 4).Data()
	for i, want := range []int8{1, 5, 3, 9} {
		if merged[i] != want {
			t.Errorf("Vmerge int8: lane %d: got %d, want %d", i, merged[i], want)
		}
	}
}

func TestVminVmax(t *testing.T) {
	a := load[uint16](1, 65535, 7)
	b := load[uint16](2, 0, 7)
	mn, mx := Vmin(a, b, 3).Data(), Vmax(a, b, 3).Data()
	for i, want := range []uint16{1, 0, 7} {
		if mn[i] != want {
			t.Errorf("Vmin uint16: lane %d: got %d, want %d", i, mn[i], want)
		}
	}
	for i, want := range []uint16{2, 65535, 7} {
		if mx[i] != want {
			t.Errorf("Vmax uint16: lane %d: got %d, want %d", i, mx[i], want)
		}
	}
}

func TestHostInfo(t *testing.T) {
	info := Info()
	if info.Arch == "" {
		t.Errorf("Info: empty Arch")
	}
	if info.VLEN != VLEN() {
		t.Errorf("Info: VLEN %d, want %d", info.VLEN, VLEN())
	}
	t.Logf("host %s, VLEN=%d, native RVV=%v, NEON=%v", info.Arch, info.VLEN, info.NativeRVV, info.NativeNEON)
}
