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

import "testing"

func TestDotProduct(t *testing.T) {
	a := Int8x8{1, 2, 3, 4, -1, -2, -3, -4}
	b := Int8x8{1, 1, 1, 1, 2, 2, 2, 2}
	if got, want := Vdot_s32(Int32x2{10, 20}, a, b), (Int32x2{20, 0}); got != want {
		t.Errorf("Vdot_s32: got %v, want %v", got, want)
	}
	// lane 1 selects the group {2, 2, 2, 2}.
	if got, want := Vdot_lane_s32(Int32x2{}, a, b, 1), (Int32x2{20, -20}); got != want {
		t.Errorf("Vdot_lane_s32: got %v, want %v", got, want)
	}
	var ext Int8x8
	for i := range ext {
		ext[i] = -128
	}
	if got, want := Vdot_s32(Int32x2{}, ext, ext), (Int32x2{65536, 65536}); got != want {
		t.Errorf("Vdot_s32 extremes: got %v, want %v", got, want)
	}

	var ones Uint8x16
	for i := range ones {
		ones[i] = 255
	}
	if got, want := Vdotq_u32(Uint32x4{1, 0, 0, 0}, ones, ones), (Uint32x4{260101, 260100, 260100, 260100}); got != want {
		t.Errorf("Vdotq_u32: got %v, want %v", got, want)
	}
	q := Uint8x16{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}
	if got, want := Vdotq_laneq_u32(Uint32x4{}, q, Uint8x16{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 6, 7, 8}, 3), (Uint32x4{0, 26, 52, 78}); got != want {
		t.Errorf("Vdotq_laneq_u32: got %v, want %v", got, want)
	}
}

func TestMixedSignDotProduct(t *testing.T) {
	u := Uint8x8{255, 255, 255, 255, 1, 2, 3, 4}
	s := Int8x8{-1, -1, -1, -1, -128, 127, 0, 1}
	if got, want := Vusdot_s32(Int32x2{}, u, s), (Int32x2{-1020, -128 + 254 + 4}); got != want {
		t.Errorf("Vusdot_s32: got %v, want %v", got, want)
	}
	// Vsudot takes the signed operand first; lane 0 of u is {255, 255, 255, 255}.
	if got, want := Vsudot_lane_s32(Int32x2{5, 5}, s, u, 0), (Int32x2{5 - 1020, 5 + 255*(-128+127+0+1)}); got != want {
		t.Errorf("Vsudot_lane_s32: got %v, want %v", got, want)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := Float32x4{1, 2, 0, 1} // 1+2i, i
	b := Float32x4{3, 4, 0, 1} // 3+4i, i
	var acc Float32x4
	acc = Vcmlaq_f32(acc, a, b)
	acc = Vcmlaq_rot90_f32(acc, a, b)
	if want := (Float32x4{-5, 10, -1, 0}); acc != want {
		t.Errorf("complex multiply: got %v, want %v", acc, want)
	}
	// rot 0 plus rot 270 multiplies by the conjugate of a.
	conj := Vcmlaq_rot270_f32(Vcmlaq_f32(Float32x4{}, a, b), a, b)
	if want := (Float32x4{11, -2, 1, 0}); conj != want {
		t.Errorf("conjugate multiply: got %v, want %v", conj, want)
	}
	if got, want := Vcmlaq_rot180_f32(Float32x4{1, 1, 1, 1}, a, b), (Float32x4{-2, -3, 1, 1}); got != want {
		t.Errorf("Vcmlaq_rot180_f32: got %v, want %v", got, want)
	}

	if got, want := Vcaddq_rot90_f32(a, b), (Float32x4{-3, 5, -1, 1}); got != want {
		t.Errorf("Vcaddq_rot90_f32: got %v, want %v", got, want)
	}
	if got, want := Vcaddq_rot270_f32(a, b), (Float32x4{5, -1, 1, 1}); got != want {
		t.Errorf("Vcaddq_rot270_f32: got %v, want %v", got, want)
	}

	// Lane forms broadcast one complex pair of b.
	if got, want := Vcmlaq_lane_f32(Float32x4{}, a, Float32x2{3, 4}, 0), (Float32x4{3, 4, 0, 0}); got != want {
		t.Errorf("Vcmlaq_lane_f32: got %v, want %v", got, want)
	}
	if got, want := Vcmla_rot90_laneq_f32(Float32x2{}, Float32x2{1, 2}, b, 1), (Float32x2{-2, 0}); got != want {
		t.Errorf("Vcmla_rot90_laneq_f32: got %v, want %v", got, want)
	}

	d := Vcmlaq_rot90_f64(Vcmlaq_f64(Float64x2{}, Float64x2{0, 1}, Float64x2{0, 1}), Float64x2{0, 1}, Float64x2{0, 1})
	if want := (Float64x2{-1, 0}); d != want {
		t.Errorf("i*i: got %v, want %v", d, want)
	}
}
