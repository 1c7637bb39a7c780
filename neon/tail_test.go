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
	"fmt"
	"testing"

	"github.com/ajroetker/neon2rvv/rvv"
)

// tailSensitive runs operations whose RVV lowering touches lanes past
// vl: slides, gathers, segment loads, widening and narrowing.
func tailSensitive() []string {
	a := Int16x8{-7, 1, 300, -32768, 32767, 12, -1, 5}
	b := Int16x8{3, 3, -3, 1, 1, 100, 2, -9}
	u := Uint8x16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	f := Float32x4{1.5, -2.25, 3, 1e30}
	mem := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}
	return []string{
		fmt.Sprint(Vqaddq_s16(a, b)),
		fmt.Sprint(Vmull_s16(Vget_low_s16(a), Vget_high_s16(b))),
		fmt.Sprint(Vqmovn_s32(Vmovl_s16(Vget_high_s16(a)))),
		fmt.Sprint(Vextq_u8(u, Vrev64q_u8(u), 5)),
		fmt.Sprint(Vqtbl1q_u8(u, Vrev32q_u8(u))),
		fmt.Sprint(Vzipq_s16(a, b), Vuzpq_s16(a, b), Vtrnq_s16(a, b)),
		fmt.Sprint(Vld4_u8(mem), Vld2q_u8(mem)),
		fmt.Sprint(Vpaddq_s16(a, b), Vpadal_s16(Int32x2{1, 2}, Vget_low_s16(a))),
		fmt.Sprint(Vrshlq_s16(a, b), Vqrshrn_n_s16(a, 3)),
		fmt.Sprint(Vcombine_u8(Vget_high_u8(u), Vget_low_u8(u))),
		fmt.Sprint(Vfmaq_f32(f, f, f), Vcvt_f64_f32(Vget_low_f32(f)), Vcvtnq_s32_f32(f)),
		fmt.Sprint(Vdotq_s32(Int32x4{1, 2, 3, 4}, Vreinterpretq_s8_u8(u), Vreinterpretq_s8_u8(u))),
		fmt.Sprint(Vaeseq_u8(u, Vrev64q_u8(u))),
		fmt.Sprint(Vcmlaq_rot90_f32(f, f, f), Vcaddq_rot270_f32(f, f)),
	}
}

func TestResultsIndependentOfVLEN(t *testing.T) {
	restore := rvv.SetVLENForTesting(rvv.MinVLEN)
	want := tailSensitive()
	restore()
	for _, bits := range []int{256, 512} {
		t.Run(fmt.Sprintf("VLEN%d", bits), func(t *testing.T) {
			defer rvv.SetVLENForTesting(bits)()
			got := tailSensitive()
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("case %d: got %s, want %s", i, got[i], want[i])
				}
			}
		})
	}
}
