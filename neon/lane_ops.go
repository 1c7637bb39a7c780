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

// Vget_lane_s8 returns lane of v.
func Vget_lane_s8(v Int8x8, lane int) int8 { return getLane[int8](v, lane) }
func Vget_lane_s16(v Int16x4, lane int) int16 { return getLane[int16](v, lane) }
func Vget_lane_s32(v Int32x2, lane int) int32 { return getLane[int32](v, lane) }
func Vget_lane_s64(v Int64x1, lane int) int64 { return getLane[int64](v, lane) }
func Vget_lane_u8(v Uint8x8, lane int) uint8 { return getLane[uint8](v, lane) }
func Vget_lane_u16(v Uint16x4, lane int) uint16 { return getLane[uint16](v, lane) }
func Vget_lane_u32(v Uint32x2, lane int) uint32 { return getLane[uint32](v, lane) }
func Vget_lane_u64(v Uint64x1, lane int) uint64 { return getLane[uint64](v, lane) }
func Vget_lane_f32(v Float32x2, lane int) float32 { return getLane[float32](v, lane) }
func Vget_lane_f64(v Float64x1, lane int) float64 { return getLane[float64](v, lane) }
func Vgetq_lane_s8(v Int8x16, lane int) int8 { return getLane[int8](v, lane) }
func Vgetq_lane_s16(v Int16x8, lane int) int16 { return getLane[int16](v, lane) }
func Vgetq_lane_s32(v Int32x4, lane int) int32 { return getLane[int32](v, lane) }
func Vgetq_lane_s64(v Int64x2, lane int) int64 { return getLane[int64](v, lane) }
func Vgetq_lane_u8(v Uint8x16, lane int) uint8 { return getLane[uint8](v, lane) }
func Vgetq_lane_u16(v Uint16x8, lane int) uint16 { return getLane[uint16](v, lane) }
func Vgetq_lane_u32(v Uint32x4, lane int) uint32 { return getLane[uint32](v, lane) }
func Vgetq_lane_u64(v Uint64x2, lane int) uint64 { return getLane[uint64](v, lane) }
func Vgetq_lane_f32(v Float32x4, lane int) float32 { return getLane[float32](v, lane) }
func Vgetq_lane_f64(v Float64x2, lane int) float64 { return getLane[float64](v, lane) }

// Vset_lane_s8 returns v with lane replaced by x.
func Vset_lane_s8(x int8, v Int8x8, lane int) Int8x8 { return setLane[int8](x, v, lane) }
func Vset_lane_s16(x int16, v Int16x4, lane int) Int16x4 { return setLane[int16](x, v, lane) }
func Vset_lane_s32(x int32, v Int32x2, lane int) Int32x2 { return setLane[int32](x, v, lane) }
func Vset_lane_s64(x int64, v Int64x1, lane int) Int64x1 { return setLane[int64](x, v, lane) }
func Vset_lane_u8(x uint8, v Uint8x8, lane int) Uint8x8 { return setLane[uint8](x, v, lane) }
func Vset_lane_u16(x uint16, v Uint16x4, lane int) Uint16x4 { return setLane[uint16](x, v, lane) }
func Vset_lane_u32(x uint32, v Uint32x2, lane int) Uint32x2 { return setLane[uint32](x, v, lane) }
func Vset_lane_u64(x uint64, v Uint64x1, lane int) Uint64x1 { return setLane[uint64](x, v, lane) }

func Vset_lane_f32(x float32, v Float32x2, lane int) Float32x2 {
	return setLane[float32](x, v, lane)
}

func Vset_lane_f64(x float64, v Float64x1, lane int) Float64x1 {
	return setLane[float64](x, v, lane)
}

func Vsetq_lane_s8(x int8, v Int8x16, lane int) Int8x16 { return setLane[int8](x, v, lane) }
func Vsetq_lane_s16(x int16, v Int16x8, lane int) Int16x8 { return setLane[int16](x, v, lane) }
func Vsetq_lane_s32(x int32, v Int32x4, lane int) Int32x4 { return setLane[int32](x, v, lane) }
func Vsetq_lane_s64(x int64, v Int64x2, lane int) Int64x2 { return setLane[int64](x, v, lane) }
func Vsetq_lane_u8(x uint8, v Uint8x16, lane int) Uint8x16 { return setLane[uint8](x, v, lane) }
func Vsetq_lane_u16(x uint16, v Uint16x8, lane int) Uint16x8 { return setLane[uint16](x, v, lane) }
func Vsetq_lane_u32(x uint32, v Uint32x4, lane int) Uint32x4 { return setLane[uint32](x, v, lane) }
func Vsetq_lane_u64(x uint64, v Uint64x2, lane int) Uint64x2 { return setLane[uint64](x, v, lane) }

func Vsetq_lane_f32(x float32, v Float32x4, lane int) Float32x4 {
	return setLane[float32](x, v, lane)
}

func Vsetq_lane_f64(x float64, v Float64x2, lane int) Float64x2 {
	return setLane[float64](x, v, lane)
}

// Vdup_n_s8 broadcasts x to every lane.
func Vdup_n_s8(x int8) Int8x8 { return dup[int8, Int8x8](x) }
func Vdup_n_s16(x int16) Int16x4 { return dup[int16, Int16x4](x) }
func Vdup_n_s32(x int32) Int32x2 { return dup[int32, Int32x2](x) }
func Vdup_n_s64(x int64) Int64x1 { return dup[int64, Int64x1](x) }
func Vdup_n_u8(x uint8) Uint8x8 { return dup[uint8, Uint8x8](x) }
func Vdup_n_u16(x uint16) Uint16x4 { return dup[uint16, Uint16x4](x) }
func Vdup_n_u32(x uint32) Uint32x2 { return dup[uint32, Uint32x2](x) }
func Vdup_n_u64(x uint64) Uint64x1 { return dup[uint64, Uint64x1](x) }
func Vdup_n_f32(x float32) Float32x2 { return dup[float32, Float32x2](x) }
func Vdup_n_f64(x float64) Float64x1 { return dup[float64, Float64x1](x) }
func Vdupq_n_s8(x int8) Int8x16 { return dup[int8, Int8x16](x) }
func Vdupq_n_s16(x int16) Int16x8 { return dup[int16, Int16x8](x) }
func Vdupq_n_s32(x int32) Int32x4 { return dup[int32, Int32x4](x) }
func Vdupq_n_s64(x int64) Int64x2 { return dup[int64, Int64x2](x) }
func Vdupq_n_u8(x uint8) Uint8x16 { return dup[uint8, Uint8x16](x) }
func Vdupq_n_u16(x uint16) Uint16x8 { return dup[uint16, Uint16x8](x) }
func Vdupq_n_u32(x uint32) Uint32x4 { return dup[uint32, Uint32x4](x) }
func Vdupq_n_u64(x uint64) Uint64x2 { return dup[uint64, Uint64x2](x) }
func Vdupq_n_f32(x float32) Float32x4 { return dup[float32, Float32x4](x) }
func Vdupq_n_f64(x float64) Float64x2 { return dup[float64, Float64x2](x) }

// Vmov_n_s8 broadcasts x to every lane.
func Vmov_n_s8(x int8) Int8x8 { return dup[int8, Int8x8](x) }
func Vmov_n_s16(x int16) Int16x4 { return dup[int16, Int16x4](x) }
func Vmov_n_s32(x int32) Int32x2 { return dup[int32, Int32x2](x) }
func Vmov_n_s64(x int64) Int64x1 { return dup[int64, Int64x1](x) }
func Vmov_n_u8(x uint8) Uint8x8 { return dup[uint8, Uint8x8](x) }
func Vmov_n_u16(x uint16) Uint16x4 { return dup[uint16, Uint16x4](x) }
func Vmov_n_u32(x uint32) Uint32x2 { return dup[uint32, Uint32x2](x) }
func Vmov_n_u64(x uint64) Uint64x1 { return dup[uint64, Uint64x1](x) }
func Vmov_n_f32(x float32) Float32x2 { return dup[float32, Float32x2](x) }
func Vmov_n_f64(x float64) Float64x1 { return dup[float64, Float64x1](x) }
func Vmovq_n_s8(x int8) Int8x16 { return dup[int8, Int8x16](x) }
func Vmovq_n_s16(x int16) Int16x8 { return dup[int16, Int16x8](x) }
func Vmovq_n_s32(x int32) Int32x4 { return dup[int32, Int32x4](x) }
func Vmovq_n_s64(x int64) Int64x2 { return dup[int64, Int64x2](x) }
func Vmovq_n_u8(x uint8) Uint8x16 { return dup[uint8, Uint8x16](x) }
func Vmovq_n_u16(x uint16) Uint16x8 { return dup[uint16, Uint16x8](x) }
func Vmovq_n_u32(x uint32) Uint32x4 { return dup[uint32, Uint32x4](x) }
func Vmovq_n_u64(x uint64) Uint64x2 { return dup[uint64, Uint64x2](x) }
func Vmovq_n_f32(x float32) Float32x4 { return dup[float32, Float32x4](x) }
func Vmovq_n_f64(x float64) Float64x2 { return dup[float64, Float64x2](x) }

// Vdup_lane_s8 broadcasts lane of v to every lane of the result.
func Vdup_lane_s8(v Int8x8, lane int) Int8x8 { return dupLane[int8, Int8x8](v, lane) }
func Vdup_lane_s16(v Int16x4, lane int) Int16x4 { return dupLane[int16, Int16x4](v, lane) }
func Vdup_lane_s32(v Int32x2, lane int) Int32x2 { return dupLane[int32, Int32x2](v, lane) }
func Vdup_lane_s64(v Int64x1, lane int) Int64x1 { return dupLane[int64, Int64x1](v, lane) }
func Vdup_lane_u8(v Uint8x8, lane int) Uint8x8 { return dupLane[uint8, Uint8x8](v, lane) }
func Vdup_lane_u16(v Uint16x4, lane int) Uint16x4 { return dupLane[uint16, Uint16x4](v, lane) }
func Vdup_lane_u32(v Uint32x2, lane int) Uint32x2 { return dupLane[uint32, Uint32x2](v, lane) }
func Vdup_lane_u64(v Uint64x1, lane int) Uint64x1 { return dupLane[uint64, Uint64x1](v, lane) }
func Vdup_lane_f32(v Float32x2, lane int) Float32x2 { return dupLane[float32, Float32x2](v, lane) }
func Vdup_lane_f64(v Float64x1, lane int) Float64x1 { return dupLane[float64, Float64x1](v, lane) }

func Vdup_laneq_s8(v Int8x16, lane int) Int8x8 { return dupLane[int8, Int8x8](v, lane) }
func Vdup_laneq_s16(v Int16x8, lane int) Int16x4 { return dupLane[int16, Int16x4](v, lane) }
func Vdup_laneq_s32(v Int32x4, lane int) Int32x2 { return dupLane[int32, Int32x2](v, lane) }
func Vdup_laneq_s64(v Int64x2, lane int) Int64x1 { return dupLane[int64, Int64x1](v, lane) }
func Vdup_laneq_u8(v Uint8x16, lane int) Uint8x8 { return dupLane[uint8, Uint8x8](v, lane) }
func Vdup_laneq_u16(v Uint16x8, lane int) Uint16x4 { return dupLane[uint16, Uint16x4](v, lane) }
func Vdup_laneq_u32(v Uint32x4, lane int) Uint32x2 { return dupLane[uint32, Uint32x2](v, lane) }
func Vdup_laneq_u64(v Uint64x2, lane int) Uint64x1 { return dupLane[uint64, Uint64x1](v, lane) }
func Vdup_laneq_f32(v Float32x4, lane int) Float32x2 { return dupLane[float32, Float32x2](v, lane) }
func Vdup_laneq_f64(v Float64x2, lane int) Float64x1 { return dupLane[float64, Float64x1](v, lane) }

func Vdupq_lane_s8(v Int8x8, lane int) Int8x16 { return dupLane[int8, Int8x16](v, lane) }
func Vdupq_lane_s16(v Int16x4, lane int) Int16x8 { return dupLane[int16, Int16x8](v, lane) }
func Vdupq_lane_s32(v Int32x2, lane int) Int32x4 { return dupLane[int32, Int32x4](v, lane) }
func Vdupq_lane_s64(v Int64x1, lane int) Int64x2 { return dupLane[int64, Int64x2](v, lane) }
func Vdupq_lane_u8(v Uint8x8, lane int) Uint8x16 { return dupLane[uint8, Uint8x16](v, lane) }
func Vdupq_lane_u16(v Uint16x4, lane int) Uint16x8 { return dupLane[uint16, Uint16x8](v, lane) }
func Vdupq_lane_u32(v Uint32x2, lane int) Uint32x4 { return dupLane[uint32, Uint32x4](v, lane) }
func Vdupq_lane_u64(v Uint64x1, lane int) Uint64x2 { return dupLane[uint64, Uint64x2](v, lane) }
func Vdupq_lane_f32(v Float32x2, lane int) Float32x4 { return dupLane[float32, Float32x4](v, lane) }
func Vdupq_lane_f64(v Float64x1, lane int) Float64x2 { return dupLane[float64, Float64x2](v, lane) }

func Vdupq_laneq_s8(v Int8x16, lane int) Int8x16 { return dupLane[int8, Int8x16](v, lane) }
func Vdupq_laneq_s16(v Int16x8, lane int) Int16x8 { return dupLane[int16, Int16x8](v, lane) }
func Vdupq_laneq_s32(v Int32x4, lane int) Int32x4 { return dupLane[int32, Int32x4](v, lane) }
func Vdupq_laneq_s64(v Int64x2, lane int) Int64x2 { return dupLane[int64, Int64x2](v, lane) }
func Vdupq_laneq_u8(v Uint8x16, lane int) Uint8x16 { return dupLane[uint8, Uint8x16](v, lane) }
func Vdupq_laneq_u16(v Uint16x8, lane int) Uint16x8 { return dupLane[uint16, Uint16x8](v, lane) }
func Vdupq_laneq_u32(v Uint32x4, lane int) Uint32x4 { return dupLane[uint32, Uint32x4](v, lane) }
func Vdupq_laneq_u64(v Uint64x2, lane int) Uint64x2 { return dupLane[uint64, Uint64x2](v, lane) }

func Vdupq_laneq_f32(v Float32x4, lane int) Float32x4 {
	return dupLane[float32, Float32x4](v, lane)
}

func Vdupq_laneq_f64(v Float64x2, lane int) Float64x2 {
	return dupLane[float64, Float64x2](v, lane)
}

// Vcombine_s8 joins two 64-bit vectors, lo in the low lanes.
func Vcombine_s8(lo, hi Int8x8) Int8x16 { return combine[int8, Int8x16](lo, hi) }
func Vcombine_s16(lo, hi Int16x4) Int16x8 { return combine[int16, Int16x8](lo, hi) }
func Vcombine_s32(lo, hi Int32x2) Int32x4 { return combine[int32, Int32x4](lo, hi) }
func Vcombine_s64(lo, hi Int64x1) Int64x2 { return combine[int64, Int64x2](lo, hi) }
func Vcombine_u8(lo, hi Uint8x8) Uint8x16 { return combine[uint8, Uint8x16](lo, hi) }
func Vcombine_u16(lo, hi Uint16x4) Uint16x8 { return combine[uint16, Uint16x8](lo, hi) }
func Vcombine_u32(lo, hi Uint32x2) Uint32x4 { return combine[uint32, Uint32x4](lo, hi) }
func Vcombine_u64(lo, hi Uint64x1) Uint64x2 { return combine[uint64, Uint64x2](lo, hi) }
func Vcombine_f32(lo, hi Float32x2) Float32x4 { return combine[float32, Float32x4](lo, hi) }
func Vcombine_f64(lo, hi Float64x1) Float64x2 { return combine[float64, Float64x2](lo, hi) }

// Vget_low_s8 returns the low half of a.
func Vget_low_s8(a Int8x16) Int8x8 { return getLow[int8, Int8x8](a) }
func Vget_low_s16(a Int16x8) Int16x4 { return getLow[int16, Int16x4](a) }
func Vget_low_s32(a Int32x4) Int32x2 { return getLow[int32, Int32x2](a) }
func Vget_low_s64(a Int64x2) Int64x1 { return getLow[int64, Int64x1](a) }
func Vget_low_u8(a Uint8x16) Uint8x8 { return getLow[uint8, Uint8x8](a) }
func Vget_low_u16(a Uint16x8) Uint16x4 { return getLow[uint16, Uint16x4](a) }
func Vget_low_u32(a Uint32x4) Uint32x2 { return getLow[uint32, Uint32x2](a) }
func Vget_low_u64(a Uint64x2) Uint64x1 { return getLow[uint64, Uint64x1](a) }
func Vget_low_f32(a Float32x4) Float32x2 { return getLow[float32, Float32x2](a) }
func Vget_low_f64(a Float64x2) Float64x1 { return getLow[float64, Float64x1](a) }

// Vget_high_s8 returns the high half of a.
func Vget_high_s8(a Int8x16) Int8x8 { return getHigh[int8, Int8x8](a) }
func Vget_high_s16(a Int16x8) Int16x4 { return getHigh[int16, Int16x4](a) }
func Vget_high_s32(a Int32x4) Int32x2 { return getHigh[int32, Int32x2](a) }
func Vget_high_s64(a Int64x2) Int64x1 { return getHigh[int64, Int64x1](a) }
func Vget_high_u8(a Uint8x16) Uint8x8 { return getHigh[uint8, Uint8x8](a) }
func Vget_high_u16(a Uint16x8) Uint16x4 { return getHigh[uint16, Uint16x4](a) }
func Vget_high_u32(a Uint32x4) Uint32x2 { return getHigh[uint32, Uint32x2](a) }
func Vget_high_u64(a Uint64x2) Uint64x1 { return getHigh[uint64, Uint64x1](a) }
func Vget_high_f32(a Float32x4) Float32x2 { return getHigh[float32, Float32x2](a) }
func Vget_high_f64(a Float64x2) Float64x1 { return getHigh[float64, Float64x1](a) }

// Vcreate_s8 views the bits of x as a 64-bit vector, lane 0 in the least
// significant bits.
func Vcreate_s8(x uint64) Int8x8 { return create[int8, Int8x8](x) }
func Vcreate_s16(x uint64) Int16x4 { return create[int16, Int16x4](x) }
func Vcreate_s32(x uint64) Int32x2 { return create[int32, Int32x2](x) }
func Vcreate_s64(x uint64) Int64x1 { return create[int64, Int64x1](x) }
func Vcreate_u8(x uint64) Uint8x8 { return create[uint8, Uint8x8](x) }
func Vcreate_u16(x uint64) Uint16x4 { return create[uint16, Uint16x4](x) }
func Vcreate_u32(x uint64) Uint32x2 { return create[uint32, Uint32x2](x) }
func Vcreate_u64(x uint64) Uint64x1 { return create[uint64, Uint64x1](x) }
func Vcreate_f32(x uint64) Float32x2 { return create[float32, Float32x2](x) }
func Vcreate_f64(x uint64) Float64x1 { return create[float64, Float64x1](x) }

// Vext_s8 returns lanes n onwards of the concatenation a:b.
func Vext_s8(a, b Int8x8, n int) Int8x8 { return ext[int8](a, b, n) }
func Vext_s16(a, b Int16x4, n int) Int16x4 { return ext[int16](a, b, n) }
func Vext_s32(a, b Int32x2, n int) Int32x2 { return ext[int32](a, b, n) }
func Vext_s64(a, b Int64x1, n int) Int64x1 { return ext[int64](a, b, n) }
func Vext_u8(a, b Uint8x8, n int) Uint8x8 { return ext[uint8](a, b, n) }
func Vext_u16(a, b Uint16x4, n int) Uint16x4 { return ext[uint16](a, b, n) }
func Vext_u32(a, b Uint32x2, n int) Uint32x2 { return ext[uint32](a, b, n) }
func Vext_u64(a, b Uint64x1, n int) Uint64x1 { return ext[uint64](a, b, n) }
func Vext_f32(a, b Float32x2, n int) Float32x2 { return ext[float32](a, b, n) }
func Vext_f64(a, b Float64x1, n int) Float64x1 { return ext[float64](a, b, n) }
func Vextq_s8(a, b Int8x16, n int) Int8x16 { return ext[int8](a, b, n) }
func Vextq_s16(a, b Int16x8, n int) Int16x8 { return ext[int16](a, b, n) }
func Vextq_s32(a, b Int32x4, n int) Int32x4 { return ext[int32](a, b, n) }
func Vextq_s64(a, b Int64x2, n int) Int64x2 { return ext[int64](a, b, n) }
func Vextq_u8(a, b Uint8x16, n int) Uint8x16 { return ext[uint8](a, b, n) }
func Vextq_u16(a, b Uint16x8, n int) Uint16x8 { return ext[uint16](a, b, n) }
func Vextq_u32(a, b Uint32x4, n int) Uint32x4 { return ext[uint32](a, b, n) }
func Vextq_u64(a, b Uint64x2, n int) Uint64x2 { return ext[uint64](a, b, n) }
func Vextq_f32(a, b Float32x4, n int) Float32x4 { return ext[float32](a, b, n) }
func Vextq_f64(a, b Float64x2, n int) Float64x2 { return ext[float64](a, b, n) }

// Vrev16_s8 reverses the lane order within each 16-bit group.
func Vrev16_s8(a Int8x8) Int8x8 { return rev[int8](a, 2) }
func Vrev16_u8(a Uint8x8) Uint8x8 { return rev[uint8](a, 2) }
func Vrev16q_s8(a Int8x16) Int8x16 { return rev[int8](a, 2) }
func Vrev16q_u8(a Uint8x16) Uint8x16 { return rev[uint8](a, 2) }

// Vrev32_s8 reverses the lane order within each 32-bit group.
func Vrev32_s8(a Int8x8) Int8x8 { return rev[int8](a, 4) }
func Vrev32_s16(a Int16x4) Int16x4 { return rev[int16](a, 2) }
func Vrev32_u8(a Uint8x8) Uint8x8 { return rev[uint8](a, 4) }
func Vrev32_u16(a Uint16x4) Uint16x4 { return rev[uint16](a, 2) }
func Vrev32q_s8(a Int8x16) Int8x16 { return rev[int8](a, 4) }
func Vrev32q_s16(a Int16x8) Int16x8 { return rev[int16](a, 2) }
func Vrev32q_u8(a Uint8x16) Uint8x16 { return rev[uint8](a, 4) }
func Vrev32q_u16(a Uint16x8) Uint16x8 { return rev[uint16](a, 2) }

// Vrev64_s8 reverses the lane order within each 64-bit group.
func Vrev64_s8(a Int8x8) Int8x8 { return rev[int8](a, 8) }
func Vrev64_s16(a Int16x4) Int16x4 { return rev[int16](a, 4) }
func Vrev64_s32(a Int32x2) Int32x2 { return rev[int32](a, 2) }
func Vrev64_u8(a Uint8x8) Uint8x8 { return rev[uint8](a, 8) }
func Vrev64_u16(a Uint16x4) Uint16x4 { return rev[uint16](a, 4) }
func Vrev64_u32(a Uint32x2) Uint32x2 { return rev[uint32](a, 2) }
func Vrev64_f32(a Float32x2) Float32x2 { return rev[float32](a, 2) }
func Vrev64q_s8(a Int8x16) Int8x16 { return rev[int8](a, 8) }
func Vrev64q_s16(a Int16x8) Int16x8 { return rev[int16](a, 4) }
func Vrev64q_s32(a Int32x4) Int32x4 { return rev[int32](a, 2) }
func Vrev64q_u8(a Uint8x16) Uint8x16 { return rev[uint8](a, 8) }
func Vrev64q_u16(a Uint16x8) Uint16x8 { return rev[uint16](a, 4) }
func Vrev64q_u32(a Uint32x4) Uint32x4 { return rev[uint32](a, 2) }
func Vrev64q_f32(a Float32x4) Float32x4 { return rev[float32](a, 2) }

// Vtrn_s8 transposes 2x2 lane blocks of a and b: Val[0] holds the even lanes
// interleaved, Val[1] the odd lanes.
func Vtrn_s8(a, b Int8x8) Int8x8x2 {
	x, y := trn[int8](a, b)
	return Int8x8x2{Val: [2]Int8x8{x, y}}
}

func Vtrn_s16(a, b Int16x4) Int16x4x2 {
	x, y := trn[int16](a, b)
	return Int16x4x2{Val: [2]Int16x4{x, y}}
}

func Vtrn_s32(a, b Int32x2) Int32x2x2 {
	x, y := trn[int32](a, b)
	return Int32x2x2{Val: [2]Int32x2{x, y}}
}

func Vtrn_u8(a, b Uint8x8) Uint8x8x2 {
	x, y := trn[uint8](a, b)
	return Uint8x8x2{Val: [2]Uint8x8{x, y}}
}

func Vtrn_u16(a, b Uint16x4) Uint16x4x2 {
	x, y := trn[uint16](a, b)
	return Uint16x4x2{Val: [2]Uint16x4{x, y}}
}

func Vtrn_u32(a, b Uint32x2) Uint32x2x2 {
	x, y := trn[uint32](a, b)
	return Uint32x2x2{Val: [2]Uint32x2{x, y}}
}

func Vtrn_f32(a, b Float32x2) Float32x2x2 {
	x, y := trn[float32](a, b)
	return Float32x2x2{Val: [2]Float32x2{x, y}}
}

func Vtrnq_s8(a, b Int8x16) Int8x16x2 {
	x, y := trn[int8](a, b)
	return Int8x16x2{Val: [2]Int8x16{x, y}}
}

func Vtrnq_s16(a, b Int16x8) Int16x8x2 {
	x, y := trn[int16](a, b)
	return Int16x8x2{Val: [2]Int16x8{x, y}}
}

func Vtrnq_s32(a, b Int32x4) Int32x4x2 {
	x, y := trn[int32](a, b)
	return Int32x4x2{Val: [2]Int32x4{x, y}}
}

func Vtrnq_u8(a, b Uint8x16) Uint8x16x2 {
	x, y := trn[uint8](a, b)
	return Uint8x16x2{Val: [2]Uint8x16{x, y}}
}

func Vtrnq_u16(a, b Uint16x8) Uint16x8x2 {
	x, y := trn[uint16](a, b)
	return Uint16x8x2{Val: [2]Uint16x8{x, y}}
}

func Vtrnq_u32(a, b Uint32x4) Uint32x4x2 {
	x, y := trn[uint32](a, b)
	return Uint32x4x2{Val: [2]Uint32x4{x, y}}
}

func Vtrnq_f32(a, b Float32x4) Float32x4x2 {
	x, y := trn[float32](a, b)
	return Float32x4x2{Val: [2]Float32x4{x, y}}
}

// Vzip_s8 interleaves a and b: Val[0] from the low halves, Val[1] from the
// high halves.
func Vzip_s8(a, b Int8x8) Int8x8x2 {
	x, y := zip[int8](a, b)
	return Int8x8x2{Val: [2]Int8x8{x, y}}
}

func Vzip_s16(a, b Int16x4) Int16x4x2 {
	x, y := zip[int16](a, b)
	return Int16x4x2{Val: [2]Int16x4{x, y}}
}

func Vzip_s32(a, b Int32x2) Int32x2x2 {
	x, y := zip[int32](a, b)
	return Int32x2x2{Val: [2]Int32x2{x, y}}
}

func Vzip_u8(a, b Uint8x8) Uint8x8x2 {
	x, y := zip[uint8](a, b)
	return Uint8x8x2{Val: [2]Uint8x8{x, y}}
}

func Vzip_u16(a, b Uint16x4) Uint16x4x2 {
	x, y := zip[uint16](a, b)
	return Uint16x4x2{Val: [2]Uint16x4{x, y}}
}

func Vzip_u32(a, b Uint32x2) Uint32x2x2 {
	x, y := zip[uint32](a, b)
	return Uint32x2x2{Val: [2]Uint32x2{x, y}}
}

func Vzip_f32(a, b Float32x2) Float32x2x2 {
	x, y := zip[float32](a, b)
	return Float32x2x2{Val: [2]Float32x2{x, y}}
}

func Vzipq_s8(a, b Int8x16) Int8x16x2 {
	x, y := zip[int8](a, b)
	return Int8x16x2{Val: [2]Int8x16{x, y}}
}

func Vzipq_s16(a, b Int16x8) Int16x8x2 {
	x, y := zip[int16](a, b)
	return Int16x8x2{Val: [2]Int16x8{x, y}}
}

func Vzipq_s32(a, b Int32x4) Int32x4x2 {
	x, y := zip[int32](a, b)
	return Int32x4x2{Val: [2]Int32x4{x, y}}
}

func Vzipq_u8(a, b Uint8x16) Uint8x16x2 {
	x, y := zip[uint8](a, b)
	return Uint8x16x2{Val: [2]Uint8x16{x, y}}
}

func Vzipq_u16(a, b Uint16x8) Uint16x8x2 {
	x, y := zip[uint16](a, b)
	return Uint16x8x2{Val: [2]Uint16x8{x, y}}
}

func Vzipq_u32(a, b Uint32x4) Uint32x4x2 {
	x, y := zip[uint32](a, b)
	return Uint32x4x2{Val: [2]Uint32x4{x, y}}
}

func Vzipq_f32(a, b Float32x4) Float32x4x2 {
	x, y := zip[float32](a, b)
	return Float32x4x2{Val: [2]Float32x4{x, y}}
}

// Vuzp_s8 de-interleaves a:b: Val[0] holds the even lanes, Val[1] the odd
// lanes.
func Vuzp_s8(a, b Int8x8) Int8x8x2 {
	x, y := uzp[int8](a, b)
	return Int8x8x2{Val: [2]Int8x8{x, y}}
}

func Vuzp_s16(a, b Int16x4) Int16x4x2 {
	x, y := uzp[int16](a, b)
	return Int16x4x2{Val: [2]Int16x4{x, y}}
}

func Vuzp_s32(a, b Int32x2) Int32x2x2 {
	x, y := uzp[int32](a, b)
	return Int32x2x2{Val: [2]Int32x2{x, y}}
}

func Vuzp_u8(a, b Uint8x8) Uint8x8x2 {
	x, y := uzp[uint8](a, b)
	return Uint8x8x2{Val: [2]Uint8x8{x, y}}
}

func Vuzp_u16(a, b Uint16x4) Uint16x4x2 {
	x, y := uzp[uint16](a, b)
	return Uint16x4x2{Val: [2]Uint16x4{x, y}}
}

func Vuzp_u32(a, b Uint32x2) Uint32x2x2 {
	x, y := uzp[uint32](a, b)
	return Uint32x2x2{Val: [2]Uint32x2{x, y}}
}

func Vuzp_f32(a, b Float32x2) Float32x2x2 {
	x, y := uzp[float32](a, b)
	return Float32x2x2{Val: [2]Float32x2{x, y}}
}

func Vuzpq_s8(a, b Int8x16) Int8x16x2 {
	x, y := uzp[int8](a, b)
	return Int8x16x2{Val: [2]Int8x16{x, y}}
}

func Vuzpq_s16(a, b Int16x8) Int16x8x2 {
	x, y := uzp[int16](a, b)
	return Int16x8x2{Val: [2]Int16x8{x, y}}
}

func Vuzpq_s32(a, b Int32x4) Int32x4x2 {
	x, y := uzp[int32](a, b)
	return Int32x4x2{Val: [2]Int32x4{x, y}}
}

func Vuzpq_u8(a, b Uint8x16) Uint8x16x2 {
	x, y := uzp[uint8](a, b)
	return Uint8x16x2{Val: [2]Uint8x16{x, y}}
}

func Vuzpq_u16(a, b Uint16x8) Uint16x8x2 {
	x, y := uzp[uint16](a, b)
	return Uint16x8x2{Val: [2]Uint16x8{x, y}}
}

func Vuzpq_u32(a, b Uint32x4) Uint32x4x2 {
	x, y := uzp[uint32](a, b)
	return Uint32x4x2{Val: [2]Uint32x4{x, y}}
}

func Vuzpq_f32(a, b Float32x4) Float32x4x2 {
	x, y := uzp[float32](a, b)
	return Float32x4x2{Val: [2]Float32x4{x, y}}
}

// Vtbl1_s8 looks up each byte index in the table t; indices past the table
// give 0.
func Vtbl1_s8(t, idx Int8x8) Int8x8 { return tbl[int8]([]Int8x8{t}, idx) }
func Vtbl2_s8(t Int8x8x2, idx Int8x8) Int8x8 { return tbl[int8](t.Val[:], idx) }
func Vtbl3_s8(t Int8x8x3, idx Int8x8) Int8x8 { return tbl[int8](t.Val[:], idx) }
func Vtbl4_s8(t Int8x8x4, idx Int8x8) Int8x8 { return tbl[int8](t.Val[:], idx) }

// Vtbx1_s8 is Vtbl1 except that indices past the table keep the lane of r.
func Vtbx1_s8(r, t, idx Int8x8) Int8x8 { return tbx[int8](r, []Int8x8{t}, idx) }
func Vtbx2_s8(r Int8x8, t Int8x8x2, idx Int8x8) Int8x8 { return tbx[int8](r, t.Val[:], idx) }
func Vtbx3_s8(r Int8x8, t Int8x8x3, idx Int8x8) Int8x8 { return tbx[int8](r, t.Val[:], idx) }
func Vtbx4_s8(r Int8x8, t Int8x8x4, idx Int8x8) Int8x8 { return tbx[int8](r, t.Val[:], idx) }

// Vqtbl1_s8 looks up byte indices in a 16-byte table; indices past the table
// give 0.
func Vqtbl1_s8(t Int8x16, idx Int8x8) Int8x8 { return tbl[int8]([]Int8x16{t}, idx) }
func Vqtbl1q_s8(t, idx Int8x16) Int8x16 { return tbl[int8]([]Int8x16{t}, idx) }

// Vqtbx1_s8 is Vqtbl1 except that indices past the table keep the lane of r.
func Vqtbx1_s8(r Int8x8, t Int8x16, idx Int8x8) Int8x8 { return tbx[int8](r, []Int8x16{t}, idx) }
func Vqtbx1q_s8(r, t, idx Int8x16) Int8x16 { return tbx[int8](r, []Int8x16{t}, idx) }

// Vqtbl2_s8 looks up byte indices in a table of two to four q registers.
func Vqtbl2_s8(t Int8x16x2, idx Int8x8) Int8x8 { return qtbl[int8](t.Val[:], idx) }
func Vqtbl2q_s8(t Int8x16x2, idx Int8x16) Int8x16 { return qtbl[int8](t.Val[:], idx) }
func Vqtbl3_s8(t Int8x16x3, idx Int8x8) Int8x8 { return qtbl[int8](t.Val[:], idx) }
func Vqtbl3q_s8(t Int8x16x3, idx Int8x16) Int8x16 { return qtbl[int8](t.Val[:], idx) }
func Vqtbl4_s8(t Int8x16x4, idx Int8x8) Int8x8 { return qtbl[int8](t.Val[:], idx) }
func Vqtbl4q_s8(t Int8x16x4, idx Int8x16) Int8x16 { return qtbl[int8](t.Val[:], idx) }

// Vqtbx2_s8 is Vqtbl2 except that indices past the table keep the lane of r.
func Vqtbx2_s8(r Int8x8, t Int8x16x2, idx Int8x8) Int8x8 { return qtbx[int8](r, t.Val[:], idx) }
func Vqtbx2q_s8(r Int8x16, t Int8x16x2, idx Int8x16) Int8x16 {
	return qtbx[int8](r, t.Val[:], idx)
}
func Vqtbx3_s8(r Int8x8, t Int8x16x3, idx Int8x8) Int8x8 { return qtbx[int8](r, t.Val[:], idx) }
func Vqtbx3q_s8(r Int8x16, t Int8x16x3, idx Int8x16) Int8x16 {
	return qtbx[int8](r, t.Val[:], idx)
}
func Vqtbx4_s8(r Int8x8, t Int8x16x4, idx Int8x8) Int8x8 { return qtbx[int8](r, t.Val[:], idx) }
func Vqtbx4q_s8(r Int8x16, t Int8x16x4, idx Int8x16) Int8x16 {
	return qtbx[int8](r, t.Val[:], idx)
}

func Vtbl1_u8(t, idx Uint8x8) Uint8x8 { return tbl[uint8]([]Uint8x8{t}, idx) }
func Vtbl2_u8(t Uint8x8x2, idx Uint8x8) Uint8x8 { return tbl[uint8](t.Val[:], idx) }
func Vtbl3_u8(t Uint8x8x3, idx Uint8x8) Uint8x8 { return tbl[uint8](t.Val[:], idx) }
func Vtbl4_u8(t Uint8x8x4, idx Uint8x8) Uint8x8 { return tbl[uint8](t.Val[:], idx) }
func Vtbx1_u8(r, t, idx Uint8x8) Uint8x8 { return tbx[uint8](r, []Uint8x8{t}, idx) }
func Vtbx2_u8(r Uint8x8, t Uint8x8x2, idx Uint8x8) Uint8x8 { return tbx[uint8](r, t.Val[:], idx) }
func Vtbx3_u8(r Uint8x8, t Uint8x8x3, idx Uint8x8) Uint8x8 { return tbx[uint8](r, t.Val[:], idx) }
func Vtbx4_u8(r Uint8x8, t Uint8x8x4, idx Uint8x8) Uint8x8 { return tbx[uint8](r, t.Val[:], idx) }
func Vqtbl1_u8(t Uint8x16, idx Uint8x8) Uint8x8 { return tbl[uint8]([]Uint8x16{t}, idx) }
func Vqtbl1q_u8(t, idx Uint8x16) Uint8x16 { return tbl[uint8]([]Uint8x16{t}, idx) }

func Vqtbx1_u8(r Uint8x8, t Uint8x16, idx Uint8x8) Uint8x8 {
	return tbx[uint8](r, []Uint8x16{t}, idx)
}

func Vqtbx1q_u8(r, t, idx Uint8x16) Uint8x16 { return tbx[uint8](r, []Uint8x16{t}, idx) }

func Vqtbl2_u8(t Uint8x16x2, idx Uint8x8) Uint8x8 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbl2q_u8(t Uint8x16x2, idx Uint8x16) Uint8x16 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbl3_u8(t Uint8x16x3, idx Uint8x8) Uint8x8 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbl3q_u8(t Uint8x16x3, idx Uint8x16) Uint8x16 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbl4_u8(t Uint8x16x4, idx Uint8x8) Uint8x8 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbl4q_u8(t Uint8x16x4, idx Uint8x16) Uint8x16 { return qtbl[uint8](t.Val[:], idx) }
func Vqtbx2_u8(r Uint8x8, t Uint8x16x2, idx Uint8x8) Uint8x8 { return qtbx[uint8](r, t.Val[:], idx) }
func Vqtbx2q_u8(r Uint8x16, t Uint8x16x2, idx Uint8x16) Uint8x16 {
	return qtbx[uint8](r, t.Val[:], idx)
}
func Vqtbx3_u8(r Uint8x8, t Uint8x16x3, idx Uint8x8) Uint8x8 { return qtbx[uint8](r, t.Val[:], idx) }
func Vqtbx3q_u8(r Uint8x16, t Uint8x16x3, idx Uint8x16) Uint8x16 {
	return qtbx[uint8](r, t.Val[:], idx)
}
func Vqtbx4_u8(r Uint8x8, t Uint8x16x4, idx Uint8x8) Uint8x8 { return qtbx[uint8](r, t.Val[:], idx) }
func Vqtbx4q_u8(r Uint8x16, t Uint8x16x4, idx Uint8x16) Uint8x16 {
	return qtbx[uint8](r, t.Val[:], idx)
}

// Vbsl_s8 selects the bits of a where mask is set and the bits of b
// elsewhere.
func Vbsl_s8(mask Uint8x8, a, b Int8x8) Int8x8 { return bsl[int8, uint8](mask, a, b) }
func Vbsl_s16(mask Uint16x4, a, b Int16x4) Int16x4 { return bsl[int16, uint16](mask, a, b) }
func Vbsl_s32(mask Uint32x2, a, b Int32x2) Int32x2 { return bsl[int32, uint32](mask, a, b) }
func Vbsl_s64(mask Uint64x1, a, b Int64x1) Int64x1 { return bsl[int64, uint64](mask, a, b) }
func Vbsl_u8(mask Uint8x8, a, b Uint8x8) Uint8x8 { return bsl[uint8, uint8](mask, a, b) }
func Vbsl_u16(mask Uint16x4, a, b Uint16x4) Uint16x4 { return bsl[uint16, uint16](mask, a, b) }
func Vbsl_u32(mask Uint32x2, a, b Uint32x2) Uint32x2 { return bsl[uint32, uint32](mask, a, b) }
func Vbsl_u64(mask Uint64x1, a, b Uint64x1) Uint64x1 { return bsl[uint64, uint64](mask, a, b) }
func Vbsl_f32(mask Uint32x2, a, b Float32x2) Float32x2 { return bsl[float32, uint32](mask, a, b) }
func Vbsl_f64(mask Uint64x1, a, b Float64x1) Float64x1 { return bsl[float64, uint64](mask, a, b) }
func Vbslq_s8(mask Uint8x16, a, b Int8x16) Int8x16 { return bsl[int8, uint8](mask, a, b) }
func Vbslq_s16(mask Uint16x8, a, b Int16x8) Int16x8 { return bsl[int16, uint16](mask, a, b) }
func Vbslq_s32(mask Uint32x4, a, b Int32x4) Int32x4 { return bsl[int32, uint32](mask, a, b) }
func Vbslq_s64(mask Uint64x2, a, b Int64x2) Int64x2 { return bsl[int64, uint64](mask, a, b) }
func Vbslq_u8(mask Uint8x16, a, b Uint8x16) Uint8x16 { return bsl[uint8, uint8](mask, a, b) }
func Vbslq_u16(mask Uint16x8, a, b Uint16x8) Uint16x8 { return bsl[uint16, uint16](mask, a, b) }
func Vbslq_u32(mask Uint32x4, a, b Uint32x4) Uint32x4 { return bsl[uint32, uint32](mask, a, b) }
func Vbslq_u64(mask Uint64x2, a, b Uint64x2) Uint64x2 { return bsl[uint64, uint64](mask, a, b) }
func Vbslq_f32(mask Uint32x4, a, b Float32x4) Float32x4 { return bsl[float32, uint32](mask, a, b) }
func Vbslq_f64(mask Uint64x2, a, b Float64x2) Float64x2 { return bsl[float64, uint64](mask, a, b) }
