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

// Vld1_s8 loads consecutive elements of p.
func Vld1_s8(p []int8) Int8x8 { return ld1[int8, Int8x8](p) }
func Vld1_s16(p []int16) Int16x4 { return ld1[int16, Int16x4](p) }
func Vld1_s32(p []int32) Int32x2 { return ld1[int32, Int32x2](p) }
func Vld1_s64(p []int64) Int64x1 { return ld1[int64, Int64x1](p) }
func Vld1_u8(p []uint8) Uint8x8 { return ld1[uint8, Uint8x8](p) }
func Vld1_u16(p []uint16) Uint16x4 { return ld1[uint16, Uint16x4](p) }
func Vld1_u32(p []uint32) Uint32x2 { return ld1[uint32, Uint32x2](p) }
func Vld1_u64(p []uint64) Uint64x1 { return ld1[uint64, Uint64x1](p) }
func Vld1_f32(p []float32) Float32x2 { return ld1[float32, Float32x2](p) }
func Vld1_f64(p []float64) Float64x1 { return ld1[float64, Float64x1](p) }
func Vld1q_s8(p []int8) Int8x16 { return ld1[int8, Int8x16](p) }
func Vld1q_s16(p []int16) Int16x8 { return ld1[int16, Int16x8](p) }
func Vld1q_s32(p []int32) Int32x4 { return ld1[int32, Int32x4](p) }
func Vld1q_s64(p []int64) Int64x2 { return ld1[int64, Int64x2](p) }
func Vld1q_u8(p []uint8) Uint8x16 { return ld1[uint8, Uint8x16](p) }
func Vld1q_u16(p []uint16) Uint16x8 { return ld1[uint16, Uint16x8](p) }
func Vld1q_u32(p []uint32) Uint32x4 { return ld1[uint32, Uint32x4](p) }
func Vld1q_u64(p []uint64) Uint64x2 { return ld1[uint64, Uint64x2](p) }
func Vld1q_f32(p []float32) Float32x4 { return ld1[float32, Float32x4](p) }
func Vld1q_f64(p []float64) Float64x2 { return ld1[float64, Float64x2](p) }

// Vld1_dup_s8 broadcasts p[0] to every lane.
func Vld1_dup_s8(p []int8) Int8x8 { return ld1Dup[int8, Int8x8](p) }
func Vld1_dup_s16(p []int16) Int16x4 { return ld1Dup[int16, Int16x4](p) }
func Vld1_dup_s32(p []int32) Int32x2 { return ld1Dup[int32, Int32x2](p) }
func Vld1_dup_s64(p []int64) Int64x1 { return ld1Dup[int64, Int64x1](p) }
func Vld1_dup_u8(p []uint8) Uint8x8 { return ld1Dup[uint8, Uint8x8](p) }
func Vld1_dup_u16(p []uint16) Uint16x4 { return ld1Dup[uint16, Uint16x4](p) }
func Vld1_dup_u32(p []uint32) Uint32x2 { return ld1Dup[uint32, Uint32x2](p) }
func Vld1_dup_u64(p []uint64) Uint64x1 { return ld1Dup[uint64, Uint64x1](p) }
func Vld1_dup_f32(p []float32) Float32x2 { return ld1Dup[float32, Float32x2](p) }
func Vld1_dup_f64(p []float64) Float64x1 { return ld1Dup[float64, Float64x1](p) }
func Vld1q_dup_s8(p []int8) Int8x16 { return ld1Dup[int8, Int8x16](p) }
func Vld1q_dup_s16(p []int16) Int16x8 { return ld1Dup[int16, Int16x8](p) }
func Vld1q_dup_s32(p []int32) Int32x4 { return ld1Dup[int32, Int32x4](p) }
func Vld1q_dup_s64(p []int64) Int64x2 { return ld1Dup[int64, Int64x2](p) }
func Vld1q_dup_u8(p []uint8) Uint8x16 { return ld1Dup[uint8, Uint8x16](p) }
func Vld1q_dup_u16(p []uint16) Uint16x8 { return ld1Dup[uint16, Uint16x8](p) }
func Vld1q_dup_u32(p []uint32) Uint32x4 { return ld1Dup[uint32, Uint32x4](p) }
func Vld1q_dup_u64(p []uint64) Uint64x2 { return ld1Dup[uint64, Uint64x2](p) }
func Vld1q_dup_f32(p []float32) Float32x4 { return ld1Dup[float32, Float32x4](p) }
func Vld1q_dup_f64(p []float64) Float64x2 { return ld1Dup[float64, Float64x2](p) }

// Vld1_lane_s8 returns v with lane replaced by p[0].
func Vld1_lane_s8(p []int8, v Int8x8, lane int) Int8x8 { return ld1Lane[int8](p, v, lane) }
func Vld1_lane_s16(p []int16, v Int16x4, lane int) Int16x4 { return ld1Lane[int16](p, v, lane) }
func Vld1_lane_s32(p []int32, v Int32x2, lane int) Int32x2 { return ld1Lane[int32](p, v, lane) }
func Vld1_lane_s64(p []int64, v Int64x1, lane int) Int64x1 { return ld1Lane[int64](p, v, lane) }
func Vld1_lane_u8(p []uint8, v Uint8x8, lane int) Uint8x8 { return ld1Lane[uint8](p, v, lane) }
func Vld1_lane_u16(p []uint16, v Uint16x4, lane int) Uint16x4 { return ld1Lane[uint16](p, v, lane) }
func Vld1_lane_u32(p []uint32, v Uint32x2, lane int) Uint32x2 { return ld1Lane[uint32](p, v, lane) }
func Vld1_lane_u64(p []uint64, v Uint64x1, lane int) Uint64x1 { return ld1Lane[uint64](p, v, lane) }

func Vld1_lane_f32(p []float32, v Float32x2, lane int) Float32x2 {
	return ld1Lane[float32](p, v, lane)
}

func Vld1_lane_f64(p []float64, v Float64x1, lane int) Float64x1 {
	return ld1Lane[float64](p, v, lane)
}

func Vld1q_lane_s8(p []int8, v Int8x16, lane int) Int8x16 { return ld1Lane[int8](p, v, lane) }
func Vld1q_lane_s16(p []int16, v Int16x8, lane int) Int16x8 { return ld1Lane[int16](p, v, lane) }
func Vld1q_lane_s32(p []int32, v Int32x4, lane int) Int32x4 { return ld1Lane[int32](p, v, lane) }
func Vld1q_lane_s64(p []int64, v Int64x2, lane int) Int64x2 { return ld1Lane[int64](p, v, lane) }
func Vld1q_lane_u8(p []uint8, v Uint8x16, lane int) Uint8x16 { return ld1Lane[uint8](p, v, lane) }

func Vld1q_lane_u16(p []uint16, v Uint16x8, lane int) Uint16x8 {
	return ld1Lane[uint16](p, v, lane)
}

func Vld1q_lane_u32(p []uint32, v Uint32x4, lane int) Uint32x4 {
	return ld1Lane[uint32](p, v, lane)
}

func Vld1q_lane_u64(p []uint64, v Uint64x2, lane int) Uint64x2 {
	return ld1Lane[uint64](p, v, lane)
}

func Vld1q_lane_f32(p []float32, v Float32x4, lane int) Float32x4 {
	return ld1Lane[float32](p, v, lane)
}

func Vld1q_lane_f64(p []float64, v Float64x2, lane int) Float64x2 {
	return ld1Lane[float64](p, v, lane)
}

// Vst1_s8 stores the lanes of v to consecutive elements of p.
func Vst1_s8(p []int8, v Int8x8) { st1[int8](p, v) }
func Vst1_s16(p []int16, v Int16x4) { st1[int16](p, v) }
func Vst1_s32(p []int32, v Int32x2) { st1[int32](p, v) }
func Vst1_s64(p []int64, v Int64x1) { st1[int64](p, v) }
func Vst1_u8(p []uint8, v Uint8x8) { st1[uint8](p, v) }
func Vst1_u16(p []uint16, v Uint16x4) { st1[uint16](p, v) }
func Vst1_u32(p []uint32, v Uint32x2) { st1[uint32](p, v) }
func Vst1_u64(p []uint64, v Uint64x1) { st1[uint64](p, v) }
func Vst1_f32(p []float32, v Float32x2) { st1[float32](p, v) }
func Vst1_f64(p []float64, v Float64x1) { st1[float64](p, v) }
func Vst1q_s8(p []int8, v Int8x16) { st1[int8](p, v) }
func Vst1q_s16(p []int16, v Int16x8) { st1[int16](p, v) }
func Vst1q_s32(p []int32, v Int32x4) { st1[int32](p, v) }
func Vst1q_s64(p []int64, v Int64x2) { st1[int64](p, v) }
func Vst1q_u8(p []uint8, v Uint8x16) { st1[uint8](p, v) }
func Vst1q_u16(p []uint16, v Uint16x8) { st1[uint16](p, v) }
func Vst1q_u32(p []uint32, v Uint32x4) { st1[uint32](p, v) }
func Vst1q_u64(p []uint64, v Uint64x2) { st1[uint64](p, v) }
func Vst1q_f32(p []float32, v Float32x4) { st1[float32](p, v) }
func Vst1q_f64(p []float64, v Float64x2) { st1[float64](p, v) }

// Vst1_lane_s8 stores lane of v to p[0].
func Vst1_lane_s8(p []int8, v Int8x8, lane int) { st1Lane[int8](p, v, lane) }
func Vst1_lane_s16(p []int16, v Int16x4, lane int) { st1Lane[int16](p, v, lane) }
func Vst1_lane_s32(p []int32, v Int32x2, lane int) { st1Lane[int32](p, v, lane) }
func Vst1_lane_s64(p []int64, v Int64x1, lane int) { st1Lane[int64](p, v, lane) }
func Vst1_lane_u8(p []uint8, v Uint8x8, lane int) { st1Lane[uint8](p, v, lane) }
func Vst1_lane_u16(p []uint16, v Uint16x4, lane int) { st1Lane[uint16](p, v, lane) }
func Vst1_lane_u32(p []uint32, v Uint32x2, lane int) { st1Lane[uint32](p, v, lane) }
func Vst1_lane_u64(p []uint64, v Uint64x1, lane int) { st1Lane[uint64](p, v, lane) }
func Vst1_lane_f32(p []float32, v Float32x2, lane int) { st1Lane[float32](p, v, lane) }
func Vst1_lane_f64(p []float64, v Float64x1, lane int) { st1Lane[float64](p, v, lane) }
func Vst1q_lane_s8(p []int8, v Int8x16, lane int) { st1Lane[int8](p, v, lane) }
func Vst1q_lane_s16(p []int16, v Int16x8, lane int) { st1Lane[int16](p, v, lane) }
func Vst1q_lane_s32(p []int32, v Int32x4, lane int) { st1Lane[int32](p, v, lane) }
func Vst1q_lane_s64(p []int64, v Int64x2, lane int) { st1Lane[int64](p, v, lane) }
func Vst1q_lane_u8(p []uint8, v Uint8x16, lane int) { st1Lane[uint8](p, v, lane) }
func Vst1q_lane_u16(p []uint16, v Uint16x8, lane int) { st1Lane[uint16](p, v, lane) }
func Vst1q_lane_u32(p []uint32, v Uint32x4, lane int) { st1Lane[uint32](p, v, lane) }
func Vst1q_lane_u64(p []uint64, v Uint64x2, lane int) { st1Lane[uint64](p, v, lane) }
func Vst1q_lane_f32(p []float32, v Float32x4, lane int) { st1Lane[float32](p, v, lane) }
func Vst1q_lane_f64(p []float64, v Float64x2, lane int) { st1Lane[float64](p, v, lane) }

// Vld2_s8 loads 2-way interleaved elements: lane j of Val[i] is p[j*2+i].
func Vld2_s8(p []int8) Int8x8x2 {
	x, y := ld2[int8, Int8x8](p)
	return Int8x8x2{Val: [2]Int8x8{x, y}}
}

func Vld2_s16(p []int16) Int16x4x2 {
	x, y := ld2[int16, Int16x4](p)
	return Int16x4x2{Val: [2]Int16x4{x, y}}
}

func Vld2_s32(p []int32) Int32x2x2 {
	x, y := ld2[int32, Int32x2](p)
	return Int32x2x2{Val: [2]Int32x2{x, y}}
}

func Vld2_s64(p []int64) Int64x1x2 {
	x, y := ld2[int64, Int64x1](p)
	return Int64x1x2{Val: [2]Int64x1{x, y}}
}

func Vld2_u8(p []uint8) Uint8x8x2 {
	x, y := ld2[uint8, Uint8x8](p)
	return Uint8x8x2{Val: [2]Uint8x8{x, y}}
}

func Vld2_u16(p []uint16) Uint16x4x2 {
	x, y := ld2[uint16, Uint16x4](p)
	return Uint16x4x2{Val: [2]Uint16x4{x, y}}
}

func Vld2_u32(p []uint32) Uint32x2x2 {
	x, y := ld2[uint32, Uint32x2](p)
	return Uint32x2x2{Val: [2]Uint32x2{x, y}}
}

func Vld2_u64(p []uint64) Uint64x1x2 {
	x, y := ld2[uint64, Uint64x1](p)
	return Uint64x1x2{Val: [2]Uint64x1{x, y}}
}

func Vld2_f32(p []float32) Float32x2x2 {
	x, y := ld2[float32, Float32x2](p)
	return Float32x2x2{Val: [2]Float32x2{x, y}}
}

func Vld2_f64(p []float64) Float64x1x2 {
	x, y := ld2[float64, Float64x1](p)
	return Float64x1x2{Val: [2]Float64x1{x, y}}
}

func Vld2q_s8(p []int8) Int8x16x2 {
	x, y := ld2[int8, Int8x16](p)
	return Int8x16x2{Val: [2]Int8x16{x, y}}
}

func Vld2q_s16(p []int16) Int16x8x2 {
	x, y := ld2[int16, Int16x8](p)
	return Int16x8x2{Val: [2]Int16x8{x, y}}
}

func Vld2q_s32(p []int32) Int32x4x2 {
	x, y := ld2[int32, Int32x4](p)
	return Int32x4x2{Val: [2]Int32x4{x, y}}
}

func Vld2q_s64(p []int64) Int64x2x2 {
	x, y := ld2[int64, Int64x2](p)
	return Int64x2x2{Val: [2]Int64x2{x, y}}
}

func Vld2q_u8(p []uint8) Uint8x16x2 {
	x, y := ld2[uint8, Uint8x16](p)
	return Uint8x16x2{Val: [2]Uint8x16{x, y}}
}

func Vld2q_u16(p []uint16) Uint16x8x2 {
	x, y := ld2[uint16, Uint16x8](p)
	return Uint16x8x2{Val: [2]Uint16x8{x, y}}
}

func Vld2q_u32(p []uint32) Uint32x4x2 {
	x, y := ld2[uint32, Uint32x4](p)
	return Uint32x4x2{Val: [2]Uint32x4{x, y}}
}

func Vld2q_u64(p []uint64) Uint64x2x2 {
	x, y := ld2[uint64, Uint64x2](p)
	return Uint64x2x2{Val: [2]Uint64x2{x, y}}
}

func Vld2q_f32(p []float32) Float32x4x2 {
	x, y := ld2[float32, Float32x4](p)
	return Float32x4x2{Val: [2]Float32x4{x, y}}
}

func Vld2q_f64(p []float64) Float64x2x2 {
	x, y := ld2[float64, Float64x2](p)
	return Float64x2x2{Val: [2]Float64x2{x, y}}
}

// Vld2_dup_s8 broadcasts p[i] to every lane of Val[i], for i < 2.
func Vld2_dup_s8(p []int8) Int8x8x2 {
	var r Int8x8x2
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld2_dup_s16(p []int16) Int16x4x2 {
	var r Int16x4x2
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld2_dup_s32(p []int32) Int32x2x2 {
	var r Int32x2x2
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld2_dup_s64(p []int64) Int64x1x2 {
	var r Int64x1x2
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld2_dup_u8(p []uint8) Uint8x8x2 {
	var r Uint8x8x2
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld2_dup_u16(p []uint16) Uint16x4x2 {
	var r Uint16x4x2
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld2_dup_u32(p []uint32) Uint32x2x2 {
	var r Uint32x2x2
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld2_dup_u64(p []uint64) Uint64x1x2 {
	var r Uint64x1x2
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld2_dup_f32(p []float32) Float32x2x2 {
	var r Float32x2x2
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld2_dup_f64(p []float64) Float64x1x2 {
	var r Float64x1x2
	ldDup[float64](p, r.Val[:])
	return r
}

func Vld2q_dup_s8(p []int8) Int8x16x2 {
	var r Int8x16x2
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld2q_dup_s16(p []int16) Int16x8x2 {
	var r Int16x8x2
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld2q_dup_s32(p []int32) Int32x4x2 {
	var r Int32x4x2
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld2q_dup_s64(p []int64) Int64x2x2 {
	var r Int64x2x2
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld2q_dup_u8(p []uint8) Uint8x16x2 {
	var r Uint8x16x2
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld2q_dup_u16(p []uint16) Uint16x8x2 {
	var r Uint16x8x2
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld2q_dup_u32(p []uint32) Uint32x4x2 {
	var r Uint32x4x2
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld2q_dup_u64(p []uint64) Uint64x2x2 {
	var r Uint64x2x2
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld2q_dup_f32(p []float32) Float32x4x2 {
	var r Float32x4x2
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld2q_dup_f64(p []float64) Float64x2x2 {
	var r Float64x2x2
	ldDup[float64](p, r.Val[:])
	return r
}

// Vld2_lane_s8 replaces lane of Val[i] with p[i], for i < 2.
func Vld2_lane_s8(p []int8, v Int8x8x2, lane int) Int8x8x2 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld2_lane_s16(p []int16, v Int16x4x2, lane int) Int16x4x2 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld2_lane_s32(p []int32, v Int32x2x2, lane int) Int32x2x2 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld2_lane_s64(p []int64, v Int64x1x2, lane int) Int64x1x2 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld2_lane_u8(p []uint8, v Uint8x8x2, lane int) Uint8x8x2 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld2_lane_u16(p []uint16, v Uint16x4x2, lane int) Uint16x4x2 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld2_lane_u32(p []uint32, v Uint32x2x2, lane int) Uint32x2x2 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld2_lane_u64(p []uint64, v Uint64x1x2, lane int) Uint64x1x2 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld2_lane_f32(p []float32, v Float32x2x2, lane int) Float32x2x2 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld2_lane_f64(p []float64, v Float64x1x2, lane int) Float64x1x2 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_s8(p []int8, v Int8x16x2, lane int) Int8x16x2 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_s16(p []int16, v Int16x8x2, lane int) Int16x8x2 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_s32(p []int32, v Int32x4x2, lane int) Int32x4x2 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_s64(p []int64, v Int64x2x2, lane int) Int64x2x2 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_u8(p []uint8, v Uint8x16x2, lane int) Uint8x16x2 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_u16(p []uint16, v Uint16x8x2, lane int) Uint16x8x2 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_u32(p []uint32, v Uint32x4x2, lane int) Uint32x4x2 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_u64(p []uint64, v Uint64x2x2, lane int) Uint64x2x2 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_f32(p []float32, v Float32x4x2, lane int) Float32x4x2 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld2q_lane_f64(p []float64, v Float64x2x2, lane int) Float64x2x2 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

// Vst2_s8 stores 2-way interleaved: lane j of Val[i] goes to p[j*2+i].
func Vst2_s8(p []int8, v Int8x8x2) { st2[int8](p, v.Val[0], v.Val[1]) }
func Vst2_s16(p []int16, v Int16x4x2) { st2[int16](p, v.Val[0], v.Val[1]) }
func Vst2_s32(p []int32, v Int32x2x2) { st2[int32](p, v.Val[0], v.Val[1]) }
func Vst2_s64(p []int64, v Int64x1x2) { st2[int64](p, v.Val[0], v.Val[1]) }
func Vst2_u8(p []uint8, v Uint8x8x2) { st2[uint8](p, v.Val[0], v.Val[1]) }
func Vst2_u16(p []uint16, v Uint16x4x2) { st2[uint16](p, v.Val[0], v.Val[1]) }
func Vst2_u32(p []uint32, v Uint32x2x2) { st2[uint32](p, v.Val[0], v.Val[1]) }
func Vst2_u64(p []uint64, v Uint64x1x2) { st2[uint64](p, v.Val[0], v.Val[1]) }
func Vst2_f32(p []float32, v Float32x2x2) { st2[float32](p, v.Val[0], v.Val[1]) }
func Vst2_f64(p []float64, v Float64x1x2) { st2[float64](p, v.Val[0], v.Val[1]) }
func Vst2q_s8(p []int8, v Int8x16x2) { st2[int8](p, v.Val[0], v.Val[1]) }
func Vst2q_s16(p []int16, v Int16x8x2) { st2[int16](p, v.Val[0], v.Val[1]) }
func Vst2q_s32(p []int32, v Int32x4x2) { st2[int32](p, v.Val[0], v.Val[1]) }
func Vst2q_s64(p []int64, v Int64x2x2) { st2[int64](p, v.Val[0], v.Val[1]) }
func Vst2q_u8(p []uint8, v Uint8x16x2) { st2[uint8](p, v.Val[0], v.Val[1]) }
func Vst2q_u16(p []uint16, v Uint16x8x2) { st2[uint16](p, v.Val[0], v.Val[1]) }
func Vst2q_u32(p []uint32, v Uint32x4x2) { st2[uint32](p, v.Val[0], v.Val[1]) }
func Vst2q_u64(p []uint64, v Uint64x2x2) { st2[uint64](p, v.Val[0], v.Val[1]) }
func Vst2q_f32(p []float32, v Float32x4x2) { st2[float32](p, v.Val[0], v.Val[1]) }
func Vst2q_f64(p []float64, v Float64x2x2) { st2[float64](p, v.Val[0], v.Val[1]) }

// Vst2_lane_s8 stores lane of Val[i] to p[i], for i < 2.
func Vst2_lane_s8(p []int8, v Int8x8x2, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst2_lane_s16(p []int16, v Int16x4x2, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst2_lane_s32(p []int32, v Int32x2x2, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst2_lane_s64(p []int64, v Int64x1x2, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst2_lane_u8(p []uint8, v Uint8x8x2, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst2_lane_u16(p []uint16, v Uint16x4x2, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst2_lane_u32(p []uint32, v Uint32x2x2, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst2_lane_u64(p []uint64, v Uint64x1x2, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst2_lane_f32(p []float32, v Float32x2x2, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst2_lane_f64(p []float64, v Float64x1x2, lane int) { stLane[float64](p, v.Val[:], lane) }
func Vst2q_lane_s8(p []int8, v Int8x16x2, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst2q_lane_s16(p []int16, v Int16x8x2, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst2q_lane_s32(p []int32, v Int32x4x2, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst2q_lane_s64(p []int64, v Int64x2x2, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst2q_lane_u8(p []uint8, v Uint8x16x2, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst2q_lane_u16(p []uint16, v Uint16x8x2, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst2q_lane_u32(p []uint32, v Uint32x4x2, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst2q_lane_u64(p []uint64, v Uint64x2x2, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst2q_lane_f32(p []float32, v Float32x4x2, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst2q_lane_f64(p []float64, v Float64x2x2, lane int) { stLane[float64](p, v.Val[:], lane) }

// Vld3_s8 loads 3-way interleaved elements: lane j of Val[i] is p[j*3+i].
func Vld3_s8(p []int8) Int8x8x3 {
	x, y, z := ld3[int8, Int8x8](p)
	return Int8x8x3{Val: [3]Int8x8{x, y, z}}
}

func Vld3_s16(p []int16) Int16x4x3 {
	x, y, z := ld3[int16, Int16x4](p)
	return Int16x4x3{Val: [3]Int16x4{x, y, z}}
}

func Vld3_s32(p []int32) Int32x2x3 {
	x, y, z := ld3[int32, Int32x2](p)
	return Int32x2x3{Val: [3]Int32x2{x, y, z}}
}

func Vld3_s64(p []int64) Int64x1x3 {
	x, y, z := ld3[int64, Int64x1](p)
	return Int64x1x3{Val: [3]Int64x1{x, y, z}}
}

func Vld3_u8(p []uint8) Uint8x8x3 {
	x, y, z := ld3[uint8, Uint8x8](p)
	return Uint8x8x3{Val: [3]Uint8x8{x, y, z}}
}

func Vld3_u16(p []uint16) Uint16x4x3 {
	x, y, z := ld3[uint16, Uint16x4](p)
	return Uint16x4x3{Val: [3]Uint16x4{x, y, z}}
}

func Vld3_u32(p []uint32) Uint32x2x3 {
	x, y, z := ld3[uint32, Uint32x2](p)
	return Uint32x2x3{Val: [3]Uint32x2{x, y, z}}
}

func Vld3_u64(p []uint64) Uint64x1x3 {
	x, y, z := ld3[uint64, Uint64x1](p)
	return Uint64x1x3{Val: [3]Uint64x1{x, y, z}}
}

func Vld3_f32(p []float32) Float32x2x3 {
	x, y, z := ld3[float32, Float32x2](p)
	return Float32x2x3{Val: [3]Float32x2{x, y, z}}
}

func Vld3_f64(p []float64) Float64x1x3 {
	x, y, z := ld3[float64, Float64x1](p)
	return Float64x1x3{Val: [3]Float64x1{x, y, z}}
}

func Vld3q_s8(p []int8) Int8x16x3 {
	x, y, z := ld3[int8, Int8x16](p)
	return Int8x16x3{Val: [3]Int8x16{x, y, z}}
}

func Vld3q_s16(p []int16) Int16x8x3 {
	x, y, z := ld3[int16, Int16x8](p)
	return Int16x8x3{Val: [3]Int16x8{x, y, z}}
}

func Vld3q_s32(p []int32) Int32x4x3 {
	x, y, z := ld3[int32, Int32x4](p)
	return Int32x4x3{Val: [3]Int32x4{x, y, z}}
}

func Vld3q_s64(p []int64) Int64x2x3 {
	x, y, z := ld3[int64, Int64x2](p)
	return Int64x2x3{Val: [3]Int64x2{x, y, z}}
}

func Vld3q_u8(p []uint8) Uint8x16x3 {
	x, y, z := ld3[uint8, Uint8x16](p)
	return Uint8x16x3{Val: [3]Uint8x16{x, y, z}}
}

func Vld3q_u16(p []uint16) Uint16x8x3 {
	x, y, z := ld3[uint16, Uint16x8](p)
	return Uint16x8x3{Val: [3]Uint16x8{x, y, z}}
}

func Vld3q_u32(p []uint32) Uint32x4x3 {
	x, y, z := ld3[uint32, Uint32x4](p)
	return Uint32x4x3{Val: [3]Uint32x4{x, y, z}}
}

func Vld3q_u64(p []uint64) Uint64x2x3 {
	x, y, z := ld3[uint64, Uint64x2](p)
	return Uint64x2x3{Val: [3]Uint64x2{x, y, z}}
}

func Vld3q_f32(p []float32) Float32x4x3 {
	x, y, z := ld3[float32, Float32x4](p)
	return Float32x4x3{Val: [3]Float32x4{x, y, z}}
}

func Vld3q_f64(p []float64) Float64x2x3 {
	x, y, z := ld3[float64, Float64x2](p)
	return Float64x2x3{Val: [3]Float64x2{x, y, z}}
}

// Vld3_dup_s8 broadcasts p[i] to every lane of Val[i], for i < 3.
func Vld3_dup_s8(p []int8) Int8x8x3 {
	var r Int8x8x3
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld3_dup_s16(p []int16) Int16x4x3 {
	var r Int16x4x3
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld3_dup_s32(p []int32) Int32x2x3 {
	var r Int32x2x3
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld3_dup_s64(p []int64) Int64x1x3 {
	var r Int64x1x3
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld3_dup_u8(p []uint8) Uint8x8x3 {
	var r Uint8x8x3
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld3_dup_u16(p []uint16) Uint16x4x3 {
	var r Uint16x4x3
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld3_dup_u32(p []uint32) Uint32x2x3 {
	var r Uint32x2x3
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld3_dup_u64(p []uint64) Uint64x1x3 {
	var r Uint64x1x3
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld3_dup_f32(p []float32) Float32x2x3 {
	var r Float32x2x3
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld3_dup_f64(p []float64) Float64x1x3 {
	var r Float64x1x3
	ldDup[float64](p, r.Val[:])
	return r
}

func Vld3q_dup_s8(p []int8) Int8x16x3 {
	var r Int8x16x3
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld3q_dup_s16(p []int16) Int16x8x3 {
	var r Int16x8x3
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld3q_dup_s32(p []int32) Int32x4x3 {
	var r Int32x4x3
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld3q_dup_s64(p []int64) Int64x2x3 {
	var r Int64x2x3
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld3q_dup_u8(p []uint8) Uint8x16x3 {
	var r Uint8x16x3
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld3q_dup_u16(p []uint16) Uint16x8x3 {
	var r Uint16x8x3
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld3q_dup_u32(p []uint32) Uint32x4x3 {
	var r Uint32x4x3
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld3q_dup_u64(p []uint64) Uint64x2x3 {
	var r Uint64x2x3
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld3q_dup_f32(p []float32) Float32x4x3 {
	var r Float32x4x3
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld3q_dup_f64(p []float64) Float64x2x3 {
	var r Float64x2x3
	ldDup[float64](p, r.Val[:])
	return r
}

// Vld3_lane_s8 replaces lane of Val[i] with p[i], for i < 3.
func Vld3_lane_s8(p []int8, v Int8x8x3, lane int) Int8x8x3 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld3_lane_s16(p []int16, v Int16x4x3, lane int) Int16x4x3 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld3_lane_s32(p []int32, v Int32x2x3, lane int) Int32x2x3 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld3_lane_s64(p []int64, v Int64x1x3, lane int) Int64x1x3 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld3_lane_u8(p []uint8, v Uint8x8x3, lane int) Uint8x8x3 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld3_lane_u16(p []uint16, v Uint16x4x3, lane int) Uint16x4x3 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld3_lane_u32(p []uint32, v Uint32x2x3, lane int) Uint32x2x3 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld3_lane_u64(p []uint64, v Uint64x1x3, lane int) Uint64x1x3 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld3_lane_f32(p []float32, v Float32x2x3, lane int) Float32x2x3 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld3_lane_f64(p []float64, v Float64x1x3, lane int) Float64x1x3 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_s8(p []int8, v Int8x16x3, lane int) Int8x16x3 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_s16(p []int16, v Int16x8x3, lane int) Int16x8x3 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_s32(p []int32, v Int32x4x3, lane int) Int32x4x3 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_s64(p []int64, v Int64x2x3, lane int) Int64x2x3 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_u8(p []uint8, v Uint8x16x3, lane int) Uint8x16x3 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_u16(p []uint16, v Uint16x8x3, lane int) Uint16x8x3 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_u32(p []uint32, v Uint32x4x3, lane int) Uint32x4x3 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_u64(p []uint64, v Uint64x2x3, lane int) Uint64x2x3 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_f32(p []float32, v Float32x4x3, lane int) Float32x4x3 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld3q_lane_f64(p []float64, v Float64x2x3, lane int) Float64x2x3 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

// Vst3_s8 stores 3-way interleaved: lane j of Val[i] goes to p[j*3+i].
func Vst3_s8(p []int8, v Int8x8x3) { st3[int8](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_s16(p []int16, v Int16x4x3) { st3[int16](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_s32(p []int32, v Int32x2x3) { st3[int32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_s64(p []int64, v Int64x1x3) { st3[int64](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_u8(p []uint8, v Uint8x8x3) { st3[uint8](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_u16(p []uint16, v Uint16x4x3) { st3[uint16](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_u32(p []uint32, v Uint32x2x3) { st3[uint32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_u64(p []uint64, v Uint64x1x3) { st3[uint64](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_f32(p []float32, v Float32x2x3) { st3[float32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3_f64(p []float64, v Float64x1x3) { st3[float64](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_s8(p []int8, v Int8x16x3) { st3[int8](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_s16(p []int16, v Int16x8x3) { st3[int16](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_s32(p []int32, v Int32x4x3) { st3[int32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_s64(p []int64, v Int64x2x3) { st3[int64](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_u8(p []uint8, v Uint8x16x3) { st3[uint8](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_u16(p []uint16, v Uint16x8x3) { st3[uint16](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_u32(p []uint32, v Uint32x4x3) { st3[uint32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_u64(p []uint64, v Uint64x2x3) { st3[uint64](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_f32(p []float32, v Float32x4x3) { st3[float32](p, v.Val[0], v.Val[1], v.Val[2]) }
func Vst3q_f64(p []float64, v Float64x2x3) { st3[float64](p, v.Val[0], v.Val[1], v.Val[2]) }

// Vst3_lane_s8 stores lane of Val[i] to p[i], for i < 3.
func Vst3_lane_s8(p []int8, v Int8x8x3, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst3_lane_s16(p []int16, v Int16x4x3, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst3_lane_s32(p []int32, v Int32x2x3, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst3_lane_s64(p []int64, v Int64x1x3, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst3_lane_u8(p []uint8, v Uint8x8x3, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst3_lane_u16(p []uint16, v Uint16x4x3, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst3_lane_u32(p []uint32, v Uint32x2x3, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst3_lane_u64(p []uint64, v Uint64x1x3, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst3_lane_f32(p []float32, v Float32x2x3, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst3_lane_f64(p []float64, v Float64x1x3, lane int) { stLane[float64](p, v.Val[:], lane) }
func Vst3q_lane_s8(p []int8, v Int8x16x3, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst3q_lane_s16(p []int16, v Int16x8x3, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst3q_lane_s32(p []int32, v Int32x4x3, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst3q_lane_s64(p []int64, v Int64x2x3, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst3q_lane_u8(p []uint8, v Uint8x16x3, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst3q_lane_u16(p []uint16, v Uint16x8x3, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst3q_lane_u32(p []uint32, v Uint32x4x3, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst3q_lane_u64(p []uint64, v Uint64x2x3, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst3q_lane_f32(p []float32, v Float32x4x3, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst3q_lane_f64(p []float64, v Float64x2x3, lane int) { stLane[float64](p, v.Val[:], lane) }

// Vld4_s8 loads 4-way interleaved elements: lane j of Val[i] is p[j*4+i].
func Vld4_s8(p []int8) Int8x8x4 {
	x, y, z, w := ld4[int8, Int8x8](p)
	return Int8x8x4{Val: [4]Int8x8{x, y, z, w}}
}

func Vld4_s16(p []int16) Int16x4x4 {
	x, y, z, w := ld4[int16, Int16x4](p)
	return Int16x4x4{Val: [4]Int16x4{x, y, z, w}}
}

func Vld4_s32(p []int32) Int32x2x4 {
	x, y, z, w := ld4[int32, Int32x2](p)
	return Int32x2x4{Val: [4]Int32x2{x, y, z, w}}
}

func Vld4_s64(p []int64) Int64x1x4 {
	x, y, z, w := ld4[int64, Int64x1](p)
	return Int64x1x4{Val: [4]Int64x1{x, y, z, w}}
}

func Vld4_u8(p []uint8) Uint8x8x4 {
	x, y, z, w := ld4[uint8, Uint8x8](p)
	return Uint8x8x4{Val: [4]Uint8x8{x, y, z, w}}
}

func Vld4_u16(p []uint16) Uint16x4x4 {
	x, y, z, w := ld4[uint16, Uint16x4](p)
	return Uint16x4x4{Val: [4]Uint16x4{x, y, z, w}}
}

func Vld4_u32(p []uint32) Uint32x2x4 {
	x, y, z, w := ld4[uint32, Uint32x2](p)
	return Uint32x2x4{Val: [4]Uint32x2{x, y, z, w}}
}

func Vld4_u64(p []uint64) Uint64x1x4 {
	x, y, z, w := ld4[uint64, Uint64x1](p)
	return Uint64x1x4{Val: [4]Uint64x1{x, y, z, w}}
}

func Vld4_f32(p []float32) Float32x2x4 {
	x, y, z, w := ld4[float32, Float32x2](p)
	return Float32x2x4{Val: [4]Float32x2{x, y, z, w}}
}

func Vld4_f64(p []float64) Float64x1x4 {
	x, y, z, w := ld4[float64, Float64x1](p)
	return Float64x1x4{Val: [4]Float64x1{x, y, z, w}}
}

func Vld4q_s8(p []int8) Int8x16x4 {
	x, y, z, w := ld4[int8, Int8x16](p)
	return Int8x16x4{Val: [4]Int8x16{x, y, z, w}}
}

func Vld4q_s16(p []int16) Int16x8x4 {
	x, y, z, w := ld4[int16, Int16x8](p)
	return Int16x8x4{Val: [4]Int16x8{x, y, z, w}}
}

func Vld4q_s32(p []int32) Int32x4x4 {
	x, y, z, w := ld4[int32, Int32x4](p)
	return Int32x4x4{Val: [4]Int32x4{x, y, z, w}}
}

func Vld4q_s64(p []int64) Int64x2x4 {
	x, y, z, w := ld4[int64, Int64x2](p)
	return Int64x2x4{Val: [4]Int64x2{x, y, z, w}}
}

func Vld4q_u8(p []uint8) Uint8x16x4 {
	x, y, z, w := ld4[uint8, Uint8x16](p)
	return Uint8x16x4{Val: [4]Uint8x16{x, y, z, w}}
}

func Vld4q_u16(p []uint16) Uint16x8x4 {
	x, y, z, w := ld4[uint16, Uint16x8](p)
	return Uint16x8x4{Val: [4]Uint16x8{x, y, z, w}}
}

func Vld4q_u32(p []uint32) Uint32x4x4 {
	x, y, z, w := ld4[uint32, Uint32x4](p)
	return Uint32x4x4{Val: [4]Uint32x4{x, y, z, w}}
}

func Vld4q_u64(p []uint64) Uint64x2x4 {
	x, y, z, w := ld4[uint64, Uint64x2](p)
	return Uint64x2x4{Val: [4]Uint64x2{x, y, z, w}}
}

func Vld4q_f32(p []float32) Float32x4x4 {
	x, y, z, w := ld4[float32, Float32x4](p)
	return Float32x4x4{Val: [4]Float32x4{x, y, z, w}}
}

func Vld4q_f64(p []float64) Float64x2x4 {
	x, y, z, w := ld4[float64, Float64x2](p)
	return Float64x2x4{Val: [4]Float64x2{x, y, z, w}}
}

// Vld4_dup_s8 broadcasts p[i] to every lane of Val[i], for i < 4.
func Vld4_dup_s8(p []int8) Int8x8x4 {
	var r Int8x8x4
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld4_dup_s16(p []int16) Int16x4x4 {
	var r Int16x4x4
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld4_dup_s32(p []int32) Int32x2x4 {
	var r Int32x2x4
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld4_dup_s64(p []int64) Int64x1x4 {
	var r Int64x1x4
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld4_dup_u8(p []uint8) Uint8x8x4 {
	var r Uint8x8x4
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld4_dup_u16(p []uint16) Uint16x4x4 {
	var r Uint16x4x4
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld4_dup_u32(p []uint32) Uint32x2x4 {
	var r Uint32x2x4
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld4_dup_u64(p []uint64) Uint64x1x4 {
	var r Uint64x1x4
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld4_dup_f32(p []float32) Float32x2x4 {
	var r Float32x2x4
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld4_dup_f64(p []float64) Float64x1x4 {
	var r Float64x1x4
	ldDup[float64](p, r.Val[:])
	return r
}

func Vld4q_dup_s8(p []int8) Int8x16x4 {
	var r Int8x16x4
	ldDup[int8](p, r.Val[:])
	return r
}

func Vld4q_dup_s16(p []int16) Int16x8x4 {
	var r Int16x8x4
	ldDup[int16](p, r.Val[:])
	return r
}

func Vld4q_dup_s32(p []int32) Int32x4x4 {
	var r Int32x4x4
	ldDup[int32](p, r.Val[:])
	return r
}

func Vld4q_dup_s64(p []int64) Int64x2x4 {
	var r Int64x2x4
	ldDup[int64](p, r.Val[:])
	return r
}

func Vld4q_dup_u8(p []uint8) Uint8x16x4 {
	var r Uint8x16x4
	ldDup[uint8](p, r.Val[:])
	return r
}

func Vld4q_dup_u16(p []uint16) Uint16x8x4 {
	var r Uint16x8x4
	ldDup[uint16](p, r.Val[:])
	return r
}

func Vld4q_dup_u32(p []uint32) Uint32x4x4 {
	var r Uint32x4x4
	ldDup[uint32](p, r.Val[:])
	return r
}

func Vld4q_dup_u64(p []uint64) Uint64x2x4 {
	var r Uint64x2x4
	ldDup[uint64](p, r.Val[:])
	return r
}

func Vld4q_dup_f32(p []float32) Float32x4x4 {
	var r Float32x4x4
	ldDup[float32](p, r.Val[:])
	return r
}

func Vld4q_dup_f64(p []float64) Float64x2x4 {
	var r Float64x2x4
	ldDup[float64](p, r.Val[:])
	return r
}

// Vld4_lane_s8 replaces lane of Val[i] with p[i], for i < 4.
func Vld4_lane_s8(p []int8, v Int8x8x4, lane int) Int8x8x4 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld4_lane_s16(p []int16, v Int16x4x4, lane int) Int16x4x4 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld4_lane_s32(p []int32, v Int32x2x4, lane int) Int32x2x4 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld4_lane_s64(p []int64, v Int64x1x4, lane int) Int64x1x4 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld4_lane_u8(p []uint8, v Uint8x8x4, lane int) Uint8x8x4 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld4_lane_u16(p []uint16, v Uint16x4x4, lane int) Uint16x4x4 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld4_lane_u32(p []uint32, v Uint32x2x4, lane int) Uint32x2x4 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld4_lane_u64(p []uint64, v Uint64x1x4, lane int) Uint64x1x4 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld4_lane_f32(p []float32, v Float32x2x4, lane int) Float32x2x4 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld4_lane_f64(p []float64, v Float64x1x4, lane int) Float64x1x4 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_s8(p []int8, v Int8x16x4, lane int) Int8x16x4 {
	ldLane[int8](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_s16(p []int16, v Int16x8x4, lane int) Int16x8x4 {
	ldLane[int16](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_s32(p []int32, v Int32x4x4, lane int) Int32x4x4 {
	ldLane[int32](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_s64(p []int64, v Int64x2x4, lane int) Int64x2x4 {
	ldLane[int64](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_u8(p []uint8, v Uint8x16x4, lane int) Uint8x16x4 {
	ldLane[uint8](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_u16(p []uint16, v Uint16x8x4, lane int) Uint16x8x4 {
	ldLane[uint16](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_u32(p []uint32, v Uint32x4x4, lane int) Uint32x4x4 {
	ldLane[uint32](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_u64(p []uint64, v Uint64x2x4, lane int) Uint64x2x4 {
	ldLane[uint64](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_f32(p []float32, v Float32x4x4, lane int) Float32x4x4 {
	ldLane[float32](p, v.Val[:], lane)
	return v
}

func Vld4q_lane_f64(p []float64, v Float64x2x4, lane int) Float64x2x4 {
	ldLane[float64](p, v.Val[:], lane)
	return v
}

// Vst4_s8 stores 4-way interleaved: lane j of Val[i] goes to p[j*4+i].
func Vst4_s8(p []int8, v Int8x8x4) { st4[int8](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_s16(p []int16, v Int16x4x4) { st4[int16](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_s32(p []int32, v Int32x2x4) { st4[int32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_s64(p []int64, v Int64x1x4) { st4[int64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_u8(p []uint8, v Uint8x8x4) { st4[uint8](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_u16(p []uint16, v Uint16x4x4) { st4[uint16](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_u32(p []uint32, v Uint32x2x4) { st4[uint32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4_u64(p []uint64, v Uint64x1x4) { st4[uint64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }

func Vst4_f32(p []float32, v Float32x2x4) {
	st4[float32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3])
}

func Vst4_f64(p []float64, v Float64x1x4) {
	st4[float64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3])
}

func Vst4q_s8(p []int8, v Int8x16x4) { st4[int8](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_s16(p []int16, v Int16x8x4) { st4[int16](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_s32(p []int32, v Int32x4x4) { st4[int32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_s64(p []int64, v Int64x2x4) { st4[int64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_u8(p []uint8, v Uint8x16x4) { st4[uint8](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_u16(p []uint16, v Uint16x8x4) { st4[uint16](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_u32(p []uint32, v Uint32x4x4) { st4[uint32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }
func Vst4q_u64(p []uint64, v Uint64x2x4) { st4[uint64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3]) }

func Vst4q_f32(p []float32, v Float32x4x4) {
	st4[float32](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3])
}

func Vst4q_f64(p []float64, v Float64x2x4) {
	st4[float64](p, v.Val[0], v.Val[1], v.Val[2], v.Val[3])
}

// Vst4_lane_s8 stores lane of Val[i] to p[i], for i < 4.
func Vst4_lane_s8(p []int8, v Int8x8x4, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst4_lane_s16(p []int16, v Int16x4x4, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst4_lane_s32(p []int32, v Int32x2x4, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst4_lane_s64(p []int64, v Int64x1x4, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst4_lane_u8(p []uint8, v Uint8x8x4, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst4_lane_u16(p []uint16, v Uint16x4x4, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst4_lane_u32(p []uint32, v Uint32x2x4, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst4_lane_u64(p []uint64, v Uint64x1x4, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst4_lane_f32(p []float32, v Float32x2x4, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst4_lane_f64(p []float64, v Float64x1x4, lane int) { stLane[float64](p, v.Val[:], lane) }
func Vst4q_lane_s8(p []int8, v Int8x16x4, lane int) { stLane[int8](p, v.Val[:], lane) }
func Vst4q_lane_s16(p []int16, v Int16x8x4, lane int) { stLane[int16](p, v.Val[:], lane) }
func Vst4q_lane_s32(p []int32, v Int32x4x4, lane int) { stLane[int32](p, v.Val[:], lane) }
func Vst4q_lane_s64(p []int64, v Int64x2x4, lane int) { stLane[int64](p, v.Val[:], lane) }
func Vst4q_lane_u8(p []uint8, v Uint8x16x4, lane int) { stLane[uint8](p, v.Val[:], lane) }
func Vst4q_lane_u16(p []uint16, v Uint16x8x4, lane int) { stLane[uint16](p, v.Val[:], lane) }
func Vst4q_lane_u32(p []uint32, v Uint32x4x4, lane int) { stLane[uint32](p, v.Val[:], lane) }
func Vst4q_lane_u64(p []uint64, v Uint64x2x4, lane int) { stLane[uint64](p, v.Val[:], lane) }
func Vst4q_lane_f32(p []float32, v Float32x4x4, lane int) { stLane[float32](p, v.Val[:], lane) }
func Vst4q_lane_f64(p []float64, v Float64x2x4, lane int) { stLane[float64](p, v.Val[:], lane) }
