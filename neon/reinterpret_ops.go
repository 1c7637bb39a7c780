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

// Vreinterpret_s8_s16 views the bits of a as another lane type.
func Vreinterpret_s8_s16(a Int16x4) Int8x8 { return reinterpret[int8, int16, Int8x8](a) }
func Vreinterpret_s8_s32(a Int32x2) Int8x8 { return reinterpret[int8, int32, Int8x8](a) }
func Vreinterpret_s8_s64(a Int64x1) Int8x8 { return reinterpret[int8, int64, Int8x8](a) }
func Vreinterpret_s8_u8(a Uint8x8) Int8x8 { return reinterpret[int8, uint8, Int8x8](a) }
func Vreinterpret_s8_u16(a Uint16x4) Int8x8 { return reinterpret[int8, uint16, Int8x8](a) }
func Vreinterpret_s8_u32(a Uint32x2) Int8x8 { return reinterpret[int8, uint32, Int8x8](a) }
func Vreinterpret_s8_u64(a Uint64x1) Int8x8 { return reinterpret[int8, uint64, Int8x8](a) }
func Vreinterpret_s8_f32(a Float32x2) Int8x8 { return reinterpret[int8, float32, Int8x8](a) }
func Vreinterpret_s8_f64(a Float64x1) Int8x8 { return reinterpret[int8, float64, Int8x8](a) }

func Vreinterpret_s16_s8(a Int8x8) Int16x4 { return reinterpret[int16, int8, Int16x4](a) }
func Vreinterpret_s16_s32(a Int32x2) Int16x4 { return reinterpret[int16, int32, Int16x4](a) }
func Vreinterpret_s16_s64(a Int64x1) Int16x4 { return reinterpret[int16, int64, Int16x4](a) }
func Vreinterpret_s16_u8(a Uint8x8) Int16x4 { return reinterpret[int16, uint8, Int16x4](a) }
func Vreinterpret_s16_u16(a Uint16x4) Int16x4 { return reinterpret[int16, uint16, Int16x4](a) }
func Vreinterpret_s16_u32(a Uint32x2) Int16x4 { return reinterpret[int16, uint32, Int16x4](a) }
func Vreinterpret_s16_u64(a Uint64x1) Int16x4 { return reinterpret[int16, uint64, Int16x4](a) }
func Vreinterpret_s16_f32(a Float32x2) Int16x4 { return reinterpret[int16, float32, Int16x4](a) }
func Vreinterpret_s16_f64(a Float64x1) Int16x4 { return reinterpret[int16, float64, Int16x4](a) }

func Vreinterpret_s32_s8(a Int8x8) Int32x2 { return reinterpret[int32, int8, Int32x2](a) }
func Vreinterpret_s32_s16(a Int16x4) Int32x2 { return reinterpret[int32, int16, Int32x2](a) }
func Vreinterpret_s32_s64(a Int64x1) Int32x2 { return reinterpret[int32, int64, Int32x2](a) }
func Vreinterpret_s32_u8(a Uint8x8) Int32x2 { return reinterpret[int32, uint8, Int32x2](a) }
func Vreinterpret_s32_u16(a Uint16x4) Int32x2 { return reinterpret[int32, uint16, Int32x2](a) }
func Vreinterpret_s32_u32(a Uint32x2) Int32x2 { return reinterpret[int32, uint32, Int32x2](a) }
func Vreinterpret_s32_u64(a Uint64x1) Int32x2 { return reinterpret[int32, uint64, Int32x2](a) }
func Vreinterpret_s32_f32(a Float32x2) Int32x2 { return reinterpret[int32, float32, Int32x2](a) }
func Vreinterpret_s32_f64(a Float64x1) Int32x2 { return reinterpret[int32, float64, Int32x2](a) }

func Vreinterpret_s64_s8(a Int8x8) Int64x1 { return reinterpret[int64, int8, Int64x1](a) }
func Vreinterpret_s64_s16(a Int16x4) Int64x1 { return reinterpret[int64, int16, Int64x1](a) }
func Vreinterpret_s64_s32(a Int32x2) Int64x1 { return reinterpret[int64, int32, Int64x1](a) }
func Vreinterpret_s64_u8(a Uint8x8) Int64x1 { return reinterpret[int64, uint8, Int64x1](a) }
func Vreinterpret_s64_u16(a Uint16x4) Int64x1 { return reinterpret[int64, uint16, Int64x1](a) }
func Vreinterpret_s64_u32(a Uint32x2) Int64x1 { return reinterpret[int64, uint32, Int64x1](a) }
func Vreinterpret_s64_u64(a Uint64x1) Int64x1 { return reinterpret[int64, uint64, Int64x1](a) }
func Vreinterpret_s64_f32(a Float32x2) Int64x1 { return reinterpret[int64, float32, Int64x1](a) }
func Vreinterpret_s64_f64(a Float64x1) Int64x1 { return reinterpret[int64, float64, Int64x1](a) }

func Vreinterpret_u8_s8(a Int8x8) Uint8x8 { return reinterpret[uint8, int8, Uint8x8](a) }
func Vreinterpret_u8_s16(a Int16x4) Uint8x8 { return reinterpret[uint8, int16, Uint8x8](a) }
func Vreinterpret_u8_s32(a Int32x2) Uint8x8 { return reinterpret[uint8, int32, Uint8x8](a) }
func Vreinterpret_u8_s64(a Int64x1) Uint8x8 { return reinterpret[uint8, int64, Uint8x8](a) }
func Vreinterpret_u8_u16(a Uint16x4) Uint8x8 { return reinterpret[uint8, uint16, Uint8x8](a) }
func Vreinterpret_u8_u32(a Uint32x2) Uint8x8 { return reinterpret[uint8, uint32, Uint8x8](a) }
func Vreinterpret_u8_u64(a Uint64x1) Uint8x8 { return reinterpret[uint8, uint64, Uint8x8](a) }
func Vreinterpret_u8_f32(a Float32x2) Uint8x8 { return reinterpret[uint8, float32, Uint8x8](a) }
func Vreinterpret_u8_f64(a Float64x1) Uint8x8 { return reinterpret[uint8, float64, Uint8x8](a) }

func Vreinterpret_u16_s8(a Int8x8) Uint16x4 { return reinterpret[uint16, int8, Uint16x4](a) }
func Vreinterpret_u16_s16(a Int16x4) Uint16x4 { return reinterpret[uint16, int16, Uint16x4](a) }
func Vreinterpret_u16_s32(a Int32x2) Uint16x4 { return reinterpret[uint16, int32, Uint16x4](a) }
func Vreinterpret_u16_s64(a Int64x1) Uint16x4 { return reinterpret[uint16, int64, Uint16x4](a) }
func Vreinterpret_u16_u8(a Uint8x8) Uint16x4 { return reinterpret[uint16, uint8, Uint16x4](a) }
func Vreinterpret_u16_u32(a Uint32x2) Uint16x4 { return reinterpret[uint16, uint32, Uint16x4](a) }
func Vreinterpret_u16_u64(a Uint64x1) Uint16x4 { return reinterpret[uint16, uint64, Uint16x4](a) }
func Vreinterpret_u16_f32(a Float32x2) Uint16x4 { return reinterpret[uint16, float32, Uint16x4](a) }
func Vreinterpret_u16_f64(a Float64x1) Uint16x4 { return reinterpret[uint16, float64, Uint16x4](a) }

func Vreinterpret_u32_s8(a Int8x8) Uint32x2 { return reinterpret[uint32, int8, Uint32x2](a) }
func Vreinterpret_u32_s16(a Int16x4) Uint32x2 { return reinterpret[uint32, int16, Uint32x2](a) }
func Vreinterpret_u32_s32(a Int32x2) Uint32x2 { return reinterpret[uint32, int32, Uint32x2](a) }
func Vreinterpret_u32_s64(a Int64x1) Uint32x2 { return reinterpret[uint32, int64, Uint32x2](a) }
func Vreinterpret_u32_u8(a Uint8x8) Uint32x2 { return reinterpret[uint32, uint8, Uint32x2](a) }
func Vreinterpret_u32_u16(a Uint16x4) Uint32x2 { return reinterpret[uint32, uint16, Uint32x2](a) }
func Vreinterpret_u32_u64(a Uint64x1) Uint32x2 { return reinterpret[uint32, uint64, Uint32x2](a) }
func Vreinterpret_u32_f32(a Float32x2) Uint32x2 { return reinterpret[uint32, float32, Uint32x2](a) }
func Vreinterpret_u32_f64(a Float64x1) Uint32x2 { return reinterpret[uint32, float64, Uint32x2](a) }

func Vreinterpret_u64_s8(a Int8x8) Uint64x1 { return reinterpret[uint64, int8, Uint64x1](a) }
func Vreinterpret_u64_s16(a Int16x4) Uint64x1 { return reinterpret[uint64, int16, Uint64x1](a) }
func Vreinterpret_u64_s32(a Int32x2) Uint64x1 { return reinterpret[uint64, int32, Uint64x1](a) }
func Vreinterpret_u64_s64(a Int64x1) Uint64x1 { return reinterpret[uint64, int64, Uint64x1](a) }
func Vreinterpret_u64_u8(a Uint8x8) Uint64x1 { return reinterpret[uint64, uint8, Uint64x1](a) }
func Vreinterpret_u64_u16(a Uint16x4) Uint64x1 { return reinterpret[uint64, uint16, Uint64x1](a) }
func Vreinterpret_u64_u32(a Uint32x2) Uint64x1 { return reinterpret[uint64, uint32, Uint64x1](a) }
func Vreinterpret_u64_f32(a Float32x2) Uint64x1 { return reinterpret[uint64, float32, Uint64x1](a) }
func Vreinterpret_u64_f64(a Float64x1) Uint64x1 { return reinterpret[uint64, float64, Uint64x1](a) }

func Vreinterpret_f32_s8(a Int8x8) Float32x2 { return reinterpret[float32, int8, Float32x2](a) }
func Vreinterpret_f32_s16(a Int16x4) Float32x2 { return reinterpret[float32, int16, Float32x2](a) }
func Vreinterpret_f32_s32(a Int32x2) Float32x2 { return reinterpret[float32, int32, Float32x2](a) }
func Vreinterpret_f32_s64(a Int64x1) Float32x2 { return reinterpret[float32, int64, Float32x2](a) }
func Vreinterpret_f32_u8(a Uint8x8) Float32x2 { return reinterpret[float32, uint8, Float32x2](a) }

func Vreinterpret_f32_u16(a Uint16x4) Float32x2 {
	return reinterpret[float32, uint16, Float32x2](a)
}

func Vreinterpret_f32_u32(a Uint32x2) Float32x2 {
	return reinterpret[float32, uint32, Float32x2](a)
}

func Vreinterpret_f32_u64(a Uint64x1) Float32x2 {
	return reinterpret[float32, uint64, Float32x2](a)
}

func Vreinterpret_f32_f64(a Float64x1) Float32x2 {
	return reinterpret[float32, float64, Float32x2](a)
}

func Vreinterpret_f64_s8(a Int8x8) Float64x1 { return reinterpret[float64, int8, Float64x1](a) }
func Vreinterpret_f64_s16(a Int16x4) Float64x1 { return reinterpret[float64, int16, Float64x1](a) }
func Vreinterpret_f64_s32(a Int32x2) Float64x1 { return reinterpret[float64, int32, Float64x1](a) }
func Vreinterpret_f64_s64(a Int64x1) Float64x1 { return reinterpret[float64, int64, Float64x1](a) }
func Vreinterpret_f64_u8(a Uint8x8) Float64x1 { return reinterpret[float64, uint8, Float64x1](a) }

func Vreinterpret_f64_u16(a Uint16x4) Float64x1 {
	return reinterpret[float64, uint16, Float64x1](a)
}

func Vreinterpret_f64_u32(a Uint32x2) Float64x1 {
	return reinterpret[float64, uint32, Float64x1](a)
}

func Vreinterpret_f64_u64(a Uint64x1) Float64x1 {
	return reinterpret[float64, uint64, Float64x1](a)
}

func Vreinterpret_f64_f32(a Float32x2) Float64x1 {
	return reinterpret[float64, float32, Float64x1](a)
}

// Vreinterpretq_s8_s16 views the bits of a as another lane type.
func Vreinterpretq_s8_s16(a Int16x8) Int8x16 { return reinterpret[int8, int16, Int8x16](a) }
func Vreinterpretq_s8_s32(a Int32x4) Int8x16 { return reinterpret[int8, int32, Int8x16](a) }
func Vreinterpretq_s8_s64(a Int64x2) Int8x16 { return reinterpret[int8, int64, Int8x16](a) }
func Vreinterpretq_s8_u8(a Uint8x16) Int8x16 { return reinterpret[int8, uint8, Int8x16](a) }
func Vreinterpretq_s8_u16(a Uint16x8) Int8x16 { return reinterpret[int8, uint16, Int8x16](a) }
func Vreinterpretq_s8_u32(a Uint32x4) Int8x16 { return reinterpret[int8, uint32, Int8x16](a) }
func Vreinterpretq_s8_u64(a Uint64x2) Int8x16 { return reinterpret[int8, uint64, Int8x16](a) }
func Vreinterpretq_s8_f32(a Float32x4) Int8x16 { return reinterpret[int8, float32, Int8x16](a) }
func Vreinterpretq_s8_f64(a Float64x2) Int8x16 { return reinterpret[int8, float64, Int8x16](a) }

func Vreinterpretq_s16_s8(a Int8x16) Int16x8 { return reinterpret[int16, int8, Int16x8](a) }
func Vreinterpretq_s16_s32(a Int32x4) Int16x8 { return reinterpret[int16, int32, Int16x8](a) }
func Vreinterpretq_s16_s64(a Int64x2) Int16x8 { return reinterpret[int16, int64, Int16x8](a) }
func Vreinterpretq_s16_u8(a Uint8x16) Int16x8 { return reinterpret[int16, uint8, Int16x8](a) }
func Vreinterpretq_s16_u16(a Uint16x8) Int16x8 { return reinterpret[int16, uint16, Int16x8](a) }
func Vreinterpretq_s16_u32(a Uint32x4) Int16x8 { return reinterpret[int16, uint32, Int16x8](a) }
func Vreinterpretq_s16_u64(a Uint64x2) Int16x8 { return reinterpret[int16, uint64, Int16x8](a) }
func Vreinterpretq_s16_f32(a Float32x4) Int16x8 { return reinterpret[int16, float32, Int16x8](a) }
func Vreinterpretq_s16_f64(a Float64x2) Int16x8 { return reinterpret[int16, float64, Int16x8](a) }

func Vreinterpretq_s32_s8(a Int8x16) Int32x4 { return reinterpret[int32, int8, Int32x4](a) }
func Vreinterpretq_s32_s16(a Int16x8) Int32x4 { return reinterpret[int32, int16, Int32x4](a) }
func Vreinterpretq_s32_s64(a Int64x2) Int32x4 { return reinterpret[int32, int64, Int32x4](a) }
func Vreinterpretq_s32_u8(a Uint8x16) Int32x4 { return reinterpret[int32, uint8, Int32x4](a) }
func Vreinterpretq_s32_u16(a Uint16x8) Int32x4 { return reinterpret[int32, uint16, Int32x4](a) }
func Vreinterpretq_s32_u32(a Uint32x4) Int32x4 { return reinterpret[int32, uint32, Int32x4](a) }
func Vreinterpretq_s32_u64(a Uint64x2) Int32x4 { return reinterpret[int32, uint64, Int32x4](a) }
func Vreinterpretq_s32_f32(a Float32x4) Int32x4 { return reinterpret[int32, float32, Int32x4](a) }
func Vreinterpretq_s32_f64(a Float64x2) Int32x4 { return reinterpret[int32, float64, Int32x4](a) }

func Vreinterpretq_s64_s8(a Int8x16) Int64x2 { return reinterpret[int64, int8, Int64x2](a) }
func Vreinterpretq_s64_s16(a Int16x8) Int64x2 { return reinterpret[int64, int16, Int64x2](a) }
func Vreinterpretq_s64_s32(a Int32x4) Int64x2 { return reinterpret[int64, int32, Int64x2](a) }
func Vreinterpretq_s64_u8(a Uint8x16) Int64x2 { return reinterpret[int64, uint8, Int64x2](a) }
func Vreinterpretq_s64_u16(a Uint16x8) Int64x2 { return reinterpret[int64, uint16, Int64x2](a) }
func Vreinterpretq_s64_u32(a Uint32x4) Int64x2 { return reinterpret[int64, uint32, Int64x2](a) }
func Vreinterpretq_s64_u64(a Uint64x2) Int64x2 { return reinterpret[int64, uint64, Int64x2](a) }
func Vreinterpretq_s64_f32(a Float32x4) Int64x2 { return reinterpret[int64, float32, Int64x2](a) }
func Vreinterpretq_s64_f64(a Float64x2) Int64x2 { return reinterpret[int64, float64, Int64x2](a) }

func Vreinterpretq_u8_s8(a Int8x16) Uint8x16 { return reinterpret[uint8, int8, Uint8x16](a) }
func Vreinterpretq_u8_s16(a Int16x8) Uint8x16 { return reinterpret[uint8, int16, Uint8x16](a) }
func Vreinterpretq_u8_s32(a Int32x4) Uint8x16 { return reinterpret[uint8, int32, Uint8x16](a) }
func Vreinterpretq_u8_s64(a Int64x2) Uint8x16 { return reinterpret[uint8, int64, Uint8x16](a) }
func Vreinterpretq_u8_u16(a Uint16x8) Uint8x16 { return reinterpret[uint8, uint16, Uint8x16](a) }
func Vreinterpretq_u8_u32(a Uint32x4) Uint8x16 { return reinterpret[uint8, uint32, Uint8x16](a) }
func Vreinterpretq_u8_u64(a Uint64x2) Uint8x16 { return reinterpret[uint8, uint64, Uint8x16](a) }
func Vreinterpretq_u8_f32(a Float32x4) Uint8x16 { return reinterpret[uint8, float32, Uint8x16](a) }
func Vreinterpretq_u8_f64(a Float64x2) Uint8x16 { return reinterpret[uint8, float64, Uint8x16](a) }

func Vreinterpretq_u16_s8(a Int8x16) Uint16x8 { return reinterpret[uint16, int8, Uint16x8](a) }
func Vreinterpretq_u16_s16(a Int16x8) Uint16x8 { return reinterpret[uint16, int16, Uint16x8](a) }
func Vreinterpretq_u16_s32(a Int32x4) Uint16x8 { return reinterpret[uint16, int32, Uint16x8](a) }
func Vreinterpretq_u16_s64(a Int64x2) Uint16x8 { return reinterpret[uint16, int64, Uint16x8](a) }
func Vreinterpretq_u16_u8(a Uint8x16) Uint16x8 { return reinterpret[uint16, uint8, Uint16x8](a) }
func Vreinterpretq_u16_u32(a Uint32x4) Uint16x8 { return reinterpret[uint16, uint32, Uint16x8](a) }
func Vreinterpretq_u16_u64(a Uint64x2) Uint16x8 { return reinterpret[uint16, uint64, Uint16x8](a) }

func Vreinterpretq_u16_f32(a Float32x4) Uint16x8 {
	return reinterpret[uint16, float32, Uint16x8](a)
}

func Vreinterpretq_u16_f64(a Float64x2) Uint16x8 {
	return reinterpret[uint16, float64, Uint16x8](a)
}

func Vreinterpretq_u32_s8(a Int8x16) Uint32x4 { return reinterpret[uint32, int8, Uint32x4](a) }
func Vreinterpretq_u32_s16(a Int16x8) Uint32x4 { return reinterpret[uint32, int16, Uint32x4](a) }
func Vreinterpretq_u32_s32(a Int32x4) Uint32x4 { return reinterpret[uint32, int32, Uint32x4](a) }
func Vreinterpretq_u32_s64(a Int64x2) Uint32x4 { return reinterpret[uint32, int64, Uint32x4](a) }
func Vreinterpretq_u32_u8(a Uint8x16) Uint32x4 { return reinterpret[uint32, uint8, Uint32x4](a) }
func Vreinterpretq_u32_u16(a Uint16x8) Uint32x4 { return reinterpret[uint32, uint16, Uint32x4](a) }
func Vreinterpretq_u32_u64(a Uint64x2) Uint32x4 { return reinterpret[uint32, uint64, Uint32x4](a) }

func Vreinterpretq_u32_f32(a Float32x4) Uint32x4 {
	return reinterpret[uint32, float32, Uint32x4](a)
}

func Vreinterpretq_u32_f64(a Float64x2) Uint32x4 {
	return reinterpret[uint32, float64, Uint32x4](a)
}

func Vreinterpretq_u64_s8(a Int8x16) Uint64x2 { return reinterpret[uint64, int8, Uint64x2](a) }
func Vreinterpretq_u64_s16(a Int16x8) Uint64x2 { return reinterpret[uint64, int16, Uint64x2](a) }
func Vreinterpretq_u64_s32(a Int32x4) Uint64x2 { return reinterpret[uint64, int32, Uint64x2](a) }
func Vreinterpretq_u64_s64(a Int64x2) Uint64x2 { return reinterpret[uint64, int64, Uint64x2](a) }
func Vreinterpretq_u64_u8(a Uint8x16) Uint64x2 { return reinterpret[uint64, uint8, Uint64x2](a) }
func Vreinterpretq_u64_u16(a Uint16x8) Uint64x2 { return reinterpret[uint64, uint16, Uint64x2](a) }
func Vreinterpretq_u64_u32(a Uint32x4) Uint64x2 { return reinterpret[uint64, uint32, Uint64x2](a) }

func Vreinterpretq_u64_f32(a Float32x4) Uint64x2 {
	return reinterpret[uint64, float32, Uint64x2](a)
}

func Vreinterpretq_u64_f64(a Float64x2) Uint64x2 {
	return reinterpret[uint64, float64, Uint64x2](a)
}

func Vreinterpretq_f32_s8(a Int8x16) Float32x4 { return reinterpret[float32, int8, Float32x4](a) }
func Vreinterpretq_f32_s16(a Int16x8) Float32x4 { return reinterpret[float32, int16, Float32x4](a) }
func Vreinterpretq_f32_s32(a Int32x4) Float32x4 { return reinterpret[float32, int32, Float32x4](a) }
func Vreinterpretq_f32_s64(a Int64x2) Float32x4 { return reinterpret[float32, int64, Float32x4](a) }
func Vreinterpretq_f32_u8(a Uint8x16) Float32x4 { return reinterpret[float32, uint8, Float32x4](a) }

func Vreinterpretq_f32_u16(a Uint16x8) Float32x4 {
	return reinterpret[float32, uint16, Float32x4](a)
}

func Vreinterpretq_f32_u32(a Uint32x4) Float32x4 {
	return reinterpret[float32, uint32, Float32x4](a)
}

func Vreinterpretq_f32_u64(a Uint64x2) Float32x4 {
	return reinterpret[float32, uint64, Float32x4](a)
}

func Vreinterpretq_f32_f64(a Float64x2) Float32x4 {
	return reinterpret[float32, float64, Float32x4](a)
}

func Vreinterpretq_f64_s8(a Int8x16) Float64x2 { return reinterpret[float64, int8, Float64x2](a) }
func Vreinterpretq_f64_s16(a Int16x8) Float64x2 { return reinterpret[float64, int16, Float64x2](a) }
func Vreinterpretq_f64_s32(a Int32x4) Float64x2 { return reinterpret[float64, int32, Float64x2](a) }
func Vreinterpretq_f64_s64(a Int64x2) Float64x2 { return reinterpret[float64, int64, Float64x2](a) }
func Vreinterpretq_f64_u8(a Uint8x16) Float64x2 { return reinterpret[float64, uint8, Float64x2](a) }

func Vreinterpretq_f64_u16(a Uint16x8) Float64x2 {
	return reinterpret[float64, uint16, Float64x2](a)
}

func Vreinterpretq_f64_u32(a Uint32x4) Float64x2 {
	return reinterpret[float64, uint32, Float64x2](a)
}

func Vreinterpretq_f64_u64(a Uint64x2) Float64x2 {
	return reinterpret[float64, uint64, Float64x2](a)
}

func Vreinterpretq_f64_f32(a Float32x4) Float64x2 {
	return reinterpret[float64, float32, Float64x2](a)
}
