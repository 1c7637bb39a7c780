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

// Vshl_s8 shifts each lane of a by the signed low byte of the matching lane
// of b: left when positive, right when negative.
func Vshl_s8(a Int8x8, b Int8x8) Int8x8 { return shl[int8, int8, Int8x8](a, b) }
func Vshl_s16(a Int16x4, b Int16x4) Int16x4 { return shl[int16, int16, Int16x4](a, b) }
func Vshl_s32(a Int32x2, b Int32x2) Int32x2 { return shl[int32, int32, Int32x2](a, b) }
func Vshl_s64(a Int64x1, b Int64x1) Int64x1 { return shl[int64, int64, Int64x1](a, b) }
func Vshl_u8(a Uint8x8, b Int8x8) Uint8x8 { return shl[uint8, int8, Uint8x8](a, b) }
func Vshl_u16(a Uint16x4, b Int16x4) Uint16x4 { return shl[uint16, int16, Uint16x4](a, b) }
func Vshl_u32(a Uint32x2, b Int32x2) Uint32x2 { return shl[uint32, int32, Uint32x2](a, b) }
func Vshl_u64(a Uint64x1, b Int64x1) Uint64x1 { return shl[uint64, int64, Uint64x1](a, b) }
func Vshlq_s8(a Int8x16, b Int8x16) Int8x16 { return shl[int8, int8, Int8x16](a, b) }
func Vshlq_s16(a Int16x8, b Int16x8) Int16x8 { return shl[int16, int16, Int16x8](a, b) }
func Vshlq_s32(a Int32x4, b Int32x4) Int32x4 { return shl[int32, int32, Int32x4](a, b) }
func Vshlq_s64(a Int64x2, b Int64x2) Int64x2 { return shl[int64, int64, Int64x2](a, b) }
func Vshlq_u8(a Uint8x16, b Int8x16) Uint8x16 { return shl[uint8, int8, Uint8x16](a, b) }
func Vshlq_u16(a Uint16x8, b Int16x8) Uint16x8 { return shl[uint16, int16, Uint16x8](a, b) }
func Vshlq_u32(a Uint32x4, b Int32x4) Uint32x4 { return shl[uint32, int32, Uint32x4](a, b) }
func Vshlq_u64(a Uint64x2, b Int64x2) Uint64x2 { return shl[uint64, int64, Uint64x2](a, b) }

// Vrshl_s8 is Vshl with rounding for right shifts.
func Vrshl_s8(a Int8x8, b Int8x8) Int8x8 { return rshl[int8, int8, Int8x8](a, b) }
func Vrshl_s16(a Int16x4, b Int16x4) Int16x4 { return rshl[int16, int16, Int16x4](a, b) }
func Vrshl_s32(a Int32x2, b Int32x2) Int32x2 { return rshl[int32, int32, Int32x2](a, b) }
func Vrshl_s64(a Int64x1, b Int64x1) Int64x1 { return rshl[int64, int64, Int64x1](a, b) }
func Vrshl_u8(a Uint8x8, b Int8x8) Uint8x8 { return rshl[uint8, int8, Uint8x8](a, b) }
func Vrshl_u16(a Uint16x4, b Int16x4) Uint16x4 { return rshl[uint16, int16, Uint16x4](a, b) }
func Vrshl_u32(a Uint32x2, b Int32x2) Uint32x2 { return rshl[uint32, int32, Uint32x2](a, b) }
func Vrshl_u64(a Uint64x1, b Int64x1) Uint64x1 { return rshl[uint64, int64, Uint64x1](a, b) }
func Vrshlq_s8(a Int8x16, b Int8x16) Int8x16 { return rshl[int8, int8, Int8x16](a, b) }
func Vrshlq_s16(a Int16x8, b Int16x8) Int16x8 { return rshl[int16, int16, Int16x8](a, b) }
func Vrshlq_s32(a Int32x4, b Int32x4) Int32x4 { return rshl[int32, int32, Int32x4](a, b) }
func Vrshlq_s64(a Int64x2, b Int64x2) Int64x2 { return rshl[int64, int64, Int64x2](a, b) }
func Vrshlq_u8(a Uint8x16, b Int8x16) Uint8x16 { return rshl[uint8, int8, Uint8x16](a, b) }
func Vrshlq_u16(a Uint16x8, b Int16x8) Uint16x8 { return rshl[uint16, int16, Uint16x8](a, b) }
func Vrshlq_u32(a Uint32x4, b Int32x4) Uint32x4 { return rshl[uint32, int32, Uint32x4](a, b) }
func Vrshlq_u64(a Uint64x2, b Int64x2) Uint64x2 { return rshl[uint64, int64, Uint64x2](a, b) }

// Vqshl_s8 is Vshl with saturation for left shifts.
func Vqshl_s8(a Int8x8, b Int8x8) Int8x8 { return qshl[int8, int8, Int8x8](a, b) }
func Vqshl_s16(a Int16x4, b Int16x4) Int16x4 { return qshl[int16, int16, Int16x4](a, b) }
func Vqshl_s32(a Int32x2, b Int32x2) Int32x2 { return qshl[int32, int32, Int32x2](a, b) }
func Vqshl_s64(a Int64x1, b Int64x1) Int64x1 { return qshl[int64, int64, Int64x1](a, b) }
func Vqshl_u8(a Uint8x8, b Int8x8) Uint8x8 { return qshl[uint8, int8, Uint8x8](a, b) }
func Vqshl_u16(a Uint16x4, b Int16x4) Uint16x4 { return qshl[uint16, int16, Uint16x4](a, b) }
func Vqshl_u32(a Uint32x2, b Int32x2) Uint32x2 { return qshl[uint32, int32, Uint32x2](a, b) }
func Vqshl_u64(a Uint64x1, b Int64x1) Uint64x1 { return qshl[uint64, int64, Uint64x1](a, b) }
func Vqshlq_s8(a Int8x16, b Int8x16) Int8x16 { return qshl[int8, int8, Int8x16](a, b) }
func Vqshlq_s16(a Int16x8, b Int16x8) Int16x8 { return qshl[int16, int16, Int16x8](a, b) }
func Vqshlq_s32(a Int32x4, b Int32x4) Int32x4 { return qshl[int32, int32, Int32x4](a, b) }
func Vqshlq_s64(a Int64x2, b Int64x2) Int64x2 { return qshl[int64, int64, Int64x2](a, b) }
func Vqshlq_u8(a Uint8x16, b Int8x16) Uint8x16 { return qshl[uint8, int8, Uint8x16](a, b) }
func Vqshlq_u16(a Uint16x8, b Int16x8) Uint16x8 { return qshl[uint16, int16, Uint16x8](a, b) }
func Vqshlq_u32(a Uint32x4, b Int32x4) Uint32x4 { return qshl[uint32, int32, Uint32x4](a, b) }
func Vqshlq_u64(a Uint64x2, b Int64x2) Uint64x2 { return qshl[uint64, int64, Uint64x2](a, b) }

// Vqrshl_s8 is Vshl with rounding for right shifts and saturation for left
// shifts.
func Vqrshl_s8(a Int8x8, b Int8x8) Int8x8 { return qrshl[int8, int8, Int8x8](a, b) }
func Vqrshl_s16(a Int16x4, b Int16x4) Int16x4 { return qrshl[int16, int16, Int16x4](a, b) }
func Vqrshl_s32(a Int32x2, b Int32x2) Int32x2 { return qrshl[int32, int32, Int32x2](a, b) }
func Vqrshl_s64(a Int64x1, b Int64x1) Int64x1 { return qrshl[int64, int64, Int64x1](a, b) }
func Vqrshl_u8(a Uint8x8, b Int8x8) Uint8x8 { return qrshl[uint8, int8, Uint8x8](a, b) }
func Vqrshl_u16(a Uint16x4, b Int16x4) Uint16x4 { return qrshl[uint16, int16, Uint16x4](a, b) }
func Vqrshl_u32(a Uint32x2, b Int32x2) Uint32x2 { return qrshl[uint32, int32, Uint32x2](a, b) }
func Vqrshl_u64(a Uint64x1, b Int64x1) Uint64x1 { return qrshl[uint64, int64, Uint64x1](a, b) }
func Vqrshlq_s8(a Int8x16, b Int8x16) Int8x16 { return qrshl[int8, int8, Int8x16](a, b) }
func Vqrshlq_s16(a Int16x8, b Int16x8) Int16x8 { return qrshl[int16, int16, Int16x8](a, b) }
func Vqrshlq_s32(a Int32x4, b Int32x4) Int32x4 { return qrshl[int32, int32, Int32x4](a, b) }
func Vqrshlq_s64(a Int64x2, b Int64x2) Int64x2 { return qrshl[int64, int64, Int64x2](a, b) }
func Vqrshlq_u8(a Uint8x16, b Int8x16) Uint8x16 { return qrshl[uint8, int8, Uint8x16](a, b) }
func Vqrshlq_u16(a Uint16x8, b Int16x8) Uint16x8 { return qrshl[uint16, int16, Uint16x8](a, b) }
func Vqrshlq_u32(a Uint32x4, b Int32x4) Uint32x4 { return qrshl[uint32, int32, Uint32x4](a, b) }
func Vqrshlq_u64(a Uint64x2, b Int64x2) Uint64x2 { return qrshl[uint64, int64, Uint64x2](a, b) }

// Vshl_n_s8 shifts each lane left by n, 0 <= n < esize.
func Vshl_n_s8(a Int8x8, n int) Int8x8 { return shlN[int8](a, n) }
func Vshl_n_s16(a Int16x4, n int) Int16x4 { return shlN[int16](a, n) }
func Vshl_n_s32(a Int32x2, n int) Int32x2 { return shlN[int32](a, n) }
func Vshl_n_s64(a Int64x1, n int) Int64x1 { return shlN[int64](a, n) }
func Vshl_n_u8(a Uint8x8, n int) Uint8x8 { return shlN[uint8](a, n) }
func Vshl_n_u16(a Uint16x4, n int) Uint16x4 { return shlN[uint16](a, n) }
func Vshl_n_u32(a Uint32x2, n int) Uint32x2 { return shlN[uint32](a, n) }
func Vshl_n_u64(a Uint64x1, n int) Uint64x1 { return shlN[uint64](a, n) }
func Vshlq_n_s8(a Int8x16, n int) Int8x16 { return shlN[int8](a, n) }
func Vshlq_n_s16(a Int16x8, n int) Int16x8 { return shlN[int16](a, n) }
func Vshlq_n_s32(a Int32x4, n int) Int32x4 { return shlN[int32](a, n) }
func Vshlq_n_s64(a Int64x2, n int) Int64x2 { return shlN[int64](a, n) }
func Vshlq_n_u8(a Uint8x16, n int) Uint8x16 { return shlN[uint8](a, n) }
func Vshlq_n_u16(a Uint16x8, n int) Uint16x8 { return shlN[uint16](a, n) }
func Vshlq_n_u32(a Uint32x4, n int) Uint32x4 { return shlN[uint32](a, n) }
func Vshlq_n_u64(a Uint64x2, n int) Uint64x2 { return shlN[uint64](a, n) }

// Vshr_n_s8 shifts each lane right by n, 1 <= n <= esize: arithmetic for
// signed lanes, logical for unsigned.
func Vshr_n_s8(a Int8x8, n int) Int8x8 { return shrN[int8](a, n) }
func Vshr_n_s16(a Int16x4, n int) Int16x4 { return shrN[int16](a, n) }
func Vshr_n_s32(a Int32x2, n int) Int32x2 { return shrN[int32](a, n) }
func Vshr_n_s64(a Int64x1, n int) Int64x1 { return shrN[int64](a, n) }
func Vshr_n_u8(a Uint8x8, n int) Uint8x8 { return shrN[uint8](a, n) }
func Vshr_n_u16(a Uint16x4, n int) Uint16x4 { return shrN[uint16](a, n) }
func Vshr_n_u32(a Uint32x2, n int) Uint32x2 { return shrN[uint32](a, n) }
func Vshr_n_u64(a Uint64x1, n int) Uint64x1 { return shrN[uint64](a, n) }
func Vshrq_n_s8(a Int8x16, n int) Int8x16 { return shrN[int8](a, n) }
func Vshrq_n_s16(a Int16x8, n int) Int16x8 { return shrN[int16](a, n) }
func Vshrq_n_s32(a Int32x4, n int) Int32x4 { return shrN[int32](a, n) }
func Vshrq_n_s64(a Int64x2, n int) Int64x2 { return shrN[int64](a, n) }
func Vshrq_n_u8(a Uint8x16, n int) Uint8x16 { return shrN[uint8](a, n) }
func Vshrq_n_u16(a Uint16x8, n int) Uint16x8 { return shrN[uint16](a, n) }
func Vshrq_n_u32(a Uint32x4, n int) Uint32x4 { return shrN[uint32](a, n) }
func Vshrq_n_u64(a Uint64x2, n int) Uint64x2 { return shrN[uint64](a, n) }

// Vrshr_n_s8 shifts each lane right by n, 1 <= n <= esize, rounding to
// nearest with ties up.
func Vrshr_n_s8(a Int8x8, n int) Int8x8 { return rshrN[int8](a, n) }
func Vrshr_n_s16(a Int16x4, n int) Int16x4 { return rshrN[int16](a, n) }
func Vrshr_n_s32(a Int32x2, n int) Int32x2 { return rshrN[int32](a, n) }
func Vrshr_n_s64(a Int64x1, n int) Int64x1 { return rshrN[int64](a, n) }
func Vrshr_n_u8(a Uint8x8, n int) Uint8x8 { return rshrN[uint8](a, n) }
func Vrshr_n_u16(a Uint16x4, n int) Uint16x4 { return rshrN[uint16](a, n) }
func Vrshr_n_u32(a Uint32x2, n int) Uint32x2 { return rshrN[uint32](a, n) }
func Vrshr_n_u64(a Uint64x1, n int) Uint64x1 { return rshrN[uint64](a, n) }
func Vrshrq_n_s8(a Int8x16, n int) Int8x16 { return rshrN[int8](a, n) }
func Vrshrq_n_s16(a Int16x8, n int) Int16x8 { return rshrN[int16](a, n) }
func Vrshrq_n_s32(a Int32x4, n int) Int32x4 { return rshrN[int32](a, n) }
func Vrshrq_n_s64(a Int64x2, n int) Int64x2 { return rshrN[int64](a, n) }
func Vrshrq_n_u8(a Uint8x16, n int) Uint8x16 { return rshrN[uint8](a, n) }
func Vrshrq_n_u16(a Uint16x8, n int) Uint16x8 { return rshrN[uint16](a, n) }
func Vrshrq_n_u32(a Uint32x4, n int) Uint32x4 { return rshrN[uint32](a, n) }
func Vrshrq_n_u64(a Uint64x2, n int) Uint64x2 { return rshrN[uint64](a, n) }

// Vqshl_n_s8 shifts each lane left by n, saturating.
func Vqshl_n_s8(a Int8x8, n int) Int8x8 { return qshlN[int8](a, n) }
func Vqshl_n_s16(a Int16x4, n int) Int16x4 { return qshlN[int16](a, n) }
func Vqshl_n_s32(a Int32x2, n int) Int32x2 { return qshlN[int32](a, n) }
func Vqshl_n_s64(a Int64x1, n int) Int64x1 { return qshlN[int64](a, n) }
func Vqshl_n_u8(a Uint8x8, n int) Uint8x8 { return qshlN[uint8](a, n) }
func Vqshl_n_u16(a Uint16x4, n int) Uint16x4 { return qshlN[uint16](a, n) }
func Vqshl_n_u32(a Uint32x2, n int) Uint32x2 { return qshlN[uint32](a, n) }
func Vqshl_n_u64(a Uint64x1, n int) Uint64x1 { return qshlN[uint64](a, n) }
func Vqshlq_n_s8(a Int8x16, n int) Int8x16 { return qshlN[int8](a, n) }
func Vqshlq_n_s16(a Int16x8, n int) Int16x8 { return qshlN[int16](a, n) }
func Vqshlq_n_s32(a Int32x4, n int) Int32x4 { return qshlN[int32](a, n) }
func Vqshlq_n_s64(a Int64x2, n int) Int64x2 { return qshlN[int64](a, n) }
func Vqshlq_n_u8(a Uint8x16, n int) Uint8x16 { return qshlN[uint8](a, n) }
func Vqshlq_n_u16(a Uint16x8, n int) Uint16x8 { return qshlN[uint16](a, n) }
func Vqshlq_n_u32(a Uint32x4, n int) Uint32x4 { return qshlN[uint32](a, n) }
func Vqshlq_n_u64(a Uint64x2, n int) Uint64x2 { return qshlN[uint64](a, n) }

// Vsra_n_s8 adds a shifted right by n (as Vshr_n) to acc.
func Vsra_n_s8(acc, a Int8x8, n int) Int8x8 { return sraN[int8](acc, a, n) }
func Vsra_n_s16(acc, a Int16x4, n int) Int16x4 { return sraN[int16](acc, a, n) }
func Vsra_n_s32(acc, a Int32x2, n int) Int32x2 { return sraN[int32](acc, a, n) }
func Vsra_n_s64(acc, a Int64x1, n int) Int64x1 { return sraN[int64](acc, a, n) }
func Vsra_n_u8(acc, a Uint8x8, n int) Uint8x8 { return sraN[uint8](acc, a, n) }
func Vsra_n_u16(acc, a Uint16x4, n int) Uint16x4 { return sraN[uint16](acc, a, n) }
func Vsra_n_u32(acc, a Uint32x2, n int) Uint32x2 { return sraN[uint32](acc, a, n) }
func Vsra_n_u64(acc, a Uint64x1, n int) Uint64x1 { return sraN[uint64](acc, a, n) }
func Vsraq_n_s8(acc, a Int8x16, n int) Int8x16 { return sraN[int8](acc, a, n) }
func Vsraq_n_s16(acc, a Int16x8, n int) Int16x8 { return sraN[int16](acc, a, n) }
func Vsraq_n_s32(acc, a Int32x4, n int) Int32x4 { return sraN[int32](acc, a, n) }
func Vsraq_n_s64(acc, a Int64x2, n int) Int64x2 { return sraN[int64](acc, a, n) }
func Vsraq_n_u8(acc, a Uint8x16, n int) Uint8x16 { return sraN[uint8](acc, a, n) }
func Vsraq_n_u16(acc, a Uint16x8, n int) Uint16x8 { return sraN[uint16](acc, a, n) }
func Vsraq_n_u32(acc, a Uint32x4, n int) Uint32x4 { return sraN[uint32](acc, a, n) }
func Vsraq_n_u64(acc, a Uint64x2, n int) Uint64x2 { return sraN[uint64](acc, a, n) }

// Vrsra_n_s8 adds a shifted right by n with rounding (as Vrshr_n) to acc.
func Vrsra_n_s8(acc, a Int8x8, n int) Int8x8 { return rsraN[int8](acc, a, n) }
func Vrsra_n_s16(acc, a Int16x4, n int) Int16x4 { return rsraN[int16](acc, a, n) }
func Vrsra_n_s32(acc, a Int32x2, n int) Int32x2 { return rsraN[int32](acc, a, n) }
func Vrsra_n_s64(acc, a Int64x1, n int) Int64x1 { return rsraN[int64](acc, a, n) }
func Vrsra_n_u8(acc, a Uint8x8, n int) Uint8x8 { return rsraN[uint8](acc, a, n) }
func Vrsra_n_u16(acc, a Uint16x4, n int) Uint16x4 { return rsraN[uint16](acc, a, n) }
func Vrsra_n_u32(acc, a Uint32x2, n int) Uint32x2 { return rsraN[uint32](acc, a, n) }
func Vrsra_n_u64(acc, a Uint64x1, n int) Uint64x1 { return rsraN[uint64](acc, a, n) }
func Vrsraq_n_s8(acc, a Int8x16, n int) Int8x16 { return rsraN[int8](acc, a, n) }
func Vrsraq_n_s16(acc, a Int16x8, n int) Int16x8 { return rsraN[int16](acc, a, n) }
func Vrsraq_n_s32(acc, a Int32x4, n int) Int32x4 { return rsraN[int32](acc, a, n) }
func Vrsraq_n_s64(acc, a Int64x2, n int) Int64x2 { return rsraN[int64](acc, a, n) }
func Vrsraq_n_u8(acc, a Uint8x16, n int) Uint8x16 { return rsraN[uint8](acc, a, n) }
func Vrsraq_n_u16(acc, a Uint16x8, n int) Uint16x8 { return rsraN[uint16](acc, a, n) }
func Vrsraq_n_u32(acc, a Uint32x4, n int) Uint32x4 { return rsraN[uint32](acc, a, n) }
func Vrsraq_n_u64(acc, a Uint64x2, n int) Uint64x2 { return rsraN[uint64](acc, a, n) }

// Vqshlu_n_s8 shifts signed lanes left by n into the unsigned range:
// negative lanes become 0, overflow saturates.
func Vqshlu_n_s8(a Int8x8, n int) Uint8x8 { return qshluN[int8, uint8, Int8x8, Uint8x8](a, n) }

func Vqshlu_n_s16(a Int16x4, n int) Uint16x4 {
	return qshluN[int16, uint16, Int16x4, Uint16x4](a, n)
}

func Vqshlu_n_s32(a Int32x2, n int) Uint32x2 {
	return qshluN[int32, uint32, Int32x2, Uint32x2](a, n)
}

func Vqshlu_n_s64(a Int64x1, n int) Uint64x1 {
	return qshluN[int64, uint64, Int64x1, Uint64x1](a, n)
}

func Vqshluq_n_s8(a Int8x16, n int) Uint8x16 { return qshluN[int8, uint8, Int8x16, Uint8x16](a, n) }

func Vqshluq_n_s16(a Int16x8, n int) Uint16x8 {
	return qshluN[int16, uint16, Int16x8, Uint16x8](a, n)
}

func Vqshluq_n_s32(a Int32x4, n int) Uint32x4 {
	return qshluN[int32, uint32, Int32x4, Uint32x4](a, n)
}

func Vqshluq_n_s64(a Int64x2, n int) Uint64x2 {
	return qshluN[int64, uint64, Int64x2, Uint64x2](a, n)
}

// Vshll_n_s8 widens each lane and shifts it left by n, 0 <= n <= esize.
func Vshll_n_s8(a Int8x8, n int) Int16x8 { return shllN[int16, int8, Int16x8](a, n) }
func Vshll_n_s16(a Int16x4, n int) Int32x4 { return shllN[int32, int16, Int32x4](a, n) }
func Vshll_n_s32(a Int32x2, n int) Int64x2 { return shllN[int64, int32, Int64x2](a, n) }
func Vshll_n_u8(a Uint8x8, n int) Uint16x8 { return shllN[uint16, uint8, Uint16x8](a, n) }
func Vshll_n_u16(a Uint16x4, n int) Uint32x4 { return shllN[uint32, uint16, Uint32x4](a, n) }
func Vshll_n_u32(a Uint32x2, n int) Uint64x2 { return shllN[uint64, uint32, Uint64x2](a, n) }
func Vshll_high_n_s8(a Int8x16, n int) Int16x8 { return Vshll_n_s8(Vget_high_s8(a), n) }
func Vshll_high_n_s16(a Int16x8, n int) Int32x4 { return Vshll_n_s16(Vget_high_s16(a), n) }
func Vshll_high_n_s32(a Int32x4, n int) Int64x2 { return Vshll_n_s32(Vget_high_s32(a), n) }
func Vshll_high_n_u8(a Uint8x16, n int) Uint16x8 { return Vshll_n_u8(Vget_high_u8(a), n) }
func Vshll_high_n_u16(a Uint16x8, n int) Uint32x4 { return Vshll_n_u16(Vget_high_u16(a), n) }
func Vshll_high_n_u32(a Uint32x4, n int) Uint64x2 { return Vshll_n_u32(Vget_high_u32(a), n) }

// Vshrn_n_s16 shifts each lane right by n and keeps the low half.
func Vshrn_n_s16(a Int16x8, n int) Int8x8 { return shrnN[int8, int16, Int8x8](a, n) }
func Vshrn_n_s32(a Int32x4, n int) Int16x4 { return shrnN[int16, int32, Int16x4](a, n) }
func Vshrn_n_s64(a Int64x2, n int) Int32x2 { return shrnN[int32, int64, Int32x2](a, n) }
func Vshrn_n_u16(a Uint16x8, n int) Uint8x8 { return shrnN[uint8, uint16, Uint8x8](a, n) }
func Vshrn_n_u32(a Uint32x4, n int) Uint16x4 { return shrnN[uint16, uint32, Uint16x4](a, n) }
func Vshrn_n_u64(a Uint64x2, n int) Uint32x2 { return shrnN[uint32, uint64, Uint32x2](a, n) }

func Vshrn_high_n_s16(r Int8x8, a Int16x8, n int) Int8x16 {
	return Vcombine_s8(r, Vshrn_n_s16(a, n))
}

func Vshrn_high_n_s32(r Int16x4, a Int32x4, n int) Int16x8 {
	return Vcombine_s16(r, Vshrn_n_s32(a, n))
}

func Vshrn_high_n_s64(r Int32x2, a Int64x2, n int) Int32x4 {
	return Vcombine_s32(r, Vshrn_n_s64(a, n))
}

func Vshrn_high_n_u16(r Uint8x8, a Uint16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vshrn_n_u16(a, n))
}

func Vshrn_high_n_u32(r Uint16x4, a Uint32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vshrn_n_u32(a, n))
}

func Vshrn_high_n_u64(r Uint32x2, a Uint64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vshrn_n_u64(a, n))
}

// Vrshrn_n_s16 shifts each lane right by n with rounding and keeps the low
// half.
func Vrshrn_n_s16(a Int16x8, n int) Int8x8 { return rshrnN[int8, int16, Int8x8](a, n) }
func Vrshrn_n_s32(a Int32x4, n int) Int16x4 { return rshrnN[int16, int32, Int16x4](a, n) }
func Vrshrn_n_s64(a Int64x2, n int) Int32x2 { return rshrnN[int32, int64, Int32x2](a, n) }
func Vrshrn_n_u16(a Uint16x8, n int) Uint8x8 { return rshrnN[uint8, uint16, Uint8x8](a, n) }
func Vrshrn_n_u32(a Uint32x4, n int) Uint16x4 { return rshrnN[uint16, uint32, Uint16x4](a, n) }
func Vrshrn_n_u64(a Uint64x2, n int) Uint32x2 { return rshrnN[uint32, uint64, Uint32x2](a, n) }

func Vrshrn_high_n_s16(r Int8x8, a Int16x8, n int) Int8x16 {
	return Vcombine_s8(r, Vrshrn_n_s16(a, n))
}

func Vrshrn_high_n_s32(r Int16x4, a Int32x4, n int) Int16x8 {
	return Vcombine_s16(r, Vrshrn_n_s32(a, n))
}

func Vrshrn_high_n_s64(r Int32x2, a Int64x2, n int) Int32x4 {
	return Vcombine_s32(r, Vrshrn_n_s64(a, n))
}

func Vrshrn_high_n_u16(r Uint8x8, a Uint16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vrshrn_n_u16(a, n))
}

func Vrshrn_high_n_u32(r Uint16x4, a Uint32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vrshrn_n_u32(a, n))
}

func Vrshrn_high_n_u64(r Uint32x2, a Uint64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vrshrn_n_u64(a, n))
}

// Vqshrn_n_s16 shifts each lane right by n and saturates to the half-width
// type.
func Vqshrn_n_s16(a Int16x8, n int) Int8x8 { return qshrnN[int8, int16, Int8x8](a, n) }
func Vqshrn_n_s32(a Int32x4, n int) Int16x4 { return qshrnN[int16, int32, Int16x4](a, n) }
func Vqshrn_n_s64(a Int64x2, n int) Int32x2 { return qshrnN[int32, int64, Int32x2](a, n) }
func Vqshrn_n_u16(a Uint16x8, n int) Uint8x8 { return qshrnN[uint8, uint16, Uint8x8](a, n) }
func Vqshrn_n_u32(a Uint32x4, n int) Uint16x4 { return qshrnN[uint16, uint32, Uint16x4](a, n) }
func Vqshrn_n_u64(a Uint64x2, n int) Uint32x2 { return qshrnN[uint32, uint64, Uint32x2](a, n) }

func Vqshrn_high_n_s16(r Int8x8, a Int16x8, n int) Int8x16 {
	return Vcombine_s8(r, Vqshrn_n_s16(a, n))
}

func Vqshrn_high_n_s32(r Int16x4, a Int32x4, n int) Int16x8 {
	return Vcombine_s16(r, Vqshrn_n_s32(a, n))
}

func Vqshrn_high_n_s64(r Int32x2, a Int64x2, n int) Int32x4 {
	return Vcombine_s32(r, Vqshrn_n_s64(a, n))
}

func Vqshrn_high_n_u16(r Uint8x8, a Uint16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vqshrn_n_u16(a, n))
}

func Vqshrn_high_n_u32(r Uint16x4, a Uint32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vqshrn_n_u32(a, n))
}

func Vqshrn_high_n_u64(r Uint32x2, a Uint64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vqshrn_n_u64(a, n))
}

// Vqrshrn_n_s16 shifts each lane right by n with rounding and saturates to
// the half-width type.
func Vqrshrn_n_s16(a Int16x8, n int) Int8x8 { return qrshrnN[int8, int16, Int8x8](a, n) }
func Vqrshrn_n_s32(a Int32x4, n int) Int16x4 { return qrshrnN[int16, int32, Int16x4](a, n) }
func Vqrshrn_n_s64(a Int64x2, n int) Int32x2 { return qrshrnN[int32, int64, Int32x2](a, n) }
func Vqrshrn_n_u16(a Uint16x8, n int) Uint8x8 { return qrshrnN[uint8, uint16, Uint8x8](a, n) }
func Vqrshrn_n_u32(a Uint32x4, n int) Uint16x4 { return qrshrnN[uint16, uint32, Uint16x4](a, n) }
func Vqrshrn_n_u64(a Uint64x2, n int) Uint32x2 { return qrshrnN[uint32, uint64, Uint32x2](a, n) }

func Vqrshrn_high_n_s16(r Int8x8, a Int16x8, n int) Int8x16 {
	return Vcombine_s8(r, Vqrshrn_n_s16(a, n))
}

func Vqrshrn_high_n_s32(r Int16x4, a Int32x4, n int) Int16x8 {
	return Vcombine_s16(r, Vqrshrn_n_s32(a, n))
}

func Vqrshrn_high_n_s64(r Int32x2, a Int64x2, n int) Int32x4 {
	return Vcombine_s32(r, Vqrshrn_n_s64(a, n))
}

func Vqrshrn_high_n_u16(r Uint8x8, a Uint16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vqrshrn_n_u16(a, n))
}

func Vqrshrn_high_n_u32(r Uint16x4, a Uint32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vqrshrn_n_u32(a, n))
}

func Vqrshrn_high_n_u64(r Uint32x2, a Uint64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vqrshrn_n_u64(a, n))
}

// Vqshrun_n_s16 shifts signed lanes right by n and saturates to the unsigned
// half-width type.
func Vqshrun_n_s16(a Int16x8, n int) Uint8x8 { return qshrunN[uint8, int16, uint16, Uint8x8](a, n) }

func Vqshrun_n_s32(a Int32x4, n int) Uint16x4 {
	return qshrunN[uint16, int32, uint32, Uint16x4](a, n)
}

func Vqshrun_n_s64(a Int64x2, n int) Uint32x2 {
	return qshrunN[uint32, int64, uint64, Uint32x2](a, n)
}

func Vqshrun_high_n_s16(r Uint8x8, a Int16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vqshrun_n_s16(a, n))
}

func Vqshrun_high_n_s32(r Uint16x4, a Int32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vqshrun_n_s32(a, n))
}

func Vqshrun_high_n_s64(r Uint32x2, a Int64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vqshrun_n_s64(a, n))
}

// Vqrshrun_n_s16 shifts signed lanes right by n with rounding and saturates
// to the unsigned half-width type.
func Vqrshrun_n_s16(a Int16x8, n int) Uint8x8 {
	return qrshrunN[uint8, int16, uint16, Uint8x8](a, n)
}

func Vqrshrun_n_s32(a Int32x4, n int) Uint16x4 {
	return qrshrunN[uint16, int32, uint32, Uint16x4](a, n)
}

func Vqrshrun_n_s64(a Int64x2, n int) Uint32x2 {
	return qrshrunN[uint32, int64, uint64, Uint32x2](a, n)
}

func Vqrshrun_high_n_s16(r Uint8x8, a Int16x8, n int) Uint8x16 {
	return Vcombine_u8(r, Vqrshrun_n_s16(a, n))
}

func Vqrshrun_high_n_s32(r Uint16x4, a Int32x4, n int) Uint16x8 {
	return Vcombine_u16(r, Vqrshrun_n_s32(a, n))
}

func Vqrshrun_high_n_s64(r Uint32x2, a Int64x2, n int) Uint32x4 {
	return Vcombine_u32(r, Vqrshrun_n_s64(a, n))
}

// Vsli_n_s8 shifts b left by n and inserts it into a, keeping the low n bits
// of a.
func Vsli_n_s8(a, b Int8x8, n int) Int8x8 { return sliN[int8](a, b, n) }
func Vsli_n_s16(a, b Int16x4, n int) Int16x4 { return sliN[int16](a, b, n) }
func Vsli_n_s32(a, b Int32x2, n int) Int32x2 { return sliN[int32](a, b, n) }
func Vsli_n_s64(a, b Int64x1, n int) Int64x1 { return sliN[int64](a, b, n) }
func Vsli_n_u8(a, b Uint8x8, n int) Uint8x8 { return sliN[uint8](a, b, n) }
func Vsli_n_u16(a, b Uint16x4, n int) Uint16x4 { return sliN[uint16](a, b, n) }
func Vsli_n_u32(a, b Uint32x2, n int) Uint32x2 { return sliN[uint32](a, b, n) }
func Vsli_n_u64(a, b Uint64x1, n int) Uint64x1 { return sliN[uint64](a, b, n) }
func Vsliq_n_s8(a, b Int8x16, n int) Int8x16 { return sliN[int8](a, b, n) }
func Vsliq_n_s16(a, b Int16x8, n int) Int16x8 { return sliN[int16](a, b, n) }
func Vsliq_n_s32(a, b Int32x4, n int) Int32x4 { return sliN[int32](a, b, n) }
func Vsliq_n_s64(a, b Int64x2, n int) Int64x2 { return sliN[int64](a, b, n) }
func Vsliq_n_u8(a, b Uint8x16, n int) Uint8x16 { return sliN[uint8](a, b, n) }
func Vsliq_n_u16(a, b Uint16x8, n int) Uint16x8 { return sliN[uint16](a, b, n) }
func Vsliq_n_u32(a, b Uint32x4, n int) Uint32x4 { return sliN[uint32](a, b, n) }
func Vsliq_n_u64(a, b Uint64x2, n int) Uint64x2 { return sliN[uint64](a, b, n) }

// Vsri_n_s8 shifts b right by n and inserts it into a, keeping the high n
// bits of a.
func Vsri_n_s8(a, b Int8x8, n int) Int8x8 { return sriN[int8](a, b, n) }
func Vsri_n_s16(a, b Int16x4, n int) Int16x4 { return sriN[int16](a, b, n) }
func Vsri_n_s32(a, b Int32x2, n int) Int32x2 { return sriN[int32](a, b, n) }
func Vsri_n_s64(a, b Int64x1, n int) Int64x1 { return sriN[int64](a, b, n) }
func Vsri_n_u8(a, b Uint8x8, n int) Uint8x8 { return sriN[uint8](a, b, n) }
func Vsri_n_u16(a, b Uint16x4, n int) Uint16x4 { return sriN[uint16](a, b, n) }
func Vsri_n_u32(a, b Uint32x2, n int) Uint32x2 { return sriN[uint32](a, b, n) }
func Vsri_n_u64(a, b Uint64x1, n int) Uint64x1 { return sriN[uint64](a, b, n) }
func Vsriq_n_s8(a, b Int8x16, n int) Int8x16 { return sriN[int8](a, b, n) }
func Vsriq_n_s16(a, b Int16x8, n int) Int16x8 { return sriN[int16](a, b, n) }
func Vsriq_n_s32(a, b Int32x4, n int) Int32x4 { return sriN[int32](a, b, n) }
func Vsriq_n_s64(a, b Int64x2, n int) Int64x2 { return sriN[int64](a, b, n) }
func Vsriq_n_u8(a, b Uint8x16, n int) Uint8x16 { return sriN[uint8](a, b, n) }
func Vsriq_n_u16(a, b Uint16x8, n int) Uint16x8 { return sriN[uint16](a, b, n) }
func Vsriq_n_u32(a, b Uint32x4, n int) Uint32x4 { return sriN[uint32](a, b, n) }
func Vsriq_n_u64(a, b Uint64x2, n int) Uint64x2 { return sriN[uint64](a, b, n) }
