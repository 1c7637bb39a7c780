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

// Vand_s8 is the bitwise AND of a and b.
func Vand_s8(a, b Int8x8) Int8x8 { return and[int8](a, b) }
func Vand_s16(a, b Int16x4) Int16x4 { return and[int16](a, b) }
func Vand_s32(a, b Int32x2) Int32x2 { return and[int32](a, b) }
func Vand_s64(a, b Int64x1) Int64x1 { return and[int64](a, b) }
func Vand_u8(a, b Uint8x8) Uint8x8 { return and[uint8](a, b) }
func Vand_u16(a, b Uint16x4) Uint16x4 { return and[uint16](a, b) }
func Vand_u32(a, b Uint32x2) Uint32x2 { return and[uint32](a, b) }
func Vand_u64(a, b Uint64x1) Uint64x1 { return and[uint64](a, b) }
func Vandq_s8(a, b Int8x16) Int8x16 { return and[int8](a, b) }
func Vandq_s16(a, b Int16x8) Int16x8 { return and[int16](a, b) }
func Vandq_s32(a, b Int32x4) Int32x4 { return and[int32](a, b) }
func Vandq_s64(a, b Int64x2) Int64x2 { return and[int64](a, b) }
func Vandq_u8(a, b Uint8x16) Uint8x16 { return and[uint8](a, b) }
func Vandq_u16(a, b Uint16x8) Uint16x8 { return and[uint16](a, b) }
func Vandq_u32(a, b Uint32x4) Uint32x4 { return and[uint32](a, b) }
func Vandq_u64(a, b Uint64x2) Uint64x2 { return and[uint64](a, b) }

// Vorr_s8 is the bitwise OR of a and b.
func Vorr_s8(a, b Int8x8) Int8x8 { return orr[int8](a, b) }
func Vorr_s16(a, b Int16x4) Int16x4 { return orr[int16](a, b) }
func Vorr_s32(a, b Int32x2) Int32x2 { return orr[int32](a, b) }
func Vorr_s64(a, b Int64x1) Int64x1 { return orr[int64](a, b) }
func Vorr_u8(a, b Uint8x8) Uint8x8 { return orr[uint8](a, b) }
func Vorr_u16(a, b Uint16x4) Uint16x4 { return orr[uint16](a, b) }
func Vorr_u32(a, b Uint32x2) Uint32x2 { return orr[uint32](a, b) }
func Vorr_u64(a, b Uint64x1) Uint64x1 { return orr[uint64](a, b) }
func Vorrq_s8(a, b Int8x16) Int8x16 { return orr[int8](a, b) }
func Vorrq_s16(a, b Int16x8) Int16x8 { return orr[int16](a, b) }
func Vorrq_s32(a, b Int32x4) Int32x4 { return orr[int32](a, b) }
func Vorrq_s64(a, b Int64x2) Int64x2 { return orr[int64](a, b) }
func Vorrq_u8(a, b Uint8x16) Uint8x16 { return orr[uint8](a, b) }
func Vorrq_u16(a, b Uint16x8) Uint16x8 { return orr[uint16](a, b) }
func Vorrq_u32(a, b Uint32x4) Uint32x4 { return orr[uint32](a, b) }
func Vorrq_u64(a, b Uint64x2) Uint64x2 { return orr[uint64](a, b) }

// Veor_s8 is the bitwise XOR of a and b.
func Veor_s8(a, b Int8x8) Int8x8 { return eor[int8](a, b) }
func Veor_s16(a, b Int16x4) Int16x4 { return eor[int16](a, b) }
func Veor_s32(a, b Int32x2) Int32x2 { return eor[int32](a, b) }
func Veor_s64(a, b Int64x1) Int64x1 { return eor[int64](a, b) }
func Veor_u8(a, b Uint8x8) Uint8x8 { return eor[uint8](a, b) }
func Veor_u16(a, b Uint16x4) Uint16x4 { return eor[uint16](a, b) }
func Veor_u32(a, b Uint32x2) Uint32x2 { return eor[uint32](a, b) }
func Veor_u64(a, b Uint64x1) Uint64x1 { return eor[uint64](a, b) }
func Veorq_s8(a, b Int8x16) Int8x16 { return eor[int8](a, b) }
func Veorq_s16(a, b Int16x8) Int16x8 { return eor[int16](a, b) }
func Veorq_s32(a, b Int32x4) Int32x4 { return eor[int32](a, b) }
func Veorq_s64(a, b Int64x2) Int64x2 { return eor[int64](a, b) }
func Veorq_u8(a, b Uint8x16) Uint8x16 { return eor[uint8](a, b) }
func Veorq_u16(a, b Uint16x8) Uint16x8 { return eor[uint16](a, b) }
func Veorq_u32(a, b Uint32x4) Uint32x4 { return eor[uint32](a, b) }
func Veorq_u64(a, b Uint64x2) Uint64x2 { return eor[uint64](a, b) }

// Vbic_s8 clears the bits of a that are set in b.
func Vbic_s8(a, b Int8x8) Int8x8 { return bic[int8](a, b) }
func Vbic_s16(a, b Int16x4) Int16x4 { return bic[int16](a, b) }
func Vbic_s32(a, b Int32x2) Int32x2 { return bic[int32](a, b) }
func Vbic_s64(a, b Int64x1) Int64x1 { return bic[int64](a, b) }
func Vbic_u8(a, b Uint8x8) Uint8x8 { return bic[uint8](a, b) }
func Vbic_u16(a, b Uint16x4) Uint16x4 { return bic[uint16](a, b) }
func Vbic_u32(a, b Uint32x2) Uint32x2 { return bic[uint32](a, b) }
func Vbic_u64(a, b Uint64x1) Uint64x1 { return bic[uint64](a, b) }
func Vbicq_s8(a, b Int8x16) Int8x16 { return bic[int8](a, b) }
func Vbicq_s16(a, b Int16x8) Int16x8 { return bic[int16](a, b) }
func Vbicq_s32(a, b Int32x4) Int32x4 { return bic[int32](a, b) }
func Vbicq_s64(a, b Int64x2) Int64x2 { return bic[int64](a, b) }
func Vbicq_u8(a, b Uint8x16) Uint8x16 { return bic[uint8](a, b) }
func Vbicq_u16(a, b Uint16x8) Uint16x8 { return bic[uint16](a, b) }
func Vbicq_u32(a, b Uint32x4) Uint32x4 { return bic[uint32](a, b) }
func Vbicq_u64(a, b Uint64x2) Uint64x2 { return bic[uint64](a, b) }

// Vorn_s8 is a OR NOT b.
func Vorn_s8(a, b Int8x8) Int8x8 { return orn[int8](a, b) }
func Vorn_s16(a, b Int16x4) Int16x4 { return orn[int16](a, b) }
func Vorn_s32(a, b Int32x2) Int32x2 { return orn[int32](a, b) }
func Vorn_s64(a, b Int64x1) Int64x1 { return orn[int64](a, b) }
func Vorn_u8(a, b Uint8x8) Uint8x8 { return orn[uint8](a, b) }
func Vorn_u16(a, b Uint16x4) Uint16x4 { return orn[uint16](a, b) }
func Vorn_u32(a, b Uint32x2) Uint32x2 { return orn[uint32](a, b) }
func Vorn_u64(a, b Uint64x1) Uint64x1 { return orn[uint64](a, b) }
func Vornq_s8(a, b Int8x16) Int8x16 { return orn[int8](a, b) }
func Vornq_s16(a, b Int16x8) Int16x8 { return orn[int16](a, b) }
func Vornq_s32(a, b Int32x4) Int32x4 { return orn[int32](a, b) }
func Vornq_s64(a, b Int64x2) Int64x2 { return orn[int64](a, b) }
func Vornq_u8(a, b Uint8x16) Uint8x16 { return orn[uint8](a, b) }
func Vornq_u16(a, b Uint16x8) Uint16x8 { return orn[uint16](a, b) }
func Vornq_u32(a, b Uint32x4) Uint32x4 { return orn[uint32](a, b) }
func Vornq_u64(a, b Uint64x2) Uint64x2 { return orn[uint64](a, b) }

// Vmvn_s8 inverts every bit.
func Vmvn_s8(a Int8x8) Int8x8 { return mvn[int8](a) }
func Vmvn_s16(a Int16x4) Int16x4 { return mvn[int16](a) }
func Vmvn_s32(a Int32x2) Int32x2 { return mvn[int32](a) }
func Vmvn_u8(a Uint8x8) Uint8x8 { return mvn[uint8](a) }
func Vmvn_u16(a Uint16x4) Uint16x4 { return mvn[uint16](a) }
func Vmvn_u32(a Uint32x2) Uint32x2 { return mvn[uint32](a) }
func Vmvnq_s8(a Int8x16) Int8x16 { return mvn[int8](a) }
func Vmvnq_s16(a Int16x8) Int16x8 { return mvn[int16](a) }
func Vmvnq_s32(a Int32x4) Int32x4 { return mvn[int32](a) }
func Vmvnq_u8(a Uint8x16) Uint8x16 { return mvn[uint8](a) }
func Vmvnq_u16(a Uint16x8) Uint16x8 { return mvn[uint16](a) }
func Vmvnq_u32(a Uint32x4) Uint32x4 { return mvn[uint32](a) }

// Vcnt_s8 counts the set bits of each byte.
func Vcnt_s8(a Int8x8) Int8x8 { return cnt[int8](a) }
func Vcnt_u8(a Uint8x8) Uint8x8 { return cnt[uint8](a) }
func Vcntq_s8(a Int8x16) Int8x16 { return cnt[int8](a) }
func Vcntq_u8(a Uint8x16) Uint8x16 { return cnt[uint8](a) }

// Vclz_s8 counts the leading zero bits of each lane.
func Vclz_s8(a Int8x8) Int8x8 { return clz[int8](a) }
func Vclz_s16(a Int16x4) Int16x4 { return clz[int16](a) }
func Vclz_s32(a Int32x2) Int32x2 { return clz[int32](a) }
func Vclz_u8(a Uint8x8) Uint8x8 { return clz[uint8](a) }
func Vclz_u16(a Uint16x4) Uint16x4 { return clz[uint16](a) }
func Vclz_u32(a Uint32x2) Uint32x2 { return clz[uint32](a) }
func Vclzq_s8(a Int8x16) Int8x16 { return clz[int8](a) }
func Vclzq_s16(a Int16x8) Int16x8 { return clz[int16](a) }
func Vclzq_s32(a Int32x4) Int32x4 { return clz[int32](a) }
func Vclzq_u8(a Uint8x16) Uint8x16 { return clz[uint8](a) }
func Vclzq_u16(a Uint16x8) Uint16x8 { return clz[uint16](a) }
func Vclzq_u32(a Uint32x4) Uint32x4 { return clz[uint32](a) }

// Vcls_s8 counts the bits below the sign bit that equal it.
func Vcls_s8(a Int8x8) Int8x8 { return cls[int8](a) }
func Vcls_s16(a Int16x4) Int16x4 { return cls[int16](a) }
func Vcls_s32(a Int32x2) Int32x2 { return cls[int32](a) }
func Vclsq_s8(a Int8x16) Int8x16 { return cls[int8](a) }
func Vclsq_s16(a Int16x8) Int16x8 { return cls[int16](a) }
func Vclsq_s32(a Int32x4) Int32x4 { return cls[int32](a) }

// Vtst_s8 sets the lanes where a AND b is non-zero.
func Vtst_s8(a, b Int8x8) Uint8x8 { return tst[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vtst_s16(a, b Int16x4) Uint16x4 { return tst[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vtst_s32(a, b Int32x2) Uint32x2 { return tst[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vtst_s64(a, b Int64x1) Uint64x1 { return tst[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vtst_u8(a, b Uint8x8) Uint8x8 { return tst[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vtst_u16(a, b Uint16x4) Uint16x4 { return tst[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vtst_u32(a, b Uint32x2) Uint32x2 { return tst[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vtst_u64(a, b Uint64x1) Uint64x1 { return tst[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vtstq_s8(a, b Int8x16) Uint8x16 { return tst[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vtstq_s16(a, b Int16x8) Uint16x8 { return tst[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vtstq_s32(a, b Int32x4) Uint32x4 { return tst[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vtstq_s64(a, b Int64x2) Uint64x2 { return tst[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vtstq_u8(a, b Uint8x16) Uint8x16 { return tst[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vtstq_u16(a, b Uint16x8) Uint16x8 { return tst[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vtstq_u32(a, b Uint32x4) Uint32x4 { return tst[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vtstq_u64(a, b Uint64x2) Uint64x2 { return tst[uint64, uint64, Uint64x2, Uint64x2](a, b) }

// Vceq_s8 sets the lanes where a == b.
func Vceq_s8(a, b Int8x8) Uint8x8 { return ceq[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vceq_s16(a, b Int16x4) Uint16x4 { return ceq[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vceq_s32(a, b Int32x2) Uint32x2 { return ceq[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vceq_s64(a, b Int64x1) Uint64x1 { return ceq[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vceq_u8(a, b Uint8x8) Uint8x8 { return ceq[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vceq_u16(a, b Uint16x4) Uint16x4 { return ceq[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vceq_u32(a, b Uint32x2) Uint32x2 { return ceq[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vceq_u64(a, b Uint64x1) Uint64x1 { return ceq[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vceqq_s8(a, b Int8x16) Uint8x16 { return ceq[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vceqq_s16(a, b Int16x8) Uint16x8 { return ceq[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vceqq_s32(a, b Int32x4) Uint32x4 { return ceq[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vceqq_s64(a, b Int64x2) Uint64x2 { return ceq[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vceqq_u8(a, b Uint8x16) Uint8x16 { return ceq[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vceqq_u16(a, b Uint16x8) Uint16x8 { return ceq[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vceqq_u32(a, b Uint32x4) Uint32x4 { return ceq[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vceqq_u64(a, b Uint64x2) Uint64x2 { return ceq[uint64, uint64, Uint64x2, Uint64x2](a, b) }

func Vceq_f32(a, b Float32x2) Uint32x2 { return fceq[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vceq_f64(a, b Float64x1) Uint64x1 { return fceq[float64, uint64, Float64x1, Uint64x1](a, b) }
func Vceqq_f32(a, b Float32x4) Uint32x4 { return fceq[float32, uint32, Float32x4, Uint32x4](a, b) }
func Vceqq_f64(a, b Float64x2) Uint64x2 { return fceq[float64, uint64, Float64x2, Uint64x2](a, b) }

// Vcge_s8 sets the lanes where a >= b.
func Vcge_s8(a, b Int8x8) Uint8x8 { return cge[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vcge_s16(a, b Int16x4) Uint16x4 { return cge[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vcge_s32(a, b Int32x2) Uint32x2 { return cge[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vcge_s64(a, b Int64x1) Uint64x1 { return cge[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vcge_u8(a, b Uint8x8) Uint8x8 { return cge[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vcge_u16(a, b Uint16x4) Uint16x4 { return cge[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vcge_u32(a, b Uint32x2) Uint32x2 { return cge[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vcge_u64(a, b Uint64x1) Uint64x1 { return cge[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vcgeq_s8(a, b Int8x16) Uint8x16 { return cge[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vcgeq_s16(a, b Int16x8) Uint16x8 { return cge[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vcgeq_s32(a, b Int32x4) Uint32x4 { return cge[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vcgeq_s64(a, b Int64x2) Uint64x2 { return cge[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vcgeq_u8(a, b Uint8x16) Uint8x16 { return cge[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vcgeq_u16(a, b Uint16x8) Uint16x8 { return cge[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vcgeq_u32(a, b Uint32x4) Uint32x4 { return cge[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vcgeq_u64(a, b Uint64x2) Uint64x2 { return cge[uint64, uint64, Uint64x2, Uint64x2](a, b) }

func Vcge_f32(a, b Float32x2) Uint32x2 { return fcge[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcge_f64(a, b Float64x1) Uint64x1 { return fcge[float64, uint64, Float64x1, Uint64x1](a, b) }
func Vcgeq_f32(a, b Float32x4) Uint32x4 { return fcge[float32, uint32, Float32x4, Uint32x4](a, b) }
func Vcgeq_f64(a, b Float64x2) Uint64x2 { return fcge[float64, uint64, Float64x2, Uint64x2](a, b) }

// Vcgt_s8 sets the lanes where a > b.
func Vcgt_s8(a, b Int8x8) Uint8x8 { return cgt[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vcgt_s16(a, b Int16x4) Uint16x4 { return cgt[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vcgt_s32(a, b Int32x2) Uint32x2 { return cgt[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vcgt_s64(a, b Int64x1) Uint64x1 { return cgt[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vcgt_u8(a, b Uint8x8) Uint8x8 { return cgt[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vcgt_u16(a, b Uint16x4) Uint16x4 { return cgt[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vcgt_u32(a, b Uint32x2) Uint32x2 { return cgt[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vcgt_u64(a, b Uint64x1) Uint64x1 { return cgt[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vcgtq_s8(a, b Int8x16) Uint8x16 { return cgt[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vcgtq_s16(a, b Int16x8) Uint16x8 { return cgt[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vcgtq_s32(a, b Int32x4) Uint32x4 { return cgt[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vcgtq_s64(a, b Int64x2) Uint64x2 { return cgt[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vcgtq_u8(a, b Uint8x16) Uint8x16 { return cgt[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vcgtq_u16(a, b Uint16x8) Uint16x8 { return cgt[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vcgtq_u32(a, b Uint32x4) Uint32x4 { return cgt[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vcgtq_u64(a, b Uint64x2) Uint64x2 { return cgt[uint64, uint64, Uint64x2, Uint64x2](a, b) }

func Vcgt_f32(a, b Float32x2) Uint32x2 { return fcgt[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcgt_f64(a, b Float64x1) Uint64x1 { return fcgt[float64, uint64, Float64x1, Uint64x1](a, b) }
func Vcgtq_f32(a, b Float32x4) Uint32x4 { return fcgt[float32, uint32, Float32x4, Uint32x4](a, b) }
func Vcgtq_f64(a, b Float64x2) Uint64x2 { return fcgt[float64, uint64, Float64x2, Uint64x2](a, b) }

// Vcle_s8 sets the lanes where a <= b.
func Vcle_s8(a, b Int8x8) Uint8x8 { return cle[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vcle_s16(a, b Int16x4) Uint16x4 { return cle[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vcle_s32(a, b Int32x2) Uint32x2 { return cle[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vcle_s64(a, b Int64x1) Uint64x1 { return cle[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vcle_u8(a, b Uint8x8) Uint8x8 { return cle[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vcle_u16(a, b Uint16x4) Uint16x4 { return cle[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vcle_u32(a, b Uint32x2) Uint32x2 { return cle[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vcle_u64(a, b Uint64x1) Uint64x1 { return cle[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vcleq_s8(a, b Int8x16) Uint8x16 { return cle[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vcleq_s16(a, b Int16x8) Uint16x8 { return cle[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vcleq_s32(a, b Int32x4) Uint32x4 { return cle[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vcleq_s64(a, b Int64x2) Uint64x2 { return cle[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vcleq_u8(a, b Uint8x16) Uint8x16 { return cle[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vcleq_u16(a, b Uint16x8) Uint16x8 { return cle[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vcleq_u32(a, b Uint32x4) Uint32x4 { return cle[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vcleq_u64(a, b Uint64x2) Uint64x2 { return cle[uint64, uint64, Uint64x2, Uint64x2](a, b) }

func Vcle_f32(a, b Float32x2) Uint32x2 { return fcle[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcle_f64(a, b Float64x1) Uint64x1 { return fcle[float64, uint64, Float64x1, Uint64x1](a, b) }
func Vcleq_f32(a, b Float32x4) Uint32x4 { return fcle[float32, uint32, Float32x4, Uint32x4](a, b) }
func Vcleq_f64(a, b Float64x2) Uint64x2 { return fcle[float64, uint64, Float64x2, Uint64x2](a, b) }

// Vclt_s8 sets the lanes where a < b.
func Vclt_s8(a, b Int8x8) Uint8x8 { return clt[int8, uint8, Int8x8, Uint8x8](a, b) }
func Vclt_s16(a, b Int16x4) Uint16x4 { return clt[int16, uint16, Int16x4, Uint16x4](a, b) }
func Vclt_s32(a, b Int32x2) Uint32x2 { return clt[int32, uint32, Int32x2, Uint32x2](a, b) }
func Vclt_s64(a, b Int64x1) Uint64x1 { return clt[int64, uint64, Int64x1, Uint64x1](a, b) }
func Vclt_u8(a, b Uint8x8) Uint8x8 { return clt[uint8, uint8, Uint8x8, Uint8x8](a, b) }
func Vclt_u16(a, b Uint16x4) Uint16x4 { return clt[uint16, uint16, Uint16x4, Uint16x4](a, b) }
func Vclt_u32(a, b Uint32x2) Uint32x2 { return clt[uint32, uint32, Uint32x2, Uint32x2](a, b) }
func Vclt_u64(a, b Uint64x1) Uint64x1 { return clt[uint64, uint64, Uint64x1, Uint64x1](a, b) }
func Vcltq_s8(a, b Int8x16) Uint8x16 { return clt[int8, uint8, Int8x16, Uint8x16](a, b) }
func Vcltq_s16(a, b Int16x8) Uint16x8 { return clt[int16, uint16, Int16x8, Uint16x8](a, b) }
func Vcltq_s32(a, b Int32x4) Uint32x4 { return clt[int32, uint32, Int32x4, Uint32x4](a, b) }
func Vcltq_s64(a, b Int64x2) Uint64x2 { return clt[int64, uint64, Int64x2, Uint64x2](a, b) }
func Vcltq_u8(a, b Uint8x16) Uint8x16 { return clt[uint8, uint8, Uint8x16, Uint8x16](a, b) }
func Vcltq_u16(a, b Uint16x8) Uint16x8 { return clt[uint16, uint16, Uint16x8, Uint16x8](a, b) }
func Vcltq_u32(a, b Uint32x4) Uint32x4 { return clt[uint32, uint32, Uint32x4, Uint32x4](a, b) }
func Vcltq_u64(a, b Uint64x2) Uint64x2 { return clt[uint64, uint64, Uint64x2, Uint64x2](a, b) }

func Vclt_f32(a, b Float32x2) Uint32x2 { return fclt[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vclt_f64(a, b Float64x1) Uint64x1 { return fclt[float64, uint64, Float64x1, Uint64x1](a, b) }
func Vcltq_f32(a, b Float32x4) Uint32x4 { return fclt[float32, uint32, Float32x4, Uint32x4](a, b) }
func Vcltq_f64(a, b Float64x2) Uint64x2 { return fclt[float64, uint64, Float64x2, Uint64x2](a, b) }

// Vcage_f32 sets the lanes where |a| >= |b|.
func Vcage_f32(a, b Float32x2) Uint32x2 { return fcage[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcage_f64(a, b Float64x1) Uint64x1 { return fcage[float64, uint64, Float64x1, Uint64x1](a, b) }

func Vcageq_f32(a, b Float32x4) Uint32x4 {
	return fcage[float32, uint32, Float32x4, Uint32x4](a, b)
}

func Vcageq_f64(a, b Float64x2) Uint64x2 {
	return fcage[float64, uint64, Float64x2, Uint64x2](a, b)
}

// Vcagt_f32 sets the lanes where |a| > |b|.
func Vcagt_f32(a, b Float32x2) Uint32x2 { return fcagt[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcagt_f64(a, b Float64x1) Uint64x1 { return fcagt[float64, uint64, Float64x1, Uint64x1](a, b) }

func Vcagtq_f32(a, b Float32x4) Uint32x4 {
	return fcagt[float32, uint32, Float32x4, Uint32x4](a, b)
}

func Vcagtq_f64(a, b Float64x2) Uint64x2 {
	return fcagt[float64, uint64, Float64x2, Uint64x2](a, b)
}

// Vcale_f32 sets the lanes where |a| <= |b|.
func Vcale_f32(a, b Float32x2) Uint32x2 { return fcale[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcale_f64(a, b Float64x1) Uint64x1 { return fcale[float64, uint64, Float64x1, Uint64x1](a, b) }

func Vcaleq_f32(a, b Float32x4) Uint32x4 {
	return fcale[float32, uint32, Float32x4, Uint32x4](a, b)
}

func Vcaleq_f64(a, b Float64x2) Uint64x2 {
	return fcale[float64, uint64, Float64x2, Uint64x2](a, b)
}

// Vcalt_f32 sets the lanes where |a| < |b|.
func Vcalt_f32(a, b Float32x2) Uint32x2 { return fcalt[float32, uint32, Float32x2, Uint32x2](a, b) }
func Vcalt_f64(a, b Float64x1) Uint64x1 { return fcalt[float64, uint64, Float64x1, Uint64x1](a, b) }

func Vcaltq_f32(a, b Float32x4) Uint32x4 {
	return fcalt[float32, uint32, Float32x4, Uint32x4](a, b)
}

func Vcaltq_f64(a, b Float64x2) Uint64x2 {
	return fcalt[float64, uint64, Float64x2, Uint64x2](a, b)
}
