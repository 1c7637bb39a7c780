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

import "github.com/ajroetker/neon2rvv/rvv"

// Vmovl_s8 sign or zero extends each lane to the double-width type.
func Vmovl_s8(a Int8x8) Int16x8 { return movl[int16, int8, Int16x8](a) }
func Vmovl_s16(a Int16x4) Int32x4 { return movl[int32, int16, Int32x4](a) }
func Vmovl_s32(a Int32x2) Int64x2 { return movl[int64, int32, Int64x2](a) }
func Vmovl_u8(a Uint8x8) Uint16x8 { return movl[uint16, uint8, Uint16x8](a) }
func Vmovl_u16(a Uint16x4) Uint32x4 { return movl[uint32, uint16, Uint32x4](a) }
func Vmovl_u32(a Uint32x2) Uint64x2 { return movl[uint64, uint32, Uint64x2](a) }
func Vmovl_high_s8(a Int8x16) Int16x8 { return Vmovl_s8(Vget_high_s8(a)) }
func Vmovl_high_s16(a Int16x8) Int32x4 { return Vmovl_s16(Vget_high_s16(a)) }
func Vmovl_high_s32(a Int32x4) Int64x2 { return Vmovl_s32(Vget_high_s32(a)) }
func Vmovl_high_u8(a Uint8x16) Uint16x8 { return Vmovl_u8(Vget_high_u8(a)) }
func Vmovl_high_u16(a Uint16x8) Uint32x4 { return Vmovl_u16(Vget_high_u16(a)) }
func Vmovl_high_u32(a Uint32x4) Uint64x2 { return Vmovl_u32(Vget_high_u32(a)) }

// Vmovn_s16 keeps the low half of each lane.
func Vmovn_s16(a Int16x8) Int8x8 { return movn[int8, int16, Int8x8](a) }
func Vmovn_s32(a Int32x4) Int16x4 { return movn[int16, int32, Int16x4](a) }
func Vmovn_s64(a Int64x2) Int32x2 { return movn[int32, int64, Int32x2](a) }
func Vmovn_u16(a Uint16x8) Uint8x8 { return movn[uint8, uint16, Uint8x8](a) }
func Vmovn_u32(a Uint32x4) Uint16x4 { return movn[uint16, uint32, Uint16x4](a) }
func Vmovn_u64(a Uint64x2) Uint32x2 { return movn[uint32, uint64, Uint32x2](a) }
func Vmovn_high_s16(r Int8x8, a Int16x8) Int8x16 { return Vcombine_s8(r, Vmovn_s16(a)) }
func Vmovn_high_s32(r Int16x4, a Int32x4) Int16x8 { return Vcombine_s16(r, Vmovn_s32(a)) }
func Vmovn_high_s64(r Int32x2, a Int64x2) Int32x4 { return Vcombine_s32(r, Vmovn_s64(a)) }
func Vmovn_high_u16(r Uint8x8, a Uint16x8) Uint8x16 { return Vcombine_u8(r, Vmovn_u16(a)) }
func Vmovn_high_u32(r Uint16x4, a Uint32x4) Uint16x8 { return Vcombine_u16(r, Vmovn_u32(a)) }
func Vmovn_high_u64(r Uint32x2, a Uint64x2) Uint32x4 { return Vcombine_u32(r, Vmovn_u64(a)) }

// Vqmovn_s16 saturates each lane to the half-width type.
func Vqmovn_s16(a Int16x8) Int8x8 { return qmovn[int8, int16, Int8x8](a) }
func Vqmovn_s32(a Int32x4) Int16x4 { return qmovn[int16, int32, Int16x4](a) }
func Vqmovn_s64(a Int64x2) Int32x2 { return qmovn[int32, int64, Int32x2](a) }
func Vqmovn_u16(a Uint16x8) Uint8x8 { return qmovn[uint8, uint16, Uint8x8](a) }
func Vqmovn_u32(a Uint32x4) Uint16x4 { return qmovn[uint16, uint32, Uint16x4](a) }
func Vqmovn_u64(a Uint64x2) Uint32x2 { return qmovn[uint32, uint64, Uint32x2](a) }
func Vqmovn_high_s16(r Int8x8, a Int16x8) Int8x16 { return Vcombine_s8(r, Vqmovn_s16(a)) }
func Vqmovn_high_s32(r Int16x4, a Int32x4) Int16x8 { return Vcombine_s16(r, Vqmovn_s32(a)) }
func Vqmovn_high_s64(r Int32x2, a Int64x2) Int32x4 { return Vcombine_s32(r, Vqmovn_s64(a)) }
func Vqmovn_high_u16(r Uint8x8, a Uint16x8) Uint8x16 { return Vcombine_u8(r, Vqmovn_u16(a)) }
func Vqmovn_high_u32(r Uint16x4, a Uint32x4) Uint16x8 { return Vcombine_u16(r, Vqmovn_u32(a)) }
func Vqmovn_high_u64(r Uint32x2, a Uint64x2) Uint32x4 { return Vcombine_u32(r, Vqmovn_u64(a)) }

// Vqmovun_s16 saturates signed lanes to the unsigned half-width type.
func Vqmovun_s16(a Int16x8) Uint8x8 { return qmovun[uint8, int16, uint16, Uint8x8](a) }
func Vqmovun_s32(a Int32x4) Uint16x4 { return qmovun[uint16, int32, uint32, Uint16x4](a) }
func Vqmovun_s64(a Int64x2) Uint32x2 { return qmovun[uint32, int64, uint64, Uint32x2](a) }
func Vqmovun_high_s16(r Uint8x8, a Int16x8) Uint8x16 { return Vcombine_u8(r, Vqmovun_s16(a)) }
func Vqmovun_high_s32(r Uint16x4, a Int32x4) Uint16x8 { return Vcombine_u16(r, Vqmovun_s32(a)) }
func Vqmovun_high_s64(r Uint32x2, a Int64x2) Uint32x4 { return Vcombine_u32(r, Vqmovun_s64(a)) }

// Vcvt_f32_s32 converts each integer lane to floating point, rounding to
// nearest even.
func Vcvt_f32_s32(a Int32x2) Float32x2 { return cvtFromInt[float32, int32, Float32x2](a) }
func Vcvtq_f32_s32(a Int32x4) Float32x4 { return cvtFromInt[float32, int32, Float32x4](a) }
func Vcvt_f32_u32(a Uint32x2) Float32x2 { return cvtFromInt[float32, uint32, Float32x2](a) }
func Vcvtq_f32_u32(a Uint32x4) Float32x4 { return cvtFromInt[float32, uint32, Float32x4](a) }
func Vcvt_f64_s64(a Int64x1) Float64x1 { return cvtFromInt[float64, int64, Float64x1](a) }
func Vcvtq_f64_s64(a Int64x2) Float64x2 { return cvtFromInt[float64, int64, Float64x2](a) }
func Vcvt_f64_u64(a Uint64x1) Float64x1 { return cvtFromInt[float64, uint64, Float64x1](a) }
func Vcvtq_f64_u64(a Uint64x2) Float64x2 { return cvtFromInt[float64, uint64, Float64x2](a) }

// Vcvt_s32_f32 converts each lane to an integer, rounding toward zero.
// Out-of-range values saturate and NaN becomes 0.
func Vcvt_s32_f32(a Float32x2) Int32x2 { return cvtToInt[int32, float32, Int32x2](a, rvv.FrmRTZ) }
func Vcvtq_s32_f32(a Float32x4) Int32x4 { return cvtToInt[int32, float32, Int32x4](a, rvv.FrmRTZ) }

func Vcvt_u32_f32(a Float32x2) Uint32x2 {
	return cvtToInt[uint32, float32, Uint32x2](a, rvv.FrmRTZ)
}

func Vcvtq_u32_f32(a Float32x4) Uint32x4 {
	return cvtToInt[uint32, float32, Uint32x4](a, rvv.FrmRTZ)
}

func Vcvt_s64_f64(a Float64x1) Int64x1 { return cvtToInt[int64, float64, Int64x1](a, rvv.FrmRTZ) }
func Vcvtq_s64_f64(a Float64x2) Int64x2 { return cvtToInt[int64, float64, Int64x2](a, rvv.FrmRTZ) }

func Vcvt_u64_f64(a Float64x1) Uint64x1 {
	return cvtToInt[uint64, float64, Uint64x1](a, rvv.FrmRTZ)
}

func Vcvtq_u64_f64(a Float64x2) Uint64x2 {
	return cvtToInt[uint64, float64, Uint64x2](a, rvv.FrmRTZ)
}

// Vcvta_s32_f32 converts rounding to nearest with ties away from zero.
func Vcvta_s32_f32(a Float32x2) Int32x2 { return cvtToInt[int32, float32, Int32x2](a, rvv.FrmRMM) }
func Vcvtaq_s32_f32(a Float32x4) Int32x4 { return cvtToInt[int32, float32, Int32x4](a, rvv.FrmRMM) }

func Vcvta_u32_f32(a Float32x2) Uint32x2 {
	return cvtToInt[uint32, float32, Uint32x2](a, rvv.FrmRMM)
}

func Vcvtaq_u32_f32(a Float32x4) Uint32x4 {
	return cvtToInt[uint32, float32, Uint32x4](a, rvv.FrmRMM)
}

func Vcvta_s64_f64(a Float64x1) Int64x1 { return cvtToInt[int64, float64, Int64x1](a, rvv.FrmRMM) }
func Vcvtaq_s64_f64(a Float64x2) Int64x2 { return cvtToInt[int64, float64, Int64x2](a, rvv.FrmRMM) }

func Vcvta_u64_f64(a Float64x1) Uint64x1 {
	return cvtToInt[uint64, float64, Uint64x1](a, rvv.FrmRMM)
}

func Vcvtaq_u64_f64(a Float64x2) Uint64x2 {
	return cvtToInt[uint64, float64, Uint64x2](a, rvv.FrmRMM)
}

// Vcvtn_s32_f32 converts rounding to nearest with ties to even.
func Vcvtn_s32_f32(a Float32x2) Int32x2 { return cvtToInt[int32, float32, Int32x2](a, rvv.FrmRNE) }
func Vcvtnq_s32_f32(a Float32x4) Int32x4 { return cvtToInt[int32, float32, Int32x4](a, rvv.FrmRNE) }

func Vcvtn_u32_f32(a Float32x2) Uint32x2 {
	return cvtToInt[uint32, float32, Uint32x2](a, rvv.FrmRNE)
}

func Vcvtnq_u32_f32(a Float32x4) Uint32x4 {
	return cvtToInt[uint32, float32, Uint32x4](a, rvv.FrmRNE)
}

func Vcvtn_s64_f64(a Float64x1) Int64x1 { return cvtToInt[int64, float64, Int64x1](a, rvv.FrmRNE) }
func Vcvtnq_s64_f64(a Float64x2) Int64x2 { return cvtToInt[int64, float64, Int64x2](a, rvv.FrmRNE) }

func Vcvtn_u64_f64(a Float64x1) Uint64x1 {
	return cvtToInt[uint64, float64, Uint64x1](a, rvv.FrmRNE)
}

func Vcvtnq_u64_f64(a Float64x2) Uint64x2 {
	return cvtToInt[uint64, float64, Uint64x2](a, rvv.FrmRNE)
}

// Vcvtp_s32_f32 converts rounding toward +Inf.
func Vcvtp_s32_f32(a Float32x2) Int32x2 { return cvtToInt[int32, float32, Int32x2](a, rvv.FrmRUP) }
func Vcvtpq_s32_f32(a Float32x4) Int32x4 { return cvtToInt[int32, float32, Int32x4](a, rvv.FrmRUP) }

func Vcvtp_u32_f32(a Float32x2) Uint32x2 {
	return cvtToInt[uint32, float32, Uint32x2](a, rvv.FrmRUP)
}

func Vcvtpq_u32_f32(a Float32x4) Uint32x4 {
	return cvtToInt[uint32, float32, Uint32x4](a, rvv.FrmRUP)
}

func Vcvtp_s64_f64(a Float64x1) Int64x1 { return cvtToInt[int64, float64, Int64x1](a, rvv.FrmRUP) }
func Vcvtpq_s64_f64(a Float64x2) Int64x2 { return cvtToInt[int64, float64, Int64x2](a, rvv.FrmRUP) }

func Vcvtp_u64_f64(a Float64x1) Uint64x1 {
	return cvtToInt[uint64, float64, Uint64x1](a, rvv.FrmRUP)
}

func Vcvtpq_u64_f64(a Float64x2) Uint64x2 {
	return cvtToInt[uint64, float64, Uint64x2](a, rvv.FrmRUP)
}

// Vcvtm_s32_f32 converts rounding toward -Inf.
func Vcvtm_s32_f32(a Float32x2) Int32x2 { return cvtToInt[int32, float32, Int32x2](a, rvv.FrmRDN) }
func Vcvtmq_s32_f32(a Float32x4) Int32x4 { return cvtToInt[int32, float32, Int32x4](a, rvv.FrmRDN) }

func Vcvtm_u32_f32(a Float32x2) Uint32x2 {
	return cvtToInt[uint32, float32, Uint32x2](a, rvv.FrmRDN)
}

func Vcvtmq_u32_f32(a Float32x4) Uint32x4 {
	return cvtToInt[uint32, float32, Uint32x4](a, rvv.FrmRDN)
}

func Vcvtm_s64_f64(a Float64x1) Int64x1 { return cvtToInt[int64, float64, Int64x1](a, rvv.FrmRDN) }
func Vcvtmq_s64_f64(a Float64x2) Int64x2 { return cvtToInt[int64, float64, Int64x2](a, rvv.FrmRDN) }

func Vcvtm_u64_f64(a Float64x1) Uint64x1 {
	return cvtToInt[uint64, float64, Uint64x1](a, rvv.FrmRDN)
}

func Vcvtmq_u64_f64(a Float64x2) Uint64x2 {
	return cvtToInt[uint64, float64, Uint64x2](a, rvv.FrmRDN)
}

// Vcvt_n_f32_s32 converts fixed-point lanes with n fraction bits to floating
// point.
func Vcvt_n_f32_s32(a Int32x2, n int) Float32x2 {
	return cvtNFromInt[float32, int32, Float32x2](a, n)
}

// Vcvt_n_s32_f32 converts to fixed point with n fraction bits, rounding
// toward zero and saturating.
func Vcvt_n_s32_f32(a Float32x2, n int) Int32x2 { return cvtNToInt[int32, float32, Int32x2](a, n) }

func Vcvtq_n_f32_s32(a Int32x4, n int) Float32x4 {
	return cvtNFromInt[float32, int32, Float32x4](a, n)
}

func Vcvtq_n_s32_f32(a Float32x4, n int) Int32x4 { return cvtNToInt[int32, float32, Int32x4](a, n) }

func Vcvt_n_f32_u32(a Uint32x2, n int) Float32x2 {
	return cvtNFromInt[float32, uint32, Float32x2](a, n)
}

func Vcvt_n_u32_f32(a Float32x2, n int) Uint32x2 {
	return cvtNToInt[uint32, float32, Uint32x2](a, n)
}

func Vcvtq_n_f32_u32(a Uint32x4, n int) Float32x4 {
	return cvtNFromInt[float32, uint32, Float32x4](a, n)
}

func Vcvtq_n_u32_f32(a Float32x4, n int) Uint32x4 {
	return cvtNToInt[uint32, float32, Uint32x4](a, n)
}

func Vcvt_n_f64_s64(a Int64x1, n int) Float64x1 {
	return cvtNFromInt[float64, int64, Float64x1](a, n)
}

func Vcvt_n_s64_f64(a Float64x1, n int) Int64x1 { return cvtNToInt[int64, float64, Int64x1](a, n) }

func Vcvtq_n_f64_s64(a Int64x2, n int) Float64x2 {
	return cvtNFromInt[float64, int64, Float64x2](a, n)
}

func Vcvtq_n_s64_f64(a Float64x2, n int) Int64x2 { return cvtNToInt[int64, float64, Int64x2](a, n) }

func Vcvt_n_f64_u64(a Uint64x1, n int) Float64x1 {
	return cvtNFromInt[float64, uint64, Float64x1](a, n)
}

func Vcvt_n_u64_f64(a Float64x1, n int) Uint64x1 {
	return cvtNToInt[uint64, float64, Uint64x1](a, n)
}

func Vcvtq_n_f64_u64(a Uint64x2, n int) Float64x2 {
	return cvtNFromInt[float64, uint64, Float64x2](a, n)
}

func Vcvtq_n_u64_f64(a Float64x2, n int) Uint64x2 {
	return cvtNToInt[uint64, float64, Uint64x2](a, n)
}

// Vcvt_f64_f32 widens each lane exactly. NaNs keep their payload and become
// quiet.
func Vcvt_f64_f32(a Float32x2) Float64x2 { return cvtF64[Float64x2](a) }
func Vcvt_high_f64_f32(a Float32x4) Float64x2 { return cvtF64[Float64x2](Vget_high_f32(a)) }

// Vcvt_f32_f64 narrows each lane, rounding to nearest even.
func Vcvt_f32_f64(a Float64x2) Float32x2 { return cvtF32[Float32x2](a) }

func Vcvt_high_f32_f64(r Float32x2, a Float64x2) Float32x4 {
	return Vcombine_f32(r, Vcvt_f32_f64(a))
}

// Vcvtx_f32_f64 narrows each lane, rounding to odd.
func Vcvtx_f32_f64(a Float64x2) Float32x2 { return cvtxF32[Float32x2](a) }

func Vcvtx_high_f32_f64(r Float32x2, a Float64x2) Float32x4 {
	return Vcombine_f32(r, Vcvtx_f32_f64(a))
}

// Vrnd_f32 rounds each lane to an integral value toward zero.
func Vrnd_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRTZ) }
func Vrnd_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRTZ) }
func Vrndq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRTZ) }
func Vrndq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRTZ) }

// Vrnda_f32 rounds to the nearest integral value with ties away from zero.
func Vrnda_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRMM) }
func Vrnda_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRMM) }
func Vrndaq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRMM) }
func Vrndaq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRMM) }

// Vrndn_f32 rounds to the nearest integral value with ties to even.
func Vrndn_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndn_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRNE) }
func Vrndnq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndnq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRNE) }

// Vrndp_f32 rounds toward +Inf.
func Vrndp_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRUP) }
func Vrndp_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRUP) }
func Vrndpq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRUP) }
func Vrndpq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRUP) }

// Vrndm_f32 rounds toward -Inf.
func Vrndm_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRDN) }
func Vrndm_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRDN) }
func Vrndmq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRDN) }
func Vrndmq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRDN) }

// Vrndx_f32 rounds using the current rounding mode, which is always to
// nearest even here.
func Vrndx_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndx_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRNE) }
func Vrndxq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndxq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRNE) }

// Vrndi_f32 rounds using the current rounding mode, which is always to
// nearest even here.
func Vrndi_f32(a Float32x2) Float32x2 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndi_f64(a Float64x1) Float64x1 { return rnd[float64, int64](a, rvv.FrmRNE) }
func Vrndiq_f32(a Float32x4) Float32x4 { return rnd[float32, int32](a, rvv.FrmRNE) }
func Vrndiq_f64(a Float64x2) Float64x2 { return rnd[float64, int64](a, rvv.FrmRNE) }

// Vrecpe_f32 returns an estimate of 1/a accurate to about 8 bits.
func Vrecpe_f32(a Float32x2) Float32x2 { return recpe[float32](a) }
func Vrecpe_f64(a Float64x1) Float64x1 { return recpe[float64](a) }
func Vrecpeq_f32(a Float32x4) Float32x4 { return recpe[float32](a) }
func Vrecpeq_f64(a Float64x2) Float64x2 { return recpe[float64](a) }

// Vrecpe_u32 is the unsigned fixed-point estimate.
func Vrecpe_u32(a Uint32x2) Uint32x2 { return urecpe(a) }
func Vrecpeq_u32(a Uint32x4) Uint32x4 { return urecpe(a) }

// Vrsqrte_f32 returns an estimate of 1/sqrt(a) accurate to about 8 bits.
func Vrsqrte_f32(a Float32x2) Float32x2 { return rsqrte[float32](a) }
func Vrsqrte_f64(a Float64x1) Float64x1 { return rsqrte[float64](a) }
func Vrsqrteq_f32(a Float32x4) Float32x4 { return rsqrte[float32](a) }
func Vrsqrteq_f64(a Float64x2) Float64x2 { return rsqrte[float64](a) }

// Vrsqrte_u32 is the unsigned fixed-point estimate.
func Vrsqrte_u32(a Uint32x2) Uint32x2 { return ursqrte(a) }
func Vrsqrteq_u32(a Uint32x4) Uint32x4 { return ursqrte(a) }

// Vrecps_f32 returns 2 - a*b, the Newton-Raphson step for 1/x.
func Vrecps_f32(a, b Float32x2) Float32x2 { return recps[float32](a, b) }
func Vrecps_f64(a, b Float64x1) Float64x1 { return recps[float64](a, b) }
func Vrecpsq_f32(a, b Float32x4) Float32x4 { return recps[float32](a, b) }
func Vrecpsq_f64(a, b Float64x2) Float64x2 { return recps[float64](a, b) }

// Vrsqrts_f32 returns (3 - a*b) / 2, the Newton-Raphson step for 1/sqrt(x).
func Vrsqrts_f32(a, b Float32x2) Float32x2 { return rsqrts[float32](a, b) }
func Vrsqrts_f64(a, b Float64x1) Float64x1 { return rsqrts[float64](a, b) }
func Vrsqrtsq_f32(a, b Float32x4) Float32x4 { return rsqrts[float32](a, b) }
func Vrsqrtsq_f64(a, b Float64x2) Float64x2 { return rsqrts[float64](a, b) }
