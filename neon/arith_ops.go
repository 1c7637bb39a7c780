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

// Vadd_s8 adds corresponding lanes, wrapping on overflow.
func Vadd_s8(a, b Int8x8) Int8x8 { return add[int8](a, b) }
func Vadd_s16(a, b Int16x4) Int16x4 { return add[int16](a, b) }
func Vadd_s32(a, b Int32x2) Int32x2 { return add[int32](a, b) }
func Vadd_s64(a, b Int64x1) Int64x1 { return add[int64](a, b) }
func Vadd_u8(a, b Uint8x8) Uint8x8 { return add[uint8](a, b) }
func Vadd_u16(a, b Uint16x4) Uint16x4 { return add[uint16](a, b) }
func Vadd_u32(a, b Uint32x2) Uint32x2 { return add[uint32](a, b) }
func Vadd_u64(a, b Uint64x1) Uint64x1 { return add[uint64](a, b) }
func Vaddq_s8(a, b Int8x16) Int8x16 { return add[int8](a, b) }
func Vaddq_s16(a, b Int16x8) Int16x8 { return add[int16](a, b) }
func Vaddq_s32(a, b Int32x4) Int32x4 { return add[int32](a, b) }
func Vaddq_s64(a, b Int64x2) Int64x2 { return add[int64](a, b) }
func Vaddq_u8(a, b Uint8x16) Uint8x16 { return add[uint8](a, b) }
func Vaddq_u16(a, b Uint16x8) Uint16x8 { return add[uint16](a, b) }
func Vaddq_u32(a, b Uint32x4) Uint32x4 { return add[uint32](a, b) }
func Vaddq_u64(a, b Uint64x2) Uint64x2 { return add[uint64](a, b) }

// Vsub_s8 subtracts corresponding lanes, wrapping on overflow.
func Vsub_s8(a, b Int8x8) Int8x8 { return sub[int8](a, b) }
func Vsub_s16(a, b Int16x4) Int16x4 { return sub[int16](a, b) }
func Vsub_s32(a, b Int32x2) Int32x2 { return sub[int32](a, b) }
func Vsub_s64(a, b Int64x1) Int64x1 { return sub[int64](a, b) }
func Vsub_u8(a, b Uint8x8) Uint8x8 { return sub[uint8](a, b) }
func Vsub_u16(a, b Uint16x4) Uint16x4 { return sub[uint16](a, b) }
func Vsub_u32(a, b Uint32x2) Uint32x2 { return sub[uint32](a, b) }
func Vsub_u64(a, b Uint64x1) Uint64x1 { return sub[uint64](a, b) }
func Vsubq_s8(a, b Int8x16) Int8x16 { return sub[int8](a, b) }
func Vsubq_s16(a, b Int16x8) Int16x8 { return sub[int16](a, b) }
func Vsubq_s32(a, b Int32x4) Int32x4 { return sub[int32](a, b) }
func Vsubq_s64(a, b Int64x2) Int64x2 { return sub[int64](a, b) }
func Vsubq_u8(a, b Uint8x16) Uint8x16 { return sub[uint8](a, b) }
func Vsubq_u16(a, b Uint16x8) Uint16x8 { return sub[uint16](a, b) }
func Vsubq_u32(a, b Uint32x4) Uint32x4 { return sub[uint32](a, b) }
func Vsubq_u64(a, b Uint64x2) Uint64x2 { return sub[uint64](a, b) }

// Vmul_s8 multiplies corresponding lanes, keeping the low half of each
// product.
func Vmul_s8(a, b Int8x8) Int8x8 { return mul[int8](a, b) }
func Vmul_s16(a, b Int16x4) Int16x4 { return mul[int16](a, b) }
func Vmul_s32(a, b Int32x2) Int32x2 { return mul[int32](a, b) }
func Vmul_u8(a, b Uint8x8) Uint8x8 { return mul[uint8](a, b) }
func Vmul_u16(a, b Uint16x4) Uint16x4 { return mul[uint16](a, b) }
func Vmul_u32(a, b Uint32x2) Uint32x2 { return mul[uint32](a, b) }
func Vmulq_s8(a, b Int8x16) Int8x16 { return mul[int8](a, b) }
func Vmulq_s16(a, b Int16x8) Int16x8 { return mul[int16](a, b) }
func Vmulq_s32(a, b Int32x4) Int32x4 { return mul[int32](a, b) }
func Vmulq_u8(a, b Uint8x16) Uint8x16 { return mul[uint8](a, b) }
func Vmulq_u16(a, b Uint16x8) Uint16x8 { return mul[uint16](a, b) }
func Vmulq_u32(a, b Uint32x4) Uint32x4 { return mul[uint32](a, b) }

// Vmla_s8 returns a + b*c, wrapping on overflow.
func Vmla_s8(a, b, c Int8x8) Int8x8 { return mla[int8](a, b, c) }
func Vmla_s16(a, b, c Int16x4) Int16x4 { return mla[int16](a, b, c) }
func Vmla_s32(a, b, c Int32x2) Int32x2 { return mla[int32](a, b, c) }
func Vmla_u8(a, b, c Uint8x8) Uint8x8 { return mla[uint8](a, b, c) }
func Vmla_u16(a, b, c Uint16x4) Uint16x4 { return mla[uint16](a, b, c) }
func Vmla_u32(a, b, c Uint32x2) Uint32x2 { return mla[uint32](a, b, c) }
func Vmlaq_s8(a, b, c Int8x16) Int8x16 { return mla[int8](a, b, c) }
func Vmlaq_s16(a, b, c Int16x8) Int16x8 { return mla[int16](a, b, c) }
func Vmlaq_s32(a, b, c Int32x4) Int32x4 { return mla[int32](a, b, c) }
func Vmlaq_u8(a, b, c Uint8x16) Uint8x16 { return mla[uint8](a, b, c) }
func Vmlaq_u16(a, b, c Uint16x8) Uint16x8 { return mla[uint16](a, b, c) }
func Vmlaq_u32(a, b, c Uint32x4) Uint32x4 { return mla[uint32](a, b, c) }

// Vmls_s8 returns a - b*c, wrapping on overflow.
func Vmls_s8(a, b, c Int8x8) Int8x8 { return mls[int8](a, b, c) }
func Vmls_s16(a, b, c Int16x4) Int16x4 { return mls[int16](a, b, c) }
func Vmls_s32(a, b, c Int32x2) Int32x2 { return mls[int32](a, b, c) }
func Vmls_u8(a, b, c Uint8x8) Uint8x8 { return mls[uint8](a, b, c) }
func Vmls_u16(a, b, c Uint16x4) Uint16x4 { return mls[uint16](a, b, c) }
func Vmls_u32(a, b, c Uint32x2) Uint32x2 { return mls[uint32](a, b, c) }
func Vmlsq_s8(a, b, c Int8x16) Int8x16 { return mls[int8](a, b, c) }
func Vmlsq_s16(a, b, c Int16x8) Int16x8 { return mls[int16](a, b, c) }
func Vmlsq_s32(a, b, c Int32x4) Int32x4 { return mls[int32](a, b, c) }
func Vmlsq_u8(a, b, c Uint8x16) Uint8x16 { return mls[uint8](a, b, c) }
func Vmlsq_u16(a, b, c Uint16x8) Uint16x8 { return mls[uint16](a, b, c) }
func Vmlsq_u32(a, b, c Uint32x4) Uint32x4 { return mls[uint32](a, b, c) }

// Vhadd_s8 returns (a + b) >> 1 without intermediate overflow.
func Vhadd_s8(a, b Int8x8) Int8x8 { return hadd[int8](a, b) }
func Vhadd_s16(a, b Int16x4) Int16x4 { return hadd[int16](a, b) }
func Vhadd_s32(a, b Int32x2) Int32x2 { return hadd[int32](a, b) }
func Vhadd_u8(a, b Uint8x8) Uint8x8 { return hadd[uint8](a, b) }
func Vhadd_u16(a, b Uint16x4) Uint16x4 { return hadd[uint16](a, b) }
func Vhadd_u32(a, b Uint32x2) Uint32x2 { return hadd[uint32](a, b) }
func Vhaddq_s8(a, b Int8x16) Int8x16 { return hadd[int8](a, b) }
func Vhaddq_s16(a, b Int16x8) Int16x8 { return hadd[int16](a, b) }
func Vhaddq_s32(a, b Int32x4) Int32x4 { return hadd[int32](a, b) }
func Vhaddq_u8(a, b Uint8x16) Uint8x16 { return hadd[uint8](a, b) }
func Vhaddq_u16(a, b Uint16x8) Uint16x8 { return hadd[uint16](a, b) }
func Vhaddq_u32(a, b Uint32x4) Uint32x4 { return hadd[uint32](a, b) }

// Vrhadd_s8 returns (a + b + 1) >> 1 without intermediate overflow.
func Vrhadd_s8(a, b Int8x8) Int8x8 { return rhadd[int8](a, b) }
func Vrhadd_s16(a, b Int16x4) Int16x4 { return rhadd[int16](a, b) }
func Vrhadd_s32(a, b Int32x2) Int32x2 { return rhadd[int32](a, b) }
func Vrhadd_u8(a, b Uint8x8) Uint8x8 { return rhadd[uint8](a, b) }
func Vrhadd_u16(a, b Uint16x4) Uint16x4 { return rhadd[uint16](a, b) }
func Vrhadd_u32(a, b Uint32x2) Uint32x2 { return rhadd[uint32](a, b) }
func Vrhaddq_s8(a, b Int8x16) Int8x16 { return rhadd[int8](a, b) }
func Vrhaddq_s16(a, b Int16x8) Int16x8 { return rhadd[int16](a, b) }
func Vrhaddq_s32(a, b Int32x4) Int32x4 { return rhadd[int32](a, b) }
func Vrhaddq_u8(a, b Uint8x16) Uint8x16 { return rhadd[uint8](a, b) }
func Vrhaddq_u16(a, b Uint16x8) Uint16x8 { return rhadd[uint16](a, b) }
func Vrhaddq_u32(a, b Uint32x4) Uint32x4 { return rhadd[uint32](a, b) }

// Vhsub_s8 returns (a - b) >> 1 without intermediate overflow.
func Vhsub_s8(a, b Int8x8) Int8x8 { return hsub[int8](a, b) }
func Vhsub_s16(a, b Int16x4) Int16x4 { return hsub[int16](a, b) }
func Vhsub_s32(a, b Int32x2) Int32x2 { return hsub[int32](a, b) }
func Vhsub_u8(a, b Uint8x8) Uint8x8 { return hsub[uint8](a, b) }
func Vhsub_u16(a, b Uint16x4) Uint16x4 { return hsub[uint16](a, b) }
func Vhsub_u32(a, b Uint32x2) Uint32x2 { return hsub[uint32](a, b) }
func Vhsubq_s8(a, b Int8x16) Int8x16 { return hsub[int8](a, b) }
func Vhsubq_s16(a, b Int16x8) Int16x8 { return hsub[int16](a, b) }
func Vhsubq_s32(a, b Int32x4) Int32x4 { return hsub[int32](a, b) }
func Vhsubq_u8(a, b Uint8x16) Uint8x16 { return hsub[uint8](a, b) }
func Vhsubq_u16(a, b Uint16x8) Uint16x8 { return hsub[uint16](a, b) }
func Vhsubq_u32(a, b Uint32x4) Uint32x4 { return hsub[uint32](a, b) }

// Vqadd_s8 adds corresponding lanes, saturating to the range of the lane
// type.
func Vqadd_s8(a, b Int8x8) Int8x8 { return qadd[int8](a, b) }
func Vqadd_s16(a, b Int16x4) Int16x4 { return qadd[int16](a, b) }
func Vqadd_s32(a, b Int32x2) Int32x2 { return qadd[int32](a, b) }
func Vqadd_s64(a, b Int64x1) Int64x1 { return qadd[int64](a, b) }
func Vqadd_u8(a, b Uint8x8) Uint8x8 { return qadd[uint8](a, b) }
func Vqadd_u16(a, b Uint16x4) Uint16x4 { return qadd[uint16](a, b) }
func Vqadd_u32(a, b Uint32x2) Uint32x2 { return qadd[uint32](a, b) }
func Vqadd_u64(a, b Uint64x1) Uint64x1 { return qadd[uint64](a, b) }
func Vqaddq_s8(a, b Int8x16) Int8x16 { return qadd[int8](a, b) }
func Vqaddq_s16(a, b Int16x8) Int16x8 { return qadd[int16](a, b) }
func Vqaddq_s32(a, b Int32x4) Int32x4 { return qadd[int32](a, b) }
func Vqaddq_s64(a, b Int64x2) Int64x2 { return qadd[int64](a, b) }
func Vqaddq_u8(a, b Uint8x16) Uint8x16 { return qadd[uint8](a, b) }
func Vqaddq_u16(a, b Uint16x8) Uint16x8 { return qadd[uint16](a, b) }
func Vqaddq_u32(a, b Uint32x4) Uint32x4 { return qadd[uint32](a, b) }
func Vqaddq_u64(a, b Uint64x2) Uint64x2 { return qadd[uint64](a, b) }

// Vqsub_s8 subtracts corresponding lanes, saturating to the range of the
// lane type.
func Vqsub_s8(a, b Int8x8) Int8x8 { return qsub[int8](a, b) }
func Vqsub_s16(a, b Int16x4) Int16x4 { return qsub[int16](a, b) }
func Vqsub_s32(a, b Int32x2) Int32x2 { return qsub[int32](a, b) }
func Vqsub_s64(a, b Int64x1) Int64x1 { return qsub[int64](a, b) }
func Vqsub_u8(a, b Uint8x8) Uint8x8 { return qsub[uint8](a, b) }
func Vqsub_u16(a, b Uint16x4) Uint16x4 { return qsub[uint16](a, b) }
func Vqsub_u32(a, b Uint32x2) Uint32x2 { return qsub[uint32](a, b) }
func Vqsub_u64(a, b Uint64x1) Uint64x1 { return qsub[uint64](a, b) }
func Vqsubq_s8(a, b Int8x16) Int8x16 { return qsub[int8](a, b) }
func Vqsubq_s16(a, b Int16x8) Int16x8 { return qsub[int16](a, b) }
func Vqsubq_s32(a, b Int32x4) Int32x4 { return qsub[int32](a, b) }
func Vqsubq_s64(a, b Int64x2) Int64x2 { return qsub[int64](a, b) }
func Vqsubq_u8(a, b Uint8x16) Uint8x16 { return qsub[uint8](a, b) }
func Vqsubq_u16(a, b Uint16x8) Uint16x8 { return qsub[uint16](a, b) }
func Vqsubq_u32(a, b Uint32x4) Uint32x4 { return qsub[uint32](a, b) }
func Vqsubq_u64(a, b Uint64x2) Uint64x2 { return qsub[uint64](a, b) }

// Vabd_s8 returns |a - b| for each lane.
func Vabd_s8(a, b Int8x8) Int8x8 { return abd[int8](a, b) }
func Vabd_s16(a, b Int16x4) Int16x4 { return abd[int16](a, b) }
func Vabd_s32(a, b Int32x2) Int32x2 { return abd[int32](a, b) }
func Vabd_u8(a, b Uint8x8) Uint8x8 { return abd[uint8](a, b) }
func Vabd_u16(a, b Uint16x4) Uint16x4 { return abd[uint16](a, b) }
func Vabd_u32(a, b Uint32x2) Uint32x2 { return abd[uint32](a, b) }
func Vabdq_s8(a, b Int8x16) Int8x16 { return abd[int8](a, b) }
func Vabdq_s16(a, b Int16x8) Int16x8 { return abd[int16](a, b) }
func Vabdq_s32(a, b Int32x4) Int32x4 { return abd[int32](a, b) }
func Vabdq_u8(a, b Uint8x16) Uint8x16 { return abd[uint8](a, b) }
func Vabdq_u16(a, b Uint16x8) Uint16x8 { return abd[uint16](a, b) }
func Vabdq_u32(a, b Uint32x4) Uint32x4 { return abd[uint32](a, b) }

// Vaba_s8 returns a + |b - c|.
func Vaba_s8(a, b, c Int8x8) Int8x8 { return aba[int8](a, b, c) }
func Vaba_s16(a, b, c Int16x4) Int16x4 { return aba[int16](a, b, c) }
func Vaba_s32(a, b, c Int32x2) Int32x2 { return aba[int32](a, b, c) }
func Vaba_u8(a, b, c Uint8x8) Uint8x8 { return aba[uint8](a, b, c) }
func Vaba_u16(a, b, c Uint16x4) Uint16x4 { return aba[uint16](a, b, c) }
func Vaba_u32(a, b, c Uint32x2) Uint32x2 { return aba[uint32](a, b, c) }
func Vabaq_s8(a, b, c Int8x16) Int8x16 { return aba[int8](a, b, c) }
func Vabaq_s16(a, b, c Int16x8) Int16x8 { return aba[int16](a, b, c) }
func Vabaq_s32(a, b, c Int32x4) Int32x4 { return aba[int32](a, b, c) }
func Vabaq_u8(a, b, c Uint8x16) Uint8x16 { return aba[uint8](a, b, c) }
func Vabaq_u16(a, b, c Uint16x8) Uint16x8 { return aba[uint16](a, b, c) }
func Vabaq_u32(a, b, c Uint32x4) Uint32x4 { return aba[uint32](a, b, c) }

// Vmax_s8 returns the larger of each lane pair.
func Vmax_s8(a, b Int8x8) Int8x8 { return maxi[int8](a, b) }
func Vmax_s16(a, b Int16x4) Int16x4 { return maxi[int16](a, b) }
func Vmax_s32(a, b Int32x2) Int32x2 { return maxi[int32](a, b) }
func Vmax_u8(a, b Uint8x8) Uint8x8 { return maxi[uint8](a, b) }
func Vmax_u16(a, b Uint16x4) Uint16x4 { return maxi[uint16](a, b) }
func Vmax_u32(a, b Uint32x2) Uint32x2 { return maxi[uint32](a, b) }
func Vmaxq_s8(a, b Int8x16) Int8x16 { return maxi[int8](a, b) }
func Vmaxq_s16(a, b Int16x8) Int16x8 { return maxi[int16](a, b) }
func Vmaxq_s32(a, b Int32x4) Int32x4 { return maxi[int32](a, b) }
func Vmaxq_u8(a, b Uint8x16) Uint8x16 { return maxi[uint8](a, b) }
func Vmaxq_u16(a, b Uint16x8) Uint16x8 { return maxi[uint16](a, b) }
func Vmaxq_u32(a, b Uint32x4) Uint32x4 { return maxi[uint32](a, b) }

// Vmin_s8 returns the smaller of each lane pair.
func Vmin_s8(a, b Int8x8) Int8x8 { return mini[int8](a, b) }
func Vmin_s16(a, b Int16x4) Int16x4 { return mini[int16](a, b) }
func Vmin_s32(a, b Int32x2) Int32x2 { return mini[int32](a, b) }
func Vmin_u8(a, b Uint8x8) Uint8x8 { return mini[uint8](a, b) }
func Vmin_u16(a, b Uint16x4) Uint16x4 { return mini[uint16](a, b) }
func Vmin_u32(a, b Uint32x2) Uint32x2 { return mini[uint32](a, b) }
func Vminq_s8(a, b Int8x16) Int8x16 { return mini[int8](a, b) }
func Vminq_s16(a, b Int16x8) Int16x8 { return mini[int16](a, b) }
func Vminq_s32(a, b Int32x4) Int32x4 { return mini[int32](a, b) }
func Vminq_u8(a, b Uint8x16) Uint8x16 { return mini[uint8](a, b) }
func Vminq_u16(a, b Uint16x8) Uint16x8 { return mini[uint16](a, b) }
func Vminq_u32(a, b Uint32x4) Uint32x4 { return mini[uint32](a, b) }

// Vabs_s8 returns |a|; the most negative value maps to itself.
func Vabs_s8(a Int8x8) Int8x8 { return abs[int8](a) }
func Vabs_s16(a Int16x4) Int16x4 { return abs[int16](a) }
func Vabs_s32(a Int32x2) Int32x2 { return abs[int32](a) }
func Vabs_s64(a Int64x1) Int64x1 { return abs[int64](a) }
func Vabsq_s8(a Int8x16) Int8x16 { return abs[int8](a) }
func Vabsq_s16(a Int16x8) Int16x8 { return abs[int16](a) }
func Vabsq_s32(a Int32x4) Int32x4 { return abs[int32](a) }
func Vabsq_s64(a Int64x2) Int64x2 { return abs[int64](a) }

// Vqabs_s8 returns |a|, saturating the most negative value to the maximum.
func Vqabs_s8(a Int8x8) Int8x8 { return qabs[int8](a) }
func Vqabs_s16(a Int16x4) Int16x4 { return qabs[int16](a) }
func Vqabs_s32(a Int32x2) Int32x2 { return qabs[int32](a) }
func Vqabs_s64(a Int64x1) Int64x1 { return qabs[int64](a) }
func Vqabsq_s8(a Int8x16) Int8x16 { return qabs[int8](a) }
func Vqabsq_s16(a Int16x8) Int16x8 { return qabs[int16](a) }
func Vqabsq_s32(a Int32x4) Int32x4 { return qabs[int32](a) }
func Vqabsq_s64(a Int64x2) Int64x2 { return qabs[int64](a) }

// Vneg_s8 returns -a, wrapping on overflow.
func Vneg_s8(a Int8x8) Int8x8 { return neg[int8](a) }
func Vneg_s16(a Int16x4) Int16x4 { return neg[int16](a) }
func Vneg_s32(a Int32x2) Int32x2 { return neg[int32](a) }
func Vneg_s64(a Int64x1) Int64x1 { return neg[int64](a) }
func Vnegq_s8(a Int8x16) Int8x16 { return neg[int8](a) }
func Vnegq_s16(a Int16x8) Int16x8 { return neg[int16](a) }
func Vnegq_s32(a Int32x4) Int32x4 { return neg[int32](a) }
func Vnegq_s64(a Int64x2) Int64x2 { return neg[int64](a) }

// Vqneg_s8 returns -a, saturating the most negative value to the maximum.
func Vqneg_s8(a Int8x8) Int8x8 { return qneg[int8](a) }
func Vqneg_s16(a Int16x4) Int16x4 { return qneg[int16](a) }
func Vqneg_s32(a Int32x2) Int32x2 { return qneg[int32](a) }
func Vqneg_s64(a Int64x1) Int64x1 { return qneg[int64](a) }
func Vqnegq_s8(a Int8x16) Int8x16 { return qneg[int8](a) }
func Vqnegq_s16(a Int16x8) Int16x8 { return qneg[int16](a) }
func Vqnegq_s32(a Int32x4) Int32x4 { return qneg[int32](a) }
func Vqnegq_s64(a Int64x2) Int64x2 { return qneg[int64](a) }

// Vmul_n_s16 broadcasts the scalar operand to every lane.
func Vmul_n_s16(a Int16x4, b int16) Int16x4 { return mul[int16](a, dup[int16, Int16x4](b)) }
func Vmul_n_s32(a Int32x2, b int32) Int32x2 { return mul[int32](a, dup[int32, Int32x2](b)) }
func Vmul_n_u16(a Uint16x4, b uint16) Uint16x4 { return mul[uint16](a, dup[uint16, Uint16x4](b)) }
func Vmul_n_u32(a Uint32x2, b uint32) Uint32x2 { return mul[uint32](a, dup[uint32, Uint32x2](b)) }
func Vmulq_n_s16(a Int16x8, b int16) Int16x8 { return mul[int16](a, dup[int16, Int16x8](b)) }
func Vmulq_n_s32(a Int32x4, b int32) Int32x4 { return mul[int32](a, dup[int32, Int32x4](b)) }
func Vmulq_n_u16(a Uint16x8, b uint16) Uint16x8 { return mul[uint16](a, dup[uint16, Uint16x8](b)) }
func Vmulq_n_u32(a Uint32x4, b uint32) Uint32x4 { return mul[uint32](a, dup[uint32, Uint32x4](b)) }

// Vmul_lane_s16 uses lane of v as the multiplier in every lane.
func Vmul_lane_s16(a Int16x4, v Int16x4, lane int) Int16x4 {
	return mul[int16](a, dupLane[int16, Int16x4](v, lane))
}

func Vmul_lane_s32(a Int32x2, v Int32x2, lane int) Int32x2 {
	return mul[int32](a, dupLane[int32, Int32x2](v, lane))
}

func Vmul_lane_u16(a Uint16x4, v Uint16x4, lane int) Uint16x4 {
	return mul[uint16](a, dupLane[uint16, Uint16x4](v, lane))
}

func Vmul_lane_u32(a Uint32x2, v Uint32x2, lane int) Uint32x2 {
	return mul[uint32](a, dupLane[uint32, Uint32x2](v, lane))
}

func Vmulq_lane_s16(a Int16x8, v Int16x4, lane int) Int16x8 {
	return mul[int16](a, dupLane[int16, Int16x8](v, lane))
}

func Vmulq_lane_s32(a Int32x4, v Int32x2, lane int) Int32x4 {
	return mul[int32](a, dupLane[int32, Int32x4](v, lane))
}

func Vmulq_lane_u16(a Uint16x8, v Uint16x4, lane int) Uint16x8 {
	return mul[uint16](a, dupLane[uint16, Uint16x8](v, lane))
}

func Vmulq_lane_u32(a Uint32x4, v Uint32x2, lane int) Uint32x4 {
	return mul[uint32](a, dupLane[uint32, Uint32x4](v, lane))
}

// Vmla_n_s16 broadcasts the scalar operand to every lane.
func Vmla_n_s16(a, b Int16x4, c int16) Int16x4 { return mla[int16](a, b, dup[int16, Int16x4](c)) }
func Vmla_n_s32(a, b Int32x2, c int32) Int32x2 { return mla[int32](a, b, dup[int32, Int32x2](c)) }

func Vmla_n_u16(a, b Uint16x4, c uint16) Uint16x4 {
	return mla[uint16](a, b, dup[uint16, Uint16x4](c))
}

func Vmla_n_u32(a, b Uint32x2, c uint32) Uint32x2 {
	return mla[uint32](a, b, dup[uint32, Uint32x2](c))
}

func Vmlaq_n_s16(a, b Int16x8, c int16) Int16x8 { return mla[int16](a, b, dup[int16, Int16x8](c)) }
func Vmlaq_n_s32(a, b Int32x4, c int32) Int32x4 { return mla[int32](a, b, dup[int32, Int32x4](c)) }

func Vmlaq_n_u16(a, b Uint16x8, c uint16) Uint16x8 {
	return mla[uint16](a, b, dup[uint16, Uint16x8](c))
}

func Vmlaq_n_u32(a, b Uint32x4, c uint32) Uint32x4 {
	return mla[uint32](a, b, dup[uint32, Uint32x4](c))
}

// Vmla_lane_s16 uses lane of v as the multiplier in every lane.
func Vmla_lane_s16(a, b Int16x4, v Int16x4, lane int) Int16x4 {
	return mla[int16](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vmla_lane_s32(a, b Int32x2, v Int32x2, lane int) Int32x2 {
	return mla[int32](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vmla_lane_u16(a, b Uint16x4, v Uint16x4, lane int) Uint16x4 {
	return mla[uint16](a, b, dupLane[uint16, Uint16x4](v, lane))
}

func Vmla_lane_u32(a, b Uint32x2, v Uint32x2, lane int) Uint32x2 {
	return mla[uint32](a, b, dupLane[uint32, Uint32x2](v, lane))
}

func Vmlaq_lane_s16(a, b Int16x8, v Int16x4, lane int) Int16x8 {
	return mla[int16](a, b, dupLane[int16, Int16x8](v, lane))
}

func Vmlaq_lane_s32(a, b Int32x4, v Int32x2, lane int) Int32x4 {
	return mla[int32](a, b, dupLane[int32, Int32x4](v, lane))
}

func Vmlaq_lane_u16(a, b Uint16x8, v Uint16x4, lane int) Uint16x8 {
	return mla[uint16](a, b, dupLane[uint16, Uint16x8](v, lane))
}

func Vmlaq_lane_u32(a, b Uint32x4, v Uint32x2, lane int) Uint32x4 {
	return mla[uint32](a, b, dupLane[uint32, Uint32x4](v, lane))
}

// Vmls_n_s16 broadcasts the scalar operand to every lane.
func Vmls_n_s16(a, b Int16x4, c int16) Int16x4 { return mls[int16](a, b, dup[int16, Int16x4](c)) }
func Vmls_n_s32(a, b Int32x2, c int32) Int32x2 { return mls[int32](a, b, dup[int32, Int32x2](c)) }

func Vmls_n_u16(a, b Uint16x4, c uint16) Uint16x4 {
	return mls[uint16](a, b, dup[uint16, Uint16x4](c))
}

func Vmls_n_u32(a, b Uint32x2, c uint32) Uint32x2 {
	return mls[uint32](a, b, dup[uint32, Uint32x2](c))
}

func Vmlsq_n_s16(a, b Int16x8, c int16) Int16x8 { return mls[int16](a, b, dup[int16, Int16x8](c)) }
func Vmlsq_n_s32(a, b Int32x4, c int32) Int32x4 { return mls[int32](a, b, dup[int32, Int32x4](c)) }

func Vmlsq_n_u16(a, b Uint16x8, c uint16) Uint16x8 {
	return mls[uint16](a, b, dup[uint16, Uint16x8](c))
}

func Vmlsq_n_u32(a, b Uint32x4, c uint32) Uint32x4 {
	return mls[uint32](a, b, dup[uint32, Uint32x4](c))
}

// Vmls_lane_s16 uses lane of v as the multiplier in every lane.
func Vmls_lane_s16(a, b Int16x4, v Int16x4, lane int) Int16x4 {
	return mls[int16](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vmls_lane_s32(a, b Int32x2, v Int32x2, lane int) Int32x2 {
	return mls[int32](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vmls_lane_u16(a, b Uint16x4, v Uint16x4, lane int) Uint16x4 {
	return mls[uint16](a, b, dupLane[uint16, Uint16x4](v, lane))
}

func Vmls_lane_u32(a, b Uint32x2, v Uint32x2, lane int) Uint32x2 {
	return mls[uint32](a, b, dupLane[uint32, Uint32x2](v, lane))
}

func Vmlsq_lane_s16(a, b Int16x8, v Int16x4, lane int) Int16x8 {
	return mls[int16](a, b, dupLane[int16, Int16x8](v, lane))
}

func Vmlsq_lane_s32(a, b Int32x4, v Int32x2, lane int) Int32x4 {
	return mls[int32](a, b, dupLane[int32, Int32x4](v, lane))
}

func Vmlsq_lane_u16(a, b Uint16x8, v Uint16x4, lane int) Uint16x8 {
	return mls[uint16](a, b, dupLane[uint16, Uint16x8](v, lane))
}

func Vmlsq_lane_u32(a, b Uint32x4, v Uint32x2, lane int) Uint32x4 {
	return mls[uint32](a, b, dupLane[uint32, Uint32x4](v, lane))
}

// Vaddl_s8 adds lanes into the double-width type; the sum is exact.
func Vaddl_s8(a, b Int8x8) Int16x8 { return addl[int16, int8, Int16x8](a, b) }
func Vaddl_s16(a, b Int16x4) Int32x4 { return addl[int32, int16, Int32x4](a, b) }
func Vaddl_s32(a, b Int32x2) Int64x2 { return addl[int64, int32, Int64x2](a, b) }
func Vaddl_u8(a, b Uint8x8) Uint16x8 { return addl[uint16, uint8, Uint16x8](a, b) }
func Vaddl_u16(a, b Uint16x4) Uint32x4 { return addl[uint32, uint16, Uint32x4](a, b) }
func Vaddl_u32(a, b Uint32x2) Uint64x2 { return addl[uint64, uint32, Uint64x2](a, b) }

// Vaddl_high_s8 is Vaddl_s8 on the high halves of a and b.
func Vaddl_high_s8(a, b Int8x16) Int16x8 { return Vaddl_s8(Vget_high_s8(a), Vget_high_s8(b)) }
func Vaddl_high_s16(a, b Int16x8) Int32x4 { return Vaddl_s16(Vget_high_s16(a), Vget_high_s16(b)) }
func Vaddl_high_s32(a, b Int32x4) Int64x2 { return Vaddl_s32(Vget_high_s32(a), Vget_high_s32(b)) }
func Vaddl_high_u8(a, b Uint8x16) Uint16x8 { return Vaddl_u8(Vget_high_u8(a), Vget_high_u8(b)) }
func Vaddl_high_u16(a, b Uint16x8) Uint32x4 { return Vaddl_u16(Vget_high_u16(a), Vget_high_u16(b)) }
func Vaddl_high_u32(a, b Uint32x4) Uint64x2 { return Vaddl_u32(Vget_high_u32(a), Vget_high_u32(b)) }

// Vsubl_s8 subtracts lanes into the double-width type; the difference is
// exact.
func Vsubl_s8(a, b Int8x8) Int16x8 { return subl[int16, int8, Int16x8](a, b) }
func Vsubl_s16(a, b Int16x4) Int32x4 { return subl[int32, int16, Int32x4](a, b) }
func Vsubl_s32(a, b Int32x2) Int64x2 { return subl[int64, int32, Int64x2](a, b) }
func Vsubl_u8(a, b Uint8x8) Uint16x8 { return subl[uint16, uint8, Uint16x8](a, b) }
func Vsubl_u16(a, b Uint16x4) Uint32x4 { return subl[uint32, uint16, Uint32x4](a, b) }
func Vsubl_u32(a, b Uint32x2) Uint64x2 { return subl[uint64, uint32, Uint64x2](a, b) }

// Vsubl_high_s8 is Vsubl_s8 on the high halves of a and b.
func Vsubl_high_s8(a, b Int8x16) Int16x8 { return Vsubl_s8(Vget_high_s8(a), Vget_high_s8(b)) }
func Vsubl_high_s16(a, b Int16x8) Int32x4 { return Vsubl_s16(Vget_high_s16(a), Vget_high_s16(b)) }
func Vsubl_high_s32(a, b Int32x4) Int64x2 { return Vsubl_s32(Vget_high_s32(a), Vget_high_s32(b)) }
func Vsubl_high_u8(a, b Uint8x16) Uint16x8 { return Vsubl_u8(Vget_high_u8(a), Vget_high_u8(b)) }
func Vsubl_high_u16(a, b Uint16x8) Uint32x4 { return Vsubl_u16(Vget_high_u16(a), Vget_high_u16(b)) }
func Vsubl_high_u32(a, b Uint32x4) Uint64x2 { return Vsubl_u32(Vget_high_u32(a), Vget_high_u32(b)) }

// Vaddw_s8 adds the widened lanes of b to a.
func Vaddw_s8(a Int16x8, b Int8x8) Int16x8 { return addw[int16, int8, Int16x8](a, b) }
func Vaddw_s16(a Int32x4, b Int16x4) Int32x4 { return addw[int32, int16, Int32x4](a, b) }
func Vaddw_s32(a Int64x2, b Int32x2) Int64x2 { return addw[int64, int32, Int64x2](a, b) }
func Vaddw_u8(a Uint16x8, b Uint8x8) Uint16x8 { return addw[uint16, uint8, Uint16x8](a, b) }
func Vaddw_u16(a Uint32x4, b Uint16x4) Uint32x4 { return addw[uint32, uint16, Uint32x4](a, b) }
func Vaddw_u32(a Uint64x2, b Uint32x2) Uint64x2 { return addw[uint64, uint32, Uint64x2](a, b) }

// Vaddw_high_s8 is Vaddw_s8 on the high half of b.
func Vaddw_high_s8(a Int16x8, b Int8x16) Int16x8 { return Vaddw_s8(a, Vget_high_s8(b)) }
func Vaddw_high_s16(a Int32x4, b Int16x8) Int32x4 { return Vaddw_s16(a, Vget_high_s16(b)) }
func Vaddw_high_s32(a Int64x2, b Int32x4) Int64x2 { return Vaddw_s32(a, Vget_high_s32(b)) }
func Vaddw_high_u8(a Uint16x8, b Uint8x16) Uint16x8 { return Vaddw_u8(a, Vget_high_u8(b)) }
func Vaddw_high_u16(a Uint32x4, b Uint16x8) Uint32x4 { return Vaddw_u16(a, Vget_high_u16(b)) }
func Vaddw_high_u32(a Uint64x2, b Uint32x4) Uint64x2 { return Vaddw_u32(a, Vget_high_u32(b)) }

// Vsubw_s8 subtracts the widened lanes of b from a.
func Vsubw_s8(a Int16x8, b Int8x8) Int16x8 { return subw[int16, int8, Int16x8](a, b) }
func Vsubw_s16(a Int32x4, b Int16x4) Int32x4 { return subw[int32, int16, Int32x4](a, b) }
func Vsubw_s32(a Int64x2, b Int32x2) Int64x2 { return subw[int64, int32, Int64x2](a, b) }
func Vsubw_u8(a Uint16x8, b Uint8x8) Uint16x8 { return subw[uint16, uint8, Uint16x8](a, b) }
func Vsubw_u16(a Uint32x4, b Uint16x4) Uint32x4 { return subw[uint32, uint16, Uint32x4](a, b) }
func Vsubw_u32(a Uint64x2, b Uint32x2) Uint64x2 { return subw[uint64, uint32, Uint64x2](a, b) }

// Vsubw_high_s8 is Vsubw_s8 on the high half of b.
func Vsubw_high_s8(a Int16x8, b Int8x16) Int16x8 { return Vsubw_s8(a, Vget_high_s8(b)) }
func Vsubw_high_s16(a Int32x4, b Int16x8) Int32x4 { return Vsubw_s16(a, Vget_high_s16(b)) }
func Vsubw_high_s32(a Int64x2, b Int32x4) Int64x2 { return Vsubw_s32(a, Vget_high_s32(b)) }
func Vsubw_high_u8(a Uint16x8, b Uint8x16) Uint16x8 { return Vsubw_u8(a, Vget_high_u8(b)) }
func Vsubw_high_u16(a Uint32x4, b Uint16x8) Uint32x4 { return Vsubw_u16(a, Vget_high_u16(b)) }
func Vsubw_high_u32(a Uint64x2, b Uint32x4) Uint64x2 { return Vsubw_u32(a, Vget_high_u32(b)) }

// Vmull_s8 multiplies lanes into the double-width type; the product is
// exact.
func Vmull_s8(a, b Int8x8) Int16x8 { return mull[int16, int8, Int16x8](a, b) }
func Vmull_s16(a, b Int16x4) Int32x4 { return mull[int32, int16, Int32x4](a, b) }
func Vmull_s32(a, b Int32x2) Int64x2 { return mull[int64, int32, Int64x2](a, b) }
func Vmull_u8(a, b Uint8x8) Uint16x8 { return mull[uint16, uint8, Uint16x8](a, b) }
func Vmull_u16(a, b Uint16x4) Uint32x4 { return mull[uint32, uint16, Uint32x4](a, b) }
func Vmull_u32(a, b Uint32x2) Uint64x2 { return mull[uint64, uint32, Uint64x2](a, b) }

// Vmull_high_s8 is Vmull_s8 on the high halves of a and b.
func Vmull_high_s8(a, b Int8x16) Int16x8 { return Vmull_s8(Vget_high_s8(a), Vget_high_s8(b)) }
func Vmull_high_s16(a, b Int16x8) Int32x4 { return Vmull_s16(Vget_high_s16(a), Vget_high_s16(b)) }
func Vmull_high_s32(a, b Int32x4) Int64x2 { return Vmull_s32(Vget_high_s32(a), Vget_high_s32(b)) }
func Vmull_high_u8(a, b Uint8x16) Uint16x8 { return Vmull_u8(Vget_high_u8(a), Vget_high_u8(b)) }
func Vmull_high_u16(a, b Uint16x8) Uint32x4 { return Vmull_u16(Vget_high_u16(a), Vget_high_u16(b)) }
func Vmull_high_u32(a, b Uint32x4) Uint64x2 { return Vmull_u32(Vget_high_u32(a), Vget_high_u32(b)) }

// Vmlal_s8 adds the exact products b*c to a.
func Vmlal_s8(a Int16x8, b, c Int8x8) Int16x8 { return mlal[int16, int8, Int16x8](a, b, c) }
func Vmlal_s16(a Int32x4, b, c Int16x4) Int32x4 { return mlal[int32, int16, Int32x4](a, b, c) }
func Vmlal_s32(a Int64x2, b, c Int32x2) Int64x2 { return mlal[int64, int32, Int64x2](a, b, c) }
func Vmlal_u8(a Uint16x8, b, c Uint8x8) Uint16x8 { return mlal[uint16, uint8, Uint16x8](a, b, c) }

func Vmlal_u16(a Uint32x4, b, c Uint16x4) Uint32x4 {
	return mlal[uint32, uint16, Uint32x4](a, b, c)
}

func Vmlal_u32(a Uint64x2, b, c Uint32x2) Uint64x2 {
	return mlal[uint64, uint32, Uint64x2](a, b, c)
}

// Vmlal_high_s8 is Vmlal_s8 on the high halves of b and c.
func Vmlal_high_s8(a Int16x8, b, c Int8x16) Int16x8 {
	return Vmlal_s8(a, Vget_high_s8(b), Vget_high_s8(c))
}

func Vmlal_high_s16(a Int32x4, b, c Int16x8) Int32x4 {
	return Vmlal_s16(a, Vget_high_s16(b), Vget_high_s16(c))
}

func Vmlal_high_s32(a Int64x2, b, c Int32x4) Int64x2 {
	return Vmlal_s32(a, Vget_high_s32(b), Vget_high_s32(c))
}

func Vmlal_high_u8(a Uint16x8, b, c Uint8x16) Uint16x8 {
	return Vmlal_u8(a, Vget_high_u8(b), Vget_high_u8(c))
}

func Vmlal_high_u16(a Uint32x4, b, c Uint16x8) Uint32x4 {
	return Vmlal_u16(a, Vget_high_u16(b), Vget_high_u16(c))
}

func Vmlal_high_u32(a Uint64x2, b, c Uint32x4) Uint64x2 {
	return Vmlal_u32(a, Vget_high_u32(b), Vget_high_u32(c))
}

// Vmlsl_s8 subtracts the exact products b*c from a.
func Vmlsl_s8(a Int16x8, b, c Int8x8) Int16x8 { return mlsl[int16, int8, Int16x8](a, b, c) }
func Vmlsl_s16(a Int32x4, b, c Int16x4) Int32x4 { return mlsl[int32, int16, Int32x4](a, b, c) }
func Vmlsl_s32(a Int64x2, b, c Int32x2) Int64x2 { return mlsl[int64, int32, Int64x2](a, b, c) }
func Vmlsl_u8(a Uint16x8, b, c Uint8x8) Uint16x8 { return mlsl[uint16, uint8, Uint16x8](a, b, c) }

func Vmlsl_u16(a Uint32x4, b, c Uint16x4) Uint32x4 {
	return mlsl[uint32, uint16, Uint32x4](a, b, c)
}

func Vmlsl_u32(a Uint64x2, b, c Uint32x2) Uint64x2 {
	return mlsl[uint64, uint32, Uint64x2](a, b, c)
}

// Vmlsl_high_s8 is Vmlsl_s8 on the high halves of b and c.
func Vmlsl_high_s8(a Int16x8, b, c Int8x16) Int16x8 {
	return Vmlsl_s8(a, Vget_high_s8(b), Vget_high_s8(c))
}

func Vmlsl_high_s16(a Int32x4, b, c Int16x8) Int32x4 {
	return Vmlsl_s16(a, Vget_high_s16(b), Vget_high_s16(c))
}

func Vmlsl_high_s32(a Int64x2, b, c Int32x4) Int64x2 {
	return Vmlsl_s32(a, Vget_high_s32(b), Vget_high_s32(c))
}

func Vmlsl_high_u8(a Uint16x8, b, c Uint8x16) Uint16x8 {
	return Vmlsl_u8(a, Vget_high_u8(b), Vget_high_u8(c))
}

func Vmlsl_high_u16(a Uint32x4, b, c Uint16x8) Uint32x4 {
	return Vmlsl_u16(a, Vget_high_u16(b), Vget_high_u16(c))
}

func Vmlsl_high_u32(a Uint64x2, b, c Uint32x4) Uint64x2 {
	return Vmlsl_u32(a, Vget_high_u32(b), Vget_high_u32(c))
}

// Vabdl_s8 returns |a - b| in the double-width type.
func Vabdl_s8(a, b Int8x8) Int16x8 { return abdl[int16, int8, Int16x8](a, b) }
func Vabdl_s16(a, b Int16x4) Int32x4 { return abdl[int32, int16, Int32x4](a, b) }
func Vabdl_s32(a, b Int32x2) Int64x2 { return abdl[int64, int32, Int64x2](a, b) }
func Vabdl_u8(a, b Uint8x8) Uint16x8 { return abdl[uint16, uint8, Uint16x8](a, b) }
func Vabdl_u16(a, b Uint16x4) Uint32x4 { return abdl[uint32, uint16, Uint32x4](a, b) }
func Vabdl_u32(a, b Uint32x2) Uint64x2 { return abdl[uint64, uint32, Uint64x2](a, b) }

// Vabdl_high_s8 is Vabdl_s8 on the high halves of a and b.
func Vabdl_high_s8(a, b Int8x16) Int16x8 { return Vabdl_s8(Vget_high_s8(a), Vget_high_s8(b)) }
func Vabdl_high_s16(a, b Int16x8) Int32x4 { return Vabdl_s16(Vget_high_s16(a), Vget_high_s16(b)) }
func Vabdl_high_s32(a, b Int32x4) Int64x2 { return Vabdl_s32(Vget_high_s32(a), Vget_high_s32(b)) }
func Vabdl_high_u8(a, b Uint8x16) Uint16x8 { return Vabdl_u8(Vget_high_u8(a), Vget_high_u8(b)) }
func Vabdl_high_u16(a, b Uint16x8) Uint32x4 { return Vabdl_u16(Vget_high_u16(a), Vget_high_u16(b)) }
func Vabdl_high_u32(a, b Uint32x4) Uint64x2 { return Vabdl_u32(Vget_high_u32(a), Vget_high_u32(b)) }

// Vabal_s8 adds |b - c| in the double-width type to a.
func Vabal_s8(a Int16x8, b, c Int8x8) Int16x8 { return abal[int16, int8, Int16x8](a, b, c) }
func Vabal_s16(a Int32x4, b, c Int16x4) Int32x4 { return abal[int32, int16, Int32x4](a, b, c) }
func Vabal_s32(a Int64x2, b, c Int32x2) Int64x2 { return abal[int64, int32, Int64x2](a, b, c) }
func Vabal_u8(a Uint16x8, b, c Uint8x8) Uint16x8 { return abal[uint16, uint8, Uint16x8](a, b, c) }

func Vabal_u16(a Uint32x4, b, c Uint16x4) Uint32x4 {
	return abal[uint32, uint16, Uint32x4](a, b, c)
}

func Vabal_u32(a Uint64x2, b, c Uint32x2) Uint64x2 {
	return abal[uint64, uint32, Uint64x2](a, b, c)
}

// Vabal_high_s8 is Vabal_s8 on the high halves of b and c.
func Vabal_high_s8(a Int16x8, b, c Int8x16) Int16x8 {
	return Vabal_s8(a, Vget_high_s8(b), Vget_high_s8(c))
}

func Vabal_high_s16(a Int32x4, b, c Int16x8) Int32x4 {
	return Vabal_s16(a, Vget_high_s16(b), Vget_high_s16(c))
}

func Vabal_high_s32(a Int64x2, b, c Int32x4) Int64x2 {
	return Vabal_s32(a, Vget_high_s32(b), Vget_high_s32(c))
}

func Vabal_high_u8(a Uint16x8, b, c Uint8x16) Uint16x8 {
	return Vabal_u8(a, Vget_high_u8(b), Vget_high_u8(c))
}

func Vabal_high_u16(a Uint32x4, b, c Uint16x8) Uint32x4 {
	return Vabal_u16(a, Vget_high_u16(b), Vget_high_u16(c))
}

func Vabal_high_u32(a Uint64x2, b, c Uint32x4) Uint64x2 {
	return Vabal_u32(a, Vget_high_u32(b), Vget_high_u32(c))
}

// Vmull_n_s16 broadcasts the scalar operand to every lane.
func Vmull_n_s16(a Int16x4, b int16) Int32x4 {
	return mull[int32, int16, Int32x4](a, dup[int16, Int16x4](b))
}

func Vmull_n_s32(a Int32x2, b int32) Int64x2 {
	return mull[int64, int32, Int64x2](a, dup[int32, Int32x2](b))
}

func Vmull_n_u16(a Uint16x4, b uint16) Uint32x4 {
	return mull[uint32, uint16, Uint32x4](a, dup[uint16, Uint16x4](b))
}

func Vmull_n_u32(a Uint32x2, b uint32) Uint64x2 {
	return mull[uint64, uint32, Uint64x2](a, dup[uint32, Uint32x2](b))
}

// Vmull_lane_s16 uses lane of v as the multiplier in every lane.
func Vmull_lane_s16(a, v Int16x4, lane int) Int32x4 {
	return mull[int32, int16, Int32x4](a, dupLane[int16, Int16x4](v, lane))
}

func Vmull_lane_s32(a, v Int32x2, lane int) Int64x2 {
	return mull[int64, int32, Int64x2](a, dupLane[int32, Int32x2](v, lane))
}

func Vmull_lane_u16(a, v Uint16x4, lane int) Uint32x4 {
	return mull[uint32, uint16, Uint32x4](a, dupLane[uint16, Uint16x4](v, lane))
}

func Vmull_lane_u32(a, v Uint32x2, lane int) Uint64x2 {
	return mull[uint64, uint32, Uint64x2](a, dupLane[uint32, Uint32x2](v, lane))
}

// Vmlal_n_s16 broadcasts the scalar operand to every lane.
func Vmlal_n_s16(a Int32x4, b Int16x4, c int16) Int32x4 {
	return mlal[int32, int16, Int32x4](a, b, dup[int16, Int16x4](c))
}

func Vmlal_n_s32(a Int64x2, b Int32x2, c int32) Int64x2 {
	return mlal[int64, int32, Int64x2](a, b, dup[int32, Int32x2](c))
}

func Vmlal_n_u16(a Uint32x4, b Uint16x4, c uint16) Uint32x4 {
	return mlal[uint32, uint16, Uint32x4](a, b, dup[uint16, Uint16x4](c))
}

func Vmlal_n_u32(a Uint64x2, b Uint32x2, c uint32) Uint64x2 {
	return mlal[uint64, uint32, Uint64x2](a, b, dup[uint32, Uint32x2](c))
}

// Vmlal_lane_s16 uses lane of v as the multiplier in every lane.
func Vmlal_lane_s16(a Int32x4, b, v Int16x4, lane int) Int32x4 {
	return mlal[int32, int16, Int32x4](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vmlal_lane_s32(a Int64x2, b, v Int32x2, lane int) Int64x2 {
	return mlal[int64, int32, Int64x2](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vmlal_lane_u16(a Uint32x4, b, v Uint16x4, lane int) Uint32x4 {
	return mlal[uint32, uint16, Uint32x4](a, b, dupLane[uint16, Uint16x4](v, lane))
}

func Vmlal_lane_u32(a Uint64x2, b, v Uint32x2, lane int) Uint64x2 {
	return mlal[uint64, uint32, Uint64x2](a, b, dupLane[uint32, Uint32x2](v, lane))
}

// Vmlsl_n_s16 broadcasts the scalar operand to every lane.
func Vmlsl_n_s16(a Int32x4, b Int16x4, c int16) Int32x4 {
	return mlsl[int32, int16, Int32x4](a, b, dup[int16, Int16x4](c))
}

func Vmlsl_n_s32(a Int64x2, b Int32x2, c int32) Int64x2 {
	return mlsl[int64, int32, Int64x2](a, b, dup[int32, Int32x2](c))
}

func Vmlsl_n_u16(a Uint32x4, b Uint16x4, c uint16) Uint32x4 {
	return mlsl[uint32, uint16, Uint32x4](a, b, dup[uint16, Uint16x4](c))
}

func Vmlsl_n_u32(a Uint64x2, b Uint32x2, c uint32) Uint64x2 {
	return mlsl[uint64, uint32, Uint64x2](a, b, dup[uint32, Uint32x2](c))
}

// Vmlsl_lane_s16 uses lane of v as the multiplier in every lane.
func Vmlsl_lane_s16(a Int32x4, b, v Int16x4, lane int) Int32x4 {
	return mlsl[int32, int16, Int32x4](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vmlsl_lane_s32(a Int64x2, b, v Int32x2, lane int) Int64x2 {
	return mlsl[int64, int32, Int64x2](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vmlsl_lane_u16(a Uint32x4, b, v Uint16x4, lane int) Uint32x4 {
	return mlsl[uint32, uint16, Uint32x4](a, b, dupLane[uint16, Uint16x4](v, lane))
}

func Vmlsl_lane_u32(a Uint64x2, b, v Uint32x2, lane int) Uint64x2 {
	return mlsl[uint64, uint32, Uint64x2](a, b, dupLane[uint32, Uint32x2](v, lane))
}

// Vaddhn_s16 returns the high half of each sum a + b.
func Vaddhn_s16(a, b Int16x8) Int8x8 { return addhn[int8, int16, Int8x8](a, b) }
func Vaddhn_s32(a, b Int32x4) Int16x4 { return addhn[int16, int32, Int16x4](a, b) }
func Vaddhn_s64(a, b Int64x2) Int32x2 { return addhn[int32, int64, Int32x2](a, b) }
func Vaddhn_u16(a, b Uint16x8) Uint8x8 { return addhn[uint8, uint16, Uint8x8](a, b) }
func Vaddhn_u32(a, b Uint32x4) Uint16x4 { return addhn[uint16, uint32, Uint16x4](a, b) }
func Vaddhn_u64(a, b Uint64x2) Uint32x2 { return addhn[uint32, uint64, Uint32x2](a, b) }

// Vaddhn_high_s16 places Vaddhn_s16 in the high half, above r.
func Vaddhn_high_s16(r Int8x8, a, b Int16x8) Int8x16 { return Vcombine_s8(r, Vaddhn_s16(a, b)) }
func Vaddhn_high_s32(r Int16x4, a, b Int32x4) Int16x8 { return Vcombine_s16(r, Vaddhn_s32(a, b)) }
func Vaddhn_high_s64(r Int32x2, a, b Int64x2) Int32x4 { return Vcombine_s32(r, Vaddhn_s64(a, b)) }
func Vaddhn_high_u16(r Uint8x8, a, b Uint16x8) Uint8x16 { return Vcombine_u8(r, Vaddhn_u16(a, b)) }

func Vaddhn_high_u32(r Uint16x4, a, b Uint32x4) Uint16x8 {
	return Vcombine_u16(r, Vaddhn_u32(a, b))
}

func Vaddhn_high_u64(r Uint32x2, a, b Uint64x2) Uint32x4 {
	return Vcombine_u32(r, Vaddhn_u64(a, b))
}

// Vraddhn_s16 returns the rounded high half of each sum a + b.
func Vraddhn_s16(a, b Int16x8) Int8x8 { return raddhn[int8, int16, Int8x8](a, b) }
func Vraddhn_s32(a, b Int32x4) Int16x4 { return raddhn[int16, int32, Int16x4](a, b) }
func Vraddhn_s64(a, b Int64x2) Int32x2 { return raddhn[int32, int64, Int32x2](a, b) }
func Vraddhn_u16(a, b Uint16x8) Uint8x8 { return raddhn[uint8, uint16, Uint8x8](a, b) }
func Vraddhn_u32(a, b Uint32x4) Uint16x4 { return raddhn[uint16, uint32, Uint16x4](a, b) }
func Vraddhn_u64(a, b Uint64x2) Uint32x2 { return raddhn[uint32, uint64, Uint32x2](a, b) }

// Vraddhn_high_s16 places Vraddhn_s16 in the high half, above r.
func Vraddhn_high_s16(r Int8x8, a, b Int16x8) Int8x16 { return Vcombine_s8(r, Vraddhn_s16(a, b)) }
func Vraddhn_high_s32(r Int16x4, a, b Int32x4) Int16x8 { return Vcombine_s16(r, Vraddhn_s32(a, b)) }
func Vraddhn_high_s64(r Int32x2, a, b Int64x2) Int32x4 { return Vcombine_s32(r, Vraddhn_s64(a, b)) }

func Vraddhn_high_u16(r Uint8x8, a, b Uint16x8) Uint8x16 {
	return Vcombine_u8(r, Vraddhn_u16(a, b))
}

func Vraddhn_high_u32(r Uint16x4, a, b Uint32x4) Uint16x8 {
	return Vcombine_u16(r, Vraddhn_u32(a, b))
}

func Vraddhn_high_u64(r Uint32x2, a, b Uint64x2) Uint32x4 {
	return Vcombine_u32(r, Vraddhn_u64(a, b))
}

// Vsubhn_s16 returns the high half of each difference a - b.
func Vsubhn_s16(a, b Int16x8) Int8x8 { return subhn[int8, int16, Int8x8](a, b) }
func Vsubhn_s32(a, b Int32x4) Int16x4 { return subhn[int16, int32, Int16x4](a, b) }
func Vsubhn_s64(a, b Int64x2) Int32x2 { return subhn[int32, int64, Int32x2](a, b) }
func Vsubhn_u16(a, b Uint16x8) Uint8x8 { return subhn[uint8, uint16, Uint8x8](a, b) }
func Vsubhn_u32(a, b Uint32x4) Uint16x4 { return subhn[uint16, uint32, Uint16x4](a, b) }
func Vsubhn_u64(a, b Uint64x2) Uint32x2 { return subhn[uint32, uint64, Uint32x2](a, b) }

// Vsubhn_high_s16 places Vsubhn_s16 in the high half, above r.
func Vsubhn_high_s16(r Int8x8, a, b Int16x8) Int8x16 { return Vcombine_s8(r, Vsubhn_s16(a, b)) }
func Vsubhn_high_s32(r Int16x4, a, b Int32x4) Int16x8 { return Vcombine_s16(r, Vsubhn_s32(a, b)) }
func Vsubhn_high_s64(r Int32x2, a, b Int64x2) Int32x4 { return Vcombine_s32(r, Vsubhn_s64(a, b)) }
func Vsubhn_high_u16(r Uint8x8, a, b Uint16x8) Uint8x16 { return Vcombine_u8(r, Vsubhn_u16(a, b)) }

func Vsubhn_high_u32(r Uint16x4, a, b Uint32x4) Uint16x8 {
	return Vcombine_u16(r, Vsubhn_u32(a, b))
}

func Vsubhn_high_u64(r Uint32x2, a, b Uint64x2) Uint32x4 {
	return Vcombine_u32(r, Vsubhn_u64(a, b))
}

// Vrsubhn_s16 returns the rounded high half of each difference a - b.
func Vrsubhn_s16(a, b Int16x8) Int8x8 { return rsubhn[int8, int16, Int8x8](a, b) }
func Vrsubhn_s32(a, b Int32x4) Int16x4 { return rsubhn[int16, int32, Int16x4](a, b) }
func Vrsubhn_s64(a, b Int64x2) Int32x2 { return rsubhn[int32, int64, Int32x2](a, b) }
func Vrsubhn_u16(a, b Uint16x8) Uint8x8 { return rsubhn[uint8, uint16, Uint8x8](a, b) }
func Vrsubhn_u32(a, b Uint32x4) Uint16x4 { return rsubhn[uint16, uint32, Uint16x4](a, b) }
func Vrsubhn_u64(a, b Uint64x2) Uint32x2 { return rsubhn[uint32, uint64, Uint32x2](a, b) }

// Vrsubhn_high_s16 places Vrsubhn_s16 in the high half, above r.
func Vrsubhn_high_s16(r Int8x8, a, b Int16x8) Int8x16 { return Vcombine_s8(r, Vrsubhn_s16(a, b)) }
func Vrsubhn_high_s32(r Int16x4, a, b Int32x4) Int16x8 { return Vcombine_s16(r, Vrsubhn_s32(a, b)) }
func Vrsubhn_high_s64(r Int32x2, a, b Int64x2) Int32x4 { return Vcombine_s32(r, Vrsubhn_s64(a, b)) }

func Vrsubhn_high_u16(r Uint8x8, a, b Uint16x8) Uint8x16 {
	return Vcombine_u8(r, Vrsubhn_u16(a, b))
}

func Vrsubhn_high_u32(r Uint16x4, a, b Uint32x4) Uint16x8 {
	return Vcombine_u16(r, Vrsubhn_u32(a, b))
}

func Vrsubhn_high_u64(r Uint32x2, a, b Uint64x2) Uint32x4 {
	return Vcombine_u32(r, Vrsubhn_u64(a, b))
}

// Vpadd_s8 adds adjacent lane pairs of a, then of b.
func Vpadd_s8(a, b Int8x8) Int8x8 { return padd[int8](a, b) }
func Vpadd_s16(a, b Int16x4) Int16x4 { return padd[int16](a, b) }
func Vpadd_s32(a, b Int32x2) Int32x2 { return padd[int32](a, b) }
func Vpadd_u8(a, b Uint8x8) Uint8x8 { return padd[uint8](a, b) }
func Vpadd_u16(a, b Uint16x4) Uint16x4 { return padd[uint16](a, b) }
func Vpadd_u32(a, b Uint32x2) Uint32x2 { return padd[uint32](a, b) }
func Vpadd_f32(a, b Float32x2) Float32x2 { return fpadd[float32](a, b) }
func Vpaddq_s8(a, b Int8x16) Int8x16 { return padd[int8](a, b) }
func Vpaddq_s16(a, b Int16x8) Int16x8 { return padd[int16](a, b) }
func Vpaddq_s32(a, b Int32x4) Int32x4 { return padd[int32](a, b) }
func Vpaddq_u8(a, b Uint8x16) Uint8x16 { return padd[uint8](a, b) }
func Vpaddq_u16(a, b Uint16x8) Uint16x8 { return padd[uint16](a, b) }
func Vpaddq_u32(a, b Uint32x4) Uint32x4 { return padd[uint32](a, b) }
func Vpaddq_f32(a, b Float32x4) Float32x4 { return fpadd[float32](a, b) }

func Vpaddq_s64(a, b Int64x2) Int64x2 { return padd[int64](a, b) }
func Vpaddq_u64(a, b Uint64x2) Uint64x2 { return padd[uint64](a, b) }
func Vpaddq_f64(a, b Float64x2) Float64x2 { return fpadd[float64](a, b) }

// Vpmax_s8 returns the larger lane of each adjacent pair of a, then of b.
func Vpmax_s8(a, b Int8x8) Int8x8 { return pmax[int8](a, b) }
func Vpmax_s16(a, b Int16x4) Int16x4 { return pmax[int16](a, b) }
func Vpmax_s32(a, b Int32x2) Int32x2 { return pmax[int32](a, b) }
func Vpmax_u8(a, b Uint8x8) Uint8x8 { return pmax[uint8](a, b) }
func Vpmax_u16(a, b Uint16x4) Uint16x4 { return pmax[uint16](a, b) }
func Vpmax_u32(a, b Uint32x2) Uint32x2 { return pmax[uint32](a, b) }
func Vpmax_f32(a, b Float32x2) Float32x2 { return fpmax[float32](a, b) }
func Vpmaxq_s8(a, b Int8x16) Int8x16 { return pmax[int8](a, b) }
func Vpmaxq_s16(a, b Int16x8) Int16x8 { return pmax[int16](a, b) }
func Vpmaxq_s32(a, b Int32x4) Int32x4 { return pmax[int32](a, b) }
func Vpmaxq_u8(a, b Uint8x16) Uint8x16 { return pmax[uint8](a, b) }
func Vpmaxq_u16(a, b Uint16x8) Uint16x8 { return pmax[uint16](a, b) }
func Vpmaxq_u32(a, b Uint32x4) Uint32x4 { return pmax[uint32](a, b) }
func Vpmaxq_f32(a, b Float32x4) Float32x4 { return fpmax[float32](a, b) }

// Vpmin_s8 returns the smaller lane of each adjacent pair of a, then of b.
func Vpmin_s8(a, b Int8x8) Int8x8 { return pmin[int8](a, b) }
func Vpmin_s16(a, b Int16x4) Int16x4 { return pmin[int16](a, b) }
func Vpmin_s32(a, b Int32x2) Int32x2 { return pmin[int32](a, b) }
func Vpmin_u8(a, b Uint8x8) Uint8x8 { return pmin[uint8](a, b) }
func Vpmin_u16(a, b Uint16x4) Uint16x4 { return pmin[uint16](a, b) }
func Vpmin_u32(a, b Uint32x2) Uint32x2 { return pmin[uint32](a, b) }
func Vpmin_f32(a, b Float32x2) Float32x2 { return fpmin[float32](a, b) }
func Vpminq_s8(a, b Int8x16) Int8x16 { return pmin[int8](a, b) }
func Vpminq_s16(a, b Int16x8) Int16x8 { return pmin[int16](a, b) }
func Vpminq_s32(a, b Int32x4) Int32x4 { return pmin[int32](a, b) }
func Vpminq_u8(a, b Uint8x16) Uint8x16 { return pmin[uint8](a, b) }
func Vpminq_u16(a, b Uint16x8) Uint16x8 { return pmin[uint16](a, b) }
func Vpminq_u32(a, b Uint32x4) Uint32x4 { return pmin[uint32](a, b) }
func Vpminq_f32(a, b Float32x4) Float32x4 { return fpmin[float32](a, b) }

// Vpaddl_s8 adds adjacent lane pairs into the double-width type.
func Vpaddl_s8(a Int8x8) Int16x4 { return paddl[int16, int8, Int16x4](a) }
func Vpaddl_s16(a Int16x4) Int32x2 { return paddl[int32, int16, Int32x2](a) }
func Vpaddl_s32(a Int32x2) Int64x1 { return paddl[int64, int32, Int64x1](a) }
func Vpaddl_u8(a Uint8x8) Uint16x4 { return paddl[uint16, uint8, Uint16x4](a) }
func Vpaddl_u16(a Uint16x4) Uint32x2 { return paddl[uint32, uint16, Uint32x2](a) }
func Vpaddl_u32(a Uint32x2) Uint64x1 { return paddl[uint64, uint32, Uint64x1](a) }
func Vpaddlq_s8(a Int8x16) Int16x8 { return paddl[int16, int8, Int16x8](a) }
func Vpaddlq_s16(a Int16x8) Int32x4 { return paddl[int32, int16, Int32x4](a) }
func Vpaddlq_s32(a Int32x4) Int64x2 { return paddl[int64, int32, Int64x2](a) }
func Vpaddlq_u8(a Uint8x16) Uint16x8 { return paddl[uint16, uint8, Uint16x8](a) }
func Vpaddlq_u16(a Uint16x8) Uint32x4 { return paddl[uint32, uint16, Uint32x4](a) }
func Vpaddlq_u32(a Uint32x4) Uint64x2 { return paddl[uint64, uint32, Uint64x2](a) }

// Vpadal_s8 adds adjacent lane pairs of b into the double-width lanes of a.
func Vpadal_s8(a Int16x4, b Int8x8) Int16x4 { return padal[int16, int8, Int16x4](a, b) }
func Vpadal_s16(a Int32x2, b Int16x4) Int32x2 { return padal[int32, int16, Int32x2](a, b) }
func Vpadal_s32(a Int64x1, b Int32x2) Int64x1 { return padal[int64, int32, Int64x1](a, b) }
func Vpadal_u8(a Uint16x4, b Uint8x8) Uint16x4 { return padal[uint16, uint8, Uint16x4](a, b) }
func Vpadal_u16(a Uint32x2, b Uint16x4) Uint32x2 { return padal[uint32, uint16, Uint32x2](a, b) }
func Vpadal_u32(a Uint64x1, b Uint32x2) Uint64x1 { return padal[uint64, uint32, Uint64x1](a, b) }
func Vpadalq_s8(a Int16x8, b Int8x16) Int16x8 { return padal[int16, int8, Int16x8](a, b) }
func Vpadalq_s16(a Int32x4, b Int16x8) Int32x4 { return padal[int32, int16, Int32x4](a, b) }
func Vpadalq_s32(a Int64x2, b Int32x4) Int64x2 { return padal[int64, int32, Int64x2](a, b) }
func Vpadalq_u8(a Uint16x8, b Uint8x16) Uint16x8 { return padal[uint16, uint8, Uint16x8](a, b) }
func Vpadalq_u16(a Uint32x4, b Uint16x8) Uint32x4 { return padal[uint32, uint16, Uint32x4](a, b) }
func Vpadalq_u32(a Uint64x2, b Uint32x4) Uint64x2 { return padal[uint64, uint32, Uint64x2](a, b) }

// Vqdmulh_s16 returns the high half of 2*a*b, saturated.
func Vqdmulh_s16(a, b Int16x4) Int16x4 { return qdmulh[int16](a, b) }
func Vqdmulh_s32(a, b Int32x2) Int32x2 { return qdmulh[int32](a, b) }
func Vqdmulhq_s16(a, b Int16x8) Int16x8 { return qdmulh[int16](a, b) }
func Vqdmulhq_s32(a, b Int32x4) Int32x4 { return qdmulh[int32](a, b) }
func Vqdmulh_n_s16(a Int16x4, b int16) Int16x4 { return qdmulh[int16](a, dup[int16, Int16x4](b)) }
func Vqdmulh_n_s32(a Int32x2, b int32) Int32x2 { return qdmulh[int32](a, dup[int32, Int32x2](b)) }
func Vqdmulhq_n_s16(a Int16x8, b int16) Int16x8 { return qdmulh[int16](a, dup[int16, Int16x8](b)) }
func Vqdmulhq_n_s32(a Int32x4, b int32) Int32x4 { return qdmulh[int32](a, dup[int32, Int32x4](b)) }

func Vqdmulh_lane_s16(a Int16x4, v Int16x4, lane int) Int16x4 {
	return qdmulh[int16](a, dupLane[int16, Int16x4](v, lane))
}

func Vqdmulh_lane_s32(a Int32x2, v Int32x2, lane int) Int32x2 {
	return qdmulh[int32](a, dupLane[int32, Int32x2](v, lane))
}

func Vqdmulhq_lane_s16(a Int16x8, v Int16x4, lane int) Int16x8 {
	return qdmulh[int16](a, dupLane[int16, Int16x8](v, lane))
}

func Vqdmulhq_lane_s32(a Int32x4, v Int32x2, lane int) Int32x4 {
	return qdmulh[int32](a, dupLane[int32, Int32x4](v, lane))
}

// Vqrdmulh_s16 returns the rounded high half of 2*a*b, saturated.
func Vqrdmulh_s16(a, b Int16x4) Int16x4 { return qrdmulh[int16](a, b) }
func Vqrdmulh_s32(a, b Int32x2) Int32x2 { return qrdmulh[int32](a, b) }
func Vqrdmulhq_s16(a, b Int16x8) Int16x8 { return qrdmulh[int16](a, b) }
func Vqrdmulhq_s32(a, b Int32x4) Int32x4 { return qrdmulh[int32](a, b) }
func Vqrdmulh_n_s16(a Int16x4, b int16) Int16x4 { return qrdmulh[int16](a, dup[int16, Int16x4](b)) }
func Vqrdmulh_n_s32(a Int32x2, b int32) Int32x2 { return qrdmulh[int32](a, dup[int32, Int32x2](b)) }

func Vqrdmulhq_n_s16(a Int16x8, b int16) Int16x8 {
	return qrdmulh[int16](a, dup[int16, Int16x8](b))
}

func Vqrdmulhq_n_s32(a Int32x4, b int32) Int32x4 {
	return qrdmulh[int32](a, dup[int32, Int32x4](b))
}

func Vqrdmulh_lane_s16(a Int16x4, v Int16x4, lane int) Int16x4 {
	return qrdmulh[int16](a, dupLane[int16, Int16x4](v, lane))
}

func Vqrdmulh_lane_s32(a Int32x2, v Int32x2, lane int) Int32x2 {
	return qrdmulh[int32](a, dupLane[int32, Int32x2](v, lane))
}

func Vqrdmulhq_lane_s16(a Int16x8, v Int16x4, lane int) Int16x8 {
	return qrdmulh[int16](a, dupLane[int16, Int16x8](v, lane))
}

func Vqrdmulhq_lane_s32(a Int32x4, v Int32x2, lane int) Int32x4 {
	return qrdmulh[int32](a, dupLane[int32, Int32x4](v, lane))
}

// Vqdmull_s16 returns 2*a*b in the double-width type, saturated.
func Vqdmull_s16(a, b Int16x4) Int32x4 { return qdmull[int32, int16, Int32x4](a, b) }
func Vqdmull_s32(a, b Int32x2) Int64x2 { return qdmull[int64, int32, Int64x2](a, b) }

func Vqdmull_n_s16(a Int16x4, b int16) Int32x4 {
	return qdmull[int32, int16, Int32x4](a, dup[int16, Int16x4](b))
}

func Vqdmull_lane_s16(a, v Int16x4, lane int) Int32x4 {
	return qdmull[int32, int16, Int32x4](a, dupLane[int16, Int16x4](v, lane))
}

func Vqdmull_high_s16(a, b Int16x8) Int32x4 {
	return Vqdmull_s16(Vget_high_s16(a), Vget_high_s16(b))
}

func Vqdmull_n_s32(a Int32x2, b int32) Int64x2 {
	return qdmull[int64, int32, Int64x2](a, dup[int32, Int32x2](b))
}

func Vqdmull_lane_s32(a, v Int32x2, lane int) Int64x2 {
	return qdmull[int64, int32, Int64x2](a, dupLane[int32, Int32x2](v, lane))
}

func Vqdmull_high_s32(a, b Int32x4) Int64x2 {
	return Vqdmull_s32(Vget_high_s32(a), Vget_high_s32(b))
}

// Vqdmlal_s16 adds the saturated 2*b*c to a, saturating again.
func Vqdmlal_s16(a Int32x4, b, c Int16x4) Int32x4 { return qdmlal[int32, int16, Int32x4](a, b, c) }
func Vqdmlal_s32(a Int64x2, b, c Int32x2) Int64x2 { return qdmlal[int64, int32, Int64x2](a, b, c) }

func Vqdmlal_n_s16(a Int32x4, b Int16x4, c int16) Int32x4 {
	return qdmlal[int32, int16, Int32x4](a, b, dup[int16, Int16x4](c))
}

func Vqdmlal_lane_s16(a Int32x4, b, v Int16x4, lane int) Int32x4 {
	return qdmlal[int32, int16, Int32x4](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vqdmlal_high_s16(a Int32x4, b, c Int16x8) Int32x4 {
	return Vqdmlal_s16(a, Vget_high_s16(b), Vget_high_s16(c))
}

func Vqdmlal_n_s32(a Int64x2, b Int32x2, c int32) Int64x2 {
	return qdmlal[int64, int32, Int64x2](a, b, dup[int32, Int32x2](c))
}

func Vqdmlal_lane_s32(a Int64x2, b, v Int32x2, lane int) Int64x2 {
	return qdmlal[int64, int32, Int64x2](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vqdmlal_high_s32(a Int64x2, b, c Int32x4) Int64x2 {
	return Vqdmlal_s32(a, Vget_high_s32(b), Vget_high_s32(c))
}

// Vqdmlsl_s16 subtracts the saturated 2*b*c from a, saturating again.
func Vqdmlsl_s16(a Int32x4, b, c Int16x4) Int32x4 { return qdmlsl[int32, int16, Int32x4](a, b, c) }
func Vqdmlsl_s32(a Int64x2, b, c Int32x2) Int64x2 { return qdmlsl[int64, int32, Int64x2](a, b, c) }

func Vqdmlsl_n_s16(a Int32x4, b Int16x4, c int16) Int32x4 {
	return qdmlsl[int32, int16, Int32x4](a, b, dup[int16, Int16x4](c))
}

func Vqdmlsl_lane_s16(a Int32x4, b, v Int16x4, lane int) Int32x4 {
	return qdmlsl[int32, int16, Int32x4](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vqdmlsl_high_s16(a Int32x4, b, c Int16x8) Int32x4 {
	return Vqdmlsl_s16(a, Vget_high_s16(b), Vget_high_s16(c))
}

func Vqdmlsl_n_s32(a Int64x2, b Int32x2, c int32) Int64x2 {
	return qdmlsl[int64, int32, Int64x2](a, b, dup[int32, Int32x2](c))
}

func Vqdmlsl_lane_s32(a Int64x2, b, v Int32x2, lane int) Int64x2 {
	return qdmlsl[int64, int32, Int64x2](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vqdmlsl_high_s32(a Int64x2, b, c Int32x4) Int64x2 {
	return Vqdmlsl_s32(a, Vget_high_s32(b), Vget_high_s32(c))
}

// Vqrdmlah_s16 returns the saturated, rounded high half of (a << esize) +
// 2*b*c.
func Vqrdmlah_s16(a, b, c Int16x4) Int16x4 { return qrdmlah[int16, int32](a, b, c) }
func Vqrdmlah_s32(a, b, c Int32x2) Int32x2 { return qrdmlah[int32, int64](a, b, c) }
func Vqrdmlahq_s16(a, b, c Int16x8) Int16x8 { return qrdmlah[int16, int32](a, b, c) }
func Vqrdmlahq_s32(a, b, c Int32x4) Int32x4 { return qrdmlah[int32, int64](a, b, c) }

func Vqrdmlah_lane_s16(a, b Int16x4, v Int16x4, lane int) Int16x4 {
	return qrdmlah[int16, int32](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vqrdmlah_lane_s32(a, b Int32x2, v Int32x2, lane int) Int32x2 {
	return qrdmlah[int32, int64](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vqrdmlahq_lane_s16(a, b Int16x8, v Int16x4, lane int) Int16x8 {
	return qrdmlah[int16, int32](a, b, dupLane[int16, Int16x8](v, lane))
}

func Vqrdmlahq_lane_s32(a, b Int32x4, v Int32x2, lane int) Int32x4 {
	return qrdmlah[int32, int64](a, b, dupLane[int32, Int32x4](v, lane))
}

// Vqrdmlsh_s16 returns the saturated, rounded high half of (a << esize) -
// 2*b*c.
func Vqrdmlsh_s16(a, b, c Int16x4) Int16x4 { return qrdmlsh[int16, int32](a, b, c) }
func Vqrdmlsh_s32(a, b, c Int32x2) Int32x2 { return qrdmlsh[int32, int64](a, b, c) }
func Vqrdmlshq_s16(a, b, c Int16x8) Int16x8 { return qrdmlsh[int16, int32](a, b, c) }
func Vqrdmlshq_s32(a, b, c Int32x4) Int32x4 { return qrdmlsh[int32, int64](a, b, c) }

func Vqrdmlsh_lane_s16(a, b Int16x4, v Int16x4, lane int) Int16x4 {
	return qrdmlsh[int16, int32](a, b, dupLane[int16, Int16x4](v, lane))
}

func Vqrdmlsh_lane_s32(a, b Int32x2, v Int32x2, lane int) Int32x2 {
	return qrdmlsh[int32, int64](a, b, dupLane[int32, Int32x2](v, lane))
}

func Vqrdmlshq_lane_s16(a, b Int16x8, v Int16x4, lane int) Int16x8 {
	return qrdmlsh[int16, int32](a, b, dupLane[int16, Int16x8](v, lane))
}

func Vqrdmlshq_lane_s32(a, b Int32x4, v Int32x2, lane int) Int32x4 {
	return qrdmlsh[int32, int64](a, b, dupLane[int32, Int32x4](v, lane))
}
