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

// Vdot_s32 adds the dot product of each group of four bytes of a and b to
// the matching lane of r.
func Vdot_s32(r Int32x2, a, b Int8x8) Int32x2 { return dot[int32, int16, int8, Int32x2](r, a, b) }
func Vdotq_s32(r Int32x4, a, b Int8x16) Int32x4 { return dot[int32, int16, int8, Int32x4](r, a, b) }

// Vdot_lane_s32 is Vdot with the four-byte group lane of b used for every
// group.
func Vdot_lane_s32(r Int32x2, a Int8x8, b Int8x8, lane int) Int32x2 {
	return dot[int32, int16, int8, Int32x2](r, a, dupGroup[int8, Int8x8](b, lane))
}

func Vdot_laneq_s32(r Int32x2, a Int8x8, b Int8x16, lane int) Int32x2 {
	return dot[int32, int16, int8, Int32x2](r, a, dupGroup[int8, Int8x8](b, lane))
}

func Vdotq_lane_s32(r Int32x4, a Int8x16, b Int8x8, lane int) Int32x4 {
	return dot[int32, int16, int8, Int32x4](r, a, dupGroup[int8, Int8x16](b, lane))
}

func Vdotq_laneq_s32(r Int32x4, a Int8x16, b Int8x16, lane int) Int32x4 {
	return dot[int32, int16, int8, Int32x4](r, a, dupGroup[int8, Int8x16](b, lane))
}

func Vdot_u32(r Uint32x2, a, b Uint8x8) Uint32x2 {
	return dot[uint32, uint16, uint8, Uint32x2](r, a, b)
}

func Vdotq_u32(r Uint32x4, a, b Uint8x16) Uint32x4 {
	return dot[uint32, uint16, uint8, Uint32x4](r, a, b)
}

func Vdot_lane_u32(r Uint32x2, a Uint8x8, b Uint8x8, lane int) Uint32x2 {
	return dot[uint32, uint16, uint8, Uint32x2](r, a, dupGroup[uint8, Uint8x8](b, lane))
}

func Vdot_laneq_u32(r Uint32x2, a Uint8x8, b Uint8x16, lane int) Uint32x2 {
	return dot[uint32, uint16, uint8, Uint32x2](r, a, dupGroup[uint8, Uint8x8](b, lane))
}

func Vdotq_lane_u32(r Uint32x4, a Uint8x16, b Uint8x8, lane int) Uint32x4 {
	return dot[uint32, uint16, uint8, Uint32x4](r, a, dupGroup[uint8, Uint8x16](b, lane))
}

func Vdotq_laneq_u32(r Uint32x4, a Uint8x16, b Uint8x16, lane int) Uint32x4 {
	return dot[uint32, uint16, uint8, Uint32x4](r, a, dupGroup[uint8, Uint8x16](b, lane))
}

// Vusdot_s32 is Vdot with unsigned bytes in a and signed bytes in b.
func Vusdot_s32(r Int32x2, a Uint8x8, b Int8x8) Int32x2 { return usdot[Int32x2](r, a, b) }
func Vusdotq_s32(r Int32x4, a Uint8x16, b Int8x16) Int32x4 { return usdot[Int32x4](r, a, b) }

// Vusdot_lane_s32 is Vusdot with the four-byte group lane of b used for
// every group.
func Vusdot_lane_s32(r Int32x2, a Uint8x8, b Int8x8, lane int) Int32x2 {
	return usdot[Int32x2](r, a, dupGroup[int8, Int8x8](b, lane))
}

func Vusdot_laneq_s32(r Int32x2, a Uint8x8, b Int8x16, lane int) Int32x2 {
	return usdot[Int32x2](r, a, dupGroup[int8, Int8x8](b, lane))
}

func Vusdotq_lane_s32(r Int32x4, a Uint8x16, b Int8x8, lane int) Int32x4 {
	return usdot[Int32x4](r, a, dupGroup[int8, Int8x16](b, lane))
}

func Vusdotq_laneq_s32(r Int32x4, a Uint8x16, b Int8x16, lane int) Int32x4 {
	return usdot[Int32x4](r, a, dupGroup[int8, Int8x16](b, lane))
}

// Vsudot_lane_s32 multiplies signed bytes of a by the unsigned four-byte
// group lane of b.
func Vsudot_lane_s32(r Int32x2, a Int8x8, b Uint8x8, lane int) Int32x2 {
	return usdot[Int32x2](r, dupGroup[uint8, Uint8x8](b, lane), a)
}

func Vsudot_laneq_s32(r Int32x2, a Int8x8, b Uint8x16, lane int) Int32x2 {
	return usdot[Int32x2](r, dupGroup[uint8, Uint8x8](b, lane), a)
}

func Vsudotq_lane_s32(r Int32x4, a Int8x16, b Uint8x8, lane int) Int32x4 {
	return usdot[Int32x4](r, dupGroup[uint8, Uint8x16](b, lane), a)
}

func Vsudotq_laneq_s32(r Int32x4, a Int8x16, b Uint8x16, lane int) Int32x4 {
	return usdot[Int32x4](r, dupGroup[uint8, Uint8x16](b, lane), a)
}
