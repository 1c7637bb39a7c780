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

// Package neon provides the Arm NEON intrinsics as Go functions over
// fixed-width vector values, emulated with the RISC-V Vector model in
// package rvv.
//
// Each intrinsic keeps its C name with the first letter capitalised and
// takes the corresponding fixed vector types, so ported code reads like
// the original:
//
//	a := neon.Vld1q_s16(src)
//	b := neon.Vdupq_n_s16(3)
//	r := neon.Vqaddq_s16(a, b)
//	neon.Vst1q_s16(dst, r)
//
// Vectors are plain arrays and are passed by value. Every operation is a
// pure function of its arguments and is safe for concurrent use.
package neon

// Int8x8 is a 64-bit vector of 8 int8 lanes (int8x8_t).
type Int8x8 [8]int8

// Int16x4 is a 64-bit vector of 4 int16 lanes (int16x4_t).
type Int16x4 [4]int16

// Int32x2 is a 64-bit vector of 2 int32 lanes (int32x2_t).
type Int32x2 [2]int32

// Int64x1 is a 64-bit vector of 1 int64 lanes (int64x1_t).
type Int64x1 [1]int64

// Uint8x8 is a 64-bit vector of 8 uint8 lanes (uint8x8_t).
type Uint8x8 [8]uint8

// Uint16x4 is a 64-bit vector of 4 uint16 lanes (uint16x4_t).
type Uint16x4 [4]uint16

// Uint32x2 is a 64-bit vector of 2 uint32 lanes (uint32x2_t).
type Uint32x2 [2]uint32

// Uint64x1 is a 64-bit vector of 1 uint64 lanes (uint64x1_t).
type Uint64x1 [1]uint64

// Float32x2 is a 64-bit vector of 2 float32 lanes (float32x2_t).
type Float32x2 [2]float32

// Float64x1 is a 64-bit vector of 1 float64 lanes (float64x1_t).
type Float64x1 [1]float64

// Int8x16 is a 128-bit vector of 16 int8 lanes (int8x16_t).
type Int8x16 [16]int8

// Int16x8 is a 128-bit vector of 8 int16 lanes (int16x8_t).
type Int16x8 [8]int16

// Int32x4 is a 128-bit vector of 4 int32 lanes (int32x4_t).
type Int32x4 [4]int32

// Int64x2 is a 128-bit vector of 2 int64 lanes (int64x2_t).
type Int64x2 [2]int64

// Uint8x16 is a 128-bit vector of 16 uint8 lanes (uint8x16_t).
type Uint8x16 [16]uint8

// Uint16x8 is a 128-bit vector of 8 uint16 lanes (uint16x8_t).
type Uint16x8 [8]uint16

// Uint32x4 is a 128-bit vector of 4 uint32 lanes (uint32x4_t).
type Uint32x4 [4]uint32

// Uint64x2 is a 128-bit vector of 2 uint64 lanes (uint64x2_t).
type Uint64x2 [2]uint64

// Float32x4 is a 128-bit vector of 4 float32 lanes (float32x4_t).
type Float32x4 [4]float32

// Float64x2 is a 128-bit vector of 2 float64 lanes (float64x2_t).
type Float64x2 [2]float64

// Int8x8x2, Int8x8x3 and Int8x8x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int8x8x2 struct{ Val [2]Int8x8 }
type Int8x8x3 struct{ Val [3]Int8x8 }
type Int8x8x4 struct{ Val [4]Int8x8 }

// Int16x4x2, Int16x4x3 and Int16x4x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int16x4x2 struct{ Val [2]Int16x4 }
type Int16x4x3 struct{ Val [3]Int16x4 }
type Int16x4x4 struct{ Val [4]Int16x4 }

// Int32x2x2, Int32x2x3 and Int32x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int32x2x2 struct{ Val [2]Int32x2 }
type Int32x2x3 struct{ Val [3]Int32x2 }
type Int32x2x4 struct{ Val [4]Int32x2 }

// Int64x1x2, Int64x1x3 and Int64x1x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int64x1x2 struct{ Val [2]Int64x1 }
type Int64x1x3 struct{ Val [3]Int64x1 }
type Int64x1x4 struct{ Val [4]Int64x1 }

// Uint8x8x2, Uint8x8x3 and Uint8x8x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint8x8x2 struct{ Val [2]Uint8x8 }
type Uint8x8x3 struct{ Val [3]Uint8x8 }
type Uint8x8x4 struct{ Val [4]Uint8x8 }

// Uint16x4x2, Uint16x4x3 and Uint16x4x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint16x4x2 struct{ Val [2]Uint16x4 }
type Uint16x4x3 struct{ Val [3]Uint16x4 }
type Uint16x4x4 struct{ Val [4]Uint16x4 }

// Uint32x2x2, Uint32x2x3 and Uint32x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint32x2x2 struct{ Val [2]Uint32x2 }
type Uint32x2x3 struct{ Val [3]Uint32x2 }
type Uint32x2x4 struct{ Val [4]Uint32x2 }

// Uint64x1x2, Uint64x1x3 and Uint64x1x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint64x1x2 struct{ Val [2]Uint64x1 }
type Uint64x1x3 struct{ Val [3]Uint64x1 }
type Uint64x1x4 struct{ Val [4]Uint64x1 }

// Float32x2x2, Float32x2x3 and Float32x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Float32x2x2 struct{ Val [2]Float32x2 }
type Float32x2x3 struct{ Val [3]Float32x2 }
type Float32x2x4 struct{ Val [4]Float32x2 }

// Float64x1x2, Float64x1x3 and Float64x1x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Float64x1x2 struct{ Val [2]Float64x1 }
type Float64x1x3 struct{ Val [3]Float64x1 }
type Float64x1x4 struct{ Val [4]Float64x1 }

// Int8x16x2, Int8x16x3 and Int8x16x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int8x16x2 struct{ Val [2]Int8x16 }
type Int8x16x3 struct{ Val [3]Int8x16 }
type Int8x16x4 struct{ Val [4]Int8x16 }

// Int16x8x2, Int16x8x3 and Int16x8x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int16x8x2 struct{ Val [2]Int16x8 }
type Int16x8x3 struct{ Val [3]Int16x8 }
type Int16x8x4 struct{ Val [4]Int16x8 }

// Int32x4x2, Int32x4x3 and Int32x4x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int32x4x2 struct{ Val [2]Int32x4 }
type Int32x4x3 struct{ Val [3]Int32x4 }
type Int32x4x4 struct{ Val [4]Int32x4 }

// Int64x2x2, Int64x2x3 and Int64x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Int64x2x2 struct{ Val [2]Int64x2 }
type Int64x2x3 struct{ Val [3]Int64x2 }
type Int64x2x4 struct{ Val [4]Int64x2 }

// Uint8x16x2, Uint8x16x3 and Uint8x16x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint8x16x2 struct{ Val [2]Uint8x16 }
type Uint8x16x3 struct{ Val [3]Uint8x16 }
type Uint8x16x4 struct{ Val [4]Uint8x16 }

// Uint16x8x2, Uint16x8x3 and Uint16x8x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint16x8x2 struct{ Val [2]Uint16x8 }
type Uint16x8x3 struct{ Val [3]Uint16x8 }
type Uint16x8x4 struct{ Val [4]Uint16x8 }

// Uint32x4x2, Uint32x4x3 and Uint32x4x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint32x4x2 struct{ Val [2]Uint32x4 }
type Uint32x4x3 struct{ Val [3]Uint32x4 }
type Uint32x4x4 struct{ Val [4]Uint32x4 }

// Uint64x2x2, Uint64x2x3 and Uint64x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Uint64x2x2 struct{ Val [2]Uint64x2 }
type Uint64x2x3 struct{ Val [3]Uint64x2 }
type Uint64x2x4 struct{ Val [4]Uint64x2 }

// Float32x4x2, Float32x4x3 and Float32x4x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Float32x4x2 struct{ Val [2]Float32x4 }
type Float32x4x3 struct{ Val [3]Float32x4 }
type Float32x4x4 struct{ Val [4]Float32x4 }

// Float64x2x2, Float64x2x3 and Float64x2x4 hold the vectors of an interleaved load or store. Val[i]
// is the vector at stride position i.
type Float64x2x2 struct{ Val [2]Float64x2 }
type Float64x2x3 struct{ Val [3]Float64x2 }
type Float64x2x4 struct{ Val [4]Float64x2 }
