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

// Vcadd_rot90_f32 adds b rotated by 90 degrees in the complex plane to a.
func Vcadd_rot90_f32(a, b Float32x2) Float32x2 { return cadd[float32](a, b, 90) }
func Vcaddq_rot90_f32(a, b Float32x4) Float32x4 { return cadd[float32](a, b, 90) }
func Vcaddq_rot90_f64(a, b Float64x2) Float64x2 { return cadd[float64](a, b, 90) }

// Vcadd_rot270_f32 adds b rotated by 270 degrees in the complex plane to a.
func Vcadd_rot270_f32(a, b Float32x2) Float32x2 { return cadd[float32](a, b, 270) }
func Vcaddq_rot270_f32(a, b Float32x4) Float32x4 { return cadd[float32](a, b, 270) }
func Vcaddq_rot270_f64(a, b Float64x2) Float64x2 { return cadd[float64](a, b, 270) }

// Vcmla_f32 accumulates the rotation 0 half of the complex product a*b into
// r. Vcmla followed by Vcmla_rot90 adds the full product.
func Vcmla_f32(r, a, b Float32x2) Float32x2 { return cmla[float32](r, a, b, 0) }
func Vcmlaq_f32(r, a, b Float32x4) Float32x4 { return cmla[float32](r, a, b, 0) }
func Vcmlaq_f64(r, a, b Float64x2) Float64x2 { return cmla[float64](r, a, b, 0) }

// Vcmla_lane_f32 uses complex pair lane of b for every pair.
func Vcmla_lane_f32(r, a Float32x2, b Float32x2, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 0)
}

func Vcmla_laneq_f32(r, a Float32x2, b Float32x4, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 0)
}

func Vcmlaq_lane_f32(r, a Float32x4, b Float32x2, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 0)
}

func Vcmlaq_laneq_f32(r, a Float32x4, b Float32x4, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 0)
}

// Vcmla_rot90_f32 accumulates the rotation 90 half of the complex product
// a*b into r.
func Vcmla_rot90_f32(r, a, b Float32x2) Float32x2 { return cmla[float32](r, a, b, 90) }
func Vcmlaq_rot90_f32(r, a, b Float32x4) Float32x4 { return cmla[float32](r, a, b, 90) }
func Vcmlaq_rot90_f64(r, a, b Float64x2) Float64x2 { return cmla[float64](r, a, b, 90) }

// Vcmla_rot90_lane_f32 uses complex pair lane of b for every pair.
func Vcmla_rot90_lane_f32(r, a Float32x2, b Float32x2, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 90)
}

func Vcmla_rot90_laneq_f32(r, a Float32x2, b Float32x4, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 90)
}

func Vcmlaq_rot90_lane_f32(r, a Float32x4, b Float32x2, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 90)
}

func Vcmlaq_rot90_laneq_f32(r, a Float32x4, b Float32x4, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 90)
}

// Vcmla_rot180_f32 accumulates the rotation 180 half of the complex product
// a*b into r.
func Vcmla_rot180_f32(r, a, b Float32x2) Float32x2 { return cmla[float32](r, a, b, 180) }
func Vcmlaq_rot180_f32(r, a, b Float32x4) Float32x4 { return cmla[float32](r, a, b, 180) }
func Vcmlaq_rot180_f64(r, a, b Float64x2) Float64x2 { return cmla[float64](r, a, b, 180) }

// Vcmla_rot180_lane_f32 uses complex pair lane of b for every pair.
func Vcmla_rot180_lane_f32(r, a Float32x2, b Float32x2, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 180)
}

func Vcmla_rot180_laneq_f32(r, a Float32x2, b Float32x4, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 180)
}

func Vcmlaq_rot180_lane_f32(r, a Float32x4, b Float32x2, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 180)
}

func Vcmlaq_rot180_laneq_f32(r, a Float32x4, b Float32x4, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 180)
}

// Vcmla_rot270_f32 accumulates the rotation 270 half of the complex product
// a*b into r.
func Vcmla_rot270_f32(r, a, b Float32x2) Float32x2 { return cmla[float32](r, a, b, 270) }
func Vcmlaq_rot270_f32(r, a, b Float32x4) Float32x4 { return cmla[float32](r, a, b, 270) }
func Vcmlaq_rot270_f64(r, a, b Float64x2) Float64x2 { return cmla[float64](r, a, b, 270) }

// Vcmla_rot270_lane_f32 uses complex pair lane of b for every pair.
func Vcmla_rot270_lane_f32(r, a Float32x2, b Float32x2, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 270)
}

func Vcmla_rot270_laneq_f32(r, a Float32x2, b Float32x4, lane int) Float32x2 {
	return cmla[float32](r, a, dupPair[float32, Float32x2](b, lane), 270)
}

func Vcmlaq_rot270_lane_f32(r, a Float32x4, b Float32x2, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 270)
}

func Vcmlaq_rot270_laneq_f32(r, a Float32x4, b Float32x4, lane int) Float32x4 {
	return cmla[float32](r, a, dupPair[float32, Float32x4](b, lane), 270)
}
