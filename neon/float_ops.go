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

// Vadd_f32 adds corresponding lanes.
func Vadd_f32(a, b Float32x2) Float32x2 { return fadd[float32](a, b) }
func Vadd_f64(a, b Float64x1) Float64x1 { return fadd[float64](a, b) }
func Vaddq_f32(a, b Float32x4) Float32x4 { return fadd[float32](a, b) }
func Vaddq_f64(a, b Float64x2) Float64x2 { return fadd[float64](a, b) }

// Vsub_f32 subtracts corresponding lanes.
func Vsub_f32(a, b Float32x2) Float32x2 { return fsub[float32](a, b) }
func Vsub_f64(a, b Float64x1) Float64x1 { return fsub[float64](a, b) }
func Vsubq_f32(a, b Float32x4) Float32x4 { return fsub[float32](a, b) }
func Vsubq_f64(a, b Float64x2) Float64x2 { return fsub[float64](a, b) }

// Vmul_f32 multiplies corresponding lanes.
func Vmul_f32(a, b Float32x2) Float32x2 { return fmul[float32](a, b) }
func Vmul_f64(a, b Float64x1) Float64x1 { return fmul[float64](a, b) }
func Vmulq_f32(a, b Float32x4) Float32x4 { return fmul[float32](a, b) }
func Vmulq_f64(a, b Float64x2) Float64x2 { return fmul[float64](a, b) }

// Vdiv_f32 divides corresponding lanes.
func Vdiv_f32(a, b Float32x2) Float32x2 { return fdiv[float32](a, b) }
func Vdiv_f64(a, b Float64x1) Float64x1 { return fdiv[float64](a, b) }
func Vdivq_f32(a, b Float32x4) Float32x4 { return fdiv[float32](a, b) }
func Vdivq_f64(a, b Float64x2) Float64x2 { return fdiv[float64](a, b) }

// Vmax_f32 returns the larger lane; a NaN operand propagates.
func Vmax_f32(a, b Float32x2) Float32x2 { return fmax[float32](a, b) }
func Vmax_f64(a, b Float64x1) Float64x1 { return fmax[float64](a, b) }
func Vmaxq_f32(a, b Float32x4) Float32x4 { return fmax[float32](a, b) }
func Vmaxq_f64(a, b Float64x2) Float64x2 { return fmax[float64](a, b) }

// Vmin_f32 returns the smaller lane; a NaN operand propagates.
func Vmin_f32(a, b Float32x2) Float32x2 { return fmin[float32](a, b) }
func Vmin_f64(a, b Float64x1) Float64x1 { return fmin[float64](a, b) }
func Vminq_f32(a, b Float32x4) Float32x4 { return fmin[float32](a, b) }
func Vminq_f64(a, b Float64x2) Float64x2 { return fmin[float64](a, b) }

// Vmaxnm_f32 returns the larger lane; a single quiet NaN operand is ignored.
func Vmaxnm_f32(a, b Float32x2) Float32x2 { return fmaxnm[float32](a, b) }
func Vmaxnm_f64(a, b Float64x1) Float64x1 { return fmaxnm[float64](a, b) }
func Vmaxnmq_f32(a, b Float32x4) Float32x4 { return fmaxnm[float32](a, b) }
func Vmaxnmq_f64(a, b Float64x2) Float64x2 { return fmaxnm[float64](a, b) }

// Vminnm_f32 returns the smaller lane; a single quiet NaN operand is
// ignored.
func Vminnm_f32(a, b Float32x2) Float32x2 { return fminnm[float32](a, b) }
func Vminnm_f64(a, b Float64x1) Float64x1 { return fminnm[float64](a, b) }
func Vminnmq_f32(a, b Float32x4) Float32x4 { return fminnm[float32](a, b) }
func Vminnmq_f64(a, b Float64x2) Float64x2 { return fminnm[float64](a, b) }

// Vabd_f32 returns |a - b|.
func Vabd_f32(a, b Float32x2) Float32x2 { return fabd[float32](a, b) }
func Vabd_f64(a, b Float64x1) Float64x1 { return fabd[float64](a, b) }
func Vabdq_f32(a, b Float32x4) Float32x4 { return fabd[float32](a, b) }
func Vabdq_f64(a, b Float64x2) Float64x2 { return fabd[float64](a, b) }

// Vmla_f32 returns a + b*c with the product rounded before the addition.
func Vmla_f32(a, b, c Float32x2) Float32x2 { return fmla[float32](a, b, c) }
func Vmla_f64(a, b, c Float64x1) Float64x1 { return fmla[float64](a, b, c) }
func Vmlaq_f32(a, b, c Float32x4) Float32x4 { return fmla[float32](a, b, c) }
func Vmlaq_f64(a, b, c Float64x2) Float64x2 { return fmla[float64](a, b, c) }

// Vmls_f32 returns a - b*c with the product rounded before the subtraction.
func Vmls_f32(a, b, c Float32x2) Float32x2 { return fmls[float32](a, b, c) }
func Vmls_f64(a, b, c Float64x1) Float64x1 { return fmls[float64](a, b, c) }
func Vmlsq_f32(a, b, c Float32x4) Float32x4 { return fmls[float32](a, b, c) }
func Vmlsq_f64(a, b, c Float64x2) Float64x2 { return fmls[float64](a, b, c) }

// Vfma_f32 returns a + b*c rounded once.
func Vfma_f32(a, b, c Float32x2) Float32x2 { return fma[float32](a, b, c) }
func Vfma_f64(a, b, c Float64x1) Float64x1 { return fma[float64](a, b, c) }
func Vfmaq_f32(a, b, c Float32x4) Float32x4 { return fma[float32](a, b, c) }
func Vfmaq_f64(a, b, c Float64x2) Float64x2 { return fma[float64](a, b, c) }

// Vfms_f32 returns a - b*c rounded once.
func Vfms_f32(a, b, c Float32x2) Float32x2 { return fms[float32](a, b, c) }
func Vfms_f64(a, b, c Float64x1) Float64x1 { return fms[float64](a, b, c) }
func Vfmsq_f32(a, b, c Float32x4) Float32x4 { return fms[float32](a, b, c) }
func Vfmsq_f64(a, b, c Float64x2) Float64x2 { return fms[float64](a, b, c) }

func Vmul_n_f32(a Float32x2, b float32) Float32x2 {
	return fmul[float32](a, dup[float32, Float32x2](b))
}

func Vmul_n_f64(a Float64x1, b float64) Float64x1 {
	return fmul[float64](a, dup[float64, Float64x1](b))
}

func Vmulq_n_f32(a Float32x4, b float32) Float32x4 {
	return fmul[float32](a, dup[float32, Float32x4](b))
}

func Vmulq_n_f64(a Float64x2, b float64) Float64x2 {
	return fmul[float64](a, dup[float64, Float64x2](b))
}

func Vmul_lane_f32(a Float32x2, v Float32x2, lane int) Float32x2 {
	return fmul[float32](a, dupLane[float32, Float32x2](v, lane))
}

func Vmul_lane_f64(a Float64x1, v Float64x1, lane int) Float64x1 {
	return fmul[float64](a, dupLane[float64, Float64x1](v, lane))
}

func Vmulq_lane_f32(a Float32x4, v Float32x2, lane int) Float32x4 {
	return fmul[float32](a, dupLane[float32, Float32x4](v, lane))
}

func Vmulq_lane_f64(a Float64x2, v Float64x1, lane int) Float64x2 {
	return fmul[float64](a, dupLane[float64, Float64x2](v, lane))
}

func Vmla_n_f32(a, b Float32x2, c float32) Float32x2 {
	return fmla[float32](a, b, dup[float32, Float32x2](c))
}

func Vmlaq_n_f32(a, b Float32x4, c float32) Float32x4 {
	return fmla[float32](a, b, dup[float32, Float32x4](c))
}

func Vmla_lane_f32(a, b Float32x2, v Float32x2, lane int) Float32x2 {
	return fmla[float32](a, b, dupLane[float32, Float32x2](v, lane))
}

func Vmlaq_lane_f32(a, b Float32x4, v Float32x2, lane int) Float32x4 {
	return fmla[float32](a, b, dupLane[float32, Float32x4](v, lane))
}

func Vmls_n_f32(a, b Float32x2, c float32) Float32x2 {
	return fmls[float32](a, b, dup[float32, Float32x2](c))
}

func Vmlsq_n_f32(a, b Float32x4, c float32) Float32x4 {
	return fmls[float32](a, b, dup[float32, Float32x4](c))
}

func Vmls_lane_f32(a, b Float32x2, v Float32x2, lane int) Float32x2 {
	return fmls[float32](a, b, dupLane[float32, Float32x2](v, lane))
}

func Vmlsq_lane_f32(a, b Float32x4, v Float32x2, lane int) Float32x4 {
	return fmls[float32](a, b, dupLane[float32, Float32x4](v, lane))
}

func Vfma_n_f32(a, b Float32x2, c float32) Float32x2 {
	return fma[float32](a, b, dup[float32, Float32x2](c))
}

func Vfma_n_f64(a, b Float64x1, c float64) Float64x1 {
	return fma[float64](a, b, dup[float64, Float64x1](c))
}

func Vfmaq_n_f32(a, b Float32x4, c float32) Float32x4 {
	return fma[float32](a, b, dup[float32, Float32x4](c))
}

func Vfmaq_n_f64(a, b Float64x2, c float64) Float64x2 {
	return fma[float64](a, b, dup[float64, Float64x2](c))
}

func Vfma_lane_f32(a, b Float32x2, v Float32x2, lane int) Float32x2 {
	return fma[float32](a, b, dupLane[float32, Float32x2](v, lane))
}

func Vfma_lane_f64(a, b Float64x1, v Float64x1, lane int) Float64x1 {
	return fma[float64](a, b, dupLane[float64, Float64x1](v, lane))
}

func Vfmaq_lane_f32(a, b Float32x4, v Float32x2, lane int) Float32x4 {
	return fma[float32](a, b, dupLane[float32, Float32x4](v, lane))
}

func Vfmaq_lane_f64(a, b Float64x2, v Float64x1, lane int) Float64x2 {
	return fma[float64](a, b, dupLane[float64, Float64x2](v, lane))
}

func Vfms_n_f32(a, b Float32x2, c float32) Float32x2 {
	return fms[float32](a, b, dup[float32, Float32x2](c))
}

func Vfms_n_f64(a, b Float64x1, c float64) Float64x1 {
	return fms[float64](a, b, dup[float64, Float64x1](c))
}

func Vfmsq_n_f32(a, b Float32x4, c float32) Float32x4 {
	return fms[float32](a, b, dup[float32, Float32x4](c))
}

func Vfmsq_n_f64(a, b Float64x2, c float64) Float64x2 {
	return fms[float64](a, b, dup[float64, Float64x2](c))
}

func Vfms_lane_f32(a, b Float32x2, v Float32x2, lane int) Float32x2 {
	return fms[float32](a, b, dupLane[float32, Float32x2](v, lane))
}

func Vfms_lane_f64(a, b Float64x1, v Float64x1, lane int) Float64x1 {
	return fms[float64](a, b, dupLane[float64, Float64x1](v, lane))
}

func Vfmsq_lane_f32(a, b Float32x4, v Float32x2, lane int) Float32x4 {
	return fms[float32](a, b, dupLane[float32, Float32x4](v, lane))
}

func Vfmsq_lane_f64(a, b Float64x2, v Float64x1, lane int) Float64x2 {
	return fms[float64](a, b, dupLane[float64, Float64x2](v, lane))
}

// Vabs_f32 clears the sign bit of each lane.
func Vabs_f32(a Float32x2) Float32x2 { return fabs[float32](a) }
func Vabs_f64(a Float64x1) Float64x1 { return fabs[float64](a) }
func Vabsq_f32(a Float32x4) Float32x4 { return fabs[float32](a) }
func Vabsq_f64(a Float64x2) Float64x2 { return fabs[float64](a) }

// Vneg_f32 flips the sign bit of each lane.
func Vneg_f32(a Float32x2) Float32x2 { return fneg[float32](a) }
func Vneg_f64(a Float64x1) Float64x1 { return fneg[float64](a) }
func Vnegq_f32(a Float32x4) Float32x4 { return fneg[float32](a) }
func Vnegq_f64(a Float64x2) Float64x2 { return fneg[float64](a) }

// Vsqrt_f32 returns the square root of each lane.
func Vsqrt_f32(a Float32x2) Float32x2 { return fsqrt[float32](a) }
func Vsqrt_f64(a Float64x1) Float64x1 { return fsqrt[float64](a) }
func Vsqrtq_f32(a Float32x4) Float32x4 { return fsqrt[float32](a) }
func Vsqrtq_f64(a Float64x2) Float64x2 { return fsqrt[float64](a) }
