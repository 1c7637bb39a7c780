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

package rvv

// LMUL is the vector register grouping multiplier of the vtype register.
// A register group of LMUL registers holds LMUL*VLEN bits.
type LMUL int

const (
	// M1 uses a single vector register.
	M1 LMUL = 1

	// M2 groups two vector registers.
	M2 LMUL = 2
)

// String returns the assembler name of the grouping ("m1", "m2").
func (l LMUL) String() string {
	switch l {
	case M1:
		return "m1"
	case M2:
		return "m2"
	default:
		return "unknown"
	}
}

// VXRM is the fixed-point rounding mode used by averaging, scaling and
// narrowing clip instructions.
type VXRM int

const (
	// RNU rounds to nearest, ties up.
	RNU VXRM = iota

	// RNE rounds to nearest, ties to even.
	RNE

	// RDN rounds down (truncates).
	RDN

	// ROD rounds to odd (jams the shifted-out bits into the LSB).
	ROD
)

// String returns the assembler name of the rounding mode.
func (m VXRM) String() string {
	switch m {
	case RNU:
		return "rnu"
	case RNE:
		return "rne"
	case RDN:
		return "rdn"
	case ROD:
		return "rod"
	default:
		return "unknown"
	}
}

// FRM is the floating-point rounding mode.
type FRM int

const (
	// FrmRNE rounds to nearest, ties to even.
	FrmRNE FRM = iota

	// FrmRTZ rounds toward zero.
	FrmRTZ

	// FrmRDN rounds down, toward negative infinity.
	FrmRDN

	// FrmRUP rounds up, toward positive infinity.
	FrmRUP

	// FrmRMM rounds to nearest, ties to max magnitude.
	FrmRMM
)

// String returns the assembler name of the rounding mode.
func (m FRM) String() string {
	switch m {
	case FrmRNE:
		return "rne"
	case FrmRTZ:
		return "rtz"
	case FrmRDN:
		return "rdn"
	case FrmRUP:
		return "rup"
	case FrmRMM:
		return "rmm"
	default:
		return "unknown"
	}
}

// VLMax returns the number of lanes of type T held by a register group
// with the given LMUL on this machine.
//
// For example, with VLEN=128:
//   - int8, M1: 16 lanes
//   - int32, M1: 4 lanes
//   - int64, M2: 4 lanes
func VLMax[T Lanes](lmul LMUL) int {
	return vlen * int(lmul) / sew[T]()
}

// Setvl returns the vector length granted for an application vector length
// avl (vsetvli). The result is min(avl, VLMAX) and never negative.
func Setvl[T Lanes](avl int, lmul LMUL) int {
	if avl <= 0 {
		return 0
	}
	return min(avl, VLMax[T](lmul))
}

// LMULFor returns the smallest grouping whose VLMAX holds n lanes of T.
// n must not exceed VLMax[T](M2) at the minimum VLEN.
func LMULFor[T Lanes](n int) LMUL {
	if n <= VLMax[T](M1) {
		return M1
	}
	return M2
}
