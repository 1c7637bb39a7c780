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

import (
	"runtime"

	"github.com/xyproto/env/v2"
	"golang.org/x/sys/cpu"
)

const (
	// MinVLEN is the smallest VLEN allowed by the V extension (Zvl128b).
	MinVLEN = 128

	// MaxVLEN is the largest VLEN this model supports.
	MaxVLEN = 512
)

// vlen is the machine vector register width in bits.
// Set by init() and read-only afterwards.
var vlen = MinVLEN

// tailPoison controls whether tail lanes of results are filled with ones.
var tailPoison = true

func init() {
	vlen = vlenFromEnv()
	tailPoison = !NoTailPoisonEnv()
}

// vlenFromEnv reads NEON2RVV_VLEN. Values other than 128, 256 and 512 are
// ignored.
func vlenFromEnv() int {
	switch v := env.Int("NEON2RVV_VLEN", MinVLEN); v {
	case 128, 256, 512:
		return v
	default:
		return MinVLEN
	}
}

// NoTailPoisonEnv checks if the NEON2RVV_NO_TAIL_POISON environment variable
// is set. When set, tail lanes of results are zero instead of all ones.
// This is useful when dumping registers while debugging.
func NoTailPoisonEnv() bool {
	return env.Bool("NEON2RVV_NO_TAIL_POISON")
}

// VLEN returns the machine vector register width in bits.
func VLEN() int {
	return vlen
}

// HostInfo describes the machine the model runs on.
type HostInfo struct {
	// Arch is the GOARCH of the running binary.
	Arch string

	// VLEN is the modelled vector register width in bits.
	VLEN int

	// NativeRVV reports whether the host implements the V extension.
	NativeRVV bool

	// NativeNEON reports whether the host implements Advanced SIMD.
	NativeNEON bool

	// NativeAES reports whether the host implements the Arm AES instructions.
	NativeAES bool

	// NativeSHA1 and NativeSHA2 report the Arm SHA instructions.
	NativeSHA1 bool
	NativeSHA2 bool

	// NativeDotProd reports the Arm SDOT/UDOT instructions.
	NativeDotProd bool

	// NativeRDM reports the Arm SQRDMLAH/SQRDMLSH instructions.
	NativeRDM bool
}

// Info returns information about the host and the model configuration.
func Info() HostInfo {
	return HostInfo{
		Arch:          runtime.GOARCH,
		VLEN:          vlen,
		NativeRVV:     cpu.RISCV64.HasV,
		NativeNEON:    cpu.ARM64.HasASIMD,
		NativeAES:     cpu.ARM64.HasAES,
		NativeSHA1:    cpu.ARM64.HasSHA1,
		NativeSHA2:    cpu.ARM64.HasSHA2,
		NativeDotProd: cpu.ARM64.HasASIMDDP,
		NativeRDM:     cpu.ARM64.HasASIMDRDM,
	}
}

// SetVLENForTesting changes the modelled VLEN and returns a function that
// restores the previous value. It must not be called concurrently with
// any other operation of this package.
func SetVLENForTesting(bits int) (restore func()) {
	prev := vlen
	switch bits {
	case 128, 256, 512:
		vlen = bits
	}
	return func() { vlen = prev }
}
