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

import (
	"math/bits"

	"github.com/ajroetker/neon2rvv/rvv"
)

// Arm splits an AES round differently from Zvkned: AESE is AddRoundKey
// followed by SubBytes and ShiftRows, and MixColumns is a separate
// instruction. Each Arm step is composed from Zvkned rounds with a zero
// round key, using that SubBytes and ShiftRows commute.

// aesState loads 16 bytes as one element group of four 32-bit words.
func aesState(v Uint8x16) rvv.Vec[uint32] {
	b := bindOf[uint8, Uint8x16]()
	return rvv.Vreinterpret[uint32](load[uint8](b, &v))
}

func aesBytes(s rvv.Vec[uint32]) Uint8x16 {
	return store[uint8, Uint8x16](bindOf[uint8, Uint8x16](), rvv.Vreinterpret[uint8](s))
}

func aesZero() rvv.Vec[uint32] {
	return rvv.Vmv(rvv.M1, uint32(0), 4)
}

// aese is AddRoundKey, SubBytes, ShiftRows.
func aese(data, key Uint8x16) Uint8x16 {
	s := rvv.Vaesz(aesState(data), aesState(key), 4)
	return aesBytes(rvv.Vaesef(s, aesZero(), 4))
}

// aesd is AddRoundKey, InvShiftRows, InvSubBytes.
func aesd(data, key Uint8x16) Uint8x16 {
	s := rvv.Vaesz(aesState(data), aesState(key), 4)
	return aesBytes(rvv.Vaesdf(s, aesZero(), 4))
}

// aesmc is MixColumns: the inverse final round undoes SubBytes and
// ShiftRows, then a middle round applies them again followed by
// MixColumns.
func aesmc(data Uint8x16) Uint8x16 {
	s := rvv.Vaesdf(aesState(data), aesZero(), 4)
	return aesBytes(rvv.Vaesem(s, aesZero(), 4))
}

// aesimc is InvMixColumns, built the same way from the decryption rounds.
func aesimc(data Uint8x16) Uint8x16 {
	s := rvv.Vaesef(aesState(data), aesZero(), 4)
	return aesBytes(rvv.Vaesdm(s, aesZero(), 4))
}

// The SHA helpers follow the Arm pseudocode. Zvknh computes whole
// rounds with a different operand layout, so these run on the lanes
// directly.

func shaChoose(x, y, z uint32) uint32   { return ((y ^ z) & x) ^ z }
func shaParity(x, y, z uint32) uint32   { return x ^ y ^ z }
func shaMajority(x, y, z uint32) uint32 { return (x & y) | ((x | y) & z) }

// sha1Rounds runs four SHA-1 rounds on abcd with e and the four
// schedule words plus round constants in wk.
func sha1Rounds(abcd Uint32x4, e uint32, wk Uint32x4, f func(x, y, z uint32) uint32) Uint32x4 {
	x, y := abcd, e
	for i := range 4 {
		t := f(x[1], x[2], x[3])
		y += bits.RotateLeft32(x[0], 5) + t + wk[i]
		x[1] = bits.RotateLeft32(x[1], 30)
		// Rotate the 160-bit y:x left by 32.
		x, y = Uint32x4{y, x[0], x[1], x[2]}, x[3]
	}
	return x
}

func sha1c(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 { return sha1Rounds(abcd, e, wk, shaChoose) }
func sha1p(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 { return sha1Rounds(abcd, e, wk, shaParity) }
func sha1m(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 {
	return sha1Rounds(abcd, e, wk, shaMajority)
}

// sha1h is the fixed rotate that produces e for the next four rounds.
func sha1h(e uint32) uint32 { return bits.RotateLeft32(e, 30) }

func sha1su0(w0, w4, w8 Uint32x4) Uint32x4 {
	t := Uint32x4{w0[2], w0[3], w4[0], w4[1]}
	return eor[uint32](eor[uint32](t, w0), w8)
}

func sha1su1(tw, w12 Uint32x4) Uint32x4 {
	t := eor[uint32](tw, Uint32x4{w12[1], w12[2], w12[3], 0})
	b := bindOf[uint32, Uint32x4]()
	r := store[uint32, Uint32x4](b, rvv.VrorVX(load[uint32](b, &t), 31, b.vl))
	r[3] ^= bits.RotateLeft32(t[0], 2)
	return r
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// sha256Rounds runs four SHA-256 rounds. It returns the new abcd when
// part1 is set and the new efgh otherwise.
func sha256Rounds(x, y, wk Uint32x4, part1 bool) Uint32x4 {
	for i := range 4 {
		chs := shaChoose(y[0], y[1], y[2])
		maj := shaMajority(x[0], x[1], x[2])
		t := y[3] + sigma1(y[0]) + chs + wk[i]
		x[3] += t
		y[3] = t + sigma0(x[0]) + maj
		// Rotate the 256-bit y:x left by 32.
		x, y = Uint32x4{y[3], x[0], x[1], x[2]}, Uint32x4{x[3], y[0], y[1], y[2]}
	}
	if part1 {
		return x
	}
	return y
}

func sha256h(abcd, efgh, wk Uint32x4) Uint32x4  { return sha256Rounds(abcd, efgh, wk, true) }
func sha256h2(efgh, abcd, wk Uint32x4) Uint32x4 { return sha256Rounds(abcd, efgh, wk, false) }

func sha256su0(w0, w4 Uint32x4) Uint32x4 {
	b := bindOf[uint32, Uint32x4]()
	t := Uint32x4{w0[1], w0[2], w0[3], w4[0]}
	x := load[uint32](b, &t)
	s := rvv.Vxor(rvv.VrorVX(x, 7, b.vl), rvv.VrorVX(x, 18, b.vl), b.vl)
	s = rvv.Vxor(s, rvv.VsrVX(x, 3, b.vl), b.vl)
	return store[uint32, Uint32x4](b, rvv.Vadd(s, load[uint32](b, &w0), b.vl))
}

func scheduleSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

func sha256su1(tw, w8, w12 Uint32x4) Uint32x4 {
	t0 := Uint32x4{w8[1], w8[2], w8[3], w12[0]}
	var r Uint32x4
	r[0] = scheduleSigma1(w12[2]) + tw[0] + t0[0]
	r[1] = scheduleSigma1(w12[3]) + tw[1] + t0[1]
	r[2] = scheduleSigma1(r[0]) + tw[2] + t0[2]
	r[3] = scheduleSigma1(r[1]) + tw[3] + t0[3]
	return r
}
