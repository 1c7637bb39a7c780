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

// This file implements the Zvkned vector AES instructions. They operate on
// element groups of four 32-bit elements (EGS=4); each group is one
// 128-bit AES state whose bytes, in little-endian element order, are the
// FIPS-197 state in column-major order. vl must be a multiple of 4.

// egs is the element group size of the AES instructions.
const egs = 4

var (
	sbox    [256]byte
	invSbox [256]byte
)

func init() {
	// The S-box is the affine transform of the multiplicative inverse in
	// GF(2^8). 3 generates the multiplicative group, so walk p = 3^i
	// alongside q = 3^-i.
	p, q := byte(1), byte(1)
	for {
		p = p ^ p<<1 ^ xtimeCarry(p)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}
		x := q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4)
		sbox[p] = x ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63
	for i := range 256 {
		invSbox[sbox[i]] = byte(i)
	}
}

func xtimeCarry(p byte) byte {
	if p&0x80 != 0 {
		return 0x1B
	}
	return 0
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

// gmul multiplies in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = a<<1 ^ xtimeCarry(a)
		b >>= 1
	}
	return p
}

type aesState [16]byte

func loadState(s []uint32) aesState {
	var st aesState
	for k := range 16 {
		st[k] = byte(s[k/4] >> (8 * (k % 4)))
	}
	return st
}

func (st *aesState) store(d []uint32) {
	for c := range 4 {
		d[c] = uint32(st[4*c]) | uint32(st[4*c+1])<<8 | uint32(st[4*c+2])<<16 | uint32(st[4*c+3])<<24
	}
}

func (st *aesState) subBytes(box *[256]byte) {
	for k := range st {
		st[k] = box[st[k]]
	}
}

// shiftRows rotates row r left by r positions; inverse rotates right.
func (st *aesState) shiftRows(inverse bool) {
	old := *st
	for r := 1; r < 4; r++ {
		for c := range 4 {
			src := (c + r) % 4
			if inverse {
				src = (c - r + 4) % 4
			}
			st[r+4*c] = old[r+4*src]
		}
	}
}

func (st *aesState) mixColumns(inverse bool) {
	m := [4]byte{2, 3, 1, 1}
	if inverse {
		m = [4]byte{14, 11, 13, 9}
	}
	for c := range 4 {
		a := [4]byte{st[4*c], st[4*c+1], st[4*c+2], st[4*c+3]}
		for r := range 4 {
			st[4*c+r] = gmul(a[0], m[(4-r)%4]) ^ gmul(a[1], m[(5-r)%4]) ^
				gmul(a[2], m[(6-r)%4]) ^ gmul(a[3], m[(7-r)%4])
		}
	}
}

func (st *aesState) addRoundKey(k *aesState) {
	for i := range st {
		st[i] ^= k[i]
	}
}

// aesRounds applies round to each element group of state with the round
// key taken from the same element group of key.
func aesRounds(state, key Vec[uint32], vl int, round func(st, k *aesState)) Vec[uint32] {
	r := dest[uint32](state.lmul, vl)
	s, k, d := state.lanes(), key.lanes(), r.lanes()
	for g := 0; g+egs <= vl; g += egs {
		st, rk := loadState(s[g:g+egs]), loadState(k[g:g+egs])
		round(&st, &rk)
		st.store(d[g : g+egs])
	}
	return r
}

// Vaesz XORs every element group of state with the first element group of
// key (vaesz.vs, round zero).
func Vaesz(state, key Vec[uint32], vl int) Vec[uint32] {
	r := dest[uint32](state.lmul, vl)
	s, k, d := state.lanes(), key.lanes(), r.lanes()
	for i := range vl {
		d[i] = s[i] ^ k[i%egs]
	}
	return r
}

// Vaesef performs a final encryption round: SubBytes, ShiftRows,
// AddRoundKey (vaesef.vv).
func Vaesef(state, key Vec[uint32], vl int) Vec[uint32] {
	return aesRounds(state, key, vl, func(st, k *aesState) {
		st.subBytes(&sbox)
		st.shiftRows(false)
		st.addRoundKey(k)
	})
}

// Vaesem performs a middle encryption round: SubBytes, ShiftRows,
// MixColumns, AddRoundKey (vaesem.vv).
func Vaesem(state, key Vec[uint32], vl int) Vec[uint32] {
	return aesRounds(state, key, vl, func(st, k *aesState) {
		st.subBytes(&sbox)
		st.shiftRows(false)
		st.mixColumns(false)
		st.addRoundKey(k)
	})
}

// Vaesdf performs a final decryption round: InvShiftRows, InvSubBytes,
// AddRoundKey (vaesdf.vv).
func Vaesdf(state, key Vec[uint32], vl int) Vec[uint32] {
	return aesRounds(state, key, vl, func(st, k *aesState) {
		st.shiftRows(true)
		st.subBytes(&invSbox)
		st.addRoundKey(k)
	})
}

// Vaesdm performs a middle decryption round: InvShiftRows, InvSubBytes,
// AddRoundKey, InvMixColumns (vaesdm.vv).
func Vaesdm(state, key Vec[uint32], vl int) Vec[uint32] {
	return aesRounds(state, key, vl, func(st, k *aesState) {
		st.shiftRows(true)
		st.subBytes(&invSbox)
		st.addRoundKey(k)
		st.mixColumns(true)
	})
}
