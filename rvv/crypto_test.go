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
	"crypto/aes"
	"encoding/binary"
	"testing"
)

func TestSbox(t *testing.T) {
	// FIPS-197 figure 7 spot checks.
	tests := []struct{ in, out byte }{
		{0x00, 0x63}, {0x01, 0x7C}, {0x53, 0xED}, {0xFF, 0x16}, {0x9A, 0xB8},
	}
	for _, tt := range tests {
		if got := sbox[tt.in]; got != tt.out {
			t.Errorf("sbox[%#x]: got %#x, want %#x", tt.in, got, tt.out)
		}
		if got := invSbox[tt.out]; got != tt.in {
			t.Errorf("invSbox[%#x]: got %#x, want %#x", tt.out, got, tt.in)
		}
	}
}

func toWords(b []byte) Vec[uint32] {
	w := make([]uint32, len(b)/4)
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return Vle(M1, w, len(w))
}

func fromWords(v Vec[uint32], n int) []byte {
	out := make([]byte, 4*n)
	for i, w := range v.Data()[:n] {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

// expandKey128 is the FIPS-197 AES-128 key expansion.
func expandKey128(key []byte) [11][16]byte {
	var w [44]uint32
	for i := range 4 {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	rcon := byte(1)
	for i := 4; i < 44; i++ {
		tmp := w[i-1]
		if i%4 == 0 {
			tmp = tmp<<8 | tmp>>24
			tmp = uint32(sbox[tmp>>24])<<24 | uint32(sbox[tmp>>16&0xFF])<<16 |
				uint32(sbox[tmp>>8&0xFF])<<8 | uint32(sbox[tmp&0xFF])
			tmp ^= uint32(rcon) << 24
			rcon = gmul(rcon, 2)
		}
		w[i] = w[i-4] ^ tmp
	}
	var rk [11][16]byte
	for r := range 11 {
		for c := range 4 {
			binary.BigEndian.PutUint32(rk[r][4*c:], w[4*r+c])
		}
	}
	return rk
}

func TestZvknedMatchesCryptoAES(t *testing.T) {
	key := []byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	pt := []byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}

	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	want := make([]byte, 16)
	block.Encrypt(want, pt)

	rk := expandKey128(key)
	state := Vaesz(toWords(pt), toWords(rk[0][:]), 4)
	for r := 1; r < 10; r++ {
		state = Vaesem(state, toWords(rk[r][:]), 4)
	}
	state = Vaesef(state, toWords(rk[10][:]), 4)
	got := fromWords(state, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AES-128 encrypt: got %x, want %x", got, want)
		}
	}

	// Decryption with the equivalent inverse cipher of the Zvkned rounds:
	// round keys are used in reverse order, unmodified.
	dec := Vaesz(state, toWords(rk[10][:]), 4)
	for r := 9; r >= 1; r-- {
		dec = Vaesdm(dec, toWords(rk[r][:]), 4)
	}
	dec = Vaesdf(dec, toWords(rk[0][:]), 4)
	plain := fromWords(dec, 4)
	for i := range pt {
		if plain[i] != pt[i] {
			t.Fatalf("AES-128 decrypt: got %x, want %x", plain, pt)
		}
	}
}
