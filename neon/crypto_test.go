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
	"bytes"
	"crypto/aes"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"testing"
)

func bytes16(b []byte) Uint8x16 {
	return Vld1q_u8(b)
}

// expandKey128 is the AES-128 key schedule. SubWord comes from Vaeseq_u8
// on a state of four equal columns, which ShiftRows leaves unchanged.
func expandKey128(key []byte) [11]Uint8x16 {
	var w [44][4]byte
	for i := range 4 {
		copy(w[i][:], key[4*i:])
	}
	rcon := byte(1)
	for i := 4; i < 44; i++ {
		tmp := w[i-1]
		if i%4 == 0 {
			rot := [4]byte{tmp[1], tmp[2], tmp[3], tmp[0]}
			var st Uint8x16
			for j := range st {
				st[j] = rot[j%4]
			}
			sub := Vaeseq_u8(st, Uint8x16{})
			tmp = [4]byte{sub[0] ^ rcon, sub[1], sub[2], sub[3]}
			rcon = rcon<<1 ^ 0x1b*(rcon>>7)
		}
		for j := range 4 {
			w[i][j] = w[i-4][j] ^ tmp[j]
		}
	}
	var rk [11]Uint8x16
	for r := range rk {
		for j := range 16 {
			rk[r][j] = w[4*r+j/4][j%4]
		}
	}
	return rk
}

func aesEncrypt(rk [11]Uint8x16, block Uint8x16) Uint8x16 {
	s := block
	for r := range 9 {
		s = Vaesmcq_u8(Vaeseq_u8(s, rk[r]))
	}
	return Veorq_u8(Vaeseq_u8(s, rk[9]), rk[10])
}

func aesDecrypt(rk [11]Uint8x16, block Uint8x16) Uint8x16 {
	var dk [11]Uint8x16
	dk[0], dk[10] = rk[10], rk[0]
	for i := 1; i < 10; i++ {
		dk[i] = Vaesimcq_u8(rk[10-i])
	}
	s := block
	for i := range 9 {
		s = Vaesimcq_u8(Vaesdq_u8(s, dk[i]))
	}
	return Veorq_u8(Vaesdq_u8(s, dk[9]), dk[10])
}

func TestAESKnownAnswer(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	pt, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	want, _ := hex.DecodeString("69c4e0d86a7b0430d8cdb78070b4c55a")
	rk := expandKey128(key)
	ct := aesEncrypt(rk, bytes16(pt))
	if !bytes.Equal(ct[:], want) {
		t.Fatalf("AES-128 encrypt: got %x, want %x", ct[:], want)
	}
	if back := aesDecrypt(rk, ct); !bytes.Equal(back[:], pt) {
		t.Errorf("AES-128 decrypt: got %x, want %x", back[:], pt)
	}
}

func TestAESMatchesCryptoAES(t *testing.T) {
	key := []byte("sixteen byte key")
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	rk := expandKey128(key)
	pt := make([]byte, 16)
	want := make([]byte, 16)
	for n := range 64 {
		for i := range pt {
			pt[i] = byte(n*31 + i*7)
		}
		block.Encrypt(want, pt)
		got := aesEncrypt(rk, bytes16(pt))
		if !bytes.Equal(got[:], want) {
			t.Fatalf("block %d: got %x, want %x", n, got[:], want)
		}
		if back := aesDecrypt(rk, got); !bytes.Equal(back[:], pt) {
			t.Fatalf("block %d decrypt: got %x, want %x", n, back[:], pt)
		}
	}
}

func TestMixColumns(t *testing.T) {
	// FIPS-197 MixColumns examples, one per column.
	in, _ := hex.DecodeString("db135345f20a225c01010101c6c6c6c6")
	want, _ := hex.DecodeString("8e4da1bc9fdc589d01010101c6c6c6c6")
	got := Vaesmcq_u8(bytes16(in))
	if !bytes.Equal(got[:], want) {
		t.Errorf("Vaesmcq_u8: got %x, want %x", got[:], want)
	}
	if back := Vaesimcq_u8(got); !bytes.Equal(back[:], in) {
		t.Errorf("Vaesimcq_u8: got %x, want %x", back[:], in)
	}
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// padBlock pads a message of at most 55 bytes into one 64-byte block.
func padBlock(msg []byte) []byte {
	block := make([]byte, 64)
	copy(block, msg)
	block[len(msg)] = 0x80
	binary.BigEndian.PutUint64(block[56:], uint64(len(msg))*8)
	return block
}

func loadWords(block []byte) [4]Uint32x4 {
	var msg [4]Uint32x4
	for i := range 16 {
		msg[i/4][i%4] = binary.BigEndian.Uint32(block[4*i:])
	}
	return msg
}

func sha256Block(state [8]uint32, block []byte) [8]uint32 {
	abcd := Uint32x4{state[0], state[1], state[2], state[3]}
	efgh := Uint32x4{state[4], state[5], state[6], state[7]}
	msg := loadWords(block)
	for g := range 16 {
		k := Uint32x4(sha256K[4*g : 4*g+4])
		wk := Vaddq_u32(msg[g%4], k)
		abcd0 := abcd
		abcd = Vsha256hq_u32(abcd, efgh, wk)
		efgh = Vsha256h2q_u32(efgh, abcd0, wk)
		if g < 12 {
			msg[g%4] = Vsha256su1q_u32(Vsha256su0q_u32(msg[g%4], msg[(g+1)%4]), msg[(g+2)%4], msg[(g+3)%4])
		}
	}
	for i := range 4 {
		state[i] += abcd[i]
		state[4+i] += efgh[i]
	}
	return state
}

func TestSHA256MatchesCryptoSHA256(t *testing.T) {
	for _, msg := range []string{"", "abc", "the quick brown fox jumps over the lazy dog, twice!!"} {
		state := sha256Block([8]uint32{
			0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
		}, padBlock([]byte(msg)))
		got := make([]byte, 32)
		for i, w := range state {
			binary.BigEndian.PutUint32(got[4*i:], w)
		}
		if want := sha256.Sum256([]byte(msg)); !bytes.Equal(got, want[:]) {
			t.Errorf("sha256(%q): got %x, want %x", msg, got, want)
		}
	}
}

func sha1Block(state [5]uint32, block []byte) [5]uint32 {
	k := [4]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}
	abcd := Uint32x4{state[0], state[1], state[2], state[3]}
	e0 := state[4]
	msg := loadWords(block)
	for g := range 20 {
		wk := Vaddq_u32(msg[g%4], Vdupq_n_u32(k[g/5]))
		e1 := Vsha1h_u32(Vgetq_lane_u32(abcd, 0))
		switch g / 5 {
		case 0:
			abcd = Vsha1cq_u32(abcd, e0, wk)
		case 2:
			abcd = Vsha1mq_u32(abcd, e0, wk)
		default:
			abcd = Vsha1pq_u32(abcd, e0, wk)
		}
		e0 = e1
		if g < 16 {
			msg[g%4] = Vsha1su1q_u32(Vsha1su0q_u32(msg[g%4], msg[(g+1)%4], msg[(g+2)%4]), msg[(g+3)%4])
		}
	}
	for i := range 4 {
		state[i] += abcd[i]
	}
	state[4] += e0
	return state
}

func TestSHA1MatchesCryptoSHA1(t *testing.T) {
	for _, msg := range []string{"", "abc", "message digest"} {
		state := sha1Block([5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}, padBlock([]byte(msg)))
		got := make([]byte, 20)
		for i, w := range state {
			binary.BigEndian.PutUint32(got[4*i:], w)
		}
		if want := sha1.Sum([]byte(msg)); !bytes.Equal(got, want[:]) {
			t.Errorf("sha1(%q): got %x, want %x", msg, got, want)
		}
	}
}

func TestSHA1Hash(t *testing.T) {
	if got := Vsha1h_u32(0x80000001); got != 0x60000000 {
		t.Errorf("Vsha1h_u32: got %#x, want 0x60000000", got)
	}
}
