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

// Vaeseq_u8 is one AES encryption step: AddRoundKey, SubBytes and ShiftRows.
func Vaeseq_u8(data, key Uint8x16) Uint8x16 { return aese(data, key) }

// Vaesdq_u8 is one AES decryption step: AddRoundKey, InvShiftRows and
// InvSubBytes.
func Vaesdq_u8(data, key Uint8x16) Uint8x16 { return aesd(data, key) }

// Vaesmcq_u8 is AES MixColumns.
func Vaesmcq_u8(data Uint8x16) Uint8x16 { return aesmc(data) }

// Vaesimcq_u8 is AES InvMixColumns.
func Vaesimcq_u8(data Uint8x16) Uint8x16 { return aesimc(data) }

// Vsha1cq_u32 runs four SHA-1 rounds with the choose function.
func Vsha1cq_u32(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 { return sha1c(abcd, e, wk) }

// Vsha1pq_u32 runs four SHA-1 rounds with the parity function.
func Vsha1pq_u32(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 { return sha1p(abcd, e, wk) }

// Vsha1mq_u32 runs four SHA-1 rounds with the majority function.
func Vsha1mq_u32(abcd Uint32x4, e uint32, wk Uint32x4) Uint32x4 { return sha1m(abcd, e, wk) }

// Vsha1h_u32 rotates e left by 30.
func Vsha1h_u32(e uint32) uint32 { return sha1h(e) }

// Vsha1su0q_u32 is the first half of the SHA-1 message schedule update.
func Vsha1su0q_u32(w0, w4, w8 Uint32x4) Uint32x4 { return sha1su0(w0, w4, w8) }

// Vsha1su1q_u32 completes the SHA-1 message schedule update started by
// Vsha1su0q_u32.
func Vsha1su1q_u32(tw, w12 Uint32x4) Uint32x4 { return sha1su1(tw, w12) }

// Vsha256hq_u32 runs four SHA-256 rounds and returns the new abcd.
func Vsha256hq_u32(abcd, efgh, wk Uint32x4) Uint32x4 { return sha256h(abcd, efgh, wk) }

// Vsha256h2q_u32 runs the same four rounds as Vsha256hq_u32 and returns the
// new efgh. abcd must be the value before that call.
func Vsha256h2q_u32(efgh, abcd, wk Uint32x4) Uint32x4 { return sha256h2(efgh, abcd, wk) }

// Vsha256su0q_u32 is the first half of the SHA-256 message schedule update.
func Vsha256su0q_u32(w0, w4 Uint32x4) Uint32x4 { return sha256su0(w0, w4) }

// Vsha256su1q_u32 completes the SHA-256 message schedule update started by
// Vsha256su0q_u32.
func Vsha256su1q_u32(tw, w8, w12 Uint32x4) Uint32x4 { return sha256su1(tw, w8, w12) }
