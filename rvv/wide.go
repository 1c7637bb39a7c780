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

import "math/bits"

// i128 is a two's complement 128-bit integer. Fixed-point instructions are
// defined on intermediates wider than SEW; holding them in 128 bits covers
// every SEW, including 64-bit products.
type i128 struct {
	hi, lo uint64
}

// wideOf sign- or zero-extends x according to the signedness of T.
func wideOf[T Integers](x T) i128 {
	if isSigned[T]() && x < 0 {
		return i128{hi: ^uint64(0), lo: uint64(x)}
	}
	return i128{lo: uint64(x)}
}

// mulWide returns the exact 2*SEW-bit product of a and b.
func mulWide[T Integers](a, b T) i128 {
	if sew[T]() < 64 {
		if isSigned[T]() {
			p := int64(a) * int64(b)
			return wideOf(p)
		}
		return i128{lo: uint64(a) * uint64(b)}
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if isSigned[T]() {
		if a < 0 {
			hi -= uint64(b)
		}
		if b < 0 {
			hi -= uint64(a)
		}
	}
	return i128{hi: hi, lo: lo}
}

func (x i128) add(y i128) i128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	return i128{hi: hi, lo: lo}
}

func (x i128) sub(y i128) i128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	return i128{hi: hi, lo: lo}
}

func (x i128) neg() i128 {
	return i128{}.sub(x)
}

// sra is an arithmetic right shift.
func (x i128) sra(n uint) i128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return i128{hi: uint64(int64(x.hi) >> n), lo: x.lo>>n | x.hi<<(64-n)}
	default:
		return i128{hi: uint64(int64(x.hi) >> 63), lo: uint64(int64(x.hi) >> (n - 64))}
	}
}

func (x i128) shl(n uint) i128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return i128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	default:
		return i128{hi: x.lo << (n - 64)}
	}
}

// bit returns bit n of x.
func (x i128) bit(n uint) uint64 {
	return x.sra(n).lo & 1
}

// lowNonZero reports whether any of the n least significant bits is set.
func (x i128) lowNonZero(n uint) bool {
	switch {
	case n == 0:
		return false
	case n < 64:
		return x.lo&(1<<n-1) != 0
	case n == 64:
		return x.lo != 0
	default:
		return x.lo != 0 || x.hi&(1<<(n-64)-1) != 0
	}
}

func (x i128) less(y i128) bool {
	if x.hi != y.hi {
		return int64(x.hi) < int64(y.hi)
	}
	return x.lo < y.lo
}

// roundoff computes (x >> d) + r, where the rounding increment r depends on
// the shifted-out bits and the fixed-point rounding mode.
func roundoff(x i128, d uint, xrm VXRM) i128 {
	if d == 0 {
		return x
	}
	var r uint64
	switch xrm {
	case RNU:
		r = x.bit(d - 1)
	case RNE:
		if x.bit(d-1) == 1 && (x.lowNonZero(d-1) || x.bit(d) == 1) {
			r = 1
		}
	case RDN:
		r = 0
	case ROD:
		if x.bit(d) == 0 && x.lowNonZero(d) {
			r = 1
		}
	}
	return x.sra(d).add(i128{lo: r})
}

// clampTo saturates x to the range of T.
func clampTo[T Integers](x i128) T {
	if hi := wideOf(maxOf[T]()); hi.less(x) {
		return maxOf[T]()
	}
	if lo := wideOf(minOf[T]()); x.less(lo) {
		return minOf[T]()
	}
	return T(x.lo)
}

// truncTo keeps the SEW least significant bits of x.
func truncTo[T Integers](x i128) T {
	return T(x.lo)
}
