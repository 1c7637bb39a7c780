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

import "github.com/ajroetker/neon2rvv/rvv"

// Complex numbers occupy lane pairs: the real part in the even lane, the
// imaginary part in the odd lane.

// swapPairs exchanges the two lanes of every pair.
func swapPairs[F rvv.Floats](x rvv.Vec[F], vl int) rvv.Vec[F] {
	id := laneIndex(vl)
	return rvv.Vrgather(x, rvv.Vxor(id, rvv.Vmv(id.LMUL(), uint16(1), vl), vl), vl)
}

// negateLanes flips the sign of the even (odd == false) or odd lanes.
func negateLanes[F rvv.Floats](x rvv.Vec[F], odd bool, vl int) rvv.Vec[F] {
	return rvv.Vmerge(x, rvv.Vfneg(x, vl), parityMask(vl, odd), vl)
}

// dupPart copies the real (odd == false) or imaginary part of every
// pair to both lanes of the pair.
func dupPart[F rvv.Floats](x rvv.Vec[F], odd bool, vl int) rvv.Vec[F] {
	id := laneIndex(vl)
	mask := ^uint16(1)
	base := rvv.Vand(id, rvv.Vmv(id.LMUL(), mask, vl), vl)
	if odd {
		base = rvv.VaddVX(base, 1, vl)
	}
	return rvv.Vrgather(x, base, vl)
}

// cadd adds b rotated by 90 or 270 degrees to a.
func cadd[F rvv.Floats, V vector[F]](a, b V, rot int) V {
	bd := bindOf[F, V]()
	t := swapPairs(load[F](bd, &b), bd.vl)
	// rot90 adds i*b: (-b.im, b.re). rot270 adds -i*b: (b.im, -b.re).
	t = negateLanes(t, rot == 270, bd.vl)
	return fadd[F](a, store[F, V](bd, t))
}

// cmla is FCMLA: it accumulates one half of the complex product a*b
// rotated by rot degrees. rot 0 followed by rot 90 gives acc + a*b.
func cmla[F rvv.Floats, V vector[F]](acc, a, b V, rot int) V {
	bd := bindOf[F, V]()
	vl := bd.vl
	x := dupPart(load[F](bd, &a), rot == 90 || rot == 270, vl)
	y := load[F](bd, &b)
	switch rot {
	case 90:
		y = negateLanes(swapPairs(y, vl), false, vl)
	case 180:
		y = rvv.Vfneg(y, vl)
	case 270:
		y = negateLanes(swapPairs(y, vl), true, vl)
	}
	return fma[F](acc, store[F, V](bd, x), store[F, V](bd, y))
}

// dupPair broadcasts complex pair lane of v to every pair of R.
func dupPair[F rvv.Floats, R vector[F], V vector[F]](v V, lane int) R {
	_ = v[2*lane+1]
	src, dst := bindOf[F, V](), bindOf[F, R]()
	pairs := rvv.Vreinterpret[uint64](load[F](src, &v))
	g := rvv.VrgatherVX(pairs, uint(lane), dst.vl/2)
	return store[F, R](dst, rvv.Vreinterpret[F](g))
}
