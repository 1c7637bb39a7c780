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

func and[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vand[T]) }
func orr[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vor[T]) }
func eor[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vxor[T]) }

// bic is a &^ b.
func bic[T rvv.Integers, V vector[T]](a, b V) V { return lanewise[T](a, b, rvv.Vandn[T]) }

// orn is a | ^b.
func orn[T rvv.Integers, V vector[T]](a, b V) V {
	return lanewise[T](a, b, func(x, y rvv.Vec[T], vl int) rvv.Vec[T] {
		return rvv.Vor(x, rvv.Vnot(y, vl), vl)
	})
}

func mvn[T rvv.Integers, V vector[T]](a V) V { return unary[T](a, rvv.Vnot[T]) }
func cnt[T rvv.Integers, V vector[T]](a V) V { return unary[T](a, rvv.Vcpop[T]) }
func clz[T rvv.Integers, V vector[T]](a V) V { return unary[T](a, rvv.Vclz[T]) }

// cls counts the bits after the sign bit that equal it.
func cls[T rvv.SignedInts, V vector[T]](a V) V {
	return unary[T](a, func(x rvv.Vec[T], vl int) rvv.Vec[T] {
		y := rvv.Vxor(x, rvv.VsrVX(x, 1, vl), vl)
		return rvv.VaddVX(rvv.Vclz(y, vl), T(-1), vl)
	})
}

// compareOp is the shape of the RVV compare instructions.
type compareOp[T rvv.Lanes] func(a, b rvv.Vec[T], vl int) rvv.Mask

// compare expands the lane predicate op into all-ones / all-zeros lanes
// of the unsigned type U.
func compare[T rvv.Lanes, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V, op compareOp[T]) UV {
	bd := bindOf[T, V]()
	m := op(load[T](bd, &a), load[T](bd, &b), bd.vl)
	return store[U, UV](bd, maskToVec[U](bd, m))
}

func ceq[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, rvv.Vmseq[T])
}

func cge[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, rvv.Vmsge[T])
}

func cgt[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, rvv.Vmsgt[T])
}

func cle[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, rvv.Vmsle[T])
}

func clt[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, rvv.Vmslt[T])
}

// tst sets lanes where a & b is non-zero.
func tst[T rvv.Integers, U rvv.UnsignedInts, V vector[T], UV vector[U]](a, b V) UV {
	return compare[T, U, V, UV](a, b, func(x, y rvv.Vec[T], vl int) rvv.Mask {
		return rvv.Vmsne(rvv.Vand(x, y, vl), rvv.Vmv(x.LMUL(), T(0), vl), vl)
	})
}

// Float comparisons are false for unordered operands.

func fceq[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, rvv.Vmfeq[F])
}

func fcge[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, rvv.Vmfge[F])
}

func fcgt[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, rvv.Vmfgt[F])
}

func fcle[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, rvv.Vmfle[F])
}

func fclt[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, rvv.Vmflt[F])
}

// absolute compares |a| against |b|.
func absolute[F rvv.Floats](op compareOp[F]) compareOp[F] {
	return func(a, b rvv.Vec[F], vl int) rvv.Mask {
		return op(rvv.Vfabs(a, vl), rvv.Vfabs(b, vl), vl)
	}
}

func fcage[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, absolute[F](rvv.Vmfge[F]))
}

func fcagt[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, absolute[F](rvv.Vmfgt[F]))
}

func fcale[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, absolute[F](rvv.Vmfle[F]))
}

func fcalt[F rvv.Floats, U rvv.UnsignedInts, V vector[F], UV vector[U]](a, b V) UV {
	return compare[F, U, V, UV](a, b, absolute[F](rvv.Vmflt[F]))
}

// reinterpret is a bit view between shapes of the same size.
func reinterpret[To, From rvv.Lanes, TV vector[To], FV vector[From]](v FV) TV {
	fb, tb := bindOf[From, FV](), bindOf[To, TV]()
	return store[To, TV](tb, rvv.Vreinterpret[To](load[From](fb, &v)))
}
