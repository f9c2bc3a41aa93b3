/*
 * S370 - Multi-word integer test cases.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package softfloat

import (
	"math/big"
	"math/rand"
	"testing"
)

func toBig128(a uint128) *big.Int {
	r := new(big.Int).SetUint64(a.hi)
	r.Lsh(r, 64)
	return r.Or(r, new(big.Int).SetUint64(a.lo))
}

func toBig256(a uint256) *big.Int {
	r := new(big.Int)
	for i := 3; i >= 0; i-- {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(a[i]))
	}
	return r
}

func TestMul128(t *testing.T) {
	rnum := rand.New(rand.NewSource(1))
	for rangeIdx := 0; rangeIdx < testCycles; rangeIdx++ {
		a := uint128{hi: rnum.Uint64(), lo: rnum.Uint64()}
		b := uint128{hi: rnum.Uint64(), lo: rnum.Uint64()}
		want := new(big.Int).Mul(toBig128(a), toBig128(b))
		if r := toBig256(mul128(a, b)); r.Cmp(want) != 0 {
			t.Errorf("mul128 %x %x not correct got: %x wanted: %x", toBig128(a), toBig128(b), r, want)
		}
	}
}

func TestShift128(t *testing.T) {
	rnum := rand.New(rand.NewSource(2))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	for rangeIdx := 0; rangeIdx < testCycles; rangeIdx++ {
		a := uint128{hi: rnum.Uint64(), lo: rnum.Uint64()}
		n := uint(rnum.Intn(140))
		x := toBig128(a)

		want := new(big.Int).Lsh(x, n)
		want.And(want, mask)
		if r := toBig128(a.shl(n)); r.Cmp(want) != 0 {
			t.Errorf("shl %x %d not correct got: %x wanted: %x", x, n, r, want)
		}
		want = new(big.Int).Rsh(x, n)
		if r := toBig128(a.shr(n)); r.Cmp(want) != 0 {
			t.Errorf("shr %x %d not correct got: %x wanted: %x", x, n, r, want)
		}
		if new(big.Int).Lsh(want, n).Cmp(x) != 0 {
			want.SetBit(want, 0, 1)
		}
		if r := toBig128(a.shrJam(n)); r.Cmp(want) != 0 {
			t.Errorf("shrJam %x %d not correct got: %x wanted: %x", x, n, r, want)
		}
	}
}

func TestShift256(t *testing.T) {
	rnum := rand.New(rand.NewSource(3))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	for rangeIdx := 0; rangeIdx < testCycles; rangeIdx++ {
		a := uint256{rnum.Uint64(), rnum.Uint64(), rnum.Uint64(), rnum.Uint64()}
		n := uint(rnum.Intn(270))
		x := toBig256(a)

		want := new(big.Int).Lsh(x, n)
		want.And(want, mask)
		if r := toBig256(a.shl(n)); r.Cmp(want) != 0 {
			t.Errorf("uint256 shl %x %d not correct got: %x wanted: %x", x, n, r, want)
		}
		want = new(big.Int).Rsh(x, n)
		if new(big.Int).Lsh(want, n).Cmp(x) != 0 {
			want.SetBit(want, 0, 1)
		}
		if r := toBig256(a.shrJam(n)); r.Cmp(want) != 0 {
			t.Errorf("uint256 shrJam %x %d not correct got: %x wanted: %x", x, n, r, want)
		}
		if r := a.bitLen(); r != x.BitLen() {
			t.Errorf("uint256 bitLen %x got: %d wanted: %d", x, r, x.BitLen())
		}
	}
}

func TestShiftRightExtra(t *testing.T) {
	tests := []struct {
		sig   uint128
		extra uint64
		n     uint
		want  uint128
		wantX uint64
	}{
		{u128(1), 0, 1, u128(0), half},
		{u128(3), 0, 1, u128(1), half},
		{u128(3), 0, 2, u128(0), 0xC000000000000000},
		{u128(1), 1, 1, u128(0), half | 1},
		{u128(1), 0, 200, u128(0), 1},
		{uint128{hi: 1}, 0, 64, u128(1), 0},
		{uint128{hi: 1}, 0, 65, u128(0), half},
	}
	for i, test := range tests {
		sig, extra := shiftRightExtra(test.sig, test.extra, test.n)
		if sig != test.want || extra != test.wantX {
			t.Errorf("shiftRightExtra %d not correct got: %x %x wanted: %x %x", i, sig, extra, test.want, test.wantX)
		}
	}
}

func TestAddSub128(t *testing.T) {
	a := uint128{hi: 0, lo: ^uint64(0)}
	if r := a.add(u128(1)); r != (uint128{hi: 1}) {
		t.Errorf("add carry not correct got: %x", r)
	}
	if r := (uint128{hi: 1}).sub(u128(1)); r != a {
		t.Errorf("sub borrow not correct got: %x", r)
	}
	if r := lowMask(70); r != (uint128{hi: 0x3F, lo: ^uint64(0)}) {
		t.Errorf("lowMask 70 not correct got: %x", r)
	}
	if r := (uint128{hi: 0x10}).bitLen(); r != 69 {
		t.Errorf("bitLen not correct got: %d wanted: %d", r, 69)
	}
}
