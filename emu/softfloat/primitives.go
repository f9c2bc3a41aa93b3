/*
 * S370 - Multi-word integer helpers.
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

import "math/bits"

// Unsigned 128 bit integer, used for significands of every format.
type uint128 struct {
	hi uint64
	lo uint64
}

// Unsigned 256 bit integer, least significant word first.
type uint256 [4]uint64

func u128(v uint64) uint128 {
	return uint128{lo: v}
}

func (a uint128) isZero() bool {
	return (a.hi | a.lo) == 0
}

func (a uint128) add(b uint128) uint128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return uint128{hi: hi, lo: lo}
}

func (a uint128) sub(b uint128) uint128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

func (a uint128) and(b uint128) uint128 {
	return uint128{hi: a.hi & b.hi, lo: a.lo & b.lo}
}

func (a uint128) or(b uint128) uint128 {
	return uint128{hi: a.hi | b.hi, lo: a.lo | b.lo}
}

func (a uint128) cmp(b uint128) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}
	return 0
}

func (a uint128) less(b uint128) bool {
	return a.cmp(b) < 0
}

// Shift left, bits shifted past bit 127 are lost.
func (a uint128) shl(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: a.lo << (n - 64)}
	}
	return uint128{hi: (a.hi << n) | (a.lo >> (64 - n)), lo: a.lo << n}
}

// Logical shift right.
func (a uint128) shr(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: a.hi >> (n - 64)}
	}
	return uint128{hi: a.hi >> n, lo: (a.lo >> n) | (a.hi << (64 - n))}
}

// Shift right and or any bits lost into bit 0.
func (a uint128) shrJam(n uint) uint128 {
	if n == 0 {
		return a
	}
	r := a.shr(n)
	if r.shl(n) != a {
		r.lo |= 1
	}
	return r
}

// Number of bits needed to hold a, zero for zero.
func (a uint128) bitLen() int {
	if a.hi != 0 {
		return 64 + bits.Len64(a.hi)
	}
	return bits.Len64(a.lo)
}

// Test bit n.
func (a uint128) bit(n uint) bool {
	return a.shr(n).lo&1 != 0
}

// Mask of the n low order bits.
func lowMask(n uint) uint128 {
	if n >= 128 {
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	}
	return u128(1).shl(n).sub(u128(1))
}

// Full 256 bit product of two 128 bit numbers.
func mul128(a, b uint128) uint256 {
	p00h, p00l := bits.Mul64(a.lo, b.lo)
	p01h, p01l := bits.Mul64(a.lo, b.hi)
	p10h, p10l := bits.Mul64(a.hi, b.lo)
	p11h, p11l := bits.Mul64(a.hi, b.hi)

	w1, c1 := bits.Add64(p00h, p01l, 0)
	w1, c2 := bits.Add64(w1, p10l, 0)
	w2, c3 := bits.Add64(p01h, p10h, 0)
	w2, c4 := bits.Add64(w2, p11l, 0)
	w2, c5 := bits.Add64(w2, c1+c2, 0)
	w3 := p11h + c3 + c4 + c5
	return uint256{p00l, w1, w2, w3}
}

func from128(a uint128) uint256 {
	return uint256{a.lo, a.hi, 0, 0}
}

// Low 128 bits.
func (a uint256) lo128() uint128 {
	return uint128{hi: a[1], lo: a[0]}
}

func (a uint256) isZero() bool {
	return (a[0] | a[1] | a[2] | a[3]) == 0
}

func (a uint256) add(b uint256) uint256 {
	var r uint256
	var carry uint64
	for i := 0; i < 4; i++ {
		r[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return r
}

func (a uint256) sub(b uint256) uint256 {
	var r uint256
	var borrow uint64
	for i := 0; i < 4; i++ {
		r[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return r
}

func (a uint256) cmp(b uint256) int {
	for i := 3; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func (a uint256) shl(n uint) uint256 {
	var r uint256
	word := int(n / 64)
	shift := n % 64
	for i := 3; i >= word; i-- {
		v := a[i-word] << shift
		if shift != 0 && i-word-1 >= 0 {
			v |= a[i-word-1] >> (64 - shift)
		}
		r[i] = v
	}
	return r
}

func (a uint256) shr(n uint) uint256 {
	var r uint256
	word := int(n / 64)
	shift := n % 64
	for i := 0; i+word < 4; i++ {
		v := a[i+word] >> shift
		if shift != 0 && i+word+1 < 4 {
			v |= a[i+word+1] << (64 - shift)
		}
		r[i] = v
	}
	return r
}

func (a uint256) shrJam(n uint) uint256 {
	if n == 0 {
		return a
	}
	r := a.shr(n)
	if r.shl(n) != a {
		r[0] |= 1
	}
	return r
}

func (a uint256) bitLen() int {
	for i := 3; i >= 0; i-- {
		if a[i] != 0 {
			return i*64 + bits.Len64(a[i])
		}
	}
	return 0
}

// Shift the significand sig, followed by the 64 bit extension extra,
// right by n bits. Bits shifted out of the extension are jammed into
// its low bit.
func shiftRightExtra(sig uint128, extra uint64, n uint) (uint128, uint64) {
	if n == 0 {
		return sig, extra
	}
	wide := uint256{extra, sig.lo, sig.hi, 0}.shrJam(n)
	return uint128{hi: wide[2], lo: wide[1]}, wide[0]
}

// Move sig so that a bit at position from lands at position to, returning
// the bits shifted out as a left aligned extension.
func align(sig uint128, from, to int) (uint128, uint64) {
	if from <= to {
		return sig.shl(uint(to - from)), 0
	}
	return shiftRightExtra(sig, 0, uint(from-to))
}
