/*
 * S370 - Arithmetic operations.
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

// Bit position both addends are aligned to, leaving room for a carry.
const addTop = rawUnit - 1

// Bit position of the larger operand in a fused multiply add.
const fmaTop = 252

// Sign of an exact zero sum of operands with opposite signs.
func (env *Env) zeroSumSign() bool {
	return env.Rounding == RoundMin
}

// Add or subtract b from a.
func (env *Env) addSub(f *format, a, b uint128, subtract bool) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	ub := f.unpack(b)
	if ua.isNaN() || ub.isNaN() {
		return env.propagateNaN(f, 2, a, b, uint128{})
	}
	if subtract {
		ub.sign = !ub.sign
	}

	if ua.class == classInf {
		if ub.class == classInf && ua.sign != ub.sign {
			return env.invalid(f)
		}
		return f.infinity(ua.sign)
	}
	if ub.class == classInf {
		return f.infinity(ub.sign)
	}

	if ua.class == classZero {
		if ub.class == classZero {
			if ua.sign == ub.sign {
				return f.zero(ua.sign)
			}
			return f.zero(env.zeroSumSign())
		}
		return env.repack(f, ub)
	}
	if ub.class == classZero {
		return env.repack(f, ua)
	}

	// Put larger magnitude in x.
	shift := uint(addTop - f.top())
	x, ex, sx := ua.sig.shl(shift), ua.exp, ua.sign
	y, ey, sy := ub.sig.shl(shift), ub.exp, ub.sign
	if ex < ey || (ex == ey && x.less(y)) {
		x, y = y, x
		ex, ey = ey, ex
		sx, sy = sy, sx
	}
	y = y.shrJam(uint(ex - ey))

	var m uint128
	if sx == sy {
		m = x.add(y)
	} else {
		m = x.sub(y)
	}
	if m.isZero() {
		return f.zero(env.zeroSumSign())
	}
	return env.normRoundPack(f, sx, ex, m, addTop)
}

func (env *Env) mul(f *format, a, b uint128) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	ub := f.unpack(b)
	if ua.isNaN() || ub.isNaN() {
		return env.propagateNaN(f, 2, a, b, uint128{})
	}
	sign := ua.sign != ub.sign

	if ua.class == classInf || ub.class == classInf {
		if ua.class == classZero || ub.class == classZero {
			return env.invalid(f)
		}
		return f.infinity(sign)
	}
	if ua.class == classZero || ub.class == classZero {
		return f.zero(sign)
	}

	m, ref := reduce(mul128(ua.sig, ub.sig), int(2*f.top()))
	return env.normRoundPack(f, sign, ua.exp+ub.exp, m, ref)
}

// Place x, whose bit pos has weight 2^exp, into a frame where bit
// fmaTop has weight 2^frame.
func placeFMA(x uint256, pos int, exp, frame int32) uint256 {
	s := (fmaTop - pos) - int(frame-exp)
	if s >= 0 {
		return x.shl(uint(s))
	}
	return x.shrJam(uint(-s))
}

// Compute a * b + c with a single rounding.
func (env *Env) mulAdd(f *format, a, b, c uint128) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	ub := f.unpack(b)
	uc := f.unpack(c)
	if ua.isNaN() || ub.isNaN() {
		return env.propagateNaN(f, 3, a, b, c)
	}
	signProd := ua.sign != ub.sign

	if ua.class == classInf || ub.class == classInf {
		if ua.class == classZero || ub.class == classZero {
			nan := env.invalid(f)
			if uc.isNaN() {
				return env.propagateNaN(f, 2, nan, c, uint128{})
			}
			return nan
		}
		if uc.isNaN() {
			return env.propagateNaN(f, 1, c, uint128{}, uint128{})
		}
		if uc.class == classInf && uc.sign != signProd {
			return env.invalid(f)
		}
		return f.infinity(signProd)
	}

	if uc.isNaN() {
		return env.propagateNaN(f, 1, c, uint128{}, uint128{})
	}
	if uc.class == classInf {
		return f.infinity(uc.sign)
	}

	if ua.class == classZero || ub.class == classZero {
		if uc.class == classZero {
			if uc.sign == signProd {
				return f.zero(signProd)
			}
			return f.zero(env.zeroSumSign())
		}
		return env.repack(f, uc)
	}

	prod := mul128(ua.sig, ub.sig)
	prodPos := int(2 * f.top())
	expProd := ua.exp + ub.exp
	if uc.class == classZero {
		m, ref := reduce(prod, prodPos)
		return env.normRoundPack(f, signProd, expProd, m, ref)
	}

	frame := max(expProd, uc.exp)
	x := placeFMA(prod, prodPos, expProd, frame)
	y := placeFMA(from128(uc.sig), int(f.top()), uc.exp, frame)

	var sum uint256
	sign := signProd
	switch {
	case signProd == uc.sign:
		sum = x.add(y)
	case x.cmp(y) >= 0:
		sum = x.sub(y)
	default:
		sum = y.sub(x)
		sign = uc.sign
	}
	if sum.isZero() {
		return f.zero(env.zeroSumSign())
	}

	m, ref := reduce(sum, fmaTop)
	return env.normRoundPack(f, sign, frame, m, ref)
}

func (env *Env) div(f *format, a, b uint128) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	ub := f.unpack(b)
	if ua.isNaN() || ub.isNaN() {
		return env.propagateNaN(f, 2, a, b, uint128{})
	}
	sign := ua.sign != ub.sign

	if ua.class == classInf {
		if ub.class == classInf {
			return env.invalid(f)
		}
		return f.infinity(sign)
	}
	if ub.class == classInf {
		return f.zero(sign)
	}
	if ub.class == classZero {
		if ua.class == classZero {
			return env.invalid(f)
		}
		env.Flags |= FlagInfinite
		return f.infinity(sign)
	}
	if ua.class == classZero {
		return f.zero(sign)
	}

	// Restoring division, one quotient bit per step. Two bits beyond the
	// rounding bit keep the sticky bit clear of it.
	n := f.precision + 2
	var q uint128
	rem := ua.sig
	for rangeIdx := uint(0); rangeIdx < n+1; rangeIdx++ {
		q = q.shl(1)
		if !rem.less(ub.sig) {
			rem = rem.sub(ub.sig)
			q.lo |= 1
		}
		rem = rem.shl(1)
	}
	if !rem.isZero() {
		q.lo |= 1
	}
	return env.normRoundPack(f, sign, ua.exp-ub.exp, q, int(n))
}

// IEEE remainder, a - n * b where n is a / b rounded to nearest even.
func (env *Env) rem(f *format, a, b uint128) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	ub := f.unpack(b)
	if ua.isNaN() || ub.isNaN() {
		return env.propagateNaN(f, 2, a, b, uint128{})
	}
	if ua.class == classInf || ub.class == classZero {
		return env.invalid(f)
	}
	if ub.class == classInf || ua.class == classZero {
		return env.repack(f, ua)
	}

	expDiff := ua.exp - ub.exp
	if expDiff < -1 {
		return env.repack(f, ua)
	}

	// Work in units of half of b's last place, so that a's significand
	// is a * 2^k and the divisor is twice b's significand.
	y := ub.sig.shl(1)
	k := int(expDiff) + 1
	r := ua.sig
	q := false

	// Narrow divisors can reduce 62 bits at a time.
	if y.hi == 0 && y.lo < (uint64(1)<<62) {
		for k > 1 {
			c := min(k-1, 62)
			w := r.shl(uint(c))
			r = u128(bits.Rem64(w.hi, w.lo, y.lo))
			k -= c
		}
	}
	for ; k > 0; k-- {
		r = r.shl(1)
		q = false
		if !r.less(y) {
			r = r.sub(y)
			q = true
		}
	}

	// Pick the nearer of r and r - y.
	sign := ua.sign
	c := r.shl(1).cmp(y)
	if c > 0 || (c == 0 && q) {
		r = y.sub(r)
		sign = !sign
	}
	if r.isZero() {
		return f.zero(ua.sign)
	}
	return env.normRoundPack(f, sign, ub.exp, r, int(f.precision))
}

func (env *Env) sqrt(f *format, a uint128) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	if ua.isNaN() {
		return env.propagateNaN(f, 1, a, uint128{}, uint128{})
	}
	if ua.class == classZero {
		return f.zero(ua.sign)
	}
	if ua.sign {
		return env.invalid(f)
	}
	if ua.class == classInf {
		return f.infinity(false)
	}

	// Make the exponent even.
	sig, exp := ua.sig, ua.exp
	if (exp & 1) != 0 {
		sig = sig.shl(1)
		exp--
	}

	// Extract root one bit at a time from the radicand sig * 2^(2n) with
	// the binary point after bit f.top().
	n := f.precision + 2
	x := from128(sig).shl(2*n - f.top())
	var root, rem uint128
	for i := int(n); i >= 0; i-- {
		pair := x.shr(uint(2 * i))[0] & 3
		rem = rem.shl(2).or(u128(pair))
		trial := root.shl(2).or(u128(1))
		root = root.shl(1)
		if !rem.less(trial) {
			rem = rem.sub(trial)
			root.lo |= 1
		}
	}
	if !rem.isZero() {
		root.lo |= 1
	}
	return env.normRoundPack(f, false, exp/2, root, int(n))
}

// Round to an integral value in the same format.
func (env *Env) roundToInt(f *format, a uint128, mode RoundingMode, exact bool) uint128 {
	env.Raw = Raw{}
	ua := f.unpack(a)
	switch {
	case ua.isNaN():
		return env.propagateNaN(f, 1, a, uint128{}, uint128{})
	case ua.class == classInf:
		return f.infinity(ua.sign)
	case ua.class == classZero:
		return f.zero(ua.sign)
	case ua.exp >= int32(f.top()):
		return f.packExact(ua.sign, ua.exp, ua.sig, int(f.top()))
	}

	// Move the units bit to bit 0, the fraction goes to extra.
	intPart, extra := align(ua.sig, int(f.top())-int(ua.exp), 0)
	r, _, inexact := roundSig(intPart, extra, ua.sign, mode)
	if inexact && exact {
		env.Flags |= FlagInexact
	}
	return f.packExact(ua.sign, 0, r, 0)
}
