/*
 * S370 - Rounding and packing.
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

// Bit 63 of the extension word: exactly half a unit in the last place.
const half = uint64(1) << 63

// Round sig by the discarded bits in extra. Returns the new significand,
// whether the magnitude was increased and whether the result is inexact.
// The result may carry into the next bit position.
func roundSig(sig uint128, extra uint64, sign bool, mode RoundingMode) (uint128, bool, bool) {
	if extra == 0 {
		return sig, false, false
	}

	up := false
	switch mode {
	case RoundNearEven:
		up = extra > half || (extra == half && (sig.lo&1) != 0)
	case RoundNearMaxMag:
		up = extra >= half
	case RoundMin:
		up = sign
	case RoundMax:
		up = !sign
	case RoundOdd:
		if (sig.lo & 1) == 0 {
			sig.lo |= 1
			return sig, true, true
		}
		return sig, false, true
	case RoundMinMag:
	}

	if up {
		sig = sig.add(u128(1))
	}
	return sig, up, true
}

// Check if an overflow delivers infinity rather then the largest finite.
func overflowToInfinity(mode RoundingMode, sign bool) bool {
	switch mode {
	case RoundNearEven, RoundNearMaxMag:
		return true
	case RoundMin:
		return sign
	case RoundMax:
		return !sign
	}
	return false
}

// Build a finite value from a significand that is either normalized with
// exp >= emin, or holds a subnormal with exp == emin.
func (f *format) packSig(sign bool, exp int32, sig uint128) uint128 {
	if sig.isZero() {
		return f.zero(sign)
	}
	var field uint64
	if sig.bit(f.top()) {
		field = uint64(exp + f.bias)
	}
	return f.pack(sign, field, sig)
}

// Round and pack a result into format f.
//
// sig holds the significand with its integer bit at f.top(), exp is the
// unbiased exponent of that bit and extra holds the discarded bits, left
// aligned, with any lower bits jammed into its low bit.
func (env *Env) roundPack(f *format, sign bool, exp int32, sig uint128, extra uint64) uint128 {
	mode := env.Rounding

	// Round as if the exponent range were unbounded.
	rsig, incr, inexact := roundSig(sig, extra, sign, mode)
	rexp := exp
	if rsig.bit(f.precision) {
		rsig = rsig.shr(1)
		rexp++
	}

	env.Raw = Raw{Sign: sign, Exp: rexp, Inexact: inexact, Incremented: incr}
	env.Raw.setSig(rsig.shl(rawUnit - f.top()))

	if rexp > f.emax() {
		env.Flags |= FlagOverflow | FlagInexact
		if overflowToInfinity(mode, sign) {
			return f.infinity(sign)
		}
		return f.maxFinite(sign)
	}

	if exp < f.emin() {
		tiny := env.Tininess == TininessBeforeRounding || rexp < f.emin()
		dsig, dextra := shiftRightExtra(sig, extra, uint(f.emin()-exp))
		dsig, dincr, dinexact := roundSig(dsig, dextra, sign, mode)
		if tiny {
			env.Raw.Tiny = true
			env.Flags |= FlagTiny
			if dinexact {
				env.Flags |= FlagUnderflow
			}
		}
		if dinexact {
			env.Flags |= FlagInexact
		}
		if dincr {
			env.Flags |= FlagIncremented
		}
		return f.packSig(sign, f.emin(), dsig)
	}

	if inexact {
		env.Flags |= FlagInexact
	}
	if incr {
		env.Flags |= FlagIncremented
	}
	return f.packSig(sign, rexp, rsig)
}

// Round and pack m * 2^(exp - ref), m not zero. Any sticky bit in m must
// sit at least two bits below the last bit kept, which holds when m has
// been reduced to 126 bits or more.
func (env *Env) normRoundPack(f *format, sign bool, exp int32, m uint128, ref int) uint128 {
	t := m.bitLen() - 1
	sig, extra := align(m, t, int(f.top()))
	return env.roundPack(f, sign, exp+int32(t-ref), sig, extra)
}

// Pack m * 2^(exp - ref) when it is known to be exact and in range.
func (f *format) packExact(sign bool, exp int32, m uint128, ref int) uint128 {
	if m.isZero() {
		return f.zero(sign)
	}
	t := m.bitLen() - 1
	sig, _ := align(m, t, int(f.top()))
	e := exp + int32(t-ref)
	if e < f.emin() {
		sig = sig.shr(uint(f.emin() - e))
		e = f.emin()
	}
	return f.packSig(sign, e, sig)
}

// Reduce a wide intermediate to at most 126 bits, jamming lost bits.
// Returns the reduced value and the new position of bit ref.
func reduce(x uint256, ref int) (uint128, int) {
	t := x.bitLen() - 1
	if t > rawUnit-1 {
		s := t - (rawUnit - 1)
		x = x.shrJam(uint(s))
		ref -= s
	}
	return x.lo128(), ref
}

// Repack a finite value, raising tiny if it is subnormal.
func (env *Env) repack(f *format, u unpacked) uint128 {
	if u.class == classZero {
		return f.zero(u.sign)
	}
	return env.roundPack(f, u.sign, u.exp, u.sig, 0)
}
