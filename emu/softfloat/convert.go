/*
 * S370 - Format conversions.
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

// Convert between formats. Widening is exact, narrowing rounds.
func (env *Env) convert(from, to *format, a uint128) uint128 {
	env.Raw = Raw{}
	u := from.unpack(a)
	switch u.class {
	case classSNaN:
		env.Flags |= FlagInvalid
		return to.fromCommonNaN(from.toCommonNaN(a))
	case classQNaN:
		return to.fromCommonNaN(from.toCommonNaN(a))
	case classInf:
		return to.infinity(u.sign)
	case classZero:
		return to.zero(u.sign)
	}
	sig, extra := align(u.sig, int(from.top()), int(to.top()))
	return env.roundPack(to, u.sign, u.exp, sig, extra)
}

// Convert an integer magnitude to format f.
func (env *Env) fromInt(f *format, sign bool, mag uint64) uint128 {
	env.Raw = Raw{}
	if mag == 0 {
		return f.zero(false)
	}
	return env.normRoundPack(f, sign, 0, u128(mag), 0)
}

// Convert a signed integer to format f.
func (env *Env) fromSigned(f *format, v int64) uint128 {
	if v < 0 {
		return env.fromInt(f, true, uint64(-v))
	}
	return env.fromInt(f, false, uint64(v))
}

// Result of an invalid conversion to integer.
func invalidInt(width uint, signed bool, nan bool, sign bool) uint64 {
	maxUnsigned := ^uint64(0) >> (64 - width)
	if !signed {
		if nan || sign {
			return 0
		}
		return maxUnsigned
	}
	maxPositive := maxUnsigned >> 1
	if nan || sign {
		return ^maxPositive
	}
	return maxPositive
}

// Convert to an integer of width bits. Signed results are returned sign
// extended to 64 bits. Inexact is only raised when exact is set.
func (env *Env) toInt(f *format, a uint128, width uint, signed bool, mode RoundingMode, exact bool) uint64 {
	u := f.unpack(a)
	switch u.class {
	case classQNaN, classSNaN:
		env.Flags |= FlagInvalid
		return invalidInt(width, signed, true, u.sign)
	case classInf:
		env.Flags |= FlagInvalid
		return invalidInt(width, signed, false, u.sign)
	case classZero:
		return 0
	}

	if u.exp >= int32(width) {
		env.Flags |= FlagInvalid
		return invalidInt(width, signed, false, u.sign)
	}

	intPart, extra := align(u.sig, int(f.top())-int(u.exp), 0)
	mag, _, inexact := roundSig(intPart, extra, u.sign, mode)

	var limit uint64
	switch {
	case !signed && u.sign:
		limit = 0
	case !signed:
		limit = ^uint64(0) >> (64 - width)
	case u.sign:
		limit = uint64(1) << (width - 1)
	default:
		limit = (uint64(1) << (width - 1)) - 1
	}
	if mag.hi != 0 || mag.lo > limit {
		env.Flags |= FlagInvalid
		return invalidInt(width, signed, false, u.sign)
	}

	if inexact && exact {
		env.Flags |= FlagInexact
	}
	if u.sign {
		return -mag.lo
	}
	return mag.lo
}
