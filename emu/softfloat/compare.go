/*
 * S370 - Comparisons and classification.
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

// Condition codes set by compare.
const (
	CCEqual     = 0
	CCLow       = 1
	CCHigh      = 2
	CCUnordered = 3
)

// Data class bits, as tested by TEST DATA CLASS.
const (
	ClassPlusZero       uint16 = 0x800
	ClassMinusZero      uint16 = 0x400
	ClassPlusNormal     uint16 = 0x200
	ClassMinusNormal    uint16 = 0x100
	ClassPlusSubnormal  uint16 = 0x080
	ClassMinusSubnormal uint16 = 0x040
	ClassPlusInf        uint16 = 0x020
	ClassMinusInf       uint16 = 0x010
	ClassPlusQNaN       uint16 = 0x008
	ClassMinusQNaN      uint16 = 0x004
	ClassPlusSNaN       uint16 = 0x002
	ClassMinusSNaN      uint16 = 0x001
)

// Compare magnitudes of two ordered operands.
func magCmp(a, b *unpacked) int {
	rank := func(u *unpacked) int {
		switch u.class {
		case classZero:
			return 0
		case classInf:
			return 2
		}
		return 1
	}
	ra, rb := rank(a), rank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	case ra != 1:
		return 0
	case a.exp < b.exp:
		return -1
	case a.exp > b.exp:
		return 1
	}
	return a.sig.cmp(b.sig)
}

// Order two operands that are not NaN.
func order(a, b *unpacked) int {
	if a.class == classZero && b.class == classZero {
		return 0
	}
	if a.sign != b.sign {
		if a.sign {
			return -1
		}
		return 1
	}
	c := magCmp(a, b)
	if a.sign {
		c = -c
	}
	return c
}

// Compare a and b. Returns -1, 0, 1 or 2 for unordered. Raises invalid
// for any NaN when signaling, otherwise only for a signaling NaN.
func (env *Env) compare(f *format, a, b uint128, signaling bool) int {
	ua := f.unpack(a)
	ub := f.unpack(b)
	if ua.isNaN() || ub.isNaN() {
		if signaling || ua.class == classSNaN || ub.class == classSNaN {
			env.Flags |= FlagInvalid
		}
		return 2
	}
	return order(&ua, &ub)
}

func (env *Env) eq(f *format, a, b uint128) bool {
	return env.compare(f, a, b, false) == 0
}

func (env *Env) le(f *format, a, b uint128, signaling bool) bool {
	c := env.compare(f, a, b, signaling)
	return c == 0 || c == -1
}

func (env *Env) lt(f *format, a, b uint128, signaling bool) bool {
	return env.compare(f, a, b, signaling) == -1
}

// Condition code of a compare.
func (env *Env) compareCC(f *format, a, b uint128, signaling bool) int {
	switch env.compare(f, a, b, signaling) {
	case -1:
		return CCLow
	case 1:
		return CCHigh
	case 2:
		return CCUnordered
	}
	return CCEqual
}

// Data class bit of a value.
func (f *format) class(a uint128) uint16 {
	u := f.unpack(a)
	var mask uint16
	switch u.class {
	case classZero:
		mask = ClassPlusZero
	case classNormal:
		mask = ClassPlusNormal
	case classSubnormal:
		mask = ClassPlusSubnormal
	case classInf:
		mask = ClassPlusInf
	case classQNaN:
		mask = ClassPlusQNaN
	case classSNaN:
		mask = ClassPlusSNaN
	}
	if u.sign {
		mask >>= 1
	}
	return mask
}
