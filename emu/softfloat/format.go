/*
 * S370 - Format descriptions and unpacking.
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

// Layout of one binary interchange format. Every format is stored right
// aligned in a uint128: sign, exponent, then fraction (or for the extended
// format the full significand including the integer bit).
type format struct {
	expBits   uint  // Width of exponent field.
	precision uint  // Significand bits, including the integer bit.
	bias      int32 // Exponent bias.
	explicit  bool  // Integer bit is stored.
}

var (
	fmt32  = &format{expBits: 8, precision: 24, bias: 0x7f}
	fmt64  = &format{expBits: 11, precision: 53, bias: 0x3ff}
	fmt80  = &format{expBits: 15, precision: 64, bias: 0x3fff, explicit: true}
	fmt128 = &format{expBits: 15, precision: 113, bias: 0x3fff}
)

// Width of stored significand.
func (f *format) fracBits() uint {
	if f.explicit {
		return f.precision
	}
	return f.precision - 1
}

func (f *format) width() uint {
	return 1 + f.expBits + f.fracBits()
}

// All ones exponent field.
func (f *format) maxField() uint64 {
	return (uint64(1) << f.expBits) - 1
}

// Smallest normal exponent.
func (f *format) emin() int32 {
	return 1 - f.bias
}

// Largest finite exponent.
func (f *format) emax() int32 {
	return f.bias
}

// Bit position of the integer bit of a normalized significand.
func (f *format) top() uint {
	return f.precision - 1
}

// Bit that separates quiet from signaling NaN.
func (f *format) quietBit() uint128 {
	return u128(1).shl(f.precision - 2)
}

// Integer bit of a normalized significand.
func (f *format) intBit() uint128 {
	return u128(1).shl(f.top())
}

func (f *format) pack(sign bool, field uint64, frac uint128) uint128 {
	r := frac.and(lowMask(f.fracBits())).or(u128(field).shl(f.fracBits()))
	if sign {
		r = r.or(u128(1).shl(f.width() - 1))
	}
	return r
}

func (f *format) sign(raw uint128) bool {
	return raw.bit(f.width() - 1)
}

func (f *format) field(raw uint128) uint64 {
	return raw.shr(f.fracBits()).lo & f.maxField()
}

func (f *format) frac(raw uint128) uint128 {
	return raw.and(lowMask(f.fracBits()))
}

// Fraction without the integer bit.
func (f *format) payload(raw uint128) uint128 {
	return raw.and(lowMask(f.precision - 1))
}

// Clear the sign bit.
func (f *format) magnitude(raw uint128) uint128 {
	return raw.and(lowMask(f.width() - 1))
}

func (f *format) zero(sign bool) uint128 {
	return f.pack(sign, 0, uint128{})
}

func (f *format) infinity(sign bool) uint128 {
	var frac uint128
	if f.explicit {
		frac = f.intBit()
	}
	return f.pack(sign, f.maxField(), frac)
}

func (f *format) maxFinite(sign bool) uint128 {
	return f.pack(sign, f.maxField()-1, lowMask(f.precision))
}

// Positive quiet NaN with zero payload.
func (f *format) defaultNaN() uint128 {
	frac := f.quietBit()
	if f.explicit {
		frac = frac.or(f.intBit())
	}
	return f.pack(false, f.maxField(), frac)
}

func (f *format) isNaN(raw uint128) bool {
	return f.field(raw) == f.maxField() && !f.payload(raw).isZero()
}

func (f *format) isSignaling(raw uint128) bool {
	return f.isNaN(raw) && f.payload(raw).and(f.quietBit()).isZero()
}

func (f *format) isInf(raw uint128) bool {
	return f.field(raw) == f.maxField() && f.payload(raw).isZero()
}

// Set the quiet bit of a NaN.
func (f *format) quiet(raw uint128) uint128 {
	raw = raw.or(f.quietBit())
	if f.explicit {
		raw = raw.or(f.intBit())
	}
	return raw
}

type fpClass uint8

const (
	classZero fpClass = iota
	classSubnormal
	classNormal
	classInf
	classQNaN
	classSNaN
)

// Operand split into its parts. Finite non zero values have sig
// normalized so the integer bit is at f.top(), the value being
// sig * 2^(exp - f.top()).
type unpacked struct {
	class fpClass
	sign  bool
	exp   int32
	sig   uint128
}

func (u *unpacked) isNaN() bool {
	return u.class == classQNaN || u.class == classSNaN
}

func (u *unpacked) isFinite() bool {
	return u.class == classNormal || u.class == classSubnormal
}

func (f *format) unpack(raw uint128) unpacked {
	u := unpacked{sign: f.sign(raw)}
	field := f.field(raw)
	frac := f.frac(raw)

	if field == f.maxField() {
		switch {
		case f.payload(raw).isZero():
			u.class = classInf
		case frac.and(f.quietBit()).isZero():
			u.class = classSNaN
		default:
			u.class = classQNaN
		}
		u.sig = frac
		return u
	}

	u.sig = frac
	u.class = classNormal
	if field == 0 {
		u.exp = f.emin()
		u.class = classSubnormal
	} else {
		u.exp = int32(field) - f.bias
		if !f.explicit {
			u.sig = u.sig.or(f.intBit())
		}
	}

	if u.sig.isZero() {
		u.class = classZero
		u.exp = 0
		return u
	}

	// Normalize subnormals and unnormals.
	shift := int(f.top()) - (u.sig.bitLen() - 1)
	if shift > 0 {
		u.sig = u.sig.shl(uint(shift))
		u.exp -= int32(shift)
	}
	return u
}

// Format independent NaN, payload left aligned below the quiet bit.
type commonNaN struct {
	sign    bool
	payload uint128
}

func (f *format) toCommonNaN(raw uint128) commonNaN {
	bits := f.precision - 2
	return commonNaN{
		sign:    f.sign(raw),
		payload: raw.and(lowMask(bits)).shl(128 - bits),
	}
}

func (f *format) fromCommonNaN(nan commonNaN) uint128 {
	frac := nan.payload.shr(128 - (f.precision - 2))
	return f.pack(nan.sign, f.maxField(), f.quiet(frac))
}
