/*
 * S370 - Scaled results for overflow and underflow traps.
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

// Exponent adjustment applied when the overflow trap is taken. The
// underflow trap uses the negated value.
const (
	ScaleF32  = 192
	ScaleF64  = 1536
	ScaleF128 = 24576
)

// Pack the last rounded result as Raw.Sig * 2^(Raw.Exp + scale) with no
// further rounding. The biased exponent wraps modulo the field size.
func (env *Env) scaledResult(f *format, scale int32) uint128 {
	r := &env.Raw
	sig := r.sig()
	if sig.isZero() {
		return f.zero(r.Sign)
	}

	// Raw always holds a normalized significand.
	t := sig.bitLen() - 1
	sig, _ = align(sig, t, int(f.top()))
	exp := int64(r.Exp) + int64(t-rawUnit) + int64(scale) + int64(f.bias)
	field := uint64(exp) & f.maxField()
	if !f.explicit {
		sig = sig.and(lowMask(f.top()))
	}
	return f.pack(r.Sign, field, sig)
}
