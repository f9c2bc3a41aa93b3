/*
 * S370 - NaN propagation.
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

// Check if NaN x is preferred over NaN y by payload. Ties go to the
// positive one so the choice does not depend on operand order.
func (f *format) nanBefore(x, y uint128) bool {
	switch f.magnitude(x).cmp(f.magnitude(y)) {
	case 1:
		return true
	case -1:
		return false
	}
	return !f.sign(x) && f.sign(y)
}

// Pick the quiet NaN result for an operation on the first n of a, b, c,
// at least one of which is a NaN. Raises invalid if any is signaling.
func (env *Env) propagateNaN(f *format, n int, a, b, c uint128) uint128 {
	ops := [3]uint128{a, b, c}
	var result uint128
	found := false
	resultSignaling := false

	for i := 0; i < n; i++ {
		x := ops[i]
		if !f.isNaN(x) {
			continue
		}
		signaling := f.isSignaling(x)
		if signaling {
			env.Flags |= FlagInvalid
		}
		if !found {
			result, resultSignaling, found = x, signaling, true
			continue
		}
		switch env.NaNRule {
		case NaNOperandOrder:
			if signaling && !resultSignaling {
				result, resultSignaling = x, true
			}
		default:
			if f.nanBefore(f.quiet(x), f.quiet(result)) {
				result, resultSignaling = x, signaling
			}
		}
	}
	return f.quiet(result)
}

// Result of an invalid operation.
func (env *Env) invalid(f *format) uint128 {
	env.Flags |= FlagInvalid
	return f.defaultNaN()
}
