/*
 * S370 - Double precision operations.
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

// IEEE binary64 bit pattern.
type Float64 uint64

func (a Float64) raw() uint128 {
	return u128(uint64(a))
}

func f64(r uint128) Float64 {
	return Float64(r.lo)
}

// Check if a is a signaling NaN. Raises no flags.
func (a Float64) IsSignalingNaN() bool {
	return fmt64.isSignaling(a.raw())
}

func (a Float64) IsNaN() bool {
	return fmt64.isNaN(a.raw())
}

func (a Float64) IsInf() bool {
	return fmt64.isInf(a.raw())
}

func (env *Env) UI32ToF64(v uint32) Float64 {
	return f64(env.fromInt(fmt64, false, uint64(v)))
}

func (env *Env) UI64ToF64(v uint64) Float64 {
	return f64(env.fromInt(fmt64, false, v))
}

func (env *Env) I32ToF64(v int32) Float64 {
	return f64(env.fromSigned(fmt64, int64(v)))
}

func (env *Env) I64ToF64(v int64) Float64 {
	return f64(env.fromSigned(fmt64, v))
}

func (env *Env) F64Add(a, b Float64) Float64 {
	return f64(env.addSub(fmt64, a.raw(), b.raw(), false))
}

func (env *Env) F64Sub(a, b Float64) Float64 {
	return f64(env.addSub(fmt64, a.raw(), b.raw(), true))
}

func (env *Env) F64Mul(a, b Float64) Float64 {
	return f64(env.mul(fmt64, a.raw(), b.raw()))
}

// Return a * b + c rounded once.
func (env *Env) F64MulAdd(a, b, c Float64) Float64 {
	return f64(env.mulAdd(fmt64, a.raw(), b.raw(), c.raw()))
}

func (env *Env) F64Div(a, b Float64) Float64 {
	return f64(env.div(fmt64, a.raw(), b.raw()))
}

func (env *Env) F64Rem(a, b Float64) Float64 {
	return f64(env.rem(fmt64, a.raw(), b.raw()))
}

func (env *Env) F64Sqrt(a Float64) Float64 {
	return f64(env.sqrt(fmt64, a.raw()))
}

func (env *Env) F64RoundToInt(a Float64, mode RoundingMode, exact bool) Float64 {
	return f64(env.roundToInt(fmt64, a.raw(), mode, exact))
}

func (env *Env) F64ToUI32(a Float64, mode RoundingMode, exact bool) uint32 {
	return uint32(env.toInt(fmt64, a.raw(), 32, false, mode, exact))
}

func (env *Env) F64ToUI64(a Float64, mode RoundingMode, exact bool) uint64 {
	return env.toInt(fmt64, a.raw(), 64, false, mode, exact)
}

func (env *Env) F64ToI32(a Float64, mode RoundingMode, exact bool) int32 {
	return int32(env.toInt(fmt64, a.raw(), 32, true, mode, exact))
}

func (env *Env) F64ToI64(a Float64, mode RoundingMode, exact bool) int64 {
	return int64(env.toInt(fmt64, a.raw(), 64, true, mode, exact))
}

func (env *Env) F64ToUI32RMinMag(a Float64, exact bool) uint32 {
	return env.F64ToUI32(a, RoundMinMag, exact)
}

func (env *Env) F64ToUI64RMinMag(a Float64, exact bool) uint64 {
	return env.F64ToUI64(a, RoundMinMag, exact)
}

func (env *Env) F64ToI32RMinMag(a Float64, exact bool) int32 {
	return env.F64ToI32(a, RoundMinMag, exact)
}

func (env *Env) F64ToI64RMinMag(a Float64, exact bool) int64 {
	return env.F64ToI64(a, RoundMinMag, exact)
}

func (env *Env) F64ToF32(a Float64) Float32 {
	return f32(env.convert(fmt64, fmt32, a.raw()))
}

func (env *Env) F64ToF80(a Float64) ExtFloat80 {
	return f80(env.convert(fmt64, fmt80, a.raw()))
}

func (env *Env) F64ToF128(a Float64) Float128 {
	return f128(env.convert(fmt64, fmt128, a.raw()))
}

func (env *Env) F64Eq(a, b Float64) bool {
	return env.eq(fmt64, a.raw(), b.raw())
}

func (env *Env) F64Le(a, b Float64) bool {
	return env.le(fmt64, a.raw(), b.raw(), true)
}

func (env *Env) F64Lt(a, b Float64) bool {
	return env.lt(fmt64, a.raw(), b.raw(), true)
}

func (env *Env) F64EqSignaling(a, b Float64) bool {
	return env.eq(fmt64, a.raw(), b.raw())
}

func (env *Env) F64LeQuiet(a, b Float64) bool {
	return env.le(fmt64, a.raw(), b.raw(), false)
}

func (env *Env) F64LtQuiet(a, b Float64) bool {
	return env.lt(fmt64, a.raw(), b.raw(), false)
}

// Compare, returning condition code.
func (env *Env) F64Compare(a, b Float64) int {
	return env.compareCC(fmt64, a.raw(), b.raw(), false)
}

// Compare and signal, returning condition code.
func (env *Env) F64CompareSignaling(a, b Float64) int {
	return env.compareCC(fmt64, a.raw(), b.raw(), true)
}

func (env *Env) F64Class(a Float64) uint16 {
	return fmt64.class(a.raw())
}

// Build trap result of last operation, scaled by 2^scale.
func (env *Env) F64ScaledResult(scale int32) Float64 {
	return f64(env.scaledResult(fmt64, scale))
}
