/*
 * S370 - Single precision operations.
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

// IEEE binary32 bit pattern.
type Float32 uint32

func (a Float32) raw() uint128 {
	return u128(uint64(a))
}

func f32(r uint128) Float32 {
	return Float32(r.lo)
}

// Check if a is a signaling NaN. Raises no flags.
func (a Float32) IsSignalingNaN() bool {
	return fmt32.isSignaling(a.raw())
}

func (a Float32) IsNaN() bool {
	return fmt32.isNaN(a.raw())
}

func (a Float32) IsInf() bool {
	return fmt32.isInf(a.raw())
}

func (env *Env) UI32ToF32(v uint32) Float32 {
	return f32(env.fromInt(fmt32, false, uint64(v)))
}

func (env *Env) UI64ToF32(v uint64) Float32 {
	return f32(env.fromInt(fmt32, false, v))
}

func (env *Env) I32ToF32(v int32) Float32 {
	return f32(env.fromSigned(fmt32, int64(v)))
}

func (env *Env) I64ToF32(v int64) Float32 {
	return f32(env.fromSigned(fmt32, v))
}

func (env *Env) F32Add(a, b Float32) Float32 {
	return f32(env.addSub(fmt32, a.raw(), b.raw(), false))
}

func (env *Env) F32Sub(a, b Float32) Float32 {
	return f32(env.addSub(fmt32, a.raw(), b.raw(), true))
}

func (env *Env) F32Mul(a, b Float32) Float32 {
	return f32(env.mul(fmt32, a.raw(), b.raw()))
}

// Return a * b + c rounded once.
func (env *Env) F32MulAdd(a, b, c Float32) Float32 {
	return f32(env.mulAdd(fmt32, a.raw(), b.raw(), c.raw()))
}

func (env *Env) F32Div(a, b Float32) Float32 {
	return f32(env.div(fmt32, a.raw(), b.raw()))
}

func (env *Env) F32Rem(a, b Float32) Float32 {
	return f32(env.rem(fmt32, a.raw(), b.raw()))
}

func (env *Env) F32Sqrt(a Float32) Float32 {
	return f32(env.sqrt(fmt32, a.raw()))
}

func (env *Env) F32RoundToInt(a Float32, mode RoundingMode, exact bool) Float32 {
	return f32(env.roundToInt(fmt32, a.raw(), mode, exact))
}

func (env *Env) F32ToUI32(a Float32, mode RoundingMode, exact bool) uint32 {
	return uint32(env.toInt(fmt32, a.raw(), 32, false, mode, exact))
}

func (env *Env) F32ToUI64(a Float32, mode RoundingMode, exact bool) uint64 {
	return env.toInt(fmt32, a.raw(), 64, false, mode, exact)
}

func (env *Env) F32ToI32(a Float32, mode RoundingMode, exact bool) int32 {
	return int32(env.toInt(fmt32, a.raw(), 32, true, mode, exact))
}

func (env *Env) F32ToI64(a Float32, mode RoundingMode, exact bool) int64 {
	return int64(env.toInt(fmt32, a.raw(), 64, true, mode, exact))
}

func (env *Env) F32ToUI32RMinMag(a Float32, exact bool) uint32 {
	return env.F32ToUI32(a, RoundMinMag, exact)
}

func (env *Env) F32ToUI64RMinMag(a Float32, exact bool) uint64 {
	return env.F32ToUI64(a, RoundMinMag, exact)
}

func (env *Env) F32ToI32RMinMag(a Float32, exact bool) int32 {
	return env.F32ToI32(a, RoundMinMag, exact)
}

func (env *Env) F32ToI64RMinMag(a Float32, exact bool) int64 {
	return env.F32ToI64(a, RoundMinMag, exact)
}

func (env *Env) F32ToF64(a Float32) Float64 {
	return f64(env.convert(fmt32, fmt64, a.raw()))
}

func (env *Env) F32ToF80(a Float32) ExtFloat80 {
	return f80(env.convert(fmt32, fmt80, a.raw()))
}

func (env *Env) F32ToF128(a Float32) Float128 {
	return f128(env.convert(fmt32, fmt128, a.raw()))
}

func (env *Env) F32Eq(a, b Float32) bool {
	return env.eq(fmt32, a.raw(), b.raw())
}

func (env *Env) F32Le(a, b Float32) bool {
	return env.le(fmt32, a.raw(), b.raw(), true)
}

func (env *Env) F32Lt(a, b Float32) bool {
	return env.lt(fmt32, a.raw(), b.raw(), true)
}

func (env *Env) F32EqSignaling(a, b Float32) bool {
	return env.eq(fmt32, a.raw(), b.raw())
}

func (env *Env) F32LeQuiet(a, b Float32) bool {
	return env.le(fmt32, a.raw(), b.raw(), false)
}

func (env *Env) F32LtQuiet(a, b Float32) bool {
	return env.lt(fmt32, a.raw(), b.raw(), false)
}

// Compare, returning condition code.
func (env *Env) F32Compare(a, b Float32) int {
	return env.compareCC(fmt32, a.raw(), b.raw(), false)
}

// Compare and signal, returning condition code.
func (env *Env) F32CompareSignaling(a, b Float32) int {
	return env.compareCC(fmt32, a.raw(), b.raw(), true)
}

func (env *Env) F32Class(a Float32) uint16 {
	return fmt32.class(a.raw())
}

// Build trap result of last operation, scaled by 2^scale.
func (env *Env) F32ScaledResult(scale int32) Float32 {
	return f32(env.scaledResult(fmt32, scale))
}
