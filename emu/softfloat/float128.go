/*
 * S370 - Quad precision operations.
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

// IEEE binary128. Hi holds sign, exponent and the top 48 fraction bits.
type Float128 struct {
	Hi uint64
	Lo uint64
}

func (a Float128) raw() uint128 {
	return uint128{hi: a.Hi, lo: a.Lo}
}

func f128(r uint128) Float128 {
	return Float128{Hi: r.hi, Lo: r.lo}
}

func (a Float128) IsSignalingNaN() bool {
	return fmt128.isSignaling(a.raw())
}

func (a Float128) IsNaN() bool {
	return fmt128.isNaN(a.raw())
}

func (a Float128) IsInf() bool {
	return fmt128.isInf(a.raw())
}

func (env *Env) UI32ToF128(v uint32) Float128 {
	return f128(env.fromInt(fmt128, false, uint64(v)))
}

func (env *Env) UI64ToF128(v uint64) Float128 {
	return f128(env.fromInt(fmt128, false, v))
}

func (env *Env) I32ToF128(v int32) Float128 {
	return f128(env.fromSigned(fmt128, int64(v)))
}

func (env *Env) I64ToF128(v int64) Float128 {
	return f128(env.fromSigned(fmt128, v))
}

func (env *Env) F128Add(a, b Float128) Float128 {
	return f128(env.addSub(fmt128, a.raw(), b.raw(), false))
}

func (env *Env) F128Sub(a, b Float128) Float128 {
	return f128(env.addSub(fmt128, a.raw(), b.raw(), true))
}

func (env *Env) F128Mul(a, b Float128) Float128 {
	return f128(env.mul(fmt128, a.raw(), b.raw()))
}

func (env *Env) F128MulAdd(a, b, c Float128) Float128 {
	return f128(env.mulAdd(fmt128, a.raw(), b.raw(), c.raw()))
}

func (env *Env) F128Div(a, b Float128) Float128 {
	return f128(env.div(fmt128, a.raw(), b.raw()))
}

func (env *Env) F128Rem(a, b Float128) Float128 {
	return f128(env.rem(fmt128, a.raw(), b.raw()))
}

func (env *Env) F128Sqrt(a Float128) Float128 {
	return f128(env.sqrt(fmt128, a.raw()))
}

func (env *Env) F128RoundToInt(a Float128, mode RoundingMode, exact bool) Float128 {
	return f128(env.roundToInt(fmt128, a.raw(), mode, exact))
}

func (env *Env) F128ToUI32(a Float128, mode RoundingMode, exact bool) uint32 {
	return uint32(env.toInt(fmt128, a.raw(), 32, false, mode, exact))
}

func (env *Env) F128ToUI64(a Float128, mode RoundingMode, exact bool) uint64 {
	return env.toInt(fmt128, a.raw(), 64, false, mode, exact)
}

func (env *Env) F128ToI32(a Float128, mode RoundingMode, exact bool) int32 {
	return int32(env.toInt(fmt128, a.raw(), 32, true, mode, exact))
}

func (env *Env) F128ToI64(a Float128, mode RoundingMode, exact bool) int64 {
	return int64(env.toInt(fmt128, a.raw(), 64, true, mode, exact))
}

func (env *Env) F128ToUI32RMinMag(a Float128, exact bool) uint32 {
	return env.F128ToUI32(a, RoundMinMag, exact)
}

func (env *Env) F128ToUI64RMinMag(a Float128, exact bool) uint64 {
	return env.F128ToUI64(a, RoundMinMag, exact)
}

func (env *Env) F128ToI32RMinMag(a Float128, exact bool) int32 {
	return env.F128ToI32(a, RoundMinMag, exact)
}

func (env *Env) F128ToI64RMinMag(a Float128, exact bool) int64 {
	return env.F128ToI64(a, RoundMinMag, exact)
}

func (env *Env) F128ToF32(a Float128) Float32 {
	return f32(env.convert(fmt128, fmt32, a.raw()))
}

func (env *Env) F128ToF64(a Float128) Float64 {
	return f64(env.convert(fmt128, fmt64, a.raw()))
}

func (env *Env) F128ToF80(a Float128) ExtFloat80 {
	return f80(env.convert(fmt128, fmt80, a.raw()))
}

func (env *Env) F128Eq(a, b Float128) bool {
	return env.eq(fmt128, a.raw(), b.raw())
}

func (env *Env) F128Le(a, b Float128) bool {
	return env.le(fmt128, a.raw(), b.raw(), true)
}

func (env *Env) F128Lt(a, b Float128) bool {
	return env.lt(fmt128, a.raw(), b.raw(), true)
}

func (env *Env) F128EqSignaling(a, b Float128) bool {
	return env.eq(fmt128, a.raw(), b.raw())
}

func (env *Env) F128LeQuiet(a, b Float128) bool {
	return env.le(fmt128, a.raw(), b.raw(), false)
}

func (env *Env) F128LtQuiet(a, b Float128) bool {
	return env.lt(fmt128, a.raw(), b.raw(), false)
}

func (env *Env) F128Compare(a, b Float128) int {
	return env.compareCC(fmt128, a.raw(), b.raw(), false)
}

func (env *Env) F128CompareSignaling(a, b Float128) int {
	return env.compareCC(fmt128, a.raw(), b.raw(), true)
}

func (env *Env) F128Class(a Float128) uint16 {
	return fmt128.class(a.raw())
}

func (env *Env) F128ScaledResult(scale int32) Float128 {
	return f128(env.scaledResult(fmt128, scale))
}

// Pointer forms. Result pointer may alias an operand.

func (env *Env) UI32ToF128M(v uint32, z *Float128) {
	*z = env.UI32ToF128(v)
}

func (env *Env) UI64ToF128M(v uint64, z *Float128) {
	*z = env.UI64ToF128(v)
}

func (env *Env) I32ToF128M(v int32, z *Float128) {
	*z = env.I32ToF128(v)
}

func (env *Env) I64ToF128M(v int64, z *Float128) {
	*z = env.I64ToF128(v)
}

func (env *Env) F128MAdd(a, b, z *Float128) {
	*z = env.F128Add(*a, *b)
}

func (env *Env) F128MSub(a, b, z *Float128) {
	*z = env.F128Sub(*a, *b)
}

func (env *Env) F128MMul(a, b, z *Float128) {
	*z = env.F128Mul(*a, *b)
}

func (env *Env) F128MMulAdd(a, b, c, z *Float128) {
	*z = env.F128MulAdd(*a, *b, *c)
}

func (env *Env) F128MDiv(a, b, z *Float128) {
	*z = env.F128Div(*a, *b)
}

func (env *Env) F128MRem(a, b, z *Float128) {
	*z = env.F128Rem(*a, *b)
}

func (env *Env) F128MSqrt(a, z *Float128) {
	*z = env.F128Sqrt(*a)
}

func (env *Env) F128MRoundToInt(a *Float128, mode RoundingMode, exact bool, z *Float128) {
	*z = env.F128RoundToInt(*a, mode, exact)
}

func (env *Env) F128MToUI32(a *Float128, mode RoundingMode, exact bool) uint32 {
	return env.F128ToUI32(*a, mode, exact)
}

func (env *Env) F128MToUI64(a *Float128, mode RoundingMode, exact bool) uint64 {
	return env.F128ToUI64(*a, mode, exact)
}

func (env *Env) F128MToI32(a *Float128, mode RoundingMode, exact bool) int32 {
	return env.F128ToI32(*a, mode, exact)
}

func (env *Env) F128MToI64(a *Float128, mode RoundingMode, exact bool) int64 {
	return env.F128ToI64(*a, mode, exact)
}

func (env *Env) F128MToUI32RMinMag(a *Float128, exact bool) uint32 {
	return env.F128ToUI32RMinMag(*a, exact)
}

func (env *Env) F128MToUI64RMinMag(a *Float128, exact bool) uint64 {
	return env.F128ToUI64RMinMag(*a, exact)
}

func (env *Env) F128MToI32RMinMag(a *Float128, exact bool) int32 {
	return env.F128ToI32RMinMag(*a, exact)
}

func (env *Env) F128MToI64RMinMag(a *Float128, exact bool) int64 {
	return env.F128ToI64RMinMag(*a, exact)
}

func (env *Env) F128MToF32(a *Float128) Float32 {
	return env.F128ToF32(*a)
}

func (env *Env) F128MToF64(a *Float128) Float64 {
	return env.F128ToF64(*a)
}

func (env *Env) F128MToF80M(a *Float128, z *ExtFloat80) {
	*z = env.F128ToF80(*a)
}

func (env *Env) F128MEq(a, b *Float128) bool {
	return env.F128Eq(*a, *b)
}

func (env *Env) F128MLe(a, b *Float128) bool {
	return env.F128Le(*a, *b)
}

func (env *Env) F128MLt(a, b *Float128) bool {
	return env.F128Lt(*a, *b)
}

func (env *Env) F128MEqSignaling(a, b *Float128) bool {
	return env.F128EqSignaling(*a, *b)
}

func (env *Env) F128MLeQuiet(a, b *Float128) bool {
	return env.F128LeQuiet(*a, *b)
}

func (env *Env) F128MLtQuiet(a, b *Float128) bool {
	return env.F128LtQuiet(*a, *b)
}

func (env *Env) F128MScaledResult(scale int32, z *Float128) {
	*z = env.F128ScaledResult(scale)
}

func (env *Env) F32ToF128M(a Float32, z *Float128) {
	*z = env.F32ToF128(a)
}

func (env *Env) F64ToF128M(a Float64, z *Float128) {
	*z = env.F64ToF128(a)
}
