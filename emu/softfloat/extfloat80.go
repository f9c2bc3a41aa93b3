/*
 * S370 - Extended precision operations.
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

// 80 bit extended format, integer bit of significand stored explicitly.
type ExtFloat80 struct {
	SignExp uint16 // Sign and 15 bit biased exponent.
	Signif  uint64 // Significand including integer bit.
}

func (a ExtFloat80) raw() uint128 {
	return uint128{hi: uint64(a.SignExp), lo: a.Signif}
}

func f80(r uint128) ExtFloat80 {
	return ExtFloat80{SignExp: uint16(r.hi), Signif: r.lo}
}

func (a ExtFloat80) IsSignalingNaN() bool {
	return fmt80.isSignaling(a.raw())
}

func (a ExtFloat80) IsNaN() bool {
	return fmt80.isNaN(a.raw())
}

func (a ExtFloat80) IsInf() bool {
	return fmt80.isInf(a.raw())
}

func (env *Env) UI32ToF80(v uint32) ExtFloat80 {
	return f80(env.fromInt(fmt80, false, uint64(v)))
}

func (env *Env) UI64ToF80(v uint64) ExtFloat80 {
	return f80(env.fromInt(fmt80, false, v))
}

func (env *Env) I32ToF80(v int32) ExtFloat80 {
	return f80(env.fromSigned(fmt80, int64(v)))
}

func (env *Env) I64ToF80(v int64) ExtFloat80 {
	return f80(env.fromSigned(fmt80, v))
}

func (env *Env) F80Add(a, b ExtFloat80) ExtFloat80 {
	return f80(env.addSub(fmt80, a.raw(), b.raw(), false))
}

func (env *Env) F80Sub(a, b ExtFloat80) ExtFloat80 {
	return f80(env.addSub(fmt80, a.raw(), b.raw(), true))
}

func (env *Env) F80Mul(a, b ExtFloat80) ExtFloat80 {
	return f80(env.mul(fmt80, a.raw(), b.raw()))
}

func (env *Env) F80MulAdd(a, b, c ExtFloat80) ExtFloat80 {
	return f80(env.mulAdd(fmt80, a.raw(), b.raw(), c.raw()))
}

func (env *Env) F80Div(a, b ExtFloat80) ExtFloat80 {
	return f80(env.div(fmt80, a.raw(), b.raw()))
}

func (env *Env) F80Rem(a, b ExtFloat80) ExtFloat80 {
	return f80(env.rem(fmt80, a.raw(), b.raw()))
}

func (env *Env) F80Sqrt(a ExtFloat80) ExtFloat80 {
	return f80(env.sqrt(fmt80, a.raw()))
}

func (env *Env) F80RoundToInt(a ExtFloat80, mode RoundingMode, exact bool) ExtFloat80 {
	return f80(env.roundToInt(fmt80, a.raw(), mode, exact))
}

func (env *Env) F80ToUI32(a ExtFloat80, mode RoundingMode, exact bool) uint32 {
	return uint32(env.toInt(fmt80, a.raw(), 32, false, mode, exact))
}

func (env *Env) F80ToUI64(a ExtFloat80, mode RoundingMode, exact bool) uint64 {
	return env.toInt(fmt80, a.raw(), 64, false, mode, exact)
}

func (env *Env) F80ToI32(a ExtFloat80, mode RoundingMode, exact bool) int32 {
	return int32(env.toInt(fmt80, a.raw(), 32, true, mode, exact))
}

func (env *Env) F80ToI64(a ExtFloat80, mode RoundingMode, exact bool) int64 {
	return int64(env.toInt(fmt80, a.raw(), 64, true, mode, exact))
}

func (env *Env) F80ToUI32RMinMag(a ExtFloat80, exact bool) uint32 {
	return env.F80ToUI32(a, RoundMinMag, exact)
}

func (env *Env) F80ToUI64RMinMag(a ExtFloat80, exact bool) uint64 {
	return env.F80ToUI64(a, RoundMinMag, exact)
}

func (env *Env) F80ToI32RMinMag(a ExtFloat80, exact bool) int32 {
	return env.F80ToI32(a, RoundMinMag, exact)
}

func (env *Env) F80ToI64RMinMag(a ExtFloat80, exact bool) int64 {
	return env.F80ToI64(a, RoundMinMag, exact)
}

func (env *Env) F80ToF32(a ExtFloat80) Float32 {
	return f32(env.convert(fmt80, fmt32, a.raw()))
}

func (env *Env) F80ToF64(a ExtFloat80) Float64 {
	return f64(env.convert(fmt80, fmt64, a.raw()))
}

func (env *Env) F80ToF128(a ExtFloat80) Float128 {
	return f128(env.convert(fmt80, fmt128, a.raw()))
}

func (env *Env) F80Eq(a, b ExtFloat80) bool {
	return env.eq(fmt80, a.raw(), b.raw())
}

func (env *Env) F80Le(a, b ExtFloat80) bool {
	return env.le(fmt80, a.raw(), b.raw(), true)
}

func (env *Env) F80Lt(a, b ExtFloat80) bool {
	return env.lt(fmt80, a.raw(), b.raw(), true)
}

func (env *Env) F80EqSignaling(a, b ExtFloat80) bool {
	return env.eq(fmt80, a.raw(), b.raw())
}

func (env *Env) F80LeQuiet(a, b ExtFloat80) bool {
	return env.le(fmt80, a.raw(), b.raw(), false)
}

func (env *Env) F80LtQuiet(a, b ExtFloat80) bool {
	return env.lt(fmt80, a.raw(), b.raw(), false)
}

func (env *Env) F80Compare(a, b ExtFloat80) int {
	return env.compareCC(fmt80, a.raw(), b.raw(), false)
}

func (env *Env) F80CompareSignaling(a, b ExtFloat80) int {
	return env.compareCC(fmt80, a.raw(), b.raw(), true)
}

func (env *Env) F80Class(a ExtFloat80) uint16 {
	return fmt80.class(a.raw())
}

// Pointer forms. Result pointer may alias an operand.

func (env *Env) UI32ToF80M(v uint32, z *ExtFloat80) {
	*z = env.UI32ToF80(v)
}

func (env *Env) UI64ToF80M(v uint64, z *ExtFloat80) {
	*z = env.UI64ToF80(v)
}

func (env *Env) I32ToF80M(v int32, z *ExtFloat80) {
	*z = env.I32ToF80(v)
}

func (env *Env) I64ToF80M(v int64, z *ExtFloat80) {
	*z = env.I64ToF80(v)
}

func (env *Env) F80MAdd(a, b, z *ExtFloat80) {
	*z = env.F80Add(*a, *b)
}

func (env *Env) F80MSub(a, b, z *ExtFloat80) {
	*z = env.F80Sub(*a, *b)
}

func (env *Env) F80MMul(a, b, z *ExtFloat80) {
	*z = env.F80Mul(*a, *b)
}

func (env *Env) F80MMulAdd(a, b, c, z *ExtFloat80) {
	*z = env.F80MulAdd(*a, *b, *c)
}

func (env *Env) F80MDiv(a, b, z *ExtFloat80) {
	*z = env.F80Div(*a, *b)
}

func (env *Env) F80MRem(a, b, z *ExtFloat80) {
	*z = env.F80Rem(*a, *b)
}

func (env *Env) F80MSqrt(a, z *ExtFloat80) {
	*z = env.F80Sqrt(*a)
}

func (env *Env) F80MRoundToInt(a *ExtFloat80, mode RoundingMode, exact bool, z *ExtFloat80) {
	*z = env.F80RoundToInt(*a, mode, exact)
}

func (env *Env) F80MToUI32(a *ExtFloat80, mode RoundingMode, exact bool) uint32 {
	return env.F80ToUI32(*a, mode, exact)
}

func (env *Env) F80MToUI64(a *ExtFloat80, mode RoundingMode, exact bool) uint64 {
	return env.F80ToUI64(*a, mode, exact)
}

func (env *Env) F80MToI32(a *ExtFloat80, mode RoundingMode, exact bool) int32 {
	return env.F80ToI32(*a, mode, exact)
}

func (env *Env) F80MToI64(a *ExtFloat80, mode RoundingMode, exact bool) int64 {
	return env.F80ToI64(*a, mode, exact)
}

func (env *Env) F80MToUI32RMinMag(a *ExtFloat80, exact bool) uint32 {
	return env.F80ToUI32RMinMag(*a, exact)
}

func (env *Env) F80MToUI64RMinMag(a *ExtFloat80, exact bool) uint64 {
	return env.F80ToUI64RMinMag(*a, exact)
}

func (env *Env) F80MToI32RMinMag(a *ExtFloat80, exact bool) int32 {
	return env.F80ToI32RMinMag(*a, exact)
}

func (env *Env) F80MToI64RMinMag(a *ExtFloat80, exact bool) int64 {
	return env.F80ToI64RMinMag(*a, exact)
}

func (env *Env) F80MToF32(a *ExtFloat80) Float32 {
	return env.F80ToF32(*a)
}

func (env *Env) F80MToF64(a *ExtFloat80) Float64 {
	return env.F80ToF64(*a)
}

func (env *Env) F80MToF128M(a *ExtFloat80, z *Float128) {
	*z = env.F80ToF128(*a)
}

func (env *Env) F80MEq(a, b *ExtFloat80) bool {
	return env.F80Eq(*a, *b)
}

func (env *Env) F80MLe(a, b *ExtFloat80) bool {
	return env.F80Le(*a, *b)
}

func (env *Env) F80MLt(a, b *ExtFloat80) bool {
	return env.F80Lt(*a, *b)
}

func (env *Env) F80MEqSignaling(a, b *ExtFloat80) bool {
	return env.F80EqSignaling(*a, *b)
}

func (env *Env) F80MLeQuiet(a, b *ExtFloat80) bool {
	return env.F80LeQuiet(*a, *b)
}

func (env *Env) F80MLtQuiet(a, b *ExtFloat80) bool {
	return env.F80LtQuiet(*a, *b)
}

func (env *Env) F32ToF80M(a Float32, z *ExtFloat80) {
	*z = env.F32ToF80(a)
}

func (env *Env) F64ToF80M(a Float64, z *ExtFloat80) {
	*z = env.F64ToF80(a)
}
