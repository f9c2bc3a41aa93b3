/*
 * S370 - Test vector operation table.
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

package testvec

import (
	"slices"
	"strings"

	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
)

// Kind of operand or result.
type kind int

const (
	kindF32 kind = iota
	kindF64
	kindF80
	kindF128
	kindUI32
	kindUI64
	kindI32
	kindI64
	kindBool
	kindCC
	kindClass
)

// Hex digits of each kind.
var kindDigits = []int{8, 16, 20, 32, 8, 16, 8, 16, 1, 1, 3}

// Operand or result bits, hi used by 80 and 128 bit values.
type value struct {
	hi uint64
	lo uint64
}

func (v value) f32() sf.Float32    { return sf.Float32(v.lo) }
func (v value) f64() sf.Float64    { return sf.Float64(v.lo) }
func (v value) f80() sf.ExtFloat80 { return sf.ExtFloat80{SignExp: uint16(v.hi), Signif: v.lo} }
func (v value) f128() sf.Float128  { return sf.Float128{Hi: v.hi, Lo: v.lo} }
func f32v(a sf.Float32) value      { return value{lo: uint64(a)} }
func f64v(a sf.Float64) value      { return value{lo: uint64(a)} }
func f80v(a sf.ExtFloat80) value   { return value{hi: uint64(a.SignExp), lo: a.Signif} }
func f128v(a sf.Float128) value    { return value{hi: a.Hi, lo: a.Lo} }
func i32v(r int32) value           { return value{lo: uint64(uint32(r))} }
func i64v(r int64) value           { return value{lo: uint64(r)} }
func u32v(r uint32) value          { return value{lo: uint64(r)} }
func u64v(r uint64) value          { return value{lo: r} }
func ccv(r int) value              { return value{lo: uint64(r)} }
func boolv(r bool) value {
	if r {
		return value{lo: 1}
	}
	return value{}
}

// Check if value of kind is a NaN.
func (v value) isNaN(k kind) bool {
	switch k {
	case kindF32:
		return v.f32().IsNaN()
	case kindF64:
		return v.f64().IsNaN()
	case kindF80:
		return v.f80().IsNaN()
	case kindF128:
		return v.f128().IsNaN()
	}
	return false
}

func isInt(k kind) bool {
	return k >= kindUI32 && k <= kindI64
}

type (
	unaryOp   func(*sf.Env, value) value
	binaryOp  func(*sf.Env, value, value) value
	ternaryOp func(*sf.Env, value, value, value) value
	toIntOp   func(*sf.Env, value, sf.RoundingMode, bool) value
	compareOp func(*sf.Env, value, value) bool
)

// Operations of one floating point format.
type format struct {
	name       string
	kind       kind
	add        binaryOp
	sub        binaryOp
	mul        binaryOp
	mulAdd     ternaryOp
	div        binaryOp
	rem        binaryOp
	sqrt       unaryOp
	roundToInt toIntOp
	toUI32     toIntOp
	toUI64     toIntOp
	toI32      toIntOp
	toI64      toIntOp
	to         [4]unaryOp // Indexed by target kind.
	eq         compareOp
	le         compareOp
	lt         compareOp
	eqSig      compareOp
	leQuiet    compareOp
	ltQuiet    compareOp
	compare    binaryOp
	compareSig binaryOp
	class      unaryOp
	fromUI32   func(*sf.Env, uint32) value
	fromUI64   func(*sf.Env, uint64) value
	fromI32    func(*sf.Env, int32) value
	fromI64    func(*sf.Env, int64) value
}

var formats = []format{
	{
		name: "f32", kind: kindF32,
		add:    func(e *sf.Env, a, b value) value { return f32v(e.F32Add(a.f32(), b.f32())) },
		sub:    func(e *sf.Env, a, b value) value { return f32v(e.F32Sub(a.f32(), b.f32())) },
		mul:    func(e *sf.Env, a, b value) value { return f32v(e.F32Mul(a.f32(), b.f32())) },
		mulAdd: func(e *sf.Env, a, b, c value) value { return f32v(e.F32MulAdd(a.f32(), b.f32(), c.f32())) },
		div:    func(e *sf.Env, a, b value) value { return f32v(e.F32Div(a.f32(), b.f32())) },
		rem:    func(e *sf.Env, a, b value) value { return f32v(e.F32Rem(a.f32(), b.f32())) },
		sqrt:   func(e *sf.Env, a value) value { return f32v(e.F32Sqrt(a.f32())) },
		roundToInt: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value {
			return f32v(e.F32RoundToInt(a.f32(), m, x))
		},
		toUI32: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u32v(e.F32ToUI32(a.f32(), m, x)) },
		toUI64: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u64v(e.F32ToUI64(a.f32(), m, x)) },
		toI32:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i32v(e.F32ToI32(a.f32(), m, x)) },
		toI64:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i64v(e.F32ToI64(a.f32(), m, x)) },
		to: [4]unaryOp{
			kindF64:  func(e *sf.Env, a value) value { return f64v(e.F32ToF64(a.f32())) },
			kindF80:  func(e *sf.Env, a value) value { return f80v(e.F32ToF80(a.f32())) },
			kindF128: func(e *sf.Env, a value) value { return f128v(e.F32ToF128(a.f32())) },
		},
		eq:         func(e *sf.Env, a, b value) bool { return e.F32Eq(a.f32(), b.f32()) },
		le:         func(e *sf.Env, a, b value) bool { return e.F32Le(a.f32(), b.f32()) },
		lt:         func(e *sf.Env, a, b value) bool { return e.F32Lt(a.f32(), b.f32()) },
		eqSig:      func(e *sf.Env, a, b value) bool { return e.F32EqSignaling(a.f32(), b.f32()) },
		leQuiet:    func(e *sf.Env, a, b value) bool { return e.F32LeQuiet(a.f32(), b.f32()) },
		ltQuiet:    func(e *sf.Env, a, b value) bool { return e.F32LtQuiet(a.f32(), b.f32()) },
		compare:    func(e *sf.Env, a, b value) value { return ccv(e.F32Compare(a.f32(), b.f32())) },
		compareSig: func(e *sf.Env, a, b value) value { return ccv(e.F32CompareSignaling(a.f32(), b.f32())) },
		class:      func(e *sf.Env, a value) value { return u64v(uint64(e.F32Class(a.f32()))) },
		fromUI32:   func(e *sf.Env, v uint32) value { return f32v(e.UI32ToF32(v)) },
		fromUI64:   func(e *sf.Env, v uint64) value { return f32v(e.UI64ToF32(v)) },
		fromI32:    func(e *sf.Env, v int32) value { return f32v(e.I32ToF32(v)) },
		fromI64:    func(e *sf.Env, v int64) value { return f32v(e.I64ToF32(v)) },
	},
	{
		name: "f64", kind: kindF64,
		add:    func(e *sf.Env, a, b value) value { return f64v(e.F64Add(a.f64(), b.f64())) },
		sub:    func(e *sf.Env, a, b value) value { return f64v(e.F64Sub(a.f64(), b.f64())) },
		mul:    func(e *sf.Env, a, b value) value { return f64v(e.F64Mul(a.f64(), b.f64())) },
		mulAdd: func(e *sf.Env, a, b, c value) value { return f64v(e.F64MulAdd(a.f64(), b.f64(), c.f64())) },
		div:    func(e *sf.Env, a, b value) value { return f64v(e.F64Div(a.f64(), b.f64())) },
		rem:    func(e *sf.Env, a, b value) value { return f64v(e.F64Rem(a.f64(), b.f64())) },
		sqrt:   func(e *sf.Env, a value) value { return f64v(e.F64Sqrt(a.f64())) },
		roundToInt: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value {
			return f64v(e.F64RoundToInt(a.f64(), m, x))
		},
		toUI32: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u32v(e.F64ToUI32(a.f64(), m, x)) },
		toUI64: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u64v(e.F64ToUI64(a.f64(), m, x)) },
		toI32:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i32v(e.F64ToI32(a.f64(), m, x)) },
		toI64:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i64v(e.F64ToI64(a.f64(), m, x)) },
		to: [4]unaryOp{
			kindF32:  func(e *sf.Env, a value) value { return f32v(e.F64ToF32(a.f64())) },
			kindF80:  func(e *sf.Env, a value) value { return f80v(e.F64ToF80(a.f64())) },
			kindF128: func(e *sf.Env, a value) value { return f128v(e.F64ToF128(a.f64())) },
		},
		eq:         func(e *sf.Env, a, b value) bool { return e.F64Eq(a.f64(), b.f64()) },
		le:         func(e *sf.Env, a, b value) bool { return e.F64Le(a.f64(), b.f64()) },
		lt:         func(e *sf.Env, a, b value) bool { return e.F64Lt(a.f64(), b.f64()) },
		eqSig:      func(e *sf.Env, a, b value) bool { return e.F64EqSignaling(a.f64(), b.f64()) },
		leQuiet:    func(e *sf.Env, a, b value) bool { return e.F64LeQuiet(a.f64(), b.f64()) },
		ltQuiet:    func(e *sf.Env, a, b value) bool { return e.F64LtQuiet(a.f64(), b.f64()) },
		compare:    func(e *sf.Env, a, b value) value { return ccv(e.F64Compare(a.f64(), b.f64())) },
		compareSig: func(e *sf.Env, a, b value) value { return ccv(e.F64CompareSignaling(a.f64(), b.f64())) },
		class:      func(e *sf.Env, a value) value { return u64v(uint64(e.F64Class(a.f64()))) },
		fromUI32:   func(e *sf.Env, v uint32) value { return f64v(e.UI32ToF64(v)) },
		fromUI64:   func(e *sf.Env, v uint64) value { return f64v(e.UI64ToF64(v)) },
		fromI32:    func(e *sf.Env, v int32) value { return f64v(e.I32ToF64(v)) },
		fromI64:    func(e *sf.Env, v int64) value { return f64v(e.I64ToF64(v)) },
	},
	{
		name: "extF80", kind: kindF80,
		add:    func(e *sf.Env, a, b value) value { return f80v(e.F80Add(a.f80(), b.f80())) },
		sub:    func(e *sf.Env, a, b value) value { return f80v(e.F80Sub(a.f80(), b.f80())) },
		mul:    func(e *sf.Env, a, b value) value { return f80v(e.F80Mul(a.f80(), b.f80())) },
		mulAdd: func(e *sf.Env, a, b, c value) value { return f80v(e.F80MulAdd(a.f80(), b.f80(), c.f80())) },
		div:    func(e *sf.Env, a, b value) value { return f80v(e.F80Div(a.f80(), b.f80())) },
		rem:    func(e *sf.Env, a, b value) value { return f80v(e.F80Rem(a.f80(), b.f80())) },
		sqrt:   func(e *sf.Env, a value) value { return f80v(e.F80Sqrt(a.f80())) },
		roundToInt: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value {
			return f80v(e.F80RoundToInt(a.f80(), m, x))
		},
		toUI32: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u32v(e.F80ToUI32(a.f80(), m, x)) },
		toUI64: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u64v(e.F80ToUI64(a.f80(), m, x)) },
		toI32:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i32v(e.F80ToI32(a.f80(), m, x)) },
		toI64:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i64v(e.F80ToI64(a.f80(), m, x)) },
		to: [4]unaryOp{
			kindF32:  func(e *sf.Env, a value) value { return f32v(e.F80ToF32(a.f80())) },
			kindF64:  func(e *sf.Env, a value) value { return f64v(e.F80ToF64(a.f80())) },
			kindF128: func(e *sf.Env, a value) value { return f128v(e.F80ToF128(a.f80())) },
		},
		eq:         func(e *sf.Env, a, b value) bool { return e.F80Eq(a.f80(), b.f80()) },
		le:         func(e *sf.Env, a, b value) bool { return e.F80Le(a.f80(), b.f80()) },
		lt:         func(e *sf.Env, a, b value) bool { return e.F80Lt(a.f80(), b.f80()) },
		eqSig:      func(e *sf.Env, a, b value) bool { return e.F80EqSignaling(a.f80(), b.f80()) },
		leQuiet:    func(e *sf.Env, a, b value) bool { return e.F80LeQuiet(a.f80(), b.f80()) },
		ltQuiet:    func(e *sf.Env, a, b value) bool { return e.F80LtQuiet(a.f80(), b.f80()) },
		compare:    func(e *sf.Env, a, b value) value { return ccv(e.F80Compare(a.f80(), b.f80())) },
		compareSig: func(e *sf.Env, a, b value) value { return ccv(e.F80CompareSignaling(a.f80(), b.f80())) },
		class:      func(e *sf.Env, a value) value { return u64v(uint64(e.F80Class(a.f80()))) },
		fromUI32:   func(e *sf.Env, v uint32) value { return f80v(e.UI32ToF80(v)) },
		fromUI64:   func(e *sf.Env, v uint64) value { return f80v(e.UI64ToF80(v)) },
		fromI32:    func(e *sf.Env, v int32) value { return f80v(e.I32ToF80(v)) },
		fromI64:    func(e *sf.Env, v int64) value { return f80v(e.I64ToF80(v)) },
	},
	{
		name: "f128", kind: kindF128,
		add:    func(e *sf.Env, a, b value) value { return f128v(e.F128Add(a.f128(), b.f128())) },
		sub:    func(e *sf.Env, a, b value) value { return f128v(e.F128Sub(a.f128(), b.f128())) },
		mul:    func(e *sf.Env, a, b value) value { return f128v(e.F128Mul(a.f128(), b.f128())) },
		mulAdd: func(e *sf.Env, a, b, c value) value { return f128v(e.F128MulAdd(a.f128(), b.f128(), c.f128())) },
		div:    func(e *sf.Env, a, b value) value { return f128v(e.F128Div(a.f128(), b.f128())) },
		rem:    func(e *sf.Env, a, b value) value { return f128v(e.F128Rem(a.f128(), b.f128())) },
		sqrt:   func(e *sf.Env, a value) value { return f128v(e.F128Sqrt(a.f128())) },
		roundToInt: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value {
			return f128v(e.F128RoundToInt(a.f128(), m, x))
		},
		toUI32: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u32v(e.F128ToUI32(a.f128(), m, x)) },
		toUI64: func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return u64v(e.F128ToUI64(a.f128(), m, x)) },
		toI32:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i32v(e.F128ToI32(a.f128(), m, x)) },
		toI64:  func(e *sf.Env, a value, m sf.RoundingMode, x bool) value { return i64v(e.F128ToI64(a.f128(), m, x)) },
		to: [4]unaryOp{
			kindF32: func(e *sf.Env, a value) value { return f32v(e.F128ToF32(a.f128())) },
			kindF64: func(e *sf.Env, a value) value { return f64v(e.F128ToF64(a.f128())) },
			kindF80: func(e *sf.Env, a value) value { return f80v(e.F128ToF80(a.f128())) },
		},
		eq:         func(e *sf.Env, a, b value) bool { return e.F128Eq(a.f128(), b.f128()) },
		le:         func(e *sf.Env, a, b value) bool { return e.F128Le(a.f128(), b.f128()) },
		lt:         func(e *sf.Env, a, b value) bool { return e.F128Lt(a.f128(), b.f128()) },
		eqSig:      func(e *sf.Env, a, b value) bool { return e.F128EqSignaling(a.f128(), b.f128()) },
		leQuiet:    func(e *sf.Env, a, b value) bool { return e.F128LeQuiet(a.f128(), b.f128()) },
		ltQuiet:    func(e *sf.Env, a, b value) bool { return e.F128LtQuiet(a.f128(), b.f128()) },
		compare:    func(e *sf.Env, a, b value) value { return ccv(e.F128Compare(a.f128(), b.f128())) },
		compareSig: func(e *sf.Env, a, b value) value { return ccv(e.F128CompareSignaling(a.f128(), b.f128())) },
		class:      func(e *sf.Env, a value) value { return u64v(uint64(e.F128Class(a.f128()))) },
		fromUI32:   func(e *sf.Env, v uint32) value { return f128v(e.UI32ToF128(v)) },
		fromUI64:   func(e *sf.Env, v uint64) value { return f128v(e.UI64ToF128(v)) },
		fromI32:    func(e *sf.Env, v int32) value { return f128v(e.I32ToF128(v)) },
		fromI64:    func(e *sf.Env, v int64) value { return f128v(e.I64ToF128(v)) },
	},
}

// One operation vectors can be run against.
type Operation struct {
	Name   string // Name as used by vector files.
	args   []kind
	result kind
	format kind // Format of first float operand or result.
	eval   func(env *sf.Env, args []value, exact bool) value
}

// Number of operands operation takes.
func (op *Operation) Operands() int {
	return len(op.args)
}

// Format the operation works in, used by scaled results.
func (op *Operation) Format() string {
	return formats[op.format].name
}

var operations = map[string]*Operation{}

func addOp(name string, f kind, result kind, args []kind, eval func(*sf.Env, []value, bool) value) {
	operations[strings.ToLower(name)] = &Operation{Name: name, args: args, result: result, format: f, eval: eval}
}

func addBinary(f *format, name string, result kind, fn binaryOp) {
	k := f.kind
	addOp(f.name+"_"+name, k, result, []kind{k, k}, func(e *sf.Env, v []value, _ bool) value {
		return fn(e, v[0], v[1])
	})
}

func addCompare(f *format, name string, fn compareOp) {
	k := f.kind
	addOp(f.name+"_"+name, k, kindBool, []kind{k, k}, func(e *sf.Env, v []value, _ bool) value {
		return boolv(fn(e, v[0], v[1]))
	})
}

// Float to integer, rounding from the environment or minimum magnitude.
func addToInt(f *format, name string, result kind, fn toIntOp) {
	k := f.kind
	addOp(f.name+"_to_"+name, k, result, []kind{k}, func(e *sf.Env, v []value, exact bool) value {
		return fn(e, v[0], e.Rounding, exact)
	})
	addOp(f.name+"_to_"+name+"_r_minMag", k, result, []kind{k}, func(e *sf.Env, v []value, exact bool) value {
		return fn(e, v[0], sf.RoundMinMag, exact)
	})
}

func init() {
	for i := range formats {
		f := &formats[i]
		k := f.kind
		addBinary(f, "add", k, f.add)
		addBinary(f, "sub", k, f.sub)
		addBinary(f, "mul", k, f.mul)
		addBinary(f, "div", k, f.div)
		addBinary(f, "rem", k, f.rem)
		addBinary(f, "compare", kindCC, f.compare)
		addBinary(f, "compare_signaling", kindCC, f.compareSig)
		mulAdd := f.mulAdd
		addOp(f.name+"_mulAdd", k, k, []kind{k, k, k}, func(e *sf.Env, v []value, _ bool) value {
			return mulAdd(e, v[0], v[1], v[2])
		})
		sqrt := f.sqrt
		addOp(f.name+"_sqrt", k, k, []kind{k}, func(e *sf.Env, v []value, _ bool) value {
			return sqrt(e, v[0])
		})
		class := f.class
		addOp(f.name+"_class", k, kindClass, []kind{k}, func(e *sf.Env, v []value, _ bool) value {
			return class(e, v[0])
		})
		roundToInt := f.roundToInt
		addOp(f.name+"_roundToInt", k, k, []kind{k}, func(e *sf.Env, v []value, exact bool) value {
			return roundToInt(e, v[0], e.Rounding, exact)
		})
		addToInt(f, "ui32", kindUI32, f.toUI32)
		addToInt(f, "ui64", kindUI64, f.toUI64)
		addToInt(f, "i32", kindI32, f.toI32)
		addToInt(f, "i64", kindI64, f.toI64)
		for target, fn := range f.to {
			fn := fn
			if fn == nil {
				continue
			}
			addOp(f.name+"_to_"+formats[target].name, k, kind(target), []kind{k}, func(e *sf.Env, v []value, _ bool) value {
				return fn(e, v[0])
			})
		}
		addCompare(f, "eq", f.eq)
		addCompare(f, "le", f.le)
		addCompare(f, "lt", f.lt)
		addCompare(f, "eq_signaling", f.eqSig)
		addCompare(f, "le_quiet", f.leQuiet)
		addCompare(f, "lt_quiet", f.ltQuiet)

		fromUI32, fromUI64, fromI32, fromI64 := f.fromUI32, f.fromUI64, f.fromI32, f.fromI64
		addOp("ui32_to_"+f.name, k, k, []kind{kindUI32}, func(e *sf.Env, v []value, _ bool) value {
			return fromUI32(e, uint32(v[0].lo))
		})
		addOp("ui64_to_"+f.name, k, k, []kind{kindUI64}, func(e *sf.Env, v []value, _ bool) value {
			return fromUI64(e, v[0].lo)
		})
		addOp("i32_to_"+f.name, k, k, []kind{kindI32}, func(e *sf.Env, v []value, _ bool) value {
			return fromI32(e, int32(uint32(v[0].lo)))
		})
		addOp("i64_to_"+f.name, k, k, []kind{kindI64}, func(e *sf.Env, v []value, _ bool) value {
			return fromI64(e, int64(v[0].lo))
		})
	}
}

// Find an operation by name, case does not matter.
func Lookup(name string) (*Operation, bool) {
	op, ok := operations[strings.ToLower(name)]
	return op, ok
}

// Sorted list of operation names.
func Names() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}
	slices.Sort(names)
	return names
}
