/*
 * S370 - Scaled result test cases.
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

import (
	"testing"
)

func TestScaledInexactOverflow(t *testing.T) {
	env := NewEnv()
	// (1 + 2^-23)^2 * 2^254 rounds to (1 + 2^-22) * 2^254.
	result := env.F32Mul(0x7F000001, 0x7F000001)
	if result != 0x7F800000 {
		t.Errorf("F32Mul overflow not correct got: %08x wanted: %08x", result, 0x7F800000)
	}
	if !env.Raw.Inexact || env.Raw.Incremented || env.Raw.Tiny {
		t.Errorf("F32Mul raw flags not correct got: %+v", env.Raw)
	}
	if r := env.F32ScaledResult(-ScaleF32); r != 0x5E800002 {
		t.Errorf("F32ScaledResult not correct got: %08x wanted: %08x", r, 0x5E800002)
	}
}

func TestScaledUnderflow(t *testing.T) {
	env := NewEnv()
	// 2^-100 times 1.5 * 2^-100.
	result := env.F32Mul(0x0D800000, 0x0DC00000)
	if result != 0 {
		t.Errorf("F32Mul underflow not correct got: %08x wanted: %08x", result, 0)
	}
	checkFlags(t, env, "F32Mul underflow", FlagTiny|FlagUnderflow|FlagInexact)
	if !env.Raw.Tiny || env.Raw.Inexact {
		t.Errorf("F32Mul raw flags not correct got: %+v", env.Raw)
	}
	if r := env.F32ScaledResult(ScaleF32); r != 0x3BC00000 {
		t.Errorf("F32ScaledResult not correct got: %08x wanted: %08x", r, 0x3BC00000)
	}
}

func TestScaledFloat64(t *testing.T) {
	env := NewEnv()
	// 2^1000 * 2^1000 * 1.75.
	result := env.F64Mul(0x7E70000000000000, 0x7E7C000000000000)
	if result != 0x7FF0000000000000 {
		t.Errorf("F64Mul overflow not correct got: %016x wanted: %016x", result, uint64(0x7FF0000000000000))
	}
	if env.Raw.Exp != 2000 {
		t.Errorf("F64Mul raw exponent got: %d wanted: %d", env.Raw.Exp, 2000)
	}
	want := Float64(uint64(2000-ScaleF64+0x3FF)<<52 | 0x000C000000000000)
	if r := env.F64ScaledResult(-ScaleF64); r != want {
		t.Errorf("F64ScaledResult not correct got: %016x wanted: %016x", r, want)
	}

	// Subnormal result keeps full precision in the scaled form.
	env.ClearFlags()
	result = env.F64Div(0x0010000000000001, 0x4000000000000000)
	if result != 0x0008000000000000 && result != 0x0008000000000001 {
		t.Errorf("F64Div subnormal not correct got: %016x", result)
	}
	if r := env.F64ScaledResult(ScaleF64); r != Float64(uint64(-1023+ScaleF64+0x3FF)<<52|1) {
		t.Errorf("F64ScaledResult subnormal not correct got: %016x", r)
	}
}

func TestScaledFloat128(t *testing.T) {
	env := NewEnv()
	big := Float128{Hi: 0x7FFE800000000000, Lo: 0}
	var r Float128
	env.F128MMul(&big, &big, &r)
	if r != (Float128{Hi: 0x7FFF000000000000}) {
		t.Errorf("F128MMul overflow not correct got: %016x%016x", r.Hi, r.Lo)
	}
	var scaled Float128
	env.F128MScaledResult(-ScaleF128, &scaled)
	// 1.5^2 = 2.25, exponent 2 * 0x3FFF + 1 less the scale.
	wantHi := uint64(2*0x3FFF+1-ScaleF128+0x3FFF)<<48 | 0x0000200000000000
	if scaled.Hi != wantHi || scaled.Lo != 0 {
		t.Errorf("F128ScaledResult not correct got: %016x%016x wanted: %016x%016x", scaled.Hi, scaled.Lo, wantHi, 0)
	}
}

// A special result leaves nothing to scale from an earlier operation.
func TestScaledAfterSpecial(t *testing.T) {
	env := NewEnv()
	_ = env.F32Mul(0x0D800000, 0x0DC00000)
	if !env.Raw.Tiny {
		t.Errorf("F32Mul raw flags not correct got: %+v", env.Raw)
	}
	if r := env.F32Add(0x7FC00000, 0x3F800000); r != 0x7FC00000 {
		t.Errorf("F32Add NaN not correct got: %08x wanted: %08x", r, 0x7FC00000)
	}
	if env.Raw != (Raw{}) {
		t.Errorf("F32Add NaN left raw record: %+v", env.Raw)
	}
	if r := env.F32ScaledResult(ScaleF32); r != 0 {
		t.Errorf("F32ScaledResult after NaN got: %08x wanted: %08x", r, 0)
	}
	_ = env.F64Div(0x3FF0000000000000, 0)
	if r := env.F64ScaledResult(-ScaleF64); r != 0 {
		t.Errorf("F64ScaledResult after infinity got: %016x wanted: %016x", r, 0)
	}
}
