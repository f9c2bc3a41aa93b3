/*
 * S370 - Test vector verifier test cases.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, opts Options, vectors string) Summary {
	t.Helper()
	summary, err := Run(sf.NewEnv(), opts, strings.NewReader(vectors))
	require.NoError(t, err)
	return summary
}

func TestRunPasses(t *testing.T) {
	tests := []struct {
		op      string
		vectors string
	}{
		{"f32_add", "3F800000 3F800000 40000000 00\n3F800000 40400000 40800000 00\n7F800000 FF800000 7FC00000 10\n"},
		{"f32_div", "3F800000 40400000 3EAAAAAB 01\n3F800000 00000000 7F800000 08\n"},
		{"extF80_add", "3FFF8000000000000000 3FFF8000000000000000 40008000000000000000 00\n"},
		{"f128_sqrt", "40010000000000000000000000000000 40000000000000000000000000000000 00\n"},
		{"ui32_to_f64", "FFFFFFFF 41EFFFFFFFE00000 00\n"},
		{"i32_to_f32", "FFFFFFFF BF800000 00\n"},
		{"f64_lt_quiet", "3FF0000000000000 4000000000000000 1 00\n7FF8000000000000 4000000000000000 0 00\n"},
		{"f32_compare", "7FC00000 3F800000 3 00\n3F800000 3F800000 0 00\n"},
		{"f64_class", "0000000000000000 800 00\n"},
		{"f64_to_i32_r_minMag", "3FF8000000000000 00000001 00\nBFF8000000000000 FFFFFFFF 00\n"},
		{"F32_MULADD", "3F800000 40000000 3F800000 40400000 00\n"},
		{"f32_to_f64", "3F800000 3FF0000000000000 00\n"},
	}
	for _, test := range tests {
		summary := run(t, Options{Op: test.op}, "# "+test.op+"\n\n"+test.vectors)
		assert.Zero(t, summary.Errors, test.op)
		assert.Equal(t, strings.Count(test.vectors, "\n"), summary.Cases, test.op)
		assert.Len(t, summary.Digest, 32, test.op)
	}
}

func TestRunMismatch(t *testing.T) {
	vectors := "3F800000 3F000000 40000000 00\n" +
		"3F800000 40400000 3EAAAAAA 01\n" +
		"3F800000 40400000 3EAAAAAB 00\n"
	summary := run(t, Options{Op: "f32_div"}, vectors)

	want := Summary{
		Op:     "f32_div",
		Cases:  3,
		Errors: 2,
		Failures: []Failure{
			{Line: 2, Operands: []string{"3F800000", "40400000"}, Got: "3EAAAAAB", Want: "3EAAAAAA",
				GotFlags: sf.FlagInexact, WantFlags: sf.FlagInexact},
			{Line: 3, Operands: []string{"3F800000", "40400000"}, Got: "3EAAAAAB", Want: "3EAAAAAB",
				GotFlags: sf.FlagInexact, WantFlags: 0},
		},
	}
	if diff := cmp.Diff(want, summary, cmpopts.IgnoreFields(Summary{}, "Digest")); diff != "" {
		t.Errorf("Run summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNaNAndInvalidInts(t *testing.T) {
	nan := "7F800001 3F800000 7FC00000 10\n"
	assert.Zero(t, run(t, Options{Op: "f32_add"}, nan).Errors)
	assert.Equal(t, 1, run(t, Options{Op: "f32_add", CheckNaNs: true}, nan).Errors)

	invalid := "7FF8000000000000 7FFFFFFF 10\n"
	assert.Zero(t, run(t, Options{Op: "f64_to_i32"}, invalid).Errors)
	assert.Equal(t, 1, run(t, Options{Op: "f64_to_i32", CheckInvalidInts: true}, invalid).Errors)
	assert.Zero(t, run(t, Options{Op: "f64_to_i32", CheckInvalidInts: true}, "7FF8000000000000 80000000 10\n").Errors)
}

func TestRunExact(t *testing.T) {
	assert.Zero(t, run(t, Options{Op: "f64_to_i32"}, "3FF8000000000000 00000002 00\n").Errors)
	assert.Zero(t, run(t, Options{Op: "f64_to_i32", Exact: true}, "3FF8000000000000 00000002 01\n").Errors)
	assert.Zero(t, run(t, Options{Op: "f32_roundToInt", Exact: true}, "3FC00000 40000000 01\n").Errors)
}

func TestRunRounding(t *testing.T) {
	env := &sf.Env{Rounding: sf.RoundMinMag}
	summary, err := Run(env, Options{Op: "f32_div"}, strings.NewReader("3F800000 40400000 3EAAAAAA 01\n"))
	require.NoError(t, err)
	assert.Zero(t, summary.Errors)
}

// Digest only depends on what the engine produced.
func TestRunDigest(t *testing.T) {
	first := run(t, Options{Op: "f32_div"}, "3F800000 40400000 3EAAAAAB 01\n")
	second := run(t, Options{Op: "f32_div"}, "3F800000 40400000 00000000 00   # wrong\n")
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, 1, second.Errors)

	third := run(t, Options{Op: "f32_div"}, "3F800000 40000000 3F000000 00\n")
	assert.NotEqual(t, first.Digest, third.Digest)
}

func TestRunErrors(t *testing.T) {
	env := sf.NewEnv()
	_, err := Run(env, Options{Op: "f32_frob"}, strings.NewReader(""))
	require.ErrorIs(t, err, ErrUnknownOp)

	bad := []string{
		"3F800000 40000000 00\n",
		"3F800000 4000000G 3F000000 00\n",
		"3F800000 40000000 3F000000 20\n",
		"3F800000 40000000 3F000000 100\n",
		"3F800000 40000000 3F0000000 00\n",
	}
	for _, vectors := range bad {
		_, err = Run(env, Options{Op: "f32_div"}, strings.NewReader("\n"+vectors))
		require.ErrorIs(t, err, ErrFormat, vectors)
		assert.Contains(t, err.Error(), "line 2", vectors)
	}
	_, err = Run(env, Options{Op: "extF80_sqrt"}, strings.NewReader("1FFFF8000000000000000 0 00\n"))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRunFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "f64_mul.tv")
	require.NoError(t, os.WriteFile(name, []byte("3FF8000000000000 4000000000000000 4008000000000000 00\n"), 0o644))

	summary, err := RunFile(sf.NewEnv(), Options{Op: "f64_mul"}, name)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Cases)
	assert.Zero(t, summary.Errors)

	_, err = RunFile(sf.NewEnv(), Options{Op: "f64_mul"}, name+".missing")
	assert.Error(t, err)
}

func TestEval(t *testing.T) {
	env := sf.NewEnv()
	op, ok := Lookup("f32_div")
	require.True(t, ok)
	assert.Equal(t, 2, op.Operands())
	assert.Equal(t, "f32", op.Format())

	result, err := op.Eval(env, false, []string{"3f800000", "40400000"})
	require.NoError(t, err)
	assert.Equal(t, "3EAAAAAB", result)
	assert.Equal(t, sf.FlagInexact|sf.FlagIncremented, env.Flags)

	_, err = op.Eval(env, false, []string{"3F800000"})
	assert.Error(t, err)
	_, err = op.Eval(env, false, []string{"3F800000", "xyz"})
	assert.Error(t, err)

	op, ok = Lookup("extF80_to_f128")
	require.True(t, ok)
	assert.Equal(t, "extF80", op.Format())
	result, err = op.Eval(env, false, []string{"3FFF8000000000000000"})
	require.NoError(t, err)
	assert.Equal(t, "3FFF0000000000000000000000000000", result)
}

func TestNames(t *testing.T) {
	names := Names()
	for _, name := range []string{"f32_add", "f64_mulAdd", "extF80_rem", "f128_to_ui64_r_minMag",
		"i64_to_extF80", "f64_eq_signaling", "f128_compare_signaling", "f32_class"} {
		assert.Contains(t, names, name)
	}
	assert.Contains(t, names, "extF80_mulAdd")
	assert.NotContains(t, names, "extF80_scaled")
	assert.IsIncreasing(t, names)
}

func TestDebugOption(t *testing.T) {
	assert.NoError(t, Debug("CASE"))
	assert.Error(t, Debug("BOGUS"))
	debugMsk = 0
}
