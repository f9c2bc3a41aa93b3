/*
 * S370 - Environment configuration test cases.
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

package envconfig

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	config "github.com/hercules-390/hyperion-sub013/config/configparser"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, text string) error {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
	return config.LoadConfig(strings.NewReader(text))
}

func TestEnvSettings(t *testing.T) {
	err := load(t, "ROUNDING odd\nTININESS after\nNANRULE order # z/Arch priority\n")
	require.NoError(t, err)

	env := Default()
	assert.Equal(t, sf.RoundOdd, env.Rounding)
	assert.Equal(t, sf.TininessAfterRounding, env.Tininess)
	assert.Equal(t, sf.NaNOperandOrder, env.NaNRule)
	assert.Zero(t, env.Flags)
}

func TestEnvDefaults(t *testing.T) {
	require.NoError(t, load(t, "# nothing\n"))
	assert.Equal(t, sf.Env{}, Default())
	assert.Empty(t, Vectors())
}

func TestEnvBadValues(t *testing.T) {
	assert.Error(t, load(t, "ROUNDING sideways\n"))
	assert.Error(t, load(t, "TININESS during\n"))
	assert.Error(t, load(t, "NANRULE random\n"))
	assert.Error(t, load(t, "VECTORS f32.tv\n"))
	assert.Error(t, load(t, "VECTORS f32.tv op=f32_add fast\n"))
	assert.Error(t, load(t, "VECTORS f32.tv op=f32_add rounding=up\n"))
}

func TestVectorQueue(t *testing.T) {
	cfg := "ROUNDING min\n" +
		"VECTORS \"f32 add.tv\" op=f32_add\n" +
		"VECTORS f64_to_i32.tv op=F64_TO_I32 exact rounding=minmag\n"
	require.NoError(t, load(t, cfg))

	want := []VectorRun{
		{File: "f32 add.tv", Op: "f32_add"},
		{File: "f64_to_i32.tv", Op: "f64_to_i32", Exact: true, Rounding: sf.RoundMinMag, SetRounding: true},
	}
	runs := Vectors()
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("Vectors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, sf.RoundMin, runs[0].Env().Rounding)
	assert.Equal(t, sf.RoundMinMag, runs[1].Env().Rounding)
}

func TestVectorCheckSwitches(t *testing.T) {
	require.NoError(t, load(t, "VECTORS f32_add.tv op=f32_add checknans\nVECTORS f64_to_i64.tv op=f64_to_i64 checkints exact\n"))

	runs := Vectors()
	require.Len(t, runs, 2)
	want := []testvec.Options{
		{Op: "f32_add", CheckNaNs: true},
		{Op: "f64_to_i64", Exact: true, CheckInvalidInts: true},
	}
	for i, run := range runs {
		if diff := cmp.Diff(want[i], run.Options()); diff != "" {
			t.Errorf("Options %s mismatch (-want +got):\n%s", run.File, diff)
		}
	}
}
