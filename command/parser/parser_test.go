/*
 * S370 - Console parser test cases.
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

package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	command "github.com/hercules-390/hyperion-sub013/command/command"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(&out), &out
}

func TestGetWord(t *testing.T) {
	tests := []struct {
		line  string
		equal bool
		want  string
		pos   int
	}{
		{"  set rounding", false, "set", 5},
		{"rounding=min", true, "rounding", 8},
		{"rounding=min", false, "", 0},
		{"F32_Add 1 2", false, "f32_add", 7},
		{"32bit", false, "", 0},
		{"", false, "", 0},
	}
	for _, test := range tests {
		line := cmdLine{line: test.line}
		if r := line.getWord(test.equal); r != test.want || line.pos != test.pos {
			t.Errorf("getWord %q got: %q %d wanted: %q %d", test.line, r, line.pos, test.want, test.pos)
		}
	}
}

func TestParseQuoteString(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"f32.tv op=x", "f32.tv", true},
		{` "my file.tv" op=x`, "my file.tv", true},
		{`"a""b"`, `a"b`, true},
		{`"open`, "open", false},
		{"", "", false},
	}
	for _, test := range tests {
		line := cmdLine{line: test.line}
		r, ok := line.parseQuoteString()
		if r != test.want || ok != test.ok {
			t.Errorf("parseQuoteString %q got: %q %v wanted: %q %v", test.line, r, ok, test.want, test.ok)
		}
	}
}

func TestGetNumber(t *testing.T) {
	line := cmdLine{line: " -192 24576 x"}
	n, err := line.getNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(-192), n)
	n, err = line.getNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(24576), n)
	_, err = line.getNumber()
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	assert.Len(t, matchList("s"), 0)
	assert.Len(t, matchList("sh"), 1)
	assert.Len(t, matchList("sc"), 1)
	assert.Len(t, matchList("showing"), 0)
	assert.Len(t, matchList("qui"), 0)
	assert.Len(t, matchList("quit"), 1)
}

func TestGetOptions(t *testing.T) {
	session, _ := newTestSession()
	line := cmdLine{line: " rounding=odd exact tininess=after"}
	opts, err := line.getOptions(session, command.ValidSet)
	require.NoError(t, err)
	want := []*command.CmdOption{
		{Name: "rounding", EqualOpt: "odd"},
		{Name: "exact"},
		{Name: "tininess", EqualOpt: "after"},
	}
	assert.Equal(t, want, opts)

	for _, bad := range []string{"rounding=sideways", "exact=1", "rounding", "bogus=1", "op=f32_add", "=min"} {
		line = cmdLine{line: bad}
		_, err = line.getOptions(session, command.ValidSet)
		assert.Error(t, err, bad)
	}
}

func TestSetShow(t *testing.T) {
	session, out := newTestSession()
	quit, err := ProcessCommand("set rounding=minmag tininess=after nanrule=order exact", session)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, sf.RoundMinMag, session.Env.Rounding)
	assert.Equal(t, sf.TininessAfterRounding, session.Env.Tininess)
	assert.Equal(t, sf.NaNOperandOrder, session.Env.NaNRule)
	assert.True(t, session.Exact)

	_, err = ProcessCommand("show env", session)
	require.NoError(t, err)
	assert.Equal(t, "rounding=minmag tininess=after nanrule=order exact\n", out.String())

	_, err = ProcessCommand("unset exact", session)
	require.NoError(t, err)
	assert.False(t, session.Exact)
	_, err = ProcessCommand("unset rounding=min", session)
	assert.Error(t, err)
	_, err = ProcessCommand("set", session)
	assert.Error(t, err)
	_, err = ProcessCommand("show bogus", session)
	assert.Error(t, err)
}

func TestOperation(t *testing.T) {
	session, out := newTestSession()
	_, err := ProcessCommand("f32_div 3F800000 40400000", session)
	require.NoError(t, err)
	assert.Equal(t, "3EAAAAAB 01 inexact,incremented\n", out.String())

	out.Reset()
	_, err = ProcessCommand("show flags", session)
	require.NoError(t, err)
	assert.Equal(t, "flags=21 inexact,incremented\n", out.String())

	_, err = ProcessCommand("clear", session)
	require.NoError(t, err)
	assert.Zero(t, session.Env.Flags)

	_, err = ProcessCommand("f32_div 3F800000", session)
	assert.Error(t, err)
	_, err = ProcessCommand("frobnicate 1", session)
	assert.Error(t, err)
}

func TestScaled(t *testing.T) {
	session, out := newTestSession()
	_, err := ProcessCommand("f32_mul 71C00000 71800000", session)
	require.NoError(t, err)
	out.Reset()
	_, err = ProcessCommand("scaled f32 -192", session)
	require.NoError(t, err)
	assert.Equal(t, "43C00000\n", out.String())

	_, err = ProcessCommand("scaled f16 0", session)
	assert.Error(t, err)
	_, err = ProcessCommand("scaled f32", session)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	name := filepath.Join(t.TempDir(), "f32 div.tv")
	vectors := "3F800000 40400000 3EAAAAAB 01\n3F800000 40000000 3F000001 00\n"
	require.NoError(t, os.WriteFile(name, []byte(vectors), 0o644))

	session, out := newTestSession()
	_, err := ProcessCommand(`run "`+name+`" op=f32_div`, session)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "f32_div: 2 cases 1 errors digest "), lines[0])
	assert.Equal(t, "  line 2: 3F800000 40000000 got 3F000000 00 wanted 3F000001 00", lines[1])
	assert.Zero(t, session.Env.Flags)

	_, err = ProcessCommand(`run "`+name+`"`, session)
	assert.Error(t, err)
	_, err = ProcessCommand("run", session)
	assert.Error(t, err)
}

func TestQuit(t *testing.T) {
	session, _ := newTestSession()
	quit, err := ProcessCommand("quit", session)
	assert.NoError(t, err)
	assert.True(t, quit)
	quit, err = ProcessCommand("   # nothing", session)
	assert.NoError(t, err)
	assert.False(t, quit)
}

func TestComplete(t *testing.T) {
	session, _ := newTestSession()
	assert.Equal(t, []string{"scaled ", "set ", "show "}, CompleteCmd("s", session))
	assert.Equal(t, []string{"f32_add "}, CompleteCmd("f32_ad", session))
	assert.Equal(t, []string{"set rounding="}, CompleteCmd("set ro", session))
	assert.Equal(t, []string{"set rounding=near_even ", "set rounding=near_maxmag "},
		CompleteCmd("set rounding=ne", session))
	assert.Equal(t, []string{"set exact tininess=after "}, CompleteCmd("set exact tininess=a", session))
	assert.Equal(t, []string{"scaled f128 "}, CompleteCmd("scaled f1", session))
	assert.Equal(t, []string{`run "x.tv" op=f64_mulAdd `}, CompleteCmd(`run "x.tv" op=f64_mulA`, session))
	assert.Nil(t, CompleteCmd("run x.t", session))
	assert.Nil(t, CompleteCmd("bogus ", session))
}

func TestDebugOption(t *testing.T) {
	assert.NoError(t, Debug("CMD"))
	assert.Error(t, Debug("BOGUS"))
	debugMsk = 0
}
