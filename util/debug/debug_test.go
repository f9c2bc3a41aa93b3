/*
 * S370 - Debug trace test cases.
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

package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	config "github.com/hercules-390/hyperion-sub013/config/configparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugMask(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out)
	defer SetOutput(nil)

	Debugf("TESTVEC", 0x1, 0x2, "not shown")
	Debugf("TESTVEC", 0x3, 0x2, "line %d", 4)
	DebugOpf("f32_add", 0x1, 0x1, "%08X %08X", 1, 2)
	assert.Equal(t, "TESTVEC: line 4\nop f32_add: 00000001 00000002\n", out.String())
}

func TestDebugNoOutput(t *testing.T) {
	SetOutput(nil)
	assert.NotPanics(t, func() { Debugf("TESTVEC", 1, 1, "dropped") })
}

func TestDebugFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "debug.log")
	err := config.LoadConfig(strings.NewReader("DEBUGFILE \"" + name + "\"\n"))
	require.NoError(t, err)

	err = config.LoadConfig(strings.NewReader("DEBUGFILE other.log\n"))
	assert.Error(t, err)

	Debugf("CONSOLE", 1, 1, "hello")
	require.NoError(t, Close())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "CONSOLE: hello\n", string(data))
}
