/*
 * S370 - Log handler test cases.
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

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(debug bool) (*slog.Logger, *bytes.Buffer, *bytes.Buffer) {
	var file, console bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	handler := NewHandler(&file, &slog.HandlerOptions{Level: level}, debug)
	handler.SetConsole(&console)
	return slog.New(handler), &file, &console
}

func TestLogFormat(t *testing.T) {
	log, file, console := newTestLogger(false)
	log.Info("vectors done", "op", "f32_add", "errors", 0)

	line := file.String()
	assert.True(t, strings.HasSuffix(line, " INFO: vectors done op=f32_add errors=0\n"), line)
	assert.Equal(t, line, console.String())
}

func TestLogDebugEcho(t *testing.T) {
	log, file, console := newTestLogger(false)
	log.Debug("case", "line", 3)
	assert.Contains(t, file.String(), "DEBUG: case line=3")
	assert.Empty(t, console.String())

	log, _, console = newTestLogger(true)
	log.Debug("case", "line", 4)
	assert.Contains(t, console.String(), "DEBUG: case line=4")
}

func TestLogWithAttrs(t *testing.T) {
	log, file, _ := newTestLogger(false)
	log.With("file", "f64.tv").WithGroup("case").Warn("mismatch", "line", 7)
	assert.Contains(t, file.String(), "WARN: mismatch file=f64.tv case.line=7")
}

func TestLogNoFile(t *testing.T) {
	var console bytes.Buffer
	handler := NewHandler(nil, nil, false)
	handler.SetConsole(&console)
	slog.New(handler).Error("bad vector file")
	assert.Contains(t, console.String(), "ERROR: bad vector file")
}
