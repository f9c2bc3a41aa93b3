/*
 * S370 - Console commands.
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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	command "github.com/hercules-390/hyperion-sub013/command/command"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
	"github.com/hercules-390/hyperion-sub013/util/debug"
	"github.com/hercules-390/hyperion-sub013/util/hex"
)

var cmdList = []cmd{
	{Name: "set", Min: 3, Process: set, Complete: setComplete},
	{Name: "unset", Min: 2, Process: unset, Complete: setComplete},
	{Name: "show", Min: 2, Process: show, Complete: showComplete},
	{Name: "clear", Min: 2, Process: clearFlags},
	{Name: "scaled", Min: 2, Process: scaled, Complete: scaledComplete},
	{Name: "run", Min: 1, Process: run, Complete: runComplete},
	{Name: "quit", Min: 4, Process: quit},
}

// Handle set commands.
func set(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Set")

	optlist, err := line.getOptions(session, command.ValidSet)
	if err != nil {
		return false, err
	}
	if len(optlist) == 0 {
		return false, errors.New("no options give to set command")
	}
	return false, session.Set(false, optlist)
}

// Set/Unset command completion.
func setComplete(line *cmdLine, session *Session) []string {
	return line.scanOptions(session, command.ValidSet)
}

// Handle unset commands.
func unset(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Unset")

	optlist, err := line.getOptions(session, command.ValidSet)
	if err != nil {
		return false, err
	}
	if len(optlist) == 0 {
		return false, errors.New("no options give to unset command")
	}
	return false, session.Set(true, optlist)
}

// Process the show command.
func show(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Show")

	optlist, err := line.getOptions(session, command.ValidShow)
	if err != nil {
		return false, err
	}

	out, err := session.Show(optlist)
	if err != nil {
		return false, err
	}

	session.println(out)
	return false, nil
}

// Show command completion.
func showComplete(line *cmdLine, session *Session) []string {
	return line.scanOptions(session, command.ValidShow)
}

// Clear exception flags.
func clearFlags(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Clear")
	line.skipSpace()
	if !line.isEOL() {
		return false, errors.New("clear takes no options")
	}
	session.Env.ClearFlags()
	return false, nil
}

// Formats a scaled result can be asked for.
var scaledFormats = []string{"f32", "f64", "f128"}

// Print scaled result of last operation.
func scaled(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Scaled")
	name := line.getWord(false)
	scale, err := line.getNumber()
	if err != nil {
		return false, err
	}
	line.skipSpace()
	if !line.isEOL() {
		return false, errors.New("scaled takes format and scale")
	}

	var str strings.Builder
	switch name {
	case "f32":
		hex.FormatWord(&str, []uint32{uint32(session.Env.F32ScaledResult(int32(scale)))})
	case "f64":
		hex.FormatDouble(&str, []uint64{uint64(session.Env.F64ScaledResult(int32(scale)))})
	case "f128":
		r := session.Env.F128ScaledResult(int32(scale))
		hex.FormatQuad(&str, r.Hi, r.Lo)
	default:
		return false, errors.New("scaled format must be f32, f64 or f128: " + name)
	}
	session.println(strings.TrimSpace(str.String()))
	return false, nil
}

// Complete format of scaled command.
func scaledComplete(line *cmdLine, _ *Session) []string {
	return line.scanList(scaledFormats)
}

// Run one operation on operands.
func operation(line *cmdLine, session *Session, op *testvec.Operation) error {
	operands := line.getWords()
	result, err := op.Eval(session.Env, session.Exact, operands)
	if err != nil {
		return err
	}
	debug.Debugf("CONSOLE", debugMsk, debugResult, "%s %s -> %s", op.Name, strings.Join(operands, " "), result)

	var str strings.Builder
	str.WriteString(result + " ")
	hex.FormatByte(&str, uint8(session.Env.Flags&sf.FlagsIEEE))
	str.WriteString(" " + session.Env.Flags.String())
	session.println(str.String())
	return nil
}

// Verify a vector file.
func run(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Run")
	file, ok := line.parseQuoteString()
	if !ok || file == "" {
		return false, errors.New("run requires a file name")
	}

	optlist, err := line.getOptions(session, command.ValidRun)
	if err != nil {
		return false, err
	}

	opts := testvec.Options{Exact: session.Exact}
	for _, opt := range optlist {
		switch opt.Name {
		case "op":
			opts.Op = opt.EqualOpt
		case "exact":
			opts.Exact = true
		case "checknans":
			opts.CheckNaNs = true
		case "checkints":
			opts.CheckInvalidInts = true
		}
	}
	if opts.Op == "" {
		return false, errors.New("run requires op=")
	}

	env := *session.Env
	summary, err := testvec.RunFile(&env, opts, file)
	if err != nil {
		return false, err
	}
	session.println(fmt.Sprintf("%s: %d cases %d errors digest %s", summary.Op, summary.Cases,
		summary.Errors, summary.Digest))
	for _, f := range summary.Failures {
		session.println(fmt.Sprintf("  line %d: %s got %s %02x wanted %s %02x", f.Line,
			strings.Join(f.Operands, " "), f.Got, uint8(f.GotFlags), f.Want, uint8(f.WantFlags)))
	}
	return false, nil
}

// Complete run command options.
func runComplete(line *cmdLine, session *Session) []string {
	file, ok := line.parseQuoteString()
	if !ok || file == "" {
		return nil
	}
	// Still typing file name.
	if line.pos == len(line.line) && !strings.HasSuffix(line.line, " ") {
		return nil
	}
	return line.scanOptions(session, command.ValidRun)
}

// Handle commands that quit.
func quit(_ *cmdLine, _ *Session) (bool, error) {
	slog.Debug("Command Quit")
	return true, nil
}
