/*
 * S370 - Test vector verifier.
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
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/hercules-390/hyperion-sub013/util/debug"
	"github.com/hercules-390/hyperion-sub013/util/hex"
	"github.com/spaolacci/murmur3"
)

const (
	// Debug options.
	debugCase = 1 << iota
	debugMismatch
	debugDigest
)

var debugOption = map[string]int{
	"CASE":     debugCase,
	"MISMATCH": debugMismatch,
	"DIGEST":   debugDigest,
}

var debugMsk int

// Number of failures kept in a summary.
const maxFailures = 20

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrFormat    = errors.New("bad test vector")
)

// How vectors are checked.
type Options struct {
	Op               string // Operation to run.
	Exact            bool   // Exact flag for integer conversions.
	CheckNaNs        bool   // NaN results must match bit for bit.
	CheckInvalidInts bool   // Check integer results of invalid conversions.
}

// One case that did not match.
type Failure struct {
	Line      int
	Operands  []string
	Got       string
	Want      string
	GotFlags  sf.Flags
	WantFlags sf.Flags
}

// Result of verifying a vector file.
type Summary struct {
	Op       string
	Cases    int
	Errors   int
	Digest   string    // Murmur3 hash of every result and flag byte.
	Failures []Failure // First failures.
}

// Enable debug options.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("testvec debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// Format value of given kind.
func formatValue(v value, k kind) string {
	var str strings.Builder
	hex.FormatValue(&str, v.hi, v.lo, kindDigits[k])
	return str.String()
}

// Parse value of given kind.
func parseValue(text string, k kind) (value, error) {
	hi, lo, err := hex.Parse(text, kindDigits[k])
	if err != nil {
		return value{}, err
	}
	if k == kindF80 && hi > 0xffff {
		return value{}, hex.ErrTooLong
	}
	return value{hi: hi, lo: lo}, nil
}

// Parse operands, returning values.
func (op *Operation) parseOperands(fields []string) ([]value, error) {
	args := make([]value, len(op.args))
	for i, k := range op.args {
		v, err := parseValue(fields[i], k)
		if err != nil {
			return nil, fmt.Errorf("operand %d %q: %w", i+1, fields[i], err)
		}
		args[i] = v
	}
	return args, nil
}

// Run operation once on hex operands, returning formatted result.
func (op *Operation) Eval(env *sf.Env, exact bool, operands []string) (string, error) {
	if len(operands) != len(op.args) {
		return "", fmt.Errorf("%s takes %d operands", op.Name, len(op.args))
	}
	args, err := op.parseOperands(operands)
	if err != nil {
		return "", err
	}
	result := op.eval(env, args, exact)
	debug.DebugOpf(op.Name, debugMsk, debugCase, "%s -> %s %s", strings.Join(operands, " "),
		formatValue(result, op.result), env.Flags)
	return formatValue(result, op.result), nil
}

// Check result against expected.
func (op *Operation) match(opts *Options, got, want value, flags, wantFlags sf.Flags) bool {
	if flags != wantFlags {
		return false
	}
	if got == want {
		return true
	}
	if !opts.CheckNaNs && got.isNaN(op.result) && want.isNaN(op.result) {
		return true
	}
	if !opts.CheckInvalidInts && isInt(op.result) && (wantFlags&sf.FlagInvalid) != 0 {
		return true
	}
	return false
}

// Verify vectors read from in, one case per line.
func Run(env *sf.Env, opts Options, in io.Reader) (Summary, error) {
	op, ok := Lookup(opts.Op)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrUnknownOp, opts.Op)
	}
	summary := Summary{Op: op.Name}
	digest := murmur3.New128()
	var buffer [17]byte

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(op.args)+2 {
			return summary, fmt.Errorf("%w: line %d: got %d fields wanted %d", ErrFormat, lineNumber,
				len(fields), len(op.args)+2)
		}
		args, err := op.parseOperands(fields)
		if err != nil {
			return summary, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNumber, err)
		}
		want, err := parseValue(fields[len(args)], op.result)
		if err != nil {
			return summary, fmt.Errorf("%w: line %d: result: %w", ErrFormat, lineNumber, err)
		}
		_, flagByte, err := hex.Parse(fields[len(args)+1], 2)
		if err != nil {
			return summary, fmt.Errorf("%w: line %d: flags: %w", ErrFormat, lineNumber, err)
		}
		wantFlags := sf.Flags(flagByte)
		if wantFlags&^sf.FlagsIEEE != 0 {
			return summary, fmt.Errorf("%w: line %d: flags %02x not valid", ErrFormat, lineNumber, flagByte)
		}

		env.ClearFlags()
		got := op.eval(env, args, opts.Exact)
		flags := env.Flags & sf.FlagsIEEE
		summary.Cases++

		binary.BigEndian.PutUint64(buffer[0:], got.hi)
		binary.BigEndian.PutUint64(buffer[8:], got.lo)
		buffer[16] = byte(flags)
		_, _ = digest.Write(buffer[:])

		debug.Debugf("TESTVEC", debugMsk, debugCase, "%d: %s -> %s %02x", lineNumber,
			strings.Join(fields[:len(args)], " "), formatValue(got, op.result), uint8(flags))
		if op.match(&opts, got, want, flags, wantFlags) {
			continue
		}

		summary.Errors++
		debug.Debugf("TESTVEC", debugMsk, debugMismatch, "%d: got %s %02x wanted %s %02x", lineNumber,
			formatValue(got, op.result), uint8(flags), formatValue(want, op.result), uint8(wantFlags))
		if len(summary.Failures) < maxFailures {
			failure := Failure{
				Line:      lineNumber,
				Operands:  append([]string{}, fields[:len(args)]...),
				Got:       formatValue(got, op.result),
				Want:      formatValue(want, op.result),
				GotFlags:  flags,
				WantFlags: wantFlags,
			}
			summary.Failures = append(summary.Failures, failure)
			slog.Warn("vector mismatch", "op", op.Name, "line", lineNumber, "got", failure.Got,
				"flags", failure.GotFlags.String(), "wanted", failure.Want, "wanted_flags", failure.WantFlags.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, err
	}

	h1, h2 := digest.Sum128()
	summary.Digest = fmt.Sprintf("%016x%016x", h1, h2)
	debug.Debugf("TESTVEC", debugMsk, debugDigest, "%s: %d cases digest %s", op.Name, summary.Cases, summary.Digest)
	return summary, nil
}

// Verify vectors in named file.
func RunFile(env *sf.Env, opts Options, fileName string) (Summary, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Summary{}, err
	}
	defer file.Close()

	summary, err := Run(env, opts, file)
	if err != nil {
		return summary, fmt.Errorf("%s: %w", fileName, err)
	}
	slog.Info("vectors verified", "file", fileName, "op", summary.Op, "cases", summary.Cases,
		"errors", summary.Errors, "digest", summary.Digest)
	return summary, nil
}
