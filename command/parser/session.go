/*
 * S370 - Console session state.
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
	"io"
	"os"
	"strings"

	command "github.com/hercules-390/hyperion-sub013/command/command"
	"github.com/hercules-390/hyperion-sub013/config/envconfig"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/hercules-390/hyperion-sub013/util/hex"
)

// State kept between console commands.
type Session struct {
	Env   *sf.Env   // Environment operations run in.
	Exact bool      // Exact flag for integer conversions.
	out   io.Writer // Where command output goes.
}

// Create session using configured defaults.
func NewSession(out io.Writer) *Session {
	env := envconfig.Default()
	if out == nil {
		out = os.Stdout
	}
	return &Session{Env: &env, out: out}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func roundingNames() []string {
	names := []string{}
	for mode := sf.RoundNearEven; mode <= sf.RoundOdd; mode++ {
		names = append(names, mode.String())
	}
	return names
}

// List of valid options.
func (s *Session) Options(_ string) []command.Options {
	return []command.Options{
		{Name: "rounding", OptionType: command.OptionList, OptionValid: command.ValidSet, OptionList: roundingNames()},
		{Name: "tininess", OptionType: command.OptionList, OptionValid: command.ValidSet,
			OptionList: []string{"before", "after"}},
		{Name: "nanrule", OptionType: command.OptionList, OptionValid: command.ValidSet,
			OptionList: []string{"payload", "order"}},
		{Name: "exact", OptionType: command.OptionSwitch, OptionValid: command.ValidSet | command.ValidRun},
		{Name: "env", OptionType: command.OptionSwitch, OptionValid: command.ValidShow},
		{Name: "flags", OptionType: command.OptionSwitch, OptionValid: command.ValidShow},
		{Name: "raw", OptionType: command.OptionSwitch, OptionValid: command.ValidShow},
		{Name: "op", OptionType: command.OptionName, OptionValid: command.ValidRun},
		{Name: "checknans", OptionType: command.OptionSwitch, OptionValid: command.ValidRun},
		{Name: "checkints", OptionType: command.OptionSwitch, OptionValid: command.ValidRun},
	}
}

// Set or unset session options.
func (s *Session) Set(unset bool, options []*command.CmdOption) error {
	for _, opt := range options {
		if unset && opt.Name != "exact" {
			return errors.New("unset only valid for exact: " + opt.Name)
		}
		var err error
		switch opt.Name {
		case "rounding":
			s.Env.Rounding, err = sf.ParseRoundingMode(opt.EqualOpt)
		case "tininess":
			s.Env.Tininess, err = envconfig.ParseTininess(opt.EqualOpt)
		case "nanrule":
			s.Env.NaNRule, err = envconfig.ParseNaNRule(opt.EqualOpt)
		case "exact":
			s.Exact = !unset
		default:
			err = errors.New("set option not valid: " + opt.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Show state of session.
func (s *Session) Show(options []*command.CmdOption) (string, error) {
	var str strings.Builder
	if len(options) == 0 {
		options = []*command.CmdOption{{Name: "env"}, {Name: "flags"}, {Name: "raw"}}
	}
	for _, opt := range options {
		switch opt.Name {
		case "env":
			fmt.Fprintf(&str, "rounding=%s tininess=%s nanrule=%s", s.Env.Rounding, s.Env.Tininess, s.Env.NaNRule)
			if s.Exact {
				str.WriteString(" exact")
			}
			str.WriteByte('\n')
		case "flags":
			str.WriteString("flags=")
			hex.FormatByte(&str, uint8(s.Env.Flags))
			str.WriteString(" " + s.Env.Flags.String() + "\n")
		case "raw":
			raw := &s.Env.Raw
			sign := "+"
			if raw.Sign {
				sign = "-"
			}
			fmt.Fprintf(&str, "raw=%s ", sign)
			hex.FormatQuad(&str, raw.SigHi, raw.SigLo)
			fmt.Fprintf(&str, " exp=%d inexact=%v incremented=%v tiny=%v\n", raw.Exp, raw.Inexact,
				raw.Incremented, raw.Tiny)
		default:
			return "", errors.New("show option not valid: " + opt.Name)
		}
	}
	return strings.TrimSuffix(str.String(), "\n"), nil
}
