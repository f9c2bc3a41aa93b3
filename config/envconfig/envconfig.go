/*
 * S370 - Floating point environment configuration.
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
	"errors"
	"fmt"
	"strings"

	config "github.com/hercules-390/hyperion-sub013/config/configparser"
	sf "github.com/hercules-390/hyperion-sub013/emu/softfloat"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
)

// Vector file queued by configuration.
type VectorRun struct {
	File             string          // Name of vector file.
	Op               string          // Operation vectors test.
	Exact            bool            // Raise inexact on integer results.
	CheckNaNs        bool            // Compare NaN results bit for bit.
	CheckInvalidInts bool            // Compare integer results of invalid cases.
	Rounding         sf.RoundingMode // Rounding mode override.
	SetRounding      bool            // Rounding is valid.
}

var (
	defaultEnv sf.Env
	vectors    []VectorRun
)

// Return copy of configured environment with flags clear.
func Default() sf.Env {
	env := defaultEnv
	env.Flags = 0
	env.Raw = sf.Raw{}
	return env
}

// Return environment to use for a vector run.
func (run VectorRun) Env() *sf.Env {
	env := Default()
	if run.SetRounding {
		env.Rounding = run.Rounding
	}
	return &env
}

// Return verifier options for a vector run.
func (run VectorRun) Options() testvec.Options {
	return testvec.Options{
		Op:               run.Op,
		Exact:            run.Exact,
		CheckNaNs:        run.CheckNaNs,
		CheckInvalidInts: run.CheckInvalidInts,
	}
}

// Return list of vector files to run.
func Vectors() []VectorRun {
	return append([]VectorRun{}, vectors...)
}

// Put settings back to power on state.
func Reset() {
	defaultEnv = sf.Env{}
	vectors = nil
}

// Parse tininess mode name.
func ParseTininess(name string) (sf.Tininess, error) {
	switch strings.ToLower(name) {
	case "before":
		return sf.TininessBeforeRounding, nil
	case "after":
		return sf.TininessAfterRounding, nil
	}
	return sf.TininessBeforeRounding, errors.New("tininess must be before or after: " + name)
}

// Parse NaN rule name.
func ParseNaNRule(name string) (sf.NaNRule, error) {
	switch strings.ToLower(name) {
	case "payload":
		return sf.NaNLargerPayload, nil
	case "order":
		return sf.NaNOperandOrder, nil
	}
	return sf.NaNLargerPayload, errors.New("nan rule must be payload or order: " + name)
}

// register options on initialize.
func init() {
	config.RegisterOption("ROUNDING", setRounding)
	config.RegisterOption("TININESS", setTininess)
	config.RegisterOption("NANRULE", setNaNRule)
	config.RegisterOptions("VECTORS", addVectors)
}

func setRounding(value string, _ []config.Option) error {
	mode, err := sf.ParseRoundingMode(strings.ToLower(value))
	if err != nil {
		return err
	}
	defaultEnv.Rounding = mode
	return nil
}

func setTininess(value string, _ []config.Option) error {
	tininess, err := ParseTininess(value)
	if err != nil {
		return err
	}
	defaultEnv.Tininess = tininess
	return nil
}

func setNaNRule(value string, _ []config.Option) error {
	rule, err := ParseNaNRule(value)
	if err != nil {
		return err
	}
	defaultEnv.NaNRule = rule
	return nil
}

// Queue a vector file.
func addVectors(fileName string, options []config.Option) error {
	run := VectorRun{File: fileName}
	for _, opt := range options {
		switch strings.ToLower(opt.Name) {
		case "op":
			run.Op = strings.ToLower(opt.EqualOpt)
		case "exact":
			run.Exact = true
		case "checknans":
			run.CheckNaNs = true
		case "checkints":
			run.CheckInvalidInts = true
		case "rounding":
			mode, err := sf.ParseRoundingMode(strings.ToLower(opt.EqualOpt))
			if err != nil {
				return err
			}
			run.Rounding = mode
			run.SetRounding = true
		default:
			return fmt.Errorf("vectors option not supported: %s", opt.Name)
		}
	}
	if run.Op == "" {
		return fmt.Errorf("vectors %s requires op=", fileName)
	}
	vectors = append(vectors, run)
	return nil
}
