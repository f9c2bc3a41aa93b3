/*
 * S370 - Floating point environment.
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

/*
   Software implementation of IEEE 754 binary floating point as used by
   the z/Architecture BFP facility.

   Four formats are supported:

      Float32     1 sign,  8 exponent,  23 fraction bits.
      Float64     1 sign, 11 exponent,  52 fraction bits.
      ExtFloat80  1 sign, 15 exponent,  64 significand bits, integer bit
                  stored explicitly.
      Float128    1 sign, 15 exponent, 112 fraction bits.

   All operations are methods on an Env, which holds the rounding mode,
   tininess policy, NaN selection rule and the sticky exception flags for
   one emulated CPU. Flags are only ever or'ed in, the caller clears them.

   Every operation that rounds also leaves the result rounded to the target
   precision with an unbounded exponent in Env.Raw. When the program has
   enabled the overflow or underflow trap the instruction routine calls
   the matching ScaledResult to build the trap result from it.
*/

import "errors"

type RoundingMode uint8

const (
	RoundNearEven   RoundingMode = iota // Round to nearest, ties to even.
	RoundMinMag                         // Round toward zero.
	RoundMin                            // Round toward minus infinity.
	RoundMax                            // Round toward plus infinity.
	RoundNearMaxMag                     // Round to nearest, ties away from zero.
	RoundOdd                            // Truncate and force low bit on if inexact.
)

var roundingNames = []string{"near_even", "minmag", "min", "max", "near_maxmag", "odd"}

func (mode RoundingMode) String() string {
	if int(mode) < len(roundingNames) {
		return roundingNames[mode]
	}
	return "unknown"
}

// Convert name of a rounding mode to mode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	for i, n := range roundingNames {
		if n == name {
			return RoundingMode(i), nil
		}
	}
	return RoundNearEven, errors.New("unknown rounding mode: " + name)
}

// When a tiny result is detected.
type Tininess uint8

const (
	TininessBeforeRounding Tininess = iota
	TininessAfterRounding
)

func (t Tininess) String() string {
	if t == TininessAfterRounding {
		return "after"
	}
	return "before"
}

// How the result NaN is picked when more then one operand is a NaN.
type NaNRule uint8

const (
	NaNLargerPayload NaNRule = iota // Larger payload wins, operand order does not matter.
	NaNOperandOrder                 // First SNaN, then first QNaN.
)

func (r NaNRule) String() string {
	if r == NaNOperandOrder {
		return "order"
	}
	return "payload"
}

// Exception flags. The low five bits match the usual IEEE flag byte.
type Flags uint8

const (
	FlagInexact     Flags = 1 << iota // Result was rounded.
	FlagUnderflow                     // Tiny and inexact.
	FlagOverflow                      // Exponent too large.
	FlagInfinite                      // Division of finite by zero.
	FlagInvalid                       // Invalid operation.
	FlagIncremented                   // Rounding increased magnitude.
	FlagTiny                          // Result was tiny, even if exact.

	FlagsIEEE = FlagInexact | FlagUnderflow | FlagOverflow | FlagInfinite | FlagInvalid
)

var flagNames = []string{"inexact", "underflow", "overflow", "infinite", "invalid", "incremented", "tiny"}

func (f Flags) String() string {
	str := ""
	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if str != "" {
			str += ","
		}
		str += name
	}
	if str == "" {
		return "none"
	}
	return str
}

// Rounded result of the last rounding step, before any overflow or
// underflow substitution. Cleared at the start of every operation that
// returns a floating point value, so a NaN, infinite or exact zero result
// leaves it zero.
type Raw struct {
	Sign        bool   // Sign of result.
	Exp         int32  // Unbiased exponent of bit 126 of the significand.
	SigHi       uint64 // Significand, units bit is bit 126 (bit 62 of SigHi).
	SigLo       uint64
	Inexact     bool // Rounding lost bits.
	Incremented bool // Rounding increased magnitude.
	Tiny        bool // Result below smallest normal.
}

// Bit position of the units bit in the raw significand.
const rawUnit = 126

func (r *Raw) sig() uint128 {
	return uint128{hi: r.SigHi, lo: r.SigLo}
}

func (r *Raw) setSig(sig uint128) {
	r.SigHi = sig.hi
	r.SigLo = sig.lo
}

// Floating point environment of one CPU.
// Not safe for concurrent use.
type Env struct {
	Rounding RoundingMode // Rounding mode for operations.
	Tininess Tininess     // When tininess is detected.
	NaNRule  NaNRule      // Selection of propagated NaN.
	Flags    Flags        // Sticky exception flags.
	Raw      Raw          // Result of last rounding.
}

// Return a new environment with default settings.
func NewEnv() *Env {
	return &Env{}
}

// Or in exception flags.
func (env *Env) Raise(flags Flags) {
	env.Flags |= flags
}

// Clear flags, returning the ones that were set.
func (env *Env) ClearFlags() Flags {
	flags := env.Flags
	env.Flags = 0
	return flags
}

// Check if any of flags is set.
func (env *Env) TestFlags(flags Flags) bool {
	return (env.Flags & flags) != 0
}
