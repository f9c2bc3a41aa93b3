/*
 * S370 - Hex formatting of floating point values.
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

package hex

import (
	"errors"
	"strings"
)

var hexMap = "0123456789ABCDEF"

// Put digits low order hex digits of value.
func formatBits(str *strings.Builder, value uint64, digits int) {
	shift := (digits - 1) * 4
	for rangeIdx := 0; rangeIdx < digits; rangeIdx++ {
		str.WriteByte(hexMap[(value>>shift)&0xf])
		shift -= 4
	}
}

// Format list of 32 bit values, each followed by space.
func FormatWord(str *strings.Builder, word []uint32) {
	for _, full := range word {
		formatBits(str, uint64(full), 8)
		str.WriteByte(' ')
	}
}

// Format list of 64 bit values, each followed by space.
func FormatDouble(str *strings.Builder, double []uint64) {
	for _, full := range double {
		formatBits(str, full, 16)
		str.WriteByte(' ')
	}
}

// Format 80 bit extended value as sign/exponent followed by significand.
func FormatExtended(str *strings.Builder, signExp uint16, signif uint64) {
	formatBits(str, uint64(signExp), 4)
	formatBits(str, signif, 16)
}

// Format 128 bit value.
func FormatQuad(str *strings.Builder, hi, lo uint64) {
	formatBits(str, hi, 16)
	formatBits(str, lo, 16)
}

// Format value into a given number of digits, values over 16 digits
// take the upper part from hi.
func FormatValue(str *strings.Builder, hi, lo uint64, digits int) {
	if digits > 16 {
		formatBits(str, hi, digits-16)
		digits = 16
	}
	formatBits(str, lo, digits)
}

func FormatBytes(str *strings.Builder, space bool, data []uint8) {
	for _, by := range data {
		FormatByte(str, by)
		if space {
			str.WriteByte(' ')
		}
	}
}

func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

var (
	ErrEmpty    = errors.New("empty hex number")
	ErrTooLong  = errors.New("hex number too long")
	ErrNotDigit = errors.New("invalid hex digit")
)

// Parse a hex number of at most digits digits. Values over 16
// digits return the upper part in hi.
func Parse(text string, digits int) (hi, lo uint64, err error) {
	if text == "" {
		return 0, 0, ErrEmpty
	}
	if len(text) > digits {
		return 0, 0, ErrTooLong
	}
	for _, by := range []byte(text) {
		if by >= 'a' && by <= 'f' {
			by -= 'a' - 'A'
		}
		digit := strings.IndexByte(hexMap, by)
		if digit == -1 {
			return 0, 0, ErrNotDigit
		}
		hi = (hi << 4) | (lo >> 60)
		lo = (lo << 4) | uint64(digit)
	}
	return hi, lo, nil
}
