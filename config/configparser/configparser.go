/*
 * S370 - Configuration file parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Value of option.
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <key> |
 *           <key> <whitespace> <quoteopt> |
 *           <key> <whitespace> <quoteopt> <options>
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <opt> *(',' *(<whitespace>) <string>)
 * <opt> := <optvalue> | <string>
 * <optvalue> ::= <string> '=' <quoteopt>
 * <quoteopt> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <string> ::= *(<letter> | <number> | '_' | '.' | '-' | '/')
 */

const (
	TypeOption  = 1 + iota // Accepts a option parameter.
	TypeOptions            // Accepts a parameter and list of options.
	TypeSwitch             // Option only used to set a flag.
)

var (
	ErrUnknownKey = errors.New("unknown configuration key")
	ErrSyntax     = errors.New("configuration syntax error")
)

// Key creation list.
type keyDef struct {
	create func(string, []Option) error
	ty     int
}

var keys = map[string]keyDef{}

var lineNumber int

// Return type of key or 0 if not registered.
func getKey(key string) int {
	def, ok := keys[key]
	if !ok {
		return 0
	}
	return def.ty
}

func register(key string, ty int, fn func(string, []Option) error) {
	key = strings.ToUpper(key)
	slog.Debug("Registering configuration", "key", key)
	keys[key] = keyDef{create: fn, ty: ty}
}

// Register should be called from init functions.
func RegisterSwitch(key string, fn func(string, []Option) error) {
	register(key, TypeSwitch, fn)
}

// Register should be called from init functions.
func RegisterOption(key string, fn func(string, []Option) error) {
	register(key, TypeOption, fn)
}

// Register should be called from init functions.
func RegisterOptions(key string, fn func(string, []Option) error) {
	register(key, TypeOptions, fn)
}

// Run the handler of key, checking it is of type ty.
func createKey(key string, ty int, value string, options []Option) error {
	key = strings.ToUpper(key)
	def, ok := keys[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if def.ty != ty {
		return fmt.Errorf("%w: %s used as wrong type", ErrSyntax, key)
	}
	return def.create(value, options)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Process configuration lines from a reader.
func LoadConfig(in io.Reader) error {
	lineNumber = 0
	reader := bufio.NewReader(in)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	key := line.parseKey()
	if key == "" {
		return nil
	}
	switch getKey(key) {
	case TypeOption:
		first, ok := line.parseFirst()
		line.skipSpace()
		if !ok || !line.isEOL() {
			return fmt.Errorf("%w: option %s not followed by single value, line: %d", ErrSyntax, key, lineNumber)
		}
		return createKey(key, TypeOption, first, []Option{})

	case TypeOptions:
		first, ok := line.parseFirst()
		if !ok {
			return fmt.Errorf("%w: option %s not followed by value, line: %d", ErrSyntax, key, lineNumber)
		}
		options, err := line.parseOptions()
		if err != nil {
			return err
		}
		return createKey(key, TypeOptions, first, options)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("%w: switch %s followed by options, line: %d", ErrSyntax, key, lineNumber)
		}
		return createKey(key, TypeSwitch, "", nil)
	}
	return fmt.Errorf("%w: %s, line: %d", ErrUnknownKey, key, lineNumber)
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Characters that may appear in a name or unquoted value.
func isNameChar(by byte) bool {
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
		return true
	}
	return by == '_' || by == '.' || by == '-' || by == '/'
}

// Return next name character in line. 0 if EOL or space.
func (line *optionLine) getNext(inQuote bool) byte {
	line.pos++
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	if isNameChar(by) || inQuote {
		return by
	}
	return 0
}

// Peek at next character.
func (line *optionLine) getPeek() byte {
	if (line.pos + 1) >= len(line.line) {
		return 0
	}
	return line.line[line.pos+1]
}

// Parse key at start of line.
func (line *optionLine) parseKey() string {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return ""
	}

	key := ""
	for {
		if line.isEOL() {
			break
		}
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			key += string([]byte{by})
			line.pos++
			continue
		}
		break
	}

	return strings.ToUpper(key)
}

// Parse first parameter after key, may be quoted.
func (line *optionLine) parseFirst() (string, bool) {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return "", false
	}

	// Value starts at next character.
	line.pos--
	value, ok := line.parseQuoteString()
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Parse string that is "string" or just string.
func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	// If quote, set we are in quoted string
	if line.getPeek() == '"' {
		inQuote = true
		_ = line.getNext(true)
	}

	for {
		by := line.getNext(inQuote)
		// If processing a quoted string "" gets replaced by signal quote
		if by == '"' && inQuote {
			by = line.getNext(inQuote)
			if by != '"' {
				// Hit end of string.
				return value, true
			}
		}

		space := unicode.IsSpace(rune(by))
		// Space or comma terminates a no quoted string.
		if !inQuote && (space || by == 0 || by == ',') {
			return value, true
		}

		value += string(by)
		// If we hit end of line, stop processing.
		if line.isEOL() {
			return value, !inQuote
		}
	}
}

// Parse option name.
func (line *optionLine) getName() (string, error) {
	// Check if end of line.
	if line.isEOL() {
		return "", nil
	}

	// First character must be alphabetic.
	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return "", fmt.Errorf("%w: invalid option encountered line: %d [%d]", ErrSyntax, lineNumber, line.pos)
	}
	value := ""

	// Already verified that first character is letter,
	// so grab until not a name character.
	for {
		value += string([]byte{by})
		by = line.getNext(false)
		if by == 0 {
			break
		}
	}

	return value, nil
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	// Skip leading space
	line.skipSpace()

	// Grab option name
	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	// Empty option.
	option := Option{Name: value}

	// If at end of line done.
	if line.isEOL() {
		return &option, nil
	}

	// Check if equals option.
	if line.line[line.pos] == '=' {
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("%w: invalid quoted string line: %d [%d]", ErrSyntax, lineNumber, line.pos)
		}
		option.EqualOpt = v
	}

	// Skip any spaces.
	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++ // Skip comma
		// Skip space between , and next option
		line.skipSpace()
		v, err := line.getName()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		// Skip any trailing spaces.
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
