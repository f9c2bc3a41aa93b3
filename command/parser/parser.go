/*
 * S370 - Console command parser.
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
	"strconv"
	"strings"
	"unicode"

	command "github.com/hercules-390/hyperion-sub013/command/command"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
	"github.com/hercules-390/hyperion-sub013/util/debug"
)

const (
	// Debug options.
	debugCmd = 1 << iota
	debugResult
)

var debugOption = map[string]int{
	"CMD":    debugCmd,
	"RESULT": debugResult,
}

var debugMsk int

type cmd struct {
	Name     string // Command name.
	Min      int    // Minimum match size.
	Process  func(*cmdLine, *Session) (bool, error)
	Complete func(*cmdLine, *Session) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Enable debug options.
func Debug(opt string) error {
	flag, ok := debugOption[opt]
	if !ok {
		return errors.New("console debug option invalid: " + opt)
	}
	debugMsk |= flag
	return nil
}

// Execute the command line given.
func ProcessCommand(commandLine string, session *Session) (bool, error) {
	debug.Debugf("CONSOLE", debugMsk, debugCmd, "%s", commandLine)
	line := cmdLine{line: commandLine}
	command := line.getWord(false)
	if command == "" {
		line.skipSpace()
		if line.isEOL() {
			return false, nil
		}
		return false, errors.New("command not valid: " + commandLine)
	}

	// Operation names run the operation.
	if op, ok := testvec.Lookup(command); ok {
		return false, operation(&line, session, op)
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].Process(&line, session)
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.Name) {
		return false
	}
	return strings.HasPrefix(match.Name, command) && len(command) >= match.Min
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// Try and match one command.
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Match list of options.
func matchOption(option string, optList []command.Options, cmdType int) command.Options {
	for _, opt := range optList {
		if (opt.OptionValid & cmdType) == 0 {
			continue
		}
		if opt.Name == option {
			return opt
		}
	}
	return command.Options{OptionType: -1}
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
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
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Return current character and advance to next.
func (line *cmdLine) getCurrent() byte {
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	line.pos++
	return by
}

// Peek at current character.
func (line *cmdLine) peek() byte {
	if line.isEOL() {
		return 0
	}
	return line.line[line.pos]
}

// Check if at space or end of line.
func (line *cmdLine) atSeparator() bool {
	return line.isEOL() || unicode.IsSpace(rune(line.line[line.pos]))
}

// Parse string that is "string" or just string.
func (line *cmdLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	line.skipSpace()
	// If quote, set we are in quoted string
	by := line.getCurrent()
	if by == 0 {
		return "", false
	}

	if by == '"' {
		inQuote = true
		by = line.getCurrent()
	}

	for by != 0 {
		// If processing a quoted string "" gets replaced by signal quote
		if by == '"' && inQuote {
			if line.peek() != '"' {
				// Hit end of string.
				return value, true
			}
			line.pos++
		} else if !inQuote && unicode.IsSpace(rune(by)) {
			// Space terminates a no quoted string.
			return value, true
		}

		value += string(by)
		by = line.getCurrent()
	}
	return value, !inQuote
}

// Parse a signed decimal number.
func (line *cmdLine) getNumber() (int64, error) {
	line.skipSpace()

	// Check if end of line.
	if line.isEOL() {
		return 0, errors.New("not a number")
	}

	start := line.pos
	for !line.atSeparator() {
		line.pos++
	}
	text := line.line[start:line.pos]
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		line.pos = start
		return 0, errors.New("not a number: " + text)
	}
	return value, nil
}

// Collect rest of words on line.
func (line *cmdLine) getWords() []string {
	words := []string{}
	for {
		line.skipSpace()
		if line.isEOL() {
			return words
		}
		start := line.pos
		for !line.atSeparator() {
			line.pos++
		}
		words = append(words, line.line[start:line.pos])
	}
}

// Parse a name, letter followed by letters, digits or _.
// If equal is set an = may terminate the name.
func (line *cmdLine) getWord(equal bool) string {
	line.skipSpace()

	pos := line.pos
	value := ""
	for !line.atSeparator() {
		by := line.line[line.pos]
		if by == '=' && equal && value != "" {
			break
		}
		letter := unicode.IsLetter(rune(by))
		if !letter && (value == "" || (!unicode.IsDigit(rune(by)) && by != '_')) {
			line.pos = pos
			return ""
		}
		value += string([]byte{by})
		line.pos++
	}

	return strings.ToLower(value)
}

// Get an option.
func (line *cmdLine) getOption(opts []command.Options, cmdType int) (*command.CmdOption, error) {
	line.skipSpace()
	if line.isEOL() {
		return nil, nil
	}

	// Get a word, stoping at equal or space.
	name := line.getWord(true)
	if name == "" {
		return nil, errors.New("invalid option")
	}

	opt := command.CmdOption{Name: name}
	match := matchOption(name, opts, cmdType)
	if match.OptionType == command.OptionSwitch {
		if !line.atSeparator() {
			return nil, errors.New("switch option can't have arguments: " + name)
		}
		return &opt, nil
	}
	if match.OptionType == -1 {
		return nil, errors.New("unknown option: " + name)
	}

	if line.getCurrent() != '=' {
		return nil, errors.New("option must be followed by =: " + name)
	}

	switch match.OptionType {
	case command.OptionFile:
		file, ok := line.parseQuoteString()
		if !ok {
			return nil, errors.New("file name not valid: " + name)
		}
		opt.EqualOpt = file

	case command.OptionNumber:
		num, err := line.getNumber()
		if err != nil {
			return nil, errors.New("number options must be followed by number: " + name)
		}
		opt.Value = num

	case command.OptionName:
		opt.EqualOpt = line.getWord(false)
		if opt.EqualOpt == "" || !line.atSeparator() {
			return nil, errors.New("option must be followed by name: " + name)
		}

	case command.OptionList:
		listStr := line.getWord(false)
		if !line.atSeparator() {
			return nil, errors.New("option must be followed by name: " + name)
		}
		opt.EqualOpt = listStr
		for _, mod := range match.OptionList {
			if strings.ToLower(mod) == listStr {
				return &opt, nil
			}
		}
		return nil, errors.New("option not valid for type: " + name)

	default:
		return nil, errors.New("invalid option type: " + name)
	}
	return &opt, nil
}

// Scan options and return a list of options.
func (line *cmdLine) getOptions(device command.Command, cmdType int) ([]*command.CmdOption, error) {
	optlist := []*command.CmdOption{}
	opts := device.Options("")
	for {
		opt, err := line.getOption(opts, cmdType)
		if err != nil {
			return optlist, err
		}
		if opt == nil {
			break
		}
		optlist = append(optlist, opt)
	}
	return optlist, nil
}
