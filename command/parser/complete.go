/*
 * S370 - Console command completion.
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
	"slices"
	"strings"

	command "github.com/hercules-390/hyperion-sub013/command/command"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
)

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string, session *Session) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord(false)

	// We have a command, let it try and complete it.
	if line.pos < len(line.line) {
		if name == "" {
			return nil
		}
		match := matchList(name)
		if len(match) != 1 || match[0].Complete == nil {
			return nil
		}
		return match[0].Complete(&line, session)
	}

	// Try and match one command or operation.
	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.Name, name) {
			matches = append(matches, m.Name+" ")
		}
	}
	for _, op := range testvec.Names() {
		if strings.HasPrefix(strings.ToLower(op), name) {
			matches = append(matches, op+" ")
		}
	}
	slices.Sort(matches)
	return matches
}

// Complete last word from a list.
func (line *cmdLine) scanList(list []string) []string {
	line.skipSpace()
	leading := line.line[:line.pos]
	word := line.line[line.pos:]
	if strings.ContainsAny(word, " \t") {
		return nil
	}
	matches := []string{}
	for _, item := range list {
		if strings.HasPrefix(item, strings.ToLower(word)) {
			matches = append(matches, leading+item+" ")
		}
	}
	return matches
}

// Scan a string for an option.
func scanOpt(name string, opts []command.Options, cmdType int) []command.Options {
	matches := []command.Options{}
	for _, opt := range opts {
		if (opt.OptionValid & cmdType) == 0 {
			continue
		}
		if name == "" || strings.HasPrefix(opt.Name, name) {
			matches = append(matches, opt)
		}
	}
	return matches
}

// Scan to find last option and return possible completions of it.
func (line *cmdLine) scanOptions(device command.Command, cmdType int) []string {
	opts := device.Options("")
	for {
		line.skipSpace()
		leading := line.line[:line.pos]
		name := line.getWord(true)
		if name == "" && line.pos < len(line.line) {
			return nil
		}

		// Still typing option name.
		if line.pos == len(line.line) {
			matches := []string{}
			for _, opt := range scanOpt(name, opts, cmdType) {
				eq := "="
				if opt.OptionType == command.OptionSwitch {
					eq = " "
				}
				matches = append(matches, leading+opt.Name+eq)
			}
			return matches
		}

		if line.line[line.pos] != '=' {
			continue
		}
		line.pos++
		match := matchOption(name, opts, cmdType)
		start := line.pos
		for !line.atSeparator() {
			line.pos++
		}
		if line.pos < len(line.line) {
			continue
		}

		// Typing value of option.
		switch match.OptionType {
		case command.OptionList:
			line.pos = start
			return line.scanList(match.OptionList)
		case command.OptionName:
			matches := []string{}
			value := strings.ToLower(line.line[start:])
			for _, op := range testvec.Names() {
				if strings.HasPrefix(strings.ToLower(op), value) {
					matches = append(matches, line.line[:start]+op+" ")
				}
			}
			return matches
		}
		return nil
	}
}
