/*
 * S370 - Debug trace output.
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

package debug

import (
	"errors"
	"fmt"
	"io"
	"os"

	config "github.com/hercules-390/hyperion-sub013/config/configparser"
)

var (
	logFile  io.Writer
	fileName string
)

// Generic debug message.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if (mask&level) != 0 && logFile != nil {
		fmt.Fprintf(logFile, module+": "+format+"\n", a...)
	}
}

// Operation trace message, operands and result in hex.
func DebugOpf(op string, mask int, level int, format string, a ...interface{}) {
	if (mask&level) != 0 && logFile != nil {
		fmt.Fprintf(logFile, "op "+op+": "+format+"\n", a...)
	}
}

// Direct debug output to writer, nil turns it off.
func SetOutput(out io.Writer) {
	logFile = out
	fileName = ""
}

// Close debug file if one was created.
func Close() error {
	if closer, ok := logFile.(io.Closer); ok && fileName != "" {
		logFile = nil
		fileName = ""
		return closer.Close()
	}
	logFile = nil
	return nil
}

// register debug file option on initialize.
func init() {
	config.RegisterOption("DEBUGFILE", create)
}

// Create debug output file.
func create(name string, _ []config.Option) error {
	if fileName != "" {
		return fmt.Errorf("can't have more then one debug file, previous: %s", fileName)
	}
	if name == "" {
		return errors.New("debug file requires a name")
	}

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s: %w", name, err)
	}

	logFile = file
	fileName = name
	return nil
}
