/*
 * S370 - Main program.
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

package main

import (
	"log/slog"
	"os"

	parser "github.com/hercules-390/hyperion-sub013/command/parser"
	reader "github.com/hercules-390/hyperion-sub013/command/reader"
	config "github.com/hercules-390/hyperion-sub013/config/configparser"
	"github.com/hercules-390/hyperion-sub013/config/envconfig"
	"github.com/hercules-390/hyperion-sub013/emu/testvec"
	"github.com/hercules-390/hyperion-sub013/util/debug"
	logger "github.com/hercules-390/hyperion-sub013/util/logger"
	getopt "github.com/pborman/getopt/v2"

	_ "github.com/hercules-390/hyperion-sub013/config/debugconfig"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optVectors := getopt.StringLong("vectors", 'v', "", "Test vector file")
	optOp := getopt.StringLong("op", 'o', "", "Operation tested by vector file")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start console after vectors")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("Unable to create log file", "file", *optLogFile, "error", err)
			os.Exit(1)
		}
		defer file.Close()
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	handler := logger.NewHandler(nil, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug)
	if file != nil {
		handler = logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug)
	}
	Logger := slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Softfloat Started")
	if *optConfig != "" {
		_, err := os.Stat(*optConfig)
		if os.IsNotExist(err) {
			Logger.Error("Configuration file can't be found", "file", *optConfig)
			os.Exit(1)
		}

		err = config.LoadConfigFile(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}
	defer func() { _ = debug.Close() }()

	runs := envconfig.Vectors()
	if *optVectors != "" {
		if *optOp == "" {
			Logger.Error("Vector file requires an operation")
			os.Exit(1)
		}
		runs = append(runs, envconfig.VectorRun{File: *optVectors, Op: *optOp})
	}

	failed := false
	for _, run := range runs {
		summary, err := testvec.RunFile(run.Env(), run.Options(), run.File)
		if err != nil {
			Logger.Error(err.Error())
			failed = true
			continue
		}
		if summary.Errors != 0 {
			failed = true
		}
	}

	if len(runs) == 0 || *optInteractive {
		reader.ConsoleReader(parser.NewSession(os.Stdout))
	}

	Logger.Info("Softfloat stopped.")
	if failed {
		_ = debug.Close()
		os.Exit(1)
	}
}
