// SPDX-License-Identifier: MIT

// Package cli turns command-line arguments into an app.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/starlane/internal/app"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the validated config,
// whether the program should exit cleanly without running, or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("starlane", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
starlane - build graphs of star lanes and route across them.

Usage:
  starlane [options] [GRAPH_PATH...]

Arguments:
  GRAPH_PATH
    HCL definition file, or a directory searched for .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var paths []string
	flagSet.Func("graph", "HCL definition file or directory; may be repeated.", func(s string) error {
		paths = append(paths, s)
		return nil
	})
	storageFlag := flagSet.String("storage", "", "Storage variant overriding the source: 'list' or 'matrix'.")
	algoFlag := flagSet.String("algo", "", "Run one query: "+strings.Join(app.Algorithms(), ", ")+".")
	fromFlag := flagSet.String("from", "", "Start vertex id for -algo and -bench.")
	toFlag := flagSet.String("to", "", "End vertex id for -algo and -bench.")
	routeFlag := flagSet.String("route", "", "Run only the named route of the definition.")
	dbFlag := flagSet.String("db", "", "SQLite database for -save, -load and -list.")
	saveFlag := flagSet.String("save", "", "Store the graph under this name.")
	loadFlag := flagSet.String("load", "", "Use the stored graph with this name.")
	listFlag := flagSet.Bool("list", false, "List stored graphs.")
	chainFlag := flagSet.Int("chain", 0, "Generate a skip chain with this many vertices.")
	benchFlag := flagSet.Int("bench", 0, "Run every algorithm this many times concurrently and report timings.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	paths = append(paths, flagSet.Args()...)

	if len(paths) == 0 && *loadFlag == "" && *chainFlag == 0 && !*listFlag {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	from, err := vertexID("from", *fromFlag)
	if err != nil {
		return nil, false, err
	}
	to, err := vertexID("to", *toFlag)
	if err != nil {
		return nil, false, err
	}

	cfg, err := app.NewConfig(app.Config{
		GraphPaths: paths,
		LoadName:   *loadFlag,
		Chain:      *chainFlag,
		Storage:    strings.ToLower(*storageFlag),
		Algorithm:  strings.ToLower(*algoFlag),
		From:       from,
		To:         to,
		Route:      *routeFlag,
		DSN:        *dbFlag,
		SaveName:   *saveFlag,
		List:       *listFlag,
		Bench:      *benchFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}

// vertexID parses an optional id flag; empty means app.Unset.
func vertexID(name, s string) (int, error) {
	if s == "" {
		return app.Unset, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, usageError("invalid -%s %q: must be an integer vertex id", name, s)
	}

	return id, nil
}
