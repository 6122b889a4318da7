// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/azure/stackscan/cmd"
	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/pkg/output"
	"github.com/mattn/go-colorable"
	"github.com/spf13/pflag"
)

func main() {
	ctx := context.Background()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}

	cmdErr := cmd.NewRootCmd().ExecuteContext(ctx)
	if cmdErr != nil {
		printError(cmdErr)
		restoreColorMode()
		os.Exit(1)
	}
}

func printError(err error) {
	stderr := colorable.NewColorableStderr()

	var suggestionErr *internal.ErrorWithSuggestion
	if errors.As(err, &suggestionErr) {
		fmt.Fprintln(stderr, output.WithErrorFormat("ERROR: %s", suggestionErr.Err.Error()))
		fmt.Fprintln(stderr, output.WithWarningFormat("Suggestion: %s", suggestionErr.Suggestion))
		return
	}

	fmt.Fprintln(stderr, output.WithErrorFormat("ERROR: %s", err.Error()))
}

// isDebugEnabled checks to see if `--debug` was passed with a truthy value.
func isDebugEnabled() bool {
	debug := false
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// The full command line carries flags of every subcommand, which this flag set does not define.
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.BoolVar(&debug, "debug", false, "")

	// pflag returns ErrHelp for --help unless a help flag is defined. The command prints help later.
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Printf("could not parse flags: %v", err)
	}

	return debug
}
