// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmd holds the stackscan command line.
package cmd

import (
	"io"
	"log"

	"github.com/azure/stackscan/internal"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	opts := &internal.GlobalCommandOptions{}

	cmd := &cobra.Command{
		Use:   "stackscan",
		Short: "stackscan profiles the technologies of a source tree",
		Long: `stackscan profiles the technologies of a source tree.

It reports the language mix, the framework stack, declared dependencies, HTTP endpoints and headers,
outbound calls, configuration files and credentials found in the files under a directory.

	$ stackscan profile ./my-service
	$ stackscan profile --output json --query "stack.backend"`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(log.LstdFlags | log.Lshortfile)

			if !opts.EnableDebugLogging {
				log.SetOutput(io.Discard)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(colorable.NewColorableStdout())
	cmd.SetErr(colorable.NewColorableStderr())
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.Flags().BoolP("help", "h", false, "Help for "+cmd.Name())
	cmd.PersistentFlags().BoolVar(&opts.EnableDebugLogging, "debug", false, "Enables debug/diagnostic logging")

	cmd.AddCommand(profileCmd(opts))
	cmd.AddCommand(rulesCmd(opts))
	cmd.AddCommand(schemaCmd())
	cmd.AddCommand(versionCmd(opts))

	return cmd
}
