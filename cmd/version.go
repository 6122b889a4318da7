// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"

	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var versionFormats = []output.Format{output.NoneFormat, output.JsonFormat}

type versionFlags struct {
	outputFormat string
	global       *internal.GlobalCommandOptions
}

func (v *versionFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	addOutputFlag(local, &v.outputFormat, versionFormats, output.NoneFormat)
	v.global = global
}

// versionSpec is the JSON form of the version command.
type versionSpec struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func versionCmd(global *internal.GlobalCommandOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stackscan.",
		Args:  cobra.NoArgs,
	}

	flags := &versionFlags{}
	flags.Bind(cmd.Flags(), global)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := withOutput(cmd, flags.outputFormat, versionFormats)
		if err != nil {
			return err
		}

		return (&versionAction{}).Run(ctx)
	}

	return cmd
}

type versionAction struct{}

func (v *versionAction) Run(ctx context.Context) error {
	formatter := output.GetFormatter(ctx)
	writer := output.GetWriter(ctx)

	switch formatter.Kind() {
	case output.JsonFormat:
		return formatter.Format(versionSpec{
			Version: internal.GetVersionNumber(),
			Commit:  internal.GetCommit(),
		}, writer, nil)
	default:
		_, err := fmt.Fprintf(writer, "stackscan version %s\n", internal.Version)
		return err
	}
}
