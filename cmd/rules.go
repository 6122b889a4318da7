// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/internal/config"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rulesFormats = []output.Format{output.TableFormat, output.JsonFormat}

type rulesFlags struct {
	outputFormat string
	configPath   string
	global       *internal.GlobalCommandOptions
}

func (r *rulesFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	addOutputFlag(local, &r.outputFormat, rulesFormats, output.TableFormat)
	local.StringVar(&r.configPath, "config", "", "A configuration file whose technologies are added to the rules.")
	r.global = global
}

func rulesCmd(global *internal.GlobalCommandOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the languages and technologies stackscan detects.",
		Args:  cobra.NoArgs,
	}

	flags := &rulesFlags{}
	flags.Bind(cmd.Flags(), global)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := withOutput(cmd, flags.outputFormat, rulesFormats)
		if err != nil {
			return err
		}

		var options []rules.LoadOption
		if flags.configPath != "" {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			options = cfg.RuleOptions()
		}

		tables, err := rules.Load(options...)
		if err != nil {
			return err
		}

		return output.GetFormatter(ctx).Format(tables.Inventory(), output.GetWriter(ctx), nil)
	}

	return cmd
}
