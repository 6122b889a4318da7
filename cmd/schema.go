// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/azure/stackscan/internal/config"
	"github.com/azure/stackscan/internal/profile"
	"github.com/azure/stackscan/pkg/output"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [profile|config]",
		Short:     "Print the JSON schema of the profile document or of the configuration file.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"profile", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := profileSchema()
			if len(args) == 1 && args[0] == "config" {
				schema = config.Schema()
			}

			return (&output.JsonFormatter{}).Format(schema, cmd.OutOrStdout(), nil)
		},
	}
}

func profileSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	return r.Reflect(&profile.Profile{})
}
