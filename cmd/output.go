// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/azure/stackscan/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addOutputFlag registers --output with the formats a command supports.
func addOutputFlag(f *pflag.FlagSet, s *string, supported []output.Format, defaultFormat output.Format) {
	names := make([]string, 0, len(supported))
	for _, format := range supported {
		names = append(names, string(format))
	}

	description := fmt.Sprintf("The output format (the supported formats are %s).", strings.Join(names, ", "))
	f.StringVarP(s, "output", "o", string(defaultFormat), description)
}

// newFormatter returns the formatter for format when the command supports it.
func newFormatter(format string, supported []output.Format) (output.Formatter, error) {
	if !slices.Contains(supported, output.Format(format)) {
		names := make([]string, 0, len(supported))
		for _, f := range supported {
			names = append(names, string(f))
		}
		return nil, fmt.Errorf("unsupported format %v, expected one of: %s", format, strings.Join(names, ", "))
	}

	return output.NewFormatter(format)
}

// withOutput stores the formatter selected by --output and the command's stdout on the command context. Actions
// read them back with output.GetFormatter and output.GetWriter.
func withOutput(cmd *cobra.Command, format string, supported []output.Format) (context.Context, error) {
	formatter, err := newFormatter(format, supported)
	if err != nil {
		return nil, err
	}

	ctx := output.WithFormatter(cmd.Context(), formatter)
	return output.WithWriter(ctx, cmd.OutOrStdout()), nil
}
