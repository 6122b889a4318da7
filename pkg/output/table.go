// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type TableFormatter struct {
}

func (f *TableFormatter) Kind() Format {
	return TableFormat
}

// Format writes every section as a title followed by aligned columns. Sections without rows print a
// placeholder so the reader can tell an empty result from a skipped one.
func (f *TableFormatter) Format(obj interface{}, writer io.Writer, _ interface{}) error {
	sections, err := sectionsOf(obj, TableFormat)
	if err != nil {
		return err
	}

	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(writer); err != nil {
				return fmt.Errorf("could not write content: %w", err)
			}
		}

		if err := writeTable(writer, section); err != nil {
			return fmt.Errorf("could not write content: %w", err)
		}
	}

	return nil
}

func writeTable(writer io.Writer, section Section) error {
	if _, err := fmt.Fprintln(writer, WithHighLightFormat(section.Title)); err != nil {
		return err
	}

	if len(section.Rows) == 0 {
		_, err := fmt.Fprintln(writer, "  "+WithGrayFormat("(none)"))
		return err
	}

	tabs := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	headers := make([]string, len(section.Headers))
	for i, h := range section.Headers {
		headers[i] = strings.ToUpper(h)
	}

	if _, err := fmt.Fprintln(tabs, "  "+strings.Join(headers, "\t")); err != nil {
		return err
	}

	for _, row := range section.Rows {
		if _, err := fmt.Fprintln(tabs, "  "+strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}

var _ Formatter = (*TableFormatter)(nil)
