// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fatih/color"
	"github.com/nathan-fiscaletti/consolesize-go"
)

const defaultMarkdownWidth = 100

// MarkdownFormatterOptions are the options accepted by MarkdownFormatter.
type MarkdownFormatterOptions struct {
	// Raw writes the markdown source instead of the rendered document.
	Raw bool
	// Width is the word wrap column. Zero uses the console width.
	Width int
}

type MarkdownFormatter struct {
}

func (f *MarkdownFormatter) Kind() Format {
	return MarkdownFormat
}

func (f *MarkdownFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	sections, err := sectionsOf(obj, MarkdownFormat)
	if err != nil {
		return err
	}

	options, _ := opts.(MarkdownFormatterOptions)
	document := Markdown(sections)
	if !options.Raw {
		document, err = render(document, options.Width)
		if err != nil {
			return err
		}
	}

	if _, err := io.WriteString(writer, document); err != nil {
		return fmt.Errorf("could not write content: %w", err)
	}

	return nil
}

// Markdown returns the markdown source of sections: a heading and a pipe table per section.
func Markdown(sections []Section) string {
	var sb strings.Builder

	for _, section := range sections {
		sb.WriteString("## " + section.Title + "\n\n")

		if len(section.Rows) == 0 {
			sb.WriteString("_None_\n\n")
			continue
		}

		sb.WriteString(markdownRow(section.Headers))

		separators := make([]string, len(section.Headers))
		for i := range separators {
			separators[i] = "---"
		}
		sb.WriteString(markdownRow(separators))

		for _, row := range section.Rows {
			sb.WriteString(markdownRow(row))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func markdownRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", `\|`)
	}

	return "| " + strings.Join(escaped, " | ") + " |\n"
}

func render(document string, width int) (string, error) {
	if width <= 0 {
		width, _ = consolesize.GetConsoleSize()
		if width <= 0 {
			width = defaultMarkdownWidth
		}
	}

	style := glamour.WithAutoStyle()
	if color.NoColor {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(document)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return rendered, nil
}

var _ Formatter = (*MarkdownFormatter)(nil)
