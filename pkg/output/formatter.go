// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package output renders command results as JSON, aligned tables or terminal markdown.
package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-colorable"
)

type Format string

const (
	JsonFormat     Format = "json"
	TableFormat    Format = "table"
	MarkdownFormat Format = "markdown"
	NoneFormat     Format = "none"
)

// Formats lists every supported format, in the order shown in help text.
func Formats() []Format {
	return []Format{TableFormat, JsonFormat, MarkdownFormat, NoneFormat}
}

type Formatter interface {
	Kind() Format
	Format(obj interface{}, writer io.Writer, opts interface{}) error
}

func NewFormatter(format string) (Formatter, error) {
	switch format {
	case string(JsonFormat):
		return &JsonFormatter{}, nil
	case string(TableFormat):
		return &TableFormatter{}, nil
	case string(MarkdownFormat):
		return &MarkdownFormatter{}, nil
	case string(NoneFormat):
		return &NoneFormatter{}, nil
	default:
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return nil, fmt.Errorf("unsupported format %v, expected one of: %s", format, strings.Join(names, ", "))
	}
}

type contextKey string

const (
	formatterContextKey contextKey = "formatter"
	writerContextKey    contextKey = "writer"
)

func WithFormatter(ctx context.Context, formatter Formatter) context.Context {
	return context.WithValue(ctx, formatterContextKey, formatter)
}

func GetFormatter(ctx context.Context) Formatter {
	formatter, ok := ctx.Value(formatterContextKey).(Formatter)
	if !ok {
		return &NoneFormatter{}
	}

	return formatter
}

func WithWriter(ctx context.Context, writer io.Writer) context.Context {
	return context.WithValue(ctx, writerContextKey, writer)
}

// GetWriter returns the writer stored in ctx, or a color aware stdout.
func GetWriter(ctx context.Context) io.Writer {
	writer, ok := ctx.Value(writerContextKey).(io.Writer)
	if !ok {
		return colorable.NewColorableStdout()
	}

	return writer
}
