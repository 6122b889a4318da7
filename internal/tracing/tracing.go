// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package tracing provides the application tracer and the optional file exporter behind --trace-log-file.
package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/pkg/osutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

// ServiceName identifies spans emitted by stackscan.
const ServiceName = "stackscan"

// Span attribute keys.
const (
	RootKey      = attribute.Key("scan.root")
	FilesKey     = attribute.Key("scan.files")
	TruncatedKey = attribute.Key("scan.truncated")
	LanguageKey  = attribute.Key("scan.language.dominant")
	FoundKey     = attribute.Key("scan.found")
)

// Start creates a span using the application tracer.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(ServiceName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndWithStatus ends span, marking it failed when err is set.
func EndWithStatus(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}

// Init installs a tracer provider writing every span as JSON to the file at path. The returned function flushes
// pending spans and closes the file.
func Init(path string) (func(context.Context) error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, osutil.PermissionFile)
	if err != nil {
		return nil, fmt.Errorf("opening trace log file: %w", err)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(f), stdouttrace.WithPrettyPrint())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource()),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		return multierr.Append(tp.Shutdown(ctx), f.Close())
	}, nil
}

func newResource() *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", internal.GetVersionNumber()),
	)
}
