// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package endpoints

import (
	"cmp"
	"slices"
)

// Endpoint is an HTTP endpoint definition found in code.
type Endpoint struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Framework string `json:"framework"`
	Method    string `json:"method"`
	Endpoint  string `json:"endpoint"`
}

// Ajax is an outbound HTTP call found in code.
type Ajax struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Call string `json:"call"`
}

// Header is a set of HTTP headers configured in code. Method and Endpoint are nil when the matching pattern
// does not capture them; a header value is nil when only the name is known.
type Header struct {
	File      string             `json:"file"`
	Line      int                `json:"line"`
	Framework string             `json:"framework"`
	Method    *string            `json:"method"`
	Endpoint  *string            `json:"endpoint"`
	Headers   map[string]*string `json:"headers"`
}

// Findings are the records extracted from one or more files.
type Findings struct {
	Endpoints []Endpoint
	Ajax      []Ajax
	Headers   []Header
}

// Merge appends the records of other.
func (f *Findings) Merge(other Findings) {
	f.Endpoints = append(f.Endpoints, other.Endpoints...)
	f.Ajax = append(f.Ajax, other.Ajax...)
	f.Headers = append(f.Headers, other.Headers...)
}

// Normalize sorts every record list, removes duplicate ajax records and replaces nil lists with empty ones.
func (f *Findings) Normalize() {
	f.Endpoints = SortEndpoints(f.Endpoints)
	f.Ajax = DedupAjax(f.Ajax)
	f.Headers = SortHeaders(f.Headers)
}

// SortEndpoints orders endpoints by file and line. Records on the same line keep their relative order.
func SortEndpoints(records []Endpoint) []Endpoint {
	if records == nil {
		return []Endpoint{}
	}

	slices.SortStableFunc(records, func(a, b Endpoint) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line))
	})
	return records
}

// SortHeaders orders header records by file and line. Records on the same line keep their relative order.
func SortHeaders(records []Header) []Header {
	if records == nil {
		return []Header{}
	}

	slices.SortStableFunc(records, func(a, b Header) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line))
	})
	return records
}

// DedupAjax returns the distinct ajax records ordered by file, line and call.
func DedupAjax(records []Ajax) []Ajax {
	if records == nil {
		return []Ajax{}
	}

	slices.SortFunc(records, func(a, b Ajax) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line), cmp.Compare(a.Call, b.Call))
	})
	return slices.Compact(records)
}
