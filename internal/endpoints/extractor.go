// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package endpoints extracts HTTP endpoint definitions, outbound calls and configured headers from source files.
package endpoints

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/detect"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
)

// headerPairRegex matches one name/value pair of a headers block written as a JSON-like object, a PHP array or
// a comma separated list of assignments.
var headerPairRegex = regexp.MustCompile(
	`['"]?([\w-]+)['"]?\s*(?::|=>|=)\s*(?:['"]([^'"]*)['"]|([^,}\]\s'"]+))`)

// Extractor runs the endpoint and header passes for a set of active languages.
type Extractor struct {
	tables *rules.Tables
	routes map[string]*detect.ExtractorRule
	active map[string]bool
}

// NewExtractor creates an extractor for languages. When no language is given every language with route or header
// patterns is active.
func NewExtractor(tables *rules.Tables, languages ...string) *Extractor {
	if len(languages) == 0 {
		languages = tables.ExtractionLanguages()
	}

	e := &Extractor{
		tables: tables,
		routes: map[string]*detect.ExtractorRule{},
		active: map[string]bool{},
	}

	for _, lang := range languages {
		e.active[lang] = true
		if patterns, has := tables.Routes[lang]; has {
			e.routes[lang] = detect.NewExtractorRule(lang, tables.LanguageExtensions(lang), patterns)
		}
	}

	return e
}

// Active reports whether files of language are scanned.
func (e *Extractor) Active(language string) bool {
	return e.active[language]
}

// Languages returns the active languages, sorted.
func (e *Extractor) Languages() []string {
	var langs []string
	for lang := range e.active {
		langs = append(langs, lang)
	}

	slices.Sort(langs)
	return langs
}

// Coverage returns, for each active language with route patterns, the share of the language's files in tree that
// define at least one route.
func (e *Extractor) Coverage(ctx context.Context, tree *source.Tree) map[string]float64 {
	coverage := map[string]float64{}
	for _, lang := range e.Languages() {
		rule, has := e.routes[lang]
		if !has {
			continue
		}

		detect.Evaluate(ctx, rule, tree)
		coverage[lang] = rule.Confidence()
	}

	return coverage
}

// Extract returns the records found in f, a file of language. Inactive languages give no records.
func (e *Extractor) Extract(f source.File, language string) Findings {
	if !e.Active(language) || f.Content == "" {
		return Findings{}
	}

	lines := detect.NewLineIndex(f.Content)
	return Findings{
		Endpoints: e.endpoints(f, language),
		Ajax:      e.ajax(f, language, lines),
		Headers:   e.headers(f, language, lines),
	}
}

func (e *Extractor) endpoints(f source.File, language string) []Endpoint {
	rule, has := e.routes[language]
	if !has {
		return nil
	}

	var records []Endpoint
	for _, route := range rule.Extract(f) {
		records = append(records, Endpoint{
			File:      route.Path,
			Line:      route.Line,
			Framework: route.Framework,
			Method:    route.Method,
			Endpoint:  route.Endpoint,
		})
	}

	return records
}

func (e *Extractor) ajax(f source.File, language string, lines *detect.LineIndex) []Ajax {
	var records []Ajax

	if e.tables.Ajax != nil {
		for _, m := range e.tables.Ajax.FindAllStringSubmatchIndex(f.Content, -1) {
			call := firstGroup(f.Content, m)
			if call == "" {
				continue
			}

			records = append(records, Ajax{File: f.Path, Line: lines.Line(m[0]), Call: call})
		}
	}

	for _, re := range e.tables.Outbound[language] {
		urlIdx := re.SubexpIndex("url")
		for _, m := range re.FindAllStringSubmatchIndex(f.Content, -1) {
			call := group(f.Content, m, urlIdx)
			if call == "" {
				continue
			}

			records = append(records, Ajax{File: f.Path, Line: lines.Line(m[0]), Call: call})
		}
	}

	return records
}

func (e *Extractor) headers(f source.File, language string, lines *detect.LineIndex) []Header {
	var records []Header

	for _, p := range e.tables.Headers[language] {
		re := p.Regex
		for _, m := range re.FindAllStringSubmatchIndex(f.Content, -1) {
			record := Header{
				File:      f.Path,
				Line:      lines.Line(m[0]),
				Framework: p.Framework,
				Headers:   map[string]*string{},
			}

			if method, ok := namedGroup(re, f.Content, m, "method"); ok {
				method = strings.ToUpper(method)
				record.Method = &method
			}

			if url, ok := namedGroup(re, f.Content, m, "url"); ok {
				url = strings.Trim(url, `'"`)
				record.Endpoint = &url
			}

			if block, ok := namedGroup(re, f.Content, m, "headers"); ok {
				record.Headers = ParseHeaderBlock(block)
			}

			if name, ok := namedGroup(re, f.Content, m, "headerName"); ok {
				var value *string
				if v, ok := namedGroup(re, f.Content, m, "headerValue"); ok {
					value = &v
				}
				record.Headers[strings.ToLower(name)] = value
			}

			records = append(records, record)
		}
	}

	return records
}

// ParseHeaderBlock parses the name/value pairs of a headers block into a map keyed by lower-cased name.
func ParseHeaderBlock(block string) map[string]*string {
	headers := map[string]*string{}
	for _, m := range headerPairRegex.FindAllStringSubmatch(block, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		headers[strings.ToLower(m[1])] = &value
	}

	return headers
}

// firstGroup returns the first non-empty capture group of a match.
func firstGroup(content string, m []int) string {
	for i := 1; 2*i+1 < len(m); i++ {
		if v := group(content, m, i); v != "" {
			return v
		}
	}

	return ""
}

func group(content string, m []int, i int) string {
	if i <= 0 || 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}

	return content[m[2*i]:m[2*i+1]]
}

// namedGroup returns the named group of a match and whether it participated with a non-empty value.
func namedGroup(re *regexp.Regexp, content string, m []int, name string) (string, bool) {
	v := group(content, m, re.SubexpIndex(name))
	return v, v != ""
}
