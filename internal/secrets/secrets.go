// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package secrets finds probable hard-coded credentials in configuration-like files.
package secrets

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
)

// Finding lists the credential values assigned in a file, in match order.
type Finding struct {
	File   string   `json:"file"`
	Values []string `json:"values"`
}

type Scanner struct {
	pattern    *regexp.Regexp
	names      []string
	extensions []string
}

func NewScanner(tables *rules.Tables) *Scanner {
	return &Scanner{
		pattern:    tables.Credentials,
		names:      tables.ConfigFiles,
		extensions: rules.CredentialExtensions,
	}
}

// Candidate reports whether the file at the slash-separated path p is scanned: known configuration file names,
// .env files and configuration extensions.
func (s *Scanner) Candidate(p string) bool {
	base := path.Base(p)
	if slices.Contains(s.names, base) || strings.HasPrefix(base, ".env") {
		return true
	}

	return slices.Contains(s.extensions, strings.ToLower(path.Ext(base)))
}

// Scan returns the credential values of f, regardless of its name.
func (s *Scanner) Scan(f source.File) (Finding, bool) {
	var values []string
	for _, m := range s.pattern.FindAllStringSubmatch(f.Content, -1) {
		if len(m) > 2 && m[2] != "" {
			values = append(values, m[2])
		}
	}

	if len(values) == 0 {
		return Finding{}, false
	}

	return Finding{File: f.Path, Values: values}, true
}

// Sort orders findings by file.
func Sort(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		return strings.Compare(a.File, b.File)
	})
}
