// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package profile assembles the technology profile of a source tree.
package profile

import (
	"github.com/azure/stackscan/internal/endpoints"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/secrets"
)

// Profile is the composite technology profile of a source tree. Field order is the key order of the JSON
// document, and empty collections render as {} or [].
type Profile struct {
	// Languages is the percentage of files per language.
	Languages     map[string]float64          `json:"languages"`
	SLOC          SLOC                        `json:"sloc"`
	Stack         map[rules.Category][]string `json:"stack"`
	Dependencies  map[rules.Category][]string `json:"dependencies"`
	Secrets       []secrets.Finding           `json:"secrets"`
	Endpoints     []endpoints.Endpoint        `json:"endpoints"`
	Ajax          []endpoints.Ajax            `json:"ajax"`
	Headers       []endpoints.Header          `json:"headers"`
	Configs       map[string][]string         `json:"configs"`
	ConfigSecrets []secrets.Finding           `json:"config_secrets"`
}

// SLOC counts the non-blank lines per language.
type SLOC struct {
	ByLang map[string]int `json:"by_lang"`
	Total  int            `json:"total"`
}

// Report is a profile together with facts about the run that produced it.
type Report struct {
	Profile *Profile
	// Files is the number of files profiled.
	Files int
	// Truncated is set when a budget stopped enumeration early.
	Truncated bool
	// Dominant is the language driving the stack rules, or empty when every file is Other.
	Dominant string
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
