// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package langstats classifies files into language buckets and measures their size.
package langstats

import (
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/rules"
)

// Classifier maps files to language buckets using the ordered language table.
type Classifier struct {
	byKey map[string]string
}

func NewClassifier(tables *rules.Tables) *Classifier {
	c := &Classifier{byKey: map[string]string{}}
	for _, lang := range tables.Languages {
		for _, ext := range lang.Extensions {
			key := strings.ToLower(ext)
			if _, has := c.byKey[key]; !has {
				c.byKey[key] = lang.Name
			}
		}
	}

	return c
}

// Classify returns the language of the slash-separated path p, trying the lower-cased extension first and the
// lower-cased file name second. Unclaimed files are Other.
func (c *Classifier) Classify(p string) string {
	base := path.Base(p)
	if lang, has := c.byKey[strings.ToLower(path.Ext(base))]; has {
		return lang
	}

	if lang, has := c.byKey[strings.ToLower(base)]; has {
		return lang
	}

	return rules.Other
}

// CountSLOC returns the number of lines holding a non-whitespace character.
func CountSLOC(content string) int {
	n := 0
	for line := range strings.Lines(content) {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}

	return n
}

// Stats accumulates file counts and source lines per language.
type Stats struct {
	Counts map[string]int
	SLOC   map[string]int
	Total  int
}

func NewStats() *Stats {
	return &Stats{
		Counts: map[string]int{},
		SLOC:   map[string]int{},
	}
}

// Add records one file of language with sloc source lines.
func (s *Stats) Add(language string, sloc int) {
	s.Counts[language]++
	s.SLOC[language] += sloc
	s.Total++
}

// Distribution returns the percentage of files per language.
func (s *Stats) Distribution() map[string]float64 {
	dist := make(map[string]float64, len(s.Counts))
	if s.Total == 0 {
		return dist
	}

	for lang, count := range s.Counts {
		dist[lang] = float64(count) / float64(s.Total) * 100
	}

	return dist
}

// SLOCTotal returns the source lines over every language.
func (s *Stats) SLOCTotal() int {
	total := 0
	for _, n := range s.SLOC {
		total += n
	}

	return total
}

// Dominant returns the language with the most files, ignoring Other. Ties prefer a language with stack rules
// and then the lexicographically smaller name. It returns false when every file is Other.
func (s *Stats) Dominant(tables *rules.Tables) (string, bool) {
	best := ""
	bestCount := 0
	for _, lang := range slices.Sorted(maps.Keys(s.Counts)) {
		if lang == rules.Other {
			continue
		}

		count := s.Counts[lang]
		switch {
		case count > bestCount:
		case count == bestCount && tables.HasTechnologies(lang) && !tables.HasTechnologies(best):
		default:
			continue
		}

		best = lang
		bestCount = count
	}

	return best, best != ""
}
