// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package langstats

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/stackscan/internal/rules"
	"github.com/stretchr/testify/require"
)

func loadTables(t *testing.T) *rules.Tables {
	tables, err := rules.Load()
	require.NoError(t, err)
	return tables
}

func TestClassify(t *testing.T) {
	c := NewClassifier(loadTables(t))

	tests := []struct {
		path string
		want string
	}{
		{"src/App.JSX", "JavaScript"},
		{"main.go", "Go"},
		{"lib/core.rs", "Rust"},
		{"Dockerfile", "Docker"},
		{"deploy/dockerfile", "Docker"},
		{".dockerignore", "Docker"},
		{"conf/nginx.conf", "Config"},
		{"LICENSE", rules.Other},
		{"image.png", rules.Other},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.path))
		})
	}
}

func TestCountSLOC(t *testing.T) {
	require.Equal(t, 0, CountSLOC(""))
	require.Equal(t, 0, CountSLOC("\n  \n\t\n"))
	require.Equal(t, 3, CountSLOC(heredoc.Doc(`
		package main

		func main() {
		}
	`)))
	require.Equal(t, 2, CountSLOC("a\r\n\r\nb"))
}

func TestStats(t *testing.T) {
	tables := loadTables(t)

	s := NewStats()
	s.Add("Go", 10)
	s.Add("Go", 5)
	s.Add("Markdown", 3)
	s.Add(rules.Other, 1)

	require.Equal(t, 4, s.Total)
	require.Equal(t, 19, s.SLOCTotal())
	require.Equal(t, map[string]float64{"Go": 50, "Markdown": 25, rules.Other: 25}, s.Distribution())

	dominant, ok := s.Dominant(tables)
	require.True(t, ok)
	require.Equal(t, "Go", dominant)
}

func TestDominantTies(t *testing.T) {
	tables := loadTables(t)

	tests := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{"PrefersRules", map[string]int{"CSS": 2, "Ruby": 2}, "Ruby"},
		{"Lexicographic", map[string]int{"Ruby": 2, "Go": 2}, "Go"},
		{"LexicographicNoRules", map[string]int{"YAML": 1, "JSON": 1}, "JSON"},
		{"OtherIgnored", map[string]int{rules.Other: 10, "Shell": 1}, "Shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for lang, n := range tt.counts {
				for range n {
					s.Add(lang, 0)
				}
			}

			dominant, ok := s.Dominant(tables)
			require.True(t, ok)
			require.Equal(t, tt.want, dominant)
		})
	}
}

func TestEmpty(t *testing.T) {
	s := NewStats()
	require.Empty(t, s.Distribution())
	require.Zero(t, s.SLOCTotal())

	_, ok := s.Dominant(loadTables(t))
	require.False(t, ok)

	s.Add(rules.Other, 4)
	_, ok = s.Dominant(loadTables(t))
	require.False(t, ok)
}
