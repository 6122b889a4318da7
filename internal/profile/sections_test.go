// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"testing"

	"github.com/azure/stackscan/internal/endpoints"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/secrets"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	get := "GET"
	token := "abc"
	report := &Report{
		Profile: &Profile{
			Languages: map[string]float64{"Go": 25, "Python": 50, "JavaScript": 25},
			SLOC: SLOC{
				ByLang: map[string]int{"Go": 10, "Python": 30, "JavaScript": 5},
				Total:  45,
			},
			Stack: map[rules.Category][]string{
				rules.DevOps:  {"Docker"},
				rules.Backend: {"Flask", "Gin"},
			},
			Dependencies: map[rules.Category][]string{},
			Secrets:      []secrets.Finding{{File: ".env", Values: []string{"a", "b"}}},
			Endpoints: []endpoints.Endpoint{
				{File: "app.py", Line: 4, Framework: "Flask", Method: "GET", Endpoint: "/"},
			},
			Ajax: []endpoints.Ajax{},
			Headers: []endpoints.Header{
				{
					File:      "web/api.js",
					Line:      7,
					Framework: "Fetch API",
					Method:    &get,
					Headers:   map[string]*string{"X-Token": &token, "Accept": nil},
				},
			},
			Configs:       map[string][]string{"docker-compose.yml": {"Postgres"}},
			ConfigSecrets: []secrets.Finding{},
		},
		Files:    4,
		Dominant: "Python",
	}

	sections := report.Sections()
	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
		for _, row := range s.Rows {
			require.Len(t, row, len(s.Headers), s.Title)
		}
	}

	require.Equal(t, []string{
		"Summary", "Languages", "Stack", "Dependencies", "Configuration",
		"Endpoints", "Outbound calls", "Headers", "Secrets", "Config secrets",
	}, titles)

	require.Equal(t, [][]string{
		{"Files", "4"},
		{"SLOC", "45"},
		{"Dominant language", "Python"},
		{"Truncated", "false"},
	}, sections[0].Rows)

	require.Equal(t, [][]string{
		{"Python", "50.00%", "30"},
		{"Go", "25.00%", "10"},
		{"JavaScript", "25.00%", "5"},
	}, sections[1].Rows)

	require.Equal(t, [][]string{
		{"Backend", "Flask, Gin"},
		{"DevOps", "Docker"},
	}, sections[2].Rows)

	require.Empty(t, sections[3].Rows)
	require.Equal(t, [][]string{{"GET", "/", "Flask", "app.py:4"}}, sections[5].Rows)
	require.Equal(t, [][]string{{"GET", "-", "Accept, X-Token", "Fetch API", "web/api.js:7"}}, sections[7].Rows)
	require.Equal(t, [][]string{{".env", "2"}}, sections[8].Rows)
}
