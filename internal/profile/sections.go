// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/azure/stackscan/internal/endpoints"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/secrets"
	"github.com/azure/stackscan/pkg/output"
)

// Sections renders the report for the table and markdown formats: a summary of the run followed by the profile.
func (r *Report) Sections() []output.Section {
	dominant := r.Dominant
	if dominant == "" {
		dominant = "-"
	}

	summary := output.Section{
		Title:   "Summary",
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Files", strconv.Itoa(r.Files)},
			{"SLOC", strconv.Itoa(r.Profile.SLOC.Total)},
			{"Dominant language", dominant},
			{"Truncated", strconv.FormatBool(r.Truncated)},
		},
	}

	return append([]output.Section{summary}, r.Profile.Sections()...)
}

// Sections renders the profile for the table and markdown formats.
func (p *Profile) Sections() []output.Section {
	return []output.Section{
		p.languageSection(),
		categorySection("Stack", p.Stack),
		categorySection("Dependencies", p.Dependencies),
		configSection(p.Configs),
		endpointSection(p.Endpoints),
		ajaxSection(p.Ajax),
		headerSection(p.Headers),
		secretSection("Secrets", p.Secrets),
		secretSection("Config secrets", p.ConfigSecrets),
	}
}

// languageSection lists languages by descending share, then by name.
func (p *Profile) languageSection() output.Section {
	names := slices.SortedFunc(maps.Keys(p.Languages), func(a, b string) int {
		if c := cmp.Compare(p.Languages[b], p.Languages[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.2f%%", p.Languages[name]),
			strconv.Itoa(p.SLOC.ByLang[name]),
		})
	}

	return output.Section{Title: "Languages", Headers: []string{"Language", "Files", "SLOC"}, Rows: rows}
}

func categorySection(title string, stack map[rules.Category][]string) output.Section {
	var rows [][]string
	for _, category := range rules.Categories {
		if technologies := stack[category]; len(technologies) > 0 {
			rows = append(rows, []string{category.Display(), strings.Join(technologies, ", ")})
		}
	}

	return output.Section{Title: title, Headers: []string{"Category", "Technologies"}, Rows: rows}
}

func configSection(configs map[string][]string) output.Section {
	var rows [][]string
	for _, file := range slices.Sorted(maps.Keys(configs)) {
		rows = append(rows, []string{file, strings.Join(configs[file], ", ")})
	}

	return output.Section{Title: "Configuration", Headers: []string{"File", "Technologies"}, Rows: rows}
}

func endpointSection(records []endpoints.Endpoint) output.Section {
	rows := make([][]string, 0, len(records))
	for _, e := range records {
		rows = append(rows, []string{e.Method, e.Endpoint, e.Framework, location(e.File, e.Line)})
	}

	return output.Section{
		Title:   "Endpoints",
		Headers: []string{"Method", "Endpoint", "Framework", "Location"},
		Rows:    rows,
	}
}

func ajaxSection(records []endpoints.Ajax) output.Section {
	rows := make([][]string, 0, len(records))
	for _, a := range records {
		rows = append(rows, []string{a.Call, location(a.File, a.Line)})
	}

	return output.Section{Title: "Outbound calls", Headers: []string{"Call", "Location"}, Rows: rows}
}

func headerSection(records []endpoints.Header) output.Section {
	rows := make([][]string, 0, len(records))
	for _, h := range records {
		names := slices.Sorted(maps.Keys(h.Headers))
		rows = append(rows, []string{
			deref(h.Method),
			deref(h.Endpoint),
			strings.Join(names, ", "),
			h.Framework,
			location(h.File, h.Line),
		})
	}

	return output.Section{
		Title:   "Headers",
		Headers: []string{"Method", "Endpoint", "Headers", "Framework", "Location"},
		Rows:    rows,
	}
}

// secretSection lists the files holding credentials. Values are counted, never printed.
func secretSection(title string, findings []secrets.Finding) output.Section {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{f.File, strconv.Itoa(len(f.Values))})
	}

	return output.Section{Title: title, Headers: []string{"File", "Values"}, Rows: rows}
}

func location(file string, line int) string {
	return fmt.Sprintf("%s:%d", file, line)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

var _ output.Sectioner = (*Report)(nil)
