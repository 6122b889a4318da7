// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/azure/stackscan/pkg/output"
)

// LanguageInventory describes one entry of the language table.
type LanguageInventory struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	// Extraction is set when the language has route or header patterns.
	Extraction bool `json:"extraction"`
}

// TechnologyInventory describes one stack rule.
type TechnologyInventory struct {
	Language  string   `json:"language"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Detectors int      `json:"detectors"`
}

// Inventory summarizes the loaded rule tables.
type Inventory struct {
	Languages    []LanguageInventory   `json:"languages"`
	Technologies []TechnologyInventory `json:"technologies"`
}

// Inventory lists the language table in lookup order and the stack rules by language, then by name.
func (t *Tables) Inventory() Inventory {
	extraction := t.ExtractionLanguages()

	inv := Inventory{
		Languages:    make([]LanguageInventory, 0, len(t.Languages)),
		Technologies: []TechnologyInventory{},
	}

	for _, lang := range t.Languages {
		inv.Languages = append(inv.Languages, LanguageInventory{
			Name:       lang.Name,
			Extensions: lang.Extensions,
			Extraction: slices.Contains(extraction, lang.Name),
		})
	}

	for _, language := range slices.Sorted(maps.Keys(t.Technologies)) {
		technologies := slices.SortedFunc(slices.Values(t.Technologies[language]), func(a, b Technology) int {
			return strings.Compare(a.Name, b.Name)
		})

		for _, tech := range technologies {
			inv.Technologies = append(inv.Technologies, TechnologyInventory{
				Language:  language,
				Name:      tech.Name,
				Category:  tech.Category,
				Detectors: len(tech.Detectors),
			})
		}
	}

	return inv
}

func (inv Inventory) Sections() []output.Section {
	languages := output.Section{Title: "Languages", Headers: []string{"Language", "Extensions", "Extraction"}}
	for _, lang := range inv.Languages {
		languages.Rows = append(languages.Rows, []string{
			lang.Name,
			strings.Join(lang.Extensions, " "),
			strconv.FormatBool(lang.Extraction),
		})
	}

	technologies := output.Section{
		Title:   "Technologies",
		Headers: []string{"Language", "Technology", "Category", "Detectors"},
	}
	for _, tech := range inv.Technologies {
		technologies.Rows = append(technologies.Rows, []string{
			tech.Language,
			tech.Name,
			tech.Category.Display(),
			strconv.Itoa(tech.Detectors),
		})
	}

	return []output.Section{languages, technologies}
}
