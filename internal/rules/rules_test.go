// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, tables.Languages)
	require.NotEmpty(t, tables.Ignore)
	require.NotNil(t, tables.Ajax)
	require.NotNil(t, tables.Credentials)

	require.True(t, tables.HasTechnologies("Java"))
	require.True(t, tables.HasTechnologies("Scala"))
	require.False(t, tables.HasTechnologies("Markdown"))

	langs := tables.ExtractionLanguages()
	require.True(t, slices.IsSorted(langs))
	for _, lang := range []string{"C#", "Go", "Java", "JavaScript", "Kotlin", "PHP", "Python", "Ruby", "Rust", "TypeScript"} {
		require.Contains(t, langs, lang)
	}

	category, ok := tables.PackageCategory("Express")
	require.True(t, ok)
	require.Equal(t, Backend, category)

	_, ok = tables.PackageCategory("Spring Boot")
	require.False(t, ok)
}

func TestLoadReturnsFreshTables(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)

	first.Technologies["Java"][0].Detectors = nil

	second, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, second.Technologies["Java"][0].Detectors)
}

func TestTechnologyCategories(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	categoryOf := func(lang, name string) Category {
		for _, tech := range tables.Technologies[lang] {
			if tech.Name == name {
				return tech.Category
			}
		}
		return ""
	}

	require.Equal(t, Backend, categoryOf("Java", "Spring Boot"))
	require.Equal(t, Database, categoryOf("Java", "Hibernate"))
	require.Equal(t, BuildTools, categoryOf("Java", "Maven"))
	require.Equal(t, Testing, categoryOf("Java", "JUnit"))
	require.Equal(t, DevOps, categoryOf("Java", "Docker"))
	require.Equal(t, Frontend, categoryOf("JavaScript", "React"))
}

func TestWithTechnologies(t *testing.T) {
	tables, err := Load(WithTechnologies(
		TechnologySpec{
			Name:     "Hono",
			Language: "TypeScript",
			Category: "backend",
			Detectors: []DetectorSpec{
				{Type: "code", Pattern: `from ['"]hono['"]`},
			},
		},
		TechnologySpec{
			Name:     "Maven",
			Language: "Java",
			Category: "build_tools",
			Detectors: []DetectorSpec{
				{Type: "file", Path: "maven.config"},
			},
		},
	))
	require.NoError(t, err)

	ts := tables.Technologies["TypeScript"]
	added := ts[len(ts)-1]
	require.Equal(t, "Hono", added.Name)
	require.Equal(t, Backend, added.Category)
	require.Len(t, added.Detectors, 1)
	require.True(t, added.Detectors[0].Pattern.MatchString(`import { Hono } from "HONO"`))

	for _, tech := range tables.Technologies["Java"] {
		if tech.Name == "Maven" {
			last := tech.Detectors[len(tech.Detectors)-1]
			require.Equal(t, "maven.config", last.Path)
		}
	}
}

func TestWithTechnologiesErrors(t *testing.T) {
	tests := []struct {
		name string
		spec TechnologySpec
	}{
		{
			name: "MissingLanguage",
			spec: TechnologySpec{Name: "X", Category: "backend"},
		},
		{
			name: "UnknownCategory",
			spec: TechnologySpec{Name: "X", Language: "Go", Category: "middleware"},
		},
		{
			name: "UnknownType",
			spec: TechnologySpec{
				Name: "X", Language: "Go", Category: "backend",
				Detectors: []DetectorSpec{{Type: "symbol", Pattern: "x"}},
			},
		},
		{
			name: "PathAndName",
			spec: TechnologySpec{
				Name: "X", Language: "Go", Category: "backend",
				Detectors: []DetectorSpec{{Type: "file", Path: "a", Name: "b"}},
			},
		},
		{
			name: "BadPattern",
			spec: TechnologySpec{
				Name: "X", Language: "Go", Category: "backend",
				Detectors: []DetectorSpec{{Type: "code", Pattern: "("}},
			},
		},
		{
			name: "BadGlob",
			spec: TechnologySpec{
				Name: "X", Language: "Go", Category: "backend",
				Detectors: []DetectorSpec{{Type: "dir", Path: "src/[a-"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(WithTechnologies(tt.spec))
			require.Error(t, err)
		})
	}

	_, err := Load(WithTechnologies(TechnologySpec{
		Name: "X", Language: "Go", Category: "backend",
		Detectors: []DetectorSpec{{Type: "file", Path: "src/[a-"}},
	}))
	require.ErrorContains(t, err, `invalid glob "src/[a-"`)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Build_Tools ")
	require.NoError(t, err)
	require.Equal(t, BuildTools, c)
	require.Equal(t, "Build tools", c.Display())

	_, err = ParseCategory("frameworks")
	require.Error(t, err)
}

func TestIgnorePatterns(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	ignored := func(rel string) bool {
		for _, re := range tables.Ignore {
			if re.MatchString(rel) {
				return true
			}
		}
		return false
	}

	tests := []struct {
		path    string
		ignored bool
	}{
		{"node_modules/", true},
		{"web/node_modules/", true},
		{"build/", true},
		{"build.gradle", false},
		{"src/tests/", true},
		{"src/test/", true},
		{"src/testdata.go", false},
		{"app.test.js", true},
		{"components/Button.spec.tsx", true},
		{"server_test.go", true},
		{"test_views.py", true},
		{"views.py", false},
		{"UserServiceTest.java", true},
		{"UserService.java", false},
		{".git/", true},
		{".github/", false},
		{"static/jquery.min.js", true},
		{"vendor/", true},
		{"src/vendors.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.ignored, ignored(tt.path))
		})
	}
}

func TestCredentialPattern(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	m := tables.Credentials.FindStringSubmatch(`password: 'abc123'`)
	require.Len(t, m, 3)
	require.Equal(t, "abc123", m[2])

	m = tables.Credentials.FindStringSubmatch(`DB_PASSWORD=s3cr3t!`)
	require.Len(t, m, 3)
	require.Equal(t, "s3cr3t!", m[2])
}

func TestInventory(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	inv := tables.Inventory()
	require.Len(t, inv.Languages, len(tables.Languages))
	require.Equal(t, "Java", inv.Languages[0].Name)
	require.True(t, inv.Languages[0].Extraction)

	yaml := slices.IndexFunc(inv.Languages, func(l LanguageInventory) bool { return l.Name == "YAML" })
	require.GreaterOrEqual(t, yaml, 0)
	require.False(t, inv.Languages[yaml].Extraction)

	require.True(t, slices.IsSortedFunc(inv.Technologies, func(a, b TechnologyInventory) int {
		if a.Language != b.Language {
			return strings.Compare(a.Language, b.Language)
		}
		return strings.Compare(a.Name, b.Name)
	}))
	require.NotEmpty(t, inv.Technologies)

	sections := inv.Sections()
	require.Len(t, sections, 2)
	require.Len(t, sections[0].Rows, len(inv.Languages))
	require.Len(t, sections[1].Rows, len(inv.Technologies))
}
