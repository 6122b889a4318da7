// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"path"
	"regexp"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/stretchr/testify/require"
)

// newTree builds a tree from path to content pairs. Parent directories are recorded, plus any extra dirs.
func newTree(files map[string]string, extraDirs ...string) *source.Tree {
	var list []source.File
	dirs := append([]string{}, extraDirs...)
	for p, content := range files {
		list = append(list, source.File{Path: p, Content: content})
		for dir := path.Dir(p); dir != "."; dir = path.Dir(dir) {
			dirs = append(dirs, dir)
		}
	}

	return source.NewTree("repo", list, dirs)
}

func loadTables(t *testing.T) *rules.Tables {
	tables, err := rules.Load()
	require.NoError(t, err)
	return tables
}

func TestPresenceRule(t *testing.T) {
	tree := newTree(map[string]string{
		"pom.xml":          "<artifactId>spring-boot-starter-web</artifactId>",
		"web/package.json": `{"dependencies": {"react": "18.0.0"}}`,
		"src/App.tsx":      "export default function App() {}",
	}, "vendor")

	tests := []struct {
		name       string
		configs    []rules.DetectorConfig
		found      bool
		confidence float64
	}{
		{
			name:       "FileGlob",
			configs:    []rules.DetectorConfig{{Kind: rules.KindFile, Path: "**/package.json"}},
			found:      true,
			confidence: 1,
		},
		{
			name: "FileContent",
			configs: []rules.DetectorConfig{
				{Kind: rules.KindFile, Path: "pom.xml", Content: "spring-boot-starter"},
				{Kind: rules.KindFile, Path: "pom.xml", Content: "quarkus"},
			},
			found:      true,
			confidence: 0.5,
		},
		{
			name:       "FileName",
			configs:    []rules.DetectorConfig{{Kind: rules.KindFile, Name: regexp.MustCompile(`(?i)\.(j|t)sx$`)}},
			found:      true,
			confidence: 1,
		},
		{
			name:       "IgnoredDir",
			configs:    []rules.DetectorConfig{{Kind: rules.KindDir, Path: "vendor"}},
			found:      true,
			confidence: 1,
		},
		{
			name: "Missing",
			configs: []rules.DetectorConfig{
				{Kind: rules.KindFile, Path: "composer.json"},
				{Kind: rules.KindDir, Path: "app/Http/Controllers"},
			},
			found:      false,
			confidence: 0,
		},
		{
			name:       "Empty",
			configs:    nil,
			found:      false,
			confidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewPresenceRule(tt.configs...)
			res, err := r.Detect(context.Background(), tree)
			require.NoError(t, err)
			require.Equal(t, tt.found, res.Found)
			require.InDelta(t, tt.confidence, r.Confidence(), 0.001)
		})
	}
}

func TestPresenceRuleLiteralPaths(t *testing.T) {
	tree := newTree(map[string]string{
		"web/package.json":              `{"name": "web"}`,
		"app/Http/Controllers/Home.php": "<?php",
	})

	tests := []struct {
		name     string
		config   rules.DetectorConfig
		evidence []Evidence
	}{
		{
			name:     "NestedFile",
			config:   rules.DetectorConfig{Kind: rules.KindFile, Path: "web/package.json", Content: "web"},
			evidence: []Evidence{{Path: "web/package.json", Match: "web"}},
		},
		{
			name:   "RootOnly",
			config: rules.DetectorConfig{Kind: rules.KindFile, Path: "package.json"},
		},
		{
			name:   "ContentMissing",
			config: rules.DetectorConfig{Kind: rules.KindFile, Path: "web/package.json", Content: "angular"},
		},
		{
			name:     "NestedDir",
			config:   rules.DetectorConfig{Kind: rules.KindDir, Path: "app/Http/Controllers"},
			evidence: []Evidence{{Path: "app/Http/Controllers"}},
		},
		{
			name:   "FileIsNotDir",
			config: rules.DetectorConfig{Kind: rules.KindDir, Path: "web/package.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewPresenceRule(tt.config).Detect(context.Background(), tree)
			require.NoError(t, err)
			require.Equal(t, len(tt.evidence) > 0, res.Found)
			require.Equal(t, tt.evidence, res.Evidence)
		})
	}
}

func TestPresenceRuleBadGlob(t *testing.T) {
	tree := newTree(map[string]string{"a.go": ""})
	r := NewPresenceRule(rules.DetectorConfig{Kind: rules.KindFile, Path: "[a-"})

	_, err := r.Detect(context.Background(), tree)
	require.Error(t, err)

	// The pattern is rejected even when there is nothing to match.
	r = NewPresenceRule(rules.DetectorConfig{Kind: rules.KindDir, Path: "[a-"})
	_, err = r.Detect(context.Background(), newTree(nil))
	require.Error(t, err)

	res := Evaluate(context.Background(), r, tree)
	require.False(t, res.Found)
}

func TestPatternRule(t *testing.T) {
	tree := newTree(map[string]string{
		"src/Application.java": heredoc.Doc(`
			package demo;

			@SpringBootApplication
			public class Application {}
		`),
		"src/Other.java": "class Other {}",
		"README.md":      "@SpringBootApplication in docs",
	})

	r := NewPatternRule(regexp.MustCompile(`(?i)@SpringBootApplication`), []string{".java"})
	res, err := r.Detect(context.Background(), tree)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []Evidence{{Path: "src/Application.java", Line: 3, Match: "@SpringBootApplication"}}, res.Evidence)
	require.InDelta(t, 0.5, r.Confidence(), 0.001)

	all := NewPatternRule(regexp.MustCompile(`(?i)@springbootapplication`), nil)
	res, err = all.Detect(context.Background(), tree)
	require.NoError(t, err)
	require.Len(t, res.Evidence, 2)
	require.InDelta(t, 2.0/3.0, all.Confidence(), 0.001)

	none := NewPatternRule(regexp.MustCompile(`x`), []string{".rs"})
	res, err = none.Detect(context.Background(), tree)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Zero(t, none.Confidence())
}

func TestExtractorRule(t *testing.T) {
	tables := loadTables(t)
	api := heredoc.Doc(`
		@RestController
		public class Api {
		    @GetMapping("/users")
		    public List<User> users() {}
		}
	`)

	tests := []struct {
		name       string
		files      map[string]string
		evidence   []Evidence
		confidence float64
	}{
		{
			name: "Routes",
			files: map[string]string{
				"src/Api.java":  api,
				"src/Util.java": "class Util {}",
				"web/app.js":    "app.get('/js', handler);",
			},
			evidence:   []Evidence{{Path: "src/Api.java", Line: 3, Match: "GET /users"}},
			confidence: 0.5,
		},
		{
			name:       "NoRoutes",
			files:      map[string]string{"src/Util.java": "class Util {}"},
			confidence: 0,
		},
		{
			name:       "NoFilesOfLanguage",
			files:      map[string]string{"main.go": "package main", "web/app.js": "app.get('/js', handler);"},
			confidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewExtractorRule("Java", tables.LanguageExtensions("Java"), tables.Routes["Java"])
			res, err := r.Detect(context.Background(), newTree(tt.files))
			require.NoError(t, err)
			require.Equal(t, len(tt.evidence) > 0, res.Found)
			require.Equal(t, tt.evidence, res.Evidence)
			require.InDelta(t, tt.confidence, r.Confidence(), 0.001)
			require.GreaterOrEqual(t, r.Confidence(), 0.0)
			require.LessOrEqual(t, r.Confidence(), 1.0)
		})
	}
}

func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		indicator  string
		annotation bool
		want       string
	}{
		{"GetMapping", true, "GET"},
		{"PostMapping", true, "POST"},
		{"RequestMapping", true, MethodAll},
		{" delete ", false, "DELETE"},
		{"any", false, MethodAll},
		{"ajax", false, MethodAll},
		{"", false, MethodAll},
		{"GetMapping", false, MethodAll},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizeMethod(tt.indicator, tt.annotation), tt.indicator)
	}
}

func TestManifestRule(t *testing.T) {
	tree := newTree(map[string]string{
		"package.json": `{"dependencies": {"Express": "^4"}, "devDependencies": {"jest": "29"}}`,
		"composer.json": heredoc.Doc(`
			{
				"require": {"laravel/framework": "^10.0"},
				"require-dev": {"phpunit/phpunit": "^10"}
			}
		`),
		"Cargo.toml": heredoc.Doc(`
			[package]
			name = "demo"

			[dependencies]
			actix-web = "4"
			serde = { version = "1", features = ["derive"] }

			[dev-dependencies]
			mockall = "0.11"
		`),
		"pyproject.toml": heredoc.Doc(`
			[project]
			name = "demo"
			dependencies = ["FastAPI[all]>=0.100", "sqlalchemy"]
		`),
		"broken/composer.json": "{not json",
	})

	tests := []struct {
		name       string
		rule       *ManifestRule
		matched    []string
		confidence float64
	}{
		{
			name:       "JSONDefaultBlocks",
			rule:       NewManifestRule("package.json", rules.FormatJSON, nil, "express", "jest", "react"),
			matched:    []string{"express", "jest"},
			confidence: 2.0 / 3.0,
		},
		{
			name:       "JSONBlocks",
			rule:       NewManifestRule("package.json", rules.FormatJSON, []string{"dependencies"}, "express", "jest"),
			matched:    []string{"express"},
			confidence: 0.5,
		},
		{
			name:       "Composer",
			rule:       NewManifestRule("composer.json", rules.FormatJSON, []string{"require", "require-dev"}, "phpunit/phpunit"),
			matched:    []string{"phpunit/phpunit"},
			confidence: 1,
		},
		{
			name:       "CargoTables",
			rule:       NewManifestRule("Cargo.toml", rules.FormatTOML, []string{"dependencies"}, "actix-web", "mockall"),
			matched:    []string{"actix-web"},
			confidence: 0.5,
		},
		{
			name:       "PyprojectArray",
			rule:       NewManifestRule("pyproject.toml", rules.FormatTOML, []string{"project.dependencies"}, "fastapi", "django"),
			matched:    []string{"fastapi"},
			confidence: 0.5,
		},
		{
			name:       "MissingFile",
			rule:       NewManifestRule("go.mod", rules.FormatTOML, nil, "gin"),
			confidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.rule.Detect(context.Background(), tree)
			require.NoError(t, err)
			require.Equal(t, len(tt.matched) > 0, res.Found)
			require.Equal(t, tt.matched, tt.rule.Matched())
			require.InDelta(t, tt.confidence, tt.rule.Confidence(), 0.001)
		})
	}
}

func TestManifestRuleMalformed(t *testing.T) {
	tree := newTree(map[string]string{"package.json": "{\"dependencies\": "})

	r := NewManifestRule("package.json", rules.FormatJSON, nil, "express")
	res, err := r.Detect(context.Background(), tree)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Zero(t, r.Confidence())
}

func TestLineIndex(t *testing.T) {
	content := "a\nbb\n\nccc"
	idx := NewLineIndex(content)

	require.Equal(t, 1, idx.Line(0))
	require.Equal(t, 1, idx.Line(1))
	require.Equal(t, 2, idx.Line(2))
	require.Equal(t, 3, idx.Line(5))
	require.Equal(t, 4, idx.Line(6))
	require.Equal(t, 1, NewLineIndex("").Line(0))
}
