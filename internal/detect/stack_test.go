// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	found bool
	err   error
	calls int
}

func (d *fakeDetector) sealed() {}

func (d *fakeDetector) Detect(context.Context, *source.Tree) (Result, error) {
	d.calls++
	return Result{Found: d.found}, d.err
}

func (d *fakeDetector) Confidence() float64 {
	if d.found {
		return 1
	}
	return 0
}

func TestTechStack(t *testing.T) {
	s := NewTechStack()
	require.True(t, s.Add(rules.Backend, "Express"))
	require.False(t, s.Add(rules.Frontend, "Express"))
	require.True(t, s.Add(rules.Backend, "Django"))

	other := NewTechStack()
	other.Add(rules.Database, "Express")
	other.Add(rules.Database, "MySQL")
	s.Merge(other)

	category, has := s.Category("Express")
	require.True(t, has)
	require.Equal(t, rules.Backend, category)
	require.Equal(t, 3, s.Len())

	sorted := s.Sorted()
	require.Len(t, sorted, len(rules.Categories))
	require.Equal(t, []string{"Django", "Express"}, sorted[rules.Backend])
	require.Equal(t, []string{"MySQL"}, sorted[rules.Database])
	require.Equal(t, []string{}, sorted[rules.Testing])
}

func TestEvaluateEntriesFirstMatch(t *testing.T) {
	failing := &fakeDetector{err: errors.New("boom")}
	positive := &fakeDetector{found: true}
	never := &fakeDetector{found: true}
	repeated := &fakeDetector{found: true}

	entries := []stackEntry{
		{category: rules.Backend, technology: "Spring Boot", detectors: []Detector{failing, positive, never}},
		{category: rules.Testing, technology: "Spring Boot", detectors: []Detector{repeated}},
		{category: rules.Database, technology: "JPA"},
	}

	stack, err := evaluateEntries(context.Background(), entries, newTree(nil))
	require.NoError(t, err)

	require.Equal(t, 1, failing.calls)
	require.Equal(t, 1, positive.calls)
	require.Zero(t, never.calls)
	require.Zero(t, repeated.calls)

	require.Equal(t, []string{"Spring Boot"}, stack.List(rules.Backend))
	require.Empty(t, stack.List(rules.Testing))
	require.False(t, stack.Has("JPA"))
}

func TestEvaluateEntriesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evaluateEntries(ctx, []stackEntry{{technology: "x"}}, newTree(nil))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAggregator(t *testing.T) {
	tables := loadTables(t)

	tree := newTree(map[string]string{
		"package.json": `{"dependencies": {"express": "^4.18.0"}, "devDependencies": {"jest": "^29"}}`,
		"server.js": heredoc.Doc(`
			const express = require('express');
			const app = express();
			app.get('/health', (req, res) => res.send('ok'));
		`),
		"routes.js":         "router.get('/users', handler);\n",
		"Dockerfile":        "FROM node:20\n",
		"package-lock.json": "{}",
	})

	stack, err := NewAggregator(tables).Detect(context.Background(), tree, "JavaScript")
	require.NoError(t, err)

	require.Equal(t, []string{"Express"}, stack.List(rules.Backend))
	require.Equal(t, []string{"Jest"}, stack.List(rules.Testing))
	require.Equal(t, []string{"npm"}, stack.List(rules.BuildTools))
	require.Equal(t, []string{"Docker"}, stack.List(rules.DevOps))
	require.Empty(t, stack.List(rules.Frontend))
}

func TestAggregatorNoDominant(t *testing.T) {
	tables := loadTables(t)
	tree := newTree(map[string]string{"notes.txt": "hello"})

	stack, err := NewAggregator(tables).Detect(context.Background(), tree, "")
	require.NoError(t, err)
	require.Zero(t, stack.Len())
}

func TestDependencyAnalyzer(t *testing.T) {
	tables := loadTables(t)

	tests := []struct {
		name     string
		files    map[string]string
		dominant string
		want     map[rules.Category][]string
	}{
		{
			name: "JavaText",
			files: map[string]string{
				"pom.xml": heredoc.Doc(`
					<dependency><artifactId>Spring-Boot-starter-web</artifactId></dependency>
					<dependency><artifactId>junit-jupiter</artifactId></dependency>
				`),
			},
			dominant: "Java",
			want: map[rules.Category][]string{
				rules.Backend: {"Spring Boot"},
				rules.Testing: {"JUnit"},
			},
		},
		{
			name: "ComposerKeys",
			files: map[string]string{
				"composer.json": `{"require": {"laravel/framework": "^10"}, "require-dev": {"phpunit/phpunit": "^10"}}`,
			},
			dominant: "PHP",
			want: map[rules.Category][]string{
				rules.Backend: {"Laravel"},
				rules.Testing: {"PHPUnit"},
			},
		},
		{
			name: "PackageJSONAlwaysRuns",
			files: map[string]string{
				"requirements.txt": "flask==3.0\n",
				"web/package.json": `{"dependencies": {"react": "18", "react-dom": "18"}}`,
			},
			dominant: "Python",
			want: map[rules.Category][]string{
				rules.Backend:  {"Flask"},
				rules.Frontend: {"React"},
			},
		},
		{
			name:     "NoDominant",
			files:    map[string]string{"README": "text"},
			dominant: "",
			want:     map[rules.Category][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := NewDependencyAnalyzer(tables).Analyze(context.Background(), newTree(tt.files), tt.dominant)
			require.NoError(t, err)

			for _, category := range rules.Categories {
				require.Equal(t, tt.want[category], deps.List(category), string(category))
			}
		})
	}
}

func TestConfigDetector(t *testing.T) {
	tables := loadTables(t)

	tree := newTree(map[string]string{
		".env": heredoc.Doc(`
			DB_CONNECTION=mysql
			CACHE_DRIVER=redis
			DB_PASSWORD=hunter2
		`),
		"src/main/resources/application.yml": heredoc.Doc(`
			spring:
			  datasource:
			    password: s3cret
		`),
		"package.json":    `{"dependencies": {"express": "4", "react": "18"}}`,
		"docs/readme.txt": "spring: not a config",
	})

	d := NewConfigDetector(tables)
	findings, err := d.Detect(context.Background(), tree)
	require.NoError(t, err)

	require.Equal(t, map[string][]string{
		"MySQL":       {".env"},
		"Redis":       {".env"},
		"Spring Boot": {"src/main/resources/application.yml"},
		"Express":     {"package.json"},
		"React":       {"package.json"},
	}, findings.Technologies)

	require.Len(t, findings.Secrets, 2)
	require.Equal(t, ".env", findings.Secrets[0].File)
	require.Equal(t, []string{"hunter2"}, findings.Secrets[0].Values)
	require.Equal(t, "src/main/resources/application.yml", findings.Secrets[1].File)
	require.Equal(t, []string{"s3cret"}, findings.Secrets[1].Values)

	require.Greater(t, d.Confidence(), 0.0)
	require.LessOrEqual(t, d.Confidence(), 1.0)

	stack := findings.Stack(tables)
	require.Equal(t, []string{"MySQL", "Redis"}, stack.List(rules.Database))
	require.Equal(t, []string{"Express", "Spring Boot"}, stack.List(rules.Backend))
	require.Equal(t, []string{"React"}, stack.List(rules.Frontend))
}

func TestConfigDetectorEmpty(t *testing.T) {
	d := NewConfigDetector(loadTables(t))
	findings, err := d.Detect(context.Background(), newTree(nil))
	require.NoError(t, err)
	require.Empty(t, findings.Technologies)
	require.Empty(t, findings.Secrets)
	require.Zero(t, d.Confidence())
}
