// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ignore decides which paths of a source tree are hidden from every detector.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/denormal/go-gitignore"
)

// FileName is the name of the gitignore-syntax files honored by the filter.
const FileName = ".stackscanignore"

// Filter combines the fixed ignore rules, user exclude globs and ignore files.
type Filter struct {
	rules    []*regexp.Regexp
	exclude  []string
	root     string
	matchers []gitignore.GitIgnore
}

type Option interface {
	apply(*Filter)
}

type excludeOption struct {
	patterns []string
}

func (o *excludeOption) apply(f *Filter) {
	f.exclude = append(f.exclude, o.patterns...)
}

// WithExcludePatterns hides paths matching any of the doublestar patterns.
func WithExcludePatterns(patterns ...string) Option {
	return &excludeOption{patterns}
}

type ignoreFilesOption struct {
	root     string
	matchers []gitignore.GitIgnore
}

func (o *ignoreFilesOption) apply(f *Filter) {
	f.root = o.root
	f.matchers = append(f.matchers, o.matchers...)
}

// WithIgnoreFiles applies matchers read by ReadIgnoreFiles. root is the absolute scan root the relative paths
// given to ShouldIgnore are resolved against.
func WithIgnoreFiles(root string, matchers []gitignore.GitIgnore) Option {
	return &ignoreFilesOption{root: root, matchers: matchers}
}

// New creates a filter from compiled rules, evaluated against slash-separated relative paths.
func New(rules []*regexp.Regexp, options ...Option) *Filter {
	f := &Filter{rules: rules}
	for _, opt := range options {
		opt.apply(f)
	}

	return f
}

// ShouldIgnore reports whether the slash-separated path rel, relative to the scan root, is hidden.
// Directories are tested with a trailing slash against the rules.
func (f *Filter) ShouldIgnore(rel string, isDir bool) bool {
	if f == nil || rel == "" || rel == "." {
		return false
	}

	subject := rel
	if isDir && !strings.HasSuffix(subject, "/") {
		subject += "/"
	}

	for _, re := range f.rules {
		if re.MatchString(subject) {
			return true
		}
	}

	for _, pattern := range f.exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}

	if len(f.matchers) > 0 {
		abs := filepath.Join(f.root, filepath.FromSlash(rel))
		for _, matcher := range f.matchers {
			match := matcher.Absolute(abs, isDir)
			if match != nil && match.Ignore() {
				return true
			}
		}
	}

	return false
}

// ReadIgnoreFiles reads every ignore file from dir upwards, outermost first.
func ReadIgnoreFiles(dir string) ([]gitignore.GitIgnore, error) {
	var matchers []gitignore.GitIgnore

	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		path := filepath.Join(current, FileName)
		if _, err := os.Stat(path); err == nil {
			matcher, err := gitignore.NewFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			matchers = append([]gitignore.GitIgnore{matcher}, matchers...)
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return matchers, nil
}
