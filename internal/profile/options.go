// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"runtime"

	"github.com/azure/stackscan/internal/source"
)

type runConfig struct {
	sourceOptions []source.Option
	languages     []string
	exclude       []string
	ignoreFiles   bool
	workers       int
}

func newConfig(options ...Option) runConfig {
	c := runConfig{
		ignoreFiles: true,
		workers:     runtime.NumCPU(),
	}

	for _, opt := range options {
		c = opt.apply(c)
	}

	return c
}

type Option interface {
	apply(runConfig) runConfig
}

type optionFunc func(runConfig) runConfig

func (f optionFunc) apply(c runConfig) runConfig {
	return f(c)
}

// WithSourceOptions configures enumeration budgets.
func WithSourceOptions(options ...source.Option) Option {
	return optionFunc(func(c runConfig) runConfig {
		c.sourceOptions = append(c.sourceOptions, options...)
		return c
	})
}

// WithLanguages restricts the endpoint and header passes to languages.
func WithLanguages(languages ...string) Option {
	return optionFunc(func(c runConfig) runConfig {
		c.languages = append(c.languages, languages...)
		return c
	})
}

// WithExcludePatterns hides paths matching any of the doublestar patterns.
func WithExcludePatterns(patterns ...string) Option {
	return optionFunc(func(c runConfig) runConfig {
		c.exclude = append(c.exclude, patterns...)
		return c
	})
}

// WithIgnoreFiles toggles reading .stackscanignore files from the scan root upwards. It is on by default.
func WithIgnoreFiles(enabled bool) Option {
	return optionFunc(func(c runConfig) runConfig {
		c.ignoreFiles = enabled
		return c
	})
}

// WithWorkers sets the number of concurrent readers and profilers.
func WithWorkers(n int) Option {
	return optionFunc(func(c runConfig) runConfig {
		if n > 0 {
			c.workers = n
			c.sourceOptions = append(c.sourceOptions, source.WithWorkers(n))
		}
		return c
	})
}
