// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package source

import (
	"runtime"
	"time"

	"github.com/azure/stackscan/pkg/ignore"
	"github.com/benbjohnson/clock"
)

const (
	// DefaultMaxFileSize is the number of bytes read from a single file.
	DefaultMaxFileSize int64 = 1 << 20
	// DefaultMaxFiles is the number of files enumerated before the walk stops.
	DefaultMaxFiles = 100000
)

type enumerateConfig struct {
	maxFileSize int64
	maxFiles    int
	// A zero timeout disables the wall-clock budget.
	timeout time.Duration
	clock   clock.Clock
	workers int
	filter  *ignore.Filter
}

func newConfig(options ...Option) enumerateConfig {
	c := enumerateConfig{
		maxFileSize: DefaultMaxFileSize,
		maxFiles:    DefaultMaxFiles,
		clock:       clock.New(),
		workers:     runtime.NumCPU(),
	}

	for _, opt := range options {
		c = opt.apply(c)
	}

	if c.workers < 1 {
		c.workers = 1
	}

	return c
}

type Option interface {
	apply(enumerateConfig) enumerateConfig
}

type optionFunc func(enumerateConfig) enumerateConfig

func (f optionFunc) apply(c enumerateConfig) enumerateConfig {
	return f(c)
}

// WithMaxFileSize bounds the bytes read per file. Longer files are truncated.
func WithMaxFileSize(size int64) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		if size > 0 {
			c.maxFileSize = size
		}
		return c
	})
}

// WithMaxFiles bounds the number of enumerated files.
func WithMaxFiles(n int) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		if n > 0 {
			c.maxFiles = n
		}
		return c
	})
}

// WithTimeout bounds the wall-clock time spent walking the tree.
func WithTimeout(timeout time.Duration) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		c.timeout = timeout
		return c
	})
}

// WithClock replaces the clock measuring the timeout.
func WithClock(clk clock.Clock) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		c.clock = clk
		return c
	})
}

// WithWorkers sets the number of concurrent readers.
func WithWorkers(n int) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		if n > 0 {
			c.workers = n
		}
		return c
	})
}

// WithIgnore hides the paths rejected by filter.
func WithIgnore(filter *ignore.Filter) Option {
	return optionFunc(func(c enumerateConfig) enumerateConfig {
		c.filter = filter
		return c
	})
}
