// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package source enumerates the readable text files of a source tree.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-enry/go-enry/v2"
	"go.uber.org/atomic"
)

// Enumerate walks fsys and reads every regular, non-ignored file. Unreadable and binary files are skipped.
// Exhausting the file or time budget stops the walk or the reads and marks the tree truncated; it is not an
// error.
func Enumerate(ctx context.Context, root string, fsys fs.FS, options ...Option) (*Tree, error) {
	c := newConfig(options...)

	var candidates []string
	var dirs []string
	truncated := false

	deadline := c.clock.Now()
	if c.timeout > 0 {
		deadline = deadline.Add(c.timeout)
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if p == "." {
				return err
			}

			log.Printf("skipping %s: %v", p, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if p == "." {
			return nil
		}

		if d.IsDir() {
			dirs = append(dirs, p)
			if c.filter.ShouldIgnore(p, true) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || c.filter.ShouldIgnore(p, false) {
			return nil
		}

		if len(candidates) >= c.maxFiles {
			log.Printf("file budget of %d reached, stopping walk", c.maxFiles)
			truncated = true
			return fs.SkipAll
		}

		if c.timeout > 0 && c.clock.Now().After(deadline) {
			log.Printf("time budget of %s reached, stopping walk", c.timeout)
			truncated = true
			return fs.SkipAll
		}

		candidates = append(candidates, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	files, expired, err := readAll(ctx, fsys, candidates, c, deadline)
	if err != nil {
		return nil, err
	}

	tree := NewTree(root, files, dirs)
	tree.Truncated = truncated || expired
	return tree, nil
}

// readAll reads candidates concurrently. Once the deadline passes the remaining candidates are dropped and
// expired is set; the files read so far are returned.
func readAll(
	ctx context.Context, fsys fs.FS, candidates []string, c enumerateConfig, deadline time.Time,
) (files []File, expired bool, err error) {
	results := make([]*File, len(candidates))
	jobs := make(chan int)
	read := atomic.NewInt64(0)
	skipped := atomic.NewInt64(0)
	late := atomic.NewBool(false)

	var wg sync.WaitGroup
	for range c.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil || late.Load() {
					continue
				}

				if c.timeout > 0 && c.clock.Now().After(deadline) {
					if late.CompareAndSwap(false, true) {
						log.Printf("time budget of %s reached, stopping reads", c.timeout)
					}
					continue
				}

				content, truncated, ok := ReadOptional(fsys, candidates[i], c.maxFileSize)
				if !ok {
					skipped.Inc()
					continue
				}

				read.Inc()
				results[i] = &File{Path: candidates[i], Content: content, Truncated: truncated}
			}
		}()
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	log.Printf("read %d files, skipped %d", read.Load(), skipped.Load())

	files = make([]File, 0, read.Load())
	for _, f := range results {
		if f != nil {
			files = append(files, *f)
		}
	}

	return files, late.Load(), nil
}

// ReadOptional reads at most limit bytes of name. ok is false when the file cannot be read or holds binary
// data. Invalid UTF-8 sequences are replaced.
func ReadOptional(fsys fs.FS, name string, limit int64) (content string, truncated bool, ok bool) {
	f, err := fsys.Open(name)
	if err != nil {
		log.Printf("reading %s: %v", name, err)
		return "", false, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil && !errors.Is(err, io.EOF) {
		log.Printf("reading %s: %v", name, err)
		return "", false, false
	}

	if int64(len(data)) > limit {
		data = data[:limit]
		truncated = true
	}

	if enry.IsBinary(data) {
		log.Printf("skipping binary file %s", name)
		return "", false, false
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), truncated, true
}
