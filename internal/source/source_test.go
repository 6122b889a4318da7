// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package source

import (
	"context"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/azure/stackscan/pkg/ignore"
	"github.com/azure/stackscan/pkg/osutil"
	"github.com/benbjohnson/clock"
	"github.com/psanford/memfs"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T, files map[string]string) *memfs.FS {
	fsys := memfs.New()
	for p, content := range files {
		if i := strings.LastIndex(p, "/"); i > 0 {
			require.NoError(t, fsys.MkdirAll(p[:i], osutil.PermissionDirectory))
		}
		require.NoError(t, fsys.WriteFile(p, []byte(content), osutil.PermissionFile))
	}

	return fsys
}

func TestEnumerate(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"main.go":                    "package main\n",
		"src/app.js":                 "console.log('hi')\n",
		"node_modules/lib/index.js":  "module.exports = {}\n",
		"vendor/autoload.php":        "<?php\n",
		"assets/logo.png":            "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR",
		"web/static/jquery.min.js":   "!function(){}",
		"docs/readme.md":             "# readme\n",
		"examples/demo/app.py":       "print('x')\n",
		"examples/demo/settings.yml": "a: b\n",
	})

	filter := ignore.New([]*regexp.Regexp{
		regexp.MustCompile(`(^|/)(node_modules|vendor)/`),
		regexp.MustCompile(`\.min\.js$`),
	}, ignore.WithExcludePatterns("examples/**"))

	tree, err := Enumerate(context.Background(), "repo", fsys, WithIgnore(filter), WithWorkers(3))
	require.NoError(t, err)
	require.False(t, tree.Truncated)

	var paths []string
	for _, f := range tree.Files {
		paths = append(paths, f.Path)
	}
	require.Equal(t, []string{"docs/readme.md", "main.go", "src/app.js"}, paths)

	require.True(t, tree.HasDir("node_modules"))
	require.True(t, tree.HasDir("vendor"))
	require.False(t, tree.HasDir("node_modules/lib"))
	require.True(t, tree.HasDir("web/static"))

	f, ok := tree.File("main.go")
	require.True(t, ok)
	require.Equal(t, "package main\n", f.Content)
}

func TestEnumerateMaxFiles(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"a.go": "a", "b.go": "b", "c.go": "c", "d.go": "d",
	})

	tree, err := Enumerate(context.Background(), "repo", fsys, WithMaxFiles(2))
	require.NoError(t, err)
	require.True(t, tree.Truncated)
	require.Len(t, tree.Files, 2)
}

// slowOpenFS advances the clock by an hour every time a file is opened.
type slowOpenFS struct {
	fs.FS
	clock *clock.Mock
}

func (s slowOpenFS) Open(name string) (fs.File, error) {
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, err
	}

	if info, err := f.Stat(); err == nil && !info.IsDir() {
		s.clock.Add(time.Hour)
	}

	return f, nil
}

// slowDirFS advances the clock by an hour when dir is listed.
type slowDirFS struct {
	fs.FS
	clock *clock.Mock
	dir   string
}

func (s slowDirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == s.dir {
		s.clock.Add(time.Hour)
	}

	return fs.ReadDir(s.FS, name)
}

func TestEnumerateTimeoutDuringReads(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"a.go": "a", "b.go": "b", "c.go": "c", "d.go": "d", "e.go": "e",
	})

	clk := clock.NewMock()
	tree, err := Enumerate(context.Background(), "repo", slowOpenFS{FS: fsys, clock: clk},
		WithTimeout(time.Second), WithClock(clk), WithWorkers(1))
	require.NoError(t, err)
	require.True(t, tree.Truncated)
	require.Len(t, tree.Files, 1)
	require.Equal(t, "a.go", tree.Files[0].Path)
}

func TestEnumerateTimeoutDuringWalk(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"a.go": "a", "late/b.go": "b", "late/c.go": "c", "z.go": "z",
	})

	clk := clock.NewMock()
	tree, err := Enumerate(context.Background(), "repo", slowDirFS{FS: fsys, clock: clk, dir: "late"},
		WithTimeout(time.Second), WithClock(clk))
	require.NoError(t, err)
	require.True(t, tree.Truncated)
	require.Empty(t, tree.Files)
	require.Equal(t, []string{"late"}, tree.Dirs)
}

func TestEnumerateWithinTimeout(t *testing.T) {
	fsys := newFS(t, map[string]string{"a.go": "a", "b.go": "b"})

	tree, err := Enumerate(context.Background(), "repo", fsys, WithTimeout(time.Second), WithClock(clock.NewMock()))
	require.NoError(t, err)
	require.False(t, tree.Truncated)
	require.Equal(t, 2, tree.Len())
}

func TestEnumerateCanceled(t *testing.T) {
	fsys := newFS(t, map[string]string{"a.go": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Enumerate(ctx, "repo", fsys)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadOptional(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"text.txt":   "hello world",
		"binary.bin": "PK\x03\x04\x00\x00\x00",
		"bad.txt":    "ok \xff\xfe end",
	})

	content, truncated, ok := ReadOptional(fsys, "text.txt", 5)
	require.True(t, ok)
	require.True(t, truncated)
	require.Equal(t, "hello", content)

	content, truncated, ok = ReadOptional(fsys, "text.txt", 100)
	require.True(t, ok)
	require.False(t, truncated)
	require.Equal(t, "hello world", content)

	_, _, ok = ReadOptional(fsys, "binary.bin", 100)
	require.False(t, ok)

	_, _, ok = ReadOptional(fsys, "missing.txt", 100)
	require.False(t, ok)

	content, _, ok = ReadOptional(fsys, "bad.txt", 100)
	require.True(t, ok)
	require.Equal(t, "ok � end", content)
}

func TestTreeFind(t *testing.T) {
	tree := NewTree("repo", []File{
		{Path: "services/b/package.json"},
		{Path: "web/package.json"},
		{Path: "app/package.json"},
		{Path: "src/index.js"},
	}, []string{"web", "app", "services", "services/b", "src"})

	f, ok := tree.Find("package.json")
	require.True(t, ok)
	require.Equal(t, "app/package.json", f.Path)

	_, ok = tree.Find("go.mod")
	require.False(t, ok)

	require.Equal(t, []string{"app", "services", "services/b", "src", "web"}, tree.Dirs)
	require.Equal(t, 4, tree.Len())
}
