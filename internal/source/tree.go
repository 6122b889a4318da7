// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package source

import (
	"path"
	"slices"
	"strings"
)

// File is a readable text file of the tree.
type File struct {
	// Path is slash separated and relative to the root.
	Path    string
	Content string
	// Truncated is set when the content was cut at the maximum file size.
	Truncated bool
}

// Ext returns the lower-cased extension of the file, including the dot.
func (f File) Ext() string {
	return strings.ToLower(path.Ext(f.Path))
}

// Base returns the base name of the file.
func (f File) Base() string {
	return path.Base(f.Path)
}

// Tree is the enumerated source tree. Files and Dirs are sorted by path.
type Tree struct {
	Root  string
	Files []File
	// Dirs lists every directory seen during the walk, including ignored directories that were not descended.
	Dirs []string
	// Truncated is set when a file or time budget stopped the walk early.
	Truncated bool

	index map[string]int
}

// NewTree builds a tree from files and directories in any order.
func NewTree(root string, files []File, dirs []string) *Tree {
	t := &Tree{
		Root:  root,
		Files: slices.Clone(files),
		Dirs:  slices.Clone(dirs),
		index: make(map[string]int, len(files)),
	}

	slices.SortFunc(t.Files, func(a, b File) int {
		return strings.Compare(a.Path, b.Path)
	})
	slices.Sort(t.Dirs)
	t.Dirs = slices.Compact(t.Dirs)

	for i, f := range t.Files {
		t.index[f.Path] = i
	}

	return t
}

// File returns the file at the relative path p.
func (t *Tree) File(p string) (File, bool) {
	if i, has := t.index[p]; has {
		return t.Files[i], true
	}

	return File{}, false
}

// Find returns the shallowest file with the given base name. Ties resolve to the lexicographically smaller path.
func (t *Tree) Find(base string) (File, bool) {
	found := -1
	depth := 0
	for i, f := range t.Files {
		if f.Base() != base {
			continue
		}

		d := strings.Count(f.Path, "/")
		if found < 0 || d < depth {
			found = i
			depth = d
		}
	}

	if found < 0 {
		return File{}, false
	}

	return t.Files[found], true
}

// HasDir reports whether the walk saw the directory p.
func (t *Tree) HasDir(p string) bool {
	_, has := slices.BinarySearch(t.Dirs, p)
	return has
}

// Len returns the number of files in the tree.
func (t *Tree) Len() int {
	return len(t.Files)
}
