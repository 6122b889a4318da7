// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"slices"
	"strings"
)

// LineIndex maps byte offsets of a text to 1-based line numbers.
type LineIndex struct {
	newlines []int
}

func NewLineIndex(content string) *LineIndex {
	idx := &LineIndex{}
	for i := 0; i < len(content); {
		j := strings.IndexByte(content[i:], '\n')
		if j < 0 {
			break
		}
		idx.newlines = append(idx.newlines, i+j)
		i += j + 1
	}

	return idx
}

// Line returns the line holding offset: the number of newlines before it, plus one.
func (l *LineIndex) Line(offset int) int {
	n, _ := slices.BinarySearch(l.newlines, offset)
	return n + 1
}
