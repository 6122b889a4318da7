// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/source"
)

// PatternRule matches a regular expression line by line over the text files of a tree.
type PatternRule struct {
	pattern *regexp.Regexp
	// An empty allow-list makes every file a candidate.
	extensions []string

	candidates int
	hits       int
}

func NewPatternRule(pattern *regexp.Regexp, extensions []string) *PatternRule {
	return &PatternRule{pattern: pattern, extensions: extensions}
}

func (r *PatternRule) sealed() {}

func (r *PatternRule) Detect(ctx context.Context, tree *source.Tree) (Result, error) {
	r.candidates = 0
	r.hits = 0
	res := Result{}

	for _, f := range tree.Files {
		if len(r.extensions) > 0 && !slices.Contains(r.extensions, f.Ext()) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		r.candidates++
		hit := false
		for i, line := range strings.Split(f.Content, "\n") {
			if loc := r.pattern.FindStringIndex(line); loc != nil {
				hit = true
				res.Evidence = append(res.Evidence, Evidence{Path: f.Path, Line: i + 1, Match: line[loc[0]:loc[1]]})
			}
		}

		if hit {
			r.hits++
		}
	}

	res.Found = r.hits > 0
	return res, nil
}

// Confidence is the share of candidate files with at least one hit.
func (r *PatternRule) Confidence() float64 {
	return ratio(r.hits, r.candidates)
}
