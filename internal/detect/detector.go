// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package detect implements the evidence detectors and the passes that reconcile them into a technology stack.
package detect

import (
	"context"
	"log"

	"github.com/azure/stackscan/internal/source"
)

// Evidence is one observation supporting a detection. Line is 1-based, or 0 when not applicable.
type Evidence struct {
	Path  string
	Line  int
	Match string
}

// Result is the outcome of a single detector run.
type Result struct {
	Found    bool
	Evidence []Evidence
}

// Detector is a unit of evidence gathering over a source tree.
//
// Detect is free of side effects other than caching the last result, which Confidence reports on as a value
// in [0, 1]. The set of detectors is closed: PresenceRule, PatternRule, ManifestRule and ExtractorRule.
type Detector interface {
	Detect(ctx context.Context, tree *source.Tree) (Result, error)
	Confidence() float64

	sealed()
}

// Evaluate runs d. Errors are logged and reported as a non-match.
func Evaluate(ctx context.Context, d Detector, tree *source.Tree) Result {
	res, err := d.Detect(ctx, tree)
	if err != nil {
		log.Printf("detector %T failed: %v", d, err)
		return Result{}
	}

	return res
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) / float64(total)
}
