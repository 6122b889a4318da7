// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
)

// DependencyAnalyzer derives technologies from declared dependencies only.
type DependencyAnalyzer struct {
	tables *rules.Tables
}

func NewDependencyAnalyzer(tables *rules.Tables) *DependencyAnalyzer {
	return &DependencyAnalyzer{tables: tables}
}

// Analyze checks the manifests of the dominant language, then package.json whatever the dominant language.
func (a *DependencyAnalyzer) Analyze(ctx context.Context, tree *source.Tree, dominant string) (*TechStack, error) {
	deps := NewTechStack()

	for _, dep := range a.tables.TextDependencies[dominant] {
		f, has := tree.Find(dep.File)
		if !has {
			continue
		}

		if strings.Contains(strings.ToLower(f.Content), strings.ToLower(dep.Needle)) {
			deps.Add(dep.Category, dep.Technology)
		}
	}

	for _, dep := range a.tables.KeyDependencies[dominant] {
		packages := slices.Sorted(maps.Keys(dep.Packages))
		rule := NewManifestRule(dep.File, dep.Format, dep.Blocks, packages...)
		if !Evaluate(ctx, rule, tree).Found {
			continue
		}

		for _, pkg := range rule.Matched() {
			deps.Add(dep.Category, dep.Packages[pkg])
		}
	}

	for _, p := range a.tables.Packages {
		rule := NewManifestRule(rules.PackageManifest, rules.FormatJSON, rules.PackageBlocks, p.Packages...)
		if Evaluate(ctx, rule, tree).Found {
			deps.Add(p.Category, p.Name)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return deps, nil
}
