// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"log"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
)

// Aggregator evaluates the stack rules of the dominant language over a tree.
type Aggregator struct {
	tables *rules.Tables
}

func NewAggregator(tables *rules.Tables) *Aggregator {
	return &Aggregator{tables: tables}
}

type stackEntry struct {
	category   rules.Category
	technology string
	detectors  []Detector
}

// entries builds fresh detector instances in evaluation order: the package.json pass first, then the
// technologies of the dominant language in table order.
func (a *Aggregator) entries(dominant string) []stackEntry {
	var entries []stackEntry

	for _, p := range a.tables.Packages {
		entries = append(entries, stackEntry{
			category:   p.Category,
			technology: p.Name,
			detectors: []Detector{
				NewManifestRule(rules.PackageManifest, rules.FormatJSON, rules.PackageBlocks, p.Packages...),
			},
		})
	}

	for _, tech := range a.tables.Technologies[dominant] {
		if len(tech.Detectors) == 0 {
			continue
		}

		entry := stackEntry{category: tech.Category, technology: tech.Name}
		for _, config := range tech.Detectors {
			switch config.Kind {
			case rules.KindCode:
				entry.detectors = append(entry.detectors, NewPatternRule(config.Pattern, a.tables.CodeExtensions))
			default:
				entry.detectors = append(entry.detectors, NewPresenceRule(config))
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// Detect returns the technologies with at least one positive detector. Detectors of a technology run in
// configured order and evaluation stops at the first positive one.
func (a *Aggregator) Detect(ctx context.Context, tree *source.Tree, dominant string) (*TechStack, error) {
	return evaluateEntries(ctx, a.entries(dominant), tree)
}

func evaluateEntries(ctx context.Context, entries []stackEntry, tree *source.Tree) (*TechStack, error) {
	stack := NewTechStack()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if stack.Has(entry.technology) {
			continue
		}

		for _, d := range entry.detectors {
			if Evaluate(ctx, d, tree).Found {
				log.Printf("detected %s (%s), confidence %.2f", entry.technology, entry.category, d.Confidence())
				stack.Add(entry.category, entry.technology)
				break
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return stack, nil
}
