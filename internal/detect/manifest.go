// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// DefaultManifestBlocks are the JSON blocks read when a manifest rule configures none.
var DefaultManifestBlocks = []string{"require", "dependencies", "devDependencies"}

// ManifestRule reports configured packages declared as keys of a structured manifest. The shallowest file with
// the configured base name is read; a missing or malformed file declares nothing.
type ManifestRule struct {
	file     string
	format   rules.Format
	blocks   []string
	packages []string

	matched []string
}

func NewManifestRule(file string, format rules.Format, blocks []string, packages ...string) *ManifestRule {
	if len(blocks) == 0 {
		blocks = DefaultManifestBlocks
	}

	return &ManifestRule{
		file:     file,
		format:   format,
		blocks:   blocks,
		packages: packages,
	}
}

func (r *ManifestRule) sealed() {}

func (r *ManifestRule) Detect(ctx context.Context, tree *source.Tree) (Result, error) {
	r.matched = nil

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	f, has := tree.Find(r.file)
	if !has {
		return Result{}, nil
	}

	declared, err := declaredPackages(f.Content, r.format, r.blocks)
	if err != nil {
		log.Printf("reading manifest %s: %v", f.Path, err)
		return Result{}, nil
	}

	res := Result{}
	for _, pkg := range r.packages {
		if _, has := declared[strings.ToLower(pkg)]; has {
			r.matched = append(r.matched, pkg)
			res.Evidence = append(res.Evidence, Evidence{Path: f.Path, Match: pkg})
		}
	}

	res.Found = len(r.matched) > 0
	return res, nil
}

// Confidence is the share of configured packages that are declared.
func (r *ManifestRule) Confidence() float64 {
	return ratio(len(r.matched), len(r.packages))
}

// Matched returns the configured packages found by the last run, in configured order.
func (r *ManifestRule) Matched() []string {
	return r.matched
}

// declaredPackages returns the lower-cased package names declared in the blocks of a manifest.
func declaredPackages(content string, format rules.Format, blocks []string) (map[string]struct{}, error) {
	declared := map[string]struct{}{}

	switch format {
	case rules.FormatJSON:
		if !gjson.Valid(content) {
			return nil, fmt.Errorf("invalid json")
		}

		for _, block := range blocks {
			gjson.Get(content, block).ForEach(func(key, value gjson.Result) bool {
				if key.Exists() {
					declared[strings.ToLower(key.String())] = struct{}{}
				}
				return true
			})
		}
	case rules.FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal([]byte(content), &doc); err != nil {
			return nil, err
		}

		for _, block := range blocks {
			switch v := lookup(doc, block).(type) {
			case map[string]any:
				for key := range v {
					declared[strings.ToLower(key)] = struct{}{}
				}
			case []any:
				for _, item := range v {
					if req, ok := item.(string); ok {
						if name := requirementName(req); name != "" {
							declared[strings.ToLower(name)] = struct{}{}
						}
					}
				}
			}
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	return declared, nil
}

// lookup resolves a dotted key path in a decoded document.
func lookup(doc map[string]any, dotted string) any {
	var current any = doc
	for _, key := range strings.Split(dotted, ".") {
		table, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = table[key]
	}

	return current
}

var requirementNameRegex = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)

// requirementName extracts the package name of a requirement string such as "fastapi[all]>=0.100".
func requirementName(req string) string {
	if m := requirementNameRegex.FindStringSubmatch(req); m != nil {
		return m[1]
	}

	return ""
}
