// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/secrets"
	"github.com/azure/stackscan/internal/source"
	"github.com/braydonk/yaml"
	"github.com/joho/godotenv"
)

// ConfigFindings is the outcome of the configuration file pass.
type ConfigFindings struct {
	// Technologies maps a technology to the sorted paths of the configuration files evidencing it.
	Technologies map[string][]string
	Secrets      []secrets.Finding
}

// ConfigDetector detects technologies from well-known configuration files and collects their credentials.
type ConfigDetector struct {
	tables  *rules.Tables
	scanner *secrets.Scanner

	found int
	total int
}

func NewConfigDetector(tables *rules.Tables) *ConfigDetector {
	return &ConfigDetector{
		tables:  tables,
		scanner: secrets.NewScanner(tables),
	}
}

func (d *ConfigDetector) Detect(ctx context.Context, tree *source.Tree) (ConfigFindings, error) {
	findings := ConfigFindings{Technologies: map[string][]string{}}
	found := map[string]struct{}{}

	d.total = 0
	for _, pattern := range d.tables.Configs {
		d.total += len(pattern.Needles)
	}

	for _, f := range tree.Files {
		if err := ctx.Err(); err != nil {
			return ConfigFindings{}, err
		}

		base := f.Base()
		known := slices.Contains(d.tables.ConfigFiles, base)
		for _, pattern := range d.tables.Configs {
			if pattern.File != base {
				continue
			}

			known = true
			for _, needle := range matchNeedles(f.Content, pattern) {
				findings.Technologies[needle.Technology] = append(findings.Technologies[needle.Technology], f.Path)
				found[pattern.File+"\x00"+needle.Needle] = struct{}{}
			}
		}

		if !known {
			continue
		}

		if finding, has := d.scanner.Scan(f); has {
			findings.Secrets = append(findings.Secrets, finding)
		}
	}

	for tech, paths := range findings.Technologies {
		slices.Sort(paths)
		findings.Technologies[tech] = slices.Compact(paths)
	}
	secrets.Sort(findings.Secrets)

	d.found = len(found)
	return findings, nil
}

// Confidence is the share of configured needles found in at least one file.
func (d *ConfigDetector) Confidence() float64 {
	return ratio(d.found, d.total)
}

// Stack places the detected technologies into categories: database engines under database, package.json
// technologies under their package category and everything else under backend.
func (f ConfigFindings) Stack(tables *rules.Tables) *TechStack {
	stack := NewTechStack()
	for _, tech := range slices.Sorted(maps.Keys(f.Technologies)) {
		if slices.Contains(rules.DatabaseTechnologies, tech) {
			stack.Add(rules.Database, tech)
		} else if category, has := tables.PackageCategory(tech); has {
			stack.Add(category, tech)
		} else {
			stack.Add(rules.Backend, tech)
		}
	}

	return stack
}

func matchNeedles(content string, pattern rules.ConfigPattern) []rules.ConfigNeedle {
	var matched []rules.ConfigNeedle

	switch pattern.Format {
	case rules.FormatDotEnv:
		env, err := godotenv.Unmarshal(content)
		for _, needle := range pattern.Needles {
			key, value, isPair := strings.Cut(needle.Needle, "=")
			if err == nil && isPair {
				if strings.EqualFold(env[key], value) {
					matched = append(matched, needle)
				}
				continue
			}

			if strings.Contains(content, needle.Needle) {
				matched = append(matched, needle)
			}
		}
	case rules.FormatYAML:
		var doc map[string]any
		err := yaml.Unmarshal([]byte(content), &doc)
		for _, needle := range pattern.Needles {
			key, isKey := strings.CutSuffix(needle.Needle, ":")
			if err == nil && isKey {
				if _, has := doc[key]; has {
					matched = append(matched, needle)
				}
				continue
			}

			if strings.Contains(content, needle.Needle) {
				matched = append(matched, needle)
			}
		}
	default:
		for _, needle := range pattern.Needles {
			if strings.Contains(content, needle.Needle) {
				matched = append(matched, needle)
			}
		}
	}

	return matched
}
