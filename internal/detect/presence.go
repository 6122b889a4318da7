// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/bmatcuk/doublestar/v4"
)

// PresenceRule matches files or directories by glob or base-name pattern, optionally requiring a substring in
// matched files.
type PresenceRule struct {
	configs []rules.DetectorConfig
	matched int
}

func NewPresenceRule(configs ...rules.DetectorConfig) *PresenceRule {
	return &PresenceRule{configs: configs}
}

func (r *PresenceRule) sealed() {}

func (r *PresenceRule) Detect(ctx context.Context, tree *source.Tree) (Result, error) {
	r.matched = 0
	res := Result{}

	for _, config := range r.configs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if config.Name == nil && !doublestar.ValidatePattern(config.Path) {
			return Result{}, fmt.Errorf("invalid glob %q", config.Path)
		}

		var evidence []Evidence
		var err error
		switch config.Kind {
		case rules.KindFile:
			evidence, err = matchFiles(config, tree)
		case rules.KindDir:
			evidence, err = matchDirs(config, tree)
		default:
			err = fmt.Errorf("presence rule cannot evaluate %s detectors", config.Kind)
		}
		if err != nil {
			return Result{}, err
		}

		if len(evidence) > 0 {
			r.matched++
			res.Evidence = append(res.Evidence, evidence...)
		}
	}

	res.Found = r.matched > 0
	return res, nil
}

// Confidence is the share of configured patterns with at least one match.
func (r *PresenceRule) Confidence() float64 {
	return ratio(r.matched, len(r.configs))
}

func matchFiles(config rules.DetectorConfig, tree *source.Tree) ([]Evidence, error) {
	files := tree.Files
	if literal(config) {
		f, has := tree.File(config.Path)
		if !has {
			return nil, nil
		}
		files = []source.File{f}
	}

	var evidence []Evidence
	for _, f := range files {
		matched, err := matchPath(config, f.Path)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		if config.Content != "" && !strings.Contains(f.Content, config.Content) {
			continue
		}

		evidence = append(evidence, Evidence{Path: f.Path, Match: config.Content})
	}

	return evidence, nil
}

func matchDirs(config rules.DetectorConfig, tree *source.Tree) ([]Evidence, error) {
	if literal(config) {
		if tree.HasDir(config.Path) {
			return []Evidence{{Path: config.Path}}, nil
		}
		return nil, nil
	}

	var evidence []Evidence
	for _, dir := range tree.Dirs {
		matched, err := matchPath(config, dir)
		if err != nil {
			return nil, err
		}
		if matched {
			evidence = append(evidence, Evidence{Path: dir})
		}
	}

	return evidence, nil
}

// literal reports whether config names a single path with no glob syntax.
func literal(config rules.DetectorConfig) bool {
	return config.Name == nil && !strings.ContainsAny(config.Path, `*?[{\`)
}

func matchPath(config rules.DetectorConfig, p string) (bool, error) {
	if config.Name != nil {
		return config.Name.MatchString(path.Base(p)), nil
	}

	matched, err := doublestar.Match(config.Path, p)
	if err != nil {
		return false, fmt.Errorf("matching %s: %w", config.Path, err)
	}

	return matched, nil
}
