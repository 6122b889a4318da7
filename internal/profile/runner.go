// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/internal/detect"
	"github.com/azure/stackscan/internal/endpoints"
	"github.com/azure/stackscan/internal/langstats"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/secrets"
	"github.com/azure/stackscan/internal/source"
	"github.com/azure/stackscan/internal/tracing"
	"github.com/azure/stackscan/pkg/ignore"
	"github.com/azure/stackscan/pkg/osutil"
)

// Runner profiles source trees with one set of rule tables, one tree at a time.
type Runner struct {
	tables     *rules.Tables
	config     runConfig
	classifier *langstats.Classifier
	extractor  *endpoints.Extractor
	scanner    *secrets.Scanner
}

func NewRunner(tables *rules.Tables, options ...Option) *Runner {
	c := newConfig(options...)

	return &Runner{
		tables:     tables,
		config:     c,
		classifier: langstats.NewClassifier(tables),
		extractor:  endpoints.NewExtractor(tables, c.languages...),
		scanner:    secrets.NewScanner(tables),
	}
}

// Run profiles the directory root, honoring the ignore files found from root upwards.
func (r *Runner) Run(ctx context.Context, root string) (*Report, error) {
	if !osutil.DirExists(root) {
		return nil, &internal.ErrorWithSuggestion{
			Err:        fmt.Errorf("%s does not exist or is not a directory", root),
			Suggestion: "Pass the directory to profile, for example: stackscan profile ./src",
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	options := []ignore.Option{ignore.WithExcludePatterns(r.config.exclude...)}
	if r.config.ignoreFiles {
		matchers, err := ignore.ReadIgnoreFiles(abs)
		if err != nil {
			return nil, err
		}

		log.Printf("using %d %s files", len(matchers), ignore.FileName)
		options = append(options, ignore.WithIgnoreFiles(abs, matchers))
	}

	return r.run(ctx, root, os.DirFS(abs), ignore.New(r.tables.Ignore, options...))
}

// RunFS profiles fsys. Ignore files are not read.
func (r *Runner) RunFS(ctx context.Context, root string, fsys fs.FS) (*Report, error) {
	return r.run(ctx, root, fsys, ignore.New(r.tables.Ignore, ignore.WithExcludePatterns(r.config.exclude...)))
}

func (r *Runner) run(ctx context.Context, root string, fsys fs.FS, filter *ignore.Filter) (*Report, error) {
	enumCtx, span := tracing.Start(ctx, "profile.enumerate", tracing.RootKey.String(root))
	options := append([]source.Option{source.WithIgnore(filter)}, r.config.sourceOptions...)
	tree, err := source.Enumerate(enumCtx, root, fsys, options...)
	if err == nil {
		span.SetAttributes(tracing.FilesKey.Int(tree.Len()), tracing.TruncatedKey.Bool(tree.Truncated))
	}
	tracing.EndWithStatus(span, err)
	if err != nil {
		return nil, err
	}

	return r.RunTree(ctx, tree)
}

// RunTree profiles an enumerated tree. Files are profiled concurrently and reduced in tree order, then the
// whole-tree passes run over the complete tree.
func (r *Runner) RunTree(ctx context.Context, tree *source.Tree) (report *Report, err error) {
	ctx, span := tracing.Start(ctx, "profile.run",
		tracing.RootKey.String(tree.Root), tracing.FilesKey.Int(tree.Len()))
	defer func() { tracing.EndWithStatus(span, err) }()

	contributions, err := r.profileFiles(ctx, tree)
	if err != nil {
		return nil, err
	}

	stats, findings, found := reduce(contributions)
	dominant, _ := stats.Dominant(r.tables)
	span.SetAttributes(tracing.LanguageKey.String(dominant))
	log.Printf("profiled %d files, dominant language %q", tree.Len(), dominant)

	coverage := r.extractor.Coverage(ctx, tree)
	for _, lang := range r.extractor.Languages() {
		if share := coverage[lang]; share > 0 {
			log.Printf("routes defined in %.0f%% of %s files", share*100, lang)
		}
	}

	stack, deps, configs, err := r.analyzeTree(ctx, tree, dominant)
	if err != nil {
		return nil, err
	}

	stack.Merge(deps)
	stack.Merge(configs.Stack(r.tables))

	return &Report{
		Profile: &Profile{
			Languages: stats.Distribution(),
			SLOC: SLOC{
				ByLang: stats.SLOC,
				Total:  stats.SLOCTotal(),
			},
			Stack:         stack.Sorted(),
			Dependencies:  deps.Sorted(),
			Secrets:       orEmpty(found),
			Endpoints:     findings.Endpoints,
			Ajax:          findings.Ajax,
			Headers:       findings.Headers,
			Configs:       configs.Technologies,
			ConfigSecrets: orEmpty(configs.Secrets),
		},
		Files:     tree.Len(),
		Truncated: tree.Truncated,
		Dominant:  dominant,
	}, nil
}

// contribution is what a single file adds to the profile.
type contribution struct {
	language string
	sloc     int
	findings endpoints.Findings
	secret   *secrets.Finding
}

func (r *Runner) profileFiles(ctx context.Context, tree *source.Tree) (results []contribution, err error) {
	ctx, span := tracing.Start(ctx, "profile.files")
	defer func() { tracing.EndWithStatus(span, err) }()

	results = make([]contribution, len(tree.Files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range max(r.config.workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}

				results[i] = r.profileFile(tree.Files[i])
			}
		}()
	}

	for i := range tree.Files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) profileFile(f source.File) contribution {
	language := r.classifier.Classify(f.Path)
	c := contribution{
		language: language,
		sloc:     langstats.CountSLOC(f.Content),
		findings: r.extractor.Extract(f, language),
	}

	if r.scanner.Candidate(f.Path) {
		if finding, has := r.scanner.Scan(f); has {
			c.secret = &finding
		}
	}

	return c
}

// reduce merges contributions in order. Every merge is a sum, a union or a concatenation followed by a sort,
// so the outcome does not depend on which worker produced a contribution.
func reduce(contributions []contribution) (*langstats.Stats, endpoints.Findings, []secrets.Finding) {
	stats := langstats.NewStats()
	var findings endpoints.Findings
	var found []secrets.Finding

	for _, c := range contributions {
		stats.Add(c.language, c.sloc)
		findings.Merge(c.findings)
		if c.secret != nil {
			found = append(found, *c.secret)
		}
	}

	findings.Normalize()
	secrets.Sort(found)
	return stats, findings, found
}

func (r *Runner) analyzeTree(
	ctx context.Context, tree *source.Tree, dominant string,
) (*detect.TechStack, *detect.TechStack, detect.ConfigFindings, error) {
	stackCtx, span := tracing.Start(ctx, "profile.stack")
	stack, err := detect.NewAggregator(r.tables).Detect(stackCtx, tree, dominant)
	if err == nil {
		span.SetAttributes(tracing.FoundKey.Int(stack.Len()))
	}
	tracing.EndWithStatus(span, err)
	if err != nil {
		return nil, nil, detect.ConfigFindings{}, err
	}

	depsCtx, span := tracing.Start(ctx, "profile.dependencies")
	deps, err := detect.NewDependencyAnalyzer(r.tables).Analyze(depsCtx, tree, dominant)
	tracing.EndWithStatus(span, err)
	if err != nil {
		return nil, nil, detect.ConfigFindings{}, err
	}

	configCtx, span := tracing.Start(ctx, "profile.configs")
	configs, err := detect.NewConfigDetector(r.tables).Detect(configCtx, tree)
	tracing.EndWithStatus(span, err)
	if err != nil {
		return nil, nil, detect.ConfigFindings{}, err
	}

	return stack, deps, configs, nil
}
