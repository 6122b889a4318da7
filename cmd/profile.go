// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/internal/config"
	"github.com/azure/stackscan/internal/profile"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/azure/stackscan/internal/tracing"
	"github.com/azure/stackscan/pkg/osutil"
	"github.com/azure/stackscan/pkg/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var profileFormats = []output.Format{
	output.TableFormat, output.JsonFormat, output.MarkdownFormat, output.NoneFormat,
}

type profileFlags struct {
	outputFormat  string
	query         string
	outputFile    string
	configPath    string
	maxFiles      int
	maxFileSize   int64
	timeout       time.Duration
	workers       int
	languages     []string
	exclude       []string
	noIgnoreFiles bool
	traceLogFile  string
	global        *internal.GlobalCommandOptions
}

func (p *profileFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	addOutputFlag(local, &p.outputFormat, profileFormats, output.TableFormat)
	local.StringVar(&p.query, "query", "", "A JMESPath query applied to the JSON output.")
	local.StringVar(&p.outputFile, "output-file", "", "Write the result to a file instead of stdout.")
	local.StringVar(&p.configPath, "config", "",
		fmt.Sprintf("The configuration file to use (defaults to %s at the root of the tree).", config.FileName))
	local.IntVar(&p.maxFiles, "max-files", source.DefaultMaxFiles, "The maximum number of files to profile.")
	local.Int64Var(&p.maxFileSize, "max-file-size", source.DefaultMaxFileSize,
		"The maximum number of bytes read from a file. Longer files are truncated.")
	local.DurationVar(&p.timeout, "timeout", 0, "The time allowed to walk the tree (0 means no limit).")
	local.IntVar(&p.workers, "workers", 0,
		"The number of files read and profiled concurrently (defaults to the CPU count).")
	local.StringArrayVar(&p.languages, "language", nil, "Restrict endpoint and header extraction to a language.")
	local.StringArrayVar(&p.exclude, "exclude", nil, "A glob of paths to leave out of the profile.")
	local.BoolVar(&p.noIgnoreFiles, "no-ignore-files", false,
		"Do not read .stackscanignore files.")
	local.StringVar(&p.traceLogFile, "trace-log-file", "", "Write OpenTelemetry spans of the run to a file.")
	p.global = global
}

func profileCmd(global *internal.GlobalCommandOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [path]",
		Short: "Profile the technologies of a source tree.",
		Args:  cobra.MaximumNArgs(1),
	}

	flags := &profileFlags{}
	flags.Bind(cmd.Flags(), global)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		ctx, err := withOutput(cmd, flags.outputFormat, profileFormats)
		if err != nil {
			return err
		}

		if flags.query != "" && output.GetFormatter(ctx).Kind() != output.JsonFormat {
			return &internal.ErrorWithSuggestion{
				Err:        errors.New("--query requires JSON output"),
				Suggestion: fmt.Sprintf("Add %s to the command.", output.WithBackticks("--output json")),
			}
		}

		action := &profileAction{
			flags:   flags,
			changed: cmd.Flags().Changed,
			stderr:  cmd.ErrOrStderr(),
		}

		return action.Run(ctx, root)
	}

	return cmd
}

type profileAction struct {
	flags   *profileFlags
	changed func(name string) bool
	stderr  io.Writer
}

func (p *profileAction) Run(ctx context.Context, root string) error {
	if p.flags.traceLogFile != "" {
		shutdown, err := tracing.Init(p.flags.traceLogFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				log.Printf("failed to flush trace log: %v", err)
			}
		}()
	}

	cfg, err := p.loadConfig(root)
	if err != nil {
		return err
	}

	tables, err := rules.Load(cfg.RuleOptions()...)
	if err != nil {
		return err
	}

	runner := profile.NewRunner(tables,
		profile.WithSourceOptions(
			source.WithMaxFiles(cfg.MaxFiles),
			source.WithMaxFileSize(cfg.MaxFileSize),
			source.WithTimeout(cfg.TimeoutDuration()),
		),
		profile.WithLanguages(cfg.Languages...),
		profile.WithExcludePatterns(cfg.Exclude...),
		profile.WithIgnoreFiles(!p.flags.noIgnoreFiles),
		profile.WithWorkers(cfg.Workers),
	)

	spin := newSpinner(fmt.Sprintf("Profiling %s", root))
	spin.Start()
	report, err := runner.Run(ctx, root)
	spin.Stop(err)
	if err != nil {
		return err
	}

	if report.Truncated {
		fmt.Fprintln(p.stderr, output.WithWarningFormat(
			"WARNING: the profile is partial, the file budget or the timeout stopped the walk after %d files.",
			report.Files))
	}

	return p.write(ctx, report)
}

// loadConfig reads the configuration file, when there is one, and applies the flags the user set on top of it.
func (p *profileAction) loadConfig(root string) (*config.Config, error) {
	cfg := config.Defaults()
	if path, has := config.Find(root, p.flags.configPath); has {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if p.changed("max-files") {
		cfg.MaxFiles = p.flags.maxFiles
	}
	if p.changed("max-file-size") {
		cfg.MaxFileSize = p.flags.maxFileSize
	}
	if p.changed("timeout") {
		cfg.Timeout = p.flags.timeout.String()
	}
	if p.changed("workers") {
		cfg.Workers = p.flags.workers
	}
	if p.changed("language") {
		cfg.Languages = p.flags.languages
	}
	if p.changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, p.flags.exclude...)
	}

	if cfg.MaxFiles < 1 || cfg.MaxFileSize < 1 || cfg.Workers < 1 || cfg.TimeoutDuration() < 0 {
		return nil, &internal.ErrorWithSuggestion{
			Err: fmt.Errorf("invalid limits: max files %d, max file size %d, workers %d, timeout %s",
				cfg.MaxFiles, cfg.MaxFileSize, cfg.Workers, cfg.Timeout),
			Suggestion: "Budgets and worker counts must be positive, and the timeout must not be negative.",
		}
	}

	return &cfg, nil
}

func (p *profileAction) write(ctx context.Context, report *profile.Report) error {
	formatter := output.GetFormatter(ctx)
	writer := output.GetWriter(ctx)
	if p.flags.outputFile != "" {
		f, err := os.OpenFile(p.flags.outputFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, osutil.PermissionFile)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()

		// Files get plain text.
		noColor := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = noColor }()

		writer = f
	}

	switch formatter.Kind() {
	case output.JsonFormat:
		return formatter.Format(report.Profile, writer, output.JsonFormatterOptions{Query: p.flags.query})
	case output.MarkdownFormat:
		return formatter.Format(report, writer, output.MarkdownFormatterOptions{Raw: p.flags.outputFile != ""})
	default:
		return formatter.Format(report, writer, nil)
	}
}
