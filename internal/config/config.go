// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads the optional .stackscan.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"dario.cat/mergo"
	"github.com/Masterminds/semver/v3"
	"github.com/azure/stackscan/internal"
	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
	"github.com/azure/stackscan/pkg/osutil"
	"github.com/braydonk/yaml"
	"github.com/drone/envsubst"
	"go.uber.org/multierr"
)

// FileName is the configuration file looked up at the scan root.
const FileName = ".stackscan.yaml"

// EnvName names a configuration file used in place of the one at the scan root.
const EnvName = "STACKSCAN_CONFIG"

// Config is the content of a configuration file. Command-line flags override every value.
type Config struct {
	// RequiredVersion is a semantic version constraint the running version must satisfy.
	RequiredVersion string `yaml:"requiredVersion,omitempty" json:"requiredVersion,omitempty"`
	MaxFiles        int    `yaml:"maxFiles,omitempty" json:"maxFiles,omitempty" jsonschema:"minimum=1"`
	MaxFileSize     int64  `yaml:"maxFileSize,omitempty" json:"maxFileSize,omitempty" jsonschema:"minimum=1"`
	// Timeout is the wall-clock budget of the walk, as a Go duration.
	Timeout string `yaml:"timeout,omitempty" json:"timeout,omitempty" jsonschema:"example=30s"`
	Workers int    `yaml:"workers,omitempty" json:"workers,omitempty" jsonschema:"minimum=1"`
	// Languages restricts endpoint and header extraction.
	Languages []string `yaml:"languages,omitempty" json:"languages,omitempty"`
	// Exclude lists doublestar globs hidden from every detector.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	// Technologies are added to the stack rules.
	Technologies []rules.TechnologySpec `yaml:"technologies,omitempty" json:"technologies,omitempty"`
}

// Defaults returns the values used for every unset field.
func Defaults() Config {
	return Config{
		MaxFiles:    source.DefaultMaxFiles,
		MaxFileSize: source.DefaultMaxFileSize,
		Workers:     runtime.NumCPU(),
	}
}

// TimeoutDuration returns the parsed timeout, zero when unset.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}

	return d
}

// RuleOptions returns the rule table options carried by the configuration.
func (c *Config) RuleOptions() []rules.LoadOption {
	if len(c.Technologies) == 0 {
		return nil
	}

	return []rules.LoadOption{rules.WithTechnologies(c.Technologies...)}
}

// Find returns the configuration file to load: explicit when set, then the file named by STACKSCAN_CONFIG, otherwise
// the file at the root of the scan when it exists.
func Find(root string, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	def := filepath.Join(root, FileName)
	path := osutil.GetenvOrDefault(EnvName, def)
	if path != def && path != "" {
		return path, true
	}

	if osutil.FileExists(def) {
		return def, true
	}

	return "", false
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &internal.ErrorWithSuggestion{
			Err:        fmt.Errorf("reading config file: %w", err),
			Suggestion: fmt.Sprintf("Check that %s exists and is readable, or remove the --config flag.", path),
		}
	}

	log.Printf("loading config from %s", path)
	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return cfg, nil
}

// Parse expands ${VAR} references in content, validates it against the configuration schema and fills unset
// fields with their defaults.
func Parse(content []byte) (*Config, error) {
	expanded, err := envsubst.Eval(string(content), os.Getenv)
	if err != nil {
		return nil, invalid(fmt.Errorf("expanding environment variables: %w", err))
	}

	var raw any
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, invalid(fmt.Errorf("parsing yaml: %w", err))
	}

	if err := validateSchema(raw); err != nil {
		return nil, invalid(err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, invalid(fmt.Errorf("parsing yaml: %w", err))
	}

	if err := cfg.validate(); err != nil {
		return nil, invalid(err)
	}

	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs error

	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("timeout: %w", err))
		} else if d < 0 {
			errs = multierr.Append(errs, fmt.Errorf("timeout: %s is negative", c.Timeout))
		}
	}

	if c.RequiredVersion != "" {
		errs = multierr.Append(errs, c.checkRequiredVersion())
	}

	if len(c.Technologies) > 0 {
		if _, err := rules.Load(c.RuleOptions()...); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("technologies: %w", err))
		}
	}

	return errs
}

func (c *Config) checkRequiredVersion() error {
	constraint, err := semver.NewConstraint(c.RequiredVersion)
	if err != nil {
		return fmt.Errorf("%s is not a valid version constraint (for requiredVersion): %w", c.RequiredVersion, err)
	}

	if internal.IsDevVersion() {
		return nil
	}

	version, err := semver.NewVersion(internal.GetVersionNumber())
	if err != nil {
		return fmt.Errorf("parsing version %s: %w", internal.GetVersionNumber(), err)
	}

	return checkConstraint(constraint, version)
}

func checkConstraint(constraint *semver.Constraints, version *semver.Version) error {
	if ok, reasons := constraint.Validate(version); !ok {
		return fmt.Errorf("this configuration requires a version of stackscan matching '%s', but you have '%s': %w",
			constraint, version, errors.Join(reasons...))
	}

	return nil
}

func invalid(err error) error {
	return &internal.ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid configuration: %w", err),
		Suggestion: "Fix the reported fields. Run 'stackscan schema config' to list every supported setting.",
	}
}
