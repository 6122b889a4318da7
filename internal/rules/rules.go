// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
)

// Category is the stack section a technology is reported under.
type Category string

const (
	Backend    Category = "backend"
	Frontend   Category = "frontend"
	Database   Category = "database"
	BuildTools Category = "build_tools"
	Testing    Category = "testing"
	DevOps     Category = "devops"
)

// Categories lists every category in report order.
var Categories = []Category{Backend, Frontend, Database, BuildTools, Testing, DevOps}

func (c Category) Display() string {
	switch c {
	case Backend:
		return "Backend"
	case Frontend:
		return "Frontend"
	case Database:
		return "Database"
	case BuildTools:
		return "Build tools"
	case Testing:
		return "Testing"
	case DevOps:
		return "DevOps"
	}

	return ""
}

// ParseCategory accepts a category name as written in rule files.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Categories, c) {
		return c, nil
	}

	return "", fmt.Errorf("unknown category %q", s)
}

// Kind tags the evidence source of a detector configuration.
type Kind string

const (
	KindFile Kind = "file"
	KindDir  Kind = "dir"
	KindCode Kind = "code"
)

// Format describes how a declaration or configuration file is parsed.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatDotEnv Format = "dotenv"
)

// DetectorConfig is one normalized piece of evidence for a technology.
//
// For file and dir kinds exactly one of Path (a doublestar glob relative to the root) or Name (a regular
// expression matched against base names) is set. Content optionally requires a substring for file kinds.
// For the code kind Pattern is a case-insensitive expression matched line by line.
type DetectorConfig struct {
	Kind    Kind
	Path    string
	Name    *regexp.Regexp
	Content string
	Pattern *regexp.Regexp
}

// Technology is a technology with its evidence, tried in order.
type Technology struct {
	Name      string
	Category  Category
	Detectors []DetectorConfig
}

// Language maps a language bucket to lower-cased extensions or exact file names.
type Language struct {
	Name       string
	Extensions []string
}

// RoutePattern extracts endpoint definitions.
//
// Annotation marks frameworks whose method indicator is an annotation name such as GetMapping.
type RoutePattern struct {
	Regex      *regexp.Regexp
	Framework  string
	Annotation bool
}

// HeaderPattern extracts headers through the named groups headers, headerName, headerValue, method and url.
type HeaderPattern struct {
	Regex     *regexp.Regexp
	Framework string
}

// PackageTechnology maps declared package.json packages to a technology.
type PackageTechnology struct {
	Name     string
	Packages []string
	Category Category
}

// TextDependency is a case-insensitive substring check over a plain-text manifest.
type TextDependency struct {
	File       string
	Needle     string
	Category   Category
	Technology string
}

// KeyDependency is a key membership check over the blocks of a structured manifest.
type KeyDependency struct {
	File     string
	Format   Format
	Blocks   []string
	Packages map[string]string
	Category Category
}

// ConfigNeedle maps evidence inside a configuration file to a technology.
type ConfigNeedle struct {
	Needle     string
	Technology string
}

// ConfigPattern lists the needles searched in configuration files named File.
type ConfigPattern struct {
	File    string
	Format  Format
	Needles []ConfigNeedle
}

// Tables is the immutable rule configuration shared by every component of a run.
type Tables struct {
	Languages        []Language
	Ignore           []*regexp.Regexp
	CodeExtensions   []string
	Routes           map[string][]RoutePattern
	Outbound         map[string][]*regexp.Regexp
	Ajax             *regexp.Regexp
	Headers          map[string][]HeaderPattern
	Technologies     map[string][]Technology
	Packages         []PackageTechnology
	TextDependencies map[string][]TextDependency
	KeyDependencies  map[string][]KeyDependency
	Configs          []ConfigPattern
	ConfigFiles      []string
	Credentials      *regexp.Regexp
}

// HasTechnologies reports whether language has stack rules.
func (t *Tables) HasTechnologies(language string) bool {
	return len(t.Technologies[language]) > 0
}

// ExtractionLanguages returns the languages that have route or header patterns, sorted.
func (t *Tables) ExtractionLanguages() []string {
	var langs []string
	for lang := range t.Routes {
		langs = append(langs, lang)
	}
	for lang := range t.Headers {
		if !slices.Contains(langs, lang) {
			langs = append(langs, lang)
		}
	}

	slices.Sort(langs)
	return langs
}

// LanguageExtensions returns the extensions and file names claimed by language, or nil when it is unknown.
func (t *Tables) LanguageExtensions(language string) []string {
	for _, lang := range t.Languages {
		if lang.Name == language {
			return lang.Extensions
		}
	}

	return nil
}

// PackageCategory returns the category of a technology declared through package.json.
func (t *Tables) PackageCategory(technology string) (Category, bool) {
	for _, p := range t.Packages {
		if p.Name == technology {
			return p.Category, true
		}
	}

	return "", false
}

// DetectorSpec is the uncompiled form of a DetectorConfig, as written in rule tables and rule files.
type DetectorSpec struct {
	Type    string `json:"type" yaml:"type" jsonschema:"enum=file,enum=dir,enum=code"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// TechnologySpec adds a technology to the stack rules of a language.
type TechnologySpec struct {
	Name      string         `json:"name" yaml:"name"`
	Language  string         `json:"language" yaml:"language"`
	Category  string         `json:"category" yaml:"category"`
	Detectors []DetectorSpec `json:"detectors" yaml:"detectors"`
}

type LoadOption interface {
	apply(loadConfig) loadConfig
}

type loadConfig struct {
	technologies []TechnologySpec
}

type technologiesOption struct {
	specs []TechnologySpec
}

func (o *technologiesOption) apply(c loadConfig) loadConfig {
	c.technologies = append(c.technologies, o.specs...)
	return c
}

// WithTechnologies appends technologies to the built-in stack rules. Added detectors for an already known
// technology are tried after the built-in ones.
func WithTechnologies(specs ...TechnologySpec) LoadOption {
	return &technologiesOption{specs}
}

// Load normalizes and compiles the rule tables. Each call returns a fresh value; callers load once and pass the
// result to every component.
func Load(options ...LoadOption) (*Tables, error) {
	c := loadConfig{}
	for _, opt := range options {
		c = opt.apply(c)
	}

	var errs error
	t := &Tables{
		Languages:        languages(),
		CodeExtensions:   slices.Clone(codeExtensions),
		Outbound:         map[string][]*regexp.Regexp{},
		Technologies:     map[string][]Technology{},
		Packages:         packageTechnologies(),
		TextDependencies: textDependencies(),
		KeyDependencies:  keyDependencies(),
		Configs:          configPatterns(),
		ConfigFiles:      slices.Clone(configFiles),
		Credentials:      regexp.MustCompile(credentialPattern),
		Ajax:             regexp.MustCompile(ajaxPattern),
	}

	for _, p := range ignorePatterns {
		t.Ignore = append(t.Ignore, regexp.MustCompile(p))
	}

	t.Routes = compileRoutes(routePatterns)
	t.Headers = compileHeaders(headerPatterns)
	for lang, patterns := range outboundPatterns {
		for _, p := range patterns {
			t.Outbound[lang] = append(t.Outbound[lang], regexp.MustCompile(p))
		}
	}

	for _, lt := range technologiesByLanguage {
		for _, group := range lt.groups {
			for _, name := range group.names {
				detectors, err := compileDetectors(name, technologyDetectors[name])
				errs = multierr.Append(errs, err)
				t.Technologies[lt.language] = append(t.Technologies[lt.language], Technology{
					Name:      name,
					Category:  group.category,
					Detectors: detectors,
				})
			}
		}
	}

	for _, spec := range c.technologies {
		errs = multierr.Append(errs, t.addTechnology(spec))
	}

	if errs != nil {
		return nil, errs
	}

	return t, nil
}

func (t *Tables) addTechnology(spec TechnologySpec) error {
	if spec.Name == "" || spec.Language == "" {
		return fmt.Errorf("technology rule requires a name and a language")
	}

	category, err := ParseCategory(spec.Category)
	if err != nil {
		return fmt.Errorf("technology %s: %w", spec.Name, err)
	}

	detectors, err := compileDetectors(spec.Name, spec.Detectors)
	if err != nil {
		return err
	}

	techs := t.Technologies[spec.Language]
	for i := range techs {
		if techs[i].Name == spec.Name {
			techs[i].Detectors = append(slices.Clone(techs[i].Detectors), detectors...)
			return nil
		}
	}

	t.Technologies[spec.Language] = append(techs, Technology{
		Name:      spec.Name,
		Category:  category,
		Detectors: detectors,
	})
	return nil
}

func compileDetectors(technology string, specs []DetectorSpec) ([]DetectorConfig, error) {
	var errs error
	var configs []DetectorConfig
	for i, spec := range specs {
		config, err := compileDetector(spec)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("technology %s, detector %d: %w", technology, i, err))
			continue
		}

		configs = append(configs, config)
	}

	return configs, errs
}

func compileDetector(spec DetectorSpec) (DetectorConfig, error) {
	config := DetectorConfig{
		Kind:    Kind(spec.Type),
		Path:    spec.Path,
		Content: spec.Content,
	}

	switch config.Kind {
	case KindFile, KindDir:
		if (spec.Path == "") == (spec.Name == "") {
			return config, fmt.Errorf("%s detector requires exactly one of path or name", spec.Type)
		}

		if spec.Name != "" {
			re, err := regexp.Compile("(?i)" + spec.Name)
			if err != nil {
				return config, fmt.Errorf("compiling name pattern: %w", err)
			}
			config.Name = re
		} else if !doublestar.ValidatePattern(spec.Path) {
			return config, fmt.Errorf("invalid glob %q", spec.Path)
		}
	case KindCode:
		if spec.Pattern == "" {
			return config, fmt.Errorf("code detector requires a pattern")
		}

		re, err := regexp.Compile("(?i)" + spec.Pattern)
		if err != nil {
			return config, fmt.Errorf("compiling code pattern: %w", err)
		}
		config.Pattern = re
	default:
		return config, fmt.Errorf("unknown detector type %q", spec.Type)
	}

	return config, nil
}

type routeSpec struct {
	pattern    string
	framework  string
	annotation bool
}

func compileRoutes(specs map[string][]routeSpec) map[string][]RoutePattern {
	routes := map[string][]RoutePattern{}
	for lang, list := range specs {
		for _, s := range list {
			routes[lang] = append(routes[lang], RoutePattern{
				Regex:      regexp.MustCompile(s.pattern),
				Framework:  s.framework,
				Annotation: s.annotation,
			})
		}
	}

	return routes
}

type headerSpec struct {
	pattern   string
	framework string
}

func compileHeaders(specs map[string][]headerSpec) map[string][]HeaderPattern {
	headers := map[string][]HeaderPattern{}
	for lang, list := range specs {
		for _, s := range list {
			headers[lang] = append(headers[lang], HeaderPattern{
				Regex:     regexp.MustCompile(s.pattern),
				Framework: s.framework,
			})
		}
	}

	return headers
}
