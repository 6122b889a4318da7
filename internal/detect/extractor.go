// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/azure/stackscan/internal/rules"
	"github.com/azure/stackscan/internal/source"
)

// MethodAll is reported when a route pattern carries no standard HTTP verb.
const MethodAll = "ALL"

var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// Route is an endpoint definition extracted from a file.
type Route struct {
	Path      string
	Line      int
	Framework string
	Method    string
	Endpoint  string
}

// ExtractorRule applies the ordered route patterns of one language to the files of that language.
type ExtractorRule struct {
	language   string
	extensions []string
	patterns   []rules.RoutePattern

	candidates int
	hits       int
}

// NewExtractorRule creates a rule for language. extensions are the lower-cased extensions or file names
// claimed by the language.
func NewExtractorRule(language string, extensions []string, patterns []rules.RoutePattern) *ExtractorRule {
	return &ExtractorRule{
		language:   language,
		extensions: extensions,
		patterns:   patterns,
	}
}

func (r *ExtractorRule) sealed() {}

// matches reports whether f belongs to the language of the rule.
func (r *ExtractorRule) matches(f source.File) bool {
	return slices.Contains(r.extensions, f.Ext()) || slices.Contains(r.extensions, strings.ToLower(f.Base()))
}

func (r *ExtractorRule) Detect(ctx context.Context, tree *source.Tree) (Result, error) {
	r.candidates = 0
	r.hits = 0
	res := Result{}

	for _, f := range tree.Files {
		if !r.matches(f) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		r.candidates++
		routes := r.Extract(f)
		if len(routes) > 0 {
			r.hits++
		}

		for _, route := range routes {
			res.Evidence = append(res.Evidence, Evidence{
				Path:  route.Path,
				Line:  route.Line,
				Match: route.Method + " " + route.Endpoint,
			})
		}
	}

	res.Found = r.hits > 0
	return res, nil
}

// Confidence is the share of the language's files defining at least one route.
func (r *ExtractorRule) Confidence() float64 {
	return ratio(r.hits, r.candidates)
}

// Extract returns the routes defined in f, in pattern order and then match order. Matches with an empty route
// are dropped.
func (r *ExtractorRule) Extract(f source.File) []Route {
	var routes []Route
	var lines *LineIndex

	for _, p := range r.patterns {
		for _, loc := range p.Regex.FindAllStringSubmatchIndex(f.Content, -1) {
			indicator, route := methodAndRoute(p.Regex, f.Content, loc)
			if route == "" {
				continue
			}

			if lines == nil {
				lines = NewLineIndex(f.Content)
			}

			routes = append(routes, Route{
				Path:      f.Path,
				Line:      lines.Line(loc[0]),
				Framework: p.Framework,
				Method:    NormalizeMethod(indicator, p.Annotation),
				Endpoint:  route,
			})
		}
	}

	return routes
}

// methodAndRoute attributes the groups of a match. The named groups method and path win; otherwise two or more
// groups give the method indicator in group 1 and the route in group 2, and a single group is the route.
func methodAndRoute(re *regexp.Regexp, content string, loc []int) (indicator string, route string) {
	group := func(i int) string {
		if i <= 0 || 2*i+1 >= len(loc) || loc[2*i] < 0 {
			return ""
		}
		return content[loc[2*i]:loc[2*i+1]]
	}

	methodIdx := re.SubexpIndex("method")
	pathIdx := re.SubexpIndex("path")

	switch {
	case pathIdx > 0:
		return group(methodIdx), group(pathIdx)
	case re.NumSubexp() >= 2:
		return group(1), group(2)
	case re.NumSubexp() == 1:
		return "", group(1)
	}

	return "", ""
}

// NormalizeMethod turns a method indicator into a standard HTTP verb or ALL. Annotation indicators lose their
// Mapping suffix first, so GetMapping gives GET and RequestMapping gives ALL.
func NormalizeMethod(indicator string, annotation bool) string {
	method := strings.TrimSpace(indicator)
	if annotation && strings.HasSuffix(strings.ToLower(method), "mapping") {
		method = method[:len(method)-len("mapping")]
	}

	method = strings.ToUpper(method)
	if slices.Contains(httpMethods, method) {
		return method
	}

	return MethodAll
}
