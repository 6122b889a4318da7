// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rules

// ignorePatterns are evaluated against slash-separated paths relative to the scan root. Directories are
// tested with a trailing slash, so directory rules match path segments and never file names such as
// build.gradle.
var ignorePatterns = []string{
	// tests and fixtures
	`(?i)(^|/)(__tests__|__mocks__|tests?|testing|fixtures?|spec)/`,
	`(?i)\.test\.(js|ts)x?$`,
	`(?i)\.(spec|e2e)\.(js|ts)x?$`,
	`(?i)_test\.go$`,
	`(?i)(^|/)test_[^/]*\.py$`,
	`Tests?\.cs$`,
	`Test\.java$`,

	// dependency, vendored and build output directories
	`(^|/)(node_modules|bower_components|vendor|dist|build|target|coverage)/`,
	`(^|/)\.(next|nuxt|gradle|venv|tox)/`,
	`(^|/)(venv|__pycache__)/`,

	// VCS metadata
	`(^|/)\.(git|hg|svn)/`,

	// minified assets
	`(?i)\.min\.(js|css)$`,
	`(?i)\.bundle\.js$`,
}
