// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"regexp"

	"github.com/blang/semver/v4"
)

// Version is the version string printed by `stackscan version`. It is replaced at link time and MUST be of the
// form "<semver> (commit <full commit hash>)".
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

var versionRegex = regexp.MustCompile(`^(\S+) \(commit ([0-9a-f]{40})\)$`)

// VersionInfo returns the parsed semantic version, or false when Version is malformed.
func VersionInfo() (semver.Version, bool) {
	m := versionRegex.FindStringSubmatch(Version)
	if m == nil {
		return semver.Version{}, false
	}

	v, err := semver.Parse(m[1])
	if err != nil {
		return semver.Version{}, false
	}

	return v, true
}

// GetVersionNumber returns the semantic version part of Version, or "unknown".
func GetVersionNumber() string {
	v, ok := VersionInfo()
	if !ok {
		return "unknown"
	}

	return v.String()
}

// GetCommit returns the commit hash part of Version, or "unknown".
func GetCommit() string {
	m := versionRegex.FindStringSubmatch(Version)
	if m == nil {
		return "unknown"
	}

	return m[2]
}

// IsDevVersion reports whether this is a development build.
func IsDevVersion() bool {
	v, ok := VersionInfo()
	if !ok {
		return true
	}

	return v.Major == 0 && v.Minor == 0 && v.Patch == 0
}
