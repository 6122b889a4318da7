// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/stackscan/pkg/osutil"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnoreRules(t *testing.T) {
	f := New([]*regexp.Regexp{
		regexp.MustCompile(`(^|/)(node_modules|build)/`),
		regexp.MustCompile(`(?i)\.min\.js$`),
	})

	require.True(t, f.ShouldIgnore("node_modules", true))
	require.True(t, f.ShouldIgnore("web/build", true))
	require.False(t, f.ShouldIgnore("build.gradle", false))
	require.True(t, f.ShouldIgnore("static/app.MIN.js", false))
	require.False(t, f.ShouldIgnore("static/app.js", false))
	require.False(t, f.ShouldIgnore(".", true))
}

func TestShouldIgnoreExcludePatterns(t *testing.T) {
	f := New(nil, WithExcludePatterns("examples/**", "**/*.generated.go"))

	require.True(t, f.ShouldIgnore("examples", true))
	require.True(t, f.ShouldIgnore("examples/a/b.js", false))
	require.True(t, f.ShouldIgnore("pkg/api/types.generated.go", false))
	require.False(t, f.ShouldIgnore("pkg/api/types.go", false))
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	require.False(t, f.ShouldIgnore("node_modules", true))
}

func TestReadIgnoreFiles(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), osutil.PermissionDirectory))

	require.NoError(t, os.WriteFile(filepath.Join(parent, FileName), []byte("*.log\n"), osutil.PermissionFile))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(heredoc.Doc(`
		# generated sources
		generated/
		secret.txt
	`)), osutil.PermissionFile))

	matchers, err := ReadIgnoreFiles(root)
	require.NoError(t, err)
	require.Len(t, matchers, 2)

	f := New(nil, WithIgnoreFiles(root, matchers))

	require.True(t, f.ShouldIgnore("generated", true))
	require.True(t, f.ShouldIgnore("src/secret.txt", false))
	require.True(t, f.ShouldIgnore("src/debug.log", false))
	require.False(t, f.ShouldIgnore("src/main.go", false))
}

func TestReadIgnoreFilesNone(t *testing.T) {
	matchers, err := ReadIgnoreFiles(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, matchers)
}
