// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetenvOrDefault(t *testing.T) {
	t.Setenv("STACKSCAN_OSUTIL_TEST", "value")
	require.Equal(t, "value", GetenvOrDefault("STACKSCAN_OSUTIL_TEST", "default"))

	t.Setenv("STACKSCAN_OSUTIL_TEST", "")
	require.Equal(t, "", GetenvOrDefault("STACKSCAN_OSUTIL_TEST", "default"))

	require.Equal(t, "default", GetenvOrDefault("STACKSCAN_OSUTIL_TEST_UNSET", "default"))
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), PermissionFile))

	require.True(t, FileExists(file))
	require.False(t, FileExists(root))
	require.False(t, FileExists(filepath.Join(root, "missing")))

	require.True(t, DirExists(root))
	require.False(t, DirExists(file))
}
