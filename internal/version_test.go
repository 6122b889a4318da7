// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionNumber(t *testing.T) {
	require.Equal(t, "0.0.0-dev.0", GetVersionNumber())
	require.Equal(t, "0000000000000000000000000000000000000000", GetCommit())
	require.True(t, IsDevVersion())

	orig := Version
	defer func() { Version = orig }()

	Version = "1.4.2 (commit 3f2a9c1d5b6e7f8091a2b3c4d5e6f708192a3b4c)"
	require.Equal(t, "1.4.2", GetVersionNumber())
	require.Equal(t, "3f2a9c1d5b6e7f8091a2b3c4d5e6f708192a3b4c", GetCommit())
	require.False(t, IsDevVersion())

	Version = "invalid"
	require.Equal(t, "unknown", GetVersionNumber())
	require.Equal(t, "unknown", GetCommit())

	Version = ""
	require.Equal(t, "unknown", GetVersionNumber())
}
