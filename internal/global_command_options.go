// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

type GlobalCommandOptions struct {
	// EnableDebugLogging indicates you should turn on verbose/debug logging in your command. It's enabled with
	// `--debug`, for any command.
	EnableDebugLogging bool
}
