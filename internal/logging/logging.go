// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides debug output for the CLI.
// Debug lines go to stderr so they never leak into redirected command output,
// and are gated by the SQLPREP_VERBOSE environment variable, which the commands
// set when --verbose (or the verbose config key) is enabled.
package logging

import (
	"fmt"
	"os"
)

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return os.Getenv("SQLPREP_VERBOSE") == "1"
}

// Debugf writes a debug line to stderr when verbose mode is enabled.
func Debugf(format string, args ...any) {
	if !Verbose() {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}
