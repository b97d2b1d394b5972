// Copyright (c) 2025 Sqlprep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages.
//
// Error() returns only the message (plus any wrapped cause) because several
// messages are part of the CLI's contract with the invoking pipeline and must be
// printed byte-exact; the kind is available on the struct for programmatic checks.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// Usage indicates the command was invoked with the wrong arguments.
	Usage Kind = "usage"
	// NotFound indicates a required input file does not exist.
	NotFound Kind = "not_found"
	// ConfigInvalid indicates the merged configuration is unusable.
	ConfigInvalid Kind = "config_invalid"
	// IOFailed indicates reading or writing a file failed mid-run.
	IOFailed Kind = "io_failed"
)

// E wraps an error with a kind and a human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
