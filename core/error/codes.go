// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for categorizing errors across
//              the actionkit toolkit. Codes enable consistent error handling
//              by callers and stable matching in tests.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

// General error codes
const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
)

// Manifest error codes
const (
	CodeManifestError   Code = "MANIFEST_ERROR"
	CodeInvalidManifest Code = "INVALID_MANIFEST"
)

// Resolution error codes
const (
	CodeRequiredInput    Code = "REQUIRED_INPUT"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// Action execution error codes
const (
	CodeActionFailed Code = "ACTION_FAILED"
	CodeOutputError  Code = "OUTPUT_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeManifestError, CodeInvalidManifest,
		CodeRequiredInput, CodeEnvironmentError,
		CodeActionFailed, CodeOutputError:
		return true
	default:
		return false
	}
}

// AllCodes returns all defined error codes
func AllCodes() []Code {
	return []Code{
		CodeUnknown,
		CodeInternal,
		CodeNotFound,
		CodeInvalidInput,
		CodeManifestError,
		CodeInvalidManifest,
		CodeRequiredInput,
		CodeEnvironmentError,
		CodeActionFailed,
		CodeOutputError,
	}
}
