// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the
//              actionkit toolkit with error codes, severity levels, and
//              contextual details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

// Package error provides structured error handling for the actionkit toolkit.
//
// Errors carry a categorizing Code, a Severity, the failing operation, and a
// details map, while remaining fully compatible with the standard library
// error interface and errors.Is/As/Unwrap.
//
// Usage:
//
//	import akerror "github.com/msto63/actionkit/core/error"
//
//	// Create a new error with context
//	err := akerror.New("manifest file not found").
//		WithCode(akerror.CodeNotFound).
//		WithOperation("manifest.Load").
//		WithDetail("path", "action.yaml")
//
//	// Wrap an existing error
//	wrapped := akerror.Wrap(err, "failed to build command").
//		WithCode(akerror.CodeManifestError)
//
//	// Check error codes
//	if akerror.HasCode(err, akerror.CodeRequiredInput) {
//		// Handle missing required inputs
//	}
package error
