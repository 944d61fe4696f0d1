// File: doc.go
// Title: Package Documentation for resolve
// Description: Package resolve computes effective parameter values from
//              command-line flags, environment variables, and manifest
//              defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

// Package resolve computes the effective value of each declared input by
// consulting, in precedence order:
//
//  1. the command-line flag supplied by the caller,
//  2. the environment (tool-specific name {PREFIX}_{NAME}, then the generic
//     fallback INPUT_{NAME}),
//  3. the manifest-declared default.
//
// Empty environment values are treated as unset, matching the behavior of
// automation environments that always export declared variables. Required
// inputs that resolve to nothing are collected rather than failing
// immediately, so the caller can log the full resolution picture before
// aborting.
package resolve
