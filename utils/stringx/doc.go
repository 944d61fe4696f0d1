// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of string helpers used
//              across the actionkit toolkit, mainly blank-checking and
//              environment-variable key derivation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

// Package stringx provides extended string operations for the actionkit toolkit.
//
// The helpers here back input validation (IsBlank, IsNotBlank), ordered
// fallback selection (FirstNonBlank), and the derivation of environment
// variable names from manifest input names (ToEnvKey).
package stringx
