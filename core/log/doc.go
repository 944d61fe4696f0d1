// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides leveled, structured logging for the
//              actionkit toolkit with pluggable formatters and masking of
//              sensitive field values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

// Package log provides leveled, structured logging for the actionkit toolkit.
//
// Loggers are configured through clone-based With* methods, so derived
// loggers never mutate their parent. Output format is pluggable (text for
// interactive use, JSON for machine consumption). Field values whose keys
// are registered via WithMasked render as a fixed mask string, which keeps
// secrets such as API tokens out of orchestrator logs.
//
// Usage:
//
//	logger := log.New().
//		WithName("my-action").
//		WithLevel(log.LevelDebug).
//		WithMasked("token")
//
//	logger.Info("resolved input", log.Field("token", secret)) // token=********
package log
