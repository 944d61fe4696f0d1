// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the
//              logging layer can prioritize them appropriately.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, missing optional inputs
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: malformed manifest entries, unexpected output values
	SeverityMedium

	// SeverityHigh indicates a serious error that prevents the action from running
	// Examples: unreadable manifest, missing required inputs
	SeverityHigh

	// SeverityCritical indicates an error that makes the toolkit unusable
	// Examples: broken process environment
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeManifestError, CodeRequiredInput, CodeActionFailed:
		return SeverityHigh

	// Medium severity errors
	case CodeInvalidManifest, CodeOutputError, CodeInternal:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
