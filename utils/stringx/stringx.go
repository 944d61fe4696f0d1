// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations used by the actionkit
//              toolkit: blank checks, ordered fallbacks, environment key
//              derivation, and Unicode-safe truncation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first string that is not blank.
// Returns an empty string if all candidates are blank.
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ToEnvKey converts a name to environment-variable key form.
// The name is uppercased, surrounding whitespace is trimmed, and characters
// that cannot appear in environment variable names ('-', '.', ' ') are
// replaced by underscores: "api-key" -> "API_KEY", "user.name" -> "USER_NAME".
func ToEnvKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '-' || r == '.' || r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Truncate truncates a string to the specified length, adding an ellipsis if
// truncated. The function is Unicode-aware and will not break multi-byte
// characters. If the string is shorter than maxLen, it returns the original.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	ellipsisRunes := []rune(ellipsis)
	if len(ellipsisRunes) >= maxLen {
		return string(ellipsisRunes[:maxLen])
	}

	return string(runes[:maxLen-len(ellipsisRunes)]) + ellipsis
}
