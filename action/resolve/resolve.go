// File: resolve.go
// Title: Parameter Resolution Implementation
// Description: Implements three-tier parameter resolution (flag, environment,
//              manifest default), environment variable name derivation from
//              the tool prefix, and required-input validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package resolve

import (
	"os"
	"strings"

	"github.com/msto63/actionkit/action/manifest"
	"github.com/msto63/actionkit/utils/stringx"
)

// FallbackEnvPrefix is the generic prefix consulted after the tool-specific
// one. Automation environments inject declared inputs as INPUT_{NAME}.
const FallbackEnvPrefix = "INPUT"

// Source identifies where a resolved value came from
type Source int

const (
	// SourceUnset means no layer produced a value
	SourceUnset Source = iota

	// SourceFlag means the value came from an explicit command-line flag
	SourceFlag

	// SourceEnvironment means the value came from an environment variable
	SourceEnvironment

	// SourceDefault means the value came from the manifest default
	SourceDefault
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceUnset:
		return "unset"
	case SourceFlag:
		return "flag"
	case SourceEnvironment:
		return "environment"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Env resolves an environment variable according to priority.
//
// Each name in names is attempted until one resolves to a non-empty value,
// which is returned. If none resolves, fallback is returned. Empty values
// count as unset.
func Env(names []string, fallback string) string {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return fallback
}

// NormalizePrefix converts a tool name or prefix to environment variable
// form: spaces are removed and the result is uppercased
func NormalizePrefix(prefix string) string {
	return strings.ToUpper(strings.ReplaceAll(prefix, " ", ""))
}

// EnvNames derives the ordered environment variable candidates for an input:
// the tool-specific {PREFIX}_{NAME} first, then the generic INPUT_{NAME}
func EnvNames(prefix, input string) []string {
	key := stringx.ToEnvKey(input)
	names := make([]string, 0, 2)
	if p := NormalizePrefix(prefix); p != "" && p != FallbackEnvPrefix {
		names = append(names, p+"_"+key)
	}
	return append(names, FallbackEnvPrefix+"_"+key)
}

// Resolver computes effective values for declared inputs
type Resolver struct {
	// Prefix is the tool-specific environment prefix, normally the tool name
	Prefix string

	// Flags holds values of flags that were explicitly set on the command
	// line, keyed by input name
	Flags map[string]string
}

// Value is the resolution outcome for a single input
type Value struct {
	// Name is the input name
	Name string

	// Value is the effective value, empty when unresolved
	Value string

	// Source is the layer that produced the value
	Source Source
}

// Result holds the outcome of resolving all declared inputs
type Result struct {
	// Values holds the resolution outcome per input, in declaration order
	Values []Value

	// Missing lists required inputs that did not resolve, in declaration
	// order. A non-empty list is not an error by itself; callers decide
	// when to act on it.
	Missing []string
}

// Map returns the resolved values as a name-to-value map.
// Unresolved inputs are present with an empty value.
func (r *Result) Map() map[string]string {
	m := make(map[string]string, len(r.Values))
	for _, v := range r.Values {
		m[v.Name] = v.Value
	}
	return m
}

// Value returns the resolution outcome for the named input
func (r *Result) Value(name string) (Value, bool) {
	for _, v := range r.Values {
		if v.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Resolve computes the effective value for every declared input with the
// precedence flag > environment > manifest default
func (r *Resolver) Resolve(inputs []manifest.Input) *Result {
	result := &Result{
		Values: make([]Value, 0, len(inputs)),
	}

	for _, in := range inputs {
		v := Value{Name: in.Name, Source: SourceUnset}

		switch {
		case r.flagValue(in.Name, &v):
			v.Source = SourceFlag
		case r.envValue(in.Name, &v):
			v.Source = SourceEnvironment
		case in.HasDefault && in.Default != "":
			v.Value = in.Default
			v.Source = SourceDefault
		}

		if in.Required && v.Source == SourceUnset {
			result.Missing = append(result.Missing, in.Name)
		}

		result.Values = append(result.Values, v)
	}

	return result
}

// flagValue fills v from an explicitly set command-line flag
func (r *Resolver) flagValue(name string, v *Value) bool {
	if r.Flags == nil {
		return false
	}
	value, ok := r.Flags[name]
	if !ok {
		return false
	}
	v.Value = value
	return true
}

// envValue fills v from the environment candidates for name
func (r *Resolver) envValue(name string, v *Value) bool {
	value := Env(EnvNames(r.Prefix, name), "")
	if value == "" {
		return false
	}
	v.Value = value
	return true
}
