// File: spec.go
// Title: Action Specification
// Description: Defines the Spec type describing a command-line automation
//              tool: its manifest location, naming, environment prefix, and
//              the caller-supplied hooks that implement its behavior.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package action

import (
	akerror "github.com/msto63/actionkit/core/error"
	"github.com/msto63/actionkit/core/log"
	"github.com/msto63/actionkit/utils/stringx"
)

// Outputs holds the named result values produced by a tool run
type Outputs map[string]string

// SetDefaultsFunc adjusts the resolved argument mapping before the action
// runs, typically filling computed defaults
type SetDefaultsFunc func(args map[string]string) map[string]string

// DoFunc performs the action and returns its result mapping
type DoFunc func(args map[string]string) (Outputs, error)

// Spec describes a command-line automation tool. Various fields and
// functions which control the behaviour of the tool.
type Spec struct {
	// ManifestPath is the path to the manifest file declaring the
	// tool's inputs
	ManifestPath string

	// Name is the (short) name of the tool
	Name string

	// LongName is the longer name of the tool. Defaults to Name.
	LongName string

	// Description describes the tool. Defaults to Name.
	Description string

	// EnvPrefix is the prefix used when resolving tool-specific
	// environment variables. Defaults to Name.
	EnvPrefix string

	// SetDefaults, when set, adjusts the resolved arguments before the
	// action runs
	SetDefaults SetDefaultsFunc

	// Do, when set, performs the action
	Do DoFunc

	// Logger overrides the default logger for this tool
	Logger *log.Logger
}

// normalized returns a copy of the spec with empty optional fields filled
// from Name
func (s Spec) normalized() Spec {
	s.LongName = stringx.FirstNonBlank(s.LongName, s.Name)
	s.Description = stringx.FirstNonBlank(s.Description, s.Name)
	s.EnvPrefix = stringx.FirstNonBlank(s.EnvPrefix, s.Name)
	return s
}

// validate checks that the mandatory spec fields are set
func (s Spec) validate() error {
	if stringx.IsBlank(s.Name) {
		return akerror.New("spec name cannot be empty").
			WithCode(akerror.CodeInvalidInput).
			WithOperation("action.NewCommand")
	}
	if stringx.IsBlank(s.ManifestPath) {
		return akerror.New("spec manifest path cannot be empty").
			WithCode(akerror.CodeInvalidInput).
			WithOperation("action.NewCommand").
			WithDetail("name", s.Name)
	}
	return nil
}

// logger returns the spec's logger, falling back to the package default
func (s Spec) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.GetDefault()
}
