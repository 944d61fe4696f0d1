// File: output.go
// Title: Result Output Emission
// Description: Emits the result mapping of a tool run in the line-oriented
//              format scraped by the external orchestrator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package action

import (
	"fmt"
	"io"
	"sort"

	akerror "github.com/msto63/actionkit/core/error"
)

// OutputPrefix marks lines that the orchestrator intercepts and captures
const OutputPrefix = "::"

// EmitOutputs writes each output value twice, sorted by name: first in the
// orchestrator form `::set-output name=K::V`, then in the plain form
// `set-output name=K::V`.
//
// The orchestrator swallows every line starting with "::", so the plain
// duplicates are what test harnesses observing stdout get to see.
func EmitOutputs(w io.Writer, outputs Outputs) error {
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%sset-output name=%s::%s\n", OutputPrefix, name, outputs[name]); err != nil {
			return wrapEmitError(err, name)
		}
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "set-output name=%s::%s\n", name, outputs[name]); err != nil {
			return wrapEmitError(err, name)
		}
	}

	return nil
}

func wrapEmitError(err error, name string) error {
	return akerror.Wrap(err, "failed to emit output").
		WithCode(akerror.CodeOutputError).
		WithOperation("action.EmitOutputs").
		WithDetail("output", name)
}
