// File: doc.go
// Title: Package Documentation for action
// Description: Package action wires manifest loading, parameter resolution,
//              and result emission into a runnable command-line tool.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

// Package action wires manifest loading, parameter resolution, and result
// emission into a runnable command-line tool.
//
// A tool declares itself through a Spec and hands control to Main:
//
//	func setDefaults(args map[string]string) map[string]string {
//		return args
//	}
//
//	func doAction(args map[string]string) (action.Outputs, error) {
//		return action.Outputs{"foo": "bar"}, nil
//	}
//
//	func main() {
//		action.Main(action.Spec{
//			ManifestPath: "action.yaml",
//			Name:         "foo",
//			LongName:     "foo bar",
//			Description:  "fubar",
//			SetDefaults:  setDefaults,
//			Do:           doAction,
//		})
//	}
//
// Running the tool resolves every input declared in the manifest with the
// precedence flag > environment > manifest default, logs the resolved values
// (masking sensitive ones), validates required inputs, invokes Do, and
// emits each output on stdout in both the orchestrator-prefixed and the
// plain form:
//
//	::set-output name=foo::bar
//	set-output name=foo::bar
package action
