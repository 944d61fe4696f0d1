// File: doc.go
// Title: Package Documentation for manifest
// Description: Package manifest loads the declarative manifest file that
//              describes the inputs of a command-line automation tool.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

// Package manifest loads the declarative manifest file describing the inputs
// of a command-line automation tool.
//
// A manifest names the tool and declares its inputs, each with optional help
// text, default value, and required/sensitive flags. YAML is the canonical
// format (`action.yaml`); TOML manifests are supported as well, selected by
// file extension. Declaration order of inputs is preserved.
//
// Environment variable references embedded in string defaults (`${VAR}` or
// `$VAR`) are expanded against the process environment at load time, so a
// default such as '${GHE_TOKEN}' picks up the orchestrator-injected value.
//
// Example manifest:
//
//	---
//	name: 'SomeAction'
//	description: 'SomeAction automation tool.'
//	inputs:
//	  user:
//	    description: 'User name.'
//	    required: false
//	  token:
//	    description: 'API Key for the User.'
//	    default: '${GHE_TOKEN}'
//	    sensitive: true
package manifest
