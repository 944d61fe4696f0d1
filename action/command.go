// File: command.go
// Title: Action Command Construction and Invocation
// Description: Builds a cobra command from a tool spec and its manifest,
//              registering one flag per declared input, and implements the
//              run sequence: resolve, log, validate required inputs, invoke
//              the action, and emit its outputs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package action

import (
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/actionkit/action/manifest"
	"github.com/msto63/actionkit/action/resolve"
	akerror "github.com/msto63/actionkit/core/error"
	"github.com/msto63/actionkit/core/log"
)

// maskedInputNames are input names that are always masked in logs, whether
// or not the manifest marks them sensitive
var maskedInputNames = []string{"token"}

// NewCommand builds a cobra command for the tool described by spec.
// The manifest is loaded immediately so that one string flag per declared
// input can be registered, with the manifest help text attached.
func NewCommand(spec Spec) (*cobra.Command, error) {
	return newCommand(spec, nil)
}

// newCommand is the shared construction path. When outputs is non-nil, the
// result mapping of a successful run is stored through it.
func newCommand(spec Spec, outputs *Outputs) (*cobra.Command, error) {
	spec = spec.normalized()
	if err := spec.validate(); err != nil {
		return nil, err
	}

	m, err := manifest.Load(spec.ManifestPath)
	if err != nil {
		return nil, akerror.Wrap(err, "failed to load tool manifest").
			WithCode(akerror.CodeManifestError).
			WithOperation("action.NewCommand").
			WithDetail("name", spec.Name)
	}

	cmd := &cobra.Command{
		Use:           spec.Name,
		Short:         spec.Description,
		Long:          spec.LongName + " - " + spec.Description,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := run(cmd, spec, m)
			if err != nil {
				return err
			}
			if outputs != nil {
				*outputs = out
			}
			return nil
		},
	}

	for _, in := range m.Inputs {
		cmd.Flags().String(in.Name, "", in.Description)
	}

	return cmd, nil
}

// Run executes the tool described by spec with the given command-line
// arguments and returns its output mapping
func Run(spec Spec, args []string) (Outputs, error) {
	var outputs Outputs
	cmd, err := newCommand(spec, &outputs)
	if err != nil {
		return nil, err
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	return outputs, nil
}

// Main is the entry point to be called from a tool's main function.
// It runs the tool with the process arguments and exits non-zero on failure.
func Main(spec Spec) {
	if _, err := Run(spec, os.Args[1:]); err != nil {
		spec.logger().LogError(err)
		os.Exit(1)
	}
}

// run performs one tool invocation: resolve inputs, log them, check
// required inputs, invoke the action, and emit its outputs
func run(cmd *cobra.Command, spec Spec, m *manifest.Manifest) (Outputs, error) {
	// Collect flags that were explicitly set
	flags := make(map[string]string)
	for _, in := range m.Inputs {
		if f := cmd.Flags().Lookup(in.Name); f != nil && f.Changed {
			flags[in.Name] = f.Value.String()
		}
	}

	resolver := &resolve.Resolver{Prefix: spec.EnvPrefix, Flags: flags}
	result := resolver.Resolve(m.Inputs)

	args := result.Map()
	if spec.SetDefaults != nil {
		args = spec.SetDefaults(args)
	}

	logger := spec.logger().
		WithName(spec.Name).
		WithRunID(uuid.NewString()).
		WithMasked(maskedNames(m)...)

	// Log every resolved value, sorted by name, before acting on missing
	// required inputs so the full resolution picture reaches the log
	logger.Info(spec.LongName+", with arguments", log.Int("count", len(args)))
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields := log.Field(name, args[name])
		if v, ok := result.Value(name); ok {
			fields = fields.With("source", v.Source.String())
		}
		logger.Info("argument", fields)
	}

	if len(result.Missing) > 0 {
		for _, name := range result.Missing {
			logger.Error("missing required argument", log.String("input", name))
		}
		return nil, akerror.New("some required arguments are missing").
			WithCode(akerror.CodeRequiredInput).
			WithOperation("action.Run").
			WithDetail("missing", strings.Join(result.Missing, ", "))
	}

	if spec.Do == nil {
		return Outputs{}, nil
	}

	outputs, err := spec.Do(args)
	if err != nil {
		return nil, akerror.Wrap(err, "action failed").
			WithCode(akerror.CodeActionFailed).
			WithOperation("action.Run").
			WithDetail("name", spec.Name)
	}

	if err := EmitOutputs(cmd.OutOrStdout(), outputs); err != nil {
		return nil, err
	}

	logger.Debug("action completed", log.Int("outputs", len(outputs)))
	return outputs, nil
}

// maskedNames returns the input names whose values must be masked in logs
func maskedNames(m *manifest.Manifest) []string {
	names := append([]string(nil), maskedInputNames...)
	for _, in := range m.Inputs {
		if in.Sensitive {
			names = append(names, in.Name)
		}
	}
	return names
}
