// File: action_test.go
// Title: Action Invocation Tests
// Description: End-to-end tests for the action runner covering flag and
//              environment precedence, default handling, required-input
//              validation, sensitive-value masking, hook invocation, and
//              output emission.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package action

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	akerror "github.com/msto63/actionkit/core/error"
	"github.com/msto63/actionkit/core/log"
)

const testManifest = `---
name: 'foo'
description: 'foo automation tool.'
inputs:
  user:
    description: 'User name.'
    required: true
  token:
    description: 'API Key for the User.'
    default: '${GHE_TOKEN}'
  greeting:
    description: 'Greeting template.'
    default: 'hello'
`

// writeManifest writes content into a temp dir and returns its path
func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "action.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test manifest: %v", err)
	}
	return path
}

// quietLogger returns a text logger writing into buf instead of stderr
func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  log.LevelDebug,
		Format: log.FormatText,
		Output: buf,
	})
}

// execute builds the command for spec and runs it with args, capturing
// stdout and the resulting output mapping
func execute(t *testing.T, spec Spec, args ...string) (Outputs, string, error) {
	t.Helper()

	var outputs Outputs
	cmd, err := newCommand(spec, &outputs)
	if err != nil {
		return nil, "", err
	}

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outputs, stdout.String(), err
}

func TestRunResolutionPrecedence(t *testing.T) {
	path := writeManifest(t, testManifest)

	var captured map[string]string
	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Do: func(args map[string]string) (Outputs, error) {
			captured = args
			return Outputs{}, nil
		},
		Logger: quietLogger(&bytes.Buffer{}),
	}

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("FOO_USER", "env-user")

		_, _, err := execute(t, spec, "--user", "flag-user")
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if captured["user"] != "flag-user" {
			t.Errorf("user = %q, want flag-user", captured["user"])
		}
	})

	t.Run("tool env beats generic env", func(t *testing.T) {
		t.Setenv("FOO_USER", "tool-user")
		t.Setenv("INPUT_USER", "generic-user")

		_, _, err := execute(t, spec)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if captured["user"] != "tool-user" {
			t.Errorf("user = %q, want tool-user", captured["user"])
		}
	})

	t.Run("manifest default used last", func(t *testing.T) {
		t.Setenv("INPUT_USER", "generic-user")

		_, _, err := execute(t, spec)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if captured["greeting"] != "hello" {
			t.Errorf("greeting = %q, want hello", captured["greeting"])
		}
	})

	t.Run("expanded default from environment", func(t *testing.T) {
		t.Setenv("INPUT_USER", "generic-user")
		t.Setenv("GHE_TOKEN", "tok-789")

		_, _, err := execute(t, spec)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if captured["token"] != "tok-789" {
			t.Errorf("token = %q, want tok-789", captured["token"])
		}
	})
}

func TestRunMissingRequired(t *testing.T) {
	path := writeManifest(t, testManifest)

	var logBuf bytes.Buffer
	doCalled := false
	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Do: func(args map[string]string) (Outputs, error) {
			doCalled = true
			return Outputs{}, nil
		},
		Logger: quietLogger(&logBuf),
	}

	_, _, err := execute(t, spec)
	if err == nil {
		t.Fatal("execute should fail when a required input is missing")
	}
	if !akerror.HasCode(err, akerror.CodeRequiredInput) {
		t.Errorf("error code = %v, want %v", akerror.GetCode(err), akerror.CodeRequiredInput)
	}
	if doCalled {
		t.Error("Do must not run when required inputs are missing")
	}

	output := logBuf.String()

	// Resolved values are logged before the failure
	if !strings.Contains(output, "greeting=hello") {
		t.Errorf("log should contain resolved values before the failure: %s", output)
	}
	if !strings.Contains(output, "missing required argument") {
		t.Errorf("log should name the missing argument: %s", output)
	}
	if !strings.Contains(output, "input=user") {
		t.Errorf("log should identify input user as missing: %s", output)
	}
}

func TestRunMasking(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
  token:
    default: 'builtin-secret'
  api-key:
    sensitive: true
    default: 'declared-secret'
`)

	var logBuf bytes.Buffer
	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Logger:       quietLogger(&logBuf),
	}

	_, _, err := execute(t, spec, "--user", "alice")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	output := logBuf.String()

	if strings.Contains(output, "builtin-secret") {
		t.Errorf("token value leaked into logs: %s", output)
	}
	if strings.Contains(output, "declared-secret") {
		t.Errorf("sensitive input value leaked into logs: %s", output)
	}
	if !strings.Contains(output, "token="+log.MaskValue) {
		t.Errorf("token should be logged masked: %s", output)
	}
	if !strings.Contains(output, "api-key="+log.MaskValue) {
		t.Errorf("api-key should be logged masked: %s", output)
	}
	if !strings.Contains(output, "user=alice") {
		t.Errorf("regular values should be logged in the clear: %s", output)
	}
}

func TestRunSetDefaultsHook(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
`)

	var captured map[string]string
	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		SetDefaults: func(args map[string]string) map[string]string {
			if args["user"] == "" {
				args["user"] = "computed-user"
			}
			args["extra"] = "added"
			return args
		},
		Do: func(args map[string]string) (Outputs, error) {
			captured = args
			return Outputs{}, nil
		},
		Logger: quietLogger(&bytes.Buffer{}),
	}

	_, _, err := execute(t, spec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if captured["user"] != "computed-user" {
		t.Errorf("user = %q, want computed-user", captured["user"])
	}
	if captured["extra"] != "added" {
		t.Errorf("extra = %q, want added", captured["extra"])
	}
}

func TestRunOutputEmission(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
`)

	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Do: func(args map[string]string) (Outputs, error) {
			return Outputs{"result": "ok", "count": "2"}, nil
		},
		Logger: quietLogger(&bytes.Buffer{}),
	}

	outputs, stdout, err := execute(t, spec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if outputs["result"] != "ok" {
		t.Errorf("outputs[result] = %q, want ok", outputs["result"])
	}

	wantLines := []string{
		"::set-output name=count::2",
		"::set-output name=result::ok",
		"set-output name=count::2",
		"set-output name=result::ok",
	}
	for _, line := range wantLines {
		if !strings.Contains(stdout, line+"\n") {
			t.Errorf("stdout missing line %q:\n%s", line, stdout)
		}
	}
}

func TestRunWithoutDo(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
`)

	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Logger:       quietLogger(&bytes.Buffer{}),
	}

	outputs, stdout, err := execute(t, spec)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if len(outputs) != 0 {
		t.Errorf("outputs = %v, want empty", outputs)
	}
	if strings.Contains(stdout, "set-output") {
		t.Errorf("no output lines expected without Do:\n%s", stdout)
	}
}

func TestRunDoFailure(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
`)

	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Do: func(args map[string]string) (Outputs, error) {
			return nil, errors.New("backend unavailable")
		},
		Logger: quietLogger(&bytes.Buffer{}),
	}

	_, _, err := execute(t, spec)
	if err == nil {
		t.Fatal("execute should propagate the action failure")
	}
	if !akerror.HasCode(err, akerror.CodeActionFailed) {
		t.Errorf("error code = %v, want %v", akerror.GetCode(err), akerror.CodeActionFailed)
	}
	if !strings.Contains(err.Error(), "backend unavailable") {
		t.Errorf("error should carry the cause: %v", err)
	}
}

func TestSpecNormalization(t *testing.T) {
	spec := Spec{Name: "foo", ManifestPath: "action.yaml"}
	n := spec.normalized()

	if n.LongName != "foo" || n.Description != "foo" || n.EnvPrefix != "foo" {
		t.Errorf("normalized() = %+v, want LongName/Description/EnvPrefix defaulted to foo", n)
	}

	spec = Spec{Name: "foo", LongName: "foo bar", Description: "fubar", EnvPrefix: "FB", ManifestPath: "action.yaml"}
	n = spec.normalized()

	if n.LongName != "foo bar" || n.Description != "fubar" || n.EnvPrefix != "FB" {
		t.Errorf("normalized() = %+v, want explicit values preserved", n)
	}
}

func TestNewCommandValidation(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := NewCommand(Spec{ManifestPath: "action.yaml"})
		if !akerror.HasCode(err, akerror.CodeInvalidInput) {
			t.Errorf("error code = %v, want %v", akerror.GetCode(err), akerror.CodeInvalidInput)
		}
	})

	t.Run("missing manifest path", func(t *testing.T) {
		_, err := NewCommand(Spec{Name: "foo"})
		if !akerror.HasCode(err, akerror.CodeInvalidInput) {
			t.Errorf("error code = %v, want %v", akerror.GetCode(err), akerror.CodeInvalidInput)
		}
	})

	t.Run("manifest not found", func(t *testing.T) {
		_, err := NewCommand(Spec{Name: "foo", ManifestPath: filepath.Join(t.TempDir(), "missing.yaml")})
		if !akerror.HasCode(err, akerror.CodeManifestError) {
			t.Errorf("error code = %v, want %v", akerror.GetCode(err), akerror.CodeManifestError)
		}
	})
}

func TestNewCommandFlagRegistration(t *testing.T) {
	path := writeManifest(t, testManifest)

	cmd, err := NewCommand(Spec{Name: "foo", ManifestPath: path})
	if err != nil {
		t.Fatalf("NewCommand() failed: %v", err)
	}

	for _, name := range []string{"user", "token", "greeting"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("flag --%s not registered", name)
			continue
		}
		if f.DefValue != "" {
			t.Errorf("flag --%s default = %q, want empty (defaults resolve at run time)", name, f.DefValue)
		}
	}

	if f := cmd.Flags().Lookup("user"); f != nil && f.Usage != "User name." {
		t.Errorf("flag --user usage = %q, want manifest help text", f.Usage)
	}
}

func TestRunViaPublicAPI(t *testing.T) {
	path := writeManifest(t, `---
name: 'foo'
inputs:
  user:
    required: true
`)

	spec := Spec{
		ManifestPath: path,
		Name:         "foo",
		Do: func(args map[string]string) (Outputs, error) {
			return Outputs{"echo": args["user"]}, nil
		},
		Logger: quietLogger(&bytes.Buffer{}),
	}

	outputs, err := Run(spec, []string{"--user", "alice"})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if outputs["echo"] != "alice" {
		t.Errorf("outputs[echo] = %q, want alice", outputs["echo"])
	}

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Run(spec, []string{"--no-such-flag", "x"})
		if err == nil {
			t.Fatal("Run() should fail on unknown flags")
		}
	})
}
