// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the text and JSON formatters and format parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "inputs resolved")
	entry.Logger = "greeting"
	entry.RunID = "run-42"
	entry.Fields = Fields{"user": "alice", "count": 2}

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	output := string(data)

	for _, want := range []string{"[INF]", "{greeting}", "(run=run-42)", "inputs resolved", "count=2 user=alice"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q in: %s", want, output)
		}
	}

	if !strings.HasSuffix(output, "\n") {
		t.Error("text output should end with a newline")
	}
}

func TestTextFormatterError(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelError, "action failed")
	entry.Error = errors.New("boom")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.Contains(string(data), `error="boom"`) {
		t.Errorf("output missing error field: %s", data)
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelWarn, "default expanded to empty")
	entry.Logger = "manifest"
	entry.Fields = Fields{"input": "token"}

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["level"] != "warn" {
		t.Errorf("level = %v, want warn", decoded["level"])
	}
	if decoded["logger"] != "manifest" {
		t.Errorf("logger = %v, want manifest", decoded["logger"])
	}
	if decoded["input"] != "token" {
		t.Errorf("input = %v, want token", decoded["input"])
	}
	if _, ok := decoded["run_id"]; ok {
		t.Error("empty run_id should be omitted")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" json ", FormatJSON, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return a JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return a TextFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*TextFormatter); !ok {
		t.Error("GetFormatter should fall back to text for unknown formats")
	}
}
