// File: manifest.go
// Title: Manifest Reader Implementation
// Description: Implements loading and parsing of tool manifests from YAML
//              and TOML files, including format auto-detection, input
//              declaration ordering, and expansion of environment variable
//              references embedded in default values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-15
// Modified: 2025-02-15
//
// Change History:
// - 2025-02-15 v0.1.0: Initial implementation

package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	akerror "github.com/msto63/actionkit/core/error"
	"github.com/msto63/actionkit/utils/stringx"
)

// Format represents the manifest file format
type Format int

const (
	// FormatAuto auto-detects format from file extension
	FormatAuto Format = iota

	// FormatYAML represents YAML format (default)
	FormatYAML

	// FormatTOML represents TOML format
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Input describes a single declared parameter of a tool
type Input struct {
	// Name is the declared parameter name as it appears in the manifest
	Name string

	// Description is the help text for the parameter
	Description string

	// Default is the declared default value with embedded environment
	// variable references already expanded. Only meaningful when
	// HasDefault is true.
	Default string

	// HasDefault reports whether the manifest declared a default at all,
	// distinguishing "no default" from "default is empty"
	HasDefault bool

	// Required marks the parameter as mandatory
	Required bool

	// Sensitive marks the parameter value for masking in logs
	Sensitive bool
}

// Manifest describes a tool and its declared inputs
type Manifest struct {
	// Name is the tool name from the manifest
	Name string

	// Description is the tool description from the manifest
	Description string

	// Inputs holds the declared parameters in declaration order
	Inputs []Input
}

// Input returns the declared input with the given name
func (m *Manifest) Input(name string) (*Input, bool) {
	for i := range m.Inputs {
		if m.Inputs[i].Name == name {
			return &m.Inputs[i], true
		}
	}
	return nil, false
}

// Names returns the input names in declaration order
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Inputs))
	for i := range m.Inputs {
		names[i] = m.Inputs[i].Name
	}
	return names
}

// Load loads a manifest from a file, detecting the format from the extension
func Load(path string) (*Manifest, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads a manifest from a file with an explicit format
func LoadWithFormat(path string, format Format) (*Manifest, error) {
	if stringx.IsBlank(path) {
		return nil, akerror.New("manifest path cannot be empty").
			WithCode(akerror.CodeInvalidInput).
			WithOperation("manifest.Load")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, akerror.Newf("manifest file not found: %s", path).
			WithCode(akerror.CodeNotFound).
			WithOperation("manifest.Load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, akerror.Wrap(err, "failed to read manifest file").
			WithCode(akerror.CodeManifestError).
			WithOperation("manifest.Load").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	m, err := Parse(content, format)
	if err != nil {
		if akErr, ok := err.(*akerror.Error); ok {
			return nil, akErr.WithDetail("path", path)
		}
		return nil, err
	}
	return m, nil
}

// LoadFromString parses a manifest from a string with the specified format
func LoadFromString(content string, format Format) (*Manifest, error) {
	return Parse([]byte(content), format)
}

// detectFormat determines the manifest format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		// action.yaml is the canonical manifest name
		return FormatYAML
	}
}

// Parse parses manifest content in the given format
func Parse(content []byte, format Format) (*Manifest, error) {
	switch format {
	case FormatTOML:
		return parseTOML(content)
	case FormatYAML, FormatAuto:
		return parseYAML(content)
	default:
		return nil, akerror.Newf("unsupported manifest format: %s", format).
			WithCode(akerror.CodeInvalidManifest).
			WithOperation("manifest.Parse")
	}
}

// inputSpec is the on-disk shape of a single input declaration.
// "help" is accepted as an alternative key for the help text.
type inputSpec struct {
	Description string      `yaml:"description" toml:"description"`
	Help        string      `yaml:"help" toml:"help"`
	Default     interface{} `yaml:"default" toml:"default"`
	Required    bool        `yaml:"required" toml:"required"`
	Sensitive   bool        `yaml:"sensitive" toml:"sensitive"`
}

// toInput converts an on-disk input declaration to an Input, expanding
// environment references in string defaults
func (s *inputSpec) toInput(name string) Input {
	in := Input{
		Name:        name,
		Description: stringx.FirstNonBlank(s.Description, s.Help),
		Required:    s.Required,
		Sensitive:   s.Sensitive,
	}

	if s.Default != nil {
		in.HasDefault = true
		if str, ok := s.Default.(string); ok {
			// Only string defaults carry ${VAR} references
			in.Default = os.ExpandEnv(str)
		} else {
			in.Default = fmt.Sprintf("%v", s.Default)
		}
	}

	return in
}

// parseYAML parses a YAML manifest, walking the inputs mapping node directly
// so that declaration order is preserved
func parseYAML(content []byte) (*Manifest, error) {
	var doc struct {
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Inputs      yaml.Node `yaml:"inputs"`
	}

	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, akerror.Wrap(err, "YAML parse error").
			WithCode(akerror.CodeInvalidManifest).
			WithOperation("manifest.Parse").
			WithDetail("format", "yaml")
	}

	m := &Manifest{
		Name:        doc.Name,
		Description: doc.Description,
	}

	// No inputs section declared
	if doc.Inputs.Kind == 0 || doc.Inputs.Tag == "!!null" {
		return m, nil
	}

	if doc.Inputs.Kind != yaml.MappingNode {
		return nil, akerror.New("manifest inputs must be a mapping").
			WithCode(akerror.CodeInvalidManifest).
			WithOperation("manifest.Parse").
			WithDetail("format", "yaml")
	}

	seen := make(map[string]struct{})
	for i := 0; i+1 < len(doc.Inputs.Content); i += 2 {
		keyNode := doc.Inputs.Content[i]
		valNode := doc.Inputs.Content[i+1]

		name := keyNode.Value
		if stringx.IsBlank(name) {
			return nil, akerror.New("manifest input name cannot be blank").
				WithCode(akerror.CodeInvalidManifest).
				WithOperation("manifest.Parse").
				WithDetail("line", keyNode.Line)
		}
		if _, ok := seen[name]; ok {
			return nil, akerror.Newf("duplicate manifest input: %s", name).
				WithCode(akerror.CodeInvalidManifest).
				WithOperation("manifest.Parse").
				WithDetail("input", name)
		}
		seen[name] = struct{}{}

		var spec inputSpec
		if valNode.Tag != "!!null" {
			if err := valNode.Decode(&spec); err != nil {
				return nil, akerror.Wrap(err, fmt.Sprintf("invalid declaration for input %q", name)).
					WithCode(akerror.CodeInvalidManifest).
					WithOperation("manifest.Parse").
					WithDetail("input", name)
			}
		}

		m.Inputs = append(m.Inputs, spec.toInput(name))
	}

	return m, nil
}

// parseTOML parses a TOML manifest, recovering declaration order from the
// decoder metadata
func parseTOML(content []byte) (*Manifest, error) {
	var doc struct {
		Name        string               `toml:"name"`
		Description string               `toml:"description"`
		Inputs      map[string]inputSpec `toml:"inputs"`
	}

	md, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, akerror.Wrap(err, "TOML parse error").
			WithCode(akerror.CodeInvalidManifest).
			WithOperation("manifest.Parse").
			WithDetail("format", "toml")
	}

	m := &Manifest{
		Name:        doc.Name,
		Description: doc.Description,
	}

	// md.Keys() lists keys in file order; [inputs.user] appears as the
	// two-element key {"inputs", "user"}
	seen := make(map[string]struct{})
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "inputs" {
			continue
		}
		name := key[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		spec, ok := doc.Inputs[name]
		if !ok {
			continue
		}
		m.Inputs = append(m.Inputs, spec.toInput(name))
	}

	return m, nil
}
