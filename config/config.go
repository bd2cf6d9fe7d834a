// Package config provides configuration loading and management for ontogen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontogen configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Emit   EmitConfig   `yaml:"emit"`
	Names  NamesConfig  `yaml:"names"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures where and how headers are written
type OutputConfig struct {
	// Path is the output root (empty = current directory)
	Path string `yaml:"path"`
	// Extension is appended to every header file name (default: .h)
	Extension string `yaml:"extension" validate:"required,startswith=.,excludesall=/\\"`
	// Verify parses every header as C++ before writing it
	Verify bool `yaml:"verify"`
}

// EmitConfig configures the layout of emitted headers
type EmitConfig struct {
	// OuterNamespace wraps all class namespaces (default: Nepomuk2)
	OuterNamespace string `yaml:"outer_namespace" validate:"required,cpp_identifier"`
	// BaseClass is the class parentless classes derive from
	BaseClass string `yaml:"base_class" validate:"required,cpp_qualified"`
	// BaseInclude is the include path of BaseClass
	BaseInclude string `yaml:"base_include" validate:"required"`
	// CommentWidth is the wrap column of doc comment text (default: 50)
	CommentWidth int `yaml:"comment_width" validate:"min=10,max=200"`
}

// NamesConfig extends the identifier tables
type NamesConfig struct {
	// Overrides maps property or class URIs to fixed identifiers
	Overrides map[string]string `yaml:"overrides" validate:"dive,keys,required,endkeys,cpp_identifier"`
	// Keywords are extra reserved words getters must not be named after
	Keywords []string `yaml:"keywords" validate:"dive,cpp_identifier"`
}

// LogConfig configures diagnostics
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Quiet only reports errors
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path:      "", // Current directory
			Extension: ".h",
		},
		Emit: EmitConfig{
			OuterNamespace: "Nepomuk2",
			BaseClass:      "Nepomuk2::SimpleResource",
			BaseInclude:    "Nepomuk2/SimpleResource",
			CommentWidth:   50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	layer, err := readFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Merge(layer)
	return config, nil
}

// readFile parses a YAML file without applying defaults, so that unset
// fields do not override earlier layers when merged.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// Boolean switches can only be turned on by a later layer.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Extension != "" {
		c.Output.Extension = other.Output.Extension
	}
	if other.Output.Verify {
		c.Output.Verify = true
	}

	// Emit
	if other.Emit.OuterNamespace != "" {
		c.Emit.OuterNamespace = other.Emit.OuterNamespace
	}
	if other.Emit.BaseClass != "" {
		c.Emit.BaseClass = other.Emit.BaseClass
	}
	if other.Emit.BaseInclude != "" {
		c.Emit.BaseInclude = other.Emit.BaseInclude
	}
	if other.Emit.CommentWidth != 0 {
		c.Emit.CommentWidth = other.Emit.CommentWidth
	}

	// Names: overrides accumulate, later layers win per URI
	if len(other.Names.Overrides) > 0 {
		if c.Names.Overrides == nil {
			c.Names.Overrides = make(map[string]string, len(other.Names.Overrides))
		}
		for uri, name := range other.Names.Overrides {
			c.Names.Overrides[uri] = name
		}
	}
	for _, kw := range other.Names.Keywords {
		if !contains(c.Names.Keywords, kw) {
			c.Names.Keywords = append(c.Names.Keywords, kw)
		}
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Quiet {
		c.Log.Quiet = true
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
