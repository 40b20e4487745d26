// Package config loads project configuration for the sqlfmt CLI from a
// .sqlfmt.yaml file. The file is optional: every field has a sensible
// default, and the CLI runs without any configuration at all.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/format"
)

// FileName is the configuration file sqlfmt looks for in the working
// directory.
const FileName = ".sqlfmt.yaml"

// DefaultIndentWidth is the number of spaces per indent level when the file
// does not specify one.
const DefaultIndentWidth = 2

type (
	// Params configures placeholder substitution. When both named and
	// positional values are present, named wins: a file that sets both is
	// almost certainly a mistake, and named lookups are the safer
	// interpretation.
	Params struct {
		// Named maps placeholder names to substitution strings
		Named map[string]string `yaml:"named,omitempty"`

		// Positional lists substitution strings consumed in placeholder
		// appearance order
		Positional []string `yaml:"positional,omitempty"`
	}

	// Config represents the project configuration for SQL formatting.
	Config struct {
		// Language selects the SQL dialect (sql, db2, n1ql, pl/sql)
		Language string `yaml:"language,omitempty"`

		// Indent is the number of spaces per indent level
		Indent int `yaml:"indent,omitempty"`

		// Params supplies placeholder substitution values
		Params Params `yaml:"params,omitempty"`
	}
)

// Default returns the configuration used when no .sqlfmt.yaml is present.
func Default() *Config {
	return &Config{Language: "sql", Indent: DefaultIndentWidth}
}

// LoadConfig parses a configuration from the provided io.Reader. Missing
// fields receive defaults; malformed YAML is reported as a wrapped error.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to unmarshal sqlfmt config")
	}

	if cfg.Language == "" {
		cfg.Language = "sql"
	}
	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndentWidth
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. This is
// a convenience wrapper around LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatOptions converts the configuration into formatter options.
func (c *Config) FormatOptions() format.Options {
	opts := format.Options{
		Indent:   strings.Repeat(" ", c.Indent),
		Language: c.Language,
	}

	switch {
	case len(c.Params.Named) > 0:
		opts.Params = format.NamedParams(c.Params.Named)
	case len(c.Params.Positional) > 0:
		opts.Params = format.PositionalParams(c.Params.Positional...)
	}

	return opts
}
