package config_test

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/LabhanshAgrawal/sql-formatter2/pkg/config"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/format"
)

//go:embed testdata/sqlfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		require.Equal(t, "n1ql", config.Language)
		require.Equal(t, 4, config.Indent)
		require.Equal(t, map[string]string{
			"user_id": "42",
			"name":    "'Bob'",
		}, config.Params.Named)
		require.Empty(t, config.Params.Positional)
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, "sql", config.Language)
		require.Equal(t, DefaultIndentWidth, config.Indent)
	})

	t.Run("partial", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("language: db2\n"))
		require.NoError(t, err)
		require.Equal(t, "db2", config.Language)
		require.Equal(t, DefaultIndentWidth, config.Indent)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("language: [unclosed"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to unmarshal sqlfmt config")
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile("testdata/does-not-exist.yaml")
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		config, err := LoadConfigFile("testdata/sqlfmt.yaml")
		require.NoError(t, err)
		require.Equal(t, "n1ql", config.Language)
	})
}

func TestFormatOptions(t *testing.T) {
	t.Run("indent and language", func(t *testing.T) {
		cfg := &Config{Language: "db2", Indent: 4}
		opts := cfg.FormatOptions()
		require.Equal(t, "db2", opts.Language)
		require.Equal(t, "    ", opts.Indent)
		require.Nil(t, opts.Params)
	})

	t.Run("named params win over positional", func(t *testing.T) {
		cfg := Default()
		cfg.Params.Named = map[string]string{"id": "1"}
		cfg.Params.Positional = []string{"ignored"}

		opts := cfg.FormatOptions()
		require.NotNil(t, opts.Params)
		require.Equal(t, "SELECT\n  1", format.Format("SELECT :id", opts))
	})
}
