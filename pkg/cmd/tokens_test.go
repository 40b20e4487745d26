package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/consts"
)

func runTokens(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	command := tokensCmd()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(stdin),
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func TestTokensCommand_Stdin(t *testing.T) {
	output, err := runTokens(t, "select x")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "reserved-toplevel")
	require.Contains(t, lines[0], `"SELECT"`)
	require.Contains(t, lines[1], "whitespace")
	require.Contains(t, lines[2], "word")
	require.Contains(t, lines[2], `"x"`)
}

func TestTokensCommand_PlaceholderKey(t *testing.T) {
	output, err := runTokens(t, "@name")
	require.NoError(t, err)
	require.Contains(t, output, "placeholder")
	require.Contains(t, output, `key="name"`)
}

func TestTokensCommand_File(t *testing.T) {
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "query.sql")
	err := os.WriteFile(sqlFile, []byte("select 1"), consts.ModeFile)
	require.NoError(t, err)

	output, err := runTokens(t, "", sqlFile)
	require.NoError(t, err)
	require.Contains(t, output, "reserved-toplevel")
	require.Contains(t, output, "number")
}

func TestTokensCommand_Language(t *testing.T) {
	// $ starts a placeholder in N1QL but is just an operator character in
	// standard SQL.
	output, err := runTokens(t, "$id", "-l", "n1ql")
	require.NoError(t, err)
	require.Contains(t, output, "placeholder")

	output, err = runTokens(t, "$id")
	require.NoError(t, err)
	require.NotContains(t, output, "placeholder")
}

func TestTokensCommand_MissingFile(t *testing.T) {
	_, err := runTokens(t, "", filepath.Join(t.TempDir(), "nope.sql"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read file")
}
