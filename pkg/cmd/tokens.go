package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/dialect"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"
)

// tokensCmd creates a debug command that dumps the token stream for a SQL
// file (or stdin), one token per line. Useful for inspecting how a dialect
// table classifies input before the printer gets involved.
//
// Example:
//
//	$ echo 'SELECT x FROM t -- hi' | sqlfmt tokens
//	reserved-toplevel  "SELECT"
//	whitespace         " "
//	word               "x"
//	...
func tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Dump the token stream for a SQL file",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "SQL dialect",
				Value:   "sql",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := readInput(cmd)
			if err != nil {
				return err
			}

			d := dialect.Get(cmd.String("language"))
			t := tokenizer.New(d.Tokenizer)

			for _, tok := range t.Tokenize(input) {
				if tok.Kind == tokenizer.Placeholder {
					fmt.Fprintf(cmd.Writer, "%-18s %q key=%q\n", tok.Kind, tok.Text, tok.Key)
					continue
				}
				fmt.Fprintf(cmd.Writer, "%-18s %q\n", tok.Kind, tok.Text)
			}

			return nil
		},
	}
}

func readInput(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() == 0 {
		input, err := io.ReadAll(cmd.Reader)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(input), nil
	}

	path := cmd.Args().First()
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}
	return string(content), nil
}
