package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/config"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/consts"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/dialect"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/format"
)

// fmtCmd creates the CLI command for formatting SQL. It provides
// gofmt-like behavior for SQL files: format a single file, a directory tree
// of .sql files, or stdin when no path is given.
//
// Output modes:
//   - Stdout mode (default): formatted SQL is written to standard output
//   - Write mode (-w): files are rewritten in place
//   - Check mode (--check): nothing is written; files whose formatting
//     differs are listed and the command fails
//
// Examples:
//
//	# Format a query from stdin
//	echo 'SELECT * FROM t' | sqlfmt fmt
//
//	# Format a file in-place using the N1QL dialect
//	sqlfmt fmt -w -l n1ql query.sql
//
//	# Verify a directory tree is formatted
//	sqlfmt fmt --check db/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files or stdin",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "List files whose formatting differs and exit non-zero",
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "SQL dialect (" + strings.Join(dialect.Names(), ", ") + ")",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "Spaces per indent level",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a config file (default: " + config.FileName + " in the working directory)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String("config"); path != "" {
				loaded, err := config.LoadConfigFile(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			opts := resolveOptions(cfg, cmd)

			if cmd.Args().Len() == 0 {
				return formatStdin(cmd.Reader, cmd.Writer, opts)
			}
			if cmd.Args().Len() != 1 {
				return errors.New("at most one path argument is allowed")
			}

			mode := fmtMode{
				write: cmd.Bool("write"),
				check: cmd.Bool("check"),
			}
			return formatPath(cmd.Args().First(), mode, cmd.Writer, opts)
		},
	}
}

// fmtMode selects what happens with the formatted output.
type fmtMode struct {
	write bool
	check bool
}

// resolveOptions layers command-line flags over the project configuration.
func resolveOptions(cfg *config.Config, cmd *cli.Command) format.Options {
	if cfg == nil {
		cfg = config.Default()
	}

	opts := cfg.FormatOptions()
	if lang := cmd.String("language"); lang != "" {
		opts.Language = lang
	}
	if n := cmd.Int("indent"); n > 0 {
		opts.Indent = strings.Repeat(" ", int(n))
	}

	return opts
}

func formatStdin(r io.Reader, w io.Writer, opts format.Options) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	if _, err := fmt.Fprintln(w, format.Format(string(input), opts)); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}
	return nil
}

// formatPath handles formatting of either a single file or a directory
// tree, dispatching per the mode.
func formatPath(path string, mode fmtMode, w io.Writer, opts format.Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = collectSQLFiles(path); err != nil {
			return err
		}
	}

	var unformatted []string
	for _, file := range files {
		changed, err := formatFile(file, mode, w, opts)
		if err != nil {
			return errors.Wrapf(err, "failed to format file: %s", file)
		}
		if changed {
			unformatted = append(unformatted, file)
		}
	}

	if mode.check && len(unformatted) > 0 {
		warn := color.New(color.FgYellow)
		for _, file := range unformatted {
			warn.Fprintln(w, file)
		}
		return errors.Errorf("%d file(s) are not formatted", len(unformatted))
	}

	return nil
}

// collectSQLFiles walks dir recursively and returns all .sql files in
// lexicographical order for consistent behavior across platforms.
func collectSQLFiles(dir string) ([]string, error) {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	return sqlFiles, nil
}

// formatFile formats a single SQL file. The returned bool reports whether
// the formatted output differs from the file content.
func formatFile(path string, mode fmtMode, w io.Writer, opts format.Options) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted := format.Format(string(content), opts) + "\n"
	changed := formatted != string(content)

	switch {
	case mode.check:
		// Reported in aggregate by formatPath.
	case mode.write:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
				return changed, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
			}
		}
	default:
		if _, err := fmt.Fprint(w, formatted); err != nil {
			return changed, errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return changed, nil
}
