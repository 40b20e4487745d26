// Package cmd provides CLI commands for the sqlfmt tool.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format SQL files, directory trees, or stdin
//   - tokens: Dump the token stream for a file (dialect debugging)
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are registered
// into the fx graph via Module and collected by Run, which wires them into
// the root application.
//
// # Example Usage
//
//	sqlfmt fmt query.sql                   # Format a file to stdout
//	sqlfmt fmt -w db/                      # Rewrite all .sql files in a tree
//	sqlfmt fmt --check db/                 # Fail if anything is unformatted
//	echo 'SELECT 1' | sqlfmt fmt -l n1ql   # Format stdin as N1QL
//	sqlfmt tokens query.sql                # Inspect tokenization
//
// Formatting is configured by an optional .sqlfmt.yaml in the working
// directory (language, indent width, placeholder parameters); flags override
// the file.
package cmd
