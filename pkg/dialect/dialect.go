// Package dialect holds the per-SQL-variant configuration tables consumed by
// the tokenizer and formatter.
//
// A Dialect is pure data: reserved-word vocabularies split by layout
// priority, enabled quoting styles, bracket pairs, placeholder prefixes, and
// the couple of printing constants that vary by variant. Tables are built
// once as package-level values and never mutated; they are passed explicitly
// into the tokenizer rather than referenced as ambient state, so multiple
// dialects coexist safely in one process.
package dialect

import (
	"strings"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"
)

// Dialect describes one SQL variant.
type Dialect struct {
	// Name is the tag used to look the dialect up (e.g. "n1ql").
	Name string

	// Tokenizer is the lexical configuration for this variant.
	Tokenizer tokenizer.Config

	// LimitKeywords are the row-limiting clause keywords after which a comma
	// does not break the line (compared case-insensitively against the most
	// recent toplevel/newline reserved word).
	LimitKeywords []string

	// MaxInlineLength is the maximum character length of a bracketed span
	// that may still be rendered on a single line.
	MaxInlineLength int
}

// IsLimitKeyword reports whether word is one of the dialect's row-limiting
// clause keywords. Internal whitespace in word is expected to be already
// collapsed to single spaces.
func (d *Dialect) IsLimitKeyword(word string) bool {
	for _, kw := range d.LimitKeywords {
		if strings.EqualFold(word, kw) {
			return true
		}
	}
	return false
}

// Get returns the dialect table for the given language tag. Unknown or empty
// tags fall back to the standard dialect: formatting must never fail, so an
// unrecognized tag simply means generic SQL.
func Get(language string) *Dialect {
	switch strings.ToLower(language) {
	case "db2":
		return DB2
	case "n1ql":
		return N1QL
	case "pl/sql", "plsql":
		return PLSQL
	default:
		return Standard
	}
}

// Names lists the recognized language tags, for CLI help output.
func Names() []string {
	return []string{"sql", "db2", "n1ql", "pl/sql"}
}
