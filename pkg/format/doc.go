// Package format reformats raw SQL statements into human-readable,
// consistently indented text.
//
// The formatter is a lexer plus pretty-printer: it consumes the token
// sequence produced by pkg/tokenizer in a single left-to-right pass and
// re-derives all whitespace from per-kind rules. It never validates or
// executes SQL, never builds a syntax tree, and tolerates malformed input —
// unterminated strings and comments, mismatched brackets — by degrading
// gracefully instead of failing. Format returns a string for any string
// input; the empty string formats to the empty string.
//
// Usage:
//
//	// One-shot functional API
//	out := format.Format("SELECT * FROM users WHERE id = 1", format.Options{})
//
//	// Reusable formatter with a dialect and parameters
//	f := format.New(format.Options{
//		Language: "n1ql",
//		Params:   format.NamedParams(map[string]string{"id": "42"}),
//	})
//	out := f.Format("SELECT * FROM tweets WHERE id = $id")
//
// Indentation is driven by a tagged stack: toplevel clause keywords (SELECT,
// FROM, WHERE) open one clause level, brackets open one nesting level, and
// closing a bracket discards any clause levels opened inside it. Short
// bracketed spans with no clause keywords render inline on a single line.
package format
