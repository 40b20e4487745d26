package tokenizer

// TokenKind classifies a lexical token. The set is closed: every character of
// the input ends up in exactly one of these kinds, with Operator acting as the
// catch-all for anything no other matcher claims.
type TokenKind int

const (
	// Whitespace is a run of spaces, tabs, and newlines.
	Whitespace TokenKind = iota

	// Word is a bare identifier or any non-reserved word.
	Word

	// String is a quoted string literal, in any of the dialect's enabled
	// quoting styles.
	String

	// Reserved is a plain reserved word with no special layout behavior.
	Reserved

	// ReservedToplevel is a reserved word that starts a major query clause
	// (SELECT, FROM, WHERE, ...). It is placed at the enclosing indent and
	// opens one extra indent level for the clause body.
	ReservedToplevel

	// ReservedNewline is a reserved word that continues a clause on a fresh
	// line without changing the indent level (AND, OR, JOIN variants, ...).
	ReservedNewline

	// Operator is punctuation or an operator, including the single-character
	// fallback for otherwise unmatched input.
	Operator

	// OpenParen is an opening bracket token, including word-shaped
	// pseudo-brackets such as CASE.
	OpenParen

	// CloseParen is a closing bracket token, including word-shaped
	// pseudo-brackets such as END.
	CloseParen

	// LineComment is a comment running to the end of the line.
	LineComment

	// BlockComment is a /* ... */ comment, possibly unterminated.
	BlockComment

	// Number is a numeric literal (decimal, hex, or binary).
	Number

	// Placeholder is a deferred value resolved from parameters at format
	// time.
	Placeholder
)

var kindNames = map[TokenKind]string{
	Whitespace:       "whitespace",
	Word:             "word",
	String:           "string",
	Reserved:         "reserved",
	ReservedToplevel: "reserved-toplevel",
	ReservedNewline:  "reserved-newline",
	Operator:         "operator",
	OpenParen:        "open-paren",
	CloseParen:       "close-paren",
	LineComment:      "line-comment",
	BlockComment:     "block-comment",
	Number:           "number",
	Placeholder:      "placeholder",
}

// String returns a human-readable name for the kind.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is an immutable lexical unit produced by the Tokenizer.
//
// Text is the matched input text; for brackets and reserved words it is
// upper-cased at creation time so the printer can emit canonical-case
// keywords regardless of input casing. Key is populated only for Placeholder
// tokens and holds the lookup name or index embedded in the placeholder
// syntax.
type Token struct {
	Kind TokenKind
	Text string
	Key  string
}

// Empty reports whether the token is the zero value, i.e. no token at all.
func (t Token) Empty() bool {
	return t.Kind == Whitespace && t.Text == ""
}
