// Package tokenizer converts raw SQL text into an ordered sequence of
// classified tokens.
//
// The tokenizer is total: it never fails, never validates grammar, and
// guarantees that the concatenation of all produced token texts covers the
// entire input (case aside — bracket and reserved-word tokens are upper-cased
// at creation time). Malformed input degrades gracefully: unterminated
// strings and block comments extend to the end of the input, and any
// character no other matcher claims becomes a single-character operator
// token.
//
// A Tokenizer is built once from a dialect Config and may be reused across
// calls; the compiled matchers are read-only after construction.
//
// Example usage:
//
//	t := tokenizer.New(tokenizer.Config{
//		ReservedToplevelWords: []string{"SELECT", "FROM"},
//		StringTypes:           []string{"''"},
//		OpenParens:            []string{"("},
//		CloseParens:           []string{")"},
//	})
//
//	for _, tok := range t.Tokenize("SELECT * FROM users") {
//		fmt.Printf("%s %q\n", tok.Kind, tok.Text)
//	}
package tokenizer

import "strings"

// Config describes a SQL dialect to the tokenizer. All fields are literal
// string sets supplied by an external dialect table; the zero value is a
// valid (if spartan) dialect that still tokenizes any input.
//
// Config is read once during New and never mutated afterwards, so a single
// Config value may safely back any number of Tokenizer instances.
type Config struct {
	// ReservedWords are plain reserved words with no layout behavior.
	ReservedWords []string

	// ReservedToplevelWords start major query clauses (SELECT, FROM, ...).
	ReservedToplevelWords []string

	// ReservedNewlineWords continue a clause on a new line (AND, JOIN, ...).
	ReservedNewlineWords []string

	// StringTypes selects the enabled quoting styles. Recognized values:
	// "``", "[]", `""`, "''", and "N''".
	StringTypes []string

	// OpenParens and CloseParens list bracket tokens. Multi-character,
	// word-shaped entries (e.g. CASE/END) are matched on word boundaries.
	OpenParens  []string
	CloseParens []string

	// IndexedPlaceholderTypes are prefixes for positional placeholders
	// (e.g. "?"), optionally followed by digits.
	IndexedPlaceholderTypes []string

	// NamedPlaceholderTypes are prefixes for named placeholders (e.g. "@",
	// ":"), followed by an identifier or a quoted string.
	NamedPlaceholderTypes []string

	// LineCommentTypes are line comment introducers (e.g. "--", "#").
	LineCommentTypes []string

	// SpecialWordChars are extra characters treated as part of a bare word
	// in addition to letters, digits, and underscore.
	SpecialWordChars string
}

// Tokenizer splits input text into tokens by trying a fixed, prioritized
// list of matchers at the current position; the first matcher that succeeds
// wins and the cursor advances past its match.
type Tokenizer struct {
	matchers []matchFunc
}

// New compiles the dialect configuration into a Tokenizer. Compilation is a
// one-time cost; the returned Tokenizer is immutable and safe for concurrent
// use.
func New(cfg Config) *Tokenizer {
	t := &Tokenizer{}

	// Priority order matters: earlier matchers shadow later ones.
	t.matchers = append(t.matchers, matchWhitespace())
	if m := matchLineComment(cfg.LineCommentTypes); m != nil {
		t.matchers = append(t.matchers, m)
	}
	t.matchers = append(t.matchers, matchBlockComment())
	if m := matchString(cfg.StringTypes); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchParen(OpenParen, cfg.OpenParens); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchParen(CloseParen, cfg.CloseParens); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchNamedPlaceholder(cfg.NamedPlaceholderTypes); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchStringNamedPlaceholder(cfg.NamedPlaceholderTypes); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchIndexedPlaceholder(cfg.IndexedPlaceholderTypes); m != nil {
		t.matchers = append(t.matchers, m)
	}
	t.matchers = append(t.matchers, matchNumber())
	if m := matchReserved(ReservedToplevel, cfg.ReservedToplevelWords); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchReserved(ReservedNewline, cfg.ReservedNewlineWords); m != nil {
		t.matchers = append(t.matchers, m)
	}
	if m := matchReserved(Reserved, cfg.ReservedWords); m != nil {
		t.matchers = append(t.matchers, m)
	}
	t.matchers = append(t.matchers, matchWord(cfg.SpecialWordChars))
	t.matchers = append(t.matchers, matchOperator())

	return t
}

// Tokenize splits input into an ordered token sequence. It always terminates
// and never fails: the operator fallback consumes one character of any
// otherwise unmatched input, so progress is guaranteed.
func (t *Tokenizer) Tokenize(input string) []Token {
	var tokens []Token
	var prev Token

	for len(input) > 0 {
		tok, width := t.next(input, prev)
		tokens = append(tokens, tok)
		prev = tok
		input = input[width:]
	}

	return tokens
}

func (t *Tokenizer) next(input string, prev Token) (Token, int) {
	for _, m := range t.matchers {
		if tok, width, ok := m(input, prev); ok {
			return tok, width
		}
	}

	// Unreachable: matchOperator accepts any non-empty input. Kept so a
	// future matcher-list change cannot loop forever.
	_, width := firstRune(input)
	return Token{Kind: Operator, Text: input[:width]}, width
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// upperIf returns text upper-cased when canonical is true. Bracket and
// reserved-word tokens are canonicalized so the printer emits uniform-case
// keywords regardless of input casing.
func upperIf(canonical bool, text string) string {
	if canonical {
		return strings.ToUpper(text)
	}
	return text
}
