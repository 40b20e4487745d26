package tokenizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"
)

// testConfig exercises every matcher family: reserved classes, all quote
// styles, word parens, both placeholder flavors, comments, and extra word
// characters.
func testConfig() Config {
	return Config{
		ReservedWords:           []string{"AS", "ON", "THEN", "LIMIT", "BETWEEN"},
		ReservedToplevelWords:   []string{"SELECT", "FROM", "GROUP BY", "ORDER BY", "UNION ALL", "UNION", "WHERE"},
		ReservedNewlineWords:    []string{"AND", "OR", "LEFT JOIN", "JOIN", "WHEN"},
		StringTypes:             []string{`""`, "N''", "''", "``", "[]"},
		OpenParens:              []string{"(", "CASE"},
		CloseParens:             []string{")", "END"},
		IndexedPlaceholderTypes: []string{"?"},
		NamedPlaceholderTypes:   []string{"@", ":"},
		LineCommentTypes:        []string{"#", "--"},
	}
}

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenize_Coverage(t *testing.T) {
	// Concatenating all token texts must reproduce the input exactly, up to
	// the upper-casing of brackets and reserved words.
	inputs := []string{
		"",
		"select * from t where a = 1",
		"SELECT 'unterminated",
		"/* never closed",
		"*/ stray close",
		"a..b...c",
		"(((((((((x",
		")))))",
		"order\n\tby x",
		"col1,col2 , col3",
		"€ ¥ weird ¤ bytes",
		"-- comment without newline",
		"N'national' `tick` [brack]et \"d\"",
		"?1 ?2 @name :key @`quo ted`",
		"0x1F 0b101 -42 3.14 10",
	}

	tok := New(testConfig())
	for _, input := range inputs {
		var joined strings.Builder
		for _, tk := range tok.Tokenize(input) {
			joined.WriteString(tk.Text)
		}
		require.True(t, strings.EqualFold(joined.String(), input),
			"token texts %q must cover input %q", joined.String(), input)
	}
}

func TestTokenize_Termination(t *testing.T) {
	// Pathological inputs still terminate with one token per match.
	tok := New(Config{})
	tokens := tok.Tokenize(strings.Repeat("\x00", 64))
	require.Len(t, tokens, 64)
	for _, tk := range tokens {
		require.Equal(t, Operator, tk.Kind)
	}
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []TokenKind
	}{
		{
			name: "simple select",
			sql:  "SELECT a FROM t",
			expected: []TokenKind{
				ReservedToplevel, Whitespace, Word, Whitespace,
				ReservedToplevel, Whitespace, Word,
			},
		},
		{
			name: "multi word clause",
			sql:  "GROUP BY x",
			expected: []TokenKind{
				ReservedToplevel, Whitespace, Word,
			},
		},
		{
			name: "operators and punctuation",
			sql:  "a != b; c",
			expected: []TokenKind{
				Word, Whitespace, Operator, Whitespace, Word,
				Operator, Whitespace, Word,
			},
		},
		{
			name: "strings and numbers",
			sql:  "'str' 42 0x2A",
			expected: []TokenKind{
				String, Whitespace, Number, Whitespace, Number,
			},
		},
		{
			name: "comments",
			sql:  "a -- line\n/* block */",
			expected: []TokenKind{
				Word, Whitespace, LineComment, BlockComment,
			},
		},
		{
			name: "case end as brackets",
			sql:  "CASE x END",
			expected: []TokenKind{
				OpenParen, Whitespace, Word, Whitespace, CloseParen,
			},
		},
	}

	tok := New(testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, kindsOf(tok.Tokenize(tt.sql)))
		})
	}
}

func TestTokenize_UppercasesReservedAndBrackets(t *testing.T) {
	tok := New(testConfig())

	tokens := tok.Tokenize("select myCol from t where x between case and end")
	byText := map[string]TokenKind{}
	for _, tk := range tokens {
		byText[tk.Text] = tk.Kind
	}

	require.Contains(t, byText, "SELECT")
	require.Contains(t, byText, "FROM")
	require.Contains(t, byText, "WHERE")
	require.Contains(t, byText, "BETWEEN")
	require.Contains(t, byText, "CASE")
	require.Contains(t, byText, "END")
	// Non-reserved tokens keep their original case.
	require.Contains(t, byText, "myCol")
	require.NotContains(t, byText, "MYCOL")
}

func TestTokenize_DotRule(t *testing.T) {
	tok := New(testConfig())

	// A word following a member-access dot is never reserved, even when it
	// collides with a keyword.
	tokens := tok.Tokenize("t.limit")
	require.Equal(t, []TokenKind{Word, Operator, Word}, kindsOf(tokens))
	require.Equal(t, "limit", tokens[2].Text)

	// Without the dot the same word is reserved.
	tokens = tok.Tokenize("t limit")
	require.Equal(t, []TokenKind{Word, Whitespace, Reserved}, kindsOf(tokens))
	require.Equal(t, "LIMIT", tokens[2].Text)
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{name: "single quoted", sql: "'abc'", want: "'abc'"},
		{name: "doubled quote escape", sql: "'it''s'", want: "'it''s'"},
		{name: "backslash escape", sql: `'a\'b'`, want: `'a\'b'`},
		{name: "double quoted", sql: `"col name"`, want: `"col name"`},
		{name: "backtick", sql: "`tbl`", want: "`tbl`"},
		{name: "bracket quoted", sql: "[col]", want: "[col]"},
		{name: "doubled bracket escape", sql: "[a]]b]", want: "[a]]b]"},
		{name: "national string", sql: "N'abc'", want: "N'abc'"},
		{name: "unterminated runs to end", sql: "'never ends", want: "'never ends"},
	}

	tok := New(testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tok.Tokenize(tt.sql)
			require.NotEmpty(t, tokens)
			require.Equal(t, String, tokens[0].Kind)
			require.Equal(t, tt.want, tokens[0].Text)
		})
	}
}

func TestTokenize_Comments(t *testing.T) {
	tok := New(testConfig())

	tokens := tok.Tokenize("-- to end of line\nx")
	require.Equal(t, LineComment, tokens[0].Kind)
	require.Equal(t, "-- to end of line\n", tokens[0].Text)

	tokens = tok.Tokenize("# hash style")
	require.Equal(t, LineComment, tokens[0].Kind)

	tokens = tok.Tokenize("/* multi\nline */")
	require.Equal(t, []TokenKind{BlockComment}, kindsOf(tokens))

	tokens = tok.Tokenize("/* unterminated")
	require.Equal(t, []TokenKind{BlockComment}, kindsOf(tokens))
	require.Equal(t, "/* unterminated", tokens[0].Text)
}

func TestTokenize_PlaceholderKeys(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		key  string
	}{
		{name: "named identifier", sql: "@name", key: "name"},
		{name: "named with colon", sql: ":user_id", key: "user_id"},
		{name: "named dotted", sql: "@a.b.c", key: "a.b.c"},
		{name: "quoted name", sql: "@`var name`", key: "var name"},
		{name: "quoted with escape", sql: `@'it\'s'`, key: "it's"},
		{name: "indexed bare", sql: "?", key: ""},
		{name: "indexed with digits", sql: "?42", key: "42"},
	}

	tok := New(testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tok.Tokenize(tt.sql)
			require.NotEmpty(t, tokens)
			require.Equal(t, Placeholder, tokens[0].Kind)
			require.Equal(t, tt.key, tokens[0].Key)
		})
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tok := New(testConfig())

	for _, sql := range []string{"42", "3.14", "-9", "0x2A", "0b101"} {
		tokens := tok.Tokenize(sql)
		require.Equal(t, []TokenKind{Number}, kindsOf(tokens), "input %q", sql)
	}

	// A number glued to word characters is a word, not a number.
	tokens := tok.Tokenize("42abc")
	require.Equal(t, []TokenKind{Word}, kindsOf(tokens))
}

func TestTokenize_MultiWordReservedAcrossWhitespace(t *testing.T) {
	tok := New(testConfig())

	tokens := tok.Tokenize("order\n   by x")
	require.Equal(t, ReservedToplevel, tokens[0].Kind)
	require.Equal(t, "ORDER\n   BY", tokens[0].Text)

	// UNION ALL wins over UNION regardless of declaration order.
	tokens = tok.Tokenize("union all")
	require.Equal(t, []TokenKind{ReservedToplevel}, kindsOf(tokens))
	require.Equal(t, "UNION ALL", tokens[0].Text)
}

func TestTokenize_SpecialWordChars(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialWordChars = "#@"
	tok := New(cfg)

	// With # as a word character the line-comment matcher still wins at the
	// start of a token, but an embedded # stays inside the word.
	tokens := tok.Tokenize("col#1")
	require.Equal(t, []TokenKind{Word}, kindsOf(tokens))
}
