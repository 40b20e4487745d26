package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/dialect"
	. "github.com/LabhanshAgrawal/sql-formatter2/pkg/format"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"
)

func TestFormat_basicQueries(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name: "clause per line with indented body",
			sql:  "SELECT a, b FROM t WHERE a = 1 AND b = 2",
			expected: []string{
				"SELECT",
				"  a,",
				"  b",
				"FROM",
				"  t",
				"WHERE",
				"  a = 1",
				"  AND b = 2",
			},
		},
		{
			name: "keywords canonicalized to upper case",
			sql:  "select x from t",
			expected: []string{
				"SELECT",
				"  x",
				"FROM",
				"  t",
			},
		},
		{
			name: "member access keeps words bare",
			sql:  "SELECT t.limit FROM t",
			expected: []string{
				"SELECT",
				"  t.limit",
				"FROM",
				"  t",
			},
		},
		{
			name: "comma after LIMIT stays inline",
			sql:  "SELECT a FROM t LIMIT 10, 20",
			expected: []string{
				"SELECT",
				"  a",
				"FROM",
				"  t",
				"LIMIT",
				"  10, 20",
			},
		},
		{
			name: "semicolon separates statements",
			sql:  "SELECT 1; SELECT 2",
			expected: []string{
				"SELECT",
				"  1",
				";",
				"SELECT",
				"  2",
			},
		},
		{
			name: "short bracket group renders inline",
			sql:  "SELECT count(*) FROM t",
			expected: []string{
				"SELECT",
				"  count(*)",
				"FROM",
				"  t",
			},
		},
		{
			name: "subquery opens a nesting level",
			sql:  "SELECT * FROM (SELECT id FROM t) x",
			expected: []string{
				"SELECT",
				"  *",
				"FROM",
				"  (",
				"    SELECT",
				"      id",
				"    FROM",
				"      t",
				"  ) x",
			},
		},
		{
			name: "case when renders as a block",
			sql:  "SELECT CASE WHEN a THEN 1 ELSE 2 END FROM t",
			expected: []string{
				"SELECT",
				"  CASE",
				"    WHEN a THEN 1",
				"    ELSE 2",
				"  END",
				"FROM",
				"  t",
			},
		},
		{
			name: "joins continue on new lines",
			sql:  "SELECT * FROM a JOIN b ON a.id = b.id LEFT JOIN c ON c.id = a.id",
			expected: []string{
				"SELECT",
				"  *",
				"FROM",
				"  a",
				"  JOIN b ON a.id = b.id",
				"  LEFT JOIN c ON c.id = a.id",
			},
		},
		{
			name: "multi word keyword whitespace collapsed",
			sql:  "SELECT a FROM t ORDER\n\n   BY a",
			expected: []string{
				"SELECT",
				"  a",
				"FROM",
				"  t",
				"ORDER BY",
				"  a",
			},
		},
		{
			name: "line comment keeps its line",
			sql:  "SELECT a -- pick a\nFROM t",
			expected: []string{
				"SELECT",
				"  a -- pick a",
				"FROM",
				"  t",
			},
		},
		{
			name: "block comment on its own line",
			sql:  "SELECT a /* note */ FROM t",
			expected: []string{
				"SELECT",
				"  a",
				"  /* note */",
				"FROM",
				"  t",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.sql, Options{})
			require.Equal(t, strings.Join(tt.expected, "\n"), result)
		})
	}
}

func TestFormat_degradesGracefully(t *testing.T) {
	// Malformed SQL must format without panicking; the specific layout is
	// best-effort.
	inputs := []string{
		"",
		")",
		")))))",
		"((((",
		"SELECT 'unterminated",
		"/* never closed FROM WHERE",
		"; ; ;",
	}

	for _, sql := range inputs {
		require.NotPanics(t, func() {
			Format(sql, Options{})
		})
	}

	require.Equal(t, "", Format("", Options{}))
	require.Equal(t, "", Format("   \n\t  ", Options{}))
}

func TestFormat_customIndent(t *testing.T) {
	result := Format("SELECT a FROM t", Options{Indent: "    "})
	require.Equal(t, strings.Join([]string{
		"SELECT",
		"    a",
		"FROM",
		"    t",
	}, "\n"), result)
}

func TestFormat_dialects(t *testing.T) {
	t.Run("n1ql collection brackets", func(t *testing.T) {
		result := Format("SELECT fname FROM tweets USE KEYS ['dave', 'mike']", Options{Language: "n1ql"})
		require.Equal(t, strings.Join([]string{
			"SELECT",
			"  fname",
			"FROM",
			"  tweets",
			"USE KEYS",
			"  ['dave', 'mike']",
		}, "\n"), result)
	})

	t.Run("db2 fetch first is row limiting", func(t *testing.T) {
		result := Format("SELECT a FROM t FETCH FIRST 10, 20", Options{Language: "db2"})
		require.Contains(t, result, "10, 20")
	})

	t.Run("unknown language falls back to standard", func(t *testing.T) {
		require.Equal(t,
			Format("select 1", Options{}),
			Format("select 1", Options{Language: "no-such-dialect"}),
		)
	})
}

func TestFormat_stability(t *testing.T) {
	// Formatting only changes whitespace: re-tokenizing the formatted
	// output yields the same non-whitespace kind sequence as the input.
	queries := []string{
		"SELECT a, b FROM t WHERE a = 1 AND b = 2",
		"SELECT count(*) FROM (SELECT id FROM t) x LIMIT 10, 20",
		"INSERT INTO t (a, b) VALUES (1, 'two')",
	}

	tok := tokenizer.New(dialect.Standard.Tokenizer)
	for _, sql := range queries {
		first := nonWhitespaceKinds(tok.Tokenize(sql))
		formatted := Format(sql, Options{})
		second := nonWhitespaceKinds(tok.Tokenize(formatted))
		require.Equal(t, first, second, "query %q", sql)

		// And formatting is idempotent.
		require.Equal(t, formatted, Format(formatted, Options{}))
	}
}

func nonWhitespaceKinds(tokens []tokenizer.Token) []tokenizer.TokenKind {
	var kinds []tokenizer.TokenKind
	for _, tok := range tokens {
		if tok.Kind != tokenizer.Whitespace {
			kinds = append(kinds, tok.Kind)
		}
	}
	return kinds
}

func TestFormat_inlineBlockThreshold(t *testing.T) {
	// Under the 50 character threshold with no disqualifying tokens the
	// group renders on one line.
	result := Format("SELECT sum(a, b, c) FROM t", Options{})
	require.Contains(t, result, "sum(a, b, c)")

	// A toplevel keyword inside the brackets forces the multi-line form.
	result = Format("SELECT x FROM (SELECT y FROM t) z", Options{})
	require.Contains(t, result, "(\n")

	// A span over the threshold forces the multi-line form too.
	long := "SELECT f(aaaaaaaaaa, bbbbbbbbbb, cccccccccc, dddddddddd, eeeeeeeeee) FROM t"
	result = Format(long, Options{})
	require.Contains(t, result, "f(\n")
}
