package dialect

import "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"

// N1QL is the Couchbase N1QL dialect. It adds [] and {} as bracket pairs for
// collection and object constructors and uses $ for both named and
// positional placeholders.
var N1QL = &Dialect{
	Name: "n1ql",
	Tokenizer: tokenizer.Config{
		ReservedWords: []string{
			"ALL", "ALTER", "ANALYZE", "AND", "ANY", "ARRAY", "AS", "ASC",
			"BEGIN", "BETWEEN", "BINARY", "BOOLEAN", "BREAK", "BUCKET",
			"BUILD", "BY", "CALL", "CASE", "CAST", "CLUSTER", "COLLATE",
			"COLLECTION", "COMMIT", "CONNECT", "CONTINUE", "CORRELATE",
			"COVER", "CREATE", "DATABASE", "DATASET", "DATASTORE", "DECLARE",
			"DECREMENT", "DERIVED", "DESC", "DESCRIBE", "DISTINCT", "DO",
			"DROP", "EACH", "ELEMENT", "ELSE", "END", "EVERY", "EXCLUDE",
			"EXECUTE", "EXISTS", "FALSE", "FETCH", "FIRST", "FLATTEN", "FOR",
			"FORCE", "FUNCTION", "GRANT", "GROUP", "GSI", "IF", "IGNORE",
			"ILIKE", "IN", "INCLUDE", "INCREMENT", "INDEX", "INLINE", "INNER",
			"INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY", "KEYS",
			"KEYSPACE", "KNOWN", "LAST", "LEFT", "LETTING", "LIKE", "LSM",
			"MAP", "MAPPING", "MATCHED", "MATERIALIZED", "MINUS", "MISSING",
			"NAMESPACE", "NEST", "NOT", "NULL", "NUMBER", "OBJECT", "OFFSET",
			"ON", "OPTION", "OR", "ORDER", "OUTER", "OVER", "PARSE",
			"PARTITION", "PASSWORD", "PATH", "POOL", "PREPARE", "PRIMARY",
			"PRIVATE", "PRIVILEGE", "PROCEDURE", "PUBLIC", "RAW", "REALM",
			"REDUCE", "RENAME", "RETURN", "RETURNING", "REVOKE", "RIGHT",
			"ROLE", "ROLLBACK", "SATISFIES", "SCHEMA", "SELF", "SEMI",
			"SOME", "START", "STATISTICS", "STRING", "SYSTEM", "THEN", "TO",
			"TRANSACTION", "TRIGGER", "TRUE", "TRUNCATE", "UNDER", "UNKNOWN",
			"UNSET", "USE", "USER", "USING", "VALIDATE", "VALUE", "VALUED",
			"VIA", "VIEW", "WHEN", "WHILE", "WITH", "WITHIN", "WORK", "XOR",
		},
		ReservedToplevelWords: []string{
			"DELETE FROM", "EXCEPT ALL", "EXCEPT", "EXPLAIN DELETE FROM",
			"EXPLAIN UPDATE", "EXPLAIN UPSERT", "FROM", "GROUP BY", "HAVING",
			"INFER", "INSERT INTO", "LET", "LIMIT", "MERGE", "NEST",
			"ORDER BY", "PREPARE", "SELECT", "SET CURRENT SCHEMA",
			"SET SCHEMA", "SET", "SHOW", "UNION ALL", "UNION", "UNNEST",
			"UPDATE", "UPSERT", "USE KEYS", "VALUES", "WHERE",
		},
		ReservedNewlineWords: []string{
			"AND", "INNER JOIN", "JOIN", "LEFT JOIN", "LEFT OUTER JOIN", "OR",
			"OUTER JOIN", "RIGHT JOIN", "RIGHT OUTER JOIN", "XOR",
		},
		StringTypes:             []string{`""`, "''", "``"},
		OpenParens:              []string{"(", "[", "{"},
		CloseParens:             []string{")", "]", "}"},
		IndexedPlaceholderTypes: []string{"$"},
		NamedPlaceholderTypes:   []string{"$"},
		LineCommentTypes:        []string{"#", "--"},
	},
	LimitKeywords:   []string{"LIMIT"},
	MaxInlineLength: 50,
}
