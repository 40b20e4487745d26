package dialect

import "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"

// PLSQL is the Oracle PL/SQL dialect. Identifiers may contain _ and $, and
// procedural clause starters (BEGIN, DECLARE, LOOP) act as toplevel words.
var PLSQL = &Dialect{
	Name: "pl/sql",
	Tokenizer: tokenizer.Config{
		ReservedWords: []string{
			"A", "ACCESSIBLE", "AGENT", "AGGREGATE", "ALL", "ALTER", "ANY",
			"ARRAY", "AS", "ASC", "AT", "ATTRIBUTE", "AUTHID", "AVG",
			"BETWEEN", "BFILE_BASE", "BINARY_INTEGER", "BINARY", "BLOB_BASE",
			"BLOCK", "BODY", "BOOLEAN", "BOTH", "BOUND", "BULK", "BY", "BYTE",
			"C", "CALL", "CALLING", "CASCADE", "CASE", "CHAR_BASE", "CHAR",
			"CHARACTER", "CHARSET", "CHARSETFORM", "CHARSETID", "CHECK",
			"CLOB_BASE", "CLONE", "CLOSE", "CLUSTER", "CLUSTERS", "COLAUTH",
			"COLLECT", "COLUMNS", "COMMENT", "COMMIT", "COMMITTED",
			"COMPILED", "COMPRESS", "CONNECT", "CONSTANT", "CONSTRUCTOR",
			"CONTEXT", "CONTINUE", "CONVERT", "COUNT", "CRASH", "CREATE",
			"CREDENTIAL", "CURRENT", "CURRVAL", "CURSOR", "CUSTOMDATUM",
			"DANGLING", "DATA", "DATE_BASE", "DATE", "DAY", "DECIMAL",
			"DEFAULT", "DEFINE", "DELETE", "DESC", "DETERMINISTIC",
			"DIRECTORY", "DISTINCT", "DOUBLE", "DROP", "DURATION", "ELEMENT",
			"ELSIF", "EMPTY", "ESCAPE", "EXCEPTIONS", "EXCLUSIVE", "EXECUTE",
			"EXISTS", "EXIT", "EXTERNAL", "FINAL", "FIRST", "FIXED", "FLOAT",
			"FOR", "FORALL", "FORCE", "FUNCTION", "GENERAL", "GOTO", "GRANT",
			"GROUP", "HASH", "HEAP", "HIDDEN", "HOUR", "IDENTIFIED", "IF",
			"IMMEDIATE", "IN", "INCLUDING", "INDEX", "INDEXES", "INDICATOR",
			"INDICES", "INFINITE", "INSTANTIABLE", "INT", "INTEGER",
			"INTERFACE", "INTERVAL", "INTO", "INVALIDATE", "IS", "ISOLATION",
			"JAVA", "LANGUAGE", "LARGE", "LEADING", "LENGTH", "LEVEL",
			"LIBRARY", "LIKE", "LIKE2", "LIKE4", "LIKEC", "LIMITED", "LOCAL",
			"LOCK", "LONG", "MAP", "MAX", "MAXLEN", "MEMBER", "MERGE", "MIN",
			"MINUS", "MINUTE", "MLSLABEL", "MOD", "MODE", "MONTH",
			"MULTISET", "NAME", "NAN", "NATIONAL", "NATIVE", "NATURAL",
			"NATURALN", "NCHAR", "NEW", "NEXTVAL", "NOCOMPRESS", "NOCOPY",
			"NOT", "NOWAIT", "NULL", "NUMBER_BASE", "NUMBER", "OBJECT",
			"OCICOLL", "OCIDATE", "OCIDATETIME", "OCIDURATION", "OCIINTERVAL",
			"OCILOBLOCATOR", "OCINUMBER", "OCIRAW", "OCIREF", "OCIREFCURSOR",
			"OCIROWID", "OCISTRING", "OCITYPE", "OF", "OLD", "ON", "ONLY",
			"OPAQUE", "OPEN", "OPERATOR", "OPTION", "ORACLE", "ORADATA",
			"ORDER", "ORGANIZATION", "ORLANY", "ORLVARY", "OTHERS", "OUT",
			"OVERLAPS", "OVERRIDING", "PACKAGE", "PARALLEL_ENABLE",
			"PARAMETER", "PARAMETERS", "PARENT", "PARTITION", "PASCAL",
			"PCTFREE", "PIPE", "PIPELINED", "PLS_INTEGER", "PLUGGABLE",
			"POSITIVE", "POSITIVEN", "PRAGMA", "PRECISION", "PRIOR",
			"PRIVATE", "PROCEDURE", "PUBLIC", "RAISE", "RANGE", "RAW", "READ",
			"REAL", "RECORD", "REF", "REFERENCE", "RELEASE", "RELIES_ON",
			"REM", "REMAINDER", "RENAME", "RESOURCE", "RESULT_CACHE",
			"RESULT", "RETURN", "RETURNING", "REVERSE", "REVOKE", "ROLLBACK",
			"ROW", "ROWID", "ROWNUM", "ROWTYPE", "SAMPLE", "SAVE",
			"SAVEPOINT", "SB1", "SB2", "SB4", "SECOND", "SEGMENT", "SELF",
			"SEPARATE", "SEQUENCE", "SERIALIZABLE", "SHARE", "SHORT", "SIZE",
			"SIZE_T", "SMALLINT", "SOME", "SPARSE", "SQL", "SQLCODE",
			"SQLDATA", "SQLNAME", "SQLSTATE", "STANDARD", "START", "STATIC",
			"STDDEV", "STORED", "STRING", "STRUCT", "STYLE", "SUBMULTISET",
			"SUBPARTITION", "SUBSTITUTABLE", "SUBTYPE", "SUCCESSFUL", "SUM",
			"SYNONYM", "SYSDATE", "TABAUTH", "TABLE", "TDO", "THE", "THEN",
			"TIME", "TIMESTAMP", "TIMEZONE_ABBR", "TIMEZONE_HOUR",
			"TIMEZONE_MINUTE", "TIMEZONE_REGION", "TO", "TRAILING",
			"TRANSACTION", "TRANSACTIONAL", "TRIGGER", "TRUE", "TRUSTED",
			"TYPE", "UB1", "UB2", "UB4", "UNDER", "UNIQUE", "UNPLUG",
			"UNSIGNED", "UNTRUSTED", "USE", "USING", "VALIST", "VALUE",
			"VARCHAR", "VARCHAR2", "VARIABLE", "VARIANCE", "VARRAY",
			"VARYING", "VIEW", "VIEWS", "VOID", "WHENEVER", "WHILE", "WITH",
			"WORK", "WRAPPED", "WRITE", "YEAR", "ZONE",
		},
		ReservedToplevelWords: []string{
			"ADD", "ALTER COLUMN", "ALTER TABLE", "BEGIN", "CONNECT BY",
			"DECLARE", "DELETE FROM", "DELETE", "END", "EXCEPT", "EXCEPTION",
			"FETCH FIRST", "FROM", "GROUP BY", "HAVING", "INSERT INTO",
			"INSERT", "INTERSECT", "LIMIT", "LOOP", "MODIFY", "ORDER BY",
			"SELECT", "SET CURRENT SCHEMA", "SET SCHEMA", "SET", "START WITH",
			"UNION ALL", "UNION", "UPDATE", "VALUES", "WHERE",
		},
		ReservedNewlineWords: []string{
			"AND", "CROSS APPLY", "CROSS JOIN", "ELSE", "INNER JOIN", "JOIN",
			"LEFT JOIN", "LEFT OUTER JOIN", "OR", "OUTER APPLY", "OUTER JOIN",
			"RIGHT JOIN", "RIGHT OUTER JOIN", "WHEN", "XOR",
		},
		StringTypes:             []string{`""`, "N''", "''", "``"},
		OpenParens:              []string{"(", "CASE"},
		CloseParens:             []string{")", "END"},
		IndexedPlaceholderTypes: []string{"?"},
		NamedPlaceholderTypes:   []string{"@", ":"},
		LineCommentTypes:        []string{"--"},
		SpecialWordChars:        "_$",
	},
	LimitKeywords:   []string{"LIMIT"},
	MaxInlineLength: 50,
}
