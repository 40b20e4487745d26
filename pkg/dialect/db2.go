package dialect

import "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"

// DB2 is the IBM DB2 dialect. Notable differences from Standard: identifiers
// may contain # and @, and FETCH FIRST acts as the row-limiting clause for
// the comma rule.
var DB2 = &Dialect{
	Name: "db2",
	Tokenizer: tokenizer.Config{
		ReservedWords: []string{
			"ABS", "ACTIVATE", "ALIAS", "ALL", "ALLOCATE", "ALLOW", "ALTER",
			"ANY", "ARE", "ARRAY", "AS", "ASC", "ASENSITIVE", "ASSOCIATE",
			"ASUTIME", "ASYMMETRIC", "AT", "ATOMIC", "ATTRIBUTES", "AUDIT",
			"AUTHORIZATION", "AUX", "AUXILIARY", "AVG", "BEFORE", "BEGIN",
			"BETWEEN", "BIGINT", "BINARY", "BLOB", "BOOLEAN", "BOTH",
			"BUFFERPOOL", "BY", "CACHE", "CALL", "CALLED", "CAPTURE",
			"CARDINALITY", "CASCADED", "CASE", "CAST", "CCSID", "CHAR",
			"CHARACTER", "CHECK", "CLOB", "CLONE", "CLOSE", "CLUSTER",
			"COALESCE", "COLLATE", "COLLECT", "COLLECTION", "COLLID", "COLUMN",
			"COMMENT", "COMMIT", "CONCAT", "CONDITION", "CONNECT",
			"CONNECTION", "CONSTRAINT", "CONTAINS", "CONTINUE", "COUNT",
			"CREATE", "CURRENT", "CURRENT_DATE", "CURRENT_SCHEMA",
			"CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "CURSOR",
			"CYCLE", "DATA", "DATABASE", "DATE", "DAY", "DAYS", "DEALLOCATE",
			"DECIMAL", "DECLARE", "DEFAULT", "DEFAULTS", "DELETE", "DESC",
			"DESCRIBE", "DETERMINISTIC", "DISABLE", "DISALLOW", "DISCONNECT",
			"DISTINCT", "DO", "DOCUMENT", "DOUBLE", "DROP", "DSSIZE",
			"DYNAMIC", "EACH", "EDITPROC", "ELSE", "ELSEIF", "ENABLE",
			"ENCODING", "ENCRYPTION", "END", "ENDING", "ERASE", "ESCAPE",
			"EVERY", "EXCEPTION", "EXCLUDING", "EXCLUSIVE", "EXECUTE",
			"EXISTS", "EXIT", "EXPLAIN", "EXTERNAL", "EXTRACT", "FENCED",
			"FETCH", "FIELDPROC", "FILE", "FINAL", "FIRST", "FLOAT", "FOR",
			"FOREIGN", "FREE", "FULL", "FUNCTION", "GENERAL", "GENERATED",
			"GET", "GLOBAL", "GOTO", "GRANT", "GRAPHIC", "GROUP", "HANDLER",
			"HASH", "HASHED_VALUE", "HINT", "HOLD", "HOUR", "HOURS",
			"IDENTITY", "IF", "IMMEDIATE", "IN", "INCLUDING", "INCLUSIVE",
			"INCREMENT", "INDEX", "INDICATOR", "INF", "INHERIT", "INNER",
			"INOUT", "INSENSITIVE", "INSERT", "INTEGER", "INTEGRITY", "INTO",
			"IS", "ISOBID", "ISOLATION", "ITERATE", "JAR", "KEEP", "KEY",
			"LABEL", "LANGUAGE", "LAST", "LC_CTYPE", "LEADING", "LEAVE",
			"LEFT", "LIKE", "LINKTYPE", "LOCAL", "LOCALE", "LOCATOR",
			"LOCATORS", "LOCK", "LOCKMAX", "LOCKSIZE", "LONG", "LOOP",
			"MAINTAINED", "MATERIALIZED", "MAX", "MAXVALUE", "MICROSECOND",
			"MICROSECONDS", "MIN", "MINUTE", "MINUTES", "MINVALUE", "MODE",
			"MODIFIES", "MONTH", "MONTHS", "NEW", "NEW_TABLE", "NEXTVAL",
			"NO", "NOCACHE", "NOCYCLE", "NODENAME", "NODENUMBER", "NOMAXVALUE",
			"NOMINVALUE", "NOORDER", "NORMALIZED", "NOT", "NULL", "NULLS",
			"NUMERIC", "NUMPARTS", "OBID", "OF", "OLD", "OLD_TABLE", "ON",
			"OPEN", "OPTIMIZATION", "OPTIMIZE", "OPTION", "ORDER", "OUT",
			"OUTER", "OVER", "OVERRIDING", "PACKAGE", "PADDED", "PAGESIZE",
			"PARAMETER", "PART", "PARTITION", "PARTITIONED", "PARTITIONING",
			"PASSWORD", "PATH", "PIECESIZE", "PLAN", "POSITION", "PRECISION",
			"PREPARE", "PREVVAL", "PRIMARY", "PRIQTY", "PRIVILEGES",
			"PROCEDURE", "PROGRAM", "PSID", "PUBLIC", "QUERY", "QUERYNO",
			"RANGE", "RANK", "READ", "READS", "REAL", "RECOVERY", "REFERENCES",
			"REFERENCING", "REFRESH", "RELEASE", "RENAME", "REPEAT", "RESET",
			"RESIGNAL", "RESTART", "RESTRICT", "RESULT", "RETURN", "RETURNS",
			"REVOKE", "RIGHT", "ROLE", "ROLLBACK", "ROUND_HALF_EVEN", "ROUTINE",
			"ROW", "ROWNUMBER", "ROWS", "ROWSET", "RRN", "RUN", "SAVEPOINT",
			"SCHEMA", "SCRATCHPAD", "SCROLL", "SEARCH", "SECOND", "SECONDS",
			"SECQTY", "SECURITY", "SENSITIVE", "SEQUENCE", "SESSION",
			"SESSION_USER", "SIGNAL", "SIMPLE", "SMALLINT", "SOME", "SOURCE",
			"SPECIFIC", "SQL", "SQLID", "STACKED", "STANDARD", "START",
			"STARTING", "STATEMENT", "STATIC", "STATMENT", "STAY", "STOGROUP",
			"STORES", "STYLE", "SUBSTRING", "SUM", "SYMMETRIC", "SYNONYM",
			"SYSTEM", "TABLE", "TABLESPACE", "THEN", "TIME", "TIMESTAMP",
			"TO", "TRAILING", "TRANSACTION", "TRIGGER", "TRIM", "TRUNCATE",
			"TYPE", "UNDO", "UNIQUE", "UNTIL", "USAGE", "USER", "USING",
			"VALIDPROC", "VALUE", "VARCHAR", "VARIABLE", "VARIANT", "VCAT",
			"VERSION", "VIEW", "VOLATILE", "WHEN", "WHENEVER", "WHILE", "WITH",
			"WITHOUT", "WLM", "XMLELEMENT", "XMLEXISTS", "XMLNAMESPACES",
			"YEAR", "YEARS",
		},
		ReservedToplevelWords: []string{
			"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM",
			"EXCEPT", "FETCH FIRST", "FROM", "GROUP BY", "GO", "HAVING",
			"INSERT INTO", "INTERSECT", "LIMIT", "ORDER BY", "SELECT",
			"SET CURRENT SCHEMA", "SET SCHEMA", "SET", "UPDATE", "VALUES",
			"WHERE",
		},
		ReservedNewlineWords: []string{
			"AND", "CROSS JOIN", "INNER JOIN", "JOIN", "LEFT JOIN",
			"LEFT OUTER JOIN", "OR", "RIGHT JOIN", "RIGHT OUTER JOIN",
		},
		StringTypes:             []string{`""`, "''", "``", "[]"},
		OpenParens:              []string{"("},
		CloseParens:             []string{")"},
		IndexedPlaceholderTypes: []string{"?"},
		NamedPlaceholderTypes:   []string{":"},
		LineCommentTypes:        []string{"--"},
		SpecialWordChars:        "#@",
	},
	LimitKeywords:   []string{"LIMIT", "FETCH FIRST"},
	MaxInlineLength: 50,
}
