package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndentation_clauseLevels(t *testing.T) {
	ind := newIndentation("  ")
	require.Equal(t, "", ind.current())

	ind.pushClause()
	require.Equal(t, "  ", ind.current())

	ind.pushClause()
	require.Equal(t, "    ", ind.current())

	ind.popClauseIfPresent()
	require.Equal(t, "  ", ind.current())
}

func TestIndentation_popClauseLeavesNesting(t *testing.T) {
	ind := newIndentation("  ")
	ind.pushNesting()

	// A nesting marker on top is not a clause; it must stay put.
	ind.popClauseIfPresent()
	require.Equal(t, "  ", ind.current())
}

func TestIndentation_popNestingDiscardsEnclosedClauses(t *testing.T) {
	ind := newIndentation("  ")
	ind.pushClause()  // outer SELECT
	ind.pushNesting() // subquery bracket
	ind.pushClause()  // inner SELECT
	ind.pushClause()  // inner FROM
	require.Equal(t, "        ", ind.current())

	// Closing the bracket discards the clauses opened inside it.
	ind.popNesting()
	require.Equal(t, "  ", ind.current())
}

func TestIndentation_neverUnderflows(t *testing.T) {
	ind := newIndentation("  ")

	require.NotPanics(t, func() {
		ind.popClauseIfPresent()
		ind.popNesting()
		ind.popNesting()
	})
	require.Equal(t, "", ind.current())

	// An unmatched close bracket over a clause-only stack drains it.
	ind.pushClause()
	ind.popNesting()
	require.Equal(t, "", ind.current())
}

func TestIndentation_customUnit(t *testing.T) {
	ind := newIndentation("\t")
	ind.pushClause()
	ind.pushNesting()
	require.Equal(t, "\t\t", ind.current())
}
