package format

import "strings"

// indentType tags why an indent level exists: a toplevel clause body, or a
// bracketed nesting scope.
type indentType int

const (
	indentClause indentType = iota
	indentNesting
)

// indentation tracks the current indent as an ordered stack of tagged
// markers. The rendered prefix is the indent unit repeated once per entry.
// The stack never underflows: popping past empty is a no-op.
type indentation struct {
	unit  string
	types []indentType
}

func newIndentation(unit string) *indentation {
	return &indentation{unit: unit}
}

// current renders the indent prefix for the present stack depth.
func (i *indentation) current() string {
	return strings.Repeat(i.unit, len(i.types))
}

// pushClause opens one indent level for a toplevel clause body.
func (i *indentation) pushClause() {
	i.types = append(i.types, indentClause)
}

// popClauseIfPresent closes the current clause level, but only when the top
// of the stack is a clause marker. A nesting marker on top stays put: the
// clause that owns it has not ended yet.
func (i *indentation) popClauseIfPresent() {
	if n := len(i.types); n > 0 && i.types[n-1] == indentClause {
		i.types = i.types[:n-1]
	}
}

// pushNesting opens one indent level for a bracketed scope.
func (i *indentation) pushNesting() {
	i.types = append(i.types, indentNesting)
}

// popNesting pops down to and including the most recent nesting marker,
// discarding any clause markers pushed inside that scope. Clauses opened
// inside a subquery must not leak indentation once the bracket closes. With
// no nesting marker on the stack (an unmatched close bracket) the whole
// stack is drained, which is the accepted degraded behavior.
func (i *indentation) popNesting() {
	for n := len(i.types); n > 0; n = len(i.types) {
		top := i.types[n-1]
		i.types = i.types[:n-1]
		if top == indentNesting {
			break
		}
	}
}
