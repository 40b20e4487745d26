package format

import (
	"regexp"
	"strings"

	"github.com/LabhanshAgrawal/sql-formatter2/pkg/dialect"
	"github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"
)

// DefaultIndent is the indent unit used when Options.Indent is empty.
const DefaultIndent = "  "

// Options controls formatting behavior.
type Options struct {
	// Indent is the string emitted once per indent level. Defaults to two
	// spaces.
	Indent string

	// Language selects the SQL dialect table ("sql", "db2", "n1ql",
	// "pl/sql"). Unknown values fall back to standard SQL.
	Language string

	// Params supplies placeholder substitution values; nil leaves
	// placeholders as written.
	Params *Params
}

// Formatter reformats raw SQL statements into consistently indented,
// human-readable text. It is a lexer plus pretty-printer: no AST is built,
// no grammar is validated, and syntactically invalid input is tolerated as
// an opaque token sequence.
type Formatter struct {
	dialect   *dialect.Dialect
	tokenizer *tokenizer.Tokenizer
	indent    string
	params    *Params
}

// New creates a Formatter for the dialect named by opts.Language. The
// tokenizer is compiled once here and reused across Format calls; a
// Formatter must not be shared between concurrent calls when positional
// Params are in play, since the running counter is per-instance.
func New(opts Options) *Formatter {
	d := dialect.Get(opts.Language)
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	return &Formatter{
		dialect:   d,
		tokenizer: tokenizer.New(d.Tokenizer),
		indent:    indent,
		params:    opts.Params,
	}
}

// Format reformats query and returns the result. It never fails: any string
// input, including the empty string and malformed SQL, produces a string
// output. All printer state is reset at the start of each call.
func (f *Formatter) Format(query string) string {
	f.params.reset()

	p := &printer{
		dialect: f.dialect,
		indent:  newIndentation(f.indent),
		inline:  &inlineBlock{maxLength: f.dialect.MaxInlineLength},
		params:  f.params,
		tokens:  f.tokenizer.Tokenize(query),
	}

	return p.run()
}

// Format is the package-level convenience entry point: it builds a one-shot
// Formatter from opts and formats query with it.
func Format(query string, opts Options) string {
	return New(opts).Format(query)
}

// printer consumes the token sequence once, left to right, applying per-kind
// formatting rules. All of its state is local to one Format call.
type printer struct {
	dialect *dialect.Dialect
	indent  *indentation
	inline  *inlineBlock
	params  *Params
	tokens  []tokenizer.Token

	out          []byte
	index        int
	prevReserved tokenizer.Token
}

func (p *printer) run() string {
	for i, tok := range p.tokens {
		p.index = i

		switch {
		case tok.Kind == tokenizer.Whitespace:
			// Dropped: all spacing is re-derived.
		case tok.Kind == tokenizer.LineComment:
			p.lineComment(tok)
		case tok.Kind == tokenizer.BlockComment:
			p.blockComment(tok)
		case tok.Kind == tokenizer.ReservedToplevel:
			p.toplevelReservedWord(tok)
			p.prevReserved = tok
		case tok.Kind == tokenizer.ReservedNewline:
			p.newlineReservedWord(tok)
			p.prevReserved = tok
		case tok.Kind == tokenizer.Reserved:
			p.withSpaces(tok)
			p.prevReserved = tok
		case tok.Kind == tokenizer.OpenParen:
			p.openParen(tok)
		case tok.Kind == tokenizer.CloseParen:
			p.closeParen(tok)
		case tok.Kind == tokenizer.Placeholder:
			p.placeholder(tok)
		case tok.Text == ",":
			p.comma(tok)
		case tok.Text == ":":
			p.withSpaceAfter(tok)
		case tok.Text == ".":
			p.withoutSpaces(tok)
		case tok.Text == ";":
			p.querySeparator(tok)
		default:
			p.withSpaces(tok)
		}
	}

	return strings.TrimSpace(string(p.out))
}

func (p *printer) lineComment(tok tokenizer.Token) {
	p.append(tok.Text)
	p.addNewline()
}

func (p *printer) blockComment(tok tokenizer.Token) {
	p.addNewline()
	p.append(p.indentLines(tok.Text))
	p.addNewline()
}

// indentLines re-indents every internal newline of a block comment to the
// current indent.
func (p *printer) indentLines(comment string) string {
	return strings.ReplaceAll(comment, "\n", "\n"+p.indent.current())
}

func (p *printer) toplevelReservedWord(tok tokenizer.Token) {
	p.indent.popClauseIfPresent()
	p.addNewline()
	p.append(equalizeWhitespace(tok.Text))
	p.indent.pushClause()
	p.addNewline()
}

func (p *printer) newlineReservedWord(tok tokenizer.Token) {
	p.addNewline()
	p.append(equalizeWhitespace(tok.Text))
	p.append(" ")
}

func (p *printer) openParen(tok tokenizer.Token) {
	// The bracket hugs the preceding call name unless the source kept them
	// apart with whitespace, another bracket, or a line comment.
	if prev, ok := p.previousToken(); !ok || !preservesWhitespace(prev.Kind) {
		p.trimSpacesEnd()
	}
	p.append(tok.Text)

	p.inline.beginIfPossible(p.tokens, p.index)
	if !p.inline.isActive() {
		p.indent.pushNesting()
		p.addNewline()
	}
}

func preservesWhitespace(kind tokenizer.TokenKind) bool {
	return kind == tokenizer.Whitespace ||
		kind == tokenizer.OpenParen ||
		kind == tokenizer.LineComment
}

func (p *printer) closeParen(tok tokenizer.Token) {
	if p.inline.isActive() {
		p.inline.end()
		p.withSpaceAfter(tok)
		return
	}

	p.indent.popNesting()
	p.addNewline()
	p.withSpaces(tok)
}

func (p *printer) placeholder(tok tokenizer.Token) {
	p.append(p.params.resolve(tok))
	p.append(" ")
}

func (p *printer) comma(tok tokenizer.Token) {
	p.trimSpacesEnd()
	p.append(tok.Text)
	p.append(" ")

	if p.inline.isActive() {
		return
	}
	// A comma in a row-limiting clause (LIMIT 10, 20) separates offset and
	// count, not list items; keep it on one line.
	if p.dialect.IsLimitKeyword(equalizeWhitespace(p.prevReserved.Text)) {
		return
	}
	p.addNewline()
}

func (p *printer) withSpaceAfter(tok tokenizer.Token) {
	p.trimSpacesEnd()
	p.append(tok.Text)
	p.append(" ")
}

func (p *printer) withoutSpaces(tok tokenizer.Token) {
	p.trimSpacesEnd()
	p.append(tok.Text)
}

func (p *printer) querySeparator(tok tokenizer.Token) {
	p.trimSpacesEnd()
	p.append("\n")
	p.append(tok.Text)
	p.append("\n")
}

func (p *printer) withSpaces(tok tokenizer.Token) {
	p.append(tok.Text)
	p.append(" ")
}

func (p *printer) previousToken() (tokenizer.Token, bool) {
	if p.index == 0 {
		return tokenizer.Token{}, false
	}
	return p.tokens[p.index-1], true
}

func (p *printer) append(s string) {
	p.out = append(p.out, s...)
}

// trimSpacesEnd removes trailing spaces and tabs, but never newlines.
func (p *printer) trimSpacesEnd() {
	for n := len(p.out); n > 0 && (p.out[n-1] == ' ' || p.out[n-1] == '\t'); n = len(p.out) {
		p.out = p.out[:n-1]
	}
}

// addNewline terminates the current line (if not already terminated) and
// starts the next one at the current indent.
func (p *printer) addNewline() {
	p.trimSpacesEnd()
	if n := len(p.out); n == 0 || p.out[n-1] != '\n' {
		p.append("\n")
	}
	p.append(p.indent.current())
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// equalizeWhitespace collapses internal whitespace runs of a multi-word
// keyword phrase to single spaces (ORDER   BY -> ORDER BY).
func equalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}
