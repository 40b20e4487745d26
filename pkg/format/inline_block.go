package format

import "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"

// inlineBlock decides whether a bracketed token span is simple enough to
// render on a single line, and remembers that decision until the matching
// close bracket is consumed. The decision is made once, by looking ahead at
// the moment the bracket opens; the only persisted state is the active flag.
type inlineBlock struct {
	maxLength int
	active    bool
}

// beginIfPossible evaluates the bracket opening at tokens[index] and marks
// the block active when it qualifies for single-line rendering.
func (b *inlineBlock) beginIfPossible(tokens []tokenizer.Token, index int) {
	if !b.active && b.isInlineBlock(tokens, index) {
		b.active = true
	}
}

// end deactivates the block; called when its closing bracket is printed.
func (b *inlineBlock) end() {
	b.active = false
}

func (b *inlineBlock) isActive() bool {
	return b.active
}

// isInlineBlock scans forward from the opening bracket to its close and
// disqualifies inlining when the span is too long, contains a line comment,
// a toplevel or newline clause keyword, or a nested independently-opened
// bracket. An unclosed bracket never inlines.
func (b *inlineBlock) isInlineBlock(tokens []tokenizer.Token, index int) bool {
	length := 0

	for i := index; i < len(tokens); i++ {
		tok := tokens[i]
		length += len(tok.Text)
		if length > b.maxLength {
			return false
		}

		switch tok.Kind {
		case tokenizer.OpenParen:
			if i > index {
				return false
			}
		case tokenizer.CloseParen:
			return true
		case tokenizer.LineComment, tokenizer.ReservedToplevel, tokenizer.ReservedNewline:
			return false
		}
	}

	return false
}
