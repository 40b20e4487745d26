package tokenizer

import (
	"regexp"
	"sort"
	"strings"
)

// matchFunc attempts to match a token at the start of input. prev is the
// most recently produced token (zero value at the start of input); width is
// the number of input bytes consumed on success.
type matchFunc func(input string, prev Token) (tok Token, width int, ok bool)

// regexMatcher adapts an anchored regexp into a matchFunc. canonical
// upper-cases the matched text (brackets, reserved words).
func regexMatcher(kind TokenKind, re *regexp.Regexp, canonical bool) matchFunc {
	return func(input string, _ Token) (Token, int, bool) {
		m := re.FindString(input)
		if m == "" {
			return Token{}, 0, false
		}
		return Token{Kind: kind, Text: upperIf(canonical, m)}, len(m), true
	}
}

func matchWhitespace() matchFunc {
	return regexMatcher(Whitespace, regexp.MustCompile(`^\s+`), false)
}

func matchLineComment(prefixes []string) matchFunc {
	if len(prefixes) == 0 {
		return nil
	}
	re := regexp.MustCompile(`^(?:` + quoteAlternation(prefixes) + `)[^\r\n]*(?:\r\n|\r|\n|$)`)
	return regexMatcher(LineComment, re, false)
}

func matchBlockComment() matchFunc {
	// Non-greedy to the closing */, or to end of input when unterminated.
	return regexMatcher(BlockComment, regexp.MustCompile(`(?s)^/\*.*?(?:\*/|$)`), false)
}

func matchString(stringTypes []string) matchFunc {
	if len(stringTypes) == 0 {
		return nil
	}
	var patterns []string
	for _, t := range stringTypes {
		if p := stringPattern(t); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return nil
	}
	re := regexp.MustCompile(`(?s)^(?:` + strings.Join(patterns, "|") + `)`)
	return regexMatcher(String, re, false)
}

// stringPattern returns the regexp fragment for one quoting style. Each
// pattern tolerates a missing closing quote by also accepting end of input,
// and doubled-quote escaping falls out of the repetition.
func stringPattern(stringType string) string {
	switch stringType {
	case "``":
		return "(?:`[^`]*(?:`|$))+"
	case "[]":
		return `(?:\[[^\]]*(?:\]|$))(?:\][^\]]*(?:\]|$))*`
	case `""`:
		return `(?:"[^"\\]*(?:\\.[^"\\]*)*(?:"|$))+`
	case "''":
		return `(?:'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`
	case "N''":
		return `(?:N'[^'\\]*(?:\\.[^'\\]*)*(?:'|$))+`
	}
	return ""
}

func matchParen(kind TokenKind, parens []string) matchFunc {
	if len(parens) == 0 {
		return nil
	}
	var parts []string
	for _, p := range parens {
		if len(p) == 1 {
			parts = append(parts, regexp.QuoteMeta(p))
		} else {
			// Word-shaped pseudo-brackets (CASE, END) match on word
			// boundaries only.
			parts = append(parts, `\b`+regexp.QuoteMeta(p)+`\b`)
		}
	}
	re := regexp.MustCompile(`(?i)^(?:` + strings.Join(parts, "|") + `)`)
	return regexMatcher(kind, re, true)
}

func matchReserved(kind TokenKind, words []string) matchFunc {
	if len(words) == 0 {
		return nil
	}
	re := regexp.MustCompile(`(?i)^(?:` + reservedAlternation(words) + `)\b`)
	return func(input string, prev Token) (Token, int, bool) {
		// A word following a member-access dot is never reserved, even if
		// it collides with a keyword (e.g. mytable.limit).
		if prev.Text == "." {
			return Token{}, 0, false
		}
		m := re.FindString(input)
		if m == "" {
			return Token{}, 0, false
		}
		return Token{Kind: kind, Text: strings.ToUpper(m)}, len(m), true
	}
}

// reservedAlternation joins reserved words into a regexp alternation, longest
// phrase first so UNION ALL wins over UNION, with any run of whitespace
// accepted between the parts of a multi-word phrase.
func reservedAlternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(parts, "|")
}

func matchNamedPlaceholder(prefixes []string) matchFunc {
	if len(prefixes) == 0 {
		return nil
	}
	re := regexp.MustCompile(`^(?:` + quoteAlternation(prefixes) + `)[a-zA-Z0-9._$]+`)
	return func(input string, _ Token) (Token, int, bool) {
		m := re.FindString(input)
		if m == "" {
			return Token{}, 0, false
		}
		return Token{Kind: Placeholder, Text: m, Key: stripPrefix(m, prefixes)}, len(m), true
	}
}

func matchStringNamedPlaceholder(prefixes []string) matchFunc {
	if len(prefixes) == 0 {
		return nil
	}
	quoted := strings.Join([]string{
		stringPattern("``"),
		stringPattern(`""`),
		stringPattern("''"),
	}, "|")
	re := regexp.MustCompile(`(?s)^(?:` + quoteAlternation(prefixes) + `)(?:` + quoted + `)`)
	return func(input string, _ Token) (Token, int, bool) {
		m := re.FindString(input)
		if m == "" {
			return Token{}, 0, false
		}
		key := unquotePlaceholderKey(stripPrefix(m, prefixes))
		return Token{Kind: Placeholder, Text: m, Key: key}, len(m), true
	}
}

func matchIndexedPlaceholder(prefixes []string) matchFunc {
	if len(prefixes) == 0 {
		return nil
	}
	re := regexp.MustCompile(`^(?:` + quoteAlternation(prefixes) + `)[0-9]*`)
	return func(input string, _ Token) (Token, int, bool) {
		m := re.FindString(input)
		if m == "" {
			return Token{}, 0, false
		}
		return Token{Kind: Placeholder, Text: m, Key: stripPrefix(m, prefixes)}, len(m), true
	}
}

func matchNumber() matchFunc {
	re := regexp.MustCompile(`^(?:0x[0-9a-fA-F]+|0b[01]+|(?:-\s*)?[0-9]+(?:\.[0-9]+)?)\b`)
	return regexMatcher(Number, re, false)
}

func matchWord(specialChars string) matchFunc {
	re := regexp.MustCompile(`^[\w` + escapeCharClass(specialChars) + `]+`)
	return regexMatcher(Word, re, false)
}

func matchOperator() matchFunc {
	// Multi-character operators first; the trailing "." alternative matches
	// any single remaining character, which makes tokenization total.
	re := regexp.MustCompile(`(?s)^(?:<=|>=|!=|<>|==|!<|!>|\|\||::|->>|->|!~~\*|!~~|~~\*|~~|!~\*|!~|~\*|.)`)
	return regexMatcher(Operator, re, false)
}

// escapeCharClass escapes characters that carry meaning inside a regexp
// character class so dialect word characters can be spliced into one.
func escapeCharClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quoteAlternation escapes each literal and joins them into an alternation.
func quoteAlternation(literals []string) string {
	parts := make([]string, len(literals))
	for i, l := range literals {
		parts[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(parts, "|")
}

// stripPrefix removes the longest matching placeholder prefix from s.
func stripPrefix(s string, prefixes []string) string {
	best := ""
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) && len(p) > len(best) {
			best = p
		}
	}
	return s[len(best):]
}

// unquotePlaceholderKey strips the surrounding quotes from a string-quoted
// placeholder key and undoes backslash escaping of the quote character. An
// unterminated quote is tolerated: the key runs to end of input.
func unquotePlaceholderKey(s string) string {
	if len(s) < 2 {
		return s
	}
	quote := s[0]
	body := s[1:]
	if body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}
	return strings.ReplaceAll(body, `\`+string(quote), string(quote))
}
