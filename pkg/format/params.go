package format

import "github.com/LabhanshAgrawal/sql-formatter2/pkg/tokenizer"

// Params supplies substitution values for placeholder tokens. A Params value
// is either named (lookup by the placeholder's key) or positional
// (first-seen-first-substituted). A nil *Params leaves every placeholder
// untouched in the output.
//
// Positional substitution deliberately ignores any numeric index written in
// the placeholder syntax: a single running counter advances once per lookup
// for the whole format call, so `?2 ?1` still receives values in appearance
// order.
type Params struct {
	named      map[string]string
	positional []string
	index      int
}

// NamedParams builds a Params that resolves placeholders by name.
func NamedParams(values map[string]string) *Params {
	return &Params{named: values}
}

// PositionalParams builds a Params that hands out values strictly in the
// order placeholders appear.
func PositionalParams(values ...string) *Params {
	return &Params{positional: values}
}

// reset rewinds the positional counter for a fresh format call.
func (p *Params) reset() {
	if p != nil {
		p.index = 0
	}
}

// resolve returns the substitution for tok, or tok.Text unchanged when no
// value applies (nil Params, missing name, or exhausted positional list).
func (p *Params) resolve(tok tokenizer.Token) string {
	if p == nil {
		return tok.Text
	}
	if p.named != nil {
		if v, ok := p.named[tok.Key]; ok {
			return v
		}
		return tok.Text
	}
	if p.index < len(p.positional) {
		v := p.positional[p.index]
		p.index++
		return v
	}
	return tok.Text
}
