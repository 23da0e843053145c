package openinghoursparser

import (
	"openhours/internal/core/domain/hours"
)

type Parser struct{}

func New() hours.Parser {
	return &Parser{}
}

// Parse turns an opening_hours string into rules in evaluation order.
// The whole input must match, otherwise a *hours.SyntaxError is
// returned.
func (p *Parser) Parse(text string) ([]hours.Rule, error) {
	g := &grammar{scanner: scanner{input: text}}
	rules, ok := g.timeDomain()
	if !ok {
		return nil, g.syntaxError()
	}
	return rules, nil
}
