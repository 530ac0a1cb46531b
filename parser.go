package gs1parse

import (
	"fmt"

	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/charset"
	"github.com/ericlevine/gs1parse/format"
	"github.com/ericlevine/gs1parse/normalize"
	"github.com/ericlevine/gs1parse/scanner"
)

// Parser turns payloads into Results using one AI registry.
type Parser struct {
	reg  *ai.Registry
	norm *normalize.Normalizer
	sc   *scanner.Scanner
}

// Option configures a Parser.
type Option func(*Parser)

// WithNormalizer replaces the default separator normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(p *Parser) {
		if n != nil {
			p.norm = n
		}
	}
}

// NewParser returns a Parser that resolves AIs with reg. A nil reg uses the
// builtin table.
func NewParser(reg *ai.Registry, opts ...Option) *Parser {
	if reg == nil {
		reg = ai.Builtin()
	}
	p := &Parser{reg: reg, norm: normalize.Default()}
	for _, opt := range opts {
		opt(p)
	}
	p.sc = scanner.New(reg)
	return p
}

// Registry returns the table the parser was built with.
func (p *Parser) Registry() *ai.Registry {
	return p.reg
}

// Parse normalizes payload, scans it and formats every value. It never
// fails: unrecognized input yields an empty Result.
func (p *Parser) Parse(payload string, mode Mode) Result {
	tokens := p.sc.Scan(p.norm.Normalize(payload))
	return newResult(mode, assemble(tokens))
}

// ParseBytes decodes b from the named character set, guessing when cs is
// empty, and parses the text.
func (p *Parser) ParseBytes(b []byte, cs string, mode Mode) (Result, error) {
	text, err := charset.Decode(b, cs)
	if err != nil {
		return Result{Mode: mode}, fmt.Errorf("%w: %w", ErrPayloadEncoding, err)
	}
	return p.Parse(text, mode), nil
}

func assemble(tokens []scanner.Token) []Element {
	if len(tokens) == 0 {
		return nil
	}
	elements := make([]Element, 0, len(tokens))
	for _, tok := range tokens {
		value, valid := format.Value(tok.Def, tok.Value)
		elements = append(elements, Element{
			AI:    tok.AI,
			Name:  tok.Def.Name,
			Value: value,
			Valid: valid,
		})
	}
	return elements
}

var defaultParser = NewParser(nil)

// Parse parses payload with the builtin AI table. Verbose results list every
// element; simple results map names to values.
func Parse(payload string, verbose bool) Result {
	return defaultParser.Parse(payload, ModeOf(verbose))
}
