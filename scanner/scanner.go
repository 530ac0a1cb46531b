// Package scanner splits a normalized GS1 element string into
// (Application Identifier, value) tokens.
//
// The scanner walks the input with a cursor and alternates between two
// states: at an AI boundary it identifies the next AI, then it extracts that
// AI's value and returns to the boundary. Unrecognized characters are skipped
// one at a time, so a damaged middle does not lose the elements around it.
// Scan never fails; the worst case is an empty token list.
//
// Offsets and lengths count bytes. GS1 element strings are ASCII; in non-ASCII
// input a fixed-length value may end inside a multi-byte character and is
// then not valid UTF-8.
package scanner

import (
	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/normalize"
)

// Token is one AI occurrence found in the input.
type Token struct {
	// AI is the concrete code as it appeared in the input ("3103", not "310y").
	AI string
	// Def is the registry entry for AI. For decimal families it is the
	// template instantiated with the digit from the input.
	Def ai.Definition
	// Start and End delimit the value in the scanned string.
	Start, End int
	// Value is input[Start:End].
	Value string
	// Variable reports whether the value was read up to a separator rather
	// than by a fixed length.
	Variable bool
}

type state int

const (
	stateBoundary state = iota
	stateHaveAI
)

// Scanner tokenizes normalized payloads against a registry. It keeps no
// per-call state and may be used from multiple goroutines.
type Scanner struct {
	reg *ai.Registry
}

// New returns a Scanner that resolves AIs with reg.
func New(reg *ai.Registry) *Scanner {
	return &Scanner{reg: reg}
}

// MaxSteps is the iteration bound for an input of length n. Every step
// advances the cursor by at least one, so a correct scan finishes well
// within it.
func MaxSteps(n int) int {
	return 2*n + 1
}

// Scan returns the tokens of s in input order. s must already be normalized:
// the only separator recognized is normalize.GS.
func (sc *Scanner) Scan(s string) []Token {
	tokens, _ := sc.scan(s)
	return tokens
}

// scan also reports how many steps were taken.
func (sc *Scanner) scan(s string) ([]Token, int) {
	var tokens []Token
	var cur ai.Definition
	st := stateBoundary
	i, steps := 0, 0
	for limit := MaxSteps(len(s)); i < len(s) && steps < limit; steps++ {
		switch st {
		case stateBoundary:
			if s[i] == normalize.GS {
				i++
				continue
			}
			def, ok := sc.match(s, i)
			if !ok {
				i++
				continue
			}
			cur = def
			i += len(def.Code)
			st = stateHaveAI
		case stateHaveAI:
			tok := emit(s, i, cur)
			tokens = append(tokens, tok)
			i = tok.End
			st = stateBoundary
		}
	}
	// An AI at the very end of the input still yields a token, with an
	// empty value.
	if st == stateHaveAI {
		tokens = append(tokens, emit(s, i, cur))
	}
	return tokens, steps
}

func emit(s string, start int, def ai.Definition) Token {
	end := valueEnd(s, start, def)
	return Token{
		AI:       def.Code,
		Def:      def,
		Start:    start,
		End:      end,
		Value:    s[start:end],
		Variable: !def.Fixed,
	}
}

// match identifies the AI starting at s[i]. Exact codes are tried longest
// first because GS1 codes are not prefix free; decimal-family templates are
// consulted only when no exact code matches.
func (sc *Scanner) match(s string, i int) (ai.Definition, bool) {
	for n := 4; n >= 2; n-- {
		if i+n > len(s) {
			continue
		}
		if def, ok := sc.reg.Lookup(s[i : i+n]); ok && !def.Template() {
			return def, true
		}
	}
	if i+4 > len(s) {
		return ai.Definition{}, false
	}
	digit := s[i+3]
	if digit < '0' || digit > '9' {
		return ai.Definition{}, false
	}
	tmpl, ok := sc.reg.LookupTemplate(s[i : i+3])
	if !ok {
		return ai.Definition{}, false
	}
	return tmpl.Instantiate(digit), true
}

// valueEnd returns the end offset of the value that starts at i.
func valueEnd(s string, i int, def ai.Definition) int {
	if def.Fixed {
		end := i + def.MaxLength
		if end > len(s) {
			end = len(s)
		}
		return end
	}
	for j := i; j < len(s); j++ {
		if s[j] == normalize.GS {
			return j
		}
	}
	return len(s)
}
