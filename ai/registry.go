// Package ai holds the GS1 Application Identifier dictionary: which codes
// exist, what they are called, and how long their data fields are.
//
// A Registry is immutable once built and may be shared by any number of
// goroutines without locking. Decimal families such as 310n (net weight, n
// decimals) are registered once under a template code whose last character
// is the placeholder "y" ("310y"), and resolved with LookupTemplate.
package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// TemplateDigit is the placeholder that ends a decimal-family template code.
const TemplateDigit = 'y'

// Definition describes one Application Identifier.
type Definition struct {
	// Code is the 2-4 character identifier, e.g. "01" or "310y".
	Code string
	// Name is the human readable data title used as the key in simple results.
	Name string
	// MaxLength is the field length for fixed AIs, or the maximum for variable ones.
	MaxLength int
	// Fixed reports whether the field always occupies exactly MaxLength characters.
	Fixed bool
	// Decimals is the implied decimal point position, counted from the right.
	// Only meaningful when HasDecimals is set; zero is a valid position.
	Decimals    int
	HasDecimals bool
}

// Template reports whether d is a decimal-family template ("310y").
func (d Definition) Template() bool {
	return len(d.Code) == 4 && d.Code[3] == TemplateDigit
}

// Instantiate returns the concrete definition for a template and the data
// digit that follows its 3-digit prefix. The digit becomes the decimal
// position.
func (d Definition) Instantiate(digit byte) Definition {
	c := d
	c.Code = d.Code[:3] + string(digit)
	c.Decimals = int(digit - '0')
	c.HasDecimals = true
	return c
}

func (d Definition) validate() error {
	if err := validateCode(d.Code); err != nil {
		return err
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: %s: empty name", ErrInvalidDefinition, d.Code)
	}
	if d.MaxLength <= 0 {
		return fmt.Errorf("%w: %s: length must be positive, got %d", ErrInvalidDefinition, d.Code, d.MaxLength)
	}
	if d.HasDecimals && (d.Decimals < 0 || d.Decimals > 9) {
		return fmt.Errorf("%w: %s: decimal position %d out of range", ErrInvalidDefinition, d.Code, d.Decimals)
	}
	return nil
}

func validateCode(code string) error {
	if len(code) < 2 || len(code) > 4 {
		return fmt.Errorf("%w: %q: code must be 2-4 characters", ErrInvalidDefinition, code)
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == TemplateDigit && i == 3 {
			continue
		}
		return fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidDefinition, code, c)
	}
	return nil
}

// Registry is an immutable AI lookup table.
type Registry struct {
	defs   map[string]Definition
	source string
	digest string
}

// New builds a Registry from defs. The slice is copied; later changes to it
// do not affect the registry.
func New(source string, defs []Definition) (*Registry, error) {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := m[d.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidDefinition, d.Code)
		}
		m[d.Code] = d
	}
	r := &Registry{defs: m, source: source}
	r.digest = r.hash()
	return r, nil
}

func (r *Registry) hash() string {
	h := sha256.New()
	for _, code := range r.Codes() {
		d := r.defs[code]
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00%t\x00%t\x00%d\n",
			d.Code, d.Name, d.MaxLength, d.Fixed, d.HasDecimals, d.Decimals)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the definition registered under code exactly.
func (r *Registry) Lookup(code string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	d, ok := r.defs[code]
	return d, ok
}

// LookupTemplate returns the decimal-family template registered for the
// 3-digit prefix, e.g. "310" resolves the "310y" entry.
func (r *Registry) LookupTemplate(prefix string) (Definition, bool) {
	if len(prefix) != 3 {
		return Definition{}, false
	}
	return r.Lookup(prefix + string(TemplateDigit))
}

// Resolve is Lookup extended to decimal-family members: when no entry
// matches exactly, a 4-digit code ending in a digit resolves through its
// template ("3103" via "310y").
func (r *Registry) Resolve(code string) (Definition, bool) {
	if d, ok := r.Lookup(code); ok {
		return d, true
	}
	if len(code) != 4 || code[3] < '0' || code[3] > '9' {
		return Definition{}, false
	}
	tmpl, ok := r.LookupTemplate(code[:3])
	if !ok {
		return Definition{}, false
	}
	return tmpl.Instantiate(code[3]), true
}

// Len returns the number of registered codes, templates included.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.defs)
}

// Codes returns every registered code in ascending order.
func (r *Registry) Codes() []string {
	if r == nil {
		return nil
	}
	codes := make([]string, 0, len(r.defs))
	for c := range r.defs {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Digest identifies the table contents. Registries with equal definitions
// have equal digests regardless of where they were loaded from.
func (r *Registry) Digest() string {
	if r == nil {
		return ""
	}
	return r.digest
}

// Source describes where the table was loaded from ("builtin", "fallback",
// or a file path).
func (r *Registry) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}
