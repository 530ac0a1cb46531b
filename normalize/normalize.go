// Package normalize rewrites decoded GS1 payloads into the single form the
// scanner understands: no symbology identifier prefix, and every group
// separator spelled as the ASCII GS control character (0x1D).
//
// Decoders and transcription layers disagree on how FNC1 reaches text. Some
// emit the GS byte, some emit placeholder tokens such as "<GS>" or "[FNC1]",
// and some substitute punctuation. All of them are mapped to GS here.
//
// Known limitation: the punctuation stand-ins ('.', '|', '\\', '~') are also
// legal in free-text AI values. A payload whose batch number really contains
// a '.' is split at that point. Callers that receive clean GS-separated
// payloads can build a Normalizer without the punctuation set.
package normalize

import "strings"

// GS is the canonical group separator.
const GS = '\x1d'

// GS1 symbology identifiers (ISO/IEC 15424) that announce FNC1-mode data.
var defaultPrefixes = []string{
	"]C1", // GS1-128
	"]e0", // GS1 DataBar
	"]d2", // GS1 DataMatrix
	"]Q3", // GS1 QR Code
	"]J1", // GS1 DotCode
}

// Textual separator placeholders.
var defaultTokens = []string{
	"[FNC1]",
	"{FNC1}",
	"<FNC1>",
	"<GS>",
	"[GS]",
	"{GS}",
	`\x1d`,
	"␝", // SYMBOL FOR GROUP SEPARATOR
}

// Single-character separator substitutes.
var defaultPunctuation = []string{".", "|", `\`, "~"}

// DefaultPrefixes returns the symbology identifiers stripped by Default.
func DefaultPrefixes() []string { return append([]string(nil), defaultPrefixes...) }

// DefaultTokens returns the textual separator spellings replaced by Default.
func DefaultTokens() []string { return append([]string(nil), defaultTokens...) }

// DefaultPunctuation returns the punctuation stand-ins replaced by Default.
func DefaultPunctuation() []string { return append([]string(nil), defaultPunctuation...) }

// HasPrefix reports whether s starts with one of the default symbology
// identifiers.
func HasPrefix(s string) bool {
	for _, p := range defaultPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Normalizer strips a symbology prefix and canonicalizes separators. The zero
// value strips nothing and replaces nothing; use New or Default.
type Normalizer struct {
	prefixes []string
	replacer *strings.Replacer
}

// Option configures a Normalizer.
type Option func(*config)

type config struct {
	prefixes    []string
	tokens      []string
	punctuation []string
}

// WithPrefixes replaces the recognized symbology identifiers.
func WithPrefixes(prefixes ...string) Option {
	return func(c *config) { c.prefixes = prefixes }
}

// WithTokens replaces the recognized textual separator tokens.
func WithTokens(tokens ...string) Option {
	return func(c *config) { c.tokens = tokens }
}

// WithPunctuation replaces the single-character separator substitutes.
// Passing nothing disables punctuation replacement.
func WithPunctuation(chars ...string) Option {
	return func(c *config) { c.punctuation = chars }
}

// New builds a Normalizer from the default sets adjusted by opts.
func New(opts ...Option) *Normalizer {
	c := &config{
		prefixes:    defaultPrefixes,
		tokens:      defaultTokens,
		punctuation: defaultPunctuation,
	}
	for _, opt := range opts {
		opt(c)
	}

	olds := make([]string, 0, len(c.tokens)+len(c.punctuation))
	olds = append(olds, c.tokens...)
	olds = append(olds, c.punctuation...)
	olds = sortLongestFirst(olds)

	pairs := make([]string, 0, 2*len(olds))
	for _, old := range olds {
		if old == "" || old == string(GS) {
			continue
		}
		pairs = append(pairs, old, string(GS))
	}

	n := &Normalizer{prefixes: append([]string(nil), c.prefixes...)}
	if len(pairs) > 0 {
		n.replacer = strings.NewReplacer(pairs...)
	}
	return n
}

var defaultNormalizer = New()

// Default returns the Normalizer configured with the standard prefix,
// token and punctuation sets.
func Default() *Normalizer {
	return defaultNormalizer
}

// Normalize applies the default Normalizer to s.
func Normalize(s string) string {
	return defaultNormalizer.Normalize(s)
}

// Normalize strips at most one leading symbology identifier and rewrites
// every separator spelling to GS.
func (n *Normalizer) Normalize(s string) string {
	s, _ = n.StripPrefix(s)
	if n.replacer == nil {
		return s
	}
	return n.replacer.Replace(s)
}

// StripPrefix removes a recognized symbology identifier at offset 0 and
// reports which one it was.
func (n *Normalizer) StripPrefix(s string) (string, string) {
	for _, p := range n.prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return s[len(p):], p
		}
	}
	return s, ""
}

// sortLongestFirst returns a copy of tokens ordered by descending length,
// keeping the given order among tokens of equal length.
func sortLongestFirst(tokens []string) []string {
	out := append([]string(nil), tokens...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
