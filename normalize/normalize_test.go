package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"datamatrix prefix and dot", "]d201030123456789.103456", "01030123456789\x1d103456"},
		{"pipe", "01030123456789|103456", "01030123456789\x1d103456"},
		{"angle GS token", "01030123456789<GS>103456", "01030123456789\x1d103456"},
		{"bracket FNC1 token", "01030123456789[FNC1]103456", "01030123456789\x1d103456"},
		{"brace FNC1 token", "01030123456789{FNC1}103456", "01030123456789\x1d103456"},
		{"tilde", "01030123456789~103456", "01030123456789\x1d103456"},
		{"backslash", `01030123456789\103456`, "01030123456789\x1d103456"},
		{"escaped text", `01030123456789\x1d103456`, "01030123456789\x1d103456"},
		{"control picture", "01030123456789␝103456", "01030123456789\x1d103456"},
		{"canonical untouched", "01030123456789\x1d103456", "01030123456789\x1d103456"},
		{"code128 prefix", "]C10103012345678901", "0103012345678901"},
		{"qr prefix", "]Q30103012345678901", "0103012345678901"},
		{"prefix only at start", "01]d2", "01]d2"},
		{"one prefix only", "]d2]d201", "]d201"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"]d201030123456789.10ABC|21XYZ",
		"01030123456789<GS>10ABC[FNC1]21X~Y",
		"garbage \x00\xff text",
		`10A\B\x1dC`,
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestLongTokensWin(t *testing.T) {
	// If '\' were replaced before the escaped text, "\x1d" would leave "x1d"
	// behind as data.
	assert.Equal(t, "10A\x1d21B", Normalize(`10A\x1d21B`))
	// A token containing no separator stand-in is replaced whole.
	assert.Equal(t, "\x1d", Normalize("[FNC1]"))
}

func TestStripPrefix(t *testing.T) {
	rest, prefix := Default().StripPrefix("]d2010")
	assert.Equal(t, "010", rest)
	assert.Equal(t, "]d2", prefix)

	rest, prefix = Default().StripPrefix("010")
	assert.Equal(t, "010", rest)
	assert.Empty(t, prefix)
}

func TestWithoutPunctuation(t *testing.T) {
	n := New(WithPunctuation())
	assert.Equal(t, "10A.B\x1d21C", n.Normalize("10A.B<GS>21C"))
}

func TestCustomSets(t *testing.T) {
	n := New(WithPrefixes("]X9"), WithTokens("#GS#"), WithPunctuation("^"))
	assert.Equal(t, "10A\x1d21B\x1d3", n.Normalize("]X910A#GS#21B^3"))
	assert.Equal(t, "]d210A.B", n.Normalize("]d210A.B"))
}

func TestZeroValue(t *testing.T) {
	var n Normalizer
	assert.Equal(t, "]d210A.B", n.Normalize("]d210A.B"))
}

func TestDefaultSetsAreCopies(t *testing.T) {
	prefixes := DefaultPrefixes()
	require.NotEmpty(t, prefixes)
	prefixes[0] = "]X9"
	DefaultTokens()[0] = "#"
	DefaultPunctuation()[0] = "^"

	assert.Equal(t, "]d2", DefaultPrefixes()[2])
	assert.NotContains(t, DefaultPrefixes(), "]X9")
	assert.True(t, HasPrefix("]C1010"))
	assert.False(t, HasPrefix("]X9010"))
	assert.Equal(t, "10A\x1d21B\x1d3", Normalize("]C110A[FNC1]21B.3"))
}
