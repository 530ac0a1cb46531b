package scanner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/gs1parse/ai"
)

type pair struct {
	ai, value string
	variable  bool
}

func pairs(tokens []Token) []pair {
	out := make([]pair, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, pair{tok.AI, tok.Value, tok.Variable})
	}
	return out
}

func TestScanBuiltin(t *testing.T) {
	sc := New(ai.Builtin())
	tests := []struct {
		name string
		in   string
		want []pair
	}{
		{
			"gtin batch serial",
			"0103012345678901\x1d10ABC123\x1d21Serial123",
			[]pair{{"01", "03012345678901", false}, {"10", "ABC123", true}, {"21", "Serial123", true}},
		},
		{
			"fixed before variable needs no separator",
			"01003024688761231035PK132100abcd",
			[]pair{{"01", "00302468876123", false}, {"10", "35PK132100abcd", true}},
		},
		{
			"decimal family",
			"3102987654",
			[]pair{{"3102", "987654", false}},
		},
		{
			"decimal family truncated",
			"31012345",
			[]pair{{"3101", "2345", false}},
		},
		{
			"date then batch",
			"17230503\x1d10X",
			[]pair{{"17", "230503", false}, {"10", "X", true}},
		},
		{
			"stray separators",
			"\x1d\x1d0103012345678901\x1d\x1d\x1d21S",
			[]pair{{"01", "03012345678901", false}, {"21", "S", true}},
		},
		{
			"unterminated variable",
			"21ABC",
			[]pair{{"21", "ABC", true}},
		},
		{
			"truncated fixed",
			"01123",
			[]pair{{"01", "123", false}},
		},
		{
			"ai at end of input",
			"10ABC\x1d21",
			[]pair{{"10", "ABC", true}, {"21", "", true}},
		},
		{
			"four digit ai",
			"70032305031200\x1d",
			[]pair{{"7003", "2305031200", false}},
		},
		{
			"processor numbers are not decimals",
			"7032ABC",
			[]pair{{"7032", "ABC", true}},
		},
		{
			"skip and resync",
			"??0103012345678901",
			[]pair{{"01", "03012345678901", false}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pairs(sc.Scan(tc.in)))
		})
	}
}

func TestScanSynthesizesDecimalPosition(t *testing.T) {
	tokens := New(ai.Builtin()).Scan("3923123")
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, "3923", tok.AI)
	assert.Equal(t, "PRICE", tok.Def.Name)
	assert.True(t, tok.Def.HasDecimals)
	assert.Equal(t, 3, tok.Def.Decimals)
	assert.True(t, tok.Variable)
	assert.Equal(t, "123", tok.Value)
}

func TestScanOffsets(t *testing.T) {
	in := "0103012345678901\x1d10ABC"
	tokens := New(ai.Builtin()).Scan(in)
	require.Len(t, tokens, 2)
	for _, tok := range tokens {
		assert.Equal(t, tok.Value, in[tok.Start:tok.End])
	}
	assert.Equal(t, 2, tokens[0].Start)
	assert.Equal(t, 16, tokens[0].End)
	assert.Equal(t, 19, tokens[1].Start)
	assert.Equal(t, 22, tokens[1].End)
}

func TestFixedLengthCountsBytes(t *testing.T) {
	in := "0112345678901éé"
	tokens := New(ai.Builtin()).Scan(in)
	require.Len(t, tokens, 1)
	assert.Len(t, tokens[0].Value, 14)
	assert.Equal(t, 16, tokens[0].End)
	assert.False(t, utf8.ValidString(tokens[0].Value), "value ends inside a rune")
}

func TestLongestMatchWins(t *testing.T) {
	// "12" is a valid AI and also the first two digits of "1234".
	reg, err := ai.New("fixture", []ai.Definition{
		{Code: "12", Name: "SHORT", MaxLength: 2, Fixed: true},
		{Code: "1234", Name: "LONG", MaxLength: 3, Fixed: true},
		{Code: "123", Name: "MIDDLE", MaxLength: 1, Fixed: true},
	})
	require.NoError(t, err)

	tokens := New(reg).Scan("1234ABC")
	require.Len(t, tokens, 1)
	assert.Equal(t, "1234", tokens[0].AI)
	assert.Equal(t, "LONG", tokens[0].Def.Name)
	assert.Equal(t, "ABC", tokens[0].Value)

	tokens = New(reg).Scan("1239")
	require.Len(t, tokens, 1)
	assert.Equal(t, "123", tokens[0].AI)

	tokens = New(reg).Scan("1299")
	require.Len(t, tokens, 1)
	assert.Equal(t, "12", tokens[0].AI)
}

func TestExactCodeBeatsTemplate(t *testing.T) {
	reg, err := ai.New("fixture", []ai.Definition{
		{Code: "3103", Name: "EXACT", MaxLength: 6, Fixed: true},
		{Code: "310y", Name: "TEMPLATE", MaxLength: 6, Fixed: true},
	})
	require.NoError(t, err)
	sc := New(reg)

	tokens := sc.Scan("3103000100")
	require.Len(t, tokens, 1)
	assert.Equal(t, "EXACT", tokens[0].Def.Name)
	assert.False(t, tokens[0].Def.HasDecimals)

	tokens = sc.Scan("3104000100")
	require.Len(t, tokens, 1)
	assert.Equal(t, "TEMPLATE", tokens[0].Def.Name)
	assert.Equal(t, 4, tokens[0].Def.Decimals)
}

func TestTemplateCodeInInputIsNotAnAI(t *testing.T) {
	// The literal text "310y" must not resolve the template entry; the
	// scanner skips the '3' and resyncs on "10".
	tokens := New(ai.Builtin()).Scan("310y")
	require.Len(t, tokens, 1)
	assert.Equal(t, "10", tokens[0].AI)
	assert.Equal(t, "y", tokens[0].Value)
}

func TestScanBoundedTermination(t *testing.T) {
	sc := New(ai.Builtin())
	for _, n := range []int{0, 1, 100, 10000} {
		in := strings.Repeat("x", n)
		tokens, steps := sc.scan(in)
		assert.Empty(t, tokens)
		assert.Equal(t, n, steps, "one step per unmatched character")
		assert.LessOrEqual(t, steps, MaxSteps(n))
	}
}

func TestScanNeverPanics(t *testing.T) {
	sc := New(ai.Builtin())
	inputs := []string{
		"",
		" ",
		"\x1d",
		"0",
		"01",
		"310",
		"3109",
		"\x00\xff\xfe\x1d\x1d01",
		strings.Repeat("01", 5000),
		strings.Repeat("\x1d21", 3000),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { sc.Scan(in) })
	}
	assert.NotPanics(t, func() { New(nil).Scan("0103012345678901") })
}
