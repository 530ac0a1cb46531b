package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestGuessEncoding(t *testing.T) {
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("テスト"))
	require.NoError(t, err)

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, UTF8},
		{"ascii", []byte("0103012345678901\x1d10ABC"), ISO8859_1},
		{"utf8", []byte("café"), UTF8},
		{"latin1", []byte{'c', 'a', 'f', 0xE9}, ISO8859_1},
		{"shift_jis", sjis, ShiftJIS},
		{"utf16 bom", []byte{0xFE, 0xFF, 0x00, 0x41}, UTF16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GuessEncoding(tc.in))
		})
	}
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte("0103012345678901\x1d10ABC"), "")
	require.NoError(t, err)
	assert.Equal(t, "0103012345678901\x1d10ABC", s)

	s, err = Decode([]byte{'c', 'a', 'f', 0xE9}, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = Decode([]byte{'c', 'a', 'f', 0xE9}, "ISO8859_1")
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("10テスト"))
	require.NoError(t, err)
	s, err = Decode(sjis, "")
	require.NoError(t, err)
	assert.Equal(t, "10テスト", s)

	s, err = Decode(sjis, "SJIS")
	require.NoError(t, err)
	assert.Equal(t, "10テスト", s)

	_, err = Decode([]byte{0xC3}, "UTF-8")
	assert.ErrorIs(t, err, ErrInvalidText)

	_, err = Decode([]byte("x"), "no-such-charset")
	assert.ErrorIs(t, err, ErrUnknownCharset)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"utf-8", "", "Shift_JIS", "sjis", "windows-1252", "Cp1252", "GB2312", "ISO-8859-15"} {
		t.Run(name, func(t *testing.T) {
			e, err := Lookup(name)
			require.NoError(t, err)
			assert.NotNil(t, e)
		})
	}
}

func TestECI(t *testing.T) {
	name, err := NameForECI(26)
	require.NoError(t, err)
	assert.Equal(t, UTF8, name)

	name, err = NameForECI(3)
	require.NoError(t, err)
	assert.Equal(t, ISO8859_1, name)

	_, err = NameForECI(14)
	assert.ErrorIs(t, err, ErrUnknownCharset)
	_, err = NameForECI(900)
	assert.ErrorIs(t, err, ErrUnknownCharset)
	_, err = NameForECI(-1)
	assert.ErrorIs(t, err, ErrUnknownCharset)

	s, err := DecodeECI([]byte{'c', 'a', 'f', 0xE9}, 1)
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}
