// Package charset turns raw decoder bytes into UTF-8 text.
//
// Scanners and decoding libraries often hand over a byte payload along with
// an ECI number or a character set name, or with nothing at all. Decode
// resolves whichever is known, guesses otherwise, and always preserves the
// ASCII range, so GS1 group separators survive conversion unchanged.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownCharset is returned for a name or ECI value with no known encoding.
	ErrUnknownCharset = errors.New("charset: unknown character set")

	// ErrInvalidText is returned when bytes are not valid in the chosen encoding.
	ErrInvalidText = errors.New("charset: invalid text")
)

// Names used by GuessEncoding and accepted by Lookup.
const (
	UTF8      = "UTF-8"
	UTF16     = "UTF-16"
	ShiftJIS  = "Shift_JIS"
	ISO8859_1 = "ISO-8859-1"
)

// Short names decoders use that the IANA index does not know.
var aliases = map[string]encoding.Encoding{
	"SJIS":               japanese.ShiftJIS,
	"CP437":              charmap.CodePage437,
	"CP1250":             charmap.Windows1250,
	"CP1251":             charmap.Windows1251,
	"CP1252":             charmap.Windows1252,
	"CP1256":             charmap.Windows1256,
	"GB2312":             simplifiedchinese.GB18030,
	"GBK":                simplifiedchinese.GB18030,
	"EUC_CN":             simplifiedchinese.GB18030,
	"EUC_KR":             korean.EUCKR,
	"BIG5":               traditionalchinese.Big5,
	"UTF16":              unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"UNICODEBIGUNMARKED": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ASCII":              encoding.Nop,
	"TIS-620":            charmap.Windows874,
}

// Lookup returns the encoding for a character set name. UTF-8 and ASCII
// return encoding.Nop.
func Lookup(name string) (encoding.Encoding, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "", "UTF-8", "UTF8", "US-ASCII":
		return encoding.Nop, nil
	case "UTF-16":
		return aliases["UTF16"], nil
	}
	if e, ok := aliases[n]; ok {
		return e, nil
	}
	if strings.HasPrefix(n, "ISO8859_") {
		n = "ISO-8859-" + strings.TrimPrefix(n, "ISO8859_")
	}
	e, err := ianaindex.IANA.Encoding(n)
	if err != nil || e == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return e, nil
}

// Decode converts data from the named character set to UTF-8. An empty name
// means the encoding is guessed.
func Decode(data []byte, name string) (string, error) {
	if name == "" {
		name = GuessEncoding(data)
	}
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	if enc == encoding.Nop {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: not %s", ErrInvalidText, UTF8)
		}
		return string(data), nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidText, name, err)
	}
	return string(out), nil
}

// DecodeECI converts data using the character set an ECI designator names.
func DecodeECI(data []byte, eci int) (string, error) {
	name, err := NameForECI(eci)
	if err != nil {
		return "", err
	}
	return Decode(data, name)
}
