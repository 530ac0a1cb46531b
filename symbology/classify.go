package symbology

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ericlevine/gs1parse/normalize"
)

// aiPattern matches the Application Identifiers most often seen at the
// start of real GS1 payloads.
const aiPattern = `00|01|02|10|11|13|15|17|20|21|30|31|32|33|34|35|36|37|` +
	`90|91|92|93|94|95|96|97|98|99|240|241|242|250|251|253|254|255|` +
	`3\d{3}|4\d{2}|7\d{3}|8\d{3}`

var (
	leadingAI = regexp.MustCompile(`^(?:` + aiPattern + `)`)
	anyAI     = regexp.MustCompile(aiPattern)
	// Prefixes for Application Identifier heavy payloads.
	commonAI = regexp.MustCompile(`^(?:00|01|02|10|11|13|15|17|20|21|30)`)
)

// Info is the classification of one payload.
type Info struct {
	Decoder Decoder `json:"decoder"`
	Format  Format  `json:"format"`
	IsGS1   bool    `json:"is_gs1"`
}

// IsGS1 reports whether raw looks like GS1 data: it starts with a common AI
// or a GS1 symbology identifier, or it contains a group separator.
func IsGS1(raw string) bool {
	if leadingAI.MatchString(raw) || strings.IndexByte(raw, normalize.GS) >= 0 {
		return true
	}
	// ]Q1 is what several QR decoders emit for GS1 QR in place of ]Q3.
	if strings.HasPrefix(raw, "]Q1") {
		return true
	}
	return normalize.HasPrefix(raw)
}

// Classify labels raw. A decoder hint wins over everything else; without
// one, the decoder and then the payload text decide.
func Classify(raw string, decoder Decoder, hint Hint) Info {
	f := detect(raw, decoder, hint)
	return Info{Decoder: decoder, Format: f, IsGS1: f.IsGS1()}
}

func detect(raw string, decoder Decoder, hint Hint) Format {
	gs1 := IsGS1(raw)
	switch hint {
	case HintDataMatrix:
		if gs1 {
			return FormatGS1DataMatrix
		}
		return FormatDataMatrix
	case HintQRCode:
		if gs1 {
			return FormatGS1QRCode
		}
		return FormatQRCode
	case HintCode128:
		if gs1 {
			return FormatGS1128
		}
		return FormatCode128
	case HintOther:
		f := generic(raw)
		if gs1 && (f == FormatCode128 || f == FormatUnknown) {
			return FormatGS1128
		}
		return f
	case HintNone:
	}

	switch decoder {
	case DecoderLibDMTX:
		// libdmtx reads nothing but DataMatrix.
		if gs1 {
			return FormatGS1DataMatrix
		}
		return FormatDataMatrix
	case DecoderZXing, DecoderNone:
	}

	if !gs1 {
		return generic(raw)
	}
	switch {
	case looksLikeDataMatrix(raw):
		return FormatGS1DataMatrix
	case looksLikeQRCode(raw):
		return FormatGS1QRCode
	default:
		return FormatGS1128
	}
}

func generic(raw string) Format {
	switch {
	case raw == "":
		return FormatUnknown
	case looksLikeDataMatrix(raw):
		return FormatDataMatrix
	case looksLikeQRCode(raw):
		return FormatQRCode
	case isCode128Text(raw):
		return FormatCode128
	default:
		return FormatUnknown
	}
}

func looksLikeDataMatrix(raw string) bool {
	if strings.HasPrefix(raw, "]d2") || strings.Contains(raw, ".") {
		return true
	}
	return false
}

func looksLikeQRCode(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(raw, "]Q") ||
		strings.Contains(lower, "http") ||
		strings.Contains(lower, "www.") ||
		utf8.RuneCountInString(raw) > 100
}

func isCode128Text(raw string) bool {
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+-/", r) {
			continue
		}
		return false
	}
	return true
}
