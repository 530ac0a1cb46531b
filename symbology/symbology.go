// Package symbology guesses which barcode symbology produced a decoded
// payload, and whether that payload carries GS1 element strings.
//
// The guess combines three sources in decreasing order of trust: the format
// reported by the decoder, the decoder itself, and heuristics over the
// payload text. It is a best effort label for callers and never affects
// parsing.
package symbology

import (
	"fmt"
	"strings"
)

// Format is a symbology label.
type Format int

const (
	FormatUnknown Format = iota
	FormatDataMatrix
	FormatQRCode
	FormatCode128
	FormatGS1128
	FormatGS1DataMatrix
	FormatGS1QRCode
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatDataMatrix:
		return "DataMatrix"
	case FormatQRCode:
		return "QR Code"
	case FormatCode128:
		return "Code 128"
	case FormatGS1128:
		return "GS1-128"
	case FormatGS1DataMatrix:
		return "GS1 DataMatrix"
	case FormatGS1QRCode:
		return "GS1 QR Code"
	default:
		return "Unknown"
	}
}

// IsGS1 reports whether f is one of the GS1 variants.
func (f Format) IsGS1() bool {
	switch f {
	case FormatGS1128, FormatGS1DataMatrix, FormatGS1QRCode:
		return true
	default:
		return false
	}
}

// MarshalText encodes f as its display name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Formats lists every known format except FormatUnknown.
func Formats() []Format {
	return []Format{
		FormatDataMatrix,
		FormatQRCode,
		FormatCode128,
		FormatGS1128,
		FormatGS1DataMatrix,
		FormatGS1QRCode,
	}
}

// Decoder names the engine that read the symbol.
type Decoder int

const (
	DecoderNone Decoder = iota
	DecoderZXing
	DecoderLibDMTX
)

func (d Decoder) String() string {
	switch d {
	case DecoderZXing:
		return "ZXing"
	case DecoderLibDMTX:
		return "libdmtx"
	default:
		return "none"
	}
}

// MarshalText encodes d as its name.
func (d Decoder) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDecoder maps a decoder name to a Decoder. The empty string and "none"
// give DecoderNone.
func ParseDecoder(s string) (Decoder, error) {
	switch squash(s) {
	case "", "NONE":
		return DecoderNone, nil
	case "ZXING":
		return DecoderZXing, nil
	case "LIBDMTX", "PYLIBDMTX", "DMTX":
		return DecoderLibDMTX, nil
	default:
		return DecoderNone, fmt.Errorf("%w: %q", ErrUnknownDecoder, s)
	}
}

// Hint is the symbology reported by the decoder, if any.
type Hint int

const (
	HintNone Hint = iota
	HintDataMatrix
	HintQRCode
	HintCode128
	// HintOther is a format the decoder named but this package does not
	// distinguish, such as PDF_417.
	HintOther
)

func (h Hint) String() string {
	switch h {
	case HintDataMatrix:
		return "DATA_MATRIX"
	case HintQRCode:
		return "QR_CODE"
	case HintCode128:
		return "CODE_128"
	case HintOther:
		return "OTHER"
	default:
		return ""
	}
}

// ParseHint maps a decoder format name to a Hint. Case, underscores, dashes
// and spaces are ignored, so "DATA_MATRIX", "datamatrix" and "Data Matrix"
// are the same hint. Unrecognized non-empty names give HintOther.
func ParseHint(s string) Hint {
	switch squash(s) {
	case "":
		return HintNone
	case "DATAMATRIX", "DM":
		return HintDataMatrix
	case "QRCODE", "QR":
		return HintQRCode
	case "CODE128", "GS1128":
		return HintCode128
	default:
		return HintOther
	}
}

func squash(s string) string {
	return strings.ToUpper(strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.TrimSpace(s)))
}
