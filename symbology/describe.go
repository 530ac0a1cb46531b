package symbology

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ericlevine/gs1parse/normalize"
)

// Characteristics summarizes the payload text.
type Characteristics struct {
	Length       int      `json:"length"`
	ContentType  string   `json:"content_type"`
	SpecialChars bool     `json:"contains_special_chars"`
	PotentialAIs []string `json:"potential_ais,omitempty"`
}

// Details is Info plus a confidence score and payload characteristics.
type Details struct {
	Info
	Confidence      float64         `json:"confidence"`
	Characteristics Characteristics `json:"characteristics"`
}

// Describe returns the detailed classification of raw as format f, read by
// decoder.
func Describe(raw string, decoder Decoder, f Format) Details {
	return Details{
		Info:            Info{Decoder: decoder, Format: f, IsGS1: f.IsGS1()},
		Confidence:      Confidence(raw, decoder, f),
		Characteristics: Characterize(raw, f),
	}
}

// Confidence scores how well raw, decoder and f agree, in [0, 1].
func Confidence(raw string, decoder Decoder, f Format) float64 {
	var score float64
	switch decoder {
	case DecoderZXing:
		score = 0.8
	case DecoderLibDMTX:
		score = 0.7
	case DecoderNone:
		score = 0.5
	}

	switch {
	case f == FormatGS1DataMatrix && decoder == DecoderLibDMTX,
		f == FormatGS1128 && decoder == DecoderZXing:
		score += 0.2
	case f != FormatUnknown:
		score += 0.1
	}

	if f.IsGS1() {
		if commonAI.MatchString(raw) {
			score += 0.1
		}
		if f == FormatGS1DataMatrix && strings.ContainsAny(raw, "."+string(normalize.GS)) {
			score += 0.1
		}
	}
	if score > 1 {
		score = 1
	}
	return score
}

// Characterize describes the text of raw. Candidate AIs are listed only for
// GS1 formats.
func Characterize(raw string, f Format) Characteristics {
	c := Characteristics{
		Length:      utf8.RuneCountInString(raw),
		ContentType: "numeric",
	}
	for _, r := range raw {
		if unicode.IsLetter(r) {
			c.ContentType = "alphanumeric"
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			c.SpecialChars = true
		}
	}
	if f.IsGS1() {
		c.PotentialAIs = anyAI.FindAllString(raw, -1)
	}
	return c
}
