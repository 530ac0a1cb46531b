// Package format turns raw AI values into their presentation form: YYMMDD
// dates become ISO dates, implied-decimal measures get their decimal point,
// and identification keys are checked against their GS1 check digit.
//
// Every function is total. Input that cannot be formatted is returned as is.
package format

import (
	"github.com/ericlevine/gs1parse/ai"
)

var dateAIs = map[string]bool{
	"11":   true, // production date
	"12":   true, // due date
	"13":   true, // packaging date
	"15":   true, // best before
	"16":   true, // sell by
	"17":   true, // expiry
	"7006": true, // first freeze date
}

// IsDateAI reports whether values of code are YYMMDD dates.
func IsDateAI(code string) bool {
	return dateAIs[code]
}

// Value formats raw according to def. The second result is the outcome of a
// check-digit test when def names an identification key of the expected
// length, and nil otherwise.
func Value(def ai.Definition, raw string) (string, *bool) {
	switch {
	case IsDateAI(def.Code):
		return Date(raw), nil
	case def.HasDecimals:
		return Decimal(raw, def.Decimals), nil
	}
	return raw, checkFlag(def.Code, raw)
}

func checkFlag(code, raw string) *bool {
	var ok bool
	switch {
	case (code == "01" || code == "02") && len(raw) == 14:
		ok = IsValidGTIN(raw)
	case code == "00" && len(raw) == 18:
		ok = IsValidSSCC(raw)
	case isGLNAI(code) && len(raw) == 13:
		ok = IsValidGLN(raw)
	default:
		return nil
	}
	return &ok
}

// 410-417: ship to, bill to, purchased from, ship for, location, invoicing
// party, production and physical location.
func isGLNAI(code string) bool {
	return len(code) == 3 && code[0] == '4' && code[1] == '1' && code[2] >= '0' && code[2] <= '7'
}
