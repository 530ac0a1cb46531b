// Package gs1parse extracts GS1 Application Identifier data from decoded
// barcode payloads.
//
// A payload is the text a GS1-128, GS1 DataMatrix, GS1 QR or DataBar decoder
// returns, for example
//
//	]d20103012345678901\x1d10ABC123\x1d21SER1
//
// Parse strips the symbology identifier, canonicalizes group separators,
// splits the element string into (AI, value) pairs, formats dates and
// implied-decimal measures, and checks identification keys:
//
//	res := gs1parse.Parse(payload, false)
//	res.Fields["GTIN"]      // "03012345678901"
//	res.Fields["BATCH/LOT"] // "ABC123"
//
// Parsing is total. Malformed input is skipped over rather than reported, so
// any string yields a Result, possibly empty. A Parser holds only immutable
// state and is safe for concurrent use.
//
// The subpackages can be used on their own: ai holds the identifier table,
// normalize the separator rewriting, scanner the tokenizer, format the value
// formatting, symbology the barcode format classifier and charset the byte
// payload decoding.
package gs1parse
