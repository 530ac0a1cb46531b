package gs1parse

import "errors"

var (
	// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
	ErrUnknownMode = errors.New("gs1parse: unknown mode")

	// ErrPayloadEncoding is returned by ParseBytes when the payload bytes
	// cannot be decoded to text.
	ErrPayloadEncoding = errors.New("gs1parse: payload encoding")
)
