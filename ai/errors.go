package ai

import "errors"

var (
	// ErrTableUnavailable is returned when an AI table file cannot be read or
	// decoded. Open pairs it with the builtin table so callers can keep going.
	ErrTableUnavailable = errors.New("ai table unavailable")

	// ErrInvalidDefinition is returned when a table row is malformed.
	ErrInvalidDefinition = errors.New("invalid ai definition")
)
