package symbology

import "errors"

// ErrUnknownDecoder is returned by ParseDecoder for a name it does not know.
var ErrUnknownDecoder = errors.New("symbology: unknown decoder")
