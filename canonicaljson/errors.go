package canonicaljson

import "errors"

// ErrInvalidInput is the sole error kind raised by canonicalization. It
// always indicates a malformed value supplied by the caller (non-finite
// number, unsupported type, unparseable JSON, excessive nesting) and is
// never retryable: the input itself must be fixed.
var ErrInvalidInput = errors.New("canonicaljson: invalid input")
