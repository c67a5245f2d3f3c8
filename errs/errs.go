// Package errs defines the sentinel errors returned by the chainpack codec.
//
// Callers should compare against these with errors.Is, since many of them
// are wrapped with positional context before being returned.
package errs

import "errors"

var (
	// ErrUnexpectedEOF is returned when a reader needs a byte past the end of input.
	ErrUnexpectedEOF = errors.New("chainpack: unexpected end of stream")

	// ErrInvalidTag is returned when a tag byte has no defined meaning in the
	// position it was read from.
	ErrInvalidTag = errors.New("chainpack: invalid tag byte")

	// ErrInvalidUTF8 is returned when a String payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chainpack: invalid UTF-8 in string payload")

	// ErrTypeMismatch is returned when a writer is asked to encode a payload
	// inconsistent with its declared Type (array element mismatch, negative
	// IMap key, non-representable metadata value, ...).
	ErrTypeMismatch = errors.New("chainpack: value type mismatch")

	// ErrOverflow is returned when a UInt exceeds the 18-byte wire ceiling on
	// write, or a decoded integer exceeds the implementation's 64-bit bound.
	ErrOverflow = errors.New("chainpack: integer overflow")

	// ErrDepthExceeded is returned when structural recursion (containers or
	// metadata) exceeds the configured maximum nesting depth.
	ErrDepthExceeded = errors.New("chainpack: maximum nesting depth exceeded")

	// ErrInvalidValue is returned when asked to serialize the sentinel
	// invalid Value variant, and by Reader.Unmarshal when bytes remain
	// after the decoded value.
	ErrInvalidValue = errors.New("chainpack: cannot serialize invalid value")
)
