// Package errs declares the error kinds shared by the tl15 codecs.
//
// Errors returned by the codecs wrap one of these sentinels, so callers
// should compare with errors.Is rather than ==.
//
package errs

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedHeader is returned when a compressed stream does not
	// start with a recognized magic number.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrConfiguration is returned for out-of-range configuration values,
	// such as an LZW code width outside 9..31.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrUnexpectedEndOfStream is returned when a decoder runs out of bits
	// in the middle of a header or a symbol.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

	// ErrInternalInvariantViolation is returned when a decoder reaches a
	// state that a well-formed stream can never produce.
	ErrInternalInvariantViolation = errors.New("internal invariant violation")
)
