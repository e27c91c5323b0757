// Package utils provides low-level helpers shared by the stream, format,
// and firmware packages: error wrapping, overflow-safe arithmetic, and
// size limits for wire-controlled lengths.
package utils

import "fmt"

// Kind classifies a codec error so callers can distinguish, for example,
// which level of the CRC tree failed without string-matching an error
// message.
type Kind int

const (
	// KindNone is the zero value; never attached to a real error.
	KindNone Kind = iota
	KindOpenFailed
	KindReadShort
	KindWriteShort
	KindHeaderCrcMismatch
	KindSuperCrcMismatch
	KindSubCrcMismatch
	KindBadIndex
	KindTrailingBytes
	KindDecodeFailed
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindOpenFailed:
		return "open failed"
	case KindReadShort:
		return "short read"
	case KindWriteShort:
		return "short write"
	case KindHeaderCrcMismatch:
		return "header CRC mismatch"
	case KindSuperCrcMismatch:
		return "super CRC mismatch"
	case KindSubCrcMismatch:
		return "sub CRC mismatch"
	case KindBadIndex:
		return "bad index section"
	case KindTrailingBytes:
		return "trailing bytes"
	case KindDecodeFailed:
		return "decode failed"
	case KindNotFound:
		return "not found"
	default:
		return "none"
	}
}

// CodecError is a structured codec error: a Kind the caller can match on,
// a human-readable Context describing where it happened, and an optional
// wrapped Cause.
type CodecError struct {
	Kind    Kind
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *CodecError) Unwrap() error {
	return e.Cause
}

// WrapError creates a contextual error of the given kind. Returns nil if
// cause is nil, so call sites can do `if err := WrapError(...); err != nil`
// without a separate nil check.
func WrapError(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &CodecError{Kind: kind, Context: context, Cause: cause}
}

// NewError creates a contextual error of the given kind with no wrapped cause.
func NewError(kind Kind, context string) error {
	return &CodecError{Kind: kind, Context: context}
}
