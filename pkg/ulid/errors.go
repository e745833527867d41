package ulid

import (
	"errors"
	"fmt"
)

var (
	// ErrBytesLength is matched by every *BytesError.
	ErrBytesLength = errors.New("invalid bytes length")
	// ErrInvalidCharacter is matched by a *ParseError of kind InvalidCharacter.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidLength is matched by a *ParseError of kind InvalidLength.
	ErrInvalidLength = errors.New("invalid length")
)

// BytesError reports a byte source of the wrong length.
type BytesError struct {
	Expected int
	Found    int
}

func (e *BytesError) Error() string {
	return fmt.Sprintf("invalid bytes length: expected %d, found %d", e.Expected, e.Found)
}

func (e *BytesError) Unwrap() error { return ErrBytesLength }

// ParseErrorKind tells which check rejected a string.
type ParseErrorKind int

const (
	InvalidCharacter ParseErrorKind = iota + 1
	InvalidLength
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case InvalidLength:
		return "invalid length"
	default:
		return "unknown"
	}
}

// ParseError is returned by Parse and the text decoders.
//
// For InvalidCharacter, Char is the offending byte (as a rune) and Index
// is its position inside the 8-symbol group being decoded, not inside the
// whole string. Offset carries the absolute position.
// For InvalidLength, Length is the length that was found.
type ParseError struct {
	Kind   ParseErrorKind
	Char   rune
	Index  int
	Offset int
	Length int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("%s: expected valid base32, found %c at index %d", e.Kind, e.Char, e.Index)
	case InvalidLength:
		return fmt.Sprintf("%s: expected %d, found %d", e.Kind, EncodedSize, e.Length)
	default:
		return "ulid: parse error"
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case InvalidLength:
		return ErrInvalidLength
	default:
		return nil
	}
}
