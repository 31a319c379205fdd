package asc100

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching. Errors returned by Encode and Decode
// carry the offending value and match exactly one of these.
var (
	ErrInvalidChar       = errors.New("asc100: invalid source character")
	ErrInvalidPackedChar = errors.New("asc100: invalid packed character")
	ErrInvalidIndex      = errors.New("asc100: invalid index")
	ErrNonASCIIInput     = errors.New("asc100: non-ascii input")
)

// InvalidCharError reports a source character outside the base alphabet
// under the Strict filter.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("asc100: invalid character %q", e.Char)
}

func (e *InvalidCharError) Is(target error) bool { return target == ErrInvalidChar }

// InvalidPackedCharError reports a decode input byte outside the packing
// alphabet.
type InvalidPackedCharError struct {
	Char byte
}

func (e *InvalidPackedCharError) Error() string {
	return fmt.Sprintf("asc100: invalid packed character %q", e.Char)
}

func (e *InvalidPackedCharError) Is(target error) bool { return target == ErrInvalidPackedChar }

// InvalidIndexError reports a decoded 7-bit value the active strategy does
// not support, or a reserved marker code with no spelling.
type InvalidIndexError struct {
	Index byte
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("asc100: invalid index %d", e.Index)
}

func (e *InvalidIndexError) Is(target error) bool { return target == ErrInvalidIndex }

// NonASCIIError reports a rune at or above 0x80 that reached index
// resolution. Filtering removes or rejects such runes first, so seeing this
// error means the filter stage was bypassed.
type NonASCIIError struct {
	Rune rune
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("asc100: non-ascii rune %q", e.Rune)
}

func (e *NonASCIIError) Is(target error) bool { return target == ErrNonASCIIInput }
