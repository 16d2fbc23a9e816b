package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned when a character outside A-Z is parsed as a Symbol.
var ErrInvalidCharacter = errors.New("invalid character")

// ErrInvalidLength is returned when a block string is longer than BlockSize.
var ErrInvalidLength = errors.New("invalid length")

// ErrInvalidAction is returned when a selector symbol does not name one of the six actions.
var ErrInvalidAction = errors.New("invalid action")

// ErrEmptyReduction is returned when a seed yields no (chunk, selector) pairs to fold.
var ErrEmptyReduction = errors.New("empty reduction")

// SymbolError reports the offending character of a failed parse or selection.
// It unwraps to ErrInvalidCharacter or ErrInvalidAction.
type SymbolError struct {
	Kind  error
	Char  rune
	Index int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v %q at position %d", e.Kind, e.Char, e.Index)
}

func (e *SymbolError) Unwrap() error {
	return e.Kind
}

// Kind returns a stable short name for the sentinel wrapped by err, or "internal".
// Adapters use it to report failures in machine-readable form.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrInvalidAction):
		return "invalid_action"
	case errors.Is(err, ErrEmptyReduction):
		return "empty_reduction"
	default:
		return "internal"
	}
}
