package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/marvin/pkg/domain"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "MARVIN_MAX_SEED_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput checks user input by enforcing size limits,
// validating UTF-8, and rejecting dangerous control characters.
// The limit comes from EnvMaxInputSize, falling back to DefaultMaxInputSize.
func SanitizeInput(input string) (string, error) {
	return SanitizeInputLimit(input, getMaxInputSize())
}

// SanitizeInputLimit is SanitizeInput with an explicit size limit.
// A non-positive limit disables the size check.
func SanitizeInputLimit(input string, limit int) (string, error) {
	// 1. Enforce Size Limit
	if limit > 0 && len(input) > limit {
		// We explicitly reject rather than truncate to ensure deterministic state.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	// 2. Validate UTF-8
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// 3. Reject Control Characters
	// The reducer would reject them too, but only after the seed had been
	// echoed into logs. ANSI codes (ESC), NULL, BEL, etc. never get that far.
	// Newline, tab and carriage return are whitespace and are kept.
	for i, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return "", &domain.SymbolError{Kind: domain.ErrInvalidCharacter, Char: r, Index: i}
		}
	}
	return input, nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
