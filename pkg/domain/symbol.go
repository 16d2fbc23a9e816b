package domain

import "sync"

// AlphabetSize is the number of symbols in the closed alphabet.
const AlphabetSize = 26

// Symbol is an uppercase ASCII letter stored as its 1-indexed alphabet position.
// A valid Symbol is always in [1,26].
type Symbol uint8

// ParseSymbol converts an uppercase ASCII letter into a Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	if r < 'A' || r > 'Z' {
		return 0, ErrInvalidCharacter
	}
	return Symbol(r-'A') + 1, nil
}

// MustSymbol is like ParseSymbol but panics on invalid input.
// It is intended for constants and tests.
func MustSymbol(r rune) Symbol {
	s, err := ParseSymbol(r)
	if err != nil {
		panic("domain: " + string(r) + " is not an uppercase letter")
	}
	return s
}

// IsVowel reports whether s is one of A, E, I, O, U or Y.
func (s Symbol) IsVowel() bool {
	switch s {
	case 1, 5, 9, 15, 21, 25:
		return true
	default:
		return false
	}
}

// Rot13 shifts s by half the alphabet. Applying it twice yields s.
func (s Symbol) Rot13() Symbol {
	return (s-1+13)%AlphabetSize + 1
}

// Add combines two symbols modulo 26. Z is the identity element.
func (s Symbol) Add(o Symbol) Symbol {
	return (s+o-1)%AlphabetSize + 1
}

// Rune returns the uppercase letter for s.
func (s Symbol) Rune() rune {
	return rune(s-1) + 'A'
}

func (s Symbol) String() string {
	return string(s.Rune())
}

var alphabet = sync.OnceValue(func() [AlphabetSize]Symbol {
	var a [AlphabetSize]Symbol
	for i := range a {
		a[i] = Symbol(i + 1)
	}
	return a
})

// Alphabet returns the symbols A..Z in order.
// The table is built once; callers receive a copy.
func Alphabet() [AlphabetSize]Symbol {
	return alphabet()
}

// MarshalText encodes s as its letter.
func (s Symbol) MarshalText() ([]byte, error) {
	if s < 1 || s > AlphabetSize {
		return nil, ErrInvalidCharacter
	}
	return []byte{byte(s.Rune())}, nil
}

// UnmarshalText decodes a single uppercase letter.
func (s *Symbol) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return ErrInvalidCharacter
	}
	v, err := ParseSymbol(rune(text[0]))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
