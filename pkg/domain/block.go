package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BlockSize is the number of symbols in a Block.
const BlockSize = 16

// Block is a fixed sequence of 16 symbols. It is a value type: copying a Block
// copies its symbols, so transformations never alias blocks owned elsewhere.
type Block [BlockSize]Symbol

// ParseBlock parses up to BlockSize uppercase letters into a Block.
//
// Strings shorter than BlockSize are padded with the leading symbols of the
// Alphabet, always starting at A, whatever the position of the text within a
// larger seed.
func ParseBlock(text string) (Block, error) {
	var b Block
	if len(text) > BlockSize {
		return b, fmt.Errorf("%w: %d exceeds block size %d", ErrInvalidLength, len(text), BlockSize)
	}
	for i := 0; i < len(text); i++ {
		s, err := ParseSymbol(rune(text[i]))
		if err != nil {
			return Block{}, &SymbolError{Kind: ErrInvalidCharacter, Char: runeAt(text, i), Index: i}
		}
		b[i] = s
	}
	pad := Alphabet()
	copy(b[len(text):], pad[:BlockSize-len(text)])
	return b, nil
}

// MustBlock is like ParseBlock but panics on invalid input.
func MustBlock(text string) Block {
	b, err := ParseBlock(text)
	if err != nil {
		panic(err)
	}
	return b
}

// Add combines two blocks position by position with Symbol.Add.
func (b Block) Add(o Block) Block {
	var out Block
	for i := range b {
		out[i] = b[i].Add(o[i])
	}
	return out
}

func (b Block) String() string {
	var sb strings.Builder
	sb.Grow(BlockSize)
	for _, s := range b {
		sb.WriteRune(s.Rune())
	}
	return sb.String()
}

// runeAt decodes the character starting at byte offset i so that errors name
// what the caller typed rather than a stray UTF-8 byte.
func runeAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// MarshalText encodes b as its 16-letter string.
func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a block string, padding it like ParseBlock.
func (b *Block) UnmarshalText(text []byte) error {
	v, err := ParseBlock(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
