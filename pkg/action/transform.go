package action

import "github.com/aretw0/marvin/pkg/domain"

// Transform is a primitive block operation.
type Transform func(domain.Block) domain.Block

// Reverse returns b with its symbol order reversed.
func Reverse(b domain.Block) domain.Block {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// ConsonantShift applies Rot13 to every symbol that is not a vowel.
func ConsonantShift(b domain.Block) domain.Block {
	for i, s := range b {
		if !s.IsVowel() {
			b[i] = s.Rot13()
		}
	}
	return b
}

// SwapVowels makes one left-to-right pass, swapping each vowel with its left neighbour.
//
// The pass reads and writes the same buffer, so a vowel moved into position i
// is the value examined when the scan reaches i+1 after a swap cascade.
func SwapVowels(b domain.Block) domain.Block {
	for i := 1; i < len(b); i++ {
		if b[i].IsVowel() {
			b[i-1], b[i] = b[i], b[i-1]
		}
	}
	return b
}

// CombinePositions replaces each disjoint adjacent pair with two copies of its sum.
func CombinePositions(b domain.Block) domain.Block {
	for i := 0; i < len(b); i += 2 {
		sum := b[i].Add(b[i+1])
		b[i], b[i+1] = sum, sum
	}
	return b
}

// RotateHalves moves the back half of the block in front of the front half.
func RotateHalves(b domain.Block) domain.Block {
	var out domain.Block
	half := len(b) / 2
	copy(out[:half], b[half:])
	copy(out[half:], b[:half])
	return out
}

// PositionalShift applies Rot13 to the symbols at odd indices
// (the 2nd, 4th, ... 16th positions).
func PositionalShift(b domain.Block) domain.Block {
	for i := 1; i < len(b); i += 2 {
		b[i] = b[i].Rot13()
	}
	return b
}
