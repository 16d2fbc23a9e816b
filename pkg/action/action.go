package action

import (
	"fmt"

	"github.com/aretw0/marvin/pkg/domain"
)

// Action is one of the six composite transformations, numbered like its selector symbol.
type Action uint8

const (
	A Action = iota + 1
	B
	C
	D
	E
	F
)

// step is a named transform, kept so pipelines can be explained.
type step struct {
	name string
	fn   Transform
}

var (
	reverse          = step{"reverse", Reverse}
	consonantShift   = step{"consonant_shift", ConsonantShift}
	swapVowels       = step{"swap_vowels", SwapVowels}
	combinePositions = step{"combine_positions", CombinePositions}
	rotateHalves     = step{"rotate_halves", RotateHalves}
	positionalShift  = step{"positional_shift", PositionalShift}
)

// pipelines lists each action's transforms in application order.
var pipelines = [...][]step{
	A: {reverse, consonantShift, swapVowels},
	B: {combinePositions, positionalShift, rotateHalves},
	C: {consonantShift, combinePositions, swapVowels},
	D: {rotateHalves, reverse, combinePositions},
	E: {swapVowels, positionalShift, reverse},
	F: {positionalShift, swapVowels, consonantShift},
}

// All returns the actions in selector order.
func All() []Action {
	return []Action{A, B, C, D, E, F}
}

// Select maps a selector symbol (A..F) to its Action.
func Select(s domain.Symbol) (Action, error) {
	a := Action(s)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: selector %s", domain.ErrInvalidAction, s)
	}
	return a, nil
}

// Valid reports whether a is one of A..F.
func (a Action) Valid() bool {
	return a >= A && a <= F
}

// Apply runs the action's pipeline on b.
// It panics if a is not Valid; use Select to obtain actions from untrusted symbols.
func (a Action) Apply(b domain.Block) domain.Block {
	if !a.Valid() {
		panic("action: Apply called on " + a.String())
	}
	for _, st := range pipelines[a] {
		b = st.fn(b)
	}
	return b
}

// Steps returns the names of the transforms a applies, first applied first.
func (a Action) Steps() []string {
	if !a.Valid() {
		return nil
	}
	names := make([]string, 0, len(pipelines[a]))
	for _, st := range pipelines[a] {
		names = append(names, st.name)
	}
	return names
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return domain.Symbol(a).String()
}

// MarshalText encodes a as its selector letter.
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, domain.ErrInvalidAction
	}
	return []byte(a.String()), nil
}
