package action

import (
	"testing"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_Apply(t *testing.T) {
	tests := []struct {
		group    string
		action   rune
		expected string
	}{
		{"ABCDEFGHIJKLMNOP", 'A', "OACYZXIUWTESQOAP"},
		{"QRSTUVWXYZ", 'A', "ESQOAPYMKIUJGEFD"},
		{"ABCDEFGHIJKLMNOP", 'B', "SFWJANERCPGTKXOB"},
		{"ABCDEFGHIJKLMNOP", 'C', "PPGGXOOXFFWAAWRR"},
		{"ABCDEFGHIJKLMNOP", 'D', "OOKKGGCCEEAAWWSS"},
		{"ABCDEFGHIJKLMNOP", 'E', "CNBMYKWHVGSDRCOA"},
		{"ABCDEFGHIJKLMNOP", 'F', "OAPEDFUITJYXAOZP"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action)+"/"+tt.group, func(t *testing.T) {
			act, err := Select(domain.MustSymbol(tt.action))
			require.NoError(t, err)

			result := act.Apply(domain.MustBlock(tt.group))

			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestAction_ApplyIsTotal(t *testing.T) {
	alphabet := domain.Alphabet()
	for _, act := range All() {
		for _, s := range alphabet {
			var b domain.Block
			for i := range b {
				b[i] = s.Add(alphabet[i])
			}
			out := act.Apply(b)
			for _, o := range out {
				require.True(t, o >= 1 && o <= domain.AlphabetSize, "action %s produced %d", act, o)
			}
		}
	}
}

func TestSelect(t *testing.T) {
	for i, r := range "ABCDEF" {
		act, err := Select(domain.MustSymbol(r))
		require.NoError(t, err)
		assert.Equal(t, All()[i], act)
		assert.Equal(t, string(r), act.String())
	}

	for _, r := range "GHZ" {
		_, err := Select(domain.MustSymbol(r))
		assert.ErrorIs(t, err, domain.ErrInvalidAction, "selector %c", r)
	}
}

func TestAction_Steps(t *testing.T) {
	assert.Equal(t, []string{"reverse", "consonant_shift", "swap_vowels"}, A.Steps())
	assert.Equal(t, []string{"combine_positions", "positional_shift", "rotate_halves"}, B.Steps())
	assert.Equal(t, []string{"consonant_shift", "combine_positions", "swap_vowels"}, C.Steps())
	assert.Equal(t, []string{"rotate_halves", "reverse", "combine_positions"}, D.Steps())
	assert.Equal(t, []string{"swap_vowels", "positional_shift", "reverse"}, E.Steps())
	assert.Equal(t, []string{"positional_shift", "swap_vowels", "consonant_shift"}, F.Steps())
	assert.Nil(t, Action(7).Steps())
}

func TestAction_ApplyInvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Action(0).Apply(domain.Block{}) })
	assert.Equal(t, "Action(9)", Action(9).String())
}
