package runtime

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducer_Reduce(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want string
	}{
		{"Alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "HTVUNWOZVUNXZAPB"},
		{"Whitespace Ignored", " ABCDEFGHIJKLM\n\tNOPQRSTUVWXYZ \r\n", "HTVUNWOZVUNXZAPB"},
		{"Single Short Chunk", "AB", "AOYZXIUWTESQOAOP"},
		{"Second Action Only", "BQRSTUVWXYZ", "YLCPGTKXIVMZQDUH"},
		{"Two Alphabets", "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMNOPQRSTUVWXYZ", "KZRYVLEWDOHXQJTU"},
	}
	r := NewReducer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Reduce(context.Background(), tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReducer_ReduceImplicit(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want string
	}{
		{"Alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "TTTNANHHHCZCXTGT"},
		{"One Full Chunk", "ABCDEFGHIJKLMNOP", "OACYZXIUWTESQOAP"},
		{"Single Letter", "A", "AOYZXIUWTESQOAAP"},
		{"Route", "SOL\nALPHA\nBETA\nSOL", "YOAAFEOAUGYAYOCF"},
	}
	r := NewReducer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ReduceImplicit(context.Background(), tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReducer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		implicit bool
		want     error
		char     rune
		index    int
	}{
		{"Empty", "", false, domain.ErrEmptyReduction, 0, -1},
		{"Only Whitespace", " \n\t", true, domain.ErrEmptyReduction, 0, -1},
		{"Preamble Without Body", "A", false, domain.ErrEmptyReduction, 0, -1},
		{"Lowercase In Preamble", "aBCDEFGHIJKLMNOPQ", false, domain.ErrInvalidCharacter, 'a', 0},
		{"Digit In Body", "ABC4EFGHIJKLMNOPQRSTUVWXYZ", false, domain.ErrInvalidCharacter, '4', 3},
		{"Lowercase Implicit", "ABCdef", true, domain.ErrInvalidCharacter, 'd', 4},
		{"Unicode In Body", "AÉ", false, domain.ErrInvalidCharacter, 'É', 1},
		{"Selector Out Of Range", "GABCDEFGHIJKLMNOP", false, domain.ErrInvalidAction, 'G', 0},
		{"Second Selector Out Of Range", "AZABCDEFGHIJKLMNOPQRSTUVWXYZ", false, domain.ErrInvalidAction, 'Z', 1},
	}
	r := NewReducer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got string
				err error
			)
			if tt.implicit {
				got, err = r.ReduceImplicit(context.Background(), tt.seed)
			} else {
				got, err = r.Reduce(context.Background(), tt.seed)
			}
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)

			if tt.index >= 0 {
				var se *domain.SymbolError
				require.True(t, errors.As(err, &se), "expected a SymbolError, got %T", err)
				assert.Equal(t, tt.char, se.Char)
				assert.Equal(t, tt.index, se.Index)
			}
		})
	}
}

func TestReducer_TruncatesToShorterSequence(t *testing.T) {
	r := NewReducer()
	ctx := context.Background()
	chunks := strings.Repeat("ABCDEFGHIJKLMNOP", 2)

	// 35 letters: three selectors but a 32-letter body, so the third selector is unused.
	trace, err := r.Explain(ctx, "AB"+chunks+"Q", domain.ModePreamble)
	require.NoError(t, err)
	assert.Equal(t, "ABA", trace.Preamble)
	assert.Len(t, trace.Steps, 2)

	// 36 letters: three selectors and a one-letter tail, padded and paired with C.
	trace, err = r.Explain(ctx, "ABC"+chunks+"Q", domain.ModePreamble)
	require.NoError(t, err)
	assert.Equal(t, "ABC", trace.Preamble)
	require.Len(t, trace.Steps, 3)
	assert.Equal(t, "Q", trace.Steps[2].Chunk)
	assert.Equal(t, domain.MustSymbol('C'), trace.Steps[2].Selector)
	assert.Equal(t, "QABCDEFGHIJKLMNO", trace.Steps[2].Input.String())
}

func TestReducer_PaddingRestartsAtA(t *testing.T) {
	r := NewReducer()

	trace, err := r.Explain(context.Background(), "XYZ", domain.ModeImplicit)
	require.NoError(t, err)
	require.Len(t, trace.Steps, 1)
	assert.Equal(t, "XYZABCDEFGHIJKLM", trace.Steps[0].Input.String())

	trace, err = r.Explain(context.Background(), strings.Repeat("Q", 16)+"XYZ", domain.ModeImplicit)
	require.NoError(t, err)
	require.Len(t, trace.Steps, 2)
	assert.Equal(t, "XYZABCDEFGHIJKLM", trace.Steps[1].Input.String())
}

func TestReducer_Explain(t *testing.T) {
	r := NewReducer()

	trace, err := r.Explain(context.Background(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ", domain.ModeImplicit)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeImplicit, trace.Mode)
	assert.Equal(t, "AA", trace.Preamble)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", trace.Body)
	assert.Equal(t, "TTTNANHHHCZCXTGT", trace.Fingerprint)
	require.Len(t, trace.Steps, 2)
	assert.Equal(t, "OACYZXIUWTESQOAP", trace.Steps[0].Output.String())
	assert.Equal(t, "ESQOAPYMKIUJGEFD", trace.Steps[1].Output.String())
	assert.Equal(t, trace.Fingerprint, trace.Steps[0].Output.Add(trace.Steps[1].Output).String())
	assert.Equal(t, []string{"reverse", "consonant_shift", "swap_vowels"}, trace.Steps[0].Transforms)
}

func TestReducer_Canceled(t *testing.T) {
	r := NewReducer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Reduce(ctx, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReducer_GroupHook(t *testing.T) {
	var selectors string
	r := NewReducer(WithHooks(domain.LifecycleHooks{
		OnGroup: func(_ context.Context, e *domain.GroupEvent) {
			selectors += e.Selector.String()
		},
	}))

	_, err := r.Reduce(context.Background(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err)
	assert.Equal(t, "AB", selectors)
}

func TestPreambleLength(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 1}, {17, 1}, {18, 2}, {26, 2}, {34, 2}, {35, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreambleLength(strings.Repeat("A", tt.n)), "length %d", tt.n)
	}
}

func TestImplicitPreamble(t *testing.T) {
	assert.Equal(t, "", ImplicitPreamble(""))
	assert.Equal(t, "AX", ImplicitPreamble("X"))
	assert.Equal(t, "A"+strings.Repeat("B", 16), ImplicitPreamble(strings.Repeat("B", 16)))
	assert.Equal(t, "AA"+strings.Repeat("B", 17), ImplicitPreamble(strings.Repeat("B", 17)))
}
