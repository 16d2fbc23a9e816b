package dsl

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/marvin/internal/runtime"
	"github.com/aretw0/marvin/pkg/action"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Layout(t *testing.T) {
	seed, err := New().
		Group(action.A, "CDEFGHIJKLMNOPQR").
		Group(action.B, "STUVWXYZ").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", seed)

	fp, err := runtime.NewReducer().Reduce(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, "HTVUNWOZVUNXZAPB", fp)
}

func TestBuilder_EveryActionSurvivesReduction(t *testing.T) {
	full := "QWERTYUIOPASDFGH"
	b := New()
	for _, a := range action.All() {
		b.Group(a, full)
	}
	b.Group(action.C, "Z")
	seed := b.MustBuild()

	trace, err := runtime.NewReducer().Explain(context.Background(), seed, domain.ModePreamble)
	require.NoError(t, err)
	require.Len(t, trace.Steps, 7)
	assert.Equal(t, "ABCDEFC", trace.Preamble)
	assert.Equal(t, "Z", trace.Steps[6].Chunk)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		target  error
	}{
		{"Empty", New(), ErrNoGroups},
		{"Invalid Action", New().Group(action.Action(7), "ABC"), domain.ErrInvalidAction},
		{"Short Middle Chunk", New().Group(action.A, "ABC").Group(action.B, "DEF"), domain.ErrInvalidLength},
		{"Empty Chunk", New().Group(action.A, ""), domain.ErrInvalidLength},
		{"Long Chunk", New().Group(action.A, strings.Repeat("A", 17)), domain.ErrInvalidLength},
		{"Lowercase", New().Group(action.A, "abc"), domain.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.target)
		})
	}

	assert.Panics(t, func() { New().MustBuild() })
}
