package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/marvin/pkg/action"
	"github.com/aretw0/marvin/pkg/domain"
)

// ErrNoGroups is returned by Build when no group was added.
var ErrNoGroups = errors.New("seed has no groups")

type group struct {
	action action.Action
	chunk  string
}

// Builder collects groups in reduction order.
type Builder struct {
	groups []group
}

// New creates an empty seed builder.
func New() *Builder {
	return &Builder{}
}

// Group appends a chunk to be transformed by a.
// Every chunk but the last must hold exactly 16 letters.
func (b *Builder) Group(a action.Action, chunk string) *Builder {
	b.groups = append(b.groups, group{action: a, chunk: chunk})
	return b
}

// Build validates the groups and returns the seed: all selectors, then all chunks.
func (b *Builder) Build() (string, error) {
	if len(b.groups) == 0 {
		return "", ErrNoGroups
	}

	var preamble, body strings.Builder
	last := len(b.groups) - 1
	for i, g := range b.groups {
		if !g.action.Valid() {
			return "", fmt.Errorf("group %d: %w: %s", i, domain.ErrInvalidAction, g.action)
		}
		if _, err := domain.ParseBlock(g.chunk); err != nil {
			return "", fmt.Errorf("group %d: %w", i, err)
		}
		switch {
		case g.chunk == "":
			return "", fmt.Errorf("group %d: %w: empty chunk", i, domain.ErrInvalidLength)
		case i < last && len(g.chunk) != domain.BlockSize:
			return "", fmt.Errorf("group %d: %w: %d letters before the last group", i, domain.ErrInvalidLength, len(g.chunk))
		}

		preamble.WriteString(g.action.String())
		body.WriteString(g.chunk)
	}
	return preamble.String() + body.String(), nil
}

// MustBuild is Build for seeds known to be valid. It panics on error.
func (b *Builder) MustBuild() string {
	seed, err := b.Build()
	if err != nil {
		panic(err)
	}
	return seed
}
