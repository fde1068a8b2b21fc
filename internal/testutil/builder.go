package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/megal/resourced/internal/domain/registry"
)

// Builder accumulates fixture entries and declares them in order.
type Builder struct {
	t        *testing.T
	builders []*registry.Builder
}

// NewBuilder creates a fixture builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithEntry adds an entry for the resourced item at path.
func (b *Builder) WithEntry(path string, opts ...EntryOption) *Builder {
	return b.WithItem(ID(path), opts...)
}

// WithItem adds an entry for an arbitrary item.
func (b *Builder) WithItem(item registry.Identifier, opts ...EntryOption) *Builder {
	eb := registry.NewBuilder(item)
	for _, opt := range opts {
		opt(eb)
	}
	b.builders = append(b.builders, eb)
	return b
}

// Build declares every accumulated entry into a fresh registry.
func (b *Builder) Build() *registry.Registry {
	b.t.Helper()
	reg := registry.NewRegistry()
	for _, eb := range b.builders {
		require.NoError(b.t, reg.Declare(eb))
	}
	return reg
}
