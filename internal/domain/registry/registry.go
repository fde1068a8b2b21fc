package registry

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrNotFound = errors.New("entry not found")
	ErrNilEntry = errors.New("entry cannot be nil")
)

// Registry holds all declared entries in declaration order.
// Duplicate items are allowed and produce duplicate derived records.
type Registry struct {
	entries []*Entry
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*Entry, 0),
	}
}

// Add appends an entry to the registry
func (r *Registry) Add(entry *Entry) error {
	if entry == nil {
		return ErrNilEntry
	}
	r.entries = append(r.entries, entry)
	return nil
}

// Declare builds b and appends the result
func (r *Registry) Declare(b *Builder) error {
	entry, err := b.Build()
	if err != nil {
		return err
	}
	return r.Add(entry)
}

// MustDeclare is Declare for static declaration tables; it panics on error.
func (r *Registry) MustDeclare(b *Builder) *Entry {
	entry, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("declaring entry: %v", err))
	}
	_ = r.Add(entry)
	return entry
}

// List returns all entries in insertion order
func (r *Registry) List() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// GetByItem returns the first entry declared for item
func (r *Registry) GetByItem(item Identifier) (*Entry, error) {
	for _, entry := range r.entries {
		if entry.Item() == item {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, item)
}

// GetByRecipeType returns entries that declare at least one recipe of kind
func (r *Registry) GetByRecipeType(kind RecipeType) []*Entry {
	result := make([]*Entry, 0)
	for _, entry := range r.entries {
		for _, d := range entry.recipes {
			if d.Kind == kind {
				result = append(result, entry)
				break
			}
		}
	}
	return result
}

// GetByModel returns entries using model type m
func (r *Registry) GetByModel(m ModelType) []*Entry {
	result := make([]*Entry, 0)
	for _, entry := range r.entries {
		if entry.ModelType() == m {
			result = append(result, entry)
		}
	}
	return result
}
