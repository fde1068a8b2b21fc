package registry

// Provider defines read-only access to a registry of entries.
// The expander and the data generator depend on this interface so tests
// can substitute fixed entry lists for the concrete Registry.
type Provider interface {
	// List returns all entries in insertion order.
	List() []*Entry

	// GetByItem returns the first entry declared for item.
	// Returns ErrNotFound if no entry matches.
	GetByItem(item Identifier) (*Entry, error)

	// GetByRecipeType returns entries declaring at least one recipe of kind.
	GetByRecipeType(kind RecipeType) []*Entry

	// GetByModel returns entries using model type m.
	GetByModel(m ModelType) []*Entry
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
