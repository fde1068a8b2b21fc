package expand

import "github.com/megal/resourced/internal/domain/registry"

// NameRecord is a derived display name for an item.
type NameRecord struct {
	Item  registry.Identifier
	Label string
}

// Predicate is the model override condition of a bow variant.
type Predicate struct {
	Pulling int
	// Pull of zero means the predicate only checks Pulling.
	Pull float64
}

// ModelVariant is a sub-model layered on a base model through an override.
type ModelVariant struct {
	Suffix    string
	Model     registry.Identifier
	Texture   registry.Identifier
	Predicate Predicate
}

// ModelRecord assigns a model template to an item.
type ModelRecord struct {
	Item     registry.Identifier
	Kind     registry.ModelType
	Model    registry.Identifier
	Parent   registry.Identifier
	Texture  registry.Identifier
	Variants []ModelVariant
}

// RecipeRecord is one expanded recipe declaration.
type RecipeRecord struct {
	Kind        registry.RecipeType
	Name        registry.Identifier
	Output      registry.Identifier
	Category    registry.Category
	Ingredients []registry.Ingredient
	// Cooking is copied verbatim from the declaration for cooking kinds.
	Cooking  *registry.Cooking
	Template Template
}

// Output bundles the three record streams of one expansion.
type Output struct {
	Names   []NameRecord
	Models  []ModelRecord
	Recipes []RecipeRecord
}
