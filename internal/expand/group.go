package expand

import "github.com/megal/resourced/internal/domain/registry"

// Pair binds a recipe declaration to the item it produces.
type Pair struct {
	Output      registry.Identifier
	Declaration registry.Declaration
}

// Groups holds the derived groupings of one registry pass.
// Members of every group keep registry insertion order.
type Groups struct {
	Names   []registry.Identifier
	Models  map[registry.ModelType][]registry.Identifier
	Recipes map[registry.RecipeType][]Pair
}

// Group partitions the registry in a single pass.
func Group(p registry.Provider) Groups {
	g := Groups{
		Names:   make([]registry.Identifier, 0),
		Models:  make(map[registry.ModelType][]registry.Identifier),
		Recipes: make(map[registry.RecipeType][]Pair),
	}

	for _, entry := range p.List() {
		item := entry.Item()
		if entry.HasDefaultName() {
			g.Names = append(g.Names, item)
		}
		if entry.HasModel() {
			g.Models[entry.ModelType()] = append(g.Models[entry.ModelType()], item)
		}
		for _, d := range entry.Recipes() {
			g.Recipes[d.Kind] = append(g.Recipes[d.Kind], Pair{Output: item, Declaration: d})
		}
	}

	return g
}

// RecipeCount returns the number of recipe pairs across all kinds.
func (g Groups) RecipeCount() int {
	n := 0
	for _, pairs := range g.Recipes {
		n += len(pairs)
	}
	return n
}

// ModelCount returns the number of model assignments across all kinds.
func (g Groups) ModelCount() int {
	n := 0
	for _, items := range g.Models {
		n += len(items)
	}
	return n
}
