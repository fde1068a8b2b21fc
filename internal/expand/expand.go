package expand

import (
	"github.com/megal/resourced/internal/domain/registry"
)

// Options tune the expansion.
type Options struct {
	// LabelSeparator joins capitalized label words. Empty by default.
	LabelSeparator string
}

// Expand runs the grouping pass and renders all three record streams.
// Equal registry contents always produce equal output.
func Expand(p registry.Provider, opts Options) Output {
	g := Group(p)
	return Output{
		Names:   Names(g, opts),
		Models:  Models(g),
		Recipes: Recipes(g),
	}
}

// Names renders one name record per name target.
func Names(g Groups, opts Options) []NameRecord {
	records := make([]NameRecord, 0, len(g.Names))
	for _, item := range g.Names {
		records = append(records, NameRecord{
			Item:  item,
			Label: Label(item.Path, opts.LabelSeparator),
		})
	}
	return records
}

// Models renders model records grouped by kind in registry.ModelTypes order.
func Models(g Groups) []ModelRecord {
	records := make([]ModelRecord, 0, g.ModelCount())
	for _, kind := range registry.ModelTypes {
		for _, item := range g.Models[kind] {
			records = append(records, modelRecord(kind, item))
		}
	}
	return records
}

func modelRecord(kind registry.ModelType, item registry.Identifier) ModelRecord {
	model := itemModelID(item)
	record := ModelRecord{
		Item:    item,
		Kind:    kind,
		Model:   model,
		Parent:  modelParents[kind],
		Texture: model,
	}
	if kind != registry.ModelBow {
		return record
	}

	record.Variants = make([]ModelVariant, len(BowPullThresholds))
	for i, pull := range BowPullThresholds {
		suffix := BowVariantSuffix(i)
		record.Variants[i] = ModelVariant{
			Suffix:    suffix,
			Model:     model.WithPathSuffix(suffix),
			Texture:   model.WithPathSuffix(suffix),
			Predicate: Predicate{Pulling: 1, Pull: pull},
		}
	}
	return record
}

// itemModelID maps ns:path to ns:item/path.
func itemModelID(item registry.Identifier) registry.Identifier {
	return item.WithPathPrefix("item/")
}

// Recipes renders recipe records grouped by kind in registry.RecipeTypes order.
func Recipes(g Groups) []RecipeRecord {
	records := make([]RecipeRecord, 0, g.RecipeCount())
	for _, kind := range registry.RecipeTypes {
		template := recipeTemplates[kind]
		for _, pair := range g.Recipes[kind] {
			d := pair.Declaration
			records = append(records, RecipeRecord{
				Kind:        kind,
				Name:        RecipeName(kind, pair.Output),
				Output:      pair.Output,
				Category:    d.Category,
				Ingredients: d.Ingredients,
				Cooking:     d.Cooking,
				Template:    template,
			})
		}
	}
	return records
}
