package testutil

import "github.com/megal/resourced/internal/domain/registry"

// Namespace is the item namespace used by fixtures.
const Namespace = "resourced"

// ID returns a fixture identifier in the resourced namespace.
func ID(path string) registry.Identifier {
	return registry.NewIdentifier(Namespace, path)
}

// Vanilla returns an identifier in the minecraft namespace.
func Vanilla(path string) registry.Identifier {
	return registry.NewIdentifier(registry.DefaultNamespace, path)
}

// Items is shorthand for an item ingredient over fixture paths.
func Items(paths ...string) registry.Ingredient {
	ids := make([]registry.Identifier, len(paths))
	for i, p := range paths {
		ids[i] = registry.MustParseIdentifier(p)
	}
	return registry.OfItems(ids...)
}

// EntryOption configures an entry during builder setup.
type EntryOption func(*registry.Builder)

// DefaultName marks the entry for a derived display name.
func DefaultName() EntryOption {
	return func(b *registry.Builder) { b.DefaultName() }
}

// Model sets the entry model type.
func Model(m registry.ModelType) EntryOption {
	return func(b *registry.Builder) { b.Model(m) }
}

// Packing adds a packing recipe from ingredient.
func Packing(ingredient string) EntryOption {
	return func(b *registry.Builder) { b.Packing(registry.CategoryMisc, Items(ingredient)) }
}

// Unpacking adds an unpacking recipe from ingredient.
func Unpacking(ingredient string) EntryOption {
	return func(b *registry.Builder) { b.Unpacking(registry.CategoryMisc, Items(ingredient)) }
}

// Tool adds a tool recipe with a stick handle.
func Tool(kind registry.RecipeType, material string) EntryOption {
	return func(b *registry.Builder) {
		b.Tool(kind, registry.CategoryTools, Items("minecraft:stick"), Items(material))
	}
}

// Bow adds a bow recipe from stick and string.
func Bow() EntryOption {
	return func(b *registry.Builder) {
		b.Bow(registry.CategoryCombat, Items("minecraft:stick"), Items("minecraft:string"))
	}
}

// Smelting adds a furnace recipe.
func Smelting(input string, ticks int, xp float32) EntryOption {
	return func(b *registry.Builder) { b.Smelting(registry.CategoryMisc, Items(input), ticks, xp) }
}

// Smoking adds a smoker recipe, optionally preceded by a furnace recipe.
func Smoking(hasSmelting bool, input string, ticks int, xp float32) EntryOption {
	return func(b *registry.Builder) {
		b.Smoking(hasSmelting, registry.CategoryFood, Items(input), ticks, xp)
	}
}

// Blasting adds a blast furnace recipe, optionally preceded by a furnace recipe.
func Blasting(hasSmelting bool, input string, ticks int, xp float32) EntryOption {
	return func(b *registry.Builder) {
		b.Blasting(hasSmelting, registry.CategoryMisc, Items(input), ticks, xp)
	}
}

// Smithing adds a smithing transform recipe.
func Smithing(template, base, addition string) EntryOption {
	return func(b *registry.Builder) {
		b.Smithing(Items(template), registry.CategoryTools, Items(base), Items(addition))
	}
}
