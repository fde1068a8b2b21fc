package registry

import (
	"errors"
	"fmt"
)

// Builder errors
var (
	ErrEmptyItem      = errors.New("entry item cannot be empty")
	ErrNotToolKind    = errors.New("recipe type is not a tool kind")
	ErrNotCookingKind = errors.New("recipe type is not a cooking kind")
)

// Builder provides a fluent API for declaring resourced entries.
// Recipe mutators append; Model and DefaultName overwrite.
type Builder struct {
	item           Identifier
	hasDefaultName bool
	modelType      ModelType
	recipes        []Declaration
	errs           []error
}

// NewBuilder creates a new entry builder bound to item
func NewBuilder(item Identifier) *Builder {
	return &Builder{
		item: item,
	}
}

// DefaultName derives the display name from the item path
func (b *Builder) DefaultName() *Builder {
	b.hasDefaultName = true
	return b
}

// Model sets the item model template
func (b *Builder) Model(m ModelType) *Builder {
	b.modelType = m
	return b
}

// Packing adds a 3x3 crafting recipe from nine of ingredient
func (b *Builder) Packing(category Category, ingredient Ingredient) *Builder {
	return b.add(RecipePacking, category, nil, ingredient)
}

// Unpacking adds a shapeless recipe yielding nine items from ingredient
func (b *Builder) Unpacking(category Category, ingredient Ingredient) *Builder {
	return b.add(RecipeUnpacking, category, nil, ingredient)
}

// Tool adds a tool recipe; kind must be one of the tool recipe types
func (b *Builder) Tool(kind RecipeType, category Category, handle, material Ingredient) *Builder {
	if !kind.IsTool() {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNotToolKind, kind))
		return b
	}
	return b.add(kind, category, nil, handle, material)
}

// Bow adds a bow recipe
func (b *Builder) Bow(category Category, handle, bowString Ingredient) *Builder {
	return b.add(RecipeBow, category, nil, handle, bowString)
}

// Smelting adds a furnace recipe
func (b *Builder) Smelting(category Category, input Ingredient, ticks int, xp float32) *Builder {
	return b.add(RecipeSmelting, category, &Cooking{Ticks: ticks, XP: xp}, input)
}

// Cooking adds a cooking recipe of an explicit kind with the given parameters as-is
func (b *Builder) Cooking(kind RecipeType, category Category, input Ingredient, ticks int, xp float32) *Builder {
	if !kind.IsCooking() {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNotCookingKind, kind))
		return b
	}
	return b.add(kind, category, &Cooking{Ticks: ticks, XP: xp}, input)
}

// Smoking adds a smoker recipe at half of ticks. With hasSmelting a furnace
// recipe at the full ticks is added first.
func (b *Builder) Smoking(hasSmelting bool, category Category, input Ingredient, ticks int, xp float32) *Builder {
	return b.fastCooking(RecipeSmoking, hasSmelting, category, input, ticks, xp)
}

// Blasting adds a blast furnace recipe at half of ticks. With hasSmelting a
// furnace recipe at the full ticks is added first.
func (b *Builder) Blasting(hasSmelting bool, category Category, input Ingredient, ticks int, xp float32) *Builder {
	return b.fastCooking(RecipeBlasting, hasSmelting, category, input, ticks, xp)
}

func (b *Builder) fastCooking(kind RecipeType, hasSmelting bool, category Category, input Ingredient, ticks int, xp float32) *Builder {
	if hasSmelting {
		b.Smelting(category, input, ticks, xp)
	}
	return b.add(kind, category, &Cooking{Ticks: ticks / 2, XP: xp}, input)
}

// Smithing adds a smithing transform recipe (template, base, addition)
func (b *Builder) Smithing(template Ingredient, category Category, input, material Ingredient) *Builder {
	return b.add(RecipeSmithing, category, nil, template, input, material)
}

func (b *Builder) add(kind RecipeType, category Category, cooking *Cooking, ingredients ...Ingredient) *Builder {
	b.recipes = append(b.recipes, Declaration{
		Kind:        kind,
		Category:    category,
		Ingredients: ingredients,
		Cooking:     cooking,
	})
	return b
}

// Build creates an immutable entry from the builder's current state.
// The builder stays usable; building again yields an equal, independent entry.
func (b *Builder) Build() (*Entry, error) {
	if b.item.IsZero() {
		return nil, ErrEmptyItem
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("building %s: %w", b.item, errors.Join(b.errs...))
	}

	return newEntry(b.item, b.hasDefaultName, b.modelType, b.recipes), nil
}
