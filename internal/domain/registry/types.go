package registry

import "strings"

// ModelType selects the item model template for an entry.
// ModelNone means no model is generated.
type ModelType int

const (
	ModelNone ModelType = iota
	ModelGenerated
	ModelHandheld
	ModelBow
)

// ModelTypes lists the generatable model types in output order.
var ModelTypes = []ModelType{ModelGenerated, ModelHandheld, ModelBow}

func (m ModelType) String() string {
	switch m {
	case ModelNone:
		return "NONE"
	case ModelGenerated:
		return "GENERATED"
	case ModelHandheld:
		return "HANDHELD"
	case ModelBow:
		return "BOW"
	default:
		return "UNKNOWN"
	}
}

// ParseModelType is the inverse of String, case-insensitive.
func ParseModelType(s string) (ModelType, bool) {
	for _, m := range append([]ModelType{ModelNone}, ModelTypes...) {
		if strings.EqualFold(m.String(), s) {
			return m, true
		}
	}
	return ModelNone, false
}

// RecipeType tags a recipe declaration.
type RecipeType int

const (
	RecipePacking RecipeType = iota
	RecipeUnpacking
	RecipeSword
	RecipeShovel
	RecipePickaxe
	RecipeAxe
	RecipeHoe
	RecipeBow
	RecipeSmelting
	RecipeSmoking
	RecipeBlasting
	RecipeSmithing
)

// RecipeTypes lists every recipe type in output order.
var RecipeTypes = []RecipeType{
	RecipePacking,
	RecipeUnpacking,
	RecipeSword,
	RecipeShovel,
	RecipePickaxe,
	RecipeAxe,
	RecipeHoe,
	RecipeBow,
	RecipeSmelting,
	RecipeSmoking,
	RecipeBlasting,
	RecipeSmithing,
}

var recipeTypeNames = map[RecipeType]string{
	RecipePacking:   "PACKING",
	RecipeUnpacking: "UNPACKING",
	RecipeSword:     "SWORD",
	RecipeShovel:    "SHOVEL",
	RecipePickaxe:   "PICKAXE",
	RecipeAxe:       "AXE",
	RecipeHoe:       "HOE",
	RecipeBow:       "BOW",
	RecipeSmelting:  "SMELTING",
	RecipeSmoking:   "SMOKING",
	RecipeBlasting:  "BLASTING",
	RecipeSmithing:  "SMITHING",
}

func (r RecipeType) String() string {
	if name, ok := recipeTypeNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseRecipeType is the inverse of String, case-insensitive.
func ParseRecipeType(s string) (RecipeType, bool) {
	for _, r := range RecipeTypes {
		if strings.EqualFold(r.String(), s) {
			return r, true
		}
	}
	return 0, false
}

// IsTool reports whether the type is a two-ingredient handle+head tool layout.
func (r RecipeType) IsTool() bool {
	switch r {
	case RecipeSword, RecipeShovel, RecipePickaxe, RecipeAxe, RecipeHoe:
		return true
	}
	return false
}

// IsCooking reports whether declarations of this type carry a Cooking payload.
func (r RecipeType) IsCooking() bool {
	return r == RecipeSmelting || r == RecipeSmoking || r == RecipeBlasting
}

// Arity is the fixed ingredient count for declarations of this type.
func (r RecipeType) Arity() int {
	switch {
	case r == RecipeSmithing:
		return 3
	case r.IsTool(), r == RecipeBow:
		return 2
	default:
		return 1
	}
}

// Category is the recipe book classification attached to a declaration.
type Category string

const (
	CategoryBuildingBlocks Category = "building_blocks"
	CategoryDecorations    Category = "decorations"
	CategoryRedstone       Category = "redstone"
	CategoryTransportation Category = "transportation"
	CategoryTools          Category = "tools"
	CategoryCombat         Category = "combat"
	CategoryFood           Category = "food"
	CategoryBrewing        Category = "brewing"
	CategoryMisc           Category = "misc"
)

// Ingredient matches any of its items, or any item in Tag when set.
type Ingredient struct {
	Items []Identifier
	Tag   Identifier
}

// OfItems creates an ingredient matching any of the given items.
func OfItems(items ...Identifier) Ingredient {
	return Ingredient{Items: append([]Identifier(nil), items...)}
}

// OfTag creates an ingredient matching an item tag.
func OfTag(tag Identifier) Ingredient {
	return Ingredient{Tag: tag}
}

// IsTag reports whether the ingredient refers to a tag rather than items.
func (i Ingredient) IsTag() bool {
	return !i.Tag.IsZero()
}

// Cooking holds the furnace parameters of a cooking declaration.
type Cooking struct {
	Ticks int     // cook duration
	XP    float32 // experience reward
}

// Declaration is one recipe attached to an entry.
// Cooking is non-nil exactly when Kind.IsCooking().
type Declaration struct {
	Kind        RecipeType
	Category    Category
	Ingredients []Ingredient
	Cooking     *Cooking
}

func (d Declaration) clone() Declaration {
	c := d
	c.Ingredients = make([]Ingredient, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		c.Ingredients[i] = Ingredient{Items: append([]Identifier(nil), ing.Items...), Tag: ing.Tag}
	}
	if d.Cooking != nil {
		cooking := *d.Cooking
		c.Cooking = &cooking
	}
	return c
}

// Entry represents one declared resourced item
type Entry struct {
	item           Identifier
	hasDefaultName bool
	modelType      ModelType
	recipes        []Declaration
}

// newEntry creates an entry (used by builder)
func newEntry(item Identifier, hasDefaultName bool, modelType ModelType, recipes []Declaration) *Entry {
	copied := make([]Declaration, len(recipes))
	for i, d := range recipes {
		copied[i] = d.clone()
	}
	return &Entry{
		item:           item,
		hasDefaultName: hasDefaultName,
		modelType:      modelType,
		recipes:        copied,
	}
}

// Item returns the entry's item identity
func (e *Entry) Item() Identifier {
	return e.item
}

// HasDefaultName reports whether a display name is derived from the item path
func (e *Entry) HasDefaultName() bool {
	return e.hasDefaultName
}

// ModelType returns the model template, ModelNone when absent
func (e *Entry) ModelType() ModelType {
	return e.modelType
}

// HasModel reports whether a model is generated for the entry
func (e *Entry) HasModel() bool {
	return e.modelType != ModelNone
}

// Recipes returns a copy of the entry's declarations in declaration order
func (e *Entry) Recipes() []Declaration {
	out := make([]Declaration, len(e.recipes))
	for i, d := range e.recipes {
		out[i] = d.clone()
	}
	return out
}

// RecipesOf returns copies of the declarations of one kind
func (e *Entry) RecipesOf(kind RecipeType) []Declaration {
	out := make([]Declaration, 0)
	for _, d := range e.recipes {
		if d.Kind == kind {
			out = append(out, d.clone())
		}
	}
	return out
}
