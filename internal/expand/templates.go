package expand

import (
	"strconv"

	"github.com/megal/resourced/internal/domain/registry"
)

// Family is the recipe serializer family a template belongs to.
type Family int

const (
	FamilyShaped Family = iota
	FamilyShapeless
	FamilyCooking
	FamilySmithing
)

func (f Family) String() string {
	switch f {
	case FamilyShaped:
		return "shaped"
	case FamilyShapeless:
		return "shapeless"
	case FamilyCooking:
		return "cooking"
	case FamilySmithing:
		return "smithing"
	default:
		return "unknown"
	}
}

// Template is the fixed layout of one recipe kind.
type Template struct {
	Family Family
	// Pattern rows of a shaped grid; empty for other families.
	Pattern []string
	// Symbols maps ingredient index to its pattern symbol (shaped only).
	Symbols []rune
	// Count is the result stack size.
	Count int
	// Prefix and Suffix wrap the output path to form the recipe name.
	Prefix string
	Suffix string
}

// Grid symbols shared by the crafting templates.
const (
	SymbolMaterial = '#'
	SymbolHandle   = '/'
	SymbolString   = 's'
)

var recipeTemplates = map[registry.RecipeType]Template{
	registry.RecipePacking: {
		Family:  FamilyShaped,
		Pattern: []string{"###", "###", "###"},
		Symbols: []rune{SymbolMaterial},
		Count:   1,
		Prefix:  "pack_",
	},
	registry.RecipeUnpacking: {
		Family: FamilyShapeless,
		Count:  9,
		Prefix: "unpack_",
	},
	registry.RecipeSword: {
		Family:  FamilyShaped,
		Pattern: []string{"#", "#", "/"},
		Symbols: []rune{SymbolHandle, SymbolMaterial},
		Count:   1,
	},
	registry.RecipeShovel: {
		Family:  FamilyShaped,
		Pattern: []string{"#", "/", "/"},
		Symbols: []rune{SymbolHandle, SymbolMaterial},
		Count:   1,
	},
	registry.RecipePickaxe: {
		Family:  FamilyShaped,
		Pattern: []string{"###", " / ", " / "},
		Symbols: []rune{SymbolHandle, SymbolMaterial},
		Count:   1,
	},
	registry.RecipeAxe: {
		Family:  FamilyShaped,
		Pattern: []string{"##", "#/", " /"},
		Symbols: []rune{SymbolHandle, SymbolMaterial},
		Count:   1,
	},
	registry.RecipeHoe: {
		Family:  FamilyShaped,
		Pattern: []string{"##", " /", " /"},
		Symbols: []rune{SymbolHandle, SymbolMaterial},
		Count:   1,
	},
	registry.RecipeBow: {
		Family:  FamilyShaped,
		Pattern: []string{" /s", "/ s", " /s"},
		Symbols: []rune{SymbolHandle, SymbolString},
		Count:   1,
	},
	registry.RecipeSmelting: {
		Family: FamilyCooking,
		Count:  1,
		Suffix: "_from_smelting",
	},
	registry.RecipeSmoking: {
		Family: FamilyCooking,
		Count:  1,
		Suffix: "_from_smoking",
	},
	registry.RecipeBlasting: {
		Family: FamilyCooking,
		Count:  1,
		Suffix: "_from_blasting",
	},
	registry.RecipeSmithing: {
		Family: FamilySmithing,
		Count:  1,
	},
}

// TemplateFor returns the template of a recipe kind.
func TemplateFor(kind registry.RecipeType) (Template, bool) {
	t, ok := recipeTemplates[kind]
	return t, ok
}

// RecipeName derives the recipe identifier for an output item and kind.
func RecipeName(kind registry.RecipeType, output registry.Identifier) registry.Identifier {
	t := recipeTemplates[kind]
	return output.WithPathPrefix(t.Prefix).WithPathSuffix(t.Suffix)
}

// Model parents in the engine's namespace.
var (
	ParentGenerated = registry.NewIdentifier(registry.DefaultNamespace, "item/generated")
	ParentHandheld  = registry.NewIdentifier(registry.DefaultNamespace, "item/handheld")
	ParentBow       = registry.NewIdentifier(registry.DefaultNamespace, "item/bow")
)

var modelParents = map[registry.ModelType]registry.Identifier{
	registry.ModelGenerated: ParentGenerated,
	registry.ModelHandheld:  ParentHandheld,
	registry.ModelBow:       ParentBow,
}

// BowPullThresholds are the pull predicate values of the _pulling_N variants.
var BowPullThresholds = []float64{0, 0.65, 0.9}

// BowVariantSuffix names the N-th pulling variant.
func BowVariantSuffix(i int) string {
	return "_pulling_" + strconv.Itoa(i)
}
