package datagen

import (
	"errors"
	"fmt"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/paths"
)

// ErrMalformedRecipe is returned for records whose ingredients do not fit their template.
var ErrMalformedRecipe = errors.New("malformed recipe")

// Engine recipe serializer ids.
const (
	TypeShaped    = "minecraft:crafting_shaped"
	TypeShapeless = "minecraft:crafting_shapeless"
	TypeSmelting  = "minecraft:smelting"
	TypeSmoking   = "minecraft:smoking"
	TypeBlasting  = "minecraft:blasting"
	TypeSmithing  = "minecraft:smithing_transform"
)

var cookingTypes = map[registry.RecipeType]string{
	registry.RecipeSmelting: TypeSmelting,
	registry.RecipeSmoking:  TypeSmoking,
	registry.RecipeBlasting: TypeBlasting,
}

// CraftingBookCategory maps a category onto the crafting book tabs.
func CraftingBookCategory(c registry.Category) string {
	switch c {
	case registry.CategoryTools, registry.CategoryCombat:
		return "equipment"
	case registry.CategoryBuildingBlocks:
		return "building"
	case registry.CategoryRedstone:
		return "redstone"
	default:
		return "misc"
	}
}

// CookingBookCategory maps a category onto the furnace book tabs.
func CookingBookCategory(c registry.Category) string {
	switch c {
	case registry.CategoryFood:
		return "food"
	case registry.CategoryBuildingBlocks:
		return "blocks"
	default:
		return "misc"
	}
}

type itemJSON struct {
	Item string `json:"item,omitempty"`
	Tag  string `json:"tag,omitempty"`
}

type resultJSON struct {
	Item  string `json:"item"`
	Count int    `json:"count,omitempty"`
}

type shapedJSON struct {
	Type     string         `json:"type"`
	Category string         `json:"category"`
	Key      map[string]any `json:"key"`
	Pattern  []string       `json:"pattern"`
	Result   resultJSON     `json:"result"`
}

type shapelessJSON struct {
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Ingredients []any      `json:"ingredients"`
	Result      resultJSON `json:"result"`
}

type cookingJSON struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	CookingTime int     `json:"cookingtime"`
	Experience  float32 `json:"experience"`
	Ingredient  any     `json:"ingredient"`
	Result      string  `json:"result"`
}

type smithingJSON struct {
	Type     string     `json:"type"`
	Template any        `json:"template"`
	Base     any        `json:"base"`
	Addition any        `json:"addition"`
	Result   resultJSON `json:"result"`
}

// ingredientJSON renders a single item as an object, several items as a list
// of alternatives and a tag as a tag object.
func ingredientJSON(ing registry.Ingredient) any {
	if ing.IsTag() {
		return itemJSON{Tag: ing.Tag.String()}
	}
	if len(ing.Items) == 1 {
		return itemJSON{Item: ing.Items[0].String()}
	}
	alts := make([]itemJSON, len(ing.Items))
	for i, item := range ing.Items {
		alts[i] = itemJSON{Item: item.String()}
	}
	return alts
}

// result omits the count for single items, as the engine does.
func result(item registry.Identifier, count int) resultJSON {
	if count == 1 {
		count = 0
	}
	return resultJSON{Item: item.String(), Count: count}
}

// RecipeFile renders rec into data/<namespace>/recipes/<name>.json.
func RecipeFile(namespace string, rec expand.RecipeRecord) (File, error) {
	body, err := recipeBody(rec)
	if err != nil {
		return File{}, fmt.Errorf("recipe %s: %w", rec.Name, err)
	}

	data, err := encodeJSON(body)
	if err != nil {
		return File{}, err
	}
	name := registry.NewIdentifier(namespace, rec.Name.Path)
	return File{Path: paths.Recipe(name), Data: data}, nil
}

func recipeBody(rec expand.RecipeRecord) (any, error) {
	t := rec.Template
	if want := rec.Kind.Arity(); len(rec.Ingredients) != want {
		return nil, fmt.Errorf("%w: %s takes %d ingredients, got %d", ErrMalformedRecipe, rec.Kind, want, len(rec.Ingredients))
	}

	switch t.Family {
	case expand.FamilyShaped:
		key := make(map[string]any, len(t.Symbols))
		for i, sym := range t.Symbols {
			key[string(sym)] = ingredientJSON(rec.Ingredients[i])
		}
		return shapedJSON{
			Type:     TypeShaped,
			Category: CraftingBookCategory(rec.Category),
			Key:      key,
			Pattern:  t.Pattern,
			Result:   result(rec.Output, t.Count),
		}, nil

	case expand.FamilyShapeless:
		ingredients := make([]any, len(rec.Ingredients))
		for i, ing := range rec.Ingredients {
			ingredients[i] = ingredientJSON(ing)
		}
		return shapelessJSON{
			Type:        TypeShapeless,
			Category:    CraftingBookCategory(rec.Category),
			Ingredients: ingredients,
			Result:      result(rec.Output, t.Count),
		}, nil

	case expand.FamilyCooking:
		if rec.Cooking == nil {
			return nil, fmt.Errorf("%w: %s without cooking time", ErrMalformedRecipe, rec.Kind)
		}
		return cookingJSON{
			Type:        cookingTypes[rec.Kind],
			Category:    CookingBookCategory(rec.Category),
			CookingTime: rec.Cooking.Ticks,
			Experience:  rec.Cooking.XP,
			Ingredient:  ingredientJSON(rec.Ingredients[0]),
			Result:      rec.Output.String(),
		}, nil

	case expand.FamilySmithing:
		return smithingJSON{
			Type:     TypeSmithing,
			Template: ingredientJSON(rec.Ingredients[0]),
			Base:     ingredientJSON(rec.Ingredients[1]),
			Addition: ingredientJSON(rec.Ingredients[2]),
			Result:   result(rec.Output, t.Count),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown template family %s", ErrMalformedRecipe, t.Family)
	}
}
