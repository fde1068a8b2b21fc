package presentation

import (
	"github.com/megal/resourced/internal/datagen"
	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
)

// EntryDTO represents a registry entry for presentation
type EntryDTO struct {
	Item    string      `json:"item" jsonschema:"description=Item identity as namespace:path"`
	Label   string      `json:"label,omitempty" jsonschema:"description=Derived display name; absent when the entry has no default name"`
	Model   string      `json:"model,omitempty" jsonschema:"enum=GENERATED,enum=HANDHELD,enum=BOW"`
	Recipes []RecipeDTO `json:"recipes"`
}

// RecipeDTO represents one recipe declaration with its derived recipe name
type RecipeDTO struct {
	Kind        string          `json:"kind" jsonschema:"enum=PACKING,enum=UNPACKING,enum=SWORD,enum=SHOVEL,enum=PICKAXE,enum=AXE,enum=HOE,enum=BOW,enum=SMELTING,enum=SMOKING,enum=BLASTING,enum=SMITHING"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Cooking     *CookingDTO     `json:"cooking,omitempty"`
}

// IngredientDTO lists alternative items, or a tag
type IngredientDTO struct {
	Items []string `json:"items,omitempty"`
	Tag   string   `json:"tag,omitempty"`
}

// CookingDTO is the cooking payload of furnace-family recipes
type CookingDTO struct {
	Ticks int     `json:"ticks"`
	XP    float32 `json:"xp"`
}

// FromDomainEntry converts a registry entry to a DTO
func FromDomainEntry(entry *registry.Entry, opts expand.Options) EntryDTO {
	dto := EntryDTO{
		Item:    entry.Item().String(),
		Recipes: make([]RecipeDTO, 0),
	}
	if entry.HasDefaultName() {
		dto.Label = expand.Label(entry.Item().Path, opts.LabelSeparator)
	}
	if entry.HasModel() {
		dto.Model = entry.ModelType().String()
	}

	for _, d := range entry.Recipes() {
		r := RecipeDTO{
			Kind:        d.Kind.String(),
			Name:        expand.RecipeName(d.Kind, entry.Item()).String(),
			Category:    string(d.Category),
			Ingredients: make([]IngredientDTO, len(d.Ingredients)),
		}
		for i, ing := range d.Ingredients {
			r.Ingredients[i] = fromIngredient(ing)
		}
		if d.Cooking != nil {
			r.Cooking = &CookingDTO{Ticks: d.Cooking.Ticks, XP: d.Cooking.XP}
		}
		dto.Recipes = append(dto.Recipes, r)
	}
	return dto
}

func fromIngredient(ing registry.Ingredient) IngredientDTO {
	if ing.IsTag() {
		return IngredientDTO{Tag: ing.Tag.String()}
	}
	items := make([]string, len(ing.Items))
	for i, item := range ing.Items {
		items[i] = item.String()
	}
	return IngredientDTO{Items: items}
}

// FromDomainEntries converts a slice of registry entries to DTOs
func FromDomainEntries(entries []*registry.Entry, opts expand.Options) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = FromDomainEntry(entry, opts)
	}
	return dtos
}

// ReportDTO represents a generation report
type ReportDTO struct {
	RunID      string   `json:"run_id"`
	Namespace  string   `json:"namespace"`
	Names      int      `json:"names"`
	Models     int      `json:"models"`
	Recipes    int      `json:"recipes"`
	Files      int      `json:"files"`
	Written    int      `json:"written"`
	Unchanged  int      `json:"unchanged"`
	Pruned     []string `json:"pruned"`
	Collisions []string `json:"collisions"`
	DurationMs int64    `json:"duration_ms"`
}

// FromReport converts a generation report to a DTO
func FromReport(r datagen.Report) ReportDTO {
	return ReportDTO{
		RunID:      r.RunID,
		Namespace:  r.Namespace,
		Names:      r.Names,
		Models:     r.Models,
		Recipes:    r.Recipes,
		Files:      r.Files,
		Written:    r.Written,
		Unchanged:  r.Unchanged,
		Pruned:     nonNil(r.Pruned),
		Collisions: nonNil(r.Collisions),
		DurationMs: r.Duration.Milliseconds(),
	}
}

// DriftDTO represents one drifted file
type DriftDTO struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Patch string `json:"patch"`
}

// FromDrifts converts check results to DTOs
func FromDrifts(drifts []datagen.Drift) []DriftDTO {
	dtos := make([]DriftDTO, len(drifts))
	for i, d := range drifts {
		dtos[i] = DriftDTO{Path: d.Path, Kind: string(d.Kind), Patch: d.Patch}
	}
	return dtos
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
