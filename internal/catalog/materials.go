package catalog

import "github.com/megal/resourced/internal/domain/registry"

// Smelt describes how a material's ingot is cooked from another item.
type Smelt struct {
	// Input is a raw identity; a bare path is an item of the mod namespace.
	Input     string
	Ticks     int
	XP        float32
	BlastOnly bool
}

// Material is one row of the resource table.
type Material struct {
	Name string
	// Vanilla materials already have ingot, block and raw items in the engine;
	// only the nugget and the equipment are added.
	Vanilla bool
	// Raw adds raw_<name> and raw_<name>_block.
	Raw   bool
	Smelt *Smelt
	Tools []registry.RecipeType
	Bow   bool
	// UpgradeFrom names the material whose equipment upgrades into this one
	// on a smithing table instead of being crafted.
	UpgradeFrom string
}

var allTools = []registry.RecipeType{
	registry.RecipeSword,
	registry.RecipeShovel,
	registry.RecipePickaxe,
	registry.RecipeAxe,
	registry.RecipeHoe,
}

// Materials is the mod's resource table in declaration order.
var Materials = []Material{
	{
		Name:    "copper",
		Vanilla: true,
		Tools:   allTools,
		Bow:     true,
	},
	{
		Name:  "tin",
		Raw:   true,
		Smelt: &Smelt{Input: "raw_tin", Ticks: 200, XP: 0.7},
	},
	{
		Name:  "bronze",
		Tools: allTools,
		Bow:   true,
	},
	{
		Name:  "silver",
		Raw:   true,
		Smelt: &Smelt{Input: "raw_silver", Ticks: 200, XP: 1.0},
	},
	{
		Name:  "lead",
		Raw:   true,
		Smelt: &Smelt{Input: "raw_lead", Ticks: 200, XP: 0.7},
	},
	{
		Name:        "steel",
		Smelt:       &Smelt{Input: "minecraft:iron_ingot", Ticks: 400, XP: 1.0, BlastOnly: true},
		Tools:       allTools,
		Bow:         true,
		UpgradeFrom: "bronze",
	},
}

// Vanilla identities used as crafting components.
const (
	HandleItem = "minecraft:stick"
	StringItem = "minecraft:string"
)
