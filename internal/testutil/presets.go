package testutil

import "github.com/megal/resourced/internal/domain/registry"

// WithCopperSet adds a small material family: nugget, ingot, block and tools.
//
// Structure:
//
//	copper_nugget  <- unpack copper_ingot
//	copper_ingot   <- pack copper_nugget, unpack copper_block, smelt+blast raw_copper
//	copper_block   <- pack copper_ingot
//	copper_sword / copper_pickaxe (handheld)
func (b *Builder) WithCopperSet() *Builder {
	return b.
		WithEntry("copper_nugget",
			DefaultName(), Model(registry.ModelGenerated),
			Unpacking("resourced:copper_ingot")).
		WithEntry("copper_ingot",
			DefaultName(), Model(registry.ModelGenerated),
			Packing("resourced:copper_nugget"),
			Unpacking("resourced:copper_block"),
			Blasting(true, "minecraft:raw_copper", 200, 0.7)).
		WithEntry("copper_block",
			DefaultName(),
			Packing("resourced:copper_ingot")).
		WithEntry("copper_sword",
			DefaultName(), Model(registry.ModelHandheld),
			Tool(registry.RecipeSword, "resourced:copper_ingot")).
		WithEntry("copper_pickaxe",
			DefaultName(), Model(registry.ModelHandheld),
			Tool(registry.RecipePickaxe, "resourced:copper_ingot"))
}

// WithBowSet adds two bows and a smithing upgrade.
func (b *Builder) WithBowSet() *Builder {
	return b.
		WithEntry("copper_bow", DefaultName(), Model(registry.ModelBow), Bow()).
		WithEntry("steel_bow", DefaultName(), Model(registry.ModelBow),
			Smithing("resourced:steel_upgrade_smithing_template", "resourced:copper_bow", "resourced:steel_ingot"))
}

// WithStandardTestData adds the copper and bow presets.
func (b *Builder) WithStandardTestData() *Builder {
	return b.WithCopperSet().WithBowSet()
}
