package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/log"
)

// nuggetRecoveryXP is the experience of smelting equipment back into nuggets.
const nuggetRecoveryXP = 0.1

// Declare builds the registry for the resource table.
func Declare(ctx context.Context, r *Resolver) (*registry.Registry, error) {
	return DeclareMaterials(ctx, r, Materials)
}

// DeclareMaterials builds a registry from the given materials in order.
// Every declaration error is collected; the registry is only returned when there are none.
func DeclareMaterials(ctx context.Context, r *Resolver, materials []Material) (*registry.Registry, error) {
	reg := registry.NewRegistry()
	d := &declarer{ctx: ctx, r: r, reg: reg}

	for _, m := range materials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d.material(m)
	}

	if err := errors.Join(d.errs...); err != nil {
		log.ErrorErr(log.CatRegistry, "Declaring resource table failed", err)
		return nil, err
	}

	log.Info(log.CatRegistry, "Declared resource table", "materials", len(materials), "entries", reg.Len())
	return reg, nil
}

type declarer struct {
	ctx  context.Context
	r    *Resolver
	reg  *registry.Registry
	errs []error
}

// id resolves a raw identity; bare paths are mod items.
func (d *declarer) id(raw string) registry.Identifier {
	var (
		id  registry.Identifier
		err error
	)
	if strings.Contains(raw, ":") {
		id, err = d.r.Resolve(d.ctx, raw)
	} else {
		id, err = d.r.Item(d.ctx, raw)
	}
	if err != nil {
		d.errs = append(d.errs, fmt.Errorf("resolving %q: %w", raw, err))
	}
	return id
}

func (d *declarer) items(raws ...string) registry.Ingredient {
	ids := make([]registry.Identifier, 0, len(raws))
	for _, raw := range raws {
		ids = append(ids, d.id(raw))
	}
	return registry.OfItems(ids...)
}

func (d *declarer) declare(b *registry.Builder) {
	if err := d.reg.Declare(b); err != nil {
		d.errs = append(d.errs, err)
	}
}

// item starts a named mod item, optionally with a model.
func (d *declarer) item(path string, model registry.ModelType) *registry.Builder {
	b := registry.NewBuilder(d.id(path)).DefaultName()
	if model != registry.ModelNone {
		b.Model(model)
	}
	return b
}

func (d *declarer) material(m Material) {
	n := m.Name
	ingot, block, nugget := n+"_ingot", n+"_block", n+"_nugget"
	if m.Vanilla {
		ingot = "minecraft:" + ingot
	}

	nuggetEntry := d.item(nugget, registry.ModelGenerated).
		Unpacking(registry.CategoryMisc, d.items(ingot))
	if equipment := equipmentPaths(m); len(equipment) > 0 {
		nuggetEntry.Blasting(true, registry.CategoryMisc, d.items(equipment...), 200, nuggetRecoveryXP)
	}
	d.declare(nuggetEntry)

	if m.Vanilla {
		// The engine already owns the ingot; only the nugget packing is new.
		d.declare(registry.NewBuilder(d.id(ingot)).
			Packing(registry.CategoryMisc, d.items(nugget)))
	} else {
		ingotEntry := d.item(ingot, registry.ModelGenerated).
			Packing(registry.CategoryMisc, d.items(nugget)).
			Unpacking(registry.CategoryMisc, d.items(block))
		if s := m.Smelt; s != nil {
			ingotEntry.Blasting(!s.BlastOnly, registry.CategoryMisc, d.items(s.Input), s.Ticks, s.XP)
		}
		d.declare(ingotEntry)

		d.declare(d.item(block, registry.ModelNone).
			Packing(registry.CategoryBuildingBlocks, d.items(ingot)))
	}

	if m.Raw && !m.Vanilla {
		raw, rawBlock := "raw_"+n, "raw_"+n+"_block"
		d.declare(d.item(raw, registry.ModelGenerated).
			Unpacking(registry.CategoryMisc, d.items(rawBlock)))
		d.declare(d.item(rawBlock, registry.ModelNone).
			Packing(registry.CategoryBuildingBlocks, d.items(raw)))
	}

	template := ""
	if m.UpgradeFrom != "" {
		template = n + "_upgrade_smithing_template"
		d.declare(d.item(template, registry.ModelGenerated))
	}

	for _, kind := range m.Tools {
		path := toolPath(n, kind)
		b := d.item(path, registry.ModelHandheld)
		if template != "" {
			b.Smithing(d.items(template), toolCategory(kind), d.items(toolPath(m.UpgradeFrom, kind)), d.items(ingot))
		} else {
			b.Tool(kind, toolCategory(kind), d.items(HandleItem), d.items(ingot))
		}
		d.declare(b)
	}

	if m.Bow {
		path := n + "_bow"
		b := d.item(path, registry.ModelBow)
		if template != "" {
			b.Smithing(d.items(template), registry.CategoryCombat, d.items(m.UpgradeFrom+"_bow"), d.items(ingot))
		} else {
			// Metal bows take the ingot in the handle slots.
			b.Bow(registry.CategoryCombat, d.items(ingot), d.items(StringItem))
		}
		d.declare(b)
	}
}

func toolPath(material string, kind registry.RecipeType) string {
	return material + "_" + strings.ToLower(kind.String())
}

func toolCategory(kind registry.RecipeType) registry.Category {
	if kind == registry.RecipeSword {
		return registry.CategoryCombat
	}
	return registry.CategoryTools
}

// equipmentPaths lists the crafted equipment that smelts back into nuggets.
func equipmentPaths(m Material) []string {
	paths := make([]string, 0, len(m.Tools))
	for _, kind := range m.Tools {
		paths = append(paths, toolPath(m.Name, kind))
	}
	return paths
}
