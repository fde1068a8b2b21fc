package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/presentation"
)

var (
	listKind  string
	listModel string
)

var registryListCmd = &cobra.Command{
	Use:   "registry:list",
	Short: "List all declared entries",
	Long: `List every entry of the resource table as JSON, with derived labels
and recipe names.

Use --kind to filter by recipe kind and --model to filter by model type.
Both filters together must match.

Examples:
  # List all entries
  resourced registry:list

  # Entries declaring a bow recipe
  resourced registry:list --kind bow

  # Handheld items only
  resourced registry:list --model handheld

  # Parse specific fields with jq
  resourced registry:list | jq -r '.[].item'
  resourced registry:list | jq -r '.[].recipes[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadedConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		reg, err := buildRegistry(ctx, c)
		if err != nil {
			return err
		}

		entries, err := filterEntries(reg, listKind, listModel)
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatEntries(presentation.FromDomainEntries(entries, expandOptions(c)))
	},
}

func init() {
	registryListCmd.Flags().StringVarP(&listKind, "kind", "k", "", "Filter by recipe kind (e.g., packing, sword, blasting)")
	registryListCmd.Flags().StringVarP(&listModel, "model", "m", "", "Filter by model type (generated, handheld, bow, none)")
	rootCmd.AddCommand(registryListCmd)
}

// filterEntries applies the kind and model filters (AND logic).
func filterEntries(p registry.Provider, kind, model string) ([]*registry.Entry, error) {
	var (
		recipeType registry.RecipeType
		modelType  registry.ModelType
		ok         bool
	)
	if kind != "" {
		if recipeType, ok = registry.ParseRecipeType(kind); !ok {
			return nil, fmt.Errorf("unknown recipe kind %q", kind)
		}
	}
	if model != "" {
		if modelType, ok = registry.ParseModelType(model); !ok {
			return nil, fmt.Errorf("unknown model type %q", model)
		}
	}

	switch {
	case kind != "" && model != "":
		result := make([]*registry.Entry, 0)
		for _, e := range p.GetByRecipeType(recipeType) {
			if e.ModelType() == modelType {
				result = append(result, e)
			}
		}
		return result, nil
	case kind != "":
		return p.GetByRecipeType(recipeType), nil
	case model != "":
		return p.GetByModel(modelType), nil
	default:
		return p.List(), nil
	}
}
