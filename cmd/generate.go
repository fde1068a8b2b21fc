package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/megal/resourced/internal/config"
	"github.com/megal/resourced/internal/datagen"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/presentation"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the language file, item models and recipes",
	Long: `Generate every file of the resource table into the output directory.

Files whose content has not changed since the last run are left untouched,
and files from entries that no longer exist are removed (see the generate
section of the config).

Examples:
  # Generate into the configured output directory
  resourced generate

  # Generate somewhere else
  resourced generate -o ../mymod/src/main/generated

  # Machine-readable report
  resourced generate --json | jq '.written'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadedConfig()
		if err != nil {
			return err
		}

		report, root, err := runGeneration(cmd.Context(), c)
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), report, root, generateJSON)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(generateCmd)
}

// runGeneration declares the registry and writes it to the configured output directory.
func runGeneration(ctx context.Context, c config.Config) (datagen.Report, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := newTracingProvider(ctx, c)
	if err != nil {
		return datagen.Report{}, "", err
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	reg, err := buildRegistry(ctx, c)
	if err != nil {
		return datagen.Report{}, "", err
	}

	root := outputDir(c)
	out, err := datagen.NewDirOutput(root, datagen.DirOptions{
		Cache:      c.Generate.Cache,
		PruneStale: c.Generate.PruneStale,
	})
	if err != nil {
		return datagen.Report{}, "", err
	}

	report, err := newGenerator(c, provider.Tracer()).Run(ctx, reg, out)
	if err != nil {
		return datagen.Report{}, "", fmt.Errorf("generating %s: %w", root, err)
	}
	return report, root, nil
}

func printReport(w io.Writer, report datagen.Report, root string, asJSON bool) error {
	if asJSON {
		return presentation.NewFormatter(w).FormatReport(presentation.FromReport(report))
	}
	_, err := fmt.Fprint(w, presentation.RenderSummary(report, root))
	return err
}
