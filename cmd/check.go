package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/megal/resourced/internal/datagen"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/presentation"
)

// ErrDrift is returned by check when the pack on disk is out of date.
var ErrDrift = errors.New("generated files are out of date")

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the generated files on disk are up to date",
	Long: `Generate the resource table in memory and compare it with the output
directory without writing anything. Exits non-zero when a file is missing,
changed, or left over from an entry that no longer exists.

Examples:
  # Fail a CI job when someone forgot to run generate
  resourced check

  # List drifted paths
  resourced check --json | jq -r '.[].path'`,
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

		provider, err := newTracingProvider(ctx, c)
		if err != nil {
			return err
		}
		defer func() {
			if err := provider.Shutdown(context.Background()); err != nil {
				log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
			}
		}()

		reg, err := buildRegistry(ctx, c)
		if err != nil {
			return err
		}

		drifts, err := newGenerator(c, provider.Tracer()).Check(ctx, reg, outputDir(c), datagen.CheckOptions{Stale: c.Generate.PruneStale})
		if err != nil {
			return err
		}

		if checkJSON {
			if err := presentation.NewFormatter(cmd.OutOrStdout()).FormatDrifts(presentation.FromDrifts(drifts)); err != nil {
				return err
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), presentation.RenderDrifts(drifts))
		}

		if len(drifts) > 0 {
			return fmt.Errorf("%w: %d file(s)", ErrDrift, len(drifts))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print drifted files as JSON")
	rootCmd.AddCommand(checkCmd)
}
