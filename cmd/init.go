package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megal/resourced/internal/config"
)

var (
	initForce     bool
	initNamespace string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config",
	Long: `Write the default config to .resourced/config.yaml (or --config).

--namespace and --output are saved into the new file.

Examples:
  resourced init
  resourced init --namespace mymod -o src/main/generated`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := localConfigPath
		if cfgFile != "" {
			path = cfgFile
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}

		if initNamespace != "" {
			probe := config.Defaults()
			probe.Namespace = initNamespace
			if err := config.Validate(probe); err != nil {
				return err
			}
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		if initNamespace != "" {
			if err := config.SaveNamespace(path, initNamespace); err != nil {
				return err
			}
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := config.SaveOutputDir(path, output); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
	initCmd.Flags().StringVarP(&initNamespace, "namespace", "n", "", "item namespace of the mod")
	rootCmd.AddCommand(initCmd)
}
