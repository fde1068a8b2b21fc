package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/megal/resourced/internal/config"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the config file changes",
	Long: `Generate once, then regenerate each time the config file is saved.
Changes are debounced by watch.debounce. Stop with Ctrl+C.

Example:
  resourced watch --debug`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadedConfig()
		if err != nil {
			return err
		}
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return errors.New("watch needs a config file; run 'resourced init' first")
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, cmd.OutOrStdout(), c, configPath)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch generates on start and after each settled change of configPath until ctx is done.
func runWatch(ctx context.Context, w io.Writer, c config.Config, configPath string) error {
	wcfg := watcher.DefaultConfig(configPath)
	if c.Watch.Debounce > 0 {
		wcfg.DebounceDur = c.Watch.Debounce
	}
	fw, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	changes, err := fw.Start()
	if err != nil {
		return err
	}
	defer func() { _ = fw.Stop() }()

	regenerate := func(c config.Config) {
		report, root, err := runGeneration(ctx, c)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Regeneration failed", err)
			fmt.Fprintf(w, "generate failed: %v\n", err)
			return
		}
		_ = printReport(w, report, root, false)
	}

	regenerate(c)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			log.Info(log.CatWatcher, "Config changed, regenerating", "path", configPath)
			next, err := reloadConfig()
			if err != nil {
				log.ErrorErr(log.CatConfig, "Reloading config failed", err)
				fmt.Fprintf(w, "config not reloaded: %v\n", err)
				continue
			}
			regenerate(next)
		}
	}
}

// reloadConfig re-reads the config file viper was pointed at.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("reading config: %w", err)
	}
	var next config.Config
	if err := viper.Unmarshal(&next); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := config.Validate(next); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return next, nil
}
