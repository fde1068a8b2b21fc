package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/megal/resourced/internal/catalog"
	"github.com/megal/resourced/internal/config"
	"github.com/megal/resourced/internal/datagen"
	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/paths"
	"github.com/megal/resourced/internal/tracing"
)

// localConfigPath is where init writes, and the first place the config is looked up.
const localConfigPath = ".resourced/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "resourced",
	Short: "Generate Minecraft resource and data files for a mod's material items",
	Long: `Generate the language file, item models and crafting recipes of a
mod's material items (nuggets, ingots, blocks, tools and bows) from one
declarative resource table.

Run 'resourced generate' to write the pack and 'resourced check' in CI to
verify the committed files are up to date.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .resourced/config.yaml, then ~/.config/resourced/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging to stderr (or RESOURCED_LOG)")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"root directory of the generated pack")

	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("namespace", defaults.Namespace)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("language", defaults.Language)
	viper.SetDefault("names.separator", defaults.Names.Separator)
	viper.SetDefault("generate.cache", defaults.Generate.Cache)
	viper.SetDefault("generate.prune_stale", defaults.Generate.PruneStale)
	viper.SetDefault("generate.strict", defaults.Generate.Strict)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .resourced/config.yaml (current directory)
		// 2. ~/.config/resourced/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "resourced"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config is fine; 'resourced init' writes one.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}

// setupLogging enables the logger via --debug or RESOURCED_DEBUG.
// RESOURCED_LOG redirects it from stderr to a file.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if !debugFlag && os.Getenv("RESOURCED_DEBUG") == "" {
		return nil
	}
	if logPath := os.Getenv("RESOURCED_LOG"); logPath != "" {
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
	} else {
		log.InitWriter(cmd.ErrOrStderr(), log.LevelDebug)
	}
	log.Debug(log.CatConfig, "Loaded config", "file", viper.ConfigFileUsed(), "namespace", cfg.Namespace)
	return nil
}

// loadedConfig validates the config read by initConfig.
func loadedConfig() (config.Config, error) {
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// configFileUsed returns the config file in effect, defaulting to the local one.
func configFileUsed() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return localConfigPath
}

// outputDir resolves the configured pack root.
func outputDir(c config.Config) string {
	home, _ := os.UserHomeDir()
	return paths.ResolveOutputDir(c.OutputDir, home)
}

// newTracingProvider builds the tracing provider from c.Tracing.
func newTracingProvider(ctx context.Context, c config.Config) (*tracing.Provider, error) {
	tc := tracingConfig(c)
	provider, err := tracing.NewProvider(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if provider.Enabled() {
		log.Info(log.CatTrace, "Tracing enabled", "exporter", tc.Exporter, "file", tc.FilePath)
	}
	return provider, nil
}

func tracingConfig(c config.Config) tracing.Config {
	tc := tracing.DefaultConfig()
	tc.Enabled = c.Tracing.Enabled
	tc.Exporter = c.Tracing.Exporter
	tc.OTLPEndpoint = c.Tracing.OTLPEndpoint
	tc.SampleRate = c.Tracing.SampleRate
	tc.FilePath = c.Tracing.FilePath
	if tc.FilePath == "" {
		tc.FilePath = config.DefaultTracesFilePath()
	}
	return tc
}

// buildRegistry declares the resource table and validates every identity in it.
func buildRegistry(ctx context.Context, c config.Config) (*registry.Registry, error) {
	resolver := catalog.NewResolver(c.Namespace, c.Generate.Strict)

	reg, err := catalog.Declare(ctx, resolver)
	if err != nil {
		return nil, fmt.Errorf("declaring resource table: %w", err)
	}
	if err := resolver.Validate(ctx, reg); err != nil {
		return nil, fmt.Errorf("validating resource table: %w", err)
	}
	return reg, nil
}

func expandOptions(c config.Config) expand.Options {
	return expand.Options{LabelSeparator: c.Names.Separator}
}

func newGenerator(c config.Config, tracer trace.Tracer) *datagen.Generator {
	return datagen.NewGenerator(datagen.Options{
		Namespace: c.Namespace,
		Language:  c.Language,
		Expand:    expandOptions(c),
		Tracer:    tracer,
	})
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
