// Package config provides configuration types and defaults for resourced.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/megal/resourced/internal/log"
)

// Config holds all configuration options for resourced.
type Config struct {
	Namespace string         `mapstructure:"namespace"`  // item namespace of the mod (e.g. "resourced")
	OutputDir string         `mapstructure:"output_dir"` // root of the generated pack
	Language  string         `mapstructure:"language"`   // language file code, e.g. "en_us"
	Names     NamesConfig    `mapstructure:"names"`
	Generate  GenerateConfig `mapstructure:"generate"`
	Watch     WatchConfig    `mapstructure:"watch"`
	Tracing   TracingConfig  `mapstructure:"tracing"`
}

// NamesConfig controls derived display names.
type NamesConfig struct {
	// Separator joins capitalized words of an item path.
	// Default: "" (copper_nugget -> "CopperNugget")
	Separator string `mapstructure:"separator"`
}

// GenerateConfig controls how generated files reach disk.
type GenerateConfig struct {
	Cache      bool `mapstructure:"cache"`       // skip rewriting files whose content hash is unchanged
	PruneStale bool `mapstructure:"prune_stale"` // delete files produced by a previous run but not this one
	Strict     bool `mapstructure:"strict"`      // fail when an identity uses an unknown namespace
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// TracingConfig holds distributed tracing configuration for generation runs.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/resourced/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	languagePattern  = regexp.MustCompile(`^[a-z]{2,3}_[a-z]{2,3}$`)
)

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/resourced/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "resourced", "traces", "traces.jsonl")
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if !namespacePattern.MatchString(cfg.Namespace) {
		return fmt.Errorf("namespace must match %s, got %q", namespacePattern, cfg.Namespace)
	}
	if !languagePattern.MatchString(cfg.Language) {
		return fmt.Errorf("language must look like \"en_us\", got %q", cfg.Language)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	// Validate Exporter is a valid option
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Namespace: "resourced",
		OutputDir: "generated",
		Language:  "en_us",
		Names: NamesConfig{
			Separator: "",
		},
		Generate: GenerateConfig{
			Cache:      true,
			PruneStale: true,
			Strict:     false,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Resourced Configuration

# Item namespace of the mod; every declared item lives here
namespace: resourced

# Root directory of the generated pack (assets/ and data/ are created inside)
output_dir: generated

# Language file written for derived item names
language: en_us

# Derived display names
names:
  # Joins the capitalized words of an item path.
  # "" keeps copper_nugget -> CopperNugget; " " gives "Copper Nugget"
  separator: ""

# Generation behaviour
generate:
  cache: true        # skip rewriting files whose content hash is unchanged
  prune_stale: true  # remove files left over from entries that no longer exist
  strict: false      # fail on identities outside the mod and minecraft namespaces

# Watch mode (resourced watch)
watch:
  debounce: 500ms

# Distributed tracing of generation runs
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/resourced/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
