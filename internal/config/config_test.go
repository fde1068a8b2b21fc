package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// loadConfigFromYAML is a helper to load config from YAML string.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	var cfg Config
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)

	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "resourced", cfg.Namespace)
	require.Equal(t, "generated", cfg.OutputDir)
	require.Equal(t, "en_us", cfg.Language)
	require.Equal(t, "", cfg.Names.Separator)
	require.True(t, cfg.Generate.Cache)
	require.True(t, cfg.Generate.PruneStale)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	defaults := Defaults()

	require.Equal(t, defaults.Namespace, cfg.Namespace)
	require.Equal(t, defaults.OutputDir, cfg.OutputDir)
	require.Equal(t, defaults.Language, cfg.Language)
	require.Equal(t, defaults.Names, cfg.Names)
	require.Equal(t, defaults.Generate, cfg.Generate)
	require.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	require.NoError(t, Validate(cfg))
}

func TestValidate_Namespace(t *testing.T) {
	cfg := Defaults()
	cfg.Namespace = "Resourced"
	require.ErrorContains(t, Validate(cfg), "namespace")

	cfg.Namespace = ""
	require.ErrorContains(t, Validate(cfg), "namespace")

	cfg.Namespace = "my_mod.extra-1"
	require.NoError(t, Validate(cfg))
}

func TestValidate_Language(t *testing.T) {
	cfg := Defaults()
	cfg.Language = "english"
	require.ErrorContains(t, Validate(cfg), "language")

	cfg.Language = "de_de"
	require.NoError(t, Validate(cfg))
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := Defaults()
	cfg.Watch.Debounce = -time.Second
	require.ErrorContains(t, Validate(cfg), "watch.debounce")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		tracing TracingConfig
		wantErr string
	}{
		{name: "empty", tracing: TracingConfig{}},
		{name: "disabled file without path", tracing: TracingConfig{Exporter: "file"}},
		{name: "sample rate too high", tracing: TracingConfig{SampleRate: 1.5}, wantErr: "sample_rate"},
		{name: "sample rate negative", tracing: TracingConfig{SampleRate: -0.1}, wantErr: "sample_rate"},
		{name: "unknown exporter", tracing: TracingConfig{Exporter: "jaeger"}, wantErr: "exporter"},
		{name: "enabled file without path", tracing: TracingConfig{Enabled: true, Exporter: "file"}, wantErr: "file_path"},
		{name: "enabled otlp without endpoint", tracing: TracingConfig{Enabled: true, Exporter: "otlp"}, wantErr: "otlp_endpoint"},
		{name: "enabled stdout", tracing: TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.tracing)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_FromYAML(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
namespace: alloys
output_dir: /tmp/pack
language: en_gb
names:
  separator: " "
generate:
  cache: false
  strict: true
watch:
  debounce: 2s
tracing:
  enabled: true
  exporter: stdout
  sample_rate: 0.25
`)

	require.Equal(t, "alloys", cfg.Namespace)
	require.Equal(t, "/tmp/pack", cfg.OutputDir)
	require.Equal(t, "en_gb", cfg.Language)
	require.Equal(t, " ", cfg.Names.Separator)
	require.False(t, cfg.Generate.Cache)
	require.True(t, cfg.Generate.Strict)
	require.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	require.Equal(t, "stdout", cfg.Tracing.Exporter)
	require.InDelta(t, 0.25, cfg.Tracing.SampleRate, 1e-9)
	require.NoError(t, Validate(cfg))
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", ".resourced", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultTracesFilePath(t *testing.T) {
	p := DefaultTracesFilePath()
	if p == "" {
		t.Skip("no home directory")
	}
	require.Equal(t, "traces.jsonl", filepath.Base(p))
	require.Contains(t, p, filepath.Join(".config", "resourced"))
}
