package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "CITEGRAPH"

// newViper builds a pre-configured Viper instance with the standard settings:
// YAML file type, CITEGRAPH_ env prefix, automatic env binding, and a key
// replacer mapping "." → "_" so that nested keys like "centrality.damping"
// resolve to "CITEGRAPH_CENTRALITY_DAMPING".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Registering defaults makes every key known to viper, which is what lets
	// AutomaticEnv resolve CITEGRAPH_* variables during Unmarshal even when no
	// config file mentions the key.
	v.SetDefault("dataset.edge_list_path", "")
	v.SetDefault("dataset.attributes_path", "")
	v.SetDefault("dataset.assignees_path", "")
	v.SetDefault("centrality.damping", DefaultDamping)
	v.SetDefault("centrality.pagerank_tolerance", DefaultPageRankTolerance)
	v.SetDefault("centrality.pagerank_max_iterations", DefaultPageRankMaxIterations)
	v.SetDefault("centrality.eigen_tolerance", DefaultEigenTolerance)
	v.SetDefault("centrality.eigen_max_iterations", DefaultEigenMaxIterations)
	v.SetDefault("centrality.eigen_method", DefaultEigenMethod)
	v.SetDefault("centrality.max_dense_order", DefaultMaxDenseOrder)
	v.SetDefault("ranking.default_top_k", DefaultTopK)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	return v
}

// Load reads the YAML file at configPath, merges any CITEGRAPH_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CITEGRAPH_* environment variables
// with no config file, the preferred strategy for scripted batch runs.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified.  Intended for hot-reloading
// log level between long batch runs; callers apply only the safe subset of
// changes.  Non-blocking; viper manages the watcher goroutine.  A changed
// file that fails to parse or validate does not trigger onChange.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; errors are ignored here because callers call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}
