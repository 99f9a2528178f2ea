// Package config provides configuration loading, defaults, and validation for
// CiteGraph-Analytics.
package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultDamping               = 0.85
	DefaultPageRankTolerance     = 1e-6
	DefaultPageRankMaxIterations = 100

	DefaultEigenTolerance     = 1e-10
	DefaultEigenMaxIterations = 1000
	DefaultEigenMethod        = "power"

	// DefaultMaxDenseOrder bounds the dense eigen-decomposition path: a
	// 2000-node adjacency matrix is ~32 MB of float64, the largest we accept
	// by default before falling back to power iteration.
	DefaultMaxDenseOrder = 2000

	DefaultTopK = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultMetricsNamespace = "citegraph"
)

// ApplyDefaults fills every zero-value field in cfg with the platform default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  It must run after unmarshalling and before
// Validate so optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Centrality ────────────────────────────────────────────────────────────
	if cfg.Centrality.Damping == 0 {
		cfg.Centrality.Damping = DefaultDamping
	}
	if cfg.Centrality.PageRankTolerance == 0 {
		cfg.Centrality.PageRankTolerance = DefaultPageRankTolerance
	}
	if cfg.Centrality.PageRankMaxIterations == 0 {
		cfg.Centrality.PageRankMaxIterations = DefaultPageRankMaxIterations
	}
	if cfg.Centrality.EigenTolerance == 0 {
		cfg.Centrality.EigenTolerance = DefaultEigenTolerance
	}
	if cfg.Centrality.EigenMaxIterations == 0 {
		cfg.Centrality.EigenMaxIterations = DefaultEigenMaxIterations
	}
	if cfg.Centrality.EigenMethod == "" {
		cfg.Centrality.EigenMethod = DefaultEigenMethod
	}
	if cfg.Centrality.MaxDenseOrder == 0 {
		cfg.Centrality.MaxDenseOrder = DefaultMaxDenseOrder
	}

	// ── Ranking ───────────────────────────────────────────────────────────────
	if cfg.Ranking.DefaultTopK == 0 {
		cfg.Ranking.DefaultTopK = DefaultTopK
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
// Dataset paths stay empty: there is no sensible default location for the
// input files, so commands that need them validate presence themselves.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
