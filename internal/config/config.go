// Package config defines all configuration structures for CiteGraph-Analytics.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"

	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// DatasetConfig names the three flat files the pipeline reads.  The files are
// expected to already exist locally; fetching and unpacking archives is the
// job of surrounding tooling, not this binary.
type DatasetConfig struct {
	// EdgeListPath is the citation edge list (CITING,CITED per line).
	EdgeListPath string `mapstructure:"edge_list_path"`

	// AttributesPath is the patent attribute table (PATENT,GYEAR,...,ASSIGNEE).
	AttributesPath string `mapstructure:"attributes_path"`

	// AssigneesPath is the assignee name table (ASSIGNEE,COMPNAME).
	AssigneesPath string `mapstructure:"assignees_path"`
}

// CentralityConfig holds the numerical tunables of the centrality engine.
type CentralityConfig struct {
	// Damping is the PageRank damping factor in (0,1).
	Damping float64 `mapstructure:"damping"`

	// PageRankTolerance is the L1 convergence threshold for PageRank.
	PageRankTolerance float64 `mapstructure:"pagerank_tolerance"`

	// PageRankMaxIterations caps PageRank iterations so oscillating graphs
	// still terminate.  Hitting the cap yields a convergence warning, not an
	// error.
	PageRankMaxIterations int `mapstructure:"pagerank_max_iterations"`

	// EigenTolerance is the convergence threshold for eigenvector power
	// iteration.
	EigenTolerance float64 `mapstructure:"eigen_tolerance"`

	// EigenMaxIterations caps power iteration.
	EigenMaxIterations int `mapstructure:"eigen_max_iterations"`

	// EigenMethod selects the eigenvector algorithm: "power" (sparse power
	// iteration, O(V+E) memory) or "dense" (full eigen-decomposition of the
	// adjacency matrix, O(V²) memory, exact).
	EigenMethod string `mapstructure:"eigen_method"`

	// MaxDenseOrder is the largest node count for which the dense method is
	// permitted; larger graphs fall back to power iteration rather than
	// materializing a V×V matrix.
	MaxDenseOrder int `mapstructure:"max_dense_order"`
}

// RankingConfig holds report defaults.
type RankingConfig struct {
	// DefaultTopK is the report length when the caller does not specify one.
	DefaultTopK int `mapstructure:"default_top_k"`
}

// MetricsConfig holds prometheus collector settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Config — the aggregate
// ─────────────────────────────────────────────────────────────────────────────

// Config is the aggregate configuration for the citegraph binary.
type Config struct {
	Dataset    DatasetConfig     `mapstructure:"dataset"`
	Centrality CentralityConfig  `mapstructure:"centrality"`
	Ranking    RankingConfig     `mapstructure:"ranking"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
	Log        logging.LogConfig `mapstructure:"log"`
}

// Validate checks cross-field consistency.  It assumes ApplyDefaults has
// already run, so zero values that have defaults never reach this point.
func (c *Config) Validate() error {
	if c.Centrality.Damping <= 0 || c.Centrality.Damping >= 1 {
		return fmt.Errorf("centrality.damping must be in (0,1), got %v", c.Centrality.Damping)
	}
	if c.Centrality.PageRankTolerance <= 0 {
		return fmt.Errorf("centrality.pagerank_tolerance must be positive, got %v", c.Centrality.PageRankTolerance)
	}
	if c.Centrality.PageRankMaxIterations <= 0 {
		return fmt.Errorf("centrality.pagerank_max_iterations must be positive, got %d", c.Centrality.PageRankMaxIterations)
	}
	if c.Centrality.EigenTolerance <= 0 {
		return fmt.Errorf("centrality.eigen_tolerance must be positive, got %v", c.Centrality.EigenTolerance)
	}
	if c.Centrality.EigenMaxIterations <= 0 {
		return fmt.Errorf("centrality.eigen_max_iterations must be positive, got %d", c.Centrality.EigenMaxIterations)
	}
	switch c.Centrality.EigenMethod {
	case "power", "dense":
	default:
		return fmt.Errorf("centrality.eigen_method must be \"power\" or \"dense\", got %q", c.Centrality.EigenMethod)
	}
	if c.Centrality.MaxDenseOrder < 0 {
		return fmt.Errorf("centrality.max_dense_order must be non-negative, got %d", c.Centrality.MaxDenseOrder)
	}
	if c.Ranking.DefaultTopK <= 0 {
		return fmt.Errorf("ranking.default_top_k must be positive, got %d", c.Ranking.DefaultTopK)
	}
	return nil
}
