package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"damping zero", func(c *Config) { c.Centrality.Damping = -0.1 }},
		{"damping one", func(c *Config) { c.Centrality.Damping = 1.0 }},
		{"pagerank tolerance", func(c *Config) { c.Centrality.PageRankTolerance = -1e-6 }},
		{"pagerank iterations", func(c *Config) { c.Centrality.PageRankMaxIterations = -5 }},
		{"eigen tolerance", func(c *Config) { c.Centrality.EigenTolerance = -1 }},
		{"eigen iterations", func(c *Config) { c.Centrality.EigenMaxIterations = -1 }},
		{"eigen method", func(c *Config) { c.Centrality.EigenMethod = "qr" }},
		{"max dense order", func(c *Config) { c.Centrality.MaxDenseOrder = -1 }},
		{"top k", func(c *Config) { c.Ranking.DefaultTopK = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Centrality.Damping = 0.5
	cfg.Ranking.DefaultTopK = 25
	cfg.Log.Level = "debug"

	ApplyDefaults(cfg)

	assert.Equal(t, 0.5, cfg.Centrality.Damping)
	assert.Equal(t, 25, cfg.Ranking.DefaultTopK)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultPageRankTolerance, cfg.Centrality.PageRankTolerance)
	assert.Equal(t, DefaultEigenMethod, cfg.Centrality.EigenMethod)
}

func TestApplyDefaultsNilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
