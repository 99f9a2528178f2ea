// Package cli implements the citegraph command tree: global flags, config
// and logger initialization, and the output helpers shared by subcommands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/CiteGraph-Analytics/internal/config"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Verbose      bool

	// Dataset path overrides; empty leaves the configured value untouched.
	EdgeListPath   string
	AttributesPath string
	AssigneesPath  string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	OutputFormat string
	Verbose      bool
}

// Collector builds the metrics collector matching the configuration: a real
// prometheus-backed one when metrics are enabled, a no-op otherwise.
func (c *CLIContext) Collector() prometheus.MetricsCollector {
	if !c.Config.Metrics.Enabled {
		return prometheus.NewNopCollector()
	}
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace: c.Config.Metrics.Namespace,
	}, c.Logger)
	if err != nil {
		c.Logger.Warn("metrics collector unavailable, continuing without metrics", logging.Err(err))
		return prometheus.NewNopCollector()
	}
	return collector
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "citegraph",
		Short:   "CiteGraph-Analytics — centrality analysis over patent citation networks",
		Long:    "CiteGraph-Analytics builds a directed citation graph from a patent\nedge list and ranks patents by in-degree, eigenvector, or PageRank\ncentrality, joined against the patent attribute and assignee tables.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./citegraph.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "table", "output format (table, json, text)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&opts.EdgeListPath, "edges", "", "citation edge list file (CITING,CITED)")
	pf.StringVar(&opts.AttributesPath, "attributes", "", "patent attribute file (apat63_99 layout)")
	pf.StringVar(&opts.AssigneesPath, "assignees", "", "assignee name file (ASSIGNEE,COMPNAME)")

	cmd.AddCommand(
		newRankCmd(),
		newStatsCmd(),
	)

	return cmd
}

// persistentPreRun initializes config and logger, then stores CLIContext.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		OutputFormat: opts.OutputFormat,
		Verbose:      opts.Verbose,
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{}, cliCtx)
	cmd.SetContext(ctx)

	return nil
}

// initConfig loads configuration with priority: flags > env > file > defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Dataset flags override whatever the file or environment provided.
	if opts.EdgeListPath != "" {
		cfg.Dataset.EdgeListPath = opts.EdgeListPath
	}
	if opts.AttributesPath != "" {
		cfg.Dataset.AttributesPath = opts.AttributesPath
	}
	if opts.AssigneesPath != "" {
		cfg.Dataset.AssigneesPath = opts.AssigneesPath
	}
	return cfg, nil
}

func loadConfigFile(explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}

	searchPaths := []string{
		"./citegraph.yaml",
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".citegraph", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/citegraph/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return config.Load(p)
		}
	}

	// No config file found; environment variables and defaults apply.
	return config.LoadFromEnv()
}

// initLogger creates a logger configured for CLI usage.  Logs go to stderr
// so report output on stdout stays machine-readable.
func initLogger(opts *RootOptions) (logging.Logger, error) {
	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}

	return logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "command context is nil")
	}

	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "CLIContext not found in command context")
	}

	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}

	return nil
}

// PrintResult outputs data in the format specified by CLIContext.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		// Fallback to JSON if context unavailable.
		return printJSON(cmd, data)
	}

	switch strings.ToLower(cliCtx.OutputFormat) {
	case "json":
		return printJSON(cmd, data)
	case "table":
		return printTable(cmd, data)
	default:
		return printText(cmd, data)
	}
}

// printJSON outputs data as indented JSON to stdout.
func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printText outputs data as a simple string representation to stdout.
func printText(cmd *cobra.Command, data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	case fmt.Stringer:
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", v)
	}
	return nil
}

// printTable outputs data as a table if it implements the table provider
// interface, otherwise falls back to text.
func printTable(cmd *cobra.Command, data interface{}) error {
	type tableProvider interface {
		TableHeaders() []string
		TableRows() [][]string
	}

	if tp, ok := data.(tableProvider); ok {
		out := FormatTable(tp.TableHeaders(), tp.TableRows())
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	return printText(cmd, data)
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

// PrintWarning writes a formatted warning message to stderr.
func PrintWarning(cmd *cobra.Command, msg string) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", msg)
}

// FormatTable renders headers and rows as an aligned ASCII table.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	// Compute column widths.
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}

	var sb strings.Builder

	// Header row.
	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(padRight(h, colWidths[i]))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range colWidths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	// Data rows.
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			sb.WriteString(padRight(val, colWidths[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
