// Package analysis wires the pipeline stages together: dataset load, graph
// build, centrality computation, top-k ranking, and attribute lookup.
package analysis

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/CiteGraph-Analytics/internal/application/centrality"
	"github.com/turtacn/CiteGraph-Analytics/internal/application/ranking"
	"github.com/turtacn/CiteGraph-Analytics/internal/config"
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/patent"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/dataset"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// RunRequest describes one pipeline run.
type RunRequest struct {
	// Measure selects the centrality algorithm.
	Measure common.Measure

	// K is the report length.  Zero or negative falls back to the
	// configured default.
	K int

	// EdgeList is the citation stream.  Required.
	EdgeList io.Reader

	// Attributes and AssigneeNames are the metadata streams.  Either may be
	// nil; the report then carries empty metadata for the missing side.
	Attributes    io.Reader
	AssigneeNames io.Reader
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	RunID   string         `json:"run_id"`
	Measure common.Measure `json:"measure"`

	GraphOrder int `json:"graph_order"`
	GraphSize  int `json:"graph_size"`

	Report *ranking.Report `json:"report"`

	// Warning is non-nil when the measure hit its iteration cap.  The report
	// is still the best available approximation.
	Warning *centrality.ConvergenceWarning `json:"warning,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
}

// Pipeline runs the load → build → compute → rank → lookup sequence.
// Single-threaded: one run works on one graph at a time, and the stages are
// strictly ordered because each consumes the previous stage's output.
type Pipeline struct {
	cfg     *config.Config
	log     logging.Logger
	metrics *prometheus.PipelineMetrics
	loader  *dataset.Loader
}

// New constructs a Pipeline.
func New(cfg *config.Config, log logging.Logger, collector prometheus.MetricsCollector) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		log:     log.Named("pipeline"),
		metrics: prometheus.NewPipelineMetrics(collector),
		loader:  dataset.NewLoader(log),
	}
}

// Run executes one full pipeline pass.  Context is checked between stages;
// a cancelled context aborts before the next stage starts.
func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	runID := uuid.NewString()
	log := p.log.With(logging.String("run_id", runID), logging.String("measure", string(req.Measure)))
	start := time.Now()

	res, err := p.run(ctx, req, runID, log)

	status := "ok"
	if err != nil {
		status = "error"
	}
	p.metrics.RunsTotal.WithLabelValues(string(req.Measure), status).Inc()

	if err != nil {
		log.Error("pipeline run failed", logging.Err(err), logging.Duration("elapsed", time.Since(start)))
		return nil, err
	}
	res.Elapsed = time.Since(start)
	log.Info("pipeline run complete",
		logging.Int("rows", len(res.Report.Rows)),
		logging.Bool("converged", res.Warning == nil),
		logging.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req RunRequest, runID string, log logging.Logger) (*RunResult, error) {
	if req.EdgeList == nil {
		return nil, errors.New(errors.ErrCodeDataSourceUnavailable, "run request has no edge list")
	}
	if _, err := common.ParseMeasure(string(req.Measure)); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRankUnknownMeasure, "unsupported measure")
	}

	g, table, err := p.load(req, log)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores, warning, err := p.compute(req.Measure, g)
	if err != nil {
		return nil, err
	}
	if warning != nil {
		p.metrics.ConvergenceWarningsTotal.WithLabelValues(string(req.Measure)).Inc()
		log.Warn("measure did not converge",
			logging.Int("iterations", warning.Iterations),
			logging.Float64("residual", warning.Residual),
			logging.Float64("tolerance", warning.Tolerance))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := req.K
	if k <= 0 {
		k = p.cfg.Ranking.DefaultTopK
	}
	top := ranking.TopK(scores, k)
	report := ranking.NewReport(req.Measure, top, table)
	if report.Omitted > 0 {
		log.Debug("ranked patents missing from attribute table",
			logging.Int("omitted", report.Omitted))
	}

	return &RunResult{
		RunID:      runID,
		Measure:    req.Measure,
		GraphOrder: g.Order(),
		GraphSize:  g.Size(),
		Report:     report,
		Warning:    warning,
	}, nil
}

// load reads the three input streams and builds the graph plus the joined
// attribute table.
func (p *Pipeline) load(req RunRequest, log logging.Logger) (*graph.CitationGraph, *patent.AttributeTable, error) {
	timer := prometheus.NewTimer(p.metrics.GraphBuildDuration.WithLabelValues())
	g, err := p.loader.ReadEdgeList(req.EdgeList)
	timer.ObserveDuration()
	if err != nil {
		return nil, nil, err
	}
	p.metrics.GraphNodesTotal.WithLabelValues().Set(float64(g.Order()))
	p.metrics.GraphEdgesTotal.WithLabelValues().Set(float64(g.Size()))

	var records []patent.Record
	if req.Attributes != nil {
		records, err = p.loader.ReadAttributes(req.Attributes)
		if err != nil {
			return nil, nil, err
		}
	}
	table := patent.NewAttributeTable(records)

	if req.AssigneeNames != nil {
		names, err := p.loader.ReadAssigneeNames(req.AssigneeNames)
		if err != nil {
			return nil, nil, err
		}
		table.JoinAssigneeNames(names)
	}

	log.Debug("inputs loaded",
		logging.Int("nodes", g.Order()),
		logging.Int("edges", g.Size()),
		logging.Int("attribute_rows", table.Len()))
	return g, table, nil
}

// compute dispatches to the selected centrality measure with the configured
// tunables.
func (p *Pipeline) compute(measure common.Measure, g *graph.CitationGraph) (*centrality.ScoreTable, *centrality.ConvergenceWarning, error) {
	timer := prometheus.NewTimer(p.metrics.ComputeDuration.WithLabelValues(string(measure)))
	defer timer.ObserveDuration()

	c := p.cfg.Centrality
	switch measure {
	case common.MeasureInDegree:
		st, err := centrality.InDegree(g)
		return st, nil, err
	case common.MeasureEigenvector:
		return centrality.Eigenvector(g, centrality.EigenOptions{
			Tolerance:     c.EigenTolerance,
			MaxIterations: c.EigenMaxIterations,
			Method:        c.EigenMethod,
			MaxDenseOrder: c.MaxDenseOrder,
		})
	case common.MeasurePageRank:
		return centrality.PageRank(g, centrality.PageRankOptions{
			Damping:       c.Damping,
			Tolerance:     c.PageRankTolerance,
			MaxIterations: c.PageRankMaxIterations,
		})
	}
	return nil, nil, errors.New(errors.ErrCodeRankUnknownMeasure,
		fmt.Sprintf("unsupported measure %q", measure))
}

// RunFromFiles is the file-path convenience over Run, reading the inputs
// named by the dataset configuration.
func (p *Pipeline) RunFromFiles(ctx context.Context, measure common.Measure, k int) (*RunResult, error) {
	files, err := openDatasetFiles(p.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	defer files.Close()

	return p.Run(ctx, RunRequest{
		Measure:       measure,
		K:             k,
		EdgeList:      files.edges,
		Attributes:    files.attributes,
		AssigneeNames: files.assignees,
	})
}
