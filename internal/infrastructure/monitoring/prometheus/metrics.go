package prometheus

// PipelineMetrics holds every metric the analysis pipeline records.
type PipelineMetrics struct {
	// Graph shape, set after each build.
	GraphNodesTotal GaugeVec
	GraphEdgesTotal GaugeVec

	// Stage durations in seconds.
	GraphBuildDuration HistogramVec
	ComputeDuration    HistogramVec

	// Run outcomes.
	RunsTotal                CounterVec
	ConvergenceWarningsTotal CounterVec
}

// Duration buckets tuned for batch centrality runs: graph builds over the
// full NBER dump take minutes, small test graphs take microseconds.
var (
	buildDurationBuckets   = []float64{.01, .1, .5, 1, 5, 15, 60, 300, 900}
	computeDurationBuckets = []float64{.001, .01, .1, .5, 1, 5, 30, 120, 600}
)

// NewPipelineMetrics registers the pipeline metric set against collector.
func NewPipelineMetrics(collector MetricsCollector) *PipelineMetrics {
	return &PipelineMetrics{
		GraphNodesTotal: collector.RegisterGauge("graph_nodes_total", "Nodes in the citation graph"),
		GraphEdgesTotal: collector.RegisterGauge("graph_edges_total", "Edges in the citation graph"),

		GraphBuildDuration: collector.RegisterHistogram("graph_build_duration_seconds",
			"Time to read the edge list and build the graph", buildDurationBuckets),
		ComputeDuration: collector.RegisterHistogram("compute_duration_seconds",
			"Time to compute one centrality measure", computeDurationBuckets, "measure"),

		RunsTotal: collector.RegisterCounter("runs_total",
			"Pipeline runs by measure and outcome", "measure", "status"),
		ConvergenceWarningsTotal: collector.RegisterCounter("convergence_warnings_total",
			"Iterative methods that hit their iteration cap", "measure"),
	}
}
