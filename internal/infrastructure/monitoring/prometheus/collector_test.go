package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CiteGraph-Analytics/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "citegraph"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewMetricsCollectorRequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestCounterRegistrationAndScrape(t *testing.T) {
	c := newTestCollector(t)

	runs := c.RegisterCounter("runs_total", "Pipeline runs", "measure", "status")
	runs.WithLabelValues("pagerank", "ok").Inc()
	runs.WithLabelValues("pagerank", "ok").Add(2)

	body := scrape(t, c)
	assert.Contains(t, body, `citegraph_runs_total{measure="pagerank",status="ok"} 3`)
}

func TestGaugeRegistrationAndScrape(t *testing.T) {
	c := newTestCollector(t)

	nodes := c.RegisterGauge("graph_nodes_total", "Graph nodes")
	nodes.WithLabelValues().Set(3774768)

	body := scrape(t, c)
	assert.Contains(t, body, "citegraph_graph_nodes_total 3.774768e+06")
}

func TestHistogramRegistrationAndScrape(t *testing.T) {
	c := newTestCollector(t)

	dur := c.RegisterHistogram("compute_duration_seconds", "Compute duration", nil, "measure")
	dur.WithLabelValues("eigenvector").Observe(0.25)

	body := scrape(t, c)
	assert.Contains(t, body, `citegraph_compute_duration_seconds_count{measure="eigenvector"} 1`)
}

func TestDuplicateRegistrationReturnsSameVec(t *testing.T) {
	c := newTestCollector(t)

	first := c.RegisterCounter("runs_total", "Pipeline runs", "measure")
	second := c.RegisterCounter("runs_total", "Pipeline runs", "measure")

	first.WithLabelValues("indegree").Inc()
	second.WithLabelValues("indegree").Inc()

	assert.Contains(t, scrape(t, c), `citegraph_runs_total{measure="indegree"} 2`)
}

func TestTimerObservesElapsed(t *testing.T) {
	c := newTestCollector(t)
	dur := c.RegisterHistogram("graph_build_duration_seconds", "Build duration", nil)

	timer := NewTimer(dur.WithLabelValues())
	time.Sleep(time.Millisecond)
	timer.ObserveDuration()

	assert.Contains(t, scrape(t, c), "citegraph_graph_build_duration_seconds_count 1")
}

func TestNopCollectorIsInert(t *testing.T) {
	c := NewNopCollector()

	c.RegisterCounter("x", "x").WithLabelValues().Inc()
	c.RegisterGauge("y", "y").WithLabelValues().Set(1)
	c.RegisterHistogram("z", "z", nil).WithLabelValues().Observe(1)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.NotEqual(t, 200, rec.Code)
}

func TestPipelineMetricsRegisterCleanly(t *testing.T) {
	c := newTestCollector(t)

	m := NewPipelineMetrics(c)
	m.GraphNodesTotal.WithLabelValues().Set(4)
	m.GraphEdgesTotal.WithLabelValues().Set(4)
	m.RunsTotal.WithLabelValues("pagerank", "ok").Inc()
	m.ConvergenceWarningsTotal.WithLabelValues("eigenvector").Inc()
	m.ComputeDuration.WithLabelValues("pagerank").Observe(0.01)
	m.GraphBuildDuration.WithLabelValues().Observe(0.05)

	body := scrape(t, c)
	assert.Contains(t, body, "citegraph_graph_nodes_total 4")
	assert.Contains(t, body, `citegraph_convergence_warnings_total{measure="eigenvector"} 1`)
}
