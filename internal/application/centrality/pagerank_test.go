package centrality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

func scoreSum(st *ScoreTable) float64 {
	total := 0.0
	for i := 0; i < st.Len(); i++ {
		total += st.At(i).Score
	}
	return total
}

func TestPageRankSumsToOne(t *testing.T) {
	tests := []struct {
		name     string
		edgeList string
	}{
		{"cycle", "A,B\nB,C\nC,A\n"},
		{"cycle with feeder", "A,B\nB,C\nC,A\nD,A\n"},
		{"sink nodes", "A,B\nC,B\nD,B\n"}, // B cites nothing
		{"disconnected", "A,B\nC,D\n"},
		{"chain", "A,B\nB,C\nC,D\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.edgeList)
			st, warn, err := PageRank(g, DefaultPageRankOptions())
			require.NoError(t, err)
			assert.Nil(t, warn)
			assert.InDelta(t, 1.0, scoreSum(st), 1e-9)
		})
	}
}

func TestPageRankSinkMassRedistributed(t *testing.T) {
	// B is a sink; its mass must flow back uniformly instead of leaking.
	// Every node keeps a strictly positive score thanks to teleportation.
	g := buildGraph(t, "A,B\nC,B\n")

	st, _, err := PageRank(g, DefaultPageRankOptions())
	require.NoError(t, err)

	b, _ := st.Score("B")
	a, _ := st.Score("A")
	c, _ := st.Score("C")
	assert.Greater(t, b, a, "the cited patent outranks its citers")
	assert.InDelta(t, a, c, 1e-9, "symmetric citers score identically")
	assert.Greater(t, a, 0.0)
}

func TestPageRankRobustToDisconnectedness(t *testing.T) {
	// The same two identical components that break eigenvector centrality:
	// PageRank scores them symmetrically.
	g := buildGraph(t, "X,Y\nP,Q\n")

	st, _, err := PageRank(g, DefaultPageRankOptions())
	require.NoError(t, err)

	y, _ := st.Score("Y")
	q, _ := st.Score("Q")
	assert.InDelta(t, y, q, 1e-9)
	assert.InDelta(t, 1.0, scoreSum(st), 1e-9)
}

func TestPageRankMoreCitedRanksHigher(t *testing.T) {
	g := buildGraph(t, "A,B\nB,C\nC,A\nD,A\n")

	st, _, err := PageRank(g, DefaultPageRankOptions())
	require.NoError(t, err)

	a, _ := st.Score("A")
	d, _ := st.Score("D")
	assert.Greater(t, a, d, "twice-cited A outranks never-cited D")
}

func TestPageRankEmptyGraph(t *testing.T) {
	g := graph.NewBuilder().Finalize()

	_, _, err := PageRank(g, DefaultPageRankOptions())
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphEmpty))
}

func TestPageRankSingleNode(t *testing.T) {
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge("A", "A"))
	g := b.Finalize()

	st, warn, err := PageRank(g, DefaultPageRankOptions())
	require.NoError(t, err)
	assert.Nil(t, warn)
	s, _ := st.Score("A")
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestPageRankIterationCapYieldsWarning(t *testing.T) {
	g := buildGraph(t, "A,B\nB,C\nC,A\nD,A\n")

	opts := DefaultPageRankOptions()
	opts.MaxIterations = 1

	st, warn, err := PageRank(g, opts)
	require.NoError(t, err)
	require.NotNil(t, warn)
	assert.Equal(t, common.MeasurePageRank, warn.Measure)
	assert.InDelta(t, 1.0, scoreSum(st), 1e-9, "approximation still sums to 1")
}

func TestPageRankCustomDamping(t *testing.T) {
	g := buildGraph(t, "A,B\nB,C\nC,A\nD,A\n")

	opts := DefaultPageRankOptions()
	opts.Damping = 0.5

	st, _, err := PageRank(g, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scoreSum(st), 1e-9)

	// Lower damping pulls scores toward uniform.
	heavy, _, err := PageRank(g, DefaultPageRankOptions())
	require.NoError(t, err)
	aLow, _ := st.Score("A")
	aHigh, _ := heavy.Score("A")
	assert.Less(t, aLow, aHigh)
}
