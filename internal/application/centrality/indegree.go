package centrality

import (
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// InDegree computes normalized in-degree centrality: for node v,
// score(v) = indegree(v) / (N−1), where N is the node count.  A single-node
// graph is degenerate; its score is defined as 0.  Runs in O(V+E).
//
// For a citation graph this is the simplest importance reading: a patent's
// score is the fraction of all other patents that cite it.
func InDegree(g *graph.CitationGraph) (*ScoreTable, error) {
	n := g.Order()
	if n == 0 {
		return nil, errEmptyGraph(common.MeasureInDegree)
	}

	st := newScoreTable(common.MeasureInDegree, g)
	if n == 1 {
		return st, nil
	}

	denom := float64(n - 1)
	for i := 0; i < n; i++ {
		st.scores[i] = float64(g.InDegreeAt(i)) / denom
	}
	return st, nil
}
