package centrality

import (
	"math"

	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// PageRankOptions holds the tunables of the PageRank computation.
type PageRankOptions struct {
	// Damping is the probability of following a citation rather than
	// teleporting to a uniformly random patent.
	Damping float64

	// Tolerance is the L1 convergence threshold between iterations.
	Tolerance float64

	// MaxIterations caps the iteration count so oscillating or slowly
	// converging graphs still terminate.  Hitting the cap yields a
	// ConvergenceWarning.
	MaxIterations int
}

// DefaultPageRankOptions returns the standard random-surfer settings.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:       0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// PageRank computes the standard random-surfer score with uniform
// teleportation over all nodes.  Sink nodes (patents citing nothing, which is
// the oldest patents in any citation dump) distribute their rank mass uniformly
// across all nodes each iteration instead of leaking it, which keeps the
// scores summing to 1 and is what makes PageRank robust to the disconnected
// structure that breaks eigenvector centrality.
func PageRank(g *graph.CitationGraph, opts PageRankOptions) (*ScoreTable, *ConvergenceWarning, error) {
	n := g.Order()
	if n == 0 {
		return nil, nil, errEmptyGraph(common.MeasurePageRank)
	}

	st := newScoreTable(common.MeasurePageRank, g)

	nf := float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / nf
	}

	next := make([]float64, n)
	base := (1 - opts.Damping) / nf
	residual := math.Inf(1)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		sinkMass := 0.0
		for u := 0; u < n; u++ {
			if g.OutDegreeAt(u) == 0 {
				sinkMass += x[u]
			}
		}

		uniform := base + opts.Damping*sinkMass/nf
		for i := range next {
			next[i] = uniform
		}
		for u := 0; u < n; u++ {
			deg := g.OutDegreeAt(u)
			if deg == 0 {
				continue
			}
			share := opts.Damping * x[u] / float64(deg)
			for _, v := range g.Successors(u) {
				next[v] += share
			}
		}

		residual = 0
		for i := range next {
			residual += math.Abs(next[i] - x[i])
		}

		x, next = next, x

		if residual < opts.Tolerance {
			copy(st.scores, x)
			return st, nil, nil
		}
	}

	copy(st.scores, x)
	return st, &ConvergenceWarning{
		Measure:    common.MeasurePageRank,
		Iterations: opts.MaxIterations,
		Residual:   residual,
		Tolerance:  opts.Tolerance,
	}, nil
}
