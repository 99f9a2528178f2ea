// Package centrality implements the three centrality measures computed over
// the patent citation graph: in-degree, eigenvector, and PageRank.  Each
// measure is an independent pure function over an immutable CitationGraph;
// none depends on the others and each returns a fresh ScoreTable.
package centrality

import (
	"fmt"

	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Entry is one (patent, score) pair of a ScoreTable.
type Entry struct {
	PatentID common.PatentID
	Score    float64
}

// ScoreTable maps every node of the source graph to a floating-point score
// for one measure.  Entries are kept in the graph's node (first-appearance)
// order; that order is what stable sorts downstream fall back to on ties.
// Tables are derived, ephemeral values, recomputed on demand and never merged
// across measures.
type ScoreTable struct {
	measure common.Measure
	ids     []common.PatentID
	scores  []float64
	index   map[common.PatentID]int
}

// newScoreTable allocates a zero-filled table covering every node of g.
func newScoreTable(measure common.Measure, g *graph.CitationGraph) *ScoreTable {
	n := g.Order()
	st := &ScoreTable{
		measure: measure,
		ids:     g.Nodes(),
		scores:  make([]float64, n),
		index:   make(map[common.PatentID]int, n),
	}
	for i, id := range st.ids {
		st.index[id] = i
	}
	return st
}

// Measure returns the measure this table was computed for.
func (st *ScoreTable) Measure() common.Measure { return st.measure }

// Len returns the number of scored nodes.
func (st *ScoreTable) Len() int { return len(st.ids) }

// At returns the (patent, score) pair at position i in graph node order.
func (st *ScoreTable) At(i int) Entry {
	return Entry{PatentID: st.ids[i], Score: st.scores[i]}
}

// Score returns the score for id, or false if id was not in the graph.
func (st *ScoreTable) Score(id common.PatentID) (float64, bool) {
	i, ok := st.index[id]
	if !ok {
		return 0, false
	}
	return st.scores[i], true
}

// Entries returns a copy of all (patent, score) pairs in graph node order.
func (st *ScoreTable) Entries() []Entry {
	out := make([]Entry, len(st.ids))
	for i := range st.ids {
		out[i] = Entry{PatentID: st.ids[i], Score: st.scores[i]}
	}
	return out
}

// ConvergenceWarning reports that an iterative method hit its iteration cap
// before meeting tolerance.  Non-fatal: the score table returned alongside it
// is the best available approximation and must be flagged to the caller, not
// silently trusted.
type ConvergenceWarning struct {
	Measure    common.Measure
	Iterations int
	Residual   float64
	Tolerance  float64
}

// Error implements the error interface so the warning can travel through
// logging and metrics layers; callers distinguish it from fatal failures by
// type or by errors.IsCode with ErrCodeGraphConvergence.
func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("[%s] %s did not converge after %d iterations (residual %.3e, tolerance %.3e)",
		errors.ErrCodeGraphConvergence, w.Measure, w.Iterations, w.Residual, w.Tolerance)
}

// AsAppError converts the warning into the coded AppError form used by the
// unified error taxonomy.
func (w *ConvergenceWarning) AsAppError() *errors.AppError {
	return errors.New(errors.ErrCodeGraphConvergence, "iteration cap reached").
		WithDetail(w.Error())
}

// errEmptyGraph is the shared guard for all three measures.
func errEmptyGraph(measure common.Measure) *errors.AppError {
	return errors.New(errors.ErrCodeGraphEmpty,
		fmt.Sprintf("cannot compute %s centrality on an empty graph", measure))
}
