// Package graph implements the directed patent citation graph: an edge from
// patent A to patent B means A's filing cites B as prior art.
//
// The graph is built once through a Builder and never mutated afterwards.
// Nodes are kept in first-appearance order; that order is what stable sorts
// downstream fall back to on score ties, so it must not change between runs
// over the same input.
package graph

import (
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// CitationGraph is an immutable directed graph over patent identifiers.
// Memory is O(V+E): an out-adjacency list plus an in-degree table.  Isolated
// directions are valid: a node cited but never citing has an empty successor
// list, a node citing but never cited has in-degree zero.
type CitationGraph struct {
	nodes []common.PatentID
	index map[common.PatentID]int
	out   [][]int
	inDeg []int
	edges int
}

// Order returns the number of nodes.
func (g *CitationGraph) Order() int { return len(g.nodes) }

// Size returns the number of distinct directed edges.
func (g *CitationGraph) Size() int { return g.edges }

// Node returns the patent identifier at position i in first-appearance order.
func (g *CitationGraph) Node(i int) common.PatentID { return g.nodes[i] }

// Nodes returns all patent identifiers in first-appearance order.
// The returned slice is shared with the graph and must not be modified.
func (g *CitationGraph) Nodes() []common.PatentID { return g.nodes }

// IndexOf returns the position of id in node order, or false if absent.
func (g *CitationGraph) IndexOf(id common.PatentID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// HasNode reports whether id is in the node set.
func (g *CitationGraph) HasNode(id common.PatentID) bool {
	_, ok := g.index[id]
	return ok
}

// Successors returns the positions of the patents cited by the node at
// position i.  The returned slice is shared with the graph and must not be
// modified.
func (g *CitationGraph) Successors(i int) []int { return g.out[i] }

// OutDegreeAt returns the number of patents cited by the node at position i.
func (g *CitationGraph) OutDegreeAt(i int) int { return len(g.out[i]) }

// InDegreeAt returns the number of citations received by the node at
// position i.
func (g *CitationGraph) InDegreeAt(i int) int { return g.inDeg[i] }

// InDegree returns the number of citations received by id, or 0 if id is not
// in the graph.
func (g *CitationGraph) InDegree(id common.PatentID) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	return g.inDeg[i]
}
