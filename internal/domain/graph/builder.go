package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/turtacn/CiteGraph-Analytics/pkg/errors"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Builder accumulates citation edges and produces an immutable CitationGraph.
// Duplicate edges collapse to a single edge; self-loops are retained.  No
// validation against any attribute table happens here; dangling identifiers
// are expected in citation dumps and allowed.
type Builder struct {
	g         *CitationGraph
	seen      map[[2]int]struct{}
	finalized bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		g: &CitationGraph{
			index: make(map[common.PatentID]int),
		},
		seen: make(map[[2]int]struct{}),
	}
}

// intern returns the node position for id, registering it on first sight.
func (b *Builder) intern(id common.PatentID) int {
	if i, ok := b.g.index[id]; ok {
		return i
	}
	i := len(b.g.nodes)
	b.g.index[id] = i
	b.g.nodes = append(b.g.nodes, id)
	b.g.out = append(b.g.out, nil)
	b.g.inDeg = append(b.g.inDeg, 0)
	return i
}

// AddEdge records a citing → cited edge.  Both endpoints join the node set;
// a repeated pair is a no-op.
func (b *Builder) AddEdge(citing, cited common.PatentID) error {
	if b.finalized {
		return errors.New(errors.ErrCodeGraphFinalized, "cannot add edge after Finalize")
	}
	if citing == "" || cited == "" {
		return errors.New(errors.ErrCodeGraphEdgeParse, "empty patent identifier in edge")
	}

	u := b.intern(citing)
	v := b.intern(cited)

	key := [2]int{u, v}
	if _, dup := b.seen[key]; dup {
		return nil
	}
	b.seen[key] = struct{}{}

	b.g.out[u] = append(b.g.out[u], v)
	b.g.inDeg[v]++
	b.g.edges++
	return nil
}

// IsHeaderLine reports whether a raw edge-list line is a header or comment:
// a line whose first field begins with a quote character.  The NBER dump
// opens with `"CITING","CITED"`.
func IsHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, `"`)
}

// AddLine parses one edge-list line of the form `citing,cited` and records
// the edge.  Blank lines and header lines are skipped.  A line that does not
// split into exactly two non-empty identifiers fails with an edge-parse
// error carrying the line number.
func (b *Builder) AddLine(line string, lineno int) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || IsHeaderLine(trimmed) {
		return nil
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return errors.New(errors.ErrCodeGraphEdgeParse, "edge line must have exactly two fields").
			WithDetail(fmt.Sprintf("line %d: %q", lineno, line))
	}

	citing := common.PatentID(strings.TrimSpace(parts[0]))
	cited := common.PatentID(strings.TrimSpace(parts[1]))
	if citing == "" || cited == "" {
		return errors.New(errors.ErrCodeGraphEdgeParse, "edge line has an empty identifier").
			WithDetail(fmt.Sprintf("line %d: %q", lineno, line))
	}

	return b.AddEdge(citing, cited)
}

// ReadEdgeList consumes an entire edge-list text stream line by line.
// The first malformed line aborts the read.
func (b *Builder) ReadEdgeList(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Patent identifiers are short but be generous with line capacity.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := b.AddLine(scanner.Text(), lineno); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "reading edge list")
	}
	return nil
}

// Finalize seals the builder and returns the immutable graph.  The duplicate
// tracking set is released; further AddEdge calls fail.
func (b *Builder) Finalize() *CitationGraph {
	b.finalized = true
	b.seen = nil
	return b.g
}
