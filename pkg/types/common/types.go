// Package common defines the shared identifier and enumeration types used
// across the CiteGraph-Analytics pipeline.  Only plain data types live here;
// behaviour belongs to the domain and application packages.
package common

import "fmt"

// PatentID is the opaque identifier of a patent as it appears in the source
// dataset.  No structure is assumed beyond non-emptiness; NBER uses numeric
// strings but other corpora use office-prefixed numbers.
type PatentID string

// AssigneeID is the opaque identifier of a patent assignee (the organisation
// holding the patent at grant time).
type AssigneeID string

// Measure enumerates the centrality measures the pipeline can compute.
type Measure string

const (
	MeasureInDegree    Measure = "indegree"
	MeasureEigenvector Measure = "eigenvector"
	MeasurePageRank    Measure = "pagerank"
)

// ParseMeasure converts a user-supplied string into a Measure.
// Matching is exact and case-sensitive; unknown values return an error so
// that CLI flag mistakes surface immediately rather than as empty reports.
func ParseMeasure(s string) (Measure, error) {
	switch Measure(s) {
	case MeasureInDegree, MeasureEigenvector, MeasurePageRank:
		return Measure(s), nil
	}
	return "", fmt.Errorf("unknown centrality measure %q (want indegree, eigenvector, or pagerank)", s)
}

// String implements fmt.Stringer.
func (m Measure) String() string { return string(m) }

// Measures lists all supported measures in presentation order.
func Measures() []Measure {
	return []Measure{MeasureInDegree, MeasureEigenvector, MeasurePageRank}
}
