package ranking

import (
	"fmt"

	"github.com/turtacn/CiteGraph-Analytics/internal/application/centrality"
	"github.com/turtacn/CiteGraph-Analytics/internal/domain/patent"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Row is one line of a ranking report.
type Row struct {
	PatentID     common.PatentID `json:"patent_id"`
	GrantYear    int             `json:"grant_year"`
	AssigneeName *string         `json:"assignee_name"`
	Score        float64         `json:"score"`
}

// Report joins a top-k score selection against patent metadata.  Rows follow
// attribute-table order, the same mismatch Lookup preserves, so a row's
// position is not its rank; Score carries the ranking information.  Top-k
// entries without an attribute row are omitted, and Omitted counts them.
type Report struct {
	Measure common.Measure `json:"measure"`
	Rows    []Row          `json:"rows"`
	Omitted int            `json:"omitted"`
}

// NewReport builds the report for the given top-k entries.
func NewReport(measure common.Measure, top []centrality.Entry, table *patent.AttributeTable) *Report {
	scores := make(map[common.PatentID]float64, len(top))
	ids := make([]common.PatentID, len(top))
	for i, e := range top {
		ids[i] = e.PatentID
		scores[e.PatentID] = e.Score
	}

	attrs := Lookup(ids, table)
	rows := make([]Row, len(attrs))
	for i, a := range attrs {
		rows[i] = Row{
			PatentID:     a.PatentID,
			GrantYear:    a.GrantYear,
			AssigneeName: a.AssigneeName,
			Score:        scores[a.PatentID],
		}
	}
	return &Report{
		Measure: measure,
		Rows:    rows,
		Omitted: len(top) - len(rows),
	}
}

// TableHeaders implements the CLI table provider.
func (r *Report) TableHeaders() []string {
	return []string{"PATENT", "GYEAR", "ASSIGNEE", "SCORE"}
}

// TableRows implements the CLI table provider.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		name := "-"
		if row.AssigneeName != nil {
			name = *row.AssigneeName
		}
		rows[i] = []string{
			string(row.PatentID),
			fmt.Sprintf("%d", row.GrantYear),
			name,
			fmt.Sprintf("%.6f", row.Score),
		}
	}
	return rows
}
