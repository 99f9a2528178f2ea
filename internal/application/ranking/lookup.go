package ranking

import (
	"sort"

	"github.com/turtacn/CiteGraph-Analytics/internal/domain/patent"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Attributes is the metadata projection of one looked-up patent.
type Attributes struct {
	PatentID  common.PatentID
	GrantYear int

	// AssigneeName is nil when the patent's assignee had no entry in the
	// assignee-name table.
	AssigneeName *string
}

// Lookup resolves ids against the attribute table and returns their metadata
// rows in attribute-table row order, not in the order ids were given.  Ids
// with no attribute row are silently omitted; a shorter result than input is
// a data-quality signal, not an error.
func Lookup(ids []common.PatentID, table *patent.AttributeTable) []Attributes {
	type hit struct {
		row int
		rec patent.Record
	}
	hits := make([]hit, 0, len(ids))
	seen := make(map[common.PatentID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		i, ok := table.IndexOf(id)
		if !ok {
			continue
		}
		hits = append(hits, hit{row: i, rec: table.RowAt(i)})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].row < hits[j].row })

	out := make([]Attributes, len(hits))
	for i, h := range hits {
		out[i] = Attributes{
			PatentID:     h.rec.PatentID,
			GrantYear:    h.rec.GrantYear,
			AssigneeName: h.rec.AssigneeName,
		}
	}
	return out
}
