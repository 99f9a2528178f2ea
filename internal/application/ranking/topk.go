// Package ranking orders centrality scores and joins them against patent
// metadata to produce the report rows the CLI prints.
package ranking

import (
	"sort"

	"github.com/turtacn/CiteGraph-Analytics/internal/application/centrality"
)

// TopK returns the min(k, table length) highest-scoring entries in descending
// score order.  k <= 0 yields an empty slice.  Entries with equal scores keep
// their score-table order; callers must not rely on any particular order
// among ties.
func TopK(st *centrality.ScoreTable, k int) []centrality.Entry {
	if k <= 0 || st.Len() == 0 {
		return nil
	}
	entries := st.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
