// Package patent holds the tabular patent metadata the pipeline joins
// ranking results against: one record per patent with grant year, assignee
// identifier, and (after the assignee join) a display name.
package patent

import (
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// Record is one row of the attribute table.
type Record struct {
	PatentID   common.PatentID
	GrantYear  int
	AssigneeID common.AssigneeID

	// AssigneeName is the company display name resolved by the left join
	// against the assignee-name table.  Nil when the assignee had no match,
	// which is a data-quality condition, not an error.
	AssigneeName *string
}

// AttributeTable is the read-only patent metadata table.  Row order is load
// order and is preserved by lookups: consumers correlating rank position with
// output rows must account for the mismatch rather than assume input order.
type AttributeTable struct {
	rows  []Record
	index map[common.PatentID]int
}

// NewAttributeTable builds a table from records in load order.  A duplicate
// patent id keeps its first row; later rows are dropped.
func NewAttributeTable(records []Record) *AttributeTable {
	t := &AttributeTable{
		index: make(map[common.PatentID]int, len(records)),
	}
	for _, r := range records {
		if _, dup := t.index[r.PatentID]; dup {
			continue
		}
		t.index[r.PatentID] = len(t.rows)
		t.rows = append(t.rows, r)
	}
	return t
}

// JoinAssigneeNames left-joins company names onto the table by assignee id.
// Rows whose assignee is absent from names keep a nil AssigneeName.
// Intended to run once at load time, before the table is shared.
func (t *AttributeTable) JoinAssigneeNames(names map[common.AssigneeID]string) {
	for i := range t.rows {
		if name, ok := names[t.rows[i].AssigneeID]; ok {
			n := name
			t.rows[i].AssigneeName = &n
		}
	}
}

// Len returns the number of rows.
func (t *AttributeTable) Len() int { return len(t.rows) }

// RowAt returns the row at position i in load order.
func (t *AttributeTable) RowAt(i int) Record { return t.rows[i] }

// IndexOf returns the row position of id, or false if the table has no row
// for it.
func (t *AttributeTable) IndexOf(id common.PatentID) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Get returns the row for id, or false if absent.
func (t *AttributeTable) Get(id common.PatentID) (Record, bool) {
	i, ok := t.index[id]
	if !ok {
		return Record{}, false
	}
	return t.rows[i], true
}
