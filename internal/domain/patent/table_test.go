package patent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

func sampleTable() *AttributeTable {
	return NewAttributeTable([]Record{
		{PatentID: "100", GrantYear: 1975, AssigneeID: "10"},
		{PatentID: "200", GrantYear: 1980, AssigneeID: "20"},
		{PatentID: "300", GrantYear: 1985, AssigneeID: "99"},
	})
}

func TestGet(t *testing.T) {
	tbl := sampleTable()

	r, ok := tbl.Get("200")
	require.True(t, ok)
	assert.Equal(t, 1980, r.GrantYear)
	assert.Equal(t, common.AssigneeID("20"), r.AssigneeID)

	_, ok = tbl.Get("404")
	assert.False(t, ok)
}

func TestDuplicateKeepsFirstRow(t *testing.T) {
	tbl := NewAttributeTable([]Record{
		{PatentID: "100", GrantYear: 1975},
		{PatentID: "100", GrantYear: 1999},
	})

	assert.Equal(t, 1, tbl.Len())
	r, _ := tbl.Get("100")
	assert.Equal(t, 1975, r.GrantYear)
}

func TestJoinAssigneeNames(t *testing.T) {
	tbl := sampleTable()
	tbl.JoinAssigneeNames(map[common.AssigneeID]string{
		"10": "ACME CORP",
		"20": "GLOBEX",
		// "99" intentionally unmatched.
	})

	r, _ := tbl.Get("100")
	require.NotNil(t, r.AssigneeName)
	assert.Equal(t, "ACME CORP", *r.AssigneeName)

	r, _ = tbl.Get("300")
	assert.Nil(t, r.AssigneeName, "unmatched assignee keeps a nil name")
}

func TestRowOrderIsLoadOrder(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, common.PatentID("100"), tbl.RowAt(0).PatentID)
	assert.Equal(t, common.PatentID("300"), tbl.RowAt(2).PatentID)

	i, ok := tbl.IndexOf("300")
	require.True(t, ok)
	assert.Equal(t, 2, i)
}
