package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTableSplitsHeaderAndRows(t *testing.T) {
	table := NewTable([][]string{
		{"Username", "Password"},
		{"somchai", "1234"},
		{"suda", "abcd"},
	})

	assert.Equal(t, []string{"Username", "Password"}, table.Headers)
	assert.Len(t, table.Rows, 2)
	assert.False(t, table.Empty())
}

func TestNewTableEmptyRecords(t *testing.T) {
	table := NewTable(nil)
	assert.Empty(t, table.Headers)
	assert.True(t, table.Empty())
}

func TestNormalizeHeaders(t *testing.T) {
	table := NewTable([][]string{
		{" ชื่อไซต์งาน \n", "PM ใหญ่", "  Status"},
		{"Site A", "ม.ค.", "approved"},
	})
	table.NormalizeHeaders()

	assert.Equal(t, []string{"ชื่อไซต์งาน", "PM ใหญ่", "Status"}, table.Headers)

	// Rows address columns through the shared header slice, so they see
	// the normalized names too.
	v, ok := table.Rows[0].Get("ชื่อไซต์งาน")
	assert.True(t, ok)
	assert.Equal(t, "Site A", v)
}

func TestMissingColumns(t *testing.T) {
	table := NewTable([][]string{{"Username", "Password"}})

	assert.Nil(t, table.MissingColumns("Username", "Password"))
	assert.Equal(t, []string{"Status", "Role"}, table.MissingColumns("Status", "Role"))
}

func TestRowGetTrimsAndRejectsBlank(t *testing.T) {
	table := NewTable([][]string{
		{"a", "b", "c"},
		{" x ", "   ", "y"},
	})
	row := table.Rows[0]

	v, ok := row.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = row.Get("b")
	assert.False(t, ok)

	_, ok = row.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, "fallback", row.GetOr("b", "fallback"))
	assert.Equal(t, "y", row.GetOr("c", "fallback"))
}

func TestRowGetShortRow(t *testing.T) {
	table := NewTable([][]string{
		{"a", "b", "c"},
		{"only-a"},
	})
	row := table.Rows[0]

	v, ok := row.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "only-a", v)

	_, ok = row.Get("c")
	assert.False(t, ok)
	assert.Equal(t, "", row.Index(2))
	assert.Equal(t, 1, row.Len())
}

func TestRowIndex(t *testing.T) {
	table := NewTable([][]string{
		{"a", "b"},
		{" 2024-01-01 ", "somchai"},
	})
	row := table.Rows[0]

	assert.Equal(t, "2024-01-01", row.Index(0))
	assert.Equal(t, "somchai", row.Index(1))
	assert.Equal(t, "", row.Index(-1))
	assert.Equal(t, "", row.Index(5))
}
