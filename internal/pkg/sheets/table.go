package sheets

import (
	"strings"
)

// Table is one spreadsheet tab: a header row plus data rows. Cells are
// raw strings; typing is the caller's concern.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row addresses cells by column name or position.
type Row struct {
	headers *[]string
	cells   []string
}

// NewTable builds a table from CSV records. The first record is the
// header row.
func NewTable(records [][]string) *Table {
	t := &Table{}
	if len(records) == 0 {
		return t
	}

	t.Headers = append(t.Headers, records[0]...)
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, Row{headers: &t.Headers, cells: rec})
	}
	return t
}

// NormalizeHeaders trims column names and strips embedded newlines.
// The loader deliberately does not call this: it is the precondition
// every consumer applies before addressing columns by name.
func (t *Table) NormalizeHeaders() {
	for i, h := range t.Headers {
		t.Headers[i] = strings.TrimSpace(strings.ReplaceAll(h, "\n", ""))
	}
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of names absent from the header row.
func (t *Table) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Get returns the trimmed cell under the named column and whether the
// column exists and the cell is non-blank.
func (r Row) Get(name string) (string, bool) {
	for i, h := range *r.headers {
		if h != name {
			continue
		}
		if i >= len(r.cells) {
			return "", false
		}
		v := strings.TrimSpace(r.cells[i])
		return v, v != ""
	}
	return "", false
}

// GetOr returns the trimmed cell under the named column, or def when
// the column is missing or the cell is blank.
func (r Row) GetOr(name, def string) string {
	if v, ok := r.Get(name); ok {
		return v
	}
	return def
}

// Index returns the trimmed cell at position i, or "" when the row is
// shorter. Used for tabs with a positional contract.
func (r Row) Index(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.cells)
}
