package domain

import (
	"github.com/shopspring/decimal"
)

// Column identifies one column of a pivoted table. Year is the fiscal-year
// label; Group is the outer label when the table has a two-level column
// layout and empty when columns are flat.
type Column struct {
	Group string `json:"group,omitempty"`
	Year  string `json:"year"`
}

// MarshalText renders a column as its display label so columns can key JSON
// maps.
func (c Column) MarshalText() ([]byte, error) {
	return []byte(c.Label()), nil
}

// Label returns the display label: "year" for flat columns,
// "group/year" for two-level columns.
func (c Column) Label() string {
	if c.Group == "" {
		return c.Year
	}
	return c.Group + "/" + c.Year
}

// PivotedTable is a ministry x year numeric table. Rows and columns carry
// their own order; a missing entry in Cells is an undefined cell, distinct
// from zero.
type PivotedTable struct {
	Ministries []string                              `json:"ministries"`
	Columns    []Column                              `json:"columns"`
	Cells      map[string]map[Column]decimal.Decimal `json:"cells"`
}

// NewPivotedTable returns an empty table ready for SetCell.
func NewPivotedTable() *PivotedTable {
	return &PivotedTable{Cells: make(map[string]map[Column]decimal.Decimal)}
}

// SetCell stores a value, registering the ministry row and the column on
// first sight. Row and column order is first-appearance order.
func (t *PivotedTable) SetCell(ministry string, col Column, v decimal.Decimal) {
	row, ok := t.Cells[ministry]
	if !ok {
		row = make(map[Column]decimal.Decimal)
		t.Cells[ministry] = row
		t.Ministries = append(t.Ministries, ministry)
	}
	if !t.hasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
	row[col] = v
}

// Cell returns the value at (ministry, col) and whether it is defined.
func (t *PivotedTable) Cell(ministry string, col Column) (decimal.Decimal, bool) {
	row, ok := t.Cells[ministry]
	if !ok {
		return decimal.Decimal{}, false
	}
	v, ok := row[col]
	return v, ok
}

func (t *PivotedTable) hasColumn(col Column) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Years returns the distinct fiscal-year labels in column order. For flat
// layouts this is simply the columns; for two-level layouts it is the
// distinct inner labels, so callers never branch on column shape.
func (t *PivotedTable) Years() []string {
	seen := make(map[string]bool)
	var years []string
	for _, c := range t.Columns {
		if !seen[c.Year] {
			seen[c.Year] = true
			years = append(years, c.Year)
		}
	}
	return years
}

// YearSlice extracts the single-year column values in row order. Ministries
// with no defined cell for the year are omitted. When the year appears under
// several outer groups, the first matching column supplies the value.
func (t *PivotedTable) YearSlice(year string) []RankingEntry {
	var col Column
	found := false
	for _, c := range t.Columns {
		if c.Year == year {
			col = c
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	var slice []RankingEntry
	for _, m := range t.Ministries {
		if v, ok := t.Cell(m, col); ok {
			slice = append(slice, RankingEntry{Ministry: m, Amount: v})
		}
	}
	return slice
}

// ChangeTable holds year-over-year percentage deltas. It shares the row and
// column shape of the PivotedTable it was derived from; an entry missing
// from Cells is undefined (no prior year, missing operand, or zero
// denominator), never zero.
type ChangeTable struct {
	Ministries []string                              `json:"ministries"`
	Columns    []Column                              `json:"columns"`
	Cells      map[string]map[Column]decimal.Decimal `json:"cells"`
}

// Cell returns the delta at (ministry, col) and whether it is defined.
func (t *ChangeTable) Cell(ministry string, col Column) (decimal.Decimal, bool) {
	row, ok := t.Cells[ministry]
	if !ok {
		return decimal.Decimal{}, false
	}
	v, ok := row[col]
	return v, ok
}

// FormattedChangeTable is a ChangeTable rendered to strings. Every
// (ministry, column) position is present; undefined deltas render as "NaN".
type FormattedChangeTable struct {
	Ministries []string                     `json:"ministries"`
	Columns    []Column                     `json:"columns"`
	Cells      map[string]map[Column]string `json:"cells"`
}

// Cell returns the formatted string at (ministry, col).
func (t *FormattedChangeTable) Cell(ministry string, col Column) string {
	if row, ok := t.Cells[ministry]; ok {
		if s, ok := row[col]; ok {
			return s
		}
	}
	return "NaN"
}
