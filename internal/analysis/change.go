package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ChangeCalculator derives year-over-year percentage deltas from a pivoted
// table.
type ChangeCalculator struct{}

// NewChangeCalculator creates a change calculator.
func NewChangeCalculator() *ChangeCalculator {
	return &ChangeCalculator{}
}

// YearOverYear computes, for each ministry and each column after the first,
// the percentage change from the previous column: (cur - prev) / prev * 100.
// Column order is trusted as chronological; nothing is re-sorted here.
//
// A cell is undefined (absent from the result) when it is the first column,
// when either operand cell is undefined, or when the previous value is zero.
// The zero denominator never faults; the cell is simply left undefined.
func (c *ChangeCalculator) YearOverYear(table *domain.PivotedTable) *domain.ChangeTable {
	out := &domain.ChangeTable{
		Ministries: append([]string(nil), table.Ministries...),
		Columns:    append([]domain.Column(nil), table.Columns...),
		Cells:      make(map[string]map[domain.Column]decimal.Decimal),
	}
	for _, m := range table.Ministries {
		for i := 1; i < len(table.Columns); i++ {
			prev, okPrev := table.Cell(m, table.Columns[i-1])
			cur, okCur := table.Cell(m, table.Columns[i])
			if !okPrev || !okCur || prev.IsZero() {
				continue
			}
			delta := cur.Sub(prev).Div(prev).Mul(hundred)
			row, ok := out.Cells[m]
			if !ok {
				row = make(map[domain.Column]decimal.Decimal)
				out.Cells[m] = row
			}
			row[table.Columns[i]] = delta
		}
	}
	return out
}
