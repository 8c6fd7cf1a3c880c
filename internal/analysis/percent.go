package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// FormatChange renders a year-over-year delta as a signed percentage
// string: "+X.XX%" for positive values, "-X.XX%" for negative values, and
// "NaN" when the delta is undefined.
//
// A computed zero change also renders as "NaN", matching the upstream data
// publisher's output, which does not distinguish "no change" from "no basis
// for comparison". See DESIGN.md.
func FormatChange(x decimal.Decimal, defined bool) string {
	if !defined || x.IsZero() {
		return "NaN"
	}
	if x.GreaterThan(decimal.Zero) {
		return "+" + x.StringFixed(2) + "%"
	}
	return x.StringFixed(2) + "%"
}

// FormatChanges renders every position of a ChangeTable, filling undefined
// cells with "NaN".
func FormatChanges(table *domain.ChangeTable) *domain.FormattedChangeTable {
	out := &domain.FormattedChangeTable{
		Ministries: append([]string(nil), table.Ministries...),
		Columns:    append([]domain.Column(nil), table.Columns...),
		Cells:      make(map[string]map[domain.Column]string, len(table.Ministries)),
	}
	for _, m := range table.Ministries {
		row := make(map[domain.Column]string, len(table.Columns))
		for _, c := range table.Columns {
			v, ok := table.Cell(m, c)
			row[c] = FormatChange(v, ok)
		}
		out.Cells[m] = row
	}
	return out
}
