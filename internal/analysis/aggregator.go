package analysis

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// Aggregator pivots flat fiscal records into a ministry x year table.
type Aggregator struct {
	Logger Logger
}

// NewAggregator creates an aggregator with no-op logging.
func NewAggregator() *Aggregator {
	return &Aggregator{Logger: NopLogger{}}
}

// rowSeparator joins multi-field group keys into one row identity.
const rowSeparator = " / "

// Aggregate groups records by (groupKeys, timeKeys) and sums valueField
// within each group. Combinations with no contributing record produce no
// cell. A single time key yields flat columns; multiple time keys yield a
// two-level column layout with the trailing key as the year level.
//
// Records whose amount for valueField is missing are skipped; they
// contribute neither a cell nor a row. Returns InvalidFieldError when any
// named field is absent from the schema and ErrEmptyDataset when the
// dataset has no records.
func (a *Aggregator) Aggregate(ds *domain.Dataset, groupKeys, timeKeys []string, valueField string) (*domain.PivotedTable, error) {
	for _, f := range groupKeys {
		if !ds.HasField(f) {
			return nil, &domain.InvalidFieldError{Field: f}
		}
	}
	for _, f := range timeKeys {
		if !ds.HasField(f) {
			return nil, &domain.InvalidFieldError{Field: f}
		}
	}
	if !ds.HasField(valueField) {
		return nil, &domain.InvalidFieldError{Field: valueField}
	}
	if ds.Len() == 0 {
		return nil, domain.ErrEmptyDataset
	}

	type cellKey struct {
		ministry string
		col      domain.Column
	}
	sums := make(map[cellKey]decimal.Decimal)
	ministryOrder := make([]string, 0)
	seenMinistry := make(map[string]bool)
	colSet := make(map[domain.Column]bool)

	for _, rec := range ds.Records {
		amount, ok := rec.Amounts[valueField]
		if !ok {
			continue
		}
		ministry := joinLabels(rec, groupKeys)
		col := columnFor(rec, timeKeys)
		if !seenMinistry[ministry] {
			seenMinistry[ministry] = true
			ministryOrder = append(ministryOrder, ministry)
		}
		colSet[col] = true
		key := cellKey{ministry: ministry, col: col}
		sums[key] = sums[key].Add(amount)
	}

	columns := make([]domain.Column, 0, len(colSet))
	for c := range colSet {
		columns = append(columns, c)
	}
	// Fiscal-year labels are fixed-width digit strings, so lexicographic
	// column order is chronological. Downstream change calculation relies
	// on it.
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Group != columns[j].Group {
			return columns[i].Group < columns[j].Group
		}
		return columns[i].Year < columns[j].Year
	})

	table := domain.NewPivotedTable()
	for _, m := range ministryOrder {
		for _, c := range columns {
			if v, ok := sums[cellKey{ministry: m, col: c}]; ok {
				table.SetCell(m, c, v)
			}
		}
	}
	// SetCell registers columns in first-definition order, which depends on
	// which ministry happens to come first; replace with the sorted list.
	table.Columns = columns
	a.Logger.Debugf("aggregated %d records into %d ministries x %d columns", ds.Len(), len(table.Ministries), len(table.Columns))
	return table, nil
}

func joinLabels(rec domain.FiscalRecord, keys []string) string {
	if len(keys) == 1 {
		return rec.Labels[keys[0]]
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = rec.Labels[k]
	}
	return strings.Join(parts, rowSeparator)
}

func columnFor(rec domain.FiscalRecord, timeKeys []string) domain.Column {
	last := timeKeys[len(timeKeys)-1]
	col := domain.Column{Year: rec.Labels[last]}
	if len(timeKeys) > 1 {
		outer := make([]string, len(timeKeys)-1)
		for i, k := range timeKeys[:len(timeKeys)-1] {
			outer[i] = rec.Labels[k]
		}
		col.Group = strings.Join(outer, rowSeparator)
	}
	return col
}
