package output

import (
	"bytes"
	"encoding/csv"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// CSVChangesFormatter renders the formatted year-over-year change table as
// CSV, ministry column first, one column per pivot column.
type CSVChangesFormatter struct{}

func (c CSVChangesFormatter) Name() string { return "csv" }

func (c CSVChangesFormatter) Format(bundle *domain.ResultBundle) ([]byte, error) {
	changes := bundle.ChangesYoY
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Ministry"}, columnLabels(changes.Columns)...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range changes.Ministries {
		row := make([]string, 0, len(changes.Columns)+1)
		row = append(row, m)
		for _, col := range changes.Columns {
			row = append(row, changes.Cell(m, col))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVBudgetFormatter renders the pivoted budget table as CSV. Undefined
// cells are left empty, never written as zero.
type CSVBudgetFormatter struct{}

func (c CSVBudgetFormatter) Name() string { return "budget-csv" }

func (c CSVBudgetFormatter) Format(bundle *domain.ResultBundle) ([]byte, error) {
	table := bundle.BudgetByMinistry
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Ministry"}, columnLabels(table.Columns)...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range table.Ministries {
		row := make([]string, 0, len(table.Columns)+1)
		row = append(row, m)
		for _, col := range table.Columns {
			if v, ok := table.Cell(m, col); ok {
				row = append(row, v.String())
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// rankingCSV renders one per-year ordering, used by the exporter for the
// one-file-per-sort-key output.
func rankingCSV(ranking domain.Ranking) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Ministry", "Amount"}); err != nil {
		return nil, err
	}
	for _, e := range ranking {
		if err := w.Write([]string{e.Ministry, e.Amount.String()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func columnLabels(cols []domain.Column) []string {
	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Label()
	}
	return labels
}
