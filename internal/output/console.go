package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// ConsoleFormatter provides a concise text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(bundle *domain.ResultBundle) ([]byte, error) {
	var buf bytes.Buffer
	table := bundle.BudgetByMinistry

	fmt.Fprintln(&buf, "MINISTRY BUDGET ANALYSIS")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Ministries: %d  Columns: %d\n", len(table.Ministries), len(table.Columns))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Budget by ministry:")
	for _, m := range table.Ministries {
		fmt.Fprintf(&buf, "  %s:", m)
		for _, col := range table.Columns {
			if v, ok := table.Cell(m, col); ok {
				fmt.Fprintf(&buf, " %s=%s", col.Label(), FormatAmount(v))
			}
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Year-over-year change:")
	for _, m := range bundle.ChangesYoY.Ministries {
		fmt.Fprintf(&buf, "  %s:", m)
		for _, col := range bundle.ChangesYoY.Columns {
			fmt.Fprintf(&buf, " %s=%s", col.Label(), bundle.ChangesYoY.Cell(m, col))
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf)

	keys := make([]string, 0, len(bundle.SortedBudgets))
	for k := range bundle.SortedBudgets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(&buf, "Rankings:")
	for _, k := range keys {
		fmt.Fprintf(&buf, "  %s:", k)
		for _, e := range bundle.SortedBudgets[k] {
			fmt.Fprintf(&buf, " %s(%s)", e.Ministry, FormatAmount(e.Amount))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}
