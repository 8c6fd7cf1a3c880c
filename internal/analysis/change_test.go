package analysis

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

func yearCol(year string) domain.Column { return domain.Column{Year: year} }

func TestYearOverYearFirstColumnUndefined(t *testing.T) {
	table := domain.NewPivotedTable()
	table.SetCell("A", yearCol("2024"), decimal.NewFromInt(100))
	table.SetCell("A", yearCol("2025"), decimal.NewFromInt(150))

	changes := NewChangeCalculator().YearOverYear(table)
	if _, ok := changes.Cell("A", yearCol("2024")); ok {
		t.Error("earliest column must be undefined for every row")
	}
	v, ok := changes.Cell("A", yearCol("2025"))
	if !ok {
		t.Fatal("expected defined change for 2025")
	}
	if !v.Equal(decimal.NewFromInt(50)) {
		t.Errorf("change = %s, want 50", v)
	}
}

func TestYearOverYearZeroDenominator(t *testing.T) {
	table := domain.NewPivotedTable()
	table.SetCell("A", yearCol("2024"), decimal.Zero)
	table.SetCell("A", yearCol("2025"), decimal.NewFromInt(10))

	changes := NewChangeCalculator().YearOverYear(table)
	if _, ok := changes.Cell("A", yearCol("2025")); ok {
		t.Error("zero previous value must yield an undefined cell, not infinity")
	}
}

func TestYearOverYearMissingOperand(t *testing.T) {
	table := domain.NewPivotedTable()
	table.SetCell("A", yearCol("2024"), decimal.NewFromInt(100))
	table.SetCell("B", yearCol("2025"), decimal.NewFromInt(50))
	// Register both columns for both rows' positions.
	table.SetCell("A", yearCol("2025"), decimal.NewFromInt(120))

	changes := NewChangeCalculator().YearOverYear(table)
	if _, ok := changes.Cell("B", yearCol("2025")); ok {
		t.Error("missing previous cell must yield an undefined change")
	}
}

func TestYearOverYearNegativeChange(t *testing.T) {
	table := domain.NewPivotedTable()
	table.SetCell("B", yearCol("2024"), decimal.NewFromInt(200))
	table.SetCell("B", yearCol("2025"), decimal.NewFromInt(180))

	changes := NewChangeCalculator().YearOverYear(table)
	v, ok := changes.Cell("B", yearCol("2025"))
	if !ok {
		t.Fatal("expected defined change")
	}
	if !v.Equal(decimal.NewFromInt(-10)) {
		t.Errorf("change = %s, want -10", v)
	}
}

func TestYearOverYearKeepsShape(t *testing.T) {
	table := domain.NewPivotedTable()
	table.SetCell("A", yearCol("2024"), decimal.NewFromInt(1))
	table.SetCell("B", yearCol("2024"), decimal.NewFromInt(2))
	table.SetCell("A", yearCol("2025"), decimal.NewFromInt(3))

	changes := NewChangeCalculator().YearOverYear(table)
	if len(changes.Ministries) != len(table.Ministries) {
		t.Errorf("ministry count %d, want %d", len(changes.Ministries), len(table.Ministries))
	}
	if len(changes.Columns) != len(table.Columns) {
		t.Errorf("column count %d, want %d", len(changes.Columns), len(table.Columns))
	}
}
