package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestColumnLabel(t *testing.T) {
	flat := Column{Year: "2024"}
	if got := flat.Label(); got != "2024" {
		t.Errorf("flat label = %q, want %q", got, "2024")
	}
	nested := Column{Group: "general", Year: "2024"}
	if got := nested.Label(); got != "general/2024" {
		t.Errorf("nested label = %q, want %q", got, "general/2024")
	}
}

func TestYearsFlat(t *testing.T) {
	table := NewPivotedTable()
	table.SetCell("A", Column{Year: "2024"}, decimal.NewFromInt(1))
	table.SetCell("A", Column{Year: "2025"}, decimal.NewFromInt(2))

	years := table.Years()
	if len(years) != 2 || years[0] != "2024" || years[1] != "2025" {
		t.Fatalf("Years() = %v, want [2024 2025]", years)
	}
}

func TestYearsTwoLevel(t *testing.T) {
	table := NewPivotedTable()
	table.SetCell("A", Column{Group: "general", Year: "2024"}, decimal.NewFromInt(1))
	table.SetCell("A", Column{Group: "special", Year: "2024"}, decimal.NewFromInt(2))
	table.SetCell("A", Column{Group: "general", Year: "2025"}, decimal.NewFromInt(3))

	years := table.Years()
	if len(years) != 2 {
		t.Fatalf("Years() = %v, want two distinct inner labels", years)
	}
}

func TestYearSlicePreservesRowOrderAndSkipsUndefined(t *testing.T) {
	table := NewPivotedTable()
	table.SetCell("A", Column{Year: "2024"}, decimal.NewFromInt(100))
	table.SetCell("B", Column{Year: "2024"}, decimal.NewFromInt(200))
	table.SetCell("C", Column{Year: "2025"}, decimal.NewFromInt(300))

	slice := table.YearSlice("2024")
	if len(slice) != 2 {
		t.Fatalf("YearSlice(2024) has %d entries, want 2", len(slice))
	}
	if slice[0].Ministry != "A" || slice[1].Ministry != "B" {
		t.Errorf("YearSlice(2024) order = %v, want row order A, B", slice)
	}
	if got := table.YearSlice("2026"); got != nil {
		t.Errorf("YearSlice for unknown year = %v, want nil", got)
	}
}

func TestYearSliceTwoLevelUsesFirstMatchingColumn(t *testing.T) {
	table := NewPivotedTable()
	table.SetCell("A", Column{Group: "general", Year: "2024"}, decimal.NewFromInt(10))
	table.SetCell("A", Column{Group: "special", Year: "2024"}, decimal.NewFromInt(99))

	slice := table.YearSlice("2024")
	if len(slice) != 1 {
		t.Fatalf("YearSlice(2024) has %d entries, want 1", len(slice))
	}
	if !slice[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("YearSlice amount = %s, want the first outer group's value 10", slice[0].Amount)
	}
}
