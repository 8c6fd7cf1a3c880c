package domain

import (
	"github.com/shopspring/decimal"
)

// RankingEntry is one (ministry, amount) pair in a per-year ordering.
type RankingEntry struct {
	Ministry string          `json:"ministry"`
	Amount   decimal.Decimal `json:"amount"`
}

// Ranking is an ordered sequence of entries for one (year, direction) pair.
type Ranking []RankingEntry

// ResultBundle is the combined output of one analysis run.
type ResultBundle struct {
	BudgetByMinistry *PivotedTable         `json:"budget_by_ministry"`
	ChangesYoY       *FormattedChangeTable `json:"changes_yoy"`
	// SortedBudgets is keyed "<year>_asc" / "<year>_desc", one pair per
	// distinct year in BudgetByMinistry.
	SortedBudgets map[string]Ranking `json:"sorted_budgets"`
}
