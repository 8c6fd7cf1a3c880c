package analysis

import (
	"sort"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// RankingSorter produces per-year ascending and descending ministry
// orderings from a pivoted table.
type RankingSorter struct{}

// NewRankingSorter creates a ranking sorter.
func NewRankingSorter() *RankingSorter {
	return &RankingSorter{}
}

// RankByYear returns one "<year>_asc" and one "<year>_desc" ranking per
// distinct year in the table. Flat and two-level column layouts are handled
// alike through Years and YearSlice; ministries with no defined cell for a
// year are excluded from that year's orderings. A year whose column is
// entirely undefined still yields both keys with empty orderings.
//
// The ascending order is stable: ministries with equal amounts keep their
// table row order. The descending order is the exact reverse, so the two
// directions mirror each other under the (amount, row order) total order.
func (s *RankingSorter) RankByYear(table *domain.PivotedTable) map[string]domain.Ranking {
	rankings := make(map[string]domain.Ranking)
	for _, year := range table.Years() {
		slice := table.YearSlice(year)

		asc := append(domain.Ranking(nil), slice...)
		sort.SliceStable(asc, func(i, j int) bool {
			return asc[i].Amount.LessThan(asc[j].Amount)
		})

		desc := make(domain.Ranking, len(asc))
		for i, e := range asc {
			desc[len(asc)-1-i] = e
		}

		rankings[year+"_asc"] = asc
		rankings[year+"_desc"] = desc
	}
	return rankings
}
