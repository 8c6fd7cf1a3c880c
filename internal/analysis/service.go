package analysis

import (
	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// AnalysisService orchestrates the pipeline: one pivot feeding the
// year-over-year branch and the ranking branch independently.
type AnalysisService struct {
	Aggregator *Aggregator
	Changes    *ChangeCalculator
	Rankings   *RankingSorter
	Logger     Logger
}

// NewAnalysisService wires the pipeline with default collaborators.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		Aggregator: NewAggregator(),
		Changes:    NewChangeCalculator(),
		Rankings:   NewRankingSorter(),
		Logger:     NopLogger{},
	}
}

// Analyze pivots the dataset once, then derives the formatted change table
// and the per-year rankings from the same pivoted table. Aggregation
// failures propagate unchanged; this layer adds no failure modes of its own.
func (s *AnalysisService) Analyze(ds *domain.Dataset, groupKeys, timeKeys []string, valueField string) (*domain.ResultBundle, error) {
	table, err := s.Aggregator.Aggregate(ds, groupKeys, timeKeys, valueField)
	if err != nil {
		return nil, err
	}
	changes := FormatChanges(s.Changes.YearOverYear(table))
	rankings := s.Rankings.RankByYear(table)
	s.Logger.Infof("analysis complete: %d ministries, %d years", len(table.Ministries), len(table.Years()))
	return &domain.ResultBundle{
		BudgetByMinistry: table,
		ChangesYoY:       changes,
		SortedBudgets:    rankings,
	}, nil
}
