package domain

import (
	"github.com/shopspring/decimal"
)

// FiscalRecord is a single row of the rectangular fiscal dataset: string
// labels (ministry, fiscal year, ...) plus numeric amounts keyed by field
// name. Records are treated as immutable once loaded.
type FiscalRecord struct {
	Labels  map[string]string          `json:"labels"`
	Amounts map[string]decimal.Decimal `json:"amounts"`
}

// Dataset is a rectangular collection of fiscal records with an explicit
// field schema. Providers build it; the aggregator only reads it.
type Dataset struct {
	Fields  []string       `json:"fields"`
	Records []FiscalRecord `json:"records"`
}

// HasField reports whether a field name is part of the dataset schema.
func (d *Dataset) HasField(name string) bool {
	for _, f := range d.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}
