package provider

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// CSVProvider loads fiscal records from a CSV file. The header row is the
// dataset schema; columns named in ValueFields are parsed as decimal
// amounts, everything else becomes a string label.
type CSVProvider struct {
	Path        string
	ValueFields []string
	Filter      *YearFilter
}

// NewCSVProvider creates a CSV-backed provider.
func NewCSVProvider(path string, valueFields []string, filter *YearFilter) *CSVProvider {
	return &CSVProvider{Path: path, ValueFields: valueFields, Filter: filter}
}

// Load reads the whole file into a Dataset. A leading UTF-8 byte-order mark
// is stripped from the header; rows whose amount cells fail to parse keep
// the record but leave the amount undefined.
func (p *CSVProvider) Load(_ context.Context) (*domain.Dataset, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.Path, err)
	}
	defer f.Close()
	ds, err := p.parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.Path, err)
	}
	return p.Filter.apply(ds), nil
}

func (p *CSVProvider) parse(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	ds := &domain.Dataset{Fields: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rec := domain.FiscalRecord{
			Labels:  make(map[string]string),
			Amounts: make(map[string]decimal.Decimal),
		}
		for i, field := range header {
			if i >= len(row) {
				break
			}
			cell := strings.TrimSpace(row[i])
			if isValueField(field, p.ValueFields) {
				if cell == "" {
					continue
				}
				v, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", ""))
				if err != nil {
					continue
				}
				rec.Amounts[field] = v
			} else {
				rec.Labels[field] = cell
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}
