// Package provider supplies rectangular fiscal datasets to the analysis
// pipeline. Providers are external collaborators: they do the I/O so the
// core never has to.
package provider

import (
	"context"
	"strconv"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// Provider loads a fiscal dataset from some backing source.
type Provider interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// YearFilter keeps only records whose Field label parses to a fiscal year
// inside the inclusive [Start, End] window. Records with unparseable year
// labels are dropped.
type YearFilter struct {
	Field string
	Start int
	End   int
}

func (f *YearFilter) apply(ds *domain.Dataset) *domain.Dataset {
	if f == nil {
		return ds
	}
	out := &domain.Dataset{Fields: ds.Fields}
	for _, rec := range ds.Records {
		year, err := strconv.Atoi(rec.Labels[f.Field])
		if err != nil {
			continue
		}
		if year >= f.Start && year <= f.End {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}

// isValueField reports whether name is one of the declared numeric fields.
func isValueField(name string, valueFields []string) bool {
	for _, v := range valueFields {
		if v == name {
			return true
		}
	}
	return false
}
