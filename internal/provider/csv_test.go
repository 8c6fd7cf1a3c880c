package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCSVProviderLoad(t *testing.T) {
	path := writeCSV(t, "\uFEFFministry,fiscal_year,amount\n"+
		"Education,2024,100\n"+
		"Defense,2024,\"1,250\"\n"+
		"Education,2025,150\n")

	ds, err := NewCSVProvider(path, []string{"amount"}, nil).Load(context.Background())
	require.NoError(t, err)

	// The byte-order mark does not leak into the schema.
	assert.Equal(t, []string{"ministry", "fiscal_year", "amount"}, ds.Fields)
	require.Equal(t, 3, ds.Len())

	assert.Equal(t, "Education", ds.Records[0].Labels["ministry"])
	assert.True(t, ds.Records[0].Amounts["amount"].Equal(decimal.NewFromInt(100)))
	assert.True(t, ds.Records[1].Amounts["amount"].Equal(decimal.NewFromInt(1250)), "grouped digits parse")
}

func TestCSVProviderUnparseableAmount(t *testing.T) {
	path := writeCSV(t, "ministry,fiscal_year,amount\nEducation,2024,n/a\n")

	ds, err := NewCSVProvider(path, []string{"amount"}, nil).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	_, ok := ds.Records[0].Amounts["amount"]
	assert.False(t, ok, "bad amount cell stays undefined")
}

func TestCSVProviderYearFilter(t *testing.T) {
	path := writeCSV(t, "ministry,fiscal_year,amount\n"+
		"Education,2023,90\n"+
		"Education,2024,100\n"+
		"Education,2026,200\n")

	filter := &YearFilter{Field: "fiscal_year", Start: 2024, End: 2025}
	ds, err := NewCSVProvider(path, []string{"amount"}, filter).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "2024", ds.Records[0].Labels["fiscal_year"])
}

func TestCSVProviderMissingFile(t *testing.T) {
	_, err := NewCSVProvider(filepath.Join(t.TempDir(), "nope.csv"), []string{"amount"}, nil).Load(context.Background())
	require.Error(t, err)
}
