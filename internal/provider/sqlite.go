package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// defaultQuery reads the whole record store in insertion order.
const defaultQuery = "SELECT ministry, fiscal_year, amount FROM fiscal_records ORDER BY id"

// SQLiteProvider loads fiscal records from a SQLite database. The result
// columns of Query become the dataset schema; columns named in ValueFields
// are parsed as decimal amounts.
type SQLiteProvider struct {
	Path        string
	Query       string
	ValueFields []string
	Filter      *YearFilter
}

// NewSQLiteProvider creates a SQLite-backed provider reading the
// fiscal_records table.
func NewSQLiteProvider(path string, valueFields []string, filter *YearFilter) *SQLiteProvider {
	return &SQLiteProvider{Path: path, Query: defaultQuery, ValueFields: valueFields, Filter: filter}
}

// Load opens the database, ensures the schema is current, and reads every
// record into a Dataset.
func (p *SQLiteProvider) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := RunMigrations(p.Path); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", p.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	rows, err := db.QueryContext(ctx, p.Query)
	if err != nil {
		return nil, fmt.Errorf("query fiscal records: %w", err)
	}
	defer rows.Close()

	fields, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	ds := &domain.Dataset{Fields: fields}
	for rows.Next() {
		values := make([]sql.NullString, len(fields))
		scan := make([]any, len(fields))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan fiscal record: %w", err)
		}
		rec := domain.FiscalRecord{
			Labels:  make(map[string]string),
			Amounts: make(map[string]decimal.Decimal),
		}
		for i, field := range fields {
			if !values[i].Valid {
				continue
			}
			if isValueField(field, p.ValueFields) {
				v, err := decimal.NewFromString(values[i].String)
				if err != nil {
					continue
				}
				rec.Amounts[field] = v
			} else {
				rec.Labels[field] = values[i].String
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fiscal records: %w", err)
	}
	return p.Filter.apply(ds), nil
}
