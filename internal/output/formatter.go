package output

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested
// name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(bundle *domain.ResultBundle) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVChangesFormatter{},
	CSVBudgetFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":    "console",
	"txt":     "console",
	"changes": "csv",
	"budget":  "budget-csv",
	"pivot":   "budget-csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// FormatNamed runs the named formatter over a result bundle.
func FormatNamed(name string, bundle *domain.ResultBundle) ([]byte, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, name, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(bundle)
}
