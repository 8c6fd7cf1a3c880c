package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// utf8BOM prefixes exported CSV files so spreadsheet tools detect UTF-8,
// matching the upstream publisher's file encoding.
const utf8BOM = "\xef\xbb\xbf"

// Exporter writes the file set an analysis run produces: changes_yoy.csv
// plus one budget_<year>_<order>.csv per sort key.
type Exporter struct {
	Dir string
}

// NewExporter creates an exporter rooted at dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Export writes the full file set. The per-sort-key files are written
// concurrently; the bundle is read-only at this point so parallel readers
// need no coordination.
func (e *Exporter) Export(ctx context.Context, bundle *domain.ResultBundle) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	changes, err := CSVChangesFormatter{}.Format(bundle)
	if err != nil {
		return fmt.Errorf("format changes_yoy: %w", err)
	}
	if err := e.writeFile("changes_yoy.csv", changes); err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for key, ranking := range bundle.SortedBudgets {
		key, ranking := key, ranking
		g.Go(func() error {
			data, err := rankingCSV(ranking)
			if err != nil {
				return fmt.Errorf("format ranking %s: %w", key, err)
			}
			return e.writeFile(fmt.Sprintf("budget_%s.csv", key), data)
		})
	}
	return g.Wait()
}

func (e *Exporter) writeFile(name string, data []byte) error {
	path := filepath.Join(e.Dir, name)
	body := append([]byte(utf8BOM), data...)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
