package output

import (
	"encoding/json"

	"github.com/openfiscal/fiscal-analyzer/internal/domain"
)

// JSONFormatter serializes the full result bundle as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(bundle *domain.ResultBundle) ([]byte, error) {
	return json.MarshalIndent(bundle, "", "  ")
}
