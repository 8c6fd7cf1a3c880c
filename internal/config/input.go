package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProviderKind selects which dataset provider backs an analysis run.
const (
	ProviderCSV    = "csv"
	ProviderSQLite = "sqlite"
)

// AnalysisRequest describes one analysis run: where the records come from,
// which fields shape the pivot, and where the derived views go.
type AnalysisRequest struct {
	Provider   ProviderConfig `yaml:"provider"`
	GroupKeys  []string       `yaml:"group_keys"`
	TimeKeys   []string       `yaml:"time_keys"`
	ValueField string         `yaml:"value_field"`
	Years      *YearRange     `yaml:"years,omitempty"`
	Output     OutputConfig   `yaml:"output"`
}

// ProviderConfig names the dataset source.
type ProviderConfig struct {
	Kind string `yaml:"kind"` // "csv" or "sqlite"
	Path string `yaml:"path"` // CSV file or SQLite database path
}

// YearRange restricts the dataset to an inclusive fiscal-year window,
// matched against the trailing time key.
type YearRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

// InputParser handles parsing of analysis request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an analysis request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*AnalysisRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req AnalysisRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates the loaded analysis request
func (ip *InputParser) ValidateRequest(req *AnalysisRequest) error {
	switch req.Provider.Kind {
	case ProviderCSV, ProviderSQLite:
	case "":
		return fmt.Errorf("provider kind is required")
	default:
		return fmt.Errorf("unknown provider kind %q", req.Provider.Kind)
	}
	if req.Provider.Path == "" {
		return fmt.Errorf("provider path is required")
	}
	if len(req.GroupKeys) == 0 {
		return fmt.Errorf("at least one group key is required")
	}
	if len(req.TimeKeys) == 0 {
		return fmt.Errorf("at least one time key is required")
	}
	if req.ValueField == "" {
		return fmt.Errorf("value field is required")
	}
	if req.Years != nil && req.Years.Start > req.Years.End {
		return fmt.Errorf("year range start %d is after end %d", req.Years.Start, req.Years.End)
	}
	for _, f := range req.Output.Formats {
		if f == "" {
			return fmt.Errorf("output formats must not be empty strings")
		}
	}
	return nil
}
