package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openfiscal/fiscal-analyzer/internal/analysis"
	"github.com/openfiscal/fiscal-analyzer/internal/config"
	"github.com/openfiscal/fiscal-analyzer/internal/output"
	"github.com/openfiscal/fiscal-analyzer/internal/provider"
)

// stderrLogger adapts the standard log package to the analysis Logger.
type stderrLogger struct {
	l *log.Logger
}

func (s stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

func main() {
	// Missing .env is fine; it only supplies optional defaults.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fiscal",
		Short:        "Ministry budget analysis pipeline",
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var (
		configPath string
		formats    []string
		outDir     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Pivot fiscal records and derive change and ranking views",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			if len(formats) > 0 {
				req.Output.Formats = formats
			}
			if outDir != "" {
				req.Output.Dir = outDir
			}

			ds, err := buildProvider(req).Load(cmd.Context())
			if err != nil {
				return err
			}

			service := analysis.NewAnalysisService()
			if verbose {
				logger := stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
				service.Logger = logger
				service.Aggregator.Logger = logger
			}
			bundle, err := service.Analyze(ds, req.GroupKeys, req.TimeKeys, req.ValueField)
			if err != nil {
				return err
			}

			for _, name := range req.Output.Formats {
				data, err := output.FormatNamed(name, bundle)
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(data)
			}

			if req.Output.Dir != "" {
				if err := output.NewExporter(req.Output.Dir).Export(cmd.Context(), bundle); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "analysis request YAML file")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats (overrides config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "CSV export directory (overrides config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")
	return cmd
}

func buildProvider(req *config.AnalysisRequest) provider.Provider {
	var filter *provider.YearFilter
	if req.Years != nil {
		filter = &provider.YearFilter{
			Field: req.TimeKeys[len(req.TimeKeys)-1],
			Start: req.Years.Start,
			End:   req.Years.End,
		}
	}
	valueFields := []string{req.ValueField}
	if req.Provider.Kind == config.ProviderSQLite {
		return provider.NewSQLiteProvider(req.Provider.Path, valueFields, filter)
	}
	return provider.NewCSVProvider(req.Provider.Path, valueFields, filter)
}

func defaultConfigPath() string {
	if p := os.Getenv("FISCAL_CONFIG"); p != "" {
		return p
	}
	return "request.yaml"
}
