package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sjbrg/swedish-geodata/internal/geodata/check"
	"github.com/sjbrg/swedish-geodata/internal/geodata/config"
	"github.com/sjbrg/swedish-geodata/internal/geodata/dataset"
	"github.com/sjbrg/swedish-geodata/internal/geodata/report"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
	"github.com/sjbrg/swedish-geodata/pkg/core/logging"
)

// FindingsError signals a completed run that found defects. The data was
// readable, it just failed checks.
type FindingsError struct {
	Count int
}

func (e *FindingsError) Error() string {
	return fmt.Sprintf("validation found %d finding(s)", e.Count)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the CSV snapshots",
	Long: `Validate runs every check over the four CSV snapshots and prints a
report grouped by table. The exit status is 0 when all checks pass, 1 when
findings exist and 2 when a snapshot cannot be read at all.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger := logging.NewWithLevel("validate", level)

	runID := uuid.NewString()
	logger.Info("validation started", "run_id", runID, "data_dir", cfg.DataDir)

	ds, err := dataset.Load(cfg.DataDir)
	if err != nil {
		logger.Error("dataset load failed", "run_id", runID, "error", err)
		return err
	}
	for _, spec := range schema.All() {
		if t := ds.Table(spec.Name); t != nil {
			logger.Debug("table loaded", "run_id", runID, "table", spec.Name, "rows", len(t.Rows))
		}
	}

	res := check.Run(ds, check.Options{
		CountyRows:       cfg.Rows.Counties,
		MunicipalityRows: cfg.Rows.Municipalities,
		PostalRows:       cfg.Rows.PostalMappings,
	})

	styles := report.PlainStyles()
	if cfg.Report.Color && !noColor {
		styles = report.ColorStyles()
	}
	report.Render(cmd.OutOrStdout(), res, report.Options{Styles: styles, RunID: runID})

	if !res.OK() {
		logger.Info("validation finished", "run_id", runID, "findings", res.Count())
		return &FindingsError{Count: res.Count()}
	}
	logger.Info("validation finished", "run_id", runID, "findings", 0)
	return nil
}

func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}
