package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sjbrg/swedish-geodata/internal/geodata/check"
	"github.com/sjbrg/swedish-geodata/internal/geodata/dataset"
	"github.com/sjbrg/swedish-geodata/internal/tui/findings"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse findings interactively",
	Long: `Browse runs the full validation and opens the findings in an
interactive terminal UI.

Key bindings:
  1/2/3       Toggle low/medium/high severity
  0           Show all severities
  t           Cycle through tables
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ds, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	res := check.Run(ds, check.Options{
		CountyRows:       cfg.Rows.Counties,
		MunicipalityRows: cfg.Rows.Municipalities,
		PostalRows:       cfg.Rows.PostalMappings,
	})

	p := tea.NewProgram(findings.New(res), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("findings browser: %w", err)
	}

	if !res.OK() {
		return &FindingsError{Count: res.Count()}
	}
	return nil
}
