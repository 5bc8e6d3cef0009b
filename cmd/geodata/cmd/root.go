package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dataDir string
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "geodata",
	Short: "Swedish geodata snapshot validator",
	Long: `geodata validates the Swedish geodata CSV snapshots: counties,
municipalities, the municipality/county join table and the postal code
mapping.

Checks cover file structure (encoding, line endings, headers, row counts),
field formats (fixed-width digit codes, Unicode normalization), referential
integrity between the tables and cross-table name consistency.

Run without a subcommand to validate the configured data directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./geodata.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory with the CSV snapshots")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
