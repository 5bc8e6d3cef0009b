package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbrg/swedish-geodata/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(version.Info("swedish-geodata"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
