package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sjbrg/swedish-geodata/cmd/geodata/cmd"
	"github.com/sjbrg/swedish-geodata/internal/geodata/report"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		os.Exit(report.ExitOK)
	}

	// Findings mean the run completed; the report already went to stdout.
	var findings *cmd.FindingsError
	if errors.As(err, &findings) {
		os.Exit(report.ExitFindings)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(report.ExitLoadError)
}
