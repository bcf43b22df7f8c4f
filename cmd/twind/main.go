// Package main provides the twind CLI tool for generating and checking the
// color catalog.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger carries CLI diagnostics. Verbose mode lowers the level to Debug in
// loadConfig after flags are parsed.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "twind",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
