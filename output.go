package twind

import (
	"io"
	"os"
)

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only findings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows findings plus statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags.
// Invalid or empty requests fall back to issues-only, following
// golangci-lint's UX: clean, fast, consistent everywhere.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues // Suppressed by the caller; exit code only
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		reporter := NewReporter(w, config)
		reporter.PrintStatistics(*result)
		reporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)
		reporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
