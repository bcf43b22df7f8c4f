package twind

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level finding counts
type JSONSummary struct {
	InSync      bool `json:"in_sync"`
	TotalIssues int  `json:"total_issues"`
	Errors      int  `json:"errors"`
	Warnings    int  `json:"warnings"`
}

// JSONStats contains theme and catalog statistics
type JSONStats struct {
	ThemeFilesScanned int `json:"theme_files_scanned"`
	ColorFamilies     int `json:"color_families"`
	ExpectedLines     int `json:"expected_lines"`
	CommittedLines    int `json:"committed_lines"`
}

// JSONIssue represents a single drift finding
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Checker  string `json:"checker"`
	Source   string `json:"source,omitempty"` // Optional generated line
}

// WriteJSON exports the check result as structured JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := JSONOutput{
		Version:   "1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Stats: JSONStats{
			ThemeFilesScanned: result.FilesScanned,
			ColorFamilies:     result.FamiliesFound,
			ExpectedLines:     result.ExpectedLines,
			CommittedLines:    result.ActualLines,
		},
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}

	output.Summary.InSync = result.InSync
	output.Summary.TotalIssues = len(result.Issues)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			output.Summary.Errors++
		case SeverityWarning:
			output.Summary.Warnings++
		}

		jsonIssue := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Checker:  issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			jsonIssue.Source = issue.SourceLines[0]
		}
		output.Issues = append(output.Issues, jsonIssue)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
