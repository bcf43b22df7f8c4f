package twind

import (
	"fmt"
	"os"
	"strings"
)

// CheckConfig holds drift-check configuration
type CheckConfig struct {
	Config

	Strict           bool // Exit 1 on any finding (CI mode); applied by the CLI
	PrintSourceLines bool // Show generated lines around the first difference
	PrintCheckerName bool // Show (twindcheck) suffix on issues
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains drift-check analysis results
type CheckResult struct {
	FilesScanned  int
	FamiliesFound int
	ExpectedLines int
	ActualLines   int
	InSync        bool
	Issues        []Issue
	Warnings      []string
}

// Check regenerates the color catalog in memory and compares it against the
// committed file. A difference means the theme and the generated constants
// have drifted apart.
func Check(config CheckConfig) (*CheckResult, error) {
	expected, genResult, err := render(config.Config)
	if err != nil {
		return nil, fmt.Errorf("check failed: %w", err)
	}

	result := &CheckResult{
		FilesScanned:  genResult.FilesScanned,
		FamiliesFound: genResult.FamiliesFound,
		Warnings:      genResult.Warnings,
	}

	actual, err := os.ReadFile(config.OutputFile)
	if os.IsNotExist(err) {
		result.Issues = append(result.Issues, Issue{
			FromLinter: checkerName,
			Text:       fmt.Sprintf(IssueMissingCatalog, config.OutputFile),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: config.OutputFile, Line: 1, Column: 1},
		})
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", config.OutputFile, err)
	}

	expectedLines := strings.Split(string(expected), "\n")
	actualLines := strings.Split(string(actual), "\n")
	result.ExpectedLines = len(expectedLines)
	result.ActualLines = len(actualLines)

	if diffLine, ok := firstDifference(expectedLines, actualLines); ok {
		issue := Issue{
			FromLinter: checkerName,
			Text:       fmt.Sprintf(IssueStaleCatalog, config.OutputFile),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: config.OutputFile, Line: diffLine, Column: 1},
		}
		if diffLine <= len(actualLines) {
			issue.SourceLines = []string{actualLines[diffLine-1]}
		}
		result.Issues = append(result.Issues, issue)
		return result, nil
	}

	if len(actualLines) > len(expectedLines) {
		result.Issues = append(result.Issues, Issue{
			FromLinter: checkerName,
			Text: fmt.Sprintf(IssueExtraLines, config.OutputFile,
				len(actualLines)-len(expectedLines)),
			Severity: SeverityWarning,
			Pos:      IssuePos{Filename: config.OutputFile, Line: len(expectedLines), Column: 1},
		})
		return result, nil
	}

	result.InSync = true
	return result, nil
}

const checkerName = "twindcheck"

// firstDifference returns the 1-based line number of the first line where
// expected and actual disagree, over the lines both files have.
func firstDifference(expected, actual []string) (int, bool) {
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		if expected[i] != actual[i] {
			return i + 1, true
		}
	}
	if len(actual) < len(expected) {
		return n + 1, true
	}
	return 0, false
}
