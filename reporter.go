package twind

import (
	"fmt"
	"io"
	"os"
	"sort"

	gen "github.com/yacobolo/twind/internal/twind"
)

// Reporter handles formatting and outputting check results
type Reporter struct {
	w                io.Writer
	useColors        bool
	printLines       bool
	printCheckerName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config CheckConfig) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        shouldUseColors(config),
		printLines:       config.PrintSourceLines,
		printCheckerName: config.PrintCheckerName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config CheckConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format. The caller's slice is
// left in its original order; CheckResult.Issues is consumed again by the
// JSON writer in the full output path.
func (r *Reporter) PrintIssues(issues []Issue) {
	issues = append([]Issue(nil), issues...)
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (checker)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	checkerSuffix := ""
	if r.printCheckerName {
		checkerSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		gen.RenderStyle(gen.StyleCyan, location, r.useColors),
		issue.Text,
		gen.RenderStyle(gen.StyleGray, checkerSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
	}
}

// PrintSummary outputs the sync verdict and issue counts
func (r *Reporter) PrintSummary(result CheckResult) {
	fmt.Fprintln(r.w, "")

	if result.InSync {
		fmt.Fprintln(r.w, gen.RenderStyle(gen.StyleGreen,
			fmt.Sprintf("✓ color catalog in sync (%d families, %d theme files)",
				result.FamiliesFound, result.FilesScanned),
			r.useColors))
		return
	}

	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintf(r.w, "%s (%s, %s)\n",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, gen.RenderStyle(gen.StyleGray,
		"Hint: Run twind generate to refresh the color catalog", r.useColors))
}

// PrintStatistics outputs detailed check statistics
func (r *Reporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, gen.RenderStyle(gen.StyleCyan, "Catalog Check Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Theme Files Scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Color Families:      %d\n", result.FamiliesFound)
	fmt.Fprintf(r.w, "Expected Lines:      %d\n", result.ExpectedLines)
	fmt.Fprintf(r.w, "Committed Lines:     %d\n", result.ActualLines)
}

// PrintWarnings shows parse warnings collected during regeneration
func (r *Reporter) PrintWarnings(result CheckResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, gen.RenderStyle(gen.StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
