package twind

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driftResult() *CheckResult {
	return &CheckResult{
		FilesScanned:  1,
		FamiliesFound: 2,
		ExpectedLines: 100,
		ActualLines:   90,
		Issues: []Issue{
			{
				FromLinter:  "twindcheck",
				Text:        "generated color catalog colors.gen.go is out of date; run twind generate",
				Severity:    SeverityError,
				SourceLines: []string{`	BgSky500 = New[BackgroundColor]("bg-sky-500")`},
				Pos:         IssuePos{Filename: "colors.gen.go", Line: 42, Column: 1},
			},
		},
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, CheckConfig{
		PrintSourceLines: true,
		PrintCheckerName: true,
	})

	reporter.PrintIssues(driftResult().Issues)

	out := buf.String()
	assert.Contains(t, out, "colors.gen.go:42:1:")
	assert.Contains(t, out, "out of date")
	assert.Contains(t, out, "(twindcheck)")
	assert.Contains(t, out, `BgSky500`)
}

func TestPrintIssuesLeavesCallerSliceUnsorted(t *testing.T) {
	issues := []Issue{
		{Text: "second", Pos: IssuePos{Filename: "colors.gen.go", Line: 90}},
		{Text: "first", Pos: IssuePos{Filename: "colors.gen.go", Line: 10}},
	}

	var buf bytes.Buffer
	NewReporter(&buf, CheckConfig{}).PrintIssues(issues)

	// Output is sorted by position...
	out := buf.String()
	require.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))

	// ...but the caller's slice keeps its order for downstream consumers.
	require.Equal(t, "second", issues[0].Text)
	require.Equal(t, "first", issues[1].Text)
}

func TestReporterOmitsCheckerName(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, CheckConfig{})

	reporter.PrintIssues(driftResult().Issues)

	assert.NotContains(t, buf.String(), "(twindcheck)")
}

func TestReporterSummaryInSync(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, CheckConfig{})

	reporter.PrintSummary(CheckResult{InSync: true, FamiliesFound: 22, FilesScanned: 1})

	assert.Contains(t, buf.String(), "catalog in sync")
	assert.Contains(t, buf.String(), "22 families")
}

func TestReporterSummaryDrift(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, CheckConfig{})

	reporter.PrintSummary(*driftResult())

	out := buf.String()
	assert.Contains(t, out, "1 issue (1 error, 0 warnings)")
	assert.Contains(t, out, "twind generate")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, driftResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1", output.Version)
	assert.False(t, output.Summary.InSync)
	assert.Equal(t, 1, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Errors)
	assert.Equal(t, 0, output.Summary.Warnings)
	assert.Equal(t, 1, output.Stats.ThemeFilesScanned)
	require.Len(t, output.Issues, 1)
	assert.Equal(t, "colors.gen.go", output.Issues[0].File)
	assert.Equal(t, 42, output.Issues[0].Line)
	assert.True(t, strings.Contains(output.Issues[0].Source, "BgSky500"))
}

func TestWriteOutputJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, driftResult(), OutputJSON, CheckConfig{})

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, 1, output.Summary.TotalIssues)
}
