package twind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTheme = `@theme {
  --color-fuchsia-50: oklch(0.977 0.017 320.058);
  --color-fuchsia-600: oklch(0.591 0.293 322.896);
  --color-sky-500: oklch(0.685 0.169 237.323);
}
`

func writeTestTheme(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	themeDir := filepath.Join(dir, "theme")
	require.NoError(t, os.MkdirAll(themeDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "colors.css"), []byte(testTheme), 0o644))

	return Config{
		ThemeDir:    themeDir,
		Includes:    []string{"**/*.css"},
		OutputFile:  filepath.Join(dir, "colors.gen.go"),
		PackageName: "twind",
	}
}

func TestGenerateWritesCatalog(t *testing.T) {
	config := writeTestTheme(t)

	result, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.FamiliesFound)
	// 3 shades across 2 families, for each of the 4 color groups.
	assert.Equal(t, 12, result.ClassesGenerated)

	content, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)

	source := string(content)
	assert.Contains(t, source, "// Code generated by twind. DO NOT EDIT.")
	assert.Contains(t, source, "package twind")
	assert.Contains(t, source, `BgFuchsia600 = New[BackgroundColor]("bg-fuchsia-600")`)
	assert.Contains(t, source, `TextSky500 = New[TextColor]("text-sky-500")`)
	assert.Contains(t, source, `RingBlack`)
}

func TestGenerateValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "missing theme dir",
			config: Config{Includes: []string{"**/*.css"}, OutputFile: "x.go", PackageName: "twind"},
		},
		{
			name:   "no includes",
			config: Config{ThemeDir: "theme", OutputFile: "x.go", PackageName: "twind"},
		},
		{
			name:   "missing package name",
			config: Config{ThemeDir: "theme", Includes: []string{"*.css"}, OutputFile: "x.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.config)
			require.Error(t, err)
		})
	}
}

func TestGenerateFailsWithoutThemeFiles(t *testing.T) {
	config := Config{
		ThemeDir:    t.TempDir(),
		Includes:    []string{"**/*.css"},
		OutputFile:  filepath.Join(t.TempDir(), "colors.gen.go"),
		PackageName: "twind",
	}

	_, err := Generate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no theme files matched")
}

func TestCheckRoundTrip(t *testing.T) {
	config := writeTestTheme(t)

	_, err := Generate(config)
	require.NoError(t, err)

	result, err := Check(CheckConfig{Config: config})
	require.NoError(t, err)
	assert.True(t, result.InSync)
	assert.Empty(t, result.Issues)
}

func TestCheckDetectsMissingCatalog(t *testing.T) {
	config := writeTestTheme(t)

	result, err := Check(CheckConfig{Config: config})
	require.NoError(t, err)
	assert.False(t, result.InSync)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "does not exist")
}

func TestCheckDetectsDrift(t *testing.T) {
	config := writeTestTheme(t)

	_, err := Generate(config)
	require.NoError(t, err)

	// Simulate a theme edit without regeneration.
	extended := testTheme + "@theme {\n  --color-rose-500: oklch(0.645 0.246 16.439);\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(config.ThemeDir, "colors.css"), []byte(extended), 0o644))

	result, err := Check(CheckConfig{Config: config})
	require.NoError(t, err)
	assert.False(t, result.InSync)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "out of date")
	assert.Greater(t, result.Issues[0].Pos.Line, 0)
}

func TestCheckWarnsOnExtraTrailingLines(t *testing.T) {
	config := writeTestTheme(t)

	_, err := Generate(config)
	require.NoError(t, err)

	// Hand-added lines after the generated content: the generated prefix
	// still matches, so this is a warning rather than a stale-catalog error.
	content, err := os.ReadFile(config.OutputFile)
	require.NoError(t, err)
	appended := append(content, []byte("\n// local addition\n")...)
	require.NoError(t, os.WriteFile(config.OutputFile, appended, 0o644))

	result, err := Check(CheckConfig{Config: config})
	require.NoError(t, err)
	assert.False(t, result.InSync)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "trailing lines")
}

func TestCommittedCatalogInSync(t *testing.T) {
	// The colors.gen.go shipped in this repository must match what the
	// generator produces from theme/colors.css.
	result, err := Check(CheckConfig{Config: Config{
		ThemeDir:    "theme",
		Includes:    []string{"**/*.css"},
		OutputFile:  "colors.gen.go",
		PackageName: "twind",
	}})
	require.NoError(t, err)
	require.True(t, result.InSync, "run twind generate: %+v", result.Issues)
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
		actual   []string
		wantLine int
		wantDiff bool
	}{
		{"identical", []string{"a", "b"}, []string{"a", "b"}, 0, false},
		{"first line differs", []string{"a", "b"}, []string{"x", "b"}, 1, true},
		{"later line differs", []string{"a", "b", "c"}, []string{"a", "b", "x"}, 3, true},
		{"actual truncated", []string{"a", "b", "c"}, []string{"a", "b"}, 3, true},
		{"actual longer with equal prefix", []string{"a"}, []string{"a", "b"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, diff := firstDifference(tt.expected, tt.actual)
			require.Equal(t, tt.wantDiff, diff)
			require.Equal(t, tt.wantLine, line)
		})
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name  string
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"explicit issues", "issues", false, OutputIssues},
		{"explicit summary", "summary", false, OutputSummary},
		{"explicit full", "full", false, OutputFull},
		{"explicit json", "json", false, OutputJSON},
		{"empty falls back to issues", "", false, OutputIssues},
		{"invalid falls back to issues", "nope", false, OutputIssues},
		{"quiet wins", "full", true, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}
