package twind

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	ignore "github.com/sabhiram/go-gitignore"

	gen "github.com/yacobolo/twind/internal/twind"
)

// Config holds catalog generator configuration
type Config struct {
	ThemeDir    string   `validate:"required"` // "theme"
	Includes    []string `validate:"min=1"`    // ["**/*.css"]
	OutputFile  string   `validate:"required"` // "colors.gen.go"
	PackageName string   `validate:"required"` // "twind"
	Verbose     bool
}

// Result contains generation stats
type Result struct {
	FilesScanned     int
	FamiliesFound    int
	ClassesGenerated int
	Warnings         []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Generate parses the theme CSS files and writes the per-group color
// catalog to config.OutputFile.
func Generate(config Config) (*Result, error) {
	source, result, err := render(config)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(config.OutputFile, source, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", config.OutputFile, err)
	}

	return result, nil
}

// render runs the full pipeline up to (but not including) writing the
// output file. Check reuses it to regenerate in memory.
func render(config Config) ([]byte, *Result, error) {
	if err := validate.Struct(config); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	result := &Result{}

	files, err := scanThemeFiles(config.ThemeDir, config.Includes)
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no theme files matched %v under %s", config.Includes, config.ThemeDir)
	}

	if config.Verbose {
		fmt.Printf("Found %d theme files\n", len(files))
	}

	theme := gen.NewTheme()
	for _, file := range files {
		if err := gen.ParseThemeFile(theme, file); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
		}
	}
	result.FamiliesFound = len(theme.Families)

	source, err := gen.EmitColors(theme, gen.EmitOptions{
		PackageName: config.PackageName,
		Sources:     theme.Sources,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("emit failed: %w", err)
	}

	for _, shades := range theme.Families {
		result.ClassesGenerated += len(shades) * len(gen.ColorGroups())
	}

	if config.Verbose {
		fmt.Printf("Generated %d color classes from %d families\n",
			result.ClassesGenerated, result.FamiliesFound)
	}

	return source, result, nil
}

// scanThemeFiles finds all theme CSS files matching includes.
// Gitignored files are skipped so stray build output never feeds the
// generator.
func scanThemeFiles(themeDir string, includes []string) ([]string, error) {
	gi := loadGitIgnore()

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range includes {
		fullPattern := filepath.Join(themeDir, pattern)

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !filepath.IsAbs(match) && gi != nil && gi.MatchesPath(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	return files, nil
}

// loadGitIgnore loads .gitignore from the working directory.
// Gracefully degrades if it doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}
