package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twind"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate per-group color constants from the theme CSS",
	Long: `Parse --color-* custom properties from the theme CSS files and generate
the shared palette once per color-bearing property group.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("theme", "theme", "Theme CSS directory")
	f.String("output", "colors.gen.go", "Output file for generated constants")
	f.StringSlice("include", nil, "Glob patterns for theme files to include")
	f.Bool("check", false, "Run drift check after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	logger.Debug("generating", "theme", config.ThemeDir, "output", config.OutputFile)

	result, err := twind.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Printf("Generated %s\n", config.OutputFile)
		fmt.Printf("  Theme files scanned: %d\n", result.FilesScanned)
		fmt.Printf("  Color families: %d\n", result.FamiliesFound)
		fmt.Printf("  Classes generated: %d\n", result.ClassesGenerated)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	// Run check after generate if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheck()
	}

	return nil
}
