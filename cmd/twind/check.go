package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twind"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the generated color catalog matches the theme",
	Long: `Regenerate the color catalog in memory and compare it against the
committed file. Drift means the theme changed without rerunning generate.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("theme", "theme", "Theme CSS directory")
	f.String("output", "colors.gen.go", "Generated file to verify")
	f.StringSlice("include", nil, "Glob patterns for theme files to include")
	f.Bool("strict", false, "Exit 1 on any finding (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-lines", true, "Show generated lines at the first difference")
	f.Bool("print-checker-name", true, "Show (twindcheck) suffix on issues")
}

// runCheck is shared between `twind check` and `twind generate --check`.
func runCheck() error {
	checkConfig := buildCheckConfig()

	checkResult, err := twind.Check(checkConfig)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := twind.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		twind.WriteOutput(os.Stdout, checkResult, format, checkConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if checkConfig.Strict {
		// Strict mode: any finding (error or warning) fails the build
		if len(checkResult.Issues) > 0 {
			os.Exit(1)
		}
	} else {
		// Default mode: only errors fail the build
		for _, issue := range checkResult.Issues {
			if issue.Severity == twind.SeverityError {
				os.Exit(1)
			}
		}
	}

	return nil
}
