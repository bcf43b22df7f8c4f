package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twind.yaml config file",
	Long:  `Create a .twind.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twind.yaml"); err == nil && !force {
			return fmt.Errorf(".twind.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twind.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twind.yaml")
		return nil
	},
}

const defaultConfig = `# twind configuration
# Docs: https://github.com/yacobolo/twind

# Shared settings
package: twind
verbose: false

# Generation settings
generate:
  theme: theme
  output: colors.gen.go
  include:
    - "**/*.css"

# Check settings
check:
  strict: false
  output-format: issues    # issues | summary | full | json
  print-lines: true
  print-checker-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
