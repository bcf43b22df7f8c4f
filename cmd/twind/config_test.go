package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twind.yaml")
	configContent := `
package: custom-pkg
verbose: true

generate:
  theme: custom/theme
  output: custom/colors.gen.go
  include:
    - "palette/**/*.css"

check:
  strict: true
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "custom-pkg", k.String("package"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/theme", k.String("generate.theme"))
	assert.Equal(t, "custom/colors.gen.go", k.String("generate.output"))
	assert.Equal(t, []string{"palette/**/*.css"}, k.Strings("generate.include"))
	assert.True(t, k.Bool("check.strict"))
	assert.False(t, k.Bool("check.print-lines"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.twind.yaml"))

	// buildGenerateConfig should return defaults
	config := buildGenerateConfig()
	assert.Equal(t, "theme", config.ThemeDir)
	assert.Equal(t, "colors.gen.go", config.OutputFile)
	assert.Equal(t, "twind", config.PackageName)
	assert.Equal(t, []string{"**/*.css"}, config.Includes)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twind.yaml")
	configContent := `
generate:
  theme: from-file
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("TWIND_GENERATE_THEME", "from-env")
	t.Setenv("TWIND_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("generate.theme"))
	assert.True(t, k.Bool("check.strict"))
}

func TestBuildCheckConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildCheckConfig()
	assert.Equal(t, "theme", config.ThemeDir)
	assert.Equal(t, "colors.gen.go", config.OutputFile)
	assert.Equal(t, "twind", config.PackageName)
	assert.False(t, config.Strict)
	assert.True(t, config.PrintSourceLines)
	assert.True(t, config.PrintCheckerName)
	assert.False(t, config.UseColors)
}
