package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twind"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twind.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	if getBoolWithFallback("verbose", "verbose", false) {
		logger.SetLevel(log.DebugLevel)
		logger.Debug("config loaded", "file", configPath)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWIND_* prefix)
	if err := k.Load(env.Provider("TWIND_", ".", func(s string) string {
		// TWIND_GENERATE_THEME -> generate.theme
		// TWIND_CHECK_STRICT -> check.strict
		// TWIND_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWIND_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() twind.Config {
	config := twind.Config{
		ThemeDir:    getStringWithFallback("theme", "generate.theme", "theme"),
		OutputFile:  getStringWithFallback("output", "generate.output", "colors.gen.go"),
		PackageName: getStringWithFallback("package", "package", "twind"),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.css"}
	}

	return config
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
func buildCheckConfig() twind.CheckConfig {
	return twind.CheckConfig{
		Config:           buildGenerateConfig(),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		PrintSourceLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintCheckerName: getBoolWithFallback("print-checker-name", "check.print-checker-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
