package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// runConfig is the resolved configuration for one extract/check run,
// built from koanf state after flags > env > file > defaults have layered
// (loadConfig).
type runConfig struct {
	Root          string
	Include       []string
	Exclude       []string
	WriteCSSFiles bool
	Verbose       bool
	Quiet         bool
	UseColors     bool
}

// loadConfig loads configuration with precedence: flags > env > file >
// defaults, exactly reproducing cmd/cssgen/config.go's layering. It must
// be called after cobra parses flags (PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".severed.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables, separated out so tests can exercise it without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// SEVERED_EXTRACT_ROOT -> extract.root, SEVERED_VERBOSE -> verbose.
	if err := k.Load(env.Provider("SEVERED_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SEVERED_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRunConfig constructs runConfig from koanf state for the given
// command section ("extract" or "check").
func buildRunConfig(section string) runConfig {
	cfg := runConfig{
		Root:          getStringWithFallback("root", section+".root", "."),
		WriteCSSFiles: getBoolWithFallback("write-css-files", section+".write-css-files", false),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
		Quiet:         getBoolWithFallback("quiet", "quiet", false),
		UseColors:     getBoolWithFallback("color", "color", false),
	}

	if include := k.Strings("include"); len(include) > 0 {
		cfg.Include = include
	} else if include := k.Strings(section + ".include"); len(include) > 0 {
		cfg.Include = include
	} else {
		cfg.Include = []string{"**/*.css.js", "**/*.css.ts", "**/*.css.tsx"}
	}

	if exclude := k.Strings("exclude"); len(exclude) > 0 {
		cfg.Exclude = exclude
	} else if exclude := k.Strings(section + ".exclude"); len(exclude) > 0 {
		cfg.Exclude = exclude
	} else {
		cfg.Exclude = []string{"**/node_modules/**"}
	}

	return cfg
}

func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
