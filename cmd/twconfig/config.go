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
	"github.com/spf13/pflag"
)

const (
	defaultSettingsFile = ".twconfig.yaml"
	envPrefix           = "TWCONFIG_"
)

// k holds the CLI settings. The declaration itself is never read from here.
var k = koanf.New(".")

// flagKeys maps flag names to settings keys. Flags not listed here
// (config, force) are read straight from the command.
var flagKeys = map[string]string{
	"declaration":       "declaration",
	"verbose":           "verbose",
	"quiet":             "quiet",
	"color":             "color",
	"format":            "show.format",
	"base-dir":          "content.base-dir",
	"gitignore":         "content.gitignore",
	"strict":            "check.strict",
	"output-format":     "check.output-format",
	"resolve-content":   "check.resolve-content",
	"print-linter-name": "check.print-linter-name",
}

// settingsSections are the nested blocks of the settings file.
var settingsSections = map[string]bool{
	"show":    true,
	"content": true,
	"check":   true,
}

// loadConfig loads settings with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PersistentPreRunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultSettingsFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unchanged flags only fill keys
	// that neither the file nor the environment set.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads settings from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Settings file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWCONFIG_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a settings key:
//
//	TWCONFIG_CHECK_OUTPUT_FORMAT -> check.output-format
//	TWCONFIG_CONTENT_BASE_DIR    -> content.base-dir
//	TWCONFIG_VERBOSE             -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if section, rest, found := strings.Cut(key, "_"); found && settingsSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// getString returns the settings value for key, or defaultVal when unset.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the settings value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
