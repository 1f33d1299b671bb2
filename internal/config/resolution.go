package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
)

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	Style     style.Style
	Policy    table.PaddingPolicy
	LogLevel  table.Level
	LogPrefix string
	NoColor   bool

	InteriorVertical   bool
	InteriorHorizontal bool
	HeaderLine         bool

	// Resource limits
	MaxOutput int

	// Resolution metadata (for debugging)
	ConfigFile     string // "" when no file was read
	StyleSource    string // "cli", "env", "file", "default"
	PolicySource   string // "cli", "env", "file", "default"
	LogLevelSource string // "cli", "env", "file", "default"
	NoColorSource  string // "cli", "env", "file", "default"
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order: CLI flags, then environment, then the config file, then
// defaults. tty reports whether output goes to a terminal; it decides what
// the "auto" style means.
func ResolveConfig(cliFlags CliFlags, tty bool) (*ResolvedConfig, error) {
	appCfg, path, err := LoadConfig(cliFlags.ConfigFile)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		LogPrefix:          appCfg.LogPrefix,
		NoColor:            appCfg.NoColor,
		InteriorVertical:   boolOr(appCfg.InteriorVertical, false),
		InteriorHorizontal: boolOr(appCfg.InteriorHorizontal, false),
		HeaderLine:         boolOr(appCfg.HeaderLine, true),
		MaxOutput:          appCfg.MaxOutput,
		ConfigFile:         path,
		NoColorSource:      fileOrDefault(path),
	}

	styleName, src := pick(cliFlags.Style, "UNITBL_STYLE", appCfg.Style, DefaultStyle, path)
	resolved.StyleSource = src
	if resolved.Style, err = ResolveStyle(styleName, tty); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	policy, src := pick(cliFlags.PaddingPolicy, "UNITBL_PADDING_POLICY", appCfg.PaddingPolicy, DefaultPaddingPolicy, path)
	resolved.PolicySource = src
	if resolved.Policy, err = table.ParsePaddingPolicy(policy); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	level, src := pick(cliFlags.LogLevel, "UNITBL_LOG_LEVEL", appCfg.LogLevel, DefaultLogLevel, path)
	resolved.LogLevelSource = src
	if resolved.LogLevel, err = table.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Resolve NoColor with priority: CLI > ENV > file > default
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = "cli"
	} else if envNoColor := getEnvBool("UNITBL_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = "env"
	}

	if cliFlags.InteriorVerticalSet {
		resolved.InteriorVertical = cliFlags.InteriorVertical
	}
	if cliFlags.InteriorHorizontalSet {
		resolved.InteriorHorizontal = cliFlags.InteriorHorizontal
	}
	if cliFlags.HeaderLineSet {
		resolved.HeaderLine = cliFlags.HeaderLine
	}
	if cliFlags.MaxOutputSet {
		resolved.MaxOutput = cliFlags.MaxOutput
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// TableConfig returns the render configuration for the resolved settings.
// The caller attaches a log sink.
func (r *ResolvedConfig) TableConfig() *table.Config {
	cfg := table.NewConfig()
	cfg.Policy = r.Policy
	cfg.MaxOutput = r.MaxOutput
	return cfg
}

// ResolveStyle parses a style name. "auto" picks the boxed single-line
// style on a terminal and the boxed ASCII style otherwise.
func ResolveStyle(name string, tty bool) (style.Style, error) {
	if strings.EqualFold(strings.TrimSpace(name), "auto") {
		if tty {
			return style.SingleV2, nil
		}
		return style.ASCIIV2, nil
	}
	return style.Parse(name)
}

// pick applies CLI > env > file > default to a string setting.
func pick(cli, envKey, file, def, path string) (string, string) {
	if cli != "" {
		return cli, "cli"
	}
	if v := os.Getenv(envKey); v != "" {
		return v, "env"
	}
	if path != "" && file != def {
		return file, "file"
	}
	return def, "default"
}

func fileOrDefault(path string) string {
	if path != "" {
		return "file"
	}
	return "default"
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
			// NO_COLOR convention: any non-empty value disables colour
			if key == "NO_COLOR" {
				t := true
				return &t
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.MaxOutput < 0 {
		return fmt.Errorf("max_output must not be negative, got: %d", cfg.MaxOutput)
	}
	return nil
}
