package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigFile         string
	Style              string
	PaddingPolicy      string
	LogLevel           string
	NoColor            bool
	InteriorVertical   bool
	InteriorHorizontal bool
	HeaderLine         bool
	MaxOutput          int

	// Flags to track if they were explicitly set by the user
	NoColorSet            bool
	InteriorVerticalSet   bool
	InteriorHorizontalSet bool
	HeaderLineSet         bool
	MaxOutputSet          bool
}

// AppConfig represents the contents of .unitbl.yaml.
type AppConfig struct {
	Style              string `yaml:"style,omitempty"`
	PaddingPolicy      string `yaml:"padding_policy,omitempty"`
	InteriorVertical   *bool  `yaml:"interior_vertical,omitempty"`
	InteriorHorizontal *bool  `yaml:"interior_horizontal,omitempty"`
	HeaderLine         *bool  `yaml:"header_line,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
	LogPrefix          string `yaml:"log_prefix,omitempty"`
	NoColor            bool   `yaml:"no_color"`
	MaxOutput          int    `yaml:"max_output"` // In bytes, 0 = unbounded
}

// Constants for default values.
const (
	FileName             = ".unitbl.yaml"
	DefaultStyle         = "auto"
	DefaultPaddingPolicy = "keep-padding"
	DefaultLogLevel      = "warn"
	DefaultLogPrefix     = "unitbl"
)

// LoadConfig reads the configuration file at path, or the first of
// ./.unitbl.yaml and $XDG_CONFIG_HOME/unitbl/.unitbl.yaml when path is
// empty. It returns the path used ("" when none was found). A missing
// default file is not an error; an explicit path must exist.
func LoadConfig(path string) (*AppConfig, string, error) {
	appCfg := &AppConfig{
		Style:         DefaultStyle,
		PaddingPolicy: DefaultPaddingPolicy,
		LogLevel:      DefaultLogLevel,
		LogPrefix:     DefaultLogPrefix,
	}

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
		if path == "" {
			return appCfg, "", nil
		}
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return appCfg, "", nil
		}
		return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return nil, "", fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Merge YAML settings onto the defaults
	if fileCfg.Style != "" {
		appCfg.Style = fileCfg.Style
	}
	if fileCfg.PaddingPolicy != "" {
		appCfg.PaddingPolicy = fileCfg.PaddingPolicy
	}
	if fileCfg.LogLevel != "" {
		appCfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogPrefix != "" {
		appCfg.LogPrefix = fileCfg.LogPrefix
	}
	appCfg.InteriorVertical = fileCfg.InteriorVertical
	appCfg.InteriorHorizontal = fileCfg.InteriorHorizontal
	appCfg.HeaderLine = fileCfg.HeaderLine
	appCfg.NoColor = fileCfg.NoColor
	appCfg.MaxOutput = fileCfg.MaxOutput
	return appCfg, path, nil
}

// getConfigPath finds .unitbl.yaml in the working directory, then in the
// user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// an empty or root config dir is not usable
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "unitbl", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
