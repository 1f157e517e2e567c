package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

// Config holds the file-configurable defaults of the tool. Every field is
// optional; command-line flags take precedence over config values.
type Config struct {
	// Font family name or font file path used for the text
	Font string `yaml:"font,omitempty" json:"font,omitempty"`
	// Directory the images are written into
	OutputDir string `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
	// Canvas size specification like "1024x1024"
	Size string `yaml:"size,omitempty" json:"size,omitempty"`
	// Fraction of the canvas reserved as blank border
	Padding *float64 `yaml:"padding,omitempty" json:"padding,omitempty"`
	// Background color, named or hex
	Background string `yaml:"background,omitempty" json:"background,omitempty"`
	// Text fill color, named or hex
	TextColor string `yaml:"textColor,omitempty" json:"textColor,omitempty"`
	// Log level: debug, info, warn or error
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/text2png/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/text2png/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "text2png")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "text2png")
	}
	return configHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "text2png")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "text2png")
	}
	return stateHomePath
}
