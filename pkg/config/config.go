/*
Package config manages TOML config for the acrolex CLI and server.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/acrolab/acrolex/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Recognizer RecognizerConfig `toml:"recognizer"`
	Dict       DictConfig       `toml:"dict"`
	Scorer     ScorerConfig     `toml:"scorer"`
}

// RecognizerConfig has recognition related options.
type RecognizerConfig struct {
	// Window is the character lookback before a defining pattern. It
	// should match the window the dictionaries were mined with.
	Window int `toml:"window"`
}

// DictConfig holds grounding dictionary options.
type DictConfig struct {
	// Dir is scanned for .bin and .tsv dictionary files at startup.
	Dir string `toml:"dir"`
}

// ScorerConfig tunes the one-shot alignment scorer.
type ScorerConfig struct {
	Enabled    bool    `toml:"enabled"`
	LenPenalty float64 `toml:"len_penalty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Recognizer: RecognizerConfig{
			Window: 100,
		},
		Dict: DictConfig{
			Dir: "dictionaries",
		},
		Scorer: ScorerConfig{
			Enabled:    true,
			LenPenalty: 0.05,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml, falling
// back to the working directory when the user config dir is unavailable.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return "config.toml", nil
	}
	return filepath.Join(homeDir, ".config", "acrolex", "config.toml"), nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/acrolex/config.toml
// 3. Builtin defaults
func LoadWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if cfg, err := Load(customConfigPath); err == nil {
			log.Debugf("Loaded config from custom path: %s", customConfigPath)
			return cfg, customConfigPath
		} else {
			log.Warnf("Failed to load config from %s: %v. Trying default path...", customConfigPath, err)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return DefaultConfig(), ""
	}
	cfg, err := Init(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	return cfg, defaultPath
}

// Init loads config from file or creates the default one if missing.
func Init(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := Save(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config at %s: %v. Using builtin defaults...", configPath, err)
			return cfg, nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	return Load(configPath)
}

// Load reads a TOML config file over the defaults, so partial files are
// fine.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	if cfg.Recognizer.Window <= 0 {
		log.Warnf("Invalid recognizer window %d in %s, using default", cfg.Recognizer.Window, configPath)
		cfg.Recognizer.Window = DefaultConfig().Recognizer.Window
	}
	return cfg, nil
}

// Save writes the config as TOML.
func Save(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
