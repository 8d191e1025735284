package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.{yaml,toml} ->
// ./configs/invaders.{yaml,toml} -> embedded default.
//
// Files are decoded over the defaults, so a file may set only the keys it
// wants to change. A custom path must exist, parse and validate; the other
// locations are skipped silently when they do not.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeInvaders(customPath, data)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, name := range []string{"invaders.yaml", "invaders.toml"} {
		// Try user config directory
		if userCfgPath := UserConfigPath(name); userCfgPath != "" {
			if cfg, ok := tryLoad(userCfgPath); ok {
				return cfg, nil
			}
		}

		// Try local configs directory
		if cfg, ok := tryLoad(filepath.Join("configs", name)); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeInvaders("invaders.yaml", defaultInvadersYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and decodes path, reporting false on any failure.
func tryLoad(path string) (InvadersConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, false
	}
	cfg, err := decodeInvaders(path, data)
	if err != nil || cfg.Validate() != nil {
		return InvadersConfig{}, false
	}
	return cfg, true
}

// decodeInvaders decodes data over the defaults. Files ending in .toml are
// TOML, everything else is YAML.
func decodeInvaders(path string, data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
