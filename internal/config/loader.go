package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/serpent.yaml
var defaultYAML []byte

// Load reads settings with the search order:
// customPath -> ~/.serpent/config.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// implicit locations fall through silently.
func Load(customPath string) (Settings, error) {
	var s Settings

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return s, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil {
				return s, nil
			}
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		return Default(), nil // fall back to hardcoded if the embed is bad
	}
	return s, nil
}

// userConfigPath returns ~/.serpent/config.yaml, or empty if home is unknown.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".serpent", "config.yaml")
}
