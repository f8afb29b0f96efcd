package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDaynight loads the Day & Night configuration.
// Search order: customPath -> ~/.daynight/configs/daynight.yaml ->
// ./configs/daynight.yaml -> embedded default.
// Configs that fail validation are rejected (custom path) or skipped
// (search paths).
func LoadDaynight(customPath string) (DaynightConfig, error) {
	var cfg DaynightConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("daynight.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/daynight.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDaynightYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultDaynightConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".daynight", "configs", filename)
}

// ApplyDaynightPreset scales the ball speed according to a named pace.
func ApplyDaynightPreset(cfg *DaynightConfig, preset SpeedPreset) {
	cfg.Ball.Speed *= SpeedFactorForPreset(preset)
}
