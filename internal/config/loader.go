package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "tower.yaml"

// LoadTower loads the tower configuration.
// Search order: customPath -> ~/.tower/configs/tower.yaml -> ./configs/tower.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadTower(customPath string) (Tower, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tower{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTower(data)
		if err != nil {
			return Tower{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTower(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseTower(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTower(defaultTowerYAML)
	if err != nil {
		return DefaultTowerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTower decodes YAML over the hardcoded defaults.
func parseTower(data []byte) (Tower, error) {
	cfg := DefaultTowerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tower{}, err
	}
	return cfg, nil
}

// ApplyTowerPreset modifies the config based on a difficulty preset.
func ApplyTowerPreset(cfg *Tower, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust enemy aggression based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.BurstShotCount = 2
		cfg.Enemy.BurstCooldown = 4.0
		cfg.Enemy.AlertDuration = 5.0
		cfg.Enemy.VerticalTolerance = 100
		cfg.Machinegunner.ShotsPerBurst = 4
		cfg.Machinegunner.BurstCooldown = 4.0
	case DifficultyHard:
		cfg.Enemy.BurstShotCount = 4
		cfg.Enemy.BurstShotInterval = 0.4
		cfg.Enemy.BurstCooldown = 2.0
		cfg.Enemy.AlertDuration = 9.0
		cfg.Machinegunner.BurstCooldown = 2.0
	}
}

// UserConfigDir returns ~/.tower/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tower", "configs")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
