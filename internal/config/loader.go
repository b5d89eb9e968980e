package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/tiles"
	projectConfigDir = ".tiles"
	configFileName   = "config.yaml"
)

// Load layers defaults, the user file, the project file and, if explicit is
// not empty, the file at that path. Missing user and project files are
// skipped; a missing explicit file is an error.
func Load(explicit string) (Config, error) {
	config := DefaultConfig()

	for _, locate := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		path, err := locate()
		if err != nil {
			// Optional layer; an unknown home or working dir just skips it.
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
		}
		config = mergeConfigs(config, overlay)
		config.Sources = append(config.Sources, path)
	}

	if explicit != "" {
		overlay, err := loadConfigFromFile(explicit)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", explicit, err)
		}
		config = mergeConfigs(config, overlay)
		config.Sources = append(config.Sources, explicit)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

func loadConfigFromFile(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs overrides every field of base that overlay sets.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.DefaultPreset != "" {
		merged.DefaultPreset = overlay.DefaultPreset
	}
	if overlay.SeparatorThickness != 0 {
		merged.SeparatorThickness = overlay.SeparatorThickness
	}
	if overlay.Panes != nil {
		merged.Panes = overlay.Panes
	}
	if overlay.Log.File != "" {
		merged.Log.File = overlay.Log.File
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}
	if overlay.Export.Width != 0 {
		merged.Export.Width = overlay.Export.Width
	}
	if overlay.Export.Height != 0 {
		merged.Export.Height = overlay.Export.Height
	}

	return merged
}

// Save writes config as YAML, creating the directory if needed.
func Save(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
