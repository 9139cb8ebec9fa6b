package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/capex"
	projectConfigDir = ".capex"
	configFileName   = "config.yaml"
	tomlFileName     = "config.toml"
)

// LoadConfig loads the capex configuration by layering default, user and
// project settings, then the file at explicitPath if it is not empty.
func LoadConfig(explicitPath string) (CapexConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if path, ok := resolveConfigFile(userConfigPath); ok {
		userConfig, err := loadConfigFromFile(path)
		if err != nil {
			return CapexConfig{}, fmt.Errorf("error loading user config from %s: %w", path, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if path, ok := resolveConfigFile(projectConfigPath); ok {
		projectConfig, err := loadConfigFromFile(path)
		if err != nil {
			return CapexConfig{}, fmt.Errorf("error loading project config from %s: %w", path, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	// 4. Explicit configuration file, which must exist
	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return CapexConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicitConfig)
	}

	if err := config.Validate(); err != nil {
		return CapexConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// resolveConfigFile returns path if it exists, or a config.toml next to it.
func resolveConfigFile(path string) (string, bool) {
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	alt := filepath.Join(filepath.Dir(path), tomlFileName)
	if _, err := os.Stat(alt); err == nil {
		return alt, true
	}
	return "", false
}

// loadConfigFromFile loads a CapexConfig from a YAML or TOML file.
func loadConfigFromFile(filePath string) (CapexConfig, error) {
	var config CapexConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CapexConfig{}, err
	}

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		if _, err := toml.Decode(string(data), &config); err != nil {
			return CapexConfig{}, err
		}
		return config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return CapexConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay CapexConfig) CapexConfig {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	// A non-empty list replaces the base list
	if len(overlay.Registry.AllowOverwrite) > 0 {
		merged.Registry.AllowOverwrite = append([]string(nil), overlay.Registry.AllowOverwrite...)
	}

	// Merge modules by kind. Base order is kept, new kinds are appended.
	merged.Modules = append([]ModuleConfig(nil), base.Modules...)
	index := make(map[string]int, len(merged.Modules))
	for i, m := range merged.Modules {
		index[normalizeKind(m.Kind)] = i
	}
	for _, m := range overlay.Modules {
		key := normalizeKind(m.Kind)
		if i, ok := index[key]; ok {
			merged.Modules[i] = m
			continue
		}
		index[key] = len(merged.Modules)
		merged.Modules = append(merged.Modules, m)
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
