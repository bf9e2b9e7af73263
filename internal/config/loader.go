package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadMemory(customPath string) (MemoryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMemory(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("memory.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMemory(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "memory.yaml")); err == nil {
		if cfg, err := ParseMemory(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseMemory(defaultMemoryYAML)
	if err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMemory decodes YAML on top of the built-in defaults and validates
// the result.
func ParseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MemoryConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}

// UserConfigPath is where LoadMemory looks for a per-user memory.yaml.
func UserConfigPath() string {
	return userConfigPath("memory.yaml")
}
