package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// LoadConfig reads config.json. A missing file yields DefaultConfig; a file
// that is not valid JSON is an error so the app can offer to replace it.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return DecodeConfig(data)
}

// DecodeConfig parses config JSON. Keys absent from data take their
// defaults, so a file written by an older version (for example one without
// a grid block) loads cleanly. Out of range layout settings are reset
// silently since the layout engine cannot use them; the remaining fields
// are left for ValidateConfig to report.
func DecodeConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	ApplyMissingDefaults(config, detectPresentKeys(data))

	if problems := validateLayout(config); len(problems) > 0 {
		log.Printf("Reset invalid layout settings: %s", strings.Join(problems, "; "))
		correctLayout(config)
	}
	return config, nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing writes a default config.json on first run
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return SaveConfig(DefaultConfig())
}

// DeleteConfig removes config.json. A missing file is not an error.
func DeleteConfig() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return removeIfExists(path)
}
