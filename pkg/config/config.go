package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roomrenamer/pkg/exporter"
	"roomrenamer/pkg/mapstore"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	RoomMapPath  string `json:"room_map_path,omitempty"`
	RulesPath    string `json:"rules_path,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	UIDDomain    string `json:"uid_domain,omitempty"`
	LastSchedule string `json:"last_schedule,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
}

// getConfigPath returns the absolute path to ~/.roomrenamer.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".roomrenamer.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RoomMapFilePath returns the configured room map location or ~/.roomrenamer/room_map.json.
func (c *AppConfig) RoomMapFilePath() (string, error) {
	if c.RoomMapPath != "" {
		return c.RoomMapPath, nil
	}
	return mapstore.DefaultRoomMapPath()
}

// RulesFilePath returns the configured rules file or ~/.roomrenamer/rules.yaml.
func (c *AppConfig) RulesFilePath() (string, error) {
	if c.RulesPath != "" {
		return c.RulesPath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".roomrenamer", "rules.yaml"), nil
}

// Product returns the PRODID written into calendars.
func (c *AppConfig) Product() string {
	if c.ProductID != "" {
		return c.ProductID
	}
	return exporter.DefaultProductID
}

// Domain returns the suffix of event UIDs.
func (c *AppConfig) Domain() string {
	if c.UIDDomain != "" {
		return c.UIDDomain
	}
	return exporter.DefaultUIDDomain
}
