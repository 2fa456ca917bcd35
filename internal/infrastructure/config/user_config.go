package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.fantasy-manager/config.json
type UserConfig struct {
	// Default manager ID to use when not specified via CLI
	DefaultManagerID *int `json:"default_manager_id,omitempty"`

	// Default chat user id to use when not specified via CLI
	DefaultExternalID string `json:"default_external_id,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for ~/.fantasy-manager/config.json
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".fantasy-manager"))
}

// NewUserConfigHandlerAt creates a handler storing config.json in dir
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &UserConfigHandler{
		configPath: filepath.Join(dir, "config.json"),
	}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	if _, err := os.Stat(h.configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultManager sets the default manager ID
func (h *UserConfigHandler) SetDefaultManager(managerID int) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultManagerID = &managerID
	config.DefaultExternalID = ""
	return h.Save(config)
}

// SetDefaultExternalID sets the default chat user id
func (h *UserConfigHandler) SetDefaultExternalID(externalID string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultManagerID = nil
	config.DefaultExternalID = externalID
	return h.Save(config)
}

// ClearDefaultManager removes the default manager setting
func (h *UserConfigHandler) ClearDefaultManager() error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultManagerID = nil
	config.DefaultExternalID = ""
	return h.Save(config)
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
