package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultVariant string `toml:"default_variant"`
	Style          string `toml:"style"` // "symbols" or "words"
	Color          string `toml:"color"` // "auto", "always" or "never"
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetVariantLibraryPath returns the path to the deck variant library
func GetVariantLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "croupier", "variants")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "croupier", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if config.DefaultVariant == "" {
		config.DefaultVariant = "standard"
	}
	if config.Style == "" {
		config.Style = "symbols"
	}
	if config.Color == "" {
		config.Color = "auto"
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		DefaultVariant: "standard",
		Style:          "symbols",
		Color:          "auto",
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// writeConfig encodes the config to the config file
func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetDefaultVariant returns the default variant ID from config
func GetDefaultVariant() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultVariant, nil
}

// SetDefaultVariant sets the default variant in the config
func SetDefaultVariant(variantID string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultVariant = variantID

	return writeConfig(config)
}
