// Package config loads and saves the tool's yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the dream-sparer configuration.
type Config struct {
	OutputDir  string   `yaml:"output_dir"`
	QuietTypes []string `yaml:"quiet_types"` // FourCCs never listed
	Server     Server   `yaml:"server"`
	Logging    Logging  `yaml:"logging"`
}

// Server configures the inspection API.
type Server struct {
	Bind   string `yaml:"bind"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"` // empty disables authentication
}

// Logging configures log output.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Server: Server{
			Bind: "127.0.0.1",
			Port: 8080,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads a yaml config file. Fields not present keep their zero
// values; callers usually overlay this onto DefaultConfig via Load.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Load returns the configuration at path, or the defaults when path is empty
// and no file exists at the default location.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	def := DefaultConfigPath()
	if _, err := os.Stat(def); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(def)
}

// SaveConfig writes the configuration to path, creating the directory if
// needed.
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/dream-sparer/config.yaml, falling back
// to the working directory when the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./dream-sparer.yaml"
	}
	return filepath.Join(homeDir, ".config", "dream-sparer", "config.yaml")
}
