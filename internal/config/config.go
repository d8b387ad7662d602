package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	API    APIConfig    `yaml:"api"`
	Log    LogConfig    `yaml:"log"`
	Seed   bool         `yaml:"seed"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// AuthConfig holds token issuance configuration. An empty secret selects the
// unsigned demo token format.
type AuthConfig struct {
	Secret     string `yaml:"secret"`
	TTLHours   int    `yaml:"ttl_hours"`
	AdminEmail string `yaml:"admin_email"`
}

// APIConfig holds facade configuration
type APIConfig struct {
	LatencyMS int `yaml:"latency_ms"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// TokenTTL returns the configured token lifetime.
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Latency returns the configured facade latency.
func (c *APIConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}
