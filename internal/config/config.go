// Package config handles loading and validating the tsctl configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the connection settings for the time-series store.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	// Host of the store's HTTP endpoint
	Host string

	// Port of the store's HTTP endpoint
	Port int

	// User and Password for authentication; both may be empty
	User     string
	Password string

	// Database to issue all commands against
	Database string
}

// Addr returns the HTTP address of the store.
func (c *Config) Addr() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// FromViper builds a Config from the values viper collected from the config
// file and TSCTL_* environment variables, validating required fields.
func FromViper() (*Config, error) {
	cfg := &Config{
		Host:     viper.GetString("host"),
		Port:     viper.GetInt("port"),
		User:     viper.GetString("user"),
		Password: viper.GetString("password"),
		Database: viper.GetString("database"),
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}

	return cfg, nil
}
