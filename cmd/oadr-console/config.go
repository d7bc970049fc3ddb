package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OAuthConfig holds client-credentials settings.
type OAuthConfig struct {
	TokenURL     string   `yaml:"tokenUrl"`
	ClientID     string   `yaml:"clientId"`
	ClientSecret string   `yaml:"clientSecret"`
	Scopes       []string `yaml:"scopes"`
}

// Config is the console configuration file.
type Config struct {
	BaseURL    string      `yaml:"baseUrl"`
	OAuth      OAuthConfig `yaml:"oauth"`
	TokenCache string      `yaml:"tokenCache"`
	WireLog    string      `yaml:"wireLog"`
}

// loadConfig reads a YAML config file. A missing file yields an empty
// config so flags and environment alone can drive the console.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// applyEnv overlays OADR_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("OADR_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("OADR_TOKEN_URL"); v != "" {
		c.OAuth.TokenURL = v
	}
	if v := os.Getenv("OADR_CLIENT_ID"); v != "" {
		c.OAuth.ClientID = v
	}
	if v := os.Getenv("OADR_CLIENT_SECRET"); v != "" {
		c.OAuth.ClientSecret = v
	}
}
