package config

import (
	"os"
	"time"
)

const DefaultBaseURL = "https://67441fc2b4e2e04abea0e545.mockapi.io"

// Config holds runtime settings for the users CLI.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SnapshotPath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.RequestTimeout = 10 * time.Second
	c.SnapshotPath = "userlist.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
