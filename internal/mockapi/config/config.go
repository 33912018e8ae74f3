// Package config handles configuration for the fake users API server:
// defaults, environment overlay and command-line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/userlist/internal/flagx"
)

const (
	EnvAddr     = "USERLIST_MOCK_ADDR"
	EnvLogLevel = "USERLIST_MOCK_LOG_LEVEL"
)

// Config holds runtime settings for the fake API server.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - LogLevel: minimum level of the request log.
//   - ShutdownTimeout: how long in-flight requests get after a stop signal.
type Config struct {
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig applies defaults, then USERLIST_MOCK_* variables, then flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseFlags reads -a and -l; anything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("mockapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-l"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
