package config

import (
	"fmt"
	"time"
)

const (
	EnvBaseURL        = "USERLIST_BASE_URL"
	EnvRequestTimeout = "USERLIST_REQUEST_TIMEOUT"
	EnvSnapshotPath   = "USERLIST_SNAPSHOT_PATH"
	EnvLogLevel       = "USERLIST_LOG_LEVEL"
)

// parseEnv overlays cfg with non-empty USERLIST_* variables. The timeout is
// a Go duration string ("5s").
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvSnapshotPath); ok && v != "" {
		cfg.SnapshotPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return nil
}
