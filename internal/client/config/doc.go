// Package config loads runtime configuration for the users CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. USERLIST_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-u string   base URL of the users API
//	-t int      request timeout (seconds)
//	-s string   path of the local snapshot database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://67441fc2b4e2e04abea0e545.mockapi.io",
//	  "request_timeout": "10s",
//	  "snapshot_path": "userlist.db",
//	  "log_level": "info"
//	}
//
// Fields missing from the JSON file keep their previous value.
package config
