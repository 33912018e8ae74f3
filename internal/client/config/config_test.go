package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: 10 * time.Second,
		SnapshotPath:   "userlist.db",
		LogLevel:       "info",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoad_NoSourcesGivesDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"base_url":        "http://json:1",
		"request_timeout": "3s",
		"snapshot_path":   "json.db",
		"log_level":       "warn",
	})
	env := envOf(map[string]string{
		EnvBaseURL:  "http://env:2",
		EnvLogLevel: "debug",
	})
	args := []string{"-c", path, "-u", "http://flag:3", "-x", "ignored"}

	cfg, err := load(args, env)
	require.NoError(t, err)

	want := &Config{
		BaseURL:        "http://flag:3",
		RequestTimeout: 3 * time.Second,
		SnapshotPath:   "json.db",
		LogLevel:       "debug",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJson_PartialFileKeepsOtherValues(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"request_timeout": 2500000000})

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseJson(&cfg, []string{"-config", path}))

	assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestParseJson_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
	badDuration := writeTempJSON(t, map[string]any{"request_timeout": "soon"})

	for _, args := range [][]string{
		{"-c", bad},
		{"-c", badDuration},
		{"-c", filepath.Join(dir, "missing.json")},
	} {
		var cfg Config
		require.Error(t, parseJson(&cfg, args), args)
	}
}

func TestParseEnv(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	err := parseEnv(&cfg, envOf(map[string]string{
		EnvRequestTimeout: "1m",
		EnvSnapshotPath:   "/tmp/snap.db",
		EnvBaseURL:        "",
	}))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/snap.db", cfg.SnapshotPath)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL, "empty variables are ignored")
}

func TestParseEnv_BadTimeout(t *testing.T) {
	var cfg Config
	err := parseEnv(&cfg, envOf(map[string]string{EnvRequestTimeout: "ten"}))
	require.ErrorContains(t, err, EnvRequestTimeout)
}
