package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/dex/internal/api"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(BaseURLEnv, "")
	return dir
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".dex")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(body), 0600))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, api.DefaultEntryLimit, cfg.EntryLimit)
	assert.Equal(t, 8, cfg.FetchConcurrency)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Default()
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		BaseURL:          "https://mirror.example.test/api/v2",
		PageSize:         20,
		EntryLimit:       151,
		FetchConcurrency: 2,
		Timeout:          Duration(5 * time.Second),
		LogFile:          "/tmp/dex.log",
		LogLevel:         "debug",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)

	raw, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "timeout: 5s")
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "page_size: 5\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 8, cfg.FetchConcurrency)
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "invalid: yaml: content:")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "timeout: soon\n")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"negative page size":   "page_size: -1\n",
		"negative concurrency": "fetch_concurrency: -3\n",
		"negative limit":       "entry_limit: -10\n",
		"bad scheme":           "base_url: ftp://example.test\n",
		"bad level":            "log_level: loud\n",
		"negative timeout":     "timeout: -1s\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			home := withHome(t)
			writeConfig(t, home, body)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadBaseURLEnvOverride(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "base_url: https://from-file.test\n")
	t.Setenv(BaseURLEnv, "http://127.0.0.1:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".dex")
	assert.True(t, strings.HasSuffix(path, "config"))
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"", "info", "DEBUG", "warn", "warning", "error"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestCLILoggerWritesTextAndFile(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.LogFile = filepath.Join(dir, "logs", "dex.log")
	cfg.LogLevel = "debug"

	var buf bytes.Buffer
	logger, closer, err := cfg.CLILogger(&buf)
	require.NoError(t, err)
	logger.Debug("detail unavailable", "entry", "ditto")
	closer()

	assert.Contains(t, buf.String(), "detail unavailable")

	raw, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &record))
	assert.Equal(t, "detail unavailable", record["msg"])
	assert.Equal(t, "ditto", record["entry"])
}

func TestCLILoggerRespectsLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, closer, err := cfg.CLILogger(&buf)
	require.NoError(t, err)
	defer closer()
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestTUILoggerWithoutFileDiscards(t *testing.T) {
	cfg := Default()
	logger, closer, err := cfg.TUILogger()
	require.NoError(t, err)
	defer closer()
	assert.NotNil(t, logger)
	logger.Error("nowhere")
}

func TestTUILoggerWritesFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "tui.log")

	logger, closer, err := cfg.TUILogger()
	require.NoError(t, err)
	logger.Warn("list tags failed")
	closer()

	raw, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "list tags failed")
}
