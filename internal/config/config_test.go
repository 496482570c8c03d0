package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lladdr.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "/sys", cfg.SysfsRoot)
	assert.Equal(t, "all", cfg.Defaults.Protocol)
	assert.Equal(t, uint32(65535), cfg.Defaults.SnapLen)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.Outputs.File.Enabled)
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
lladdr:
  output: json
  sysfs_root: /tmp/sys
  defaults:
    protocol: ipv6
    snap_len: 1500
  log:
    level: debug
    format: json
    outputs:
      file:
        enabled: true
        path: /tmp/lladdr.log
        rotation:
          max_size_mb: 1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/tmp/sys", cfg.SysfsRoot)
	assert.Equal(t, "ipv6", cfg.Defaults.Protocol)
	assert.Equal(t, uint32(1500), cfg.Defaults.SnapLen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Outputs.File.Enabled)
	assert.Equal(t, "/tmp/lladdr.log", cfg.Log.Outputs.File.Path)
	assert.Equal(t, 1, cfg.Log.Outputs.File.Rotation.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.Outputs.File.Rotation.MaxBackups)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LLADDR_OUTPUT", "yaml")
	t.Setenv("LLADDR_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"log level", "lladdr:\n  log:\n    level: trace\n", "invalid log level"},
		{"log format", "lladdr:\n  log:\n    format: xml\n", "invalid log format"},
		{"output", "lladdr:\n  output: csv\n", "invalid output"},
		{"file without path", "lladdr:\n  log:\n    outputs:\n      file:\n        enabled: true\n", "path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
