package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainvault/db"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yml", `
storage:
  type: bolt
  directory: /var/lib/chainvault
genesis:
  payload: "ledger opened"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, db.BoltBackend, cfg.Storage.Type)
	assert.Equal(t, "/var/lib/chainvault", cfg.Storage.Directory)
	assert.Equal(t, "ledger opened", cfg.Genesis.Payload)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigRejectsBadBackend(t *testing.T) {
	path := writeFile(t, "config.yml", `
storage:
  type: cassandra
  directory: /tmp/x
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "storage: [")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadValidationConfig(t *testing.T) {
	path := writeFile(t, "tuning.ini", `
[validation]
max_depth = 5000
`)

	cfg, err := LoadValidationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.MaxDepth)
}

func TestLoadValidationConfigMissingFile(t *testing.T) {
	cfg, err := LoadValidationConfig(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxDepth)
}

func TestLoadValidationConfigRejectsNegative(t *testing.T) {
	path := writeFile(t, "tuning.ini", `
[validation]
max_depth = -1
`)

	_, err := LoadValidationConfig(path)
	assert.Error(t, err)
}
