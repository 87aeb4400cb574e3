package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Librarium", cfg.Library.Name)
	assert.Equal(t, "29001", cfg.Library.PostalCode)
	assert.False(t, cfg.Demo)
}

func TestLoad(t *testing.T) {
	t.Run("no file keeps the defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		assert.Error(t, err)
	})

	t.Run("file values override the defaults", func(t *testing.T) {
		contents := []byte("env: production\nlibrary:\n  name: Biblioteca Central\n  locality: Sevilla\n")
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, contents, 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "Biblioteca Central", cfg.Library.Name)
		assert.Equal(t, "Sevilla", cfg.Library.Locality)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "Main Street", cfg.Library.Street)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("env: [broken"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("environment variables override the file", func(t *testing.T) {
		contents := []byte("env: production\n")
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, contents, 0o644))

		t.Setenv("LIBRARIUM_ENV", "staging")
		t.Setenv("LIBRARIUM_LOG_LEVEL", "debug")
		t.Setenv("LIBRARIUM_NAME", "Annex")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Env)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "Annex", cfg.Library.Name)
	})
}
