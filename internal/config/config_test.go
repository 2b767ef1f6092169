package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "public/index.html", cfg.Site.HTMLPath)
	assert.Equal(t, "public", cfg.Site.StaticDir)
	assert.Equal(t, 3, cfg.Engine.TopK)
	assert.Equal(t, "5491162502232", cfg.Contact.WhatsAppNumber)
	assert.Equal(t, "/assets/cv", cfg.CV.BaseURL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  top_k: 5\nserver:\n  addr: \":9090\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Engine.TopK)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "public/index.html", cfg.Site.HTMLPath, "unset fields keep defaults")
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	want, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	want.Engine.TopK = 7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
