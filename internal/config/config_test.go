package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("BLACKJACK_SCORE_BACKEND", "")
	t.Setenv("BLACKJACK_SCORE_PATH", "")
	t.Setenv("BLACKJACK_COLOR", "")
	return dir
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := GetConfigFilePath()
	assert.Equal(t, filepath.Join(dir, "config", "blackjack", "config.toml"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigFromFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	content := "score_backend = \"sqlite\"\ncolor = false\n[theme]\nred = \"#ff0000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.ScoreBackend)
	assert.False(t, cfg.Color)
	assert.Equal(t, "#ff0000", cfg.Theme.Red)
	assert.Equal(t, Default().Theme.Black, cfg.Theme.Black)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_SCORE_BACKEND", "memory")
	t.Setenv("BLACKJACK_SCORE_PATH", "/tmp/elsewhere")
	t.Setenv("BLACKJACK_COLOR", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.ScoreBackend)
	assert.Equal(t, "/tmp/elsewhere", cfg.ResolvedScorePath())
	assert.False(t, cfg.Color)
}

func TestValidateRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_COLOR", "sometimes")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "BLACKJACK_COLOR")

	t.Setenv("BLACKJACK_COLOR", "")
	t.Setenv("BLACKJACK_SCORE_BACKEND", "postgres")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "unknown score backend")
}

func TestOverridesClearBadEnvValues(t *testing.T) {
	isolate(t)
	t.Setenv("BLACKJACK_COLOR", "sometimes")
	t.Setenv("BLACKJACK_SCORE_BACKEND", "postgres")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.ScoreBackend = BackendMemory
	cfg.SetColor(false)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Color)
}

func TestDefaultScorePath(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "data", "blackjack", "scores.toml"), DefaultScorePath(BackendTOML))
	assert.Equal(t, filepath.Join(dir, "data", "blackjack", "scores.db"), DefaultScorePath(BackendSQLite))
	assert.Equal(t, "", DefaultScorePath(BackendMemory))

	cfg := Default()
	assert.Equal(t, DefaultScorePath(BackendTOML), cfg.ResolvedScorePath())
}
