package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, FileName), []byte("style: heavy-v1\n"), 0o600); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	if got := getConfigPath(); got != FileName {
		t.Fatalf("expected local config path, got %q", got)
	}
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	xdgRoot := filepath.Join(tempDir, "xdg")
	configHome := filepath.Join(xdgRoot, "unitbl")
	if err := os.MkdirAll(configHome, 0o755); err != nil {
		t.Fatalf("failed to create XDG config directory: %v", err)
	}
	configPath := filepath.Join(configHome, FileName)
	if err := os.WriteFile(configPath, []byte("style: heavy-v1\n"), 0o600); err != nil {
		t.Fatalf("failed to write XDG config: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", xdgRoot)
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	if got := getConfigPath(); got != configPath {
		t.Fatalf("expected XDG config path %q, got %q", configPath, got)
	}
}

func TestLoadConfig_ReturnsDefaults_When_NoFileFound(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "none"))

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultStyle, cfg.Style)
	assert.Equal(t, DefaultPaddingPolicy, cfg.PaddingPolicy)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogPrefix, cfg.LogPrefix)
	assert.Nil(t, cfg.HeaderLine)
}

func TestLoadConfig_MergesFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "style: double-v2\ninterior_vertical: true\nheader_line: false\nmax_output: 4096\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, used, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "double-v2", cfg.Style)
	assert.Equal(t, DefaultPaddingPolicy, cfg.PaddingPolicy)
	require.NotNil(t, cfg.InteriorVertical)
	assert.True(t, *cfg.InteriorVertical)
	require.NotNil(t, cfg.HeaderLine)
	assert.False(t, *cfg.HeaderLine)
	assert.Equal(t, 4096, cfg.MaxOutput)
}

func TestLoadConfig_ReturnsError_When_ExplicitFileMissingOrInvalid(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("style: [unterminated\n"), 0o600))
	_, _, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}
