package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir string, cfg any) string {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// isolate keeps the search path away from any real config on the machine.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "students.json", cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Headless)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, Config{
		DataFile: "/var/lib/roster/class.json",
		LogFile:  "/tmp/roster.log",
		LogLevel: "debug",
		Headless: true,
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/roster/class.json", cfg.DataFile)
	assert.Equal(t, "/tmp/roster.log", cfg.LogFile)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.True(t, cfg.Headless)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, map[string]string{"data_file": "roster.json"})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "roster.json", cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep their defaults")
}

func TestLoad_SearchesXDG(t *testing.T) {
	dir := isolate(t)
	xdgDir := filepath.Join(dir, "xdg", "roster")
	require.NoError(t, os.MkdirAll(xdgDir, 0755))
	writeConfig(t, xdgDir, map[string]string{"log_level": "error"})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, map[string]string{"data_file": "from-file.json"})
	t.Setenv("ROSTER_DATA_FILE", "from-env.json")
	t.Setenv("ROSTER_HEADLESS", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.DataFile)
	assert.True(t, cfg.Headless)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, map[string]string{"log_level": "loud"})

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestValidate_RequiresDataFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataFile = "  "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_file")
}
